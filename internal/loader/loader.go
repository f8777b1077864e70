// Package loader imports a YAML planning document and replays it
// through the planning builder. The loader is the only producer of
// registries outside of tests; everything it knows about the file
// format stays here.
package loader

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/lauravdo/ProjectPlanningSystem/internal/planning"
)

const dateLayout = "2006-01-02"

// Result pairs the assembled registry with import diagnostics.
type Result struct {
	Registry *planning.Registry

	// DroppedCommitments counts commitment entries that referenced an
	// unknown project or employee and were skipped.
	DroppedCommitments int
}

type planningFile struct {
	Name        string            `yaml:"name"`
	Year        int               `yaml:"year"`
	Employees   []employeeEntry   `yaml:"employees"`
	Projects    []projectEntry    `yaml:"projects"`
	Commitments []commitmentEntry `yaml:"commitments"`
}

type employeeEntry struct {
	Number int    `yaml:"number"`
	Name   string `yaml:"name"`
	Wage   int    `yaml:"wage"`
}

type projectEntry struct {
	Code    string `yaml:"code"`
	Name    string `yaml:"name"`
	Start   string `yaml:"start"`
	End     string `yaml:"end"`
	Manager int    `yaml:"manager"`
}

type commitmentEntry struct {
	Project     string `yaml:"project"`
	Employee    int    `yaml:"employee"`
	HoursPerDay int    `yaml:"hours_per_day"`
}

// Parse decodes and validates a planning document. The name argument
// identifies the source (usually the file name) and becomes the
// registry name when the document does not set one.
func Parse(data []byte, name string) (Result, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return Result{}, fmt.Errorf("loader: planning document is empty")
	}
	var file planningFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return Result{}, fmt.Errorf("loader: decode planning document: %w", err)
	}
	if file.Name == "" {
		file.Name = name
	}
	if err := file.validate(); err != nil {
		return Result{}, fmt.Errorf("loader: %w", err)
	}
	return file.build(), nil
}

// LoadFile reads a planning document from disk.
func LoadFile(path string) (Result, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Result{}, fmt.Errorf("loader: read %s: %w", path, err)
	}
	return Parse(data, filepath.Base(path))
}

func (f *planningFile) validate() error {
	if f.Year <= 0 {
		return fmt.Errorf("year is required")
	}
	seenEmployees := map[int]struct{}{}
	for i, e := range f.Employees {
		if e.Number <= 0 {
			return fmt.Errorf("employees[%d]: number must be positive", i)
		}
		if e.Name == "" {
			return fmt.Errorf("employees[%d]: name is required", i)
		}
		if e.Wage < 0 {
			return fmt.Errorf("employees[%d]: wage cannot be negative", i)
		}
		seenEmployees[e.Number] = struct{}{}
	}
	for i, p := range f.Projects {
		if p.Code == "" {
			return fmt.Errorf("projects[%d]: code is required", i)
		}
		start, err := time.Parse(dateLayout, p.Start)
		if err != nil {
			return fmt.Errorf("projects[%d]: start date: %w", i, err)
		}
		end, err := time.Parse(dateLayout, p.End)
		if err != nil {
			return fmt.Errorf("projects[%d]: end date: %w", i, err)
		}
		if end.Before(start) {
			return fmt.Errorf("projects[%d]: end date precedes start date", i)
		}
		if _, ok := seenEmployees[p.Manager]; !ok {
			return fmt.Errorf("projects[%d]: manager %d is not a declared employee", i, p.Manager)
		}
	}
	for i, c := range f.Commitments {
		if c.HoursPerDay <= 0 {
			return fmt.Errorf("commitments[%d]: hours_per_day must be positive", i)
		}
	}
	return nil
}

func (f *planningFile) build() Result {
	builder := planning.NewBuilder(f.Name, f.Year)

	employees := make(map[int]*planning.Employee, len(f.Employees))
	for _, entry := range f.Employees {
		e := planning.NewEmployee(entry.Number, entry.Name, entry.Wage)
		employees[entry.Number] = e
		builder.AddEmployee(e)
	}
	for _, entry := range f.Projects {
		start, _ := time.Parse(dateLayout, entry.Start)
		end, _ := time.Parse(dateLayout, entry.End)
		project := planning.NewProject(entry.Code, entry.Name, start, end)
		builder.AddProject(project, employees[entry.Manager])
	}
	for _, entry := range f.Commitments {
		builder.AddCommitment(entry.Project, entry.Employee, entry.HoursPerDay)
	}

	return Result{
		Registry:           builder.Build(),
		DroppedCommitments: builder.DroppedCommitments(),
	}
}
