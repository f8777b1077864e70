// Package stats computes derived statistics over a finished planning
// registry. Every operation is a pure read; the registry is never
// mutated.
package stats

import (
	"errors"
	"sort"
	"time"

	"github.com/lauravdo/ProjectPlanningSystem/internal/planning"
)

var (
	// ErrNoEmployees signals a statistic that is undefined on an empty
	// employee set.
	ErrNoEmployees = errors.New("stats: no employees registered")
	// ErrNoProjects signals a statistic that is undefined on an empty
	// project set.
	ErrNoProjects = errors.New("stats: no projects registered")
)

// DefaultFullTimeHours is the committed hours-per-day threshold at
// which an employee counts as working full-time on a project.
const DefaultFullTimeHours = 8

// Engine answers aggregate queries over a registry.
type Engine struct {
	reg *planning.Registry
}

// New wraps a registry for querying.
func New(reg *planning.Registry) *Engine {
	return &Engine{reg: reg}
}

// AverageHourlyWage returns the arithmetic mean of all employees'
// hourly wages. On an empty employee set it returns 0 and
// ErrNoEmployees rather than dividing by zero.
func (s *Engine) AverageHourlyWage() (float64, error) {
	employees := s.reg.Employees()
	if len(employees) == 0 {
		return 0, ErrNoEmployees
	}
	total := 0
	for _, e := range employees {
		total += e.HourlyWage
	}
	return float64(total) / float64(len(employees)), nil
}

// LongestProject returns the project with the most working days. Ties
// go to the project that comes first in canonical order, which is the
// lexicographically smallest code.
func (s *Engine) LongestProject() (*planning.Project, error) {
	var longest *planning.Project
	longestDays := -1
	for _, p := range s.reg.Projects() {
		if days := p.NumWorkingDays(); days > longestDays {
			longest = p
			longestDays = days
		}
	}
	if longest == nil {
		return nil, ErrNoProjects
	}
	return longest, nil
}

// MostInvolvedEmployees returns every employee committed to the
// highest number of distinct projects. Managed projects do not count
// as involvement. All employees tied at the maximum are returned, in
// canonical order; an empty employee set yields an empty result.
func (s *Engine) MostInvolvedEmployees() []*planning.Employee {
	employees := s.reg.Employees()
	if len(employees) == 0 {
		return nil
	}
	counts := make(map[int]int, len(employees))
	for _, p := range s.reg.Projects() {
		for number := range p.Commitments() {
			counts[number]++
		}
	}
	max := 0
	for _, n := range counts {
		if n > max {
			max = n
		}
	}
	var involved []*planning.Employee
	for _, e := range employees {
		if counts[e.Number] == max {
			involved = append(involved, e)
		}
	}
	return involved
}

// TotalManpowerBudget sums, over every commitment in the system, the
// project's working days times the committed hours per day times the
// employee's hourly wage.
func (s *Engine) TotalManpowerBudget() int {
	total := 0
	for _, p := range s.reg.Projects() {
		total += s.projectBudget(p)
	}
	return total
}

// ManagedBudget returns the portion of the total manpower budget
// attributable to the projects the given employee manages.
func (s *Engine) ManagedBudget(employee *planning.Employee) int {
	budget := 0
	for _, p := range s.reg.Projects() {
		if employee.Manages(p.Code) {
			budget += s.projectBudget(p)
		}
	}
	return budget
}

// ManagedBudgetOverview maps every employee satisfying the predicate
// to their managed budget. Employees failing the predicate are left
// out entirely.
func (s *Engine) ManagedBudgetOverview(predicate func(*planning.Employee) bool) map[*planning.Employee]int {
	overview := map[*planning.Employee]int{}
	for _, e := range s.reg.Employees() {
		if predicate == nil || predicate(e) {
			overview[e] = s.ManagedBudget(e)
		}
	}
	return overview
}

// CumulativeMonthlySpends distributes every project's per-day cost
// across its working days and accumulates the result by calendar
// month, summed over all projects. The per-day cost is recomputed for
// each project.
func (s *Engine) CumulativeMonthlySpends() map[time.Month]int {
	spends := map[time.Month]int{}
	for _, p := range s.reg.Projects() {
		costPerDay := 0
		for number, hours := range p.Commitments() {
			if e, ok := s.reg.Employee(number); ok {
				costPerDay += e.HourlyWage * hours
			}
		}
		if costPerDay == 0 {
			continue
		}
		for _, day := range p.WorkingDays() {
			spends[day.Month()] += costPerDay
		}
	}
	return spends
}

// FullTimeEmployees returns every employee that has pledged at least
// minHoursPerDay to at least one project, in canonical order. The
// returned employees are the registered instances, not copies.
func (s *Engine) FullTimeEmployees(minHoursPerDay int) []*planning.Employee {
	numbers := map[int]struct{}{}
	for _, p := range s.reg.Projects() {
		for number, hours := range p.Commitments() {
			if hours >= minHoursPerDay {
				numbers[number] = struct{}{}
			}
		}
	}
	if len(numbers) == 0 {
		return nil
	}
	var fullTime []*planning.Employee
	for number := range numbers {
		if e, ok := s.reg.Employee(number); ok {
			fullTime = append(fullTime, e)
		}
	}
	sort.Slice(fullTime, func(i, j int) bool { return fullTime[i].Number < fullTime[j].Number })
	return fullTime
}

func (s *Engine) projectBudget(p *planning.Project) int {
	days := p.NumWorkingDays()
	budget := 0
	for number, hours := range p.Commitments() {
		if e, ok := s.reg.Employee(number); ok {
			budget += days * hours * e.HourlyWage
		}
	}
	return budget
}
