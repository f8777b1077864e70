// Command pps loads a project planning document and reports statistics
// over it, either as a one-shot printed report or in an interactive
// terminal browser.
package main

import (
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/lauravdo/ProjectPlanningSystem/internal/config"
	"github.com/lauravdo/ProjectPlanningSystem/internal/loader"
	"github.com/lauravdo/ProjectPlanningSystem/internal/logbook"
	"github.com/lauravdo/ProjectPlanningSystem/internal/report"
	"github.com/lauravdo/ProjectPlanningSystem/internal/tui"
)

func main() {
	planningFile := flag.String("f", "", "planning document to load (overrides pps.yaml)")
	interactive := flag.Bool("i", false, "browse the planning interactively")
	flag.Parse()

	cwd, err := os.Getwd()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error getting working directory: %v\n", err)
		os.Exit(1)
	}

	cfg, err := config.Load(cwd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		os.Exit(1)
	}

	path := cfg.PlanningFile
	if *planningFile != "" {
		path = *planningFile
	}

	log, err := logbook.Open(cfg.LogFile)
	if err != nil {
		// A broken log file should not stop the report; a nil logbook
		// discards entries.
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		log = nil
	}
	defer log.Close()

	result, err := loader.LoadFile(path)
	if err != nil {
		log.Error("load %s: %v", path, err)
		fmt.Fprintf(os.Stderr, "Error loading planning document: %v\n", err)
		os.Exit(1)
	}
	reg := result.Registry
	log.Info("loaded %s: %d employees, %d projects", path, reg.NumEmployees(), reg.NumProjects())
	if result.DroppedCommitments > 0 {
		log.Warn("dropped %d commitment(s) with unresolved references", result.DroppedCommitments)
		fmt.Fprintf(os.Stderr, "Warning: dropped %d commitment(s) with unresolved references\n",
			result.DroppedCommitments)
	}

	opts := report.Options{
		JuniorWageLimit:     cfg.JuniorWageLimit,
		FullTimeHoursPerDay: cfg.FullTimeHoursPerDay,
	}

	if *interactive {
		p := tea.NewProgram(tui.NewApp(reg, opts, log), tea.WithAltScreen())
		if _, err := p.Run(); err != nil {
			log.Error("tui: %v", err)
			fmt.Fprintf(os.Stderr, "Error running browser: %v\n", err)
			os.Exit(1)
		}
		return
	}

	fmt.Print(report.Render(reg, opts))
}
