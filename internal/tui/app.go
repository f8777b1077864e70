// Package tui is the interactive browser for a loaded planning
// registry. It follows the Elm architecture bubbletea is built around:
// the App model holds all state, Update reacts to messages, View
// renders the current screen.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/lauravdo/ProjectPlanningSystem/internal/logbook"
	"github.com/lauravdo/ProjectPlanningSystem/internal/planning"
	"github.com/lauravdo/ProjectPlanningSystem/internal/report"
)

// appState represents which screen is showing.
type appState int

const (
	stateMenu appState = iota
	stateReport
	stateEmployees
	stateProjects
)

const dateFormat = "02 Jan 2006"

var hintStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#999999"))

// menuItem implements list.Item for the main menu.
type menuItem struct {
	title string
	desc  string
}

func (i menuItem) Title() string       { return i.title }
func (i menuItem) Description() string { return i.desc }
func (i menuItem) FilterValue() string { return i.title }

// employeeItem adapts a registered employee for bubbles' list.
type employeeItem struct {
	employee *planning.Employee
}

func (i employeeItem) Title() string {
	return fmt.Sprintf("%s (#%d)", i.employee.Name, i.employee.Number)
}

func (i employeeItem) Description() string {
	managed := len(i.employee.ManagedProjects())
	return fmt.Sprintf("hourly wage %d · manages %d project(s)", i.employee.HourlyWage, managed)
}

func (i employeeItem) FilterValue() string { return i.employee.Name }

// projectItem adapts a registered project for bubbles' list.
type projectItem struct {
	project *planning.Project
}

func (i projectItem) Title() string {
	return fmt.Sprintf("%s · %s", i.project.Code, i.project.Name)
}

func (i projectItem) Description() string {
	return fmt.Sprintf("%s – %s · %d working days · %d commitment(s)",
		i.project.Start.Format(dateFormat),
		i.project.End.Format(dateFormat),
		i.project.NumWorkingDays(),
		len(i.project.Commitments()))
}

func (i projectItem) FilterValue() string { return i.project.Code }

// App is the top-level bubbletea model.
type App struct {
	state appState

	registry *planning.Registry
	opts     report.Options
	logbook  *logbook.Logbook

	menu      list.Model
	employees list.Model
	projects  list.Model
	report    string

	width  int
	height int
}

// NewApp builds the browser over an already loaded registry.
func NewApp(reg *planning.Registry, opts report.Options, log *logbook.Logbook) *App {
	menuItems := []list.Item{
		menuItem{title: "Statistics report", desc: "The full planning statistics overview"},
		menuItem{title: "Employees", desc: fmt.Sprintf("Browse %d registered employees", reg.NumEmployees())},
		menuItem{title: "Projects", desc: fmt.Sprintf("Browse %d registered projects", reg.NumProjects())},
		menuItem{title: "Quit", desc: "Leave the planning browser"},
	}
	menu := list.New(menuItems, list.NewDefaultDelegate(), 0, 0)
	menu.Title = fmt.Sprintf("Project Planning · %s (%d)", reg.Name(), reg.PlanningYear())
	menu.SetShowStatusBar(false)
	menu.SetFilteringEnabled(false)

	employeeItems := make([]list.Item, 0, reg.NumEmployees())
	for _, e := range reg.Employees() {
		employeeItems = append(employeeItems, employeeItem{employee: e})
	}
	employees := list.New(employeeItems, list.NewDefaultDelegate(), 0, 0)
	employees.Title = "Employees"
	employees.SetShowStatusBar(false)

	projectItems := make([]list.Item, 0, reg.NumProjects())
	for _, p := range reg.Projects() {
		projectItems = append(projectItems, projectItem{project: p})
	}
	projects := list.New(projectItems, list.NewDefaultDelegate(), 0, 0)
	projects.Title = "Projects"
	projects.SetShowStatusBar(false)

	return &App{
		state:     stateMenu,
		registry:  reg,
		opts:      opts,
		logbook:   log,
		menu:      menu,
		employees: employees,
		projects:  projects,
		report:    report.Render(reg, opts),
	}
}

// Init satisfies tea.Model.
func (a *App) Init() tea.Cmd {
	return nil
}

// Update routes messages to the active screen.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		listHeight := msg.Height - 2
		a.menu.SetSize(msg.Width, listHeight)
		a.employees.SetSize(msg.Width, listHeight)
		a.projects.SetSize(msg.Width, listHeight)
		return a, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}
		switch a.state {
		case stateMenu:
			return a.updateMenu(msg)
		default:
			return a.updateScreen(msg)
		}
	}

	return a.updateActiveList(msg)
}

func (a *App) updateMenu(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "esc":
		return a, tea.Quit
	case "enter":
		item, ok := a.menu.SelectedItem().(menuItem)
		if !ok {
			return a, nil
		}
		switch item.title {
		case "Statistics report":
			a.state = stateReport
			a.logbook.Info("viewing statistics report")
		case "Employees":
			a.state = stateEmployees
		case "Projects":
			a.state = stateProjects
		case "Quit":
			return a, tea.Quit
		}
		return a, nil
	}
	var cmd tea.Cmd
	a.menu, cmd = a.menu.Update(msg)
	return a, cmd
}

func (a *App) updateScreen(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "esc":
		a.state = stateMenu
		return a, nil
	}
	return a.updateActiveList(msg)
}

func (a *App) updateActiveList(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch a.state {
	case stateEmployees:
		a.employees, cmd = a.employees.Update(msg)
	case stateProjects:
		a.projects, cmd = a.projects.Update(msg)
	case stateMenu:
		a.menu, cmd = a.menu.Update(msg)
	}
	return a, cmd
}

// View renders the current screen.
func (a *App) View() string {
	switch a.state {
	case stateReport:
		var b strings.Builder
		b.WriteString(a.report)
		b.WriteString("\n")
		b.WriteString(hintStyle.Render("esc: back to menu · ctrl+c: quit"))
		return b.String()
	case stateEmployees:
		return a.employees.View()
	case stateProjects:
		return a.projects.View()
	default:
		return a.menu.View()
	}
}
