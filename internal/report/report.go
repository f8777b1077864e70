// Package report renders the planning statistics overview as styled
// terminal text. It is a read-only consumer of the registry; all the
// arithmetic lives in the stats engine.
package report

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/lauravdo/ProjectPlanningSystem/internal/planning"
	"github.com/lauravdo/ProjectPlanningSystem/internal/stats"
)

var (
	titleStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#5B8DEF")).Bold(true)
	sectionStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#F7B801")).Bold(true)
	valueStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#4CAF50"))
	noticeStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#999999")).Italic(true)
)

// Options carry the report thresholds, usually taken from config.
type Options struct {
	JuniorWageLimit     int
	FullTimeHoursPerDay int
}

// Render produces the full statistics report for a registry.
func Render(reg *planning.Registry, opts Options) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s\n\n", titleStyle.Render(fmt.Sprintf(
		"Project Statistics of '%s' in the year %d", reg.Name(), reg.PlanningYear())))

	if reg.NumEmployees() == 0 || reg.NumProjects() == 0 {
		b.WriteString(noticeStyle.Render("No employees or projects have been set up..."))
		b.WriteString("\n")
		return b.String()
	}

	fmt.Fprintf(&b, "%d employees have been assigned to %d projects.\n\n",
		reg.NumEmployees(), reg.NumProjects())

	engine := stats.New(reg)

	averageWage, _ := engine.AverageHourlyWage()
	section(&b, 1, "The average hourly wage of all employees is %s",
		valueStyle.Render(fmt.Sprintf("%.2f", averageWage)))

	longest, _ := engine.LongestProject()
	section(&b, 2, "The longest project is '%s' with %s available working days",
		longest.Name, valueStyle.Render(fmt.Sprintf("%d", longest.NumWorkingDays())))

	involved := engine.MostInvolvedEmployees()
	section(&b, 3, "The employees with the broadest assignment: %s",
		valueStyle.Render(employeeList(involved)))

	section(&b, 4, "The total budget of committed project manpower is %s",
		valueStyle.Render(fmt.Sprintf("%d", engine.TotalManpowerBudget())))

	section(&b, 5, "Total managed budget of junior employees (hourly wage <= %d):",
		opts.JuniorWageLimit)
	overview := engine.ManagedBudgetOverview(func(e *planning.Employee) bool {
		return e.HourlyWage <= opts.JuniorWageLimit
	})
	for _, line := range overviewLines(overview) {
		fmt.Fprintf(&b, "   %s\n", line)
	}
	b.WriteString("\n")

	section(&b, 6, "Employees working at least %d hours per day: %s",
		opts.FullTimeHoursPerDay,
		valueStyle.Render(employeeList(engine.FullTimeEmployees(opts.FullTimeHoursPerDay))))

	section(&b, 7, "Cumulative monthly project spends:")
	for _, line := range monthlyLines(engine.CumulativeMonthlySpends()) {
		fmt.Fprintf(&b, "   %s\n", line)
	}

	return b.String()
}

func section(b *strings.Builder, number int, format string, args ...any) {
	fmt.Fprintf(b, "%s %s\n\n",
		sectionStyle.Render(fmt.Sprintf("%d.", number)),
		fmt.Sprintf(format, args...))
}

func employeeList(employees []*planning.Employee) string {
	if len(employees) == 0 {
		return "none"
	}
	parts := make([]string, 0, len(employees))
	for _, e := range employees {
		parts = append(parts, fmt.Sprintf("%s(%d)", e.Name, e.Number))
	}
	return strings.Join(parts, ", ")
}

func overviewLines(overview map[*planning.Employee]int) []string {
	if len(overview) == 0 {
		return []string{"none"}
	}
	employees := make([]*planning.Employee, 0, len(overview))
	for e := range overview {
		employees = append(employees, e)
	}
	sort.Slice(employees, func(i, j int) bool { return employees[i].Number < employees[j].Number })
	lines := make([]string, 0, len(employees))
	for _, e := range employees {
		lines = append(lines, fmt.Sprintf("%s(%d) = %d", e.Name, e.Number, overview[e]))
	}
	return lines
}

func monthlyLines(spends map[time.Month]int) []string {
	if len(spends) == 0 {
		return []string{"none"}
	}
	var lines []string
	for month := time.January; month <= time.December; month++ {
		if spend, ok := spends[month]; ok {
			lines = append(lines, fmt.Sprintf("%-9s %d", month.String(), spend))
		}
	}
	return lines
}
