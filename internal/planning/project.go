package planning

import "time"

// Project is a planned piece of work with an inclusive calendar range.
// Identity is the project code. Commitments map employee numbers to the
// accumulated hours per day that employee has pledged to this project;
// the registry guarantees every key resolves to a registered employee.
type Project struct {
	Code  string
	Name  string
	Start time.Time
	End   time.Time

	committed map[int]int
}

// NewProject creates a project with the given inclusive date range.
func NewProject(code, name string, start, end time.Time) *Project {
	return &Project{
		Code:      code,
		Name:      name,
		Start:     start,
		End:       end,
		committed: map[int]int{},
	}
}

// Commitments returns a copy of the accumulated hours-per-day pledges,
// keyed by employee number.
func (p *Project) Commitments() map[int]int {
	out := make(map[int]int, len(p.committed))
	for number, hours := range p.committed {
		out[number] = hours
	}
	return out
}

// CommittedHours returns the accumulated hours per day the given
// employee has pledged to this project.
func (p *Project) CommittedHours(employeeNumber int) (int, bool) {
	hours, ok := p.committed[employeeNumber]
	return hours, ok
}

// WorkingDays returns every calendar date in the project's range,
// weekends excluded, in chronological order.
func (p *Project) WorkingDays() []time.Time {
	var days []time.Time
	for d := p.Start; !d.After(p.End); d = d.AddDate(0, 0, 1) {
		if isWeekend(d.Weekday()) {
			continue
		}
		days = append(days, d)
	}
	return days
}

// NumWorkingDays counts the project's working days.
func (p *Project) NumWorkingDays() int {
	count := 0
	for d := p.Start; !d.After(p.End); d = d.AddDate(0, 0, 1) {
		if !isWeekend(d.Weekday()) {
			count++
		}
	}
	return count
}

func (p *Project) addCommitment(employeeNumber, hoursPerDay int) {
	if p.committed == nil {
		p.committed = map[int]int{}
	}
	p.committed[employeeNumber] += hoursPerDay
}

func isWeekend(day time.Weekday) bool {
	return day == time.Saturday || day == time.Sunday
}
