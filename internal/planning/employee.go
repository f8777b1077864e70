package planning

import "sort"

// Employee is a registered worker with an hourly wage. Identity is the
// employee number: two employees with the same number are the same
// employee regardless of the other fields, and the first registered
// instance wins on conflict.
type Employee struct {
	Number     int
	Name       string
	HourlyWage int

	managed map[string]struct{}
}

// NewEmployee creates an employee that is not yet registered anywhere.
func NewEmployee(number int, name string, hourlyWage int) *Employee {
	return &Employee{
		Number:     number,
		Name:       name,
		HourlyWage: hourlyWage,
		managed:    map[string]struct{}{},
	}
}

// Manages reports whether this employee manages the project with the
// given code.
func (e *Employee) Manages(code string) bool {
	if e == nil {
		return false
	}
	_, ok := e.managed[code]
	return ok
}

// ManagedProjects returns the codes of all projects managed by this
// employee, sorted.
func (e *Employee) ManagedProjects() []string {
	if e == nil || len(e.managed) == 0 {
		return nil
	}
	codes := make([]string, 0, len(e.managed))
	for code := range e.managed {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

func (e *Employee) addManagedProject(code string) {
	if e.managed == nil {
		e.managed = map[string]struct{}{}
	}
	e.managed[code] = struct{}{}
}
