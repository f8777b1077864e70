// Package planning holds the in-memory project planning model: employees,
// projects, the registry that owns both, and the builder that assembles a
// consistent registry from discrete facts.
package planning

import "sort"

// Registry is the fully assembled, queryable planning model. Employees
// are unique by number, projects by code. Every employee referenced by
// a commitment or a managed-project relation is a member of the
// employee set; the Builder is the only way to get a Registry, which is
// how that invariant is kept.
type Registry struct {
	name         string
	planningYear int
	employees    map[int]*Employee
	projects     map[string]*Project
}

func newRegistry(name string, planningYear int) *Registry {
	return &Registry{
		name:         name,
		planningYear: planningYear,
		employees:    map[int]*Employee{},
		projects:     map[string]*Project{},
	}
}

// Name returns the source identifier of this registry.
func (r *Registry) Name() string { return r.name }

// PlanningYear returns the year the project planning covers.
func (r *Registry) PlanningYear() int { return r.planningYear }

// Employees returns all registered employees in canonical order, by
// ascending employee number.
func (r *Registry) Employees() []*Employee {
	out := make([]*Employee, 0, len(r.employees))
	for _, e := range r.employees {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Number < out[j].Number })
	return out
}

// Projects returns all registered projects in canonical order, by
// ascending project code.
func (r *Registry) Projects() []*Project {
	out := make([]*Project, 0, len(r.projects))
	for _, p := range r.projects {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Code < out[j].Code })
	return out
}

// Employee looks up a registered employee by number.
func (r *Registry) Employee(number int) (*Employee, bool) {
	e, ok := r.employees[number]
	return e, ok
}

// Project looks up a registered project by code.
func (r *Registry) Project(code string) (*Project, bool) {
	p, ok := r.projects[code]
	return p, ok
}

// NumEmployees returns the size of the employee set.
func (r *Registry) NumEmployees() int { return len(r.employees) }

// NumProjects returns the size of the project set.
func (r *Registry) NumProjects() int { return len(r.projects) }
