package planning

// Builder assembles a Registry from discrete facts. Adding the same
// employee or project twice is safe (the first registered instance is
// kept), while commitments accumulate: registering hours twice for the
// same employee and project sums them.
//
// A commitment that references an unknown project code or employee
// number is dropped without error; callers that need to know about
// drops can check DroppedCommitments afterwards.
type Builder struct {
	registry *Registry
	dropped  int
}

// NewBuilder starts an empty registry for the given source name and
// planning year.
func NewBuilder(name string, planningYear int) *Builder {
	return &Builder{registry: newRegistry(name, planningYear)}
}

// AddEmployee registers the employee unless its number is already
// taken, in which case the existing instance is kept unchanged.
func (b *Builder) AddEmployee(employee *Employee) *Builder {
	if employee != nil {
		b.addOrGetEmployee(employee)
	}
	return b
}

// AddProject registers the project and records the manager as its
// manager. The manager is registered as an employee first, subject to
// the same number dedup as AddEmployee.
func (b *Builder) AddProject(project *Project, manager *Employee) *Builder {
	if project == nil || manager == nil {
		return b
	}
	kept := b.addOrGetProject(project)
	b.addOrGetEmployee(manager).addManagedProject(kept.Code)
	return b
}

// AddCommitment adds hoursPerDay to the hours the identified employee
// has already pledged to the identified project. Unresolvable
// references make the call a no-op.
func (b *Builder) AddCommitment(projectCode string, employeeNumber, hoursPerDay int) *Builder {
	project, ok := b.registry.projects[projectCode]
	if !ok {
		b.dropped++
		return b
	}
	if _, ok := b.registry.employees[employeeNumber]; !ok {
		b.dropped++
		return b
	}
	project.addCommitment(employeeNumber, hoursPerDay)
	return b
}

// DroppedCommitments reports how many AddCommitment calls were dropped
// because a reference did not resolve.
func (b *Builder) DroppedCommitments() int { return b.dropped }

// Build returns the assembled registry. Calling Build more than once
// returns the same instance; the builder does not start over.
func (b *Builder) Build() *Registry {
	return b.registry
}

func (b *Builder) addOrGetEmployee(employee *Employee) *Employee {
	if existing, ok := b.registry.employees[employee.Number]; ok {
		return existing
	}
	b.registry.employees[employee.Number] = employee
	return employee
}

func (b *Builder) addOrGetProject(project *Project) *Project {
	if existing, ok := b.registry.projects[project.Code]; ok {
		return existing
	}
	b.registry.projects[project.Code] = project
	return project
}
