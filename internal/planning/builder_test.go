package planning

import (
	"testing"
	"time"
)

func TestAddEmployeeKeepsFirstInstance(t *testing.T) {
	b := NewBuilder("test", 2023)
	b.AddEmployee(NewEmployee(1, "Ann", 20))
	b.AddEmployee(NewEmployee(1, "Impostor", 99))

	reg := b.Build()
	if got := reg.NumEmployees(); got != 1 {
		t.Fatalf("NumEmployees = %d, want 1", got)
	}
	e, ok := reg.Employee(1)
	if !ok {
		t.Fatalf("employee 1 not registered")
	}
	if e.Name != "Ann" || e.HourlyWage != 20 {
		t.Fatalf("first-registered instance lost: got %s/%d", e.Name, e.HourlyWage)
	}
}

func TestAddProjectRegistersManager(t *testing.T) {
	b := NewBuilder("test", 2023)
	ann := NewEmployee(1, "Ann", 20)
	p := NewProject("P1", "Website", date(2023, time.January, 2), date(2023, time.January, 13))
	b.AddProject(p, ann)

	reg := b.Build()
	if _, ok := reg.Project("P1"); !ok {
		t.Fatalf("project P1 not registered")
	}
	manager, ok := reg.Employee(1)
	if !ok {
		t.Fatalf("manager not registered as employee")
	}
	if !manager.Manages("P1") {
		t.Fatalf("manager does not manage P1")
	}
}

func TestAddProjectDedupsByCodeAndManagerByNumber(t *testing.T) {
	b := NewBuilder("test", 2023)
	ann := NewEmployee(1, "Ann", 20)
	b.AddEmployee(ann)

	first := NewProject("P1", "Website", date(2023, time.January, 2), date(2023, time.January, 13))
	second := NewProject("P1", "Replacement", date(2023, time.June, 1), date(2023, time.June, 30))
	b.AddProject(first, NewEmployee(1, "Duplicate Ann", 99))
	b.AddProject(second, ann)

	reg := b.Build()
	if got := reg.NumProjects(); got != 1 {
		t.Fatalf("NumProjects = %d, want 1", got)
	}
	p, _ := reg.Project("P1")
	if p.Name != "Website" {
		t.Fatalf("first-registered project lost: got %q", p.Name)
	}
	e, _ := reg.Employee(1)
	if e.Name != "Ann" {
		t.Fatalf("first-registered employee lost: got %q", e.Name)
	}
	if !e.Manages("P1") {
		t.Fatalf("existing employee instance did not receive the managed project")
	}
}

func TestAddCommitmentAccumulates(t *testing.T) {
	b := NewBuilder("test", 2023)
	b.AddEmployee(NewEmployee(1, "Ann", 20))
	b.AddProject(NewProject("P1", "", date(2023, time.January, 2), date(2023, time.January, 13)), NewEmployee(2, "Bo", 30))

	b.AddCommitment("P1", 1, 4)
	b.AddCommitment("P1", 1, 2)

	p, _ := b.Build().Project("P1")
	if hours, ok := p.CommittedHours(1); !ok || hours != 6 {
		t.Fatalf("committed hours = %d (present %v), want 6", hours, ok)
	}
}

func TestAddCommitmentDropsUnresolvedReferences(t *testing.T) {
	b := NewBuilder("test", 2023)
	b.AddEmployee(NewEmployee(1, "Ann", 20))
	b.AddProject(NewProject("P1", "", date(2023, time.January, 2), date(2023, time.January, 13)), NewEmployee(2, "Bo", 30))

	b.AddCommitment("NOPE", 1, 4)
	b.AddCommitment("P1", 42, 4)

	reg := b.Build()
	p, _ := reg.Project("P1")
	if got := len(p.Commitments()); got != 0 {
		t.Fatalf("commitments = %d, want 0", got)
	}
	if got := b.DroppedCommitments(); got != 2 {
		t.Fatalf("DroppedCommitments = %d, want 2", got)
	}
}

func TestBuildReturnsSameRegistry(t *testing.T) {
	b := NewBuilder("test", 2023)
	if b.Build() != b.Build() {
		t.Fatalf("Build returned different registries")
	}
}

func TestRegistryCanonicalOrdering(t *testing.T) {
	b := NewBuilder("test", 2023)
	b.AddEmployee(NewEmployee(3, "Cas", 25))
	b.AddEmployee(NewEmployee(1, "Ann", 20))
	b.AddEmployee(NewEmployee(2, "Bo", 30))
	manager := NewEmployee(1, "Ann", 20)
	b.AddProject(NewProject("B2", "", date(2023, time.March, 1), date(2023, time.March, 31)), manager)
	b.AddProject(NewProject("A1", "", date(2023, time.January, 2), date(2023, time.January, 13)), manager)

	reg := b.Build()
	employees := reg.Employees()
	for i, want := range []int{1, 2, 3} {
		if employees[i].Number != want {
			t.Fatalf("employees[%d].Number = %d, want %d", i, employees[i].Number, want)
		}
	}
	projects := reg.Projects()
	for i, want := range []string{"A1", "B2"} {
		if projects[i].Code != want {
			t.Fatalf("projects[%d].Code = %s, want %s", i, projects[i].Code, want)
		}
	}
}
