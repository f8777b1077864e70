package planning

import (
	"testing"
	"time"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func TestWorkingDaysExcludesWeekends(t *testing.T) {
	// Monday 2023-01-02 through Sunday 2023-01-08.
	p := NewProject("P1", "Week", date(2023, time.January, 2), date(2023, time.January, 8))
	days := p.WorkingDays()
	if len(days) != 5 {
		t.Fatalf("len(days) = %d, want 5", len(days))
	}
	for _, d := range days {
		if d.Weekday() == time.Saturday || d.Weekday() == time.Sunday {
			t.Fatalf("working days include weekend date %s", d.Format("2006-01-02"))
		}
	}
	if !days[0].Equal(date(2023, time.January, 2)) {
		t.Fatalf("first working day = %s, want 2023-01-02", days[0].Format("2006-01-02"))
	}
	if !days[4].Equal(date(2023, time.January, 6)) {
		t.Fatalf("last working day = %s, want 2023-01-06", days[4].Format("2006-01-02"))
	}
}

func TestNumWorkingDaysInclusiveRange(t *testing.T) {
	// A single Monday counts; a single Saturday does not.
	monday := NewProject("P1", "", date(2023, time.January, 2), date(2023, time.January, 2))
	if got := monday.NumWorkingDays(); got != 1 {
		t.Fatalf("single Monday working days = %d, want 1", got)
	}
	saturday := NewProject("P2", "", date(2023, time.January, 7), date(2023, time.January, 7))
	if got := saturday.NumWorkingDays(); got != 0 {
		t.Fatalf("single Saturday working days = %d, want 0", got)
	}
}

func TestWorkingDaysEmptyWhenEndBeforeStart(t *testing.T) {
	p := NewProject("P1", "", date(2023, time.January, 13), date(2023, time.January, 2))
	if days := p.WorkingDays(); len(days) != 0 {
		t.Fatalf("len(days) = %d, want 0", len(days))
	}
	if got := p.NumWorkingDays(); got != 0 {
		t.Fatalf("NumWorkingDays = %d, want 0", got)
	}
}

func TestCommitmentsReturnsCopy(t *testing.T) {
	p := NewProject("P1", "", date(2023, time.January, 2), date(2023, time.January, 13))
	p.addCommitment(1, 4)
	commitments := p.Commitments()
	commitments[1] = 99
	if hours, _ := p.CommittedHours(1); hours != 4 {
		t.Fatalf("committed hours = %d, want 4 after mutating the copy", hours)
	}
}
