package challenges

import (
	"testing"

	"github.com/asengupta/cyberquest/internal/catalog"
)

func TestCompleteTaskOnce(t *testing.T) {
	p := NewTrackProgress()

	if !p.Complete(catalog.CategoryVulnerabilityScan, "vuln-1") {
		t.Fatal("first completion should succeed")
	}
	if !p.IsTaskComplete(catalog.CategoryVulnerabilityScan, "vuln-1") {
		t.Error("task should be marked complete")
	}

	// Duplicate completion is rejected.
	if p.Complete(catalog.CategoryVulnerabilityScan, "vuln-1") {
		t.Error("duplicate completion should be a no-op")
	}
	if p.CountFor(catalog.CategoryVulnerabilityScan) != 1 {
		t.Errorf("count = %d, want 1", p.CountFor(catalog.CategoryVulnerabilityScan))
	}
}

func TestCategoriesAreIndependent(t *testing.T) {
	p := NewTrackProgress()
	p.Complete(catalog.CategorySecureCoding, "code-1")

	if p.IsTaskComplete(catalog.CategoryVulnerabilityScan, "code-1") {
		t.Error("completion must be scoped to its category")
	}
	if p.CountFor(catalog.CategoryIncidentResponse) != 0 {
		t.Error("untouched category should be empty")
	}
}

func TestCompletedTasksSorted(t *testing.T) {
	p := NewTrackProgress()
	p.Complete(catalog.CategorySecureCoding, "code-3")
	p.Complete(catalog.CategorySecureCoding, "code-1")
	p.Complete(catalog.CategorySecureCoding, "code-2")

	got := p.CompletedTasks(catalog.CategorySecureCoding)
	want := []string{"code-1", "code-2", "code-3"}
	if len(got) != len(want) {
		t.Fatalf("tasks = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("tasks[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestRestoreIsIdempotent(t *testing.T) {
	p := NewTrackProgress()
	p.Restore(catalog.CategoryIncidentResponse, []string{"incident-1", "incident-1", "incident-2"})

	if p.CountFor(catalog.CategoryIncidentResponse) != 2 {
		t.Errorf("count = %d, want 2", p.CountFor(catalog.CategoryIncidentResponse))
	}
	if p.Complete(catalog.CategoryIncidentResponse, "incident-1") {
		t.Error("restored task should reject re-completion")
	}
}

func TestCompletedTasksEmpty(t *testing.T) {
	p := NewTrackProgress()
	if got := p.CompletedTasks(catalog.CategoryVulnerabilityScan); got != nil {
		t.Errorf("tasks = %v, want nil", got)
	}
}
