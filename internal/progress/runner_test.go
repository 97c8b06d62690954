package progress

import "testing"

func TestFullPass(t *testing.T) {
	r := NewRunner(5, 0)

	if !r.ContinueChallenge() {
		t.Fatal("continue on fresh runner should open an exercise")
	}
	if idx, ok := r.Active(); !ok || idx != 0 {
		t.Fatalf("active = (%d, %v), want (0, true)", idx, ok)
	}

	for i := 0; i < 5; i++ {
		// Order invariant: active index always equals completed count.
		idx, ok := r.Active()
		if !ok || idx != r.CompletedCount() {
			t.Fatalf("step %d: active = (%d, %v), completed = %d", i, idx, ok, r.CompletedCount())
		}

		res, ok := r.CompleteExercise()
		if !ok {
			t.Fatalf("step %d: complete failed", i)
		}
		wantDone := i == 4
		if res.SequenceDone != wantDone {
			t.Errorf("step %d: SequenceDone = %v, want %v", i, res.SequenceDone, wantDone)
		}
	}

	if r.CompletedCount() != 5 {
		t.Errorf("completed = %d, want 5", r.CompletedCount())
	}
	if _, ok := r.Active(); ok {
		t.Error("no exercise should be active after the last completion")
	}
	if !r.Done() {
		t.Error("Done should report true")
	}
}

func TestContinueAtEndIsNoop(t *testing.T) {
	r := NewRunner(2, 2)
	if r.ContinueChallenge() {
		t.Error("continue past the end should be a no-op")
	}
	if _, ok := r.Active(); ok {
		t.Error("no exercise should open past the end")
	}
}

func TestCompleteWithoutActive(t *testing.T) {
	r := NewRunner(3, 0)
	if _, ok := r.CompleteExercise(); ok {
		t.Error("complete without an active exercise should be a no-op")
	}
	if r.CompletedCount() != 0 {
		t.Errorf("completed = %d, want 0", r.CompletedCount())
	}
}

func TestBackPreservesProgress(t *testing.T) {
	r := NewRunner(3, 0)
	r.ContinueChallenge()
	r.CompleteExercise() // completed=1, active=1

	r.Back()
	if _, ok := r.Active(); ok {
		t.Error("back should clear the active exercise")
	}
	if r.CompletedCount() != 1 {
		t.Errorf("completed = %d, want 1", r.CompletedCount())
	}

	// Resumable exactly where we left off.
	if !r.ContinueChallenge() {
		t.Fatal("continue after back should reopen")
	}
	if idx, _ := r.Active(); idx != 1 {
		t.Errorf("active = %d, want 1", idx)
	}
}

func TestRestart(t *testing.T) {
	r := NewRunner(2, 2)
	r.Restart()

	if r.CompletedCount() != 0 {
		t.Errorf("completed = %d, want 0 after restart", r.CompletedCount())
	}
	if _, ok := r.Active(); ok {
		t.Error("restart should clear the active exercise")
	}
	if !r.ContinueChallenge() {
		t.Error("continue after restart should open exercise 0")
	}
}

func TestHydrateClampsCount(t *testing.T) {
	r := NewRunner(3, 10)
	if r.CompletedCount() != 3 {
		t.Errorf("completed = %d, want clamped to 3", r.CompletedCount())
	}
	r = NewRunner(3, -2)
	if r.CompletedCount() != 0 {
		t.Errorf("completed = %d, want clamped to 0", r.CompletedCount())
	}
}

func TestMonotonicCompletedCount(t *testing.T) {
	r := NewRunner(4, 0)
	prev := 0
	ops := []func(){
		func() { r.ContinueChallenge() },
		func() { r.CompleteExercise() },
		func() { r.Back() },
		func() { r.ContinueChallenge() },
		func() { r.CompleteExercise() },
		func() { r.CompleteExercise() },
	}
	for i, op := range ops {
		op()
		if r.CompletedCount() < prev {
			t.Fatalf("op %d: completed count decreased %d -> %d", i, prev, r.CompletedCount())
		}
		prev = r.CompletedCount()
	}
}
