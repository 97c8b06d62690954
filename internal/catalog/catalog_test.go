package catalog

import "testing"

func TestExerciseCatalogOrder(t *testing.T) {
	exercises := Exercises()
	if len(exercises) != 5 {
		t.Fatalf("exercise count = %d, want 5", len(exercises))
	}
	if ExerciseCount() != len(exercises) {
		t.Errorf("ExerciseCount = %d, want %d", ExerciseCount(), len(exercises))
	}

	for i, ex := range exercises {
		got, ok := ExerciseAt(i)
		if !ok {
			t.Fatalf("ExerciseAt(%d) not found", i)
		}
		if got.ID != ex.ID {
			t.Errorf("ExerciseAt(%d).ID = %q, want %q", i, got.ID, ex.ID)
		}
	}

	if _, ok := ExerciseAt(-1); ok {
		t.Error("ExerciseAt(-1) should be out of range")
	}
	if _, ok := ExerciseAt(len(exercises)); ok {
		t.Error("ExerciseAt(len) should be out of range")
	}
}

func TestEveryCategoryHasChallenge(t *testing.T) {
	for _, cat := range AllCategories() {
		challenges := ChallengesFor(cat)
		if len(challenges) == 0 {
			t.Errorf("category %s has no weekly challenge", cat)
			continue
		}
		for _, ch := range challenges {
			if ch.Target <= 0 {
				t.Errorf("challenge %s target = %d, want > 0", ch.ID, ch.Target)
			}
			if ch.XPReward < 0 {
				t.Errorf("challenge %s xpReward = %d, want >= 0", ch.ID, ch.XPReward)
			}
		}
	}
}

func TestThreatDetectionChallengeMatchesExercises(t *testing.T) {
	// The threat detection weekly target is one full pass through the
	// exercise sequence.
	challenges := ChallengesFor(CategoryThreatDetection)
	if len(challenges) != 1 {
		t.Fatalf("threat-detection challenges = %d, want 1", len(challenges))
	}
	if challenges[0].Target != ExerciseCount() {
		t.Errorf("target = %d, want %d", challenges[0].Target, ExerciseCount())
	}
}

func TestTrackCoverage(t *testing.T) {
	// Threat detection has no track; the other three categories do.
	if TrackFor(CategoryThreatDetection) != nil {
		t.Error("threat-detection should have no track")
	}
	for _, cat := range []Category{CategoryVulnerabilityScan, CategorySecureCoding, CategoryIncidentResponse} {
		tr := TrackFor(cat)
		if tr == nil {
			t.Errorf("category %s has no track", cat)
			continue
		}
		if len(tr.Tasks) == 0 {
			t.Errorf("track %s has no tasks", cat)
		}
	}
}

func TestTaskReward(t *testing.T) {
	tests := []struct {
		taskID string
		want   int
		known  bool
	}{
		{"vuln-1", 100, true},
		{"vuln-2", 150, true},
		{"vuln-3", 200, true},
		{"code-4", 200, true},
		{"incident-2", 250, true},
		{"no-such-task", DefaultTaskXP, false},
	}

	for _, tt := range tests {
		got, known := TaskReward(tt.taskID)
		if got != tt.want || known != tt.known {
			t.Errorf("TaskReward(%q) = (%d, %v), want (%d, %v)", tt.taskID, got, known, tt.want, tt.known)
		}
	}
}

func TestTaskCategory(t *testing.T) {
	cat, ok := TaskCategory("code-2")
	if !ok || cat != CategorySecureCoding {
		t.Errorf("TaskCategory(code-2) = (%s, %v), want (%s, true)", cat, ok, CategorySecureCoding)
	}
	if _, ok := TaskCategory("bogus"); ok {
		t.Error("TaskCategory(bogus) should be unknown")
	}
}

func TestParseCategory(t *testing.T) {
	for _, cat := range AllCategories() {
		got, err := ParseCategory(string(cat))
		if err != nil || got != cat {
			t.Errorf("ParseCategory(%q) = (%s, %v)", cat, got, err)
		}
	}
	if _, err := ParseCategory("threat_detection"); err == nil {
		t.Error("ParseCategory should reject unknown strings")
	}
}

func TestTrackTotalXP(t *testing.T) {
	tr := TrackFor(CategoryVulnerabilityScan)
	if tr == nil {
		t.Fatal("missing vulnerability-scan track")
	}
	if got := tr.TotalXP(); got != 450 {
		t.Errorf("TotalXP = %d, want 450", got)
	}
}

func TestModules(t *testing.T) {
	modules := Modules()
	if len(modules) != 5 {
		t.Fatalf("module count = %d, want 5", len(modules))
	}
	for i, m := range modules {
		if m.ID != i+1 {
			t.Errorf("module %d has id %d, want %d", i, m.ID, i+1)
		}
	}
}
