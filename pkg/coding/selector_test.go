package coding

import (
	"testing"

	"ai-interview-be/internal/pkg/logger"
)

func TestSelectorDifficultyTracksExperience(t *testing.T) {
	tests := []struct {
		name           string
		experience     int
		wantDifficulty string
	}{
		{name: "entry level gets easy", experience: 0, wantDifficulty: "easy"},
		{name: "junior gets easy", experience: 1, wantDifficulty: "easy"},
		{name: "mid level gets medium", experience: 3, wantDifficulty: "medium"},
		{name: "senior gets medium", experience: 7, wantDifficulty: "medium"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			selector := NewSeededSelector(logger.NopLogger{}, 42)
			profile := &CandidateProfile{ExperienceCount: tt.experience}
			problem := selector.Select(profile, "", nil)
			if problem.Difficulty != tt.wantDifficulty {
				t.Errorf("Difficulty = %q, want %q (picked %s)", problem.Difficulty, tt.wantDifficulty, problem.ID)
			}
		})
	}
}

func TestSelectorExcludesSeenProblems(t *testing.T) {
	selector := NewSeededSelector(logger.NopLogger{}, 1)
	exclude := []string{"two-sum", "valid-parentheses", "reverse-linked-list"}

	// Only one easy problem remains after the exclusions.
	for i := 0; i < 10; i++ {
		problem := selector.Select(&CandidateProfile{ExperienceCount: 0}, "", exclude)
		if problem.ID != "max-subarray" {
			t.Fatalf("iteration %d: picked %s, want max-subarray", i, problem.ID)
		}
	}
}

func TestSelectorRoleTagsNarrowPool(t *testing.T) {
	selector := NewSeededSelector(logger.NopLogger{}, 99)
	allowed := map[string]bool{"longest-substring": true, "lru-cache": true}

	// Backend engineer at mid level: medium problems tagged design,
	// hash-table, linked-list or trees.
	for i := 0; i < 25; i++ {
		problem := selector.Select(&CandidateProfile{ExperienceCount: 4}, "Backend Engineer", nil)
		if !allowed[problem.ID] {
			t.Fatalf("iteration %d: picked %s, want one of longest-substring or lru-cache", i, problem.ID)
		}
	}
}

func TestSelectorFallsBackWhenPoolExhausted(t *testing.T) {
	selector := NewSeededSelector(logger.NopLogger{}, 7)
	var exclude []string
	for _, p := range AllProblems() {
		exclude = append(exclude, p.ID)
	}

	problem := selector.Select(&CandidateProfile{ExperienceCount: 2}, "Software Engineer", exclude)
	if problem.ID == "" {
		t.Fatal("expected a problem even with every id excluded")
	}
}

func TestSelectorNilProfile(t *testing.T) {
	selector := NewSeededSelector(logger.NopLogger{}, 3)
	problem := selector.Select(nil, "", nil)
	if problem.Difficulty != "easy" {
		t.Errorf("Difficulty = %q, want easy for an unknown candidate", problem.Difficulty)
	}
}
