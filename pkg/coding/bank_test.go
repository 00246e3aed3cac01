package coding

import "testing"

func TestGetProblem(t *testing.T) {
	problem, ok := GetProblem("two-sum")
	if !ok {
		t.Fatal("two-sum missing from problem bank")
	}
	if problem.Title != "Two Sum" {
		t.Errorf("Title = %q, want Two Sum", problem.Title)
	}

	if _, ok := GetProblem("no-such-problem"); ok {
		t.Error("expected lookup miss for unknown id")
	}
}

func TestProblemBankSize(t *testing.T) {
	if got := len(AllProblems()); got != 19 {
		t.Errorf("bank holds %d problems, want 19", got)
	}
	for _, id := range []string{"word-ladder", "serialize-binary-tree", "merge-k-sorted-lists", "three-sum"} {
		if _, ok := GetProblem(id); !ok {
			t.Errorf("%s missing from problem bank", id)
		}
	}
}

func TestProblemBankCoversAllLanguages(t *testing.T) {
	for _, problem := range AllProblems() {
		for language := range SupportedLanguages {
			if _, ok := problem.StarterCode[language]; !ok {
				t.Errorf("%s: missing starter code for %s", problem.ID, language)
			}
		}
	}
}

func TestProblemsByDifficulty(t *testing.T) {
	tests := []struct {
		difficulty string
		want       int
	}{
		{"easy", 5},
		{"medium", 9},
		{"hard", 5},
	}
	for _, tt := range tests {
		got := ProblemsByDifficulty(tt.difficulty)
		if len(got) != tt.want {
			t.Errorf("ProblemsByDifficulty(%q) = %d problems, want %d", tt.difficulty, len(got), tt.want)
		}
		for _, p := range got {
			if p.Difficulty != tt.difficulty {
				t.Errorf("%s: difficulty %q leaked into %q pool", p.ID, p.Difficulty, tt.difficulty)
			}
		}
	}
}

func TestProblemsByTags(t *testing.T) {
	got := ProblemsByTags([]string{"stack"})
	ids := make(map[string]bool, len(got))
	for _, p := range got {
		ids[p.ID] = true
	}
	for _, want := range []string{"valid-parentheses", "trapping-rain-water"} {
		if !ids[want] {
			t.Errorf("expected %s in stack-tagged problems", want)
		}
	}
}

func TestLanguageSupported(t *testing.T) {
	if !LanguageSupported("python") {
		t.Error("python should be supported")
	}
	if !LanguageSupported("Go") {
		t.Error("language check should be case insensitive")
	}
	if LanguageSupported("cobol") {
		t.Error("cobol should not be supported")
	}
}
