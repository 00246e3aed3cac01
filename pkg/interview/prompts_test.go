package interview

import (
	"strings"
	"testing"
)

func TestRoundsForMode(t *testing.T) {
	cases := []struct {
		mode string
		want []int
	}{
		{"full", []int{1, 2, 3}},
		{"behavioral", []int{1}},
		{"coding", []int{2}},
		{"system_design", []int{3}},
		{"unknown", []int{1}},
		{"", []int{1}},
	}

	for _, tc := range cases {
		got := RoundsForMode(tc.mode)
		if len(got) != len(tc.want) {
			t.Errorf("RoundsForMode(%q) = %v, want %v", tc.mode, got, tc.want)
			continue
		}
		for i := range got {
			if got[i] != tc.want[i] {
				t.Errorf("RoundsForMode(%q) = %v, want %v", tc.mode, got, tc.want)
				break
			}
		}
	}
}

func TestRoundConfigForUnknownDefaultsToBehavioral(t *testing.T) {
	cfg := RoundConfigFor(99)
	if cfg.Type != "behavioral" {
		t.Errorf("unexpected default round type %q", cfg.Type)
	}
}

func TestSystemPromptIncludesContext(t *testing.T) {
	state := NewState("session-1", 5, 20)
	state.CurrentRound = 2
	state.TargetRole = "backend"
	state.ResumeContext = "Name: Jane Doe\nSkills: Go, PostgreSQL"

	prompt := SystemPrompt(state)

	if !strings.Contains(prompt, "coding interview") {
		t.Error("prompt should name the round type")
	}
	if !strings.Contains(prompt, "Target Role: backend") {
		t.Error("prompt should carry the target role")
	}
	if !strings.Contains(prompt, "CANDIDATE'S RESUME") {
		t.Error("prompt should embed the resume context")
	}
	if !strings.Contains(prompt, "Jane Doe") {
		t.Error("prompt should include the resume text itself")
	}
}

func TestSystemPromptWithoutResume(t *testing.T) {
	state := NewState("session-2", 5, 20)
	if strings.Contains(SystemPrompt(state), "CANDIDATE'S RESUME") {
		t.Error("prompt should omit the resume section when no context is set")
	}
}

func TestResponsePromptSteersTowardWrapUp(t *testing.T) {
	state := NewState("session-3", 2, 20)
	state.Phase = PhaseMainQuestions
	state.QuestionsAsked = 2

	prompt := ResponsePrompt(state, "I optimized the query planner.")

	if !strings.Contains(prompt, "I optimized the query planner.") {
		t.Error("prompt should quote the candidate's answer")
	}
	if !strings.Contains(prompt, "wrapping up") {
		t.Error("prompt should steer toward wrap up once the question cap is reached")
	}
}

func TestResponsePromptUsesPhaseInstruction(t *testing.T) {
	state := NewState("session-4", 5, 20)
	state.Phase = PhaseWarmup

	prompt := ResponsePrompt(state, "Hello!")

	if !strings.Contains(prompt, PhaseInstruction(PhaseWarmup)) {
		t.Error("prompt should carry the current phase instruction")
	}
}
