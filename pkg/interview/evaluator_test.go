package interview

import (
	"context"
	"strings"
	"testing"

	"ai-interview-be/internal/pkg/logger"
)

func TestParseEvaluation(t *testing.T) {
	tests := []struct {
		name         string
		response     string
		wantScore    float64
		wantPassed   bool
		wantFeedback string
	}{
		{
			name:         "well formed",
			response:     "SCORE: 85\nPASSED: true\nFEEDBACK: Strong STAR answers with concrete results.",
			wantScore:    85,
			wantPassed:   true,
			wantFeedback: "Strong STAR answers with concrete results.",
		},
		{
			name:         "fraction score",
			response:     "SCORE: 62/100\nPASSED: true\nFEEDBACK: Needs deeper complexity analysis.",
			wantScore:    62,
			wantPassed:   false, // pass flag is recomputed from the score
			wantFeedback: "Needs deeper complexity analysis.",
		},
		{
			name:         "multiline feedback",
			response:     "SCORE: 74\nPASSED: true\nFEEDBACK: Good structure.\nCould improve on edge cases.",
			wantScore:    74,
			wantPassed:   true,
			wantFeedback: "Good structure. Could improve on edge cases.",
		},
		{
			name:         "garbage",
			response:     "I think the candidate did fine overall.",
			wantScore:    0,
			wantPassed:   false,
			wantFeedback: "Unable to generate feedback.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parseEvaluation(tt.response)
			if got.Score != tt.wantScore {
				t.Errorf("score = %v, want %v", got.Score, tt.wantScore)
			}
			if got.Passed != tt.wantPassed {
				t.Errorf("passed = %v, want %v", got.Passed, tt.wantPassed)
			}
			if got.Feedback != tt.wantFeedback {
				t.Errorf("feedback = %q, want %q", got.Feedback, tt.wantFeedback)
			}
		})
	}
}

func TestEvaluateEmptyTranscript(t *testing.T) {
	state := NewState("session-1", 5, 20)
	ev := NewEvaluator(&fakeLLM{tokens: []string{"SCORE: 90"}}, logger.NopLogger{})

	result, err := ev.Evaluate(context.Background(), state)
	if err != nil {
		t.Fatalf("Evaluate error: %v", err)
	}
	if result.Passed || result.Score != 0 {
		t.Errorf("empty interview scored %+v", result)
	}
	if !strings.Contains(result.Feedback, "No interview content") {
		t.Errorf("feedback = %q", result.Feedback)
	}
}

func TestEvaluateParsesModelVerdict(t *testing.T) {
	state := NewState("session-1", 5, 20)
	state.AddMessage(RoleInterviewer, "Tell me about a challenge you faced.")
	state.AddMessage(RoleCandidate, "I led the migration of our billing system.")

	model := &fakeLLM{tokens: []string{"SCORE: 82\nPASSED: true\nFEEDBACK: Clear, outcome-focused answers."}}
	ev := NewEvaluator(model, logger.NopLogger{})

	result, err := ev.Evaluate(context.Background(), state)
	if err != nil {
		t.Fatalf("Evaluate error: %v", err)
	}
	if result.Score != 82 || !result.Passed {
		t.Errorf("result = %+v", result)
	}
	if result.Round != 1 {
		t.Errorf("round = %d, want 1", result.Round)
	}
}
