package coding

import (
	"context"
	"testing"

	"ai-interview-be/internal/pkg/logger"
	"ai-interview-be/pkg/llm"
)

type stubLLM struct {
	response string
	err      error
}

func (s *stubLLM) Chat(ctx context.Context, history []llm.Message, options ...llm.Option) (string, error) {
	return s.response, s.err
}

func (s *stubLLM) ChatStream(ctx context.Context, history []llm.Message, options ...llm.Option) (<-chan llm.StreamDelta, error) {
	ch := make(chan llm.StreamDelta, 1)
	ch <- llm.StreamDelta{Text: s.response}
	close(ch)
	return ch, s.err
}

func (s *stubLLM) Generate(ctx context.Context, prompt string, options ...llm.Option) (string, error) {
	return s.response, s.err
}

func TestParseCodeEvaluation(t *testing.T) {
	tests := []struct {
		name            string
		response        string
		wantCorrect     bool
		wantScore       float64
		wantFeedback    string
		wantCorrectness int
	}{
		{
			name: "well formed verdict",
			response: `CORRECT: true
CORRECTNESS_SCORE: 90
EDGE_CASE_SCORE: 80
CODE_QUALITY_SCORE: 85
COMPLEXITY_SCORE: 75
OVERALL_SCORE: 85
FEEDBACK: Solid solution with optimal complexity.`,
			wantCorrect:     true,
			wantScore:       85,
			wantFeedback:    "Solid solution with optimal complexity.",
			wantCorrectness: 90,
		},
		{
			name: "fractional score notation",
			response: `CORRECT: true
CORRECTNESS_SCORE: 88/100
OVERALL_SCORE: 82/100
FEEDBACK: Good work.`,
			wantCorrect:     true,
			wantScore:       82,
			wantFeedback:    "Good work.",
			wantCorrectness: 88,
		},
		{
			name: "missing overall falls back to weighted average",
			response: `CORRECT: true
CORRECTNESS_SCORE: 80
EDGE_CASE_SCORE: 60
CODE_QUALITY_SCORE: 70
COMPLEXITY_SCORE: 50
FEEDBACK: Handles the happy path only.`,
			// 80*0.4 + 60*0.2 + 70*0.2 + 50*0.2 = 68
			wantCorrect:     true,
			wantScore:       68,
			wantFeedback:    "Handles the happy path only.",
			wantCorrectness: 80,
		},
		{
			name: "high scores force correct despite verdict",
			response: `CORRECT: false
CORRECTNESS_SCORE: 90
EDGE_CASE_SCORE: 80
CODE_QUALITY_SCORE: 80
COMPLEXITY_SCORE: 80
OVERALL_SCORE: 85
FEEDBACK: The solution is actually right.`,
			wantCorrect:     true,
			wantScore:       85,
			wantFeedback:    "The solution is actually right.",
			wantCorrectness: 90,
		},
		{
			name: "low correctness forces incorrect despite verdict",
			response: `CORRECT: true
CORRECTNESS_SCORE: 30
EDGE_CASE_SCORE: 40
CODE_QUALITY_SCORE: 60
COMPLEXITY_SCORE: 50
OVERALL_SCORE: 40
FEEDBACK: Fails on most inputs.`,
			wantCorrect:     false,
			wantScore:       40,
			wantFeedback:    "Fails on most inputs.",
			wantCorrectness: 30,
		},
		{
			name: "multiline feedback is joined",
			response: `CORRECT: true
OVERALL_SCORE: 75
CORRECTNESS_SCORE: 75
FEEDBACK: The approach works.
Consider using a hash map
to avoid the nested loop.`,
			wantCorrect:     true,
			wantScore:       75,
			wantFeedback:    "The approach works. Consider using a hash map to avoid the nested loop.",
			wantCorrectness: 75,
		},
		{
			name:         "garbage response yields defaults",
			response:     "I cannot evaluate this code.",
			wantCorrect:  false,
			wantScore:    0,
			wantFeedback: "Unable to generate feedback.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parseCodeEvaluation(tt.response)
			if got.Correct != tt.wantCorrect {
				t.Errorf("Correct = %v, want %v", got.Correct, tt.wantCorrect)
			}
			if got.Score != tt.wantScore {
				t.Errorf("Score = %v, want %v", got.Score, tt.wantScore)
			}
			if got.Feedback != tt.wantFeedback {
				t.Errorf("Feedback = %q, want %q", got.Feedback, tt.wantFeedback)
			}
			if got.Analysis.Correctness != tt.wantCorrectness {
				t.Errorf("Correctness = %d, want %d", got.Analysis.Correctness, tt.wantCorrectness)
			}
		})
	}
}

func TestEvaluateParsesModelVerdict(t *testing.T) {
	model := &stubLLM{response: `CORRECT: true
CORRECTNESS_SCORE: 95
EDGE_CASE_SCORE: 85
CODE_QUALITY_SCORE: 90
COMPLEXITY_SCORE: 90
OVERALL_SCORE: 91
FEEDBACK: Clean single-pass hash map solution.`}
	evaluator := NewEvaluator(model, logger.NopLogger{})

	problem, ok := GetProblem("two-sum")
	if !ok {
		t.Fatal("two-sum missing from problem bank")
	}

	result, err := evaluator.Evaluate(context.Background(), problem, "def two_sum(nums, target): ...", "python")
	if err != nil {
		t.Fatalf("Evaluate() error = %v", err)
	}
	if !result.Correct {
		t.Error("expected a correct verdict")
	}
	if result.Score != 91 {
		t.Errorf("Score = %v, want 91", result.Score)
	}
	if result.Analysis.EdgeCaseHandling != 85 {
		t.Errorf("EdgeCaseHandling = %d, want 85", result.Analysis.EdgeCaseHandling)
	}
}
