package coding

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"ai-interview-be/internal/pkg/logger"
	"ai-interview-be/pkg/llm"
)

// Analysis breaks an evaluation down by criterion, each scored 0-100.
type Analysis struct {
	Correctness      int `json:"correctness"`
	EdgeCaseHandling int `json:"edge_case_handling"`
	CodeQuality      int `json:"code_quality"`
	Complexity       int `json:"complexity"`
}

// EvaluationResult is the reviewed outcome of a code submission.
type EvaluationResult struct {
	Correct  bool      `json:"correct"`
	Score    float64   `json:"score"`
	Feedback string    `json:"feedback"`
	Analysis *Analysis `json:"analysis,omitempty"`
}

// Evaluator reviews submitted code against the problem using the LLM.
type Evaluator struct {
	model llm.LLMProvider
	log   logger.ILogger
}

func NewEvaluator(model llm.LLMProvider, log logger.ILogger) *Evaluator {
	return &Evaluator{model: model, log: log}
}

func formatExamples(examples []Example) string {
	var sb strings.Builder
	for i, example := range examples {
		fmt.Fprintf(&sb, "Example %d:\n  Input: %s\n  Output: %s\n", i+1, example.Input, example.Output)
		if example.Explanation != "" {
			fmt.Fprintf(&sb, "  Explanation: %s\n", example.Explanation)
		}
	}
	return sb.String()
}

func formatConstraints(constraints []string) string {
	var lines []string
	for _, c := range constraints {
		lines = append(lines, "- "+c)
	}
	return strings.Join(lines, "\n")
}

// Evaluate asks the model to review the submission and parses its
// fixed-format verdict.
func (e *Evaluator) Evaluate(ctx context.Context, problem Problem, code, language string) (*EvaluationResult, error) {
	prompt := fmt.Sprintf(`You are an expert code reviewer evaluating a candidate's solution to a coding problem.

## Problem
**Title:** %s
**Difficulty:** %s

**Description:**
%s

**Examples:**
%s
**Constraints:**
%s

## Candidate's Solution
**Language:** %s

`+"```%s\n%s\n```"+`

## Evaluation Instructions

Carefully analyze the candidate's code and evaluate it on correctness,
edge case handling, code quality, and complexity.

Respond in EXACTLY this format:

CORRECT: [true/false - does the solution work correctly for the given problem?]
CORRECTNESS_SCORE: [0-100]
EDGE_CASE_SCORE: [0-100]
CODE_QUALITY_SCORE: [0-100]
COMPLEXITY_SCORE: [0-100]
OVERALL_SCORE: [0-100 - weighted average with correctness having highest weight]
FEEDBACK: [2-4 sentences of constructive feedback. Start with what they did well, then mention areas for improvement. Be specific about the code.]`,
		problem.Title, problem.Difficulty, problem.Description,
		formatExamples(problem.Examples), formatConstraints(problem.Constraints),
		language, language, code)

	response, err := e.model.Generate(ctx, prompt,
		llm.WithSystem("You are an expert code reviewer. Be fair but thorough in your evaluation. Always respond in the exact format requested."),
		llm.WithMaxTokens(800),
		llm.WithTemperature(0.3),
	)
	if err != nil {
		return nil, fmt.Errorf("evaluate submission for %s: %w", problem.ID, err)
	}

	result := parseCodeEvaluation(response)

	e.log.Info("CodeEvaluator", "Submission evaluated", map[string]interface{}{
		"problem_id": problem.ID,
		"language":   language,
		"correct":    result.Correct,
		"score":      result.Score,
	})
	return result, nil
}

var firstNumber = regexp.MustCompile(`\d+`)

func extractScore(line, prefix string) int {
	raw := firstNumber.FindString(strings.TrimPrefix(line, prefix))
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0
	}
	return n
}

var scorePrefixes = []string{
	"CORRECT:", "CORRECTNESS_SCORE:", "EDGE_CASE_SCORE:",
	"CODE_QUALITY_SCORE:", "COMPLEXITY_SCORE:", "OVERALL_SCORE:",
}

// parseCodeEvaluation extracts the verdict lines. The overall score is
// recomputed as a weighted average when the model omits it, and the
// correct flag is forced consistent with the scores.
func parseCodeEvaluation(response string) *EvaluationResult {
	analysis := &Analysis{}
	result := &EvaluationResult{Feedback: "Unable to generate feedback.", Analysis: analysis}
	overall := 0

	lines := strings.Split(strings.TrimSpace(response), "\n")
	for i, line := range lines {
		line = strings.TrimSpace(line)
		switch {
		case strings.HasPrefix(line, "CORRECT:"):
			verdict := strings.ToLower(strings.TrimSpace(strings.TrimPrefix(line, "CORRECT:")))
			result.Correct = verdict == "true" || verdict == "yes"
		case strings.HasPrefix(line, "CORRECTNESS_SCORE:"):
			analysis.Correctness = extractScore(line, "CORRECTNESS_SCORE:")
		case strings.HasPrefix(line, "EDGE_CASE_SCORE:"):
			analysis.EdgeCaseHandling = extractScore(line, "EDGE_CASE_SCORE:")
		case strings.HasPrefix(line, "CODE_QUALITY_SCORE:"):
			analysis.CodeQuality = extractScore(line, "CODE_QUALITY_SCORE:")
		case strings.HasPrefix(line, "COMPLEXITY_SCORE:"):
			analysis.Complexity = extractScore(line, "COMPLEXITY_SCORE:")
		case strings.HasPrefix(line, "OVERALL_SCORE:"):
			overall = extractScore(line, "OVERALL_SCORE:")
		case strings.HasPrefix(line, "FEEDBACK:"):
			feedback := strings.TrimSpace(strings.TrimPrefix(line, "FEEDBACK:"))
			for _, continuation := range lines[i+1:] {
				trimmed := strings.TrimSpace(continuation)
				stop := false
				for _, prefix := range scorePrefixes {
					if strings.HasPrefix(trimmed, prefix) {
						stop = true
						break
					}
				}
				if stop {
					break
				}
				if trimmed != "" {
					feedback += " " + trimmed
				}
			}
			result.Feedback = feedback
		}
	}

	// Weighted average when OVERALL_SCORE is missing:
	// correctness 40%, edge cases 20%, quality 20%, complexity 20%
	if overall == 0 && analysis.Correctness > 0 {
		overall = int(float64(analysis.Correctness)*0.4 +
			float64(analysis.EdgeCaseHandling)*0.2 +
			float64(analysis.CodeQuality)*0.2 +
			float64(analysis.Complexity)*0.2)
	}
	result.Score = float64(overall)

	if overall >= 70 && analysis.Correctness >= 60 {
		result.Correct = true
	} else if analysis.Correctness < 50 {
		result.Correct = false
	}

	return result
}
