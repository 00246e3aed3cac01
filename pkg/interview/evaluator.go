package interview

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"ai-interview-be/internal/pkg/logger"
	"ai-interview-be/pkg/llm"
)

const passingScore = 70

// EvaluationResult is the scored outcome of one interview round.
type EvaluationResult struct {
	Round    int
	Score    float64
	Passed   bool
	Feedback string
}

var roundRubrics = map[int]string{
	1: `BEHAVIORAL INTERVIEW EVALUATION RUBRIC

Score the candidate on a scale of 0-100 based on these criteria:

1. STAR Method Usage (25 points)
2. Communication Skills (25 points)
3. Self-Awareness & Growth Mindset (25 points)
4. Culture Fit & Soft Skills (25 points)

PASSING SCORE: 70/100`,
	2: `CODING CHALLENGE EVALUATION RUBRIC

Score the candidate on a scale of 0-100 based on these criteria:

1. Problem Understanding (15 points)
2. Approach & Strategy (20 points)
3. Code Correctness (25 points)
4. Complexity Analysis (20 points)
5. Communication (20 points)

PASSING SCORE: 70/100`,
	3: `SYSTEM DESIGN + CODING EVALUATION RUBRIC

Score the candidate on a scale of 0-100 based on these criteria:

1. System Design (40 points)
2. Coding Implementation (35 points)
3. Communication & Collaboration (25 points)

PASSING SCORE: 70/100`,
}

// Evaluator scores a finished round against its rubric using the LLM.
type Evaluator struct {
	model llm.LLMProvider
	log   logger.ILogger
}

func NewEvaluator(model llm.LLMProvider, log logger.ILogger) *Evaluator {
	return &Evaluator{model: model, log: log}
}

// Evaluate builds the rubric prompt from the session transcript and parses
// the model's fixed-format verdict.
func (e *Evaluator) Evaluate(ctx context.Context, state *State) (*EvaluationResult, error) {
	round := state.CurrentRound
	rubric, ok := roundRubrics[round]
	if !ok {
		rubric = roundRubrics[1]
	}
	roundCfg := RoundConfigFor(round)

	// 1. Format the transcript
	var lines []string
	for _, msg := range state.History {
		role := "Candidate"
		if msg.Role == RoleInterviewer {
			role = "Interviewer"
		}
		lines = append(lines, fmt.Sprintf("%s: %s", role, msg.Content))
	}
	transcript := strings.Join(lines, "\n\n")

	if strings.TrimSpace(transcript) == "" {
		return &EvaluationResult{
			Round:    round,
			Passed:   false,
			Feedback: "No interview content to evaluate. The interview appears to have ended without any meaningful conversation.",
		}, nil
	}

	// 2. Attach submitted code for coding rounds
	var codeSection, codeInstruction string
	if round == 2 && state.SubmittedCode != "" {
		language := state.SubmittedLanguage
		if language == "" {
			language = "unknown"
		}
		problem := state.CurrentProblemTitle
		if problem == "" {
			problem = "Unknown"
		}
		codeSection = fmt.Sprintf("\n\nSUBMITTED CODE (%s):\n```\n%s\n```\n\nCODING PROBLEM: %s\n", language, state.SubmittedCode, problem)
		codeInstruction = " and the submitted code"
	}

	prompt := fmt.Sprintf(`You are an expert technical interviewer evaluator. Analyze the following interview transcript and provide an objective evaluation.

INTERVIEW ROUND: %d - %s

RUBRIC:
%s

INTERVIEW TRANSCRIPT:
%s
%s
EVALUATION INSTRUCTIONS:
1. Carefully review the entire conversation%s
2. Score each rubric criterion objectively
3. Calculate the total score (0-100)
4. Determine if the candidate passed (70+ = pass)
5. Provide constructive feedback

Respond in EXACTLY this format:
SCORE: [number 0-100]
PASSED: [true/false]
FEEDBACK: [2-4 sentences of constructive feedback highlighting strengths and areas for improvement]`,
		round, roundCfg.Title, rubric, transcript, codeSection, codeInstruction)

	// 3. Ask the model, low temperature for consistent scoring
	response, err := e.model.Generate(ctx, prompt,
		llm.WithSystem("You are an objective interview evaluator. Always respond in the exact format requested."),
		llm.WithMaxTokens(500),
		llm.WithTemperature(0.3),
	)
	if err != nil {
		return nil, fmt.Errorf("evaluate round %d: %w", round, err)
	}

	result := parseEvaluation(response)
	result.Round = round

	e.log.Info("Evaluator", "Round evaluated", map[string]interface{}{
		"session_id": state.SessionID,
		"round":      round,
		"score":      result.Score,
		"passed":     result.Passed,
	})

	return result, nil
}

// parseEvaluation extracts SCORE/PASSED/FEEDBACK lines from the model
// output. The pass flag is recomputed from the score so an inconsistent
// response cannot pass a failing candidate.
func parseEvaluation(response string) *EvaluationResult {
	result := &EvaluationResult{Feedback: "Unable to generate feedback."}

	lines := strings.Split(strings.TrimSpace(response), "\n")
	for i, line := range lines {
		line = strings.TrimSpace(line)
		switch {
		case strings.HasPrefix(line, "SCORE:"):
			raw := strings.TrimSpace(strings.TrimPrefix(line, "SCORE:"))
			// Tolerate "85/100" style answers
			if idx := strings.IndexAny(raw, "/ "); idx >= 0 {
				raw = raw[:idx]
			}
			if score, err := strconv.ParseFloat(raw, 64); err == nil {
				result.Score = score
			}
		case strings.HasPrefix(line, "FEEDBACK:"):
			feedback := strings.TrimSpace(strings.TrimPrefix(line, "FEEDBACK:"))
			for _, continuation := range lines[i+1:] {
				trimmed := strings.TrimSpace(continuation)
				if strings.HasPrefix(trimmed, "SCORE:") || strings.HasPrefix(trimmed, "PASSED:") {
					break
				}
				if trimmed != "" {
					feedback += " " + trimmed
				}
			}
			result.Feedback = feedback
		}
	}

	result.Passed = result.Score >= passingScore
	return result
}
