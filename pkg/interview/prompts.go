package interview

import (
	"fmt"
	"strings"
)

// RoundConfig describes one interview round.
type RoundConfig struct {
	Type       string
	Title      string
	Difficulty string
}

var roundConfigs = map[int]RoundConfig{
	1: {Type: "behavioral", Title: "Behavioral Interview", Difficulty: "medium"},
	2: {Type: "coding", Title: "Coding Challenge", Difficulty: "medium"},
	3: {Type: "system_design", Title: "System Design + Coding", Difficulty: "hard"},
}

// interviewModes maps a client-selected mode to the rounds it runs.
var interviewModes = map[string][]int{
	"full":          {1, 2, 3},
	"behavioral":    {1},
	"coding":        {2},
	"system_design": {3},
}

// RoundConfigFor returns the configuration for a round, defaulting to the
// behavioral round for unknown numbers.
func RoundConfigFor(round int) RoundConfig {
	if cfg, ok := roundConfigs[round]; ok {
		return cfg
	}
	return roundConfigs[1]
}

// RoundsForMode returns the round sequence for a mode, defaulting to a
// single behavioral round.
func RoundsForMode(mode string) []int {
	if rounds, ok := interviewModes[mode]; ok {
		return rounds
	}
	return []int{1}
}

var roundPrompts = map[int]string{
	1: `ROUND 1: BEHAVIORAL INTERVIEW

Your focus for this round:
- Ask about past experiences, teamwork, and challenges
- Use the STAR method (Situation, Task, Action, Result) to structure questions
- Focus on soft skills and culture fit
- Ask about conflict resolution, leadership, and collaboration
- Probe for specific examples and measurable outcomes
- Evaluate communication skills and self-awareness`,
	2: `ROUND 2: CODING CHALLENGE (Voice-Based)

Your focus for this round:
- Present a LeetCode-style coding problem VERBALLY
- Ask the candidate to explain their approach step by step
- Probe on time and space complexity analysis
- Ask about edge cases and potential optimizations
- Discuss trade-offs between different approaches
- Evaluate problem-solving methodology and technical communication`,
	3: `ROUND 3: SYSTEM DESIGN + MEDIUM CODING

Your focus for this round:
- START with a system design question (first half of interview)
- Then present a medium-difficulty coding problem (second half)
- Evaluate architectural thinking and big-picture design
- Probe on scalability, database choices, caching, load balancing
- Ask about trade-offs and bottlenecks`,
}

var roleGuidance = map[string]string{
	"Software Engineer": `
Focus on:
- Data structures and algorithms
- System design and architecture
- Code quality and best practices
- Problem-solving approaches`,
	"Frontend Developer": `
Focus on:
- React, Vue, or Angular frameworks
- HTML, CSS, and responsive design
- JavaScript/TypeScript fundamentals
- State management and component architecture
- Web performance and accessibility`,
	"Backend Developer": `
Focus on:
- API design (REST, GraphQL)
- Database design and optimization
- Authentication and security
- Scalability and distributed systems`,
	"Full Stack Developer": `
Focus on:
- End-to-end application architecture
- Both frontend and backend technologies
- Database design and API integration
- DevOps and deployment practices`,
}

var phaseInstructions = map[Phase]string{
	PhaseIntroduction: "Start with a warm greeting. Introduce yourself as the interviewer and briefly " +
		"explain the interview format. Keep it under 30 seconds when spoken.",
	PhaseWarmup: "Ask a simple warmup question about their background, recent work, or " +
		"what interests them about this role. This helps them get comfortable.",
	PhaseMainQuestions: "Ask a substantive interview question appropriate for the interview type and difficulty. " +
		"For behavioral: use STAR-format questions. For technical: ask about problem-solving approaches.",
	PhaseFollowUp: "Based on their previous answer, ask a thoughtful follow-up question that " +
		"explores the topic more deeply or clarifies important details.",
	PhaseWrapUp: "Thank them for their time and responses. Ask if they have any questions " +
		"for you. End on a positive note.",
}

// PhaseInstruction returns the per-turn guidance for a phase.
func PhaseInstruction(phase Phase) string {
	if instruction, ok := phaseInstructions[phase]; ok {
		return instruction
	}
	return "Continue the interview naturally."
}

// SystemPrompt builds the interviewer system prompt from the session state:
// round focus, target role guidance, and resume context when available.
func SystemPrompt(state *State) string {
	roundCfg := RoundConfigFor(state.CurrentRound)

	var roleSection, roleQuestionGuidance string
	if state.TargetRole != "" {
		roleSection = fmt.Sprintf("- Target Role: %s\n", state.TargetRole)
		roleQuestionGuidance = roleGuidance[state.TargetRole]
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, `You are an experienced technical interviewer conducting a %s interview.

Your role:
- Be professional, friendly, and encouraging
- Ask clear, specific questions
- Listen carefully to responses and ask relevant follow-ups
- Keep responses concise (2-3 sentences typically)
- Guide the conversation naturally

Interview parameters:
- Type: %s
- Difficulty: %s
- Current phase: %s
%sGuidelines by phase:
- INTRODUCTION: Greet the candidate, introduce yourself briefly, explain the interview format
- WARMUP: Ask a simple icebreaker question about their background or recent projects
- MAIN_QUESTIONS: Ask substantive questions relevant to the interview type%s
- FOLLOW_UP: Dig deeper into interesting points from their answers
- WRAP_UP: Thank them, ask if they have questions, end positively

Remember: This is a voice conversation. Keep responses natural and conversational.
Do not use markdown, bullet points, or numbered lists in your responses.
Speak as if talking to someone directly.`,
		roundCfg.Type, roundCfg.Type, roundCfg.Difficulty, state.Phase, roleSection, roleQuestionGuidance)

	sb.WriteString("\n\n")
	if prompt, ok := roundPrompts[state.CurrentRound]; ok {
		sb.WriteString(prompt)
	} else {
		sb.WriteString(roundPrompts[1])
	}

	if state.ResumeContext != "" {
		fmt.Fprintf(&sb, `

CANDIDATE'S RESUME:
%s

Use this background to:
- Reference specific experiences, projects, or skills from their resume
- Ask relevant questions about their listed experience
- Follow up on specific roles, projects, or accomplishments mentioned
- Make the conversation feel personalized and informed`, state.ResumeContext)
	}

	return sb.String()
}

// InitialPrompt asks the model to open the interview.
func InitialPrompt(state *State) string {
	return fmt.Sprintf("Begin the %s interview. %s", state.InterviewType, PhaseInstruction(PhaseIntroduction))
}

// ResponsePrompt wraps the candidate's answer with the instruction for the
// current phase. Near the question cap it steers toward wrapping up.
func ResponsePrompt(state *State, candidateText string) string {
	instruction := PhaseInstruction(state.Phase)
	if state.ShouldWrapUp() && state.Phase != PhaseWrapUp {
		instruction = "We're approaching the end of the interview. " +
			"Respond to their answer briefly, then transition to wrapping up."
	}
	return fmt.Sprintf("The candidate said: %q\n\n%s", candidateText, instruction)
}
