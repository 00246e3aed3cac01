package interview

import (
	"time"

	"ai-interview-be/pkg/llm"
)

// Transcript roles as stored, persisted, and sent over the wire. They are
// translated to the LLM providers' user/assistant vocabulary only when the
// history is handed to a model.
const (
	RoleCandidate   = "candidate"
	RoleInterviewer = "interviewer"
)

// MessageEntry is one turn of the conversation with its assigned sequence number.
type MessageEntry struct {
	Role     string
	Content  string
	Sequence int
	SentAt   time.Time
}

// State holds the live state of one interview session. A single WebSocket
// connection owns a State; the registry mutex only guards the session map,
// so State itself carries no lock.
type State struct {
	SessionID      string
	Phase          Phase
	History        []MessageEntry
	QuestionsAsked int
	MaxQuestions   int

	InterviewType string // "behavioral", "coding", "system_design"
	TargetRole    string
	CurrentRound  int
	Difficulty    string

	ResumeContext string
	ParsedResume  map[string]interface{}

	SubmittedCode       string
	SubmittedLanguage   string
	CurrentProblemTitle string

	StartedAt  time.Time
	LastActive time.Time

	sequence     int
	historyLimit int
}

// NewState creates a session state in the introduction phase.
func NewState(sessionID string, maxQuestions, historyLimit int) *State {
	now := time.Now()
	return &State{
		SessionID:     sessionID,
		Phase:         PhaseIntroduction,
		History:       make([]MessageEntry, 0, 16),
		MaxQuestions:  maxQuestions,
		InterviewType: "behavioral",
		CurrentRound:  1,
		Difficulty:    "medium",
		StartedAt:     now,
		LastActive:    now,
		historyLimit:  historyLimit,
	}
}

// AddMessage appends a turn to the history and returns its sequence number.
// Sequence numbers start at 1 and increase by exactly one per message.
func (s *State) AddMessage(role, content string) int {
	s.sequence++
	s.History = append(s.History, MessageEntry{
		Role:     role,
		Content:  content,
		Sequence: s.sequence,
		SentAt:   time.Now(),
	})
	s.Touch()
	return s.sequence
}

// AdvancePhase moves to the next phase. Calling it on a completed
// interview is a no-op.
func (s *State) AdvancePhase() {
	if s.Phase.IsTerminal() {
		return
	}
	s.Phase = s.Phase.Next()
}

// ShouldWrapUp reports whether enough questions have been asked to move
// the interview toward its close.
func (s *State) ShouldWrapUp() bool {
	return s.QuestionsAsked >= s.MaxQuestions
}

// RecentHistory returns at most the configured number of most recent turns
// mapped to provider messages. The full history stays intact; only the
// model sees the truncated window. Transcript roles are translated to the
// provider's user/assistant vocabulary at this boundary only.
func (s *State) RecentHistory() []llm.Message {
	entries := s.History
	if s.historyLimit > 0 && len(entries) > s.historyLimit {
		entries = entries[len(entries)-s.historyLimit:]
	}
	msgs := make([]llm.Message, len(entries))
	for i, e := range entries {
		role := "assistant"
		if e.Role == RoleCandidate {
			role = "user"
		}
		msgs[i] = llm.Message{Role: role, Content: e.Content}
	}
	return msgs
}

// TotalTurns reports how many transcript entries the session has recorded.
func (s *State) TotalTurns() int {
	return s.sequence
}

// NextSequence is the sequence number the next recorded message will get.
func (s *State) NextSequence() int {
	return s.sequence + 1
}

// Touch refreshes the activity timestamp. LastActive is diagnostic only;
// expiry is keyed to StartedAt so a session has a hard lifetime.
func (s *State) Touch() {
	s.LastActive = time.Now()
}

// ExpiredAt reports whether the session started more than ttl before the
// reference time. Activity does not extend the deadline.
func (s *State) ExpiredAt(now time.Time, ttl time.Duration) bool {
	return now.Sub(s.StartedAt) > ttl
}
