package interview

import (
	"fmt"
	"testing"
)

func TestAddMessageSequenceNumbers(t *testing.T) {
	state := NewState("session-1", 5, 20)

	for i := 1; i <= 7; i++ {
		role := RoleCandidate
		if i%2 == 0 {
			role = RoleInterviewer
		}
		seq := state.AddMessage(role, fmt.Sprintf("message %d", i))
		if seq != i {
			t.Errorf("message %d assigned sequence %d", i, seq)
		}
	}

	if len(state.History) != 7 {
		t.Fatalf("history length = %d, want 7", len(state.History))
	}
	for i, entry := range state.History {
		if entry.Sequence != i+1 {
			t.Errorf("history[%d].Sequence = %d, want %d", i, entry.Sequence, i+1)
		}
	}
}

func TestAdvancePhaseMonotonic(t *testing.T) {
	state := NewState("session-1", 5, 20)

	want := []Phase{PhaseWarmup, PhaseMainQuestions, PhaseFollowUp, PhaseWrapUp, PhaseCompleted}
	for i, expected := range want {
		state.AdvancePhase()
		if state.Phase != expected {
			t.Fatalf("after %d advances phase = %s, want %s", i+1, state.Phase, expected)
		}
	}

	// Sixth advance is a no-op
	state.AdvancePhase()
	if state.Phase != PhaseCompleted {
		t.Errorf("phase moved past completed: %s", state.Phase)
	}
}

func TestShouldWrapUpBoundary(t *testing.T) {
	state := NewState("session-1", 3, 20)

	for asked := 0; asked < 3; asked++ {
		state.QuestionsAsked = asked
		if state.ShouldWrapUp() {
			t.Errorf("ShouldWrapUp true at %d of 3 questions", asked)
		}
	}

	state.QuestionsAsked = 3
	if !state.ShouldWrapUp() {
		t.Error("ShouldWrapUp false at the question cap")
	}
	state.QuestionsAsked = 4
	if !state.ShouldWrapUp() {
		t.Error("ShouldWrapUp false past the question cap")
	}
}

func TestRecentHistoryMapsRolesToModelVocabulary(t *testing.T) {
	state := NewState("session-1", 5, 20)
	state.AddMessage(RoleInterviewer, "Tell me about yourself.")
	state.AddMessage(RoleCandidate, "I build backend services.")

	recent := state.RecentHistory()
	if len(recent) != 2 {
		t.Fatalf("recent window = %d messages, want 2", len(recent))
	}
	if recent[0].Role != "assistant" {
		t.Errorf("interviewer mapped to %q, want assistant", recent[0].Role)
	}
	if recent[1].Role != "user" {
		t.Errorf("candidate mapped to %q, want user", recent[1].Role)
	}

	// The stored history keeps the transcript vocabulary.
	if state.History[0].Role != RoleInterviewer || state.History[1].Role != RoleCandidate {
		t.Errorf("history roles rewritten: [%s, %s]", state.History[0].Role, state.History[1].Role)
	}
}

func TestRecentHistoryCapsModelWindow(t *testing.T) {
	state := NewState("session-1", 5, 4)

	for i := 0; i < 10; i++ {
		state.AddMessage(RoleCandidate, fmt.Sprintf("turn %d", i))
	}

	recent := state.RecentHistory()
	if len(recent) != 4 {
		t.Fatalf("recent window = %d messages, want 4", len(recent))
	}
	if recent[0].Content != "turn 6" || recent[3].Content != "turn 9" {
		t.Errorf("window = [%s .. %s], want [turn 6 .. turn 9]", recent[0].Content, recent[3].Content)
	}

	// Full history is untouched
	if len(state.History) != 10 {
		t.Errorf("full history trimmed to %d entries", len(state.History))
	}
}

func TestParsePhase(t *testing.T) {
	if _, err := ParsePhase("warmup"); err != nil {
		t.Errorf("ParsePhase(warmup) error: %v", err)
	}
	if _, err := ParsePhase("lightning_round"); err == nil {
		t.Error("ParsePhase accepted an unknown phase")
	}
}
