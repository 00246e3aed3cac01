package interview

import "fmt"

// Phase is the stage of an interview. Phases only ever move forward.
type Phase string

const (
	PhaseIntroduction  Phase = "introduction"
	PhaseWarmup        Phase = "warmup"
	PhaseMainQuestions Phase = "main_questions"
	PhaseFollowUp      Phase = "follow_up"
	PhaseWrapUp        Phase = "wrap_up"
	PhaseCompleted     Phase = "completed"
)

// Next returns the phase that follows p. Completed is terminal.
func (p Phase) Next() Phase {
	switch p {
	case PhaseIntroduction:
		return PhaseWarmup
	case PhaseWarmup:
		return PhaseMainQuestions
	case PhaseMainQuestions:
		return PhaseFollowUp
	case PhaseFollowUp:
		return PhaseWrapUp
	case PhaseWrapUp:
		return PhaseCompleted
	case PhaseCompleted:
		return PhaseCompleted
	default:
		return PhaseCompleted
	}
}

func (p Phase) IsTerminal() bool {
	return p == PhaseCompleted
}

func (p Phase) Valid() bool {
	switch p {
	case PhaseIntroduction, PhaseWarmup, PhaseMainQuestions, PhaseFollowUp, PhaseWrapUp, PhaseCompleted:
		return true
	default:
		return false
	}
}

func ParsePhase(s string) (Phase, error) {
	p := Phase(s)
	if !p.Valid() {
		return "", fmt.Errorf("unknown interview phase: %q", s)
	}
	return p, nil
}

func (p Phase) String() string {
	return string(p)
}
