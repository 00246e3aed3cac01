package events

import (
	"time"

	"github.com/google/uuid"
)

// Interview lifecycle event types published to the NATS bus.
const (
	TypeUserLogin          = "USER_LOGIN"
	TypeUserRegistered     = "USER_REGISTERED"
	TypeInterviewStarted   = "INTERVIEW_STARTED"
	TypeInterviewCompleted = "INTERVIEW_COMPLETED"
	TypeRoundEvaluated     = "ROUND_EVALUATED"
	TypeCodeSubmitted      = "CODE_SUBMITTED"
)

func NewInterviewStarted(sessionID string, userID *uuid.UUID, interviewType, targetRole string) BaseEvent {
	data := map[string]interface{}{
		"session_id":     sessionID,
		"interview_type": interviewType,
		"target_role":    targetRole,
	}
	if userID != nil {
		data["user_id"] = userID.String()
	}
	return BaseEvent{
		Type:       TypeInterviewStarted,
		Data:       data,
		OccurredAt: time.Now(),
	}
}

func NewInterviewCompleted(sessionID string, questionsAsked int, durationSeconds float64) BaseEvent {
	return BaseEvent{
		Type: TypeInterviewCompleted,
		Data: map[string]interface{}{
			"session_id":       sessionID,
			"questions_asked":  questionsAsked,
			"duration_seconds": durationSeconds,
		},
		OccurredAt: time.Now(),
	}
}

func NewRoundEvaluated(sessionID string, round int, score float64, passed bool) BaseEvent {
	return BaseEvent{
		Type: TypeRoundEvaluated,
		Data: map[string]interface{}{
			"session_id": sessionID,
			"round":      round,
			"score":      score,
			"passed":     passed,
		},
		OccurredAt: time.Now(),
	}
}

func NewCodeSubmitted(sessionID, problemID, language string, correct bool, score float64) BaseEvent {
	return BaseEvent{
		Type: TypeCodeSubmitted,
		Data: map[string]interface{}{
			"session_id": sessionID,
			"problem_id": problemID,
			"language":   language,
			"correct":    correct,
			"score":      score,
		},
		OccurredAt: time.Now(),
	}
}
