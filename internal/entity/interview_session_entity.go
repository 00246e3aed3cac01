package entity

import (
	"time"

	"github.com/google/uuid"
)

type SessionStatus string
type InterviewType string
type Difficulty string

const (
	SessionStatusPending   SessionStatus = "pending"
	SessionStatusActive    SessionStatus = "active"
	SessionStatusPaused    SessionStatus = "paused"
	SessionStatusCompleted SessionStatus = "completed"
	SessionStatusCancelled SessionStatus = "cancelled"

	InterviewTypeBehavioral   InterviewType = "behavioral"
	InterviewTypeTechnical    InterviewType = "technical"
	InterviewTypeCoding       InterviewType = "coding"
	InterviewTypeSystemDesign InterviewType = "system_design"

	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

type InterviewSession struct {
	Id             uuid.UUID
	UserId         *uuid.UUID
	InterviewType  InterviewType
	InterviewMode  string
	Difficulty     Difficulty
	CurrentRound   int
	Phase          string
	QuestionsAsked int
	MaxQuestions   int
	TargetRole     *string
	ResumeData     map[string]interface{}
	StartedAt      *time.Time
	EndedAt        *time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time

	Transcripts     []*Transcript
	Evaluations     []*Evaluation
	CodeSubmissions []*CodeSubmission
}

type Transcript struct {
	Id        uuid.UUID
	SessionId uuid.UUID
	Role      string
	Content   string
	Sequence  int
	CreatedAt time.Time
}

type Evaluation struct {
	Id             uuid.UUID
	SessionId      uuid.UUID
	Round          int
	Score          float64
	Passed         bool
	Feedback       string
	DetailedScores map[string]interface{}
	CreatedAt      time.Time
}

type CodeSubmission struct {
	Id        uuid.UUID
	SessionId uuid.UUID
	ProblemId string
	Code      string
	Language  string
	Correct   *bool
	Score     *float64
	Feedback  *string
	Analysis  map[string]interface{}
	CreatedAt time.Time
}
