package dto

import (
	"time"

	"github.com/google/uuid"
)

type SessionSummaryResponse struct {
	Id             uuid.UUID            `json:"id"`
	InterviewType  string               `json:"interview_type"`
	InterviewMode  string               `json:"interview_mode"`
	Difficulty     string               `json:"difficulty"`
	Phase          string               `json:"phase"`
	QuestionsAsked int                  `json:"questions_asked"`
	TargetRole     string               `json:"target_role,omitempty"`
	StartedAt      *time.Time           `json:"started_at,omitempty"`
	EndedAt        *time.Time           `json:"ended_at,omitempty"`
	CreatedAt      time.Time            `json:"created_at"`
	Evaluations    []EvaluationResponse `json:"evaluations,omitempty"`
}

type SessionListResponse struct {
	Sessions []SessionSummaryResponse `json:"sessions"`
	Total    int64                    `json:"total"`
	Limit    int                      `json:"limit"`
	Offset   int                      `json:"offset"`
}

type SessionDetailResponse struct {
	SessionSummaryResponse
	Transcripts     []TranscriptResponse     `json:"transcripts"`
	CodeSubmissions []CodeSubmissionResponse `json:"code_submissions,omitempty"`
}

type TranscriptResponse struct {
	Role     string `json:"role"`
	Content  string `json:"content"`
	Sequence int    `json:"sequence"`
}

type EvaluationResponse struct {
	Round          int                    `json:"round"`
	Score          float64                `json:"score"`
	Passed         bool                   `json:"passed"`
	Feedback       string                 `json:"feedback"`
	DetailedScores map[string]interface{} `json:"detailed_scores,omitempty"`
	CreatedAt      time.Time              `json:"created_at"`
}

type CodeSubmissionResponse struct {
	ProblemId string                 `json:"problem_id"`
	Language  string                 `json:"language"`
	Correct   *bool                  `json:"correct,omitempty"`
	Score     *float64               `json:"score,omitempty"`
	Feedback  string                 `json:"feedback,omitempty"`
	Analysis  map[string]interface{} `json:"analysis,omitempty"`
	CreatedAt time.Time              `json:"created_at"`
}

type ParseResumeRequest struct {
	Text string `json:"text" validate:"required,min=1"`
}

type SessionListQuery struct {
	Limit  int `query:"limit"`
	Offset int `query:"offset"`
}

// PersistTranscriptMessage is the payload queued for async transcript
// persistence so the voice loop never waits on the database.
type PersistTranscriptMessage struct {
	SessionId uuid.UUID `json:"session_id"`
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	Sequence  int       `json:"sequence"`
}
