package contract

import (
	"context"

	"ai-interview-be/internal/entity"
	"ai-interview-be/internal/repository/specification"

	"github.com/google/uuid"
)

type InterviewSessionRepository interface {
	Create(ctx context.Context, session *entity.InterviewSession) error
	Update(ctx context.Context, session *entity.InterviewSession) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.InterviewSession, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.InterviewSession, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)

	// Business Specific
	UpdatePhase(ctx context.Context, id uuid.UUID, phase string, questionsAsked int) error
	EndSession(ctx context.Context, id uuid.UUID) error
	GetWithDetails(ctx context.Context, id uuid.UUID) (*entity.InterviewSession, error)
	GetUserSessions(ctx context.Context, userId uuid.UUID, limit, offset int) ([]*entity.InterviewSession, error)
	CountUserSessions(ctx context.Context, userId uuid.UUID) (int64, error)
}

type TranscriptRepository interface {
	Create(ctx context.Context, transcript *entity.Transcript) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Transcript, error)
	FindBySession(ctx context.Context, sessionId uuid.UUID) ([]*entity.Transcript, error)
}

type EvaluationRepository interface {
	Create(ctx context.Context, evaluation *entity.Evaluation) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Evaluation, error)
	FindBySession(ctx context.Context, sessionId uuid.UUID) ([]*entity.Evaluation, error)
	FindByUser(ctx context.Context, userId uuid.UUID) ([]*entity.Evaluation, error)
}

type CodeSubmissionRepository interface {
	Create(ctx context.Context, submission *entity.CodeSubmission) error
	FindBySession(ctx context.Context, sessionId uuid.UUID) ([]*entity.CodeSubmission, error)
}
