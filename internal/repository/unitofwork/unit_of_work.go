package unitofwork

import (
	"context"

	"ai-interview-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	UserRepository() contract.UserRepository
	InterviewSessionRepository() contract.InterviewSessionRepository
	TranscriptRepository() contract.TranscriptRepository
	EvaluationRepository() contract.EvaluationRepository
	CodeSubmissionRepository() contract.CodeSubmissionRepository
}
