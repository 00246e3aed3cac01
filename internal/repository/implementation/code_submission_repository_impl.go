package implementation

import (
	"context"

	"ai-interview-be/internal/entity"
	"ai-interview-be/internal/mapper"
	"ai-interview-be/internal/model"
	"ai-interview-be/internal/repository/contract"
	"ai-interview-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CodeSubmissionRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.InterviewMapper
}

func NewCodeSubmissionRepository(db *gorm.DB) contract.CodeSubmissionRepository {
	return &CodeSubmissionRepositoryImpl{
		db:     db,
		mapper: mapper.NewInterviewMapper(),
	}
}

func (r *CodeSubmissionRepositoryImpl) Create(ctx context.Context, submission *entity.CodeSubmission) error {
	m := r.mapper.CodeSubmissionToModel(submission)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*submission = *r.mapper.CodeSubmissionToEntity(m)
	return nil
}

func (r *CodeSubmissionRepositoryImpl) FindBySession(ctx context.Context, sessionId uuid.UUID) ([]*entity.CodeSubmission, error) {
	var models []*model.CodeSubmission
	query := r.db.WithContext(ctx)
	for _, spec := range []specification.Specification{
		specification.BySession{SessionID: sessionId},
		specification.OrderBy{Field: "created_at"},
	} {
		query = spec.Apply(query)
	}
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.CodeSubmissionsToEntities(models), nil
}
