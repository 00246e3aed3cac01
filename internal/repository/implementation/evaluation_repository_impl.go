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

type EvaluationRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.InterviewMapper
}

func NewEvaluationRepository(db *gorm.DB) contract.EvaluationRepository {
	return &EvaluationRepositoryImpl{
		db:     db,
		mapper: mapper.NewInterviewMapper(),
	}
}

func (r *EvaluationRepositoryImpl) Create(ctx context.Context, evaluation *entity.Evaluation) error {
	m := r.mapper.EvaluationToModel(evaluation)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*evaluation = *r.mapper.EvaluationToEntity(m)
	return nil
}

func (r *EvaluationRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Evaluation, error) {
	var models []*model.Evaluation
	query := r.db.WithContext(ctx)
	for _, spec := range specs {
		query = spec.Apply(query)
	}
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.EvaluationsToEntities(models), nil
}

func (r *EvaluationRepositoryImpl) FindBySession(ctx context.Context, sessionId uuid.UUID) ([]*entity.Evaluation, error) {
	return r.FindAll(ctx,
		specification.BySession{SessionID: sessionId},
		specification.OrderBy{Field: "round"},
	)
}

func (r *EvaluationRepositoryImpl) FindByUser(ctx context.Context, userId uuid.UUID) ([]*entity.Evaluation, error) {
	var models []*model.Evaluation
	err := r.db.WithContext(ctx).
		Joins("JOIN interview_sessions ON interview_sessions.id = evaluations.session_id").
		Where("interview_sessions.user_id = ?", userId).
		Order("evaluations.created_at DESC").
		Find(&models).Error
	if err != nil {
		return nil, err
	}
	return r.mapper.EvaluationsToEntities(models), nil
}
