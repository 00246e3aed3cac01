package implementation

import (
	"context"
	"errors"
	"time"

	"ai-interview-be/internal/entity"
	"ai-interview-be/internal/mapper"
	"ai-interview-be/internal/model"
	"ai-interview-be/internal/repository/contract"
	"ai-interview-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type InterviewSessionRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.InterviewMapper
}

func NewInterviewSessionRepository(db *gorm.DB) contract.InterviewSessionRepository {
	return &InterviewSessionRepositoryImpl{
		db:     db,
		mapper: mapper.NewInterviewMapper(),
	}
}

func (r *InterviewSessionRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *InterviewSessionRepositoryImpl) Create(ctx context.Context, session *entity.InterviewSession) error {
	modelSession := r.mapper.SessionToModel(session)
	if err := r.db.WithContext(ctx).Create(modelSession).Error; err != nil {
		return err
	}
	*session = *r.mapper.SessionToEntity(modelSession)
	return nil
}

func (r *InterviewSessionRepositoryImpl) Update(ctx context.Context, session *entity.InterviewSession) error {
	modelSession := r.mapper.SessionToModel(session)
	if err := r.db.WithContext(ctx).Save(modelSession).Error; err != nil {
		return err
	}
	*session = *r.mapper.SessionToEntity(modelSession)
	return nil
}

func (r *InterviewSessionRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.InterviewSession{}).Error
}

func (r *InterviewSessionRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.InterviewSession, error) {
	var modelSession model.InterviewSession
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)

	if err := query.First(&modelSession).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.mapper.SessionToEntity(&modelSession), nil
}

func (r *InterviewSessionRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.InterviewSession, error) {
	var modelSessions []*model.InterviewSession
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)

	if err := query.Find(&modelSessions).Error; err != nil {
		return nil, err
	}

	return r.mapper.SessionsToEntities(modelSessions), nil
}

func (r *InterviewSessionRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.InterviewSession{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *InterviewSessionRepositoryImpl) UpdatePhase(ctx context.Context, id uuid.UUID, phase string, questionsAsked int) error {
	return r.db.WithContext(ctx).Model(&model.InterviewSession{}).Where("id = ?", id).
		Updates(map[string]interface{}{
			"phase":           phase,
			"questions_asked": questionsAsked,
		}).Error
}

func (r *InterviewSessionRepositoryImpl) EndSession(ctx context.Context, id uuid.UUID) error {
	now := time.Now()
	return r.db.WithContext(ctx).Model(&model.InterviewSession{}).Where("id = ?", id).
		Update("ended_at", now).Error
}

// GetWithDetails loads a session with its transcripts, evaluations and code
// submissions in one pass. Transcripts come back in turn order.
func (r *InterviewSessionRepositoryImpl) GetWithDetails(ctx context.Context, id uuid.UUID) (*entity.InterviewSession, error) {
	var modelSession model.InterviewSession
	err := r.db.WithContext(ctx).
		Preload("Transcripts", func(db *gorm.DB) *gorm.DB {
			return db.Order("sequence ASC")
		}).
		Preload("Evaluations").
		Preload("CodeSubmissions").
		Where("id = ?", id).
		First(&modelSession).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.mapper.SessionToEntity(&modelSession), nil
}

func (r *InterviewSessionRepositoryImpl) GetUserSessions(ctx context.Context, userId uuid.UUID, limit, offset int) ([]*entity.InterviewSession, error) {
	var modelSessions []*model.InterviewSession
	query := r.applySpecifications(r.db.WithContext(ctx).Preload("Evaluations"),
		specification.Filter("user_id", userId),
		specification.OrderBy{Field: "created_at", Desc: true},
		specification.Pagination{Limit: limit, Offset: offset},
	)
	if err := query.Find(&modelSessions).Error; err != nil {
		return nil, err
	}
	return r.mapper.SessionsToEntities(modelSessions), nil
}

func (r *InterviewSessionRepositoryImpl) CountUserSessions(ctx context.Context, userId uuid.UUID) (int64, error) {
	return r.Count(ctx, specification.Filter("user_id", userId))
}
