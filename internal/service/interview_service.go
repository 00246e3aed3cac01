package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"ai-interview-be/internal/dto"
	"ai-interview-be/internal/entity"
	"ai-interview-be/internal/pkg/mailer"
	"ai-interview-be/internal/repository/specification"
	"ai-interview-be/internal/repository/unitofwork"
	"ai-interview-be/pkg/events"
	pktNats "ai-interview-be/pkg/nats"

	"github.com/google/uuid"
)

type IInterviewService interface {
	CreateSession(ctx context.Context, session *entity.InterviewSession) error
	UpdatePhase(ctx context.Context, sessionId uuid.UUID, phase string, questionsAsked int) error
	EndSession(ctx context.Context, sessionId uuid.UUID) error
	QueueTranscript(ctx context.Context, sessionId uuid.UUID, role, content string, sequence int) error
	SaveEvaluation(ctx context.Context, sessionId uuid.UUID, round int, score float64, passed bool, feedback string, detailedScores map[string]interface{}) error
	SaveCodeSubmission(ctx context.Context, submission *entity.CodeSubmission) error
	GetSessionDetail(ctx context.Context, sessionId uuid.UUID, userId *uuid.UUID) (*dto.SessionDetailResponse, error)
	ListUserSessions(ctx context.Context, userId uuid.UUID, limit, offset int) (*dto.SessionListResponse, error)
}

var ErrSessionNotFound = errors.New("interview session not found")

type interviewService struct {
	uowFactory       unitofwork.RepositoryFactory
	publisherService IPublisherService
	eventPublisher   *pktNats.Publisher
	emailService     mailer.IEmailService
}

func NewInterviewService(
	uowFactory unitofwork.RepositoryFactory,
	publisherService IPublisherService,
	eventPublisher *pktNats.Publisher,
	emailService mailer.IEmailService,
) IInterviewService {
	return &interviewService{
		uowFactory:       uowFactory,
		publisherService: publisherService,
		eventPublisher:   eventPublisher,
		emailService:     emailService,
	}
}

func (s *interviewService) CreateSession(ctx context.Context, session *entity.InterviewSession) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	now := time.Now()
	if session.StartedAt == nil {
		session.StartedAt = &now
	}
	if err := uow.InterviewSessionRepository().Create(ctx, session); err != nil {
		return err
	}

	if s.eventPublisher != nil {
		targetRole := ""
		if session.TargetRole != nil {
			targetRole = *session.TargetRole
		}
		event := events.NewInterviewStarted(session.Id.String(), session.UserId, string(session.InterviewType), targetRole)
		if err := s.eventPublisher.Publish(ctx, event); err != nil {
			fmt.Printf("[WARN] Failed to publish INTERVIEW_STARTED event: %v\n", err)
		}
	}
	return nil
}

func (s *interviewService) UpdatePhase(ctx context.Context, sessionId uuid.UUID, phase string, questionsAsked int) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	return uow.InterviewSessionRepository().UpdatePhase(ctx, sessionId, phase, questionsAsked)
}

// EndSession stamps the session, publishes the completion event and mails
// the candidate their scorecard when evaluations exist.
func (s *interviewService) EndSession(ctx context.Context, sessionId uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	session, err := uow.InterviewSessionRepository().GetWithDetails(ctx, sessionId)
	if err != nil {
		return err
	}
	if session == nil {
		return ErrSessionNotFound
	}
	if session.EndedAt != nil {
		return nil
	}

	if err := uow.InterviewSessionRepository().EndSession(ctx, sessionId); err != nil {
		return err
	}

	if s.eventPublisher != nil {
		duration := 0.0
		if session.StartedAt != nil {
			duration = time.Since(*session.StartedAt).Seconds()
		}
		event := events.NewInterviewCompleted(sessionId.String(), session.QuestionsAsked, duration)
		if err := s.eventPublisher.Publish(ctx, event); err != nil {
			fmt.Printf("[WARN] Failed to publish INTERVIEW_COMPLETED event: %v\n", err)
		}
	}

	if len(session.Evaluations) > 0 && session.UserId != nil {
		s.sendScorecard(ctx, session)
	}
	return nil
}

func (s *interviewService) sendScorecard(ctx context.Context, session *entity.InterviewSession) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: *session.UserId})
	if err != nil || user == nil {
		return
	}

	roundNames := map[int]string{1: "Behavioral", 2: "Coding", 3: "System Design"}
	scorecard := &mailer.Scorecard{
		SessionID: session.Id.String(),
	}
	if session.TargetRole != nil {
		scorecard.TargetRole = *session.TargetRole
	}
	for _, e := range session.Evaluations {
		name := roundNames[e.Round]
		if name == "" {
			name = fmt.Sprintf("Round %d", e.Round)
		}
		scorecard.Rounds = append(scorecard.Rounds, mailer.RoundResult{
			Round:    e.Round,
			Name:     name,
			Score:    e.Score,
			Passed:   e.Passed,
			Feedback: e.Feedback,
		})
	}

	go func() {
		if err := s.emailService.SendScorecard(user.Email, scorecard); err != nil {
			fmt.Printf("[WARN] Failed to send scorecard email: %v\n", err)
		}
	}()
}

// QueueTranscript hands the turn to the watermill topic; the consumer
// service writes it to the database.
func (s *interviewService) QueueTranscript(ctx context.Context, sessionId uuid.UUID, role, content string, sequence int) error {
	payload := dto.PersistTranscriptMessage{
		SessionId: sessionId,
		Role:      role,
		Content:   content,
		Sequence:  sequence,
	}
	msgJson, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	return s.publisherService.Publish(ctx, msgJson)
}

func (s *interviewService) SaveEvaluation(ctx context.Context, sessionId uuid.UUID, round int, score float64, passed bool, feedback string, detailedScores map[string]interface{}) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	evaluation := &entity.Evaluation{
		Id:             uuid.New(),
		SessionId:      sessionId,
		Round:          round,
		Score:          score,
		Passed:         passed,
		Feedback:       feedback,
		DetailedScores: detailedScores,
		CreatedAt:      time.Now(),
	}
	if err := uow.EvaluationRepository().Create(ctx, evaluation); err != nil {
		return err
	}

	if s.eventPublisher != nil {
		event := events.NewRoundEvaluated(sessionId.String(), round, score, passed)
		if err := s.eventPublisher.Publish(ctx, event); err != nil {
			fmt.Printf("[WARN] Failed to publish ROUND_EVALUATED event: %v\n", err)
		}
	}
	return nil
}

func (s *interviewService) SaveCodeSubmission(ctx context.Context, submission *entity.CodeSubmission) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	if submission.Id == uuid.Nil {
		submission.Id = uuid.New()
	}
	if err := uow.CodeSubmissionRepository().Create(ctx, submission); err != nil {
		return err
	}

	if s.eventPublisher != nil {
		correct := submission.Correct != nil && *submission.Correct
		score := 0.0
		if submission.Score != nil {
			score = *submission.Score
		}
		event := events.NewCodeSubmitted(submission.SessionId.String(), submission.ProblemId, submission.Language, correct, score)
		if err := s.eventPublisher.Publish(ctx, event); err != nil {
			fmt.Printf("[WARN] Failed to publish CODE_SUBMITTED event: %v\n", err)
		}
	}
	return nil
}

func (s *interviewService) GetSessionDetail(ctx context.Context, sessionId uuid.UUID, userId *uuid.UUID) (*dto.SessionDetailResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	session, err := uow.InterviewSessionRepository().GetWithDetails(ctx, sessionId)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, ErrSessionNotFound
	}

	// Ownership check: anonymous sessions have no owner and stay private
	// to the connection that created them.
	if session.UserId != nil {
		if userId == nil || *session.UserId != *userId {
			return nil, ErrSessionNotFound
		}
	}

	detail := &dto.SessionDetailResponse{
		SessionSummaryResponse: toSessionSummary(session),
	}
	for _, t := range session.Transcripts {
		detail.Transcripts = append(detail.Transcripts, dto.TranscriptResponse{
			Role:     t.Role,
			Content:  t.Content,
			Sequence: t.Sequence,
		})
	}
	for _, c := range session.CodeSubmissions {
		feedback := ""
		if c.Feedback != nil {
			feedback = *c.Feedback
		}
		detail.CodeSubmissions = append(detail.CodeSubmissions, dto.CodeSubmissionResponse{
			ProblemId: c.ProblemId,
			Language:  c.Language,
			Correct:   c.Correct,
			Score:     c.Score,
			Feedback:  feedback,
			Analysis:  c.Analysis,
			CreatedAt: c.CreatedAt,
		})
	}
	return detail, nil
}

func (s *interviewService) ListUserSessions(ctx context.Context, userId uuid.UUID, limit, offset int) (*dto.SessionListResponse, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	sessions, err := uow.InterviewSessionRepository().GetUserSessions(ctx, userId, limit, offset)
	if err != nil {
		return nil, err
	}
	total, err := uow.InterviewSessionRepository().CountUserSessions(ctx, userId)
	if err != nil {
		return nil, err
	}

	resp := &dto.SessionListResponse{
		Sessions: make([]dto.SessionSummaryResponse, 0, len(sessions)),
		Total:    total,
		Limit:    limit,
		Offset:   offset,
	}
	for _, session := range sessions {
		resp.Sessions = append(resp.Sessions, toSessionSummary(session))
	}
	return resp, nil
}

func toSessionSummary(session *entity.InterviewSession) dto.SessionSummaryResponse {
	summary := dto.SessionSummaryResponse{
		Id:             session.Id,
		InterviewType:  string(session.InterviewType),
		InterviewMode:  session.InterviewMode,
		Difficulty:     string(session.Difficulty),
		Phase:          session.Phase,
		QuestionsAsked: session.QuestionsAsked,
		StartedAt:      session.StartedAt,
		EndedAt:        session.EndedAt,
		CreatedAt:      session.CreatedAt,
	}
	if session.TargetRole != nil {
		summary.TargetRole = *session.TargetRole
	}
	for _, e := range session.Evaluations {
		summary.Evaluations = append(summary.Evaluations, dto.EvaluationResponse{
			Round:          e.Round,
			Score:          e.Score,
			Passed:         e.Passed,
			Feedback:       e.Feedback,
			DetailedScores: e.DetailedScores,
			CreatedAt:      e.CreatedAt,
		})
	}
	return summary
}
