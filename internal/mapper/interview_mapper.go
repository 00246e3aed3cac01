package mapper

import (
	"encoding/json"

	"gorm.io/datatypes"

	"ai-interview-be/internal/entity"
	"ai-interview-be/internal/model"
)

type InterviewMapper struct{}

func NewInterviewMapper() *InterviewMapper {
	return &InterviewMapper{}
}

func jsonToMap(raw datatypes.JSON) map[string]interface{} {
	if len(raw) == 0 {
		return nil
	}
	var m map[string]interface{}
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil
	}
	return m
}

func mapToJSON(m map[string]interface{}) datatypes.JSON {
	if m == nil {
		return nil
	}
	raw, err := json.Marshal(m)
	if err != nil {
		return nil
	}
	return datatypes.JSON(raw)
}

func (m *InterviewMapper) SessionToEntity(s *model.InterviewSession) *entity.InterviewSession {
	if s == nil {
		return nil
	}
	e := &entity.InterviewSession{
		Id:             s.Id,
		UserId:         s.UserId,
		InterviewType:  entity.InterviewType(s.InterviewType),
		InterviewMode:  s.InterviewMode,
		Difficulty:     entity.Difficulty(s.Difficulty),
		CurrentRound:   s.CurrentRound,
		Phase:          s.Phase,
		QuestionsAsked: s.QuestionsAsked,
		MaxQuestions:   s.MaxQuestions,
		TargetRole:     s.TargetRole,
		ResumeData:     jsonToMap(s.ResumeData),
		StartedAt:      s.StartedAt,
		EndedAt:        s.EndedAt,
		CreatedAt:      s.CreatedAt,
		UpdatedAt:      s.UpdatedAt,
	}
	for i := range s.Transcripts {
		e.Transcripts = append(e.Transcripts, m.TranscriptToEntity(&s.Transcripts[i]))
	}
	for i := range s.Evaluations {
		e.Evaluations = append(e.Evaluations, m.EvaluationToEntity(&s.Evaluations[i]))
	}
	for i := range s.CodeSubmissions {
		e.CodeSubmissions = append(e.CodeSubmissions, m.CodeSubmissionToEntity(&s.CodeSubmissions[i]))
	}
	return e
}

func (m *InterviewMapper) SessionToModel(e *entity.InterviewSession) *model.InterviewSession {
	if e == nil {
		return nil
	}
	return &model.InterviewSession{
		Id:             e.Id,
		UserId:         e.UserId,
		InterviewType:  string(e.InterviewType),
		InterviewMode:  e.InterviewMode,
		Difficulty:     string(e.Difficulty),
		CurrentRound:   e.CurrentRound,
		Phase:          e.Phase,
		QuestionsAsked: e.QuestionsAsked,
		MaxQuestions:   e.MaxQuestions,
		TargetRole:     e.TargetRole,
		ResumeData:     mapToJSON(e.ResumeData),
		StartedAt:      e.StartedAt,
		EndedAt:        e.EndedAt,
		CreatedAt:      e.CreatedAt,
		UpdatedAt:      e.UpdatedAt,
	}
}

func (m *InterviewMapper) SessionsToEntities(sessions []*model.InterviewSession) []*entity.InterviewSession {
	entities := make([]*entity.InterviewSession, len(sessions))
	for i, s := range sessions {
		entities[i] = m.SessionToEntity(s)
	}
	return entities
}

func (m *InterviewMapper) TranscriptToEntity(t *model.Transcript) *entity.Transcript {
	if t == nil {
		return nil
	}
	return &entity.Transcript{
		Id:        t.Id,
		SessionId: t.SessionId,
		Role:      t.Role,
		Content:   t.Content,
		Sequence:  t.Sequence,
		CreatedAt: t.CreatedAt,
	}
}

func (m *InterviewMapper) TranscriptToModel(t *entity.Transcript) *model.Transcript {
	if t == nil {
		return nil
	}
	return &model.Transcript{
		Id:        t.Id,
		SessionId: t.SessionId,
		Role:      t.Role,
		Content:   t.Content,
		Sequence:  t.Sequence,
		CreatedAt: t.CreatedAt,
	}
}

func (m *InterviewMapper) TranscriptsToEntities(transcripts []*model.Transcript) []*entity.Transcript {
	entities := make([]*entity.Transcript, len(transcripts))
	for i, t := range transcripts {
		entities[i] = m.TranscriptToEntity(t)
	}
	return entities
}

func (m *InterviewMapper) EvaluationToEntity(e *model.Evaluation) *entity.Evaluation {
	if e == nil {
		return nil
	}
	return &entity.Evaluation{
		Id:             e.Id,
		SessionId:      e.SessionId,
		Round:          e.Round,
		Score:          e.Score,
		Passed:         e.Passed,
		Feedback:       e.Feedback,
		DetailedScores: jsonToMap(e.DetailedScores),
		CreatedAt:      e.CreatedAt,
	}
}

func (m *InterviewMapper) EvaluationToModel(e *entity.Evaluation) *model.Evaluation {
	if e == nil {
		return nil
	}
	return &model.Evaluation{
		Id:             e.Id,
		SessionId:      e.SessionId,
		Round:          e.Round,
		Score:          e.Score,
		Passed:         e.Passed,
		Feedback:       e.Feedback,
		DetailedScores: mapToJSON(e.DetailedScores),
		CreatedAt:      e.CreatedAt,
	}
}

func (m *InterviewMapper) EvaluationsToEntities(evaluations []*model.Evaluation) []*entity.Evaluation {
	entities := make([]*entity.Evaluation, len(evaluations))
	for i, e := range evaluations {
		entities[i] = m.EvaluationToEntity(e)
	}
	return entities
}

func (m *InterviewMapper) CodeSubmissionToEntity(c *model.CodeSubmission) *entity.CodeSubmission {
	if c == nil {
		return nil
	}
	return &entity.CodeSubmission{
		Id:        c.Id,
		SessionId: c.SessionId,
		ProblemId: c.ProblemId,
		Code:      c.Code,
		Language:  c.Language,
		Correct:   c.Correct,
		Score:     c.Score,
		Feedback:  c.Feedback,
		Analysis:  jsonToMap(c.Analysis),
		CreatedAt: c.CreatedAt,
	}
}

func (m *InterviewMapper) CodeSubmissionToModel(c *entity.CodeSubmission) *model.CodeSubmission {
	if c == nil {
		return nil
	}
	return &model.CodeSubmission{
		Id:        c.Id,
		SessionId: c.SessionId,
		ProblemId: c.ProblemId,
		Code:      c.Code,
		Language:  c.Language,
		Correct:   c.Correct,
		Score:     c.Score,
		Feedback:  c.Feedback,
		Analysis:  mapToJSON(c.Analysis),
		CreatedAt: c.CreatedAt,
	}
}

func (m *InterviewMapper) CodeSubmissionsToEntities(submissions []*model.CodeSubmission) []*entity.CodeSubmission {
	entities := make([]*entity.CodeSubmission, len(submissions))
	for i, c := range submissions {
		entities[i] = m.CodeSubmissionToEntity(c)
	}
	return entities
}
