package websocket

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"ai-interview-be/internal/config"
	"ai-interview-be/internal/entity"
	"ai-interview-be/internal/pkg/logger"
	"ai-interview-be/internal/service"
	"ai-interview-be/pkg/coding"
	"ai-interview-be/pkg/coding/sandbox"
	"ai-interview-be/pkg/interview"
	"ai-interview-be/pkg/llm"
	"ai-interview-be/pkg/speech"

	"github.com/gofiber/websocket/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Handler runs the interview protocol over one WebSocket connection. One
// connection owns one session state; nothing here is shared between
// connections except the registry.
type Handler struct {
	registry  *interview.Registry
	pipeline  *interview.Pipeline
	model     llm.LLMProvider
	tts       speech.Synthesizer
	roundEval *interview.Evaluator
	selector  *coding.Selector
	codeEval  *coding.Evaluator
	executor  *sandbox.Executor
	service   service.IInterviewService
	cfg       config.InterviewConfig
	jwtSecret string
	log       logger.ILogger
}

func NewHandler(
	registry *interview.Registry,
	pipeline *interview.Pipeline,
	model llm.LLMProvider,
	tts speech.Synthesizer,
	roundEval *interview.Evaluator,
	selector *coding.Selector,
	codeEval *coding.Evaluator,
	executor *sandbox.Executor,
	interviewService service.IInterviewService,
	cfg config.InterviewConfig,
	jwtSecret string,
	log logger.ILogger,
) *Handler {
	return &Handler{
		registry:  registry,
		pipeline:  pipeline,
		model:     model,
		tts:       tts,
		roundEval: roundEval,
		selector:  selector,
		codeEval:  codeEval,
		executor:  executor,
		service:   interviewService,
		cfg:       cfg,
		jwtSecret: jwtSecret,
		log:       log,
	}
}

// connSession is the per-connection mutable state the protocol loop carries
// alongside the registry-held interview state.
type connSession struct {
	client ISender
	state  *interview.State
	dbID   uuid.UUID
	userID *uuid.UUID

	started bool
	ended   bool

	activeProblem  *coding.Problem
	issuedProblems []string
}

// Handle drives one connection from upgrade to disconnect. Cleanup is
// unconditional: the registry entry is removed and an unfinished persisted
// session is closed out even when the peer vanishes mid-turn.
func (h *Handler) Handle(conn *websocket.Conn) {
	client := newClient(conn)

	// 1. Optional token: a valid token ties the session to a user
	var userID *uuid.UUID
	if token := conn.Query("token"); token != "" {
		id, err := h.verifyToken(token)
		if err != nil {
			client.SendError(CodeInvalidToken, "Invalid or expired token", false)
			return
		}
		userID = id
	}

	// 2. Session id: client-supplied ids must be UUIDs
	sessionID := conn.Query("session_id")
	if sessionID == "" {
		sessionID = uuid.NewString()
	}
	dbID, err := uuid.Parse(sessionID)
	if err != nil {
		client.SendError(CodeInvalidSessionID, "session_id must be a valid UUID", false)
		return
	}

	// A reconnect with a known session id resumes the live state instead
	// of replacing it.
	state, ok := h.registry.GetSession(sessionID)
	if !ok {
		state = h.registry.CreateSession(sessionID)
	}
	session := &connSession{client: client, state: state, dbID: dbID, userID: userID}
	defer h.cleanup(session)

	// Base64 audio expands the raw payload; leave room for the envelope.
	conn.SetReadLimit(int64(h.cfg.MaxAudioBytes)*2 + 4096)

	client.Send(sessionStartedMessage{
		Type:          MsgSessionStarted,
		SessionID:     state.SessionID,
		Phase:         state.Phase.String(),
		InterviewType: state.InterviewType,
		CurrentRound:  state.CurrentRound,
	})
	client.SendStatus(StatusReady)

	ctx := context.Background()
	for {
		_, raw, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				h.log.Warn("InterviewWS", "Connection closed unexpectedly", map[string]interface{}{
					"session_id": sessionID,
					"error":      err.Error(),
				})
			}
			return
		}

		var msg InboundMessage
		if err := json.Unmarshal(raw, &msg); err != nil {
			client.SendError(CodeProcessingError, "Malformed message", true)
			continue
		}

		if done := h.dispatch(ctx, session, &msg); done {
			return
		}
	}
}

// dispatch routes one inbound message. It returns true when the session is
// over and the loop should exit. Unknown message types are ignored.
func (h *Handler) dispatch(ctx context.Context, s *connSession, msg *InboundMessage) bool {
	s.state.Touch()

	switch msg.Type {
	case MsgResumeContext:
		h.handleResumeContext(s, msg)
	case MsgStartInterview:
		h.handleStart(ctx, s, msg)
	case MsgAudio:
		h.handleAudio(ctx, s, msg)
	case MsgPlaybackComplete:
		s.client.SendStatus(StatusReady)
	case MsgRequestEvaluation:
		h.handleEvaluation(ctx, s)
	case MsgRequestProblem:
		h.handleProblem(s)
	case MsgCodeSubmission:
		h.handleCodeSubmission(ctx, s, msg)
	case MsgEndSession:
		h.handleEnd(ctx, s)
		return true
	}
	return false
}

func (h *Handler) handleResumeContext(s *connSession, msg *InboundMessage) {
	if msg.ResumeData != nil {
		s.state.ParsedResume = msg.ResumeData
	}
	if msg.ResumeText != "" {
		s.state.ResumeContext = msg.ResumeText
	} else if msg.ResumeData != nil {
		s.state.ResumeContext = resumeContextFromData(msg.ResumeData)
	}
}

func (h *Handler) handleStart(ctx context.Context, s *connSession, msg *InboundMessage) {
	if s.started {
		// Repeated start is a no-op; the interview keeps going.
		return
	}

	// 1. Resolve mode and round configuration
	mode := msg.InterviewMode
	if mode == "" {
		mode = msg.InterviewType
	}
	if mode == "" {
		mode = "behavioral"
	}
	rounds := interview.RoundsForMode(mode)
	s.state.CurrentRound = rounds[0]
	roundCfg := interview.RoundConfigFor(s.state.CurrentRound)
	s.state.InterviewType = roundCfg.Type
	s.state.Difficulty = roundCfg.Difficulty
	if msg.Difficulty != "" {
		s.state.Difficulty = msg.Difficulty
	}
	s.state.TargetRole = msg.TargetRole

	// 2. Persist the session
	sessionEntity := &entity.InterviewSession{
		Id:            s.dbID,
		UserId:        s.userID,
		InterviewType: entity.InterviewType(s.state.InterviewType),
		InterviewMode: mode,
		Difficulty:    entity.Difficulty(s.state.Difficulty),
		CurrentRound:  s.state.CurrentRound,
		Phase:         s.state.Phase.String(),
		MaxQuestions:  s.state.MaxQuestions,
		ResumeData:    s.state.ParsedResume,
	}
	if msg.TargetRole != "" {
		role := msg.TargetRole
		sessionEntity.TargetRole = &role
	}
	if err := h.service.CreateSession(ctx, sessionEntity); err != nil {
		h.log.Error("InterviewWS", "Failed to persist session", map[string]interface{}{
			"session_id": s.state.SessionID,
			"error":      err.Error(),
		})
		s.client.SendError(CodeStartError, "Could not start the interview", true)
		return
	}
	s.started = true

	// 3. Opening line from the interviewer
	s.client.SendStatus(StatusGenerating)
	opening, err := h.model.Generate(ctx, interview.InitialPrompt(s.state),
		llm.WithSystem(interview.SystemPrompt(s.state)),
		llm.WithMaxTokens(300),
	)
	if err != nil {
		s.client.SendError(CodeGenerationError, "Could not generate the opening", true)
		s.client.SendStatus(StatusReady)
		return
	}
	h.recordTurn(ctx, s, interview.RoleInterviewer, opening)

	s.client.SendStatus(StatusSpeaking)
	synthesis, err := h.tts.Synthesize(ctx, opening)
	if err != nil {
		s.client.SendError(CodeSynthesisError, "Could not synthesize the opening", true)
		s.client.SendStatus(StatusReady)
		return
	}
	s.client.Send(audioMessage{
		Type:   MsgAudioOut,
		Data:   base64.StdEncoding.EncodeToString(synthesis.Audio),
		Format: synthesis.Format,
	})
	s.client.SendStatus(StatusReady)
}

func (h *Handler) handleAudio(ctx context.Context, s *connSession, msg *InboundMessage) {
	if !s.started {
		s.client.SendError(CodeStartError, "Interview has not been started", true)
		return
	}
	if s.state.Phase.IsTerminal() {
		s.client.SendError(CodeProcessingError, "Interview is already completed", true)
		return
	}

	audio, err := base64.StdEncoding.DecodeString(msg.Data)
	if err != nil {
		s.client.SendError(CodeProcessingError, "Audio payload is not valid base64", true)
		return
	}
	if len(audio) > h.cfg.MaxAudioBytes {
		s.client.SendError(CodeAudioTooLarge,
			fmt.Sprintf("Audio exceeds the %d byte limit", h.cfg.MaxAudioBytes), true)
		return
	}
	mimeType := msg.MimeType
	if mimeType == "" {
		mimeType = "audio/webm"
	}

	history := s.state.RecentHistory()
	systemPrompt := interview.SystemPrompt(s.state)
	turnPrompt := func(transcript string) string {
		return interview.ResponsePrompt(s.state, transcript)
	}

	s.client.SendStatus(StatusProcessingSTT)

	if h.cfg.StreamingEnabled {
		events := h.pipeline.Run(ctx, audio, mimeType, history, systemPrompt, turnPrompt)
		h.consumeTurn(ctx, s, events)
		return
	}

	result, err := h.pipeline.RunBatch(ctx, audio, mimeType, history, systemPrompt, turnPrompt)
	if err != nil {
		s.client.SendError(CodeProcessingError, err.Error(), true)
		s.client.SendStatus(StatusReady)
		return
	}
	if result.Transcript == "" {
		s.client.SendError(CodeEmptyTranscription, "No speech detected", true)
		s.client.SendStatus(StatusReady)
		return
	}

	h.recordTurn(ctx, s, interview.RoleCandidate, result.Transcript)
	s.client.SendStatus(StatusGenerating)
	h.recordTurn(ctx, s, interview.RoleInterviewer, result.ResponseText)
	s.client.SendStatus(StatusSpeaking)
	s.client.Send(audioMessage{
		Type:   MsgAudioOut,
		Data:   base64.StdEncoding.EncodeToString(result.Audio),
		Format: result.Format,
	})
	h.advanceAfterTurn(ctx, s)
	s.client.SendStatus(StatusReady)
}

// consumeTurn drains the pipeline's event channel, mirroring each event
// onto the socket. Terminal events settle the turn either way.
func (h *Handler) consumeTurn(ctx context.Context, s *connSession, events <-chan interview.Event) {
	speaking := false
	for ev := range events {
		switch e := ev.(type) {
		case interview.TranscriptEvent:
			h.recordTurn(ctx, s, interview.RoleCandidate, e.Text)
			s.client.SendStatus(StatusGenerating)

		case interview.TextDeltaEvent:
			s.client.Send(transcriptDeltaMessage{
				Type:     MsgTranscriptDelta,
				Role:     interview.RoleInterviewer,
				Delta:    e.Text,
				Sequence: s.state.NextSequence(),
			})

		case interview.AudioChunkEvent:
			if !speaking && !e.Final {
				speaking = true
				s.client.SendStatus(StatusSpeaking)
			}
			s.client.Send(audioChunkMessage{
				Type:     MsgAudioChunk,
				Data:     base64.StdEncoding.EncodeToString(e.Data),
				Format:   e.Format,
				Sequence: e.Sequence,
				Final:    e.Final,
			})

		case interview.TurnCompletedEvent:
			if e.Result.Transcript == "" {
				s.client.SendError(CodeEmptyTranscription, "No speech detected", true)
				s.client.SendStatus(StatusReady)
				continue
			}
			s.client.Send(transcriptDeltaMessage{
				Type:     MsgTranscriptDelta,
				Role:     interview.RoleInterviewer,
				IsFinal:  true,
				Sequence: s.state.NextSequence(),
			})
			h.recordTurn(ctx, s, interview.RoleInterviewer, e.Result.ResponseText)
			h.advanceAfterTurn(ctx, s)
			s.client.SendStatus(StatusReady)
			h.log.Info("InterviewWS", "Turn completed", map[string]interface{}{
				"session_id":         s.state.SessionID,
				"total_latency_ms":   e.Result.TotalLatencyMs,
				"stt_latency_ms":     e.Result.STTLatencyMs,
				"llm_first_token_ms": e.Result.LLMFirstTokenMs,
				"tts_first_chunk_ms": e.Result.TTSFirstChunkMs,
				"audio_chunks":       e.Result.AudioChunksSent,
			})

		case interview.TurnFailedEvent:
			s.client.SendError(errorCodeForStage(e.Stage), e.Err.Error(), true)
			s.client.SendStatus(StatusReady)
		}
	}
}

// recordTurn appends the message to the in-memory state, queues it for
// async persistence, and mirrors it to the client.
func (h *Handler) recordTurn(ctx context.Context, s *connSession, role, content string) {
	sequence := s.state.AddMessage(role, content)
	if err := h.service.QueueTranscript(ctx, s.dbID, role, content, sequence); err != nil {
		h.log.Error("InterviewWS", "Failed to queue transcript", map[string]interface{}{
			"session_id": s.state.SessionID,
			"error":      err.Error(),
		})
	}
	s.client.Send(transcriptMessage{Type: MsgTranscript, Role: role, Text: content, Sequence: sequence})
}

// advanceAfterTurn moves the phase machine after a completed candidate
// turn and persists the new position.
func (h *Handler) advanceAfterTurn(ctx context.Context, s *connSession) {
	switch s.state.Phase {
	case interview.PhaseIntroduction, interview.PhaseWarmup:
		s.state.AdvancePhase()
	case interview.PhaseMainQuestions:
		s.state.QuestionsAsked++
		if s.state.ShouldWrapUp() {
			s.state.AdvancePhase()
		}
	case interview.PhaseFollowUp:
		s.state.QuestionsAsked++
		s.state.AdvancePhase()
	case interview.PhaseWrapUp, interview.PhaseCompleted:
		s.state.AdvancePhase()
	}

	if err := h.service.UpdatePhase(ctx, s.dbID, s.state.Phase.String(), s.state.QuestionsAsked); err != nil {
		h.log.Error("InterviewWS", "Failed to persist phase", map[string]interface{}{
			"session_id": s.state.SessionID,
			"error":      err.Error(),
		})
	}
}

func (h *Handler) handleEvaluation(ctx context.Context, s *connSession) {
	if !s.started {
		s.client.SendError(CodeStartError, "Interview has not been started", true)
		return
	}

	result, err := h.roundEval.Evaluate(ctx, s.state)
	if err != nil {
		s.client.SendError(CodeEvaluationError, "Could not evaluate the round", true)
		return
	}

	if err := h.service.SaveEvaluation(ctx, s.dbID, result.Round, result.Score, result.Passed, result.Feedback, nil); err != nil {
		h.log.Error("InterviewWS", "Failed to persist evaluation", map[string]interface{}{
			"session_id": s.state.SessionID,
			"error":      err.Error(),
		})
	}

	s.client.Send(evaluationMessage{
		Type:     MsgEvaluation,
		Round:    result.Round,
		Score:    result.Score,
		Passed:   result.Passed,
		Feedback: result.Feedback,
	})
}

func (h *Handler) handleProblem(s *connSession) {
	if !s.started {
		s.client.SendError(CodeStartError, "Interview has not been started", true)
		return
	}

	problem := h.selector.Select(profileFromResume(s.state.ParsedResume), s.state.TargetRole, s.issuedProblems)
	s.issuedProblems = append(s.issuedProblems, problem.ID)
	s.activeProblem = &problem
	s.state.CurrentProblemTitle = problem.Title

	s.client.Send(problemMessage{Type: MsgProblem, Problem: problem})
}

func (h *Handler) handleCodeSubmission(ctx context.Context, s *connSession, msg *InboundMessage) {
	if s.activeProblem == nil {
		s.client.SendError(CodeNoActiveProblem, "Request a problem before submitting code", true)
		return
	}
	if len(msg.Code) > h.cfg.MaxCodeChars {
		s.client.SendError(CodeCodeTooLarge,
			fmt.Sprintf("Code exceeds the %d character limit", h.cfg.MaxCodeChars), true)
		return
	}
	language := strings.ToLower(msg.Language)
	if !coding.LanguageSupported(language) {
		s.client.SendError(CodeUnsupportedLanguage,
			fmt.Sprintf("Language %q is not supported", msg.Language), true)
		return
	}

	problem := *s.activeProblem
	s.state.SubmittedCode = msg.Code
	s.state.SubmittedLanguage = language

	// Sandbox run is best effort; review proceeds without it.
	var execution *sandboxExecutionPayload
	if h.executor != nil {
		if run, err := h.executor.Execute(ctx, msg.Code, language, msg.Stdin); err == nil {
			execution = &sandboxExecutionPayload{
				Stdout:          run.Stdout,
				Stderr:          run.Stderr,
				ExitCode:        run.ExitCode,
				TimedOut:        run.TimedOut,
				ExecutionTimeMs: run.ExecutionTimeMs,
			}
		} else {
			h.log.Warn("InterviewWS", "Sandbox execution failed", map[string]interface{}{
				"session_id": s.state.SessionID,
				"error":      err.Error(),
			})
		}
	}

	result, err := h.codeEval.Evaluate(ctx, problem, msg.Code, language)
	if err != nil {
		s.client.SendError(CodeEvaluationError, "Could not evaluate the submission", true)
		return
	}

	submission := &entity.CodeSubmission{
		SessionId: s.dbID,
		ProblemId: problem.ID,
		Code:      msg.Code,
		Language:  language,
		Correct:   &result.Correct,
		Score:     &result.Score,
		Feedback:  &result.Feedback,
		Analysis:  analysisToMap(result.Analysis),
	}
	if err := h.service.SaveCodeSubmission(ctx, submission); err != nil {
		h.log.Error("InterviewWS", "Failed to persist code submission", map[string]interface{}{
			"session_id": s.state.SessionID,
			"error":      err.Error(),
		})
	}

	s.client.Send(codeEvaluationMessage{
		Type:      MsgCodeEvaluation,
		Correct:   result.Correct,
		Score:     result.Score,
		Feedback:  result.Feedback,
		Analysis:  result.Analysis,
		Execution: execution,
	})
}

func (h *Handler) handleEnd(ctx context.Context, s *connSession) {
	h.endSession(ctx, s)
	s.client.Send(sessionEndedMessage{
		Type:           MsgSessionEnded,
		SessionID:      s.state.SessionID,
		Phase:          s.state.Phase.String(),
		QuestionsAsked: s.state.QuestionsAsked,
		TotalTurns:     s.state.TotalTurns(),
		DurationMs:     time.Since(s.state.StartedAt).Milliseconds(),
	})
}

func (h *Handler) endSession(ctx context.Context, s *connSession) {
	if !s.started || s.ended {
		return
	}
	s.ended = true
	if err := h.service.EndSession(ctx, s.dbID); err != nil {
		h.log.Error("InterviewWS", "Failed to close session", map[string]interface{}{
			"session_id": s.state.SessionID,
			"error":      err.Error(),
		})
	}
}

// cleanup runs on every disconnect path. The registry entry always goes; a
// started session that was never explicitly ended is closed out so its
// lifecycle events and scorecard still fire.
func (h *Handler) cleanup(s *connSession) {
	h.registry.RemoveSession(s.state.SessionID)
	h.endSession(context.Background(), s)
}

func (h *Handler) verifyToken(tokenStr string) (*uuid.UUID, error) {
	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		return []byte(h.jwtSecret), nil
	})
	if err != nil || !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, fmt.Errorf("invalid claims")
	}
	raw, _ := claims["user_id"].(string)
	id, err := uuid.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("invalid user id claim")
	}
	return &id, nil
}

func errorCodeForStage(stage interview.Stage) string {
	switch stage {
	case interview.StageTranscription:
		return CodeTranscriptionError
	case interview.StageGeneration:
		return CodeGenerationError
	case interview.StageSynthesis:
		return CodeSynthesisError
	default:
		return CodeProcessingError
	}
}

// profileFromResume lifts the selector's inputs out of the parsed resume
// payload the client sent.
func profileFromResume(data map[string]interface{}) *coding.CandidateProfile {
	if data == nil {
		return nil
	}
	profile := &coding.CandidateProfile{}
	if skills, ok := data["skills"].([]interface{}); ok {
		for _, skill := range skills {
			if str, ok := skill.(string); ok {
				profile.Skills = append(profile.Skills, str)
			}
		}
	}
	if experiences, ok := data["experiences"].([]interface{}); ok {
		profile.ExperienceCount = len(experiences)
	}
	return profile
}

// resumeContextFromData flattens a parsed resume into prompt text when the
// client sent structured data without the raw text.
func resumeContextFromData(data map[string]interface{}) string {
	var sb strings.Builder
	if contact, ok := data["contact"].(map[string]interface{}); ok {
		if name, ok := contact["name"].(string); ok && name != "" {
			fmt.Fprintf(&sb, "Name: %s\n", name)
		}
	}
	if summary, ok := data["summary"].(string); ok && summary != "" {
		fmt.Fprintf(&sb, "Summary: %s\n", summary)
	}
	if skills, ok := data["skills"].([]interface{}); ok && len(skills) > 0 {
		names := make([]string, 0, len(skills))
		for _, skill := range skills {
			if str, ok := skill.(string); ok {
				names = append(names, str)
			}
		}
		fmt.Fprintf(&sb, "Skills: %s\n", strings.Join(names, ", "))
	}
	if experiences, ok := data["experiences"].([]interface{}); ok {
		for _, raw := range experiences {
			if exp, ok := raw.(map[string]interface{}); ok {
				title, _ := exp["title"].(string)
				company, _ := exp["company"].(string)
				if title != "" || company != "" {
					fmt.Fprintf(&sb, "Experience: %s at %s\n", title, company)
				}
			}
		}
	}
	return sb.String()
}

func analysisToMap(analysis *coding.Analysis) map[string]interface{} {
	if analysis == nil {
		return nil
	}
	return map[string]interface{}{
		"correctness":        analysis.Correctness,
		"edge_case_handling": analysis.EdgeCaseHandling,
		"code_quality":       analysis.CodeQuality,
		"complexity":         analysis.Complexity,
	}
}
