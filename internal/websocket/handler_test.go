package websocket

import (
	"context"
	"encoding/base64"
	"strings"
	"testing"
	"time"

	"ai-interview-be/internal/config"
	"ai-interview-be/internal/dto"
	"ai-interview-be/internal/entity"
	"ai-interview-be/internal/pkg/logger"
	"ai-interview-be/pkg/coding"
	"ai-interview-be/pkg/interview"
	"ai-interview-be/pkg/llm"
	"ai-interview-be/pkg/speech"

	"github.com/google/uuid"
)

func TestErrorCodeForStage(t *testing.T) {
	cases := []struct {
		stage interview.Stage
		want  string
	}{
		{interview.StageTranscription, CodeTranscriptionError},
		{interview.StageGeneration, CodeGenerationError},
		{interview.StageSynthesis, CodeSynthesisError},
		{interview.Stage("something_else"), CodeProcessingError},
	}

	for _, tc := range cases {
		if got := errorCodeForStage(tc.stage); got != tc.want {
			t.Errorf("errorCodeForStage(%q) = %q, want %q", tc.stage, got, tc.want)
		}
	}
}

func TestProfileFromResume(t *testing.T) {
	t.Run("nil data", func(t *testing.T) {
		if profileFromResume(nil) != nil {
			t.Fatal("expected nil profile for nil data")
		}
	})

	t.Run("skills and experiences", func(t *testing.T) {
		data := map[string]interface{}{
			"skills": []interface{}{"Go", "Python", 42},
			"experiences": []interface{}{
				map[string]interface{}{"title": "Engineer"},
				map[string]interface{}{"title": "Senior Engineer"},
			},
		}

		profile := profileFromResume(data)
		if profile == nil {
			t.Fatal("expected profile")
		}
		if len(profile.Skills) != 2 {
			t.Errorf("expected 2 skills, got %v", profile.Skills)
		}
		if profile.ExperienceCount != 2 {
			t.Errorf("expected 2 experiences, got %d", profile.ExperienceCount)
		}
	})

	t.Run("empty map", func(t *testing.T) {
		profile := profileFromResume(map[string]interface{}{})
		if profile == nil {
			t.Fatal("expected non-nil profile for empty map")
		}
		if len(profile.Skills) != 0 || profile.ExperienceCount != 0 {
			t.Errorf("expected zero profile, got %+v", profile)
		}
	})
}

func TestResumeContextFromData(t *testing.T) {
	data := map[string]interface{}{
		"contact": map[string]interface{}{"name": "Jane Doe"},
		"summary": "Backend engineer with five years of Go.",
		"skills":  []interface{}{"Go", "PostgreSQL"},
		"experiences": []interface{}{
			map[string]interface{}{"title": "Engineer", "company": "Acme"},
			map[string]interface{}{"notes": "missing title and company"},
		},
	}

	got := resumeContextFromData(data)

	for _, want := range []string{
		"Name: Jane Doe",
		"Summary: Backend engineer with five years of Go.",
		"Skills: Go, PostgreSQL",
		"Experience: Engineer at Acme",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("context missing %q:\n%s", want, got)
		}
	}

	// An experience entry with no title or company contributes nothing.
	if strings.Count(got, "Experience:") != 1 {
		t.Errorf("expected a single experience line:\n%s", got)
	}
}

func TestResumeContextFromDataEmpty(t *testing.T) {
	if got := resumeContextFromData(map[string]interface{}{}); got != "" {
		t.Errorf("expected empty context, got %q", got)
	}
}

// fakeSender records every outbound frame so tests can assert on the
// protocol without a socket.
type fakeSender struct {
	frames []interface{}
}

func (f *fakeSender) Send(v interface{}) error {
	f.frames = append(f.frames, v)
	return nil
}

func (f *fakeSender) SendStatus(state string) {
	f.Send(statusMessage{Type: MsgStatus, State: state})
}

func (f *fakeSender) SendError(code, message string, recoverable bool) {
	f.Send(errorMessage{Type: MsgError, Code: code, Message: message, Recoverable: recoverable})
}

func (f *fakeSender) statuses() []string {
	var out []string
	for _, frame := range f.frames {
		if m, ok := frame.(statusMessage); ok {
			out = append(out, m.State)
		}
	}
	return out
}

func (f *fakeSender) errorCodes() []string {
	var out []string
	for _, frame := range f.frames {
		if m, ok := frame.(errorMessage); ok {
			out = append(out, m.Code)
		}
	}
	return out
}

type fakeInterviewService struct {
	createCalls     int
	queuedRoles     []string
	savedSubmission *entity.CodeSubmission
}

func (f *fakeInterviewService) CreateSession(ctx context.Context, session *entity.InterviewSession) error {
	f.createCalls++
	return nil
}

func (f *fakeInterviewService) UpdatePhase(ctx context.Context, sessionId uuid.UUID, phase string, questionsAsked int) error {
	return nil
}

func (f *fakeInterviewService) EndSession(ctx context.Context, sessionId uuid.UUID) error {
	return nil
}

func (f *fakeInterviewService) QueueTranscript(ctx context.Context, sessionId uuid.UUID, role, content string, sequence int) error {
	f.queuedRoles = append(f.queuedRoles, role)
	return nil
}

func (f *fakeInterviewService) SaveEvaluation(ctx context.Context, sessionId uuid.UUID, round int, score float64, passed bool, feedback string, detailedScores map[string]interface{}) error {
	return nil
}

func (f *fakeInterviewService) SaveCodeSubmission(ctx context.Context, submission *entity.CodeSubmission) error {
	f.savedSubmission = submission
	return nil
}

func (f *fakeInterviewService) GetSessionDetail(ctx context.Context, sessionId uuid.UUID, userId *uuid.UUID) (*dto.SessionDetailResponse, error) {
	return nil, nil
}

func (f *fakeInterviewService) ListUserSessions(ctx context.Context, userId uuid.UUID, limit, offset int) (*dto.SessionListResponse, error) {
	return nil, nil
}

type stubTranscriber struct {
	text  string
	calls int
}

func (s *stubTranscriber) Transcribe(ctx context.Context, audio []byte, mimeType string) (*speech.Transcription, error) {
	s.calls++
	return &speech.Transcription{Text: s.text, Provider: s.Name()}, nil
}

func (s *stubTranscriber) Name() string { return "stub-stt" }

type stubSynthesizer struct{}

func (s *stubSynthesizer) Synthesize(ctx context.Context, text string) (*speech.Synthesis, error) {
	return &speech.Synthesis{Audio: []byte("audio"), Format: "mp3", Provider: s.Name()}, nil
}

func (s *stubSynthesizer) Name() string { return "stub-tts" }

type stubModel struct {
	reply string
}

func (m *stubModel) Chat(ctx context.Context, history []llm.Message, options ...llm.Option) (string, error) {
	return m.reply, nil
}

func (m *stubModel) ChatStream(ctx context.Context, history []llm.Message, options ...llm.Option) (<-chan llm.StreamDelta, error) {
	ch := make(chan llm.StreamDelta, 1)
	ch <- llm.StreamDelta{Text: m.reply}
	close(ch)
	return ch, nil
}

func (m *stubModel) Generate(ctx context.Context, prompt string, options ...llm.Option) (string, error) {
	return m.reply, nil
}

func newTestHandler(cfg config.InterviewConfig, svc *fakeInterviewService, stt *stubTranscriber, model *stubModel) *Handler {
	log := logger.NopLogger{}
	tts := &stubSynthesizer{}
	return NewHandler(
		interview.NewRegistry(4, time.Hour, 5, 20, log),
		interview.NewPipeline(stt, tts, model, 40, 4, log),
		model,
		tts,
		interview.NewEvaluator(model, log),
		coding.NewSelector(log),
		coding.NewEvaluator(model, log),
		nil,
		svc,
		cfg,
		"test-secret",
		log,
	)
}

func newTestSession(h *Handler, sender *fakeSender) *connSession {
	state := h.registry.CreateSession(uuid.NewString())
	return &connSession{client: sender, state: state, dbID: uuid.New(), started: true}
}

func encodeAudio(n int) string {
	return base64.StdEncoding.EncodeToString([]byte(strings.Repeat("a", n)))
}

func TestHandleAudioSizeLimit(t *testing.T) {
	cfg := config.InterviewConfig{MaxAudioBytes: 64, MaxCodeChars: 1000}

	t.Run("at limit", func(t *testing.T) {
		svc := &fakeInterviewService{}
		stt := &stubTranscriber{text: "I would use a hash map."}
		h := newTestHandler(cfg, svc, stt, &stubModel{reply: "Good. Why a hash map?"})
		sender := &fakeSender{}
		s := newTestSession(h, sender)

		h.handleAudio(context.Background(), s, &InboundMessage{Type: MsgAudio, Data: encodeAudio(64)})

		if stt.calls != 1 {
			t.Errorf("expected one transcription, got %d", stt.calls)
		}
		if codes := sender.errorCodes(); len(codes) != 0 {
			t.Errorf("unexpected errors: %v", codes)
		}
	})

	t.Run("over limit", func(t *testing.T) {
		svc := &fakeInterviewService{}
		stt := &stubTranscriber{text: "never reached"}
		h := newTestHandler(cfg, svc, stt, &stubModel{reply: "never reached"})
		sender := &fakeSender{}
		s := newTestSession(h, sender)

		h.handleAudio(context.Background(), s, &InboundMessage{Type: MsgAudio, Data: encodeAudio(65)})

		if stt.calls != 0 {
			t.Errorf("oversized audio reached the transcriber %d times", stt.calls)
		}
		codes := sender.errorCodes()
		if len(codes) != 1 || codes[0] != CodeAudioTooLarge {
			t.Errorf("expected %s, got %v", CodeAudioTooLarge, codes)
		}
	})
}

func TestBatchTurnStatusOrdering(t *testing.T) {
	cfg := config.InterviewConfig{MaxAudioBytes: 1024, MaxCodeChars: 1000}
	svc := &fakeInterviewService{}
	stt := &stubTranscriber{text: "I would start with the brute force."}
	h := newTestHandler(cfg, svc, stt, &stubModel{reply: "Walk me through it."})
	sender := &fakeSender{}
	s := newTestSession(h, sender)

	h.handleAudio(context.Background(), s, &InboundMessage{Type: MsgAudio, Data: encodeAudio(100)})

	want := []string{StatusProcessingSTT, StatusGenerating, StatusSpeaking, StatusReady}
	got := sender.statuses()
	if len(got) != len(want) {
		t.Fatalf("expected statuses %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected statuses %v, got %v", want, got)
		}
	}
	if got[len(got)-1] != StatusReady {
		t.Errorf("turn did not settle back to ready: %v", got)
	}
	if roles := svc.queuedRoles; len(roles) != 2 || roles[0] != interview.RoleCandidate || roles[1] != interview.RoleInterviewer {
		t.Errorf("expected candidate then interviewer transcripts, got %v", roles)
	}
}

func TestHandleStartIsIdempotent(t *testing.T) {
	cfg := config.InterviewConfig{MaxAudioBytes: 1024, MaxCodeChars: 1000}
	svc := &fakeInterviewService{}
	h := newTestHandler(cfg, svc, &stubTranscriber{}, &stubModel{reply: "Welcome. Tell me about yourself."})
	sender := &fakeSender{}
	state := h.registry.CreateSession(uuid.NewString())
	s := &connSession{client: sender, state: state, dbID: uuid.New()}

	msg := &InboundMessage{Type: MsgStartInterview, InterviewMode: "behavioral"}
	h.handleStart(context.Background(), s, msg)

	statuses := sender.statuses()
	if len(statuses) == 0 || statuses[len(statuses)-1] != StatusReady {
		t.Fatalf("opening did not settle back to ready: %v", statuses)
	}
	if codes := sender.errorCodes(); len(codes) != 0 {
		t.Fatalf("unexpected errors on first start: %v", codes)
	}
	frameCount := len(sender.frames)

	// A second start must change nothing: no new session, no frames.
	h.handleStart(context.Background(), s, msg)

	if svc.createCalls != 1 {
		t.Errorf("expected one persisted session, got %d", svc.createCalls)
	}
	if len(sender.frames) != frameCount {
		t.Errorf("repeated start emitted %d extra frames", len(sender.frames)-frameCount)
	}
}

func TestHandleCodeSubmissionGuards(t *testing.T) {
	cfg := config.InterviewConfig{MaxAudioBytes: 1024, MaxCodeChars: 100}
	verdict := "CORRECT: true\n" +
		"CORRECTNESS_SCORE: 90\n" +
		"EDGE_CASE_SCORE: 80\n" +
		"CODE_QUALITY_SCORE: 85\n" +
		"COMPLEXITY_SCORE: 80\n" +
		"OVERALL_SCORE: 85\n" +
		"FEEDBACK: Clean linear scan with constant space."

	newSession := func(withProblem bool) (*Handler, *fakeSender, *connSession, *fakeInterviewService) {
		svc := &fakeInterviewService{}
		h := newTestHandler(cfg, svc, &stubTranscriber{}, &stubModel{reply: verdict})
		sender := &fakeSender{}
		s := newTestSession(h, sender)
		if withProblem {
			s.activeProblem = &coding.Problem{ID: "two-sum", Title: "Two Sum", Difficulty: "easy"}
		}
		return h, sender, s, svc
	}

	t.Run("no active problem", func(t *testing.T) {
		h, sender, s, _ := newSession(false)
		h.handleCodeSubmission(context.Background(), s, &InboundMessage{Type: MsgCodeSubmission, Code: "x", Language: "go"})
		if codes := sender.errorCodes(); len(codes) != 1 || codes[0] != CodeNoActiveProblem {
			t.Errorf("expected %s, got %v", CodeNoActiveProblem, codes)
		}
	})

	t.Run("code over limit", func(t *testing.T) {
		h, sender, s, _ := newSession(true)
		code := strings.Repeat("x", cfg.MaxCodeChars+1)
		h.handleCodeSubmission(context.Background(), s, &InboundMessage{Type: MsgCodeSubmission, Code: code, Language: "go"})
		if codes := sender.errorCodes(); len(codes) != 1 || codes[0] != CodeCodeTooLarge {
			t.Errorf("expected %s, got %v", CodeCodeTooLarge, codes)
		}
	})

	t.Run("unsupported language", func(t *testing.T) {
		h, sender, s, _ := newSession(true)
		h.handleCodeSubmission(context.Background(), s, &InboundMessage{Type: MsgCodeSubmission, Code: "x", Language: "cobol"})
		if codes := sender.errorCodes(); len(codes) != 1 || codes[0] != CodeUnsupportedLanguage {
			t.Errorf("expected %s, got %v", CodeUnsupportedLanguage, codes)
		}
	})

	t.Run("code at limit", func(t *testing.T) {
		h, sender, s, svc := newSession(true)
		code := strings.Repeat("x", cfg.MaxCodeChars)
		h.handleCodeSubmission(context.Background(), s, &InboundMessage{Type: MsgCodeSubmission, Code: code, Language: "go"})

		if codes := sender.errorCodes(); len(codes) != 0 {
			t.Fatalf("unexpected errors: %v", codes)
		}
		var eval *codeEvaluationMessage
		for _, frame := range sender.frames {
			if m, ok := frame.(codeEvaluationMessage); ok {
				eval = &m
			}
		}
		if eval == nil {
			t.Fatal("expected a code_evaluation frame")
		}
		if !eval.Correct || eval.Score != 85 {
			t.Errorf("unexpected verdict: correct=%v score=%v", eval.Correct, eval.Score)
		}
		if svc.savedSubmission == nil || svc.savedSubmission.Language != "go" {
			t.Errorf("submission was not persisted: %+v", svc.savedSubmission)
		}
	})
}
