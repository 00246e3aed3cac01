package websocket

import (
	"ai-interview-be/pkg/coding"
)

// Inbound message types.
const (
	MsgResumeContext     = "resume_context"
	MsgStartInterview    = "start_interview"
	MsgAudio             = "audio"
	MsgPlaybackComplete  = "playback_complete"
	MsgRequestEvaluation = "request_evaluation"
	MsgRequestProblem    = "request_problem"
	MsgCodeSubmission    = "code_submission"
	MsgEndSession        = "end_session"
)

// Outbound message types.
const (
	MsgSessionStarted  = "session_started"
	MsgStatus          = "status"
	MsgTranscript      = "transcript"
	MsgTranscriptDelta = "transcript_delta"
	MsgAudioOut        = "audio"
	MsgAudioChunk      = "audio_chunk"
	MsgProblem         = "problem"
	MsgEvaluation      = "evaluation"
	MsgCodeEvaluation  = "code_evaluation"
	MsgError           = "error"
	MsgSessionEnded    = "session_ended"
)

// Connection status values sent to the client while a turn is processed.
const (
	StatusReady         = "ready"
	StatusProcessingSTT = "processing_stt"
	StatusGenerating    = "generating"
	StatusSpeaking      = "speaking"
	StatusError         = "error"
)

// Protocol error codes. Recoverable errors leave the session usable; the
// client may retry the failed action on the same connection.
const (
	CodeInvalidToken        = "INVALID_TOKEN"
	CodeInvalidSessionID    = "INVALID_SESSION_ID"
	CodeSessionNotFound     = "SESSION_NOT_FOUND"
	CodeEmptyTranscription  = "EMPTY_TRANSCRIPTION"
	CodeTranscriptionError  = "TRANSCRIPTION_ERROR"
	CodeGenerationError     = "GENERATION_ERROR"
	CodeSynthesisError      = "SYNTHESIS_ERROR"
	CodeAudioTooLarge       = "AUDIO_TOO_LARGE"
	CodeCodeTooLarge        = "CODE_TOO_LARGE"
	CodeUnsupportedLanguage = "UNSUPPORTED_LANGUAGE"
	CodeNoActiveProblem     = "NO_ACTIVE_PROBLEM"
	CodeEvaluationError     = "EVALUATION_ERROR"
	CodeStartError          = "START_ERROR"
	CodeProcessingError     = "PROCESSING_ERROR"
	CodeWebsocketError      = "WEBSOCKET_ERROR"
)

// InboundMessage is the envelope for every client message. Only the fields
// relevant to its Type are populated.
type InboundMessage struct {
	Type string `json:"type"`

	// resume_context
	ResumeText string                 `json:"resume_text,omitempty"`
	ResumeData map[string]interface{} `json:"resume_data,omitempty"`

	// start_interview
	InterviewType string `json:"interview_type,omitempty"`
	InterviewMode string `json:"interview_mode,omitempty"`
	Difficulty    string `json:"difficulty,omitempty"`
	TargetRole    string `json:"target_role,omitempty"`

	// audio (base64 payload)
	Data     string `json:"data,omitempty"`
	MimeType string `json:"mime_type,omitempty"`

	// code_submission
	ProblemID string `json:"problem_id,omitempty"`
	Code      string `json:"code,omitempty"`
	Language  string `json:"language,omitempty"`
	Stdin     string `json:"stdin,omitempty"`
}

type sessionStartedMessage struct {
	Type          string `json:"type"`
	SessionID     string `json:"session_id"`
	Phase         string `json:"phase"`
	InterviewType string `json:"interview_type"`
	CurrentRound  int    `json:"current_round"`
}

type statusMessage struct {
	Type  string `json:"type"`
	State string `json:"state"`
}

type transcriptMessage struct {
	Type     string `json:"type"`
	Role     string `json:"role"`
	Text     string `json:"text"`
	Sequence int    `json:"sequence"`
}

type transcriptDeltaMessage struct {
	Type     string `json:"type"`
	Role     string `json:"role"`
	Delta    string `json:"delta"`
	IsFinal  bool   `json:"is_final"`
	Sequence int    `json:"sequence"`
}

type audioMessage struct {
	Type   string `json:"type"`
	Data   string `json:"data"` // base64
	Format string `json:"format"`
}

type audioChunkMessage struct {
	Type     string `json:"type"`
	Data     string `json:"data,omitempty"` // base64, empty on the final marker
	Format   string `json:"format,omitempty"`
	Sequence int    `json:"sequence"`
	Final    bool   `json:"is_final,omitempty"`
}

type problemMessage struct {
	Type    string         `json:"type"`
	Problem coding.Problem `json:"problem"`
}

type evaluationMessage struct {
	Type     string  `json:"type"`
	Round    int     `json:"round"`
	Score    float64 `json:"score"`
	Passed   bool    `json:"passed"`
	Feedback string  `json:"feedback"`
}

type codeEvaluationMessage struct {
	Type      string                   `json:"type"`
	Correct   bool                     `json:"correct"`
	Score     float64                  `json:"score"`
	Feedback  string                   `json:"feedback"`
	Analysis  *coding.Analysis         `json:"analysis,omitempty"`
	Execution *sandboxExecutionPayload `json:"execution,omitempty"`
}

type sandboxExecutionPayload struct {
	Stdout          string `json:"stdout"`
	Stderr          string `json:"stderr"`
	ExitCode        int    `json:"exit_code"`
	TimedOut        bool   `json:"timed_out"`
	ExecutionTimeMs int64  `json:"execution_time_ms"`
}

type errorMessage struct {
	Type        string `json:"type"`
	Code        string `json:"code"`
	Message     string `json:"message"`
	Recoverable bool   `json:"recoverable"`
}

type sessionEndedMessage struct {
	Type           string `json:"type"`
	SessionID      string `json:"session_id"`
	Phase          string `json:"phase"`
	QuestionsAsked int    `json:"questions_asked"`
	TotalTurns     int    `json:"total_turns"`
	DurationMs     int64  `json:"duration_ms"`
}
