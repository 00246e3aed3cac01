package interview

// Stage names the pipeline step a failure happened in.
type Stage string

const (
	StageTranscription Stage = "transcription"
	StageGeneration    Stage = "generation"
	StageSynthesis     Stage = "synthesis"
)

// Event is one item on the pipeline's output channel. The transport layer
// consumes these and maps them to protocol messages; the pipeline itself
// never touches the socket.
type Event interface {
	isEvent()
}

// TranscriptEvent carries the candidate's transcribed speech.
type TranscriptEvent struct {
	Text      string
	Final     bool
	LatencyMs int64
}

// TextDeltaEvent carries one streamed token of the interviewer's response.
type TextDeltaEvent struct {
	Text string
}

// AudioChunkEvent carries one synthesized audio chunk. The last chunk of a
// turn has Final set and no data.
type AudioChunkEvent struct {
	Data     []byte
	Format   string
	Sequence int
	Final    bool
}

// TurnResult summarizes a completed turn with its latency checkpoints.
type TurnResult struct {
	Transcript      string
	ResponseText    string
	TotalLatencyMs  int64
	STTLatencyMs    int64
	LLMFirstTokenMs int64
	TTSFirstChunkMs int64
	AudioChunksSent int
}

// TurnCompletedEvent is the terminal event of a successful turn. A turn
// where no speech was detected completes with an empty Transcript.
type TurnCompletedEvent struct {
	Result TurnResult
}

// TurnFailedEvent is the terminal event of a failed turn. Failures are
// recoverable at the session level; the connection stays open.
type TurnFailedEvent struct {
	Stage Stage
	Err   error
}

func (TranscriptEvent) isEvent()    {}
func (TextDeltaEvent) isEvent()     {}
func (AudioChunkEvent) isEvent()    {}
func (TurnCompletedEvent) isEvent() {}
func (TurnFailedEvent) isEvent()    {}
