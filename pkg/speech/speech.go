package speech

import "context"

// Transcription is the outcome of one speech-to-text call.
type Transcription struct {
	Text      string
	LatencyMs int64
	Provider  string
}

// Synthesis is the outcome of one text-to-speech call.
type Synthesis struct {
	Audio     []byte
	Format    string // "mp3", "wav", ...
	LatencyMs int64
	Provider  string
}

// Transcriber converts recorded speech into text.
type Transcriber interface {
	// Transcribe converts a complete audio clip to text. mimeType describes
	// the container the client recorded ("audio/webm", "audio/wav", ...).
	Transcribe(ctx context.Context, audio []byte, mimeType string) (*Transcription, error)

	// Name identifies the backing provider for logging and metrics.
	Name() string
}

// Synthesizer converts text into spoken audio.
type Synthesizer interface {
	// Synthesize renders one sentence or short passage to audio.
	Synthesize(ctx context.Context, text string) (*Synthesis, error)

	// Name identifies the backing provider for logging and metrics.
	Name() string
}
