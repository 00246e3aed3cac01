package interview

import (
	"context"
	"errors"
	"strings"
	"testing"

	"ai-interview-be/internal/pkg/logger"
	"ai-interview-be/pkg/llm"
	"ai-interview-be/pkg/speech"
)

// --- Fakes ---

type fakeTranscriber struct {
	text string
	err  error
}

func (f *fakeTranscriber) Transcribe(ctx context.Context, audio []byte, mimeType string) (*speech.Transcription, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &speech.Transcription{Text: f.text, Provider: f.Name()}, nil
}

func (f *fakeTranscriber) Name() string { return "fake-stt" }

type fakeSynthesizer struct {
	failOn map[string]bool
	calls  []string
}

func (f *fakeSynthesizer) Synthesize(ctx context.Context, text string) (*speech.Synthesis, error) {
	f.calls = append(f.calls, text)
	if f.failOn[text] {
		return nil, errors.New("synthesis unavailable")
	}
	return &speech.Synthesis{Audio: []byte(text), Format: "mp3", Provider: f.Name()}, nil
}

func (f *fakeSynthesizer) Name() string { return "fake-tts" }

type fakeLLM struct {
	tokens    []string
	streamErr error
	chatErr   error

	lastHistory []llm.Message
}

func (f *fakeLLM) Chat(ctx context.Context, history []llm.Message, opts ...llm.Option) (string, error) {
	if f.chatErr != nil {
		return "", f.chatErr
	}
	return strings.Join(f.tokens, ""), nil
}

func (f *fakeLLM) ChatStream(ctx context.Context, history []llm.Message, opts ...llm.Option) (<-chan llm.StreamDelta, error) {
	f.lastHistory = history
	if f.chatErr != nil {
		return nil, f.chatErr
	}
	out := make(chan llm.StreamDelta)
	go func() {
		defer close(out)
		for _, token := range f.tokens {
			out <- llm.StreamDelta{Text: token}
		}
		if f.streamErr != nil {
			out <- llm.StreamDelta{Err: f.streamErr}
		}
	}()
	return out, nil
}

func (f *fakeLLM) Generate(ctx context.Context, prompt string, opts ...llm.Option) (string, error) {
	return f.Chat(ctx, []llm.Message{{Role: "user", Content: prompt}}, opts...)
}

func runPipeline(t *testing.T, p *Pipeline) []Event {
	t.Helper()
	var events []Event
	for ev := range p.Run(context.Background(), []byte("audio"), "audio/webm", nil, "system", nil) {
		events = append(events, ev)
	}
	return events
}

// --- Tests ---

func TestPipelineStreamingOrder(t *testing.T) {
	stt := &fakeTranscriber{text: "Tell me about your experience."}
	tts := &fakeSynthesizer{}
	model := &fakeLLM{tokens: []string{
		"I have worked on distributed systems. ",
		"Mostly in payments infrastructure. ",
		"Happy to go deeper.",
	}}

	p := NewPipeline(stt, tts, model, 10, 8, logger.NopLogger{})
	events := runPipeline(t, p)

	if len(events) == 0 {
		t.Fatal("no events emitted")
	}

	// First event is the transcript
	transcript, ok := events[0].(TranscriptEvent)
	if !ok {
		t.Fatalf("first event is %T, want TranscriptEvent", events[0])
	}
	if transcript.Text != "Tell me about your experience." {
		t.Errorf("transcript = %q", transcript.Text)
	}

	// Last event is the completion
	completed, ok := events[len(events)-1].(TurnCompletedEvent)
	if !ok {
		t.Fatalf("last event is %T, want TurnCompletedEvent", events[len(events)-1])
	}
	wantResponse := "I have worked on distributed systems. Mostly in payments infrastructure. Happy to go deeper."
	if completed.Result.ResponseText != wantResponse {
		t.Errorf("response = %q, want %q", completed.Result.ResponseText, wantResponse)
	}

	// Audio chunks arrive in sentence order with increasing sequence and a
	// final empty marker
	var chunks []AudioChunkEvent
	for _, ev := range events {
		if chunk, ok := ev.(AudioChunkEvent); ok {
			chunks = append(chunks, chunk)
		}
	}
	if len(chunks) != 4 {
		t.Fatalf("audio chunks = %d, want 3 + final marker", len(chunks))
	}
	for i, chunk := range chunks[:3] {
		if chunk.Final {
			t.Errorf("chunk %d marked final", i)
		}
		if chunk.Sequence != i+1 {
			t.Errorf("chunk %d sequence = %d", i, chunk.Sequence)
		}
	}
	last := chunks[3]
	if !last.Final || len(last.Data) != 0 {
		t.Errorf("final marker = %+v, want empty final chunk", last)
	}

	// Sentences were synthesized in generation order
	if len(tts.calls) != 3 || !strings.HasPrefix(tts.calls[0], "I have worked") {
		t.Errorf("synthesis calls = %v", tts.calls)
	}
	if completed.Result.AudioChunksSent != 3 {
		t.Errorf("AudioChunksSent = %d, want 3", completed.Result.AudioChunksSent)
	}
}

func TestPipelineAppendsTranscriptAsUserTurn(t *testing.T) {
	stt := &fakeTranscriber{text: "I led the migration."}
	model := &fakeLLM{tokens: []string{"Great, tell me more."}}
	p := NewPipeline(stt, &fakeSynthesizer{}, model, 10, 8, logger.NopLogger{})

	history := []llm.Message{{Role: "assistant", Content: "Tell me about a project."}}
	for range p.Run(context.Background(), []byte("audio"), "audio/webm", history, "system",
		func(transcript string) string { return "They said: " + transcript }) {
	}

	if len(model.lastHistory) != 2 {
		t.Fatalf("model saw %d messages, want 2", len(model.lastHistory))
	}
	last := model.lastHistory[1]
	if last.Role != "user" || last.Content != "They said: I led the migration." {
		t.Errorf("final message = %+v", last)
	}
}

func TestPipelineEmptyTranscriptShortCircuits(t *testing.T) {
	stt := &fakeTranscriber{text: "   "}
	tts := &fakeSynthesizer{}
	model := &fakeLLM{tokens: []string{"should not run"}}

	p := NewPipeline(stt, tts, model, 10, 8, logger.NopLogger{})
	events := runPipeline(t, p)

	if len(events) != 1 {
		t.Fatalf("events = %d, want only completion", len(events))
	}
	completed, ok := events[0].(TurnCompletedEvent)
	if !ok {
		t.Fatalf("event is %T, want TurnCompletedEvent", events[0])
	}
	if completed.Result.Transcript != "" || completed.Result.ResponseText != "" {
		t.Errorf("expected empty turn, got %+v", completed.Result)
	}
	if len(tts.calls) != 0 {
		t.Error("synthesis ran for an empty transcript")
	}
}

func TestPipelineTranscriptionFailure(t *testing.T) {
	stt := &fakeTranscriber{err: errors.New("upstream down")}
	p := NewPipeline(stt, &fakeSynthesizer{}, &fakeLLM{}, 10, 8, logger.NopLogger{})

	events := runPipeline(t, p)
	if len(events) != 1 {
		t.Fatalf("events = %d, want 1", len(events))
	}
	failed, ok := events[0].(TurnFailedEvent)
	if !ok {
		t.Fatalf("event is %T, want TurnFailedEvent", events[0])
	}
	if failed.Stage != StageTranscription {
		t.Errorf("stage = %s, want %s", failed.Stage, StageTranscription)
	}
}

func TestPipelineSkipsFailedSentence(t *testing.T) {
	stt := &fakeTranscriber{text: "go on"}
	tts := &fakeSynthesizer{failOn: map[string]bool{"Second sentence is doomed here.": true}}
	model := &fakeLLM{tokens: []string{
		"First sentence comes through fine. ",
		"Second sentence is doomed here. ",
		"Third sentence recovers nicely.",
	}}

	p := NewPipeline(stt, tts, model, 10, 8, logger.NopLogger{})
	events := runPipeline(t, p)

	completed, ok := events[len(events)-1].(TurnCompletedEvent)
	if !ok {
		t.Fatalf("last event is %T, want TurnCompletedEvent", events[len(events)-1])
	}
	if completed.Result.AudioChunksSent != 2 {
		t.Errorf("AudioChunksSent = %d, want 2 (failed sentence skipped)", completed.Result.AudioChunksSent)
	}

	var audible []string
	for _, ev := range events {
		if chunk, ok := ev.(AudioChunkEvent); ok && !chunk.Final {
			audible = append(audible, string(chunk.Data))
		}
	}
	for _, text := range audible {
		if strings.Contains(text, "doomed") {
			t.Errorf("failed sentence was synthesized: %q", text)
		}
	}
}

func TestPipelineGenerationFailureAbortsTurn(t *testing.T) {
	stt := &fakeTranscriber{text: "go on"}
	model := &fakeLLM{tokens: []string{"Partial output before the failure. "}, streamErr: errors.New("stream cut")}

	p := NewPipeline(stt, &fakeSynthesizer{}, model, 10, 8, logger.NopLogger{})
	events := runPipeline(t, p)

	failed, ok := events[len(events)-1].(TurnFailedEvent)
	if !ok {
		t.Fatalf("last event is %T, want TurnFailedEvent", events[len(events)-1])
	}
	if failed.Stage != StageGeneration {
		t.Errorf("stage = %s, want %s", failed.Stage, StageGeneration)
	}
}

func TestPipelineBatch(t *testing.T) {
	stt := &fakeTranscriber{text: "hello"}
	tts := &fakeSynthesizer{}
	model := &fakeLLM{tokens: []string{"Nice to meet you."}}

	p := NewPipeline(stt, tts, model, 10, 8, logger.NopLogger{})
	result, err := p.RunBatch(context.Background(), []byte("audio"), "audio/webm", nil, "system", nil)
	if err != nil {
		t.Fatalf("RunBatch error: %v", err)
	}
	if result.Transcript != "hello" || result.ResponseText != "Nice to meet you." {
		t.Errorf("batch result = %+v", result)
	}
	if string(result.Audio) != "Nice to meet you." {
		t.Errorf("audio = %q", result.Audio)
	}
}
