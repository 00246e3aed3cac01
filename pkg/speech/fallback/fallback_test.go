package fallback

import (
	"context"
	"errors"
	"strings"
	"testing"

	"ai-interview-be/internal/pkg/logger"
	"ai-interview-be/pkg/speech"
)

type stubTranscriber struct {
	name  string
	text  string
	err   error
	calls int
}

func (s *stubTranscriber) Transcribe(ctx context.Context, audio []byte, mimeType string) (*speech.Transcription, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return &speech.Transcription{Text: s.text, Provider: s.name}, nil
}

func (s *stubTranscriber) Name() string { return s.name }

type stubSynthesizer struct {
	name  string
	err   error
	calls int
}

func (s *stubSynthesizer) Synthesize(ctx context.Context, text string) (*speech.Synthesis, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return &speech.Synthesis{Audio: []byte{1, 2, 3}, Format: "mp3", Provider: s.name}, nil
}

func (s *stubSynthesizer) Name() string { return s.name }

func TestTranscriberPrimarySucceeds(t *testing.T) {
	primary := &stubTranscriber{name: "deepgram", text: "hello"}
	secondary := &stubTranscriber{name: "whisper", text: "unused"}

	tr := NewTranscriber(primary, secondary, logger.NopLogger{})
	result, err := tr.Transcribe(context.Background(), []byte("audio"), "audio/webm")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Text != "hello" || result.Provider != "deepgram" {
		t.Errorf("unexpected result: %+v", result)
	}
	if secondary.calls != 0 {
		t.Error("fallback should not be touched when primary succeeds")
	}
}

func TestTranscriberFallsBack(t *testing.T) {
	primary := &stubTranscriber{name: "deepgram", err: errors.New("rate limited")}
	secondary := &stubTranscriber{name: "whisper", text: "recovered"}

	tr := NewTranscriber(primary, secondary, logger.NopLogger{})
	result, err := tr.Transcribe(context.Background(), []byte("audio"), "audio/webm")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Text != "recovered" || result.Provider != "whisper" {
		t.Errorf("unexpected result: %+v", result)
	}
}

func TestTranscriberBothFail(t *testing.T) {
	primary := &stubTranscriber{name: "deepgram", err: errors.New("down")}
	fbErr := errors.New("also down")
	secondary := &stubTranscriber{name: "whisper", err: fbErr}

	tr := NewTranscriber(primary, secondary, logger.NopLogger{})
	_, err := tr.Transcribe(context.Background(), []byte("audio"), "audio/webm")
	if err == nil {
		t.Fatal("expected error when both providers fail")
	}
	if !errors.Is(err, fbErr) {
		t.Errorf("combined error should wrap the fallback error: %v", err)
	}
	if !strings.Contains(err.Error(), "deepgram") || !strings.Contains(err.Error(), "whisper") {
		t.Errorf("combined error should name both providers: %v", err)
	}
}

func TestTranscriberNilFallback(t *testing.T) {
	primErr := errors.New("down")
	primary := &stubTranscriber{name: "deepgram", err: primErr}

	tr := NewTranscriber(primary, nil, logger.NopLogger{})
	_, err := tr.Transcribe(context.Background(), []byte("audio"), "audio/webm")
	if !errors.Is(err, primErr) {
		t.Errorf("primary error should pass through unchanged: %v", err)
	}
	if tr.Name() != "deepgram" {
		t.Errorf("Name() = %q", tr.Name())
	}
}

func TestSynthesizerFallsBack(t *testing.T) {
	primary := &stubSynthesizer{name: "elevenlabs", err: errors.New("quota")}
	secondary := &stubSynthesizer{name: "openai"}

	syn := NewSynthesizer(primary, secondary, logger.NopLogger{})
	result, err := syn.Synthesize(context.Background(), "Hello there.")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Provider != "openai" {
		t.Errorf("expected fallback provider, got %q", result.Provider)
	}
	if syn.Name() != "elevenlabs+openai" {
		t.Errorf("Name() = %q", syn.Name())
	}
}
