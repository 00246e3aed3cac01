// Package fallback decorates speech providers with a secondary that takes
// over when the primary fails. Callers see a single Transcriber or
// Synthesizer and never deal with provider selection themselves.
package fallback

import (
	"context"
	"fmt"

	"ai-interview-be/internal/pkg/logger"
	"ai-interview-be/pkg/speech"
)

type Transcriber struct {
	primary  speech.Transcriber
	fallback speech.Transcriber
	log      logger.ILogger
}

var _ speech.Transcriber = &Transcriber{}

// NewTranscriber wraps a primary and fallback transcriber. fallback may be
// nil, in which case primary errors are returned as-is.
func NewTranscriber(primary, fallback speech.Transcriber, log logger.ILogger) *Transcriber {
	return &Transcriber{primary: primary, fallback: fallback, log: log}
}

func (t *Transcriber) Transcribe(ctx context.Context, audio []byte, mimeType string) (*speech.Transcription, error) {
	result, err := t.primary.Transcribe(ctx, audio, mimeType)
	if err == nil {
		return result, nil
	}
	if t.fallback == nil {
		return nil, err
	}

	t.log.Warn("Speech", "Primary transcriber failed, trying fallback", map[string]interface{}{
		"primary":  t.primary.Name(),
		"fallback": t.fallback.Name(),
		"error":    err.Error(),
	})

	result, fbErr := t.fallback.Transcribe(ctx, audio, mimeType)
	if fbErr != nil {
		return nil, fmt.Errorf("primary %s: %v; fallback %s: %w", t.primary.Name(), err, t.fallback.Name(), fbErr)
	}
	return result, nil
}

func (t *Transcriber) Name() string {
	if t.fallback == nil {
		return t.primary.Name()
	}
	return t.primary.Name() + "+" + t.fallback.Name()
}

type Synthesizer struct {
	primary  speech.Synthesizer
	fallback speech.Synthesizer
	log      logger.ILogger
}

var _ speech.Synthesizer = &Synthesizer{}

// NewSynthesizer wraps a primary and fallback synthesizer. fallback may be
// nil, in which case primary errors are returned as-is.
func NewSynthesizer(primary, fallback speech.Synthesizer, log logger.ILogger) *Synthesizer {
	return &Synthesizer{primary: primary, fallback: fallback, log: log}
}

func (s *Synthesizer) Synthesize(ctx context.Context, text string) (*speech.Synthesis, error) {
	result, err := s.primary.Synthesize(ctx, text)
	if err == nil {
		return result, nil
	}
	if s.fallback == nil {
		return nil, err
	}

	s.log.Warn("Speech", "Primary synthesizer failed, trying fallback", map[string]interface{}{
		"primary":  s.primary.Name(),
		"fallback": s.fallback.Name(),
		"error":    err.Error(),
	})

	result, fbErr := s.fallback.Synthesize(ctx, text)
	if fbErr != nil {
		return nil, fmt.Errorf("primary %s: %v; fallback %s: %w", s.primary.Name(), err, s.fallback.Name(), fbErr)
	}
	return result, nil
}

func (s *Synthesizer) Name() string {
	if s.fallback == nil {
		return s.primary.Name()
	}
	return s.primary.Name() + "+" + s.fallback.Name()
}
