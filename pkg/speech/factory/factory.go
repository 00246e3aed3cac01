package factory

import (
	"fmt"

	"ai-interview-be/internal/pkg/logger"
	"ai-interview-be/pkg/speech"
	"ai-interview-be/pkg/speech/deepgram"
	"ai-interview-be/pkg/speech/elevenlabs"
	"ai-interview-be/pkg/speech/fallback"
	"ai-interview-be/pkg/speech/openaitts"
	"ai-interview-be/pkg/speech/whisper"
)

// Config carries the provider choices and credentials needed to assemble
// the speech stack. Provider names are resolved once here; the rest of the
// system only sees the speech interfaces.
type Config struct {
	STTProvider string // "deepgram" or "whisper"
	STTFallback string // same choices, or "" for none

	TTSProvider string // "elevenlabs" or "openai"
	TTSFallback string // same choices, or "" for none

	DeepgramAPIKey string
	DeepgramModel  string

	OpenAIAPIKey string
	WhisperModel string
	TTSModel     string
	TTSVoice     string

	ElevenLabsAPIKey  string
	ElevenLabsVoiceID string
	ElevenLabsModelID string
}

func newTranscriber(name string, cfg Config) (speech.Transcriber, error) {
	switch name {
	case "deepgram":
		if cfg.DeepgramAPIKey == "" {
			return nil, fmt.Errorf("deepgram transcriber requires an API key")
		}
		return deepgram.NewDeepgramTranscriber(cfg.DeepgramAPIKey, cfg.DeepgramModel), nil
	case "whisper":
		if cfg.OpenAIAPIKey == "" {
			return nil, fmt.Errorf("whisper transcriber requires an OpenAI API key")
		}
		return whisper.NewWhisperTranscriber(cfg.OpenAIAPIKey, cfg.WhisperModel), nil
	default:
		return nil, fmt.Errorf("unsupported STT provider: %s", name)
	}
}

func newSynthesizer(name string, cfg Config) (speech.Synthesizer, error) {
	switch name {
	case "elevenlabs":
		if cfg.ElevenLabsAPIKey == "" {
			return nil, fmt.Errorf("elevenlabs synthesizer requires an API key")
		}
		return elevenlabs.NewElevenLabsSynthesizer(cfg.ElevenLabsAPIKey, cfg.ElevenLabsVoiceID, cfg.ElevenLabsModelID), nil
	case "openai":
		if cfg.OpenAIAPIKey == "" {
			return nil, fmt.Errorf("openai synthesizer requires an API key")
		}
		return openaitts.NewOpenAISynthesizer(cfg.OpenAIAPIKey, cfg.TTSModel, cfg.TTSVoice), nil
	default:
		return nil, fmt.Errorf("unsupported TTS provider: %s", name)
	}
}

// NewTranscriber builds the configured transcriber, wrapped with its
// fallback when one is configured.
func NewTranscriber(cfg Config, log logger.ILogger) (speech.Transcriber, error) {
	primary, err := newTranscriber(cfg.STTProvider, cfg)
	if err != nil {
		return nil, err
	}
	var secondary speech.Transcriber
	if cfg.STTFallback != "" && cfg.STTFallback != cfg.STTProvider {
		secondary, err = newTranscriber(cfg.STTFallback, cfg)
		if err != nil {
			return nil, fmt.Errorf("build STT fallback: %w", err)
		}
	}
	return fallback.NewTranscriber(primary, secondary, log), nil
}

// NewSynthesizer builds the configured synthesizer, wrapped with its
// fallback when one is configured.
func NewSynthesizer(cfg Config, log logger.ILogger) (speech.Synthesizer, error) {
	primary, err := newSynthesizer(cfg.TTSProvider, cfg)
	if err != nil {
		return nil, err
	}
	var secondary speech.Synthesizer
	if cfg.TTSFallback != "" && cfg.TTSFallback != cfg.TTSProvider {
		secondary, err = newSynthesizer(cfg.TTSFallback, cfg)
		if err != nil {
			return nil, fmt.Errorf("build TTS fallback: %w", err)
		}
	}
	return fallback.NewSynthesizer(primary, secondary, log), nil
}
