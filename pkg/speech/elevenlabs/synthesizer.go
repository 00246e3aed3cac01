package elevenlabs

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"ai-interview-be/pkg/speech"
)

const defaultBaseURL = "https://api.elevenlabs.io"

type ElevenLabsSynthesizer struct {
	BaseURL string
	APIKey  string
	VoiceID string
	ModelID string
	Client  *http.Client
}

var _ speech.Synthesizer = &ElevenLabsSynthesizer{}

func NewElevenLabsSynthesizer(apiKey, voiceID, modelID string) *ElevenLabsSynthesizer {
	return &ElevenLabsSynthesizer{
		BaseURL: defaultBaseURL,
		APIKey:  apiKey,
		VoiceID: voiceID,
		ModelID: modelID,
		Client: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// --- Request structs (Internal to this package) ---

type ttsRequest struct {
	Text          string         `json:"text"`
	ModelID       string         `json:"model_id,omitempty"`
	VoiceSettings *voiceSettings `json:"voice_settings,omitempty"`
}

type voiceSettings struct {
	Stability       float64 `json:"stability"`
	SimilarityBoost float64 `json:"similarity_boost"`
}

func (e *ElevenLabsSynthesizer) Synthesize(ctx context.Context, text string) (*speech.Synthesis, error) {
	start := time.Now()

	payload := ttsRequest{
		Text:    text,
		ModelID: e.ModelID,
		VoiceSettings: &voiceSettings{
			Stability:       0.5,
			SimilarityBoost: 0.75,
		},
	}
	payloadBytes, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	endpoint := fmt.Sprintf("%s/v1/text-to-speech/%s", e.BaseURL, e.VoiceID)
	req, err := http.NewRequestWithContext(ctx, "POST", endpoint, bytes.NewBuffer(payloadBytes))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("xi-api-key", e.APIKey)
	req.Header.Set("Accept", "audio/mpeg")

	resp, err := e.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("elevenlabs request failed: %w", err)
	}
	defer resp.Body.Close()

	audio, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("elevenlabs error: status %d, body: %s", resp.StatusCode, string(audio))
	}

	return &speech.Synthesis{
		Audio:     audio,
		Format:    "mp3",
		LatencyMs: time.Since(start).Milliseconds(),
		Provider:  e.Name(),
	}, nil
}

func (e *ElevenLabsSynthesizer) Name() string {
	return "elevenlabs"
}
