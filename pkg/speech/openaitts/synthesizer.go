package openaitts

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

const defaultBaseURL = "https://api.openai.com/v1"

type OpenAISynthesizer struct {
	BaseURL string
	APIKey  string
	Model   string
	Voice   string
	Client  *http.Client
}

var _ speech.Synthesizer = &OpenAISynthesizer{}

func NewOpenAISynthesizer(apiKey, model, voice string) *OpenAISynthesizer {
	return &OpenAISynthesizer{
		BaseURL: defaultBaseURL,
		APIKey:  apiKey,
		Model:   model,
		Voice:   voice,
		Client: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// --- Request structs (Internal to this package) ---

type speechRequest struct {
	Model          string  `json:"model"`
	Input          string  `json:"input"`
	Voice          string  `json:"voice"`
	ResponseFormat string  `json:"response_format,omitempty"`
	Speed          float64 `json:"speed,omitempty"`
}

func (o *OpenAISynthesizer) Synthesize(ctx context.Context, text string) (*speech.Synthesis, error) {
	start := time.Now()

	payload := speechRequest{
		Model:          o.Model,
		Input:          text,
		Voice:          o.Voice,
		ResponseFormat: "mp3",
		Speed:          1.0,
	}
	payloadBytes, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	endpoint := o.BaseURL + "/audio/speech"
	req, err := http.NewRequestWithContext(ctx, "POST", endpoint, bytes.NewBuffer(payloadBytes))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+o.APIKey)

	resp, err := o.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("openai tts request failed: %w", err)
	}
	defer resp.Body.Close()

	audio, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("openai tts error: status %d, body: %s", resp.StatusCode, string(audio))
	}

	return &speech.Synthesis{
		Audio:     audio,
		Format:    "mp3",
		LatencyMs: time.Since(start).Milliseconds(),
		Provider:  o.Name(),
	}, nil
}

func (o *OpenAISynthesizer) Name() string {
	return "openai-tts"
}
