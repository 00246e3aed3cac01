package whisper

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"ai-interview-be/pkg/speech"
)

const defaultBaseURL = "https://api.openai.com/v1"

// WhisperTranscriber transcribes audio via the OpenAI audio transcription
// endpoint. It asks for the plain-text response format, so no JSON parsing
// is needed on the happy path.
type WhisperTranscriber struct {
	BaseURL string
	APIKey  string
	Model   string
	Client  *http.Client
}

var _ speech.Transcriber = &WhisperTranscriber{}

func NewWhisperTranscriber(apiKey, model string) *WhisperTranscriber {
	return &WhisperTranscriber{
		BaseURL: defaultBaseURL,
		APIKey:  apiKey,
		Model:   model,
		Client: &http.Client{
			Timeout: 60 * time.Second,
		},
	}
}

func extensionFor(mimeType string) string {
	switch {
	case strings.Contains(mimeType, "wav"):
		return "wav"
	case strings.Contains(mimeType, "mp3"), strings.Contains(mimeType, "mpeg"):
		return "mp3"
	case strings.Contains(mimeType, "ogg"):
		return "ogg"
	default:
		return "webm"
	}
}

func (w *WhisperTranscriber) Transcribe(ctx context.Context, audio []byte, mimeType string) (*speech.Transcription, error) {
	start := time.Now()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	part, err := writer.CreateFormFile("file", "audio."+extensionFor(mimeType))
	if err != nil {
		return nil, fmt.Errorf("create form file: %w", err)
	}
	if _, err := part.Write(audio); err != nil {
		return nil, fmt.Errorf("write audio payload: %w", err)
	}
	_ = writer.WriteField("model", w.Model)
	_ = writer.WriteField("language", "en")
	_ = writer.WriteField("response_format", "text")
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("finalize form: %w", err)
	}

	endpoint := w.BaseURL + "/audio/transcriptions"
	req, err := http.NewRequestWithContext(ctx, "POST", endpoint, &body)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+w.APIKey)
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := w.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("whisper request failed: %w", err)
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("whisper error: status %d, body: %s", resp.StatusCode, string(bodyBytes))
	}

	return &speech.Transcription{
		Text:      strings.TrimSpace(string(bodyBytes)),
		LatencyMs: time.Since(start).Milliseconds(),
		Provider:  w.Name(),
	}, nil
}

func (w *WhisperTranscriber) Name() string {
	return "whisper"
}
