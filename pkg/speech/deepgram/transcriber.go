package deepgram

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	"ai-interview-be/pkg/speech"

	listenv1 "github.com/deepgram/deepgram-go-sdk/pkg/api/listen/v1/rest"
	dginterfaces "github.com/deepgram/deepgram-go-sdk/pkg/client/interfaces"
	listenclient "github.com/deepgram/deepgram-go-sdk/pkg/client/listen"
)

// DeepgramTranscriber sends each recorded turn through Deepgram's
// prerecorded transcription endpoint. Deepgram sniffs the container
// format from the payload, so the caller's mime type is not forwarded.
type DeepgramTranscriber struct {
	api   *listenv1.Client
	model string
}

var _ speech.Transcriber = &DeepgramTranscriber{}

func NewDeepgramTranscriber(apiKey, model string) *DeepgramTranscriber {
	c := listenclient.NewREST(apiKey, &dginterfaces.ClientOptions{})
	return &DeepgramTranscriber{
		api:   listenv1.New(c),
		model: model,
	}
}

func (d *DeepgramTranscriber) Transcribe(ctx context.Context, audio []byte, _ string) (*speech.Transcription, error) {
	start := time.Now()

	options := &dginterfaces.PreRecordedTranscriptionOptions{
		Model:       d.model,
		Language:    "en",
		SmartFormat: true,
		Punctuate:   true,
	}
	res, err := d.api.FromStream(ctx, bytes.NewReader(audio), options)
	if err != nil {
		return nil, fmt.Errorf("deepgram transcription failed: %w", err)
	}

	text := ""
	if len(res.Results.Channels) > 0 && len(res.Results.Channels[0].Alternatives) > 0 {
		text = strings.TrimSpace(res.Results.Channels[0].Alternatives[0].Transcript)
	}

	return &speech.Transcription{
		Text:      text,
		LatencyMs: time.Since(start).Milliseconds(),
		Provider:  d.Name(),
	}, nil
}

func (d *DeepgramTranscriber) Name() string {
	return "deepgram"
}
