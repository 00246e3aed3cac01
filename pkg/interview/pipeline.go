package interview

import (
	"context"
	"strings"
	"time"

	"ai-interview-be/internal/pkg/logger"
	"ai-interview-be/pkg/llm"
	"ai-interview-be/pkg/speech"
)

// Pipeline orchestrates one voice turn: audio in, transcript, streamed
// response text, synthesized audio out. The LLM stream and the synthesis
// loop run concurrently, handing sentences over a bounded queue so speech
// starts before generation finishes.
type Pipeline struct {
	stt   speech.Transcriber
	tts   speech.Synthesizer
	model llm.LLMProvider

	sentenceMinChars int
	queueSize        int

	log logger.ILogger
}

func NewPipeline(stt speech.Transcriber, tts speech.Synthesizer, model llm.LLMProvider, sentenceMinChars, queueSize int, log logger.ILogger) *Pipeline {
	if queueSize <= 0 {
		queueSize = 16
	}
	return &Pipeline{
		stt:              stt,
		tts:              tts,
		model:            model,
		sentenceMinChars: sentenceMinChars,
		queueSize:        queueSize,
		log:              log,
	}
}

type ttsStats struct {
	firstChunkMs int64
	chunksSent   int
}

// TurnPrompt builds the user message handed to the model from the fresh
// transcript. A nil prompt passes the transcript through unchanged.
type TurnPrompt func(transcript string) string

func turnMessages(history []llm.Message, transcript string, prompt TurnPrompt) []llm.Message {
	content := transcript
	if prompt != nil {
		content = prompt(transcript)
	}
	msgs := make([]llm.Message, 0, len(history)+1)
	msgs = append(msgs, history...)
	return append(msgs, llm.Message{Role: "user", Content: content})
}

// Run processes one turn and emits typed events on the returned channel.
// The channel is closed after a terminal TurnCompletedEvent or
// TurnFailedEvent. The caller must drain the channel.
func (p *Pipeline) Run(ctx context.Context, audio []byte, mimeType string, history []llm.Message, systemPrompt string, prompt TurnPrompt) <-chan Event {
	events := make(chan Event, 32)

	go func() {
		defer close(events)

		start := time.Now()

		// 1. Transcribe (provider fallback happens inside the transcriber)
		transcription, err := p.stt.Transcribe(ctx, audio, mimeType)
		if err != nil {
			events <- TurnFailedEvent{Stage: StageTranscription, Err: err}
			return
		}
		sttLatency := time.Since(start).Milliseconds()

		// 2. No speech detected: complete the turn without generating
		if strings.TrimSpace(transcription.Text) == "" {
			events <- TurnCompletedEvent{Result: TurnResult{
				STTLatencyMs:   sttLatency,
				TotalLatencyMs: time.Since(start).Milliseconds(),
			}}
			return
		}

		if !emit(ctx, events, TranscriptEvent{Text: transcription.Text, Final: true, LatencyMs: sttLatency}) {
			return
		}

		// 3. Start the response stream
		llmStart := time.Now()
		deltas, err := p.model.ChatStream(ctx, turnMessages(history, transcription.Text, prompt), llm.WithSystem(systemPrompt))
		if err != nil {
			events <- TurnFailedEvent{Stage: StageGeneration, Err: err}
			return
		}

		sentences := make(chan string, p.queueSize)
		done := make(chan ttsStats, 1)

		// 4. Synthesis consumer: drains the sentence queue in order. A
		// sentence whose synthesis fails is skipped, not fatal.
		go func() {
			var stats ttsStats
			ttsStart := time.Now()
			seq := 0
			for sentence := range sentences {
				synthesis, err := p.tts.Synthesize(ctx, sentence)
				if err != nil {
					p.log.Error("Pipeline", "Synthesis failed for sentence, skipping", map[string]interface{}{
						"error":    err.Error(),
						"sentence": sentence,
					})
					continue
				}
				if stats.firstChunkMs == 0 {
					stats.firstChunkMs = time.Since(ttsStart).Milliseconds()
				}
				seq++
				if !emit(ctx, events, AudioChunkEvent{Data: synthesis.Audio, Format: synthesis.Format, Sequence: seq}) {
					break
				}
				stats.chunksSent++
			}
			// Final marker so the client knows playback input is complete
			emit(ctx, events, AudioChunkEvent{Sequence: seq + 1, Final: true})
			done <- stats
		}()

		// 5. Producer: forward tokens, cut sentences for synthesis
		buffer := NewSentenceBuffer(p.sentenceMinChars)
		var response strings.Builder
		var firstTokenMs int64
		var genErr error

		for delta := range deltas {
			if delta.Err != nil {
				genErr = delta.Err
				break
			}
			if firstTokenMs == 0 {
				firstTokenMs = time.Since(llmStart).Milliseconds()
			}
			response.WriteString(delta.Text)
			if !emit(ctx, events, TextDeltaEvent{Text: delta.Text}) {
				break
			}
			for _, sentence := range buffer.AddToken(delta.Text) {
				select {
				case sentences <- sentence:
				case <-ctx.Done():
					genErr = ctx.Err()
				}
			}
			if genErr != nil {
				break
			}
		}
		if genErr == nil {
			if remainder, ok := buffer.Flush(); ok {
				select {
				case sentences <- remainder:
				case <-ctx.Done():
					genErr = ctx.Err()
				}
			}
		}
		close(sentences)

		stats := <-done

		if genErr != nil {
			events <- TurnFailedEvent{Stage: StageGeneration, Err: genErr}
			return
		}

		events <- TurnCompletedEvent{Result: TurnResult{
			Transcript:      transcription.Text,
			ResponseText:    response.String(),
			TotalLatencyMs:  time.Since(start).Milliseconds(),
			STTLatencyMs:    sttLatency,
			LLMFirstTokenMs: firstTokenMs,
			TTSFirstChunkMs: stats.firstChunkMs,
			AudioChunksSent: stats.chunksSent,
		}}
	}()

	return events
}

func emit(ctx context.Context, events chan<- Event, ev Event) bool {
	select {
	case events <- ev:
		return true
	case <-ctx.Done():
		return false
	}
}

// BatchResult is the outcome of a non-streaming turn.
type BatchResult struct {
	Transcript   string
	ResponseText string
	Audio        []byte
	Format       string
}

// RunBatch processes a turn sequentially: transcribe, generate the full
// response, synthesize it in one piece. Used when streaming is disabled.
func (p *Pipeline) RunBatch(ctx context.Context, audio []byte, mimeType string, history []llm.Message, systemPrompt string, prompt TurnPrompt) (*BatchResult, error) {
	transcription, err := p.stt.Transcribe(ctx, audio, mimeType)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(transcription.Text) == "" {
		return &BatchResult{}, nil
	}

	responseText, err := p.model.Chat(ctx, turnMessages(history, transcription.Text, prompt), llm.WithSystem(systemPrompt))
	if err != nil {
		return nil, err
	}

	synthesis, err := p.tts.Synthesize(ctx, responseText)
	if err != nil {
		return nil, err
	}

	return &BatchResult{
		Transcript:   transcription.Text,
		ResponseText: responseText,
		Audio:        synthesis.Audio,
		Format:       synthesis.Format,
	}, nil
}
