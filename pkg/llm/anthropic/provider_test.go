package anthropic

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"ai-interview-be/pkg/llm"
)

func TestChatStreamForwardsDeltas(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/event-stream")
		fmt.Fprint(w, "data: {\"type\":\"content_block_delta\",\"delta\":{\"type\":\"text_delta\",\"text\":\"Hello\"}}\n\n")
		fmt.Fprint(w, "data: {\"type\":\"content_block_delta\",\"delta\":{\"type\":\"text_delta\",\"text\":\" there\"}}\n\n")
		fmt.Fprint(w, "data: {\"type\":\"message_stop\"}\n\n")
	}))
	defer srv.Close()

	p := NewAnthropicProvider("test-key", "claude-sonnet-4")
	p.BaseURL = srv.URL

	stream, err := p.ChatStream(context.Background(), []llm.Message{{Role: "user", Content: "hi"}})
	if err != nil {
		t.Fatalf("ChatStream: %v", err)
	}

	var got string
	for delta := range stream {
		if delta.Err != nil {
			t.Fatalf("unexpected stream error: %v", delta.Err)
		}
		got += delta.Text
	}
	if got != "Hello there" {
		t.Errorf("streamed text = %q, want %q", got, "Hello there")
	}
}

func TestChatStreamClosesOnCancelledContext(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/event-stream")
		// Announce more bytes than are sent so the client's read ends
		// in an error instead of a clean EOF.
		w.Header().Set("Content-Length", "4096")
		fmt.Fprint(w, "data: {\"type\":\"content_block_delta\",\"delta\":{\"type\":\"text_delta\",\"text\":\"Hello\"}}\n\n")
	}))
	defer srv.Close()

	p := NewAnthropicProvider("test-key", "claude-sonnet-4")
	p.BaseURL = srv.URL

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	stream, err := p.ChatStream(ctx, []llm.Message{{Role: "user", Content: "hi"}})
	if err != nil {
		t.Fatalf("ChatStream: %v", err)
	}

	delta := <-stream
	if delta.Text != "Hello" {
		t.Fatalf("first delta = %q, want %q", delta.Text, "Hello")
	}

	// Cancel with nobody receiving: the goroutine must not block on its
	// error send.
	cancel()
	time.Sleep(100 * time.Millisecond)
	if _, open := <-stream; open {
		t.Error("stream still delivering after cancellation; channel should be closed")
	}
}
