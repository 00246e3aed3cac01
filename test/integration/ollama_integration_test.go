// PURPOSE: Live LLM provider integration test against a local Ollama server.
// NOTE: Requires Ollama running at OLLAMA_BASE_URL (default localhost:11434)
//       with the model named by LLM_MODEL pulled. Skips otherwise.

package integration

import (
	"context"
	"net/http"
	"os"
	"strings"
	"testing"
	"time"

	"ai-interview-be/pkg/llm"
	"ai-interview-be/pkg/llm/factory"
)

func ollamaBaseURL() string {
	if url := os.Getenv("OLLAMA_BASE_URL"); url != "" {
		return url
	}
	return "http://localhost:11434"
}

func ollamaModel() string {
	if model := os.Getenv("LLM_MODEL"); model != "" {
		return model
	}
	return "llama3"
}

// requireOllama skips the test when no local server is reachable, so the
// suite stays green on machines without Ollama installed.
func requireOllama(t *testing.T) llm.LLMProvider {
	t.Helper()

	client := &http.Client{Timeout: 5 * time.Second}
	res, err := client.Get(ollamaBaseURL())
	if err != nil {
		t.Skipf("Ollama not running at %s: %v", ollamaBaseURL(), err)
	}
	res.Body.Close()

	provider, err := factory.NewLLMProvider("ollama", ollamaModel(), "", ollamaBaseURL())
	if err != nil {
		t.Fatalf("Failed to build provider: %v", err)
	}
	return provider
}

func TestOllamaConnection(t *testing.T) {
	requireOllama(t)
	t.Logf("✅ Ollama is running at %s", ollamaBaseURL())
}

// TestOllamaSimpleResponse tests basic single-prompt generation
func TestOllamaSimpleResponse(t *testing.T) {
	provider := requireOllama(t)

	ctx, cancel := context.WithTimeout(context.Background(), 120*time.Second)
	defer cancel()

	response, err := provider.Generate(ctx, "Say 'it works' in one short sentence.",
		llm.WithMaxTokens(60))
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	t.Logf("✅ Response: %s", response)

	if response == "" {
		t.Error("Response should not be empty")
	}
}

// TestOllamaMultiTurnConversation tests context retention across turns
func TestOllamaMultiTurnConversation(t *testing.T) {
	provider := requireOllama(t)

	ctx, cancel := context.WithTimeout(context.Background(), 120*time.Second)
	defer cancel()

	conversation := []llm.Message{
		{Role: "user", Content: "My name is John."},
		{Role: "assistant", Content: "Nice to meet you, John!"},
		{Role: "user", Content: "What is my name? Answer with the name only."},
	}

	response, err := provider.Chat(ctx, conversation,
		llm.WithSystem("You are a concise interviewer. Answer directly."))
	if err != nil {
		t.Fatalf("Multi-turn conversation failed: %v", err)
	}

	t.Logf("✅ Response: %s", response)

	if !strings.Contains(response, "John") {
		t.Logf("⚠️ Response may not correctly remember the name. Response: %s", response)
	}
}

// TestOllamaStreaming verifies the token stream terminates and assembles
// to a non-empty reply, the same contract the voice loop relies on.
func TestOllamaStreaming(t *testing.T) {
	provider := requireOllama(t)

	ctx, cancel := context.WithTimeout(context.Background(), 120*time.Second)
	defer cancel()

	deltas, err := provider.ChatStream(ctx, []llm.Message{
		{Role: "user", Content: "Count from one to five in words."},
	}, llm.WithMaxTokens(120))
	if err != nil {
		t.Fatalf("ChatStream failed: %v", err)
	}

	var sb strings.Builder
	for delta := range deltas {
		if delta.Err != nil {
			t.Fatalf("Stream error: %v", delta.Err)
		}
		sb.WriteString(delta.Text)
	}

	t.Logf("✅ Streamed: %s", sb.String())

	if sb.Len() == 0 {
		t.Error("Streamed response should not be empty")
	}
}
