package interview

import (
	"reflect"
	"strings"
	"testing"
)

func collectSentences(t *testing.T, minChars int, tokens []string) []string {
	t.Helper()
	buf := NewSentenceBuffer(minChars)
	var got []string
	for _, token := range tokens {
		got = append(got, buf.AddToken(token)...)
	}
	if remainder, ok := buf.Flush(); ok {
		got = append(got, remainder)
	}
	return got
}

func TestSentenceBufferSplitsOnPunctuation(t *testing.T) {
	tokens := []string{"Hello", " there", ", candidate. ", "Tell me about", " yourself. "}
	got := collectSentences(t, 5, tokens)
	want := []string{"Hello there, candidate.", "Tell me about yourself."}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("sentences = %v, want %v", got, want)
	}
}

func TestSentenceBufferAbbreviationsDoNotSplit(t *testing.T) {
	tokens := []string{"Dr.", " Smith", " went", " home.", " He", " was", " tired."}
	got := collectSentences(t, 5, tokens)
	want := []string{"Dr. Smith went home.", "He was tired."}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("sentences = %v, want %v", got, want)
	}
	if len(got) != 2 {
		t.Fatalf("expected exactly 2 sentences, got %d", len(got))
	}
}

func TestSentenceBufferAbbreviationTable(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		wantN int
		first string
	}{
		{"honorific", "Mr. Jones agreed to the plan. Then he left. ", 2, "Mr. Jones agreed to the plan."},
		{"versus", "He compared Go vs. Rust in detail. Then he chose Go. ", 2, "He compared Go vs. Rust in detail."},
		{"etcetera", "We tested caching, queues, etc. before launch. Then we shipped. ", 2, "We tested caching, queues, etc. before launch."},
		{"plain", "First point here. Second point there. ", 2, "First point here."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := collectSentences(t, 5, []string{tt.text})
			if len(got) != tt.wantN {
				t.Fatalf("got %d sentences %v, want %d", len(got), got, tt.wantN)
			}
			if got[0] != tt.first {
				t.Errorf("first sentence = %q, want %q", got[0], tt.first)
			}
		})
	}
}

func TestSentenceBufferDefersShortSentences(t *testing.T) {
	buf := NewSentenceBuffer(15)

	if got := buf.AddToken("Ok. "); got != nil {
		t.Fatalf("short sentence emitted at boundary: %v", got)
	}
	if got := buf.AddToken("That makes sense to me. "); got != nil {
		t.Fatalf("expected short lead sentence to hold back emission, got %v", got)
	}

	remainder, ok := buf.Flush()
	if !ok {
		t.Fatal("expected flush to return deferred content")
	}
	if !strings.Contains(remainder, "Ok.") || !strings.Contains(remainder, "That makes sense to me.") {
		t.Errorf("flush = %q, want both deferred sentences", remainder)
	}
}

func TestSentenceBufferFlushAndReset(t *testing.T) {
	buf := NewSentenceBuffer(5)

	buf.AddToken("incomplete thought")
	remainder, ok := buf.Flush()
	if !ok || remainder != "incomplete thought" {
		t.Errorf("flush = %q, %v; want %q, true", remainder, ok, "incomplete thought")
	}

	// Flush after flush is empty
	if _, ok := buf.Flush(); ok {
		t.Error("second flush should be empty")
	}

	buf.AddToken("discard me")
	buf.Reset()
	if _, ok := buf.Flush(); ok {
		t.Error("flush after reset should be empty")
	}
}
