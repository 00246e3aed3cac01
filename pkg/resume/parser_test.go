package resume

import (
	"context"
	"errors"
	"testing"

	"ai-interview-be/internal/pkg/logger"
	"ai-interview-be/pkg/llm"
)

type stubLLM struct {
	response string
	err      error
	calls    int
}

func (s *stubLLM) Chat(ctx context.Context, history []llm.Message, options ...llm.Option) (string, error) {
	return s.response, s.err
}

func (s *stubLLM) ChatStream(ctx context.Context, history []llm.Message, options ...llm.Option) (<-chan llm.StreamDelta, error) {
	ch := make(chan llm.StreamDelta, 1)
	ch <- llm.StreamDelta{Text: s.response}
	close(ch)
	return ch, s.err
}

func (s *stubLLM) Generate(ctx context.Context, prompt string, options ...llm.Option) (string, error) {
	s.calls++
	return s.response, s.err
}

const sampleExtraction = `{
  "contact": {"name": "Ada Lovelace", "email": "ada@example.com"},
  "summary": "Backend engineer with a focus on distributed systems.",
  "experiences": [
    {"company": "Analytical Engines", "title": "Senior Engineer", "start_date": "2019", "end_date": "Present"}
  ],
  "education": [{"institution": "University of London", "degree": "BSc", "field": "Mathematics"}],
  "skills": ["Go", "Python", "PostgreSQL"],
  "certifications": []
}`

func TestParseExtractsStructuredData(t *testing.T) {
	parser := NewParser(&stubLLM{response: sampleExtraction}, logger.NopLogger{})

	parsed, err := parser.Parse(context.Background(), "Ada Lovelace\nSenior Engineer at Analytical Engines")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if parsed.Contact.Name != "Ada Lovelace" {
		t.Errorf("Name = %q, want Ada Lovelace", parsed.Contact.Name)
	}
	if len(parsed.Skills) != 3 {
		t.Errorf("Skills = %d, want 3", len(parsed.Skills))
	}
	if len(parsed.Experiences) != 1 || parsed.Experiences[0].Company != "Analytical Engines" {
		t.Errorf("Experiences = %+v, want one entry at Analytical Engines", parsed.Experiences)
	}
	if parsed.RawText == "" {
		t.Error("RawText should carry the original text")
	}
}

func TestParseStripsCodeFence(t *testing.T) {
	fenced := "```json\n" + sampleExtraction + "\n```"
	parser := NewParser(&stubLLM{response: fenced}, logger.NopLogger{})

	parsed, err := parser.Parse(context.Background(), "some resume text")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if parsed.Contact.Name != "Ada Lovelace" {
		t.Errorf("Name = %q, want Ada Lovelace", parsed.Contact.Name)
	}
}

func TestParseCachesByContent(t *testing.T) {
	model := &stubLLM{response: sampleExtraction}
	parser := NewParser(model, logger.NopLogger{})

	for i := 0; i < 3; i++ {
		if _, err := parser.Parse(context.Background(), "identical resume text"); err != nil {
			t.Fatalf("Parse() error = %v", err)
		}
	}
	if model.calls != 1 {
		t.Errorf("model called %d times, want 1", model.calls)
	}

	if _, err := parser.Parse(context.Background(), "a different resume"); err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if model.calls != 2 {
		t.Errorf("model called %d times after new content, want 2", model.calls)
	}
}

func TestParseFallsBackOnModelFailure(t *testing.T) {
	parser := NewParser(&stubLLM{err: errors.New("provider down")}, logger.NopLogger{})

	parsed, err := parser.Parse(context.Background(), "unreadable resume")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if parsed.Contact.Name != "Unknown Candidate" {
		t.Errorf("Name = %q, want Unknown Candidate", parsed.Contact.Name)
	}
	if parsed.RawText != "unreadable resume" {
		t.Errorf("RawText = %q, want the original text", parsed.RawText)
	}
}

func TestParseRejectsEmptyText(t *testing.T) {
	parser := NewParser(&stubLLM{response: sampleExtraction}, logger.NopLogger{})
	if _, err := parser.Parse(context.Background(), "   \n  "); err == nil {
		t.Error("expected an error for empty text")
	}
}
