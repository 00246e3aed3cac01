package resume

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/patrickmn/go-cache"

	"ai-interview-be/internal/pkg/logger"
	"ai-interview-be/pkg/llm"
)

const extractionPrompt = `Extract structured information from this resume. Be accurate and only extract information that is explicitly stated in the resume. Do not infer or make up any information.

RESUME TEXT:
%s

Extract the following:
1. Contact information (name is required, others if available)
2. Professional summary if present
3. All work experiences with company, title, dates, and key achievements
4. Education history with institution, degree, field, and dates
5. Skills (both technical and soft skills)
6. Certifications if any

Respond with ONLY a JSON object in this exact shape, no prose before or after:
{
  "contact": {"name": "", "email": "", "phone": "", "location": "", "linkedin": ""},
  "summary": "",
  "experiences": [{"company": "", "title": "", "start_date": "", "end_date": "", "description": "", "highlights": [""]}],
  "education": [{"institution": "", "degree": "", "field": "", "graduation_date": ""}],
  "skills": [""],
  "certifications": [""]
}`

type Parser struct {
	model llm.LLMProvider
	cache *cache.Cache
	log   logger.ILogger
}

func NewParser(model llm.LLMProvider, log logger.ILogger) *Parser {
	// Parses are cached for 24 hours, keyed by document content, and
	// expired entries are purged hourly
	c := cache.New(24*time.Hour, 1*time.Hour)
	return &Parser{model: model, cache: c, log: log}
}

func contentKey(text string) string {
	sum := sha256.Sum256([]byte(text))
	return hex.EncodeToString(sum[:])
}

// Parse extracts structured candidate data from raw resume text. When the
// model call or the JSON decode fails, it falls back to a minimal result
// carrying only the raw text so the interview can still proceed.
func (p *Parser) Parse(ctx context.Context, text string) (*ParsedResume, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, fmt.Errorf("resume text is empty")
	}

	// 1. Cache lookup by content hash
	key := contentKey(text)
	if x, found := p.cache.Get(key); found {
		p.log.Debug("ResumeParser", "Cache hit", map[string]interface{}{"key": key[:12]})
		return x.(*ParsedResume), nil
	}

	// 2. LLM extraction
	parsed, err := p.extract(ctx, text)
	if err != nil {
		p.log.Warn("ResumeParser", "Extraction failed, using raw text fallback", map[string]interface{}{
			"error": err.Error(),
		})
		parsed = &ParsedResume{
			Contact: ContactInfo{Name: "Unknown Candidate"},
			RawText: text,
		}
	}
	parsed.RawText = text

	// 3. Cache and return
	p.cache.Set(key, parsed, cache.DefaultExpiration)
	p.log.Info("ResumeParser", "Resume parsed", map[string]interface{}{
		"candidate":   parsed.Contact.Name,
		"skills":      len(parsed.Skills),
		"experiences": len(parsed.Experiences),
	})
	return parsed, nil
}

func (p *Parser) extract(ctx context.Context, text string) (*ParsedResume, error) {
	response, err := p.model.Generate(ctx, fmt.Sprintf(extractionPrompt, text),
		llm.WithTemperature(0.2),
		llm.WithMaxTokens(4096),
	)
	if err != nil {
		return nil, fmt.Errorf("resume extraction: %w", err)
	}

	var parsed ParsedResume
	if err := json.Unmarshal([]byte(stripCodeFence(response)), &parsed); err != nil {
		return nil, fmt.Errorf("decode extraction result: %w", err)
	}
	if parsed.Contact.Name == "" {
		parsed.Contact.Name = "Unknown"
	}
	return &parsed, nil
}

// stripCodeFence removes a markdown fence some models wrap JSON output in.
func stripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "```") {
		if i := strings.Index(s, "\n"); i >= 0 {
			s = s[i+1:]
		}
		s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	}
	return strings.TrimSpace(s)
}
