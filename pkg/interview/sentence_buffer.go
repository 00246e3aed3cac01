package interview

import (
	"regexp"
	"strings"
)

// sentenceBoundary captures a run of text ending in sentence punctuation,
// optionally followed by closing quotes or brackets, then whitespace.
var sentenceBoundary = regexp.MustCompile(`([^.!?]*[.!?]+["')\]]*)\s+`)

// abbreviations look like sentence endings but are not.
var abbreviations = map[string]struct{}{
	"mr.": {}, "mrs.": {}, "ms.": {}, "dr.": {}, "prof.": {}, "sr.": {}, "jr.": {},
	"vs.": {}, "etc.": {}, "i.e.": {}, "e.g.": {}, "a.m.": {}, "p.m.": {},
	"inc.": {}, "ltd.": {}, "corp.": {}, "co.": {}, "st.": {}, "ave.": {},
	"jan.": {}, "feb.": {}, "mar.": {}, "apr.": {}, "jun.": {}, "jul.": {},
	"aug.": {}, "sep.": {}, "oct.": {}, "nov.": {}, "dec.": {},
}

// SentenceBuffer accumulates LLM tokens and yields complete sentences so
// synthesis gets natural chunks instead of single tokens.
type SentenceBuffer struct {
	minChars int
	buf      string
}

func NewSentenceBuffer(minChars int) *SentenceBuffer {
	return &SentenceBuffer{minChars: minChars}
}

func endsWithAbbreviation(s string) bool {
	lower := strings.ToLower(strings.TrimRight(s, " \t\n"))
	for abbrev := range abbreviations {
		if strings.HasSuffix(lower, abbrev) {
			return true
		}
	}
	return false
}

// extract pulls complete sentences off the front of the buffer, keeping
// any trailing incomplete text. Boundaries that end in a known
// abbreviation are merged into the following sentence.
func (b *SentenceBuffer) extract() []string {
	var sentences []string

	for {
		loc := sentenceBoundary.FindStringSubmatchIndex(b.buf)
		if loc == nil {
			break
		}

		candidate := strings.TrimSpace(b.buf[loc[2]:loc[3]])
		if endsWithAbbreviation(candidate) {
			// Extend through the next boundary past the abbreviation
			rest := b.buf[loc[1]:]
			next := sentenceBoundary.FindStringSubmatchIndex(rest)
			if next == nil {
				break
			}
			end := loc[1] + next[1]
			sentences = append(sentences, strings.TrimSpace(b.buf[:end]))
			b.buf = b.buf[end:]
			continue
		}

		sentences = append(sentences, candidate)
		b.buf = b.buf[loc[1]:]
	}

	return sentences
}

// AddToken appends a token to the buffer and returns any sentences it
// completed. A sentence shorter than the minimum character threshold is
// held back and merged with what follows.
func (b *SentenceBuffer) AddToken(token string) []string {
	b.buf += token

	sentences := b.extract()
	if len(sentences) == 0 {
		return nil
	}

	var out []string
	for i, sentence := range sentences {
		if len(sentence) >= b.minChars {
			out = append(out, sentence)
			continue
		}
		// Too short; put this and everything after it back in front
		b.buf = strings.Join(sentences[i:], " ") + " " + b.buf
		break
	}
	return out
}

// Flush returns whatever is left in the buffer, complete sentence or not,
// and clears it. The boolean is false when the buffer held only whitespace.
func (b *SentenceBuffer) Flush() (string, bool) {
	remainder := strings.TrimSpace(b.buf)
	b.buf = ""
	if remainder == "" {
		return "", false
	}
	return remainder, true
}

// Reset clears the buffer without yielding its content.
func (b *SentenceBuffer) Reset() {
	b.buf = ""
}
