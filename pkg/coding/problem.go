package coding

import "strings"

// Example is one worked input/output pair for a problem statement.
type Example struct {
	Input       string `json:"input"`
	Output      string `json:"output"`
	Explanation string `json:"explanation,omitempty"`
}

// Problem is a coding challenge presented during a coding round.
type Problem struct {
	ID          string            `json:"id"`
	Title       string            `json:"title"`
	Difficulty  string            `json:"difficulty"` // "easy", "medium", "hard"
	Description string            `json:"description"`
	Examples    []Example         `json:"examples"`
	Constraints []string          `json:"constraints"`
	StarterCode map[string]string `json:"starter_code"`
	Tags        []string          `json:"tags"`
}

// SupportedLanguages is the allow-list for code submissions. It matches the
// keys of every problem's StarterCode map.
var SupportedLanguages = map[string]bool{
	"python":     true,
	"javascript": true,
	"typescript": true,
	"java":       true,
	"cpp":        true,
	"go":         true,
}

// LanguageSupported reports whether submissions in the given language are
// accepted.
func LanguageSupported(language string) bool {
	return SupportedLanguages[strings.ToLower(language)]
}
