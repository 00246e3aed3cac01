package coding

import (
	"math/rand"
	"strings"

	"ai-interview-be/internal/pkg/logger"
)

// CandidateProfile is the slice of a candidate's background the selector
// cares about: normalized skills and how many roles they have held.
type CandidateProfile struct {
	Skills          []string
	ExperienceCount int
}

// skillToTags maps resume skills to problem tags.
var skillToTags = map[string][]string{
	"python":           {"arrays", "strings", "hash-table", "dynamic-programming"},
	"javascript":       {"arrays", "strings", "hash-table", "design"},
	"typescript":       {"arrays", "strings", "hash-table", "design"},
	"java":             {"arrays", "linked-list", "trees", "design"},
	"c++":              {"arrays", "two-pointers", "binary-search", "dynamic-programming"},
	"go":               {"arrays", "strings", "hash-table", "design"},
	"data structures":  {"arrays", "linked-list", "trees", "stack", "hash-table"},
	"algorithms":       {"dynamic-programming", "binary-search", "bfs", "dfs", "backtracking"},
	"sql":              {"arrays", "hash-table"},
	"databases":        {"design", "hash-table"},
	"react":            {"arrays", "strings", "hash-table"},
	"node":             {"arrays", "strings", "design"},
	"api":              {"design", "hash-table"},
	"system design":    {"design", "hash-table", "linked-list"},
	"machine learning": {"arrays", "dynamic-programming", "matrix"},
	"backend":          {"design", "hash-table", "linked-list", "trees"},
	"frontend":         {"arrays", "strings", "stack"},
	"full stack":       {"arrays", "hash-table", "design"},
}

// roleToTags maps the target role to preferred problem tags.
var roleToTags = map[string][]string{
	"software engineer":   {"arrays", "hash-table", "strings", "linked-list"},
	"backend engineer":    {"design", "hash-table", "linked-list", "trees"},
	"frontend engineer":   {"arrays", "strings", "stack", "hash-table"},
	"full stack engineer": {"arrays", "hash-table", "design", "strings"},
	"data engineer":       {"arrays", "hash-table", "dynamic-programming"},
	"ml engineer":         {"arrays", "dynamic-programming", "matrix"},
	"devops engineer":     {"arrays", "strings", "hash-table"},
	"sre":                 {"design", "hash-table", "arrays"},
}

// experienceToDifficulty maps a seniority estimate to problem difficulty.
var experienceToDifficulty = map[string]string{
	"entry":     "easy",
	"junior":    "easy",
	"mid":       "medium",
	"senior":    "medium",
	"staff":     "hard",
	"principal": "hard",
}

func experienceLevel(profile *CandidateProfile) string {
	if profile == nil {
		return "entry"
	}
	switch {
	case profile.ExperienceCount >= 5:
		return "senior"
	case profile.ExperienceCount >= 3:
		return "mid"
	case profile.ExperienceCount >= 1:
		return "junior"
	default:
		return "entry"
	}
}

func tagsForSkills(skills []string) []string {
	set := make(map[string]bool)
	for _, skill := range skills {
		lower := strings.ToLower(skill)
		for keyword, tags := range skillToTags {
			if strings.Contains(lower, keyword) {
				for _, tag := range tags {
					set[tag] = true
				}
			}
		}
	}
	tags := make([]string, 0, len(set))
	for tag := range set {
		tags = append(tags, tag)
	}
	return tags
}

func tagsForRole(role string) []string {
	if role == "" {
		return nil
	}
	lower := strings.ToLower(role)
	for key, tags := range roleToTags {
		if strings.Contains(lower, key) {
			return tags
		}
	}
	return nil
}

// Selector picks problems matched to a candidate's profile and target
// role. It narrows by tags and difficulty, then falls back to wider pools
// until something qualifies.
type Selector struct {
	log  logger.ILogger
	rand *rand.Rand
}

func NewSelector(log logger.ILogger) *Selector {
	return &Selector{log: log}
}

// NewSeededSelector fixes the random source, for deterministic tests.
func NewSeededSelector(log logger.ILogger, seed int64) *Selector {
	return &Selector{log: log, rand: rand.New(rand.NewSource(seed))}
}

func (s *Selector) intn(n int) int {
	if s.rand != nil {
		return s.rand.Intn(n)
	}
	return rand.Intn(n)
}

// Select picks a problem for the candidate, avoiding already-seen ids.
func (s *Selector) Select(profile *CandidateProfile, targetRole string, excludeIDs []string) Problem {
	excluded := make(map[string]bool, len(excludeIDs))
	for _, id := range excludeIDs {
		excluded[id] = true
	}

	// 1. Difficulty from experience
	level := experienceLevel(profile)
	difficulty := experienceToDifficulty[level]
	if difficulty == "" {
		difficulty = "medium"
	}

	// 2. Tags from skills and role, role tags first
	var skillTags []string
	if profile != nil {
		skillTags = tagsForSkills(profile.Skills)
	}
	roleTags := tagsForRole(targetRole)

	tagSet := make(map[string]bool)
	for _, tag := range append(append([]string{}, roleTags...), skillTags...) {
		tagSet[tag] = true
	}
	allTags := make([]string, 0, len(tagSet))
	for tag := range tagSet {
		allTags = append(allTags, tag)
	}

	s.log.Info("ProblemSelector", "Selecting problem", map[string]interface{}{
		"experience": level,
		"difficulty": difficulty,
		"role":       targetRole,
		"tags":       allTags,
	})

	// 3. Narrow: tags + difficulty, then difficulty, then anything unseen
	var candidates []Problem
	if len(allTags) > 0 {
		for _, p := range ProblemsByTags(allTags) {
			if p.Difficulty == difficulty && !excluded[p.ID] {
				candidates = append(candidates, p)
			}
		}
	}
	if len(candidates) == 0 {
		for _, p := range ProblemsByDifficulty(difficulty) {
			if !excluded[p.ID] {
				candidates = append(candidates, p)
			}
		}
	}
	if len(candidates) == 0 {
		for _, p := range AllProblems() {
			if !excluded[p.ID] {
				candidates = append(candidates, p)
			}
		}
	}
	if len(candidates) == 0 {
		candidates = AllProblems()
	}

	// 4. Weighted pick favoring problems with more matching tags
	var selected Problem
	if len(allTags) > 0 && len(candidates) > 1 {
		var weighted []Problem
		for _, p := range candidates {
			matches := 0
			for _, tag := range p.Tags {
				if tagSet[tag] {
					matches++
				}
			}
			weight := matches * 2
			if weight < 1 {
				weight = 1
			}
			for i := 0; i < weight; i++ {
				weighted = append(weighted, p)
			}
		}
		selected = weighted[s.intn(len(weighted))]
	} else {
		selected = candidates[s.intn(len(candidates))]
	}

	s.log.Info("ProblemSelector", "Selected problem", map[string]interface{}{
		"problem_id": selected.ID,
		"title":      selected.Title,
		"difficulty": selected.Difficulty,
	})
	return selected
}
