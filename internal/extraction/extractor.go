// Package extraction detects vocabulary skills in free text.
package extraction

import (
	"math"
	"sort"
	"strings"

	"github.com/spigell/skillmatch/internal/vocabulary"
)

const (
	baseConfidence       = 0.5
	sectionBonus         = 0.3
	occurrenceBonus      = 0.1
	maxOccurrenceBonus   = 0.3
	actionVerbBonus      = 0.2
	proximityWindowChars = 50
)

var (
	sectionHeaders = []string{"skills", "technologies", "projects"}
	actionVerbs    = []string{"developed", "built", "created", "implemented", "used", "worked with"}
)

// ExtractedSkill is a detected skill with an auxiliary confidence in [0,1].
type ExtractedSkill struct {
	Skill      string  `json:"skill"`
	Confidence float64 `json:"confidence"`
}

type skillPatterns struct {
	skill    string
	patterns []string
}

// Extractor scans text for skills of a vocabulary. It is safe for concurrent use.
type Extractor struct {
	skills []skillPatterns
}

// New prepares match patterns for every skill of the vocabulary.
func New(v *vocabulary.Vocabulary) *Extractor {
	all := v.All()
	e := &Extractor{skills: make([]skillPatterns, 0, len(all))}
	for _, skill := range all {
		e.skills = append(e.skills, skillPatterns{skill: skill, patterns: Patterns(skill)})
	}
	return e
}

// Patterns returns the lower-cased spellings a skill is searched under: as is,
// without dots, without whitespace, without hyphens and with dots as spaces.
func Patterns(skill string) []string {
	base := strings.ToLower(strings.TrimSpace(skill))
	if base == "" {
		return nil
	}

	candidates := []string{
		base,
		strings.ReplaceAll(base, ".", ""),
		strings.Join(strings.Fields(base), ""),
		strings.ReplaceAll(base, "-", ""),
		strings.TrimSpace(strings.ReplaceAll(base, ".", " ")),
	}

	out := make([]string, 0, len(candidates))
	seen := make(map[string]struct{}, len(candidates))
	for _, p := range candidates {
		if p == "" {
			continue
		}
		if _, ok := seen[p]; ok {
			continue
		}
		seen[p] = struct{}{}
		out = append(out, p)
	}
	return out
}

// Extract returns the distinct vocabulary skills found in text, ordered by
// confidence descending and by catalog order on ties. Empty text yields an
// empty list.
func (e *Extractor) Extract(text string) []ExtractedSkill {
	found := make([]ExtractedSkill, 0)
	if e == nil || strings.TrimSpace(text) == "" {
		return found
	}

	normalized := strings.ToLower(text)
	headers := positionsAfter(normalized, sectionHeaders)
	verbs := positionsAfter(normalized, actionVerbs)

	for _, sp := range e.skills {
		if !containsAny(normalized, sp.patterns) {
			continue
		}
		found = append(found, ExtractedSkill{
			Skill:      sp.skill,
			Confidence: confidence(normalized, sp.patterns, headers, verbs),
		})
	}

	sort.SliceStable(found, func(i, j int) bool {
		return found[i].Confidence > found[j].Confidence
	})

	return found
}

// Names returns the skill names of the extracted list in order.
func Names(skills []ExtractedSkill) []string {
	names := make([]string, 0, len(skills))
	for _, s := range skills {
		names = append(names, s.Skill)
	}
	return names
}

func confidence(text string, patterns []string, headers, verbs []int) float64 {
	score := baseConfidence

	if nearAny(text, patterns, headers) {
		score += sectionBonus
	}

	score += math.Min(float64(occurrences(text, patterns))*occurrenceBonus, maxOccurrenceBonus)

	if nearAny(text, patterns, verbs) {
		score += actionVerbBonus
	}

	score = math.Max(0, math.Min(1, score))
	return math.Round(score*100) / 100
}

// positionsAfter returns the offsets right after every occurrence of the tokens.
func positionsAfter(text string, tokens []string) []int {
	var positions []int
	for _, token := range tokens {
		offset := 0
		for {
			idx := strings.Index(text[offset:], token)
			if idx < 0 {
				break
			}
			end := offset + idx + len(token)
			positions = append(positions, end)
			offset = end
		}
	}
	return positions
}

// nearAny reports whether a pattern starts within the proximity window after one of the positions.
func nearAny(text string, patterns []string, positions []int) bool {
	for _, pos := range positions {
		rest := text[pos:]
		for _, p := range patterns {
			if idx := strings.Index(rest, p); idx >= 0 && idx <= proximityWindowChars {
				return true
			}
		}
	}
	return false
}

// occurrences counts the most frequent spelling of the skill.
func occurrences(text string, patterns []string) int {
	best := 0
	for _, p := range patterns {
		if n := strings.Count(text, p); n > best {
			best = n
		}
	}
	return best
}

func containsAny(text string, patterns []string) bool {
	for _, p := range patterns {
		if strings.Contains(text, p) {
			return true
		}
	}
	return false
}
