// Package matching scores the overlap between required and candidate skills.
package matching

import (
	"math"
	"strings"
)

// EquivalenceFunc decides whether two skill strings name the same skill.
type EquivalenceFunc func(a, b string) bool

// Result is the deterministic outcome of matching one subject (a job or a
// candidate) against a skill list.
type Result struct {
	SubjectID       string   `json:"subject_id"`
	MatchingSkills  []string `json:"matching_skills"`
	MissingSkills   []string `json:"missing_skills"`
	MatchPercentage int      `json:"match_percentage"`
}

// Matcher applies an equivalence rule to skill lists. The zero value uses Equivalent.
type Matcher struct {
	equivalent EquivalenceFunc
}

// NewMatcher returns a matcher using eq. A nil eq falls back to Equivalent.
func NewMatcher(eq EquivalenceFunc) *Matcher {
	return &Matcher{equivalent: eq}
}

var defaultMatcher = NewMatcher(Equivalent)

// Default returns the matcher built on bidirectional substring equivalence.
func Default() *Matcher {
	return defaultMatcher
}

// Equivalent reports whether a and b are equal or one contains the other after
// lower-casing and trimming. Blank strings are never equivalent.
// "Java" and "JavaScript" are equivalent under this rule.
func Equivalent(a, b string) bool {
	a = strings.ToLower(strings.TrimSpace(a))
	b = strings.ToLower(strings.TrimSpace(b))
	if a == "" || b == "" {
		return false
	}
	return a == b || strings.Contains(a, b) || strings.Contains(b, a)
}

func (m *Matcher) eq() EquivalenceFunc {
	if m == nil || m.equivalent == nil {
		return Equivalent
	}
	return m.equivalent
}

// Matching returns the required skills that have an equivalent candidate skill,
// in required order.
func (m *Matcher) Matching(required, candidate []string) []string {
	matching, _ := m.partition(required, candidate)
	return matching
}

// Missing returns the required skills without an equivalent candidate skill,
// in required order.
func (m *Matcher) Missing(required, candidate []string) []string {
	_, missing := m.partition(required, candidate)
	return missing
}

// Compute matches candidate against required for the given subject.
func (m *Matcher) Compute(subjectID string, required, candidate []string) Result {
	matching, missing := m.partition(required, candidate)
	return Result{
		SubjectID:       subjectID,
		MatchingSkills:  matching,
		MissingSkills:   missing,
		MatchPercentage: Percentage(len(matching), len(required)),
	}
}

// Match is Compute without a subject.
func (m *Matcher) Match(required, candidate []string) Result {
	return m.Compute("", required, candidate)
}

func (m *Matcher) partition(required, candidate []string) ([]string, []string) {
	eq := m.eq()
	matching := make([]string, 0, len(required))
	missing := make([]string, 0)

	for _, r := range required {
		found := false
		for _, c := range candidate {
			if eq(r, c) {
				found = true
				break
			}
		}
		if found {
			matching = append(matching, r)
		} else {
			missing = append(missing, r)
		}
	}

	return matching, missing
}

// Percentage returns round(100*matched/total), or 0 when total is 0.
func Percentage(matched, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(100 * float64(matched) / float64(total)))
}

// Matching uses the default matcher.
func Matching(required, candidate []string) []string {
	return defaultMatcher.Matching(required, candidate)
}

// Missing uses the default matcher.
func Missing(required, candidate []string) []string {
	return defaultMatcher.Missing(required, candidate)
}

// Compute uses the default matcher.
func Compute(subjectID string, required, candidate []string) Result {
	return defaultMatcher.Compute(subjectID, required, candidate)
}

// Match uses the default matcher.
func Match(required, candidate []string) Result {
	return defaultMatcher.Match(required, candidate)
}
