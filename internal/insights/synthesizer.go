// Package insights turns extracted skills and match results into a career
// insight report.
package insights

import (
	"fmt"
	"math"
	"strings"

	"github.com/spigell/skillmatch/internal/matching"
	"github.com/spigell/skillmatch/internal/vocabulary"
)

const (
	DefaultGapLimit    = 5
	MaxGapLimit        = 8
	MaxCareerPaths     = 8
	learningPriorities = 3
)

// Synthesizer builds reports. It holds no mutable state and is safe for
// concurrent use.
type Synthesizer struct {
	vocabulary *vocabulary.Vocabulary
	gapLimit   int
}

// Option configures a Synthesizer.
type Option func(*Synthesizer)

// WithGapLimit sets how many skill gaps are reported, clamped to [5, 8].
func WithGapLimit(n int) Option {
	return func(s *Synthesizer) {
		s.gapLimit = max(DefaultGapLimit, min(n, MaxGapLimit))
	}
}

// New returns a synthesizer categorising skills with v.
func New(v *vocabulary.Vocabulary, opts ...Option) *Synthesizer {
	s := &Synthesizer{vocabulary: v, gapLimit: DefaultGapLimit}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var defaultSynthesizer = New(vocabulary.Default())

// Synthesize uses the default vocabulary and gap limit.
func Synthesize(skills []string, results []matching.Result) *Report {
	return defaultSynthesizer.Synthesize(skills, results)
}

// Synthesize builds the report. Identical inputs give identical reports; empty
// inputs give an empty report with a readiness score of 0.
func (s *Synthesizer) Synthesize(skills []string, results []matching.Result) *Report {
	report := emptyReport()

	skills = distinct(skills)
	if len(skills) == 0 && len(results) == 0 {
		return report
	}

	report.SkillBreakdown = s.Breakdown(skills)
	b := report.SkillBreakdown

	if len(skills) > 0 {
		report.apply(diversityBands.Select(b.Total))
		report.apply(technicalBands.Select(b.Technical))
		report.apply(leadershipBands.Select(b.Soft))
		report.apply(frameworkBands.Select(b.Framework))
		report.apply(cloudBands.Select(b.Cloud))
		report.apply(dataBands.Select(b.Data))
	}

	if len(results) > 0 {
		report.MarketAlignment = MarketAlignment(results)
		report.apply(marketBands.Select(report.MarketAlignment))
	}

	report.TopSkillGaps = TopSkillGaps(results, s.gapLimit)
	if len(report.TopSkillGaps) > 0 {
		report.Recommendations = append(report.Recommendations, learningPriority(report.TopSkillGaps))
	}

	report.CareerPaths = dedupe(report.CareerPaths, MaxCareerPaths)
	report.ReadinessScore = Readiness(b.Total, report.MarketAlignment, b.Technical, b.Soft)

	return report
}

// Breakdown counts skills per vocabulary category.
func (s *Synthesizer) Breakdown(skills []string) SkillBreakdown {
	var b SkillBreakdown
	for _, skill := range distinct(skills) {
		b.Total++
		for _, c := range s.vocabulary.CategoriesOf(skill) {
			switch c {
			case vocabulary.Technical:
				b.Technical++
			case vocabulary.Soft:
				b.Soft++
			case vocabulary.Framework:
				b.Framework++
			case vocabulary.Cloud:
				b.Cloud++
			case vocabulary.Data:
				b.Data++
			}
		}
	}
	return b
}

// MarketAlignment is the rounded mean match percentage, or 0 without results.
func MarketAlignment(results []matching.Result) int {
	if len(results) == 0 {
		return 0
	}
	sum := 0
	for _, r := range results {
		sum += r.MatchPercentage
	}
	return int(math.Round(float64(sum) / float64(len(results))))
}

// Readiness combines breadth, alignment and category depth into a 0-100 score.
// Each term is capped so no single dimension dominates.
func Readiness(skillCount, marketAlignment, technical, soft int) int {
	score := math.Min(float64(skillCount)*4, 40) +
		math.Min(float64(marketAlignment)*0.3, 30) +
		math.Min(float64(technical)*2, 20) +
		math.Min(float64(soft)*2, 10)
	return int(math.Round(score))
}

// TopSkillGaps counts missing skills across results case-insensitively and
// returns the most frequent ones. Ties keep first-seen order; the first seen
// spelling is reported.
func TopSkillGaps(results []matching.Result, limit int) []SkillGap {
	gaps := make([]SkillGap, 0)
	index := make(map[string]int)

	for _, r := range results {
		for _, skill := range r.MissingSkills {
			key := strings.ToLower(strings.TrimSpace(skill))
			if key == "" {
				continue
			}
			if i, ok := index[key]; ok {
				gaps[i].Count++
				continue
			}
			index[key] = len(gaps)
			gaps = append(gaps, SkillGap{Skill: strings.TrimSpace(skill), Count: 1})
		}
	}

	// insertion sort keeps equal counts in first-seen order
	for i := 1; i < len(gaps); i++ {
		for j := i; j > 0 && gaps[j].Count > gaps[j-1].Count; j-- {
			gaps[j], gaps[j-1] = gaps[j-1], gaps[j]
		}
	}

	if limit > 0 && len(gaps) > limit {
		gaps = gaps[:limit]
	}
	return gaps
}

func learningPriority(gaps []SkillGap) string {
	n := min(len(gaps), learningPriorities)
	names := make([]string, 0, n)
	for _, g := range gaps[:n] {
		names = append(names, g.Skill)
	}
	return fmt.Sprintf("Prioritise learning %s, the skills most often missing for the reviewed jobs.", strings.Join(names, ", "))
}

func distinct(skills []string) []string {
	out := make([]string, 0, len(skills))
	seen := make(map[string]struct{}, len(skills))
	for _, s := range skills {
		key := strings.ToLower(strings.TrimSpace(s))
		if key == "" {
			continue
		}
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, s)
	}
	return out
}

func dedupe(values []string, limit int) []string {
	out := make([]string, 0, len(values))
	seen := make(map[string]struct{}, len(values))
	for _, v := range values {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
		if len(out) == limit {
			break
		}
	}
	return out
}
