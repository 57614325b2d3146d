// Package ranking orders jobs or candidates by their match percentage.
package ranking

import (
	"sort"

	"github.com/spigell/skillmatch/internal/matching"
)

// DefaultRecommendedThreshold is the minimum score an entry needs to be
// surfaced when only recommended entries are requested.
const DefaultRecommendedThreshold = 60

// Requirer is anything carrying required skills, usually a job.
type Requirer interface {
	SubjectID() string
	Requirements() []string
}

// Skilled is anything carrying a skill list, usually a candidate.
type Skilled interface {
	SubjectID() string
	SkillList() []string
}

// Entry is an item with its deterministic match result.
type Entry[T any] struct {
	Item  T
	Match matching.Result
}

// Ranked is an entry after ranking. DisplayScore equals Match.MatchPercentage
// unless a jitter was applied; Match itself is never altered.
type Ranked[T any] struct {
	Item         T               `json:"item"`
	Match        matching.Result `json:"match"`
	DisplayScore int             `json:"display_score"`
}

// Options tune ranking.
type Options struct {
	// RecommendedOnly drops entries scoring below MinimumScore.
	RecommendedOnly bool
	// MinimumScore is used with RecommendedOnly. Zero means DefaultRecommendedThreshold.
	MinimumScore int
	// Jitter, when set, adds presentation-only variance to DisplayScore before sorting.
	Jitter *Jitter
	// Matcher computes match results. Nil means matching.Default().
	Matcher *matching.Matcher
}

func (o Options) threshold() int {
	if o.MinimumScore > 0 {
		return o.MinimumScore
	}
	return DefaultRecommendedThreshold
}

func (o Options) matcher() *matching.Matcher {
	if o.Matcher == nil {
		return matching.Default()
	}
	return o.Matcher
}

// Rank sorts entries by score descending. Entries with equal scores keep their
// input order.
func Rank[T any](entries []Entry[T], opts Options) []Ranked[T] {
	ranked := make([]Ranked[T], 0, len(entries))
	for _, e := range entries {
		score := e.Match.MatchPercentage
		if opts.Jitter != nil {
			score = opts.Jitter.Apply(score)
		}
		if opts.RecommendedOnly && score < opts.threshold() {
			continue
		}
		ranked = append(ranked, Ranked[T]{Item: e.Item, Match: e.Match, DisplayScore: score})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].DisplayScore > ranked[j].DisplayScore
	})

	return ranked
}

// ScoreJobs matches the candidate skills against every job, in input order.
func ScoreJobs[J Requirer](jobs []J, candidateSkills []string, m *matching.Matcher) []Entry[J] {
	if m == nil {
		m = matching.Default()
	}
	entries := make([]Entry[J], 0, len(jobs))
	for _, job := range jobs {
		entries = append(entries, Entry[J]{
			Item:  job,
			Match: m.Compute(job.SubjectID(), job.Requirements(), candidateSkills),
		})
	}
	return entries
}

// ScoreCandidates matches every candidate against the required skills, in input order.
func ScoreCandidates[C Skilled](candidates []C, required []string, m *matching.Matcher) []Entry[C] {
	if m == nil {
		m = matching.Default()
	}
	entries := make([]Entry[C], 0, len(candidates))
	for _, c := range candidates {
		entries = append(entries, Entry[C]{
			Item:  c,
			Match: m.Compute(c.SubjectID(), required, c.SkillList()),
		})
	}
	return entries
}

// RankJobsForCandidate returns the jobs best matching the candidate skills first.
func RankJobsForCandidate[J Requirer](jobs []J, candidateSkills []string, opts Options) []Ranked[J] {
	return Rank(ScoreJobs(jobs, candidateSkills, opts.matcher()), opts)
}

// RankCandidatesForJob returns the candidates best matching the job first.
func RankCandidatesForJob[C Skilled](candidates []C, job Requirer, opts Options) []Ranked[C] {
	var required []string
	if job != nil {
		required = job.Requirements()
	}
	return Rank(ScoreCandidates(candidates, required, opts.matcher()), opts)
}

// Results extracts the deterministic match results in ranked order.
func Results[T any](ranked []Ranked[T]) []matching.Result {
	out := make([]matching.Result, 0, len(ranked))
	for _, r := range ranked {
		out = append(out, r.Match)
	}
	return out
}
