package ranking

import (
	"reflect"
	"testing"

	"github.com/spigell/skillmatch/internal/matching"
)

type testJob struct {
	id       string
	required []string
}

func (j testJob) SubjectID() string      { return j.id }
func (j testJob) Requirements() []string { return j.required }

type testCandidate struct {
	id     string
	skills []string
}

func (c testCandidate) SubjectID() string  { return c.id }
func (c testCandidate) SkillList() []string { return c.skills }

func ids[T interface{ SubjectID() string }](ranked []Ranked[T]) []string {
	out := make([]string, 0, len(ranked))
	for _, r := range ranked {
		out = append(out, r.Item.SubjectID())
	}
	return out
}

func TestRankJobsForCandidateIsStable(t *testing.T) {
	t.Parallel()

	jobs := []testJob{
		{id: "a", required: []string{"Python", "Docker"}},
		{id: "b", required: []string{"Python", "Kafka"}},
		{id: "c", required: []string{"Python"}},
		{id: "d", required: []string{"Rust"}},
		{id: "e", required: []string{"Docker", "Scala"}},
	}

	ranked := RankJobsForCandidate(jobs, []string{"python", "docker"}, Options{})

	expect := []string{"a", "c", "b", "e", "d"}
	if got := ids(ranked); !reflect.DeepEqual(got, expect) {
		t.Fatalf("expected %v, got %v", expect, got)
	}

	for _, r := range ranked {
		if r.DisplayScore != r.Match.MatchPercentage {
			t.Fatalf("display score must equal match without jitter, got %d vs %d", r.DisplayScore, r.Match.MatchPercentage)
		}
	}
}

func TestRankRecommendedOnly(t *testing.T) {
	t.Parallel()

	entries := []Entry[string]{
		{Item: "low", Match: matching.Result{MatchPercentage: 59}},
		{Item: "edge", Match: matching.Result{MatchPercentage: 60}},
		{Item: "high", Match: matching.Result{MatchPercentage: 90}},
	}

	tests := []struct {
		name   string
		opts   Options
		expect []string
	}{
		{name: "all", opts: Options{}, expect: []string{"high", "edge", "low"}},
		{name: "default threshold", opts: Options{RecommendedOnly: true}, expect: []string{"high", "edge"}},
		{name: "custom threshold", opts: Options{RecommendedOnly: true, MinimumScore: 80}, expect: []string{"high"}},
		{name: "threshold without flag", opts: Options{MinimumScore: 80}, expect: []string{"high", "edge", "low"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			ranked := Rank(entries, tt.opts)
			got := make([]string, 0, len(ranked))
			for _, r := range ranked {
				got = append(got, r.Item)
			}
			if !reflect.DeepEqual(got, tt.expect) {
				t.Fatalf("expected %v, got %v", tt.expect, got)
			}
		})
	}
}

func TestRankCandidatesForJob(t *testing.T) {
	t.Parallel()

	candidates := []testCandidate{
		{id: "ann", skills: []string{"Java"}},
		{id: "bob", skills: []string{"Java", "Spring Boot", "SQL"}},
		{id: "cid", skills: nil},
	}
	job := testJob{id: "backend", required: []string{"Java", "Spring Boot", "PostgreSQL"}}

	ranked := RankCandidatesForJob(candidates, job, Options{RecommendedOnly: true})

	if got := ids(ranked); !reflect.DeepEqual(got, []string{"bob"}) {
		t.Fatalf("expected only bob above the threshold, got %v", got)
	}
	if ranked[0].Match.SubjectID != "bob" || ranked[0].Match.MatchPercentage != 100 {
		t.Fatalf("unexpected match: %+v", ranked[0].Match)
	}

	if got := RankCandidatesForJob(candidates, nil, Options{}); len(got) != 3 || got[0].DisplayScore != 0 {
		t.Fatalf("nil job must rank everything at zero, got %+v", got)
	}
}

func TestJitterIsPresentationOnly(t *testing.T) {
	t.Parallel()

	entries := []Entry[string]{
		{Item: "a", Match: matching.Result{SubjectID: "a", MatchPercentage: 95}},
		{Item: "b", Match: matching.Result{SubjectID: "b", MatchPercentage: 40}},
		{Item: "c", Match: matching.Result{SubjectID: "c", MatchPercentage: 0}},
	}

	first := Rank(entries, Options{Jitter: NewJitter(42, 0)})
	second := Rank(entries, Options{Jitter: NewJitter(42, 0)})

	if !reflect.DeepEqual(first, second) {
		t.Fatalf("same seed must give the same ranking: %+v vs %+v", first, second)
	}

	byItem := map[string]int{"a": 95, "b": 40, "c": 0}
	for _, r := range first {
		base := byItem[r.Item]
		if r.Match.MatchPercentage != base {
			t.Fatalf("jitter leaked into match result of %s: %d", r.Item, r.Match.MatchPercentage)
		}
		if r.DisplayScore < base || r.DisplayScore > 100 || r.DisplayScore >= base+DefaultJitterMax {
			t.Fatalf("display score %d out of bounds for base %d", r.DisplayScore, base)
		}
	}

	if got := Results(first); len(got) != 3 {
		t.Fatalf("expected three results, got %v", got)
	}
}

func TestJitterBounds(t *testing.T) {
	t.Parallel()

	j := NewJitter(7, 20)
	for i := 0; i < 1000; i++ {
		if got := j.Apply(95); got < 95 || got > 100 {
			t.Fatalf("expected clamp to 100, got %d", got)
		}
		if got := j.Apply(10); got < 10 || got >= 30 {
			t.Fatalf("expected [10, 30), got %d", got)
		}
	}

	var none *Jitter
	if none.Apply(33) != 33 {
		t.Fatalf("nil jitter must not change the score")
	}
}
