package insights

import (
	"reflect"
	"strings"
	"testing"

	"github.com/spigell/skillmatch/internal/matching"
	"github.com/spigell/skillmatch/internal/vocabulary"
)

func TestReadiness(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name                           string
		skills, alignment, tech, soft  int
		expect                         int
	}{
		{name: "reference", skills: 10, alignment: 80, tech: 6, soft: 2, expect: 80},
		{name: "zero", expect: 0},
		{name: "all capped", skills: 50, alignment: 100, tech: 30, soft: 30, expect: 100},
		{name: "rounded", skills: 1, alignment: 33, tech: 0, soft: 0, expect: 14},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := Readiness(tt.skills, tt.alignment, tt.tech, tt.soft); got != tt.expect {
				t.Fatalf("expected %d, got %d", tt.expect, got)
			}
		})
	}
}

func TestSynthesizeEmpty(t *testing.T) {
	t.Parallel()

	for _, r := range []*Report{Synthesize(nil, nil), Synthesize([]string{}, []matching.Result{}), Synthesize([]string{" "}, nil)} {
		if len(r.Insights) != 0 || len(r.Recommendations) != 0 || len(r.CareerPaths) != 0 || len(r.TopSkillGaps) != 0 {
			t.Fatalf("expected empty report, got %+v", r)
		}
		if r.Insights == nil || r.Recommendations == nil || r.CareerPaths == nil || r.TopSkillGaps == nil {
			t.Fatalf("empty report lists must be non-nil")
		}
		if r.ReadinessScore != 0 || r.MarketAlignment != 0 {
			t.Fatalf("expected zero scores, got %+v", r)
		}
	}
}

func TestSynthesizeSmallProfile(t *testing.T) {
	t.Parallel()

	results := []matching.Result{
		matching.Compute("a", []string{"Python", "Docker", "Kubernetes"}, []string{"Python", "Docker"}),
		matching.Compute("b", []string{"Python", "kubernetes", "Terraform"}, []string{"Python", "Docker"}),
	}

	r := Synthesize([]string{"Python", "Docker", "Leadership", "python"}, results)

	expectBreakdown := SkillBreakdown{Technical: 2, Soft: 1, Framework: 0, Cloud: 1, Data: 1, Total: 3}
	if r.SkillBreakdown != expectBreakdown {
		t.Fatalf("expected breakdown %+v, got %+v", expectBreakdown, r.SkillBreakdown)
	}

	if r.MarketAlignment != 50 {
		t.Fatalf("expected alignment 50, got %d", r.MarketAlignment)
	}

	expectInsights := []string{
		diversityBands[4].Insight,
		technicalBands[3].Insight,
		leadershipBands[2].Insight,
		cloudBands[2].Insight,
		dataBands[2].Insight,
		marketBands[3].Insight,
	}
	if !reflect.DeepEqual(r.Insights, expectInsights) {
		t.Fatalf("expected insights %v, got %v", expectInsights, r.Insights)
	}

	if !reflect.DeepEqual(r.CareerPaths, []string{"Junior Developer", "Technical Support Engineer"}) {
		t.Fatalf("unexpected career paths: %v", r.CareerPaths)
	}

	if !reflect.DeepEqual(r.GapNames(), []string{"Kubernetes", "Terraform"}) {
		t.Fatalf("unexpected gaps: %v", r.TopSkillGaps)
	}
	if r.TopSkillGaps[0].Count != 2 {
		t.Fatalf("expected case-insensitive gap count 2, got %d", r.TopSkillGaps[0].Count)
	}

	last := r.Recommendations[len(r.Recommendations)-1]
	if !strings.Contains(last, "Kubernetes, Terraform") {
		t.Fatalf("expected learning priority recommendation, got %q", last)
	}

	// 3*4 + 50*0.3 + 2*2 + 1*2 = 33
	if r.ReadinessScore != 33 {
		t.Fatalf("expected readiness 33, got %d", r.ReadinessScore)
	}

	if again := Synthesize([]string{"Python", "Docker", "Leadership", "python"}, results); !reflect.DeepEqual(r, again) {
		t.Fatalf("synthesis must be deterministic")
	}
}

func TestCareerPathsAreBounded(t *testing.T) {
	t.Parallel()

	skills := []string{
		"JavaScript", "TypeScript", "Python", "Java", "C++", "C#", "Golang", "Rust", "Ruby", "PHP", "Swift", "Kotlin",
		"Leadership", "Communication", "Teamwork", "Problem Solving", "Mentoring",
		"React", "Angular", "Django", "Flask", "Redux",
		"AWS", "Azure", "Terraform", "Ansible",
		"Pandas", "NumPy", "Tableau", "Hadoop", "Kafka",
	}

	r := Synthesize(skills, nil)

	expect := []string{
		"Senior Developer", "Technical Lead", "Solutions Architect", "CTO", "Principal Engineer",
		"Engineering Manager", "Project Manager", "Team Lead",
	}
	if !reflect.DeepEqual(r.CareerPaths, expect) {
		t.Fatalf("expected %v, got %v", expect, r.CareerPaths)
	}

	if r.SkillBreakdown.Total != 31 || r.SkillBreakdown.Data != 6 {
		t.Fatalf("unexpected breakdown: %+v", r.SkillBreakdown)
	}
	if r.Insights[0] != diversityBands[0].Insight {
		t.Fatalf("expected top diversity band, got %q", r.Insights[0])
	}
	if r.MarketAlignment != 0 || len(r.TopSkillGaps) != 0 {
		t.Fatalf("no results must mean no alignment and no gaps: %+v", r)
	}
	// 40 + 0 + 20 + 10
	if r.ReadinessScore != 70 {
		t.Fatalf("expected readiness 70, got %d", r.ReadinessScore)
	}
}

func TestBandSelection(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		table  BandTable
		value  int
		expect int
	}{
		{name: "diversity top", table: diversityBands, value: 20, expect: 0},
		{name: "diversity below top", table: diversityBands, value: 19, expect: 1},
		{name: "diversity 15", table: diversityBands, value: 15, expect: 1},
		{name: "diversity 10", table: diversityBands, value: 10, expect: 2},
		{name: "diversity 5", table: diversityBands, value: 5, expect: 3},
		{name: "diversity else", table: diversityBands, value: 4, expect: 4},
		{name: "technical 12", table: technicalBands, value: 12, expect: 0},
		{name: "technical 8", table: technicalBands, value: 11, expect: 1},
		{name: "technical 5", table: technicalBands, value: 5, expect: 2},
		{name: "technical 2", table: technicalBands, value: 2, expect: 3},
		{name: "technical else", table: technicalBands, value: 1, expect: 4},
		{name: "leadership 5", table: leadershipBands, value: 5, expect: 0},
		{name: "leadership 3", table: leadershipBands, value: 4, expect: 1},
		{name: "leadership 1", table: leadershipBands, value: 1, expect: 2},
		{name: "cloud 4", table: cloudBands, value: 4, expect: 0},
		{name: "cloud 2", table: cloudBands, value: 3, expect: 1},
		{name: "market 85", table: marketBands, value: 85, expect: 0},
		{name: "market 70", table: marketBands, value: 84, expect: 1},
		{name: "market 55", table: marketBands, value: 55, expect: 2},
		{name: "market 30", table: marketBands, value: 30, expect: 3},
		{name: "market else", table: marketBands, value: 29, expect: 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			b, ok := tt.table.Select(tt.value)
			if !ok {
				t.Fatalf("expected a band for %d", tt.value)
			}
			if !reflect.DeepEqual(b, tt.table[tt.expect]) {
				t.Fatalf("expected band %d, got %+v", tt.expect, b)
			}
		})
	}

	for _, table := range []BandTable{leadershipBands, frameworkBands, cloudBands, dataBands} {
		if _, ok := table.Select(0); ok {
			t.Fatalf("tables without an else band must not match 0")
		}
	}
}

func TestTopSkillGaps(t *testing.T) {
	t.Parallel()

	results := []matching.Result{
		{MissingSkills: []string{"Go", "Rust", "Kafka"}},
		{MissingSkills: []string{"kafka", "Docker"}},
		{MissingSkills: []string{"Docker", "rust", "Scala", "Elixir", "Haskell", "Zig", "Nim"}},
	}

	got := TopSkillGaps(results, DefaultGapLimit)
	expect := []SkillGap{
		{Skill: "Rust", Count: 2},
		{Skill: "Kafka", Count: 2},
		{Skill: "Docker", Count: 2},
		{Skill: "Go", Count: 1},
		{Skill: "Scala", Count: 1},
	}
	if !reflect.DeepEqual(got, expect) {
		t.Fatalf("expected %v, got %v", expect, got)
	}

	s := New(vocabulary.Default(), WithGapLimit(20))
	if n := len(s.Synthesize([]string{"Golang"}, results).TopSkillGaps); n != MaxGapLimit {
		t.Fatalf("expected gap limit clamped to %d, got %d", MaxGapLimit, n)
	}
}

func TestMarketAlignment(t *testing.T) {
	t.Parallel()

	results := []matching.Result{{MatchPercentage: 33}, {MatchPercentage: 67}, {MatchPercentage: 100}}
	if got := MarketAlignment(results); got != 67 {
		t.Fatalf("expected 67, got %d", got)
	}
	if got := MarketAlignment(nil); got != 0 {
		t.Fatalf("expected 0, got %d", got)
	}
}
