package feedback

import (
	"reflect"
	"testing"
)

const sampleResume = `Jane Doe
jane@example.com | 555-123-4567

Summary
Backend engineer with 8+ years of experience in distributed systems.

Experience
Senior Engineer at Acme Corp 2019-2024
- Developed payment services in Golang
- Led a team of five engineers
- Improved latency by 40 percent

Education
BSc Computer Science, State University 2015

Skills
Golang, PostgreSQL, Docker, Kubernetes

Projects
Open source contributor to a CLI toolkit
`

func TestParseSections(t *testing.T) {
	t.Parallel()

	s := ParseSections(sampleResume)

	if !reflect.DeepEqual(s.Summary, []string{"Backend engineer with 8+ years of experience in distributed systems."}) {
		t.Fatalf("unexpected summary: %v", s.Summary)
	}
	if len(s.Experience) != 4 {
		t.Fatalf("expected 4 experience lines, got %v", s.Experience)
	}
	if len(s.Education) != 1 || len(s.Skills) != 1 || len(s.Projects) != 1 {
		t.Fatalf("unexpected sections: %+v", s)
	}
	if len(s.Certifications) != 0 {
		t.Fatalf("expected no certifications, got %v", s.Certifications)
	}
}

func TestParseSectionsDropsShortAndDuplicateLines(t *testing.T) {
	t.Parallel()

	s := ParseSections("Skills:\nGo\nDistributed systems\nDistributed systems\n")
	if !reflect.DeepEqual(s.Skills, []string{"Distributed systems"}) {
		t.Fatalf("unexpected skills: %v", s.Skills)
	}
}

func TestEvaluate(t *testing.T) {
	t.Parallel()

	f := Evaluate(sampleResume, []string{"Golang", "PostgreSQL", "Docker", "Kubernetes", "golang"})

	if len(f.Sections.Skills) != 5 {
		t.Fatalf("expected detected skills merged into 5 entries, got %v", f.Sections.Skills)
	}
	if f.ATSScore != 100 {
		t.Fatalf("expected ATS score 100, got %v", f.ATSScore)
	}
	// length 30, capitalisation 25, bullets 20, years 15, three verbs 6
	if f.FormattingScore != 96 {
		t.Fatalf("expected formatting score 96, got %v", f.FormattingScore)
	}
	if f.CompletenessScore != 95 {
		t.Fatalf("expected completeness score 95, got %v", f.CompletenessScore)
	}
	if len(f.Suggestions) != 0 {
		t.Fatalf("expected no suggestions, got %v", f.Suggestions)
	}

	expectStrengths := []string{"Detailed work experience", "Educational background included", "Project experience demonstrated"}
	if !reflect.DeepEqual(f.Strengths, expectStrengths) {
		t.Fatalf("expected strengths %v, got %v", expectStrengths, f.Strengths)
	}
	if f.ExperienceYears != 8 {
		t.Fatalf("expected 8 years, got %d", f.ExperienceYears)
	}
}

func TestEvaluateBlank(t *testing.T) {
	t.Parallel()

	f := Evaluate("   ", nil)
	if f.ATSScore != 0 || f.FormattingScore != 0 || f.CompletenessScore != 0 {
		t.Fatalf("expected zero scores, got %+v", f)
	}
	if len(f.Suggestions) == 0 {
		t.Fatalf("expected suggestions for a blank resume")
	}
	if f.Strengths == nil || len(f.Strengths) != 0 {
		t.Fatalf("expected empty strengths, got %v", f.Strengths)
	}
}

func TestExperienceYears(t *testing.T) {
	t.Parallel()

	tests := []struct {
		text   string
		expect int
	}{
		{text: "5 years experience with Go", expect: 5},
		{text: "3+ years of experience", expect: 3},
		{text: "Minimum 4 years in backend", expect: 4},
		{text: "at least 2 years", expect: 2},
		{text: "fresh graduate", expect: 0},
	}

	for _, tt := range tests {
		if got := ExperienceYears(tt.text); got != tt.expect {
			t.Fatalf("ExperienceYears(%q): expected %d, got %d", tt.text, tt.expect, got)
		}
	}
}
