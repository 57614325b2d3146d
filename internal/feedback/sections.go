// Package feedback reviews resume text for structure and ATS friendliness.
package feedback

import (
	"regexp"
	"strings"
)

const (
	minSectionLine = 10
	maxHeaderWords = 4
)

// Section names in detection order.
const (
	Summary        = "summary"
	Experience     = "experience"
	Education      = "education"
	Skills         = "skills"
	Projects       = "projects"
	Certifications = "certifications"
)

type sectionPattern struct {
	name    string
	pattern *regexp.Regexp
}

var sectionPatterns = []sectionPattern{
	{Summary, regexp.MustCompile(`summary|profile|objective|about|overview`)},
	{Experience, regexp.MustCompile(`experience|employment|work history|career`)},
	{Education, regexp.MustCompile(`education|academic|qualifications|degrees`)},
	{Skills, regexp.MustCompile(`skills|competencies|expertise|technologies`)},
	{Projects, regexp.MustCompile(`projects|portfolio`)},
	{Certifications, regexp.MustCompile(`certifications|certificates|credentials|licenses`)},
}

// Sections holds resume lines grouped under the header they follow.
type Sections struct {
	Summary        []string `json:"summary"`
	Experience     []string `json:"experience"`
	Education      []string `json:"education"`
	Skills         []string `json:"skills"`
	Projects       []string `json:"projects"`
	Certifications []string `json:"certifications"`
}

func (s *Sections) slot(name string) *[]string {
	switch name {
	case Summary:
		return &s.Summary
	case Experience:
		return &s.Experience
	case Education:
		return &s.Education
	case Skills:
		return &s.Skills
	case Projects:
		return &s.Projects
	case Certifications:
		return &s.Certifications
	}
	return nil
}

// ParseSections splits text by section headers. A header is a short line
// naming a known section; content lines of ten characters or less are dropped,
// as are duplicates and lines before the first header.
func ParseSections(text string) Sections {
	var sections Sections
	var current *[]string
	seen := make(map[string]map[string]struct{})
	currentName := ""

	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}

		if name, ok := headerName(line); ok {
			current = sections.slot(name)
			currentName = name
			continue
		}

		if current == nil || len(line) <= minSectionLine {
			continue
		}
		if seen[currentName] == nil {
			seen[currentName] = make(map[string]struct{})
		}
		if _, dup := seen[currentName][line]; dup {
			continue
		}
		seen[currentName][line] = struct{}{}
		*current = append(*current, line)
	}

	return sections
}

func headerName(line string) (string, bool) {
	normalized := strings.ToLower(strings.TrimRight(line, ": "))
	if len(strings.Fields(normalized)) > maxHeaderWords {
		return "", false
	}
	for _, sp := range sectionPatterns {
		if sp.pattern.MatchString(normalized) {
			return sp.name, true
		}
	}
	return "", false
}

// countSectionHeaders counts the known sections mentioned anywhere in text.
func countSectionHeaders(text string) int {
	lower := strings.ToLower(text)
	n := 0
	for _, sp := range sectionPatterns {
		if sp.pattern.MatchString(lower) {
			n++
		}
	}
	return n
}
