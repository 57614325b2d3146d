package feedback

import (
	"math"
	"regexp"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

const passingScore = 70

var (
	emailPattern = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)
	phonePattern = regexp.MustCompile(`\b\d{3}[-.]?\d{3}[-.]?\d{4}\b`)
	yearPattern  = regexp.MustCompile(`\d{4}`)

	experiencePatterns = []*regexp.Regexp{
		regexp.MustCompile(`(\d+)\+?\s*years?\s*experience`),
		regexp.MustCompile(`(\d+)\+?\s*years?\s*of\s*experience`),
		regexp.MustCompile(`minimum\s*(\d+)\s*years?`),
		regexp.MustCompile(`at\s*least\s*(\d+)\s*years?`),
	}

	resumeVerbs = []string{"managed", "developed", "created", "implemented", "led", "designed", "built", "improved"}
)

// Feedback is the quality review of a resume. Scores are in [0, 100].
type Feedback struct {
	ATSScore          float64  `json:"ats_score"`
	FormattingScore   float64  `json:"formatting_score"`
	CompletenessScore float64  `json:"completeness_score"`
	Suggestions       []string `json:"suggestions"`
	Strengths         []string `json:"strengths"`
	Sections          Sections `json:"sections"`
	ExperienceYears   int      `json:"experience_years"`
}

// Evaluate reviews resume text. Detected skills are added to the skills
// section before scoring. Blank text gets zero scores and the suggestions a
// blank resume deserves.
func Evaluate(text string, detectedSkills []string) *Feedback {
	sections := ParseSections(text)
	sections.Skills = appendMissing(sections.Skills, detectedSkills)

	f := &Feedback{
		Sections:        sections,
		ExperienceYears: ExperienceYears(text),
	}
	if strings.TrimSpace(text) != "" {
		f.ATSScore = ATSScore(text, sections)
		f.FormattingScore = FormattingScore(text)
		f.CompletenessScore = CompletenessScore(sections)
	}
	f.Suggestions = suggestions(sections, f)
	f.Strengths = strengths(sections)

	return f
}

// ATSScore rates how well an applicant tracking system can read the resume.
func ATSScore(text string, s Sections) float64 {
	score := 0.0
	if emailPattern.MatchString(text) {
		score += 20
	}
	if phonePattern.MatchString(text) {
		score += 15
	}
	score += math.Min(float64(countSectionHeaders(text))*10, 40)
	if len(s.Skills) > 0 {
		score += 15
	}
	if len(s.Experience) > 0 {
		score += 10
	}
	return math.Min(score, 100)
}

// FormattingScore rates length, capitalisation, structure and wording.
func FormattingScore(text string) float64 {
	score := 0.0

	switch length := utf8.RuneCountInString(text); {
	case length >= 200 && length <= 2000:
		score += 30
	case length > 2000:
		score += 20
	}

	lines := strings.Split(text, "\n")
	capitalized := 0
	for _, line := range lines {
		r, _ := utf8.DecodeRuneInString(line)
		if line != "" && unicode.IsUpper(r) {
			capitalized++
		}
	}
	if float64(capitalized)/float64(max(len(lines), 1)) > 0.3 {
		score += 25
	}

	if strings.ContainsAny(text, "•*-") {
		score += 20
	}
	if yearPattern.MatchString(text) {
		score += 15
	}

	lower := strings.ToLower(text)
	verbs := 0
	for _, v := range resumeVerbs {
		if strings.Contains(lower, v) {
			verbs++
		}
	}
	score += math.Min(float64(verbs)*2, 10)

	return math.Min(score, 100)
}

// CompletenessScore weights the sections present.
func CompletenessScore(s Sections) float64 {
	score := 0.0
	if len(s.Experience) > 0 {
		score += 30
	}
	if len(s.Education) > 0 {
		score += 25
	}
	if len(s.Skills) > 0 {
		score += 25
	}
	if len(s.Summary) > 0 {
		score += 10
	}
	if len(s.Projects) > 0 {
		score += 5
	}
	if len(s.Certifications) > 0 {
		score += 5
	}
	return math.Min(score, 100)
}

// ExperienceYears returns the first "N years of experience" style figure, or 0.
func ExperienceYears(text string) int {
	lower := strings.ToLower(text)
	for _, p := range experiencePatterns {
		m := p.FindStringSubmatch(lower)
		if len(m) < 2 {
			continue
		}
		if n, err := strconv.Atoi(m[1]); err == nil {
			return n
		}
	}
	return 0
}

func suggestions(s Sections, f *Feedback) []string {
	out := make([]string, 0)
	if f.ATSScore < passingScore {
		out = append(out, "Improve ATS compatibility by adding clear section headers and contact information.")
	}
	if f.FormattingScore < passingScore {
		out = append(out, "Use bullet points and a consistent structure.")
	}
	if f.CompletenessScore < passingScore {
		out = append(out, "Add the missing sections such as experience, education or skills.")
	}
	if len(s.Skills) < 5 {
		out = append(out, "Add more relevant technical and soft skills.")
	}
	if len(s.Summary) == 0 {
		out = append(out, "Include a professional summary at the top of your resume.")
	}
	if len(s.Experience) > 0 && len(s.Experience) < 3 {
		out = append(out, "Describe your work experience in more detail with measurable achievements.")
	}
	return out
}

func strengths(s Sections) []string {
	out := make([]string, 0)
	if len(s.Skills) >= 8 {
		out = append(out, "Comprehensive skills section")
	}
	if len(s.Experience) >= 3 {
		out = append(out, "Detailed work experience")
	}
	if len(s.Education) > 0 {
		out = append(out, "Educational background included")
	}
	if len(s.Projects) > 0 {
		out = append(out, "Project experience demonstrated")
	}
	if len(s.Certifications) > 0 {
		out = append(out, "Professional certifications listed")
	}
	return out
}

func appendMissing(lines, skills []string) []string {
	seen := make(map[string]struct{}, len(lines)+len(skills))
	for _, l := range lines {
		seen[strings.ToLower(l)] = struct{}{}
	}
	for _, s := range skills {
		key := strings.ToLower(strings.TrimSpace(s))
		if key == "" {
			continue
		}
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		lines = append(lines, s)
	}
	return lines
}
