package insights

// SkillBreakdown counts skills per category. A skill may be counted in several
// categories; Total counts distinct skills.
type SkillBreakdown struct {
	Technical int `json:"technical"`
	Soft      int `json:"soft"`
	Framework int `json:"framework"`
	Cloud     int `json:"cloud"`
	Data      int `json:"data"`
	Total     int `json:"total"`
}

// SkillGap is a missing skill and the number of jobs asking for it.
type SkillGap struct {
	Skill string `json:"skill"`
	Count int    `json:"count"`
}

// Report is the career insight report built for one analysis.
type Report struct {
	Insights        []string       `json:"insights"`
	Recommendations []string       `json:"recommendations"`
	CareerPaths     []string       `json:"career_paths"`
	SkillBreakdown  SkillBreakdown `json:"skill_breakdown"`
	MarketAlignment int            `json:"market_alignment"`
	TopSkillGaps    []SkillGap     `json:"top_skill_gaps"`
	ReadinessScore  int            `json:"readiness_score"`
}

func emptyReport() *Report {
	return &Report{
		Insights:        []string{},
		Recommendations: []string{},
		CareerPaths:     []string{},
		TopSkillGaps:    []SkillGap{},
	}
}

// GapNames returns the skill names of the top gaps.
func (r *Report) GapNames() []string {
	if r == nil {
		return nil
	}
	names := make([]string, 0, len(r.TopSkillGaps))
	for _, g := range r.TopSkillGaps {
		names = append(names, g.Skill)
	}
	return names
}

func (r *Report) apply(b Band, ok bool) {
	if !ok {
		return
	}
	if b.Insight != "" {
		r.Insights = append(r.Insights, b.Insight)
	}
	if b.Recommendation != "" {
		r.Recommendations = append(r.Recommendations, b.Recommendation)
	}
	r.CareerPaths = append(r.CareerPaths, b.CareerPaths...)
}
