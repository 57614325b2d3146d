package insights

// Band is one row of a threshold table. It applies when the measured value is
// at least Min.
type Band struct {
	Min            int
	Insight        string
	Recommendation string
	CareerPaths    []string
}

// BandTable is evaluated top-down and the first matching band wins, so rows
// must be ordered by Min descending.
type BandTable []Band

// Select returns the first band whose Min is not above value.
func (t BandTable) Select(value int) (Band, bool) {
	for _, b := range t {
		if value >= b.Min {
			return b, true
		}
	}
	return Band{}, false
}

var diversityBands = BandTable{
	{Min: 20, Insight: "Exceptional skill diversity across many areas of technology."},
	{Min: 15, Insight: "Strong and diverse skill set suited to cross-functional roles."},
	{Min: 10, Insight: "Solid skill foundation with room to specialise further."},
	{
		Min:            5,
		Insight:        "Developing skill set with a good starting base.",
		Recommendation: "Add complementary skills to widen the range of roles you qualify for.",
	},
	{
		Min:            0,
		Insight:        "Only a few skills were detected in your profile.",
		Recommendation: "List your tools and technologies explicitly so they can be recognised.",
	},
}

var technicalBands = BandTable{
	{
		Min:         12,
		Insight:     "Deep technical expertise across a wide technology stack.",
		CareerPaths: []string{"Senior Developer", "Technical Lead", "Solutions Architect", "CTO", "Principal Engineer"},
	},
	{
		Min:         8,
		Insight:     "Strong technical profile for mid-level and senior engineering roles.",
		CareerPaths: []string{"Software Engineer", "Full Stack Developer", "Backend Developer", "DevOps Engineer"},
	},
	{
		Min:         5,
		Insight:     "Good technical base for developer roles.",
		CareerPaths: []string{"Software Engineer", "Junior Developer", "QA Engineer"},
	},
	{
		Min:            2,
		Insight:        "Emerging technical skills.",
		Recommendation: "Build small projects to turn your technical skills into demonstrable experience.",
		CareerPaths:    []string{"Junior Developer", "Technical Support Engineer"},
	},
	{
		Min:            0,
		Insight:        "Few technical skills were found.",
		Recommendation: "Start with a widely used language such as Python or JavaScript.",
		CareerPaths:    []string{"IT Support Specialist"},
	},
}

var leadershipBands = BandTable{
	{
		Min:         5,
		Insight:     "Strong leadership and interpersonal profile.",
		CareerPaths: []string{"Engineering Manager", "Project Manager", "Team Lead"},
	},
	{
		Min:            3,
		Insight:        "Good interpersonal skills for collaborative teams.",
		Recommendation: "Look for opportunities to lead a project or mentor a colleague.",
		CareerPaths:    []string{"Team Lead", "Scrum Master"},
	},
	{
		Min:            1,
		Insight:        "Some soft skills are present in your profile.",
		Recommendation: "Describe concrete examples of communication and teamwork in your resume.",
	},
}

var frameworkBands = BandTable{
	{
		Min:         5,
		Insight:     "Broad experience with modern frameworks.",
		CareerPaths: []string{"Full Stack Developer", "Frontend Architect"},
	},
	{
		Min:         3,
		Insight:     "Hands-on experience with several frameworks.",
		CareerPaths: []string{"Frontend Developer", "Backend Developer"},
	},
	{
		Min:            1,
		Insight:        "Initial framework experience.",
		Recommendation: "Deepen your knowledge of one popular framework such as React or Django.",
	},
}

var cloudBands = BandTable{
	{
		Min:         4,
		Insight:     "Strong cloud and DevOps background.",
		CareerPaths: []string{"Cloud Architect", "DevOps Engineer", "Site Reliability Engineer"},
	},
	{
		Min:         2,
		Insight:     "Practical cloud experience.",
		CareerPaths: []string{"Cloud Engineer", "DevOps Engineer"},
	},
	{
		Min:            1,
		Insight:        "Some exposure to cloud platforms.",
		Recommendation: "Consider an entry-level cloud certification such as AWS Cloud Practitioner.",
	},
}

var dataBands = BandTable{
	{
		Min:         5,
		Insight:     "Advanced data and machine learning skills.",
		CareerPaths: []string{"Data Scientist", "Machine Learning Engineer", "Data Engineer"},
	},
	{
		Min:         3,
		Insight:     "Solid data skills.",
		CareerPaths: []string{"Data Analyst", "Data Engineer"},
	},
	{
		Min:            1,
		Insight:        "Basic data skills.",
		Recommendation: "Strengthen your data skills with SQL and Python libraries such as Pandas.",
	},
}

var marketBands = BandTable{
	{Min: 85, Insight: "Excellent alignment with the requirements of the reviewed jobs."},
	{Min: 70, Insight: "Good alignment with the requirements of the reviewed jobs."},
	{
		Min:            55,
		Insight:        "Moderate alignment with the reviewed jobs.",
		Recommendation: "Closing a few skill gaps would make you competitive for most of these roles.",
	},
	{
		Min:            30,
		Insight:        "Partial alignment with the reviewed jobs.",
		Recommendation: "Focus on the most frequently requested skills you are missing.",
	},
	{
		Min:            0,
		Insight:        "Low alignment with the reviewed jobs.",
		Recommendation: "Target roles closer to your current skills while you upskill.",
	},
}
