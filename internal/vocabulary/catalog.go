package vocabulary

// Detection is substring based, so names shorter than three characters
// ("Go", "R", "C") are not listed.
var catalog = []Group{
	{Name: "languages", Skills: []string{
		"JavaScript", "TypeScript", "Python", "Java", "C++", "C#", "Golang", "Rust",
		"Ruby", "PHP", "Swift", "Kotlin", "Scala", "SQL", "Bash", "Perl", "Dart", "MATLAB",
	}},
	{Name: "web", Skills: []string{
		"HTML", "CSS", "React", "Angular", "Vue.js", "Next.js", "Node.js", "Express.js",
		"Django", "Flask", "FastAPI", "Spring Boot", "Ruby on Rails", "Laravel", "ASP.NET",
		"jQuery", "Bootstrap", "Tailwind CSS", "Redux", "GraphQL", "REST API", "WebSockets",
	}},
	{Name: "databases", Skills: []string{
		"MySQL", "PostgreSQL", "MongoDB", "Redis", "SQLite", "Oracle", "Elasticsearch",
		"Cassandra", "DynamoDB", "Firebase",
	}},
	{Name: "cloud", Skills: []string{
		"AWS", "Azure", "Google Cloud", "Docker", "Kubernetes", "Terraform", "Ansible",
		"Jenkins", "CI/CD", "GitHub Actions", "Heroku", "AWS Lambda", "Serverless", "Linux",
		"Nginx", "Microservices", "DevOps",
	}},
	{Name: "data", Skills: []string{
		"Machine Learning", "Deep Learning", "Data Analysis", "Data Visualization", "Pandas",
		"NumPy", "Scikit-learn", "TensorFlow", "PyTorch", "Keras", "Tableau", "Power BI",
		"Microsoft Excel", "Apache Spark", "Hadoop", "Kafka", "Statistics", "NLP",
		"Computer Vision", "Jupyter",
	}},
	{Name: "mobile", Skills: []string{
		"iOS Development", "Android", "React Native", "Flutter", "SwiftUI", "Xamarin",
	}},
	{Name: "design", Skills: []string{
		"Figma", "Adobe XD", "Photoshop", "Illustrator", "Sketch", "UI/UX Design",
		"Wireframing", "Prototyping",
	}},
	{Name: "testing", Skills: []string{
		"Jest", "Selenium", "Cypress", "Mocha", "JUnit", "Pytest", "Unit Testing",
		"Test-Driven Development", "Integration Testing",
	}},
	{Name: "tools", Skills: []string{
		"Git", "GitHub", "GitLab", "Jira", "Confluence", "Postman",
	}},
	{Name: "project management", Skills: []string{
		"Agile", "Scrum", "Kanban", "Project Management", "Product Management",
		"Stakeholder Management",
	}},
	{Name: "soft skills", Skills: []string{
		"Leadership", "Communication", "Teamwork", "Problem Solving", "Critical Thinking",
		"Time Management", "Collaboration", "Mentoring", "Adaptability", "Creativity",
		"Negotiation", "Public Speaking", "Attention to Detail", "Customer Service",
	}},
}

var membership = map[Category][]string{
	Technical: {
		"JavaScript", "TypeScript", "Python", "Java", "C++", "C#", "Golang", "Rust",
		"Ruby", "PHP", "Swift", "Kotlin", "Scala", "SQL", "Bash", "Perl", "Dart", "MATLAB",
		"HTML", "CSS", "GraphQL", "REST API", "WebSockets",
		"MySQL", "PostgreSQL", "MongoDB", "Redis", "SQLite", "Oracle", "Elasticsearch",
		"Cassandra", "DynamoDB",
		"Docker", "Kubernetes", "Linux", "Nginx",
		"iOS Development", "Android", "SwiftUI",
		"Jest", "Selenium", "Cypress", "Mocha", "JUnit", "Pytest", "Unit Testing",
		"Test-Driven Development", "Integration Testing",
		"Git", "GitHub", "GitLab", "Postman",
	},
	Soft: {
		"Leadership", "Communication", "Teamwork", "Problem Solving", "Critical Thinking",
		"Time Management", "Collaboration", "Mentoring", "Adaptability", "Creativity",
		"Negotiation", "Public Speaking", "Attention to Detail", "Customer Service",
		"Agile", "Scrum", "Project Management", "Stakeholder Management",
	},
	Framework: {
		"React", "Angular", "Vue.js", "Next.js", "Node.js", "Express.js", "Django", "Flask",
		"FastAPI", "Spring Boot", "Ruby on Rails", "Laravel", "ASP.NET", "jQuery",
		"Bootstrap", "Tailwind CSS", "Redux", "React Native", "Flutter", "Xamarin",
		"TensorFlow", "PyTorch", "Keras", "Scikit-learn",
	},
	Cloud: {
		"AWS", "Azure", "Google Cloud", "Docker", "Kubernetes", "Terraform", "Ansible",
		"Jenkins", "CI/CD", "GitHub Actions", "Heroku", "AWS Lambda", "Serverless",
		"Microservices", "DevOps", "Firebase", "DynamoDB",
	},
	Data: {
		"Python", "SQL", "MySQL", "PostgreSQL", "MongoDB", "Redis", "SQLite", "Oracle",
		"Elasticsearch", "Cassandra", "DynamoDB",
		"Machine Learning", "Deep Learning", "Data Analysis", "Data Visualization", "Pandas",
		"NumPy", "Scikit-learn", "TensorFlow", "PyTorch", "Keras", "Tableau", "Power BI",
		"Microsoft Excel", "Apache Spark", "Hadoop", "Kafka", "Statistics", "NLP",
		"Computer Vision", "Jupyter",
	},
}

var defaultVocabulary = mustBuild()

func mustBuild() *Vocabulary {
	v, err := New(catalog, membership)
	if err != nil {
		panic("vocabulary: " + err.Error())
	}
	return v
}

// Default returns the process-wide vocabulary. It must not be mutated.
func Default() *Vocabulary {
	return defaultVocabulary
}
