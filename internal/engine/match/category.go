package match

import "regexp"

// resumeCategories vote on the overall professional field of a resume.
// First match wins ties, so software terms sit at the top.
var resumeCategories = []taxonomy{
	{"Software Engineering", []string{
		"software engineer", "developer", "programmer", "coding", "software development",
		"web developer", "full stack", "frontend", "backend", "mobile developer",
		"app developer", "devops", "software architect", "programming", "coder",
	}},
	{"Data Science", []string{
		"data scientist", "machine learning", "deep learning", "ai", "artificial intelligence",
		"data mining", "statistical analysis", "data analytics", "big data", "data modeling",
		"predictive modeling", "nlp", "natural language processing", "computer vision",
	}},
	{"Design", []string{
		"designer", "ui", "ux", "user interface", "user experience", "graphic design",
		"web design", "product design", "visual design", "interaction design", "creative",
	}},
	{"Marketing", []string{
		"marketing", "digital marketing", "seo", "sem", "social media", "content marketing",
		"brand", "advertising", "market research", "growth hacking", "marketing strategy",
		"marketing campaign", "marketing manager",
	}},
	{"Sales", []string{
		"sales", "account executive", "business development", "sales representative",
		"account manager", "sales manager", "client acquisition", "revenue generation",
		"sales strategy", "customer acquisition", "lead generation",
	}},
	{"Finance", []string{
		"finance", "financial", "accounting", "accountant", "financial analyst",
		"investment", "banking", "portfolio", "financial planning", "budget", "auditing",
		"tax", "cpa", "chartered accountant",
	}},
	{"Healthcare", []string{
		"healthcare", "medical", "doctor", "nurse", "physician", "clinical",
		"patient care", "health", "hospital", "pharmacy", "pharmaceutical",
		"healthcare management", "medical professional",
	}},
	{"Education", []string{
		"education", "teacher", "professor", "instructor", "teaching", "tutor",
		"curriculum", "academic", "school", "university", "college", "faculty",
		"educational", "lecturer", "training",
	}},
	{"Human Resources", []string{
		"hr", "human resources", "recruiting", "recruitment", "talent acquisition",
		"hiring", "personnel", "hr manager", "benefits", "compensation", "employee relations",
		"hr specialist", "human capital",
	}},
	{"Project Management", []string{
		"project manager", "project management", "program manager", "scrum master",
		"agile", "pmp", "prince2", "project coordination", "project delivery",
		"project planning", "project lead",
	}},
	{"Operations", []string{
		"operations", "operations manager", "supply chain", "logistics", "procurement",
		"inventory management", "warehouse", "production", "operational excellence",
		"process improvement", "business operations",
	}},
}

const defaultResumeCategory = "Professional"

// categoryScoreFloor is the minimum keyword score required to trust the
// taxonomy vote without consulting the title line.
const categoryScoreFloor = 3

// titleLinePatterns pull a candidate job title out of the raw resume
// text, checked in order against the category keywords. An explicit
// title label wins, then the first line, then a seniority phrase
// anywhere in the text.
var titleLinePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(?:^|\n)(?:title|position)\s*:\s*(.*?)(?:\n|$)`),
	regexp.MustCompile(`(?:^|\n)(.+?)(?:\n|$)`),
	regexp.MustCompile(`(?i)(?:senior|junior|lead|principal|staff|chief|head of|director of)\s+([a-z][a-z /-]+)`),
}

// DetermineJobCategory classifies a resume into one of the known fields.
// The keyword vote runs over the normalized text; when it stays below the
// score floor, a secondary pass over the original text's title lines
// decides, and "Professional" is the terminal fallback.
func DetermineJobCategory(norm, original string) string {
	cat, score := bestCategory(norm, resumeCategories, defaultResumeCategory)
	if score >= categoryScoreFloor {
		return cat
	}
	for _, re := range titleLinePatterns {
		m := re.FindStringSubmatch(original)
		if m == nil {
			continue
		}
		if c := categoryByTitleKeyword(m[1], resumeCategories); c != "" {
			return c
		}
	}
	if score > 0 {
		return cat
	}
	return defaultResumeCategory
}
