package match

import (
	"regexp"
	"strings"
)

// techSkills is the technical half of the skill taxonomy, matched with
// word boundaries on the normalized text.
var techSkills = []string{
	"python", "java", "javascript", "typescript", "c++", "c#", "ruby", "php",
	"go", "golang", "rust", "swift", "kotlin", "scala", "r", "matlab", "perl",
	"sql", "nosql", "mysql", "postgresql", "mongodb", "redis", "elasticsearch",
	"cassandra", "sqlite", "oracle",
	"html", "css", "react", "angular", "vue", "svelte", "node.js", "nodejs",
	"express", "django", "flask", "fastapi", "spring", "rails", "laravel",
	"next.js", "jquery", "bootstrap", "tailwind",
	"machine learning", "deep learning", "nlp", "computer vision",
	"tensorflow", "pytorch", "keras", "scikit-learn", "pandas", "numpy",
	"data analysis", "data science", "data mining", "statistics",
	"aws", "azure", "gcp", "docker", "kubernetes", "terraform", "jenkins",
	"ci/cd", "git", "github", "gitlab", "linux", "bash", "ansible",
	"rest api", "graphql", "grpc", "microservices", "web scraping",
	"selenium", "scrapy", "beautifulsoup", "etl", "spark", "hadoop", "kafka",
	"airflow", "tableau", "power bi", "excel",
}

// softSkills complements the technical list.
var softSkills = []string{
	"communication", "teamwork", "leadership", "problem solving",
	"problem-solving", "critical thinking", "time management", "adaptability",
	"collaboration", "creativity", "attention to detail", "organization",
	"mentoring", "presentation", "negotiation", "decision making",
	"project management", "agile", "scrum", "stakeholder management",
	"public speaking", "conflict resolution", "analytical", "multitasking",
}

// titleStopWords stay lowercase inside title-cased multi-word skills.
var titleStopWords = map[string]bool{
	"and": true, "or": true, "the": true, "of": true, "in": true, "on": true, "at": true,
}

// skillsSectionPatterns locate an explicit skills block in the original
// resume text; the captured body is split into individual entries.
var skillsSectionPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?is)(?:technical\s+)?skills\s*(?::|&|•|\n)(.*?)(?:\n\n|\n[A-Z])`),
	regexp.MustCompile(`(?is)(?:core\s+)?(?:expertise|proficiencies|competencies)\s*:?(.*?)(?:\n\n|\n[A-Z])`),
}

// skillSplitRe separates section entries on commas, bullets, pipes and
// runs of two or more spaces.
var skillSplitRe = regexp.MustCompile(`[,•|;]|\s{2,}|\n`)

const maxResumeSkills = 15

var taxonomyRe = map[string]*regexp.Regexp{}

func init() {
	for _, s := range techSkills {
		taxonomyRe[s] = regexp.MustCompile(`\b` + regexp.QuoteMeta(s) + `\b`)
	}
	for _, s := range softSkills {
		taxonomyRe[s] = regexp.MustCompile(`\b` + regexp.QuoteMeta(s) + `\b`)
	}
}

// ExtractSkills scans the normalized text against the skill taxonomy,
// then augments with entries from an explicit skills section of the
// original text. Results are title-cased, case-insensitively deduplicated
// and capped at 15. The slice is never nil so callers serialize an empty
// list rather than null.
func ExtractSkills(norm, original string) []string {
	found := []string{}
	seen := map[string]bool{}

	for _, list := range [][]string{techSkills, softSkills} {
		for _, s := range list {
			if taxonomyRe[s].MatchString(norm) {
				display := TitleCaseSkill(s)
				key := strings.ToLower(display)
				if !seen[key] {
					seen[key] = true
					found = append(found, display)
				}
			}
		}
	}

	for _, re := range skillsSectionPatterns {
		m := re.FindStringSubmatch(original)
		if m == nil {
			continue
		}
		for _, part := range skillSplitRe.Split(m[1], -1) {
			part = strings.Trim(part, " \t.-:")
			if len(part) <= 2 || len(part) > 40 {
				continue
			}
			key := strings.ToLower(part)
			if !seen[key] {
				seen[key] = true
				found = append(found, part)
			}
		}
	}

	if len(found) > maxResumeSkills {
		found = found[:maxResumeSkills]
	}
	return found
}

// TitleCaseSkill capitalizes each word of a skill except connector stop
// words, leaving interior casing (as in "ci/cd" -> "Ci/cd") untouched
// beyond the first letter.
func TitleCaseSkill(s string) string {
	words := strings.Split(s, " ")
	for i, w := range words {
		if w == "" || titleStopWords[w] {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
