package match

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"regexp"
	"strconv"
	"strings"

	"github.com/anatolykoptev/go_resume/internal/engine"
)

// jdSkillPatterns extract individual requirement tokens from a posting,
// grouped loosely by technology area.
var jdSkillPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\b(python|java|javascript|typescript|golang|ruby|php|scala|kotlin|swift|rust)\b`),
	regexp.MustCompile(`(?i)\b(django|flask|fastapi|react|angular|vue|spring|rails|express|laravel)\b`),
	regexp.MustCompile(`(?i)\b(tensorflow|pytorch|keras|scikit-learn|spacy|nltk|transformers|huggingface|langchain)\b`),
	regexp.MustCompile(`(?i)\b(sql|mysql|postgresql|mongodb|redis|elasticsearch|sqlite|cassandra)\b`),
	regexp.MustCompile(`(?i)\b(aws|azure|gcp|docker|kubernetes|terraform|jenkins|linux)\b`),
	regexp.MustCompile(`(?i)\b(selenium|scrapy|beautifulsoup|playwright|puppeteer)\b`),
	regexp.MustCompile(`(?i)\b(spark|hadoop|kafka|airflow|etl)\b`),
	regexp.MustCompile(`(?i)\b(git|jira|agile|scrum)\b`),
}

// jdCompoundSkills are multi-word requirements located by plain substring
// search on the lowered text; each carries its canonical display label.
var jdCompoundSkills = []struct {
	Term  string
	Label string
}{
	{"machine learning", "Machine Learning"},
	{"deep learning", "Deep Learning"},
	{"natural language processing", "NLP"},
	{"natural language understanding", "NLU"},
	{"computer vision", "Computer Vision"},
	{"data science", "Data Science"},
	{"data analysis", "Data Analysis"},
	{"data engineering", "Data Engineering"},
	{"data mining", "Data Mining"},
	{"web scraping", "Web Scraping"},
	{"data extraction", "Data Extraction"},
	{"text processing", "Text Processing"},
	{"text mining", "Text Mining"},
	{"sentiment analysis", "Sentiment Analysis"},
	{"named entity recognition", "Named Entity Recognition"},
	{"information retrieval", "Information Retrieval"},
	{"information extraction", "Information Extraction"},
	{"large language model", "LLMs"},
	{"prompt engineering", "Prompt Engineering"},
	{"model training", "Model Training"},
	{"model deployment", "Model Deployment"},
	{"feature engineering", "Feature Engineering"},
	{"neural network", "Neural Networks"},
	{"rest api", "REST API"},
	{"restful api", "REST API"},
	{"api development", "API Development"},
	{"api integration", "API Integration"},
	{"microservices", "Microservices"},
	{"distributed systems", "Distributed Systems"},
	{"ci/cd", "CI/CD"},
	{"unit testing", "Unit Testing"},
	{"version control", "Version Control"},
	{"cloud computing", "Cloud Computing"},
	{"big data", "Big Data"},
	{"statistical analysis", "Statistical Analysis"},
}

// jdExperiencePatterns capture required experience; the optional second
// group is the upper bound of an explicit range.
var jdExperiencePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(\d+)\s*(?:-|to)\s*(\d+)\s*\+?\s*years?`),
	regexp.MustCompile(`(?i)(\d+)\s*\+\s*years?`),
	regexp.MustCompile(`(?i)minimum\s+(?:of\s+)?(\d+)\s*years?`),
	regexp.MustCompile(`(?i)at\s+least\s+(\d+)\s*years?`),
	regexp.MustCompile(`(?i)(\d+)\s*years?\s*(?:of\s+)?(?:relevant\s+|professional\s+|work\s+)?experience`),
}

const defaultJDExperience = "2-4 years"

// jdCategories classify postings by title keywords; first match wins.
var jdCategories = []taxonomy{
	{"Data Scientist", []string{"data scientist", "data science"}},
	{"NLP Engineer", []string{"nlp engineer", "nlp", "natural language", "computational linguist"}},
	{"Machine Learning Engineer", []string{"machine learning engineer", "ml engineer", "machine learning"}},
	{"Software Engineer", []string{"software engineer", "software developer"}},
	{"Backend Developer", []string{"backend developer", "backend engineer", "back-end"}},
	{"Frontend Developer", []string{"frontend developer", "frontend engineer", "front-end"}},
	{"Full-Stack Developer", []string{"full-stack", "full stack"}},
	{"DevOps Engineer", []string{"devops", "site reliability", "sre"}},
	{"Web Scraping Specialist", []string{"web scraping", "scraping specialist", "data extraction specialist"}},
}

const defaultJDCategory = "NLP Engineer"

var (
	jdBachelorRe = regexp.MustCompile(`(?i)\b(?:bachelor|b\.s|bs|degree)\b`)
	jdMasterRe   = regexp.MustCompile(`(?i)\b(?:master|m\.s|ms)\b`)
	jdPhDRe      = regexp.MustCompile(`(?i)\b(?:phd|ph\.d|doctorate)\b`)
)

const maxJDSkills = 20

// AnalyzeJobDescriptionText runs the rule-based pipeline over a job
// posting. Like the resume pipeline it is total: empty input yields the
// documented defaults.
func AnalyzeJobDescriptionText(text string) engine.JobDescriptionAnalysis {
	engine.IncrJDAnalyses()

	lower := strings.ToLower(text)
	skills := extractJDSkills(text, lower)
	exp := extractJDExperience(text)
	category := extractJDCategory(lower)
	reqs := extractJDRequirements(text, skills, exp)

	return engine.JobDescriptionAnalysis{
		Summary:      jdSummary(category, exp, skills, lower),
		Skills:       skills,
		Requirements: reqs,
		Experience:   exp,
		Category:     category,
	}
}

func extractJDSkills(text, lower string) []string {
	var skills []string
	seen := map[string]bool{}
	add := func(s string) {
		key := strings.ToLower(s)
		if !seen[key] {
			seen[key] = true
			skills = append(skills, s)
		}
	}

	for _, re := range jdSkillPatterns {
		for _, m := range re.FindAllStringSubmatch(text, -1) {
			add(TitleCaseSkill(strings.ToLower(m[1])))
		}
	}
	for _, c := range jdCompoundSkills {
		if strings.Contains(lower, c.Term) {
			add(c.Label)
		}
	}

	if len(skills) > maxJDSkills {
		skills = skills[:maxJDSkills]
	}
	return skills
}

// extractJDExperience returns the required range as "lo-hi years". A
// single stated minimum is widened by two years; no match defaults to
// "2-4 years".
func extractJDExperience(text string) string {
	for _, re := range jdExperiencePatterns {
		m := re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		lo, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		hi := lo + 2
		if len(m) > 2 && m[2] != "" {
			if h, err := strconv.Atoi(m[2]); err == nil {
				hi = h
			}
		}
		return fmt.Sprintf("%d-%d years", lo, hi)
	}
	return defaultJDExperience
}

func extractJDCategory(lower string) string {
	for _, t := range jdCategories {
		for _, kw := range t.Keywords {
			if strings.Contains(lower, kw) {
				return t.Name
			}
		}
	}
	return defaultJDCategory
}

// extractJDRequirements assembles the requirement bullets. Each degree
// flag is independent, so a posting naming several levels lists them all.
func extractJDRequirements(text string, skills []string, exp string) []string {
	var reqs []string
	if jdBachelorRe.MatchString(text) {
		reqs = append(reqs, "Bachelor's degree")
	}
	if jdMasterRe.MatchString(text) {
		reqs = append(reqs, "Master's degree preferred")
	}
	if jdPhDRe.MatchString(text) {
		reqs = append(reqs, "PhD preferred")
	}
	if exp != defaultJDExperience {
		reqs = append(reqs, exp+" experience")
	}
	hasSkill := func(subs ...string) bool {
		for _, s := range skills {
			ls := strings.ToLower(s)
			for _, sub := range subs {
				if strings.Contains(ls, sub) {
					return true
				}
			}
		}
		return false
	}
	if hasSkill("machine learning", "deep learning") {
		reqs = append(reqs, "Machine Learning experience")
	}
	if hasSkill("nlp", "nlu", "text") {
		reqs = append(reqs, "NLP/Text processing experience")
	}
	if hasSkill("scraping", "extraction") {
		reqs = append(reqs, "Web scraping experience")
	}
	return reqs
}

// jdSummary synthesizes a one-line description from the extracted
// attributes. Every focus area detected in the posting text is kept and
// joined, not just the first.
func jdSummary(category, exp string, skills []string, lower string) string {
	var focuses []string
	if strings.Contains(lower, "nlp") || strings.Contains(lower, "natural language") {
		focuses = append(focuses, "NLP and machine learning")
	}
	if strings.Contains(lower, "scraping") || strings.Contains(lower, "extraction") {
		focuses = append(focuses, "web scraping and data extraction")
	}
	if strings.Contains(lower, "model") && (strings.Contains(lower, "deployment") || strings.Contains(lower, "training")) {
		focuses = append(focuses, "model development and deployment")
	}
	focus := "software development"
	if len(focuses) > 0 {
		focus = strings.Join(focuses, " and ")
	}

	head := skills
	if len(head) > 4 {
		head = head[:4]
	}
	skillsPart := strings.Join(head, ", ")
	if skillsPart == "" {
		skillsPart = "various technologies"
	}
	return fmt.Sprintf("%s position focusing on %s, requiring %s experience with %s.", category, focus, exp, skillsPart)
}

// AnalyzeJobDescription dispatches between the LLM analyzer and the
// rule-based pipeline, mirroring AnalyzeResume.
func AnalyzeJobDescription(ctx context.Context, text string) (engine.JobDescriptionAnalysis, string) {
	if engine.Cfg.AnalyzerMode == engine.ModeRegex || !engine.LLMAvailable() {
		return AnalyzeJobDescriptionText(text), "regex"
	}

	res, err := analyzeJDLLM(ctx, text)
	if err != nil {
		slog.Warn("llm jd analysis failed, using rules", slog.Any("error", err))
		engine.IncrLLMFallbacks()
		return AnalyzeJobDescriptionText(text), "regex"
	}
	return res, "llm"
}

func analyzeJDLLM(ctx context.Context, text string) (engine.JobDescriptionAnalysis, error) {
	prompt := jdAnalyzePrompt + "\n\nJob description:\n" + engine.Truncate(text, engine.Cfg.MaxContentChars)
	raw, err := engine.CallLLM(ctx, prompt)
	if err != nil {
		return engine.JobDescriptionAnalysis{}, err
	}

	var res engine.JobDescriptionAnalysis
	if err := json.Unmarshal([]byte(raw), &res); err != nil {
		return engine.JobDescriptionAnalysis{}, err
	}
	if len(res.Skills) > maxJDSkills {
		res.Skills = res.Skills[:maxJDSkills]
	}
	if res.Experience == "" {
		res.Experience = defaultJDExperience
	}
	if res.Category == "" {
		res.Category = defaultJDCategory
	}
	engine.IncrJDAnalyses()
	return res, nil
}
