package match

import (
	"math/rand/v2"
	"strings"
)

// summaryTemplates are filled in with the extracted attributes; one is
// picked at random per analysis so repeated uploads read less canned.
var summaryTemplates = []string{
	"{category} professional with {experience} years of experience. Skilled in {skills}. {education} education background.",
	"Experienced {category} specialist bringing {experience} years of expertise. Proficient in {skills}. Holds {education} level education.",
	"Results-driven {category} expert with {experience} years in the field. Core competencies include {skills}. {education} educated.",
	"{education} graduate with {experience} years of {category} experience. Key skills: {skills}.",
	"Dedicated {category} practitioner offering {experience} years of hands-on experience. Expertise spans {skills}.",
}

const fallbackSkillsPhrase = "various technical and professional competencies"

// experienceBand maps exact years onto the coarse range quoted in
// generated summaries.
func experienceBand(years int) string {
	switch {
	case years == 1:
		return "1"
	case years < 3:
		return "2-3"
	case years < 5:
		return "3-5"
	case years < 8:
		return "5-7"
	case years < 12:
		return "8-10"
	default:
		return "10+"
	}
}

// joinSkills renders between three and five skills as a natural-language
// list, "A, B and C". Fewer than three available skills are all used.
func joinSkills(skills []string) string {
	if len(skills) == 0 {
		return fallbackSkillsPhrase
	}
	n := len(skills)
	if n >= 3 {
		pick := 3 + rand.IntN(3)
		if pick < n {
			n = pick
		}
	}
	chosen := skills[:n]
	if len(chosen) == 1 {
		return chosen[0]
	}
	return strings.Join(chosen[:len(chosen)-1], ", ") + " and " + chosen[len(chosen)-1]
}

// GenerateSummary composes a short professional summary from the
// extracted resume attributes.
func GenerateSummary(category string, years int, education string, skills []string) string {
	tpl := summaryTemplates[rand.IntN(len(summaryTemplates))]
	r := strings.NewReplacer(
		"{category}", category,
		"{experience}", experienceBand(years),
		"{education}", education,
		"{skills}", joinSkills(skills),
	)
	return r.Replace(tpl)
}
