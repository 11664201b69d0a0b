package match

import "regexp"

// educationLevels in precedence order: the first matching level wins, so
// a resume mentioning both a PhD and a Bachelor's reports the PhD.
var educationLevels = []struct {
	Level string
	Re    *regexp.Regexp
}{
	{"PhD", regexp.MustCompile(`\b(?:ph\.?d\.?|doctor\s+of\s+philosophy|doctoral|doctorate)\b`)},
	{"Master's", regexp.MustCompile(`\b(?:master'?s?|m\.?s\.?c?|m\.a\.|mba|m\.b\.a\.?|m\.eng\.?|mtech|m\.tech\.?)\b`)},
	{"Bachelor's", regexp.MustCompile(`\b(?:bachelor'?s?|b\.?s\.?c?|b\.a\.|b\.e\.|btech|b\.tech\.?|undergraduate\s+degree)\b`)},
	{"Associate's", regexp.MustCompile(`\b(?:associate'?s?\s+degree|a\.a\.s?\.?|a\.s\.)\b`)},
	{"High School", regexp.MustCompile(`\b(?:high\s+school|secondary\s+school|diploma|g\.?e\.?d\.?)\b`)},
}

// institutionRe spots attendance at a degree-granting institution when no
// explicit credential is named.
var institutionRe = regexp.MustCompile(`\b(?:university|college|institute)\b`)

const defaultEducationLevel = "High School"

// ExtractEducationLevel returns the highest education credential named in
// the normalized resume text. A bare institution mention implies a
// Bachelor's; otherwise the floor is High School.
func ExtractEducationLevel(norm string) string {
	for _, e := range educationLevels {
		if e.Re.MatchString(norm) {
			return e.Level
		}
	}
	if institutionRe.MatchString(norm) {
		return "Bachelor's"
	}
	return defaultEducationLevel
}
