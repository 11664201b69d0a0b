package engine

import (
	"regexp"
	"strings"

	"github.com/anatolykoptev/go-kit/strutil"
)

// User-Agent used when fetching job posting URLs.
const UserAgentBot = "GoResume/1.0"

var (
	wsRe      = regexp.MustCompile(`\s+`)
	htmlTagRe = regexp.MustCompile(`<[^>]+>`)
)

// NormalizeText returns a case-folded copy of s with every run of
// whitespace (including newlines) collapsed to a single space.
// Used for case-insensitive keyword and regex matching; the caller keeps
// the original text for section-boundary extraction, where casing and line
// breaks carry signal. Empty input yields "".
func NormalizeText(s string) string {
	return strings.TrimSpace(wsRe.ReplaceAllString(strings.ToLower(s), " "))
}

// CollapseSpaces collapses whitespace runs without case folding.
func CollapseSpaces(s string) string {
	return strings.TrimSpace(wsRe.ReplaceAllString(s, " "))
}

// CleanHTML strips HTML tags and trims whitespace.
func CleanHTML(s string) string {
	return strings.TrimSpace(htmlTagRe.ReplaceAllString(s, ""))
}

// Truncate returns the first n bytes of s.
func Truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}

// TruncateRunes caps s at limit runes, appending suffix if truncated.
// Pass suffix="" for no suffix. Safe for UTF-8.
func TruncateRunes(s string, limit int, suffix string) string {
	return strutil.TruncateWith(s, limit, suffix)
}

// TruncateAtWord truncates a string to maxLen runes at a word boundary.
func TruncateAtWord(s string, maxLen int) string {
	return strutil.TruncateAtWord(s, maxLen)
}
