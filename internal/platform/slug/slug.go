package slug

import (
	"regexp"
	"strings"
	"unicode"
)

var nonAlphaNum = regexp.MustCompile(`[^a-z0-9]+`)

// Make turns a key or title into a lowercase file-safe name. Camel case
// boundaries become dashes, so "userProgress" and "user progress" agree.
func Make(input string) string {
	var sb strings.Builder
	runes := []rune(strings.TrimSpace(input))
	for i, r := range runes {
		if i > 0 && unicode.IsUpper(r) && unicode.IsLower(runes[i-1]) {
			sb.WriteRune('-')
		}
		sb.WriteRune(unicode.ToLower(r))
	}
	s := nonAlphaNum.ReplaceAllString(sb.String(), "-")
	s = strings.Trim(s, "-")
	if s == "" {
		return "untitled"
	}
	return s
}
