package skill

import (
	"regexp"
	"strings"
)

var (
	slugInvalid = regexp.MustCompile(`[^a-zA-Z0-9_-]`)
	slugDashes  = regexp.MustCompile(`-+`)
)

// Slug derives a skill id from a directory name: characters outside
// [A-Za-z0-9_-] become "-", dash runs collapse, edge dashes are trimmed and
// the result is lowercased. An empty result becomes "skill".
func Slug(dirName string) string {
	s := slugInvalid.ReplaceAllString(dirName, "-")
	s = slugDashes.ReplaceAllString(s, "-")
	s = strings.TrimPrefix(s, "-")
	s = strings.TrimSuffix(s, "-")
	s = strings.ToLower(s)
	if s == "" {
		return "skill"
	}
	return s
}
