package cmd

import (
	"os"
	"strings"
)

// resolveAvatar returns value unchanged when it looks like inline SVG,
// otherwise the content of the file it names if that file exists.
func resolveAvatar(value string) string {
	if value == "" || strings.HasPrefix(strings.TrimSpace(value), "<") {
		return value
	}
	info, err := os.Stat(value)
	if err != nil || info.IsDir() {
		return value
	}
	data, err := os.ReadFile(value)
	if err != nil {
		return value
	}
	return string(data)
}
