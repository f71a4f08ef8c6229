package skill

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	clawerrors "github.com/openclaw-cn/claw/internal/errors"
)

const delimiter = "---"

// SplitFrontmatter separates a leading "---" YAML block from the body.
// ok is false when content has no frontmatter; body is then the whole content.
func SplitFrontmatter(content string) (front, body string, ok bool) {
	content = strings.TrimPrefix(content, "\ufeff")

	first, rest, found := strings.Cut(content, "\n")
	if !found || strings.TrimRight(first, " \t\r") != delimiter {
		return "", content, false
	}

	offset := 0
	for offset <= len(rest) {
		line, next, more := strings.Cut(rest[offset:], "\n")
		if strings.TrimRight(line, " \t\r") == delimiter {
			front = rest[:offset]
			if more {
				body = next
			}
			return front, body, true
		}
		if !more {
			break
		}
		offset += len(line) + 1
	}
	return "", content, false
}

// ParseManifest parses SKILL.md content into its frontmatter and body.
// Content without frontmatter yields an empty manifest.
func ParseManifest(content string) (*Manifest, string, error) {
	front, body, ok := SplitFrontmatter(content)
	m := &Manifest{}
	if !ok {
		return m, body, nil
	}
	if err := yaml.Unmarshal([]byte(front), m); err != nil {
		return nil, "", clawerrors.Wrap(clawerrors.CodeSkillManifestInvalid, "SKILL.md frontmatter is not valid YAML", err)
	}
	return m, body, nil
}

// LoadManifest reads <dir>/SKILL.md.
func LoadManifest(dir string) (*Manifest, string, error) {
	path := filepath.Join(dir, ManifestName)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, "", clawerrors.SkillManifestMissing(dir)
		}
		return nil, "", clawerrors.IOReadError(path, err)
	}
	return ParseManifest(string(data))
}

// RenderManifest produces SKILL.md content: frontmatter, then body with a
// trailing newline.
func RenderManifest(m Manifest, body string) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(delimiter + "\n")

	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(m); err != nil {
		return nil, fmt.Errorf("encoding frontmatter: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("encoding frontmatter: %w", err)
	}

	buf.WriteString(delimiter + "\n")
	buf.WriteString(body)
	if !strings.HasSuffix(body, "\n") {
		buf.WriteByte('\n')
	}
	return buf.Bytes(), nil
}
