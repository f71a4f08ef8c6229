package skill

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"unicode/utf8"

	ignore "github.com/sabhiram/go-gitignore"
)

// MaxFileSize is the largest file included in a published bundle.
const MaxFileSize = 100 * 1024

// BuiltinIgnoreRules always apply when collecting a skill directory.
var BuiltinIgnoreRules = []string{
	".git",
	".DS_Store",
	"node_modules",
	"__pycache__",
	".venv",
	"*.pyc",
	"*.pyo",
	".env",
	".env.*",
	"!.env.example",
	"*.lock",
}

// binaryExts are never bundled; the marketplace stores text only.
var binaryExts = map[string]bool{
	".png": true, ".jpg": true, ".jpeg": true, ".gif": true, ".ico": true,
	".woff": true, ".woff2": true, ".ttf": true, ".eot": true,
	".zip": true, ".tar": true, ".gz": true,
}

// Skip reasons reported in Collection.Skipped.
const (
	SkipIgnored  = "ignored"
	SkipBinary   = "binary"
	SkipTooLarge = "too large"
	SkipSymlink  = "symlink"
	SkipUnread   = "unreadable"
)

// SkippedFile is a path left out of a bundle.
type SkippedFile struct {
	Path   string
	Reason string
}

// Collection is the result of walking a skill directory.
type Collection struct {
	// Files maps slash-separated relative paths to text content.
	Files map[string]string

	// Skipped lists files and directories left out, in walk order.
	Skipped []SkippedFile

	// IgnoreFile names the user ignore file applied, if any.
	IgnoreFile string
}

// Paths returns the collected paths in sorted order.
func (c *Collection) Paths() []string {
	paths := make([]string, 0, len(c.Files))
	for p := range c.Files {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}

// Size returns the total bytes of collected content.
func (c *Collection) Size() int {
	total := 0
	for _, content := range c.Files {
		total += len(content)
	}
	return total
}

// NewIgnoreMatcher builds the matcher for root: the built-in rules plus
// .clawignore, or .gitignore when there is no .clawignore.
// It returns the name of the user file it applied ("" for none).
func NewIgnoreMatcher(root string) (*ignore.GitIgnore, string) {
	lines := append([]string{}, BuiltinIgnoreRules...)

	applied := ""
	for _, name := range []string{".clawignore", ".gitignore"} {
		data, err := os.ReadFile(filepath.Join(root, name))
		if err != nil {
			continue
		}
		lines = append(lines, strings.Split(strings.ReplaceAll(string(data), "\r\n", "\n"), "\n")...)
		applied = name
		break
	}
	return ignore.CompileIgnoreLines(lines...), applied
}

// Collect walks root and returns its bundleable files.
// Ignored directories are not descended into. Binary extensions, files over
// MaxFileSize, symlinks and unreadable files are skipped.
func Collect(root string) (*Collection, error) {
	matcher, applied := NewIgnoreMatcher(root)
	c := &Collection{Files: make(map[string]string), IgnoreFile: applied}

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if path == root {
			return err
		}
		rel, relErr := filepath.Rel(root, path)
		if relErr != nil {
			return relErr
		}
		rel = filepath.ToSlash(rel)

		if err != nil {
			c.Skipped = append(c.Skipped, SkippedFile{Path: rel, Reason: SkipUnread})
			if d != nil && d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}

		if d.IsDir() {
			if matcher.MatchesPath(rel) || matcher.MatchesPath(rel+"/") {
				c.Skipped = append(c.Skipped, SkippedFile{Path: rel + "/", Reason: SkipIgnored})
				return fs.SkipDir
			}
			return nil
		}

		if matcher.MatchesPath(rel) {
			c.Skipped = append(c.Skipped, SkippedFile{Path: rel, Reason: SkipIgnored})
			return nil
		}
		if d.Type()&fs.ModeSymlink != 0 {
			c.Skipped = append(c.Skipped, SkippedFile{Path: rel, Reason: SkipSymlink})
			return nil
		}
		if !d.Type().IsRegular() {
			c.Skipped = append(c.Skipped, SkippedFile{Path: rel, Reason: SkipUnread})
			return nil
		}
		if binaryExts[strings.ToLower(filepath.Ext(rel))] {
			c.Skipped = append(c.Skipped, SkippedFile{Path: rel, Reason: SkipBinary})
			return nil
		}

		info, err := d.Info()
		if err != nil {
			c.Skipped = append(c.Skipped, SkippedFile{Path: rel, Reason: SkipUnread})
			return nil
		}
		if info.Size() > MaxFileSize {
			c.Skipped = append(c.Skipped, SkippedFile{Path: rel, Reason: SkipTooLarge})
			return nil
		}

		data, err := os.ReadFile(path)
		if err != nil {
			c.Skipped = append(c.Skipped, SkippedFile{Path: rel, Reason: SkipUnread})
			return nil
		}
		if !utf8.Valid(data) {
			data = []byte(strings.ToValidUTF8(string(data), "\uFFFD"))
		}
		c.Files[rel] = string(data)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return c, nil
}
