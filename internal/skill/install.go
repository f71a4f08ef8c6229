package skill

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	clawerrors "github.com/openclaw-cn/claw/internal/errors"
)

// Installer restores bundles under a skills directory and keeps the index
// in step.
type Installer struct {
	// SkillsDir is <install root>/skills.
	SkillsDir string

	Index  *Index
	Logger *slog.Logger
}

// NewInstaller creates an installer rooted at installRoot.
func NewInstaller(installRoot string, logger *slog.Logger) *Installer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Installer{
		SkillsDir: filepath.Join(installRoot, "skills"),
		Index:     NewIndex(installRoot),
		Logger:    logger,
	}
}

// InstallOptions tunes Install.
type InstallOptions struct {
	// IncludeStatus writes the review status into SKILL.md (admin installs).
	IncludeStatus bool
}

// InstallResult describes a finished install.
type InstallResult struct {
	Dir     string
	Version string
	Written []string
	Skipped []string
}

// Dir returns the install directory for id.
func (inst *Installer) Dir(id string) (string, error) {
	folder, err := FolderName(id)
	if err != nil {
		return "", err
	}
	return filepath.Join(inst.SkillsDir, folder), nil
}

// Install writes b into its directory. An existing directory is removed
// first, so reinstalling yields exactly the bundle's content. Bundle paths
// that are absolute, contain "..", or resolve outside the directory are
// skipped. SKILL.md is written last from the bundle's manifest and readme.
func (inst *Installer) Install(b *Bundle, opts InstallOptions) (*InstallResult, error) {
	dir, err := inst.Dir(b.ID)
	if err != nil {
		return nil, err
	}

	if err := os.RemoveAll(dir); err != nil {
		return nil, clawerrors.IOWriteError(dir, err)
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, clawerrors.IOWriteError(dir, err)
	}

	result := &InstallResult{Dir: dir, Version: b.Version}

	paths := make([]string, 0, len(b.Files))
	for p := range b.Files {
		paths = append(paths, p)
	}
	sort.Strings(paths)

	for _, rel := range paths {
		target, err := safeJoin(dir, rel)
		if err != nil {
			inst.Logger.Warn("skipping unsafe bundle path", "skill_id", b.ID, "path", rel)
			result.Skipped = append(result.Skipped, rel)
			continue
		}
		if err := os.MkdirAll(filepath.Dir(target), 0755); err != nil {
			return nil, clawerrors.IOWriteError(filepath.Dir(target), err)
		}
		if err := os.WriteFile(target, []byte(b.Files[rel]), 0644); err != nil {
			return nil, clawerrors.IOWriteError(target, err)
		}
		result.Written = append(result.Written, rel)
	}

	manifest, err := RenderManifest(b.Manifest(opts.IncludeStatus), b.Readme)
	if err != nil {
		return nil, clawerrors.Wrap(clawerrors.CodeSkillBundleInvalid, "rendering SKILL.md", err)
	}
	manifestPath := filepath.Join(dir, ManifestName)
	if err := os.WriteFile(manifestPath, manifest, 0644); err != nil {
		return nil, clawerrors.IOWriteError(manifestPath, err)
	}

	entry := InstalledSkill{
		ID:      b.ID,
		Name:    b.Name,
		Version: b.Version,
		Path:    dir,
		Files:   len(result.Written),
	}
	if opts.IncludeStatus {
		entry.Status = b.Status
	}
	if err := inst.Index.Add(entry); err != nil {
		inst.Logger.Warn("could not update installed index", "error", err)
	}

	inst.Logger.Debug("skill installed", "skill_id", b.ID, "dir", dir,
		"files", len(result.Written), "skipped", len(result.Skipped))
	return result, nil
}

// Uninstall removes the skill directory and its index entry.
// It reports whether anything was removed.
func (inst *Installer) Uninstall(id string) (bool, error) {
	dir, err := inst.Dir(id)
	if err != nil {
		return false, err
	}

	entry, err := inst.Index.Get(id)
	if err != nil {
		return false, err
	}

	_, statErr := os.Stat(dir)
	if os.IsNotExist(statErr) && entry == nil {
		return false, nil
	}

	if err := os.RemoveAll(dir); err != nil {
		return false, clawerrors.IOWriteError(dir, err)
	}
	if err := inst.Index.Remove(id); err != nil {
		return true, err
	}
	return true, nil
}

// LocalVersion returns the version in the installed SKILL.md of id, or
// DefaultVersion when it is missing or has none.
func (inst *Installer) LocalVersion(id string) string {
	dir, err := inst.Dir(id)
	if err != nil {
		return DefaultVersion
	}
	m, _, err := LoadManifest(dir)
	if err != nil {
		return DefaultVersion
	}
	return m.ResolvedVersion()
}

// InstalledIDs scans <skills dir>/*/SKILL.md and returns the frontmatter ids
// in directory order. Skills without an id are counted in missing.
// ok is false when the skills directory does not exist.
func (inst *Installer) InstalledIDs() (ids []string, missing int, ok bool, err error) {
	entries, err := os.ReadDir(inst.SkillsDir)
	if os.IsNotExist(err) {
		return nil, 0, false, nil
	}
	if err != nil {
		return nil, 0, false, clawerrors.IOReadError(inst.SkillsDir, err)
	}

	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		m, _, err := LoadManifest(filepath.Join(inst.SkillsDir, entry.Name()))
		if err != nil {
			continue
		}
		if m.ID == "" {
			missing++
			continue
		}
		ids = append(ids, m.ID)
	}
	return ids, missing, true, nil
}

// safeJoin joins a bundle path onto base, rejecting absolute paths, any
// ".." and results outside base.
func safeJoin(base, rel string) (string, error) {
	if rel == "" || strings.Contains(rel, "..") || strings.HasPrefix(rel, "/") ||
		strings.HasPrefix(rel, `\`) || filepath.IsAbs(rel) || filepath.VolumeName(rel) != "" {
		return "", fmt.Errorf("unsafe path %q", rel)
	}
	p := filepath.Clean(filepath.Join(base, filepath.FromSlash(rel)))
	cleanBase := filepath.Clean(base)
	if p == cleanBase || !strings.HasPrefix(p, cleanBase+string(filepath.Separator)) {
		return "", fmt.Errorf("path %q escapes %q", rel, base)
	}
	return p, nil
}
