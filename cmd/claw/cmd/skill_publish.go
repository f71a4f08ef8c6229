package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/openclaw-cn/claw/internal/api"
	clawerrors "github.com/openclaw-cn/claw/internal/errors"
	"github.com/openclaw-cn/claw/internal/skill"
	"github.com/openclaw-cn/claw/internal/ui"
)

var skillPublishDryRun bool

var skillPublishCmd = &cobra.Command{
	Use:   "publish [dir]",
	Short: "Publish a directory as a skill",
	Long: `Publish a skill directory (default: the current directory).

The skill ID is derived from the directory name. Files are collected
recursively, skipping:
  - .git, node_modules, __pycache__, .venv, .DS_Store, *.pyc, *.pyo, *.lock
  - .env and .env.* (except .env.example)
  - patterns from .clawignore, or .gitignore when there is no .clawignore
  - binary files (images, fonts, archives) and files over 100 KB

README.md, when present, is used as the description page instead of the
SKILL.md body.

Examples:
  claw skill publish
  claw skill publish ./weather --dry-run`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSkillPublish,
}

func init() {
	skillPublishCmd.Flags().BoolVar(&skillPublishDryRun, "dry-run", false, "list the files that would be published without publishing")
	skillCmd.AddCommand(skillPublishCmd)
}

func runSkillPublish(cmd *cobra.Command, args []string) error {
	dir := "."
	if len(args) == 1 {
		dir = args[0]
	}
	dir, err := filepath.Abs(dir)
	if err != nil {
		return fmt.Errorf("resolving path: %w", err)
	}

	a, err := newApp(cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	m, body, err := skill.LoadManifest(dir)
	if err != nil {
		return err
	}
	if err := m.ValidatePublish(); err != nil {
		return err
	}

	col, err := skill.Collect(dir)
	if err != nil {
		return clawerrors.IOReadError(dir, err)
	}
	for _, s := range col.Skipped {
		a.logger.Debug("skipped file", "path", s.Path, "reason", s.Reason)
	}

	readme := body
	if data, err := os.ReadFile(filepath.Join(dir, skill.ReadmeName)); err == nil {
		readme = string(data)
	}

	skillID := skill.Slug(filepath.Base(dir))

	if skillPublishDryRun {
		printPublishPlan(a, skillID, m, col)
		return nil
	}

	if err := a.requireToken(); err != nil {
		return err
	}

	filesJSON, err := json.Marshal(col.Files)
	if err != nil {
		return fmt.Errorf("encoding files: %w", err)
	}
	req := api.PublishSkillRequest{
		SkillID:     skillID,
		Name:        m.Name,
		Description: m.Description,
		Version:     m.Version,
		Icon:        m.ResolvedIcon(),
		Readme:      readme,
		Files:       string(filesJSON),
	}
	if m.Metadata != nil {
		meta, err := json.Marshal(m.Metadata)
		if err != nil {
			return clawerrors.SkillManifestInvalid(fmt.Sprintf("metadata cannot be encoded: %v", err))
		}
		req.Metadata = string(meta)
	}

	st := a.status("Publishing to OpenClaw...")
	created, err := a.client.PublishSkill(a.ctx, req)
	if err != nil {
		st.Stop()
		return err
	}
	st.Succeed(fmt.Sprintf("Skill published: %s (%d files)", created.ID, len(col.Files)))
	if created.Status == "pending" {
		fmt.Fprintln(a.out, a.theme.Warn("Your skill is pending review by administrators."))
	}
	return nil
}

func printPublishPlan(a *app, skillID string, m *skill.Manifest, col *skill.Collection) {
	fmt.Fprintf(a.out, "Would publish %s as %q", m.Name, skillID)
	if m.Version != "" {
		fmt.Fprintf(a.out, " (v%s)", m.Version)
	}
	fmt.Fprintln(a.out)
	if col.IgnoreFile != "" {
		fmt.Fprintf(a.out, "Ignore rules: built-in + %s\n", col.IgnoreFile)
	}

	fmt.Fprintln(a.out, "\nFiles:")
	for _, p := range col.Paths() {
		fmt.Fprintf(a.out, "  %-40s %s\n", p, ui.Bytes(len(col.Files[p])))
	}
	fmt.Fprintf(a.out, "\n%d files, %s\n", len(col.Files), ui.Bytes(col.Size()))

	if len(col.Skipped) > 0 {
		fmt.Fprintln(a.out, "\nSkipped:")
		for _, s := range col.Skipped {
			fmt.Fprintf(a.out, "  %s (%s)\n", s.Path, s.Reason)
		}
	}
}
