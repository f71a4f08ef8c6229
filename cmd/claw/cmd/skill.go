package cmd

import (
	"github.com/spf13/cobra"

	"github.com/openclaw-cn/claw/internal/api"
	"github.com/openclaw-cn/claw/internal/logging"
	"github.com/openclaw-cn/claw/internal/skill"
)

var skillCmd = &cobra.Command{
	Use:   "skill",
	Short: "Publish and install skills",
	Long: `Publish and install skills from the OpenClaw marketplace.

A skill is a directory with a SKILL.md file (YAML frontmatter with at least
name and description) plus any supporting text files. Installed skills live
in <install dir>/skills/<owner>__<name>/.

The install dir is OPENCLAW_INSTALL_DIR, else $OPENCLAW_HOME/.openclaw,
else install_dir from config.toml, else ~/.openclaw.`,
}

func init() {
	rootCmd.AddCommand(skillCmd)
}

// installer returns an installer rooted at the configured install dir.
func (a *app) installer() (*skill.Installer, error) {
	root, err := a.cfg.InstallRoot()
	if err != nil {
		return nil, err
	}
	return skill.NewInstaller(root, a.logger), nil
}

// bundleFromSkill converts a marketplace entry into an installable bundle.
func bundleFromSkill(s *api.Skill) *skill.Bundle {
	return &skill.Bundle{
		ID:          s.ID,
		OwnerID:     s.OwnerID,
		OwnerName:   s.OwnerName,
		Name:        s.Name,
		Description: s.Description,
		Version:     s.Version,
		Icon:        s.Icon,
		Status:      s.Status,
		Readme:      s.Readme,
		Files:       s.FileMap(),
		Metadata:    s.MetadataMap(),
	}
}

// installRemote fetches id and installs it.
func installRemote(a *app, inst *skill.Installer, id string, opts skill.InstallOptions) (*skill.InstallResult, *api.Skill, error) {
	logger := logging.WithSkill(a.logger, id)
	s, err := a.client.GetSkill(a.ctx, id)
	if err != nil {
		return nil, nil, err
	}
	logger.Debug("fetched skill", "version", s.Version, "status", s.Status, "files", len(s.FileMap()))
	res, err := inst.Install(bundleFromSkill(s), opts)
	if err != nil {
		return nil, s, err
	}
	return res, s, nil
}
