package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/openclaw-cn/claw/internal/logging"
	"github.com/openclaw-cn/claw/internal/skill"
)

var skillInstallForce bool

var skillInstallCmd = &cobra.Command{
	Use:   "install <id>",
	Short: "Install a skill by ID",
	Long: `Install a skill from the marketplace.

IDs without an owner get the "official/" prefix. An existing installation
is replaced entirely. When the installed version already matches the
marketplace version nothing is done unless --force is given.

Examples:
  claw skill install openclaw-cn
  claw skill install alice/weather --force`,
	Args: cobra.ExactArgs(1),
	RunE: runSkillInstall,
}

func init() {
	skillInstallCmd.Flags().BoolVar(&skillInstallForce, "force", false, "reinstall even when the same version is installed")
	skillCmd.AddCommand(skillInstallCmd)
}

func runSkillInstall(cmd *cobra.Command, args []string) error {
	id := skill.NormalizeID(args[0])

	a, err := newApp(cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	inst, err := a.installer()
	if err != nil {
		return err
	}

	st := a.status(fmt.Sprintf("Installing %s...", id))
	remote, err := a.client.GetSkill(a.ctx, id)
	if err != nil {
		st.Stop()
		return err
	}

	logging.WithSkill(a.logger, remote.ID).Debug("fetched skill", "version", remote.Version, "status", remote.Status)
	if !skillInstallForce && isInstalled(inst, remote.ID) && inst.LocalVersion(remote.ID) == remote.Version {
		st.Info(fmt.Sprintf("%s is already installed (v%s). Use --force to reinstall.", remote.ID, remote.Version))
		return nil
	}

	res, err := inst.Install(bundleFromSkill(remote), skill.InstallOptions{})
	if err != nil {
		st.Stop()
		return err
	}
	for _, p := range res.Skipped {
		fmt.Fprintln(a.errOut, a.theme.Warn(fmt.Sprintf("Skipped unsafe path: %s", p)))
	}
	st.Succeed(fmt.Sprintf("Installed to %s", res.Dir))
	return nil
}

// isInstalled reports whether id has a SKILL.md in its install dir.
func isInstalled(inst *skill.Installer, id string) bool {
	dir, err := inst.Dir(id)
	if err != nil {
		return false
	}
	_, err = os.Stat(filepath.Join(dir, skill.ManifestName))
	return err == nil
}
