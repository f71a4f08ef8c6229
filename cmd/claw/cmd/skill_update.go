package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/openclaw-cn/claw/internal/api"
	"github.com/openclaw-cn/claw/internal/logging"
	"github.com/openclaw-cn/claw/internal/skill"
)

// updateCheckConcurrency bounds parallel version lookups.
const updateCheckConcurrency = 4

var skillUpdateCmd = &cobra.Command{
	Use:   "update [id]",
	Short: "Update installed skills",
	Long: `Reinstall skills whose marketplace version differs from the installed one.

Without an ID every skill under the skills dir that records an id in its
SKILL.md is checked.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSkillUpdate,
}

func init() {
	skillCmd.AddCommand(skillUpdateCmd)
}

// updateCheck is the remote lookup result for one skill.
type updateCheck struct {
	id     string
	remote *api.Skill
	err    error
}

func runSkillUpdate(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	inst, err := a.installer()
	if err != nil {
		return err
	}

	st := a.status("Checking for updates...")

	scanned, missing, ok, err := inst.InstalledIDs()
	if err != nil {
		st.Stop()
		return err
	}
	if !ok {
		st.Info("No skills installed.")
		return nil
	}

	explicit := len(args) == 1
	ids := scanned
	if explicit {
		ids = []string{skill.NormalizeID(args[0])}
	}
	if len(ids) == 0 {
		a.logger.Debug("installed skills without id", "count", missing)
		st.Info("No installed skills found with valid ID metadata.")
		return nil
	}

	checks := fetchRemoteVersions(a, ids)
	st.Stop()

	updated := applyUpdates(a, inst, checks, explicit)
	if !explicit && updated == 0 {
		a.status("Checking for updates...").Succeed("All skills are up to date.")
	}
	return nil
}

// applyUpdates reinstalls every checked skill whose remote version differs
// and returns how many were updated. Each skill gets its own status line.
func applyUpdates(a *app, inst *skill.Installer, checks []updateCheck, explicit bool) int {
	updated := 0
	for _, c := range checks {
		if c.err != nil {
			a.status(fmt.Sprintf("Checking %s...", c.id)).Fail(fmt.Sprintf("Failed to update %s: %s", c.id, errorText(c.err)))
			continue
		}

		local := inst.LocalVersion(c.id)
		logging.WithSkill(a.logger, c.id).Debug("version check", "local", local, "remote", c.remote.Version)
		if c.remote.Version == local {
			if explicit {
				a.status(fmt.Sprintf("Checking %s...", c.id)).Succeed(fmt.Sprintf("%s is already up to date (v%s)", c.id, local))
			}
			continue
		}

		st := a.status(fmt.Sprintf("Updating %s (%s -> %s)...", c.id, local, c.remote.Version))
		if _, err := inst.Install(bundleFromSkill(c.remote), skill.InstallOptions{}); err != nil {
			st.Fail(fmt.Sprintf("Failed to update %s: %s", c.id, errorText(err)))
			continue
		}
		st.Succeed(fmt.Sprintf("Updated %s to v%s", c.id, c.remote.Version))
		updated++
	}
	return updated
}

// fetchRemoteVersions looks up every id concurrently and returns the
// results in input order. Per-skill failures are kept in the result.
func fetchRemoteVersions(a *app, ids []string) []updateCheck {
	checks := make([]updateCheck, len(ids))

	var g errgroup.Group
	g.SetLimit(updateCheckConcurrency)
	for i, id := range ids {
		g.Go(func() error {
			remote, err := a.client.GetSkill(a.ctx, id)
			checks[i] = updateCheck{id: id, remote: remote, err: err}
			return nil
		})
	}
	_ = g.Wait()
	return checks
}
