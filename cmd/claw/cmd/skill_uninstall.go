package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/openclaw-cn/claw/internal/skill"
)

var skillUninstallYes bool

var skillUninstallCmd = &cobra.Command{
	Use:     "uninstall <id>",
	Aliases: []string{"remove"},
	Short:   "Remove an installed skill",
	Args:    cobra.ExactArgs(1),
	RunE:    runSkillUninstall,
}

func init() {
	skillUninstallCmd.Flags().BoolVarP(&skillUninstallYes, "yes", "y", false, "skip confirmation")
	skillCmd.AddCommand(skillUninstallCmd)
}

func runSkillUninstall(cmd *cobra.Command, args []string) error {
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

	if !isInstalled(inst, id) {
		if entry, _ := inst.Index.Get(id); entry == nil {
			fmt.Fprintf(a.out, "%s is not installed.\n", id)
			return nil
		}
	}

	if !skillUninstallYes {
		ok, err := a.prompt.Confirm(fmt.Sprintf("Remove skill %s?", id))
		if err != nil {
			return err
		}
		if !ok {
			fmt.Fprintln(a.out, "Cancelled.")
			return nil
		}
	}

	removed, err := inst.Uninstall(id)
	if err != nil {
		return err
	}
	if !removed {
		fmt.Fprintf(a.out, "%s is not installed.\n", id)
		return nil
	}
	fmt.Fprintln(a.out, a.theme.Success(fmt.Sprintf("Removed %s", id)))
	return nil
}
