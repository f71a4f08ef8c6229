package cmd

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var skillListCmd = &cobra.Command{
	Use:   "list",
	Short: "List marketplace or installed skills",
	Long: `List skills from the marketplace.

Use --installed to list skills installed on this machine instead.
Use --json with --installed for machine-readable output.`,
	Args: cobra.NoArgs,
	RunE: runSkillList,
}

var (
	skillListStatus    string
	skillListInstalled bool
	skillListJSON      bool
)

func init() {
	skillListCmd.Flags().StringVar(&skillListStatus, "status", "", "filter by review status (e.g. approved, pending)")
	skillListCmd.Flags().BoolVar(&skillListInstalled, "installed", false, "list locally installed skills")
	skillListCmd.Flags().BoolVar(&skillListJSON, "json", false, "output as JSON (with --installed)")
	skillCmd.AddCommand(skillListCmd)
}

func runSkillList(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	if skillListInstalled {
		return listInstalledSkills(a)
	}

	st := a.status("Fetching skills...")
	skills, err := a.client.ListSkills(a.ctx, skillListStatus)
	st.Stop()
	if err != nil {
		return err
	}

	if len(skills) == 0 {
		fmt.Fprintln(a.out, "No skills found.")
		return nil
	}
	for _, s := range skills {
		fmt.Fprintf(a.out, "%s (%s) - %s\n", a.theme.Bold(s.Name), s.ID, s.Description)
	}
	return nil
}

func listInstalledSkills(a *app) error {
	inst, err := a.installer()
	if err != nil {
		return err
	}
	entries, err := inst.Index.List()
	if err != nil {
		return err
	}

	if skillListJSON {
		enc := json.NewEncoder(a.out)
		enc.SetIndent("", "  ")
		return enc.Encode(entries)
	}

	if len(entries) == 0 {
		fmt.Fprintln(a.out, "No skills installed.")
		return nil
	}

	w := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "SKILL\tVERSION\tFILES\tPATH")
	for _, e := range entries {
		version := e.Version
		if version == "" {
			version = "-"
		}
		fmt.Fprintf(w, "%s\t%s\t%d\t%s\n", e.ID, version, e.Files, e.Path)
	}
	return w.Flush()
}
