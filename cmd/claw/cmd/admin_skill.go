package cmd

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/openclaw-cn/claw/internal/api"
	clawerrors "github.com/openclaw-cn/claw/internal/errors"
	"github.com/openclaw-cn/claw/internal/skill"
	"github.com/openclaw-cn/claw/internal/ui"
)

var adminSkillCmd = &cobra.Command{
	Use:   "skill",
	Short: "Review and manage marketplace skills",
}

var adminSkillListCmd = &cobra.Command{
	Use:   "list",
	Short: "List skills pending review",
	Args:  cobra.NoArgs,
	RunE:  runAdminSkillList,
}

var adminSkillViewCmd = &cobra.Command{
	Use:   "view <id>",
	Short: "Show full details of a skill, including pending ones",
	Args:  cobra.ExactArgs(1),
	RunE:  runAdminSkillView,
}

var adminSkillInstallCmd = &cobra.Command{
	Use:   "install <id>",
	Short: "Install a skill of any status for testing",
	Args:  cobra.ExactArgs(1),
	RunE:  runAdminSkillInstall,
}

var (
	adminReviewApprove bool
	adminReviewReject  bool
	adminReviewNote    string
)

var adminSkillReviewCmd = &cobra.Command{
	Use:   "review <id>",
	Short: "Approve or reject a skill submission",
	Args:  cobra.ExactArgs(1),
	RunE:  runAdminSkillReview,
}

var adminSkillDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a skill from the market",
	Args:  cobra.ExactArgs(1),
	RunE:  runAdminSkillDelete,
}

func init() {
	adminSkillReviewCmd.Flags().BoolVar(&adminReviewApprove, "approve", false, "approve the skill")
	adminSkillReviewCmd.Flags().BoolVar(&adminReviewReject, "reject", false, "reject the skill")
	adminSkillReviewCmd.Flags().StringVar(&adminReviewNote, "note", "", "review note or reason")

	adminSkillCmd.AddCommand(adminSkillListCmd)
	adminSkillCmd.AddCommand(adminSkillViewCmd)
	adminSkillCmd.AddCommand(adminSkillInstallCmd)
	adminSkillCmd.AddCommand(adminSkillReviewCmd)
	adminSkillCmd.AddCommand(adminSkillDeleteCmd)
	adminCmd.AddCommand(adminSkillCmd)
}

func runAdminSkillList(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	st := a.status("Fetching pending skills...")
	skills, err := a.client.ListSkills(a.ctx, "pending")
	st.Stop()
	if err != nil {
		return err
	}

	if len(skills) == 0 {
		fmt.Fprintln(a.out, a.theme.Warn("No pending skills found."))
		return nil
	}

	fmt.Fprintln(a.out, a.theme.Bold("Pending Skills:"))
	for _, s := range skills {
		fmt.Fprintf(a.out, "%s (v%s) by %s\n", a.theme.Success(s.ID), s.Version, s.OwnerName)
		fmt.Fprintf(a.out, "  %s\n", a.theme.Muted(s.Description))
		fmt.Fprintf(a.out, "  %s\n", a.theme.Accent("Updated: "+s.UpdatedAt.Local()))
		fmt.Fprintln(a.out)
	}
	return nil
}

func runAdminSkillView(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	st := a.status(fmt.Sprintf("Fetching skill %s...", args[0]))
	s, err := a.client.GetSkill(a.ctx, args[0])
	st.Stop()
	if err != nil {
		return err
	}

	printSkillDetails(a, s)
	return nil
}

func statusColor(t *ui.Theme, status string) string {
	switch status {
	case "approved":
		return t.Success(status)
	case "pending":
		return t.Warn(status)
	default:
		return t.Error(status)
	}
}

func printSkillDetails(a *app, s *api.Skill) {
	rule := ui.Separator("=", 60)
	icon := s.Icon
	if icon == "" {
		icon = "📦"
	}
	label := func(name string) string { return a.theme.Accent(name + ":") }

	fmt.Fprintln(a.out, a.theme.Bold(rule))
	fmt.Fprintln(a.out, a.theme.Bold(icon+" "+s.Name))
	fmt.Fprintln(a.out, a.theme.Bold(rule))
	fmt.Fprintf(a.out, "%s %s\n", label("ID"), s.ID)
	fmt.Fprintf(a.out, "%s %s\n", label("Version"), s.Version)
	fmt.Fprintf(a.out, "%s %s\n", label("Status"), statusColor(a.theme, s.Status))
	fmt.Fprintf(a.out, "%s %s (%s)\n", label("Author"), s.OwnerName, s.OwnerID)
	fmt.Fprintf(a.out, "%s %s\n", label("Description"), s.Description)
	fmt.Fprintf(a.out, "%s %s\n", label("Created"), s.CreatedAt.Local())
	fmt.Fprintf(a.out, "%s %s\n", label("Updated"), s.UpdatedAt.Local())

	files := s.FileMap()
	if len(files) > 0 {
		names := make([]string, 0, len(files))
		for name := range files {
			names = append(names, name)
		}
		sort.Strings(names)
		fmt.Fprintf(a.out, "%s %s\n", label("Files"), strings.Join(names, ", "))
	}

	if meta := s.MetadataMap(); len(meta) > 0 {
		if pretty, err := json.MarshalIndent(meta, "", "  "); err == nil {
			fmt.Fprintf(a.out, "%s %s\n", label("Metadata"), pretty)
		}
	}

	thin := ui.Separator("─", 60)
	fmt.Fprintln(a.out)
	fmt.Fprintln(a.out, a.theme.Bold(thin))
	fmt.Fprintln(a.out, a.theme.Accent("README:"))
	fmt.Fprintln(a.out, a.theme.Bold(thin))
	if s.Readme == "" {
		fmt.Fprintln(a.out, "(No readme)")
		return
	}
	fmt.Fprintln(a.out, a.md.Render(s.Readme))
}

func runAdminSkillInstall(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	inst, err := a.installer()
	if err != nil {
		return err
	}

	st := a.status(fmt.Sprintf("Installing %s for testing...", args[0]))
	res, s, err := installRemote(a, inst, args[0], skill.InstallOptions{IncludeStatus: true})
	if err != nil {
		st.Stop()
		return err
	}
	if s.Status != "approved" {
		fmt.Fprintln(a.errOut, a.theme.Warn(fmt.Sprintf("Note: This skill is in %q status.", s.Status)))
	}
	st.Succeed(fmt.Sprintf("Installed to %s", res.Dir))
	if s.Status != "approved" {
		fmt.Fprintln(a.out, a.theme.Warn(fmt.Sprintf("⚠️  This skill is %q - for testing/review purposes only.", s.Status)))
	}
	return nil
}

func runAdminSkillReview(cmd *cobra.Command, args []string) error {
	id := args[0]
	if !adminReviewApprove && !adminReviewReject {
		return clawerrors.MissingArgument("Must specify --approve or --reject.",
			"Usage: claw admin skill review <id> --approve | --reject [--note <reason>]")
	}
	if adminReviewApprove && adminReviewReject {
		return clawerrors.New(clawerrors.CodeInputInvalid, "Cannot approve and reject at the same time.")
	}
	action := "reject"
	if adminReviewApprove {
		action = "approve"
	}

	a, err := newApp(cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	if err := a.requireToken(); err != nil {
		return err
	}

	st := a.status(fmt.Sprintf("Reviewing skill %s...", id))
	if _, err := a.client.ReviewSkill(a.ctx, id, api.ReviewRequest{Action: action, Note: adminReviewNote}); err != nil {
		st.Stop()
		return err
	}
	st.Succeed(fmt.Sprintf("Skill %s %sd successfully!", id, action))
	return nil
}

func runAdminSkillDelete(cmd *cobra.Command, args []string) error {
	id := args[0]

	a, err := newApp(cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	if err := a.requireToken(); err != nil {
		return err
	}

	st := a.status(fmt.Sprintf("Deleting skill %s...", id))
	if err := a.client.DeleteSkill(a.ctx, id); err != nil {
		st.Stop()
		return err
	}
	st.Succeed(fmt.Sprintf("Skill %s deleted successfully!", id))
	return nil
}
