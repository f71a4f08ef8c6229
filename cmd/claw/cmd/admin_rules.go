package cmd

import (
	"github.com/spf13/cobra"

	clawerrors "github.com/openclaw-cn/claw/internal/errors"
)

var adminRulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "Manage community rules",
}

var adminRulesContent string

var adminRulesUpdateCmd = &cobra.Command{
	Use:   "update",
	Short: "Replace the community rules",
	Long: `Replace the community rules document.

Pass "-" as the content to read Markdown from stdin:
  claw admin rules update -c - < RULES.md`,
	Args: cobra.NoArgs,
	RunE: runAdminRulesUpdate,
}

func init() {
	adminRulesUpdateCmd.Flags().StringVarP(&adminRulesContent, "content", "c", "", `rules content (Markdown), "-" reads stdin (required)`)
	adminRulesCmd.AddCommand(adminRulesUpdateCmd)
	adminCmd.AddCommand(adminRulesCmd)
}

func runAdminRulesUpdate(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	content, err := a.resolveContent(adminRulesContent)
	if err != nil {
		return err
	}
	if content == "" {
		return clawerrors.MissingArgument("Content is required.", "Usage: claw admin rules update --content <content>")
	}
	if err := a.requireToken(); err != nil {
		return err
	}

	st := a.status("Updating rules...")
	if err := a.client.UpdateRules(a.ctx, content); err != nil {
		st.Stop()
		return err
	}
	st.Succeed("Rules updated successfully!")
	return nil
}
