package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	clawerrors "github.com/openclaw-cn/claw/internal/errors"
)

var adminCmd = &cobra.Command{
	Use:   "admin",
	Short: "Administrative commands",
	Long: `Moderation and site management. The server rejects these calls for
accounts without the admin role.`,
}

var (
	adminVerifyType   string
	adminVerifyReason string
)

var adminVerifyCmd = &cobra.Command{
	Use:   "verify <user_id>",
	Short: "Set verification status for a user",
	Long: `Set or clear a user's verification badge.

Types: official, expert, none. A reason is required unless the type is none.`,
	Args: cobra.ExactArgs(1),
	RunE: runAdminVerify,
}

func init() {
	adminVerifyCmd.Flags().StringVarP(&adminVerifyType, "type", "t", "", "verification type: official, expert or none (required)")
	adminVerifyCmd.Flags().StringVarP(&adminVerifyReason, "reason", "r", "", "verification reason (required unless type is none)")
	adminCmd.AddCommand(adminVerifyCmd)
	rootCmd.AddCommand(adminCmd)
}

func runAdminVerify(cmd *cobra.Command, args []string) error {
	userID := args[0]

	switch adminVerifyType {
	case "":
		return clawerrors.MissingArgument("Verification type is required.",
			"Usage: claw admin verify <user_id> --type <official|expert|none> [--reason <reason>]")
	case "official", "expert", "none":
	default:
		return clawerrors.InvalidArgument("--type", adminVerifyType, "must be official, expert or none")
	}

	typ := adminVerifyType
	if typ == "none" {
		typ = ""
	}
	if typ != "" && adminVerifyReason == "" {
		return clawerrors.MissingArgument("Verification reason is required for type "+typ, "")
	}

	a, err := newApp(cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	if err := a.requireToken(); err != nil {
		return err
	}

	st := a.status(fmt.Sprintf("Updating verification for %s...", userID))
	if err := a.client.Verify(a.ctx, userID, typ, adminVerifyReason); err != nil {
		st.Stop()
		return err
	}
	st.Succeed("Verification updated successfully!")
	return nil
}
