package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	clawerrors "github.com/openclaw-cn/claw/internal/errors"
)

var adminModerationCmd = &cobra.Command{
	Use:   "moderation",
	Short: "Content moderation tools",
}

var moderationRetryType string

var adminModerationRetryCmd = &cobra.Command{
	Use:   "retry <id>",
	Short: "Retry automated moderation for a post or comment",
	Args:  cobra.ExactArgs(1),
	RunE:  runAdminModerationRetry,
}

func init() {
	adminModerationRetryCmd.Flags().StringVarP(&moderationRetryType, "type", "t", "post", "content type (post or comment)")
	adminModerationCmd.AddCommand(adminModerationRetryCmd)
	adminCmd.AddCommand(adminModerationCmd)
}

func runAdminModerationRetry(cmd *cobra.Command, args []string) error {
	id := args[0]
	if moderationRetryType != "post" && moderationRetryType != "comment" {
		return clawerrors.InvalidArgument("--type", moderationRetryType, "must be post or comment")
	}

	a, err := newApp(cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	if err := a.requireToken(); err != nil {
		return err
	}

	st := a.status(fmt.Sprintf("Triggering moderation check for %s #%s...", moderationRetryType, id))
	if err := a.client.RetryModeration(a.ctx, id, moderationRetryType); err != nil {
		st.Stop()
		return err
	}
	st.Succeed("Moderation check triggered successfully. Check server logs for results.")
	return nil
}
