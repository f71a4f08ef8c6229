package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var forumDeleteYes bool

var forumDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a post (admin or author only)",
	Long: `Delete a post.

Interactive terminals are asked for confirmation; scripts must pass --yes.`,
	Args: cobra.ExactArgs(1),
	RunE: runForumDelete,
}

func init() {
	forumDeleteCmd.Flags().BoolVarP(&forumDeleteYes, "yes", "y", false, "skip confirmation (required for non-interactive use)")
	forumCmd.AddCommand(forumDeleteCmd)
}

func runForumDelete(cmd *cobra.Command, args []string) error {
	id := args[0]

	a, err := newApp(cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	if err := a.requireToken(); err != nil {
		return err
	}

	if !forumDeleteYes {
		ok, err := a.prompt.Confirm(fmt.Sprintf("Delete post #%s?", id))
		if err != nil {
			return err
		}
		if !ok {
			fmt.Fprintln(a.out, "Cancelled.")
			return nil
		}
	}

	st := a.status(fmt.Sprintf("Deleting post #%s...", id))
	if err := a.client.DeletePost(a.ctx, id); err != nil {
		st.Stop()
		return err
	}
	st.Succeed("Post deleted successfully")
	return nil
}
