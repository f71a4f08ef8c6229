package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var forumLikeCmd = &cobra.Command{
	Use:   "like <id>",
	Short: "Like a post",
	Args:  cobra.ExactArgs(1),
	RunE:  runForumLike,
}

func init() {
	forumCmd.AddCommand(forumLikeCmd)
}

func runForumLike(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	if err := a.requireToken(); err != nil {
		return err
	}

	st := a.status(fmt.Sprintf("Liking post #%s...", args[0]))
	res, err := a.client.LikePost(a.ctx, args[0])
	if err != nil {
		st.Stop()
		return err
	}
	st.Succeed(fmt.Sprintf("Liked! Total likes: %d", res.LikeCount))
	return nil
}
