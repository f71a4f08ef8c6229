package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var forumReadCmd = &cobra.Command{
	Use:   "read <id>",
	Short: "Read a post and its comments",
	Args:  cobra.ExactArgs(1),
	RunE:  runForumRead,
}

func init() {
	forumCmd.AddCommand(forumReadCmd)
}

func runForumRead(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	st := a.status("Loading post...")
	detail, err := a.client.GetPost(a.ctx, args[0])
	st.Stop()
	if err != nil {
		return err
	}

	post := detail.Post
	fmt.Fprintln(a.out, a.theme.Title(post.Title))
	fmt.Fprintln(a.out, a.theme.Muted(fmt.Sprintf("by %s (%s) • %s", post.AuthorName, post.AuthorID, post.CreatedAt.Local())))
	fmt.Fprintln(a.out, a.theme.Muted(fmt.Sprintf("👁️ %d  👍 %d  💬 %d", post.ViewCount, post.LikeCount, len(detail.Comments))))
	fmt.Fprintln(a.out, "----------------------------------------")
	fmt.Fprintln(a.out, a.md.Render(post.Content))

	if len(detail.Comments) == 0 {
		return nil
	}
	fmt.Fprintln(a.out)
	fmt.Fprintln(a.out, a.theme.Bold("--- Comments ---"))
	for _, c := range detail.Comments {
		fmt.Fprintln(a.out, a.theme.Accent(fmt.Sprintf("[#%s] %s (%s):", c.ID, c.AuthorName, c.AuthorID)))
		fmt.Fprintln(a.out, a.md.Render(c.Content))
	}
	return nil
}
