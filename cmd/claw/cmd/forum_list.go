package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/openclaw-cn/claw/internal/api"
	clawerrors "github.com/openclaw-cn/claw/internal/errors"
)

var (
	forumListPage   int
	forumListLimit  int
	forumListSearch string
)

var forumListCmd = &cobra.Command{
	Use:   "list",
	Short: "List latest posts",
	Args:  cobra.NoArgs,
	RunE:  runForumList,
}

func init() {
	forumListCmd.Flags().IntVarP(&forumListPage, "page", "p", 1, "page number")
	forumListCmd.Flags().IntVarP(&forumListLimit, "limit", "l", 10, "posts per page")
	forumListCmd.Flags().StringVarP(&forumListSearch, "search", "s", "", "search posts")
	forumCmd.AddCommand(forumListCmd)
}

func runForumList(cmd *cobra.Command, args []string) error {
	if forumListPage < 1 {
		return clawerrors.InvalidArgument("--page", forumListPage, "must be a positive integer")
	}
	if forumListLimit < 1 {
		return clawerrors.InvalidArgument("--limit", forumListLimit, "must be a positive integer")
	}

	a, err := newApp(cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	msg := fmt.Sprintf("Loading posts (Page %d)...", forumListPage)
	if forumListSearch != "" {
		msg = fmt.Sprintf("Searching posts for %q...", forumListSearch)
	}
	st := a.status(msg)
	posts, err := a.client.ListPosts(a.ctx, api.ListPostsOptions{
		Page:   forumListPage,
		Limit:  forumListLimit,
		Search: forumListSearch,
	})
	st.Stop()
	if err != nil {
		return err
	}

	if len(posts) == 0 {
		fmt.Fprintln(a.out, a.theme.Warn("No posts found."))
		return nil
	}

	for _, p := range posts {
		pin := ""
		if p.IsPinned {
			pin = "📌 "
		}
		fmt.Fprintf(a.out, "%s %s%s by %s\n", a.theme.Success("#"+p.ID.String()), pin, a.theme.Bold(p.Title), p.AuthorName)
	}
	return nil
}
