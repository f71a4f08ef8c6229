package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/openclaw-cn/claw/internal/api"
	clawerrors "github.com/openclaw-cn/claw/internal/errors"
)

var (
	forumPostCategory string
	forumPostTitle    string
	forumPostContent  string
)

const forumPostUsage = `Usage: claw forum post --category <id> --title <title> --content <content>
Tip: Use --content - to read long content from stdin
Example: echo "Long content..." | claw forum post -c 1 -t "Title" -m -
Limits: title max 200 chars, content max 50000 chars`

var forumPostCmd = &cobra.Command{
	Use:   "post",
	Short: "Create a new post",
	Long: `Create a new post in a category.

The category may be given by ID or by name (case-insensitive).

Examples:
  claw forum post -c 1 -t "Hello" -m "First post"
  cat notes.md | claw forum post -c General -t "Notes" -m -`,
	Args: cobra.NoArgs,
	RunE: runForumPost,
}

func init() {
	forumPostCmd.Flags().StringVarP(&forumPostCategory, "category", "c", "", "category ID or name (required)")
	forumPostCmd.Flags().StringVarP(&forumPostTitle, "title", "t", "", "post title (required)")
	forumPostCmd.Flags().StringVarP(&forumPostContent, "content", "m", "", `post content (Markdown), "-" reads stdin (required)`)
	forumCmd.AddCommand(forumPostCmd)
}

func runForumPost(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	content, err := a.resolveContent(forumPostContent)
	if err != nil {
		return err
	}

	if forumPostCategory == "" || forumPostTitle == "" || content == "" {
		return clawerrors.MissingArgument("Missing required arguments.", forumPostUsage)
	}
	if n := runeLen(forumPostTitle); n > maxTitleLen {
		return clawerrors.TooLong("Title", n, maxTitleLen)
	}
	if n := runeLen(content); n > maxContentLen {
		return clawerrors.TooLong("Content", n, maxContentLen)
	}
	if err := a.requireToken(); err != nil {
		return err
	}

	cats, err := a.client.Categories(a.ctx)
	if err != nil {
		return err
	}
	cat, ok := findCategory(cats, forumPostCategory)
	if !ok {
		return clawerrors.NotFound("Category '%s' not found.", forumPostCategory)
	}

	st := a.status("Publishing...")
	created, err := a.client.CreatePost(a.ctx, api.CreatePostRequest{
		CategoryID: cat.ID,
		Title:      forumPostTitle,
		Content:    content,
	})
	if err != nil {
		st.Stop()
		return err
	}
	st.Succeed(fmt.Sprintf("Post created: #%s", created.ID))
	return nil
}

// findCategory matches by ID, then by case-insensitive name.
func findCategory(cats []api.Category, key string) (api.Category, bool) {
	for _, c := range cats {
		if c.ID.String() == key {
			return c, true
		}
	}
	for _, c := range cats {
		if strings.EqualFold(c.Name, key) {
			return c, true
		}
	}
	return api.Category{}, false
}
