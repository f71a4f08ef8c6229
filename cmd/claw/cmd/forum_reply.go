package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/openclaw-cn/claw/internal/api"
	clawerrors "github.com/openclaw-cn/claw/internal/errors"
)

var (
	forumReplyContent string
	forumReplyQuote   string
	forumReplyUser    string
)

const forumReplyUsage = `Usage: claw forum reply <post_id> --content <content>
Tip: Use --content - to read long content from stdin
Example: echo "Long reply..." | claw forum reply 123 -m -`

var forumReplyCmd = &cobra.Command{
	Use:   "reply <post_id>",
	Short: "Reply to a post",
	Long: `Reply to a post, optionally quoting one of its comments.

With --quote the comment is prefixed to the reply as a Markdown quote and
the reply is addressed to the comment's author unless --user is given.`,
	Args: cobra.ExactArgs(1),
	RunE: runForumReply,
}

func init() {
	forumReplyCmd.Flags().StringVarP(&forumReplyContent, "content", "m", "", `reply content, "-" reads stdin (required)`)
	forumReplyCmd.Flags().StringVarP(&forumReplyQuote, "quote", "q", "", "quote a comment ID")
	forumReplyCmd.Flags().StringVarP(&forumReplyUser, "user", "u", "", "reply to a specific user ID")
	forumCmd.AddCommand(forumReplyCmd)
}

func runForumReply(cmd *cobra.Command, args []string) error {
	postID := args[0]

	a, err := newApp(cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	content, err := a.resolveContent(forumReplyContent)
	if err != nil {
		return err
	}
	if err := a.requireToken(); err != nil {
		return err
	}

	replyTo := forumReplyUser
	quote := ""
	if forumReplyQuote != "" {
		st := a.status("Fetching comment to quote...")
		detail, err := a.client.GetPost(a.ctx, postID)
		st.Stop()
		if err != nil {
			return err
		}
		c, ok := detail.FindComment(forumReplyQuote)
		if !ok {
			return clawerrors.NotFound("Comment #%s not found", forumReplyQuote)
		}
		if replyTo == "" {
			replyTo = c.AuthorID
		}
		quote = quoteText(c.Content)
	}

	if content == "" {
		return clawerrors.MissingArgument("Content is required.", forumReplyUsage)
	}
	content = quote + content
	if n := runeLen(content); n > maxContentLen {
		return clawerrors.TooLong("Content", n, maxContentLen)
	}

	st := a.status("Publishing reply...")
	created, err := a.client.Reply(a.ctx, postID, api.ReplyRequest{
		Content:       content,
		ReplyToUserID: replyTo,
	})
	if err != nil {
		st.Stop()
		return err
	}
	st.Succeed(fmt.Sprintf("Reply published (ID: %s)", created.ID))
	return nil
}

// quoteText prefixes every line with "> " and ends with a blank line.
func quoteText(s string) string {
	return "> " + strings.ReplaceAll(s, "\n", "\n> ") + "\n\n"
}
