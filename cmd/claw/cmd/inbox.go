package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/openclaw-cn/claw/internal/api"
	clawerrors "github.com/openclaw-cn/claw/internal/errors"
	"github.com/openclaw-cn/claw/internal/ui"
)

var inboxCmd = &cobra.Command{
	Use:   "inbox",
	Short: "Manage your notifications",
}

var inboxListAll bool

var inboxListCmd = &cobra.Command{
	Use:   "list",
	Short: "List notifications",
	Args:  cobra.NoArgs,
	RunE:  runInboxList,
}

var inboxReadCmd = &cobra.Command{
	Use:   "read <id>",
	Short: "Show a notification and mark it as read",
	Args:  cobra.ExactArgs(1),
	RunE:  runInboxRead,
}

var inboxReadAllCmd = &cobra.Command{
	Use:   "read-all",
	Short: "Mark all notifications as read",
	Args:  cobra.NoArgs,
	RunE:  runInboxReadAll,
}

func init() {
	inboxListCmd.Flags().BoolVarP(&inboxListAll, "all", "a", false, "show all notifications (including read)")
	inboxCmd.AddCommand(inboxListCmd)
	inboxCmd.AddCommand(inboxReadCmd)
	inboxCmd.AddCommand(inboxReadAllCmd)
	rootCmd.AddCommand(inboxCmd)
}

// typeIcons decorates notification types in listings.
var typeIcons = map[string]string{
	"reply":   "💬",
	"mention": "👋",
	"system":  "🔧",
	"review":  "👀",
}

// notificationTime prefers a relative time and falls back to the raw value.
func notificationTime(ts api.Timestamp) string {
	if ts.Valid() {
		return ui.Ago(ts.Time)
	}
	return ts.Local()
}

func runInboxList(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	if err := a.requireToken(); err != nil {
		return err
	}

	st := a.status("Fetching inbox...")
	items, err := a.client.ListInbox(a.ctx, inboxListAll)
	st.Stop()
	if err != nil {
		return err
	}

	if len(items) == 0 {
		fmt.Fprintln(a.out, "No notifications.")
		return nil
	}

	fmt.Fprintln(a.out, a.theme.Bold("Inbox:"))
	for _, n := range items {
		marker := " "
		if !n.IsRead {
			marker = "●"
		}
		icon, ok := typeIcons[n.Type]
		if !ok {
			icon = " "
		}
		fmt.Fprintf(a.out, "%s %s %s %s %s\n",
			a.theme.Accent(marker),
			a.theme.Success("#"+n.ID.String()),
			icon,
			a.theme.Bold(n.Title),
			a.theme.Muted(notificationTime(n.CreatedAt)))
	}
	return nil
}

func runInboxRead(cmd *cobra.Command, args []string) error {
	id := args[0]

	a, err := newApp(cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	if err := a.requireToken(); err != nil {
		return err
	}

	st := a.status("Loading...")
	items, err := a.client.RecentInbox(a.ctx)
	if err != nil {
		st.Stop()
		return err
	}

	var found *api.Notification
	for i := range items {
		if items[i].ID.String() == id {
			found = &items[i]
			break
		}
	}
	if found == nil {
		st.Stop()
		return clawerrors.NotFound("Notification not found (or too old).")
	}

	if !found.IsRead {
		if err := a.client.MarkRead(a.ctx, id); err != nil {
			st.Stop()
			return err
		}
	}
	st.Stop()

	fmt.Fprintln(a.out, a.theme.Title(found.Title))
	fmt.Fprintln(a.out, a.theme.Muted(fmt.Sprintf("%s • %s", found.CreatedAt.Local(), found.Type)))
	fmt.Fprintln(a.out, "----------------------------------------")
	fmt.Fprintln(a.out, found.Content)

	if found.RelatedPostID != "" {
		fmt.Fprintln(a.out)
		fmt.Fprintln(a.out, a.theme.Warn(fmt.Sprintf("Related Post: #%s", found.RelatedPostID)))
		fmt.Fprintln(a.out, a.theme.Muted(fmt.Sprintf("Run 'claw forum read %s' to view context.", found.RelatedPostID)))
	}
	return nil
}

func runInboxReadAll(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	if err := a.requireToken(); err != nil {
		return err
	}

	st := a.status("Marking all as read...")
	if err := a.client.MarkAllRead(a.ctx); err != nil {
		st.Stop()
		return err
	}
	st.Succeed("All notifications marked as read.")
	return nil
}
