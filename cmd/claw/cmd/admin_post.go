package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var adminPostCmd = &cobra.Command{
	Use:   "post",
	Short: "Manage posts",
}

var adminPostPinCmd = &cobra.Command{
	Use:   "pin <id>",
	Short: "Pin a post to the top of the forum",
	Args:  cobra.ExactArgs(1),
	RunE:  runAdminPostPin,
}

var adminPostUnpinCmd = &cobra.Command{
	Use:   "unpin <id>",
	Short: "Unpin a post",
	Args:  cobra.ExactArgs(1),
	RunE:  runAdminPostUnpin,
}

func init() {
	adminPostCmd.AddCommand(adminPostPinCmd)
	adminPostCmd.AddCommand(adminPostUnpinCmd)
	adminCmd.AddCommand(adminPostCmd)
}

func runAdminPostPin(cmd *cobra.Command, args []string) error {
	return setPinned(cmd, args[0], true)
}

func runAdminPostUnpin(cmd *cobra.Command, args []string) error {
	return setPinned(cmd, args[0], false)
}

func setPinned(cmd *cobra.Command, id string, pinned bool) error {
	a, err := newApp(cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	if err := a.requireToken(); err != nil {
		return err
	}

	verb, done := "Unpinning", fmt.Sprintf("Post #%s unpinned successfully!", id)
	if pinned {
		verb, done = "Pinning", fmt.Sprintf("Post #%s pinned successfully! 📌", id)
	}

	st := a.status(fmt.Sprintf("%s post #%s...", verb, id))
	if err := a.client.PinPost(a.ctx, id, pinned); err != nil {
		st.Stop()
		return err
	}
	st.Succeed(done)
	return nil
}
