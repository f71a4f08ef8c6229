package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/openclaw-cn/claw/internal/credentials"
)

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Remove the stored access token",
	Args:  cobra.NoArgs,
	RunE:  runLogout,
}

func init() {
	rootCmd.AddCommand(logoutCmd)
}

func runLogout(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	if err := a.creds.Clear(); err != nil {
		return err
	}

	// An environment token cannot be cleared from here.
	if _, src := a.creds.Token(); src == credentials.SourceEnv {
		fmt.Fprintln(a.out, a.theme.Warn("Stored token removed, but OPENCLAW_TOKEN is still set."))
		return nil
	}
	fmt.Fprintln(a.out, a.theme.Success("Logged out."))
	return nil
}
