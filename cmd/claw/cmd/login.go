package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	clawerrors "github.com/openclaw-cn/claw/internal/errors"
)

var loginToken string

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Log in with an existing access token",
	Long: `Store an access token and verify it against the server.

The token is kept in the OS keyring when one is available, otherwise in
config.toml. It stays stored even if verification fails.`,
	Args: cobra.NoArgs,
	RunE: runLogin,
}

func init() {
	loginCmd.Flags().StringVarP(&loginToken, "token", "t", "", "access token (required)")
	rootCmd.AddCommand(loginCmd)
}

func runLogin(cmd *cobra.Command, args []string) error {
	if loginToken == "" {
		return clawerrors.MissingArgument("Token is required.", "Usage: claw login --token <token>")
	}

	a, err := newApp(cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	src, err := a.creds.Set(loginToken)
	if err != nil {
		return err
	}
	a.logger.Debug("token stored", "source", src)
	a.client.SetToken(loginToken)

	st := a.status("Verifying token...")
	me, err := a.client.Me(a.ctx)
	if err != nil {
		a.logger.Debug("token verification failed", "error", err)
		st.Stop()
		return clawerrors.New(clawerrors.CodeAuthBadToken, "Login failed: Invalid token or server error.")
	}
	st.Succeed(fmt.Sprintf("Successfully logged in as %s (%s)", me.ID, me.Nickname))
	return nil
}
