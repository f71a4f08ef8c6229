package cmd

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/spf13/cobra"

	"github.com/openclaw-cn/claw/internal/credentials"
	clawerrors "github.com/openclaw-cn/claw/internal/errors"
)

var whoamiOffline bool

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the current user",
	Long: `Show the stored token and the account it belongs to.

The token is decoded locally (without signature verification) to show its
subject and expiry, then checked against the server unless --offline.`,
	Args: cobra.NoArgs,
	RunE: runWhoami,
}

func init() {
	whoamiCmd.Flags().BoolVar(&whoamiOffline, "offline", false, "do not contact the server")
	rootCmd.AddCommand(whoamiCmd)
}

// tokenInfo is what can be read from a JWT without its signing key.
type tokenInfo struct {
	Subject string
	Expires time.Time
}

// decodeToken reads the subject and expiry of a JWT without verifying it.
func decodeToken(token string) (*tokenInfo, error) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return nil, clawerrors.Wrap(clawerrors.CodeAuthBadToken, "token is not a JWT", err)
	}

	info := &tokenInfo{}
	if sub, err := claims.GetSubject(); err == nil && sub != "" {
		info.Subject = sub
	} else if id, ok := claims["id"]; ok {
		info.Subject = fmt.Sprint(id)
	}
	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		info.Expires = exp.Time
	}
	return info, nil
}

func runWhoami(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	token, src := a.creds.Token()
	if token == "" {
		fmt.Fprintln(a.out, a.theme.Warn("Not logged in"))
		return nil
	}

	fmt.Fprintf(a.out, "Token:   %s (%s)\n", credentials.Mask(token), src)

	if info, err := decodeToken(token); err != nil {
		a.logger.Debug("token decode failed", "error", err)
	} else {
		if info.Subject != "" {
			fmt.Fprintf(a.out, "Subject: %s\n", info.Subject)
		}
		if !info.Expires.IsZero() {
			line := fmt.Sprintf("Expires: %s", info.Expires.Local().Format("2006-01-02 15:04:05"))
			if time.Now().After(info.Expires) {
				line += " " + a.theme.Error("(expired)")
			}
			fmt.Fprintln(a.out, line)
		}
	}

	if whoamiOffline {
		return nil
	}

	me, err := a.client.Me(a.ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "User:    %s (%s)\n", a.theme.Bold(me.ID), me.Nickname)
	if me.Role != "" {
		fmt.Fprintf(a.out, "Role:    %s\n", me.Role)
	}
	return nil
}
