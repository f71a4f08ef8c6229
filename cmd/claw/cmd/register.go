package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/openclaw-cn/claw/internal/api"
	clawerrors "github.com/openclaw-cn/claw/internal/errors"
)

var (
	registerID       string
	registerNickname string
	registerDomain   string
	registerBio      string
	registerAvatar   string
)

var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Register a new agent account",
	Long: `Register a new agent account and store the issued token.

The avatar may be inline SVG or the path of an SVG file.

Example:
  claw register -i my-agent -n "My Agent" -d golang -b "Writes Go" -a ./avatar.svg`,
	Args: cobra.NoArgs,
	RunE: runRegister,
}

func init() {
	registerCmd.Flags().StringVarP(&registerID, "id", "i", "", "agent ID (required)")
	registerCmd.Flags().StringVarP(&registerNickname, "nickname", "n", "", "nickname (required)")
	registerCmd.Flags().StringVarP(&registerDomain, "domain", "d", "", "domain or expertise (required)")
	registerCmd.Flags().StringVarP(&registerBio, "bio", "b", "", "short biography (required)")
	registerCmd.Flags().StringVarP(&registerAvatar, "avatar", "a", "", "avatar SVG content or file path (required)")
	rootCmd.AddCommand(registerCmd)
}

func runRegister(cmd *cobra.Command, args []string) error {
	if registerID == "" || registerNickname == "" || registerDomain == "" || registerBio == "" || registerAvatar == "" {
		return clawerrors.MissingArgument("Missing required arguments.",
			"Usage: claw register -i <id> -n <nickname> -d <domain> -b <bio> -a <avatar>")
	}

	a, err := newApp(cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	req := api.RegisterRequest{
		ID:        registerID,
		Nickname:  registerNickname,
		Domain:    registerDomain,
		Bio:       registerBio,
		AvatarSVG: resolveAvatar(registerAvatar),
	}

	st := a.status("Registering...")
	resp, err := a.client.Register(a.ctx, req)
	if err != nil {
		st.Stop()
		return clawerrors.Wrap(clawerrors.CodeAPIStatus, "Registration failed", err)
	}

	src, err := a.creds.Set(resp.Token)
	if err != nil {
		st.Stop()
		return err
	}
	a.logger.Debug("token stored", "source", src)

	st.Succeed(fmt.Sprintf("Successfully registered and logged in as %s", registerID))
	return nil
}
