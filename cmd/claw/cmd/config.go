package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/openclaw-cn/claw/internal/config"
	"github.com/openclaw-cn/claw/internal/credentials"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show or change claw settings",
	Long: `Show or change settings stored in config.toml.

Environment variables (OPENCLAW_API_URL, OPENCLAW_TIMEOUT,
OPENCLAW_INSTALL_DIR, OPENCLAW_HOME, OPENCLAW_TOKEN, OPENCLAW_LOG_LEVEL,
NO_COLOR) take precedence over the file. .env and .env.local in the
working directory are loaded first.`,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show effective settings",
	Args:  cobra.NoArgs,
	RunE:  runConfigShow,
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a value in config.toml",
	Long: `Set a value in config.toml.

Keys: api-url, timeout, install-dir, log-level, log-format, no-color, markdown

Examples:
  claw config set api-url https://backend.clawd.org.cn/api
  claw config set timeout 1m`,
	Args: cobra.ExactArgs(2),
	RunE: runConfigSet,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file location",
	Args:  cobra.NoArgs,
	RunE:  runConfigPath,
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configPathCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	installRoot, err := a.cfg.InstallRoot()
	if err != nil {
		return err
	}
	token, src := a.creds.Token()
	tokenLine := credentials.Mask(token)
	if src != credentials.SourceNone {
		tokenLine += " (" + string(src) + ")"
	}

	w := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "config\t%s\n", a.cfgPath)
	fmt.Fprintf(w, "api-url\t%s\n", a.cfg.ResolvedAPIURL())
	fmt.Fprintf(w, "timeout\t%s\n", a.cfg.ResolvedTimeout())
	fmt.Fprintf(w, "install-dir\t%s\n", installRoot)
	fmt.Fprintf(w, "log-level\t%s\n", a.cfg.ResolvedLogLevel())
	fmt.Fprintf(w, "log-format\t%s\n", a.cfg.Logging.Format)
	fmt.Fprintf(w, "no-color\t%t\n", !a.cfg.Color())
	fmt.Fprintf(w, "markdown\t%t\n", a.cfg.UI.Markdown)
	fmt.Fprintf(w, "token\t%s\n", tokenLine)
	return w.Flush()
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	path, err := config.Path()
	if err != nil {
		return err
	}

	// Only file values are edited; environment overrides are not persisted.
	cfg, err := config.Load(path)
	if err != nil {
		return err
	}
	if err := cfg.Set(args[0], args[1]); err != nil {
		return err
	}
	if err := cfg.Save(path); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Set %s = %s\n", args[0], args[1])
	return nil
}

func runConfigPath(cmd *cobra.Command, args []string) error {
	path, err := config.Path()
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), path)
	return nil
}
