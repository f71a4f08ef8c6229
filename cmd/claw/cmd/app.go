package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"unicode/utf8"

	"github.com/spf13/cobra"

	"github.com/openclaw-cn/claw/internal/api"
	"github.com/openclaw-cn/claw/internal/config"
	"github.com/openclaw-cn/claw/internal/credentials"
	clawerrors "github.com/openclaw-cn/claw/internal/errors"
	"github.com/openclaw-cn/claw/internal/logging"
	"github.com/openclaw-cn/claw/internal/textin"
	"github.com/openclaw-cn/claw/internal/ui"
)

// app is the per-invocation context every command builds from the config.
type app struct {
	ctx     context.Context
	cfg     *config.Config
	cfgPath string
	logger  *slog.Logger
	closer  io.Closer
	creds   *credentials.Store
	client  *api.Client

	theme  *ui.Theme
	md     *ui.Markdown
	prompt *ui.Prompter

	in     io.Reader
	out    io.Writer
	errOut io.Writer

	stdinTTY  bool
	stderrTTY bool
}

// newApp loads configuration, logging and the API client for cmd.
func newApp(cmd *cobra.Command) (*app, error) {
	workDir, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("getting working directory: %w", err)
	}

	cfg, err := config.LoadDefault(workDir)
	if err != nil {
		return nil, err
	}
	if apiURL != "" {
		cfg.Env.APIURL = apiURL
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	cfgPath, err := config.Path()
	if err != nil {
		return nil, err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	a := &app{
		ctx:     ctx,
		cfg:     cfg,
		cfgPath: cfgPath,
		in:      cmd.InOrStdin(),
		out:     cmd.OutOrStdout(),
		errOut:  cmd.ErrOrStderr(),
	}
	a.stdinTTY = isTerminal(a.in)
	a.stderrTTY = isTerminal(a.errOut)

	logger, closer, err := logging.NewFromConfig(cfg, verbose, a.errOut)
	if err != nil {
		return nil, err
	}
	a.logger = logging.WithCommand(logger, cmd.CommandPath())
	a.closer = closer

	a.creds = credentials.NewStore(cfg, cfgPath, a.logger)
	token, _ := a.creds.Token()
	a.client = api.New(cfg.ResolvedAPIURL(), token,
		api.WithTimeout(cfg.ResolvedTimeout()),
		api.WithLogger(a.logger),
		api.WithUserAgent("claw/"+Version),
	)

	stdoutTTY := isTerminal(a.out)
	a.theme = ui.NewTheme(cfg.Color() && stdoutTTY)
	a.md = ui.NewMarkdown(cfg.UI.Markdown && stdoutTTY)
	a.prompt = &ui.Prompter{In: a.in, Out: a.errOut, Interactive: a.stdinTTY}

	a.logger.Debug("config loaded", "api_url", cfg.ResolvedAPIURL(), "config", cfgPath)
	return a, nil
}

// Close releases the log file, if any.
func (a *app) Close() {
	if a.closer != nil {
		a.closer.Close()
	}
}

// status starts a spinner that only animates on an interactive stderr.
func (a *app) status(msg string) *ui.Status {
	return ui.StartStatus(a.out, a.errOut, a.stderrTTY, a.theme, msg)
}

// requireToken fails early for commands that act on behalf of a user.
func (a *app) requireToken() error {
	if !a.client.HasToken() {
		return clawerrors.NotLoggedIn()
	}
	return nil
}

// resolveContent returns value, or the decoded stdin when value is "-".
func (a *app) resolveContent(value string) (string, error) {
	if value != "-" {
		return value, nil
	}
	content, err := textin.ReadPiped(a.in, a.stdinTTY)
	if err != nil {
		return "", err
	}
	fmt.Fprintln(a.errOut, a.theme.Muted(fmt.Sprintf("[stdin] Read %d chars", utf8.RuneCountInString(content))))
	return content, nil
}

func isTerminal(v any) bool {
	f, ok := v.(*os.File)
	return ok && textin.IsTerminal(f)
}

// runeLen counts characters the way the server's limits do.
func runeLen(s string) int {
	return utf8.RuneCountInString(s)
}

// errorText renders err for inline status lines.
func errorText(err error) string {
	var apiErr *api.APIError
	if clawerrors.Code(err) == "" && errors.As(err, &apiErr) {
		return apiErr.Error()
	}
	return clawerrors.Message(err)
}
