// Package logging provides structured logging infrastructure for claw.
//
// Command output goes to stdout; logs go to stderr (and optionally a file)
// and stay at warn unless --verbose or OPENCLAW_LOG_LEVEL asks for more.
package logging

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/openclaw-cn/claw/internal/config"
)

// NewFromConfig creates a new slog.Logger based on configuration.
// verbose forces the debug level.
func NewFromConfig(cfg *config.Config, verbose bool, stderr io.Writer) (*slog.Logger, io.Closer, error) {
	level := parseLevel(cfg.ResolvedLogLevel())
	if verbose {
		level = slog.LevelDebug
	}
	if stderr == nil {
		stderr = os.Stderr
	}
	handler := newHandler(cfg.Logging.Format, stderr, level)

	// If a file is configured, use a multi-writer
	var closer io.Closer
	if logPath := cfg.LogFile(); logPath != "" {
		if err := os.MkdirAll(filepath.Dir(logPath), 0755); err != nil {
			return nil, nil, err
		}

		file, err := os.OpenFile(logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
		if err != nil {
			return nil, nil, err
		}
		closer = file

		multi := io.MultiWriter(stderr, file)
		handler = newHandler(cfg.Logging.Format, multi, level)
	}

	return slog.New(handler), closer, nil
}

// NewForTest creates a silent logger for tests.
func NewForTest() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{
		Level: slog.LevelError,
	}))
}

// parseLevel converts config log level to slog.Level.
func parseLevel(level config.LogLevel) slog.Level {
	switch level {
	case config.LogLevelDebug:
		return slog.LevelDebug
	case config.LogLevelInfo:
		return slog.LevelInfo
	case config.LogLevelWarn:
		return slog.LevelWarn
	case config.LogLevelError:
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}

// newHandler creates a slog.Handler based on format.
func newHandler(format config.LogFormat, w io.Writer, level slog.Level) slog.Handler {
	opts := &slog.HandlerOptions{
		Level: level,
	}

	switch format {
	case config.LogFormatJSON:
		return slog.NewJSONHandler(w, opts)
	default:
		return slog.NewTextHandler(w, opts)
	}
}

// WithCommand returns a logger tagged with the cobra command path.
func WithCommand(logger *slog.Logger, path string) *slog.Logger {
	return logger.With("command", path)
}

// WithSkill returns a logger tagged with a marketplace skill id.
func WithSkill(logger *slog.Logger, skillID string) *slog.Logger {
	return logger.With("skill_id", skillID)
}
