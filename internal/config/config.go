package config

import (
	"bytes"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	clawerrors "github.com/openclaw-cn/claw/internal/errors"
)

const (
	// DefaultAPIURL is used when neither the environment nor the config file name a server.
	DefaultAPIURL = "https://backend.clawd.org.cn/api"

	// DefaultTimeout bounds every API request.
	DefaultTimeout = 30 * time.Second

	// FileName is the config file inside the config directory.
	FileName = "config.toml"

	// appDirName is the directory under os.UserConfigDir().
	appDirName = "openclaw-cli"
)

// LogLevel specifies the logging verbosity.
type LogLevel string

const (
	LogLevelDebug LogLevel = "debug"
	LogLevelInfo  LogLevel = "info"
	LogLevelWarn  LogLevel = "warn"
	LogLevelError LogLevel = "error"
)

// LogFormat specifies the log output format.
type LogFormat string

const (
	LogFormatJSON LogFormat = "json"
	LogFormatText LogFormat = "text"
)

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  LogLevel  `toml:"level"`
	Format LogFormat `toml:"format"`
	File   string    `toml:"file,omitempty"`
}

// UIConfig holds terminal output settings.
type UIConfig struct {
	// NoColor disables ANSI styling regardless of the terminal.
	NoColor bool `toml:"no_color"`

	// Markdown renders post, comment and doc bodies through glamour.
	// When false, bodies are printed verbatim.
	Markdown bool `toml:"markdown"`
}

// Env holds the environment overrides. They are resolved at read time and
// never written back to the config file.
type Env struct {
	APIURL     string        `env:"OPENCLAW_API_URL"`
	Timeout    time.Duration `env:"OPENCLAW_TIMEOUT"`
	InstallDir string        `env:"OPENCLAW_INSTALL_DIR"`
	Home       string        `env:"OPENCLAW_HOME"`
	Token      string        `env:"OPENCLAW_TOKEN"`
	LogLevel   string        `env:"OPENCLAW_LOG_LEVEL"`
	NoColor    string        `env:"NO_COLOR"`

	// NoKeyring keeps the token in the config file even when an OS keyring exists.
	NoKeyring bool `env:"OPENCLAW_NO_KEYRING"`
}

// Config is the persisted claw configuration.
type Config struct {
	APIURL     string        `toml:"api_url,omitempty"`
	Timeout    time.Duration `toml:"timeout,omitempty"`
	InstallDir string        `toml:"install_dir,omitempty"`

	// Token is only used when the OS keyring is unavailable.
	Token string `toml:"token,omitempty"`

	Logging LoggingConfig `toml:"logging"`
	UI      UIConfig      `toml:"ui"`

	Env Env `toml:"-"`

	// dir is the directory the config was loaded from.
	dir string
}

// Default returns a Config with sensible defaults.
func Default() *Config {
	return &Config{
		Timeout: DefaultTimeout,
		Logging: LoggingConfig{
			Level:  LogLevelWarn,
			Format: LogFormatText,
		},
		UI: UIConfig{
			Markdown: true,
		},
	}
}

// Dir returns the configuration directory.
// OPENCLAW_CONFIG_DIR wins, otherwise <user config dir>/openclaw-cli.
func Dir() (string, error) {
	if dir := os.Getenv("OPENCLAW_CONFIG_DIR"); dir != "" {
		return dir, nil
	}
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("getting user config dir: %w", err)
	}
	return filepath.Join(base, appDirName), nil
}

// Load loads configuration from file, merging with defaults.
// Environment overrides are not applied; see LoadDefault.
func Load(path string) (*Config, error) {
	cfg := Default()
	cfg.dir = filepath.Dir(path)

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil // Use defaults if no config file
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	if _, err := toml.Decode(string(data), cfg); err != nil {
		return nil, clawerrors.Wrap(clawerrors.CodeConfigParse, "parsing config", err).
			WithDetail("path", path)
	}

	return cfg, nil
}

// Path returns the config file path inside Dir().
func Path() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, FileName), nil
}

// LoadDefault loads .env files from workDir, the config file from Dir(),
// and the environment overrides, in that order.
func LoadDefault(workDir string) (*Config, error) {
	LoadEnvFiles(workDir)

	path, err := Path()
	if err != nil {
		return nil, err
	}

	cfg, err := Load(path)
	if err != nil {
		return nil, err
	}

	if err := cfg.ApplyEnv(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadEnvFiles loads .env and .env.local from dir.
// Variables already present in the environment are left untouched.
func LoadEnvFiles(dir string) {
	for _, name := range []string{".env", ".env.local"} {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err != nil {
			continue
		}
		_ = godotenv.Load(path)
	}
}

// ApplyEnv reads the OPENCLAW_* overrides from the process environment.
func (c *Config) ApplyEnv() error {
	var e Env
	if err := env.Parse(&e); err != nil {
		return clawerrors.Wrap(clawerrors.CodeConfigInvalidValue, "parsing environment", err)
	}
	c.Env = e
	return nil
}

// Save writes the config file with owner-only permissions, since it may
// hold the fallback token.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(c); err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}

	if err := os.WriteFile(path, buf.Bytes(), 0600); err != nil {
		return clawerrors.IOWriteError(path, err)
	}
	c.dir = filepath.Dir(path)
	return nil
}

// Validate checks that the configuration is valid.
func (c *Config) Validate() error {
	if raw := c.ResolvedAPIURL(); raw != "" {
		u, err := url.Parse(raw)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			return clawerrors.InvalidArgument("api_url", raw, "must be an http(s) URL")
		}
	}
	if c.ResolvedTimeout() <= 0 {
		return clawerrors.InvalidArgument("timeout", c.Timeout, "must be positive")
	}
	switch c.ResolvedLogLevel() {
	case LogLevelDebug, LogLevelInfo, LogLevelWarn, LogLevelError:
	default:
		return clawerrors.InvalidArgument("logging.level", c.Logging.Level, "must be debug, info, warn or error")
	}
	return nil
}

// Keys lists the keys accepted by Set.
var Keys = []string{"api-url", "timeout", "install-dir", "log-level", "log-format", "no-color", "markdown"}

// Set assigns a config value by its CLI key name.
func (c *Config) Set(key, value string) error {
	switch key {
	case "api-url":
		u, err := url.Parse(value)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			return clawerrors.InvalidArgument(key, value, "must be an http(s) URL")
		}
		c.APIURL = strings.TrimRight(value, "/")
	case "timeout":
		d, err := time.ParseDuration(value)
		if err != nil || d <= 0 {
			return clawerrors.InvalidArgument(key, value, "must be a positive duration such as 30s")
		}
		c.Timeout = d
	case "install-dir":
		c.InstallDir = value
	case "log-level":
		c.Logging.Level = LogLevel(strings.ToLower(value))
	case "log-format":
		f := LogFormat(strings.ToLower(value))
		if f != LogFormatJSON && f != LogFormatText {
			return clawerrors.InvalidArgument(key, value, "must be json or text")
		}
		c.Logging.Format = f
	case "no-color", "markdown":
		b, err := parseBool(value)
		if err != nil {
			return clawerrors.InvalidArgument(key, value, "must be true or false")
		}
		if key == "no-color" {
			c.UI.NoColor = b
		} else {
			c.UI.Markdown = b
		}
	default:
		return clawerrors.Newf(clawerrors.CodeConfigUnknownKey, "unknown config key %q (valid keys: %s)", key, strings.Join(Keys, ", "))
	}
	return c.Validate()
}

func parseBool(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "true", "yes", "on", "1":
		return true, nil
	case "false", "no", "off", "0":
		return false, nil
	}
	return false, fmt.Errorf("not a boolean: %q", s)
}

// ResolvedAPIURL returns OPENCLAW_API_URL, then api_url, then DefaultAPIURL.
func (c *Config) ResolvedAPIURL() string {
	if c.Env.APIURL != "" {
		return c.Env.APIURL
	}
	if c.APIURL != "" {
		return c.APIURL
	}
	return DefaultAPIURL
}

// ResolvedTimeout returns the request timeout.
func (c *Config) ResolvedTimeout() time.Duration {
	if c.Env.Timeout > 0 {
		return c.Env.Timeout
	}
	if c.Timeout > 0 {
		return c.Timeout
	}
	return DefaultTimeout
}

// ResolvedLogLevel returns the log level after the environment override.
func (c *Config) ResolvedLogLevel() LogLevel {
	if c.Env.LogLevel != "" {
		return LogLevel(strings.ToLower(c.Env.LogLevel))
	}
	if c.Logging.Level == "" {
		return LogLevelWarn
	}
	return c.Logging.Level
}

// Color reports whether styled output is allowed.
func (c *Config) Color() bool {
	return c.Env.NoColor == "" && !c.UI.NoColor
}

// InstallRoot returns the base directory for installed skills:
// OPENCLAW_INSTALL_DIR, then $OPENCLAW_HOME/.openclaw, then install_dir,
// then ~/.openclaw.
func (c *Config) InstallRoot() (string, error) {
	if c.Env.InstallDir != "" {
		return c.Env.InstallDir, nil
	}
	if c.Env.Home != "" {
		return filepath.Join(c.Env.Home, ".openclaw"), nil
	}
	if c.InstallDir != "" {
		return expandHome(c.InstallDir), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("getting home dir: %w", err)
	}
	return filepath.Join(home, ".openclaw"), nil
}

// SkillsDir returns <install root>/skills.
func (c *Config) SkillsDir() (string, error) {
	root, err := c.InstallRoot()
	if err != nil {
		return "", err
	}
	return filepath.Join(root, "skills"), nil
}

// LogFile returns the absolute log file path, or "" when file logging is off.
// Relative paths are resolved against the config directory.
func (c *Config) LogFile() string {
	if c.Logging.File == "" {
		return ""
	}
	path := expandHome(c.Logging.File)
	if filepath.IsAbs(path) || c.dir == "" {
		return path
	}
	return filepath.Join(c.dir, path)
}

func expandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}
