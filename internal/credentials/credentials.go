// Package credentials persists the forum access token.
//
// Resolution order when reading:
//  1. OPENCLAW_TOKEN environment variable
//  2. OS keyring (Secret Service, Keychain, Credential Manager)
//  3. token field of config.toml (used when no keyring is reachable)
package credentials

import (
	"errors"
	"log/slog"

	"github.com/zalando/go-keyring"

	"github.com/openclaw-cn/claw/internal/config"
	clawerrors "github.com/openclaw-cn/claw/internal/errors"
)

const (
	keyringService = "openclaw-cli"
	keyringUser    = "token"
)

// Source names where a token came from.
type Source string

const (
	SourceNone    Source = ""
	SourceEnv     Source = "environment"
	SourceKeyring Source = "keyring"
	SourceFile    Source = "config file"
)

// Store reads and writes the token.
type Store struct {
	cfg     *config.Config
	cfgPath string
	logger  *slog.Logger
}

// NewStore creates a store that falls back to cfg (saved at cfgPath).
func NewStore(cfg *config.Config, cfgPath string, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{cfg: cfg, cfgPath: cfgPath, logger: logger}
}

func (s *Store) keyringEnabled() bool {
	return !s.cfg.Env.NoKeyring
}

// Token returns the current token and where it was found.
// An empty token with SourceNone means "not logged in".
func (s *Store) Token() (string, Source) {
	if s.cfg.Env.Token != "" {
		return s.cfg.Env.Token, SourceEnv
	}
	if s.keyringEnabled() {
		val, err := keyring.Get(keyringService, keyringUser)
		if err == nil && val != "" {
			return val, SourceKeyring
		}
		if err != nil && !errors.Is(err, keyring.ErrNotFound) {
			s.logger.Debug("keyring unavailable, using config file", "error", err)
		}
	}
	if s.cfg.Token != "" {
		return s.cfg.Token, SourceFile
	}
	return "", SourceNone
}

// Set stores token, preferring the keyring.
func (s *Store) Set(token string) (Source, error) {
	if s.keyringEnabled() {
		err := keyring.Set(keyringService, keyringUser, token)
		if err == nil {
			// Drop any stale plaintext copy.
			if s.cfg.Token != "" {
				s.cfg.Token = ""
				if err := s.cfg.Save(s.cfgPath); err != nil {
					s.logger.Warn("could not clear token from config file", "error", err)
				}
			}
			return SourceKeyring, nil
		}
		s.logger.Debug("keyring write failed, storing token in config file", "error", err)
	}

	s.cfg.Token = token
	if err := s.cfg.Save(s.cfgPath); err != nil {
		return SourceNone, clawerrors.Wrap(clawerrors.CodeAuthTokenStore, "storing token", err)
	}
	return SourceFile, nil
}

// Clear removes the token from every location claw writes to.
func (s *Store) Clear() error {
	if s.keyringEnabled() {
		if err := keyring.Delete(keyringService, keyringUser); err != nil && !errors.Is(err, keyring.ErrNotFound) {
			s.logger.Debug("keyring delete failed", "error", err)
		}
	}
	if s.cfg.Token == "" {
		return nil
	}
	s.cfg.Token = ""
	if err := s.cfg.Save(s.cfgPath); err != nil {
		return clawerrors.Wrap(clawerrors.CodeAuthTokenStore, "clearing token", err)
	}
	return nil
}

// Mask shortens a token for display: the first five characters then "...".
func Mask(token string) string {
	if token == "" {
		return "NONE"
	}
	if len(token) <= 5 {
		return token[:1] + "..."
	}
	return token[:5] + "..."
}
