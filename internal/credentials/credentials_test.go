package credentials

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/zalando/go-keyring"

	"github.com/openclaw-cn/claw/internal/config"
	"github.com/openclaw-cn/claw/internal/logging"
)

func newTestStore(t *testing.T) (*Store, *config.Config, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	cfg := config.Default()
	return NewStore(cfg, path, logging.NewForTest()), cfg, path
}

func TestSetUsesKeyring(t *testing.T) {
	keyring.MockInit()
	store, cfg, path := newTestStore(t)

	src, err := store.Set("tok-123")
	if err != nil {
		t.Fatalf("Set: %v", err)
	}
	if src != SourceKeyring {
		t.Errorf("Set source = %q, want keyring", src)
	}
	if cfg.Token != "" {
		t.Error("token should not be kept in the config when the keyring works")
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("config file should not be written for a keyring save")
	}

	tok, src := store.Token()
	if tok != "tok-123" || src != SourceKeyring {
		t.Errorf("Token() = %q, %q", tok, src)
	}
}

func TestSetFallsBackToConfigFile(t *testing.T) {
	keyring.MockInitWithError(errors.New("no secret service"))
	store, _, path := newTestStore(t)

	src, err := store.Set("tok-file")
	if err != nil {
		t.Fatalf("Set: %v", err)
	}
	if src != SourceFile {
		t.Errorf("Set source = %q, want config file", src)
	}

	loaded, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.Token != "tok-file" {
		t.Errorf("persisted token = %q", loaded.Token)
	}

	tok, src := store.Token()
	if tok != "tok-file" || src != SourceFile {
		t.Errorf("Token() = %q, %q", tok, src)
	}
}

func TestNoKeyringEnv(t *testing.T) {
	keyring.MockInit()
	store, cfg, _ := newTestStore(t)
	cfg.Env.NoKeyring = true

	if src, err := store.Set("plain"); err != nil || src != SourceFile {
		t.Fatalf("Set = %q, %v; want config file", src, err)
	}
	if _, err := keyring.Get(keyringService, keyringUser); !errors.Is(err, keyring.ErrNotFound) {
		t.Errorf("keyring should be untouched, got err=%v", err)
	}
}

func TestEnvTokenWins(t *testing.T) {
	keyring.MockInit()
	store, cfg, _ := newTestStore(t)
	store.Set("stored")
	cfg.Env.Token = "from-env"

	tok, src := store.Token()
	if tok != "from-env" || src != SourceEnv {
		t.Errorf("Token() = %q, %q; want environment token", tok, src)
	}
}

func TestClear(t *testing.T) {
	keyring.MockInit()
	store, cfg, path := newTestStore(t)
	store.Set("k")
	cfg.Token = "f"

	if err := store.Clear(); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	if tok, src := store.Token(); tok != "" || src != SourceNone {
		t.Errorf("Token() after Clear = %q, %q", tok, src)
	}
	loaded, _ := config.Load(path)
	if loaded.Token != "" {
		t.Error("config token should be cleared")
	}

	// Clearing twice is fine.
	if err := store.Clear(); err != nil {
		t.Errorf("second Clear: %v", err)
	}
}

func TestMask(t *testing.T) {
	tests := []struct{ in, want string }{
		{"", "NONE"},
		{"abc", "a..."},
		{"eyJhbGciOi", "eyJhb..."},
	}
	for _, tt := range tests {
		if got := Mask(tt.in); got != tt.want {
			t.Errorf("Mask(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
