package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/openclaw-cn/claw/internal/config"
)

func TestNewFromConfig_DefaultsToStderr(t *testing.T) {
	cfg := config.Default()

	var buf bytes.Buffer
	logger, closer, err := NewFromConfig(cfg, false, &buf)
	if err != nil {
		t.Fatalf("NewFromConfig failed: %v", err)
	}
	if closer != nil {
		t.Error("Expected no closer when no file configured")
	}
	if logger == nil {
		t.Fatal("Expected logger to be non-nil")
	}

	logger.Info("hidden")
	logger.Warn("shown")
	if strings.Contains(buf.String(), "hidden") {
		t.Error("info should be filtered at the default warn level")
	}
	if !strings.Contains(buf.String(), "shown") {
		t.Errorf("warn should be logged: %s", buf.String())
	}
}

func TestNewFromConfig_Verbose(t *testing.T) {
	var buf bytes.Buffer
	logger, _, err := NewFromConfig(config.Default(), true, &buf)
	if err != nil {
		t.Fatalf("NewFromConfig failed: %v", err)
	}
	logger.Debug("request", "method", "GET")
	if !strings.Contains(buf.String(), "method=GET") {
		t.Errorf("verbose logger should emit debug records: %q", buf.String())
	}
}

func TestNewFromConfig_File(t *testing.T) {
	dir := t.TempDir()
	logPath := filepath.Join(dir, "nested", "claw.log")
	cfg := config.Default()
	cfg.Logging.File = logPath
	cfg.Logging.Format = config.LogFormatJSON

	var stderr bytes.Buffer
	logger, closer, err := NewFromConfig(cfg, false, &stderr)
	if err != nil {
		t.Fatalf("NewFromConfig failed: %v", err)
	}
	if closer == nil {
		t.Fatal("Expected closer for file log")
	}
	defer closer.Close()

	logger.Warn("test message", "key", "value")

	data, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("Failed to read log file: %v", err)
	}
	if !strings.Contains(string(data), "test message") {
		t.Errorf("Log file does not contain expected message: %s", data)
	}
	if !strings.Contains(stderr.String(), "test message") {
		t.Errorf("stderr should also receive the record: %s", stderr.String())
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input config.LogLevel
		want  slog.Level
	}{
		{config.LogLevelDebug, slog.LevelDebug},
		{config.LogLevelInfo, slog.LevelInfo},
		{config.LogLevelWarn, slog.LevelWarn},
		{config.LogLevelError, slog.LevelError},
		{"unknown", slog.LevelWarn}, // default
	}

	for _, tt := range tests {
		t.Run(string(tt.input), func(t *testing.T) {
			if got := parseLevel(tt.input); got != tt.want {
				t.Errorf("parseLevel(%s) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestFormats(t *testing.T) {
	tests := []struct {
		format config.LogFormat
		check  func(t *testing.T, out []byte)
	}{
		{config.LogFormatJSON, func(t *testing.T, out []byte) {
			var rec map[string]any
			if err := json.Unmarshal(out, &rec); err != nil {
				t.Fatalf("not JSON: %v (%s)", err, out)
			}
			if rec["msg"] != "api request" || rec["status"] != float64(404) {
				t.Errorf("record = %v", rec)
			}
		}},
		{config.LogFormatText, func(t *testing.T, out []byte) {
			if !strings.Contains(string(out), `msg="api request" status=404`) {
				t.Errorf("text record = %q", out)
			}
		}},
	}
	for _, tt := range tests {
		t.Run(string(tt.format), func(t *testing.T) {
			cfg := config.Default()
			cfg.Logging.Format = tt.format

			var buf bytes.Buffer
			logger, _, err := NewFromConfig(cfg, false, &buf)
			if err != nil {
				t.Fatalf("NewFromConfig: %v", err)
			}
			logger.Warn("api request", "status", 404)
			tt.check(t, buf.Bytes())
		})
	}
}

func TestNewForTestIsSilent(t *testing.T) {
	if NewForTest().Enabled(context.Background(), slog.LevelWarn) {
		t.Error("test logger should drop warnings")
	}
}

func TestWithSkill(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	WithSkill(WithCommand(logger, "claw skill install"), "official/weather").Info("test")

	var result map[string]any
	if err := json.Unmarshal(buf.Bytes(), &result); err != nil {
		t.Fatalf("JSON unmarshal failed: %v", err)
	}
	if result["skill_id"] != "official/weather" {
		t.Errorf("skill_id = %v", result["skill_id"])
	}
	if result["command"] != "claw skill install" {
		t.Errorf("command = %v", result["command"])
	}
}
