package skill

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/openclaw-cn/claw/internal/logging"
)

func newTestInstaller(t *testing.T) *Installer {
	t.Helper()
	return NewInstaller(t.TempDir(), logging.NewForTest())
}

func weatherBundle() *Bundle {
	return &Bundle{
		ID:          "official/weather",
		OwnerID:     "official",
		OwnerName:   "OpenClaw",
		Name:        "Weather",
		Description: "Forecasts",
		Version:     "1.1.0",
		Status:      "pending",
		Readme:      "# Weather\n",
		Files: map[string]string{
			"scripts/run.sh": "echo sunny",
			"README.md":      "readme",
		},
		Metadata: map[string]any{"clawdbot": map[string]any{"emoji": "🌤"}},
	}
}

func TestInstall(t *testing.T) {
	inst := newTestInstaller(t)

	res, err := inst.Install(weatherBundle(), InstallOptions{})
	if err != nil {
		t.Fatalf("Install() error = %v", err)
	}

	wantDir := filepath.Join(inst.SkillsDir, "official__weather")
	if res.Dir != wantDir {
		t.Errorf("Dir = %s, want %s", res.Dir, wantDir)
	}

	data, err := os.ReadFile(filepath.Join(wantDir, "scripts", "run.sh"))
	if err != nil || string(data) != "echo sunny" {
		t.Errorf("scripts/run.sh = %q, %v", data, err)
	}

	m, body, err := LoadManifest(wantDir)
	if err != nil {
		t.Fatalf("LoadManifest() error = %v", err)
	}
	if m.ID != "official/weather" || m.Author != "OpenClaw" || m.Version != "1.1.0" {
		t.Errorf("manifest = %+v", m)
	}
	if m.Status != "" {
		t.Errorf("Status = %q, want omitted for regular installs", m.Status)
	}
	if m.ResolvedIcon() != "🌤" {
		t.Errorf("metadata should be written, got %+v", m.Metadata)
	}
	if body != "# Weather\n" {
		t.Errorf("body = %q", body)
	}

	entry, err := inst.Index.Get("official/weather")
	if err != nil || entry == nil {
		t.Fatalf("index entry = %v, %v", entry, err)
	}
	if entry.Version != "1.1.0" || entry.Files != 2 {
		t.Errorf("entry = %+v", entry)
	}
}

func TestInstallIncludeStatus(t *testing.T) {
	inst := newTestInstaller(t)
	res, err := inst.Install(weatherBundle(), InstallOptions{IncludeStatus: true})
	if err != nil {
		t.Fatalf("Install() error = %v", err)
	}
	m, _, _ := LoadManifest(res.Dir)
	if m.Status != "pending" {
		t.Errorf("Status = %q, want pending", m.Status)
	}
}

func TestInstallOverwritesExisting(t *testing.T) {
	inst := newTestInstaller(t)
	b := weatherBundle()
	if _, err := inst.Install(b, InstallOptions{}); err != nil {
		t.Fatal(err)
	}
	stale := filepath.Join(inst.SkillsDir, "official__weather", "stale.txt")
	writeTestFile(t, stale, "old")

	b.Files = map[string]string{"new.txt": "new"}
	b.Version = "2.0.0"
	if _, err := inst.Install(b, InstallOptions{}); err != nil {
		t.Fatal(err)
	}

	if _, err := os.Stat(stale); !os.IsNotExist(err) {
		t.Error("reinstall must remove files that are not in the bundle")
	}
	if _, err := os.Stat(filepath.Join(inst.SkillsDir, "official__weather", "scripts")); !os.IsNotExist(err) {
		t.Error("old directories must be gone")
	}
	if got := inst.LocalVersion("official/weather"); got != "2.0.0" {
		t.Errorf("LocalVersion() = %q", got)
	}
}

func TestInstallSkipsUnsafePaths(t *testing.T) {
	inst := newTestInstaller(t)
	b := weatherBundle()
	b.Files = map[string]string{
		"../escape.txt":      "x",
		"a/../../escape.txt": "x",
		"/etc/evil":          "x",
		`..\win.txt`:         "x",
		"ok/file.txt":        "fine",
		"":                   "x",
	}

	res, err := inst.Install(b, InstallOptions{})
	if err != nil {
		t.Fatalf("Install() error = %v", err)
	}

	if len(res.Written) != 1 || res.Written[0] != "ok/file.txt" {
		t.Errorf("Written = %v", res.Written)
	}
	if len(res.Skipped) != 5 {
		t.Errorf("Skipped = %v, want 5 entries", res.Skipped)
	}
	if _, err := os.Stat(filepath.Join(inst.SkillsDir, "escape.txt")); !os.IsNotExist(err) {
		t.Error("traversal path was written outside the skill dir")
	}
}

func TestInstallRejectsBadID(t *testing.T) {
	inst := newTestInstaller(t)
	b := weatherBundle()
	b.ID = "../../home"
	if _, err := inst.Install(b, InstallOptions{}); err == nil {
		t.Fatal("expected error for traversal id")
	}
}

func TestUninstall(t *testing.T) {
	inst := newTestInstaller(t)
	if _, err := inst.Install(weatherBundle(), InstallOptions{}); err != nil {
		t.Fatal(err)
	}

	removed, err := inst.Uninstall("official/weather")
	if err != nil || !removed {
		t.Fatalf("Uninstall() = %v, %v", removed, err)
	}
	if _, err := os.Stat(filepath.Join(inst.SkillsDir, "official__weather")); !os.IsNotExist(err) {
		t.Error("directory should be removed")
	}
	if entry, _ := inst.Index.Get("official/weather"); entry != nil {
		t.Error("index entry should be removed")
	}

	removed, err = inst.Uninstall("official/weather")
	if err != nil || removed {
		t.Errorf("second Uninstall() = %v, %v; want false, nil", removed, err)
	}
}

func TestLocalVersionDefaults(t *testing.T) {
	inst := newTestInstaller(t)
	if got := inst.LocalVersion("official/none"); got != DefaultVersion {
		t.Errorf("LocalVersion() = %q, want %q", got, DefaultVersion)
	}

	writeTestFile(t, filepath.Join(inst.SkillsDir, "official__bare", ManifestName), "---\nid: official/bare\nname: b\n---\n")
	if got := inst.LocalVersion("official/bare"); got != DefaultVersion {
		t.Errorf("LocalVersion() = %q, want %q", got, DefaultVersion)
	}
}

func TestInstalledIDs(t *testing.T) {
	inst := newTestInstaller(t)

	if _, _, ok, err := inst.InstalledIDs(); ok || err != nil {
		t.Fatalf("missing skills dir: ok=%v err=%v", ok, err)
	}

	writeTestFile(t, filepath.Join(inst.SkillsDir, "a__one", ManifestName), "---\nid: a/one\n---\n")
	writeTestFile(t, filepath.Join(inst.SkillsDir, "b__two", ManifestName), "---\nid: b/two\n---\n")
	writeTestFile(t, filepath.Join(inst.SkillsDir, "local", ManifestName), "---\nname: hand made\n---\n")
	writeTestFile(t, filepath.Join(inst.SkillsDir, "empty", "notes.txt"), "x")

	ids, missing, ok, err := inst.InstalledIDs()
	if err != nil || !ok {
		t.Fatalf("InstalledIDs() ok=%v err=%v", ok, err)
	}
	if strings.Join(ids, ",") != "a/one,b/two" {
		t.Errorf("ids = %v", ids)
	}
	if missing != 1 {
		t.Errorf("missing = %d, want 1", missing)
	}
}
