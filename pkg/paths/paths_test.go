package paths

import (
	"path/filepath"
	"strings"
	"testing"
)

func TestConfigDirEnvOverride(t *testing.T) {
	ResetForTest()
	t.Cleanup(ResetForTest)
	t.Setenv("FOLIO_CONFIG_DIR", "/custom/config")

	if got := ConfigDir(); got != "/custom/config" {
		t.Errorf("ConfigDir() = %q, want /custom/config", got)
	}
	if got := ConfigPath(); got != filepath.Join("/custom/config", "config.yaml") {
		t.Errorf("ConfigPath() = %q", got)
	}
}

func TestStateDirEnvOverride(t *testing.T) {
	ResetForTest()
	t.Cleanup(ResetForTest)
	t.Setenv("FOLIO_STATE_DIR", "/custom/state")

	if got := StateDir(); got != "/custom/state" {
		t.Errorf("StateDir() = %q, want /custom/state", got)
	}
	if got := StatePath("contributions.json"); got != filepath.Join("/custom/state", "contributions.json") {
		t.Errorf("StatePath() = %q", got)
	}
}

func TestDefaultsUnderHome(t *testing.T) {
	ResetForTest()
	t.Cleanup(ResetForTest)
	t.Setenv("FOLIO_CONFIG_DIR", "")
	t.Setenv("FOLIO_STATE_DIR", "")
	t.Setenv("HOME", "/home/tester")

	if got := ConfigDir(); !strings.HasSuffix(got, filepath.Join(".config", "foliodesk")) {
		t.Errorf("ConfigDir() = %q, want ~/.config/foliodesk", got)
	}
	if got := StateDir(); !strings.HasSuffix(got, filepath.Join(".local", "state", "foliodesk")) {
		t.Errorf("StateDir() = %q, want ~/.local/state/foliodesk", got)
	}
}

func TestCachedAfterFirstCall(t *testing.T) {
	ResetForTest()
	t.Cleanup(ResetForTest)
	t.Setenv("FOLIO_CONFIG_DIR", "/first")

	first := ConfigDir()
	t.Setenv("FOLIO_CONFIG_DIR", "/second")
	if again := ConfigDir(); again != first {
		t.Errorf("ConfigDir() re-resolved: %q then %q", first, again)
	}
}

func TestEnsureStateDir(t *testing.T) {
	ResetForTest()
	t.Cleanup(ResetForTest)
	dir := t.TempDir()
	t.Setenv("FOLIO_STATE_DIR", filepath.Join(dir, "nested", "state"))

	created, err := EnsureStateDir()
	if err != nil {
		t.Fatalf("ensure: %v", err)
	}
	if created != filepath.Join(dir, "nested", "state") {
		t.Errorf("created = %q", created)
	}
}
