package config

import (
	"os"
	"path/filepath"
	"testing"
)

const testYAML = `
window:
  width: 640
  height: 480
  title: "test window"
game:
  roundduration_seconds: 45
  difficulty: hard
  hard_relocate_ms: 500
audio:
  enabled: true
frontend: terminal
`

func writeTestConfig(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	if err := os.Mkdir(filepath.Join(root, "config"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(root, "config", "config.test.yaml"), []byte(testYAML), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return root
}

func TestLoadReadsYAMLFromProjectRoot(t *testing.T) {
	root := writeTestConfig(t)
	nested := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatalf("mkdir nested: %v", err)
	}
	t.Chdir(nested)

	cfg, err := Load("test")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if got := cfg.GetWindowWidth(); got != 640 {
		t.Errorf("GetWindowWidth() = %d, want 640", got)
	}
	if got := cfg.GetWindowTitle(); got != "test window" {
		t.Errorf("GetWindowTitle() = %q, want %q", got, "test window")
	}
	if got := cfg.GetRoundDuration(); got != 45 {
		t.Errorf("GetRoundDuration() = %d, want 45", got)
	}
	if got := cfg.GetDifficulty(); got != "hard" {
		t.Errorf("GetDifficulty() = %q, want hard", got)
	}
	if got := cfg.GetHardRelocateInterval(); got != 500 {
		t.Errorf("GetHardRelocateInterval() = %d, want 500", got)
	}
	if !cfg.GetAudioEnabled() {
		t.Errorf("GetAudioEnabled() = false, want true")
	}
	if got := cfg.GetFrontend(); got != "terminal" {
		t.Errorf("GetFrontend() = %q, want terminal", got)
	}
	// Keys missing from the file read as zero values.
	if got := cfg.GetCountdownDuration(); got != 0 {
		t.Errorf("GetCountdownDuration() = %d, want 0", got)
	}
}

func TestEnvironmentOverridesFile(t *testing.T) {
	root := writeTestConfig(t)
	t.Chdir(root)
	t.Setenv("WINDOW_WIDTH", "800")
	t.Setenv("DIFFICULTY", "medium")
	t.Setenv("AUDIO_ENABLED", "false")

	cfg, err := Load("test")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if got := cfg.GetWindowWidth(); got != 800 {
		t.Errorf("GetWindowWidth() = %d, want 800", got)
	}
	if got := cfg.GetDifficulty(); got != "medium" {
		t.Errorf("GetDifficulty() = %q, want medium", got)
	}
	if cfg.GetAudioEnabled() {
		t.Errorf("GetAudioEnabled() = true, want false")
	}
}

func TestLoadWithoutConfigDirUsesEnvironment(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("TARGET_RADIUS", "25")

	cfg, err := Load("missing")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got := cfg.GetTargetRadius(); got != 25 {
		t.Errorf("GetTargetRadius() = %d, want 25", got)
	}
	if got := cfg.GetWindowHeight(); got != 0 {
		t.Errorf("GetWindowHeight() = %d, want 0", got)
	}
}
