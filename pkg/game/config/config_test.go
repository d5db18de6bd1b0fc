package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "stonesnspells.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestDefaults(t *testing.T) {
	cfg := Defaults()
	if cfg.Window.Width != 1200 || cfg.Window.Height != 900 {
		t.Errorf("window = %dx%d, want 1200x900", cfg.Window.Width, cfg.Window.Height)
	}
	if cfg.Game.TPS != 100 || cfg.Game.Chests != 3 {
		t.Errorf("game = %+v, want 100 tps and 3 chests", cfg.Game)
	}
	if cfg.Game.PlayerIFrames != 2*time.Second {
		t.Errorf("PlayerIFrames = %v, want 2s", cfg.Game.PlayerIFrames)
	}
	if cfg.Log.Level != "info" || cfg.Locale.Lang != "en_GB" {
		t.Errorf("log level %q lang %q, want info and en_GB", cfg.Log.Level, cfg.Locale.Lang)
	}
}

func TestLoad_FileThenEnvironment(t *testing.T) {
	path := writeConfig(t, "game:\n  seed: 42\n  tps: 60\nlog:\n  level: debug\n")
	t.Setenv("SNS_LOG_LEVEL", "warn")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Game.Seed != 42 || cfg.Game.TPS != 60 {
		t.Errorf("game = %+v, want seed 42 at 60 tps", cfg.Game)
	}
	if cfg.Log.Level != "warn" {
		t.Errorf("Log.Level = %q, want the environment to win", cfg.Log.Level)
	}
	if cfg.Window.Width != 1200 {
		t.Errorf("Window.Width = %d, want the default", cfg.Window.Width)
	}
	if cfg.Source != path {
		t.Errorf("Source = %q, want %q", cfg.Source, path)
	}
	if Current() != cfg {
		t.Error("Current() should return the loaded config")
	}
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr string
	}{
		{"zero tps", "game:\n  tps: 0\n", "game.tps"},
		{"negative chests", "game:\n  chests: -1\n", "game.chests"},
		{"malformed yaml", "game: [\n", "read config"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.body))
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Load() error = %v, want it to mention %q", err, tt.wantErr)
			}
		})
	}
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Load() of a missing explicit file should fail")
	}
}
