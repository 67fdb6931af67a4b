package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	if err != nil {
		t.Fatalf("embedded defaults do not parse: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultGameConfig()) {
		t.Errorf("embedded YAML and DefaultGameConfig() disagree:\nyaml: %+v\ngo:   %+v", cfg, DefaultGameConfig())
	}
}

func TestDefaultConfigIsValid(t *testing.T) {
	if err := DefaultGameConfig().Validate(); err != nil {
		t.Fatalf("default config should be valid: %v", err)
	}
}

func TestParsePartialOverride(t *testing.T) {
	data := []byte(`
player:
  jump_speed: 25
session:
  length: 60
`)
	cfg, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}

	if cfg.Player.JumpSpeed != 25 {
		t.Errorf("jump_speed = %v, expected 25", cfg.Player.JumpSpeed)
	}
	if cfg.Session.Length != 60 {
		t.Errorf("session length = %v, expected 60", cfg.Session.Length)
	}
	// Untouched keys keep their defaults
	if cfg.Player.MoveSpeed != 5 {
		t.Errorf("move_speed = %v, expected default 5", cfg.Player.MoveSpeed)
	}
	if len(cfg.Objects) != 1 || cfg.Objects[0].ID != "sign" {
		t.Errorf("objects should keep the default sign, got %+v", cfg.Objects)
	}
}

func TestParseRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want string
	}{
		{
			name: "camera follow box too tight",
			yaml: "viewport: {left_margin: 840, right_margin: 840}",
			want: "exceeds screen width",
		},
		{
			name: "fall speed tunnels through blocks",
			yaml: "physics: {max_fall_speed: 100}",
			want: "tunnel",
		},
		{
			name: "inverted interaction range",
			yaml: "objects: [{id: a, width: 1, height: 1, range_low: 10, range_high: 5}]",
			want: "range_low",
		},
		{
			name: "duplicate object ids",
			yaml: "objects: [{id: a, width: 1, height: 1, range_high: 1}, {id: a, width: 1, height: 1, range_high: 1}]",
			want: "duplicate id",
		},
		{
			name: "zero session length",
			yaml: "session: {length: 0}",
			want: "session: length",
		},
		{
			name: "malformed yaml",
			yaml: "player: [",
			want: "failed to parse",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse([]byte(tc.yaml))
			if err == nil {
				t.Fatal("Parse() should fail")
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Errorf("error %q should mention %q", err, tc.want)
			}
		})
	}
}

func TestValidateReportsAllProblems(t *testing.T) {
	cfg := DefaultGameConfig()
	cfg.Physics.Gravity = 0
	cfg.Player.MoveSpeed = -1

	err := cfg.Validate()
	if err == nil {
		t.Fatal("Validate() should fail")
	}
	msg := err.Error()
	if !strings.Contains(msg, "gravity") || !strings.Contains(msg, "move_speed") {
		t.Errorf("both problems should be reported, got %q", msg)
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	if err := os.WriteFile(path, []byte("player: {move_speed: 7}\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Player.MoveSpeed != 7 {
		t.Errorf("move_speed = %v, expected 7", cfg.Player.MoveSpeed)
	}
}

func TestLoadMissingCustomPath(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatal("Load() should fail for a missing custom path")
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("error should wrap a not-exist error, got %v", err)
	}
}

func TestLoadUserConfigAndFallback(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir := filepath.Join(home, ".ticking", "configs")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(dir, FileName)

	if err := os.WriteFile(path, []byte("session: {length: 120}\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Session.Length != 120 {
		t.Errorf("user config should be used, session length = %v", cfg.Session.Length)
	}

	// A broken user file is skipped in favor of the embedded defaults
	if err := os.WriteFile(path, []byte("session: {length: -1}\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	cfg, err = Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Session.Length != 600 {
		t.Errorf("broken user config should fall back to defaults, session length = %v", cfg.Session.Length)
	}
}
