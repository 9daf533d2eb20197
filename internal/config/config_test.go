package config

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestMultiplierBounds(t *testing.T) {
	d := NewDifficultyManager(DefaultGoombaConfig().Difficulty)

	tests := []struct {
		name     string
		score    int
		expected float64
	}{
		{"zero score", 0, 1.0},
		{"one doubling", 2000, 2.0},
		{"half doubling", 1000, math.Sqrt2},
		{"saturated", 4000, 3.5},
		{"far past cap", 1_000_000, 3.5},
		{"negative score clamps to floor", -500, 1.0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := d.Multiplier(tc.score)
			if math.Abs(got-tc.expected) > 1e-9 {
				t.Errorf("Multiplier(%d) = %v, expected %v", tc.score, got, tc.expected)
			}
		})
	}
}

func TestMultiplierMonotonic(t *testing.T) {
	d := NewDifficultyManager(DefaultGoombaConfig().Difficulty)

	prev := d.Multiplier(0)
	for score := 0; score <= 20000; score += 10 {
		m := d.Multiplier(score)
		if m < prev {
			t.Fatalf("Multiplier decreased at score %d: %v < %v", score, m, prev)
		}
		if m < 1.0 || m > 3.5 {
			t.Fatalf("Multiplier(%d) = %v outside [1, 3.5]", score, m)
		}
		prev = m
	}
}

func TestMultiplierDisabled(t *testing.T) {
	cfg := DefaultGoombaConfig().Difficulty
	cfg.Enabled = false
	d := NewDifficultyManager(cfg)
	if got := d.Multiplier(10000); got != 1 {
		t.Errorf("disabled Multiplier = %v, expected 1", got)
	}
}

func TestApplyGoombaPreset(t *testing.T) {
	tests := []struct {
		preset  DifficultyPreset
		lives   int
		enabled bool
	}{
		{DifficultyEasy, 5, true},
		{DifficultyNormal, 3, true},
		{DifficultyHard, 2, true},
		{DifficultyFixed, 3, false},
	}

	for _, tc := range tests {
		t.Run(string(tc.preset), func(t *testing.T) {
			cfg := DefaultGoombaConfig()
			ApplyGoombaPreset(&cfg, tc.preset)
			if cfg.Player.Lives != tc.lives {
				t.Errorf("lives = %d, expected %d", cfg.Player.Lives, tc.lives)
			}
			if cfg.Difficulty.Enabled != tc.enabled {
				t.Errorf("enabled = %v, expected %v", cfg.Difficulty.Enabled, tc.enabled)
			}
			if err := Validate(cfg); err != nil {
				t.Errorf("preset produced invalid config: %v", err)
			}
		})
	}
}

func TestParsePreset(t *testing.T) {
	if ParsePreset("hard") != DifficultyHard {
		t.Error("ParsePreset(hard) should be DifficultyHard")
	}
	if ParsePreset("insane") != "" {
		t.Error("unknown preset should map to empty")
	}
}

func TestDefaultConfigValid(t *testing.T) {
	if err := Validate(DefaultGoombaConfig()); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
}

func TestEmbeddedDefaultsParse(t *testing.T) {
	cfg, source, err := LoadGoomba("")
	if err != nil {
		t.Fatalf("LoadGoomba() failed: %v", err)
	}
	// A user or local config may exist on the machine; only check the
	// embedded case.
	if source != "" {
		t.Skipf("config loaded from %s", source)
	}
	if cfg.Player.Lives != 3 || cfg.Generation.GhostPeriod != 300 || cfg.Combat.BossesToVictory != 3 {
		t.Errorf("unexpected embedded values: %+v", cfg.Player)
	}
	if err := Validate(cfg); err != nil {
		t.Errorf("embedded config invalid: %v", err)
	}
}

func TestLoadCustomPartialOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "goomba.yaml")
	data := "player:\n  lives: 7\nphysics:\n  gravity: 0.4\n"
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, source, err := LoadGoomba(path)
	if err != nil {
		t.Fatalf("LoadGoomba() failed: %v", err)
	}
	if source != path {
		t.Errorf("source = %q, expected %q", source, path)
	}
	if cfg.Player.Lives != 7 || cfg.Physics.Gravity != 0.4 {
		t.Errorf("overrides not applied: lives=%d gravity=%v", cfg.Player.Lives, cfg.Physics.Gravity)
	}
	if cfg.Player.Size != 48 {
		t.Errorf("unset keys should keep defaults, size = %v", cfg.Player.Size)
	}
}

func TestLoadCustomErrors(t *testing.T) {
	dir := t.TempDir()

	if _, _, err := LoadGoomba(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("player: [oops"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, _, err := LoadGoomba(bad); err == nil || !strings.Contains(err.Error(), "parse") {
		t.Errorf("expected parse error, got %v", err)
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("generation:\n  ghost_blink_at: 400\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, _, err := LoadGoomba(invalid); err == nil || !strings.Contains(err.Error(), "ghost") {
		t.Errorf("expected validation error, got %v", err)
	}
}

func TestWatcherReportsWrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "goomba.yaml")
	if err := os.WriteFile(path, []byte("player:\n  lives: 3\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	w, err := NewWatcher(path)
	if err != nil {
		t.Fatalf("NewWatcher() failed: %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(path, []byte("player:\n  lives: 4\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	select {
	case name := <-w.Events:
		if filepath.Base(name) != "goomba.yaml" {
			t.Errorf("event for %q, expected goomba.yaml", name)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("no event received for config write")
	}
}
