package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const configFile = "goomba.yaml"

// LoadGoomba loads the game configuration and reports which file it came
// from ("" for the embedded default).
// Search order: customPath -> ~/.goomba/configs/goomba.yaml -> ./configs/goomba.yaml -> embedded default
func LoadGoomba(customPath string) (GoombaConfig, string, error) {
	if customPath != "" {
		cfg, err := loadFile(customPath)
		if err != nil {
			return cfg, customPath, err
		}
		return cfg, customPath, nil
	}

	for _, candidate := range []string{userConfigPath(configFile), filepath.Join("configs", configFile)} {
		if candidate == "" {
			continue
		}
		if cfg, err := loadFile(candidate); err == nil {
			return cfg, candidate, nil
		}
	}

	cfg := DefaultGoombaConfig()
	if err := yaml.Unmarshal(defaultGoombaYAML, &cfg); err != nil {
		return DefaultGoombaConfig(), "", nil // Fallback to hardcoded if embed fails
	}
	return cfg, "", nil
}

// loadFile parses a YAML file over the built-in defaults, so a partial file
// only overrides the keys it names.
func loadFile(path string) (GoombaConfig, error) {
	cfg := DefaultGoombaConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if err := Validate(cfg); err != nil {
		return cfg, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".goomba", "configs", filename)
}

// ApplyGoombaPreset modifies the config based on a difficulty preset.
func ApplyGoombaPreset(cfg *GoombaConfig, preset DifficultyPreset) {
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
		return
	}
	cfg.Difficulty.Enabled = true

	switch preset {
	case DifficultyEasy:
		cfg.Player.Lives = 5
		cfg.Difficulty.MaxMultiplier = 2.5
	case DifficultyHard:
		cfg.Player.Lives = 2
		cfg.Difficulty.DoublingScore = 1500
		cfg.Difficulty.MaxMultiplier = 4
	}
}

// Validate rejects configurations the simulation cannot run with.
func Validate(cfg GoombaConfig) error {
	var errs []error
	check := func(ok bool, msg string) {
		if !ok {
			errs = append(errs, errors.New(msg))
		}
	}

	check(cfg.Player.Size > 0, "player.size must be positive")
	check(cfg.Player.Lives > 0, "player.lives must be positive")
	check(cfg.Player.JumpCharges > 0, "player.jump_charges must be positive")
	check(cfg.Enemies.Size > 0 && cfg.Enemies.BossSize > 0 && cfg.Enemies.HazardSize > 0,
		"enemy sizes must be positive")
	check(cfg.PowerUps.Size > 0, "powerups.size must be positive")
	check(cfg.Physics.Friction > 0 && cfg.Physics.Friction <= 1, "physics.friction must be in (0, 1]")
	check(cfg.Physics.IceFriction > 0 && cfg.Physics.IceFriction <= 1, "physics.ice_friction must be in (0, 1]")
	check(cfg.Physics.JumpImpulse < 0, "physics.jump_impulse must be negative (upward)")
	check(cfg.Generation.GhostPeriod > 0, "generation.ghost_period must be positive")
	check(cfg.Generation.GhostBlinkAt <= cfg.Generation.GhostVanishAt &&
		cfg.Generation.GhostVanishAt <= cfg.Generation.GhostPeriod,
		"generation ghost windows must satisfy blink_at <= vanish_at <= period")
	check(cfg.Generation.PipeChance <= cfg.Generation.PlatformChance,
		"generation.pipe_chance must not exceed platform_chance")
	check(cfg.Generation.GroundStride > 0 && cfg.Generation.UpperStride > 0 &&
		cfg.Generation.EmptyStride > 0 && cfg.Generation.PipeStride > 0,
		"generation strides must be positive")
	check(cfg.Generation.BossInterval > 0, "generation.boss_interval must be positive")
	check(cfg.Combat.BossesToVictory > 0, "combat.bosses_to_victory must be positive")
	check(cfg.Difficulty.MaxMultiplier >= 1, "difficulty.max_multiplier must be at least 1")
	check(cfg.Difficulty.DoublingScore > 0, "difficulty.doubling_score must be positive")
	check(cfg.Dungeon.RoomWidth > 2*cfg.Dungeon.WallWidth+cfg.Enemies.BossSize,
		"dungeon.room_width too small for walls and boss")
	check(cfg.Render.CellWidth > 0 && cfg.Render.CellHeight > 0, "render cell size must be positive")

	return errors.Join(errs...)
}
