package config

import "math"

// DifficultyManager turns accumulated score into the pacing multiplier
// applied to horizontal speeds, platform motion, particles and hazard odds.
type DifficultyManager struct {
	cfg DifficultyConfig
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	if cfg.DoublingScore <= 0 {
		cfg.DoublingScore = 2000
	}
	if cfg.MaxMultiplier < 1 {
		cfg.MaxMultiplier = 1
	}
	return &DifficultyManager{cfg: cfg}
}

// Multiplier returns clamp(2^(score/doubling), 1, max). It is
// non-decreasing in score and pinned at 1 when progression is disabled.
func (d *DifficultyManager) Multiplier(score int) float64 {
	if !d.cfg.Enabled {
		return 1
	}
	raw := math.Pow(2, float64(score)/d.cfg.DoublingScore)
	return clampF(raw, 1, d.cfg.MaxMultiplier)
}

// clampF restricts a float64 to [min, max].
func clampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}
