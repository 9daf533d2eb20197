// Package config provides YAML-based configuration loading and the
// difficulty scalar for the goomba arcade.
package config

import "time"

// GoombaConfig holds every tunable of the world simulation and its
// terminal presentation. All distances are world units, all durations ticks.
type GoombaConfig struct {
	Physics    Physics          `yaml:"physics"`
	Player     Player           `yaml:"player"`
	Enemies    Enemies          `yaml:"enemies"`
	Generation Generation       `yaml:"generation"`
	Combat     Combat           `yaml:"combat"`
	PowerUps   PowerUps         `yaml:"powerups"`
	Dungeon    Dungeon          `yaml:"dungeon"`
	Ending     Ending           `yaml:"ending"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
	Render     Render           `yaml:"render"`
	Input      Input            `yaml:"input"`
	Flavor     Flavor           `yaml:"flavor"`
}

// Physics defines the global motion constants.
type Physics struct {
	Gravity        float64 `yaml:"gravity"`
	Friction       float64 `yaml:"friction"`
	IceFriction    float64 `yaml:"ice_friction"`
	JumpImpulse    float64 `yaml:"jump_impulse"` // negative is upward
	RunAccel       float64 `yaml:"run_accel"`
	BounceFactor   float64 `yaml:"bounce_factor"`
	GroundMargin   float64 `yaml:"ground_margin"` // ground line distance from viewport bottom
	CameraLead     float64 `yaml:"camera_lead"`   // fraction of viewport kept behind the player
	CameraEase     float64 `yaml:"camera_ease"`
	ParticleDecay  float64 `yaml:"particle_decay"`
	ParticleSpread float64 `yaml:"particle_spread"`
}

// Player defines the player body and jump rules.
type Player struct {
	Size          float64 `yaml:"size"`
	Lives         int     `yaml:"lives"`
	JumpCharges   int     `yaml:"jump_charges"`
	CoyoteTicks   int     `yaml:"coyote_ticks"`
	LandTolerance float64 `yaml:"land_tolerance"`
	LandInset     float64 `yaml:"land_inset"`
	LandReach     float64 `yaml:"land_reach"` // how far below a surface top a falling body still lands
	SpawnPipeX    float64 `yaml:"spawn_pipe_x"`
	SpawnPipeH    float64 `yaml:"spawn_pipe_height"`
}

// Enemies defines enemy kinds, bosses and the falling hazard.
type Enemies struct {
	Size              float64 `yaml:"size"`
	BaseSpeed         float64 `yaml:"base_speed"`
	WanderChance      float64 `yaml:"wander_chance"`
	WanderFactor      float64 `yaml:"wander_factor"`
	SafeRadius        float64 `yaml:"safe_radius"`
	BossSize          float64 `yaml:"boss_size"`
	BossSpeed         float64 `yaml:"boss_speed"`
	BossBaseHP        int     `yaml:"boss_base_hp"`
	BossHopChance     float64 `yaml:"boss_hop_chance"`
	BossHopFactor     float64 `yaml:"boss_hop_factor"`
	BossKnockback     float64 `yaml:"boss_knockback"`
	FlyerBob          float64 `yaml:"flyer_bob"`
	FlyerBobRate      float64 `yaml:"flyer_bob_rate"`
	HazardSize        float64 `yaml:"hazard_size"`
	HazardChance      float64 `yaml:"hazard_chance"`
	HazardSpread      float64 `yaml:"hazard_spread"`
	HazardStartY      float64 `yaml:"hazard_start_y"`
	HazardFallSpeed   float64 `yaml:"hazard_fall_speed"`
	HazardGravityMult float64 `yaml:"hazard_gravity_mult"`
}

// Generation defines the procedural chunk generator weights and shapes.
type Generation struct {
	BossMinDistance float64 `yaml:"boss_min_distance"`
	BossInterval    float64 `yaml:"boss_interval"`
	BossOffset      float64 `yaml:"boss_offset"`
	MaxBosses       int     `yaml:"max_bosses"`
	StartOffset     float64 `yaml:"start_offset"`
	Lookahead       float64 `yaml:"lookahead"`
	CleanupMargin   float64 `yaml:"cleanup_margin"`

	HillChance  float64 `yaml:"hill_chance"`
	CloudChance float64 `yaml:"cloud_chance"`

	GapChance      float64 `yaml:"gap_chance"`
	GapWidth       float64 `yaml:"gap_width"`
	PipeChance     float64 `yaml:"pipe_chance"`
	PlatformChance float64 `yaml:"platform_chance"` // cumulative with pipe_chance
	PipeWidth      float64 `yaml:"pipe_width"`
	PipeMinHeight  float64 `yaml:"pipe_min_height"`
	PipeMaxHeight  float64 `yaml:"pipe_max_height"`
	PipeStride     float64 `yaml:"pipe_stride"`
	MovingChance   float64 `yaml:"moving_chance"`
	GoldChance     float64 `yaml:"gold_chance"`
	EmptyStride    float64 `yaml:"empty_stride"`

	PlatformMinRise  float64 `yaml:"platform_min_rise"`
	PlatformMaxRise  float64 `yaml:"platform_max_rise"`
	PlatformMinWidth float64 `yaml:"platform_min_width"`
	PlatformMaxWidth float64 `yaml:"platform_max_width"`
	PlatformHeight   float64 `yaml:"platform_height"`
	PlatformGap      float64 `yaml:"platform_gap"`
	GhostChance      float64 `yaml:"ghost_chance"`
	GhostPeriod      float64 `yaml:"ghost_period"`
	GhostBlinkAt     float64 `yaml:"ghost_blink_at"`
	GhostVanishAt    float64 `yaml:"ghost_vanish_at"`
	GhostPhaseMax    float64 `yaml:"ghost_phase_max"`
	PipeMinSpeed     float64 `yaml:"pipe_min_speed"`
	PipeSpeedRange   float64 `yaml:"pipe_speed_range"`
	PipeTravelFloor  float64 `yaml:"pipe_travel_floor"` // lowest top of a moving pipe, above ground
	IceChance        float64 `yaml:"ice_chance"`
	BouncyChance     float64 `yaml:"bouncy_chance"`
	HostEnemyChance  float64 `yaml:"host_enemy_chance"`
	HostPowerChance  float64 `yaml:"host_power_chance"`
	HostCoinChance   float64 `yaml:"host_coin_chance"`

	UpperChance      float64 `yaml:"upper_chance"`
	UpperRise        float64 `yaml:"upper_rise"`
	UpperStride      float64 `yaml:"upper_stride"`
	BlockChance      float64 `yaml:"block_chance"`
	BlockWidth       float64 `yaml:"block_width"`
	FlyerChance      float64 `yaml:"flyer_chance"`
	FlyerRise        float64 `yaml:"flyer_rise"`
	GroundStride     float64 `yaml:"ground_stride"`
	GroundEnemyGate  float64 `yaml:"ground_enemy_chance"`
	GroundCoinChance float64 `yaml:"ground_coin_chance"`
	GroundCoinRise   float64 `yaml:"ground_coin_rise"`
}

// Combat defines stomp rules, timers granted by hits, and score awards.
type Combat struct {
	StompThreshold  float64 `yaml:"stomp_threshold"`
	StompRebound    float64 `yaml:"stomp_rebound"`
	HitInvincible   int     `yaml:"hit_invincible"`
	ShieldKnockX    float64 `yaml:"shield_knock_x"`
	ShieldKnockY    float64 `yaml:"shield_knock_y"`
	EnemyScore      int     `yaml:"enemy_score"`
	BossScore       int     `yaml:"boss_score"`
	DungeonBonus    int     `yaml:"dungeon_bonus"`
	RewardPowerUps  int     `yaml:"reward_powerups"`
	RewardSpread    float64 `yaml:"reward_spread"`
	RewardRise      float64 `yaml:"reward_rise"`
	BossesToVictory int     `yaml:"bosses_to_victory"`
}

// PowerUps defines pickup sizes, durations and scores.
type PowerUps struct {
	Size        float64 `yaml:"size"`
	CoinScore   int     `yaml:"coin_score"`
	PowerScore  int     `yaml:"power_score"`
	StarTicks   int     `yaml:"star_ticks"`
	WingsTicks  int     `yaml:"wings_ticks"`
	ShieldTicks int     `yaml:"shield_ticks"`
	FloatAmp    float64 `yaml:"float_amplitude"`
	FloatRate   float64 `yaml:"float_rate"`
	StarWeight  float64 `yaml:"star_weight"`
	WingsWeight float64 `yaml:"wings_weight"` // cumulative with star_weight
}

// Dungeon defines the fixed boss room.
type Dungeon struct {
	RoomX      float64 `yaml:"room_x"`
	RoomWidth  float64 `yaml:"room_width"`
	WallWidth  float64 `yaml:"wall_width"`
	FloorDepth float64 `yaml:"floor_depth"`
	EntryX     float64 `yaml:"entry_x"`
	EntryRise  float64 `yaml:"entry_rise"`
	BossX      float64 `yaml:"boss_x"`
	BossHP     int     `yaml:"boss_hp"`
	PipeSnap   float64 `yaml:"pipe_snap"`
}

// Ending defines the victory cutscene.
type Ending struct {
	ActorSize     float64 `yaml:"actor_size"`
	ActorStartX   float64 `yaml:"actor_start_x"` // relative to viewport center
	ActorStopX    float64 `yaml:"actor_stop_x"`  // relative to viewport center
	ActorSpeed    float64 `yaml:"actor_speed"`
	PlayerOffsetX float64 `yaml:"player_offset_x"`
	FlipEvery     int     `yaml:"flip_every"`
	GrowRate      float64 `yaml:"grow_rate"`
	MaxScale      float64 `yaml:"max_scale"`
	DebrisCount   int     `yaml:"debris_count"`
	DebrisSize    float64 `yaml:"debris_size"`
	DebrisSpread  float64 `yaml:"debris_spread"`
	DebrisLift    float64 `yaml:"debris_lift"`
	DebrisMinLift float64 `yaml:"debris_min_lift"`
}

// DifficultyConfig defines the score-driven pacing multiplier
// m = clamp(2^(score/doubling_score), 1, max_multiplier).
type DifficultyConfig struct {
	Enabled       bool    `yaml:"enabled"`
	DoublingScore float64 `yaml:"doubling_score"`
	MaxMultiplier float64 `yaml:"max_multiplier"`
}

// Render defines how world units map to terminal cells.
type Render struct {
	CellWidth  float64 `yaml:"cell_width"`
	CellHeight float64 `yaml:"cell_height"`
	HUDRows    int     `yaml:"hud_rows"`
}

// Input defines keyboard hold emulation. Terminals report key presses
// and auto-repeat but no releases.
type Input struct {
	HoldTicks int `yaml:"hold_ticks"`
}

// Flavor configures the game-over quip generator.
type Flavor struct {
	Endpoint  string `yaml:"endpoint"`
	TimeoutMS int    `yaml:"timeout_ms"`
	MaxWords  int    `yaml:"max_words"`
}

// Timeout returns the request budget of the flavor endpoint.
func (f Flavor) Timeout() time.Duration {
	return time.Duration(f.TimeoutMS) * time.Millisecond
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset maps a CLI string to a preset. Unknown strings yield "".
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s)
	default:
		return ""
	}
}
