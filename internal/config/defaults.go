package config

import (
	_ "embed"
)

//go:embed defaults/goomba.yaml
var defaultGoombaYAML []byte

// DefaultGoombaConfig returns the built-in configuration. It mirrors
// defaults/goomba.yaml and is used when the embedded file cannot be parsed.
func DefaultGoombaConfig() GoombaConfig {
	return GoombaConfig{
		Physics: Physics{
			Gravity:        0.6,
			Friction:       0.85,
			IceFriction:    0.98,
			JumpImpulse:    -13,
			RunAccel:       1.5,
			BounceFactor:   1.5,
			GroundMargin:   40,
			CameraLead:     1.0 / 3.0,
			CameraEase:     0.1,
			ParticleDecay:  0.05,
			ParticleSpread: 12,
		},
		Player: Player{
			Size:          48,
			Lives:         3,
			JumpCharges:   2,
			CoyoteTicks:   10,
			LandTolerance: 4,
			LandInset:     5,
			LandReach:     15,
			SpawnPipeX:    100,
			SpawnPipeH:    80,
		},
		Enemies: Enemies{
			Size:              48,
			BaseSpeed:         3,
			WanderChance:      0.01,
			WanderFactor:      2.5,
			SafeRadius:        300,
			BossSize:          115,
			BossSpeed:         2,
			BossBaseHP:        2,
			BossHopChance:     0.02,
			BossHopFactor:     1.2,
			BossKnockback:     1.5,
			FlyerBob:          2,
			FlyerBobRate:      0.05,
			HazardSize:        96,
			HazardChance:      0.0004,
			HazardSpread:      200,
			HazardStartY:      -200,
			HazardFallSpeed:   10,
			HazardGravityMult: 1.5,
		},
		Generation: Generation{
			BossMinDistance: 2000,
			BossInterval:    3000,
			BossOffset:      400,
			MaxBosses:       3,
			StartOffset:     500,
			Lookahead:       200,
			CleanupMargin:   200,

			HillChance:  0.7,
			CloudChance: 0.6,

			GapChance:      0.2,
			GapWidth:       150,
			PipeChance:     0.18,
			PlatformChance: 0.6,
			PipeWidth:      60,
			PipeMinHeight:  60,
			PipeMaxHeight:  100,
			PipeStride:     150,
			MovingChance:   0.4,
			GoldChance:     0.1,
			EmptyStride:    100,

			PlatformMinRise:  100,
			PlatformMaxRise:  300,
			PlatformMinWidth: 100,
			PlatformMaxWidth: 250,
			PlatformHeight:   32,
			PlatformGap:      50,
			GhostChance:      0.06,
			GhostPeriod:      300,
			GhostBlinkAt:     120,
			GhostVanishAt:    180,
			GhostPhaseMax:    100,
			PipeMinSpeed:     0.5,
			PipeSpeedRange:   1,
			PipeTravelFloor:  20,
			IceChance:        0.2,
			BouncyChance:     0.2,
			HostEnemyChance:  0.4,
			HostPowerChance:  0.1,
			HostCoinChance:   0.4,

			UpperChance:      0.4,
			UpperRise:        280,
			UpperStride:      250,
			BlockChance:      0.5,
			BlockWidth:       100,
			FlyerChance:      0.3,
			FlyerRise:        350,
			GroundStride:     500,
			GroundEnemyGate:  0.5,
			GroundCoinChance: 0.4,
			GroundCoinRise:   60,
		},
		Combat: Combat{
			StompThreshold:  30,
			StompRebound:    -10,
			HitInvincible:   60,
			ShieldKnockX:    10,
			ShieldKnockY:    -8,
			EnemyScore:      50,
			BossScore:       1000,
			DungeonBonus:    2000,
			RewardPowerUps:  5,
			RewardSpread:    50,
			RewardRise:      50,
			BossesToVictory: 3,
		},
		PowerUps: PowerUps{
			Size:        32,
			CoinScore:   10,
			PowerScore:  100,
			StarTicks:   600,
			WingsTicks:  900,
			ShieldTicks: 1200,
			FloatAmp:    5,
			FloatRate:   0.1,
			StarWeight:  0.3,
			WingsWeight: 0.6,
		},
		Dungeon: Dungeon{
			RoomX:      -1000,
			RoomWidth:  800,
			WallWidth:  40,
			FloorDepth: 40,
			EntryX:     100,
			EntryRise:  100,
			BossX:      400,
			BossHP:     5,
			PipeSnap:   5,
		},
		Ending: Ending{
			ActorSize:     96,
			ActorStartX:   300,
			ActorStopX:    50,
			ActorSpeed:    3,
			PlayerOffsetX: -200,
			FlipEvery:     60,
			GrowRate:      0.02,
			MaxScale:      3,
			DebrisCount:   20,
			DebrisSize:    24,
			DebrisSpread:  15,
			DebrisLift:    15,
			DebrisMinLift: 5,
		},
		Difficulty: DifficultyConfig{
			Enabled:       true,
			DoublingScore: 2000,
			MaxMultiplier: 3.5,
		},
		Render: Render{
			CellWidth:  10,
			CellHeight: 25,
			HUDRows:    1,
		},
		Input: Input{
			HoldTicks: 10,
		},
		Flavor: Flavor{
			TimeoutMS: 3000,
			MaxWords:  20,
		},
	}
}
