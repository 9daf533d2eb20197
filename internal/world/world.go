// Package world is the side-scrolling simulation engine: chunk generation,
// movement, combat, and the overworld/dungeon/ending state machine. It is
// single-threaded; callers advance it one tick at a time and read
// Snapshots for rendering.
package world

import (
	"io"
	"math"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/goomba-arcade/internal/config"
	"github.com/vovakirdan/goomba-arcade/internal/core"
)

// Mode is the world's sub-state.
type Mode int

const (
	ModeOverworld Mode = iota
	ModeDungeon
	ModeEnding
)

func (m Mode) String() string {
	switch m {
	case ModeOverworld:
		return "overworld"
	case ModeDungeon:
		return "dungeon"
	case ModeEnding:
		return "ending"
	default:
		return "unknown"
	}
}

// Death causes reported when the last life is lost.
const (
	CauseHazard = "Crushed by Piano"
	CauseBoss   = "Defeated by Boss"
	CauseEnemy  = "Killed by Enemy"
)

// spawnDrop is the gap the player falls on (re)spawn before settling on the pipe.
const spawnDrop = 5

// savedCoords is the overworld position captured on dungeon entry.
type savedCoords struct {
	camX     float64
	playerX  float64
	frontier float64
}

// World owns all simulation state.
type World struct {
	cfg  config.GoombaConfig
	diff *config.DifficultyManager
	rng  Rand
	sink Sink
	log  *log.Logger

	width   float64 // viewport, world units
	height  float64
	groundY float64

	player      Player
	enemies     Pool[Enemy]
	platforms   Pool[Platform]
	powerUps    Pool[PowerUp]
	decorations Pool[Decoration]
	particles   Pool[Particle]
	actors      Pool[Actor]

	camX        float64
	frontier    float64
	distance    float64
	frame       int
	mult        float64
	coyote      int
	jumpLatched bool
	onIce       bool

	score      int
	lives      int
	deathCause string
	bosses     int // defeated this round
	bossActive bool
	over       bool

	mode        Mode
	dungeonBoss EnemyKind
	saved       savedCoords

	pending Transition
}

// Option configures a World.
type Option func(*World)

// WithRand sets the random source.
func WithRand(r Rand) Option {
	return func(w *World) { w.rng = r }
}

// WithSink sets the sound-event sink.
func WithSink(s Sink) Option {
	return func(w *World) { w.sink = s }
}

// WithLogger sets the logger for lifecycle events.
func WithLogger(l *log.Logger) Option {
	return func(w *World) { w.log = l }
}

// New creates a world for a viewport of width x height world units and
// starts a new game.
func New(cfg config.GoombaConfig, width, height float64, opts ...Option) *World {
	w := &World{
		cfg:    cfg,
		diff:   config.NewDifficultyManager(cfg.Difficulty),
		width:  width,
		height: height,
		mult:   1,
	}
	for _, opt := range opts {
		opt(w)
	}
	if w.rng == nil {
		w.rng = NewRand(time.Now().UnixNano())
	}
	if w.sink == nil {
		w.sink = nopSink{}
	}
	if w.log == nil {
		w.log = log.New(io.Discard)
	}
	w.groundY = height - cfg.Physics.GroundMargin
	w.NewGame()
	return w
}

// NewGame fully resets score, lives, shield, boss tally and the world.
func (w *World) NewGame() {
	w.reset(true)
	w.compact()
	w.log.Info("new game", "lives", w.lives, "viewport", w.width, "ground", w.groundY)
}

// reset rebuilds the level around the spawn pipe. A partial reset keeps
// score, lives and boss tally.
func (w *World) reset(full bool) {
	w.sink.Play(SoundBossThemeStop)

	w.enemies.Clear()
	w.platforms.Clear()
	w.powerUps.Clear()
	w.decorations.Clear()
	w.particles.Clear()
	w.actors.Clear()

	w.camX = 0
	w.frontier = 0
	w.distance = 0
	w.bossActive = false
	w.mode = ModeOverworld
	w.coyote = 0
	w.jumpLatched = false
	w.onIce = false

	if full {
		w.score = 0
		w.lives = w.cfg.Player.Lives
		w.bosses = 0
		w.deathCause = ""
		w.over = false
		w.frame = 0
	}

	pc := w.cfg.Player
	pipeW := w.cfg.Generation.PipeWidth
	w.platforms.Add(Platform{
		X: pc.SpawnPipeX, Y: w.groundY - pc.SpawnPipeH,
		W: pipeW, H: pc.SpawnPipeH,
		Surface: SurfacePipe,
	})

	w.player = Player{
		Body: Body{
			X:           pc.SpawnPipeX + spawnDrop,
			Y:           w.groundY - pc.SpawnPipeH - pc.Size - spawnDrop,
			W:           pc.Size,
			H:           pc.Size,
			Grounded:    true,
			FacingRight: true,
		},
		Jumps: pc.JumpCharges,
	}

	start := w.cfg.Generation.StartOffset
	w.generateChunk(start, w.width+start)
	w.frontier = w.width + start
}

// compact reclaims removed pool slots. Runs between ticks only.
func (w *World) compact() {
	w.enemies.Compact()
	w.platforms.Compact()
	w.powerUps.Compact()
	w.decorations.Compact()
	w.particles.Compact()
	w.actors.Compact()
}

func (w *World) addScore(n int) {
	if n > 0 {
		w.score += n
	}
}

// Score returns the accumulated score.
func (w *World) Score() int { return w.score }

// Lives returns the remaining lives.
func (w *World) Lives() int { return w.lives }

// HasShield reports whether the player holds a shield.
func (w *World) HasShield() bool { return w.player.Shield }

// DeathCause returns why the last life was lost, or "".
func (w *World) DeathCause() string { return w.deathCause }

// BossesDefeated returns the overworld boss tally.
func (w *World) BossesDefeated() int { return w.bosses }

// BossActive reports whether an overworld boss is on the field.
func (w *World) BossActive() bool { return w.bossActive }

// Mode returns the current sub-state.
func (w *World) Mode() Mode { return w.mode }

// Distance returns the furthest x the player has reached this life.
func (w *World) Distance() float64 { return w.distance }

// Over reports whether the round ended in game over.
func (w *World) Over() bool { return w.over }

// Multiplier returns the difficulty multiplier of the last tick.
func (w *World) Multiplier() float64 { return w.mult }

// GroundY returns the ground line in world units.
func (w *World) GroundY() float64 { return w.groundY }

func (w *World) spawnEnemy(x, y float64, kind EnemyKind) {
	if w.mode != ModeDungeon && x < w.cfg.Enemies.SafeRadius {
		return
	}
	ec := w.cfg.Enemies
	vx := -(w.rng.Float64()*ec.BaseSpeed + 1)
	w.enemies.Add(newEnemy(kind, x, y, ec.Size, vx))
}

func (w *World) spawnBoss(x, y float64, variant int) {
	ec := w.cfg.Enemies
	w.bossActive = true
	w.sink.Play(SoundBossThemeStart)
	w.enemies.Add(newBoss(KindBoss, x, y, ec.BossSize, -ec.BossSpeed, ec.BossBaseHP+variant, variant))
	w.log.Info("boss spawned", "variant", variant, "x", x)
}

func (w *World) spawnHazard() {
	ec := w.cfg.Enemies
	x := w.player.X + (w.rng.Float64()*2*ec.HazardSpread - ec.HazardSpread)
	e := newEnemy(KindHazard, x, ec.HazardStartY, ec.HazardSize, 0)
	e.VY = ec.HazardFallSpeed
	w.enemies.Add(e)
}

func (w *World) randomPowerUpKind() PowerUpKind {
	pc := w.cfg.PowerUps
	r := w.rng.Float64()
	switch {
	case r < pc.StarWeight:
		return PowerStar
	case r < pc.WingsWeight:
		return PowerWings
	default:
		return PowerShield
	}
}

func (w *World) spawnPowerUp(x, y float64, kind PowerUpKind) {
	size := w.cfg.PowerUps.Size
	w.powerUps.Add(PowerUp{
		X: x, Y: y, W: size, H: size,
		Kind:  kind,
		BaseY: y,
		Phase: w.rng.Float64() * 2 * math.Pi,
	})
}

func (w *World) spawnParticles(x, y float64, color core.Color, count int) {
	spread := w.cfg.Physics.ParticleSpread
	for range count {
		w.particles.Add(Particle{
			X: x, Y: y,
			VX:    (w.rng.Float64() - 0.5) * spread,
			VY:    (w.rng.Float64() - 0.5) * spread,
			Life:  1,
			Size:  w.rng.Float64()*6 + 4,
			Color: color,
		})
	}
}
