// Package goomba adapts the side-scrolling world to the arcade game
// contract. It owns the outer screen state (menu, playing, game over,
// victory), translates semantic input, and draws world snapshots into the
// terminal cell buffer.
package goomba

import (
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/goomba-arcade/internal/config"
	"github.com/vovakirdan/goomba-arcade/internal/core"
	"github.com/vovakirdan/goomba-arcade/internal/registry"
	"github.com/vovakirdan/goomba-arcade/internal/world"
)

// ID is the registry key of the game.
const ID = "goomba"

func init() {
	registry.Register(ID, func() registry.Game { return New() })
}

var (
	configPath       string
	difficultyPreset config.DifficultyPreset
)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names clear it.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParsePreset(preset)
}

// Minimum terminal size the game can be played at.
const (
	minScreenW = 40
	minScreenH = 12
)

// Game implements registry.Game on top of a world.World.
type Game struct {
	runtime core.RuntimeConfig
	cfg     config.GoombaConfig
	source  string // "" for the embedded defaults
	loaded  bool

	world  *world.World
	rng    *rand.Rand // draws one world seed per round
	screen world.ScreenMode
	paused bool
	round  int

	caption string
	best    int
	sink    world.Sink
	logger  *log.Logger

	tooSmall bool
}

// New creates a game on the title screen. Reset must be called before use.
func New() *Game {
	return &Game{
		cfg:    config.DefaultGoombaConfig(),
		logger: log.New(io.Discard),
	}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string { return ID }

// Title returns the display name for this game.
func (g *Game) Title() string { return "Revenge of the Goomba" }

// SetSink routes world sound events to s. Takes effect on the next Reset.
func (g *Game) SetSink(s world.Sink) { g.sink = s }

// SetLogger sets the logger handed to the world. Takes effect on the next Reset.
func (g *Game) SetLogger(l *log.Logger) {
	if l != nil {
		g.logger = l
	}
}

// SetCaption sets the flavor line shown on the result screens.
func (g *Game) SetCaption(text string) { g.caption = text }

// SetHighScore sets the stored best score shown on the title and result
// screens.
func (g *Game) SetHighScore(score int) { g.best = score }

// ConfigSource reports where the active configuration was loaded from.
func (g *Game) ConfigSource() string { return g.source }

// UseConfig replaces the active configuration. It applies from the next
// Reset, so a round in progress keeps its rules.
func (g *Game) UseConfig(cfg config.GoombaConfig, source string) {
	if difficultyPreset != "" {
		config.ApplyGoombaPreset(&cfg, difficultyPreset)
	}
	g.cfg = cfg
	g.source = source
	g.loaded = true
}

// Reset loads configuration and builds a fresh world sized to the screen.
// The game returns to the title screen. runtime.Seed seeds the session;
// every round after it gets its own layout.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	seed := runtime.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	g.rng = rand.New(rand.NewSource(seed))
	if !g.loaded {
		cfg, source, err := config.LoadGoomba(configPath)
		if err != nil {
			g.logger.Warn("config load failed, using defaults", "err", err)
			cfg, source = config.DefaultGoombaConfig(), ""
		}
		g.UseConfig(cfg, source)
	}
	g.build()
	g.screen = world.ScreenMenu
}

// build recreates the world for the current screen and configuration.
func (g *Game) build() {
	g.tooSmall = g.runtime.ScreenW < minScreenW || g.runtime.ScreenH < minScreenH
	g.paused = false
	g.caption = ""

	opts := []world.Option{
		world.WithLogger(g.logger),
		world.WithRand(world.NewRand(g.rng.Int63())),
	}
	if g.sink != nil {
		opts = append(opts, world.WithSink(g.sink))
	}
	w, h := g.viewport()
	g.world = world.New(g.cfg, w, h, opts...)
}

// viewport returns the playfield size in world units.
func (g *Game) viewport() (float64, float64) {
	r := g.cfg.Render
	rows := max(g.runtime.ScreenH-r.HUDRows, 1)
	return float64(g.runtime.ScreenW) * r.CellWidth, float64(rows) * r.CellHeight
}

// Step advances the screen controller and, while playing, the world.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	switch g.screen {
	case world.ScreenMenu:
		if in.Has(core.ActionConfirm) || in.Has(core.ActionJump) {
			g.start()
		}

	case world.ScreenPlaying:
		if in.Has(core.ActionRestart) {
			g.start()
			break
		}
		if in.Has(core.ActionPause) {
			g.paused = !g.paused
		}
		if g.paused {
			break
		}
		switch g.world.Advance(world.ScreenPlaying, toWorldInput(in)) {
		case world.TransitionGameOver:
			g.screen = world.ScreenGameOver
		case world.TransitionVictory:
			g.screen = world.ScreenVictory
		}

	case world.ScreenGameOver, world.ScreenVictory:
		if in.Has(core.ActionRestart) || in.Has(core.ActionConfirm) {
			g.start()
			break
		}
		if in.Has(core.ActionBack) {
			g.world.NewGame()
			g.caption = ""
			g.screen = world.ScreenMenu
			break
		}
		g.world.Advance(g.screen, world.Input{})
	}

	return core.StepResult{State: g.State()}
}

// start begins a new round. A configuration swapped in since the last
// round takes effect here.
func (g *Game) start() {
	g.round++
	g.build()
	g.screen = world.ScreenPlaying
}

func toWorldInput(in core.InputFrame) world.Input {
	return world.Input{
		Left:  in.Has(core.ActionLeft),
		Right: in.Has(core.ActionRight),
		Jump:  in.Has(core.ActionJump),
		Down:  in.Has(core.ActionDown),
	}
}

// Screen returns the outer screen currently shown.
func (g *Game) Screen() world.ScreenMode { return g.screen }

// World exposes the simulation for inspection.
func (g *Game) World() *world.World { return g.world }

// State reports the round to the platform.
func (g *Game) State() core.GameState {
	if g.world == nil {
		return core.GameState{}
	}
	return core.GameState{
		Score:      g.world.Score(),
		Lives:      g.world.Lives(),
		Shield:     g.world.HasShield(),
		GameOver:   g.screen == world.ScreenGameOver,
		Victory:    g.screen == world.ScreenVictory,
		DeathCause: g.world.DeathCause(),
		Bosses:     g.world.BossesDefeated(),
		Playing:    g.screen == world.ScreenPlaying,
		Paused:     g.paused,
		Round:      g.round,
	}
}
