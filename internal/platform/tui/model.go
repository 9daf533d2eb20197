package tui

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/goomba-arcade/internal/config"
	"github.com/vovakirdan/goomba-arcade/internal/core"
	"github.com/vovakirdan/goomba-arcade/internal/flavor"
	"github.com/vovakirdan/goomba-arcade/internal/registry"
	"github.com/vovakirdan/goomba-arcade/internal/sound"
	"github.com/vovakirdan/goomba-arcade/internal/storage"
	"github.com/vovakirdan/goomba-arcade/internal/world"
)

// defaultCaptionTimeout bounds a flavor request when Options leaves it unset.
const defaultCaptionTimeout = 3 * time.Second

// Options configure a Model beyond its game and store. The zero value
// gives static flavor text with no bell and no config reloads.
type Options struct {
	Logger         *log.Logger
	Bell           io.Writer // terminal for bell cues; nil disables them
	Flavor         flavor.Generator
	CaptionTimeout time.Duration
	MaxWords       int
	Reloads        <-chan string // paths of edited config files; nil disables reloads
	HoldTicks      int
	ScreenshotDir  string // "" means ~/.arcade/screenshots
}

// Optional game capabilities the platform wires when present.
type (
	soundTarget   interface{ SetSink(world.Sink) }
	logTarget     interface{ SetLogger(*log.Logger) }
	captionTarget interface{ SetCaption(string) }
	bestTarget    interface{ SetHighScore(int) }
	configTarget  interface {
		UseConfig(cfg config.GoombaConfig, source string)
		ConfigSource() string
	}
)

// CaptionMsg delivers the flavor line for a finished run.
type CaptionMsg struct {
	RunID string
	Text  string
}

// ConfigChangedMsg reports an edit to the watched config file.
type ConfigChangedMsg struct {
	Path string
}

// Model is the Bubble Tea model driving one game.
type Model struct {
	game    registry.Game
	screen  *core.Screen
	store   *storage.Store
	config  core.RuntimeConfig
	opts    Options
	logger  *log.Logger
	keys    *KeyMapper
	hold    *HoldTracker
	pressed core.InputFrame
	state   core.GameState

	round     int
	runID     string
	startedAt time.Time
	saved     bool
	quitting  bool
}

// NewModel creates a model for game and wires its optional capabilities.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts Options) Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if opts.Flavor == nil {
		opts.Flavor = flavor.Static{}
	}
	if opts.CaptionTimeout <= 0 {
		opts.CaptionTimeout = defaultCaptionTimeout
	}

	if lt, ok := game.(logTarget); ok {
		lt.SetLogger(logger)
	}
	if st, ok := game.(soundTarget); ok {
		sinks := sound.Multi{sound.LogSink{Logger: logger}}
		if opts.Bell != nil {
			sinks = append(sinks, sound.NewBellSink(opts.Bell))
		}
		st.SetSink(sinks)
	}

	return Model{
		game:    game,
		screen:  core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:   store,
		config:  cfg,
		opts:    opts,
		logger:  logger,
		keys:    NewKeyMapper(),
		hold:    NewHoldTracker(opts.HoldTicks),
		pressed: core.NewInputFrame(),
	}
}

// Init resets the game and starts the tick loop and the reload listener.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.publishHighScore()
	return tea.Batch(tickCmd(m.config.TickRate), waitReload(m.opts.Reloads))
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()

	case CaptionMsg:
		if msg.RunID == m.runID {
			if ct, ok := m.game.(captionTarget); ok {
				ct.SetCaption(msg.Text)
			}
		}
		return m, nil

	case ConfigChangedMsg:
		m.reloadConfig(msg.Path)
		return m, waitReload(m.opts.Reloads)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keys.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}
	if action == core.ActionNone {
		return m, nil
	}
	if IsHeld(action) {
		m.hold.Press(action)
	} else {
		m.pressed.Set(action)
	}
	return m, nil
}

// handleResize follows the terminal size. The world is only rebuilt on
// the title screen so a round in progress is never lost.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	if !m.state.Playing && !m.state.Finished() {
		m.config.Seed = time.Now().UnixNano()
		m.game.Reset(m.config)
	}
	return m, nil
}

func (m Model) handleTick() (tea.Model, tea.Cmd) {
	frame := core.NewInputFrame()
	for a := range m.pressed.Actions {
		frame.Set(a)
	}
	m.pressed.Clear()
	m.hold.Apply(&frame)

	result := m.game.Step(frame)
	m.state = result.State

	if m.state.Round != m.round {
		m.round = m.state.Round
		m.runID = uuid.NewString()
		m.startedAt = time.Now()
		m.saved = false
		m.logger.Debug("round started", "run", m.runID)
	}

	cmds := []tea.Cmd{tickCmd(m.config.TickRate)}
	if m.state.Finished() && !m.saved && m.runID != "" {
		m.saved = true
		m.saveRun()
		if m.state.GameOver {
			cmds = append(cmds, m.fetchCaption())
		}
	}
	return m, tea.Batch(cmds...)
}

// saveRun records the finished round. Storage failures are logged and the
// game continues.
func (m Model) saveRun() {
	if m.store == nil || m.state.Score <= 0 {
		return
	}
	result := storage.ResultGameOver
	if m.state.Victory {
		result = storage.ResultVictory
	}
	_, err := m.store.SaveRun(storage.Run{
		RunID:      m.runID,
		GameID:     m.game.ID(),
		Score:      m.state.Score,
		Bosses:     m.state.Bosses,
		Result:     result,
		DeathCause: m.state.DeathCause,
		Duration:   time.Since(m.startedAt),
	})
	if err != nil {
		m.logger.Warn("could not save run", "run", m.runID, "err", err)
		return
	}
	m.logger.Info("run saved", "run", m.runID, "score", m.state.Score, "result", result)
	m.publishHighScore()
}

// publishHighScore hands the stored best score to the game.
func (m Model) publishHighScore() {
	bt, ok := m.game.(bestTarget)
	if !ok || m.store == nil {
		return
	}
	best, err := m.store.HighScore(m.game.ID())
	if err != nil {
		m.logger.Warn("could not load high score", "err", err)
		return
	}
	bt.SetHighScore(best)
}

func (m Model) fetchCaption() tea.Cmd {
	gen := m.opts.Flavor
	timeout := m.opts.CaptionTimeout
	maxWords := m.opts.MaxWords
	runID, score, cause := m.runID, m.state.Score, m.state.DeathCause
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		return CaptionMsg{RunID: runID, Text: flavor.Quip(ctx, gen, score, cause, maxWords)}
	}
}

// reloadConfig loads path and hands it to the game. It applies from the
// next round.
func (m Model) reloadConfig(path string) {
	ct, ok := m.game.(configTarget)
	if !ok {
		return
	}
	cfg, source, err := config.LoadGoomba(path)
	if err != nil {
		m.logger.Warn("config reload failed, keeping current", "path", path, "err", err)
		return
	}
	ct.UseConfig(cfg, source)
	m.logger.Info("config reloaded", "path", source)
}

// waitReload waits for the next edited config path.
func waitReload(reloads <-chan string) tea.Cmd {
	if reloads == nil {
		return nil
	}
	return func() tea.Msg {
		path, ok := <-reloads
		if !ok {
			return nil
		}
		return ConfigChangedMsg{Path: path}
	}
}

// saveScreenshot writes the current frame as plain text.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	dir := m.opts.ScreenshotDir
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			m.logger.Warn("screenshot skipped", "err", err)
			return
		}
		dir = filepath.Join(home, ".arcade", "screenshots")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot skipped", "err", err)
		return
	}

	name := fmt.Sprintf("%s_%s.txt", m.game.ID(), time.Now().Format("20060102_150405"))
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "path", path, "err", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// State returns the last state reported by the game.
func (m Model) State() core.GameState { return m.state }

// RunID returns the id of the current round, "" before the first start.
func (m Model) RunID() string { return m.runID }

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program for game on the local terminal.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts Options) error {
	p := tea.NewProgram(NewModel(game, store, cfg, opts), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
