package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/goomba-arcade/internal/config"
	"github.com/vovakirdan/goomba-arcade/internal/core"
	"github.com/vovakirdan/goomba-arcade/internal/flavor"
	"github.com/vovakirdan/goomba-arcade/internal/games/goomba"
	"github.com/vovakirdan/goomba-arcade/internal/platform/tui"
	"github.com/vovakirdan/goomba-arcade/internal/storage"
)

var flagNoBell bool

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in this terminal",
	Long: `Start the game in the current terminal.

Controls:
  Left/Right, A/D   - Run
  Space/Up/W        - Jump (again in mid-air while charges last)
  Down/S            - Enter a golden pipe
  Enter             - Start
  P                 - Pause
  R                 - Restart
  Esc/B             - Back to the title screen after a round
  Ctrl+S            - Save a text screenshot
  Q/Ctrl+C          - Quit

Difficulty options:
  easy   - Five lives, gentler pacing cap
  normal - The configured defaults
  hard   - Two lives, faster and steeper pacing
  fixed  - Pacing never speeds up

The config file in use is watched; edits apply from the next round.`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagNoBell, "no-bell", false, "Do not ring the terminal bell on big events")
}

func runPlay(_ *cobra.Command, _ []string) {
	exitOnError(play())
}

func play() error {
	logger, closeLog, err := openLogFile()
	if err != nil {
		return err
	}
	defer closeLog()

	cfg, source, err := config.LoadGoomba(flagConfig)
	if err != nil {
		return err
	}
	game := goomba.New()
	game.UseConfig(cfg, source)

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width, height = w, h
	}
	rt := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open runs database: %v\n", err)
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	opts := tui.Options{
		Logger:         logger,
		Flavor:         flavor.FromConfig(cfg.Flavor),
		CaptionTimeout: cfg.Flavor.Timeout(),
		MaxWords:       cfg.Flavor.MaxWords,
		HoldTicks:      cfg.Input.HoldTicks,
	}
	if !flagNoBell {
		opts.Bell = os.Stderr
	}
	if source != "" {
		watcher, err := config.NewWatcher(source)
		if err != nil {
			logger.Warn("config hot reload disabled", "err", err)
		} else {
			defer watcher.Close()
			opts.Reloads = watcher.Events
			go func() {
				for err := range watcher.Errors {
					logger.Warn("config watcher error", "err", err)
				}
			}()
		}
	}

	logger.Info("starting", "config", sourceName(source), "difficulty", flagDifficulty, "seed", flagSeed)
	if err := tui.Run(game, store, rt, opts); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}

func sourceName(source string) string {
	if source == "" {
		return "embedded defaults"
	}
	return source
}
