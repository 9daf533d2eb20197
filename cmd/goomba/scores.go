package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/goomba-arcade/internal/games/goomba"
	"github.com/vovakirdan/goomba-arcade/internal/platform/tui"
	"github.com/vovakirdan/goomba-arcade/internal/storage"
)

var (
	flagScoresLimit  int
	flagScoresRecent bool
	flagScoresTUI    bool
	flagScoresClear  bool
	flagScoresRun    string
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the best runs",
	Long: `Display stored runs: score, bosses defeated, how the run ended and when.

Examples:
  goomba scores
  goomba scores --recent --limit 20
  goomba scores --tui
  goomba scores --run 0b6f2c1e-4f7a-4c55-9d51-3c0e1f5a8b20
  goomba scores --clear`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	f := scoresCmd.Flags()
	f.IntVar(&flagScoresLimit, "limit", 10, "Number of runs to show")
	f.BoolVar(&flagScoresRecent, "recent", false, "Show the latest runs instead of the best")
	f.BoolVar(&flagScoresTUI, "tui", false, "Open the interactive scoreboard")
	f.BoolVar(&flagScoresClear, "clear", false, "Delete every stored run")
	f.StringVar(&flagScoresRun, "run", "", "Show one run by its id")
}

func runScores(_ *cobra.Command, _ []string) {
	exitOnError(scores())
}

func scores() error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	game := goomba.New()
	switch {
	case flagScoresClear:
		if err := store.ClearRuns(goomba.ID); err != nil {
			return err
		}
		fmt.Println("All runs deleted.")
		return nil

	case flagScoresRun != "":
		return showRun(store, flagScoresRun)

	case flagScoresTUI:
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		return tui.RunScoreboard(store, goomba.ID, game.Title(), width, height)
	}

	var runs []storage.Run
	heading := "High Scores"
	if flagScoresRecent {
		heading = "Recent Runs"
		runs, err = store.RecentRuns(goomba.ID, flagScoresLimit)
	} else {
		runs, err = store.TopRuns(goomba.ID, flagScoresLimit)
	}
	if err != nil {
		return err
	}

	fmt.Printf("%s - %s\n\n", heading, game.Title())
	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'goomba play' to set the first high score!")
		return nil
	}

	fmt.Printf("  %-4s  %10s  %6s  %-9s  %-17s  %-14s  %s\n", "Rank", "Score", "Bosses", "Result", "Cause", "When", "Run")
	fmt.Printf("  %-4s  %10s  %6s  %-9s  %-17s  %-14s  %s\n", "----", "-----", "------", "------", "-----", "----", "---")
	for i, r := range runs {
		fmt.Printf("  %-4d  %10s  %6d  %-9s  %-17s  %-14s  %s\n",
			i+1, humanize.Comma(int64(r.Score)), r.Bosses, resultLabel(r.Result), r.DeathCause,
			humanize.Time(r.CreatedAt), r.RunID)
	}

	stats, err := store.GameStats(goomba.ID)
	if err == nil {
		fmt.Println()
		fmt.Printf("Best: %s over %s runs (%d won)\n",
			humanize.Comma(int64(stats.HighScore)), humanize.Comma(int64(stats.Runs)), stats.Victories)
	}
	return nil
}

func showRun(store *storage.Store, runID string) error {
	r, err := store.RunByID(runID)
	if errors.Is(err, storage.ErrNotFound) {
		return fmt.Errorf("no run with id %s", runID)
	}
	if err != nil {
		return err
	}

	fmt.Printf("Run %s\n\n", r.RunID)
	fmt.Printf("  Score:    %s\n", humanize.Comma(int64(r.Score)))
	fmt.Printf("  Result:   %s\n", resultLabel(r.Result))
	if r.DeathCause != "" {
		fmt.Printf("  Cause:    %s\n", r.DeathCause)
	}
	fmt.Printf("  Bosses:   %d\n", r.Bosses)
	fmt.Printf("  Duration: %s\n", r.Duration.Round(time.Second))
	fmt.Printf("  Played:   %s (%s)\n", r.CreatedAt.Format(time.DateTime), humanize.Time(r.CreatedAt))
	return nil
}

func resultLabel(r storage.Result) string {
	if r == storage.ResultVictory {
		return "victory"
	}
	return "game over"
}
