// goomba is a side-scrolling platformer for the terminal, where the
// goomba finally gets to stomp back.
//
// Usage:
//
//	goomba                   - Play (same as goomba play)
//	goomba play              - Play in this terminal
//	goomba serve             - Serve the game over SSH
//	goomba scores            - Show the best runs
//	goomba list              - List registered games
//	goomba config            - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>          - Tick rate (default: 60)
//	--seed <value>        - RNG seed for a reproducible world
//	--db <path>           - Runs database (default: ~/.arcade/goomba.db)
//	--config <path>       - Custom goomba.yaml
//	--difficulty <preset> - easy, normal, hard or fixed
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/goomba-arcade/internal/games/goomba"
)

var (
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLogFile    string
	flagDebug      bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "goomba",
	Short: "Revenge of the Goomba - stomp back, in your terminal",
	Long: `Revenge of the Goomba is an endless side-scroller played in the terminal.
Run right, stomp what walks, dodge falling pianos, slip into golden pipes
and defeat three bosses to see how the story ends.

Examples:
  goomba
  goomba play --difficulty hard
  goomba play --config ./my-goomba.yaml --log-file /tmp/goomba.log
  goomba serve --ssh :2222
  goomba scores --recent`,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		goomba.SetConfigPath(flagConfig)
		goomba.SetDifficultyPreset(flagDifficulty)
	},
	Run: runPlay,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	pf.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	pf.StringVar(&flagDBPath, "db", "~/.arcade/goomba.db", "Path to runs database")
	pf.StringVar(&flagConfig, "config", "", "Path to custom goomba.yaml")
	pf.StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	pf.StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	pf.BoolVar(&flagDebug, "debug", false, "Log at debug level")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(configCmd)
}

// newLogger creates the CLI logger writing to w.
func newLogger(w io.Writer, prefix string) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
	if flagDebug {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}

// openLogFile returns a logger for --log-file, or a discarding one when
// the flag is unset. The alt screen owns the terminal while playing.
func openLogFile() (*log.Logger, func(), error) {
	if flagLogFile == "" {
		return log.New(io.Discard), func() {}, nil
	}
	f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	return newLogger(f, "goomba"), func() { f.Close() }, nil
}

func exitOnError(err error) {
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
