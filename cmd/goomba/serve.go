package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/vovakirdan/goomba-arcade/internal/config"
	"github.com/vovakirdan/goomba-arcade/internal/flavor"
	"github.com/vovakirdan/goomba-arcade/internal/games/goomba"
	"github.com/vovakirdan/goomba-arcade/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the game over SSH",
	Long: `Start an SSH server. Every connection plays its own round; all players
share one runs database.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.arcade/host_key

The config file in use is watched; connected players pick up edits at
their next round.

Examples:
  goomba serve                           # Listen on :23234
  goomba serve --ssh :2222               # Listen on port 2222
  goomba serve --host-key ./my_host_key  # Use a specific host key

Players connect with:
  ssh localhost -p 23234`,
	Args: cobra.NoArgs,
	Run:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
	serveCmd.Flags().BoolVar(&flagNoBell, "no-bell", false, "Do not ring players' terminal bells")
}

func runServe(_ *cobra.Command, _ []string) {
	exitOnError(serve())
}

func serve() error {
	logger := newLogger(os.Stderr, "goomba-ssh")

	cfg, source, err := config.LoadGoomba(flagConfig)
	if err != nil {
		return err
	}

	server, err := tui.NewSSHServer(tui.SSHServerConfig{
		Address:     flagSSHAddr,
		HostKeyPath: flagHostKey,
		DBPath:      flagDBPath,
		IdleTimeout: time.Duration(flagIdleTimeout) * time.Minute,
		GameID:      goomba.ID,
		TickRate:    flagFPS,
		HoldTicks:   cfg.Input.HoldTicks,
		Flavor:      flavor.FromConfig(cfg.Flavor),
		MaxWords:    cfg.Flavor.MaxWords,
		Bell:        !flagNoBell,
		Logger:      logger,
	})
	if err != nil {
		return err
	}
	server.UseConfig(cfg, source)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error { return server.Serve(ctx) })

	if source != "" {
		watcher, err := config.NewWatcher(source)
		if err != nil {
			logger.Warn("config hot reload disabled", "err", err)
		} else {
			g.Go(func() error {
				defer watcher.Close()
				return forwardReloads(ctx, watcher, server, logger)
			})
		}
	}

	fmt.Printf("Serving Revenge of the Goomba on %s\n", server.Addr())
	fmt.Println("Press Ctrl+C to stop")
	return g.Wait()
}

// forwardReloads loads every edit of the watched file and hands it to the
// server until ctx ends. Broken edits are logged and skipped.
func forwardReloads(ctx context.Context, w *config.Watcher, server *tui.SSHServer, logger *log.Logger) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		case path, ok := <-w.Events:
			if !ok {
				return nil
			}
			cfg, source, err := config.LoadGoomba(path)
			if err != nil {
				logger.Warn("config reload failed, keeping current", "path", path, "err", err)
				continue
			}
			server.UseConfig(cfg, source)
			logger.Info("config reloaded", "path", source)
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			logger.Warn("config watcher error", "err", err)
		}
	}
}
