package main

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/spf13/cobra"

	"hpg/internal/apply"
	"hpg/internal/history"
	"hpg/internal/hyprpaper"
	"hpg/internal/ipc"
	"hpg/internal/proc"
	"hpg/internal/wallpaper"
)

func newApplyCommand(ctx *commandContext) *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "apply",
		Short: "Render the profile and push it to hyprpaper",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := ctx.configValue()
			logger := ctx.loggerValue()
			profile := cfg.Profile()
			stdout := cmd.OutOrStdout()

			if dryRun {
				text, err := wallpaper.Render(profile, logger)
				if err != nil {
					return err
				}
				fmt.Fprint(stdout, text)
				return nil
			}

			confPath, err := hyprpaper.ConfPath()
			if err != nil {
				return err
			}
			dbPath, lockPath, err := statePaths()
			if err != nil {
				return err
			}

			orch := apply.New(
				confPath,
				hyprpaper.NewProbe(confPath),
				proc.NewController(logger),
				&lazyControlClient{},
				logger,
			).WithLock(lockPath)

			result, err := orch.Apply(profile)
			if err != nil {
				return err
			}

			recordApply(cmd.Context(), dbPath, result, logger)

			fmt.Fprintf(stdout, "Config written to %s\n", result.ConfPath)
			switch result.Mode {
			case apply.ModeDisk:
				fmt.Fprintln(stdout, "Daemon restarted")
			case apply.ModeLive:
				if result.DaemonStarted {
					fmt.Fprintln(stdout, "Daemon was not running, started it")
				}
				fmt.Fprintf(stdout, "Live update pushed: %d monitors, %d preloads sent\n", result.Monitors, result.LivePreloads)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Render the config without writing or contacting the daemon")
	return cmd
}

// recordApply logs the apply in the history store. A broken history database
// does not fail an apply that already succeeded.
func recordApply(ctx context.Context, dbPath string, result *apply.Result, logger *slog.Logger) {
	store, err := history.Open(dbPath)
	if err != nil {
		logger.Warn("history store unavailable", "path", dbPath, "error", err)
		return
	}
	defer store.Close()
	if _, err := store.Record(ctx, result); err != nil {
		logger.Warn("record apply failed", "error", err)
	}
}

// lazyControlClient defers control socket discovery until the orchestrator
// actually takes the live path; disk-only applies never need the socket.
type lazyControlClient struct {
	once   sync.Once
	client *ipc.Client
	err    error
}

func (l *lazyControlClient) resolve() (*ipc.Client, error) {
	l.once.Do(func() {
		socket, err := hyprpaper.SocketPath()
		if err != nil {
			l.err = err
			return
		}
		l.client = ipc.NewClient(socket)
	})
	return l.client, l.err
}

func (l *lazyControlClient) ListLoaded() (map[string]struct{}, error) {
	client, err := l.resolve()
	if err != nil {
		return nil, err
	}
	return client.ListLoaded()
}

func (l *lazyControlClient) Preload(path string) error {
	client, err := l.resolve()
	if err != nil {
		return err
	}
	return client.Preload(path)
}

func (l *lazyControlClient) SetWallpaper(output, fragment string) error {
	client, err := l.resolve()
	if err != nil {
		return err
	}
	return client.SetWallpaper(output, fragment)
}

func (l *lazyControlClient) UnloadAll() error {
	client, err := l.resolve()
	if err != nil {
		return err
	}
	return client.UnloadAll()
}
