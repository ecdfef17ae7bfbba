package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"hpg/internal/fileutil"
	"hpg/internal/hyprpaper"
	"hpg/internal/proc"
	"hpg/internal/wallpaper"
)

func newStatusCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show daemon and profile status",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := ctx.configValue()
			logger := ctx.loggerValue()
			stdout := cmd.OutOrStdout()
			colorize := shouldColorize(stdout)

			printSection(stdout, "Daemon", colorize)

			running, err := proc.NewController(logger).IsRunning()
			if err != nil {
				return err
			}
			if running {
				printStatus(stdout, "hyprpaper", statusOK, "Running", colorize)
			} else {
				printStatus(stdout, "hyprpaper", statusWarn, "Not running (applies will start it)", colorize)
			}

			confPath, err := hyprpaper.ConfPath()
			if err != nil {
				return err
			}
			if !fileutil.FileExists(confPath) {
				printStatus(stdout, "Config", statusWarn, confPath+" (absent)", colorize)
				printStatus(stdout, "Live control", statusInfo, "Unknown until first apply", colorize)
			} else {
				printStatus(stdout, "Config", statusOK, confPath, colorize)
				diskIPC, probeErr := hyprpaper.NewProbe(confPath).IPCEnabled()
				if probeErr != nil {
					return probeErr
				}
				if diskIPC {
					printStatus(stdout, "Live control", statusOK, "Enabled on disk", colorize)
				} else {
					printStatus(stdout, "Live control", statusWarn, "Disabled on disk (applies restart the daemon)", colorize)
				}
			}
			printStatus(stdout, "Live requested", statusInfo, yesNo(cfg.IPCRequested()), colorize)
			fmt.Fprintln(stdout)

			printSection(stdout, "Monitors", colorize)
			profile := cfg.Profile()
			rows := make([]monitorRow, 0, len(profile.Monitors))
			for _, m := range profile.Monitors {
				resolved := wallpaper.Resolve(m, profile.Prefix)
				exists := "missing"
				if fileutil.FileExists(resolved) {
					exists = "ok"
				}
				rows = append(rows, monitorRow{
					Output:    m.Output,
					Fit:       m.Fit().String(),
					Wallpaper: resolved,
					File:      exists,
				})
			}
			fmt.Fprintln(stdout, renderMonitorTable(rows))
			return nil
		},
	}
}
