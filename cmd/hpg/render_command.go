package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"hpg/internal/wallpaper"
)

func newRenderCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "render",
		Short: "Print the canonical hyprpaper config for the profile",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := ctx.configValue()
			text, err := wallpaper.Render(cfg.Profile(), ctx.loggerValue())
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), text)
			return nil
		},
	}
}
