package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"hpg/internal/history"
)

func newHistoryCommand(ctx *commandContext) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recent applies",
		RunE: func(cmd *cobra.Command, args []string) error {
			dbPath, _, err := statePaths()
			if err != nil {
				return err
			}
			store, err := history.Open(dbPath)
			if err != nil {
				return err
			}
			defer store.Close()

			entries, err := store.Recent(cmd.Context(), limit)
			if err != nil {
				return err
			}
			stdout := cmd.OutOrStdout()
			if len(entries) == 0 {
				fmt.Fprintln(stdout, "No applies recorded yet")
				return nil
			}
			fmt.Fprintln(stdout, renderHistoryTable(entries))
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 10, "Number of applies to show")
	return cmd
}
