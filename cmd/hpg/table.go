package main

import (
	"strconv"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"hpg/internal/history"
)

// monitorRow is one line of the status monitors table: the declared output,
// its resolved fit and wallpaper path, and whether the file exists.
type monitorRow struct {
	Output    string
	Fit       string
	Wallpaper string
	File      string
}

func renderMonitorTable(rows []monitorRow) string {
	tw := newTableWriter()
	tw.AppendHeader(table.Row{"Output", "Fit", "Wallpaper", "File"})
	for _, row := range rows {
		tw.AppendRow(table.Row{row.Output, row.Fit, row.Wallpaper, row.File})
	}
	return tw.Render()
}

func renderHistoryTable(entries []history.Entry) string {
	tw := newTableWriter()
	tw.AppendHeader(table.Row{"ID", "When", "Mode", "Monitors", "Preloads", "Sent", "Started", "Took"})
	for _, entry := range entries {
		tw.AppendRow(table.Row{
			strconv.FormatInt(entry.ID, 10),
			entry.CreatedAt.Local().Format(time.DateTime),
			string(entry.Mode),
			entry.Monitors,
			entry.Preloads,
			entry.LivePreloads,
			yesNo(entry.DaemonStarted),
			entry.Duration.Truncate(time.Millisecond).String(),
		})
	}
	// Counts and durations read better right-aligned.
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignRight},
		{Number: 4, Align: text.AlignRight},
		{Number: 5, Align: text.AlignRight},
		{Number: 6, Align: text.AlignRight},
		{Number: 8, Align: text.AlignRight},
	})
	return tw.Render()
}

func newTableWriter() table.Writer {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	return tw
}
