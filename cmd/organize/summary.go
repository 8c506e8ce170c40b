package main

import (
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/fileorg/file-organizer/internal/model"
)

var summaryOrder = []model.Action{
	model.ActionMoved,
	model.ActionCopied,
	model.ActionSkipped,
	model.ActionSimulated,
	model.ActionFailed,
}

// renderSummary renders a per-action tally of the run's outcomes
func renderSummary(outcomes []model.Outcome) string {
	counts := make(map[model.Action]int)
	for _, outcome := range outcomes {
		counts[outcome.Action]++
	}

	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"Result", "Files"})

	for _, action := range summaryOrder {
		if counts[action] == 0 {
			continue
		}
		tw.AppendRow(table.Row{action.String(), counts[action]})
	}
	tw.AppendFooter(table.Row{"Total", len(outcomes)})

	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignLeft, AlignHeader: text.AlignLeft},
		{Number: 2, Align: text.AlignRight, AlignHeader: text.AlignLeft, AlignFooter: text.AlignRight},
	})

	return tw.Render()
}
