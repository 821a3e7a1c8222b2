/*
Copyright 2026 The Benchtab Authors
SPDX-License-Identifier: Apache-2.0
*/

package report

import (
	"bytes"
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/renderer"
	"github.com/olekukonko/tablewriter/tw"
)

// newSummaryTable creates a table writer with the markdown formatting shared
// by all summary output.
func newSummaryTable(headers []string, w io.Writer) *tablewriter.Table {
	cfg := tablewriter.Config{
		Header: tw.CellConfig{
			Alignment:  tw.CellAlignment{Global: tw.AlignLeft},
			Formatting: tw.CellFormatting{AutoFormat: tw.Off},
		},
		Row: tw.CellConfig{
			Alignment: tw.CellAlignment{Global: tw.AlignLeft},
		},
		Behavior: tw.Behavior{TrimSpace: tw.Off},
	}
	return tablewriter.NewTable(w,
		tablewriter.WithConfig(cfg),
		tablewriter.WithHeader(headers),
		tablewriter.WithRenderer(renderer.NewBlueprint()),
		tablewriter.WithRendition(tw.Rendition{
			Symbols: tw.NewSymbols(tw.StyleMarkdown),
			Borders: tw.Border{
				Left:   tw.On,
				Top:    tw.Off,
				Right:  tw.On,
				Bottom: tw.Off,
			},
		}),
		tablewriter.WithRowAutoWrap(tw.WrapNone),
	)
}

// renderMarkdown emits the averaged scores and totals as a markdown table,
// for quick inspection without running a LaTeX toolchain. It applies the same
// normalization and formatting rules as the LaTeX renderer but only the
// average cluster.
func renderMarkdown(entries []entry) string {
	headers := []string{"Model", "Prompt", "Temp"}
	for _, m := range metrics {
		headers = append(headers, m.abbr)
	}
	headers = append(headers, "Total")

	var buf bytes.Buffer
	table := newSummaryTable(headers, &buf)
	for _, e := range entries {
		row := []string{e.label, e.prompt, formatTemperature(e.temperature)}
		for _, value := range e.scores[0] {
			row = append(row, fmt.Sprintf("%.2f", value))
		}
		row = append(row, fmt.Sprintf("%.2f", e.total))
		_ = table.Append(row)
	}
	_ = table.Render()
	return buf.String()
}
