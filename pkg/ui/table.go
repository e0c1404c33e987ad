// Package ui renders the breakpoint table for the terminal: a styled table
// for interactive use, a plain one for pipes, and an interactive inspect
// mode for tuning the scale range.
package ui

import (
	"fmt"
	"strings"

	"emuweb/pkg/layout"
)

// tableColumns are the header labels, in render order.
var tableColumns = []string{"SCALE", "MAX-WIDTH", "MAX-HEIGHT", "DISK", "SCREEN"}

func tableRow(bp layout.Breakpoint) []string {
	return []string{
		fmt.Sprintf("%d", bp.Scale),
		fmt.Sprintf("%dpx", bp.MaxWidth),
		fmt.Sprintf("%dpx", bp.MaxHeight),
		fmt.Sprintf("%dpx", bp.DiskWidth),
		fmt.Sprintf("%dx%d", bp.ScreenWidth, bp.ScreenHeight),
	}
}

// Table renders the breakpoint table for g. When styled is false the output
// is plain aligned text, safe for pipes and logs.
func Table(g layout.Geometry, styled bool) string {
	bps := g.Breakpoints()
	if len(bps) == 0 {
		if styled {
			return mutedStyle.Render("no breakpoints: empty scale range") + "\n"
		}
		return "no breakpoints: empty scale range\n"
	}

	rows := make([][]string, 0, len(bps))
	for _, bp := range bps {
		rows = append(rows, tableRow(bp))
	}
	widths := columnWidths(tableColumns, rows)

	var b strings.Builder
	writeRow := func(cells []string, style func(string) string) {
		for i, cell := range cells {
			if i > 0 {
				b.WriteString("  ")
			}
			b.WriteString(style(pad(cell, widths[i])))
		}
		b.WriteString("\n")
	}

	if styled {
		b.WriteString(titleStyle.Render(fmt.Sprintf("Breakpoints %dx%d, scales %d-%d",
			g.ScreenWidth, g.ScreenHeight, g.MinScale, g.MaxScale-1)))
		b.WriteString("\n")
		writeRow(tableColumns, func(s string) string { return headerStyle.Render(s) })
		for _, row := range rows {
			writeRow(row, func(s string) string { return cellStyle.Render(s) })
		}
		return borderStyle.Render(strings.TrimRight(b.String(), "\n")) + "\n"
	}

	writeRow(tableColumns, func(s string) string { return s })
	for _, row := range rows {
		writeRow(row, func(s string) string { return s })
	}
	return b.String()
}

func columnWidths(header []string, rows [][]string) []int {
	widths := make([]int, len(header))
	for i, h := range header {
		widths[i] = len(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}
	return widths
}

func pad(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}
