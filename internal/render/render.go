// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) 2023-2026 Nicholas R. Perez

// Package render formats truth tables as bordered text grids.
package render

import (
	"strings"

	"nickandperla.net/truthtab/internal/table"
)

const cellWidth = 7

// Grid returns the bordered table: a header row of identifier names followed
// by OUT, a divider, then one 0/1 data row per assignment.
func Grid(t *table.Table) string {
	headings := make([]string, 0, len(t.Identifiers)+1)
	for _, id := range t.Identifiers {
		headings = append(headings, string(id))
	}
	headings = append(headings, "OUT")

	border := strings.Repeat("-", (cellWidth+1)*len(headings)-1)

	var sb strings.Builder
	sb.WriteString(" " + border + " \n")
	for _, h := range headings {
		sb.WriteString("|")
		sb.WriteString(center(h, cellWidth))
	}
	sb.WriteString("|\n|" + border + "|")
	for _, row := range t.Rows {
		sb.WriteString("\n")
		for _, v := range row.Inputs {
			sb.WriteString("|")
			sb.WriteString(center(bit(v), cellWidth))
		}
		sb.WriteString("|")
		sb.WriteString(center(bit(row.Out), cellWidth))
		sb.WriteString("|")
	}
	sb.WriteString("\n " + border)
	return sb.String()
}

// Render returns the grid preceded by a title line echoing the source
// expression, centered over the table.
func Render(expression string, t *table.Table) string {
	width := (cellWidth + 1) * (len(t.Identifiers) + 1)
	title := center(expression+" = OUT", width+2)
	return strings.TrimRight(title, " ") + "\n" + Grid(t)
}

func bit(v bool) string {
	if v {
		return "1"
	}
	return "0"
}

// center pads s to width, favoring the right side when the padding is odd.
func center(s string, width int) string {
	pad := width - len(s)
	if pad <= 0 {
		return s
	}
	left := pad / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", pad-left)
}
