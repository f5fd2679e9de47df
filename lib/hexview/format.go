// Copyright 2026 The Hexkit Authors
// SPDX-License-Identifier: Apache-2.0

package hexview

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Style holds the lipgloss styles used by [Format]. The zero value
// renders unstyled text, which is what the CLI uses when stdout is
// not a terminal.
type Style struct {
	// Offset styles the left offset column.
	Offset lipgloss.Style

	// Hex styles hex digit cells.
	Hex lipgloss.Style

	// Printable styles ASCII-pane characters in the printable range.
	Printable lipgloss.Style

	// NonPrintable styles the "." placeholder cells.
	NonPrintable lipgloss.Style

	// Highlight styles the single highlighted byte in both panes.
	Highlight lipgloss.Style

	// Marker styles the truncation and no-data markers.
	Marker lipgloss.Style
}

// Format renders the view as the classic hexdump layout: offset, hex
// cells with a half-row gap after the 8th column, and the ASCII pane.
// highlight is a byte index ([NoHighlight] for none); the matching
// cell in both panes gets the highlight style. The ASCII pane renders
// raw characters — the markup escaping in [Cell.Char] is for
// markup-capable presenters, not terminals.
func Format(view View, style Style, highlight int) string {
	if view.Empty() {
		return style.Marker.Render("(no data)") + "\n"
	}

	var output strings.Builder
	for _, row := range view.Rows {
		output.WriteString(style.Offset.Render(row.OffsetLabel()))
		output.WriteString("  ")

		for column := 0; column < view.BytesPerRow; column++ {
			if column == 8 && view.BytesPerRow >= 8 {
				output.WriteByte(' ')
			}
			if column < len(row.Bytes) {
				cell := fmt.Sprintf("%02X", row.Bytes[column])
				if row.Offset+column == highlight {
					output.WriteString(style.Highlight.Render(cell))
				} else {
					output.WriteString(style.Hex.Render(cell))
				}
			} else {
				output.WriteString("  ")
			}
			output.WriteByte(' ')
		}

		if view.ShowASCII {
			output.WriteString(" |")
			for column, b := range row.Bytes {
				var cell string
				var cellStyle lipgloss.Style
				if printable(b) {
					cell = string(b)
					cellStyle = style.Printable
				} else {
					cell = "."
					cellStyle = style.NonPrintable
				}
				if row.Offset+column == highlight {
					cellStyle = style.Highlight
				}
				output.WriteString(cellStyle.Render(cell))
			}
			output.WriteByte('|')
		}
		output.WriteByte('\n')
	}

	if view.Truncated {
		marker := fmt.Sprintf("... (%d more bytes not shown)", view.Omitted())
		output.WriteString(style.Marker.Render(marker))
		output.WriteByte('\n')
	}
	return output.String()
}
