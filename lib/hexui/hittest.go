// Copyright 2026 The Hexkit Authors
// SPDX-License-Identifier: Apache-2.0

package hexui

import "github.com/hexkit-project/hexkit/lib/hexview"

// Layout metrics matching hexview.Format's output: an 8-digit offset
// label, two spaces, three columns per hex cell ("XX "), one extra
// gap column before the 9th cell, then " |" ahead of the ASCII pane.
const (
	offsetWidth  = 8
	offsetGap    = 2
	hexCellWidth = 3
)

// hexPaneStart is the screen column of the first hex cell.
const hexPaneStart = offsetWidth + offsetGap

// halfRowGap returns the extra column inserted before the given cell
// when the layout has an interior half-row break. The break only
// exists between columns, so rows of exactly 8 bytes have none.
func halfRowGap(bytesPerRow, column int) int {
	if bytesPerRow > 8 && column >= 8 {
		return 1
	}
	return 0
}

// asciiPaneStart returns the screen column of the first ASCII cell.
func asciiPaneStart(bytesPerRow int) int {
	return hexPaneStart + hexCellWidth*bytesPerRow + halfRowGap(bytesPerRow, bytesPerRow) + 2
}

// hitTest maps a screen coordinate inside the dump body to a byte
// index. x and y are content-relative (the caller subtracts the
// header height and adds the scroll offset to y before calling).
// Returns hexview.NoHighlight when the coordinate does not land on a
// byte in either pane — that is what clears the highlight when the
// cursor leaves.
func hitTest(view hexview.View, x, y int) int {
	if y < 0 || y >= len(view.Rows) {
		return hexview.NoHighlight
	}

	// Hex pane: each cell is two digits plus a trailing space; the
	// space does not count as part of the cell.
	for column := 0; column < view.BytesPerRow; column++ {
		cellX := hexPaneStart + hexCellWidth*column + halfRowGap(view.BytesPerRow, column)
		if x >= cellX && x < cellX+2 {
			if index, ok := view.Index(hexview.Position{Row: y, Column: column}); ok {
				return index
			}
			return hexview.NoHighlight
		}
	}

	// ASCII pane: one column per byte.
	if view.ShowASCII {
		column := x - asciiPaneStart(view.BytesPerRow)
		if index, ok := view.Index(hexview.Position{Row: y, Column: column}); ok {
			return index
		}
	}
	return hexview.NoHighlight
}
