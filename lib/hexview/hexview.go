// Copyright 2026 The Hexkit Authors
// SPDX-License-Identifier: Apache-2.0

package hexview

import "fmt"

// Defaults for [Config]. Malformed config values fall back to these
// rather than failing.
const (
	DefaultBytesPerRow = 16
	DefaultMaxRows     = 100
)

// NoHighlight is the highlight index meaning "no byte highlighted".
// The highlight is owned by the presentation layer: it tracks a
// single hovered byte per session and resets to NoHighlight when the
// cursor leaves either pane.
const NoHighlight = -1

// Config controls the view layout. The zero value of the numeric
// fields means "use the default"; use [DefaultConfig] for the
// standard layout including the ASCII pane.
type Config struct {
	// BytesPerRow is the number of bytes per output row.
	BytesPerRow int

	// MaxRows caps the number of rows; bytes beyond
	// BytesPerRow*MaxRows are omitted and reported via the
	// truncation fields.
	MaxRows int

	// ShowASCII enables the ASCII pane.
	ShowASCII bool
}

// DefaultConfig returns the standard layout: 16 bytes per row, 100
// rows, ASCII pane on.
func DefaultConfig() Config {
	return Config{
		BytesPerRow: DefaultBytesPerRow,
		MaxRows:     DefaultMaxRows,
		ShowASCII:   true,
	}
}

// normalize replaces non-positive numeric fields with defaults.
func (c Config) normalize() Config {
	if c.BytesPerRow <= 0 {
		c.BytesPerRow = DefaultBytesPerRow
	}
	if c.MaxRows <= 0 {
		c.MaxRows = DefaultMaxRows
	}
	return c
}

// View is a read-only projection of a byte buffer. Invariants:
// DisplayedLength = min(TotalLength, BytesPerRow*MaxRows); Truncated
// = TotalLength > DisplayedLength; Rows partition exactly the first
// DisplayedLength bytes.
type View struct {
	// TotalLength is the input buffer's full length.
	TotalLength int

	// DisplayedLength is the number of bytes covered by Rows.
	DisplayedLength int

	// Truncated reports whether any bytes were omitted.
	Truncated bool

	// Rows holds the displayed chunks in offset order. Empty input
	// produces zero rows.
	Rows []Row

	// BytesPerRow records the layout used, for position mapping.
	BytesPerRow int

	// ShowASCII records whether the ASCII pane was requested.
	ShowASCII bool
}

// Row is one displayed chunk: at most BytesPerRow bytes starting at
// Offset. Never empty.
type Row struct {
	// Offset is the chunk's start index in the input buffer.
	Offset int

	// Bytes is the chunk data (a copy; mutating it does not affect
	// the source buffer).
	Bytes []byte
}

// Cell is the display projection of one byte: its hex digits, a
// markup-safe character for the ASCII pane, and the printable flag so
// presenters can style the two classes distinctly.
type Cell struct {
	// Index is the byte's offset in the input buffer.
	Index int

	// Hex is the byte as two uppercase hex digits.
	Hex string

	// Char is the ASCII-pane text: the byte's character for values
	// 32..126 (with <, >, and & escaped for markup-safe display), or
	// "." otherwise.
	Char string

	// Printable reports whether the byte is in the printable range.
	Printable bool
}

// Position identifies a displayed byte by row and column. The same
// position addresses the byte in both the hex and ASCII panes, which
// is what lets a presenter sync highlights between them.
type Position struct {
	Row    int
	Column int
}

// Render projects buf into a View under config. Pure function: buf
// is copied, config is normalized, and nil/empty input yields the
// distinct empty state (zero rows).
func Render(buf []byte, config Config) View {
	config = config.normalize()

	view := View{
		TotalLength: len(buf),
		BytesPerRow: config.BytesPerRow,
		ShowASCII:   config.ShowASCII,
	}
	if len(buf) == 0 {
		return view
	}

	view.DisplayedLength = len(buf)
	if limit := config.BytesPerRow * config.MaxRows; view.DisplayedLength > limit {
		view.DisplayedLength = limit
	}
	view.Truncated = view.TotalLength > view.DisplayedLength

	view.Rows = make([]Row, 0, (view.DisplayedLength+config.BytesPerRow-1)/config.BytesPerRow)
	for start := 0; start < view.DisplayedLength; start += config.BytesPerRow {
		end := start + config.BytesPerRow
		if end > view.DisplayedLength {
			end = view.DisplayedLength
		}
		view.Rows = append(view.Rows, Row{
			Offset: start,
			Bytes:  append([]byte(nil), buf[start:end]...),
		})
	}
	return view
}

// Empty reports whether the view is the no-data state.
func (v View) Empty() bool {
	return v.TotalLength == 0
}

// Omitted returns the number of bytes cut off by truncation.
func (v View) Omitted() int {
	return v.TotalLength - v.DisplayedLength
}

// Position maps a byte index to its row and column. The second
// return is false for indexes outside the displayed range (negative,
// past DisplayedLength, or NoHighlight).
func (v View) Position(index int) (Position, bool) {
	if index < 0 || index >= v.DisplayedLength {
		return Position{}, false
	}
	return Position{Row: index / v.BytesPerRow, Column: index % v.BytesPerRow}, true
}

// Index is the inverse of Position. The second return is false when
// the position does not address a displayed byte.
func (v View) Index(p Position) (int, bool) {
	if p.Row < 0 || p.Row >= len(v.Rows) {
		return 0, false
	}
	if p.Column < 0 || p.Column >= len(v.Rows[p.Row].Bytes) {
		return 0, false
	}
	return v.Rows[p.Row].Offset + p.Column, true
}

// OffsetLabel renders the row's offset as 8 zero-padded uppercase
// hex digits.
func (r Row) OffsetLabel() string {
	return fmt.Sprintf("%08X", r.Offset)
}

// Cells returns the display projection of the row's bytes.
func (r Row) Cells() []Cell {
	cells := make([]Cell, len(r.Bytes))
	for i, b := range r.Bytes {
		cells[i] = Cell{
			Index:     r.Offset + i,
			Hex:       fmt.Sprintf("%02X", b),
			Char:      displayChar(b),
			Printable: printable(b),
		}
	}
	return cells
}

func printable(b byte) bool {
	return b >= 32 && b <= 126
}

// displayChar returns the markup-safe ASCII-pane text for a byte.
// The three markup metacharacters are escaped so the cell can be
// embedded in angle-bracket markup without further processing.
func displayChar(b byte) string {
	if !printable(b) {
		return "."
	}
	switch b {
	case '<':
		return "&lt;"
	case '>':
		return "&gt;"
	case '&':
		return "&amp;"
	}
	return string(b)
}
