// Copyright 2026 The Hexkit Authors
// SPDX-License-Identifier: Apache-2.0

package hexview

import (
	"bytes"
	"strings"
	"testing"
)

func TestRenderEmpty(t *testing.T) {
	view := Render(nil, DefaultConfig())
	if !view.Empty() {
		t.Error("Render(nil) is not the empty state")
	}
	if len(view.Rows) != 0 {
		t.Errorf("empty view has %d rows", len(view.Rows))
	}
	if view.Truncated {
		t.Error("empty view reports truncation")
	}
}

func TestRenderPartitioning(t *testing.T) {
	// 17 bytes at 16 per row: two rows, the second holding one byte.
	buf := make([]byte, 17)
	for i := range buf {
		buf[i] = byte(i)
	}
	view := Render(buf, DefaultConfig())

	if len(view.Rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(view.Rows))
	}
	if len(view.Rows[0].Bytes) != 16 {
		t.Errorf("row 0 has %d bytes, want 16", len(view.Rows[0].Bytes))
	}
	if len(view.Rows[1].Bytes) != 1 {
		t.Errorf("row 1 has %d bytes, want 1", len(view.Rows[1].Bytes))
	}
	if view.Rows[1].Offset != 16 {
		t.Errorf("row 1 offset = %d, want 16", view.Rows[1].Offset)
	}
	if view.Truncated {
		t.Error("view reports truncation for fully displayed buffer")
	}

	// Rows partition the input exactly.
	var reassembled []byte
	for _, row := range view.Rows {
		reassembled = append(reassembled, row.Bytes...)
	}
	if !bytes.Equal(reassembled, buf) {
		t.Error("rows do not partition the input")
	}
}

func TestRenderTruncation(t *testing.T) {
	buf := make([]byte, 1000)
	view := Render(buf, Config{BytesPerRow: 16, MaxRows: 4, ShowASCII: true})

	if !view.Truncated {
		t.Fatal("expected truncation")
	}
	if view.DisplayedLength != 64 {
		t.Errorf("DisplayedLength = %d, want 64", view.DisplayedLength)
	}
	if view.Omitted() != 936 {
		t.Errorf("Omitted = %d, want 936", view.Omitted())
	}
	if len(view.Rows) != 4 {
		t.Errorf("got %d rows, want 4", len(view.Rows))
	}
}

func TestRenderConfigFallback(t *testing.T) {
	view := Render([]byte{1, 2, 3}, Config{BytesPerRow: -1, MaxRows: 0})
	if view.BytesPerRow != DefaultBytesPerRow {
		t.Errorf("BytesPerRow = %d, want default %d", view.BytesPerRow, DefaultBytesPerRow)
	}
	if len(view.Rows) != 1 {
		t.Errorf("got %d rows, want 1", len(view.Rows))
	}
}

func TestOffsetLabel(t *testing.T) {
	row := Row{Offset: 0xABC}
	if got := row.OffsetLabel(); got != "00000ABC" {
		t.Errorf("OffsetLabel = %q, want 00000ABC", got)
	}
}

func TestCells(t *testing.T) {
	row := Row{Offset: 32, Bytes: []byte{0x00, 0x41, 0x3C, 0x7F, 0xFF}}
	cells := row.Cells()

	tests := []struct {
		hex       string
		char      string
		printable bool
	}{
		{"00", ".", false},
		{"41", "A", true},
		{"3C", "&lt;", true},
		{"7F", ".", false},
		{"FF", ".", false},
	}
	for i, test := range tests {
		if cells[i].Hex != test.hex {
			t.Errorf("cell %d Hex = %q, want %q", i, cells[i].Hex, test.hex)
		}
		if cells[i].Char != test.char {
			t.Errorf("cell %d Char = %q, want %q", i, cells[i].Char, test.char)
		}
		if cells[i].Printable != test.printable {
			t.Errorf("cell %d Printable = %v, want %v", i, cells[i].Printable, test.printable)
		}
		if cells[i].Index != 32+i {
			t.Errorf("cell %d Index = %d, want %d", i, cells[i].Index, 32+i)
		}
	}
}

func TestMarkupEscaping(t *testing.T) {
	row := Row{Bytes: []byte{'<', '>', '&'}}
	for _, cell := range row.Cells() {
		if strings.ContainsAny(cell.Char, "<>") || cell.Char == "&" {
			t.Errorf("cell char %q is not markup-safe", cell.Char)
		}
	}
}

func TestPositionMapping(t *testing.T) {
	view := Render(make([]byte, 40), Config{BytesPerRow: 16, MaxRows: 100, ShowASCII: true})

	tests := []struct {
		index  int
		row    int
		column int
	}{
		{0, 0, 0},
		{15, 0, 15},
		{16, 1, 0},
		{39, 2, 7},
	}
	for _, test := range tests {
		pos, ok := view.Position(test.index)
		if !ok {
			t.Fatalf("Position(%d) not ok", test.index)
		}
		if pos.Row != test.row || pos.Column != test.column {
			t.Errorf("Position(%d) = %+v, want row %d column %d", test.index, pos, test.row, test.column)
		}
		index, ok := view.Index(pos)
		if !ok || index != test.index {
			t.Errorf("Index(%+v) = %d/%v, want %d", pos, index, ok, test.index)
		}
	}

	if _, ok := view.Position(-1); ok {
		t.Error("Position(NoHighlight) reported ok")
	}
	if _, ok := view.Position(40); ok {
		t.Error("Position past DisplayedLength reported ok")
	}
	if _, ok := view.Index(Position{Row: 2, Column: 8}); ok {
		t.Error("Index past the short final row reported ok")
	}
}

func TestFormatLayout(t *testing.T) {
	buf := []byte("Hello, hexkit! This is a test.\x00\x01")
	view := Render(buf, DefaultConfig())
	output := Format(view, Style{}, NoHighlight)

	lines := strings.Split(strings.TrimRight(output, "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2:\n%s", len(lines), output)
	}
	if !strings.HasPrefix(lines[0], "00000000  ") {
		t.Errorf("line 0 does not start with the offset: %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], "00000010  ") {
		t.Errorf("line 1 does not start with the offset: %q", lines[1])
	}
	if !strings.Contains(lines[0], "|Hello, hexkit! T|") {
		t.Errorf("line 0 ASCII pane wrong: %q", lines[0])
	}
	// Control bytes render as the placeholder.
	if !strings.Contains(lines[1], "..|") {
		t.Errorf("line 1 ASCII pane wrong: %q", lines[1])
	}
}

func TestFormatEmpty(t *testing.T) {
	output := Format(Render(nil, DefaultConfig()), Style{}, NoHighlight)
	if !strings.Contains(output, "(no data)") {
		t.Errorf("empty format = %q, want no-data marker", output)
	}
}

func TestFormatTruncationMarker(t *testing.T) {
	view := Render(make([]byte, 100), Config{BytesPerRow: 16, MaxRows: 2, ShowASCII: false})
	output := Format(view, Style{}, NoHighlight)
	if !strings.Contains(output, "(68 more bytes not shown)") {
		t.Errorf("missing or wrong truncation marker:\n%s", output)
	}
}
