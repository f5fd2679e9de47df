// Copyright 2026 The Hexkit Authors
// SPDX-License-Identifier: Apache-2.0

package hexui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/hexkit-project/hexkit/lib/byteutil"
	"github.com/hexkit-project/hexkit/lib/hexview"
	"github.com/hexkit-project/hexkit/lib/theme"
)

// memoryStore is an in-memory theme.Store for tests.
type memoryStore struct {
	saved theme.Preference
}

func (s *memoryStore) Load() (theme.Preference, error) { return s.saved, nil }
func (s *memoryStore) Save(p theme.Preference) error {
	s.saved = p
	return nil
}

func newTestModel(t *testing.T, data []byte) Model {
	t.Helper()
	model := New(byteutil.NewByteView(data), "test.bin", hexview.DefaultConfig(), theme.Dark, &memoryStore{})
	updated, _ := model.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	return updated.(Model)
}

func TestViewShowsDump(t *testing.T) {
	model := newTestModel(t, []byte("Hello hexkit"))
	output := model.View()
	if !strings.Contains(output, "00000000") {
		t.Error("view lacks the offset column")
	}
	if !strings.Contains(output, "test.bin") {
		t.Error("view lacks the file name")
	}
}

func TestKeyboardHighlight(t *testing.T) {
	model := newTestModel(t, make([]byte, 32))

	updated, _ := model.Update(tea.KeyMsg{Type: tea.KeyRight})
	model = updated.(Model)
	if model.highlight != 0 {
		t.Errorf("first right lands on %d, want 0", model.highlight)
	}

	updated, _ = model.Update(tea.KeyMsg{Type: tea.KeyRight})
	model = updated.(Model)
	if model.highlight != 1 {
		t.Errorf("second right lands on %d, want 1", model.highlight)
	}

	updated, _ = model.Update(tea.KeyMsg{Type: tea.KeyEsc})
	model = updated.(Model)
	if model.highlight != hexview.NoHighlight {
		t.Errorf("esc left highlight at %d, want cleared", model.highlight)
	}
}

func TestHighlightClamped(t *testing.T) {
	model := newTestModel(t, make([]byte, 2))
	for range 5 {
		updated, _ := model.Update(tea.KeyMsg{Type: tea.KeyRight})
		model = updated.(Model)
	}
	if model.highlight != 1 {
		t.Errorf("highlight = %d, want clamp at 1", model.highlight)
	}
}

func TestThemeTogglePersists(t *testing.T) {
	store := &memoryStore{}
	model := New(byteutil.NewByteView([]byte("x")), "", hexview.DefaultConfig(), theme.Dark, store)
	updated, _ := model.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	model = updated.(Model)

	updated, _ = model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'t'}})
	model = updated.(Model)
	if model.currentTheme != theme.Light {
		t.Errorf("theme after toggle = %q, want light", model.currentTheme)
	}
	if store.saved != theme.PreferLight {
		t.Errorf("persisted preference = %q, want light", store.saved)
	}
}

func TestTabSwitch(t *testing.T) {
	model := newTestModel(t, []byte("x"))
	updated, _ := model.Update(tea.KeyMsg{Type: tea.KeyTab})
	model = updated.(Model)
	if model.activeTab != TabExamples {
		t.Errorf("activeTab = %d, want examples", model.activeTab)
	}
	if !strings.Contains(model.View(), "Examples: hex") {
		t.Error("tab bar does not show the active example")
	}

	// Right arrow cycles examples instead of moving the highlight.
	updated, _ = model.Update(tea.KeyMsg{Type: tea.KeyRight})
	model = updated.(Model)
	if model.exampleIndex != 1 {
		t.Errorf("exampleIndex = %d, want 1", model.exampleIndex)
	}
}

func TestMouseHoverSync(t *testing.T) {
	model := newTestModel(t, make([]byte, 32))

	// Hover the hex cell of byte 5 (row 0): x = 10 + 3*5.
	updated, _ := model.Update(tea.MouseMsg{
		X:      25,
		Y:      headerHeight,
		Action: tea.MouseActionMotion,
	})
	model = updated.(Model)
	if model.highlight != 5 {
		t.Errorf("highlight after hex hover = %d, want 5", model.highlight)
	}

	// Hover the same byte's ASCII cell.
	updated, _ = model.Update(tea.MouseMsg{
		X:      asciiPaneStart(16) + 5,
		Y:      headerHeight,
		Action: tea.MouseActionMotion,
	})
	model = updated.(Model)
	if model.highlight != 5 {
		t.Errorf("highlight after ASCII hover = %d, want 5", model.highlight)
	}

	// Leaving both panes clears the highlight.
	updated, _ = model.Update(tea.MouseMsg{
		X:      0,
		Y:      headerHeight,
		Action: tea.MouseActionMotion,
	})
	model = updated.(Model)
	if model.highlight != hexview.NoHighlight {
		t.Errorf("highlight after leaving panes = %d, want cleared", model.highlight)
	}
}

func TestEmptyBufferState(t *testing.T) {
	model := newTestModel(t, nil)
	output := model.View()
	if !strings.Contains(output, "no data") {
		t.Error("empty buffer view lacks the no-data state")
	}

	// Highlight keys are inert on the empty state.
	updated, _ := model.Update(tea.KeyMsg{Type: tea.KeyRight})
	model = updated.(Model)
	if model.highlight != hexview.NoHighlight {
		t.Errorf("highlight on empty buffer = %d", model.highlight)
	}
}
