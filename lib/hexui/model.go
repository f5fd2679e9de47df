// Copyright 2026 The Hexkit Authors
// SPDX-License-Identifier: Apache-2.0

package hexui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/dustin/go-humanize"

	"github.com/hexkit-project/hexkit/lib/byteutil"
	"github.com/hexkit-project/hexkit/lib/hexview"
	"github.com/hexkit-project/hexkit/lib/theme"
)

// Tab identifies which pane is active.
type Tab int

const (
	// TabView shows the hex dump.
	TabView Tab = iota
	// TabExamples shows the tabbed code-example switcher.
	TabExamples
)

// headerHeight is the number of fixed lines above the body viewport
// (title line and tab bar).
const headerHeight = 2

// footerHeight is the number of fixed lines below the body (status
// and help).
const footerHeight = 2

// Model is the viewer's bubbletea model.
type Model struct {
	fileName string
	data     []byte
	view     hexview.View

	currentTheme theme.Theme
	palette      theme.Palette
	store        theme.Store

	highlight    int
	activeTab    Tab
	exampleIndex int

	viewport viewport.Model
	ready    bool
	width    int
	height   int
	notice   string
}

// New builds a viewer over the given buffer. store persists the
// theme preference when the user toggles appearance; it may be nil
// for a session-only theme.
func New(data byteutil.ByteView, fileName string, renderConfig hexview.Config, initial theme.Theme, store theme.Store) Model {
	buf := data.ByteSlice()
	return Model{
		fileName:     fileName,
		data:         buf,
		view:         hexview.Render(buf, renderConfig),
		currentTheme: initial,
		palette:      theme.Colors(initial),
		store:        store,
		highlight:    hexview.NoHighlight,
	}
}

// Init implements tea.Model.
func (model Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (model Model) Update(message tea.Msg) (tea.Model, tea.Cmd) {
	switch message := message.(type) {
	case tea.KeyMsg:
		return model.handleKey(message)

	case tea.MouseMsg:
		model.handleMouse(message)
		return model, nil

	case tea.WindowSizeMsg:
		model.width = message.Width
		model.height = message.Height
		bodyHeight := message.Height - headerHeight - footerHeight
		if bodyHeight < 1 {
			bodyHeight = 1
		}
		if !model.ready {
			model.viewport = viewport.New(message.Width, bodyHeight)
			model.ready = true
		} else {
			model.viewport.Width = message.Width
			model.viewport.Height = bodyHeight
		}
		model.refreshBody()
	}

	var cmd tea.Cmd
	model.viewport, cmd = model.viewport.Update(message)
	return model, cmd
}

func (model Model) handleKey(message tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch message.String() {
	case "q", "ctrl+c":
		return model, tea.Quit

	case "t":
		model.toggleTheme()
		return model, nil

	case "tab":
		if model.activeTab == TabView {
			model.activeTab = TabExamples
		} else {
			model.activeTab = TabView
		}
		model.refreshBody()
		return model, nil

	case "left", "h":
		if model.activeTab == TabExamples {
			model.exampleIndex = (model.exampleIndex + len(BuiltinExamples) - 1) % len(BuiltinExamples)
			model.refreshBody()
		} else {
			model.moveHighlight(-1)
		}
		return model, nil

	case "right", "l":
		if model.activeTab == TabExamples {
			model.exampleIndex = (model.exampleIndex + 1) % len(BuiltinExamples)
			model.refreshBody()
		} else {
			model.moveHighlight(1)
		}
		return model, nil

	case "esc":
		model.setHighlight(hexview.NoHighlight)
		return model, nil
	}

	var cmd tea.Cmd
	model.viewport, cmd = model.viewport.Update(message)
	return model, cmd
}

// handleMouse syncs the byte highlight with cursor motion. Both
// panes resolve to the same byte index, so hovering the hex pane
// lights the matching ASCII cell and vice versa; anything that is
// not a byte cell clears the highlight.
func (model *Model) handleMouse(message tea.MouseMsg) {
	if model.activeTab != TabView {
		return
	}
	if message.Action != tea.MouseActionMotion {
		return
	}
	index := hitTest(model.view, message.X, message.Y-headerHeight+model.viewport.YOffset)
	model.setHighlight(index)
}

// moveHighlight nudges the keyboard highlight, clamped to the
// displayed range. From the cleared state the first nudge lands on
// byte 0.
func (model *Model) moveHighlight(delta int) {
	if model.view.Empty() {
		return
	}
	next := model.highlight + delta
	if model.highlight == hexview.NoHighlight {
		next = 0
	}
	if next < 0 {
		next = 0
	}
	if next >= model.view.DisplayedLength {
		next = model.view.DisplayedLength - 1
	}
	model.setHighlight(next)
}

func (model *Model) setHighlight(index int) {
	if index == model.highlight {
		return
	}
	model.highlight = index
	model.refreshBody()
}

// toggleTheme flips the appearance and persists the choice through
// the store. Persistence failure keeps the session theme and reports
// in the status line.
func (model *Model) toggleTheme() {
	model.currentTheme = theme.Toggle(model.currentTheme)
	model.palette = theme.Colors(model.currentTheme)
	model.notice = ""
	if model.store != nil {
		preference := theme.PreferLight
		if model.currentTheme == theme.Dark {
			preference = theme.PreferDark
		}
		if err := model.store.Save(preference); err != nil {
			model.notice = fmt.Sprintf("theme not saved: %v", err)
		}
	}
	model.refreshBody()
}

// refreshBody re-renders the active pane into the viewport,
// preserving the scroll position.
func (model *Model) refreshBody() {
	if !model.ready {
		return
	}
	offset := model.viewport.YOffset
	switch model.activeTab {
	case TabView:
		model.viewport.SetContent(hexview.Format(model.view, model.palette.HexStyle(), model.highlight))
	case TabExamples:
		model.viewport.SetContent(renderExample(BuiltinExamples[model.exampleIndex], model.currentTheme == theme.Dark))
	}
	model.viewport.SetYOffset(offset)
}

// View implements tea.Model.
func (model Model) View() string {
	if !model.ready {
		return "loading..."
	}
	return model.headerView() + "\n" + model.tabBar() + "\n" +
		model.viewport.View() + "\n" + model.statusLine() + "\n" + model.helpLine()
}

func (model Model) headerView() string {
	title := lipgloss.NewStyle().Foreground(model.palette.HeaderForeground).Bold(true).
		Render("hexkit viewer")
	name := model.fileName
	if name == "" {
		name = "(stdin)"
	}
	info := lipgloss.NewStyle().Foreground(model.palette.FaintText).
		Render(fmt.Sprintf("  %s  %s", name, humanize.IBytes(uint64(len(model.data)))))
	return ansi.Truncate(title+info, model.width, "…")
}

func (model Model) tabBar() string {
	active := lipgloss.NewStyle().Foreground(model.palette.TabActive).Bold(true).Underline(true)
	inactive := lipgloss.NewStyle().Foreground(model.palette.TabInactive)

	hexTab := inactive.Render("Hex")
	examplesTab := inactive.Render("Examples")
	switch model.activeTab {
	case TabView:
		hexTab = active.Render("Hex")
	case TabExamples:
		label := "Examples: " + BuiltinExamples[model.exampleIndex].Title
		examplesTab = active.Render(label)
	}
	return "  " + hexTab + "   " + examplesTab
}

// statusLine reports the highlighted byte, truncation, or a pending
// notice.
func (model Model) statusLine() string {
	style := lipgloss.NewStyle().Foreground(model.palette.NormalText)
	if model.notice != "" {
		return style.Render("  " + model.notice)
	}
	if model.activeTab == TabExamples {
		return style.Render("  ←/→ switch example")
	}
	if model.view.Empty() {
		return style.Render("  no data")
	}
	if model.highlight != hexview.NoHighlight && model.highlight < len(model.data) {
		b := model.data[model.highlight]
		position, _ := model.view.Position(model.highlight)
		return style.Render(fmt.Sprintf("  byte %d (row %d, col %d): 0x%02X %q",
			model.highlight, position.Row, position.Column, b, rune(b)))
	}
	if model.view.Truncated {
		return style.Render(fmt.Sprintf("  showing %s of %s (%d bytes omitted)",
			humanize.IBytes(uint64(model.view.DisplayedLength)),
			humanize.IBytes(uint64(model.view.TotalLength)),
			model.view.Omitted()))
	}
	return style.Render(fmt.Sprintf("  %d bytes", model.view.TotalLength))
}

func (model Model) helpLine() string {
	return lipgloss.NewStyle().Foreground(model.palette.HelpText).
		Render("  q quit · t theme · tab pane · ←/→ highlight · esc clear · mouse hover syncs panes")
}
