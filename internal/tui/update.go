package tui

import (
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"quicklines/internal/core"
)

// sampledMsg carries the outcome of one draw. seq numbers draws in the
// order they were requested.
type sampledMsg struct {
	seq    int
	lines  []core.Line
	result core.Result
	err    error
}

// drawCmd runs a draw outside the update loop.
func drawCmd(draw DrawFunc, first bool, seq int) tea.Cmd {
	return func() tea.Msg {
		lines, res, err := draw(first)
		return sampledMsg{seq: seq, lines: lines, result: res, err: err}
	}
}

// Init samples for the first time.
func (m model) Init() tea.Cmd {
	return drawCmd(m.draw, true, m.requested)
}

// Update handles all Bubbletea update logic for the TUI model.
func Update(m model, msg tea.Msg) (model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return handleKeyMsg(m, msg)
	case sampledMsg:
		return handleSampledMsg(m, msg)
	case tea.WindowSizeMsg:
		return handleWindowResize(m, msg)
	}
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func handleKeyMsg(m model, msg tea.KeyMsg) (model, tea.Cmd) {
	if m.quitting {
		return m, nil
	}
	// Keys belong to the filter input while it is open.
	if m.list.FilterState() != list.Filtering {
		switch msg.String() {
		case "ctrl+c", "q":
			m.quitting = true
			return m, tea.Quit
		case "r":
			m.requested++
			return m, drawCmd(m.draw, false, m.requested)
		}
	}
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func handleSampledMsg(m model, msg sampledMsg) (model, tea.Cmd) {
	// Resamples run concurrently; a draw requested before the one on
	// screen is stale.
	if msg.seq <= m.drawn {
		return m, nil
	}
	m.drawn = msg.seq
	m.result = msg.result
	m.err = msg.err
	// A failed draw may still have produced lines; show them.
	cmd := m.list.SetItems(m.items(msg.lines))
	m.list.ResetSelected()
	return m, cmd
}

func handleWindowResize(m model, msg tea.WindowSizeMsg) (model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	m.list.SetSize(max(msg.Width-4, 10), max(msg.Height-chromeHeight, 5))

	// Re-truncate titles for the new width.
	items := m.list.Items()
	for i, it := range items {
		if li, ok := it.(LineItem); ok {
			li.Width = m.width - 8
			items[i] = li
		}
	}
	return m, m.list.SetItems(items)
}
