package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/mattn/go-runewidth"

	"quicklines/internal/core"
)

// LineItem represents a sampled line for the list.
type LineItem struct {
	Line  core.Line
	Width int
}

func (i LineItem) Title() string { return truncate(i.Line.Text, i.Width) }
func (i LineItem) Description() string {
	return fmt.Sprintf("line %d, bytes %d-%d", i.Line.Number, i.Line.Begin, i.Line.End)
}
func (i LineItem) FilterValue() string { return i.Line.Text }

// DrawFunc produces a fresh sample. The first call should honor a configured
// seed; later calls (resampling) should not repeat it.
type DrawFunc func(first bool) ([]core.Line, core.Result, error)

// model is the Bubbletea model for the TUI.
type model struct {
	list   list.Model
	path   string
	draw   DrawFunc
	result core.Result
	err    error
	// requested is the sequence number of the latest draw started, drawn
	// that of the draw on screen.
	requested int
	drawn     int
	quitting  bool
	width     int
	height    int
}

const (
	defaultWidth  = 80
	defaultHeight = 24
	// Rows taken by the header, the border and the help line.
	chromeHeight = 8
)

// initialModel creates the TUI model; nothing is sampled until Init runs.
func initialModel(path string, draw DrawFunc) model {
	l := list.New(nil, list.NewDefaultDelegate(), defaultWidth-4, defaultHeight-chromeHeight)
	l.Title = "Sampled lines"
	l.SetShowHelp(false)

	return model{
		list:   l,
		path:   path,
		draw:      draw,
		requested: 1,
		width:     defaultWidth,
		height:    defaultHeight,
	}
}

func (m model) items(sampled []core.Line) []list.Item {
	items := make([]list.Item, len(sampled))
	for i, line := range sampled {
		items[i] = LineItem{Line: line, Width: m.width - 8}
	}
	return items
}

// truncate shortens s to at most maxWidth display cells.
func truncate(s string, maxWidth int) string {
	s = strings.ReplaceAll(s, "\t", "    ")
	if maxWidth <= 0 {
		return s
	}
	return runewidth.Truncate(s, maxWidth, "…")
}
