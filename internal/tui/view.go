package tui

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#00FFFF"))
	errorStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FF0000"))
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#777777"))
)

// ModelView renders the TUI model's view as a string.
func ModelView(m model) string {
	if m.quitting {
		return "Goodbye!\n"
	}

	lineList := lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#555555")).
		Padding(0, 1).
		Render(m.list.View())

	blocks := []string{headerView(m)}
	if m.err != nil {
		blocks = append(blocks, errorStyle.Render("Error: "+m.err.Error()))
	}
	blocks = append(blocks, lineList, helpStyle.Render("r resample • / filter • q quit"))
	return lipgloss.JoinVertical(lipgloss.Left, blocks...)
}

func headerView(m model) string {
	seed := "none"
	if m.result.Seed != nil {
		seed = strconv.FormatInt(*m.result.Seed, 10)
	}
	if m.drawn == 0 {
		return headerStyle.Render(m.path) + "\nsampling…"
	}
	return fmt.Sprintf("%s\nstrategy %s • seed %s • %d lines • %d rejected draws • draw #%d",
		headerStyle.Render(m.path),
		m.result.Strategy,
		seed,
		m.result.Emitted,
		m.result.Rejected,
		m.drawn,
	)
}
