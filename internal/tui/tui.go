// Package tui implements an interactive preview of sampled lines.
package tui

import (
	"context"
	"errors"
	"fmt"
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"quicklines/internal/config"
	"quicklines/internal/core"
	"quicklines/internal/mmap"
)

// Run maps the file at path and opens the preview. The first sample uses
// cfg as given; every resample draws a fresh seed.
func Run(ctx context.Context, path string, cfg config.Config, runner *core.Runner) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	f, err := mmap.Open(path)
	if err != nil {
		return fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	// Quitting does not wait for draws bubbletea has already started, so
	// they are cancelled and waited for here, before the file is unmapped.
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	var draws drawGroup
	draw := draws.track(func(first bool) ([]core.Line, core.Result, error) {
		c := cfg
		if !first {
			c.Seed = nil
		}
		return runner.Collect(ctx, f.Bytes(), c)
	})

	p := tea.NewProgram(&teaModelAdapter{initialModel(path, draw)}, tea.WithContext(ctx), tea.WithAltScreen())
	_, err = p.Run()
	cancel()
	draws.close()
	return err
}

var errPreviewClosed = errors.New("preview closed")

// drawGroup tracks draws in flight. After close returns no tracked draw is
// running and none will start.
type drawGroup struct {
	mu     sync.Mutex
	closed bool
	wg     sync.WaitGroup
}

func (g *drawGroup) track(draw DrawFunc) DrawFunc {
	return func(first bool) ([]core.Line, core.Result, error) {
		g.mu.Lock()
		if g.closed {
			g.mu.Unlock()
			return nil, core.Result{}, errPreviewClosed
		}
		g.wg.Add(1)
		g.mu.Unlock()
		defer g.wg.Done()
		return draw(first)
	}
}

// close stops new draws and waits for running ones to return.
func (g *drawGroup) close() {
	g.mu.Lock()
	g.closed = true
	g.mu.Unlock()
	g.wg.Wait()
}

// teaModelAdapter adapts our model to the tea.Model interface using Update and ModelView.
type teaModelAdapter struct {
	m model
}

func (a *teaModelAdapter) Init() tea.Cmd {
	return a.m.Init()
}

func (a *teaModelAdapter) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	m2, cmd := Update(a.m, msg)
	a.m = m2
	return a, cmd
}

func (a *teaModelAdapter) View() string {
	return ModelView(a.m)
}
