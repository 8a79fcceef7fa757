package terminal

import (
	"context"
	"fmt"
	"gridpath/core"
	"gridpath/export"
	"gridpath/grid"
	"gridpath/pathfinding"
	"gridpath/render"
	"time"

	"github.com/gdamore/tcell/v2"
)

// DefaultStepDelay is the pause between two expansion frames.
const DefaultStepDelay = 40 * time.Millisecond

// Viewer replays a search on a tcell screen: the expanded cells appear one at
// a time, then the path is drawn and the viewer waits for q, Esc or Ctrl-C.
type Viewer struct {
	screen   tcell.Screen
	renderer *render.ScreenRenderer
	delay    time.Duration
}

// NewViewer creates a viewer on an initialised screen.
func NewViewer(screen tcell.Screen, caps render.TerminalCapabilities) *Viewer {
	return &Viewer{
		screen:   screen,
		renderer: render.NewScreenRenderer(screen, render.DefaultStyles(caps)),
		delay:    DefaultStepDelay,
	}
}

// SetDelay changes the pause between frames. Zero draws everything at once.
func (v *Viewer) SetDelay(d time.Duration) {
	v.delay = d
}

// Show animates res over g. The grid is expected to carry its start and
// destination but no search marks.
func (v *Viewer) Show(ctx context.Context, g *grid.Grid, res pathfinding.Result) error {
	events := make(chan tcell.Event, 8)
	quit := make(chan struct{})
	defer close(quit)
	go v.screen.ChannelEvents(events, quit)

	layout := render.NewLayout(g.Width(), g.Height())
	var drawn []core.Point
	redraw := func() {
		v.screen.Clear()
		v.renderer.Draw(g)
		for _, p := range drawn {
			v.renderer.DrawCell(layout, p, core.Checked)
		}
		v.renderer.DrawStatus(layout, 0, "searching...")
		v.screen.Show()
	}
	redraw()

	for _, p := range res.Expanded {
		if typ := g.TypeAt(p); typ == core.Start || typ == core.Destination {
			continue
		}
		if v.delay > 0 {
			if done, err := v.wait(ctx, events, v.delay, redraw); done || err != nil {
				return err
			}
		}
		drawn = append(drawn, p)
		v.renderer.DrawCell(layout, p, core.Checked)
		v.screen.Show()
	}

	final := func() {
		v.screen.Clear()
		v.renderer.Draw(g)
		for _, p := range res.Checked {
			v.renderer.DrawCell(layout, p, core.Checked)
		}
		for _, p := range res.Path.Points {
			if g.TypeAt(p) != core.Destination {
				v.renderer.DrawCell(layout, p, core.PathStep)
			}
		}
		summary := export.Summary(res)
		if !res.Found {
			summary = fmt.Sprintf("%s (%d checked)", summary, len(res.Checked))
		}
		v.renderer.DrawStatus(layout, 0, summary)
		v.renderer.DrawStatus(layout, 1, "press q to quit")
		v.screen.Show()
	}
	final()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			switch ev := ev.(type) {
			case *tcell.EventResize:
				v.screen.Sync()
				final()
			case *tcell.EventKey:
				if isQuit(ev) {
					return nil
				}
			}
		}
	}
}

// wait pauses for d and reports whether the user asked to quit meanwhile.
// A resize in the pause repaints the frame through redraw.
func (v *Viewer) wait(ctx context.Context, events <-chan tcell.Event, d time.Duration, redraw func()) (bool, error) {
	timer := time.NewTimer(d)
	defer timer.Stop()
	for {
		select {
		case <-ctx.Done():
			return true, ctx.Err()
		case <-timer.C:
			return false, nil
		case ev, ok := <-events:
			if !ok {
				return true, nil
			}
			switch ev := ev.(type) {
			case *tcell.EventResize:
				v.screen.Sync()
				redraw()
			case *tcell.EventKey:
				if isQuit(ev) {
					return true, nil
				}
			}
		}
	}
}

func isQuit(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		return ev.Rune() == 'q' || ev.Rune() == 'Q'
	}
	return false
}

// RunViewer opens the terminal screen, replays the search of g and restores
// the terminal on return.
func RunViewer(ctx context.Context, g *grid.Grid, finder *pathfinding.PathFinder) error {
	res, err := finder.Search(ctx, g)
	if err != nil {
		return err
	}
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("opening screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("initialising screen: %w", err)
	}
	defer screen.Fini()
	return NewViewer(screen, render.DetectCapabilities()).Show(ctx, g, res)
}
