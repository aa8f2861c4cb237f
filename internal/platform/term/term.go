// Package term runs a game directly on a tcell screen. Unlike the Bubble Tea
// backend it owns the event loop: a goroutine forwards terminal events to a
// channel and a ticker drives the simulation.
package term

import (
	"context"
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/bubble-dodge/internal/registry"
)

// Backend runs games on a raw tcell screen.
type Backend struct {
	// newScreen opens the terminal; tests swap in a simulation screen.
	newScreen func() (tcell.Screen, error)
}

// ID returns "term".
func (Backend) ID() string {
	return "term"
}

// Title returns the display name.
func (Backend) Title() string {
	return "Terminal (tcell, mouse and keyboard)"
}

// Run plays the session until the player quits or ctx is cancelled.
func (b Backend) Run(ctx context.Context, s registry.Session) error {
	open := b.newScreen
	if open == nil {
		open = tcell.NewScreen
	}

	screen, err := open()
	if err != nil {
		return fmt.Errorf("term: open screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("term: init screen: %w", err)
	}
	defer screen.Fini()

	screen.EnableMouse()
	screen.HideCursor()

	return newRunner(screen, s).run(ctx)
}

// pollEvents forwards screen events until the screen is finalized or done
// is closed.
func pollEvents(screen tcell.Screen, events chan<- tcell.Event, done <-chan struct{}) {
	for {
		ev := screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case events <- ev:
		case <-done:
			return
		}
	}
}

func (r *runner) run(ctx context.Context) error {
	ticker := time.NewTicker(time.Second / time.Duration(r.tickRate))
	defer ticker.Stop()

	events := make(chan tcell.Event, 100)
	done := make(chan struct{})
	defer close(done)
	go pollEvents(r.screen, events, done)

	r.draw()
	for {
		select {
		case <-ctx.Done():
			return nil

		case ev := <-events:
			if quit := r.handleEvent(ev, time.Now()); quit {
				return nil
			}

		case now := <-ticker.C:
			r.tick(now)
			r.draw()
		}
	}
}

func init() {
	registry.Register("term", func() registry.Backend {
		return Backend{}
	})
}
