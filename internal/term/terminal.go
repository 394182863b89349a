package term

import (
	"context"
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/kaku-editor/kaku/internal/engine"
	"github.com/kaku-editor/kaku/internal/view"
)

// Terminal drives one Engine from a real terminal via tcell: raw mode, the
// alternate screen and bracketed paste. It makes no enhanced keyboard
// protocol request.
type Terminal struct {
	screen tcell.Screen
	engine *engine.Engine
}

// New creates a Terminal bound to e. The tcell screen is constructed but
// not yet initialized; call Run to take over the terminal.
func New(e *engine.Engine) (*Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("term: %w", err)
	}
	return &Terminal{screen: screen, engine: e}, nil
}

// Run initializes the screen, pumps tcell events into the Engine, and
// renders after each one, until the Engine requests quit or ctx is done.
func (t *Terminal) Run(ctx context.Context) error {
	if err := t.screen.Init(); err != nil {
		return fmt.Errorf("term: init: %w", err)
	}
	defer t.screen.Fini()

	t.screen.EnablePaste()

	width, height := t.screen.Size()
	t.engine.Event(engine.Event{Kind: engine.EventResize, Size: view.Size{Width: width, Height: height}})
	t.render()

	events := make(chan tcell.Event, 16)
	go func() {
		for {
			ev := t.screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			events <- ev
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if t.dispatch(ev) {
				return nil
			}
			t.render()
		}
	}
}

// dispatch converts one tcell.Event into an engine.Event and feeds it to
// the Engine. It returns true when the process should exit.
func (t *Terminal) dispatch(ev tcell.Event) bool {
	switch e := ev.(type) {
	case *tcell.EventKey:
		return t.engine.Event(engine.Event{Kind: engine.EventKey, Key: convertKeyEvent(e)})

	case *tcell.EventResize:
		w, h := e.Size()
		t.screen.Sync()
		return t.engine.Event(engine.Event{Kind: engine.EventResize, Size: view.Size{Width: w, Height: h}})

	case *tcell.EventPaste:
		kind := engine.EventPaste
		return t.engine.Event(engine.Event{Kind: kind, Release: !e.Start()})

	default:
		return false
	}
}

// Close tears down the screen outside of Run (e.g. on a startup error after
// New but before Run).
func (t *Terminal) Close() {
	t.screen.Fini()
}
