package app

import (
	"os"
	"os/signal"

	"github.com/gdamore/tcell/v2"
	statepkg "github.com/kk-code-lab/jump/internal/state"
)

// Run shows the session until the user picks a directory or leaves. It
// returns the picked path, or ErrCancelled. The terminal is restored before
// Run returns, panics included.
func (app *Application) Run() (string, error) {
	defer app.finish()

	app.renderer.Render(app.state)

	done := make(chan struct{})
	defer close(done)
	eventChan := make(chan tcell.Event)
	go func() {
		for {
			ev := app.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case eventChan <- ev:
			case <-done:
				return
			}
		}
	}()

	var sigContCh chan os.Signal
	if sigs := contSignals(); len(sigs) > 0 {
		sigContCh = make(chan os.Signal, 1)
		signal.Notify(sigContCh, sigs...)
		defer signal.Stop(sigContCh)
	}

	for !app.shouldQuit && !app.state.Done() {
		renderPending := false
		select {
		case ev := <-eventChan:
			if app.handleEvent(ev) {
				renderPending = true
			}
		case <-sigContCh:
			if app.resumeAfterStop() {
				renderPending = true
			}
		}

		if app.processActions() {
			renderPending = true
		}
		if renderPending && !app.state.Done() {
			app.renderer.Render(app.state)
		}
	}
	app.finish()

	if app.state.Outcome != statepkg.OutcomeConfirmed {
		return "", ErrCancelled
	}
	app.recordVisit(app.state.Result)
	return app.state.Result, nil
}

// finish restores the terminal once.
func (app *Application) finish() {
	if app.finished {
		return
	}
	app.finished = true
	app.screen.Fini()
	if err := flushConsoleInput(); err != nil {
		app.log.WithError(err).Debug("flush console input")
	}
}

func (app *Application) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey, *tcell.EventResize:
		if !app.input.ProcessEvent(ev) {
			app.shouldQuit = true
		}
		return true
	case *tcell.EventInterrupt:
		return true
	default:
		return false
	}
}

func (app *Application) processActions() bool {
	changed := false
	for {
		select {
		case action := <-app.actionCh:
			if app.handleAction(action) {
				changed = true
			}
		default:
			return changed
		}
	}
}

func (app *Application) handleAction(action statepkg.Action) bool {
	if action == nil {
		return false
	}

	switch action.(type) {
	case statepkg.SuspendAction:
		app.suspendToShell()
		app.resumeAfterStop()
		return true
	}

	if _, err := app.reducer.Reduce(app.state, action); err != nil {
		app.state.LastError = err
		app.log.WithError(err).Warn("directory listing failed")
	}
	if _, ok := action.(statepkg.ResizeAction); ok {
		app.screen.Sync()
	}
	return true
}
