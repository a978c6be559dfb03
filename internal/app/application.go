package app

import (
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/kk-code-lab/jump/internal/logging"
	statepkg "github.com/kk-code-lab/jump/internal/state"
	"github.com/kk-code-lab/jump/internal/store"
	inputui "github.com/kk-code-lab/jump/internal/ui/input"
	renderui "github.com/kk-code-lab/jump/internal/ui/render"
	"github.com/sirupsen/logrus"
)

// ErrCancelled is returned by Run when the user leaves without picking.
var ErrCancelled = errors.New("cancelled")

// VisitStore is the part of the ranking store a session reads and updates.
type VisitStore interface {
	RecordVisit(path, name string, now time.Time) (store.Record, error)
	ScoresFor(paths []string) (map[string]float64, error)
	Top(limit int) ([]store.Record, error)
	ListBookmarks() ([]store.Record, error)
}

// Options configures one selection session.
type Options struct {
	Mode     statepkg.Mode
	StartDir string
	// Query pre-fills the fuzzy filter.
	Query      string
	ShowHidden bool
	// Global makes number mode rank the whole store instead of StartDir.
	Global      bool
	VisibleRows int
	NumberLimit int

	Scanner statepkg.Scanner
	Store   VisitStore
	Logger  *logrus.Logger
	// Screen replaces the terminal; it must not be initialised yet.
	Screen tcell.Screen
	Now    func() time.Time
}

// Application represents the running app.
type Application struct {
	screen     tcell.Screen
	state      *statepkg.AppState
	reducer    *statepkg.StateReducer
	renderer   *renderui.Renderer
	input      *inputui.InputHandler
	actionCh   chan statepkg.Action
	shouldQuit bool
	finished   bool

	store VisitStore
	log   *logrus.Logger
	now   func() time.Time
}

// NewApplication initialises the terminal and builds the session state.
func NewApplication(opts Options) (*Application, error) {
	if opts.Logger == nil {
		opts.Logger = logging.Discard()
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	state, err := newInitialState(opts)
	if err != nil {
		return nil, err
	}

	screen := opts.Screen
	if screen == nil {
		screen, err = tcell.NewScreen()
		if err != nil {
			return nil, fmt.Errorf("open terminal: %w", err)
		}
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("init terminal: %w", err)
	}

	w, h := screen.Size()
	actionCh := make(chan statepkg.Action, 10)
	reducer := statepkg.NewStateReducer()
	if _, err := reducer.Reduce(state, statepkg.ResizeAction{Width: w, Height: h}); err != nil {
		opts.Logger.WithError(err).Warn("initial resize failed")
	}

	inputHandler := inputui.NewInputHandler(actionCh)
	inputHandler.SetState(state)

	return &Application{
		screen:   screen,
		state:    state,
		reducer:  reducer,
		renderer: renderui.NewRenderer(screen),
		input:    inputHandler,
		actionCh: actionCh,
		store:    opts.Store,
		log:      opts.Logger,
		now:      opts.Now,
	}, nil
}

// Close cleans up resources.
func (app *Application) Close() error {
	close(app.actionCh)
	app.finish()
	return nil
}

// State exposes the session state.
func (app *Application) State() *statepkg.AppState {
	return app.state
}

// recordVisit stores a confirmed pick. Failures are logged and ignored.
func (app *Application) recordVisit(path string) {
	if app.store == nil || path == "" {
		return
	}
	rec, err := app.store.RecordVisit(path, filepath.Base(path), app.now())
	if err != nil {
		app.log.WithError(err).WithField("path", path).Warn("could not record visit")
		return
	}
	app.log.WithFields(logrus.Fields{
		"path":  path,
		"count": rec.AccessCount,
		"score": rec.Score.Raw(),
	}).Debug("visit recorded")
}
