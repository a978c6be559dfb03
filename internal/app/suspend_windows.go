//go:build windows

package app

import "os"

// Windows has no SIGTSTP; Ctrl+Z leaves the picker running.
func contSignals() []os.Signal {
	return nil
}

func (app *Application) suspendToShell() {
}

func (app *Application) resumeAfterStop() bool {
	return false
}
