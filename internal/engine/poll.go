// Package engine detects fullscreen applications and redirects the taskbar.
package engine

import (
	"runtime"
	"time"

	"github.com/frudas24/trayshift/internal/debuglog"
	"github.com/frudas24/trayshift/internal/winquery"
)

// heartbeatEvery throttles the poll loop liveness log line.
const heartbeatEvery = 60

// pollState is the per-loop bookkeeping between ticks.
type pollState struct {
	lastChecked winquery.WindowHandle
	iteration   int
}

// pollLoop samples the foreground window at the configured cadence until
// the stop channel closes.
func (e *Engine) pollLoop() {
	defer close(e.done)

	// Pin the goroutine so the reduced priority sticks to one OS thread
	// and never competes with a game's render thread.
	runtime.LockOSThread()
	e.desk.LowerThreadPriority()

	debuglog.Logf("poll loop started")
	var ps pollState
	for {
		e.tick(&ps)

		interval := e.settings.Load().PollInterval()
		select {
		case <-e.stop:
			debuglog.Logf("poll loop stopped")
			return
		case <-time.After(interval):
		}
	}
}

// tick runs one poll cycle: liveness check, change-detection gate, entry
// transition.
func (e *Engine) tick(ps *pollState) {
	ps.iteration++
	if ps.iteration%heartbeatEvery == 1 {
		debuglog.Logf("poll loop alive, iteration %d", ps.iteration)
	}

	fg := e.desk.ForegroundWindow()

	// The tracked application closing (or crashing) is the only event that
	// releases redirection. No close notification is ever received from the
	// application; liveness is re-checked every tick.
	if tracked := e.TrackedWindow(); tracked != 0 && !e.desk.WindowAlive(tracked) {
		debuglog.Logf("tracked application closed, restoring taskbar")
		e.tracked.Store(0)
		e.forcing.Store(false)
		e.requestRedisplay()
	}

	if fg == ps.lastChecked {
		return
	}
	ps.lastChecked = fg

	// Entry only from Idle: once forcing, alt-tabbing away must not release
	// the redirection while the tracked application is still running.
	if !e.forcing.Load() && e.classifier.IsFullscreen(fg) {
		if debuglog.Enabled() {
			debuglog.Logf("fullscreen application detected: %q", e.desk.WindowTitle(fg))
		}
		e.tracked.Store(uintptr(fg))
		e.forcing.Store(true)
		e.requestRedisplay()
	}
}
