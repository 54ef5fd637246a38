// Package engine detects fullscreen applications and redirects the taskbar.
package engine

import (
	"fmt"
	"log"
	"sync/atomic"
	"time"

	"github.com/frudas24/trayshift/internal/config"
	"github.com/frudas24/trayshift/internal/debuglog"
	"github.com/frudas24/trayshift/internal/fullscreen"
	"github.com/frudas24/trayshift/internal/hook"
	"github.com/frudas24/trayshift/internal/monitor"
	"github.com/frudas24/trayshift/internal/winquery"
)

// defaultJoinTimeout bounds the wait for the poll loop on shutdown.
const defaultJoinTimeout = 5 * time.Second

// Engine owns the redirection state machine. One engine exists per process,
// matching the single taskbar it manages.
type Engine struct {
	desk       winquery.Desktop
	hooks      hook.Installer
	registry   *monitor.Registry
	classifier *fullscreen.Classifier

	settings atomic.Pointer[config.Settings]

	// forcing and tracked are the redirection state. tracked is nonzero
	// only while a fullscreen application is being tracked; both are read
	// from the interception handlers on the shell's thread.
	forcing atomic.Bool
	tracked atomic.Uintptr

	// unloading is set for the whole shutdown sequence so the interception
	// handlers defer to the shell's own placement logic.
	unloading atomic.Bool

	taskbar atomic.Uintptr

	installed   []hook.Handle
	stop        chan struct{}
	done        chan struct{}
	started     bool
	joinTimeout time.Duration
}

// New wires an engine from its collaborators and an initial settings
// snapshot. Initialize must be called before the engine does anything.
func New(desk winquery.Desktop, hooks hook.Installer, settings config.Settings) *Engine {
	e := &Engine{
		desk:        desk,
		hooks:       hooks,
		registry:    monitor.NewRegistry(),
		joinTimeout: defaultJoinTimeout,
	}
	e.settings.Store(&settings)
	e.classifier = fullscreen.New(desk, e.registry.Primary, e.taskbarWindow)
	return e
}

// Initialize resolves displays, installs the interceptions and starts the
// poll loop. On any error nothing stays partially active.
func (e *Engine) Initialize() error {
	if err := e.install(); err != nil {
		return err
	}

	e.stop = make(chan struct{})
	e.done = make(chan struct{})
	e.started = true
	go e.pollLoop()

	debuglog.Logf("initialized")
	return nil
}

// install resolves the taskbar and displays and installs both hooks.
func (e *Engine) install() error {
	cfg := e.settings.Load()
	debuglog.SetEnabled(cfg.EnableLogging)

	if tb := e.desk.TaskbarWindow(); tb != 0 {
		e.taskbar.Store(uintptr(tb))
	} else {
		log.Printf("trayshift: taskbar window not found, will retry on redisplay")
	}

	if err := e.registry.Refresh(e.desk, cfg.SecondaryMonitor); err != nil {
		return err
	}

	stuck, err := e.hooks.Install(hook.TargetSetStuckMonitor, hook.SetStuckMonitorFunc(e.decideStuckMonitor))
	if err != nil {
		return fmt.Errorf("install %s: %w", hook.TargetSetStuckMonitor, err)
	}
	fromPoint, err := e.hooks.Install(hook.TargetMonitorFromPoint, hook.MonitorFromPointFunc(e.resolveMonitorFromPoint))
	if err != nil {
		if rerr := stuck.Remove(); rerr != nil {
			log.Printf("trayshift: hook removal failed: %v", rerr)
		}
		return fmt.Errorf("install %s: %w", hook.TargetMonitorFromPoint, err)
	}
	e.installed = []hook.Handle{stuck, fromPoint}
	return nil
}

// Shutdown stops the poll loop with a bounded wait, restores the taskbar to
// the primary display and removes the interceptions. It always leaves the
// state machine Idle.
func (e *Engine) Shutdown() {
	e.unloading.Store(true)

	if e.started {
		close(e.stop)
		select {
		case <-e.done:
		case <-time.After(e.joinTimeout):
			log.Printf("trayshift: poll loop did not stop in time, shutting down anyway")
		}
		e.started = false
	}

	// Restore while the hooks are still installed; with unloading set they
	// pass the shell's own choice through.
	e.tracked.Store(0)
	e.forcing.Store(false)
	e.requestRedisplay()

	for _, h := range e.installed {
		if err := h.Remove(); err != nil {
			log.Printf("trayshift: hook removal failed: %v", err)
		}
	}
	e.installed = nil
	debuglog.Logf("shut down")
}

// OnConfigurationChanged applies a new settings snapshot and recomputes the
// display registry. A registry failure here is logged, not fatal; the
// interception handlers fall back safely while the secondary is missing.
func (e *Engine) OnConfigurationChanged(settings config.Settings) {
	e.settings.Store(&settings)
	debuglog.SetEnabled(settings.EnableLogging)

	if err := e.registry.Refresh(e.desk, settings.SecondaryMonitor); err != nil {
		log.Printf("trayshift: monitor refresh failed: %v", err)
	}
}

// Forcing reports whether redirection is currently forced.
func (e *Engine) Forcing() bool {
	return e.forcing.Load()
}

// TrackedWindow returns the tracked application window, or zero when Idle.
func (e *Engine) TrackedWindow() winquery.WindowHandle {
	return winquery.WindowHandle(e.tracked.Load())
}

// taskbarWindow returns the cached taskbar handle.
func (e *Engine) taskbarWindow() winquery.WindowHandle {
	return winquery.WindowHandle(e.taskbar.Load())
}

// requestRedisplay asks the taskbar to re-run its placement logic,
// resolving the taskbar window first if it was not found at startup.
func (e *Engine) requestRedisplay() {
	tb := e.taskbarWindow()
	if tb == 0 {
		tb = e.desk.TaskbarWindow()
		if tb == 0 {
			log.Printf("trayshift: taskbar window still not found, redisplay skipped")
			return
		}
		e.taskbar.Store(uintptr(tb))
	}
	e.desk.RequestRedisplay(tb)
}
