// Package engine detects fullscreen applications and redirects the taskbar.
package engine

import (
	"github.com/frudas24/trayshift/internal/debuglog"
	"github.com/frudas24/trayshift/internal/winquery"
)

// resolveMonitorFromPoint replaces the monitor-resolution query. Only the
// sentinel origin query the shell's layout code uses to find the primary
// display is redirected; every other caller reaches the real logic.
func (e *Engine) resolveMonitorFromPoint(pt winquery.Point, flags uint32) winquery.MonitorHandle {
	if pt.X == 0 && pt.Y == 0 && e.forcing.Load() {
		if secondary := e.registry.Secondary(); secondary != 0 {
			return secondary
		}
	}
	return e.desk.MonitorFromPoint(pt, flags)
}

// decideStuckMonitor replaces the shell's docking decision. It substitutes
// the secondary display while forcing and the primary while idle; during
// shutdown the shell's own choice passes through untouched.
func (e *Engine) decideStuckMonitor(proposed winquery.MonitorHandle) winquery.MonitorHandle {
	switch {
	case e.unloading.Load():
	case e.forcing.Load():
		if secondary := e.registry.Secondary(); secondary != 0 {
			debuglog.Logf("stuck monitor: forcing secondary")
			proposed = secondary
		}
	default:
		if primary := e.registry.Primary(); primary != 0 {
			debuglog.Logf("stuck monitor: primary")
			proposed = primary
		}
	}

	// The shell must never receive a null display.
	if proposed == 0 {
		proposed = e.desk.MonitorFromPoint(winquery.Point{}, winquery.MonitorDefaultToNearest)
	}
	return proposed
}
