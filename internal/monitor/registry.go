// Package monitor resolves and caches display identities.
package monitor

import (
	"errors"
	"fmt"
	"sync/atomic"

	"github.com/frudas24/trayshift/internal/debuglog"
	"github.com/frudas24/trayshift/internal/winquery"
)

// ErrNoSecondaryMonitor indicates the configured secondary display does not
// exist. The system cannot run with fewer than two displays.
var ErrNoSecondaryMonitor = errors.New("secondary monitor not available")

// Snapshot is one wholesale-computed pair of display identities.
type Snapshot struct {
	Primary   winquery.MonitorHandle
	Secondary winquery.MonitorHandle
}

// Registry caches the primary and the configured secondary display. The
// snapshot is replaced wholesale on refresh so concurrent readers never
// observe a half-updated pair.
type Registry struct {
	snap atomic.Pointer[Snapshot]
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	r := &Registry{}
	r.snap.Store(&Snapshot{})
	return r
}

// Refresh recomputes both display identities. secondaryMonitor is the
// 1-based index into the non-primary displays in enumeration order.
func (r *Registry) Refresh(desk winquery.Desktop, secondaryMonitor int) error {
	primary := desk.MonitorFromPoint(winquery.Point{}, winquery.MonitorDefaultToPrimary)

	monitors, err := desk.ListMonitors()
	if err != nil {
		r.snap.Store(&Snapshot{Primary: primary})
		return err
	}

	secondary, ok := SelectSecondary(monitors, secondaryMonitor-1)
	r.snap.Store(&Snapshot{Primary: primary, Secondary: secondary})

	if primary == 0 {
		return errors.New("primary monitor not found")
	}
	if !ok {
		return fmt.Errorf("%w: index %d, %d non-primary displays",
			ErrNoSecondaryMonitor, secondaryMonitor, countNonPrimary(monitors))
	}
	logResolved(monitors, primary, secondary)
	return nil
}

// Primary returns the cached primary display, or zero.
func (r *Registry) Primary() winquery.MonitorHandle {
	return r.snap.Load().Primary
}

// Secondary returns the cached secondary display, or zero.
func (r *Registry) Secondary() winquery.MonitorHandle {
	return r.snap.Load().Secondary
}

// Snapshot returns the current display pair.
func (r *Registry) Snapshot() Snapshot {
	return *r.snap.Load()
}

// SelectSecondary returns the idx-th (0-based) non-primary display in
// enumeration order.
func SelectSecondary(monitors []winquery.MonitorInfo, idx int) (winquery.MonitorHandle, bool) {
	if idx < 0 {
		return 0, false
	}
	current := 0
	for _, m := range monitors {
		if m.Primary {
			continue
		}
		if current == idx {
			return m.Handle, true
		}
		current++
	}
	return 0, false
}

// countNonPrimary counts displays other than the primary.
func countNonPrimary(monitors []winquery.MonitorInfo) int {
	n := 0
	for _, m := range monitors {
		if !m.Primary {
			n++
		}
	}
	return n
}

// logResolved reports the resolved display geometry when logging is enabled.
func logResolved(monitors []winquery.MonitorInfo, primary, secondary winquery.MonitorHandle) {
	if !debuglog.Enabled() {
		return
	}
	for _, m := range monitors {
		switch m.Handle {
		case primary:
			debuglog.Logf("primary monitor: %#x %dx%d", uintptr(m.Handle), m.Bounds.Width(), m.Bounds.Height())
		case secondary:
			debuglog.Logf("secondary monitor: %#x %dx%d", uintptr(m.Handle), m.Bounds.Width(), m.Bounds.Height())
		}
	}
}
