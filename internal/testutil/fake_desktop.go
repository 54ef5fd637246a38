// Package testutil provides recorded-call fakes for tests.
package testutil

import (
	"errors"
	"sync"

	"github.com/frudas24/trayshift/internal/winquery"
)

// errUnknownMonitor indicates a lookup for a handle the fake does not know.
var errUnknownMonitor = errors.New("unknown monitor handle")

// FakeWindow describes one window known to a FakeDesktop.
type FakeWindow struct {
	Rect         winquery.Rect
	Visible      bool
	StyleVisible bool
	Alive        bool
	Title        string
}

// FakeDesktop implements winquery.Desktop over in-memory windows and
// monitors. All mutators are safe against a concurrently running poll loop.
type FakeDesktop struct {
	mu         sync.Mutex
	monitors   []winquery.MonitorInfo
	windows    map[winquery.WindowHandle]FakeWindow
	foreground winquery.WindowHandle
	desktop    winquery.WindowHandle
	shell      winquery.WindowHandle
	taskbar    winquery.WindowHandle
	redisplays []winquery.WindowHandle

	// ListMonitorsErr, when set, fails enumeration.
	ListMonitorsErr error
}

// Ensure FakeDesktop implements the interface.
var _ winquery.Desktop = (*FakeDesktop)(nil)

// NewFakeDesktop returns a fake desktop with the given monitors.
func NewFakeDesktop(monitors ...winquery.MonitorInfo) *FakeDesktop {
	return &FakeDesktop{
		monitors: monitors,
		windows:  make(map[winquery.WindowHandle]FakeWindow),
	}
}

// AddWindow registers a window.
func (f *FakeDesktop) AddWindow(h winquery.WindowHandle, w FakeWindow) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.windows[h] = w
}

// CloseWindow marks a window as no longer alive.
func (f *FakeDesktop) CloseWindow(h winquery.WindowHandle) {
	f.mu.Lock()
	defer f.mu.Unlock()
	w := f.windows[h]
	w.Alive = false
	w.Visible = false
	f.windows[h] = w
}

// SetForeground sets the foreground window.
func (f *FakeDesktop) SetForeground(h winquery.WindowHandle) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.foreground = h
}

// SetRoles assigns the desktop, shell and taskbar windows.
func (f *FakeDesktop) SetRoles(desktop, shell, taskbar winquery.WindowHandle) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.desktop = desktop
	f.shell = shell
	f.taskbar = taskbar
}

// RedisplayCount returns how many redisplay requests were issued.
func (f *FakeDesktop) RedisplayCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.redisplays)
}

// ListMonitors returns the configured monitors.
func (f *FakeDesktop) ListMonitors() ([]winquery.MonitorInfo, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.ListMonitorsErr != nil {
		return nil, f.ListMonitorsErr
	}
	out := make([]winquery.MonitorInfo, len(f.monitors))
	copy(out, f.monitors)
	return out, nil
}

// MonitorInfo returns the monitor with the given handle.
func (f *FakeDesktop) MonitorInfo(m winquery.MonitorHandle) (winquery.MonitorInfo, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, info := range f.monitors {
		if info.Handle == m {
			return info, nil
		}
	}
	return winquery.MonitorInfo{}, errUnknownMonitor
}

// MonitorFromPoint resolves the monitor containing the point, falling back
// per the flags like the real query.
func (f *FakeDesktop) MonitorFromPoint(pt winquery.Point, flags uint32) winquery.MonitorHandle {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, m := range f.monitors {
		if m.Bounds.Contains(pt) {
			return m.Handle
		}
	}
	if flags == winquery.MonitorDefaultToNull {
		return 0
	}
	for _, m := range f.monitors {
		if m.Primary {
			return m.Handle
		}
	}
	if len(f.monitors) > 0 {
		return f.monitors[0].Handle
	}
	return 0
}

// ForegroundWindow returns the current foreground window.
func (f *FakeDesktop) ForegroundWindow() winquery.WindowHandle {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.foreground
}

// WindowRect returns the window rectangle.
func (f *FakeDesktop) WindowRect(h winquery.WindowHandle) (winquery.Rect, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	w, ok := f.windows[h]
	if !ok {
		return winquery.Rect{}, false
	}
	return w.Rect, true
}

// WindowVisible reports the window's visibility.
func (f *FakeDesktop) WindowVisible(h winquery.WindowHandle) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.windows[h].Visible
}

// WindowStyleVisible reports the WS_VISIBLE style bit.
func (f *FakeDesktop) WindowStyleVisible(h winquery.WindowHandle) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.windows[h].StyleVisible
}

// WindowAlive reports whether the window still exists.
func (f *FakeDesktop) WindowAlive(h winquery.WindowHandle) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.windows[h].Alive
}

// WindowTitle returns the window caption.
func (f *FakeDesktop) WindowTitle(h winquery.WindowHandle) string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.windows[h].Title
}

// DesktopWindow returns the desktop root window.
func (f *FakeDesktop) DesktopWindow() winquery.WindowHandle {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.desktop
}

// ShellWindow returns the shell backdrop window.
func (f *FakeDesktop) ShellWindow() winquery.WindowHandle {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.shell
}

// TaskbarWindow returns the taskbar window.
func (f *FakeDesktop) TaskbarWindow() winquery.WindowHandle {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.taskbar
}

// RequestRedisplay records a redisplay request.
func (f *FakeDesktop) RequestRedisplay(taskbar winquery.WindowHandle) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.redisplays = append(f.redisplays, taskbar)
}

// LowerThreadPriority does nothing.
func (f *FakeDesktop) LowerThreadPriority() {}
