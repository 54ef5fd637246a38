// Package fullscreen classifies windows against the primary display.
package fullscreen

import "github.com/frudas24/trayshift/internal/winquery"

// Tolerance is the slack, in pixels, allowed between a window and the
// primary work area before the window stops counting as fullscreen. It
// accommodates borderless-windowed titles that leave a few pixels of border.
const Tolerance = 10

// Classifier decides whether a window is a fullscreen application on the
// primary display. The decision is a geometric heuristic, not an OS flag.
type Classifier struct {
	desk    winquery.Desktop
	primary func() winquery.MonitorHandle
	exclude func() winquery.WindowHandle
}

// New returns a classifier. primary supplies the current primary display
// and exclude supplies the managed taskbar window, which never classifies
// as fullscreen.
func New(desk winquery.Desktop, primary func() winquery.MonitorHandle, exclude func() winquery.WindowHandle) *Classifier {
	return &Classifier{desk: desk, primary: primary, exclude: exclude}
}

// IsFullscreen reports whether the window covers the primary display's work
// area within Tolerance. Any failed query classifies as not fullscreen.
func (c *Classifier) IsFullscreen(w winquery.WindowHandle) bool {
	if w == 0 || !c.desk.WindowVisible(w) {
		return false
	}
	if w == c.desk.DesktopWindow() || w == c.desk.ShellWindow() || w == c.exclude() {
		return false
	}
	if !c.desk.WindowStyleVisible(w) {
		return false
	}

	rect, ok := c.desk.WindowRect(w)
	if !ok {
		return false
	}

	primary := c.primary()
	if primary == 0 {
		return false
	}
	owner := c.desk.MonitorFromPoint(winquery.Point{X: rect.Left, Y: rect.Top}, winquery.MonitorDefaultToNearest)
	if owner != primary {
		return false
	}

	info, err := c.desk.MonitorInfo(owner)
	if err != nil {
		return false
	}
	work := info.WorkArea
	return rect.Width() >= work.Width()-Tolerance && rect.Height() >= work.Height()-Tolerance
}
