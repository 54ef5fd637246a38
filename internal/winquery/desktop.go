// Package winquery defines the window and monitor query surface.
package winquery

// WindowHandle identifies a top-level window. The referent may become
// invalid at any time; liveness must be re-checked before use.
type WindowHandle uintptr

// MonitorHandle identifies a physical display until the next display
// configuration change. Handles are compared by identity, never by geometry.
type MonitorHandle uintptr

// Point is a position in virtual desktop coordinates.
type Point struct {
	X int32
	Y int32
}

// Rect is a rectangle in virtual desktop coordinates.
type Rect struct {
	Left   int32
	Top    int32
	Right  int32
	Bottom int32
}

// Width returns the rectangle width.
func (r Rect) Width() int32 {
	return r.Right - r.Left
}

// Height returns the rectangle height.
func (r Rect) Height() int32 {
	return r.Bottom - r.Top
}

// Contains reports whether the point lies inside the rectangle.
func (r Rect) Contains(pt Point) bool {
	return pt.X >= r.Left && pt.X < r.Right && pt.Y >= r.Top && pt.Y < r.Bottom
}

// MonitorInfo describes one display.
type MonitorInfo struct {
	Handle   MonitorHandle
	Bounds   Rect
	WorkArea Rect
	Primary  bool
}

// Monitor resolution fallback flags, matching the WinAPI values.
const (
	MonitorDefaultToNull    uint32 = 0
	MonitorDefaultToPrimary uint32 = 1
	MonitorDefaultToNearest uint32 = 2
)

// Desktop exposes the OS window and monitor queries the engine relies on.
// All methods are unintercepted: they always reach the real OS logic even
// while redirection hooks are installed.
type Desktop interface {
	ListMonitors() ([]MonitorInfo, error)
	MonitorInfo(m MonitorHandle) (MonitorInfo, error)
	MonitorFromPoint(pt Point, flags uint32) MonitorHandle
	ForegroundWindow() WindowHandle
	WindowRect(w WindowHandle) (Rect, bool)
	WindowVisible(w WindowHandle) bool
	WindowStyleVisible(w WindowHandle) bool
	WindowAlive(w WindowHandle) bool
	WindowTitle(w WindowHandle) string
	DesktopWindow() WindowHandle
	ShellWindow() WindowHandle
	TaskbarWindow() WindowHandle
	RequestRedisplay(taskbar WindowHandle)
	LowerThreadPriority()
}
