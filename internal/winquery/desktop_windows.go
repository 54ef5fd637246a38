//go:build windows

// Package winquery defines the window and monitor query surface.
package winquery

import (
	"fmt"
	"syscall"
	"unsafe"

	"github.com/lxn/win"
	"golang.org/x/sys/windows"
)

// displayChangeMessage triggers CTray::_HandleDisplayChange in the shell.
const displayChangeMessage = 0x5B8

// threadPriorityBelowNormal is THREAD_PRIORITY_BELOW_NORMAL (-1) widened to
// an unsigned call argument.
const threadPriorityBelowNormal = 0xFFFFFFFF

// Entry points lxn/win does not export.
var (
	moduser32   = syscall.NewLazyDLL("user32.dll")
	modkernel32 = syscall.NewLazyDLL("kernel32.dll")

	procMonitorFromPoint  = moduser32.NewProc("MonitorFromPoint")
	procGetShellWindow    = moduser32.NewProc("GetShellWindow")
	procIsWindow          = moduser32.NewProc("IsWindow")
	procGetWindowTextW    = moduser32.NewProc("GetWindowTextW")
	procGetCurrentThread  = modkernel32.NewProc("GetCurrentThread")
	procSetThreadPriority = modkernel32.NewProc("SetThreadPriority")
)

// WinDesktop implements Desktop using WinAPI.
type WinDesktop struct{}

// NewDesktop returns the WinAPI-backed desktop query surface.
func NewDesktop() (Desktop, error) {
	return &WinDesktop{}, nil
}

// ListMonitors returns all displays in enumeration order.
func (d *WinDesktop) ListMonitors() ([]MonitorInfo, error) {
	state := &enumState{}
	callback := syscall.NewCallback(state.enumProc)

	if ok := win.EnumDisplayMonitors(0, nil, callback, 0); !ok {
		return nil, fmt.Errorf("EnumDisplayMonitors failed: %w", syscall.GetLastError())
	}
	if len(state.list) == 0 {
		return nil, fmt.Errorf("no monitors detected")
	}
	return state.list, nil
}

type enumState struct {
	list []MonitorInfo
}

// enumProc collects one display per enumeration callback.
func (s *enumState) enumProc(hMonitor win.HMONITOR, hdc win.HDC, rect *win.RECT, lparam uintptr) uintptr {
	var info win.MONITORINFO
	info.CbSize = uint32(unsafe.Sizeof(info))
	if !win.GetMonitorInfo(hMonitor, &info) {
		return 1
	}

	s.list = append(s.list, MonitorInfo{
		Handle:   MonitorHandle(hMonitor),
		Bounds:   fromWinRect(info.RcMonitor),
		WorkArea: fromWinRect(info.RcWork),
		Primary:  info.DwFlags&win.MONITORINFOF_PRIMARY != 0,
	})
	return 1
}

// MonitorInfo returns bounds, work area and primary flag for a display.
func (d *WinDesktop) MonitorInfo(m MonitorHandle) (MonitorInfo, error) {
	var info win.MONITORINFO
	info.CbSize = uint32(unsafe.Sizeof(info))
	if !win.GetMonitorInfo(win.HMONITOR(m), &info) {
		return MonitorInfo{}, fmt.Errorf("GetMonitorInfo failed for %#x", uintptr(m))
	}
	return MonitorInfo{
		Handle:   m,
		Bounds:   fromWinRect(info.RcMonitor),
		WorkArea: fromWinRect(info.RcWork),
		Primary:  info.DwFlags&win.MONITORINFOF_PRIMARY != 0,
	}, nil
}

// MonitorFromPoint resolves the display for a point with the given fallback.
func (d *WinDesktop) MonitorFromPoint(pt Point, flags uint32) MonitorHandle {
	// POINT fits in 8 bytes and is passed by value in a single register
	// on amd64.
	packed := uintptr(uint32(pt.X)) | uintptr(uint32(pt.Y))<<32
	r, _, _ := procMonitorFromPoint.Call(packed, uintptr(flags))
	return MonitorHandle(r)
}

// ForegroundWindow returns the current foreground window.
func (d *WinDesktop) ForegroundWindow() WindowHandle {
	return WindowHandle(win.GetForegroundWindow())
}

// WindowRect returns the window bounding rectangle.
func (d *WinDesktop) WindowRect(w WindowHandle) (Rect, bool) {
	var r win.RECT
	if !win.GetWindowRect(win.HWND(w), &r) {
		return Rect{}, false
	}
	return fromWinRect(r), true
}

// WindowVisible reports whether the window is currently visible.
func (d *WinDesktop) WindowVisible(w WindowHandle) bool {
	return win.IsWindowVisible(win.HWND(w))
}

// WindowStyleVisible reports whether the window style includes WS_VISIBLE.
func (d *WinDesktop) WindowStyleVisible(w WindowHandle) bool {
	style := win.GetWindowLong(win.HWND(w), win.GWL_STYLE)
	return style&win.WS_VISIBLE != 0
}

// WindowAlive reports whether the handle still refers to a live window.
func (d *WinDesktop) WindowAlive(w WindowHandle) bool {
	r, _, _ := procIsWindow.Call(uintptr(w))
	return r != 0
}

// WindowTitle returns the window caption, or an empty string.
func (d *WinDesktop) WindowTitle(w WindowHandle) string {
	var buf [256]uint16
	n, _, _ := procGetWindowTextW.Call(uintptr(w), uintptr(unsafe.Pointer(&buf[0])), uintptr(len(buf)))
	if n == 0 {
		return ""
	}
	return syscall.UTF16ToString(buf[:n])
}

// DesktopWindow returns the desktop root window.
func (d *WinDesktop) DesktopWindow() WindowHandle {
	return WindowHandle(win.GetDesktopWindow())
}

// ShellWindow returns the shell backdrop window.
func (d *WinDesktop) ShellWindow() WindowHandle {
	r, _, _ := procGetShellWindow.Call()
	return WindowHandle(r)
}

// TaskbarWindow returns the taskbar window owned by the current process.
func (d *WinDesktop) TaskbarWindow() WindowHandle {
	className, err := syscall.UTF16PtrFromString("Shell_TrayWnd")
	if err != nil {
		return 0
	}
	h := win.FindWindow(className, nil)
	if h == 0 {
		return 0
	}
	var pid uint32
	if win.GetWindowThreadProcessId(h, &pid) == 0 || pid != windows.GetCurrentProcessId() {
		return 0
	}
	return WindowHandle(h)
}

// RequestRedisplay asks the taskbar to re-run its display placement logic.
func (d *WinDesktop) RequestRedisplay(taskbar WindowHandle) {
	win.SendMessage(win.HWND(taskbar), displayChangeMessage, 0, 0)
}

// LowerThreadPriority drops the calling thread to below-normal priority.
func (d *WinDesktop) LowerThreadPriority() {
	h, _, _ := procGetCurrentThread.Call()
	procSetThreadPriority.Call(h, uintptr(threadPriorityBelowNormal))
}

// fromWinRect converts a WinAPI RECT.
func fromWinRect(r win.RECT) Rect {
	return Rect{Left: r.Left, Top: r.Top, Right: r.Right, Bottom: r.Bottom}
}
