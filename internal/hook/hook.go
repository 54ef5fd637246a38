// Package hook abstracts function interception.
//
// The interception technique itself is supplied by the embedding host; this
// package only names the targets and the typed replacement signatures the
// engine provides.
package hook

import "github.com/frudas24/trayshift/internal/winquery"

// Target names one interceptable entry point.
type Target struct {
	Module string
	Symbol string
}

// String formats the target as module!symbol.
func (t Target) String() string {
	return t.Module + "!" + t.Symbol
}

// Intercepted entry points.
var (
	// TargetMonitorFromPoint is the monitor-resolution query the shell's
	// layout code issues at the desktop origin.
	TargetMonitorFromPoint = Target{Module: "user32.dll", Symbol: "MonitorFromPoint"}

	// TargetSetStuckMonitor is the shell's own "which display should the
	// taskbar dock to" entry point.
	TargetSetStuckMonitor = Target{Module: "taskbar.dll", Symbol: "TrayUI::_SetStuckMonitor"}
)

// MonitorFromPointFunc replaces TargetMonitorFromPoint. It must either
// return a substituted display or delegate to the unintercepted query.
type MonitorFromPointFunc func(pt winquery.Point, flags uint32) winquery.MonitorHandle

// SetStuckMonitorFunc replaces TargetSetStuckMonitor. It receives the
// display the shell chose and returns the display to dock to; the host
// passes the result on to the real implementation.
type SetStuckMonitorFunc func(monitor winquery.MonitorHandle) winquery.MonitorHandle

// Handle represents one installed interception.
type Handle interface {
	Remove() error
}

// Installer installs interceptions for the targets above.
type Installer interface {
	Install(target Target, replacement any) (Handle, error)
}

// nopInstaller accepts every install and intercepts nothing.
type nopInstaller struct{}

// nopHandle is the handle for a nop install.
type nopHandle struct{}

// Nop returns an installer that intercepts nothing. It serves observe-only
// runs where no real interception engine is attached.
func Nop() Installer {
	return nopInstaller{}
}

// Install accepts the replacement without installing anything.
func (nopInstaller) Install(target Target, replacement any) (Handle, error) {
	_ = target
	_ = replacement
	return nopHandle{}, nil
}

// Remove does nothing.
func (nopHandle) Remove() error {
	return nil
}
