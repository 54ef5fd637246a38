// Package testutil provides recorded-call fakes for tests.
package testutil

import (
	"sync"

	"github.com/frudas24/trayshift/internal/hook"
)

// InstalledHook records one interception install.
type InstalledHook struct {
	Target      hook.Target
	Replacement any
	Removed     bool
}

// RecorderInstaller implements hook.Installer and records installs.
type RecorderInstaller struct {
	mu    sync.Mutex
	Hooks []*InstalledHook

	// FailOn makes Install fail for the listed targets.
	FailOn map[hook.Target]error
}

// Ensure RecorderInstaller implements the interface.
var _ hook.Installer = (*RecorderInstaller)(nil)

// Install records the install or fails per FailOn.
func (r *RecorderInstaller) Install(target hook.Target, replacement any) (hook.Handle, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.FailOn[target]; err != nil {
		return nil, err
	}
	h := &InstalledHook{Target: target, Replacement: replacement}
	r.Hooks = append(r.Hooks, h)
	return &recordedHandle{installer: r, hook: h}, nil
}

// Installed returns the recorded install for a target, or nil.
func (r *RecorderInstaller) Installed(target hook.Target) *InstalledHook {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, h := range r.Hooks {
		if h.Target == target {
			return h
		}
	}
	return nil
}

// recordedHandle marks its install as removed.
type recordedHandle struct {
	installer *RecorderInstaller
	hook      *InstalledHook
}

// Remove marks the install removed.
func (h *recordedHandle) Remove() error {
	h.installer.mu.Lock()
	defer h.installer.mu.Unlock()
	h.hook.Removed = true
	return nil
}
