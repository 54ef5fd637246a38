//go:build !windows

// Package winquery defines the window and monitor query surface.
package winquery

import "errors"

// ErrUnsupported indicates WinAPI queries are not available.
var ErrUnsupported = errors.New("winquery is only supported on Windows")

// NewDesktop returns an error on non-Windows platforms.
func NewDesktop() (Desktop, error) {
	return nil, ErrUnsupported
}
