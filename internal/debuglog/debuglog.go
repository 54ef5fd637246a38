// Package debuglog provides the optional diagnostic log sink.
package debuglog

import (
	"log"
	"sync/atomic"
)

// enabled controls whether diagnostic logs are emitted.
var enabled atomic.Bool

// SetEnabled enables/disables diagnostic logging.
func SetEnabled(on bool) {
	enabled.Store(on)
}

// Enabled reports whether diagnostic logging is enabled. Callers use it to
// skip expensive argument preparation when logging is off.
func Enabled() bool {
	return enabled.Load()
}

// Logf emits one diagnostic line. The format arguments are not evaluated
// into a string unless logging is enabled.
func Logf(format string, args ...any) {
	if !enabled.Load() {
		return
	}
	log.Printf("trayshift: "+format, args...)
}
