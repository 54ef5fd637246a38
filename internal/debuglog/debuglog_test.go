package debuglog

import (
	"bytes"
	"log"
	"strings"
	"testing"
)

// TestLogf_RespectsEnableToggle verifies nothing is written while disabled.
func TestLogf_RespectsEnableToggle(t *testing.T) {
	var buf bytes.Buffer
	orig := log.Writer()
	log.SetOutput(&buf)
	defer log.SetOutput(orig)

	SetEnabled(false)
	Logf("hidden %d", 1)
	if buf.Len() != 0 {
		t.Fatalf("disabled sink wrote: %q", buf.String())
	}

	SetEnabled(true)
	defer SetEnabled(false)
	Logf("visible %d", 2)
	if !strings.Contains(buf.String(), "trayshift: visible 2") {
		t.Fatalf("enabled sink wrote: %q", buf.String())
	}
}
