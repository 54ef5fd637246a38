package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

// TestWatch_DeliversReloadedSnapshot verifies a file change produces a new
// whole settings snapshot.
func TestWatch_DeliversReloadedSnapshot(t *testing.T) {
	path := filepath.Join(t.TempDir(), "trayshift.yaml")
	if err := os.WriteFile(path, []byte("pollInterval: 2000\n"), 0o644); err != nil {
		t.Fatalf("write settings: %v", err)
	}

	updates := make(chan Settings, 4)
	w, err := Watch(path, func(s Settings) { updates <- s })
	if err != nil {
		t.Fatalf("Watch failed: %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(path, []byte("pollInterval: 3500\nsecondaryMonitor: 2\n"), 0o644); err != nil {
		t.Fatalf("rewrite settings: %v", err)
	}

	select {
	case cfg := <-updates:
		if cfg.PollIntervalMs != 3500 || cfg.SecondaryMonitor != 2 {
			t.Fatalf("reloaded = %+v", cfg)
		}
	case <-time.After(3 * time.Second):
		t.Fatalf("no reload delivered")
	}
}

// TestWatch_SkipsInvalidReload verifies a broken file is skipped and a later
// valid write still arrives.
func TestWatch_SkipsInvalidReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "trayshift.yaml")
	if err := os.WriteFile(path, []byte("pollInterval: 2000\n"), 0o644); err != nil {
		t.Fatalf("write settings: %v", err)
	}

	updates := make(chan Settings, 4)
	w, err := Watch(path, func(s Settings) { updates <- s })
	if err != nil {
		t.Fatalf("Watch failed: %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(path, []byte("secondaryMonitor: 0\n"), 0o644); err != nil {
		t.Fatalf("rewrite settings: %v", err)
	}
	// Give the debounced reload a chance to (correctly) skip the bad file.
	time.Sleep(2 * debounceDelay)

	if err := os.WriteFile(path, []byte("pollInterval: 4000\n"), 0o644); err != nil {
		t.Fatalf("rewrite settings: %v", err)
	}

	select {
	case cfg := <-updates:
		if cfg.PollIntervalMs != 4000 {
			t.Fatalf("reloaded = %+v", cfg)
		}
	case <-time.After(3 * time.Second):
		t.Fatalf("no reload delivered after valid write")
	}
}
