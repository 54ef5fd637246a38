package engine

import (
	"testing"

	"github.com/frudas24/trayshift/internal/testutil"
	"github.com/frudas24/trayshift/internal/winquery"
)

// TestTick_EntersForcingOnFullscreen verifies the Idle -> Forcing entry
// transition triggers one redisplay.
func TestTick_EntersForcingOnFullscreen(t *testing.T) {
	desk := newTestDesktop()
	e, _ := newInstalledEngine(t, desk)

	addFullscreenWindow(desk, gameWnd, "game")
	desk.SetForeground(gameWnd)

	var ps pollState
	e.tick(&ps)

	if !e.Forcing() {
		t.Fatalf("not forcing after fullscreen foreground")
	}
	if got := e.TrackedWindow(); got != gameWnd {
		t.Fatalf("tracked window = %#x, want %#x", uintptr(got), uintptr(gameWnd))
	}
	if got := desk.RedisplayCount(); got != 1 {
		t.Fatalf("redisplay count = %d, want 1", got)
	}
}

// TestTick_RepeatedEntriesAreIdempotent verifies repeated ticks while
// already forcing change nothing and trigger no extra redisplay, even when
// a different fullscreen window takes the foreground.
func TestTick_RepeatedEntriesAreIdempotent(t *testing.T) {
	desk := newTestDesktop()
	e, _ := newInstalledEngine(t, desk)

	addFullscreenWindow(desk, gameWnd, "game")
	desk.SetForeground(gameWnd)

	var ps pollState
	e.tick(&ps)
	e.tick(&ps)
	e.tick(&ps)

	addFullscreenWindow(desk, otherWnd, "other")
	desk.SetForeground(otherWnd)
	e.tick(&ps)

	if got := e.TrackedWindow(); got != gameWnd {
		t.Fatalf("tracked window = %#x, want original %#x", uintptr(got), uintptr(gameWnd))
	}
	if got := desk.RedisplayCount(); got != 1 {
		t.Fatalf("redisplay count = %d, want 1", got)
	}
}

// TestTick_AltTabAwayKeepsForcing verifies a non-fullscreen foreground
// change does not release redirection while the tracked application lives.
func TestTick_AltTabAwayKeepsForcing(t *testing.T) {
	desk := newTestDesktop()
	e, _ := newInstalledEngine(t, desk)

	addFullscreenWindow(desk, gameWnd, "game")
	desk.SetForeground(gameWnd)
	var ps pollState
	e.tick(&ps)

	desk.AddWindow(otherWnd, winFakeSmall())
	desk.SetForeground(otherWnd)
	e.tick(&ps)

	if !e.Forcing() {
		t.Fatalf("forcing released by foreground change")
	}
	if got := desk.RedisplayCount(); got != 1 {
		t.Fatalf("redisplay count = %d, want 1", got)
	}
}

// TestTick_RestoresWhenTrackedWindowCloses verifies the liveness check is
// the sole release path: the next tick after the close restores Idle with
// exactly one redisplay.
func TestTick_RestoresWhenTrackedWindowCloses(t *testing.T) {
	desk := newTestDesktop()
	e, _ := newInstalledEngine(t, desk)

	addFullscreenWindow(desk, gameWnd, "game")
	desk.SetForeground(gameWnd)
	var ps pollState
	e.tick(&ps)

	desk.CloseWindow(gameWnd)
	e.tick(&ps)

	if e.Forcing() || e.TrackedWindow() != 0 {
		t.Fatalf("state after close = forcing %t tracked %#x, want idle",
			e.Forcing(), uintptr(e.TrackedWindow()))
	}
	if got := desk.RedisplayCount(); got != 2 {
		t.Fatalf("redisplay count = %d, want 2 (enter + restore)", got)
	}

	e.tick(&ps)
	if got := desk.RedisplayCount(); got != 2 {
		t.Fatalf("extra redisplay after restoration: %d", got)
	}
}

// TestTick_ChangeGateSkipsUnchangedForeground verifies an unchanged
// foreground window is not re-evaluated.
func TestTick_ChangeGateSkipsUnchangedForeground(t *testing.T) {
	desk := newTestDesktop()
	e, _ := newInstalledEngine(t, desk)

	desk.AddWindow(otherWnd, winFakeSmall())
	desk.SetForeground(otherWnd)
	var ps pollState
	e.tick(&ps)

	// The window grows to fullscreen size but stays foreground; the gate
	// skips it until the foreground changes.
	addFullscreenWindow(desk, otherWnd, "grown")
	e.tick(&ps)
	if e.Forcing() {
		t.Fatalf("unchanged foreground was re-evaluated")
	}

	desk.SetForeground(taskbarWnd)
	e.tick(&ps)
	desk.SetForeground(otherWnd)
	e.tick(&ps)
	if !e.Forcing() {
		t.Fatalf("fullscreen window not detected after foreground change")
	}
}

// TestScenario_FullscreenLifecycle walks the end-to-end scenario: detect,
// redirect, close, restore.
func TestScenario_FullscreenLifecycle(t *testing.T) {
	desk := newTestDesktop()
	e, _ := newInstalledEngine(t, desk)

	addFullscreenWindow(desk, gameWnd, "Alan Wake 2")
	desk.SetForeground(gameWnd)
	var ps pollState
	e.tick(&ps)

	if got := e.decideStuckMonitor(monA); got != monB {
		t.Fatalf("docking decision while forcing = %#x, want secondary %#x", uintptr(got), uintptr(monB))
	}
	if got := e.resolveMonitorFromPoint(winquery.Point{}, winquery.MonitorDefaultToPrimary); got != monB {
		t.Fatalf("origin resolution while forcing = %#x, want secondary %#x", uintptr(got), uintptr(monB))
	}

	desk.CloseWindow(gameWnd)
	e.tick(&ps)

	if got := e.decideStuckMonitor(monB); got != monA {
		t.Fatalf("docking decision after restore = %#x, want primary %#x", uintptr(got), uintptr(monA))
	}
}

// winFakeSmall returns a small visible window on the primary display.
func winFakeSmall() testutil.FakeWindow {
	return testutil.FakeWindow{
		Rect:         winquery.Rect{Left: 100, Top: 100, Right: 900, Bottom: 700},
		Visible:      true,
		StyleVisible: true,
		Alive:        true,
	}
}
