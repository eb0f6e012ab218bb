package main

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/f/foliodesk/pkg/config"
	"github.com/f/foliodesk/pkg/contrib"
	"github.com/f/foliodesk/pkg/template"
	"github.com/f/foliodesk/pkg/wm"
)

func newTestModel(t *testing.T) *model {
	t.Helper()
	cfg, err := config.LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("config: %v", err)
	}
	reg := template.NewRegistry()
	if err := registerBuiltins(reg); err != nil {
		t.Fatalf("builtins: %v", err)
	}
	m := newModel(cfg, "config.yaml", "contributions.json", reg, contrib.Data{2025: {1, 5, 13}})
	m.Update(tea.WindowSizeMsg{Width: 200, Height: 50})
	return m
}

func press(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
}

func motion(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionMotion}
}

func release(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft}
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestInitialSpawn(t *testing.T) {
	m := newTestModel(t)
	if m.mgr.Len() != 3 {
		t.Fatalf("%d windows after first resize, want the builtin trio", m.mgr.Len())
	}
	for _, w := range m.mgr.Windows() {
		if w.Placement.Kind != wm.PlacementCentered {
			t.Errorf("%s placement = %v, want centered", w.ID, w.Placement)
		}
	}
}

func TestTitleBarDragSnapsLeft(t *testing.T) {
	m := newTestModel(t)
	w := m.focused()
	grabX, grabY := w.Frame.X+12, w.Frame.Y+1
	offsetX := grabX - w.Frame.X

	m.Update(press(grabX, grabY))
	if m.drag != w {
		t.Fatal("press on title bar did not start a drag")
	}
	// Pointer at x=offsetX puts the frame origin on x=0, inside the zone.
	m.Update(motion(offsetX, grabY))
	m.Update(release(offsetX, grabY))

	if w.Placement != wm.Snapped(wm.SlotLeft) {
		t.Fatalf("placement = %v, want snapped(left)", w.Placement)
	}
	if m.drag != nil {
		t.Error("drag pointer not cleared on release")
	}
}

func TestBodyClickFocusesWithoutDrag(t *testing.T) {
	m := newTestModel(t)
	stacked := m.mgr.Stacked()
	bottom := stacked[0]
	// Click inside the bottom window's body, below its title bar. All three
	// are centered, so aim at a row the top windows also cover only if
	// stacking is wrong.
	m.Update(press(bottom.Frame.X+5, bottom.Frame.Y+4))
	hit := m.focused()
	if m.drag != nil {
		t.Error("body click started a drag")
	}
	if hit == nil {
		t.Fatal("nothing focused after click")
	}
}

func TestCloseControlClosesWindow(t *testing.T) {
	m := newTestModel(t)
	w := m.focused()
	m.Update(press(w.Frame.X+1+closeGlyphCol, w.Frame.Y+1))
	if !w.Closing {
		t.Fatal("close control did not close the window")
	}
}

func TestCenterControlRecenters(t *testing.T) {
	m := newTestModel(t)
	w := m.focused()

	// Snap it first.
	m.Update(press(w.Frame.X+12, w.Frame.Y+1))
	m.Update(motion(0, 1))
	m.Update(release(0, 1))
	w.CompleteTransition()
	if w.Placement.Kind != wm.PlacementSnapped {
		t.Fatalf("setup: placement = %v", w.Placement)
	}

	m.Update(press(w.Frame.X+1+centerGlyphCol, w.Frame.Y+1))
	if w.Placement.Kind != wm.PlacementCentered {
		t.Errorf("placement = %v, want centered", w.Placement)
	}
	if !m.mgr.IsSlotFree(wm.SlotLeft) {
		t.Error("slot not released by the center control")
	}
}

func TestConsoleToggleSpawnsThenRaises(t *testing.T) {
	m := newTestModel(t)
	before := m.mgr.Len()

	m.Update(keyRunes("`"))
	if m.mgr.Len() != before+1 {
		t.Fatal("toggle did not spawn the console")
	}
	con := m.findWindow(m.consoleWin)
	if con == nil {
		t.Fatal("console window id not tracked")
	}

	// Bury the console, then toggle again: it must be raised, not respawned.
	m.mgr.Windows()[0].Focus()
	m.Update(keyRunes("`"))
	if m.mgr.Len() != before+1 {
		t.Error("second toggle spawned a duplicate console")
	}
	if m.focused() != con {
		t.Error("second toggle did not raise the console")
	}
}

func TestRespawnAfterAllClosed(t *testing.T) {
	m := newTestModel(t)
	for _, w := range append([]*wm.Window(nil), m.mgr.Windows()...) {
		w.Close()
	}
	m.mgr.StepTransitions(time.Second)
	if m.mgr.Len() != 0 || !m.allClosed {
		t.Fatalf("setup: %d windows, allClosed=%v", m.mgr.Len(), m.allClosed)
	}

	m.Update(keyRunes("r"))
	if m.mgr.Len() == 0 {
		t.Fatal("respawn key did not restore panels")
	}
	if m.allClosed {
		t.Error("allClosed still set after respawn")
	}
}

func TestEscClosesFocusedWindow(t *testing.T) {
	m := newTestModel(t)
	w := m.focused()
	m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if !w.Closing {
		t.Error("esc did not close the focused window")
	}
}

func TestViewRendersRestartHint(t *testing.T) {
	m := newTestModel(t)
	for _, w := range append([]*wm.Window(nil), m.mgr.Windows()...) {
		w.Close()
	}
	m.mgr.StepTransitions(time.Second)

	out := m.View()
	if out == "" {
		t.Fatal("empty view")
	}
	if !containsPlain(out, "press r to restore") {
		t.Errorf("restart hint missing from view")
	}
}

func TestHostSpawnAndClose(t *testing.T) {
	m := newTestModel(t)
	id, err := m.Spawn("about")
	if err != nil {
		t.Fatalf("host spawn: %v", err)
	}
	if m.findWindow(id) == nil {
		t.Fatal("spawned window not registered")
	}
	if err := m.Close(id); err != nil {
		t.Fatalf("host close: %v", err)
	}
	if m.findWindow(id) != nil {
		t.Error("host close did not evict the window")
	}
	if err := m.Close("win-999"); err == nil {
		t.Error("closing an unknown window must error")
	}
}

// containsPlain searches ignoring ANSI styling.
func containsPlain(s, sub string) bool {
	plain := make([]rune, 0, len(s))
	inAnsi := false
	for _, r := range s {
		switch {
		case r == '\x1b':
			inAnsi = true
		case inAnsi:
			if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') {
				inAnsi = false
			}
		default:
			plain = append(plain, r)
		}
	}
	return strings.Contains(string(plain), sub)
}
