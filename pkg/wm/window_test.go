package wm

import (
	"testing"
	"time"
)

// dragTestManager uses a generous threshold so gestures can stop well inside
// the snap zone without pixel-exact positioning.
func dragTestManager(t *testing.T) (*Manager, *Window) {
	t.Helper()
	m := testManager(t, Config{SnapThreshold: 50, Transition: 100 * time.Millisecond})
	w, err := m.Spawn("panel", SpawnOptions{})
	if err != nil {
		t.Fatalf("spawn: %v", err)
	}
	return m, w
}

func TestDragKeepsPointerOffset(t *testing.T) {
	_, w := dragTestManager(t)
	// Grab 3 cells right and 1 below the origin.
	grabX, grabY := w.Frame.X+3, w.Frame.Y+1
	w.StartDrag(grabX, grabY)
	if !w.Dragging() {
		t.Fatal("drag did not start")
	}

	w.DragTo(100, 30)
	if w.Frame.X != 97 || w.Frame.Y != 29 {
		t.Errorf("frame origin = (%d,%d), want (97,29)", w.Frame.X, w.Frame.Y)
	}
	if w.Placement.Kind != PlacementFree {
		t.Errorf("placement = %v, want free mid-drag", w.Placement)
	}
}

func TestDragClampsToViewport(t *testing.T) {
	m, w := dragTestManager(t)
	w.StartDrag(w.Frame.X, w.Frame.Y)

	vw, vh := m.Viewport()
	for _, p := range []struct{ x, y int }{
		{-500, -500},
		{500, 500},
		{-500, 500},
		{500, -500},
	} {
		w.DragTo(p.x, p.y)
		if w.Frame.X < 0 || w.Frame.X > vw-w.Frame.Width {
			t.Errorf("DragTo(%d,%d): x = %d out of [0,%d]", p.x, p.y, w.Frame.X, vw-w.Frame.Width)
		}
		if w.Frame.Y < 0 || w.Frame.Y > vh-w.Frame.Height {
			t.Errorf("DragTo(%d,%d): y = %d out of [0,%d]", p.x, p.y, w.Frame.Y, vh-w.Frame.Height)
		}
	}
}

func TestDragRaisesWindow(t *testing.T) {
	m, w := dragTestManager(t)
	other, _ := m.Spawn("panel", SpawnOptions{})
	if w.StackOrder > other.StackOrder {
		t.Fatal("setup: other should be on top")
	}
	w.StartDrag(w.Frame.X, w.Frame.Y)
	if w.StackOrder <= other.StackOrder {
		t.Error("drag start must raise the window")
	}
}

func TestSnapPreviewTracksThresholdAndOccupancy(t *testing.T) {
	m, w := dragTestManager(t)
	w.StartDrag(w.Frame.X, w.Frame.Y)

	w.DragTo(100, 20)
	if w.PreviewLeft || w.PreviewRight {
		t.Error("preview lit far from both edges")
	}

	w.DragTo(10, 20)
	if !w.PreviewLeft {
		t.Error("left preview not lit inside threshold")
	}
	if w.PreviewRight {
		t.Error("right preview lit at the left edge")
	}
	w.EndDrag(10, 20)
	w.CompleteTransition()

	// Left slot now occupied; a second window near the same edge gets no
	// preview and no commit.
	second, _ := m.Spawn("panel", SpawnOptions{})
	second.StartDrag(second.Frame.X, second.Frame.Y)
	second.DragTo(10, 20)
	if second.PreviewLeft {
		t.Error("preview lit for an occupied slot")
	}
	second.EndDrag(10, 20)
	if second.Placement.Kind != PlacementFree {
		t.Errorf("placement = %v, want free when slot occupied", second.Placement)
	}
	if m.SlotOwner(SlotLeft) != w {
		t.Error("occupied slot changed owner")
	}
}

func TestEndDragCommitsSnap(t *testing.T) {
	m, w := dragTestManager(t)
	w.StartDrag(w.Frame.X, w.Frame.Y)
	w.DragTo(195, 20) // clamped against the right edge
	w.EndDrag(195, 20)

	if w.Placement != Snapped(SlotRight) {
		t.Fatalf("placement = %v, want snapped(right)", w.Placement)
	}
	if m.SlotOwner(SlotRight) != w {
		t.Error("slot not claimed on commit")
	}
	if w.Dragging() {
		t.Error("drag state must clear on release")
	}
	if w.PreviewLeft || w.PreviewRight {
		t.Error("previews must clear on release")
	}

	w.CompleteTransition()
	if want := SlotRect(SlotRight, 200, 50); w.Frame != want {
		t.Errorf("frame = %+v, want slot rect %+v", w.Frame, want)
	}
}

func TestEndDragFarFromEdgesStaysFree(t *testing.T) {
	m, w := dragTestManager(t)
	w.StartDrag(w.Frame.X, w.Frame.Y)
	w.DragTo(80, 20)
	w.EndDrag(80, 20)

	if w.Placement.Kind != PlacementFree {
		t.Errorf("placement = %v, want free", w.Placement)
	}
	if w.Frame.X != 80 || w.Frame.Y != 20 {
		t.Errorf("frame origin = (%d,%d), want (80,20)", w.Frame.X, w.Frame.Y)
	}
	if !m.IsSlotFree(SlotLeft) || !m.IsSlotFree(SlotRight) {
		t.Error("no slot should be claimed")
	}
}

func TestCancelDragResolvesAtLastFrame(t *testing.T) {
	m, w := dragTestManager(t)
	w.StartDrag(w.Frame.X+2, w.Frame.Y)
	w.DragTo(7, 20) // frame.X = 5, inside the left snap zone
	w.CancelDrag()

	if w.Dragging() {
		t.Fatal("cancel must end the gesture")
	}
	if w.Placement != Snapped(SlotLeft) {
		t.Errorf("placement = %v, want snapped(left) exactly as a release would", w.Placement)
	}
	if m.SlotOwner(SlotLeft) != w {
		t.Error("cancel near edge must claim the slot")
	}
}

func TestStartDragUndocksSnappedWindow(t *testing.T) {
	m, w := dragTestManager(t)
	w.StartDrag(w.Frame.X, w.Frame.Y)
	w.DragTo(5, 5)
	w.EndDrag(5, 5)
	w.CompleteTransition()
	if w.Placement != Snapped(SlotLeft) {
		t.Fatalf("setup: placement = %v", w.Placement)
	}

	w.StartDrag(w.Frame.X+1, w.Frame.Y+1)
	if !m.IsSlotFree(SlotLeft) {
		t.Error("slot must release the moment the grab starts")
	}
	if w.Placement.Kind != PlacementFree {
		t.Errorf("placement = %v, want free", w.Placement)
	}
	if w.Frame.Width != w.Natural.Width || w.Frame.Height != w.Natural.Height {
		t.Errorf("frame size = %dx%d, want natural %dx%d",
			w.Frame.Width, w.Frame.Height, w.Natural.Width, w.Natural.Height)
	}
}

func TestMobileDisablesSnapping(t *testing.T) {
	m := testManager(t, Config{ViewportWidth: 60, SnapThreshold: 50})
	w, _ := m.Spawn("panel", SpawnOptions{})

	w.StartDrag(w.Frame.X, w.Frame.Y)
	w.DragTo(1, 5)
	if w.PreviewLeft || w.PreviewRight {
		t.Error("snap preview lit below the mobile breakpoint")
	}
	w.EndDrag(1, 5)
	if w.Placement.Kind != PlacementFree {
		t.Errorf("placement = %v, want free; snapping is disabled on mobile", w.Placement)
	}
	if !m.IsSlotFree(SlotLeft) {
		t.Error("slot claimed below the mobile breakpoint")
	}
}

func TestCenterReleasesSlot(t *testing.T) {
	m, w := dragTestManager(t)
	p := Snapped(SlotLeft)
	snapped, _ := m.Spawn("panel", SpawnOptions{Placement: &p})
	_ = w

	snapped.Center()
	if !m.IsSlotFree(SlotLeft) {
		t.Error("center must release the held slot")
	}
	if snapped.Placement.Kind != PlacementCentered {
		t.Errorf("placement = %v, want centered", snapped.Placement)
	}
	snapped.CompleteTransition()
	if want := CenteredRect(snapped.Natural, DefaultMaxCenteredWidth, 200, 50); snapped.Frame != want {
		t.Errorf("frame = %+v, want %+v", snapped.Frame, want)
	}
}

func TestClosingWindowIgnoresGestures(t *testing.T) {
	_, w := dragTestManager(t)
	w.Close()
	w.StartDrag(w.Frame.X, w.Frame.Y)
	if w.Dragging() {
		t.Error("closing window accepted a drag")
	}
}

func TestStaleSettleNeverFires(t *testing.T) {
	_, w := dragTestManager(t)

	var fired []string
	w.startTransition(Rect{X: 10, Y: 10, Width: 40, Height: 10}, 100*time.Millisecond, func() {
		fired = append(fired, "first")
	})
	// Replace before the first settles: last transition wins.
	w.startTransition(Rect{X: 20, Y: 20, Width: 40, Height: 10}, 100*time.Millisecond, func() {
		fired = append(fired, "second")
	})

	w.stepTransition(time.Second)
	if len(fired) != 1 || fired[0] != "second" {
		t.Errorf("settles fired = %v, want [second]", fired)
	}
	if (w.Frame != Rect{X: 20, Y: 20, Width: 40, Height: 10}) {
		t.Errorf("frame = %+v, want the replacement target", w.Frame)
	}
}

func TestTransitionLandsExactlyOnTarget(t *testing.T) {
	_, w := dragTestManager(t)
	target := Rect{X: 3, Y: 7, Width: 41, Height: 11}
	w.startTransition(target, 90*time.Millisecond, nil)

	for i := 0; i < 10; i++ {
		w.stepTransition(10 * time.Millisecond)
	}
	if w.Frame != target {
		t.Errorf("frame = %+v, want exact target %+v", w.Frame, target)
	}
	if w.InTransition() {
		t.Error("transition still in flight after its duration")
	}
}
