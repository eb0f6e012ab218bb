package wm

import (
	"github.com/f/foliodesk/pkg/template"
)

// Window is one draggable, snappable, closable panel. All transitions run
// synchronously inside UI event callbacks; a window is either at rest or
// mid-drag, never both, and placement is orthogonal to drag state.
type Window struct {
	ID       string
	Title    string
	Template *template.Template

	// Frame is the currently rendered bounding box. For SNAPPED and
	// CENTERED placements it is a derived value recomputed on viewport
	// resize; for FREE it is authoritative.
	Frame Rect

	// Natural is the content-driven size the window returns to when it
	// leaves a slot.
	Natural Size

	Placement  Placement
	StackOrder int

	// Closing is set once the close affordance fires; the window stays in
	// the registry until its fade-out settles.
	Closing bool

	// Snap-zone indicators, valid only while dragging. An indicator is lit
	// only when the window is edge-proximal and the slot is free.
	PreviewLeft  bool
	PreviewRight bool

	mgr  *Manager
	drag *dragState

	transition    *Transition
	transitionSeq uint64
}

// Dragging reports whether a drag gesture is active.
func (w *Window) Dragging() bool { return w.drag != nil }

// StartDrag begins a gesture at the given pointer position. The
// pointer-to-frame offset is captured now and held for the whole gesture.
// A snapped window releases its slot immediately and reverts to its natural
// size so the drag does not inherit slot-fixed dimensions.
func (w *Window) StartDrag(pointerX, pointerY int) {
	if w.Closing {
		return
	}
	// A new gesture always resets to a consistent base: any in-flight
	// transition lands on its target first.
	w.CompleteTransition()

	if w.Placement.Kind == PlacementSnapped {
		w.mgr.ReleaseSlot(w.Placement.Slot)
		w.Frame.Width = w.Natural.Width
		w.Frame.Height = w.Natural.Height
		w.Placement = Free()
	}
	w.drag = &dragState{
		offsetX: pointerX - w.Frame.X,
		offsetY: pointerY - w.Frame.Y,
	}
	w.mgr.BringToFront(w)
}

// DragTo moves the window with the pointer. The candidate origin is the
// pointer minus the captured offset, clamped so the window never leaves the
// viewport on either axis. Placement becomes FREE and the snap-zone
// indicators are recomputed against the same threshold used at commit time.
func (w *Window) DragTo(pointerX, pointerY int) {
	if w.drag == nil {
		return
	}
	w.Frame.X = pointerX - w.drag.offsetX
	w.Frame.Y = pointerY - w.drag.offsetY
	w.Frame = ClampToViewport(w.Frame, w.mgr.width, w.mgr.height)
	w.Placement = Free()
	w.updatePreview()
}

// EndDrag finishes the gesture. The final bounding box is evaluated against
// the snap threshold: near the left edge with LEFT free commits
// SNAPPED(LEFT); the right edge is symmetric; otherwise the window stays
// FREE at its last position. Indicators are hidden unconditionally.
func (w *Window) EndDrag(pointerX, pointerY int) {
	if w.drag == nil {
		return
	}
	w.DragTo(pointerX, pointerY)
	w.drag = nil
	w.PreviewLeft = false
	w.PreviewRight = false

	if !w.mgr.snapEnabled() {
		return
	}
	left, right := edgeDistances(w.Frame, w.mgr.width)
	switch {
	case left <= w.mgr.snapThreshold && w.mgr.IsSlotFree(SlotLeft):
		w.snapTo(SlotLeft)
	case right <= w.mgr.snapThreshold && w.mgr.IsSlotFree(SlotRight):
		w.snapTo(SlotRight)
	}
}

// CancelDrag resolves an abnormal gesture end (pointer tracking lost before
// release). The gesture commits deterministically at the last known frame,
// exactly as a release there would.
func (w *Window) CancelDrag() {
	if w.drag == nil {
		return
	}
	w.EndDrag(w.Frame.X+w.drag.offsetX, w.Frame.Y+w.drag.offsetY)
}

func (w *Window) updatePreview() {
	w.PreviewLeft = false
	w.PreviewRight = false
	if !w.mgr.snapEnabled() {
		return
	}
	left, right := edgeDistances(w.Frame, w.mgr.width)
	if left <= w.mgr.snapThreshold && w.mgr.IsSlotFree(SlotLeft) {
		w.PreviewLeft = true
	}
	if right <= w.mgr.snapThreshold && w.mgr.IsSlotFree(SlotRight) {
		w.PreviewRight = true
	}
}

// snapTo claims the slot and animates the frame onto the slot rect. Callers
// must have verified the slot is free.
func (w *Window) snapTo(slot Slot) {
	w.mgr.ClaimSlot(slot, w)
	w.Placement = Snapped(slot)
	w.startTransition(SlotRect(slot, w.mgr.width, w.mgr.height), w.mgr.transitionDur, nil)
}

// Center releases any held slot and animates to a viewport-centered rect
// capped at the manager's maximum centered width.
func (w *Window) Center() {
	if w.Closing {
		return
	}
	if w.Placement.Kind == PlacementSnapped {
		w.mgr.ReleaseSlot(w.Placement.Slot)
	}
	w.Placement = Centered()
	w.startTransition(w.centeredRect(), w.mgr.transitionDur, nil)
}

// Close releases any held slot, runs the fade-out transition, and then
// evicts the window from the manager. Closing twice is a no-op.
func (w *Window) Close() {
	if w.Closing {
		return
	}
	w.Closing = true
	w.drag = nil
	w.PreviewLeft = false
	w.PreviewRight = false
	if w.Placement.Kind == PlacementSnapped {
		w.mgr.ReleaseSlot(w.Placement.Slot)
		w.Placement = Free()
	}
	w.startTransition(w.Frame, w.mgr.transitionDur, func() {
		w.mgr.Evict(w)
	})
}

// Focus brings the window to the front without touching placement or drag
// state.
func (w *Window) Focus() {
	w.mgr.BringToFront(w)
}

// applyViewport recomputes derived geometry after a viewport change.
// FREE windows keep their absolute position; drift off a shrunken viewport
// is an accepted simplicity trade-off.
func (w *Window) applyViewport() {
	switch w.Placement.Kind {
	case PlacementSnapped:
		w.Frame = SlotRect(w.Placement.Slot, w.mgr.width, w.mgr.height)
	case PlacementCentered:
		w.Frame = w.centeredRect()
	}
}

func (w *Window) centeredRect() Rect {
	return CenteredRect(w.Natural, w.mgr.maxCenteredWidth, w.mgr.width, w.mgr.height)
}
