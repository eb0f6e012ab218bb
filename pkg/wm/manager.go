package wm

import (
	"fmt"
	"sort"
	"time"

	"github.com/f/foliodesk/pkg/template"
)

// Default geometry policy. Distances are desktop cells.
const (
	// DefaultSnapThreshold is how close a window edge must be to a
	// viewport edge for the matching slot to preview and commit. The same
	// constant serves both; hysteresis would be a deliberate change.
	DefaultSnapThreshold = 6
	// DefaultMaxCenteredWidth caps CENTERED windows.
	DefaultMaxCenteredWidth = 100
	// DefaultMobileBreakpoint is the viewport width below which snapping
	// is disabled and spawned windows are forced to CENTERED.
	DefaultMobileBreakpoint = 80
)

// Config holds manager policy. Zero fields take the package defaults.
type Config struct {
	ViewportWidth    int
	ViewportHeight   int
	SnapThreshold    int
	MaxCenteredWidth int
	MobileBreakpoint int
	Transition       time.Duration

	// OnAllClosed fires each time the registry transitions to empty, so
	// the surrounding surface can offer a restart affordance.
	OnAllClosed func()
}

// Manager is the single source of truth for which panels exist, which snap
// slot is taken by whom, and what stacking order comes next. It is built for
// a single-threaded event loop: callers follow check-then-act on slots and
// no internal locking is provided.
type Manager struct {
	templates *template.Registry
	windows   []*Window
	slots     map[Slot]*Window

	// stackCounter is monotonically increasing and never reused; it is the
	// source of truth for paint order.
	stackCounter int
	nextID       int

	width            int
	height           int
	snapThreshold    int
	maxCenteredWidth int
	mobileBreakpoint int
	transitionDur    time.Duration

	onAllClosed func()
}

// NewManager creates a window manager over the given template registry.
func NewManager(reg *template.Registry, cfg Config) *Manager {
	if cfg.SnapThreshold <= 0 {
		cfg.SnapThreshold = DefaultSnapThreshold
	}
	if cfg.MaxCenteredWidth <= 0 {
		cfg.MaxCenteredWidth = DefaultMaxCenteredWidth
	}
	if cfg.MobileBreakpoint <= 0 {
		cfg.MobileBreakpoint = DefaultMobileBreakpoint
	}
	if cfg.Transition <= 0 {
		cfg.Transition = DefaultTransitionDuration
	}
	return &Manager{
		templates:        reg,
		slots:            make(map[Slot]*Window),
		width:            cfg.ViewportWidth,
		height:           cfg.ViewportHeight,
		snapThreshold:    cfg.SnapThreshold,
		maxCenteredWidth: cfg.MaxCenteredWidth,
		mobileBreakpoint: cfg.MobileBreakpoint,
		transitionDur:    cfg.Transition,
		onAllClosed:      cfg.OnAllClosed,
		nextID:           1,
	}
}

// SpawnOptions tweak a spawned window. Zero values defer to the template.
type SpawnOptions struct {
	Placement *Placement
	Natural   Size
}

// Spawn looks up a template, builds a window bound to this manager, assigns
// it the next stacking value, and appends it to the registry. The default
// placement is CENTERED; below the mobile breakpoint every spawn is forced
// to CENTERED regardless of the requested placement.
func (m *Manager) Spawn(templateID string, opts SpawnOptions) (*Window, error) {
	tpl, err := m.templates.Lookup(templateID)
	if err != nil {
		return nil, fmt.Errorf("spawn %q: %w", templateID, err)
	}

	natural := opts.Natural
	if natural.Width <= 0 || natural.Height <= 0 {
		natural = Size{Width: tpl.MinWidth, Height: tpl.MinHeight}
	}

	placement := Centered()
	if opts.Placement != nil && !m.mobile() {
		placement = *opts.Placement
	}
	if placement.Kind == PlacementSnapped && !m.IsSlotFree(placement.Slot) {
		placement = Centered()
	}

	w := &Window{
		ID:        fmt.Sprintf("win-%d", m.nextID),
		Title:     tpl.Title,
		Template:  tpl,
		Natural:   natural,
		Placement: placement,
		mgr:       m,
	}
	m.nextID++

	switch placement.Kind {
	case PlacementSnapped:
		m.ClaimSlot(placement.Slot, w)
		w.Frame = SlotRect(placement.Slot, m.width, m.height)
	case PlacementCentered:
		w.Frame = w.centeredRect()
	default:
		w.Frame = ClampToViewport(Rect{Width: natural.Width, Height: natural.Height}, m.width, m.height)
	}

	m.windows = append(m.windows, w)
	m.BringToFront(w)
	return w, nil
}

// IsSlotFree reports whether a slot has no owner. Pure query.
func (m *Manager) IsSlotFree(slot Slot) bool {
	return m.slots[slot] == nil
}

// ClaimSlot assigns slot ownership unconditionally. Callers must have
// already checked IsSlotFree; the hot drag path stays allocation-free and
// synchronous, so no enforcement happens here.
func (m *Manager) ClaimSlot(slot Slot, w *Window) {
	m.slots[slot] = w
}

// ReleaseSlot clears ownership if set; no-op otherwise.
func (m *Manager) ReleaseSlot(slot Slot) {
	delete(m.slots, slot)
}

// SlotOwner returns the window holding a slot, or nil.
func (m *Manager) SlotOwner(slot Slot) *Window {
	return m.slots[slot]
}

// BringToFront assigns the window the next stacking value. Strictly
// monotonic: a later call always outranks an earlier one.
func (m *Manager) BringToFront(w *Window) {
	m.stackCounter++
	w.StackOrder = m.stackCounter
}

// Evict removes the window from the registry and fires the all-closed
// notification when the registry empties. Any slot the window still holds
// is released; normally Close has released it already.
func (m *Manager) Evict(w *Window) {
	for slot, owner := range m.slots {
		if owner == w {
			delete(m.slots, slot)
		}
	}
	for i, other := range m.windows {
		if other == w {
			m.windows = append(m.windows[:i], m.windows[i+1:]...)
			if len(m.windows) == 0 && m.onAllClosed != nil {
				m.onAllClosed()
			}
			return
		}
	}
}

// Windows returns the live windows in creation order.
func (m *Manager) Windows() []*Window {
	return m.windows
}

// Stacked returns the live windows sorted bottom-most first, so painting in
// order draws the most recently raised window on top.
func (m *Manager) Stacked() []*Window {
	stacked := make([]*Window, len(m.windows))
	copy(stacked, m.windows)
	sort.SliceStable(stacked, func(i, j int) bool {
		return stacked[i].StackOrder < stacked[j].StackOrder
	})
	return stacked
}

// WindowAt returns the top-most window containing the point, or nil.
func (m *Manager) WindowAt(x, y int) *Window {
	var hit *Window
	for _, w := range m.windows {
		if w.Closing || !w.Frame.Contains(x, y) {
			continue
		}
		if hit == nil || w.StackOrder > hit.StackOrder {
			hit = w
		}
	}
	return hit
}

// Len returns the number of live windows.
func (m *Manager) Len() int { return len(m.windows) }

// Resize records new viewport extents and recomputes every derived
// geometry. FREE windows are deliberately left untouched.
func (m *Manager) Resize(width, height int) {
	m.width = width
	m.height = height
	for _, w := range m.windows {
		w.applyViewport()
	}
}

// Viewport returns the current viewport extents.
func (m *Manager) Viewport() (int, int) {
	return m.width, m.height
}

// StepTransitions advances every in-flight transition by dt. Settle
// callbacks (including close evictions) run synchronously here.
func (m *Manager) StepTransitions(dt time.Duration) {
	// Eviction mutates m.windows; iterate a copy.
	live := make([]*Window, len(m.windows))
	copy(live, m.windows)
	for _, w := range live {
		w.stepTransition(dt)
	}
}

// Animating reports whether any window has a transition in flight.
func (m *Manager) Animating() bool {
	for _, w := range m.windows {
		if w.InTransition() {
			return true
		}
	}
	return false
}

// mobile reports whether the viewport is below the mobile breakpoint.
func (m *Manager) mobile() bool {
	return m.width > 0 && m.width < m.mobileBreakpoint
}

// snapEnabled reports whether slot snapping applies at the current viewport.
func (m *Manager) snapEnabled() bool {
	return !m.mobile()
}

// SnapThreshold returns the configured edge threshold.
func (m *Manager) SnapThreshold() int { return m.snapThreshold }
