package wm

import (
	"errors"

	"github.com/f/foliodesk/pkg/template"
)

// Slot is one of the two mutually exclusive dock regions.
type Slot int

const (
	// SlotLeft docks to the left half of the viewport.
	SlotLeft Slot = iota
	// SlotRight docks to the right half of the viewport.
	SlotRight
)

// String returns a string representation of the slot.
func (s Slot) String() string {
	switch s {
	case SlotLeft:
		return "left"
	case SlotRight:
		return "right"
	default:
		return "unknown"
	}
}

// PlacementKind tags a window's current layout mode.
type PlacementKind int

const (
	// PlacementFree means the last committed drag position is authoritative.
	PlacementFree PlacementKind = iota
	// PlacementSnapped means geometry is a function of the held slot.
	PlacementSnapped
	// PlacementCentered means geometry is a function of the viewport,
	// capped at a maximum width.
	PlacementCentered
)

// Placement is a tagged variant: Slot is meaningful only when Kind is
// PlacementSnapped. Exactly one placement holds at a time.
type Placement struct {
	Kind PlacementKind
	Slot Slot
}

// Free returns the FREE placement.
func Free() Placement { return Placement{Kind: PlacementFree} }

// Snapped returns the SNAPPED placement for a slot.
func Snapped(slot Slot) Placement { return Placement{Kind: PlacementSnapped, Slot: slot} }

// Centered returns the CENTERED placement.
func Centered() Placement { return Placement{Kind: PlacementCentered} }

// String returns a string representation of the placement.
func (p Placement) String() string {
	switch p.Kind {
	case PlacementFree:
		return "free"
	case PlacementSnapped:
		return "snapped(" + p.Slot.String() + ")"
	case PlacementCentered:
		return "centered"
	default:
		return "unknown"
	}
}

// dragState exists only while a gesture is active. It holds the
// pointer-to-window offset captured at gesture start.
type dragState struct {
	offsetX int
	offsetY int
}

// ErrTemplateNotFound is returned when a spawn target is missing from the
// template registry.
var ErrTemplateNotFound = template.ErrNotFound

// ErrWindowNotManaged is returned when an operation references a window the
// manager does not own.
var ErrWindowNotManaged = errors.New("window not managed")
