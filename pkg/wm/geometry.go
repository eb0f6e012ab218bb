package wm

// Rect is a window's position and extent in desktop cells.
type Rect struct {
	X      int
	Y      int
	Width  int
	Height int
}

// Contains reports whether the point lies inside the rect.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.Width &&
		y >= r.Y && y < r.Y+r.Height
}

// Size is a width/height pair.
type Size struct {
	Width  int
	Height int
}

// clampAxis constrains pos to [0, extent-size]. When the window is larger
// than the viewport the origin pins to 0 so the top-left stays reachable.
func clampAxis(pos, size, extent int) int {
	max := extent - size
	if max < 0 {
		max = 0
	}
	if pos < 0 {
		return 0
	}
	if pos > max {
		return max
	}
	return pos
}

// ClampToViewport returns r with its origin constrained so no axis leaves
// [0, viewport-extent]. Size is never altered.
func ClampToViewport(r Rect, viewportW, viewportH int) Rect {
	r.X = clampAxis(r.X, r.Width, viewportW)
	r.Y = clampAxis(r.Y, r.Height, viewportH)
	return r
}

// SlotRect returns the fixed rect a slot occupies: half the viewport width,
// full height, docked to its edge.
func SlotRect(slot Slot, viewportW, viewportH int) Rect {
	half := viewportW / 2
	switch slot {
	case SlotRight:
		return Rect{X: half, Y: 0, Width: viewportW - half, Height: viewportH}
	default:
		return Rect{X: 0, Y: 0, Width: half, Height: viewportH}
	}
}

// CenteredRect returns a viewport-centered rect for the given natural size,
// capped at maxWidth and shrunk to fit small viewports.
func CenteredRect(natural Size, maxWidth, viewportW, viewportH int) Rect {
	w := natural.Width
	if maxWidth > 0 && w > maxWidth {
		w = maxWidth
	}
	if w > viewportW {
		w = viewportW
	}
	h := natural.Height
	if h > viewportH {
		h = viewportH
	}
	return Rect{
		X:      (viewportW - w) / 2,
		Y:      (viewportH - h) / 2,
		Width:  w,
		Height: h,
	}
}

// edgeDistances returns the distance of the window's left edge to the left
// viewport edge and of its right edge to the right viewport edge. Snap
// decisions use edge distances, never the window center, so preview and
// commit agree for any window width.
func edgeDistances(r Rect, viewportW int) (left, right int) {
	left = r.X
	right = viewportW - (r.X + r.Width)
	if left < 0 {
		left = 0
	}
	if right < 0 {
		right = 0
	}
	return left, right
}
