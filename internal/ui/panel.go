package ui

import "typeset/internal/panel"

// BoundsFunc returns a placement's position and size given terminal dimensions.
// Returns x, y, width, height.
type BoundsFunc func(width, height int) (x, y, w, h int)

// Placement hosts a View and knows where it sits on screen.
type Placement struct {
	ID     string
	View   View
	Bounds BoundsFunc
}

// Rect evaluates Bounds for the given terminal size.
func (p Placement) Rect(width, height int) panel.Rect {
	if p.Bounds == nil {
		return panel.Rect{}
	}
	x, y, w, h := p.Bounds(width, height)
	return panel.Rect{X: x, Y: y, W: w, H: h}
}
