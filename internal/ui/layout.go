package ui

// DefaultPanelWidth is the width of the slide-out panel in columns.
const DefaultPanelWidth = 46

// MinPanelWidth is the narrowest panel that still fits its controls.
const MinPanelWidth = 30

// Layout positions the slide-out panel along the left edge and the trigger
// beside it: at the screen edge when closed, at the panel's right edge when open.
type Layout struct {
	PanelWidth int
}

// NewLayout clamps width to MinPanelWidth.
func NewLayout(width int) Layout {
	if width < MinPanelWidth {
		width = MinPanelWidth
	}
	return Layout{PanelWidth: width}
}

// PanelBounds places the panel over the full height of the terminal.
func (l Layout) PanelBounds(width, height int) (x, y, w, h int) {
	w = l.PanelWidth
	if w > width {
		w = width
	}
	return 0, 0, w, height
}

// TriggerBounds places a trigger of size tw x th.
func (l Layout) TriggerBounds(open bool, tw, th int) BoundsFunc {
	return func(width, height int) (x, y, w, h int) {
		if open {
			_, _, x, _ = l.PanelBounds(width, height)
		}
		if x+tw > width {
			x = width - tw
		}
		if x < 0 {
			x = 0
		}
		return x, 0, tw, th
	}
}
