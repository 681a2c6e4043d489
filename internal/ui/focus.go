package ui

// FocusRing tracks which control in the panel has keyboard focus.
// Tab order wraps in both directions.
type FocusRing struct {
	Order    []string // IDs in tab order
	index    int
	OnChange func(from, to string)
}

// NewFocusRing focuses the first ID in order.
func NewFocusRing(order ...string) *FocusRing {
	return &FocusRing{Order: order}
}

// Current returns the focused ID, or "" for an empty ring.
func (f *FocusRing) Current() string {
	if len(f.Order) == 0 {
		return ""
	}
	return f.Order[f.index]
}

// Is reports whether id holds focus.
func (f *FocusRing) Is(id string) bool {
	return id != "" && f.Current() == id
}

// Next moves focus forward and returns the new ID.
func (f *FocusRing) Next() string {
	return f.move(1)
}

// Prev moves focus backward and returns the new ID.
func (f *FocusRing) Prev() string {
	return f.move(-1)
}

// Set focuses id. Returns false if id is not in the ring.
func (f *FocusRing) Set(id string) bool {
	for i, o := range f.Order {
		if o == id {
			f.jump(i)
			return true
		}
	}
	return false
}

func (f *FocusRing) move(delta int) string {
	n := len(f.Order)
	if n == 0 {
		return ""
	}
	f.jump(((f.index+delta)%n + n) % n)
	return f.Current()
}

func (f *FocusRing) jump(i int) {
	from := f.Current()
	f.index = i
	if to := f.Current(); f.OnChange != nil && from != to {
		f.OnChange(from, to)
	}
}
