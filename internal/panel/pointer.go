package panel

// Point is a terminal cell position (0-based column X, row Y).
type Point struct {
	X, Y int
}

// Rect is a rectangular cell region.
type Rect struct {
	X, Y, W, H int
}

// Contains reports whether p lies inside r. Empty rects contain nothing.
func (r Rect) Contains(p Point) bool {
	if r.W <= 0 || r.H <= 0 {
		return false
	}
	return p.X >= r.X && p.X < r.X+r.W && p.Y >= r.Y && p.Y < r.Y+r.H
}

// Region is an opaque handle to a rendered boundary.
// ok is false until the region has been laid out at least once.
type Region interface {
	Bounds() (r Rect, ok bool)
}

// RegionFunc adapts a function to Region.
type RegionFunc func() (Rect, bool)

// Bounds implements Region.
func (f RegionFunc) Bounds() (Rect, bool) {
	return f()
}

// PointerSource fans global pointer-down events out to subscribers.
// It stands in for the document-level listener of a browser: anything that
// needs to see every press, regardless of which view it hits, subscribes here.
type PointerSource struct {
	nextID int
	subs   []subscription
}

type subscription struct {
	id int
	fn func(Point)
}

// NewPointerSource creates a source with no subscribers.
func NewPointerSource() *PointerSource {
	return &PointerSource{}
}

// Subscribe registers fn and returns the function that releases it.
// The release function is idempotent.
func (s *PointerSource) Subscribe(fn func(Point)) (unsubscribe func()) {
	s.nextID++
	id := s.nextID
	s.subs = append(s.subs, subscription{id: id, fn: fn})
	return func() {
		for i, sub := range s.subs {
			if sub.id == id {
				s.subs = append(s.subs[:i:i], s.subs[i+1:]...)
				return
			}
		}
	}
}

// Dispatch delivers a pointer-down at p to every current subscriber, in
// subscription order. A subscriber added during dispatch first sees the next
// event; one removed during dispatch is not called if its turn has not come.
func (s *PointerSource) Dispatch(p Point) {
	snapshot := make([]subscription, len(s.subs))
	copy(snapshot, s.subs)
	for _, sub := range snapshot {
		if !s.live(sub.id) {
			continue
		}
		sub.fn(p)
	}
}

func (s *PointerSource) live(id int) bool {
	for _, sub := range s.subs {
		if sub.id == id {
			return true
		}
	}
	return false
}

// Len returns the number of active subscribers.
func (s *PointerSource) Len() int {
	return len(s.subs)
}
