package panel

// OutsideWatcher calls back whenever a pointer-down lands outside a region.
//
// Activate acquires the global subscription and Deactivate releases it; the
// owner calls them on mount and unmount. Presses are ignored while the
// region has no bounds yet. The trigger that opens the panel is not excluded.
type OutsideWatcher struct {
	source      *PointerSource
	region      Region
	callback    func()
	unsubscribe func()
}

// NewOutsideWatcher creates an inactive watcher.
func NewOutsideWatcher(source *PointerSource, region Region, callback func()) *OutsideWatcher {
	return &OutsideWatcher{
		source:   source,
		region:   region,
		callback: callback,
	}
}

// SetCallback replaces the callback. Subsequent events use the new one.
func (w *OutsideWatcher) SetCallback(callback func()) {
	w.callback = callback
}

// Activate subscribes to the pointer source. Calling it while active is a no-op.
func (w *OutsideWatcher) Activate() {
	if w.unsubscribe != nil {
		return
	}
	w.unsubscribe = w.source.Subscribe(w.handle)
}

// Deactivate releases the subscription. Safe to call at any time.
func (w *OutsideWatcher) Deactivate() {
	if w.unsubscribe == nil {
		return
	}
	w.unsubscribe()
	w.unsubscribe = nil
}

// Active reports whether the watcher currently holds a subscription.
func (w *OutsideWatcher) Active() bool {
	return w.unsubscribe != nil
}

func (w *OutsideWatcher) handle(p Point) {
	if w.region == nil {
		return
	}
	bounds, ok := w.region.Bounds()
	if !ok || bounds.Contains(p) {
		return
	}
	if w.callback != nil {
		w.callback()
	}
}
