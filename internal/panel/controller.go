// Package panel implements the article parameters panel logic independent of
// rendering: the visibility/pending-configuration controller and the
// outside-interaction watcher that dismisses it.
package panel

import (
	"fmt"

	"typeset/internal/article"
)

// Visibility is the panel's two-state machine.
type Visibility int

const (
	Closed Visibility = iota
	Open
)

func (v Visibility) String() string {
	switch v {
	case Closed:
		return "Closed"
	case Open:
		return "Open"
	default:
		return "Unknown"
	}
}

// ApplyFunc receives a complete configuration on submit and on reset.
type ApplyFunc func(article.State)

// Controller owns the panel's visibility and the pending configuration.
// It is driven from a single goroutine (the Bubble Tea update loop) and does no locking.
type Controller struct {
	open    bool
	pending article.State
	apply   ApplyFunc
}

// NewController creates a closed controller whose pending state is article.DefaultState.
// apply may be nil.
func NewController(apply ApplyFunc) *Controller {
	return &Controller{
		pending: article.DefaultState,
		apply:   apply,
	}
}

// Toggle flips visibility.
func (c *Controller) Toggle() {
	c.open = !c.open
}

// Close hides the panel. Calling it while closed is a no-op.
func (c *Controller) Close() {
	c.open = false
}

// IsOpen reports whether the panel is visible.
func (c *Controller) IsOpen() bool {
	return c.open
}

// Visibility returns the current state of the visibility machine.
func (c *Controller) Visibility() Visibility {
	if c.open {
		return Open
	}
	return Closed
}

// Pending returns the configuration being edited.
func (c *Controller) Pending() article.State {
	return c.pending
}

// SetField replaces one field of the pending configuration.
// Options outside the field's set are rejected and leave the state untouched.
func (c *Controller) SetField(f article.Field, o article.Option) error {
	next, err := c.pending.With(f, o)
	if err != nil {
		return fmt.Errorf("set field: %w", err)
	}
	c.pending = next
	return nil
}

// Submit hands the pending configuration to the apply callback.
// Visibility is unchanged.
func (c *Controller) Submit() {
	if c.apply != nil {
		c.apply(c.pending)
	}
}

// Reset restores the default configuration and applies it.
func (c *Controller) Reset() {
	c.pending = article.DefaultState
	if c.apply != nil {
		c.apply(c.pending)
	}
}
