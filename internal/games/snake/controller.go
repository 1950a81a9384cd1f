package snake

import (
	"sync"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Controller buffers direction input between ticks.
// It is safe for concurrent use; proposals only take effect on Commit.
type Controller struct {
	mu        sync.Mutex
	committed core.Direction
	pending   core.Direction
	accepted  bool // A proposal was accepted this window
	closed    bool // Window already used
}

// NewController creates a controller committed to dir.
func NewController(dir core.Direction) *Controller {
	c := &Controller{}
	c.Reset(dir)
	return c
}

// Reset commits dir and discards any pending proposal.
func (c *Controller) Reset(dir core.Direction) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.committed = dir
	c.pending = dir
	c.accepted = false
	c.closed = false
}

// Propose offers a direction for the next tick.
// Only the first proposal in a tick window is considered; it closes the window
// even when rejected. A reversal of the committed direction is rejected.
// Returns true if the proposal will be applied on the next Commit.
func (c *Controller) Propose(dir core.Direction) bool {
	if !dir.Valid() {
		return false
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return false
	}
	c.closed = true

	if dir == c.committed.Opposite() {
		return false
	}
	c.pending = dir
	c.accepted = true
	return true
}

// Commit applies the accepted proposal, reopens the window and returns the
// direction to use for this tick.
func (c *Controller) Commit() core.Direction {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.accepted {
		c.committed = c.pending
	}
	c.accepted = false
	c.closed = false
	return c.committed
}

// Committed returns the direction used on the last tick.
func (c *Controller) Committed() core.Direction {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.committed
}
