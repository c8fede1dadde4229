package indexer

import (
	"sync"

	"github.com/goodnatureofminers/cardanoinsight-backend/internal/cardano/model"
)

// Status is a point-in-time view of synchronization progress.
type Status struct {
	Point  model.Point
	Height uint64
	Tip    model.Tip
	AtTip  bool
}

// StateCell holds the indexer's current chain position. The indexer is the
// single writer; any goroutine may read a snapshot.
type StateCell struct {
	mu     sync.RWMutex
	point  model.Point
	height uint64
	tip    model.Tip
}

func NewStateCell() *StateCell {
	return &StateCell{}
}

// Resume records the position synchronization restarted from.
func (c *StateCell) Resume(point model.Point) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.point = point
}

// Advance records a newly applied block and the tip reported with it.
func (c *StateCell) Advance(point model.Point, height uint64, tip model.Tip) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.point = point
	c.height = height
	c.tip = tip
}

// Rollback records a retreat to an earlier position. The height stays at
// its last known value until the next Advance overwrites it.
func (c *StateCell) Rollback(point model.Point, tip model.Tip) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.point = point
	c.tip = tip
}

// Snapshot returns the current position.
func (c *StateCell) Snapshot() Status {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return Status{
		Point:  c.point,
		Height: c.height,
		Tip:    c.tip,
		AtTip:  !c.point.Origin() && c.point == c.tip.Point,
	}
}
