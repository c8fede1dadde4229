package model

import "fmt"

// Point is an opaque chain position: a slot and the hex-encoded hash of the
// block produced in it. The zero value is the chain origin.
type Point struct {
	Slot uint64
	Hash string
}

// OriginPoint returns the chain origin.
func OriginPoint() Point {
	return Point{}
}

// Origin reports whether the point is the chain origin.
func (p Point) Origin() bool {
	return p.Slot == 0 && p.Hash == ""
}

// String renders the point for logs.
func (p Point) String() string {
	if p.Origin() {
		return "origin"
	}
	return fmt.Sprintf("%d.%s", p.Slot, p.Hash)
}

// Tip is the chain head reported by the node when an event was emitted.
type Tip struct {
	Point       Point
	BlockNumber uint64
}
