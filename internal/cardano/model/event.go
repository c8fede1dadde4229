package model

// EventKind discriminates chain-sync event variants.
type EventKind uint8

const (
	EventResume EventKind = iota + 1
	EventRollForward
	EventRollBackward
)

// String returns the kind label used in logs and metrics.
func (k EventKind) String() string {
	switch k {
	case EventResume:
		return "resume"
	case EventRollForward:
		return "roll_forward"
	case EventRollBackward:
		return "roll_backward"
	default:
		return "unknown"
	}
}

// ChainSyncEvent is one event of the chain-sync stream. Point is the resume
// target for Resume events and the rollback target for RollBackward events.
// Block is set only for RollForward events.
type ChainSyncEvent struct {
	Kind  EventKind
	Point Point
	Tip   Tip
	Block *Block
}

// NewResume builds a Resume event for the given point.
func NewResume(point Point) ChainSyncEvent {
	return ChainSyncEvent{Kind: EventResume, Point: point}
}

// NewRollForward builds a RollForward event for a decoded block.
func NewRollForward(block *Block, tip Tip) ChainSyncEvent {
	return ChainSyncEvent{Kind: EventRollForward, Tip: tip, Block: block}
}

// NewRollBackward builds a RollBackward event targeting point.
func NewRollBackward(point Point, tip Tip) ChainSyncEvent {
	return ChainSyncEvent{Kind: EventRollBackward, Point: point, Tip: tip}
}
