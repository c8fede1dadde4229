package model

// BlockRow is a block record persisted to ClickHouse.
type BlockRow struct {
	Network  Network
	Slot     uint64
	Height   uint64
	Hash     string
	PrevHash string
	Era      string
	BodySize uint64
	TxCount  uint32
}

// TxRow is a transaction record persisted to ClickHouse.
type TxRow struct {
	Network     Network
	Slot        uint64
	Height      uint64
	BlockHash   string
	TxHash      string
	Index       uint32
	Fee         uint64
	Size        uint32
	InputCount  uint32
	OutputCount uint32
	Valid       bool
}

// SyncStats summarizes indexed chain state for the status surface.
type SyncStats struct {
	Blocks    uint64
	MaxSlot   uint64
	MaxHeight uint64
}
