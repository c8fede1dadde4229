package model

// Tx is a transaction extracted from a decoded block, paired with its
// processing options.
type Tx struct {
	Hash        string
	Fee         uint64
	Size        uint32
	InputCount  uint32
	OutputCount uint32
	Valid       bool
	Options     ProcessingOptions
}

// Block is a decoded block: its own chain position plus the ordered
// transaction sequence. Transaction order matches on-chain order.
type Block struct {
	Tip      Tip
	PrevHash string
	Era      string
	BodySize uint64
	Txs      []Tx
}

// Height returns the block number of the block itself.
func (b *Block) Height() uint64 {
	return b.Tip.BlockNumber
}

// Point returns the chain position of the block itself.
func (b *Block) Point() Point {
	return b.Tip.Point
}
