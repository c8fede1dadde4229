package indexer

const (
	// DefaultSecurityParam is the Cardano mainnet security parameter k:
	// rollbacks never reach deeper than k blocks on a healthy chain.
	DefaultSecurityParam = 2160

	// k counts blocks while rollback targets arrive as slots; mainnet
	// produces a block roughly every 20 slots (active slot coefficient
	// 0.05), so the slot-depth warning horizon is k * 20.
	slotsPerBlockEstimate = 20

	defaultFlushThreshold   = 200
	defaultFlushesPerSecond = 10
)
