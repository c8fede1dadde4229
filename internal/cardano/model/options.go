package model

// ProcessingOptions carries per-transaction processing flags attached at
// translation time. The value is immutable; flags can only be narrowed.
type ProcessingOptions struct {
	storeTx bool
}

// DefaultProcessingOptions marks a transaction for persistence.
func DefaultProcessingOptions() ProcessingOptions {
	return ProcessingOptions{storeTx: true}
}

// StoreTx reports whether the transaction's effects should be persisted.
func (o ProcessingOptions) StoreTx() bool {
	return o.storeTx
}

// NarrowStore returns options with the store flag AND-ed with keep.
// A false flag can never be widened back to true.
func (o ProcessingOptions) NarrowStore(keep bool) ProcessingOptions {
	return ProcessingOptions{storeTx: o.storeTx && keep}
}
