// Package chainsync implements the chain-sync event pipeline: event handlers
// and their composition, translation from node-native types, and the driver
// that runs a sync session against resolved resume points.
package chainsync

import (
	"context"

	"github.com/goodnatureofminers/cardanoinsight-backend/internal/cardano/model"
)

// Handler consumes one chain-sync event. Implementations must forward every
// event variant they do not rewrite, and must not reorder events.
type Handler interface {
	Handle(ctx context.Context, event model.ChainSyncEvent) error
}

// HandlerFunc adapts a function to the Handler interface.
type HandlerFunc func(ctx context.Context, event model.ChainSyncEvent) error

// Handle calls f.
func (f HandlerFunc) Handle(ctx context.Context, event model.ChainSyncEvent) error {
	return f(ctx, event)
}
