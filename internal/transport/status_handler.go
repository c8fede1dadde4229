// Package transport exposes gRPC/HTTP handlers.
package transport

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/goodnatureofminers/cardanoinsight-backend/internal/cardano/model"
	"go.uber.org/zap"
)

// StatusRepository reads indexed chain state for the status surface.
type StatusRepository interface {
	SyncStats(ctx context.Context, network model.Network) (model.SyncStats, error)
}

// StatusHandler serves the sync position of a network as JSON.
type StatusHandler struct {
	repo    StatusRepository
	network model.Network
	logger  *zap.Logger
	timeout time.Duration
}

type statusResponse struct {
	Network   string `json:"network"`
	Blocks    uint64 `json:"blocks"`
	MaxSlot   uint64 `json:"max_slot"`
	MaxHeight uint64 `json:"max_height"`
}

// NewStatusHandler returns a StatusHandler instance.
func NewStatusHandler(repo StatusRepository, network model.Network, logger *zap.Logger) *StatusHandler {
	return &StatusHandler{
		repo:    repo,
		network: network,
		logger:  logger,
		timeout: 10 * time.Second,
	}
}

func (h *StatusHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	stats, err := h.repo.SyncStats(ctx, h.network)
	if err != nil {
		h.logger.Error("query sync stats failed", zap.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(statusResponse{
		Network:   string(h.network),
		Blocks:    stats.Blocks,
		MaxSlot:   stats.MaxSlot,
		MaxHeight: stats.MaxHeight,
	}); err != nil {
		h.logger.Warn("write status response failed", zap.Error(err))
	}
}
