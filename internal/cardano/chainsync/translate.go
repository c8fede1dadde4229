package chainsync

import (
	"encoding/hex"
	"fmt"

	"github.com/blinklabs-io/gouroboros/ledger"
	gchainsync "github.com/blinklabs-io/gouroboros/protocol/chainsync"
	ocommon "github.com/blinklabs-io/gouroboros/protocol/common"
	"github.com/goodnatureofminers/cardanoinsight-backend/internal/cardano/model"
	"github.com/goodnatureofminers/cardanoinsight-backend/pkg/safe"
)

// PointFromNode converts a node-native point.
func PointFromNode(point ocommon.Point) model.Point {
	if point.Slot == 0 && len(point.Hash) == 0 {
		return model.OriginPoint()
	}
	return model.Point{
		Slot: point.Slot,
		Hash: hex.EncodeToString(point.Hash),
	}
}

// PointToNode converts an internal point back to the node representation.
func PointToNode(point model.Point) (ocommon.Point, error) {
	if point.Origin() {
		return ocommon.NewPointOrigin(), nil
	}
	hash, err := hex.DecodeString(point.Hash)
	if err != nil {
		return ocommon.Point{}, fmt.Errorf("decode point hash %q: %w", point.Hash, err)
	}
	return ocommon.NewPoint(point.Slot, hash), nil
}

// TipFromNode converts a node-native tip.
func TipFromNode(tip gchainsync.Tip) model.Tip {
	return model.Tip{
		Point:       PointFromNode(tip.Point),
		BlockNumber: tip.BlockNumber,
	}
}

// RollBackwardEvent translates a node-native rollback. Field conversion
// only, no block decoding involved.
func RollBackwardEvent(point ocommon.Point, tip gchainsync.Tip) model.ChainSyncEvent {
	return model.NewRollBackward(PointFromNode(point), TipFromNode(tip))
}

// RollForwardEvent translates a node-native roll-forward into an internal
// event, pairing every transaction with default processing options. This is
// the hot path of chain catch-up and runs once per block; a block that does
// not decode is a protocol compatibility defect and surfaces as an error.
func RollForwardEvent(blockData any, tip gchainsync.Tip) (model.ChainSyncEvent, error) {
	block, ok := blockData.(ledger.Block)
	if !ok {
		return model.ChainSyncEvent{}, fmt.Errorf("unexpected roll-forward payload type %T", blockData)
	}

	hash := block.Hash()
	prevHash := block.PrevHash()
	decoded := &model.Block{
		Tip: model.Tip{
			Point: model.Point{
				Slot: block.SlotNumber(),
				Hash: hash.String(),
			},
			BlockNumber: block.BlockNumber(),
		},
		PrevHash: prevHash.String(),
		Era:      block.Era().Name,
		BodySize: block.BlockBodySize(),
	}

	txs := block.Transactions()
	decoded.Txs = make([]model.Tx, 0, len(txs))
	for _, tx := range txs {
		size, err := safe.Uint32(len(tx.Cbor()))
		if err != nil {
			return model.ChainSyncEvent{}, fmt.Errorf("block %d tx size: %w", block.BlockNumber(), err)
		}
		inputs, err := safe.Uint32(len(tx.Inputs()))
		if err != nil {
			return model.ChainSyncEvent{}, fmt.Errorf("block %d tx inputs: %w", block.BlockNumber(), err)
		}
		outputs, err := safe.Uint32(len(tx.Outputs()))
		if err != nil {
			return model.ChainSyncEvent{}, fmt.Errorf("block %d tx outputs: %w", block.BlockNumber(), err)
		}
		txHash := tx.Hash()
		decoded.Txs = append(decoded.Txs, model.Tx{
			Hash:        txHash.String(),
			Fee:         tx.Fee(),
			Size:        size,
			InputCount:  inputs,
			OutputCount: outputs,
			Valid:       tx.IsValid(),
			Options:     model.DefaultProcessingOptions(),
		})
	}

	return model.NewRollForward(decoded, TipFromNode(tip)), nil
}
