package chainsync

import (
	"context"
	"time"

	"github.com/goodnatureofminers/cardanoinsight-backend/internal/cardano/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// ResumePointResolver yields the prior chain positions synchronization
	// may safely resume from, most recent first.
	ResumePointResolver interface {
		ResumePoints(ctx context.Context) ([]model.Point, error)
	}

	// Session runs a chain-sync session against a node, delivering every
	// event to the handler, until clean end or unrecoverable error.
	Session interface {
		Run(ctx context.Context, resumePoints []model.Point, handler Handler) error
	}

	// DriverMetrics records driver state transitions.
	DriverMetrics interface {
		ObserveResolve(err error, points int, started time.Time)
		ObserveSession(err error, started time.Time)
	}
)
