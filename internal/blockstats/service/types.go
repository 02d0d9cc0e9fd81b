package service

import (
	"context"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-blockstats/internal/blockstats/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	BlockSource interface {
		FetchBlock(ctx context.Context, number uint64) (model.Block, error)
		FetchTransaction(ctx context.Context, txID string) (model.Transaction, error)
	}

	CollectorMetrics interface {
		ObserveBlock(status string, started time.Time)
		ObserveRange(requested, collected int, err error, started time.Time)
	}
)
