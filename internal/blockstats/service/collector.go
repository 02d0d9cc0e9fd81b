// Package service collects block ranges from the explorer API.
package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-blockstats/internal/blockstats/model"
	"go.uber.org/zap"
)

const (
	statusSuccess = "success"
	statusSkipped = "skipped"
	statusError   = "error"
)

// Collector fetches blocks one at a time and tolerates per-block transport failures.
type Collector struct {
	source  BlockSource
	metrics CollectorMetrics
	logger  *zap.Logger
}

// NewCollector constructs a Collector. metrics may be nil.
func NewCollector(source BlockSource, metrics CollectorMetrics, logger *zap.Logger) (*Collector, error) {
	if source == nil {
		return nil, errors.New("block source is required")
	}
	if logger == nil {
		return nil, errors.New("logger is required")
	}
	return &Collector{
		source:  source,
		metrics: metrics,
		logger:  logger,
	}, nil
}

// FetchBlock returns the block at number. ok is false when the API did not serve it;
// err is set only for malformed responses and context cancellation.
func (c *Collector) FetchBlock(ctx context.Context, number uint64) (block model.Block, ok bool, err error) {
	started := time.Now()
	block, err = c.source.FetchBlock(ctx, number)
	if err == nil {
		c.observeBlock(statusSuccess, started)
		return block, true, nil
	}
	if fatal(ctx, err) {
		c.observeBlock(statusError, started)
		c.logger.Error("fetch block failed", zap.Uint64("block", number), zap.Error(err))
		return model.Block{}, false, fmt.Errorf("fetch block %d: %w", number, err)
	}

	c.observeBlock(statusSkipped, started)
	c.logger.Warn("block not available, skipping", append(
		[]zap.Field{zap.Uint64("block", number)}, failureFields(err)...)...)
	return model.Block{}, false, nil
}

// FetchTransaction returns the transaction with txID. ok is false when the API did not serve it.
func (c *Collector) FetchTransaction(ctx context.Context, txID string) (model.Transaction, bool, error) {
	tx, err := c.source.FetchTransaction(ctx, txID)
	if err == nil {
		return tx, true, nil
	}
	if fatal(ctx, err) {
		c.logger.Error("fetch transaction failed", zap.String("tx", txID), zap.Error(err))
		return nil, false, fmt.Errorf("fetch transaction %s: %w", txID, err)
	}

	c.logger.Warn("transaction not available", append(
		[]zap.Field{zap.String("tx", txID)}, failureFields(err)...)...)
	return nil, false, nil
}

// FetchRange fetches every block in [start, end] in ascending order and returns those the API
// served, in fetch order. A missing block never aborts the loop.
func (c *Collector) FetchRange(ctx context.Context, start, end uint64) (table model.BlockTable, err error) {
	if start > end {
		c.logger.Warn("empty block range", zap.Uint64("start", start), zap.Uint64("end", end))
		return model.BlockTable{}, nil
	}

	requested := rangeSize(start, end)
	started := time.Now()
	defer func() {
		if c.metrics != nil {
			c.metrics.ObserveRange(requested, len(table), err, started)
		}
	}()

	logger := c.logger.With(zap.Uint64("start", start), zap.Uint64("end", end))
	logger.Info("fetching block range", zap.Int("blocks", requested))

	table = make(model.BlockTable, 0, min(requested, 1024))
	for number := start; ; number++ {
		block, ok, err := c.FetchBlock(ctx, number)
		if err != nil {
			return nil, err
		}
		if ok {
			table = append(table, block)
		}
		if number == end {
			break
		}
	}

	logger.Info("block range fetched",
		zap.Int("collected", len(table)),
		zap.Int("skipped", requested-len(table)))
	return table, nil
}

func (c *Collector) observeBlock(status string, started time.Time) {
	if c.metrics == nil {
		return
	}
	c.metrics.ObserveBlock(status, started)
}

// fatal separates data-shape faults and cancellation from transport failures.
func fatal(ctx context.Context, err error) bool {
	return errors.Is(err, model.ErrMalformedRecord) || ctx.Err() != nil
}

func failureFields(err error) []zap.Field {
	var statusErr *model.StatusError
	if errors.As(err, &statusErr) {
		return []zap.Field{zap.Int("status", statusErr.Code)}
	}
	return []zap.Field{zap.Error(err)}
}

func rangeSize(start, end uint64) int {
	n := end - start
	if n >= math.MaxInt {
		return math.MaxInt
	}
	return int(n) + 1
}
