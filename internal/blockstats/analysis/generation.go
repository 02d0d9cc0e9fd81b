package analysis

import (
	"slices"

	"github.com/goodnatureofminers/blockinsight7000-blockstats/internal/blockstats/model"
	"go.uber.org/zap"
)

// GenerationTimes orders blocks by timestamp and reports the seconds elapsed since the
// preceding block. The first row has no delta. The input table keeps its order.
func (a *Analyzer) GenerationTimes(table model.BlockTable) model.GenerationTable {
	if table.Empty() {
		a.logger.Info(string(model.DiagnosticNoData), zap.String("metric", "block_generation_time"))
		return model.GenerationTable{Diagnostic: model.DiagnosticNoData}
	}

	outOfOrder := a.countOutOfOrder(table)

	sorted := slices.Clone(table)
	slices.SortStableFunc(sorted, func(x, y model.Block) int {
		return x.Timestamp.Compare(y.Timestamp)
	})

	rows := make([]model.GenerationRow, len(sorted))
	for i, block := range sorted {
		rows[i] = model.GenerationRow{
			BlockNumber: block.Number,
			Timestamp:   block.Timestamp,
		}
		if i > 0 {
			rows[i].TimeDiff = model.Delta{
				Seconds: block.Timestamp.Sub(sorted[i-1].Timestamp).Seconds(),
				Valid:   true,
			}
		}
	}

	return model.GenerationTable{Rows: rows, OutOfOrder: outOfOrder}
}

// countOutOfOrder counts blocks timestamped before the block fetched just ahead of them.
func (a *Analyzer) countOutOfOrder(table model.BlockTable) int {
	n := 0
	for i := 1; i < len(table); i++ {
		prev, cur := table[i-1], table[i]
		if !cur.Timestamp.Before(prev.Timestamp) {
			continue
		}
		n++
		a.logger.Warn("block timestamp earlier than previous block",
			zap.Uint64("block", cur.Number),
			zap.Time("timestamp", cur.Timestamp),
			zap.Uint64("previous_block", prev.Number),
			zap.Time("previous_timestamp", prev.Timestamp))
	}
	return n
}
