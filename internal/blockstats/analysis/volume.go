package analysis

import (
	"github.com/goodnatureofminers/blockinsight7000-blockstats/internal/blockstats/model"
	"go.uber.org/zap"
)

// VolumeByBlock counts transactions per block, preserving table order.
// An empty table yields a skipped result carrying model.DiagnosticNoData.
func (a *Analyzer) VolumeByBlock(table model.BlockTable) model.VolumeTable {
	if table.Empty() {
		a.logger.Info(string(model.DiagnosticNoData), zap.String("metric", "transaction_volume"))
		return model.VolumeTable{Diagnostic: model.DiagnosticNoData}
	}

	rows := make([]model.VolumeRow, 0, len(table))
	for _, block := range table {
		rows = append(rows, model.VolumeRow{
			BlockNumber:      block.Number,
			TransactionCount: len(block.Transactions),
		})
	}
	return model.VolumeTable{Rows: rows}
}
