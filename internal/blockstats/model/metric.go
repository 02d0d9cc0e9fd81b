package model

import "time"

// Diagnostic explains why a derived table carries no computed rows.
type Diagnostic string

var (
	// DiagnosticNone marks a table that was computed from input data.
	DiagnosticNone Diagnostic = ""
	// DiagnosticNoData marks a table skipped because the input table was empty.
	DiagnosticNoData Diagnostic = "no data, fetch blocks first"
)

// VolumeRow is the transaction count of one block.
type VolumeRow struct {
	BlockNumber      uint64
	TransactionCount int
}

// VolumeTable lists transaction counts in block table order.
type VolumeTable struct {
	Rows       []VolumeRow
	Diagnostic Diagnostic
}

// Skipped reports whether the calculation did not run.
func (t VolumeTable) Skipped() bool {
	return t.Diagnostic != DiagnosticNone
}

// Lookup returns the transaction count recorded for a block number.
func (t VolumeTable) Lookup(blockNumber uint64) (int, bool) {
	for _, row := range t.Rows {
		if row.BlockNumber == blockNumber {
			return row.TransactionCount, true
		}
	}
	return 0, false
}

// Delta is a time difference in seconds. Valid is false when there is no previous block.
type Delta struct {
	Seconds float64
	Valid   bool
}

// GenerationRow is one block with the time elapsed since the block before it.
type GenerationRow struct {
	BlockNumber uint64
	Timestamp   time.Time
	TimeDiff    Delta
}

// GenerationTable lists block generation times ordered by timestamp.
type GenerationTable struct {
	Rows []GenerationRow
	// OutOfOrder counts blocks timestamped earlier than the block fetched before them.
	OutOfOrder int
	Diagnostic Diagnostic
}

// Skipped reports whether the calculation did not run.
func (t GenerationTable) Skipped() bool {
	return t.Diagnostic != DiagnosticNone
}
