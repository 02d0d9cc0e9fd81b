// Package model defines domain models for block range analytics.
package model

import (
	"encoding/json"
	"time"
)

// Block is a single block fetched from the API, validated at decode time.
type Block struct {
	Number       uint64
	Transactions []json.RawMessage
	Timestamp    time.Time
}

// BlockTable holds successfully fetched blocks in fetch order.
type BlockTable []Block

// Empty reports whether no blocks were fetched.
func (t BlockTable) Empty() bool {
	return len(t) == 0
}

// Transaction is a transaction payload as returned by the API.
type Transaction map[string]any
