package api

import (
	"encoding/json"
	"fmt"

	"github.com/goodnatureofminers/blockinsight7000-blockstats/internal/blockstats/model"
	"github.com/goodnatureofminers/blockinsight7000-blockstats/pkg/safe"
)

// blockPayload mirrors the block endpoint response. Pointer fields detect absent keys.
// Numeric fields stay raw so that quoted numbers ("130") are rejected rather than coerced.
type blockPayload struct {
	BlockNumber  *json.RawMessage   `json:"block_number"`
	Transactions *[]json.RawMessage `json:"transactions"`
	Timestamp    *json.RawMessage   `json:"timestamp"`
}

// DecodeBlock parses a block endpoint response body into a validated Block.
func DecodeBlock(data []byte) (model.Block, error) {
	var payload blockPayload
	if err := json.Unmarshal(data, &payload); err != nil {
		return model.Block{}, fmt.Errorf("%w: %w", model.ErrMalformedRecord, err)
	}
	return payload.toBlock()
}

func (p blockPayload) toBlock() (model.Block, error) {
	blockNumber, err := jsonNumber("block_number", p.BlockNumber)
	if err != nil {
		return model.Block{}, err
	}
	if p.Transactions == nil {
		return model.Block{}, missing("transactions")
	}
	timestamp, err := jsonNumber("timestamp", p.Timestamp)
	if err != nil {
		return model.Block{}, err
	}

	n, err := blockNumber.Int64()
	if err != nil {
		return model.Block{}, &model.FieldError{Field: "block_number", Reason: fmt.Sprintf("not an integer: %s", blockNumber)}
	}
	number, err := safe.Uint64(n)
	if err != nil {
		return model.Block{}, &model.FieldError{Field: "block_number", Reason: err.Error()}
	}

	seconds, err := timestamp.Float64()
	if err != nil {
		return model.Block{}, &model.FieldError{Field: "timestamp", Reason: fmt.Sprintf("not a number: %s", timestamp)}
	}
	ts, err := safe.UnixTime(seconds)
	if err != nil {
		return model.Block{}, &model.FieldError{Field: "timestamp", Reason: err.Error()}
	}

	return model.Block{
		Number:       number,
		Transactions: *p.Transactions,
		Timestamp:    ts,
	}, nil
}

func missing(field string) error {
	return &model.FieldError{Field: field, Reason: "missing"}
}

// jsonNumber accepts only a bare JSON number literal.
func jsonNumber(field string, raw *json.RawMessage) (json.Number, error) {
	if raw == nil || string(*raw) == "null" {
		return "", missing(field)
	}
	if len(*raw) == 0 || (*raw)[0] == '"' {
		return "", &model.FieldError{Field: field, Reason: fmt.Sprintf("not a number: %s", *raw)}
	}
	var n json.Number
	if err := json.Unmarshal(*raw, &n); err != nil {
		return "", &model.FieldError{Field: field, Reason: fmt.Sprintf("not a number: %s", *raw)}
	}
	return n, nil
}
