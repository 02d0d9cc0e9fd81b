package api

import "time"

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// APIMetrics records metrics for API calls.
	APIMetrics interface {
		Observe(operation string, err error, started time.Time)
	}
)
