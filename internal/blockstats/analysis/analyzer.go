// Package analysis derives transaction volume and block generation time from fetched blocks.
package analysis

import (
	"go.uber.org/zap"
)

// Analyzer computes derived tables. It never mutates the tables it is given.
type Analyzer struct {
	logger *zap.Logger
}

func NewAnalyzer(logger *zap.Logger) *Analyzer {
	return &Analyzer{logger: logger}
}
