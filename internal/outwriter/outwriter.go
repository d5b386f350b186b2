// Package outwriter has output and writer logic.
package outwriter

import (
	"time"

	"github.com/talentlens/talentlens/internal/contract"
	"github.com/talentlens/talentlens/schema"
)

// OutWriter provides a unified interface for all output operations.
// It encapsulates the various output formats and provides a clean API for the core logic.
type OutWriter struct{}

// NewOutWriter creates a new instance of the output writer.
func NewOutWriter() *OutWriter {
	return &OutWriter{}
}

// WriteAnalysis prints a single analysis result using the configured output format.
func (ow *OutWriter) WriteAnalysis(result *schema.AnalysisResult, cfg *contract.Config, duration time.Duration) error {
	return WriteAnalysisResult(result, cfg, duration)
}

// WriteBatch prints ranked batch results using the configured output format.
func (ow *OutWriter) WriteBatch(results []*schema.AnalysisResult, cfg *contract.Config, duration time.Duration) error {
	return WriteBatchResults(results, cfg, duration)
}

// WriteHistory prints stored analysis records using the configured output format.
func (ow *OutWriter) WriteHistory(records []schema.AnalysisRecord, cfg *contract.Config) error {
	return WriteHistoryRecords(records, cfg)
}

// WriteDimensions prints dimension definitions using the configured output format.
func (ow *OutWriter) WriteDimensions(activeWeights map[schema.Dimension]float64, cfg *contract.Config) error {
	return WriteDimensionDefinitions(activeWeights, cfg)
}
