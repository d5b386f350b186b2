// Package contract provides interfaces and shared utilities for internal architecture.
package contract

import (
	"context"

	"github.com/talentlens/talentlens/schema"
)

// FeedbackAnalyzer defines the analysis operations the command layer and the
// serving surfaces depend on. This allows handlers to be tested against a
// stub analyzer.
type FeedbackAnalyzer interface {
	// Analyze runs the full pipeline over one feedback envelope.
	Analyze(ctx context.Context, env *schema.FeedbackEnvelope) (*schema.AnalysisResult, error)

	// ProcessNotes analyzes free-form notes with no rating or vote attached.
	ProcessNotes(ctx context.Context, notes string, candidate schema.CandidateProfile) (*schema.AnalysisResult, error)
}

// HistoryStore defines the interface for persisting completed analyses.
// This allows the history layer to be mocked for testing.
type HistoryStore interface {
	// SaveAnalysis records one completed analysis.
	SaveAnalysis(record schema.AnalysisRecord) error

	// RecentAnalyses returns up to limit records, newest first.
	RecentAnalyses(limit int) ([]schema.AnalysisRecord, error)

	// CandidateAnalyses returns every record for one candidate, newest first.
	CandidateAnalyses(candidateID string) ([]schema.AnalysisRecord, error)

	// GetStatus returns status information about the history store.
	GetStatus() (schema.HistoryStatus, error)

	// ClearHistory deletes every record and reports how many were removed.
	ClearHistory() (int64, error)

	// Close closes the underlying connection.
	Close() error
}

// HistoryManager defines the interface for obtaining the configured store.
type HistoryManager interface {
	GetHistoryStore() HistoryStore
}
