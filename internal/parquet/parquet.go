// Package parquet provides data structures and functions for exporting
// analysis history to Parquet files using github.com/parquet-go/parquet-go.
package parquet

import (
	"fmt"
	"os"
	"time"

	"github.com/parquet-go/parquet-go"

	"github.com/talentlens/talentlens/schema"
)

// HistoryRecord represents one completed feedback analysis.
// This struct maps to the talentlens_history database table.
type HistoryRecord struct {
	// AnalysisID is the unique identifier for this analysis
	AnalysisID string `parquet:"analysis_id,snappy"`

	// CandidateID identifies the candidate that was analyzed
	CandidateID string `parquet:"candidate_id,snappy"`

	// CandidateName is the candidate's display name (may be empty)
	CandidateName string `parquet:"candidate_name,snappy"`

	// JobTitle is the role the candidate interviewed for (nullable)
	JobTitle *string `parquet:"job_title,optional,snappy"`

	// Rating is the interviewer's 1-10 rating after normalization
	Rating int32 `parquet:"rating,snappy"`

	// Overall is the blended capability score in [0, 1]
	Overall float64 `parquet:"overall,snappy"`

	// Sentiment is the feedback sentiment score in [-1, 1]
	Sentiment float64 `parquet:"sentiment,snappy"`

	// Confidence is the analysis confidence score in [0.15, 0.98]
	Confidence float64 `parquet:"confidence,snappy"`

	// PrimaryRecommendation is the primary recommendation type
	PrimaryRecommendation string `parquet:"primary_rec,snappy"`

	// RiskCount is the number of risk factors detected
	RiskCount int32 `parquet:"risk_count,snappy"`

	// HighestRisk is the most severe risk level detected (nullable)
	HighestRisk *string `parquet:"highest_risk,optional,snappy"`

	// GeneratedAt is when the analysis completed (stored as TIMESTAMP with nanosecond precision)
	GeneratedAt time.Time `parquet:"generated_at,snappy"`

	// CapabilityJSON contains the JSON-encoded per-dimension scores (nullable)
	CapabilityJSON *string `parquet:"capability_json,optional,snappy"`
}

// WriteHistoryParquet writes a slice of HistoryRecord structs to a Parquet file.
func WriteHistoryParquet(data []HistoryRecord, outputPath string) error {
	// Create the output file
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	// Create a Parquet writer using struct schema inference
	// The schema is automatically derived from the HistoryRecord struct tags
	writer := parquet.NewGenericWriter[HistoryRecord](file)
	defer func() { _ = writer.Close() }()

	// Write all records to the file
	// The Write method accepts a variadic slice
	if _, err := writer.Write(data); err != nil {
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}

	return nil
}

// ConvertAnalysisRecords converts schema.AnalysisRecord to HistoryRecord for Parquet export.
func ConvertAnalysisRecords(records []schema.AnalysisRecord) []HistoryRecord {
	result := make([]HistoryRecord, len(records))
	for i, record := range records {
		result[i] = HistoryRecord{
			AnalysisID:            record.AnalysisID,
			CandidateID:           record.CandidateID,
			CandidateName:         record.CandidateName,
			JobTitle:              optionalString(record.JobTitle),
			Rating:                int32(record.Rating),
			Overall:               record.Overall,
			Sentiment:             record.Sentiment,
			Confidence:            record.Confidence,
			PrimaryRecommendation: string(record.Primary),
			RiskCount:             int32(record.RiskCount),
			HighestRisk:           optionalString(record.HighestRisk),
			GeneratedAt:           record.GeneratedAt,
			CapabilityJSON:        optionalString(record.CapabilityJSON),
		}
	}
	return result
}

// MockFetchHistoryRecords generates sample HistoryRecord data for demonstration.
func MockFetchHistoryRecords() []HistoryRecord {
	now := time.Now()
	jobTitle1 := "Senior Software Engineer"
	highestRisk1 := "medium"
	capabilityJSON1 := `{"technical":0.85,"communication":0.9,"problem_solving":0.8,"cultural_fit":0.75,"leadership":0.7,"growth_potential":0.8}`

	jobTitle2 := "Frontend Developer"
	highestRisk2 := "critical"

	return []HistoryRecord{
		{
			AnalysisID:            "2f1a9c3e-0000-4000-8000-000000000001",
			CandidateID:           "cand-101",
			CandidateName:         "Jane Doe",
			JobTitle:              &jobTitle1,
			Rating:                9,
			Overall:               0.88,
			Sentiment:             0.9,
			Confidence:            0.82,
			PrimaryRecommendation: "strong_advance",
			RiskCount:             1,
			HighestRisk:           &highestRisk1,
			GeneratedAt:           now.Add(-2 * time.Hour),
			CapabilityJSON:        &capabilityJSON1,
		},
		{
			AnalysisID:            "2f1a9c3e-0000-4000-8000-000000000002",
			CandidateID:           "cand-102",
			CandidateName:         "John Smith",
			JobTitle:              &jobTitle2,
			Rating:                2,
			Overall:               0.2,
			Sentiment:             -0.8,
			Confidence:            0.7,
			PrimaryRecommendation: "decline",
			RiskCount:             4,
			HighestRisk:           &highestRisk2,
			GeneratedAt:           now.Add(-24 * time.Hour),
			CapabilityJSON:        nil, // Not recorded - nullable field
		},
		{
			AnalysisID:            "2f1a9c3e-0000-4000-8000-000000000003",
			CandidateID:           "cand-103",
			CandidateName:         "",
			JobTitle:              nil, // No role recorded - nullable field
			Rating:                5,
			Overall:               0.5,
			Sentiment:             0.0,
			Confidence:            0.4,
			PrimaryRecommendation: "conditional",
			RiskCount:             0,
			HighestRisk:           nil, // No risks detected - nullable field
			GeneratedAt:           now.Add(-10 * time.Minute),
			CapabilityJSON:        nil,
		},
	}
}

func optionalString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
