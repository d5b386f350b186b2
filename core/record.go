package core

import (
	"encoding/json"

	"github.com/talentlens/talentlens/schema"
)

// BuildAnalysisRecord flattens a completed analysis into the row shape the
// history store persists. The rating and job title come from the envelope
// because the result does not carry them.
func BuildAnalysisRecord(result *schema.AnalysisResult, env *schema.FeedbackEnvelope) schema.AnalysisRecord {
	record := schema.AnalysisRecord{
		AnalysisID:    result.ID,
		CandidateID:   result.CandidateID,
		CandidateName: result.CandidateName,
		Overall:       result.Overall(),
		Sentiment:     result.Sentiment,
		Confidence:    result.ConfidenceScore,
		RiskCount:     len(result.RiskFactors),
		HighestRisk:   string(highestRiskLevel(result.RiskFactors)),
		GeneratedAt:   result.GeneratedAt,
	}
	if env != nil {
		record.JobTitle = env.Candidate.JobTitle
		record.Rating = env.Feedback.Rating
	}
	if primary := result.Primary(); primary != nil {
		record.Primary = primary.Type
	}
	if encoded, err := json.Marshal(result.Scores); err == nil {
		record.CapabilityJSON = string(encoded)
	}
	return record
}

// highestRiskLevel returns the most severe level present, or "" with no risks.
func highestRiskLevel(risks []schema.RiskFactor) schema.RiskLevel {
	var highest schema.RiskLevel
	for _, r := range risks {
		if highest == "" || r.Level.Rank() < highest.Rank() {
			highest = r.Level
		}
	}
	return highest
}
