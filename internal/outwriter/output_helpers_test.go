package outwriter

import (
	"time"

	"github.com/talentlens/talentlens/schema"
)

// sampleResult builds a realistic analysis result for output tests.
func sampleResult(name string, overall float64) *schema.AnalysisResult {
	return &schema.AnalysisResult{
		ID:            "a-1",
		CandidateID:   "cand-1",
		CandidateName: name,
		Scores: schema.CapabilityScores{
			schema.DimensionTechnical:     0.9,
			schema.DimensionCommunication: 0.85,
			schema.DimensionProblem:       0.8,
			schema.DimensionCulture:       0.75,
			schema.DimensionLeadership:    0.7,
			schema.DimensionGrowth:        0.8,
			schema.DimensionOverall:       overall,
		},
		Sentiment: 0.9,
		Skills: []schema.SkillDetection{
			{Skill: "go", Confidence: 0.9, Mentions: 3},
			{Skill: "kubernetes", Confidence: 0.6, Mentions: 2},
		},
		Context: schema.JobContext{
			Seniority: schema.SenioritySenior,
			Domain:    schema.DomainBackend,
		},
		Insights: []schema.Insight{
			{
				Category:   schema.CategoryTechnical,
				Insight:    "Strong technical signals across multiple areas",
				Importance: schema.ImportanceHigh,
				Confidence: 0.85,
				Actionable: false,
			},
		},
		Recommendations: []schema.Recommendation{
			{
				Type:        schema.RecStrongAdvance,
				Text:        "Fast-track this candidate to the final round",
				Confidence:  schema.ConfidenceVeryHigh,
				Reasoning:   "Consistently strong performance across dimensions",
				Priority:    schema.PriorityImmediate,
				ActionItems: []string{"Schedule final interview within 48 hours"},
			},
		},
		RiskFactors: []schema.RiskFactor{
			{
				Level:          schema.RiskMedium,
				Category:       "mixed_signal",
				Description:    "High rating paired with written concerns",
				Impact:         "Signals may not agree",
				Confidence:     0.6,
				ActionRequired: "Clarify the concerns with the interviewer",
			},
		},
		ExecutiveSummary: "Jane Doe delivered a strong interview performance for Senior Engineer, rated 9/10.",
		ConfidenceScore:  0.82,
		GeneratedAt:      time.Date(2025, 11, 4, 10, 0, 0, 0, time.UTC),
	}
}
