package schema

import "time"

// SkillDetection is one canonical skill found in the feedback text.
type SkillDetection struct {
	Skill      string  `json:"skill"`
	Confidence float64 `json:"confidence"` // 0-1, derived from mention count
	Mentions   int     `json:"mentions"`
}

// JobContext is the role classification derived from the candidate's job title.
type JobContext struct {
	Seniority    Seniority  `json:"seniority"`
	Domain       RoleDomain `json:"domain"`
	IsLeadership bool       `json:"is_leadership"`
}

// CapabilityScores maps each evaluation dimension to a 0-1 score.
type CapabilityScores map[Dimension]float64

// Insight is a single human-readable observation derived from feedback.
type Insight struct {
	Category   InsightCategory `json:"category"`
	Insight    string          `json:"insight"`
	Importance Importance      `json:"importance"`
	Confidence float64         `json:"confidence"` // Heuristic prior set per rule, not a measured value
	Actionable bool            `json:"actionable"`
	Data       map[string]any  `json:"data,omitempty"` // Per-category context; shapes documented per rule
}

// Recommendation is a suggested next step for the hiring pipeline.
type Recommendation struct {
	Type        RecommendationType `json:"type"`
	Text        string             `json:"text"`
	Confidence  ConfidenceLevel    `json:"confidence"`
	Reasoning   string             `json:"reasoning"`
	Priority    Priority           `json:"priority"`
	ActionItems []string           `json:"action_items"`
}

// RiskFactor is a flagged concern about a candidate, tiered by severity.
type RiskFactor struct {
	Level          RiskLevel `json:"level"`
	Category       string    `json:"category"`
	Description    string    `json:"description"`
	Impact         string    `json:"impact"`
	Confidence     float64   `json:"confidence"`
	ActionRequired string    `json:"action_required"`
}

// AnalysisResult is the sole output of a single analysis call. It has no
// lifecycle beyond the call that produced it; callers may cache, render or
// discard it freely.
type AnalysisResult struct {
	ID               string           `json:"id"`
	CandidateID      string           `json:"candidate_id"`
	CandidateName    string           `json:"candidate_name"`
	Scores           CapabilityScores `json:"scores"`
	Sentiment        float64          `json:"sentiment"` // -1..1
	Skills           []SkillDetection `json:"skills"`
	Context          JobContext       `json:"context"`
	Insights         []Insight        `json:"insights"`
	Recommendations  []Recommendation `json:"recommendations"`
	RiskFactors      []RiskFactor     `json:"risk_factors"`
	ExecutiveSummary string           `json:"executive_summary"`
	ConfidenceScore  float64          `json:"confidence_score"` // 0.15..0.98
	GeneratedAt      time.Time        `json:"generated_at"`

	// Breakdown is only populated in explain mode. It maps each dimension to
	// its score components, keyed by component label such as "base".
	Breakdown map[Dimension]map[string]float64 `json:"breakdown,omitempty"`
}

// Overall returns the overall impression score, or 0 if scores are missing.
func (r *AnalysisResult) Overall() float64 {
	if r == nil || r.Scores == nil {
		return 0
	}
	return r.Scores[DimensionOverall]
}

// Primary returns the primary recommendation, which is always first in the
// list, or nil when no recommendations were produced.
func (r *AnalysisResult) Primary() *Recommendation {
	if r == nil || len(r.Recommendations) == 0 {
		return nil
	}
	return &r.Recommendations[0]
}

// AnalysisRecord is the history-store row for one completed analysis.
type AnalysisRecord struct {
	AnalysisID     string             `json:"analysis_id"`
	CandidateID    string             `json:"candidate_id"`
	CandidateName  string             `json:"candidate_name"`
	JobTitle       string             `json:"job_title,omitempty"`
	Rating         int                `json:"rating"`
	Overall        float64            `json:"overall"`
	Sentiment      float64            `json:"sentiment"`
	Confidence     float64            `json:"confidence"`
	Primary        RecommendationType `json:"primary_rec"`
	RiskCount      int                `json:"risk_count"`
	HighestRisk    string             `json:"highest_risk,omitempty"`
	GeneratedAt    time.Time          `json:"generated_at"`
	CapabilityJSON string             `json:"capability_json,omitempty"` // JSON-encoded CapabilityScores for export
}

// HistoryStatus summarizes the state of the history store.
type HistoryStatus struct {
	Backend        DatabaseBackend
	Location       string
	TotalAnalyses  int
	OldestAnalysis time.Time
	NewestAnalysis time.Time
	SchemaVersion  int
}
