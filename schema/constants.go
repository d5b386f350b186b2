package schema

// Custom string types for type safety.
type (
	// Dimension is one candidate-evaluation dimension.
	Dimension string

	// InsightCategory groups insights by subject area.
	InsightCategory string

	// Importance ranks insights for display order.
	Importance string

	// RecommendationType identifies a suggested pipeline action.
	RecommendationType string

	// ConfidenceLevel is the coarse certainty attached to a recommendation.
	ConfidenceLevel string

	// Priority orders recommendations for follow-up.
	Priority string

	// RiskLevel tiers risk factors by severity.
	RiskLevel string

	// RecommendationVote is the interviewer's own verdict on the candidate.
	RecommendationVote string

	// Seniority is the role level inferred from a job title.
	Seniority string

	// RoleDomain is the technical domain inferred from a job title.
	RoleDomain string

	// OutputMode represents the format of the output.
	OutputMode string

	// DatabaseBackend represents the database backend for history tracking.
	DatabaseBackend string
)

// Evaluation dimensions.
const (
	DimensionTechnical     Dimension = "technical_skills"
	DimensionCommunication Dimension = "communication"
	DimensionProblem       Dimension = "problem_solving"
	DimensionCulture       Dimension = "cultural_fit"
	DimensionLeadership    Dimension = "leadership_potential"
	DimensionGrowth        Dimension = "growth_potential"
	DimensionOverall       Dimension = "overall_impression"
)

// Insight categories.
const (
	CategoryTechnical   InsightCategory = "technical"
	CategoryPerformance InsightCategory = "performance"
	CategorySoftSkills  InsightCategory = "soft_skills"
	CategoryExperience  InsightCategory = "experience"
	CategoryCulturalFit InsightCategory = "cultural_fit"
	CategoryRisk        InsightCategory = "risk"
	CategoryGrowth      InsightCategory = "growth"
)

// Importance levels, most important first.
const (
	ImportanceCritical Importance = "critical"
	ImportanceHigh     Importance = "high"
	ImportanceMedium   Importance = "medium"
	ImportanceLow      Importance = "low"
)

// Recommendation types.
const (
	RecStrongAdvance     RecommendationType = "strong_advance"
	RecAdvance           RecommendationType = "advance"
	RecConditional       RecommendationType = "conditional"
	RecDecline           RecommendationType = "decline"
	RecTechnicalFollowup RecommendationType = "technical_followup"
	RecReferenceCheck    RecommendationType = "reference_check"
	RecSalaryPrep        RecommendationType = "salary_prep"
	RecLeadershipTrack   RecommendationType = "leadership_track"
	RecGrowthOpportunity RecommendationType = "growth_opportunity"
)

// Confidence levels for recommendations.
const (
	ConfidenceVeryHigh ConfidenceLevel = "very_high"
	ConfidenceHigh     ConfidenceLevel = "high"
	ConfidenceMedium   ConfidenceLevel = "medium"
	ConfidenceLow      ConfidenceLevel = "low"
)

// Recommendation priorities.
const (
	PriorityImmediate Priority = "immediate"
	PriorityHigh      Priority = "high"
	PriorityMedium    Priority = "medium"
	PriorityLow       Priority = "low"
)

// Risk levels, most severe first.
const (
	RiskCritical RiskLevel = "critical"
	RiskHigh     RiskLevel = "high"
	RiskMedium   RiskLevel = "medium"
	RiskLow      RiskLevel = "low"
)

// Interviewer votes.
const (
	VoteAdvance RecommendationVote = "advance"
	VoteProceed RecommendationVote = "proceed"
	VoteReview  RecommendationVote = "review" // default for free-form notes
	VoteDecline RecommendationVote = "decline"
)

// Seniority levels.
const (
	SenioritySenior Seniority = "senior"
	SeniorityMid    Seniority = "mid"
	SeniorityJunior Seniority = "junior"
)

// Role domains.
const (
	DomainFrontend  RoleDomain = "frontend"
	DomainBackend   RoleDomain = "backend"
	DomainFullstack RoleDomain = "fullstack"
	DomainGeneral   RoleDomain = "general"
)

// All output modes supported.
const (
	TextOut OutputMode = "text" // default
	CSVOut  OutputMode = "csv"
	JSONOut OutputMode = "json"
)

// All history backends supported.
const (
	SQLiteBackend     DatabaseBackend = "sqlite"
	MySQLBackend      DatabaseBackend = "mysql"
	PostgreSQLBackend DatabaseBackend = "postgresql"
	NoneBackend       DatabaseBackend = "none" // default
)

// ScoredDimensions lists the six directly scored dimensions, in weight order.
// DimensionOverall is derived from these and is deliberately excluded.
var ScoredDimensions = []Dimension{
	DimensionTechnical,
	DimensionCommunication,
	DimensionProblem,
	DimensionCulture,
	DimensionLeadership,
	DimensionGrowth,
}

// AllImportances lists importance levels from most to least important.
var AllImportances = []Importance{ImportanceCritical, ImportanceHigh, ImportanceMedium, ImportanceLow}

// AllRiskLevels lists risk levels from most to least severe.
var AllRiskLevels = []RiskLevel{RiskCritical, RiskHigh, RiskMedium, RiskLow}

// ValidOutputModes lists all valid output modes.
var ValidOutputModes = map[OutputMode]struct{}{
	TextOut: {},
	CSVOut:  {},
	JSONOut: {},
}

// ValidDatabaseBackends lists all valid history backends.
var ValidDatabaseBackends = map[DatabaseBackend]struct{}{
	SQLiteBackend:     {},
	MySQLBackend:      {},
	PostgreSQLBackend: {},
	NoneBackend:       {},
}

// ValidVotes lists all valid interviewer votes.
var ValidVotes = map[RecommendationVote]struct{}{
	VoteAdvance: {},
	VoteProceed: {},
	VoteReview:  {},
	VoteDecline: {},
}

// GetDefaultDimensionWeights returns the default weight of each scored
// dimension inside the overall impression blend. The six weights sum to 1.0
// and cover the 0.7 sub-total of the blend; rating and sentiment supply the
// remaining 0.3 and 0.1 terms.
func GetDefaultDimensionWeights() map[Dimension]float64 {
	return map[Dimension]float64{
		DimensionTechnical:     0.25,
		DimensionCommunication: 0.20,
		DimensionProblem:       0.20,
		DimensionCulture:       0.15,
		DimensionLeadership:    0.10,
		DimensionGrowth:        0.10,
	}
}

// Rank returns the sort rank of an importance level; lower sorts first.
func (i Importance) Rank() int {
	switch i {
	case ImportanceCritical:
		return 0
	case ImportanceHigh:
		return 1
	case ImportanceMedium:
		return 2
	default:
		return 3
	}
}

// Rank returns the sort rank of a risk level; lower sorts first.
func (l RiskLevel) Rank() int {
	switch l {
	case RiskCritical:
		return 0
	case RiskHigh:
		return 1
	case RiskMedium:
		return 2
	default:
		return 3
	}
}
