package core

import (
	"strings"

	"github.com/talentlens/talentlens/schema"
)

// maxRecommendations caps the recommendation list.
const maxRecommendations = 5

// Overall-strength blend and decision thresholds. The same blended value
// drives the primary recommendation here and the closing clause of the
// executive summary, so the two surfaces never contradict each other.
const (
	strengthRatingWeight   = 0.40
	strengthSentimentShare = 0.20
	strengthTechnicalShare = 0.15
	strengthCommShare      = 0.15
	strengthCultureShare   = 0.10

	strongAdvanceThreshold = 0.80
	advanceThreshold       = 0.65
	conditionalThreshold   = 0.45
)

// Secondary recommendation triggers.
const (
	techFollowupCeiling   = 0.60
	referenceRatingFloor  = 7
	referenceCultureLimit = 0.60
	salaryRatingFloor     = 8
	salaryOverallFloor    = 0.80
	leadershipScoreFloor  = 0.70
	leadershipRatingFloor = 7
	growthScoreFloor      = 0.70
	growthTechCeiling     = 0.70
)

// overallStrength blends the rating, the normalized sentiment and the three
// most decision-relevant dimensions into a single 0..1 hiring signal.
func overallStrength(rating int, sentiment float64, scores schema.CapabilityScores) float64 {
	return clamp01(strengthRatingWeight*float64(rating)/10 +
		strengthSentimentShare*(sentiment+1)/2 +
		strengthTechnicalShare*scores[schema.DimensionTechnical] +
		strengthCommShare*scores[schema.DimensionCommunication] +
		strengthCultureShare*scores[schema.DimensionCulture])
}

// generateRecommendations produces the primary hire/no-hire recommendation
// plus any secondary process recommendations, capped at maxRecommendations.
// The primary recommendation is always first.
func generateRecommendations(in insightInputs) []schema.Recommendation {
	strength := overallStrength(in.feedback.Rating, in.sentiment, in.scores)

	recs := []schema.Recommendation{primaryRecommendation(strength)}
	recs = append(recs, secondaryRecommendations(in)...)
	if len(recs) > maxRecommendations {
		recs = recs[:maxRecommendations]
	}
	return recs
}

func primaryRecommendation(strength float64) schema.Recommendation {
	switch {
	case strength >= strongAdvanceThreshold:
		return schema.Recommendation{
			Type:       schema.RecStrongAdvance,
			Text:       "Fast-track this candidate to the next stage",
			Confidence: schema.ConfidenceVeryHigh,
			Reasoning:  "High rating combined with strong signals across the decision-relevant dimensions",
			Priority:   schema.PriorityImmediate,
			ActionItems: []string{
				"Schedule the next interview round within 48 hours",
				"Notify the hiring manager of a strong candidate",
			},
		}
	case strength >= advanceThreshold:
		return schema.Recommendation{
			Type:       schema.RecAdvance,
			Text:       "Advance this candidate to the next stage",
			Confidence: schema.ConfidenceHigh,
			Reasoning:  "Solid overall performance with no blocking concerns",
			Priority:   schema.PriorityHigh,
			ActionItems: []string{
				"Schedule the next interview round",
			},
		}
	case strength >= conditionalThreshold:
		return schema.Recommendation{
			Type:       schema.RecConditional,
			Text:       "Consider advancing with targeted follow-up on the weaker areas",
			Confidence: schema.ConfidenceMedium,
			Reasoning:  "Mixed signals; strengths exist but so do open questions",
			Priority:   schema.PriorityMedium,
			ActionItems: []string{
				"Review the flagged concerns with the hiring manager",
				"Plan a focused follow-up interview if proceeding",
			},
		}
	default:
		return schema.Recommendation{
			Type:       schema.RecDecline,
			Text:       "Do not advance this candidate",
			Confidence: schema.ConfidenceHigh,
			Reasoning:  "Overall signal falls below the bar for this role",
			Priority:   schema.PriorityHigh,
			ActionItems: []string{
				"Send a respectful decline",
				"Keep the profile on file for better-suited roles",
			},
		}
	}
}

func secondaryRecommendations(in insightInputs) []schema.Recommendation {
	var recs []schema.Recommendation

	if in.scores[schema.DimensionTechnical] < techFollowupCeiling && in.feedback.Rating >= 6 {
		recs = append(recs, schema.Recommendation{
			Type:       schema.RecTechnicalFollowup,
			Text:       "Add a dedicated technical deep-dive before deciding",
			Confidence: schema.ConfidenceMedium,
			Reasoning:  "Overall impression is positive but the technical signal is thin",
			Priority:   schema.PriorityHigh,
			ActionItems: []string{
				"Schedule a technical interview with a senior engineer",
			},
		})
	}

	if in.feedback.Rating >= referenceRatingFloor &&
		(strings.Contains(in.text, "concern") || in.scores[schema.DimensionCulture] < referenceCultureLimit) {
		recs = append(recs, schema.Recommendation{
			Type:       schema.RecReferenceCheck,
			Text:       "Run reference checks before extending an offer",
			Confidence: schema.ConfidenceMedium,
			Reasoning:  "Strong candidate with specific concerns that references can resolve",
			Priority:   schema.PriorityMedium,
			ActionItems: []string{
				"Request two professional references",
				"Target the flagged concerns in reference questions",
			},
		})
	}

	if in.feedback.Rating >= salaryRatingFloor && in.scores[schema.DimensionOverall] > salaryOverallFloor {
		recs = append(recs, schema.Recommendation{
			Type:       schema.RecSalaryPrep,
			Text:       "Prepare a competitive offer early",
			Confidence: schema.ConfidenceHigh,
			Reasoning:  "Candidate of this strength is likely to have competing offers",
			Priority:   schema.PriorityMedium,
			ActionItems: []string{
				"Pull current compensation benchmarks for the role",
			},
		})
	}

	if in.scores[schema.DimensionLeadership] > leadershipScoreFloor && in.feedback.Rating >= leadershipRatingFloor {
		recs = append(recs, schema.Recommendation{
			Type:       schema.RecLeadershipTrack,
			Text:       "Evaluate for a leadership-track position",
			Confidence: schema.ConfidenceMedium,
			Reasoning:  "Leadership signals exceed what the current role requires",
			Priority:   schema.PriorityLow,
			ActionItems: []string{
				"Discuss leadership interest in the next round",
			},
		})
	}

	if in.scores[schema.DimensionGrowth] > growthScoreFloor && in.scores[schema.DimensionTechnical] < growthTechCeiling {
		recs = append(recs, schema.Recommendation{
			Type:       schema.RecGrowthOpportunity,
			Text:       "Consider for a growth-oriented junior placement",
			Confidence: schema.ConfidenceMedium,
			Reasoning:  "Learning appetite outpaces current technical depth",
			Priority:   schema.PriorityLow,
			ActionItems: []string{
				"Assess mentorship capacity on the target team",
			},
		})
	}

	return recs
}
