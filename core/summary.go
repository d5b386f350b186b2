package core

import (
	"fmt"
	"strings"

	"github.com/talentlens/talentlens/schema"
)

// Combined-score blend for the opening clause and its qualitative bands.
const (
	summaryRatingWeight    = 0.70
	summarySentimentWeight = 0.30

	exceptionalBand = 0.85
	strongBand      = 0.75
	solidBand       = 0.65
	mixedBand       = 0.45
)

// Strength and concern triggers used when picking clause content.
const (
	summaryTechFloor       = 0.70
	summaryCommStrongFloor = 0.80
	summaryCommGoodFloor   = 0.60
	summaryLeadFloor       = 0.70
	summaryCultureFloor    = 0.80
	summaryGrowthFloor     = 0.70

	summaryTechCeiling    = 0.50
	summaryCommCeiling    = 0.50
	summaryCultureCeiling = 0.50
	longConcernsLength    = 200
)

// buildExecutiveSummary composes the four-clause summary: overall assessment,
// strengths, concerns and the closing next-step, as one paragraph.
func buildExecutiveSummary(in insightInputs) string {
	clauses := []string{
		openingClause(in),
		strengthsClause(in),
		concernsClause(in),
		closingClause(in),
	}
	var kept []string
	for _, c := range clauses {
		if c != "" {
			kept = append(kept, c)
		}
	}
	return strings.Join(kept, " ")
}

func openingClause(in insightInputs) string {
	combined := clamp01(summaryRatingWeight*float64(in.feedback.Rating)/10 +
		summarySentimentWeight*(in.sentiment+1)/2)

	var quality string
	switch {
	case combined >= exceptionalBand:
		quality = "an exceptional"
	case combined >= strongBand:
		quality = "a strong"
	case combined >= solidBand:
		quality = "a solid"
	case combined >= mixedBand:
		quality = "a mixed"
	default:
		quality = "a concerning"
	}

	name := in.candidate.Name
	if name == "" {
		name = "The candidate"
	}
	role := in.candidate.JobTitle
	if role == "" {
		role = "the role"
	}
	return fmt.Sprintf("%s delivered %s interview performance for %s, rated %d/10.",
		name, quality, role, in.feedback.Rating)
}

func strengthsClause(in insightInputs) string {
	var strengths []string
	if in.scores[schema.DimensionTechnical] > summaryTechFloor {
		strengths = append(strengths, "technical depth")
	}
	switch {
	case in.scores[schema.DimensionCommunication] > summaryCommStrongFloor:
		strengths = append(strengths, "excellent communication")
	case in.scores[schema.DimensionCommunication] > summaryCommGoodFloor:
		strengths = append(strengths, "clear communication")
	}
	if in.scores[schema.DimensionLeadership] > summaryLeadFloor {
		strengths = append(strengths, "leadership potential")
	}
	if in.scores[schema.DimensionCulture] > summaryCultureFloor {
		strengths = append(strengths, "strong team fit")
	}
	if in.scores[schema.DimensionGrowth] > summaryGrowthFloor {
		strengths = append(strengths, "growth mindset")
	}

	if len(strengths) == 0 {
		if in.feedback.Rating >= 7 {
			return "Overall performance was well regarded by the interviewer."
		}
		return ""
	}
	return fmt.Sprintf("Key strengths include %s.", schema.JoinNatural(strengths))
}

func concernsClause(in insightInputs) string {
	var concerns []string
	if in.scores[schema.DimensionTechnical] < summaryTechCeiling && in.feedback.Rating <= 6 {
		concerns = append(concerns, "technical gaps for the role")
	}
	if in.scores[schema.DimensionCommunication] < summaryCommCeiling {
		concerns = append(concerns, "communication difficulties")
	}
	if strings.Contains(in.text, "experience") && strings.Contains(in.text, "lack") {
		concerns = append(concerns, "limited relevant experience")
	}
	if in.scores[schema.DimensionCulture] < summaryCultureCeiling {
		concerns = append(concerns, "uncertain team fit")
	}
	if len(in.feedback.Concerns) > longConcernsLength {
		concerns = append(concerns, "extensive interviewer reservations")
	}

	if len(concerns) == 0 {
		if in.feedback.Rating >= 7 {
			return "No significant concerns identified."
		}
		return ""
	}
	return fmt.Sprintf("Areas of concern: %s.", schema.JoinNatural(concerns))
}

func closingClause(in insightInputs) string {
	strength := overallStrength(in.feedback.Rating, in.sentiment, in.scores)
	switch {
	case strength >= strongAdvanceThreshold:
		return "Recommend fast-tracking to the next stage."
	case strength >= advanceThreshold:
		return "Recommend advancing to the next stage."
	case strength >= conditionalThreshold:
		return "Recommend a targeted follow-up before deciding."
	default:
		return "Recommend not advancing at this time."
	}
}
