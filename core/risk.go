package core

import (
	"strings"

	"github.com/talentlens/talentlens/schema"
)

// maxRiskFactors caps the risk list.
const maxRiskFactors = 6

// Risk rule confidences, same convention as the insight rules.
const (
	confIntegrityRisk   = 0.95
	confBehaviorRisk    = 0.90
	confLowRatedConcern = 0.85
	confPoorCommRisk    = 0.75
	confSeniorTechRisk  = 0.70
	confCultureRisk     = 0.70
	confQualFitRisk     = 0.65
	confHighRatedDoubt  = 0.60
	confNoTeamSignal    = 0.60
	confJobHopping      = 0.65
	confLearningCurve   = 0.60
	confUnfamiliarArea  = 0.60
)

var (
	integrityPhrases = []string{"dishonest", "lied", "fabricated", "misrepresented", "deceptive"}
	behaviorPhrases  = []string{"rude", "unprofessional", "hostile", "inappropriate", "aggressive"}
	poorCommPhrases  = []string{"could not explain", "couldn't explain", "incoherent", "rambling", "hard to follow"}
	qualFitPhrases   = []string{"overqualified", "underqualified"}
	jobHopPhrases    = []string{"job hopping", "short stints", "many jobs", "frequent changes"}
	learningPhrases  = []string{"learning curve", "ramp up", "ramp-up"}
	unfamiliarWords  = []string{"new to", "unfamiliar with"}
)

// detectRiskFactors scans the feedback for risk signals in strict tier order:
// critical, high, medium, low. Appending in tier order means truncation at
// maxRiskFactors always drops the least severe factors first.
func detectRiskFactors(in insightInputs) []schema.RiskFactor {
	var risks []schema.RiskFactor
	risks = append(risks, criticalRisks(in)...)
	risks = append(risks, highRisks(in)...)
	risks = append(risks, mediumRisks(in)...)
	risks = append(risks, lowRisks(in)...)
	if len(risks) > maxRiskFactors {
		risks = risks[:maxRiskFactors]
	}
	return risks
}

func criticalRisks(in insightInputs) []schema.RiskFactor {
	var risks []schema.RiskFactor

	if containsAny(in.text, integrityPhrases) {
		risks = append(risks, schema.RiskFactor{
			Level:          schema.RiskCritical,
			Category:       "integrity",
			Description:    "Feedback contains language questioning the candidate's honesty",
			Impact:         "Hiring decision should halt until the account is verified",
			Confidence:     confIntegrityRisk,
			ActionRequired: "Escalate to the hiring manager and verify the account before any next step",
		})
	}

	if containsAny(in.text, behaviorPhrases) {
		risks = append(risks, schema.RiskFactor{
			Level:          schema.RiskCritical,
			Category:       "behavior",
			Description:    "Interviewer reported unprofessional or hostile behavior",
			Impact:         "Conduct of this kind is disqualifying regardless of skills",
			Confidence:     confBehaviorRisk,
			ActionRequired: "Escalate to the hiring manager; conduct concerns are disqualifying",
		})
	}

	if in.feedback.Rating <= 3 && len(in.feedback.Concerns) > 100 {
		risks = append(risks, schema.RiskFactor{
			Level:          schema.RiskCritical,
			Category:       "performance",
			Description:    "Very low rating with detailed written concerns",
			Impact:         "Multiple substantive problems documented in a single session",
			Confidence:     confLowRatedConcern,
			ActionRequired: "Review the written concerns with the interviewer before closing out",
		})
	}
	return risks
}

func highRisks(in insightInputs) []schema.RiskFactor {
	var risks []schema.RiskFactor

	if containsAny(in.text, poorCommPhrases) {
		risks = append(risks, schema.RiskFactor{
			Level:          schema.RiskHigh,
			Category:       "communication",
			Description:    "Interviewer struggled to follow the candidate's explanations",
			Impact:         "Likely friction in design discussions and cross-team work",
			Confidence:     confPoorCommRisk,
			ActionRequired: "Add a structured communication exercise to the next round",
		})
	}

	if in.jobCtx.Seniority == schema.SenioritySenior && in.feedback.Rating <= 5 && strings.Contains(in.text, "technical") {
		risks = append(risks, schema.RiskFactor{
			Level:          schema.RiskHigh,
			Category:       "technical",
			Description:    "Technical performance below expectations for a senior title",
			Impact:         "Seniority mismatch would strain the team the role is meant to anchor",
			Confidence:     confSeniorTechRisk,
			ActionRequired: "Schedule a senior-level technical assessment",
		})
	}

	if strings.Contains(in.text, "culture") && (strings.Contains(in.text, "concern") || strings.Contains(in.text, "fit")) {
		risks = append(risks, schema.RiskFactor{
			Level:          schema.RiskHigh,
			Category:       "cultural_fit",
			Description:    "Interviewer raised cultural-fit concerns explicitly",
			Impact:         "Fit problems surface late and are costly to unwind",
			Confidence:     confCultureRisk,
			ActionRequired: "Arrange a team-fit conversation with the target team",
		})
	}

	if containsAny(in.text, qualFitPhrases) {
		risks = append(risks, schema.RiskFactor{
			Level:          schema.RiskHigh,
			Category:       "role_fit",
			Description:    "Candidate may be over- or under-qualified for the role",
			Impact:         "Retention risk in either direction",
			Confidence:     confQualFitRisk,
			ActionRequired: "Clarify role expectations with the candidate",
		})
	}
	return risks
}

func mediumRisks(in insightInputs) []schema.RiskFactor {
	var risks []schema.RiskFactor

	if in.feedback.Rating >= 7 && strings.Contains(in.text, "concern") {
		risks = append(risks, schema.RiskFactor{
			Level:          schema.RiskMedium,
			Category:       "mixed_signal",
			Description:    "High rating paired with written concerns",
			Impact:         "The concerns may be understated by the numeric score",
			Confidence:     confHighRatedDoubt,
			ActionRequired: "Ask the interviewer to elaborate on the concerns",
		})
	}

	if countAny(in.text, teamWords) == 0 && in.feedback.Rating >= 6 {
		risks = append(risks, schema.RiskFactor{
			Level:          schema.RiskMedium,
			Category:       "collaboration",
			Description:    "No collaboration signals anywhere in the feedback",
			Impact:         "Teamwork remains unassessed for an otherwise viable candidate",
			Confidence:     confNoTeamSignal,
			ActionRequired: "Cover collaboration explicitly in the next round",
		})
	}

	if containsAny(in.text, jobHopPhrases) {
		risks = append(risks, schema.RiskFactor{
			Level:          schema.RiskMedium,
			Category:       "stability",
			Description:    "Feedback references frequent job changes",
			Impact:         "Possible retention risk worth probing in later rounds",
			Confidence:     confJobHopping,
			ActionRequired: "Probe tenure history in the next conversation",
		})
	}
	return risks
}

func lowRisks(in insightInputs) []schema.RiskFactor {
	var risks []schema.RiskFactor

	if containsAny(in.text, learningPhrases) {
		risks = append(risks, schema.RiskFactor{
			Level:          schema.RiskLow,
			Category:       "onboarding",
			Description:    "Interviewer anticipates a ramp-up period",
			Impact:         "Slower initial productivity, manageable with onboarding support",
			Confidence:     confLearningCurve,
			ActionRequired: "Plan onboarding support if the candidate advances",
		})
	}

	if containsAny(in.text, unfamiliarWords) {
		risks = append(risks, schema.RiskFactor{
			Level:          schema.RiskLow,
			Category:       "experience",
			Description:    "Candidate is new to part of the role's stack or domain",
			Impact:         "Gap is trainable if the rest of the profile holds up",
			Confidence:     confUnfamiliarArea,
			ActionRequired: "Confirm the gap is limited to trainable areas",
		})
	}
	return risks
}
