package core

import (
	"fmt"
	"sort"
	"strings"

	"github.com/talentlens/talentlens/schema"
)

// maxInsights caps the insight list.
const maxInsights = 8

// Insight rule confidences. These are heuristic priors assigned per rule by
// the rule author, not statistically calibrated values. They express how
// reliable each rule has proven in practice, and they are deliberately
// literal so the policy is auditable in one place.
const (
	confStrongSkills    = 0.85
	confMissingSkills   = 0.70
	confStandoutSkill   = 0.90
	confExceptionalPerf = 0.90
	confInconsistent    = 0.65
	confCommStrength    = 0.75
	confCompanyContext  = 0.70
	confLeadershipGap   = 0.60
	confStrongCulture   = 0.80
	confCultureConcern  = 0.75
	confRedFlag         = 0.90
	confExperienceGap   = 0.70
	confLowDetail       = 0.60
	confHighGrowth      = 0.70
	confDevTrack        = 0.75
)

// insightInputs carries everything the insight passes need.
type insightInputs struct {
	feedback  *schema.FeedbackInput
	candidate schema.CandidateProfile
	text      string
	sentiment float64
	skills    []schema.SkillDetection
	jobCtx    schema.JobContext
	scores    schema.CapabilityScores
}

// generateInsights runs the six generation passes in fixed order, then sorts
// by importance (critical > high > medium > low) keeping generation order
// within a level, and caps the list at maxInsights.
func generateInsights(in insightInputs) []schema.Insight {
	var insights []schema.Insight
	insights = append(insights, skillInsights(in)...)
	insights = append(insights, performanceInsights(in)...)
	insights = append(insights, experienceInsights(in)...)
	insights = append(insights, culturalInsights(in)...)
	insights = append(insights, riskInsights(in)...)
	insights = append(insights, growthInsights(in)...)

	sort.SliceStable(insights, func(i, j int) bool {
		return insights[i].Importance.Rank() < insights[j].Importance.Rank()
	})
	if len(insights) > maxInsights {
		insights = insights[:maxInsights]
	}
	return insights
}

// skillInsights covers strong skills, missing expected skills and standout
// individual skills.
func skillInsights(in insightInputs) []schema.Insight {
	var out []schema.Insight

	relevant := relevantSkills(in.skills, in.jobCtx.Domain)
	if len(relevant) >= 2 && in.feedback.Rating >= 7 {
		names := make([]string, 0, len(relevant))
		for _, s := range relevant {
			names = append(names, s.Skill)
		}
		out = append(out, schema.Insight{
			Category:   schema.CategoryTechnical,
			Insight:    fmt.Sprintf("Demonstrated strong command of %s, well matched to the role", schema.JoinNatural(names)),
			Importance: schema.ImportanceHigh,
			Confidence: confStrongSkills,
			Actionable: false,
			Data:       map[string]any{"skills": names},
		})
	}

	if missing := missingExpectedSkills(in.skills, in.jobCtx.Domain); len(missing) > 0 && in.feedback.Rating < 8 {
		out = append(out, schema.Insight{
			Category:   schema.CategoryTechnical,
			Insight:    fmt.Sprintf("Expected skills not covered in this session: %s", strings.Join(missing, ", ")),
			Importance: schema.ImportanceMedium,
			Confidence: confMissingSkills,
			Actionable: true,
			Data:       map[string]any{"missing": missing},
		})
	}

	if containsAny(in.text, []string{"expert", "exceptional"}) {
		for _, s := range in.skills {
			if s.Confidence > 0.8 {
				out = append(out, schema.Insight{
					Category:   schema.CategoryTechnical,
					Insight:    fmt.Sprintf("Standout depth in %s noted by the interviewer", s.Skill),
					Importance: schema.ImportanceHigh,
					Confidence: confStandoutSkill,
					Actionable: false,
					Data:       map[string]any{"skill": s.Skill, "mentions": s.Mentions},
				})
				break
			}
		}
	}
	return out
}

// performanceInsights covers exceptional sessions, rating/tone disagreement
// and communication strength.
func performanceInsights(in insightInputs) []schema.Insight {
	var out []schema.Insight

	if in.feedback.Rating >= 9 && in.sentiment > 0.5 {
		out = append(out, schema.Insight{
			Category:   schema.CategoryPerformance,
			Insight:    "Exceptional interview performance: top rating backed by strongly positive written feedback",
			Importance: schema.ImportanceCritical,
			Confidence: confExceptionalPerf,
			Actionable: false,
		})
	}

	// The written tone, projected onto the 1-10 scale, disagrees with the
	// numeric rating by more than two points.
	impliedRating := in.sentiment*5 + 5
	if diff := float64(in.feedback.Rating) - impliedRating; diff > 2 || diff < -2 {
		out = append(out, schema.Insight{
			Category:   schema.CategoryPerformance,
			Insight:    "Numeric rating and written tone disagree; worth clarifying with the interviewer",
			Importance: schema.ImportanceMedium,
			Confidence: confInconsistent,
			Actionable: true,
			Data:       map[string]any{"rating": in.feedback.Rating, "implied_rating": impliedRating},
		})
	}

	if in.scores[schema.DimensionCommunication] > 0.8 {
		out = append(out, schema.Insight{
			Category:   schema.CategorySoftSkills,
			Insight:    "Communication repeatedly stood out as a strength",
			Importance: schema.ImportanceMedium,
			Confidence: confCommStrength,
			Actionable: false,
		})
	}
	return out
}

// experienceInsights covers company-context mentions and leadership gaps in
// senior-titled candidates.
func experienceInsights(in insightInputs) []schema.Insight {
	var out []schema.Insight

	if company := strings.ToLower(strings.TrimSpace(in.candidate.Company)); company != "" && strings.Contains(in.text, company) {
		out = append(out, schema.Insight{
			Category:   schema.CategoryExperience,
			Insight:    fmt.Sprintf("Interviewer referenced the candidate's experience at %s", in.candidate.Company),
			Importance: schema.ImportanceMedium,
			Confidence: confCompanyContext,
			Actionable: false,
			Data:       map[string]any{"company": in.candidate.Company},
		})
	}

	if in.jobCtx.Seniority == schema.SenioritySenior && in.feedback.Rating >= 7 && countAny(in.text, leadershipWords) == 0 {
		out = append(out, schema.Insight{
			Category:   schema.CategoryExperience,
			Insight:    "Senior-level title but no leadership signals in the feedback; probe in a later round",
			Importance: schema.ImportanceMedium,
			Confidence: confLeadershipGap,
			Actionable: true,
		})
	}
	return out
}

// culturalInsights covers strong fit and explicit fit concerns.
func culturalInsights(in insightInputs) []schema.Insight {
	var out []schema.Insight

	if in.scores[schema.DimensionCulture] > 0.8 {
		out = append(out, schema.Insight{
			Category:   schema.CategoryCulturalFit,
			Insight:    "Strong cultural fit signals throughout the session",
			Importance: schema.ImportanceHigh,
			Confidence: confStrongCulture,
			Actionable: false,
		})
	}

	if in.scores[schema.DimensionCulture] < 0.5 && strings.Contains(in.text, "concern") {
		out = append(out, schema.Insight{
			Category:   schema.CategoryCulturalFit,
			Insight:    "Cultural-fit concerns raised explicitly by the interviewer",
			Importance: schema.ImportanceHigh,
			Confidence: confCultureConcern,
			Actionable: true,
		})
	}
	return out
}

// riskInsights reuses the risk phrase tables at lower granularity: a single
// red-flag insight, an experience-gap insight and a low-detail insight.
func riskInsights(in insightInputs) []schema.Insight {
	var out []schema.Insight

	if containsAny(in.text, integrityPhrases) || containsAny(in.text, behaviorPhrases) {
		out = append(out, schema.Insight{
			Category:   schema.CategoryRisk,
			Insight:    "Feedback contains red-flag language that requires review before any next step",
			Importance: schema.ImportanceCritical,
			Confidence: confRedFlag,
			Actionable: true,
		})
	}

	if strings.Contains(in.text, "lack") && strings.Contains(in.text, "experience") {
		out = append(out, schema.Insight{
			Category:   schema.CategoryRisk,
			Insight:    "Interviewer flagged a possible experience gap for this role",
			Importance: schema.ImportanceMedium,
			Confidence: confExperienceGap,
			Actionable: true,
		})
	}

	if in.feedback.Rating <= 4 && len(in.text) < 80 {
		out = append(out, schema.Insight{
			Category:   schema.CategoryRisk,
			Insight:    "Low rating with little written detail; ask the interviewer to elaborate",
			Importance: schema.ImportanceMedium,
			Confidence: confLowDetail,
			Actionable: true,
		})
	}
	return out
}

// growthInsights covers high growth potential and the combined
// leadership-plus-growth development track.
func growthInsights(in insightInputs) []schema.Insight {
	var out []schema.Insight

	if in.scores[schema.DimensionGrowth] > 0.7 {
		out = append(out, schema.Insight{
			Category:   schema.CategoryGrowth,
			Insight:    "High growth potential; candidate shows clear learning appetite",
			Importance: schema.ImportanceMedium,
			Confidence: confHighGrowth,
			Actionable: false,
		})
	}

	if in.scores[schema.DimensionLeadership] > 0.7 && in.scores[schema.DimensionGrowth] > 0.7 {
		out = append(out, schema.Insight{
			Category:   schema.CategoryGrowth,
			Insight:    "Leadership and growth signals together suggest a development-track hire",
			Importance: schema.ImportanceHigh,
			Confidence: confDevTrack,
			Actionable: true,
		})
	}
	return out
}
