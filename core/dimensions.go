package core

import (
	"strings"

	"github.com/talentlens/talentlens/schema"
)

// Keyword tables feeding dimension bonuses.
var (
	communicationWords  = []string{"articulate", "clear", "explain", "communicat", "present"}
	problemSolvingWords = []string{
		"solved", "solution", "approach", "strategy", "debug",
		"troubleshoot", "analyze", "optimize", "improve", "fix", "resolve",
	}
	teamWords       = []string{"team", "collaborate", "together", "support", "help", "share"}
	leadershipWords = []string{"lead", "manage", "mentor", "guide", "direct", "oversee"}
	growthWords     = []string{"learn", "grow", "develop", "improve", "adapt", "curious", "eager"}

	leadershipTitleBonusWords = []string{"lead", "senior", "manager"}
)

// dimensionInputs carries everything the per-dimension scorers need.
type dimensionInputs struct {
	text      string // assembled lowercase text
	rating    int    // normalized 1-10
	sentiment float64
	skills    []schema.SkillDetection
	jobCtx    schema.JobContext
	jobTitle  string
}

// scoreDimensions computes every capability score. Each scorer starts from
// the rating/10 baseline and adds independently capped bonuses; inner caps
// apply before the final clamp to [0,1], in that order, so results are
// reproducible. On empty text no bonus term fires and every score degrades
// to the baseline.
//
// The returned breakdown records each bonus term per dimension for explain
// output.
func scoreDimensions(in dimensionInputs, weights map[schema.Dimension]float64) (schema.CapabilityScores, map[schema.Dimension]map[string]float64) {
	base := float64(in.rating) / 10.0
	scores := make(schema.CapabilityScores, len(schema.ScoredDimensions)+1)
	breakdown := make(map[schema.Dimension]map[string]float64, len(schema.ScoredDimensions)+1)

	record := func(d schema.Dimension, parts map[string]float64) {
		total := base
		for _, v := range parts {
			total += v
		}
		scores[d] = clamp01(total)
		parts["base"] = base
		breakdown[d] = parts
	}

	record(schema.DimensionTechnical, technicalBonuses(in))
	record(schema.DimensionCommunication, communicationBonuses(in))
	record(schema.DimensionProblem, problemSolvingBonuses(in))
	record(schema.DimensionCulture, culturalBonuses(in))
	record(schema.DimensionLeadership, leadershipBonuses(in))
	record(schema.DimensionGrowth, growthBonuses(in))

	overall, overallParts := overallImpression(scores, base, in.sentiment, weights)
	scores[schema.DimensionOverall] = overall
	breakdown[schema.DimensionOverall] = overallParts

	return scores, breakdown
}

// technicalBonuses rewards detected relevant skills and seniority-appropriate
// breadth.
func technicalBonuses(in dimensionInputs) map[string]float64 {
	const (
		skillStep     = 0.1 // per relevant skill
		skillCap      = 0.4
		seniorBonus   = 0.2 // senior candidate showing broad relevant skills
		juniorBonus   = 0.1 // junior candidate showing any relevant skill
		seniorBreadth = 3
	)

	relevant := relevantSkills(in.skills, in.jobCtx.Domain)
	parts := map[string]float64{}

	if n := len(relevant); n > 0 {
		bonus := skillStep * float64(n)
		if bonus > skillCap {
			bonus = skillCap
		}
		parts["skills"] = bonus
	}

	switch in.jobCtx.Seniority {
	case schema.SenioritySenior:
		if len(relevant) >= seniorBreadth {
			parts["seniority"] = seniorBonus
		}
	case schema.SeniorityJunior:
		if len(relevant) >= 1 {
			parts["seniority"] = juniorBonus
		}
	}
	return parts
}

// communicationBonuses rewards readable sentence structure, positive tone
// and explicit communication vocabulary.
func communicationBonuses(in dimensionInputs) map[string]float64 {
	const (
		structureBonus = 0.1
		toneBonus      = 0.1
		tonePenalty    = -0.1
		strongNegative = -0.5 // sentiment below this reads as a communication problem
		keywordStep    = 0.1
		keywordCap     = 0.2
		minAvgWords    = 10.0
		maxAvgWords    = 25.0
	)

	parts := map[string]float64{}

	if avg := averageSentenceWords(in.text); avg > minAvgWords && avg < maxAvgWords {
		parts["structure"] = structureBonus
	}

	if in.sentiment > 0 {
		parts["tone"] = toneBonus
	} else if in.sentiment < strongNegative {
		parts["tone"] = tonePenalty
	}

	if n := countAny(in.text, communicationWords); n > 0 {
		bonus := keywordStep * float64(n)
		if bonus > keywordCap {
			bonus = keywordCap
		}
		parts["keywords"] = bonus
	}
	return parts
}

// problemSolvingBonuses counts problem-solving vocabulary.
func problemSolvingBonuses(in dimensionInputs) map[string]float64 {
	const (
		step     = 0.05
		maxBonus = 0.3
	)
	parts := map[string]float64{}
	if n := countAny(in.text, problemSolvingWords); n > 0 {
		bonus := step * float64(n)
		if bonus > maxBonus {
			bonus = maxBonus
		}
		parts["patterns"] = bonus
	}
	return parts
}

// culturalBonuses counts collaboration vocabulary and blends in sentiment.
func culturalBonuses(in dimensionInputs) map[string]float64 {
	const (
		step          = 0.05
		maxBonus      = 0.2
		sentimentCoef = 0.1
	)
	parts := map[string]float64{}
	if n := countAny(in.text, teamWords); n > 0 {
		bonus := step * float64(n)
		if bonus > maxBonus {
			bonus = maxBonus
		}
		parts["team"] = bonus
	}
	if in.sentiment != 0 {
		parts["sentiment"] = sentimentCoef * in.sentiment
	}
	return parts
}

// leadershipBonuses counts leadership vocabulary plus a title-based bonus.
func leadershipBonuses(in dimensionInputs) map[string]float64 {
	const (
		step       = 0.1
		maxBonus   = 0.3
		titleBonus = 0.1
	)
	parts := map[string]float64{}
	if n := countAny(in.text, leadershipWords); n > 0 {
		bonus := step * float64(n)
		if bonus > maxBonus {
			bonus = maxBonus
		}
		parts["vocabulary"] = bonus
	}
	if containsAny(strings.ToLower(in.jobTitle), leadershipTitleBonusWords) {
		parts["title"] = titleBonus
	}
	return parts
}

// growthBonuses counts growth-mindset vocabulary.
func growthBonuses(in dimensionInputs) map[string]float64 {
	const (
		step     = 0.05
		maxBonus = 0.2
	)
	parts := map[string]float64{}
	if n := countAny(in.text, growthWords); n > 0 {
		bonus := step * float64(n)
		if bonus > maxBonus {
			bonus = maxBonus
		}
		parts["vocabulary"] = bonus
	}
	return parts
}

// overallImpression blends the six scored dimensions with rating and
// sentiment: 0.7 * weighted-dimensions + 0.3 * rating/10 + 0.1 * sentiment,
// clamped to [0,1].
func overallImpression(scores schema.CapabilityScores, base, sentiment float64, weights map[schema.Dimension]float64) (float64, map[string]float64) {
	const (
		dimensionShare = 0.7
		ratingShare    = 0.3
		sentimentCoef  = 0.1
	)

	if weights == nil {
		weights = schema.GetDefaultDimensionWeights()
	}

	var weighted float64
	for _, d := range schema.ScoredDimensions {
		weighted += weights[d] * scores[d]
	}

	parts := map[string]float64{
		"dimensions": dimensionShare * weighted,
		"rating":     ratingShare * base,
		"sentiment":  sentimentCoef * sentiment,
	}
	return clamp01(parts["dimensions"] + parts["rating"] + parts["sentiment"]), parts
}

// averageSentenceWords computes average words per sentence, splitting on
// common terminators. Returns 0 for empty text.
func averageSentenceWords(text string) float64 {
	if text == "" {
		return 0
	}
	sentences := strings.FieldsFunc(text, func(r rune) bool {
		return r == '.' || r == '!' || r == '?'
	})
	var total, count int
	for _, s := range sentences {
		words := len(strings.Fields(s))
		if words == 0 {
			continue
		}
		total += words
		count++
	}
	if count == 0 {
		return 0
	}
	return float64(total) / float64(count)
}
