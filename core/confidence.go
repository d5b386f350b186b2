package core

import (
	"math"

	"github.com/talentlens/talentlens/schema"
)

// Confidence component weights and bounds. The five components measure how
// much the analysis can be trusted, not how good the candidate is.
const (
	contentQualityWeight  = 0.30
	dataConsistencyWeight = 0.25
	coverageWeight        = 0.20
	analysisDepthWeight   = 0.15
	signalStrengthWeight  = 0.10

	minConfidence = 0.15
	maxConfidence = 0.98
)

// scoreConfidence blends the five components into the final confidence.
func scoreConfidence(in insightInputs) float64 {
	conf := contentQualityWeight*contentQuality(in) +
		dataConsistencyWeight*dataConsistency(in.scores) +
		coverageWeight*coverage(in.scores) +
		analysisDepthWeight*analysisDepth(in) +
		signalStrengthWeight*signalStrength(in)
	return clampRange(conf, minConfidence, maxConfidence)
}

// contentQuality rewards rich input: detected skills, a clear tone and many
// populated feedback fields.
func contentQuality(in insightInputs) float64 {
	quality := 0.5
	switch {
	case len(in.skills) >= 3:
		quality += 0.2
	case len(in.skills) >= 1:
		quality += 0.1
	}
	if math.Abs(in.sentiment) > 0.3 {
		quality += 0.15
	}
	if populatedFields(in.feedback) >= 6 {
		quality += 0.15
	}
	return clamp01(quality)
}

// populatedFields counts the non-empty parts of the feedback. Each question
// response counts on its own.
func populatedFields(f *schema.FeedbackInput) int {
	n := 0
	if f.Rating > 0 {
		n++
	}
	if f.Notes != "" {
		n++
	}
	if f.Strengths != "" {
		n++
	}
	if f.Concerns != "" {
		n++
	}
	if f.Recommendation != "" {
		n++
	}
	for _, qr := range f.QuestionResponses {
		if qr.Response != "" {
			n++
		}
	}
	return n
}

// dataConsistency is high when the capability scores agree with each other,
// measured as one minus the variance across all scores.
func dataConsistency(scores schema.CapabilityScores) float64 {
	if len(scores) < 3 {
		return 0.3
	}
	var sum float64
	for _, s := range scores {
		sum += s
	}
	mean := sum / float64(len(scores))

	var variance float64
	for _, s := range scores {
		variance += (s - mean) * (s - mean)
	}
	variance /= float64(len(scores))

	return math.Max(0.2, 1-variance)
}

// coverage is the fraction of scored dimensions that received a score.
func coverage(scores schema.CapabilityScores) float64 {
	present := 0
	for _, dim := range schema.ScoredDimensions {
		if _, ok := scores[dim]; ok {
			present++
		}
	}
	return float64(present) / float64(len(schema.ScoredDimensions))
}

// analysisDepth rewards confident skill detections and real spread between
// the dimension scores, both signs the input supported differentiation.
func analysisDepth(in insightInputs) float64 {
	depth := 0.4
	if len(in.skills) > 0 {
		var sum float64
		for _, s := range in.skills {
			sum += s.Confidence
		}
		depth += 0.3 * (sum / float64(len(in.skills)))
	}
	if scoreRange(in.scores) > 0.3 {
		depth += 0.3
	}
	return clamp01(depth)
}

func scoreRange(scores schema.CapabilityScores) float64 {
	if len(scores) == 0 {
		return 0
	}
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, s := range scores {
		lo = math.Min(lo, s)
		hi = math.Max(hi, s)
	}
	return hi - lo
}

// signalStrength rewards a decisive tone and multiple skill detections.
func signalStrength(in insightInputs) float64 {
	strength := 0.5 + 0.3*math.Abs(in.sentiment)
	if len(in.skills) >= 2 {
		strength += 0.2
	}
	return clamp01(strength)
}
