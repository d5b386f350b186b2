// Package core implements the talentlens feedback analysis pipeline.
//
// Every step is a pure function of its input: text assembly, sentiment
// scoring, skill detection, role classification, per-dimension scoring,
// insight generation, recommendation synthesis, risk detection, confidence
// scoring and summary synthesis. The analyzer never fails its caller; absent
// fields degrade to neutral defaults and every call returns a fully formed
// result.
package core

import (
	"strings"

	"github.com/talentlens/talentlens/schema"
)

// clamp01 bounds a value to [0,1].
func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// clampRange bounds a value to [lo,hi].
func clampRange(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// assembleText concatenates every free-text field of the feedback into one
// lowercased string used by all lexical matchers. Question responses
// contribute both question and answer text.
func assembleText(fb *schema.FeedbackInput) string {
	var sb strings.Builder
	sb.WriteString(fb.Notes)
	sb.WriteString(" ")
	sb.WriteString(fb.Strengths)
	sb.WriteString(" ")
	sb.WriteString(fb.Concerns)
	for _, qr := range fb.QuestionResponses {
		sb.WriteString(" ")
		sb.WriteString(qr.Question)
		sb.WriteString(" ")
		sb.WriteString(qr.Response)
	}
	return strings.ToLower(strings.TrimSpace(sb.String()))
}

// countOccurrences counts non-overlapping occurrences of needle in text.
// Matching is raw substring matching: fast, deterministic and dependency-free,
// at the cost of occasional false positives inside unrelated tokens (e.g.
// "js" inside another word). That tradeoff is deliberate.
func countOccurrences(text, needle string) int {
	if needle == "" || text == "" {
		return 0
	}
	return strings.Count(text, needle)
}

// countAny sums occurrences of every needle in text.
func countAny(text string, needles []string) int {
	var total int
	for _, n := range needles {
		total += countOccurrences(text, n)
	}
	return total
}

// containsAny reports whether any needle occurs in text.
func containsAny(text string, needles []string) bool {
	for _, n := range needles {
		if strings.Contains(text, n) {
			return true
		}
	}
	return false
}
