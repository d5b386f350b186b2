package core

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/talentlens/talentlens/schema"
)

// TestScoreConfidenceBounds checks the clamp on degenerate and rich input.
func TestScoreConfidenceBounds(t *testing.T) {
	t.Run("degenerate input stays above floor", func(t *testing.T) {
		conf := scoreConfidence(insightInputs{
			feedback: &schema.FeedbackInput{},
			scores:   schema.CapabilityScores{},
		})
		assert.GreaterOrEqual(t, conf, 0.15)
		assert.LessOrEqual(t, conf, 0.98)
	})

	t.Run("rich input stays below ceiling", func(t *testing.T) {
		text := "excellent python and django and flask, great sql, solid docker and kubernetes work"
		conf := scoreConfidence(insightInputs{
			feedback: &schema.FeedbackInput{
				Rating:         9,
				Notes:          text,
				Strengths:      "strong across the board",
				Concerns:       "none of note",
				Recommendation: schema.VoteAdvance,
				QuestionResponses: []schema.QuestionResponse{
					{Question: "design a cache", Response: "walked through eviction tradeoffs"},
					{Question: "debug a leak", Response: "systematic narrowing"},
				},
			},
			text:      text,
			sentiment: 0.9,
			skills:    detectSkills(text),
			scores: schema.CapabilityScores{
				schema.DimensionTechnical:     1.0,
				schema.DimensionCommunication: 0.9,
				schema.DimensionProblem:       0.8,
				schema.DimensionCulture:       0.6,
				schema.DimensionLeadership:    0.5,
				schema.DimensionGrowth:        0.6,
				schema.DimensionOverall:       0.85,
			},
		})
		assert.GreaterOrEqual(t, conf, 0.15)
		assert.LessOrEqual(t, conf, 0.98)
	})
}

// TestScoreConfidenceOrdering verifies richer input earns strictly more
// confidence than empty input.
func TestScoreConfidenceOrdering(t *testing.T) {
	empty := scoreConfidence(insightInputs{
		feedback: &schema.FeedbackInput{},
		scores:   schema.CapabilityScores{},
	})

	text := "excellent python and sql work with clear explanations"
	rich := scoreConfidence(insightInputs{
		feedback: &schema.FeedbackInput{
			Rating:    8,
			Notes:     text,
			Strengths: "depth",
			Concerns:  "none",
		},
		text:      text,
		sentiment: 0.8,
		skills:    detectSkills(text),
		scores: schema.CapabilityScores{
			schema.DimensionTechnical:     0.9,
			schema.DimensionCommunication: 0.9,
			schema.DimensionProblem:       0.8,
			schema.DimensionCulture:       0.8,
			schema.DimensionLeadership:    0.6,
			schema.DimensionGrowth:        0.8,
		},
	})

	assert.Greater(t, rich, empty)
}

// TestPopulatedFields counts each non-empty part of the feedback.
func TestPopulatedFields(t *testing.T) {
	assert.Equal(t, 0, populatedFields(&schema.FeedbackInput{}))
	assert.Equal(t, 2, populatedFields(&schema.FeedbackInput{Rating: 5, Notes: "x"}))
	assert.Equal(t, 6, populatedFields(&schema.FeedbackInput{
		Rating:         5,
		Notes:          "x",
		Strengths:      "y",
		Concerns:       "z",
		Recommendation: schema.VoteAdvance,
		QuestionResponses: []schema.QuestionResponse{
			{Question: "q", Response: "a"},
			{Question: "q2", Response: ""},
		},
	}))
}

// TestDataConsistency tests the variance-based component.
func TestDataConsistency(t *testing.T) {
	assert.InDelta(t, 0.3, dataConsistency(schema.CapabilityScores{}), 0.0001)
	assert.InDelta(t, 1.0, dataConsistency(flatScores(0.7)), 0.0001)

	spread := schema.CapabilityScores{
		schema.DimensionTechnical:     1.0,
		schema.DimensionCommunication: 0.0,
		schema.DimensionProblem:       1.0,
		schema.DimensionCulture:       0.0,
	}
	assert.Less(t, dataConsistency(spread), 1.0)
	assert.GreaterOrEqual(t, dataConsistency(spread), 0.2)
}

// TestCoverage tests the scored-dimension fraction.
func TestCoverage(t *testing.T) {
	assert.Zero(t, coverage(schema.CapabilityScores{}))
	assert.InDelta(t, 1.0, coverage(flatScores(0.5)), 0.0001)
	assert.InDelta(t, 0.5, coverage(schema.CapabilityScores{
		schema.DimensionTechnical:     0.5,
		schema.DimensionCommunication: 0.5,
		schema.DimensionProblem:       0.5,
	}), 0.0001)
}

func BenchmarkScoreConfidence(b *testing.B) {
	text := strings.Repeat("excellent python and sql work ", 5)
	in := insightInputs{
		feedback:  &schema.FeedbackInput{Rating: 8, Notes: text},
		text:      text,
		sentiment: 0.8,
		skills:    detectSkills(text),
		scores:    flatScores(0.7),
	}
	for b.Loop() {
		scoreConfidence(in)
	}
}
