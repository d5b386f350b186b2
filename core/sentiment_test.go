package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestScoreSentiment tests the lexicon-based sentiment score.
func TestScoreSentiment(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected float64
		delta    float64
	}{
		{
			name:     "empty text",
			text:     "",
			expected: 0.0,
			delta:    0.001,
		},
		{
			name:     "no lexicon hits",
			text:     "the candidate walked through the assignment",
			expected: 0.0,
			delta:    0.001,
		},
		{
			name:     "single strong positive",
			text:     "excellent session",
			expected: 1.0, // 3 / max(1,3)
			delta:    0.001,
		},
		{
			name:     "two strong positives clamp to one",
			text:     "excellent communication and outstanding leadership",
			expected: 1.0, // 6/3 clamped
			delta:    0.001,
		},
		{
			name:     "single mild positive",
			text:     "a good answer",
			expected: 1.0 / 3.0,
			delta:    0.001,
		},
		{
			name:     "single strong negative",
			text:     "a terrible interview",
			expected: -1.0,
			delta:    0.001,
		},
		{
			name:     "mild negatives",
			text:     "candidate seemed hesitant and unsure",
			expected: -2.0 / 3.0,
			delta:    0.001,
		},
		{
			name:     "mixed tone averages out",
			text:     "great depth but weak delivery and vague answers",
			expected: -1.0 / 3.0, // 2 - 2 - 1 over 3 matches
			delta:    0.001,
		},
		{
			name:     "many matches divide by count",
			text:     "good good good good",
			expected: 1.0,
			delta:    0.001,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := scoreSentiment(tt.text)
			assert.InDelta(t, tt.expected, result, tt.delta)
		})
	}
}

// TestScoreSentimentSign ensures positive-only text scores above zero and
// negative-only text below zero.
func TestScoreSentimentSign(t *testing.T) {
	assert.Positive(t, scoreSentiment("impressive and thorough and confident"))
	assert.Negative(t, scoreSentiment("confused, unprepared, struggled throughout"))
	assert.Zero(t, scoreSentiment("walked through the take-home"))
}

func BenchmarkScoreSentiment(b *testing.B) {
	text := "excellent technical depth, great communication, some concern about limited production experience, but overall a strong and impressive performance"
	for b.Loop() {
		scoreSentiment(text)
	}
}

// FuzzScoreSentiment ensures the score stays within [-1,1] for any input.
func FuzzScoreSentiment(f *testing.F) {
	f.Add("excellent work")
	f.Add("terrible and rude")
	f.Add("")
	f.Add("good good bad concern excellent poor weak strong")
	f.Fuzz(func(t *testing.T, text string) {
		score := scoreSentiment(text)
		if score < -1 || score > 1 {
			t.Errorf("sentiment %f out of range for %q", score, text)
		}
	})
}
