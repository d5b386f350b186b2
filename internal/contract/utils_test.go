package contract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestGetPlainLabel tests the label bands.
func TestGetPlainLabel(t *testing.T) {
	tests := []struct {
		name     string
		score    float64
		expected string
	}{
		{name: "strong", score: 0.9, expected: StrongValue},
		{name: "strong boundary", score: 0.8, expected: StrongValue},
		{name: "promising", score: 0.7, expected: PromisingValue},
		{name: "mixed", score: 0.5, expected: MixedValue},
		{name: "concerning", score: 0.2, expected: ConcerningValue},
		{name: "zero", score: 0.0, expected: ConcerningValue},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, GetPlainLabel(tt.score))
		})
	}
}

// TestGetColorLabel verifies colored labels contain the plain text.
func TestGetColorLabel(t *testing.T) {
	for _, score := range []float64{0.9, 0.7, 0.5, 0.2} {
		assert.Contains(t, GetColorLabel(score), GetPlainLabel(score))
	}
}

// TestTruncateText tests ellipsis truncation.
func TestTruncateText(t *testing.T) {
	assert.Equal(t, "short", TruncateText("short", 10))
	assert.Equal(t, "a long...", TruncateText("a long sentence", 9))
	assert.Equal(t, "ab", TruncateText("ab", 2))
	// Widths of 3 or less never truncate.
	assert.Equal(t, "abcdef", TruncateText("abcdef", 3))
}

// TestParseBoolString tests accepted and rejected values.
func TestParseBoolString(t *testing.T) {
	for _, s := range []string{"yes", "TRUE", "1"} {
		v, err := ParseBoolString(s)
		require.NoError(t, err)
		assert.True(t, v)
	}
	for _, s := range []string{"no", "False", "0"} {
		v, err := ParseBoolString(s)
		require.NoError(t, err)
		assert.False(t, v)
	}
	_, err := ParseBoolString("maybe")
	assert.Error(t, err)
}

// TestGetHistoryDBFilePath ensures a non-empty path is always returned.
func TestGetHistoryDBFilePath(t *testing.T) {
	assert.NotEmpty(t, GetHistoryDBFilePath())
}
