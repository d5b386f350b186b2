package outwriter

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talentlens/talentlens/internal/contract"
	"github.com/talentlens/talentlens/schema"
)

func TestCreateFormatters(t *testing.T) {
	fmtFloat, intFmt := createFormatters(2)
	assert.Equal(t, "0.88", fmtFloat(0.875))
	assert.Equal(t, "%d", intFmt)

	fmtFloat, _ = createFormatters(0)
	assert.Equal(t, "1", fmtFloat(0.875))
}

func TestWriteJSONHelper(t *testing.T) {
	var buf bytes.Buffer
	err := writeJSON(&buf, map[string]int{"a": 1})
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "\"a\": 1")
}

func TestWriteCSVWithHeader(t *testing.T) {
	var buf bytes.Buffer
	err := writeCSVWithHeader(&buf, []string{"a", "b"}, func(w *csv.Writer) error {
		return w.Write([]string{"1", "2"})
	})
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "a,b", lines[0])
	assert.Equal(t, "1,2", lines[1])
}

func TestLabelFor(t *testing.T) {
	cfg := &contract.Config{}
	assert.Equal(t, "Strong", labelFor(0.9, cfg))
	assert.Equal(t, "Concerning", labelFor(0.1, cfg))
}

func TestHeaderWithEmoji(t *testing.T) {
	plain := &contract.Config{}
	assert.Equal(t, "Insights", headerWithEmoji("💡", "Insights", plain))

	emoji := &contract.Config{UseEmojis: true}
	assert.Equal(t, "💡 Insights", headerWithEmoji("💡", "Insights", emoji))
}

func TestGetMaxTableNameWidth(t *testing.T) {
	// Narrow override clamps to the minimum
	narrow := &contract.Config{Width: 40}
	assert.Equal(t, 12, getMaxTableNameWidth(narrow))

	// Wide override clamps to the maximum
	wide := &contract.Config{Width: 400}
	assert.Equal(t, 40, getMaxTableNameWidth(wide))

	// Detail columns shrink the available space
	detail := &contract.Config{Width: 120, Detail: true}
	noDetail := &contract.Config{Width: 120}
	assert.Less(t, getMaxTableNameWidth(detail), getMaxTableNameWidth(noDetail))
}

func TestSortedKeys(t *testing.T) {
	keys := sortedKeys(map[string]float64{"b": 1, "a": 2, "c": 3})
	assert.Equal(t, []string{"a", "b", "c"}, keys)
}

func TestBuildDimensionRenderModel(t *testing.T) {
	model := buildDimensionRenderModel(nil)
	require.Len(t, model.Dimensions, len(schema.ScoredDimensions))

	// Defaults are used without overrides
	for _, dim := range model.Dimensions {
		if dim.Dimension == schema.DimensionTechnical {
			assert.InDelta(t, 0.25, dim.Weight, 0.0001)
		}
	}

	// Custom weights are overlaid
	model = buildDimensionRenderModel(map[schema.Dimension]float64{schema.DimensionTechnical: 0.5})
	for _, dim := range model.Dimensions {
		if dim.Dimension == schema.DimensionTechnical {
			assert.InDelta(t, 0.5, dim.Weight, 0.0001)
		}
	}
	assert.Contains(t, model.Formula, "0.50*technical")
}

func TestWriteDimensionsText(t *testing.T) {
	cfg := &contract.Config{}
	model := buildDimensionRenderModel(nil)

	var buf bytes.Buffer
	err := writeDimensionsText(&buf, model, cfg)
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "Evaluation Dimensions")
	assert.Contains(t, out, "Technical Skills (weight 0.25)")
	assert.Contains(t, out, "Growth Potential (weight 0.10)")
	assert.Contains(t, out, "Formula: Overall = 0.70*")
}

func TestWriteCSVDimensions(t *testing.T) {
	model := buildDimensionRenderModel(nil)

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	err := writeCSVDimensions(w, model)
	require.NoError(t, err)
	w.Flush()

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, len(schema.ScoredDimensions)+1)
	assert.Contains(t, lines[0], "dimension")
	assert.Contains(t, lines[1], "technical_skills")
	assert.Contains(t, lines[1], "0.25")
}
