package outwriter

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talentlens/talentlens/internal/contract"
	"github.com/talentlens/talentlens/schema"
)

func TestWriteJSONResultsForBatch(t *testing.T) {
	results := []*schema.AnalysisResult{
		sampleResult("Jane Doe", 0.87),
		sampleResult("John Smith", 0.5),
	}

	var buf bytes.Buffer
	err := writeJSONResultsForBatch(&buf, results)
	require.NoError(t, err)

	// Parse the JSON to verify structure
	var parsed []map[string]any
	err = json.Unmarshal(buf.Bytes(), &parsed)
	require.NoError(t, err)
	require.Len(t, parsed, 2)

	assert.Equal(t, float64(1), parsed[0]["rank"])
	assert.Equal(t, "Jane Doe", parsed[0]["candidate_name"])
	assert.Equal(t, "Strong", parsed[0]["label"])
	assert.Equal(t, float64(2), parsed[1]["rank"])
	assert.Equal(t, "Mixed", parsed[1]["label"])
}

func TestWriteCSVResultsForBatch(t *testing.T) {
	fmtFloat, _ := createFormatters(2)
	results := []*schema.AnalysisResult{sampleResult("Jane Doe", 0.87)}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	err := writeCSVResultsForBatch(w, results, fmtFloat)
	require.NoError(t, err)
	w.Flush()

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2) // header + 1 row

	assert.Contains(t, lines[0], "rank")
	assert.Contains(t, lines[0], "candidate_name")
	assert.Contains(t, lines[0], "overall")

	assert.Contains(t, lines[1], "1")
	assert.Contains(t, lines[1], "Jane Doe")
	assert.Contains(t, lines[1], "0.87")
	assert.Contains(t, lines[1], "strong_advance")
}

func TestWriteCSVResultsForBatchEmpty(t *testing.T) {
	fmtFloat, _ := createFormatters(2)

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	err := writeCSVResultsForBatch(w, nil, fmtFloat)
	require.NoError(t, err)
	w.Flush()

	// Should only have header
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)
	assert.Contains(t, lines[0], "rank")
}

func TestWriteBatchTable(t *testing.T) {
	results := []*schema.AnalysisResult{
		sampleResult("Jane Doe", 0.87),
		sampleResult("John Smith", 0.4),
	}
	cfg := &contract.Config{Precision: 2, Width: 120}
	fmtFloat, _ := createFormatters(cfg.Precision)

	var buf bytes.Buffer
	err := writeBatchTable(results, cfg, fmtFloat, 10*time.Millisecond, &buf)
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "Jane Doe")
	assert.Contains(t, out, "John Smith")
	assert.Contains(t, out, "Strong")
	assert.Contains(t, out, "Concerning")
	assert.Contains(t, out, "Showing 2 candidates (2 advancing, 2 total risks)")
}

func TestDisplayName(t *testing.T) {
	named := sampleResult("Jane Doe", 0.87)
	assert.Equal(t, "Jane Doe", displayName(named))

	anonymous := sampleResult("", 0.87)
	assert.Equal(t, "cand-1", displayName(anonymous))
}
