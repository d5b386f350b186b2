package core

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/talentlens/talentlens/internal/contract"
	"github.com/talentlens/talentlens/internal/histstore"
	"github.com/talentlens/talentlens/schema"
)

// writeEnvelopeFile marshals an envelope into a JSON file under dir.
func writeEnvelopeFile(t *testing.T, dir, name string, env *schema.FeedbackEnvelope) string {
	t.Helper()
	data, err := json.Marshal(env)
	require.NoError(t, err)
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

// executeTestConfig builds a config that writes JSON to a file, keeping
// command output out of the test log.
func executeTestConfig(outputFile string) *contract.Config {
	return &contract.Config{
		ResultLimit:    10,
		Precision:      2,
		Output:         schema.JSONOut,
		OutputFile:     outputFile,
		HistoryBackend: schema.NoneBackend,
	}
}

// recordingManager wires a mock store that accepts every save.
func recordingManager() (*histstore.MockHistoryManager, *histstore.MockHistoryStore) {
	store := &histstore.MockHistoryStore{}
	store.On("SaveAnalysis", mock.AnythingOfType("schema.AnalysisRecord")).Return(nil)
	mgr := &histstore.MockHistoryManager{}
	mgr.On("GetHistoryStore").Return(store)
	return mgr, store
}

func TestExecuteAnalyzeFeedback(t *testing.T) {
	dir := t.TempDir()
	path := writeEnvelopeFile(t, dir, "feedback.json", &schema.FeedbackEnvelope{
		Feedback: schema.FeedbackInput{
			Rating: 9,
			Notes:  "Excellent communication and outstanding problem solving with deep go expertise.",
		},
		Candidate: schema.CandidateProfile{
			ID:       "cand-1",
			Name:     "Jane Doe",
			JobTitle: "Senior Engineer",
		},
	})
	outputFile := filepath.Join(dir, "result.json")
	mgr, store := recordingManager()

	err := ExecuteAnalyzeFeedback(context.Background(), executeTestConfig(outputFile), path, mgr)
	require.NoError(t, err)

	data, err := os.ReadFile(outputFile)
	require.NoError(t, err)
	var parsed map[string]any
	require.NoError(t, json.Unmarshal(data, &parsed))
	assert.Equal(t, "Jane Doe", parsed["candidate_name"])
	assert.NotEmpty(t, parsed["label"])
	assert.NotEmpty(t, parsed["executive_summary"])

	store.AssertNumberOfCalls(t, "SaveAnalysis", 1)
}

func TestExecuteAnalyzeFeedbackMissingFile(t *testing.T) {
	cfg := executeTestConfig("")
	err := ExecuteAnalyzeFeedback(context.Background(), cfg, filepath.Join(t.TempDir(), "nope.json"), nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cannot read feedback file")
}

func TestExecuteAnalyzeFeedbackBadJSON(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "broken.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	err := ExecuteAnalyzeFeedback(context.Background(), executeTestConfig(""), path, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cannot parse feedback file")
}

func TestExecuteAnalyzeNotes(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "notes.txt")
	notes := "Great python background, strong communication, solid problem solving."
	require.NoError(t, os.WriteFile(path, []byte(notes), 0o644))
	outputFile := filepath.Join(dir, "result.json")
	mgr, store := recordingManager()

	err := ExecuteAnalyzeNotes(context.Background(), executeTestConfig(outputFile), path, mgr)
	require.NoError(t, err)

	data, err := os.ReadFile(outputFile)
	require.NoError(t, err)
	var parsed map[string]any
	require.NoError(t, json.Unmarshal(data, &parsed))
	assert.NotEmpty(t, parsed["scores"])

	store.AssertNumberOfCalls(t, "SaveAnalysis", 1)
}

func TestExecuteAnalyzeNotesEmptyFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "empty.txt")
	require.NoError(t, os.WriteFile(path, []byte("   \n"), 0o644))

	err := ExecuteAnalyzeNotes(context.Background(), executeTestConfig(""), path, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "is empty")
}

func TestExecuteBatchAnalysis(t *testing.T) {
	dir := t.TempDir()
	writeEnvelopeFile(t, dir, "strong.json", &schema.FeedbackEnvelope{
		Feedback: schema.FeedbackInput{
			Rating: 9,
			Notes:  "Excellent technical depth and outstanding communication throughout.",
		},
		Candidate: schema.CandidateProfile{ID: "cand-strong", Name: "Strong One"},
	})
	writeEnvelopeFile(t, dir, "weak.json", &schema.FeedbackEnvelope{
		Feedback: schema.FeedbackInput{
			Rating:   3,
			Concerns: "Struggled with basic questions and poor communication.",
		},
		Candidate: schema.CandidateProfile{ID: "cand-weak", Name: "Weak One"},
	})
	outputFile := filepath.Join(dir, "batch.json")
	mgr, store := recordingManager()

	err := ExecuteBatchAnalysis(context.Background(), executeTestConfig(outputFile), dir, mgr)
	require.NoError(t, err)

	data, err := os.ReadFile(outputFile)
	require.NoError(t, err)
	var parsed []map[string]any
	require.NoError(t, json.Unmarshal(data, &parsed))
	require.Len(t, parsed, 2)
	assert.EqualValues(t, 1, parsed[0]["rank"])
	assert.Equal(t, "Strong One", parsed[0]["candidate_name"])
	assert.Equal(t, "Weak One", parsed[1]["candidate_name"])

	store.AssertNumberOfCalls(t, "SaveAnalysis", 2)
}

func TestExecuteBatchAnalysisEmptyDir(t *testing.T) {
	err := ExecuteBatchAnalysis(context.Background(), executeTestConfig(""), t.TempDir(), nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no feedback files found")
}

func TestExecuteDimensionMetrics(t *testing.T) {
	outputFile := filepath.Join(t.TempDir(), "dims.txt")
	cfg := executeTestConfig(outputFile)
	cfg.Output = schema.TextOut
	cfg.CustomWeights = map[schema.Dimension]float64{schema.DimensionTechnical: 0.5}

	require.NoError(t, ExecuteDimensionMetrics(context.Background(), cfg))

	data, err := os.ReadFile(outputFile)
	require.NoError(t, err)
	text := string(data)
	assert.Contains(t, text, "Technical Skills (weight 0.50)")
	assert.Contains(t, text, "Communication (weight 0.20)")
}

func TestExecuteHistoryRecent(t *testing.T) {
	outputFile := filepath.Join(t.TempDir(), "recent.json")
	cfg := executeTestConfig(outputFile)

	store := &histstore.MockHistoryStore{}
	store.On("RecentAnalyses", cfg.ResultLimit).Return([]schema.AnalysisRecord{
		{AnalysisID: "a-1", CandidateID: "cand-1", CandidateName: "Jane Doe", Overall: 0.8},
	}, nil)
	mgr := &histstore.MockHistoryManager{}
	mgr.On("GetHistoryStore").Return(store)

	require.NoError(t, ExecuteHistoryRecent(cfg, mgr))

	data, err := os.ReadFile(outputFile)
	require.NoError(t, err)
	var parsed []map[string]any
	require.NoError(t, json.Unmarshal(data, &parsed))
	require.Len(t, parsed, 1)
	assert.Equal(t, "a-1", parsed[0]["analysis_id"])
}
