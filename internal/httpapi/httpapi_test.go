package httpapi

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talentlens/talentlens/core"
	"github.com/talentlens/talentlens/internal/contract"
	"github.com/talentlens/talentlens/internal/histstore"
	"github.com/talentlens/talentlens/schema"
)

func newTestApp(t *testing.T) (*apiHandlerDeps, func()) {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "httpapi_test.db")
	store, err := histstore.NewHistoryStore(schema.SQLiteBackend, dbPath)
	require.NoError(t, err)

	cfg := &contract.Config{ServeAddr: ":0"}
	deps := &apiHandlerDeps{
		cfg:      cfg,
		analyzer: core.NewAnalyzer(),
		store:    store,
	}
	return deps, func() { _ = store.Close() }
}

// apiHandlerDeps bundles the app dependencies for tests.
type apiHandlerDeps struct {
	cfg      *contract.Config
	analyzer contract.FeedbackAnalyzer
	store    contract.HistoryStore
}

func TestHealthEndpoint(t *testing.T) {
	deps, cleanup := newTestApp(t)
	defer cleanup()
	app := NewApp(deps.cfg, deps.analyzer, deps.store)

	resp, err := app.Test(httptest.NewRequest("GET", "/api/v1/health", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "healthy")
}

func TestDimensionsEndpoint(t *testing.T) {
	deps, cleanup := newTestApp(t)
	defer cleanup()
	deps.cfg.CustomWeights = map[schema.Dimension]float64{schema.DimensionTechnical: 0.5}
	app := NewApp(deps.cfg, deps.analyzer, deps.store)

	resp, err := app.Test(httptest.NewRequest("GET", "/api/v1/dimensions", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var weights map[string]float64
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&weights))
	assert.InDelta(t, 0.5, weights["technical_skills"], 0.0001)
	assert.InDelta(t, 0.20, weights["communication"], 0.0001)
}

func TestAnalyzeEndpoint(t *testing.T) {
	deps, cleanup := newTestApp(t)
	defer cleanup()
	app := NewApp(deps.cfg, deps.analyzer, deps.store)

	env := schema.FeedbackEnvelope{
		Feedback: schema.FeedbackInput{
			Rating: 9,
			Notes:  "Excellent communication and outstanding leadership",
		},
		Candidate: schema.CandidateProfile{
			ID:       "cand-1",
			Name:     "Jane Doe",
			JobTitle: "Senior Engineer",
		},
	}
	payload, _ := json.Marshal(env)

	req := httptest.NewRequest("POST", "/api/v1/analyze", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, 10000)
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var result schema.AnalysisResult
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	assert.Equal(t, "Jane Doe", result.CandidateName)
	assert.NotEmpty(t, result.ID)
	assert.NotEmpty(t, result.ExecutiveSummary)
	assert.Greater(t, result.Overall(), 0.7)

	// The analysis is persisted to the history store
	records, err := deps.store.RecentAnalyses(10)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, result.ID, records[0].AnalysisID)
	assert.Equal(t, 9, records[0].Rating)
}

func TestAnalyzeEndpointRejectsEmptyFeedback(t *testing.T) {
	deps, cleanup := newTestApp(t)
	defer cleanup()
	app := NewApp(deps.cfg, deps.analyzer, deps.store)

	req := httptest.NewRequest("POST", "/api/v1/analyze", bytes.NewReader([]byte(`{}`)))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 400, resp.StatusCode)
}

func TestAnalyzeEndpointRejectsBadPayload(t *testing.T) {
	deps, cleanup := newTestApp(t)
	defer cleanup()
	app := NewApp(deps.cfg, deps.analyzer, deps.store)

	req := httptest.NewRequest("POST", "/api/v1/analyze", bytes.NewReader([]byte(`not json`)))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 400, resp.StatusCode)
}

func TestNotesEndpoint(t *testing.T) {
	deps, cleanup := newTestApp(t)
	defer cleanup()
	app := NewApp(deps.cfg, deps.analyzer, deps.store)

	payload := []byte(`{"notes":"Great python background, solid problem solving","candidate":{"id":"cand-2","name":"Ada"}}`)
	req := httptest.NewRequest("POST", "/api/v1/notes", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, 10000)
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var result schema.AnalysisResult
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	assert.Equal(t, "Ada", result.CandidateName)
	assert.NotEmpty(t, result.Skills)
}

func TestNotesEndpointRequiresNotes(t *testing.T) {
	deps, cleanup := newTestApp(t)
	defer cleanup()
	app := NewApp(deps.cfg, deps.analyzer, deps.store)

	req := httptest.NewRequest("POST", "/api/v1/notes", bytes.NewReader([]byte(`{"notes":""}`)))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 400, resp.StatusCode)
}

func TestHistoryEndpoints(t *testing.T) {
	deps, cleanup := newTestApp(t)
	defer cleanup()
	app := NewApp(deps.cfg, deps.analyzer, deps.store)

	// Seed two analyses via the API
	for _, name := range []string{"Jane Doe", "John Smith"} {
		env := schema.FeedbackEnvelope{
			Feedback:  schema.FeedbackInput{Rating: 7, Notes: "a good interview"},
			Candidate: schema.CandidateProfile{ID: "cand-" + name[:4], Name: name},
		}
		payload, _ := json.Marshal(env)
		req := httptest.NewRequest("POST", "/api/v1/analyze", bytes.NewReader(payload))
		req.Header.Set("Content-Type", "application/json")
		resp, err := app.Test(req, 10000)
		require.NoError(t, err)
		require.Equal(t, 200, resp.StatusCode)
	}

	resp, err := app.Test(httptest.NewRequest("GET", "/api/v1/history", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var listing struct {
		Count   int                     `json:"count"`
		Records []schema.AnalysisRecord `json:"records"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&listing))
	assert.Equal(t, 2, listing.Count)

	resp, err = app.Test(httptest.NewRequest("GET", "/api/v1/history/cand-Jane", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	require.NoError(t, json.NewDecoder(resp.Body).Decode(&listing))
	require.Equal(t, 1, listing.Count)
	assert.Equal(t, "Jane Doe", listing.Records[0].CandidateName)
}

func TestRootEndpoint(t *testing.T) {
	deps, cleanup := newTestApp(t)
	defer cleanup()
	app := NewApp(deps.cfg, deps.analyzer, deps.store)

	resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "TalentLens API")
}
