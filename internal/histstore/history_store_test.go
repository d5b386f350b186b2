package histstore

import (
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talentlens/talentlens/schema"
)

func newTestStore(t *testing.T) *HistoryStoreImpl {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "history_test.db")
	store, err := NewHistoryStore(schema.SQLiteBackend, dbPath)
	require.NoError(t, err, "Creating SQLite store should not produce error")
	t.Cleanup(func() { _ = store.Close() })

	impl, ok := store.(*HistoryStoreImpl)
	require.True(t, ok, "Store should be a HistoryStoreImpl")
	assert.Equal(t, dbPath, impl.location)
	return impl
}

func sampleRecord(id, candidateID string, generatedAt time.Time) schema.AnalysisRecord {
	return schema.AnalysisRecord{
		AnalysisID:     id,
		CandidateID:    candidateID,
		CandidateName:  "Jane Doe",
		JobTitle:       "Senior Software Engineer",
		Rating:         9,
		Overall:        0.88,
		Sentiment:      0.9,
		Confidence:     0.82,
		Primary:        schema.RecStrongAdvance,
		RiskCount:      1,
		HighestRisk:    "medium",
		GeneratedAt:    generatedAt,
		CapabilityJSON: `{"technical":0.9}`,
	}
}

func TestHistoryStoreRoundTrip(t *testing.T) {
	store := newTestStore(t)
	base := time.Date(2025, 11, 4, 10, 0, 0, 0, time.UTC)

	require.NoError(t, store.SaveAnalysis(sampleRecord("a-1", "cand-1", base)))
	require.NoError(t, store.SaveAnalysis(sampleRecord("a-2", "cand-1", base.Add(time.Hour))))
	require.NoError(t, store.SaveAnalysis(sampleRecord("a-3", "cand-2", base.Add(2*time.Hour))))

	records, err := store.RecentAnalyses(10)
	require.NoError(t, err)
	require.Len(t, records, 3)

	// Newest first
	assert.Equal(t, "a-3", records[0].AnalysisID)
	assert.Equal(t, "a-2", records[1].AnalysisID)
	assert.Equal(t, "a-1", records[2].AnalysisID)

	// Fields survive the round trip, including the string-encoded timestamp
	got := records[2]
	assert.Equal(t, "cand-1", got.CandidateID)
	assert.Equal(t, "Jane Doe", got.CandidateName)
	assert.Equal(t, "Senior Software Engineer", got.JobTitle)
	assert.Equal(t, 9, got.Rating)
	assert.InDelta(t, 0.88, got.Overall, 0.0001)
	assert.InDelta(t, 0.9, got.Sentiment, 0.0001)
	assert.InDelta(t, 0.82, got.Confidence, 0.0001)
	assert.Equal(t, schema.RecStrongAdvance, got.Primary)
	assert.Equal(t, 1, got.RiskCount)
	assert.Equal(t, "medium", got.HighestRisk)
	assert.True(t, got.GeneratedAt.Equal(base), "GeneratedAt should survive the round trip")
	assert.Equal(t, `{"technical":0.9}`, got.CapabilityJSON)
}

func TestHistoryStoreRecentLimit(t *testing.T) {
	store := newTestStore(t)
	base := time.Date(2025, 11, 4, 10, 0, 0, 0, time.UTC)

	for i := 0; i < 15; i++ {
		rec := sampleRecord(fmt.Sprintf("a-%d", i), "cand-1", base.Add(time.Duration(i)*time.Minute))
		require.NoError(t, store.SaveAnalysis(rec))
	}

	records, err := store.RecentAnalyses(5)
	require.NoError(t, err)
	assert.Len(t, records, 5)

	// Non-positive limit falls back to the default page size
	records, err = store.RecentAnalyses(0)
	require.NoError(t, err)
	assert.Len(t, records, 10)
}

func TestHistoryStoreCandidateAnalyses(t *testing.T) {
	store := newTestStore(t)
	base := time.Date(2025, 11, 4, 10, 0, 0, 0, time.UTC)

	require.NoError(t, store.SaveAnalysis(sampleRecord("a-1", "cand-1", base)))
	require.NoError(t, store.SaveAnalysis(sampleRecord("a-2", "cand-2", base.Add(time.Hour))))
	require.NoError(t, store.SaveAnalysis(sampleRecord("a-3", "cand-1", base.Add(2*time.Hour))))

	records, err := store.CandidateAnalyses("cand-1")
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "a-3", records[0].AnalysisID)
	assert.Equal(t, "a-1", records[1].AnalysisID)

	records, err = store.CandidateAnalyses("cand-unknown")
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestHistoryStoreStatus(t *testing.T) {
	store := newTestStore(t)

	// Empty store
	status, err := store.GetStatus()
	require.NoError(t, err)
	assert.Equal(t, schema.SQLiteBackend, status.Backend)
	assert.Equal(t, historySchemaVersion, status.SchemaVersion)
	assert.Zero(t, status.TotalAnalyses)

	oldest := time.Date(2025, 11, 4, 10, 0, 0, 0, time.UTC)
	newest := oldest.Add(3 * time.Hour)
	require.NoError(t, store.SaveAnalysis(sampleRecord("a-1", "cand-1", oldest)))
	require.NoError(t, store.SaveAnalysis(sampleRecord("a-2", "cand-2", newest)))

	status, err = store.GetStatus()
	require.NoError(t, err)
	assert.Equal(t, 2, status.TotalAnalyses)
	assert.True(t, status.OldestAnalysis.Equal(oldest), "OldestAnalysis should match")
	assert.True(t, status.NewestAnalysis.Equal(newest), "NewestAnalysis should match")
}

func TestHistoryStoreClear(t *testing.T) {
	store := newTestStore(t)
	base := time.Date(2025, 11, 4, 10, 0, 0, 0, time.UTC)

	require.NoError(t, store.SaveAnalysis(sampleRecord("a-1", "cand-1", base)))
	require.NoError(t, store.SaveAnalysis(sampleRecord("a-2", "cand-2", base.Add(time.Hour))))

	removed, err := store.ClearHistory()
	require.NoError(t, err)
	assert.Equal(t, int64(2), removed)

	records, err := store.RecentAnalyses(10)
	require.NoError(t, err)
	assert.Empty(t, records)

	// Clearing an empty store removes nothing
	removed, err = store.ClearHistory()
	require.NoError(t, err)
	assert.Zero(t, removed)
}

func TestHistoryStoreNoneBackend(t *testing.T) {
	store, err := NewHistoryStore(schema.NoneBackend, "")
	require.NoError(t, err)

	require.NoError(t, store.SaveAnalysis(sampleRecord("a-1", "cand-1", time.Now())))

	records, err := store.RecentAnalyses(10)
	require.NoError(t, err)
	assert.Nil(t, records)

	records, err = store.CandidateAnalyses("cand-1")
	require.NoError(t, err)
	assert.Nil(t, records)

	status, err := store.GetStatus()
	require.NoError(t, err)
	assert.Equal(t, schema.NoneBackend, status.Backend)
	assert.Zero(t, status.TotalAnalyses)

	removed, err := store.ClearHistory()
	require.NoError(t, err)
	assert.Zero(t, removed)

	require.NoError(t, store.Close())
}

func TestNewHistoryStoreUnsupportedBackend(t *testing.T) {
	_, err := NewHistoryStore(schema.DatabaseBackend("cassandra"), "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported backend")
}

func TestQuoteTableName(t *testing.T) {
	assert.Equal(t, "`talentlens_history`", quoteTableName("talentlens_history", schema.MySQLBackend))
	assert.Equal(t, `"talentlens_history"`, quoteTableName("talentlens_history", schema.SQLiteBackend))
	assert.Equal(t, `"talentlens_history"`, quoteTableName("talentlens_history", schema.PostgreSQLBackend))

	assert.Panics(t, func() {
		quoteTableName("bad;DROP TABLE", schema.SQLiteBackend)
	})
}

func TestFormatTime(t *testing.T) {
	ts := time.Date(2025, 11, 4, 10, 30, 45, 123456789, time.UTC)

	// SQLite stores time as an RFC 3339 string
	encoded := formatTime(ts, schema.SQLiteBackend)
	str, ok := encoded.(string)
	require.True(t, ok, "SQLite time should be encoded as string")
	parsed, err := time.Parse(time.RFC3339Nano, str)
	require.NoError(t, err)
	assert.True(t, parsed.Equal(ts))

	// Other backends keep the native type
	assert.Equal(t, ts, formatTime(ts, schema.MySQLBackend))
	assert.Equal(t, ts, formatTime(ts, schema.PostgreSQLBackend))
}

func TestMockHistoryStore(t *testing.T) {
	mockStore := new(MockHistoryStore)
	mockManager := new(MockHistoryManager)
	mockManager.On("GetHistoryStore").Return(mockStore)
	mockStore.On("GetStatus").Return(schema.HistoryStatus{Backend: schema.SQLiteBackend, TotalAnalyses: 3}, nil)

	store := mockManager.GetHistoryStore()
	require.NotNil(t, store)

	status, err := store.GetStatus()
	require.NoError(t, err)
	assert.Equal(t, 3, status.TotalAnalyses)

	mockManager.AssertExpectations(t)
	mockStore.AssertExpectations(t)
}
