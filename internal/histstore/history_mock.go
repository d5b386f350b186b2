package histstore

import (
	"github.com/stretchr/testify/mock"

	"github.com/talentlens/talentlens/internal/contract"
	"github.com/talentlens/talentlens/schema"
)

// MockHistoryManager is a mock implementation of HistoryManager for testing.
type MockHistoryManager struct {
	mock.Mock
}

var _ contract.HistoryManager = &MockHistoryManager{} // Compile-time check

// GetHistoryStore implements the HistoryManager interface.
func (m *MockHistoryManager) GetHistoryStore() contract.HistoryStore {
	ret := m.Called()
	store, _ := ret.Get(0).(contract.HistoryStore)
	return store
}

// MockHistoryStore is a mock implementation of HistoryStore for testing.
type MockHistoryStore struct {
	mock.Mock
}

var _ contract.HistoryStore = &MockHistoryStore{} // Compile-time check

// SaveAnalysis implements the HistoryStore interface.
func (m *MockHistoryStore) SaveAnalysis(record schema.AnalysisRecord) error {
	args := m.Called(record)
	return args.Error(0)
}

// RecentAnalyses implements the HistoryStore interface.
func (m *MockHistoryStore) RecentAnalyses(limit int) ([]schema.AnalysisRecord, error) {
	args := m.Called(limit)
	records, _ := args.Get(0).([]schema.AnalysisRecord)
	return records, args.Error(1)
}

// CandidateAnalyses implements the HistoryStore interface.
func (m *MockHistoryStore) CandidateAnalyses(candidateID string) ([]schema.AnalysisRecord, error) {
	args := m.Called(candidateID)
	records, _ := args.Get(0).([]schema.AnalysisRecord)
	return records, args.Error(1)
}

// GetStatus implements the HistoryStore interface.
func (m *MockHistoryStore) GetStatus() (schema.HistoryStatus, error) {
	args := m.Called()
	return args.Get(0).(schema.HistoryStatus), args.Error(1)
}

// ClearHistory implements the HistoryStore interface.
func (m *MockHistoryStore) ClearHistory() (int64, error) {
	args := m.Called()
	return args.Get(0).(int64), args.Error(1)
}

// Close implements the HistoryStore interface.
func (m *MockHistoryStore) Close() error {
	args := m.Called()
	return args.Error(0)
}
