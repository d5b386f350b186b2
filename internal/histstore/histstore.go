// Package histstore persists completed analyses across runs.
package histstore

import (
	"fmt"
	"sync"

	"github.com/talentlens/talentlens/internal/contract"
	"github.com/talentlens/talentlens/schema"
)

// historyTable is the name of the table for analysis history.
const historyTable = "talentlens_history"

// HistoryStoreManager manages the configured HistoryStore instance.
type HistoryStoreManager struct {
	sync.RWMutex // Protects the store pointer during initialization
	history      contract.HistoryStore
}

var _ contract.HistoryManager = &HistoryStoreManager{} // Compile-time check

// GetHistoryStore returns the history store.
func (mgr *HistoryStoreManager) GetHistoryStore() contract.HistoryStore {
	mgr.RLock()
	defer mgr.RUnlock()
	return mgr.history
}

// Global Manager instance for main logic.
var (
	Manager   = &HistoryStoreManager{}
	initOnce  sync.Once
	closeOnce sync.Once
)

// GetHistoryDBFilePath returns the path to the SQLite DB file for history storage.
func GetHistoryDBFilePath() string {
	return contract.GetHistoryDBFilePath()
}

// InitHistory initializes the global history manager.
// A NoneBackend yields a store whose writes are no-ops.
func InitHistory(backend schema.DatabaseBackend, connStr string) error {
	var initErr error

	initOnce.Do(func() {
		store, err := NewHistoryStore(backend, connStr)
		if err != nil {
			initErr = fmt.Errorf("failed to initialize history storage: %w", err)
			return
		}

		Manager.Lock()
		Manager.history = store
		Manager.Unlock()
	})

	return initErr
}

// CloseHistory closes the global history store. Safe to call multiple times.
func CloseHistory() {
	closeOnce.Do(func() {
		Manager.Lock()
		defer Manager.Unlock()

		if Manager.history != nil {
			if err := Manager.history.Close(); err != nil {
				contract.LogWarn("closing history store", err)
			}
			Manager.history = nil
		}
	})
}
