package histstore

import (
	"database/sql"
	"fmt"
	"regexp"
	"time"

	_ "github.com/go-sql-driver/mysql"  // MySQL driver
	_ "github.com/jackc/pgx/v5/stdlib"  // PostgreSQL driver
	_ "modernc.org/sqlite"              // SQLite driver (pure Go)

	"github.com/talentlens/talentlens/internal/contract"
	"github.com/talentlens/talentlens/schema"
)

// historySchemaVersion tracks the current table layout. Bump together with a
// new migration pair under migrations/.
const historySchemaVersion = 1

// HistoryStoreImpl implements the HistoryStore interface.
type HistoryStoreImpl struct {
	db         *sql.DB
	backend    schema.DatabaseBackend
	location   string
	driverName string
}

var _ contract.HistoryStore = &HistoryStoreImpl{} // Compile-time check

// NewHistoryStore creates a new HistoryStore with the specified backend.
func NewHistoryStore(backend schema.DatabaseBackend, connStr string) (contract.HistoryStore, error) {
	var db *sql.DB
	var err error
	var driverName, location string

	switch backend {
	case schema.SQLiteBackend:
		driverName = "sqlite"
		dbPath := connStr
		if dbPath == "" {
			dbPath = GetHistoryDBFilePath()
		}
		location = dbPath
		db, err = sql.Open(driverName, dbPath)
		if err != nil {
			return nil, fmt.Errorf("failed to open SQLite database at %q: %w. Check that the directory is writable", dbPath, err)
		}
		// Limit SQLite to a single open connection to avoid "database is locked" errors
		db.SetMaxOpenConns(1)

	case schema.MySQLBackend:
		driverName = "mysql"
		location = "mysql"
		db, err = sql.Open(driverName, connStr)
		if err != nil {
			return nil, fmt.Errorf("failed to open MySQL database: %w. Check connection string format: user:password@tcp(host:port)/dbname", err)
		}

	case schema.PostgreSQLBackend:
		driverName = "pgx"
		location = "postgresql"
		db, err = sql.Open(driverName, connStr)
		if err != nil {
			return nil, fmt.Errorf("failed to open PostgreSQL database: %w. Check connection string format: host=... dbname=...", err)
		}

	case schema.NoneBackend:
		// Return a no-op store for disabled history
		return &HistoryStoreImpl{
			db:      nil,
			backend: backend,
		}, nil

	default:
		return nil, fmt.Errorf("unsupported backend: %s", backend)
	}

	// Ping to verify connection
	if err := db.Ping(); err != nil {
		_ = db.Close()
		var connDetail string
		switch backend {
		case schema.MySQLBackend:
			connDetail = "Check that MySQL is running and the connection string is correct. Ensure user/password are valid."
		case schema.PostgreSQLBackend:
			connDetail = "Check that PostgreSQL is running and the connection string is correct. Ensure user/password are valid."
		default:
			connDetail = "Verify the database server is running and accessible."
		}
		return nil, fmt.Errorf("failed to connect to %s database: %w. %s", backend, err, connDetail)
	}

	if err := createHistoryTable(db, backend); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create history table: %w", err)
	}

	return &HistoryStoreImpl{
		db:         db,
		backend:    backend,
		location:   location,
		driverName: driverName,
	}, nil
}

// createHistoryTable creates the analysis history table.
func createHistoryTable(db *sql.DB, backend schema.DatabaseBackend) error {
	if _, err := db.Exec(getCreateHistoryQuery(backend)); err != nil {
		return fmt.Errorf("failed to create table %s: %w", historyTable, err)
	}
	return nil
}

// getCreateHistoryQuery returns the CREATE TABLE query for talentlens_history.
func getCreateHistoryQuery(backend schema.DatabaseBackend) string {
	quotedTableName := quoteTableName(historyTable, backend)

	switch backend {
	case schema.MySQLBackend:
		return fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS %s (
				analysis_id VARCHAR(64) PRIMARY KEY,
				candidate_id VARCHAR(64) NOT NULL,
				candidate_name VARCHAR(255) NOT NULL,
				job_title VARCHAR(255),
				rating INT NOT NULL,
				overall DOUBLE NOT NULL,
				sentiment DOUBLE NOT NULL,
				confidence DOUBLE NOT NULL,
				primary_rec VARCHAR(50) NOT NULL,
				risk_count INT NOT NULL,
				highest_risk VARCHAR(20),
				generated_at DATETIME(6) NOT NULL,
				capability_json TEXT
			);
		`, quotedTableName)

	case schema.PostgreSQLBackend:
		return fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS %s (
				analysis_id TEXT PRIMARY KEY,
				candidate_id TEXT NOT NULL,
				candidate_name TEXT NOT NULL,
				job_title TEXT,
				rating INT NOT NULL,
				overall DOUBLE PRECISION NOT NULL,
				sentiment DOUBLE PRECISION NOT NULL,
				confidence DOUBLE PRECISION NOT NULL,
				primary_rec TEXT NOT NULL,
				risk_count INT NOT NULL,
				highest_risk TEXT,
				generated_at TIMESTAMPTZ NOT NULL,
				capability_json TEXT
			);
		`, quotedTableName)

	default: // SQLite
		return fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS %s (
				analysis_id TEXT PRIMARY KEY,
				candidate_id TEXT NOT NULL,
				candidate_name TEXT NOT NULL,
				job_title TEXT,
				rating INTEGER NOT NULL,
				overall REAL NOT NULL,
				sentiment REAL NOT NULL,
				confidence REAL NOT NULL,
				primary_rec TEXT NOT NULL,
				risk_count INTEGER NOT NULL,
				highest_risk TEXT,
				generated_at TEXT NOT NULL,
				capability_json TEXT
			);
		`, quotedTableName)
	}
}

// SaveAnalysis records one completed analysis.
func (hs *HistoryStoreImpl) SaveAnalysis(record schema.AnalysisRecord) error {
	// Skip for NoneBackend
	if hs.backend == schema.NoneBackend || hs.db == nil {
		return nil
	}

	quotedTableName := quoteTableName(historyTable, hs.backend)

	var query string
	switch hs.backend {
	case schema.PostgreSQLBackend:
		query = fmt.Sprintf(`
			INSERT INTO %s (analysis_id, candidate_id, candidate_name, job_title, rating,
			                 overall, sentiment, confidence, primary_rec, risk_count,
			                 highest_risk, generated_at, capability_json)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		`, quotedTableName)
	default: // SQLite and MySQL
		query = fmt.Sprintf(`
			INSERT INTO %s (analysis_id, candidate_id, candidate_name, job_title, rating,
			                 overall, sentiment, confidence, primary_rec, risk_count,
			                 highest_risk, generated_at, capability_json)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		`, quotedTableName)
	}

	_, err := hs.db.Exec(query,
		record.AnalysisID, record.CandidateID, record.CandidateName, record.JobTitle, record.Rating,
		record.Overall, record.Sentiment, record.Confidence, string(record.Primary), record.RiskCount,
		record.HighestRisk, formatTime(record.GeneratedAt, hs.backend), record.CapabilityJSON)
	if err != nil {
		return fmt.Errorf("failed to insert analysis record: %w", err)
	}
	return nil
}

// RecentAnalyses returns up to limit records, newest first.
func (hs *HistoryStoreImpl) RecentAnalyses(limit int) ([]schema.AnalysisRecord, error) {
	if hs.backend == schema.NoneBackend || hs.db == nil {
		return nil, nil
	}
	if limit <= 0 {
		limit = contract.DefaultHistoryRows
	}

	quotedTableName := quoteTableName(historyTable, hs.backend)

	var query string
	switch hs.backend {
	case schema.PostgreSQLBackend:
		query = fmt.Sprintf(`%s ORDER BY generated_at DESC LIMIT $1`, selectRecordsClause(quotedTableName))
	default:
		query = fmt.Sprintf(`%s ORDER BY generated_at DESC LIMIT ?`, selectRecordsClause(quotedTableName))
	}

	rows, err := hs.db.Query(query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query recent analyses: %w", err)
	}
	defer func() { _ = rows.Close() }()

	return hs.scanRecords(rows)
}

// CandidateAnalyses returns every record for one candidate, newest first.
func (hs *HistoryStoreImpl) CandidateAnalyses(candidateID string) ([]schema.AnalysisRecord, error) {
	if hs.backend == schema.NoneBackend || hs.db == nil {
		return nil, nil
	}

	quotedTableName := quoteTableName(historyTable, hs.backend)

	var query string
	switch hs.backend {
	case schema.PostgreSQLBackend:
		query = fmt.Sprintf(`%s WHERE candidate_id = $1 ORDER BY generated_at DESC`, selectRecordsClause(quotedTableName))
	default:
		query = fmt.Sprintf(`%s WHERE candidate_id = ? ORDER BY generated_at DESC`, selectRecordsClause(quotedTableName))
	}

	rows, err := hs.db.Query(query, candidateID)
	if err != nil {
		return nil, fmt.Errorf("failed to query candidate analyses: %w", err)
	}
	defer func() { _ = rows.Close() }()

	return hs.scanRecords(rows)
}

// selectRecordsClause returns the shared SELECT column list.
func selectRecordsClause(quotedTableName string) string {
	return fmt.Sprintf(`
		SELECT analysis_id, candidate_id, candidate_name, job_title, rating,
		       overall, sentiment, confidence, primary_rec, risk_count,
		       highest_risk, generated_at, capability_json
		FROM %s`, quotedTableName)
}

// scanRecords reads every row into AnalysisRecord values, handling the
// per-backend time storage format.
func (hs *HistoryStoreImpl) scanRecords(rows *sql.Rows) ([]schema.AnalysisRecord, error) {
	var records []schema.AnalysisRecord
	for rows.Next() {
		var record schema.AnalysisRecord
		var primaryRec string
		var jobTitle, highestRisk, capabilityJSON sql.NullString

		switch hs.backend {
		case schema.SQLiteBackend:
			var generatedAtStr string
			if err := rows.Scan(&record.AnalysisID, &record.CandidateID, &record.CandidateName,
				&jobTitle, &record.Rating, &record.Overall, &record.Sentiment, &record.Confidence,
				&primaryRec, &record.RiskCount, &highestRisk, &generatedAtStr, &capabilityJSON); err != nil {
				return nil, fmt.Errorf("failed to scan analysis record: %w", err)
			}
			generatedAt, err := time.Parse(time.RFC3339Nano, generatedAtStr)
			if err != nil {
				return nil, fmt.Errorf("failed to parse generated_at: %w", err)
			}
			record.GeneratedAt = generatedAt
		default: // MySQL and PostgreSQL store as native datetime
			if err := rows.Scan(&record.AnalysisID, &record.CandidateID, &record.CandidateName,
				&jobTitle, &record.Rating, &record.Overall, &record.Sentiment, &record.Confidence,
				&primaryRec, &record.RiskCount, &highestRisk, &record.GeneratedAt, &capabilityJSON); err != nil {
				return nil, fmt.Errorf("failed to scan analysis record: %w", err)
			}
		}

		record.Primary = schema.RecommendationType(primaryRec)
		record.JobTitle = jobTitle.String
		record.HighestRisk = highestRisk.String
		record.CapabilityJSON = capabilityJSON.String
		records = append(records, record)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating analysis records: %w", err)
	}
	return records, nil
}

// GetStatus returns status information about the history store.
func (hs *HistoryStoreImpl) GetStatus() (schema.HistoryStatus, error) {
	status := schema.HistoryStatus{
		Backend:       hs.backend,
		Location:      hs.location,
		SchemaVersion: historySchemaVersion,
	}
	if hs.backend == schema.NoneBackend || hs.db == nil {
		return status, nil
	}

	quotedTableName := quoteTableName(historyTable, hs.backend)

	if err := hs.db.QueryRow(fmt.Sprintf(`SELECT COUNT(*) FROM %s`, quotedTableName)).Scan(&status.TotalAnalyses); err != nil {
		return status, fmt.Errorf("failed to count analyses: %w", err)
	}
	if status.TotalAnalyses == 0 {
		return status, nil
	}

	query := fmt.Sprintf(`SELECT MIN(generated_at), MAX(generated_at) FROM %s`, quotedTableName)
	switch hs.backend {
	case schema.SQLiteBackend:
		var oldestStr, newestStr string
		if err := hs.db.QueryRow(query).Scan(&oldestStr, &newestStr); err != nil {
			return status, fmt.Errorf("failed to read analysis time range: %w", err)
		}
		oldest, err := time.Parse(time.RFC3339Nano, oldestStr)
		if err != nil {
			return status, fmt.Errorf("failed to parse oldest analysis time: %w", err)
		}
		newest, err := time.Parse(time.RFC3339Nano, newestStr)
		if err != nil {
			return status, fmt.Errorf("failed to parse newest analysis time: %w", err)
		}
		status.OldestAnalysis = oldest
		status.NewestAnalysis = newest
	default:
		if err := hs.db.QueryRow(query).Scan(&status.OldestAnalysis, &status.NewestAnalysis); err != nil {
			return status, fmt.Errorf("failed to read analysis time range: %w", err)
		}
	}

	return status, nil
}

// ClearHistory deletes every record and reports how many were removed.
func (hs *HistoryStoreImpl) ClearHistory() (int64, error) {
	if hs.backend == schema.NoneBackend || hs.db == nil {
		return 0, nil
	}

	quotedTableName := quoteTableName(historyTable, hs.backend)
	result, err := hs.db.Exec(fmt.Sprintf(`DELETE FROM %s`, quotedTableName))
	if err != nil {
		return 0, fmt.Errorf("failed to clear history: %w", err)
	}
	return result.RowsAffected()
}

// Close closes the underlying connection.
func (hs *HistoryStoreImpl) Close() error {
	if hs.db != nil {
		return hs.db.Close()
	}
	return nil
}

// validTableName ensures table identifiers are safe SQL identifiers,
// preventing injection through interpolated table names.
var validTableName = regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_]*$`)

// quoteTableName returns the properly quoted table name for the given backend.
func quoteTableName(name string, backend schema.DatabaseBackend) string {
	if !validTableName.MatchString(name) {
		// Table names are compile-time constants in this package; a miss here
		// is a programming error.
		panic(fmt.Sprintf("invalid table name: %s", name))
	}
	switch backend {
	case schema.MySQLBackend:
		return fmt.Sprintf("`%s`", name)
	default: // SQLite and PostgreSQL
		return fmt.Sprintf("%q", name)
	}
}

// formatTime converts a time.Time to the appropriate value for the backend.
func formatTime(t time.Time, backend schema.DatabaseBackend) any {
	switch backend {
	case schema.SQLiteBackend:
		return t.Format(time.RFC3339Nano)
	default:
		return t
	}
}
