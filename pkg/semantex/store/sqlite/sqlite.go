// Package sqlite implements store.Store on a SQLite database via the pure-Go
// modernc.org/sqlite driver.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"github.com/semantex/semantex/pkg/semantex/internalerr"
	"github.com/semantex/semantex/pkg/semantex/store"
)

type sqliteStore struct {
	db *sql.DB
}

// Open opens (creating if necessary) a SQLite result archive with WAL mode
// enabled.
func Open(ctx context.Context, path string) (store.Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("%w: open %s: %v", internalerr.ErrStoreUnavailable, path, err)
	}

	if _, err := db.ExecContext(ctx, "PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("%w: open %s: %v", internalerr.ErrStoreUnavailable, path, err)
	}

	if err := initSchema(ctx, db); err != nil {
		db.Close()
		return nil, fmt.Errorf("%w: open %s: %v", internalerr.ErrStoreUnavailable, path, err)
	}

	return &sqliteStore{db: db}, nil
}

// Close closes the database connection.
func (s *sqliteStore) Close() error {
	return s.db.Close()
}

func initSchema(ctx context.Context, db *sql.DB) error {
	schema := `
CREATE TABLE IF NOT EXISTS analyses (
	id TEXT PRIMARY KEY,
	source TEXT NOT NULL,
	created_at TEXT NOT NULL,
	confidence REAL NOT NULL,
	payload TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_analyses_source ON analyses(source);

CREATE TABLE IF NOT EXISTS correlations (
	id TEXT PRIMARY KEY,
	sources TEXT NOT NULL,
	created_at TEXT NOT NULL,
	confidence REAL NOT NULL,
	payload TEXT NOT NULL
);
`
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("init schema: %w", err)
	}
	return nil
}

// SaveAnalysis inserts or replaces an analysis record.
func (s *sqliteStore) SaveAnalysis(ctx context.Context, rec store.AnalysisRecord) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT OR REPLACE INTO analyses (id, source, created_at, confidence, payload)
		 VALUES (?, ?, ?, ?, ?)`,
		rec.ID, rec.Source, rec.CreatedAt.UTC().Format(time.RFC3339Nano), rec.Confidence, string(rec.Payload))
	if err != nil {
		return fmt.Errorf("save analysis: %w", err)
	}
	return nil
}

// GetAnalysis returns the record with the given id.
func (s *sqliteStore) GetAnalysis(ctx context.Context, id string) (store.AnalysisRecord, bool, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, source, created_at, confidence, payload FROM analyses WHERE id = ?`, id)
	return scanAnalysis(row)
}

// GetAnalysisBySource returns the most recent record for a source label.
func (s *sqliteStore) GetAnalysisBySource(ctx context.Context, src string) (store.AnalysisRecord, bool, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, source, created_at, confidence, payload FROM analyses
		 WHERE source = ? ORDER BY created_at DESC LIMIT 1`, src)
	return scanAnalysis(row)
}

func scanAnalysis(row *sql.Row) (store.AnalysisRecord, bool, error) {
	var rec store.AnalysisRecord
	var createdAt, payload string
	err := row.Scan(&rec.ID, &rec.Source, &createdAt, &rec.Confidence, &payload)
	if err == sql.ErrNoRows {
		return store.AnalysisRecord{}, false, nil
	}
	if err != nil {
		return store.AnalysisRecord{}, false, err
	}
	rec.CreatedAt, _ = time.Parse(time.RFC3339Nano, createdAt)
	rec.Payload = []byte(payload)
	return rec, true, nil
}

// ListAnalyses returns up to limit records, most recent first.
func (s *sqliteStore) ListAnalyses(ctx context.Context, limit int) ([]store.AnalysisRecord, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, source, created_at, confidence, payload FROM analyses
		 ORDER BY created_at DESC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []store.AnalysisRecord
	for rows.Next() {
		var rec store.AnalysisRecord
		var createdAt, payload string
		if err := rows.Scan(&rec.ID, &rec.Source, &createdAt, &rec.Confidence, &payload); err != nil {
			return nil, err
		}
		rec.CreatedAt, _ = time.Parse(time.RFC3339Nano, createdAt)
		rec.Payload = []byte(payload)
		out = append(out, rec)
	}
	return out, rows.Err()
}

// SaveCorrelation inserts or replaces a correlation record.
func (s *sqliteStore) SaveCorrelation(ctx context.Context, rec store.CorrelationRecord) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT OR REPLACE INTO correlations (id, sources, created_at, confidence, payload)
		 VALUES (?, ?, ?, ?, ?)`,
		rec.ID, strings.Join(rec.Sources, ","), rec.CreatedAt.UTC().Format(time.RFC3339Nano),
		rec.Confidence, string(rec.Payload))
	if err != nil {
		return fmt.Errorf("save correlation: %w", err)
	}
	return nil
}

// ListCorrelations returns up to limit correlation records, most recent
// first.
func (s *sqliteStore) ListCorrelations(ctx context.Context, limit int) ([]store.CorrelationRecord, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, sources, created_at, confidence, payload FROM correlations
		 ORDER BY created_at DESC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []store.CorrelationRecord
	for rows.Next() {
		var rec store.CorrelationRecord
		var sources, createdAt, payload string
		if err := rows.Scan(&rec.ID, &sources, &createdAt, &rec.Confidence, &payload); err != nil {
			return nil, err
		}
		if sources != "" {
			rec.Sources = strings.Split(sources, ",")
		}
		rec.CreatedAt, _ = time.Parse(time.RFC3339Nano, createdAt)
		rec.Payload = []byte(payload)
		out = append(out, rec)
	}
	return out, rows.Err()
}
