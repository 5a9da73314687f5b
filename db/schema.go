package db

import (
	"database/sql"
	"fmt"

	"github.com/plmtools/plm-translator/cliparse"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"
)

// Open connects to the database selected by cfg.DatabaseType.
func Open(cfg cliparse.Config) (*sql.DB, error) {
	switch cfg.DatabaseType {
	case "postgres":
		return sql.Open("postgres", cfg.DatabaseURL)
	case "sqlite":
		return sql.Open("sqlite", cfg.DatabaseURL)
	default:
		return nil, fmt.Errorf("unsupported database type: %s", cfg.DatabaseType)
	}
}

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(db *sql.DB, dialect string) error {
	schema, ok := schemas[dialect]
	if !ok {
		return fmt.Errorf("unsupported database type: %s", dialect)
	}
	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

// created_at is stored as a UTC RFC3339 string in both dialects so that
// lexicographic ordering matches chronological ordering and scans stay
// uniform across drivers.
var schemas = map[string]string{
	"postgres": `
CREATE TABLE IF NOT EXISTS test_results (
    id BIGSERIAL PRIMARY KEY,
    outcome TEXT NOT NULL,
    accuracy DOUBLE PRECISION NOT NULL,
    observation TEXT,
    tested_by TEXT,
    text_to_translate TEXT,
    translated_text TEXT,
    source_language TEXT,
    target_language TEXT,
    session_id TEXT,
    created_at TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_test_results_created_at ON test_results(created_at);
CREATE INDEX IF NOT EXISTS idx_test_results_outcome ON test_results(outcome);
`,
	"sqlite": `
CREATE TABLE IF NOT EXISTS test_results (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    outcome TEXT NOT NULL,
    accuracy REAL NOT NULL,
    observation TEXT,
    tested_by TEXT,
    text_to_translate TEXT,
    translated_text TEXT,
    source_language TEXT,
    target_language TEXT,
    session_id TEXT,
    created_at TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_test_results_created_at ON test_results(created_at);
CREATE INDEX IF NOT EXISTS idx_test_results_outcome ON test_results(outcome);
`,
}
