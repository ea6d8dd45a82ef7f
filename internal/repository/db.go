package repository

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

// InitDB opens (or creates) a SQLite database at the given path and ensures
// all required tables exist. Pass ":memory:" for an in-memory database.
//
// The archive is a collaborator of the engine, not a dependency: the core
// packages never read from it. It holds the externally-persisted view of
// ingested records and configured rules.
func InitDB(dsn string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	// Enable WAL mode for better concurrent read performance.
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set wal mode: %w", err)
	}

	if err := createTables(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("create tables: %w", err)
	}

	return db, nil
}

func createTables(db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS transactions (
			transaction_id TEXT PRIMARY KEY,
			record_id TEXT NOT NULL,
			customer_id TEXT,
			amount REAL NOT NULL,
			currency TEXT NOT NULL,
			service_type TEXT,
			region TEXT,
			timestamp TEXT NOT NULL,
			status TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_transactions_currency ON transactions(currency)`,

		`CREATE TABLE IF NOT EXISTS charges (
			charge_id TEXT PRIMARY KEY,
			record_id TEXT NOT NULL,
			transaction_id TEXT NOT NULL,
			charge_amount REAL NOT NULL,
			currency TEXT NOT NULL,
			charge_type TEXT,
			applied_timestamp TEXT NOT NULL,
			status TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_charges_transaction ON charges(transaction_id)`,
		`CREATE INDEX IF NOT EXISTS idx_charges_currency ON charges(currency)`,

		`CREATE TABLE IF NOT EXISTS charge_rules (
			id TEXT PRIMARY KEY,
			transaction_type TEXT NOT NULL,
			sub_type TEXT NOT NULL,
			currency TEXT NOT NULL,
			charge_amount REAL NOT NULL,
			charge_type TEXT NOT NULL,
			min_amount REAL,
			max_amount REAL,
			created_at TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_charge_rules_key ON charge_rules(transaction_type, sub_type, currency)`,
	}

	for _, stmt := range stmts {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("exec %q: %w", stmt[:40], err)
		}
	}

	return nil
}
