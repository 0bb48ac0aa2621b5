// Package store persists extracted transactions in SQLite. The table
// carries a uniqueness constraint over the transaction content, so
// re-importing a statement is a safe no-op for rows already present.
package store

import (
	"database/sql"
	_ "embed"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"

	"github.com/example/visa-extractor/pkg/transaction"
)

//go:embed schema.sql
var schema string

type Store struct {
	*sql.DB
}

// Open opens or creates the database at the given path.
func Open(dbPath string) (*Store, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("ping database: %w", err)
	}

	return &Store{db}, nil
}

// Init creates the transactions table and its indexes if they do not
// exist. Safe to call on every run.
func (s *Store) Init() error {
	if _, err := s.Exec(schema); err != nil {
		return fmt.Errorf("execute schema: %w", err)
	}
	return nil
}

// InsertBatch inserts the transactions of one statement inside a single
// SQL transaction. Rows violating the uniqueness constraint are counted
// as skipped, not errors. Returns (imported, skipped).
func (s *Store) InsertBatch(txs []transaction.Transaction) (imported, skipped int, err error) {
	dbTx, err := s.Begin()
	if err != nil {
		return 0, 0, fmt.Errorf("begin batch: %w", err)
	}
	defer dbTx.Rollback()

	stmt, err := dbTx.Prepare(`
		INSERT OR IGNORE INTO transactions
		(entry_date, purchase_date, merchant, category, amount, is_credit, card_holder, source_file)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return 0, 0, fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, t := range txs {
		var category any
		if t.Category != "" {
			category = t.Category
		}
		res, err := stmt.Exec(
			t.EntryDate, t.PurchaseDate, t.Merchant, category,
			t.Amount, t.IsCredit, t.CardHolder, t.SourceFile,
		)
		if err != nil {
			return 0, 0, fmt.Errorf("insert transaction: %w", err)
		}
		n, err := res.RowsAffected()
		if err != nil {
			return 0, 0, fmt.Errorf("rows affected: %w", err)
		}
		if n == 0 {
			skipped++
		} else {
			imported++
		}
	}

	if err := dbTx.Commit(); err != nil {
		return 0, 0, fmt.Errorf("commit batch: %w", err)
	}
	return imported, skipped, nil
}

// Summary describes the whole store.
type Summary struct {
	Count      int
	NetTotal   float64 // charges minus credits
	FirstEntry string
	LastEntry  string
}

// Summarize returns row count, signed total and entry-date range over
// all stored transactions.
func (s *Store) Summarize() (*Summary, error) {
	var sum Summary

	err := s.QueryRow(`
		SELECT COUNT(*),
		       COALESCE(SUM(CASE WHEN is_credit THEN -amount ELSE amount END), 0),
		       COALESCE(MIN(entry_date), ''),
		       COALESCE(MAX(entry_date), '')
		FROM transactions
	`).Scan(&sum.Count, &sum.NetTotal, &sum.FirstEntry, &sum.LastEntry)
	if err != nil {
		return nil, fmt.Errorf("query summary: %w", err)
	}
	return &sum, nil
}
