package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	_ "modernc.org/sqlite"

	"github.com/cognicore/factual/pkg/factual/internalerr"
	"github.com/cognicore/factual/pkg/factual/store"
)

// sqliteStore implements store.Store on a SQLite database. It exists for
// parity with the in-memory backend, not for durability: the default DSN
// is ":memory:", so the fact table lives and dies with the process.
type sqliteStore struct {
	db *sql.DB
}

// Open opens a SQLite-backed store. An empty dsn opens an in-memory
// database.
func Open(ctx context.Context, dsn string) (store.Store, error) {
	if dsn == "" {
		dsn = ":memory:"
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", internalerr.ErrStoreUnavailable, err)
	}

	// The in-memory database disappears if the pool opens a second
	// connection, so pin it to one.
	db.SetMaxOpenConns(1)

	if err := initSchema(ctx, db); err != nil {
		db.Close()
		return nil, fmt.Errorf("%w: %v", internalerr.ErrStoreUnavailable, err)
	}

	return &sqliteStore{db: db}, nil
}

// Close closes the database connection
func (s *sqliteStore) Close() error {
	return s.db.Close()
}

// initSchema creates the fact table if it doesn't exist
func initSchema(ctx context.Context, db *sql.DB) error {
	schema := `
CREATE TABLE IF NOT EXISTS facts (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	predicate TEXT NOT NULL,
	arity INTEGER NOT NULL,
	args TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_facts_predicate ON facts(predicate, arity);
`
	_, err := db.ExecContext(ctx, schema)
	return err
}

// AddFact appends args under the case-folded predicate key.
func (s *sqliteStore) AddFact(ctx context.Context, predicate string, args []string) error {
	encoded, err := json.Marshal(args)
	if err != nil {
		return err
	}
	_, err = s.db.ExecContext(ctx,
		"INSERT INTO facts (predicate, arity, args) VALUES (?, ?, ?)",
		store.FoldPredicate(predicate), len(args), string(encoded))
	return err
}

// Query selects candidate rows by predicate and arity in insertion order
// and applies the shared wildcard matcher, so results are identical to the
// in-memory backend's.
func (s *sqliteStore) Query(ctx context.Context, predicate string, pattern []string) ([][]string, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT args FROM facts WHERE predicate = ? AND arity = ? ORDER BY id",
		store.FoldPredicate(predicate), len(pattern))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results [][]string
	for rows.Next() {
		var encoded string
		if err := rows.Scan(&encoded); err != nil {
			return nil, err
		}
		var args []string
		if err := json.Unmarshal([]byte(encoded), &args); err != nil {
			return nil, err
		}
		if store.Match(pattern, args) {
			results = append(results, args)
		}
	}
	return results, rows.Err()
}

// Snapshot returns all predicates sorted by name, facts in insertion order.
func (s *sqliteStore) Snapshot(ctx context.Context) ([]store.PredicateFacts, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT predicate, args FROM facts ORDER BY predicate, id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []store.PredicateFacts
	for rows.Next() {
		var predicate, encoded string
		if err := rows.Scan(&predicate, &encoded); err != nil {
			return nil, err
		}
		var args []string
		if err := json.Unmarshal([]byte(encoded), &args); err != nil {
			return nil, err
		}
		if len(out) == 0 || out[len(out)-1].Predicate != predicate {
			out = append(out, store.PredicateFacts{Predicate: predicate})
		}
		group := &out[len(out)-1]
		group.Facts = append(group.Facts, args)
	}
	return out, rows.Err()
}
