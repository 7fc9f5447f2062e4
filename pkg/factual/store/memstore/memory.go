package memstore

import (
	"context"
	"sort"
	"sync"

	"github.com/cognicore/factual/pkg/factual/store"
)

// Store is the in-memory implementation of store.Store. A single lock
// guards every operation; the store is append-only and lives for the
// process duration.
type Store struct {
	mu    sync.RWMutex
	facts map[string][][]string
}

// New creates an empty in-memory store.
func New() *Store {
	return &Store{
		facts: make(map[string][][]string),
	}
}

// Close implements store.Store.
func (s *Store) Close() error { return nil }

// AddFact appends args under the case-folded predicate key.
func (s *Store) AddFact(ctx context.Context, predicate string, args []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := store.FoldPredicate(predicate)
	s.facts[key] = append(s.facts[key], copyArgs(args))
	return nil
}

// Query returns matching tuples in insertion order. A fact whose arity
// differs from the pattern's is skipped, not the rest of the scan.
func (s *Store) Query(ctx context.Context, predicate string, pattern []string) ([][]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var results [][]string
	for _, args := range s.facts[store.FoldPredicate(predicate)] {
		if len(args) != len(pattern) {
			continue
		}
		if store.Match(pattern, args) {
			results = append(results, copyArgs(args))
		}
	}
	return results, nil
}

// Snapshot returns all predicates sorted by name, facts in insertion order.
func (s *Store) Snapshot(ctx context.Context) ([]store.PredicateFacts, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	keys := make([]string, 0, len(s.facts))
	for key := range s.facts {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	out := make([]store.PredicateFacts, 0, len(keys))
	for _, key := range keys {
		group := store.PredicateFacts{Predicate: key}
		for _, args := range s.facts[key] {
			group.Facts = append(group.Facts, copyArgs(args))
		}
		out = append(out, group)
	}
	return out, nil
}

func copyArgs(args []string) []string {
	out := make([]string, len(args))
	copy(out, args)
	return out
}
