package store

import (
	"context"
	"strings"
)

// Wildcard is the reserved pattern atom that matches any stored atom.
// A fact argument literally equal to "?" cannot be told apart from a
// wildcard at query time; "?" is therefore a reserved atom.
const Wildcard = "?"

// Store is the main interface for recording and querying ground facts
type Store interface {
	Close() error

	// AddFact appends args to the sequence stored under predicate,
	// creating the sequence if absent. The predicate key is case-folded.
	// Arity is not validated and duplicates are kept.
	AddFact(ctx context.Context, predicate string, args []string) error

	// Query returns the argument tuples under predicate whose arity equals
	// the pattern's and whose atoms match it position by position, in
	// insertion order. An unknown predicate yields an empty result.
	Query(ctx context.Context, predicate string, pattern []string) ([][]string, error)

	// Snapshot returns every predicate and its facts, predicates sorted by
	// name, facts in insertion order.
	Snapshot(ctx context.Context) ([]PredicateFacts, error)
}

// Fact is a ground predicate application
type Fact struct {
	Predicate string
	Args      []string
}

// String renders the fact as predicate(arg1, arg2)
func (f Fact) String() string {
	return f.Predicate + "(" + strings.Join(f.Args, ", ") + ")"
}

// PredicateFacts groups the facts stored under one predicate
type PredicateFacts struct {
	Predicate string
	Facts     [][]string
}

// Match reports whether args satisfies pattern: equal arity and, per
// position, either the wildcard or case-insensitive equality.
func Match(pattern, args []string) bool {
	if len(args) != len(pattern) {
		return false
	}
	for i, p := range pattern {
		if p == Wildcard {
			continue
		}
		if !strings.EqualFold(p, args[i]) {
			return false
		}
	}
	return true
}

// FoldPredicate normalizes a predicate name to its storage key.
func FoldPredicate(predicate string) string {
	return strings.ToLower(predicate)
}
