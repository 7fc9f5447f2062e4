package factual

import (
	"context"
	"strings"

	"github.com/cognicore/factual/pkg/factual/answer"
	"github.com/cognicore/factual/pkg/factual/ingest"
	"github.com/cognicore/factual/pkg/factual/query"
	"github.com/cognicore/factual/pkg/factual/store"
)

// Engine is the main fact engine facade: it owns the fact store and wires
// the statement and question interpreters to it.
type Engine struct {
	store      store.Store
	statements *ingest.Interpreter
	questions  *query.Engine
}

// Options configures an Engine. Store is required; nil interpreters are
// replaced with defaults bound to the same store.
type Options struct {
	Store      store.Store
	Statements *ingest.Interpreter
	Questions  *query.Engine
}

// New creates an Engine with the given dependencies
func New(opts Options) *Engine {
	e := &Engine{
		store:      opts.Store,
		statements: opts.Statements,
		questions:  opts.Questions,
	}
	if e.statements == nil {
		e.statements = ingest.NewInterpreter(opts.Store)
	}
	if e.questions == nil {
		e.questions = query.NewEngine(opts.Store)
	}
	return e
}

// Close cleanly shuts down the engine
func (e *Engine) Close() error {
	return e.store.Close()
}

// Tell interprets a declarative sentence, inserting at most one fact.
func (e *Engine) Tell(ctx context.Context, sentence string) (ingest.Result, error) {
	return e.statements.Interpret(ctx, sentence)
}

// Ask answers an interrogative sentence against the current facts.
func (e *Engine) Ask(ctx context.Context, question string) (answer.Answer, error) {
	return e.questions.Ask(ctx, question)
}

// Query runs a direct pattern lookup against the store, bypassing the
// question interpreter.
func (e *Engine) Query(ctx context.Context, predicate string, pattern []string) ([][]string, error) {
	return e.store.Query(ctx, predicate, pattern)
}

// Dump renders every stored fact grouped by predicate. Output is
// deterministic: predicates sorted by name, facts in insertion order.
func (e *Engine) Dump(ctx context.Context) (string, error) {
	groups, err := e.store.Snapshot(ctx)
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	sb.WriteString("========== FACT DATABASE ==========\n")
	if len(groups) == 0 {
		sb.WriteString("Database is empty.\n")
	}
	for _, group := range groups {
		sb.WriteString("Predicate: ")
		sb.WriteString(group.Predicate)
		sb.WriteString("\n")
		for _, args := range group.Facts {
			fact := store.Fact{Predicate: group.Predicate, Args: args}
			sb.WriteString("  ")
			sb.WriteString(fact.String())
			sb.WriteString("\n")
		}
	}
	sb.WriteString("===================================\n")
	return sb.String(), nil
}
