package ingest

import (
	"context"
	"strings"

	"github.com/cognicore/factual/pkg/factual/store"
)

// Result reports the outcome of interpreting one declarative sentence.
// At most one fact is inserted per sentence; an unparsed sentence is a
// diagnostic, not an error.
type Result struct {
	Parsed bool
	Rule   string
	Fact   store.Fact
}

// Rule pairs a cheap sentence-level check with a token-level extractor.
// Rules are evaluated top to bottom and the first whose Applies returns
// true claims the sentence, whether or not its extractor then finds a
// fact.
type Rule struct {
	Name    string
	Applies func(folded string, tokens []string) bool
	Extract func(tokens []string) (store.Fact, bool)
}

// Interpreter converts declarative sentences into facts and inserts them
// into the bound store.
type Interpreter struct {
	store store.Store
	rules []Rule
}

// NewInterpreter creates an interpreter with the standard rule set, bound
// to the given store.
func NewInterpreter(s store.Store) *Interpreter {
	return &Interpreter{store: s, rules: defaultRules()}
}

// Interpret classifies a sentence, extracts at most one fact and inserts
// it. The returned Result says which rule claimed the sentence and
// whether a fact was produced.
func (in *Interpreter) Interpret(ctx context.Context, sentence string) (Result, error) {
	tokens := SplitWords(sentence)
	if len(tokens) == 0 {
		return Result{}, nil
	}

	folded := strings.ToLower(sentence)
	for _, rule := range in.rules {
		if !rule.Applies(folded, tokens) {
			continue
		}
		fact, ok := rule.Extract(tokens)
		if !ok {
			return Result{Rule: rule.Name}, nil
		}
		if err := in.store.AddFact(ctx, fact.Predicate, fact.Args); err != nil {
			return Result{}, err
		}
		return Result{Parsed: true, Rule: rule.Name, Fact: fact}, nil
	}

	return Result{}, nil
}

// defaultRules returns the statement patterns in evaluation order:
// location, relation-of, property, generic triple.
func defaultRules() []Rule {
	return []Rule{
		{
			Name: "lives-in",
			Applies: func(folded string, tokens []string) bool {
				return strings.Contains(folded, "lives in")
			},
			Extract: extractLivesIn,
		},
		{
			Name: "relation-of",
			Applies: func(folded string, tokens []string) bool {
				return strings.Contains(folded, "is the") && strings.Contains(folded, " of ")
			},
			Extract: extractRelation,
		},
		{
			Name: "property",
			Applies: func(folded string, tokens []string) bool {
				return strings.Contains(folded, " is ") && len(tokens) == 3
			},
			Extract: extractProperty,
		},
		{
			Name: "triple",
			Applies: func(folded string, tokens []string) bool {
				return len(tokens) >= 3
			},
			Extract: extractRelation,
		},
	}
}

// extractLivesIn handles "X lives in Y" → lives_in(x, y). The pattern
// needs a token before "lives" and one after "in"; otherwise no fact.
func extractLivesIn(tokens []string) (store.Fact, bool) {
	for i, tok := range tokens {
		if strings.ToLower(tok) != "lives" {
			continue
		}
		if i < 1 || i+2 >= len(tokens) {
			continue
		}
		if strings.ToLower(tokens[i+1]) != "in" {
			continue
		}
		return store.Fact{
			Predicate: "lives_in",
			Args:      []string{NormalizeAtom(tokens[i-1]), NormalizeAtom(tokens[i+2])},
		}, true
	}
	return store.Fact{}, false
}

// extractRelation handles "X is the R of Y" → r(x, y), falling back to
// the generic triple "S R O" → r(s, o) when the exact is/the/R/of token
// run is not present. Extra determiners ("is the biological parent of")
// deliberately miss the run and take the fallback.
func extractRelation(tokens []string) (store.Fact, bool) {
	for i, tok := range tokens {
		if strings.ToLower(tok) != "is" {
			continue
		}
		if i < 1 || i+4 >= len(tokens) {
			continue
		}
		if strings.ToLower(tokens[i+1]) != "the" || strings.ToLower(tokens[i+3]) != "of" {
			continue
		}
		return store.Fact{
			Predicate: NormalizeAtom(tokens[i+2]),
			Args:      []string{NormalizeAtom(tokens[i-1]), NormalizeAtom(tokens[i+4])},
		}, true
	}

	if len(tokens) >= 3 {
		return store.Fact{
			Predicate: NormalizeAtom(tokens[1]),
			Args:      []string{NormalizeAtom(tokens[0]), NormalizeAtom(tokens[2])},
		}, true
	}
	return store.Fact{}, false
}

// extractProperty handles the exactly-three-token "X is P" → p(x). The
// middle token must literally be "is".
func extractProperty(tokens []string) (store.Fact, bool) {
	if len(tokens) != 3 || strings.ToLower(tokens[1]) != "is" {
		return store.Fact{}, false
	}
	return store.Fact{
		Predicate: NormalizeAtom(tokens[2]),
		Args:      []string{NormalizeAtom(tokens[0])},
	}, true
}
