package query

import (
	"context"
	"strings"

	"github.com/cognicore/factual/pkg/factual/answer"
	"github.com/cognicore/factual/pkg/factual/ingest"
	"github.com/cognicore/factual/pkg/factual/store"
)

// Engine answers the supported question shapes against a fact store. All
// operations are read-only with respect to the store.
type Engine struct {
	store    store.Store
	answers  *answer.Builder
	patterns []pattern
}

// pattern pairs a question-shape check with its lookup. Patterns are
// evaluated top to bottom; the first whose applies returns true claims
// the question.
type pattern struct {
	name    string
	applies func(folded string) bool
	ask     func(ctx context.Context, e *Engine, folded string) (answer.Answer, error)
}

// NewEngine creates a question engine bound to the given store.
func NewEngine(s store.Store) *Engine {
	return &Engine{
		store:   s,
		answers: answer.New(),
		patterns: []pattern{
			{
				name: "who-relation",
				applies: func(folded string) bool {
					return strings.Contains(folded, "who is the")
				},
				ask: askWhoRelation,
			},
			{
				name: "what-does",
				applies: func(folded string) bool {
					return strings.Contains(folded, "what does")
				},
				ask: askWhatDoes,
			},
			{
				name: "where-lives",
				applies: func(folded string) bool {
					return strings.Contains(folded, "where does") && strings.Contains(folded, "live")
				},
				ask: askWhereLives,
			},
			{
				name: "yes-no",
				applies: func(folded string) bool {
					return strings.HasPrefix(folded, "is ")
				},
				ask: askYesNo,
			},
		},
	}
}

// Ask classifies a question, derives a store lookup with wildcards for
// the unknown slot, and returns a rendered-ready answer. Questions that
// match no pattern, or match one but cannot be fully extracted, come back
// unrecognized rather than silent.
func (e *Engine) Ask(ctx context.Context, question string) (answer.Answer, error) {
	folded := strings.ToLower(question)
	for _, p := range e.patterns {
		if p.applies(folded) {
			return p.ask(ctx, e, folded)
		}
	}
	return e.answers.Unrecognized(), nil
}

// askWhoRelation handles "Who is the R of X?" → r(?, x), answering with
// the first slot of each match. The relation is the substring between
// "is the " and " of"; the object is the first token after "of ".
func askWhoRelation(ctx context.Context, e *Engine, folded string) (answer.Answer, error) {
	start := strings.Index(folded, "is the ")
	if start < 0 {
		return e.answers.Unrecognized(), nil
	}
	start += len("is the ")
	end := strings.Index(folded[start:], " of")
	if end < 0 {
		return e.answers.Unrecognized(), nil
	}
	relation := ingest.NormalizeAtom(folded[start : start+end])

	ofPos := strings.Index(folded, "of ")
	if ofPos < 0 || relation == "" {
		return e.answers.Unrecognized(), nil
	}
	rest := strings.Fields(folded[ofPos+len("of "):])
	if len(rest) == 0 {
		return e.answers.Unrecognized(), nil
	}
	object := ingest.NormalizeAtom(rest[0])

	probe := answer.Probe{Predicate: relation, Pattern: []string{store.Wildcard, object}}
	return e.list(ctx, "Who", probe, 0)
}

// askWhatDoes handles "What does X R?" → r(x, ?), answering with the
// second slot of each match.
func askWhatDoes(ctx context.Context, e *Engine, folded string) (answer.Answer, error) {
	pos := strings.Index(folded, "what does ")
	if pos < 0 {
		return e.answers.Unrecognized(), nil
	}
	words := strings.Fields(folded[pos+len("what does "):])
	if len(words) < 2 {
		return e.answers.Unrecognized(), nil
	}
	subject := ingest.NormalizeAtom(words[0])
	relation := ingest.NormalizeAtom(words[1])

	probe := answer.Probe{Predicate: relation, Pattern: []string{subject, store.Wildcard}}
	return e.list(ctx, "Answer", probe, 1)
}

// askWhereLives handles "Where does X live?" → lives_in(x, ?), answering
// with the location slot.
func askWhereLives(ctx context.Context, e *Engine, folded string) (answer.Answer, error) {
	pos := strings.Index(folded, "where does ")
	if pos < 0 {
		return e.answers.Unrecognized(), nil
	}
	words := strings.Fields(folded[pos+len("where does "):])
	if len(words) == 0 {
		return e.answers.Unrecognized(), nil
	}
	subject := ingest.NormalizeAtom(words[0])

	probe := answer.Probe{Predicate: "lives_in", Pattern: []string{subject, store.Wildcard}}
	return e.list(ctx, "Location", probe, 1)
}

// askYesNo handles "Is X P?" → p(x), "Is X the R of Y?" → r(x, y) and
// the generic "Is X R Y?" → r(x, y). Tokens beyond the consumed ones are
// ignored.
func askYesNo(ctx context.Context, e *Engine, folded string) (answer.Answer, error) {
	var words []string
	for _, w := range strings.Fields(folded) {
		words = append(words, ingest.NormalizeAtom(w))
	}

	var probe answer.Probe
	switch {
	case len(words) == 3:
		probe = answer.Probe{Predicate: words[2], Pattern: []string{words[1]}}
	case len(words) >= 6 && words[2] == "the" && words[4] == "of":
		// Mirrors the "X is the R of Y" statement shape, so facts told
		// that way answer their own yes/no question.
		probe = answer.Probe{Predicate: words[3], Pattern: []string{words[1], words[5]}}
	case len(words) >= 4:
		probe = answer.Probe{Predicate: words[2], Pattern: []string{words[1], words[3]}}
	default:
		return e.answers.Unrecognized(), nil
	}

	results, err := e.store.Query(ctx, probe.Predicate, probe.Pattern)
	if err != nil {
		return answer.Answer{}, err
	}
	return e.answers.YesNo(probe, len(results) > 0), nil
}

// list runs the probe and extracts one slot per matching fact, in store
// order.
func (e *Engine) list(ctx context.Context, label string, probe answer.Probe, slot int) (answer.Answer, error) {
	results, err := e.store.Query(ctx, probe.Predicate, probe.Pattern)
	if err != nil {
		return answer.Answer{}, err
	}
	values := make([]string, 0, len(results))
	for _, args := range results {
		if slot < len(args) {
			values = append(values, args[slot])
		}
	}
	return e.answers.List(label, probe, values), nil
}
