package query

import (
	"context"
	"reflect"
	"testing"

	"github.com/cognicore/factual/pkg/factual/answer"
	"github.com/cognicore/factual/pkg/factual/store/memstore"
)

// seededEngine returns a question engine over the standard demo facts.
func seededEngine(t *testing.T) *Engine {
	t.Helper()
	ctx := context.Background()
	s := memstore.New()

	facts := []struct {
		predicate string
		args      []string
	}{
		{"parent", []string{"john", "mary"}},
		{"parent", []string{"john", "tom"}},
		{"likes", []string{"john", "pizza"}},
		{"lives_in", []string{"john", "paris"}},
		{"tall", []string{"alice"}},
	}
	for _, f := range facts {
		if err := s.AddFact(ctx, f.predicate, f.args); err != nil {
			t.Fatalf("AddFact: %v", err)
		}
	}
	return NewEngine(s)
}

func ask(t *testing.T, e *Engine, question string) answer.Answer {
	t.Helper()
	ans, err := e.Ask(context.Background(), question)
	if err != nil {
		t.Fatalf("Ask(%q): %v", question, err)
	}
	return ans
}

func TestWhoRelation(t *testing.T) {
	e := seededEngine(t)
	ans := ask(t, e, "Who is the parent of Mary?")

	if ans.Kind != answer.KindList {
		t.Fatalf("kind = %q", ans.Kind)
	}
	if !reflect.DeepEqual(ans.Values, []string{"john"}) {
		t.Errorf("values = %v, want [john]", ans.Values)
	}
	if ans.Probe.Predicate != "parent" {
		t.Errorf("probe predicate = %q", ans.Probe.Predicate)
	}
	if !reflect.DeepEqual(ans.Probe.Pattern, []string{"?", "mary"}) {
		t.Errorf("probe pattern = %v", ans.Probe.Pattern)
	}
}

func TestWhatDoes(t *testing.T) {
	e := seededEngine(t)
	ans := ask(t, e, "What does John like?")

	// The relation comes from the question verbatim: "like" does not
	// match the stored "likes" predicate, so the list is empty. The
	// mismatch is inherited behavior, not a bug.
	if ans.Kind != answer.KindList {
		t.Fatalf("kind = %q, want list", ans.Kind)
	}
	if len(ans.Values) != 0 {
		t.Errorf("values = %v, want none", ans.Values)
	}
	if ans.Probe.Predicate != "like" {
		t.Errorf("probe predicate = %q, want like", ans.Probe.Predicate)
	}
}

func TestWhatDoesMatchesStoredRelation(t *testing.T) {
	e := seededEngine(t)
	ans := ask(t, e, "What does John likes?")

	if !reflect.DeepEqual(ans.Values, []string{"pizza"}) {
		t.Errorf("values = %v, want [pizza]", ans.Values)
	}
}

func TestWhereLives(t *testing.T) {
	e := seededEngine(t)
	ans := ask(t, e, "Where does John live?")

	if !reflect.DeepEqual(ans.Values, []string{"paris"}) {
		t.Errorf("values = %v, want [paris]", ans.Values)
	}
}

func TestYesNoProperty(t *testing.T) {
	e := seededEngine(t)

	ans := ask(t, e, "Is Alice tall?")
	if ans.Kind != answer.KindYesNo || !ans.Yes {
		t.Errorf("expected yes, got %+v", ans)
	}

	ans = ask(t, e, "Is Mary tall?")
	if ans.Kind != answer.KindYesNo || ans.Yes {
		t.Errorf("expected no, got %+v", ans)
	}
}

func TestYesNoRelation(t *testing.T) {
	e := seededEngine(t)

	ans := ask(t, e, "Is John the parent of Tom?")
	if !ans.Yes {
		t.Errorf("expected yes, got %+v", ans)
	}
	if ans.Probe.Predicate != "parent" {
		t.Errorf("probe predicate = %q, want parent", ans.Probe.Predicate)
	}
	if !reflect.DeepEqual(ans.Probe.Pattern, []string{"john", "tom"}) {
		t.Errorf("probe pattern = %v", ans.Probe.Pattern)
	}

	ans = ask(t, e, "Is Tom the parent of John?")
	if ans.Yes {
		t.Errorf("expected no, got %+v", ans)
	}
}

func TestNoMatchesIsNotUnrecognized(t *testing.T) {
	e := seededEngine(t)
	ans := ask(t, e, "Who is the parent of Zelda?")

	if ans.Kind != answer.KindList {
		t.Fatalf("kind = %q, want list", ans.Kind)
	}
	if len(ans.Values) != 0 {
		t.Errorf("values = %v, want none", ans.Values)
	}
}

func TestUnrecognizedQuestion(t *testing.T) {
	e := seededEngine(t)
	ans := ask(t, e, "How many roads must a man walk down?")

	if ans.Kind != answer.KindUnrecognized {
		t.Errorf("kind = %q, want unrecognized", ans.Kind)
	}
}

func TestWhoRelationWithoutOfIsUnrecognized(t *testing.T) {
	e := seededEngine(t)
	ans := ask(t, e, "Who is the parent?")

	if ans.Kind != answer.KindUnrecognized {
		t.Errorf("kind = %q, want unrecognized", ans.Kind)
	}
}

func TestAskIsReadOnly(t *testing.T) {
	e := seededEngine(t)
	ask(t, e, "Who is the parent of Mary?")

	groups, err := e.store.Snapshot(context.Background())
	if err != nil {
		t.Fatalf("Snapshot: %v", err)
	}
	total := 0
	for _, g := range groups {
		total += len(g.Facts)
	}
	if total != 5 {
		t.Errorf("expected 5 facts after asking, got %d", total)
	}
}
