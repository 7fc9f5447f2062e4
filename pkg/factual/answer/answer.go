package answer

import (
	"crypto/rand"
	"strings"

	"github.com/oklog/ulid/v2"
)

// Kind classifies how an answer renders
type Kind string

const (
	KindList         Kind = "list"
	KindYesNo        Kind = "yesno"
	KindUnrecognized Kind = "unrecognized"
)

// Probe records the store lookup behind an answer, for transparency into
// how the answer was derived.
type Probe struct {
	Predicate string
	Pattern   []string
}

// Answer is a structured query result
type Answer struct {
	ID     string
	Kind   Kind
	Label  string
	Values []string
	Yes    bool
	Probe  Probe
}

// Builder constructs answers with monotonic ULID identifiers
type Builder struct {
	entropy *ulid.MonotonicEntropy
}

// New creates a new answer builder
func New() *Builder {
	return &Builder{
		entropy: ulid.Monotonic(rand.Reader, 0),
	}
}

func (b *Builder) newID() string {
	return ulid.MustNew(ulid.Now(), b.entropy).String()
}

// List builds an answer enumerating one extracted slot value per matching
// fact, in store order.
func (b *Builder) List(label string, probe Probe, values []string) Answer {
	return Answer{
		ID:     b.newID(),
		Kind:   KindList,
		Label:  label,
		Values: values,
		Probe:  probe,
	}
}

// YesNo builds a boolean answer.
func (b *Builder) YesNo(probe Probe, yes bool) Answer {
	return Answer{
		ID:    b.newID(),
		Kind:  KindYesNo,
		Yes:   yes,
		Probe: probe,
	}
}

// Unrecognized builds the fallback answer for questions that match no
// pattern or cannot be fully extracted.
func (b *Builder) Unrecognized() Answer {
	return Answer{
		ID:   b.newID(),
		Kind: KindUnrecognized,
	}
}

// Render produces the console form of the answer. A matched query always
// renders either its value list or an explicit no-matches line.
func (a Answer) Render() string {
	switch a.Kind {
	case KindYesNo:
		if a.Yes {
			return "Answer: Yes"
		}
		return "Answer: No (or unknown)"
	case KindList:
		if len(a.Values) == 0 {
			return "Answer: No matches found."
		}
		var sb strings.Builder
		sb.WriteString(a.Label)
		sb.WriteString(":")
		for _, v := range a.Values {
			sb.WriteString("\n  - ")
			sb.WriteString(v)
		}
		return sb.String()
	default:
		return "Could not understand query format."
	}
}
