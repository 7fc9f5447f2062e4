package ingest

import (
	"reflect"
	"testing"
)

func TestSplitWords(t *testing.T) {
	cases := []struct {
		in   string
		want []string
	}{
		{"John likes pizza", []string{"John", "likes", "pizza"}},
		{"  John   likes  pizza ", []string{"John", "likes", "pizza"}},
		{"", nil},
		{"   ", nil},
		{"one", []string{"one"}},
	}

	for _, tc := range cases {
		got := SplitWords(tc.in)
		if !reflect.DeepEqual(got, tc.want) {
			t.Errorf("SplitWords(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestNormalizeAtom(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Mary?", "mary"},
		{"Paris.", "paris"},
		{"Tom!?...", "tom"},
		{"John", "john"},
		{"...", ""},
		{"", ""},
	}

	for _, tc := range cases {
		if got := NormalizeAtom(tc.in); got != tc.want {
			t.Errorf("NormalizeAtom(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
