package answer

import "testing"

func TestMatchShortAnswer(t *testing.T) {
	tests := []struct {
		name     string
		accepted []string
		got      string
		want     bool
	}{
		{name: "case insensitive", accepted: []string{"len", " LEN ", "length"}, got: "Len", want: true},
		{name: "surrounding whitespace", accepted: []string{"42"}, got: "  42  ", want: true},
		{name: "trailing whitespace and case", accepted: []string{"True"}, got: "true ", want: true},
		{name: "no substring matching", accepted: []string{"cat"}, got: "cats", want: false},
		{name: "inner whitespace collapsed", accepted: []string{"hello world"}, got: "hello   world", want: true},
		{name: "tabs and newlines collapse too", accepted: []string{"a b c"}, got: "a\tb\nc", want: true},
		{name: "any accepted answer matches", accepted: []string{"first", "second"}, got: "SECOND", want: true},
		{name: "empty accepted list", accepted: nil, got: "anything", want: false},
		{name: "empty answer against empty accepted", accepted: []string{""}, got: "   ", want: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := MatchShortAnswer(tc.accepted, tc.got); got != tc.want {
				t.Fatalf("MatchShortAnswer(%v, %q) = %v, want %v", tc.accepted, tc.got, got, tc.want)
			}
		})
	}
}
