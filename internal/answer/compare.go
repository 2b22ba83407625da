package answer

import "strings"

// canonicalText collapses every whitespace run to a single space, trims, and
// lowercases. strings.Fields handles both the collapsing and the trimming.
func canonicalText(s string) string {
	return strings.ToLower(strings.Join(strings.Fields(s), " "))
}

// MatchShortAnswer reports whether the learner's answer equals at least one
// accepted answer after both sides are canonicalized. Equality is exact —
// no substring or fuzzy matching. This is the single client-side
// correctness rule for short-answer problems and its insensitivity to case
// and whitespace must not drift.
func MatchShortAnswer(accepted []string, got string) bool {
	want := canonicalText(got)
	for _, a := range accepted {
		if canonicalText(a) == want {
			return true
		}
	}
	return false
}
