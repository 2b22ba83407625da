// Package problemkind owns the canonical problem-kind tags and the single
// coercion gate that every switch on a kind tag must go through. Raw payloads
// and spreadsheet rows spell the tag inconsistently (legacy spellings, stray
// whitespace, numbers where strings belong); nothing outside this package may
// branch on an uncoerced value.
package problemkind

import (
	"fmt"
	"strings"
)

type Kind string

// Canonical tags, in the fixed grouping order used by the bulk-import
// pipeline and teacher dashboards.
const (
	Coding         Kind = "코딩"
	Debugging      Kind = "디버깅"
	MultipleChoice Kind = "객관식"
	Subjective     Kind = "주관식"
	ShortAnswer    Kind = "단답형"
)

// None means the input carried no usable tag at all.
const None Kind = ""

// aliases maps legacy spellings seen in live data to canonical tags.
// 단답식 is the one spelling known to exist in old rows; more can be
// registered at startup without touching the coercion logic.
var aliases = map[string]Kind{
	"단답식": ShortAnswer,
}

// RegisterAlias adds a legacy spelling. Call during startup only; the table
// is read without locking afterwards.
func RegisterAlias(raw string, canonical Kind) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return
	}
	aliases[raw] = canonical
}

// Coerce stringifies and trims an arbitrary raw tag value, applies the alias
// table, and passes every other non-empty string through unchanged. It does
// NOT validate against the closed set: callers must treat an invalid result
// as an unsupported kind at the render boundary, never as a crash.
func Coerce(v interface{}) Kind {
	if v == nil {
		return None
	}

	var s string
	switch t := v.(type) {
	case string:
		s = t
	case Kind:
		s = string(t)
	case fmt.Stringer:
		s = t.String()
	default:
		s = fmt.Sprintf("%v", t)
	}

	s = strings.TrimSpace(s)
	if s == "" {
		return None
	}
	if canonical, ok := aliases[s]; ok {
		return canonical
	}
	return Kind(s)
}

// Valid reports membership in the closed five-kind set.
func (k Kind) Valid() bool {
	switch k {
	case Coding, Debugging, MultipleChoice, Subjective, ShortAnswer:
		return true
	}
	return false
}

// All returns the five kinds in grouping order.
func All() []Kind {
	return []Kind{Coding, Debugging, MultipleChoice, Subjective, ShortAnswer}
}
