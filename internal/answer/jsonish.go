package answer

import (
	"encoding/json"
	"strings"
)

// JSONish is the result of a best-effort parse of an untrusted cell or field
// value. Exactly one of the two cases holds: Parsed carries the decoded
// structure, otherwise Value is the original input untouched.
type JSONish struct {
	Parsed bool
	Value  interface{}
}

// ParseJSONish attempts a JSON decode only for strings that look like an
// array or object (bracketed both ends). Decode failure degrades to
// passthrough; any other input passes through. Never returns an error —
// spreadsheet cells and legacy payload fields are heterogeneous and a parse
// failure is an expected case, not a fault.
func ParseJSONish(v interface{}) JSONish {
	s, ok := v.(string)
	if !ok {
		return JSONish{Value: v}
	}

	looksJSON := (strings.HasPrefix(s, "[") && strings.HasSuffix(s, "]")) ||
		(strings.HasPrefix(s, "{") && strings.HasSuffix(s, "}"))
	if !looksJSON {
		return JSONish{Value: s}
	}

	var decoded interface{}
	if err := json.Unmarshal([]byte(s), &decoded); err != nil {
		return JSONish{Value: s}
	}
	return JSONish{Parsed: true, Value: decoded}
}
