package answer

import (
	"reflect"
	"testing"
)

func TestParseJSONishPassthrough(t *testing.T) {
	// anything not bracketed both ends must come back untouched
	inputs := []string{
		"plain text",
		"[unclosed",
		"unopened]",
		"{half",
		"1, 2, 3",
		"",
		"  [1,2]", // leading whitespace: not trimmed, stays a plain string
	}
	for _, in := range inputs {
		got := ParseJSONish(in)
		if got.Parsed {
			t.Fatalf("ParseJSONish(%q) unexpectedly parsed", in)
		}
		if got.Value != in {
			t.Fatalf("ParseJSONish(%q) altered passthrough value: %v", in, got.Value)
		}
	}
}

func TestParseJSONishMalformed(t *testing.T) {
	// looks like JSON, fails to decode: degrade to original string
	inputs := []string{"[1, 2,]", "{bad}", "[}", "{\"a\": }"}
	for _, in := range inputs {
		got := ParseJSONish(in)
		if got.Parsed || got.Value != in {
			t.Fatalf("ParseJSONish(%q) = %+v, want passthrough", in, got)
		}
	}
}

func TestParseJSONishValid(t *testing.T) {
	tests := []struct {
		in   string
		want interface{}
	}{
		{`[1,2,3]`, []interface{}{float64(1), float64(2), float64(3)}},
		{`["a","b"]`, []interface{}{"a", "b"}},
		{`{"k":"v"}`, map[string]interface{}{"k": "v"}},
		{`[]`, []interface{}{}},
	}
	for _, tc := range tests {
		got := ParseJSONish(tc.in)
		if !got.Parsed {
			t.Fatalf("ParseJSONish(%q) did not parse", tc.in)
		}
		if !reflect.DeepEqual(got.Value, tc.want) {
			t.Fatalf("ParseJSONish(%q) = %v, want %v", tc.in, got.Value, tc.want)
		}
	}
}

func TestParseJSONishNonString(t *testing.T) {
	for _, in := range []interface{}{nil, 42, 3.14, true, []interface{}{1}} {
		got := ParseJSONish(in)
		if got.Parsed {
			t.Fatalf("ParseJSONish(%v) unexpectedly parsed", in)
		}
		if !reflect.DeepEqual(got.Value, in) {
			t.Fatalf("ParseJSONish(%v) altered value: %v", in, got.Value)
		}
	}
}
