package problemkind

import "testing"

func TestCoerce(t *testing.T) {
	tests := []struct {
		name string
		in   interface{}
		want Kind
	}{
		{name: "canonical passes through", in: "코딩", want: Coding},
		{name: "trims whitespace", in: "  객관식  ", want: MultipleChoice},
		{name: "legacy short-answer spelling", in: "단답식", want: ShortAnswer},
		{name: "legacy spelling with whitespace", in: " 단답식 ", want: ShortAnswer},
		{name: "unknown string passes through unvalidated", in: "알수없음", want: Kind("알수없음")},
		{name: "nil is none", in: nil, want: None},
		{name: "empty string is none", in: "", want: None},
		{name: "whitespace only is none", in: "   ", want: None},
		{name: "number is stringified", in: 42, want: Kind("42")},
		{name: "kind value passes through", in: Debugging, want: Debugging},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Coerce(tc.in); got != tc.want {
				t.Fatalf("Coerce(%v) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestCoerceIdempotent(t *testing.T) {
	inputs := []string{"코딩", "디버깅", "객관식", "주관식", "단답형", "단답식", "알수없음", "", "  "}
	for _, in := range inputs {
		once := Coerce(in)
		twice := Coerce(once)
		if once != twice {
			t.Fatalf("Coerce not idempotent for %q: first %q, second %q", in, once, twice)
		}
	}
}

func TestRegisterAlias(t *testing.T) {
	RegisterAlias("coding", Coding)
	defer delete(aliases, "coding")

	if got := Coerce("coding"); got != Coding {
		t.Fatalf("registered alias not applied: got %q", got)
	}
}

func TestValid(t *testing.T) {
	for _, k := range All() {
		if !k.Valid() {
			t.Fatalf("canonical kind %q reported invalid", k)
		}
	}
	for _, k := range []Kind{None, "단답식", "essay", "알수없음"} {
		if k.Valid() {
			t.Fatalf("non-canonical kind %q reported valid", k)
		}
	}
}
