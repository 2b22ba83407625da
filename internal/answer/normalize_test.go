package answer

import (
	"reflect"
	"testing"

	"codingclass_backend/internal/problemkind"
)

func TestNormalizeCodingFieldPriority(t *testing.T) {
	tests := []struct {
		name     string
		rec      Record
		wantCode string
		wantLang string
	}{
		{
			name:     "primary fields",
			rec:      rec("problemType", "코딩", "submitted_code", "print(1)", "code_language", "python"),
			wantCode: "print(1)", wantLang: "python",
		},
		{
			name:     "code and language fallbacks",
			rec:      rec("problemType", "코딩", "code", "x=1", "language", "python"),
			wantCode: "x=1", wantLang: "python",
		},
		{
			name: "codes collection takes first string code",
			rec: rec("problemType", "코딩", "codes", []interface{}{
				map[string]interface{}{"language": "c", "code": nil},
				map[string]interface{}{"language": "python", "code": "pass"},
			}, "lang", "python"),
			wantCode: "pass", wantLang: "python",
		},
		{
			name:     "most obscure legacy name answer_code",
			rec:      rec("problemType", "코딩", "answer_code", "ans()"),
			wantCode: "ans()", wantLang: "",
		},
		{
			name: "nested answer object",
			rec: rec("problemType", "코딩", "answer", map[string]interface{}{
				"code": "nested()", "language": "go",
			}),
			wantCode: "nested()", wantLang: "go",
		},
		{
			name:     "entirely absent degrades to empty strings",
			rec:      rec("problemType", "코딩"),
			wantCode: "", wantLang: "",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			n := Normalize(tc.rec, problemkind.Coding)
			if n.Code != tc.wantCode || n.Language != tc.wantLang {
				t.Fatalf("got code=%q lang=%q, want code=%q lang=%q", n.Code, n.Language, tc.wantCode, tc.wantLang)
			}
		})
	}
}

// The alias round-trip property: the most obscure legacy field name yields
// the same canonical shape as the primary one, for each kind.
func TestNormalizeAliasRoundTrip(t *testing.T) {
	tests := []struct {
		name    string
		primary Record
		legacy  Record
		kind    problemkind.Kind
	}{
		{
			name:    "coding",
			primary: rec("submitted_code", "f()", "code_language", "py"),
			legacy:  rec("answer", map[string]interface{}{"code": "f()", "language": "py"}),
			kind:    problemkind.Coding,
		},
		{
			name:    "debugging",
			primary: rec("submitted_code", "fix()", "code_language", "c"),
			legacy:  rec("answer_code", "fix()", "lang", "c"),
			kind:    problemkind.Debugging,
		},
		{
			name:    "multiple choice",
			primary: rec("selected_options", []interface{}{float64(0), float64(2)}),
			legacy:  rec("answer", []interface{}{float64(0), float64(2)}),
			kind:    problemkind.MultipleChoice,
		},
		{
			name:    "short answer",
			primary: rec("answers", []interface{}{"len"}),
			legacy:  rec("answer", map[string]interface{}{"text": "len"}),
			kind:    problemkind.ShortAnswer,
		},
		{
			name:    "subjective",
			primary: rec("written_text", "essay body"),
			legacy:  rec("content", map[string]interface{}{"text": "essay body"}),
			kind:    problemkind.Subjective,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			a := Normalize(tc.primary, tc.kind)
			b := Normalize(tc.legacy, tc.kind)
			if !reflect.DeepEqual(a, b) {
				t.Fatalf("primary and legacy shapes diverge:\n  primary: %+v\n  legacy:  %+v", a, b)
			}
		})
	}
}

func TestNormalizeMultipleChoice(t *testing.T) {
	tests := []struct {
		name string
		rec  Record
		want []int
	}{
		{name: "selected_options list", rec: rec("selected_options", []interface{}{float64(1), float64(3)}), want: []int{1, 3}},
		{name: "single selected_index wrapped", rec: rec("selected_index", float64(2)), want: []int{2}},
		{name: "answer single number wrapped", rec: rec("answer", float64(0)), want: []int{0}},
		{name: "answer array", rec: rec("answer", []interface{}{float64(1)}), want: []int{1}},
		{name: "string digits tolerated", rec: rec("selected_options", []interface{}{"0", "2"}), want: []int{0, 2}},
		{name: "nothing found yields empty list", rec: rec(), want: []int{}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			n := Normalize(tc.rec, problemkind.MultipleChoice)
			if !reflect.DeepEqual(n.SelectedOptions, tc.want) {
				t.Fatalf("got %v, want %v", n.SelectedOptions, tc.want)
			}
		})
	}
}

// Conformance: canonical selected options are 0-based everywhere; the
// normalizer must pass indices through without shifting them.
func TestSelectedOptionsZeroBased(t *testing.T) {
	n := Normalize(rec("selected_options", []interface{}{float64(0)}), problemkind.MultipleChoice)
	if !reflect.DeepEqual(n.SelectedOptions, []int{0}) {
		t.Fatalf("index 0 must survive normalization unchanged, got %v", n.SelectedOptions)
	}
}

func TestNormalizeShortAnswer(t *testing.T) {
	tests := []struct {
		name string
		rec  Record
		want []string
	}{
		{name: "answers list", rec: rec("answers", []interface{}{"a", "b"}), want: []string{"a", "b"}},
		{name: "json-encoded string list", rec: rec("answer_text", `["len","length"]`), want: []string{"len", "length"}},
		{name: "plain string wrapped", rec: rec("submitted_text", "len"), want: []string{"len"}},
		{name: "malformed json string stays plain", rec: rec("answer_text", `["broken`), want: []string{`["broken`}},
		{name: "fallback to answer string", rec: rec("answer", "len"), want: []string{"len"}},
		{name: "fallback to answer.text", rec: rec("answer", map[string]interface{}{"text": "len"}), want: []string{"len"}},
		{name: "absent yields empty list", rec: rec(), want: []string{}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			n := Normalize(tc.rec, problemkind.ShortAnswer)
			if !reflect.DeepEqual(n.Answers, tc.want) {
				t.Fatalf("got %v, want %v", n.Answers, tc.want)
			}
		})
	}
}

func TestNormalizeSubjective(t *testing.T) {
	tests := []struct {
		name string
		rec  Record
		want string
	}{
		{name: "written_text", rec: rec("written_text", "my essay"), want: "my essay"},
		{name: "content map with text", rec: rec("content", map[string]interface{}{"text": "body"}), want: "body"},
		{name: "content plain string", rec: rec("content", "plain"), want: "plain"},
		{name: "essay field", rec: rec("essay", "e"), want: "e"},
		{name: "absent degrades to empty string", rec: rec(), want: ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			n := Normalize(tc.rec, problemkind.Subjective)
			if n.WrittenText != tc.want {
				t.Fatalf("got %q, want %q", n.WrittenText, tc.want)
			}
		})
	}
}

func TestNormalizeKindResolution(t *testing.T) {
	// record's own tag wins when valid, including via the legacy alias
	n := Normalize(rec("problemType", "단답식", "answers", []interface{}{"x"}), problemkind.Coding)
	if n.Kind != problemkind.ShortAnswer {
		t.Fatalf("record tag should win, got kind %q", n.Kind)
	}

	// unrecognized tag falls back to the problem's kind
	n = Normalize(rec("problemType", "???", "submitted_code", "x"), problemkind.Coding)
	if n.Kind != problemkind.Coding {
		t.Fatalf("fallback kind should apply, got %q", n.Kind)
	}
}

func TestNormalizeNoCrossKindLeakage(t *testing.T) {
	// a record stuffed with every legacy field normalizes to exactly one shape
	r := rec(
		"problemType", "객관식",
		"submitted_code", "x=1",
		"selected_options", []interface{}{float64(1)},
		"answers", []interface{}{"a"},
		"written_text", "essay",
	)
	n := Normalize(r, problemkind.MultipleChoice)
	if n.Code != "" || len(n.Answers) != 0 || n.WrittenText != "" {
		t.Fatalf("cross-kind fields leaked into canonical output: %+v", n)
	}
	if !reflect.DeepEqual(n.SelectedOptions, []int{1}) {
		t.Fatalf("expected selection [1], got %v", n.SelectedOptions)
	}
}

func TestHasPayload(t *testing.T) {
	tests := []struct {
		name string
		n    Normalized
		want bool
	}{
		{name: "coding with code", n: Normalized{Kind: problemkind.Coding, Code: "x"}, want: true},
		{name: "coding empty", n: Normalized{Kind: problemkind.Coding}, want: false},
		{name: "mc with selection", n: Normalized{Kind: problemkind.MultipleChoice, SelectedOptions: []int{0}}, want: true},
		{name: "mc empty", n: Normalized{Kind: problemkind.MultipleChoice, SelectedOptions: []int{}}, want: false},
		{name: "short with answer", n: Normalized{Kind: problemkind.ShortAnswer, Answers: []string{"a"}}, want: true},
		{name: "short all empty strings", n: Normalized{Kind: problemkind.ShortAnswer, Answers: []string{""}}, want: false},
		{name: "subjective with text", n: Normalized{Kind: problemkind.Subjective, WrittenText: "t"}, want: true},
		{name: "subjective empty", n: Normalized{Kind: problemkind.Subjective}, want: false},
		{name: "invalid kind", n: Normalized{Kind: "???"}, want: false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := HasPayload(tc.n); got != tc.want {
				t.Fatalf("HasPayload = %v, want %v", got, tc.want)
			}
		})
	}
}
