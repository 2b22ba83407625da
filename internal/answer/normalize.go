package answer

import (
	"codingclass_backend/internal/problemkind"
)

// Normalized is the canonical per-kind answer shape. Only the fields of the
// resolved kind are populated; they are always well-typed (empty string or
// empty slice, never absent), so rendering "no answer submitted" is a data
// state rather than a nil check.
type Normalized struct {
	Kind            problemkind.Kind `json:"kind"`
	Code            string           `json:"code,omitempty"`
	Language        string           `json:"language,omitempty"`
	SelectedOptions []int            `json:"selectedOptions,omitempty"` // 0-based option indices
	Answers         []string         `json:"answers,omitempty"`
	WrittenText     string           `json:"writtenText,omitempty"`
}

// Normalize maps one raw submission into its canonical shape. The record's
// own problemType wins when it coerces to a valid kind; otherwise the
// problem's kind is used as fallback. Never errors: every missing or
// misshapen field degrades to the empty value of its canonical type.
func Normalize(r Record, fallback problemkind.Kind) Normalized {
	kind := problemkind.Coerce(r.field("problemType", "problem_type"))
	if !kind.Valid() {
		kind = fallback
	}

	n := Normalized{Kind: kind}
	if r == nil {
		return emptyFor(kind)
	}

	switch kind {
	case problemkind.Coding, problemkind.Debugging:
		n.Code = extractCode(r)
		n.Language = extractLanguage(r)
	case problemkind.MultipleChoice:
		n.SelectedOptions = extractSelectedOptions(r)
	case problemkind.ShortAnswer:
		n.Answers = extractShortAnswers(r)
	case problemkind.Subjective:
		n.WrittenText = extractWrittenText(r)
	}
	return n
}

func emptyFor(kind problemkind.Kind) Normalized {
	n := Normalized{Kind: kind}
	switch kind {
	case problemkind.MultipleChoice:
		n.SelectedOptions = []int{}
	case problemkind.ShortAnswer:
		n.Answers = []string{}
	}
	return n
}

// HasPayload is the per-kind "has an answer" predicate that gates the single
// supplementary enrichment fetch.
func HasPayload(n Normalized) bool {
	switch n.Kind {
	case problemkind.Coding, problemkind.Debugging:
		return n.Code != ""
	case problemkind.MultipleChoice:
		return len(n.SelectedOptions) > 0
	case problemkind.ShortAnswer:
		for _, a := range n.Answers {
			if a != "" {
				return true
			}
		}
		return false
	case problemkind.Subjective:
		return n.WrittenText != ""
	}
	return false
}

func extractCode(r Record) string {
	if s := asString(r.field("submitted_code", "code")); s != "" {
		return s
	}
	// codes may be a collection of {language, code} entries
	if list, ok := r["codes"].([]interface{}); ok {
		for _, e := range list {
			m, ok := e.(map[string]interface{})
			if !ok {
				continue
			}
			if s, ok := m["code"].(string); ok && s != "" {
				return s
			}
		}
	}
	if s := asString(r.field("answer_code")); s != "" {
		return s
	}
	return asString(r.nested("answer", "code"))
}

func extractLanguage(r Record) string {
	if s := asString(r.field("code_language", "language", "lang")); s != "" {
		return s
	}
	return asString(r.nested("answer", "language"))
}

func extractSelectedOptions(r Record) []int {
	v := r.field("selected_options", "selectedOptions", "selected_indices", "selected_index")
	if v == nil {
		v = r.field("answer")
	}
	out := []int{}
	switch t := v.(type) {
	case []interface{}:
		for _, e := range t {
			if n, ok := asInt(e); ok {
				out = append(out, n)
			}
		}
	default:
		if n, ok := asInt(v); ok {
			out = append(out, n)
		}
	}
	return out
}

func extractShortAnswers(r Record) []string {
	v := r.field("answers", "answer_text", "submitted_text", "submittedText", "text")
	if v == nil {
		if s := asString(r.field("answer")); s != "" {
			return []string{s}
		}
		if s := asString(r.nested("answer", "text")); s != "" {
			return []string{s}
		}
		return []string{}
	}

	if s, ok := v.(string); ok {
		parsed := ParseJSONish(s)
		if parsed.Parsed {
			v = parsed.Value
		} else {
			return []string{s}
		}
	}

	out := []string{}
	switch t := v.(type) {
	case []interface{}:
		for _, e := range t {
			out = append(out, asString(e))
		}
	default:
		if s := asString(t); s != "" {
			out = append(out, s)
		}
	}
	return out
}

func extractWrittenText(r Record) string {
	if s := asString(r.field("written_text", "submitted_text", "writtenText")); s != "" {
		return s
	}
	if s := asString(r.nested("content", "text")); s != "" {
		return s
	}
	return asString(r.field("content", "essay", "answer", "text"))
}
