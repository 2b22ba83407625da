package importer

import (
	"strconv"
	"strings"

	"codingclass_backend/internal/answer"
	"codingclass_backend/internal/problemkind"
)

// TestCase is one input/expected-output pair for coding problems.
type TestCase struct {
	Input          string `json:"input"`
	ExpectedOutput string `json:"expected_output"`
}

// CodeFile is one language/source pair for coding and debugging problems.
type CodeFile struct {
	Language string `json:"language"`
	Code     string `json:"code"`
	IsMain   bool   `json:"is_main,omitempty"`
}

// Payload is one problem-creation request built from a spreadsheet row.
type Payload struct {
	Kind            problemkind.Kind
	Title           string
	Description     string
	Difficulty      string
	Conditions      []string
	Tags            []string
	TestCases       []TestCase
	ReferenceCodes  []CodeFile
	BaseCodes       []CodeFile
	Options         []string
	CorrectAnswers  []int // 0-based canonical indices
	AnswerTexts     []string
	GradingCriteria []string
}

// BuildBatch maps every row, groups the resulting payloads in the fixed kind
// order (코딩, 디버깅, 객관식, 주관식, 단답형) and flattens. Rows whose
// kind cannot be coerced to a canonical tag are silently dropped — one bad
// row never fails the batch. Within a kind, original row order is kept.
func BuildBatch(rows []Row) []Payload {
	grouped := make(map[problemkind.Kind][]Payload, 5)
	for _, raw := range rows {
		mapped := MapRow(raw)
		kind := problemkind.Coerce(mapped[FieldProblemType])
		if !kind.Valid() {
			continue
		}
		grouped[kind] = append(grouped[kind], buildPayload(kind, mapped))
	}

	out := make([]Payload, 0, len(rows))
	for _, kind := range problemkind.All() {
		out = append(out, grouped[kind]...)
	}
	return out
}

// Dropped counts the rows BuildBatch would exclude, for reporting.
func Dropped(rows []Row) int {
	n := 0
	for _, raw := range rows {
		if !problemkind.Coerce(MapRow(raw)[FieldProblemType]).Valid() {
			n++
		}
	}
	return n
}

func buildPayload(kind problemkind.Kind, row Row) Payload {
	p := Payload{
		Kind:            kind,
		Title:           cellString(row[FieldTitle]),
		Description:     cellString(row[FieldDescription]),
		Difficulty:      strings.ToLower(cellString(row[FieldDifficulty])),
		Conditions:      cellStringList(row[FieldCondition]),
		Tags:            cellStringList(row[FieldTags]),
		GradingCriteria: cellStringList(row[FieldGradingCriteria]),
	}

	switch kind {
	case problemkind.Coding:
		p.TestCases = cellTestCases(row[FieldTestCases])
		p.ReferenceCodes = cellCodeFiles(row[FieldReferenceCodes])
	case problemkind.Debugging:
		p.TestCases = cellTestCases(row[FieldTestCases])
		p.BaseCodes = cellCodeFiles(row[FieldBaseCode])
	case problemkind.MultipleChoice:
		p.Options = cellStringList(row[FieldOptions])
		p.CorrectAnswers = cellCorrectAnswers(row[FieldCorrectAnswers])
	case problemkind.ShortAnswer, problemkind.Subjective:
		p.AnswerTexts = cellStringList(row[FieldAnswerText])
	}
	return p
}

func cellString(v interface{}) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(t)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case int:
		return strconv.Itoa(t)
	case bool:
		return strconv.FormatBool(t)
	}
	return ""
}

// cellStringList accepts a decoded JSON list, a delimited plain string, or a
// single scalar. Plain strings split on commas or newlines.
func cellStringList(v interface{}) []string {
	switch t := v.(type) {
	case nil:
		return nil
	case []interface{}:
		out := make([]string, 0, len(t))
		for _, e := range t {
			if s := cellString(e); s != "" {
				out = append(out, s)
			}
		}
		return out
	case string:
		sep := ","
		if strings.Contains(t, "\n") {
			sep = "\n"
		}
		parts := strings.Split(t, sep)
		out := make([]string, 0, len(parts))
		for _, p := range parts {
			if s := strings.TrimSpace(p); s != "" {
				out = append(out, s)
			}
		}
		return out
	}
	if s := cellString(v); s != "" {
		return []string{s}
	}
	return nil
}

// cellCorrectAnswers converts the human-facing 1-based "1번" numbering used
// on import sheets to the canonical 0-based indices. Values below 1 are
// dropped rather than mapped to -1.
func cellCorrectAnswers(v interface{}) []int {
	out := []int{}
	for _, s := range cellStringList(v) {
		s = strings.TrimSuffix(strings.TrimSpace(s), "번")
		n, err := strconv.Atoi(s)
		if err != nil || n < 1 {
			continue
		}
		out = append(out, n-1)
	}
	return out
}

func cellTestCases(v interface{}) []TestCase {
	parsed := answer.ParseJSONish(v)
	list, ok := parsed.Value.([]interface{})
	if !ok {
		return nil
	}
	out := make([]TestCase, 0, len(list))
	for _, e := range list {
		m, ok := e.(map[string]interface{})
		if !ok {
			continue
		}
		out = append(out, TestCase{
			Input:          cellString(firstOf(m, "input", "in")),
			ExpectedOutput: cellString(firstOf(m, "expected_output", "expectedOutput", "output", "out")),
		})
	}
	return out
}

func cellCodeFiles(v interface{}) []CodeFile {
	parsed := answer.ParseJSONish(v)
	switch t := parsed.Value.(type) {
	case []interface{}:
		out := make([]CodeFile, 0, len(t))
		for _, e := range t {
			m, ok := e.(map[string]interface{})
			if !ok {
				continue
			}
			isMain, _ := m["is_main"].(bool)
			out = append(out, CodeFile{
				Language: cellString(firstOf(m, "language", "lang")),
				Code:     cellString(firstOf(m, "code", "source")),
				IsMain:   isMain,
			})
		}
		return out
	case string:
		if s := strings.TrimSpace(t); s != "" {
			return []CodeFile{{Code: s}}
		}
	}
	return nil
}

func firstOf(m map[string]interface{}, keys ...string) interface{} {
	for _, k := range keys {
		if v, ok := m[k]; ok && v != nil {
			return v
		}
	}
	return nil
}
