// Package importer turns raw spreadsheet rows into problem-creation payloads.
// Column headers arrive in Korean or English, with stray whitespace anywhere
// in the header, and cell values may be plain text or JSON-looking strings.
package importer

import (
	"strings"

	"codingclass_backend/internal/answer"
)

// Row is one decoded spreadsheet row keyed by its original headers.
type Row map[string]interface{}

// Canonical field names produced by MapRow.
const (
	FieldProblemType     = "problem_type"
	FieldTitle           = "title"
	FieldDescription     = "description"
	FieldDifficulty      = "difficulty"
	FieldCondition       = "problem_condition"
	FieldTestCases       = "test_cases"
	FieldReferenceCodes  = "reference_codes"
	FieldBaseCode        = "base_code"
	FieldOptions         = "options"
	FieldCorrectAnswers  = "correct_answers"
	FieldAnswerText      = "answer_text"
	FieldTags            = "tags"
	FieldGradingCriteria = "grading_criteria"
)

// fieldAliases lists, per canonical field, the accepted header spellings in
// priority order. The first alias with a non-nil cell wins and later aliases
// are never consulted. Aliases are written whitespace-free; lookups strip
// all whitespace from headers, so "정답   번호" matches "정답번호".
var fieldAliases = map[string][]string{
	FieldProblemType:     {"problem_type", "problemType", "유형", "문제유형", "type"},
	FieldTitle:           {"title", "제목", "문제명", "문제제목"},
	FieldDescription:     {"description", "설명", "문제설명", "내용", "지문"},
	FieldDifficulty:      {"difficulty", "난이도"},
	FieldCondition:       {"problem_condition", "problemCondition", "조건", "문제조건", "제한사항"},
	FieldTestCases:       {"test_cases", "testCases", "테스트케이스", "예제"},
	FieldReferenceCodes:  {"reference_codes", "referenceCodes", "참조코드", "정답코드", "모범답안코드"},
	FieldBaseCode:        {"base_code", "baseCode", "기본코드", "초기코드"},
	FieldOptions:         {"options", "보기", "선택지", "문항"},
	FieldCorrectAnswers:  {"correct_answers", "correctAnswers", "정답번호"},
	FieldAnswerText:      {"answer_text", "answerText", "정답", "모범답안", "답"},
	FieldTags:            {"tags", "태그", "분류"},
	FieldGradingCriteria: {"grading_criteria", "gradingCriteria", "채점기준", "루브릭"},
}

// mapRowOrder keeps output deterministic when iterating canonical fields.
var mapRowOrder = []string{
	FieldProblemType, FieldTitle, FieldDescription, FieldDifficulty,
	FieldCondition, FieldTestCases, FieldReferenceCodes, FieldBaseCode,
	FieldOptions, FieldCorrectAnswers, FieldAnswerText, FieldTags,
	FieldGradingCriteria,
}

func stripKey(k string) string {
	return strings.Join(strings.Fields(k), "")
}

// MapRow adds canonical keys to a copy of the raw row. The original headers
// stay present (non-destructive merge); canonical fields with no matching
// alias stay absent. JSON-looking cell values are decoded best-effort.
func MapRow(raw Row) Row {
	stripped := make(map[string]interface{}, len(raw))
	for k, v := range raw {
		sk := stripKey(k)
		if _, seen := stripped[sk]; !seen && v != nil {
			stripped[sk] = v
		}
	}

	out := make(Row, len(raw)+len(mapRowOrder))
	for k, v := range raw {
		out[k] = v
	}

	for _, field := range mapRowOrder {
		for _, alias := range fieldAliases[field] {
			v, ok := stripped[stripKey(alias)]
			if !ok || v == nil {
				continue
			}
			out[field] = answer.ParseJSONish(v).Value
			break
		}
	}
	return out
}
