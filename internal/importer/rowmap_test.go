package importer

import (
	"reflect"
	"testing"
)

func TestMapRowKoreanHeaders(t *testing.T) {
	row := Row{
		"유형":  "코딩",
		"제목":  "두 수의 합",
		"난이도": "easy",
	}
	mapped := MapRow(row)
	if mapped[FieldProblemType] != "코딩" {
		t.Fatalf("유형 should map to %s, got %v", FieldProblemType, mapped[FieldProblemType])
	}
	if mapped[FieldTitle] != "두 수의 합" {
		t.Fatalf("제목 should map to %s, got %v", FieldTitle, mapped[FieldTitle])
	}
	if mapped[FieldDifficulty] != "easy" {
		t.Fatalf("난이도 should map to %s, got %v", FieldDifficulty, mapped[FieldDifficulty])
	}
}

func TestMapRowWhitespaceInHeader(t *testing.T) {
	// a header differing only in embedded whitespace is the same header
	row := Row{"정답   ": "len", " 문제  유형 ": "단답형"}
	mapped := MapRow(row)
	if mapped[FieldAnswerText] != "len" {
		t.Fatalf("whitespace-padded 정답 header must still map, got %v", mapped[FieldAnswerText])
	}
	if mapped[FieldProblemType] != "단답형" {
		t.Fatalf("spaced 문제유형 header must still map, got %v", mapped[FieldProblemType])
	}
}

func TestMapRowFirstAliasWins(t *testing.T) {
	row := Row{"problem_type": "코딩", "유형": "객관식"}
	mapped := MapRow(row)
	if mapped[FieldProblemType] != "코딩" {
		t.Fatalf("earlier alias must win, got %v", mapped[FieldProblemType])
	}
}

func TestMapRowSkipsNilCells(t *testing.T) {
	row := Row{"problem_type": nil, "유형": "디버깅"}
	mapped := MapRow(row)
	if mapped[FieldProblemType] != "디버깅" {
		t.Fatalf("nil cell must fall through to the next alias, got %v", mapped[FieldProblemType])
	}
}

func TestMapRowNonDestructiveMerge(t *testing.T) {
	row := Row{"유형": "코딩", "custom_column": "kept"}
	mapped := MapRow(row)
	if mapped["유형"] != "코딩" {
		t.Fatal("original header must survive the merge")
	}
	if mapped["custom_column"] != "kept" {
		t.Fatal("unrecognized columns must survive the merge")
	}
	if _, ok := row[FieldProblemType]; ok {
		t.Fatal("MapRow must not mutate its input")
	}
}

func TestMapRowDecodesJSONCells(t *testing.T) {
	row := Row{"보기": `["a","b"]`}
	mapped := MapRow(row)
	want := []interface{}{"a", "b"}
	if !reflect.DeepEqual(mapped[FieldOptions], want) {
		t.Fatalf("JSON cell should decode, got %v", mapped[FieldOptions])
	}

	row = Row{"보기": `["broken`}
	mapped = MapRow(row)
	if mapped[FieldOptions] != `["broken` {
		t.Fatalf("malformed JSON cell must pass through verbatim, got %v", mapped[FieldOptions])
	}
}

func TestMapRowAbsentFieldStaysAbsent(t *testing.T) {
	mapped := MapRow(Row{"제목": "t"})
	if _, ok := mapped[FieldOptions]; ok {
		t.Fatal("field with no matching header must stay absent, not empty")
	}
}
