package importer

import (
	"reflect"
	"testing"

	"codingclass_backend/internal/problemkind"
)

func TestBuildBatchDropsBadRowsKeepsOrder(t *testing.T) {
	// five rows, mixed kinds, row 3 has an unmappable 유형: exactly four
	// problems come out, grouped in the fixed kind order
	rows := []Row{
		{"유형": "단답형", "제목": "s1", "정답": "len"},
		{"유형": "코딩", "제목": "c1"},
		{"유형": "알수없음", "제목": "dropped"},
		{"유형": "객관식", "제목": "m1", "보기": `["a","b"]`, "정답번호": "1"},
		{"유형": "코딩", "제목": "c2"},
	}

	batch := BuildBatch(rows)
	if len(batch) != 4 {
		t.Fatalf("expected 4 problems from 5 rows, got %d", len(batch))
	}

	gotKinds := make([]problemkind.Kind, len(batch))
	gotTitles := make([]string, len(batch))
	for i, p := range batch {
		gotKinds[i] = p.Kind
		gotTitles[i] = p.Title
	}
	wantKinds := []problemkind.Kind{
		problemkind.Coding, problemkind.Coding,
		problemkind.MultipleChoice, problemkind.ShortAnswer,
	}
	if !reflect.DeepEqual(gotKinds, wantKinds) {
		t.Fatalf("kind grouping order broken: %v", gotKinds)
	}
	wantTitles := []string{"c1", "c2", "m1", "s1"}
	if !reflect.DeepEqual(gotTitles, wantTitles) {
		t.Fatalf("row order within a kind broken: %v", gotTitles)
	}

	if n := Dropped(rows); n != 1 {
		t.Fatalf("expected 1 dropped row, got %d", n)
	}
}

func TestBuildBatchLegacyKindAlias(t *testing.T) {
	batch := BuildBatch([]Row{{"유형": "단답식", "정답": "len"}})
	if len(batch) != 1 || batch[0].Kind != problemkind.ShortAnswer {
		t.Fatalf("legacy spelling must coerce to 단답형, got %+v", batch)
	}
}

func TestBuildBatchCorrectAnswersZeroBased(t *testing.T) {
	tests := []struct {
		name string
		cell interface{}
		want []int
	}{
		{name: "single 1-based number", cell: "1", want: []int{0}},
		{name: "comma list", cell: "1, 3", want: []int{0, 2}},
		{name: "번 suffix tolerated", cell: "2번", want: []int{1}},
		{name: "json list", cell: `[1, 4]`, want: []int{0, 3}},
		{name: "zero and garbage dropped", cell: "0, x, 2", want: []int{1}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			batch := BuildBatch([]Row{{"유형": "객관식", "보기": `["a","b","c","d"]`, "정답번호": tc.cell}})
			if len(batch) != 1 {
				t.Fatalf("expected one problem, got %d", len(batch))
			}
			if !reflect.DeepEqual(batch[0].CorrectAnswers, tc.want) {
				t.Fatalf("got %v, want %v", batch[0].CorrectAnswers, tc.want)
			}
		})
	}
}

func TestBuildBatchCodingFields(t *testing.T) {
	row := Row{
		"유형":     "코딩",
		"제목":     "합 구하기",
		"테스트케이스": `[{"input":"1 2","output":"3"},{"input":"0 0","expected_output":"0"}]`,
		"참조코드":   `[{"language":"python","code":"print(sum(map(int,input().split())))","is_main":true}]`,
		"조건":     "시간 제한 1초\n메모리 256MB",
		"태그":     "수학, 구현",
	}
	batch := BuildBatch([]Row{row})
	if len(batch) != 1 {
		t.Fatalf("expected one problem, got %d", len(batch))
	}
	p := batch[0]
	wantTC := []TestCase{
		{Input: "1 2", ExpectedOutput: "3"},
		{Input: "0 0", ExpectedOutput: "0"},
	}
	if !reflect.DeepEqual(p.TestCases, wantTC) {
		t.Fatalf("test cases: got %+v", p.TestCases)
	}
	if len(p.ReferenceCodes) != 1 || p.ReferenceCodes[0].Language != "python" || !p.ReferenceCodes[0].IsMain {
		t.Fatalf("reference codes: got %+v", p.ReferenceCodes)
	}
	if !reflect.DeepEqual(p.Conditions, []string{"시간 제한 1초", "메모리 256MB"}) {
		t.Fatalf("conditions: got %v", p.Conditions)
	}
	if !reflect.DeepEqual(p.Tags, []string{"수학", "구현"}) {
		t.Fatalf("tags: got %v", p.Tags)
	}
}

func TestBuildBatchDebuggingBaseCode(t *testing.T) {
	row := Row{"유형": "디버깅", "기본코드": "def broken(): pas"}
	batch := BuildBatch([]Row{row})
	if len(batch) != 1 {
		t.Fatalf("expected one problem, got %d", len(batch))
	}
	want := []CodeFile{{Code: "def broken(): pas"}}
	if !reflect.DeepEqual(batch[0].BaseCodes, want) {
		t.Fatalf("plain-string base code should wrap, got %+v", batch[0].BaseCodes)
	}
}

func TestBuildBatchShortAnswerTexts(t *testing.T) {
	tests := []struct {
		name string
		cell interface{}
		want []string
	}{
		{name: "json list", cell: `["len","length"]`, want: []string{"len", "length"}},
		{name: "comma separated", cell: "len, length", want: []string{"len", "length"}},
		{name: "single value", cell: "42", want: []string{"42"}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			batch := BuildBatch([]Row{{"유형": "단답형", "정답": tc.cell}})
			if len(batch) != 1 || !reflect.DeepEqual(batch[0].AnswerTexts, tc.want) {
				t.Fatalf("got %+v, want %v", batch, tc.want)
			}
		})
	}
}

func TestBuildBatchEmpty(t *testing.T) {
	if got := BuildBatch(nil); len(got) != 0 {
		t.Fatalf("nil rows must yield empty batch, got %v", got)
	}
}
