package service

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"codingclass_backend/internal/answer"
	"codingclass_backend/internal/problemkind"
)

type stubEnricher struct {
	detail answer.Record
	err    error
	calls  int
}

func (s *stubEnricher) FetchDetail(ctx context.Context, solveID string) (answer.Record, error) {
	s.calls++
	return s.detail, s.err
}

func summaryRecord() answer.Record {
	// 답안 본문 없이 메타데이터만 있는 과거 포맷의 요약 레코드
	return answer.Record{
		"solve_id":     "77",
		"user_id":      "5",
		"problemType":  "코딩",
		"submitted_at": "2024-03-01T10:00:00Z",
	}
}

func TestResolveViewEnrichesEmptySummary(t *testing.T) {
	enricher := &stubEnricher{
		detail: answer.Record{"submitted_code": "print(1)", "language": "python"},
	}
	view, _ := resolveView(context.Background(), problemkind.Coding,
		[]answer.Record{summaryRecord()}, answer.PickHints{SolveID: "77"}, enricher)

	if enricher.calls != 1 {
		t.Fatalf("expected exactly one detail fetch, got %d", enricher.calls)
	}
	if view.State != answer.StateAnswered || view.Answer.Code != "print(1)" {
		t.Fatalf("enriched detail should render as answered, got %+v", view)
	}
}

func TestResolveViewEnrichmentFailureFallsBack(t *testing.T) {
	// 상세 조회가 실패해도 요약만으로 정규화한 결과와 같아야 한다
	records := []answer.Record{summaryRecord()}
	hints := answer.PickHints{SolveID: "77"}

	failing := &stubEnricher{err: errors.New("upstream timeout")}
	got, _ := resolveView(context.Background(), problemkind.Coding, records, hints, failing)
	plain, _ := resolveView(context.Background(), problemkind.Coding, records, hints, nil)

	if !reflect.DeepEqual(got, plain) {
		t.Fatalf("failed enrichment must equal plain normalization:\n  got:   %+v\n  plain: %+v", got, plain)
	}
	if got.State != answer.StateNoAnswer {
		t.Fatalf("empty summary with failed enrichment renders no-answer, got %+v", got)
	}
}

func TestResolveViewSkipsEnrichmentWhenPayloadPresent(t *testing.T) {
	enricher := &stubEnricher{}
	rec := summaryRecord()
	rec["submitted_code"] = "x = 1"

	view, _ := resolveView(context.Background(), problemkind.Coding,
		[]answer.Record{rec}, answer.PickHints{SolveID: "77"}, enricher)

	if enricher.calls != 0 {
		t.Fatalf("full record must not trigger a detail fetch, got %d calls", enricher.calls)
	}
	if view.State != answer.StateAnswered {
		t.Fatalf("expected answered, got %+v", view)
	}
}

func TestResolveViewNoCandidates(t *testing.T) {
	view, picked := resolveView(context.Background(), problemkind.ShortAnswer,
		nil, answer.PickHints{}, nil)
	if picked != nil {
		t.Fatal("no candidates must pick nothing")
	}
	if view.State != answer.StateNoAnswer || view.Kind != problemkind.ShortAnswer {
		t.Fatalf("expected no-answer view for the problem kind, got %+v", view)
	}
}

func TestSameIntSet(t *testing.T) {
	tests := []struct {
		name string
		a, b []int
		want bool
	}{
		{name: "equal sets any order", a: []int{2, 0}, b: []int{0, 2}, want: true},
		{name: "subset is not equal", a: []int{0}, b: []int{0, 2}, want: false},
		{name: "both empty never match", a: nil, b: nil, want: false},
		{name: "duplicates collapse", a: []int{1, 1}, b: []int{1, 2}, want: false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := sameIntSet(tc.a, tc.b); got != tc.want {
				t.Fatalf("sameIntSet(%v, %v) = %v, want %v", tc.a, tc.b, got, tc.want)
			}
		})
	}
}
