package answer

import (
	"testing"

	"codingclass_backend/internal/problemkind"
)

func TestRenderDispatchesOnProblemKind(t *testing.T) {
	// submission normalized as short answer, problem says multiple choice:
	// the problem's kind drives the dispatch and finds no payload
	n := Normalize(rec("problemType", "단답형", "answers", []interface{}{"a"}), problemkind.ShortAnswer)
	v := Render(problemkind.MultipleChoice, n)
	if v.State != StateNoAnswer || v.Kind != problemkind.MultipleChoice {
		t.Fatalf("expected no-answer view for the problem's kind, got %+v", v)
	}
}

func TestRenderUnsupportedKind(t *testing.T) {
	v := Render(problemkind.Coerce("알수없음"), Normalized{})
	if v.State != StateUnsupported {
		t.Fatalf("unknown kind must yield a labeled unsupported view, got %+v", v)
	}

	v = Render(problemkind.None, Normalized{})
	if v.State != StateUnsupported {
		t.Fatalf("missing kind must yield unsupported, got %+v", v)
	}
}

func TestRenderAnswered(t *testing.T) {
	n := Normalize(rec("problemType", "코딩", "submitted_code", "f()", "language", "python"), problemkind.Coding)
	v := Render(problemkind.Coding, n)
	if v.State != StateAnswered {
		t.Fatalf("expected answered, got %+v", v)
	}
	if v.Answer.Code != "f()" || v.Answer.Language != "python" {
		t.Fatalf("answer payload lost in view: %+v", v.Answer)
	}
}

func TestRenderNoAnswer(t *testing.T) {
	n := Normalize(rec("problemType", "주관식"), problemkind.Subjective)
	v := Render(problemkind.Subjective, n)
	if v.State != StateNoAnswer {
		t.Fatalf("empty payload must yield no-answer view, got %+v", v)
	}
}
