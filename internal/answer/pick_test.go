package answer

import (
	"testing"

	"codingclass_backend/internal/problemkind"
)

func rec(kv ...interface{}) Record {
	r := Record{}
	for i := 0; i+1 < len(kv); i += 2 {
		r[kv[i].(string)] = kv[i+1]
	}
	return r
}

func TestPickOneSolveIDOutranksEverything(t *testing.T) {
	target := rec("solve_id", "101", "user_id", "9", "timestamp", "2024-01-01T00:00:00Z")
	newer := rec("solve_id", "102", "user_id", "5", "timestamp", "2024-06-01T00:00:00Z")
	byUser := rec("solve_id", "103", "user_id", "7", "timestamp", "2023-01-01T00:00:00Z")

	got := PickOne([]Record{byUser, newer, target}, PickHints{SolveID: "101", UserID: "7"})
	if got == nil || keyString(got["solve_id"]) != "101" {
		t.Fatalf("expected solve 101, got %v", got)
	}
}

func TestPickOneSolveIDNumericWire(t *testing.T) {
	// ids arrive as JSON numbers but the hint is a string
	target := rec("solve_id", float64(101), "timestamp", "2024-01-01T00:00:00Z")
	other := rec("solve_id", float64(102), "timestamp", "2024-06-01T00:00:00Z")

	got := PickOne([]Record{other, target}, PickHints{SolveID: "101"})
	if got == nil || keyString(got["solve_id"]) != "101" {
		t.Fatalf("expected numeric-id solve 101, got %v", got)
	}
}

func TestPickOneUserRecency(t *testing.T) {
	older := rec("solve_id", "1", "user_id", "7", "timestamp", "2024-01-01T00:00:00Z")
	newest := rec("solve_id", "2", "user_id", "7", "timestamp", "2024-03-01T00:00:00Z")
	foreign := rec("solve_id", "3", "user_id", "8", "timestamp", "2024-12-01T00:00:00Z")

	got := PickOne([]Record{older, foreign, newest}, PickHints{UserID: "7"})
	if got == nil || keyString(got["solve_id"]) != "2" {
		t.Fatalf("expected newest of user 7 (solve 2), got %v", got)
	}
}

func TestPickOneMissingTimestampSortsOldest(t *testing.T) {
	untimed := rec("solve_id", "1", "user_id", "7")
	timed := rec("solve_id", "2", "user_id", "7", "timestamp", "2020-01-01T00:00:00Z")

	got := PickOne([]Record{untimed, timed}, PickHints{UserID: "7"})
	if got == nil || keyString(got["solve_id"]) != "2" {
		t.Fatalf("record without timestamp should lose to any timestamped one, got %v", got)
	}
}

func TestPickOneFallbackKind(t *testing.T) {
	coding := rec("solve_id", "1", "problemType", "코딩", "timestamp", "2024-01-01T00:00:00Z")
	legacyShort := rec("solve_id", "2", "problemType", "단답식", "timestamp", "2024-02-01T00:00:00Z")

	got := PickOne([]Record{coding, legacyShort}, PickHints{FallbackKind: problemkind.ShortAnswer})
	if got == nil || keyString(got["solve_id"]) != "2" {
		t.Fatalf("kind filter should coerce the legacy spelling, got %v", got)
	}
}

func TestPickOneNoHintsMostRecent(t *testing.T) {
	a := rec("solve_id", "1", "timestamp", "2024-01-01T00:00:00Z")
	b := rec("solve_id", "2", "timestamp", "2024-05-01T00:00:00Z")
	c := rec("solve_id", "3", "timestamp", "2024-03-01T00:00:00Z")

	got := PickOne([]Record{a, b, c}, PickHints{})
	if got == nil || keyString(got["solve_id"]) != "2" {
		t.Fatalf("expected globally most recent, got %v", got)
	}
}

func TestPickOneSingleObjectUntouched(t *testing.T) {
	single := rec("solve_id", "55", "user_id", "1")
	got := PickOne(single, PickHints{SolveID: "999", UserID: "888"})
	if keyString(got["solve_id"]) != "55" {
		t.Fatalf("non-collection input must be returned unchanged, got %v", got)
	}
}

func TestPickOneEmpty(t *testing.T) {
	if got := PickOne([]Record{}, PickHints{}); got != nil {
		t.Fatalf("empty collection must yield nil, got %v", got)
	}
	if got := PickOne(nil, PickHints{}); got != nil {
		t.Fatalf("nil input must yield nil, got %v", got)
	}
}

func TestPickOneDoesNotMutateInput(t *testing.T) {
	a := rec("solve_id", "1", "timestamp", "2024-01-01T00:00:00Z")
	b := rec("solve_id", "2", "timestamp", "2024-05-01T00:00:00Z")
	in := []Record{a, b}

	PickOne(in, PickHints{})

	if keyString(in[0]["solve_id"]) != "1" || keyString(in[1]["solve_id"]) != "2" {
		t.Fatal("caller slice was reordered")
	}
}
