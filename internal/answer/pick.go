package answer

import (
	"sort"

	"codingclass_backend/internal/problemkind"
)

// PickHints narrows the choice when several submissions exist for a problem.
// Rules apply in strict priority order; the first rule with a non-empty match
// wins and later hints are ignored.
type PickHints struct {
	SolveID      string           // exact attempt, outranks everything
	UserID       string           // restrict to this learner, newest wins
	FallbackKind problemkind.Kind // restrict to this kind, newest wins
}

// PickOne selects exactly one submission from a single record or a
// collection of records. A non-collection input is returned untouched — no
// filtering ever applies to it. An empty collection yields nil. The caller's
// slice is never reordered; recency sorting happens on a copied snapshot.
func PickOne(v interface{}, h PickHints) Record {
	switch t := v.(type) {
	case nil:
		return nil
	case Record:
		return t
	case map[string]interface{}:
		return Record(t)
	case []Record:
		return pickFromSlice(t, h)
	case []map[string]interface{}:
		records := make([]Record, len(t))
		for i, m := range t {
			records[i] = Record(m)
		}
		return pickFromSlice(records, h)
	case []interface{}:
		records := make([]Record, 0, len(t))
		for _, e := range t {
			if m, ok := e.(map[string]interface{}); ok {
				records = append(records, Record(m))
			}
		}
		return pickFromSlice(records, h)
	}
	return nil
}

func pickFromSlice(records []Record, h PickHints) Record {
	if len(records) == 0 {
		return nil
	}

	if h.SolveID != "" {
		for _, r := range records {
			if keyString(r.field("solve_id", "solveId", "id")) == h.SolveID {
				return r
			}
		}
		// fall through: a stale solveId hint must not blank the view
	}

	if h.UserID != "" {
		mine := filter(records, func(r Record) bool {
			return keyString(r.field("user_id", "userId")) == h.UserID
		})
		if len(mine) > 0 {
			return mostRecent(mine)
		}
	}

	if h.FallbackKind != problemkind.None {
		matching := filter(records, func(r Record) bool {
			return problemkind.Coerce(r.field("problemType", "problem_type")) == h.FallbackKind
		})
		if len(matching) > 0 {
			return mostRecent(matching)
		}
	}

	return mostRecent(records)
}

func filter(records []Record, keep func(Record) bool) []Record {
	out := make([]Record, 0, len(records))
	for _, r := range records {
		if keep(r) {
			out = append(out, r)
		}
	}
	return out
}

// mostRecent sorts a copy by timestamp descending and takes the head. The
// stable sort keeps input order for equal timestamps, so ties resolve to the
// earliest-listed record deterministically.
func mostRecent(records []Record) Record {
	snapshot := make([]Record, len(records))
	copy(snapshot, records)
	sort.SliceStable(snapshot, func(i, j int) bool {
		ti := recordTime(snapshot[i].field("timestamp", "submitted_at", "created_at"))
		tj := recordTime(snapshot[j].field("timestamp", "submitted_at", "created_at"))
		return ti.After(tj)
	})
	return snapshot[0]
}
