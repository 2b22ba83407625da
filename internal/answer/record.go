package answer

import (
	"fmt"
	"strconv"
	"time"
)

// Record is one raw submission as received from the solve store or a remote
// payload: arbitrary keys, arbitrary value shapes. All field access goes
// through the tolerant helpers below; a Record is never mutated.
type Record map[string]interface{}

// field returns the first defined (non-nil) value among the given keys.
func (r Record) field(keys ...string) interface{} {
	for _, k := range keys {
		if v, ok := r[k]; ok && v != nil {
			return v
		}
	}
	return nil
}

// nested resolves one level of nesting, e.g. answer.code.
func (r Record) nested(key, sub string) interface{} {
	m, ok := r[key].(map[string]interface{})
	if !ok {
		return nil
	}
	v, ok := m[sub]
	if !ok || v == nil {
		return nil
	}
	return v
}

// asString coerces scalars to a plain string; nil and composites yield "".
func asString(v interface{}) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case int:
		return strconv.Itoa(t)
	case int64:
		return strconv.FormatInt(t, 10)
	case bool:
		return strconv.FormatBool(t)
	default:
		return ""
	}
}

// asInt extracts an option index from the number shapes JSON decoding and
// legacy clients produce.
func asInt(v interface{}) (int, bool) {
	switch t := v.(type) {
	case float64:
		return int(t), true
	case int:
		return t, true
	case int64:
		return int(t), true
	case string:
		n, err := strconv.Atoi(t)
		if err != nil {
			return 0, false
		}
		return n, true
	}
	return 0, false
}

// keyString stringifies identifier-ish values (solve_id, user_id) for exact
// string comparison regardless of whether the wire carried them as numbers.
func keyString(v interface{}) string {
	if v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	if f, ok := v.(float64); ok {
		return strconv.FormatFloat(f, 'f', -1, 64)
	}
	return fmt.Sprintf("%v", v)
}

// recordTime parses the submission timestamp best-effort. Records without a
// usable timestamp sort as epoch 0, i.e. oldest.
func recordTime(v interface{}) time.Time {
	switch t := v.(type) {
	case string:
		for _, layout := range []string{time.RFC3339Nano, time.RFC3339, "2006-01-02 15:04:05", "2006-01-02T15:04:05"} {
			if ts, err := time.Parse(layout, t); err == nil {
				return ts
			}
		}
	case float64:
		// unix seconds, or millis for values past the year ~33658
		if t > 1e12 {
			return time.UnixMilli(int64(t))
		}
		return time.Unix(int64(t), 0)
	case int64:
		if t > 1e12 {
			return time.UnixMilli(t)
		}
		return time.Unix(t, 0)
	}
	return time.Unix(0, 0)
}
