package ingestion

import (
	"math"
	"strconv"
	"strings"
)

// Row is one raw uploaded record: arbitrary field names mapped to string
// or numeric values, as decoded from JSON. Field lookup resolves an
// ordered list of accepted aliases per logical field; the first present,
// non-empty alias wins.
type Row map[string]any

// stringField returns the first present, non-empty alias as a trimmed
// string. Numeric values are rendered without a trailing fraction.
func (r Row) stringField(aliases ...string) string {
	for _, key := range aliases {
		v, ok := r[key]
		if !ok {
			continue
		}
		switch t := v.(type) {
		case string:
			if s := strings.TrimSpace(t); s != "" {
				return s
			}
		case float64:
			return strconv.FormatFloat(t, 'f', -1, 64)
		case int:
			return strconv.Itoa(t)
		case bool:
			return strconv.FormatBool(t)
		}
	}
	return ""
}

// numberField parses the first present, non-empty alias as a float. The
// second return reports whether the value parsed to a finite number; a
// present but unparseable value stops the alias scan, it does not fall
// through to the next alias.
func (r Row) numberField(aliases ...string) (float64, bool) {
	for _, key := range aliases {
		v, ok := r[key]
		if !ok {
			continue
		}
		switch t := v.(type) {
		case float64:
			return t, !math.IsNaN(t) && !math.IsInf(t, 0)
		case int:
			return float64(t), true
		case string:
			s := strings.TrimSpace(t)
			if s == "" {
				continue
			}
			f, err := strconv.ParseFloat(s, 64)
			if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
				return 0, false
			}
			return f, true
		default:
			return 0, false
		}
	}
	return 0, false
}
