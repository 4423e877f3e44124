// README: ParameterBag helpers; the flat key/value state the dialogue manager carries between turns.
package params

import (
	"strconv"
	"strings"
)

// Params is the parameter bag attached to a turn request. It is the only
// state that survives between turns: the caller persists it and hands it
// back verbatim on the next request. Values are whatever encoding/json
// produced: string, float64, bool, nil, or a nested map/slice.
type Params map[string]any

// Has reports whether key is present with a non-nil value.
func (p Params) Has(key string) bool {
	v, ok := p[key]
	return ok && v != nil
}

// String returns the value at key rendered as a string. Numeric values are
// formatted without a trailing ".0" so prices survive a JSON round trip.
func (p Params) String(key string) string {
	switch v := p[key].(type) {
	case string:
		return strings.TrimSpace(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case int:
		return strconv.Itoa(v)
	case bool:
		return strconv.FormatBool(v)
	default:
		return ""
	}
}

// Float returns the value at key as a float64 if it is numeric or a
// numeric string.
func (p Params) Float(key string) (float64, bool) {
	return toFloat(p[key])
}

// Int returns the value at key truncated to an int.
func (p Params) Int(key string) (int, bool) {
	f, ok := toFloat(p[key])
	if !ok {
		return 0, false
	}
	return int(f), true
}

// Object returns the value at key as a nested JSON object.
func (p Params) Object(key string) (map[string]any, bool) {
	m, ok := p[key].(map[string]any)
	return m, ok
}

// Merge copies every entry of other into p and returns p.
func (p Params) Merge(other Params) Params {
	for k, v := range other {
		p[k] = v
	}
	return p
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}
