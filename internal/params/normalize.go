// README: Date/time/budget normalization for slot values collected by the dialogue manager.
package params

import "fmt"

// DefaultTime is the pickup/dropoff time the car provider documents as its
// default when the user did not give one.
const DefaultTime = "10:00"

// DefaultBudget is the hotel price ceiling applied when the budget slot is
// absent or malformed.
const DefaultBudget = 9999

// NormalizeDate converts a structured {year, month, day} slot value into
// zero-padded "YYYY-MM-DD". Strings pass through untouched so a date the
// caller already formatted is not mangled; anything else yields "".
func NormalizeDate(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	y, m, d, ok := dateParts(v)
	if !ok {
		return ""
	}
	return fmt.Sprintf("%04d-%02d-%02d", y, m, d)
}

// NormalizeDateUS converts a structured {year, month, day} slot value into
// zero-padded "MM/DD/YYYY", the format the car rental provider requires.
// Unlike NormalizeDate there is no string passthrough: the car flow only
// ever receives structured dates, so anything else yields "".
func NormalizeDateUS(v any) string {
	y, m, d, ok := dateParts(v)
	if !ok {
		return ""
	}
	return fmt.Sprintf("%02d/%02d/%04d", m, d, y)
}

// NormalizeTime converts a structured {hours, minutes} slot value into
// zero-padded "HH:MM". Absent or malformed values fall back to DefaultTime,
// the provider-documented default, rather than being omitted.
func NormalizeTime(v any) string {
	obj, ok := v.(map[string]any)
	if !ok {
		return DefaultTime
	}
	h, okH := toFloat(obj["hours"])
	m, okM := toFloat(obj["minutes"])
	if !okH || !okM {
		return DefaultTime
	}
	return fmt.Sprintf("%02d:%02d", int(h), int(m))
}

// Budget extracts the numeric amount from a structured currency slot value
// ({amount, currency}). Missing or malformed budgets resolve to
// DefaultBudget so the hotel filter still has an inclusive ceiling.
func Budget(v any) float64 {
	obj, ok := v.(map[string]any)
	if !ok {
		return DefaultBudget
	}
	amount, ok := toFloat(obj["amount"])
	if !ok {
		return DefaultBudget
	}
	return amount
}

func dateParts(v any) (year, month, day int, ok bool) {
	obj, isMap := v.(map[string]any)
	if !isMap {
		return 0, 0, 0, false
	}
	y, okY := toFloat(obj["year"])
	m, okM := toFloat(obj["month"])
	d, okD := toFloat(obj["day"])
	if !okY || !okM || !okD {
		return 0, 0, 0, false
	}
	return int(y), int(m), int(d), true
}
