// README: Option bag codec; encodes ranked candidates into flat keys and resolves a later selection.
package params

import (
	"errors"
	"fmt"
)

// MaxOptions is the largest option set any vertical surfaces per search.
const MaxOptions = 3

// ErrInvalidSelection is returned when a selection index is out of range or
// the inbound bag does not carry the referenced option (stale session,
// restarted search). Callers turn it into a re-search prompt instead of
// rendering a preview full of nulls.
var ErrInvalidSelection = errors.New("invalid selection")

// Field is one named value of an encoded option. Options are ordered field
// lists, not maps, so encoding and rendering stay deterministic.
type Field struct {
	Name  string
	Value any
}

// Option is the flat, encodable form of one ranked candidate.
type Option []Field

// OptionKey builds the bag key for field of the n-th option of a vertical,
// e.g. "car_opt_2_vendor".
func OptionKey(vertical string, n int, field string) string {
	return fmt.Sprintf("%s_opt_%d_%s", vertical, n, field)
}

// SelectedKey builds the bag key a resolved field is copied to,
// e.g. "selected_car_vendor".
func SelectedKey(vertical, field string) string {
	return fmt.Sprintf("selected_%s_%s", vertical, field)
}

// Encode flattens up to MaxOptions options into a fresh bag using 1-based
// option numbering. Every field is written, nil values included, so the
// later Resolve call loses nothing.
func Encode(vertical string, options []Option) Params {
	bag := Params{}
	for i, opt := range options {
		if i == MaxOptions {
			break
		}
		for _, f := range opt {
			bag[OptionKey(vertical, i+1, f.Name)] = f.Value
		}
	}
	return bag
}

// Resolve copies every field of option n out of a previously encoded bag
// into selected_{vertical}_{field} keys. The first name in fields is the
// option's identity field; if it is missing from the bag the referenced
// option was never encoded and the selection is invalid.
func Resolve(vertical string, n int, fields []string, in Params) (Params, error) {
	if n < 1 || n > MaxOptions {
		return nil, ErrInvalidSelection
	}
	if len(fields) == 0 || !in.Has(OptionKey(vertical, n, fields[0])) {
		return nil, ErrInvalidSelection
	}
	out := Params{}
	for _, name := range fields {
		out[SelectedKey(vertical, name)] = in[OptionKey(vertical, n, name)]
	}
	return out, nil
}

// SelectionIndex reads the user's 1-based choice from the bag, trying keys
// in order. Verticals pass "number" first and any legacy key after it.
func SelectionIndex(p Params, keys ...string) (int, bool) {
	for _, key := range keys {
		if n, ok := p.Int(key); ok {
			return n, true
		}
	}
	return 0, false
}
