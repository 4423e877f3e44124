// README: Flight candidate model and its option-bag field layout.
package flight

import "voyago/internal/params"

// Vertical is the key prefix this module encodes options under.
const Vertical = "flight"

// optionFields lists every encoded field in render order. The first entry
// is the identity field the resolver checks before trusting a selection.
var optionFields = []string{"airline", "class", "price", "departure", "arrival"}

// Candidate is one normalized flight offer.
type Candidate struct {
	Airline   string
	Cabin     string
	Price     string // decimal string as quoted by the provider, USD
	Departure string // first segment departure timestamp
	Arrival   string // first segment arrival timestamp
	Stops     []string
}

func (c Candidate) encode() params.Option {
	return params.Option{
		{Name: "airline", Value: c.Airline},
		{Name: "class", Value: c.Cabin},
		{Name: "price", Value: c.Price},
		{Name: "departure", Value: c.Departure},
		{Name: "arrival", Value: c.Arrival},
	}
}
