// README: Hotel candidate model and its option-bag field layout.
package hotel

import "voyago/internal/params"

// Vertical is the key prefix this module encodes options under.
const Vertical = "hotel"

var optionFields = []string{"name", "rating", "price", "checkin", "checkout", "image"}

// Candidate is one normalized hotel record that passed the budget filter.
type Candidate struct {
	Name     string
	Rating   float64
	Price    float64
	CheckIn  string
	CheckOut string
	Image    string // empty when no photo field resolved; non-fatal
}

func (c Candidate) encode() params.Option {
	var image any
	if c.Image != "" {
		image = c.Image
	}
	return params.Option{
		{Name: "name", Value: c.Name},
		{Name: "rating", Value: c.Rating},
		{Name: "price", Value: c.Price},
		{Name: "checkin", Value: c.CheckIn},
		{Name: "checkout", Value: c.CheckOut},
		{Name: "image", Value: image},
	}
}
