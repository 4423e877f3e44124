// README: Car rental candidate model and its option-bag field layout.
package car

import (
	"math"
	"strconv"

	"voyago/internal/params"
)

// Vertical is the key prefix this module encodes options under.
const Vertical = "car"

// optionFields lists every encoded field in render order. The first entry
// is the identity field the resolver checks before trusting a selection.
// result_key and bundle are opaque provider handles carried through the bag
// untouched so a later booking step can reference the exact record.
var optionFields = []string{
	"vendor", "type", "class", "price", "total", "pickup", "dropoff",
	"image", "result_key", "bundle", "pickup_date", "dropoff_date",
}

// Candidate is one normalized rental record.
type Candidate struct {
	Vendor      string
	Type        string
	Class       string // heuristic vehicle description; empty when none scored
	PerDay      string  // per-day price as quoted, "N/A" when absent
	Total       float64 // total trip price; +Inf when undiscoverable, sorts last
	Symbol      string
	Pickup      string
	Dropoff     string
	Image       string
	ResultKey   string
	Bundle      any
	PickupDate  string // MM/DD/YYYY
	DropoffDate string // MM/DD/YYYY
}

// totalLabel renders the sort key back into reply text. An infinite total
// means the scanner found no price leaf at all.
func (c Candidate) totalLabel() string {
	if math.IsInf(c.Total, 1) {
		return "N/A"
	}
	return strconv.FormatFloat(c.Total, 'f', -1, 64)
}

func (c Candidate) encode() params.Option {
	var image any
	if c.Image != "" {
		image = c.Image
	}
	return params.Option{
		{Name: "vendor", Value: c.Vendor},
		{Name: "type", Value: c.Type},
		{Name: "class", Value: c.Class},
		{Name: "price", Value: c.PerDay},
		{Name: "total", Value: c.totalLabel()},
		{Name: "pickup", Value: c.Pickup},
		{Name: "dropoff", Value: c.Dropoff},
		{Name: "image", Value: image},
		{Name: "result_key", Value: c.ResultKey},
		{Name: "bundle", Value: c.Bundle},
		{Name: "pickup_date", Value: c.PickupDate},
		{Name: "dropoff_date", Value: c.DropoffDate},
	}
}
