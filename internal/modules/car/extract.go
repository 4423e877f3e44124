// README: Field extraction from raw rental records via fixed paths plus the heuristic scanner.
package car

import (
	"math"
	"strconv"

	"voyago/internal/providers/priceline"
	"voyago/internal/scan"
)

// imagePaths are the known nested image locations, tried before the scanner
// falls back to sweeping the car subtree.
var imagePaths = []string{
	"car.images.SIZE268X144",
	"car.images.SIZE335X180",
	"car.imageURL",
}

const imageScanRoot = "car"

// totalPricePath is the known location of the total trip price; the scanner
// only takes over when the provider moves it.
const totalPricePath = "price_details.base.total_price"

// newCandidate normalizes one raw record. Nothing here fails: every field
// degrades to a default, and a record without a discoverable total price
// gets an infinite sort key so it ranks last.
func newCandidate(rec priceline.Record, pickupCode, dropoffCode, pickupDate, dropoffDate string) Candidate {
	c := Candidate{
		Vendor:      lookupString(rec.Data, "partner.name", "Unknown vendor"),
		Type:        lookupString(rec.Data, "car.example", "Car"),
		Symbol:      lookupString(rec.Data, "price_details.base.symbol", "$"),
		PerDay:      lookupAmount(rec.Data, "price_details.base.price"),
		Pickup:      lookupString(rec.Data, "pickup.location", pickupCode),
		Dropoff:     lookupString(rec.Data, "dropoff.location", dropoffCode),
		ResultKey:   rec.Key,
		PickupDate:  pickupDate,
		DropoffDate: dropoffDate,
		Total:       math.Inf(1),
	}
	if class, ok := scan.Description(rec.Data); ok {
		c.Class = class
	}
	if total, ok := totalPrice(rec.Data); ok {
		c.Total = total
	}
	if img, ok := scan.Image(rec.Data, imagePaths, imageScanRoot); ok {
		c.Image = img
	}
	if bundle, ok := rec.Data["postpaid_contract_bundle"]; ok {
		c.Bundle = bundle
	}
	return c
}

// totalPrice tries the fixed total path first and falls back to the
// heuristic price scan when the record's layout has drifted.
func totalPrice(tree map[string]any) (float64, bool) {
	if v, ok := scan.Lookup(tree, totalPricePath); ok {
		if n, parsed := scan.Amount(v); parsed {
			return n, true
		}
	}
	return scan.Price(tree)
}

func lookupString(tree map[string]any, path, fallback string) string {
	if v, ok := scan.Lookup(tree, path); ok {
		if s, isString := v.(string); isString && s != "" {
			return s
		}
	}
	return fallback
}

// lookupAmount renders a price leaf that may arrive as a number or a string.
func lookupAmount(tree map[string]any, path string) string {
	v, ok := scan.Lookup(tree, path)
	if !ok {
		return "N/A"
	}
	switch n := v.(type) {
	case string:
		if n != "" {
			return n
		}
	case float64:
		return strconv.FormatFloat(n, 'f', -1, 64)
	}
	return "N/A"
}
