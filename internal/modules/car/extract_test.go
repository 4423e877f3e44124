package car

import (
	"math"
	"testing"

	"voyago/internal/providers/priceline"
)

func TestNewCandidateDefaults(t *testing.T) {
	rec := priceline.Record{Key: "k1", Data: map[string]any{}}
	c := newCandidate(rec, "ORD", "DFW", "03/09/2025", "03/12/2025")

	if c.Vendor != "Unknown vendor" || c.Type != "Car" || c.Symbol != "$" {
		t.Errorf("defaults wrong: %+v", c)
	}
	if c.PerDay != "N/A" {
		t.Errorf("PerDay = %q, want N/A", c.PerDay)
	}
	if c.Pickup != "ORD" || c.Dropoff != "DFW" {
		t.Errorf("locations = %q/%q, want airport codes", c.Pickup, c.Dropoff)
	}
	if !math.IsInf(c.Total, 1) {
		t.Errorf("Total = %v, want +Inf for unpriced record", c.Total)
	}
	if c.totalLabel() != "N/A" {
		t.Errorf("totalLabel = %q", c.totalLabel())
	}
}

func TestNewCandidateScannerFallback(t *testing.T) {
	// Drifted layout: no price_details.base.total_price, but a price leaf
	// elsewhere that the scanner can discover.
	rec := priceline.Record{Key: "k1", Data: map[string]any{
		"rates": map[string]any{"grand_total": "1,234.50"},
		"car": map[string]any{
			"vehicle_info": map[string]any{"description": "Ford Focus or similar"},
		},
	}}
	c := newCandidate(rec, "ORD", "ORD", "03/09/2025", "03/12/2025")

	if c.Total != 1234.50 {
		t.Errorf("Total = %v, want scanner-discovered 1234.50", c.Total)
	}
	if c.Class != "Ford Focus or similar" {
		t.Errorf("Class = %q", c.Class)
	}
}

func TestNewCandidateNumericPerDay(t *testing.T) {
	rec := priceline.Record{Key: "k1", Data: map[string]any{
		"price_details": map[string]any{"base": map[string]any{
			"price":       30.5,
			"total_price": 91.5,
		}},
	}}
	c := newCandidate(rec, "ORD", "ORD", "03/09/2025", "03/12/2025")
	if c.PerDay != "30.5" {
		t.Errorf("PerDay = %q, want numeric rendered without trailing zeros", c.PerDay)
	}
	if c.Total != 91.5 {
		t.Errorf("Total = %v", c.Total)
	}
}
