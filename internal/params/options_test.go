package params

import (
	"errors"
	"testing"
)

func sampleOptions() []Option {
	return []Option{
		{{Name: "name", Value: "Alpha"}, {Name: "price", Value: 120.0}},
		{{Name: "name", Value: "Beta"}, {Name: "price", Value: 180.0}},
	}
}

func TestEncodeResolveRoundTrip(t *testing.T) {
	bag := Encode("hotel", sampleOptions())

	if got := bag["hotel_opt_1_name"]; got != "Alpha" {
		t.Fatalf("hotel_opt_1_name = %v, want Alpha", got)
	}
	if got := bag["hotel_opt_2_price"]; got != 180.0 {
		t.Fatalf("hotel_opt_2_price = %v, want 180", got)
	}

	mapped, err := Resolve("hotel", 2, []string{"name", "price"}, bag)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if got := mapped["selected_hotel_name"]; got != "Beta" {
		t.Errorf("selected_hotel_name = %v, want Beta", got)
	}
	if got := mapped["selected_hotel_price"]; got != 180.0 {
		t.Errorf("selected_hotel_price = %v, want 180", got)
	}
}

func TestEncodeCapsAtMaxOptions(t *testing.T) {
	options := make([]Option, MaxOptions+2)
	for i := range options {
		options[i] = Option{{Name: "name", Value: "x"}}
	}
	bag := Encode("car", options)
	if bag.Has(OptionKey("car", MaxOptions+1, "name")) {
		t.Errorf("encoded more than %d options", MaxOptions)
	}
}

func TestResolveInvalidSelection(t *testing.T) {
	bag := Encode("hotel", sampleOptions())

	tests := []struct {
		name string
		n    int
		in   Params
	}{
		{name: "index zero", n: 0, in: bag},
		{name: "index above max", n: MaxOptions + 1, in: bag},
		{name: "option never encoded", n: 3, in: bag},
		{name: "empty bag", n: 1, in: Params{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Resolve("hotel", tt.n, []string{"name", "price"}, tt.in); !errors.Is(err, ErrInvalidSelection) {
				t.Errorf("Resolve(n=%d) err = %v, want ErrInvalidSelection", tt.n, err)
			}
		})
	}
}

func TestSelectionIndex(t *testing.T) {
	p := Params{"selected_flight_id": 2.0}
	if n, ok := SelectionIndex(p, "number", "selected_flight_id"); !ok || n != 2 {
		t.Errorf("SelectionIndex = %d, %v; want 2, true", n, ok)
	}
	if _, ok := SelectionIndex(Params{}, "number"); ok {
		t.Error("SelectionIndex on empty bag should report not found")
	}
}
