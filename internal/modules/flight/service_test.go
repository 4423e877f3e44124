package flight

import (
	"context"
	"errors"
	"strings"
	"testing"

	"go.uber.org/zap"

	"voyago/internal/params"
	"voyago/internal/providers/amadeus"
)

type fakeOffers struct {
	offers  []amadeus.Offer
	err     error
	lastReq amadeus.SearchRequest
}

func (f *fakeOffers) SearchOffers(_ context.Context, sr amadeus.SearchRequest) ([]amadeus.Offer, error) {
	f.lastReq = sr
	return f.offers, f.err
}

func makeOffer(price, airline, cabin string, stops ...string) amadeus.Offer {
	var o amadeus.Offer
	o.Price.Total = price
	o.ValidatingAirlineCodes = []string{airline}
	o.TravelerPricings = []amadeus.TravelerPricing{{
		FareDetailsBySegment: []amadeus.FareDetail{{Cabin: cabin}},
	}}

	var segments []amadeus.Segment
	prev := "PAR"
	for _, stop := range stops {
		segments = append(segments, amadeus.Segment{
			Departure: amadeus.Endpoint{IATACode: prev, At: "2025-03-09T08:00:00"},
			Arrival:   amadeus.Endpoint{IATACode: stop, At: "2025-03-09T10:00:00"},
		})
		prev = stop
	}
	segments = append(segments, amadeus.Segment{
		Departure: amadeus.Endpoint{IATACode: prev, At: "2025-03-09T11:00:00"},
		Arrival:   amadeus.Endpoint{IATACode: "NYC", At: "2025-03-09T14:00:00"},
	})
	o.Itineraries = []amadeus.Itinerary{{Segments: segments}}
	return o
}

func searchSlots() params.Params {
	return params.Params{
		"departure_city":   "Paris",
		"destination_city": "New York",
		"departure_date":   map[string]any{"year": 2025.0, "month": 3.0, "day": 9.0},
	}
}

func TestFlightOptionsMissingSlots(t *testing.T) {
	svc := NewService(&fakeOffers{}, zap.NewNop())
	res := svc.Options(context.Background(), params.Params{"departure_city": "Paris"})
	if !strings.Contains(res.Reply, "I need your departure city") {
		t.Errorf("Reply = %q, want missing-slot prompt", res.Reply)
	}
	if len(res.Parameters) != 0 {
		t.Errorf("Parameters = %v, want empty on fault", res.Parameters)
	}
}

func TestFlightOptionsUnknownCity(t *testing.T) {
	svc := NewService(&fakeOffers{}, zap.NewNop())
	p := searchSlots()
	p["destination_city"] = "Atlantis"
	res := svc.Options(context.Background(), p)
	if !strings.Contains(res.Reply, "Atlantis") {
		t.Errorf("Reply = %q, want unknown-city prompt naming the city", res.Reply)
	}
}

func TestFlightOptionsSearchNormalization(t *testing.T) {
	fake := &fakeOffers{offers: []amadeus.Offer{makeOffer("512.30", "AF", "ECONOMY")}}
	svc := NewService(fake, zap.NewNop())

	p := searchSlots()
	p["flight_class"] = "business"
	svc.Options(context.Background(), p)

	if fake.lastReq.Origin != "PAR" || fake.lastReq.Destination != "NYC" {
		t.Errorf("search route = %s->%s, want PAR->NYC", fake.lastReq.Origin, fake.lastReq.Destination)
	}
	if fake.lastReq.DepartureDate != "2025-03-09" {
		t.Errorf("search date = %q, want 2025-03-09", fake.lastReq.DepartureDate)
	}
	if fake.lastReq.TravelClass != "BUSINESS" {
		t.Errorf("search class = %q, want BUSINESS", fake.lastReq.TravelClass)
	}
}

func TestFlightOptionsEncodesTopThree(t *testing.T) {
	fake := &fakeOffers{offers: []amadeus.Offer{
		makeOffer("512.30", "AF", "ECONOMY"),
		makeOffer("530.00", "BA", "ECONOMY"),
		makeOffer("601.10", "UA", "ECONOMY"),
		makeOffer("799.00", "DL", "ECONOMY"),
	}}
	svc := NewService(fake, zap.NewNop())

	res := svc.Options(context.Background(), searchSlots())
	if !strings.Contains(res.Reply, "Best Flight Options") {
		t.Fatalf("Reply = %q", res.Reply)
	}
	bag := res.Parameters
	if bag["flight_opt_1_airline"] != "AF" || bag["flight_opt_3_airline"] != "UA" {
		t.Errorf("encoded airlines wrong: %v", bag)
	}
	if bag.Has("flight_opt_4_airline") {
		t.Error("more than three options encoded")
	}
}

func TestFlightOptionsProviderError(t *testing.T) {
	fake := &fakeOffers{err: errors.New("status 500")}
	svc := NewService(fake, zap.NewNop())
	res := svc.Options(context.Background(), searchSlots())
	if !strings.Contains(res.Reply, "flight search failed") {
		t.Errorf("Reply = %q", res.Reply)
	}
}

func TestFlightOptionsEmptyResults(t *testing.T) {
	svc := NewService(&fakeOffers{}, zap.NewNop())
	res := svc.Options(context.Background(), searchSlots())
	if !strings.Contains(res.Reply, "couldn't find any flights") {
		t.Errorf("Reply = %q", res.Reply)
	}
}

func TestFlightOptionsLayoverFilter(t *testing.T) {
	direct := makeOffer("512.30", "AF", "ECONOMY")
	viaLondon := makeOffer("530.00", "BA", "ECONOMY", "LON")
	fake := &fakeOffers{offers: []amadeus.Offer{direct, viaLondon}}
	svc := NewService(fake, zap.NewNop())

	p := searchSlots()
	p["layover_city"] = "London"
	res := svc.Options(context.Background(), p)
	if res.Parameters["flight_opt_1_airline"] != "BA" {
		t.Errorf("layover filter kept wrong offer: %v", res.Parameters)
	}
	if res.Parameters.Has("flight_opt_2_airline") {
		t.Error("direct offer should be filtered out")
	}
}

func TestFlightOptionsLayoverNoMatchIsDistinct(t *testing.T) {
	fake := &fakeOffers{offers: []amadeus.Offer{makeOffer("512.30", "AF", "ECONOMY")}}
	svc := NewService(fake, zap.NewNop())

	p := searchSlots()
	p["layover_city"] = "Dubai"
	res := svc.Options(context.Background(), p)
	if !strings.Contains(res.Reply, "layover in Dubai") {
		t.Errorf("Reply = %q, want distinct no-layover-match message", res.Reply)
	}
}

func TestFlightSelectRoundTrip(t *testing.T) {
	fake := &fakeOffers{offers: []amadeus.Offer{
		makeOffer("512.30", "AF", "ECONOMY"),
		makeOffer("530.00", "BA", "BUSINESS"),
	}}
	svc := NewService(fake, zap.NewNop())

	options := svc.Options(context.Background(), searchSlots())
	bag := options.Parameters.Merge(params.Params{"number": 2.0})

	res := svc.Select(context.Background(), bag)
	if res.Parameters["selected_flight_airline"] != "BA" {
		t.Errorf("selected airline = %v, want BA", res.Parameters["selected_flight_airline"])
	}
	if !strings.Contains(res.Reply, "Selected Flight Details") {
		t.Errorf("Reply = %q", res.Reply)
	}
}

func TestFlightSelectInvalid(t *testing.T) {
	svc := NewService(&fakeOffers{}, zap.NewNop())

	tests := []struct {
		name string
		bag  params.Params
	}{
		{name: "no number", bag: params.Params{}},
		{name: "out of range", bag: params.Params{"number": 4.0}},
		{name: "stale bag", bag: params.Params{"number": 1.0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := svc.Select(context.Background(), tt.bag)
			if !strings.Contains(res.Reply, "isn't available anymore") {
				t.Errorf("Reply = %q, want invalid-selection prompt", res.Reply)
			}
		})
	}
}

func TestFlightConfirmSummary(t *testing.T) {
	svc := NewService(&fakeOffers{}, zap.NewNop())
	p := params.Params{
		"selected_flight_airline": "AF",
		"selected_flight_class":   "ECONOMY",
		"selected_flight_price":   "512.30",
		"departure_city":          "Paris",
		"destination_city":        "New York",
		"username":                "Ada",
		"useremail":               "ada@example.com",
		"userdob":                 "1990-01-01",
	}

	res := svc.Confirm(context.Background(), p)
	for _, want := range []string{"Flight Booking Summary", "Ada", "Paris → New York", "confirm this booking"} {
		if !strings.Contains(res.Reply, want) {
			t.Errorf("Reply missing %q:\n%s", want, res.Reply)
		}
	}
	if strings.Contains(res.Reply, "Passenger 2") {
		t.Error("Passenger 2 section should only render when supplied")
	}

	p["passenger2_name"] = "Grace"
	res = svc.Confirm(context.Background(), p)
	if !strings.Contains(res.Reply, "Passenger 2") || !strings.Contains(res.Reply, "Grace") {
		t.Errorf("Reply missing second passenger:\n%s", res.Reply)
	}
}
