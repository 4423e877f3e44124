// README: Flight vertical service; Options/Select/Confirm over the flight provider.
package flight

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"voyago/internal/geo"
	"voyago/internal/params"
	"voyago/internal/providers/amadeus"
	"voyago/internal/turn"
)

// OffersClient is the slice of the provider client this service needs.
type OffersClient interface {
	SearchOffers(ctx context.Context, sr amadeus.SearchRequest) ([]amadeus.Offer, error)
}

type Service struct {
	offers OffersClient
	logger *zap.Logger
}

func NewService(offers OffersClient, logger *zap.Logger) *Service {
	return &Service{offers: offers, logger: logger}
}

// Options searches flights for the collected slots and encodes the top
// offers into the parameter bag.
func (s *Service) Options(ctx context.Context, p params.Params) *turn.Result {
	depCity := p.String("departure_city")
	destCity := p.String("destination_city")
	if destCity == "" {
		destCity = p.String("destination-city")
	}
	date := params.NormalizeDate(p["departure_date"])
	class := strings.ToUpper(p.String("flight_class"))
	if class == "" {
		class = "ECONOMY"
	}

	if depCity == "" || destCity == "" || date == "" {
		return turn.Fail("I need your departure city, destination city, and travel date.")
	}

	origin, err := geo.FlightCode(depCity)
	if err != nil {
		return turn.Fail(unknownCityReply(depCity))
	}
	dest, err := geo.FlightCode(destCity)
	if err != nil {
		return turn.Fail(unknownCityReply(destCity))
	}

	offers, err := s.offers.SearchOffers(ctx, amadeus.SearchRequest{
		Origin:        origin,
		Destination:   dest,
		DepartureDate: date,
		TravelClass:   class,
	})
	if err != nil {
		s.logger.Warn("flight search failed", zap.Error(err))
		return turn.Fail(fmt.Sprintf("Sorry, the flight search failed (%v). Please try again.", err))
	}
	if len(offers) == 0 {
		return turn.Fail("Sorry, I couldn't find any flights. Try different details? Yes to retry flight search, Start Over to go to main menu or exit")
	}

	// Layover filter: keep only offers with an intermediate stop at the
	// requested city. An empty result here is reported distinctly from
	// "no offers at all".
	if layoverCity := p.String("layover_city"); layoverCity != "" {
		code, err := geo.FlightCode(layoverCity)
		if err != nil {
			return turn.Fail(unknownCityReply(layoverCity))
		}
		var kept []amadeus.Offer
		for _, o := range offers {
			if hasLayover(o, code) {
				kept = append(kept, o)
			}
		}
		if len(kept) == 0 {
			return turn.Fail(fmt.Sprintf(
				"Sorry, I couldn't find flights with a layover in %s. Do you want to try another layover city or see all flights?",
				layoverCity))
		}
		offers = kept
	}

	var candidates []Candidate
	for _, o := range offers {
		c, err := newCandidate(o)
		if err != nil {
			continue
		}
		candidates = append(candidates, c)
		if len(candidates) == params.MaxOptions {
			break
		}
	}
	if len(candidates) == 0 {
		return turn.Fail("Sorry, I couldn't find any flights. Try different details? Yes to retry flight search, Start Over to go to main menu or exit")
	}

	var reply strings.Builder
	reply.WriteString("✈️ **Best Flight Options:**\n\n")
	options := make([]params.Option, 0, len(candidates))
	for i, c := range candidates {
		stops := "Direct"
		if len(c.Stops) > 0 {
			stops = strings.Join(c.Stops, ", ")
		}
		fmt.Fprintf(&reply,
			"✈️ **Option %d**\nAirline: %s\nClass: %s\nPrice: $%s\nDeparture: %s\nArrival: %s\nStops: %s\n\n",
			i+1, c.Airline, c.Cabin, c.Price, c.Departure, c.Arrival, stops)
		options = append(options, c.encode())
	}
	reply.WriteString("Choose an option: **1, 2, or 3** or retry flight search.")

	return &turn.Result{
		Reply:      reply.String(),
		Parameters: params.Encode(Vertical, options),
	}
}

// Select copies the chosen option's fields into selected_flight_* keys and
// renders a preview. The legacy selected_flight_id key is accepted next to
// the shared number slot.
func (s *Service) Select(ctx context.Context, p params.Params) *turn.Result {
	n, ok := params.SelectionIndex(p, "number", "selected_flight_id")
	if !ok {
		return turn.Fail(invalidSelectionReply)
	}
	mapped, err := params.Resolve(Vertical, n, optionFields, p)
	if err != nil {
		return turn.Fail(invalidSelectionReply)
	}

	preview := fmt.Sprintf(
		"✈️ **Selected Flight Details**\n• Airline: %s\n• Class: %s\n• Price: $%s\n• Departure: %s\n• Arrival: %s",
		mapped.String("selected_flight_airline"),
		mapped.String("selected_flight_class"),
		mapped.String("selected_flight_price"),
		mapped.String("selected_flight_departure"),
		mapped.String("selected_flight_arrival"),
	)
	return &turn.Result{Reply: preview, Parameters: mapped}
}

// Confirm renders the booking summary from already-selected fields plus the
// passenger details the dialogue manager collected. No provider call, no
// side effect: the actual reservation is out of scope.
func (s *Service) Confirm(ctx context.Context, p params.Params) *turn.Result {
	var b strings.Builder
	fmt.Fprintf(&b,
		"🛫 **Flight Booking Summary**\n\n• Airline: %s\n• Class: %s\n• Price: $%s\n• Route: %s → %s\n• Departure: %s\n• Arrival: %s\n\n",
		p.String("selected_flight_airline"),
		p.String("selected_flight_class"),
		p.String("selected_flight_price"),
		p.String("departure_city"),
		p.String("destination_city"),
		p.String("selected_flight_departure"),
		p.String("selected_flight_arrival"),
	)
	fmt.Fprintf(&b, "🧍 **Passenger 1**\n• Name: %s\n• Email: %s\n• DOB: %s\n",
		p.String("username"), p.String("useremail"), p.String("userdob"))
	if p.Has("passenger2_name") {
		fmt.Fprintf(&b, "\n🧍 **Passenger 2**\n• Name: %s\n• Email: %s\n• DOB: %s\n",
			p.String("passenger2_name"), p.String("passenger2_email"), p.String("passenger2_dob"))
	}
	b.WriteString("\nWould you like to confirm this booking?\n- yes → confirm booking\n- no → cancel or modify details")
	return &turn.Result{Reply: b.String()}
}

const invalidSelectionReply = "Sorry, that option isn't available anymore. Please pick 1, 2, or 3, or run a new flight search."

func unknownCityReply(city string) string {
	return fmt.Sprintf("Sorry, I don't know %s for flights yet. Try a major city (e.g., London, New York).", city)
}
