// README: Field extraction from raw flight offers.
package flight

import (
	"errors"

	"voyago/internal/providers/amadeus"
)

var errMissingField = errors.New("offer missing required field")

// newCandidate normalizes one raw offer. Price is mandatory; cabin class
// degrades to "Unknown" on any structural mismatch rather than failing the
// offer.
func newCandidate(o amadeus.Offer) (Candidate, error) {
	if o.Price.Total == "" {
		return Candidate{}, errMissingField
	}
	if len(o.Itineraries) == 0 || len(o.Itineraries[0].Segments) == 0 {
		return Candidate{}, errMissingField
	}

	airline := "Unknown"
	if len(o.ValidatingAirlineCodes) > 0 && o.ValidatingAirlineCodes[0] != "" {
		airline = o.ValidatingAirlineCodes[0]
	}

	cabin := "Unknown"
	if len(o.TravelerPricings) > 0 && len(o.TravelerPricings[0].FareDetailsBySegment) > 0 &&
		o.TravelerPricings[0].FareDetailsBySegment[0].Cabin != "" {
		cabin = o.TravelerPricings[0].FareDetailsBySegment[0].Cabin
	}

	segments := o.Itineraries[0].Segments
	var stops []string
	for _, seg := range segments[:len(segments)-1] {
		stops = append(stops, seg.Arrival.IATACode)
	}

	return Candidate{
		Airline:   airline,
		Cabin:     cabin,
		Price:     o.Price.Total,
		Departure: segments[0].Departure.At,
		Arrival:   segments[0].Arrival.At,
		Stops:     stops,
	}, nil
}

// hasLayover reports whether any intermediate (non-final) segment of the
// offer's first itinerary arrives at the given airport code.
func hasLayover(o amadeus.Offer, code string) bool {
	if len(o.Itineraries) == 0 {
		return false
	}
	segments := o.Itineraries[0].Segments
	for _, seg := range segments[:max(len(segments)-1, 0)] {
		if seg.Arrival.IATACode == code {
			return true
		}
	}
	return false
}
