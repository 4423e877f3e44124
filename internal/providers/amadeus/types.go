package amadeus

type offersResponse struct {
	Data []Offer `json:"data"`
}

// Offer is one flight offer as returned by the provider. Only the fields
// the normalization pipeline reads are declared.
type Offer struct {
	Price                  Price             `json:"price"`
	ValidatingAirlineCodes []string          `json:"validatingAirlineCodes"`
	TravelerPricings       []TravelerPricing `json:"travelerPricings"`
	Itineraries            []Itinerary       `json:"itineraries"`
}

type Price struct {
	Total string `json:"total"`
}

type TravelerPricing struct {
	FareDetailsBySegment []FareDetail `json:"fareDetailsBySegment"`
}

type FareDetail struct {
	Cabin string `json:"cabin"`
}

type Itinerary struct {
	Segments []Segment `json:"segments"`
}

type Segment struct {
	Departure Endpoint `json:"departure"`
	Arrival   Endpoint `json:"arrival"`
}

// Endpoint is one end of a segment: the airport and the local timestamp.
type Endpoint struct {
	IATACode string `json:"iataCode"`
	At       string `json:"at"`
}
