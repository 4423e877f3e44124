// README: Static city/airport lookup tables shared by the three verticals.
package geo

import (
	"errors"
	"strings"
)

// ErrUnresolvable means a free-text city could not be mapped to a usable
// provider code. It is always rendered as a prompt for a different city,
// never surfaced to the caller as a protocol failure.
var ErrUnresolvable = errors.New("unresolvable location")

// cityToIATA maps city names to the metro-area IATA codes the flight
// provider accepts. Exact match only; flights have no guessing fallback.
var cityToIATA = map[string]string{
	"paris":         "PAR",
	"tokyo":         "TYO",
	"madrid":        "MAD",
	"london":        "LON",
	"dubai":         "DXB",
	"new york":      "NYC",
	"dallas":        "DFW",
	"los angeles":   "LAX",
	"san francisco": "SFO",
	"toronto":       "YYZ",
	"sydney":        "SYD",
	"delhi":         "DEL",
	"mumbai":        "BOM",
	"york":          "NYC",
}

// hotelDestIDs maps city names to the hotel provider's opaque destination
// ids. The provider has no free-text city search, so unknown cities cannot
// be searched at all.
var hotelDestIDs = map[string]string{
	"paris":    "-1456928",
	"tokyo":    "-246227",
	"london":   "-2601889",
	"dubai":    "-782831",
	"new york": "-2550311",
	"delhi":    "-2106102",
	"mumbai":   "-2101842",
}

// rentalAirports maps city names to the pickup airport codes the car
// provider searches by.
var rentalAirports = map[string]string{
	"dallas":        "DFW",
	"orlando":       "MCO",
	"new york":      "JFK",
	"los angeles":   "LAX",
	"chicago":       "ORD",
	"miami":         "MIA",
	"san francisco": "SFO",
	"las vegas":     "LAS",
	"atlanta":       "ATL",
	"seattle":       "SEA",
	"houston":       "IAH",
}

// carCityCoords holds airport coordinates for the cities the car vertical
// supports, keyed by city name. Used before any live geocode lookup.
var carCityCoords = map[string]string{
	"chicago":       "41.9773,-87.8369",
	"new york":      "40.6413,-73.7781",
	"los angeles":   "33.9416,-118.4085",
	"dallas":        "32.8998,-97.0403",
	"houston":       "29.9902,-95.3368",
	"miami":         "25.7959,-80.2870",
	"orlando":       "28.4312,-81.3081",
	"san francisco": "37.6213,-122.3790",
	"seattle":       "47.4502,-122.3088",
	"atlanta":       "33.6407,-84.4277",
}

// FlightCode resolves a free-text city to the 3-letter code the flight
// provider accepts. Only the static table is consulted.
func FlightCode(city string) (string, error) {
	code, ok := cityToIATA[normalize(city)]
	if !ok {
		return "", ErrUnresolvable
	}
	return code, nil
}

// HotelDestID resolves a city to the hotel provider's destination id.
func HotelDestID(city string) (string, bool) {
	id, ok := hotelDestIDs[normalize(city)]
	return id, ok
}

// RentalCode resolves a city to a pickup/dropoff airport code. When the
// static table misses, the first three letters of the input are uppercased
// as a last-resort guess; guessed reports that case so callers can apply
// extra validation. A result that is not exactly three letters fails hard.
func RentalCode(city string) (code string, guessed bool, err error) {
	key := normalize(city)
	if code, ok := rentalAirports[key]; ok {
		return code, false, nil
	}
	runes := []rune(strings.ToUpper(key))
	if len(runes) < 3 {
		return "", false, ErrUnresolvable
	}
	for _, r := range runes[:3] {
		if r < 'A' || r > 'Z' {
			return "", false, ErrUnresolvable
		}
	}
	return string(runes[:3]), true, nil
}

// StaticCoords returns the known airport coordinates for a supported car
// city as a "lat,lng" pair.
func StaticCoords(city string) (string, bool) {
	coords, ok := carCityCoords[normalize(city)]
	return coords, ok
}

func normalize(city string) string {
	return strings.ToLower(strings.TrimSpace(city))
}
