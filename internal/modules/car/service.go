// README: Car rental vertical service; Options/Select/Confirm over the rental provider.
package car

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"go.uber.org/zap"

	"voyago/internal/geo"
	"voyago/internal/params"
	"voyago/internal/providers/priceline"
	"voyago/internal/turn"
)

// RentalsClient is the slice of the provider client this service needs.
type RentalsClient interface {
	SearchCars(ctx context.Context, sr priceline.SearchRequest) ([]priceline.Record, error)
}

// CoordsResolver verifies that a city name resolves to a real place. Used
// only to sanity-check guessed airport codes; nil disables the check.
type CoordsResolver interface {
	Coords(ctx context.Context, city string) (string, bool)
}

type Service struct {
	rentals  RentalsClient
	resolver CoordsResolver
	logger   *zap.Logger
}

func NewService(rentals RentalsClient, resolver CoordsResolver, logger *zap.Logger) *Service {
	return &Service{rentals: rentals, resolver: resolver, logger: logger}
}

// Options searches rentals for the collected slots, ranks the full result
// list by total trip price and encodes the top records into the bag.
func (s *Service) Options(ctx context.Context, p params.Params) *turn.Result {
	pickupCity := p.String("pick_up_city")
	if pickupCity == "" {
		pickupCity = p.String("pick_up_City")
	}
	dropoffCity := p.String("drop_off_city")
	if dropoffCity == "" {
		dropoffCity = pickupCity
	}

	pickupCode, err := s.airportCode(ctx, pickupCity)
	if err != nil {
		return turn.Fail(unresolvableReply(pickupCity))
	}
	dropoffCode, err := s.airportCode(ctx, dropoffCity)
	if err != nil {
		return turn.Fail(unresolvableReply(dropoffCity))
	}

	pickupDate := params.NormalizeDateUS(p["pick_up"])
	dropoffDate := params.NormalizeDateUS(p["drop_off_date"])
	if pickupDate == "" || dropoffDate == "" {
		return turn.Fail("Sorry — I’m missing the pick-up or drop-off date. What dates do you want?")
	}
	pickupTime := params.NormalizeTime(p["car_pickup_time"])
	dropoffTime := params.NormalizeTime(p["car_dropoff_time"])

	records, err := s.rentals.SearchCars(ctx, priceline.SearchRequest{
		PickupCode:  pickupCode,
		DropoffCode: dropoffCode,
		PickupDate:  pickupDate,
		DropoffDate: dropoffDate,
		PickupTime:  pickupTime,
		DropoffTime: dropoffTime,
	})
	if err != nil {
		s.logger.Warn("car search failed", zap.Error(err))
		return turn.Fail(fmt.Sprintf("Car search failed (%v). Try again.", err))
	}
	if len(records) == 0 {
		return turn.Fail("No rental cars available for those dates/airport. Try different dates or a different city.")
	}

	candidates := make([]Candidate, 0, len(records))
	for _, rec := range records {
		candidates = append(candidates, newCandidate(rec, pickupCode, dropoffCode, pickupDate, dropoffDate))
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Total < candidates[j].Total
	})
	if len(candidates) > params.MaxOptions {
		candidates = candidates[:params.MaxOptions]
	}

	var reply strings.Builder
	reply.WriteString("🚗 **Best Car Rental Options:**\n\n")
	options := make([]params.Option, 0, len(candidates))
	var cards []turn.Card
	for i, c := range candidates {
		fmt.Fprintf(&reply, "🚗 **Option %d**\n• Vendor: %s\n• Car: %s", i+1, c.Vendor, c.Type)
		if c.Class != "" {
			fmt.Fprintf(&reply, " (%s)", c.Class)
		}
		fmt.Fprintf(&reply,
			"\n• Price: %s%s/day  |  Total: %s%s\n• Pick-Up: %s\n• Drop-Off: %s\n\n",
			c.Symbol, c.PerDay, c.Symbol, c.totalLabel(), c.Pickup, c.Dropoff)
		options = append(options, c.encode())
		if c.Image != "" {
			cards = append(cards, turn.Card{
				ImageURL: c.Image,
				Alt:      fmt.Sprintf("Car option %d", i+1),
			})
		}
	}
	reply.WriteString("Choose a car: **1, 2, or 3** or retry car rental search.")

	return &turn.Result{
		Reply:      reply.String(),
		Parameters: params.Encode(Vertical, options),
		Cards:      cards,
	}
}

// Select copies the chosen option's fields into selected_car_* keys and
// renders a preview with the vehicle photo when one was captured.
func (s *Service) Select(ctx context.Context, p params.Params) *turn.Result {
	n, ok := params.SelectionIndex(p, "number")
	if !ok {
		return turn.Fail(invalidSelectionReply)
	}
	mapped, err := params.Resolve(Vertical, n, optionFields, p)
	if err != nil {
		return turn.Fail(invalidSelectionReply)
	}

	preview := fmt.Sprintf(
		"🚗 **Selected Car**\n\n• Vendor: %s\n• Type: %s (%s)\n• Price: $%s/day (Total: $%s)\n• Pick-Up: %s (%s)\n• Drop-Off: %s (%s)",
		mapped.String("selected_car_vendor"),
		mapped.String("selected_car_type"),
		mapped.String("selected_car_class"),
		mapped.String("selected_car_price"),
		mapped.String("selected_car_total"),
		mapped.String("selected_car_pickup"),
		mapped.String("selected_car_pickup_date"),
		mapped.String("selected_car_dropoff"),
		mapped.String("selected_car_dropoff_date"),
	)
	res := &turn.Result{Reply: preview, Parameters: mapped}
	if img := mapped.String("selected_car_image"); img != "" {
		res.Cards = []turn.Card{{ImageURL: img, Alt: "Selected rental car"}}
	}
	return res
}

// Confirm renders the booking summary from already-selected fields plus the
// driver details the dialogue manager collected. No provider call, no side
// effect: the actual reservation is out of scope.
func (s *Service) Confirm(ctx context.Context, p params.Params) *turn.Result {
	var b strings.Builder
	fmt.Fprintf(&b,
		"🚗 **Car Rental Booking Summary**\n\n• Vendor: %s\n• Car: %s (%s)\n• Price: $%s/day  |  Total: $%s\n• Pick-Up: %s (%s)\n• Drop-Off: %s (%s)\n\n",
		p.String("selected_car_vendor"),
		p.String("selected_car_type"),
		p.String("selected_car_class"),
		p.String("selected_car_price"),
		p.String("selected_car_total"),
		p.String("selected_car_pickup"),
		p.String("selected_car_pickup_date"),
		p.String("selected_car_dropoff"),
		p.String("selected_car_dropoff_date"),
	)
	fmt.Fprintf(&b, "👤 **Driver Information**\n• Name: %s\n• Email: %s\n• DOB: %s\n\n",
		p.String("username"), p.String("useremail"), p.String("userdob"))
	if img := p.String("selected_car_image"); img != "" {
		fmt.Fprintf(&b, "🖼️ Car Image: %s\n\n", img)
	}
	b.WriteString("Would you like to confirm this booking?\n- yes → confirm selection\n- no → cancel or modify details")
	return &turn.Result{Reply: b.String()}
}

// airportCode resolves a city for the rental provider. A guessed code (the
// first-3-letters heuristic) is only trusted when the city geocodes to a
// real place, if a resolver is configured.
func (s *Service) airportCode(ctx context.Context, city string) (string, error) {
	code, guessed, err := geo.RentalCode(city)
	if err != nil {
		return "", err
	}
	if guessed && s.resolver != nil {
		if _, ok := s.resolver.Coords(ctx, city); !ok {
			return "", geo.ErrUnresolvable
		}
	}
	return code, nil
}

const invalidSelectionReply = "Sorry, that car isn't available anymore. Please pick 1, 2, or 3, or run a new car rental search."

func unresolvableReply(city string) string {
	return fmt.Sprintf("Sorry, I couldn't map **%s** to a supported airport code. Try a major city (e.g., New York, Chicago).", city)
}
