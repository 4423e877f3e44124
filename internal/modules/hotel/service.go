// README: Hotel vertical service; Options/Select/Confirm over the hotel provider.
package hotel

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"voyago/internal/geo"
	"voyago/internal/params"
	"voyago/internal/providers/bookingcom"
	"voyago/internal/turn"
)

// maxRawRecords bounds how much of the upstream result list is scanned
// before filtering.
const maxRawRecords = 30

// PropertiesClient is the slice of the provider client this service needs.
type PropertiesClient interface {
	SearchProperties(ctx context.Context, sr bookingcom.SearchRequest) ([]map[string]any, error)
}

type Service struct {
	properties PropertiesClient
	logger     *zap.Logger
}

func NewService(properties PropertiesClient, logger *zap.Logger) *Service {
	return &Service{properties: properties, logger: logger}
}

// Options searches hotels for the collected slots, filters them against the
// caller's budget and encodes the top records into the parameter bag.
func (s *Service) Options(ctx context.Context, p params.Params) *turn.Result {
	city := p.String("hotel_city")
	checkIn := params.NormalizeDate(p["check_in"])
	checkOut := params.NormalizeDate(p["check_out"])
	budget := params.Budget(p["budget"])

	if city == "" || checkIn == "" || checkOut == "" {
		return turn.Fail("I need the hotel city, check-in date, and check-out date.")
	}

	destID, ok := geo.HotelDestID(city)
	if !ok {
		return turn.Fail("Sorry, I don't know this city yet for hotels. Try different details. Yes to retry hotel search, Start Over to go to main menu or exit")
	}

	records, err := s.properties.SearchProperties(ctx, bookingcom.SearchRequest{
		DestID:      destID,
		ArrivalDate: checkIn,
		DepartDate:  checkOut,
	})
	if err != nil {
		s.logger.Warn("hotel search failed", zap.Error(err))
		return turn.Fail(fmt.Sprintf("Sorry, the hotel search failed (%v). Please try again.", err))
	}
	if len(records) == 0 {
		return turn.Fail("No hotels found.")
	}
	if len(records) > maxRawRecords {
		records = records[:maxRawRecords]
	}

	var candidates []Candidate
	for _, rec := range records {
		c, ok := newCandidate(rec, checkIn, checkOut, budget)
		if !ok {
			continue
		}
		candidates = append(candidates, c)
		if len(candidates) == params.MaxOptions {
			break
		}
	}
	if len(candidates) == 0 {
		return turn.Fail("No hotels match your budget. Do you want to retry hotel search, Start Over to go to main menu or exit")
	}

	var reply strings.Builder
	reply.WriteString("🏨 **Best Hotel Options:**\n\n")
	options := make([]params.Option, 0, len(candidates))
	var cards []turn.Card
	for i, c := range candidates {
		fmt.Fprintf(&reply,
			"⭐ **Option %d**\nHotel: %s\nRating: %s\nPrice: $%s\nCheck-In: %s\nCheck-Out: %s\n\n",
			i+1, c.Name, formatNumber(c.Rating), formatNumber(c.Price), c.CheckIn, c.CheckOut)
		options = append(options, c.encode())
		if c.Image != "" {
			cards = append(cards, turn.Card{
				Title:    fmt.Sprintf("Option %d: %s", i+1, c.Name),
				Subtitle: "$" + formatNumber(c.Price),
				ImageURL: c.Image,
				Alt:      "Hotel image",
			})
		}
	}
	reply.WriteString("Choose a hotel: **1, 2, or 3** or retry hotel search.")

	return &turn.Result{
		Reply:      reply.String(),
		Parameters: params.Encode(Vertical, options),
		Cards:      cards,
	}
}

// Select copies the chosen option's fields into selected_hotel_* keys and
// renders a preview with the option's photo when one was captured.
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
		"🏨 **Selected Hotel**\n• Name: %s\n• Rating: %s\n• Price: $%s\n• Check-In: %s\n• Check-Out: %s",
		mapped.String("selected_hotel_name"),
		mapped.String("selected_hotel_rating"),
		mapped.String("selected_hotel_price"),
		mapped.String("selected_hotel_checkin"),
		mapped.String("selected_hotel_checkout"),
	)
	res := &turn.Result{Reply: preview, Parameters: mapped}
	if img := mapped.String("selected_hotel_image"); img != "" {
		res.Cards = []turn.Card{{ImageURL: img, Alt: "Selected hotel"}}
	}
	return res
}

// Confirm renders the booking summary from already-selected fields plus the
// guest details the dialogue manager collected. No provider call, no side
// effect: the actual reservation is out of scope.
func (s *Service) Confirm(ctx context.Context, p params.Params) *turn.Result {
	numGuests := p.String("num_guests")
	if numGuests == "" {
		numGuests = p.String("number_of_guests")
	}
	if numGuests == "" {
		numGuests = "1"
	}

	var b strings.Builder
	fmt.Fprintf(&b,
		"🏨 **Hotel Booking Summary**\n\n• Hotel: %s\n• Rating: %s\n• Price: $%s\n• Check-In: %s\n• Check-Out: %s\n\n",
		p.String("selected_hotel_name"),
		p.String("selected_hotel_rating"),
		p.String("selected_hotel_price"),
		p.String("selected_hotel_checkin"),
		p.String("selected_hotel_checkout"),
	)
	fmt.Fprintf(&b,
		"👤 **Guest Information**\n• Number of Guests: %s\n• Name: %s\n• Email: %s\n• DOB: %s\n\n",
		numGuests, p.String("username"), p.String("useremail"), p.String("userdob"))
	b.WriteString("Would you like to confirm this booking?\n- yes → confirm booking\n- no → cancel or modify details")
	return &turn.Result{Reply: b.String()}
}

const invalidSelectionReply = "Sorry, that hotel isn't available anymore. Please pick 1, 2, or 3, or run a new hotel search."

func formatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
