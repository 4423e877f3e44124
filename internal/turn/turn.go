// README: Per-vertical 3-stage turn protocol (Options -> Select -> Confirm) and tag dispatch.
package turn

import (
	"context"

	"go.uber.org/zap"

	"voyago/internal/params"
)

// Fulfillment tags the dialogue manager sends, one per vertical+stage.
const (
	TagFlightOptions = "Flight_Options"
	TagFlightSelect  = "Select_Flight_Details"
	TagFlightConfirm = "Booking_Confirmation"

	TagHotelOptions = "Hotel_Options"
	TagHotelSelect  = "Select_Hotel_Details"
	TagHotelConfirm = "Hotel_Booking_Confirmation"

	TagCarOptions = "Car_Rental_Options"
	TagCarSelect  = "Select_Car_Details"
	TagCarConfirm = "Car_Booking_Confirmation"
)

// Card is one rich-media attachment for a turn reply. Cards with a title
// render as info cards, title-less cards as bare images.
type Card struct {
	Title    string
	Subtitle string
	ImageURL string
	Alt      string
}

// Result is the complete outcome of one turn: the conversational reply,
// the parameters to merge into the session bag, and any image cards.
// Failures are never raised past this type; every fault a vertical can hit
// (missing slots, unresolvable city, empty upstream, provider error,
// invalid selection) is normalized into Reply text.
type Result struct {
	Reply      string
	Parameters params.Params
	Cards      []Card
}

// Fail wraps a user-facing fault message in a bare Result.
func Fail(reply string) *Result {
	return &Result{Reply: reply}
}

// Service is one vertical's implementation of the 3-stage protocol. The
// stages share no server-side state: everything a later stage needs must be
// in the parameter bag a prior stage returned. Options may be re-entered at
// any time; it ignores any selected_* leftovers in the inbound bag.
type Service interface {
	Options(ctx context.Context, p params.Params) *Result
	Select(ctx context.Context, p params.Params) *Result
	Confirm(ctx context.Context, p params.Params) *Result
}

// Router maps fulfillment tags onto vertical services.
type Router struct {
	flight Service
	hotel  Service
	car    Service
	logger *zap.Logger
}

func NewRouter(flight, hotel, car Service, logger *zap.Logger) *Router {
	return &Router{flight: flight, hotel: hotel, car: car, logger: logger}
}

// Dispatch routes one turn to the vertical+stage named by tag. Unknown tags
// get a harmless fallback reply rather than an error; the dialogue manager
// owns the tag set and may grow it ahead of this service.
func (r *Router) Dispatch(ctx context.Context, tag string, p params.Params) *Result {
	if p == nil {
		p = params.Params{}
	}
	switch tag {
	case TagFlightOptions:
		return r.flight.Options(ctx, p)
	case TagFlightSelect:
		return r.flight.Select(ctx, p)
	case TagFlightConfirm:
		return r.flight.Confirm(ctx, p)
	case TagHotelOptions:
		return r.hotel.Options(ctx, p)
	case TagHotelSelect:
		return r.hotel.Select(ctx, p)
	case TagHotelConfirm:
		return r.hotel.Confirm(ctx, p)
	case TagCarOptions:
		return r.car.Options(ctx, p)
	case TagCarSelect:
		return r.car.Select(ctx, p)
	case TagCarConfirm:
		return r.car.Confirm(ctx, p)
	default:
		r.logger.Warn("unhandled fulfillment tag", zap.String("tag", tag))
		return Fail("No handler matched this request.")
	}
}
