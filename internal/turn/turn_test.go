package turn

import (
	"context"
	"testing"

	"go.uber.org/zap"

	"voyago/internal/params"
)

// stubService records which stage was hit.
type stubService struct {
	name string
	last string
}

func (s *stubService) Options(context.Context, params.Params) *Result {
	s.last = "options"
	return Fail(s.name + " options")
}

func (s *stubService) Select(context.Context, params.Params) *Result {
	s.last = "select"
	return Fail(s.name + " select")
}

func (s *stubService) Confirm(context.Context, params.Params) *Result {
	s.last = "confirm"
	return Fail(s.name + " confirm")
}

func TestDispatchRoutesTags(t *testing.T) {
	flight := &stubService{name: "flight"}
	hotel := &stubService{name: "hotel"}
	car := &stubService{name: "car"}
	router := NewRouter(flight, hotel, car, zap.NewNop())

	tests := []struct {
		tag       string
		svc       *stubService
		wantStage string
	}{
		{tag: TagFlightOptions, svc: flight, wantStage: "options"},
		{tag: TagFlightSelect, svc: flight, wantStage: "select"},
		{tag: TagFlightConfirm, svc: flight, wantStage: "confirm"},
		{tag: TagHotelOptions, svc: hotel, wantStage: "options"},
		{tag: TagHotelSelect, svc: hotel, wantStage: "select"},
		{tag: TagHotelConfirm, svc: hotel, wantStage: "confirm"},
		{tag: TagCarOptions, svc: car, wantStage: "options"},
		{tag: TagCarSelect, svc: car, wantStage: "select"},
		{tag: TagCarConfirm, svc: car, wantStage: "confirm"},
	}
	for _, tt := range tests {
		t.Run(tt.tag, func(t *testing.T) {
			res := router.Dispatch(context.Background(), tt.tag, nil)
			if tt.svc.last != tt.wantStage {
				t.Errorf("stage = %q, want %q", tt.svc.last, tt.wantStage)
			}
			if res.Reply != tt.svc.name+" "+tt.wantStage {
				t.Errorf("Reply = %q", res.Reply)
			}
		})
	}
}

func TestDispatchUnknownTag(t *testing.T) {
	router := NewRouter(&stubService{}, &stubService{}, &stubService{}, zap.NewNop())
	res := router.Dispatch(context.Background(), "Cruise_Options", params.Params{})
	if res.Reply != "No handler matched this request." {
		t.Errorf("Reply = %q", res.Reply)
	}
}
