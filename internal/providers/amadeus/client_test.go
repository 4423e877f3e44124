package amadeus

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/zap"
)

// fakeAmadeus serves the token and search endpoints with programmable
// behavior.
type fakeAmadeus struct {
	tokenCalls  int
	searchCalls int
	reject401   int // reject this many searches with 401 before succeeding
}

func (f *fakeAmadeus) handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /v1/security/oauth2/token", func(w http.ResponseWriter, r *http.Request) {
		f.tokenCalls++
		fmt.Fprintf(w, `{"access_token":"tok-%d","expires_in":1799}`, f.tokenCalls)
	})
	mux.HandleFunc("GET /v2/shopping/flight-offers", func(w http.ResponseWriter, r *http.Request) {
		f.searchCalls++
		if f.reject401 > 0 {
			f.reject401--
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		fmt.Fprint(w, `{"data":[{"price":{"total":"512.30"}}]}`)
	})
	return mux
}

func TestTokenCachedAcrossSearches(t *testing.T) {
	fake := &fakeAmadeus{}
	srv := httptest.NewServer(fake.handler())
	defer srv.Close()

	c := NewClient(srv.URL, "key", "secret", zap.NewNop())
	for i := 0; i < 3; i++ {
		if _, err := c.SearchOffers(context.Background(), SearchRequest{Origin: "PAR", Destination: "NYC"}); err != nil {
			t.Fatalf("SearchOffers: %v", err)
		}
	}
	if fake.tokenCalls != 1 {
		t.Errorf("tokenCalls = %d, want 1 (cached)", fake.tokenCalls)
	}
	if fake.searchCalls != 3 {
		t.Errorf("searchCalls = %d", fake.searchCalls)
	}
}

func TestSearchRetriesOnceOnUnauthorized(t *testing.T) {
	fake := &fakeAmadeus{reject401: 1}
	srv := httptest.NewServer(fake.handler())
	defer srv.Close()

	c := NewClient(srv.URL, "key", "secret", zap.NewNop())
	offers, err := c.SearchOffers(context.Background(), SearchRequest{Origin: "PAR", Destination: "NYC"})
	if err != nil {
		t.Fatalf("SearchOffers: %v", err)
	}
	if len(offers) != 1 || offers[0].Price.Total != "512.30" {
		t.Errorf("offers = %+v", offers)
	}
	if fake.tokenCalls != 2 {
		t.Errorf("tokenCalls = %d, want a fresh token after 401", fake.tokenCalls)
	}
}

func TestSearchSurfacesStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/v1/security/oauth2/token" {
			fmt.Fprint(w, `{"access_token":"tok","expires_in":1799}`)
			return
		}
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "key", "secret", zap.NewNop())
	if _, err := c.SearchOffers(context.Background(), SearchRequest{}); err == nil {
		t.Fatal("expected error on 500")
	}
}
