// README: Webhook handler tests over a stub vertical service.
package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"voyago/internal/http/handlers"
	"voyago/internal/params"
	"voyago/internal/turn"
)

// stubVertical always returns the same result so the test can assert the
// wire shape without a provider.
type stubVertical struct {
	result *turn.Result
}

func (s *stubVertical) Options(context.Context, params.Params) *turn.Result { return s.result }
func (s *stubVertical) Select(context.Context, params.Params) *turn.Result  { return s.result }
func (s *stubVertical) Confirm(context.Context, params.Params) *turn.Result { return s.result }

func buildWebhookRouter(result *turn.Result) *gin.Engine {
	gin.SetMode(gin.TestMode)
	stub := &stubVertical{result: result}
	router := turn.NewRouter(stub, stub, stub, zap.NewNop())
	r := gin.New()
	h := handlers.NewWebhookHandler(router, zap.NewNop())
	r.POST("/webhook", h.Handle)
	return r
}

func postJSON(r *gin.Engine, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	_ = json.NewEncoder(&buf).Encode(body)
	req := httptest.NewRequest(http.MethodPost, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestWebhookReplyAndParameters(t *testing.T) {
	r := buildWebhookRouter(&turn.Result{
		Reply:      "🏨 options",
		Parameters: params.Params{"hotel_opt_1_name": "Alpha"},
	})

	w := postJSON(r, "/webhook", map[string]any{
		"fulfillmentInfo": map[string]any{"tag": "Hotel_Options"},
		"sessionInfo":     map[string]any{"parameters": map[string]any{"hotel_city": "London"}},
	})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}

	var resp struct {
		FulfillmentResponse struct {
			Messages []struct {
				Text *struct {
					Text []string `json:"text"`
				} `json:"text"`
				Payload map[string]any `json:"payload"`
			} `json:"messages"`
		} `json:"fulfillment_response"`
		SessionInfo *struct {
			Parameters map[string]any `json:"parameters"`
		} `json:"sessionInfo"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(resp.FulfillmentResponse.Messages) != 1 || resp.FulfillmentResponse.Messages[0].Text.Text[0] != "🏨 options" {
		t.Errorf("messages = %+v", resp.FulfillmentResponse.Messages)
	}
	if resp.SessionInfo == nil || resp.SessionInfo.Parameters["hotel_opt_1_name"] != "Alpha" {
		t.Errorf("sessionInfo = %+v", resp.SessionInfo)
	}
}

func TestWebhookRichContent(t *testing.T) {
	r := buildWebhookRouter(&turn.Result{
		Reply: "options",
		Cards: []turn.Card{
			{Title: "Option 1: Alpha", Subtitle: "$100", ImageURL: "https://img/a.jpg", Alt: "Hotel image"},
			{ImageURL: "https://img/b.jpg", Alt: "Car option 2"},
		},
	})

	w := postJSON(r, "/webhook", map[string]any{
		"fulfillmentInfo": map[string]any{"tag": "Hotel_Options"},
	})

	var resp map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	messages := resp["fulfillment_response"].(map[string]any)["messages"].([]any)
	if len(messages) != 2 {
		t.Fatalf("messages = %d, want text + payload", len(messages))
	}
	payload := messages[1].(map[string]any)["payload"].(map[string]any)
	rows := payload["richContent"].([]any)
	cards := rows[0].([]any)
	if len(cards) != 2 {
		t.Fatalf("cards = %d", len(cards))
	}
	info := cards[0].(map[string]any)
	if info["type"] != "info" || info["title"] != "Option 1: Alpha" {
		t.Errorf("info card = %v", info)
	}
	image := cards[1].(map[string]any)
	if image["type"] != "image" || image["rawUrl"] != "https://img/b.jpg" {
		t.Errorf("image card = %v", image)
	}
}

func TestWebhookFaultIsStillOK(t *testing.T) {
	r := buildWebhookRouter(turn.Fail("Sorry, I don't know that city."))
	w := postJSON(r, "/webhook", map[string]any{
		"fulfillmentInfo": map[string]any{"tag": "Flight_Options"},
	})
	if w.Code != http.StatusOK {
		t.Errorf("status = %d, faults must stay conversational", w.Code)
	}
	if !bytes.Contains(w.Body.Bytes(), []byte("Sorry, I don't know that city.")) {
		t.Errorf("body = %s", w.Body.String())
	}
}

func TestWebhookInvalidJSON(t *testing.T) {
	r := buildWebhookRouter(turn.Fail("x"))
	req := httptest.NewRequest(http.MethodPost, "/webhook", bytes.NewBufferString("{"))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}
