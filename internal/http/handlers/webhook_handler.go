// README: Dialogflow CX webhook handler; one fulfillment turn per request.
package handlers

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"voyago/internal/dialog"
	"voyago/internal/params"
	"voyago/internal/turn"
)

// turnTimeout bounds one full turn including all outbound provider calls.
const turnTimeout = 60 * time.Second

type WebhookHandler struct {
	router *turn.Router
	logger *zap.Logger
}

func NewWebhookHandler(router *turn.Router, logger *zap.Logger) *WebhookHandler {
	return &WebhookHandler{router: router, logger: logger}
}

// Handle handles POST /webhook. Every outcome, including vertical-level
// faults, is a 200 with a conversational reply; the dialogue manager treats
// non-200 as a protocol failure and drops the session.
func (h *WebhookHandler) Handle(c *gin.Context) {
	var req dialog.WebhookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}

	tag := strings.TrimSpace(req.FulfillmentInfo.Tag)
	bag := params.Params(req.SessionInfo.Parameters)

	ctx, cancel := context.WithTimeout(c.Request.Context(), turnTimeout)
	defer cancel()

	res := h.router.Dispatch(ctx, tag, bag)
	h.logger.Info("turn handled",
		zap.String("tag", tag),
		zap.Int("parameters", len(res.Parameters)),
		zap.Int("cards", len(res.Cards)))

	resp := dialog.NewResponse(res.Reply, res.Parameters)
	resp.AddRichContent(renderCards(res.Cards))
	writeJSON(c, http.StatusOK, resp)
}

// renderCards maps turn cards onto dialogflow rich content: titled cards
// become info cards, the rest bare images.
func renderCards(cards []turn.Card) []map[string]any {
	out := make([]map[string]any, 0, len(cards))
	for _, card := range cards {
		if card.Title != "" {
			out = append(out, dialog.InfoCard(card.Title, card.Subtitle, card.ImageURL, card.Alt))
		} else {
			out = append(out, dialog.ImageCard(card.ImageURL, card.Alt))
		}
	}
	return out
}
