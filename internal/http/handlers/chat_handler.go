// README: Direct chat endpoint for the standalone UI; Gemini-backed with a keyword fallback.
package handlers

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"voyago/internal/ai"
)

const chatTimeout = 10 * time.Second

type ChatHandler struct {
	concierge ai.LLMProvider // nil when no model is configured
	logger    *zap.Logger
}

func NewChatHandler(concierge ai.LLMProvider, logger *zap.Logger) *ChatHandler {
	return &ChatHandler{concierge: concierge, logger: logger}
}

type chatReq struct {
	Query string `json:"query"`
}

// Handle handles POST /chat. When a concierge model is configured it parses
// the message; otherwise, or when the model fails, keyword routing answers.
func (h *ChatHandler) Handle(c *gin.Context) {
	var req chatReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}

	msg := strings.TrimSpace(req.Query)
	if msg == "" {
		writeError(c, http.StatusBadRequest, "missing query")
		return
	}

	if h.concierge != nil {
		ctx, cancel := context.WithTimeout(c.Request.Context(), chatTimeout)
		defer cancel()
		if res, err := h.concierge.ParseTravelIntent(ctx, msg); err == nil && res.Reply != "" {
			writeJSON(c, http.StatusOK, gin.H{"reply": res.Reply, "intent": res.Intent})
			return
		} else if err != nil {
			h.logger.Warn("concierge parse failed", zap.Error(err))
		}
	}

	writeJSON(c, http.StatusOK, gin.H{"reply": keywordReply(msg)})
}

func keywordReply(msg string) string {
	lower := strings.ToLower(msg)
	switch {
	case strings.Contains(lower, "flight"):
		return "Sure! I can help with flights. Tell me departure city, destination city, and date."
	case strings.Contains(lower, "hotel"):
		return "Okay! I need the hotel city, check-in, and check-out dates."
	case strings.Contains(lower, "car"):
		return "Let me help with car rentals. What's your pick-up and drop-off city?"
	default:
		return "I’m here to help with flights, hotels, and car rentals! Ask me anything."
	}
}
