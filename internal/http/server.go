// README: API gateway; registers HTTP routes and delegates to the turn router and concierge.
package http

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"voyago/internal/ai"
	"voyago/internal/http/handlers"
	"voyago/internal/http/middleware"
	"voyago/internal/turn"
)

type ServerDeps struct {
	Router    *turn.Router
	Concierge ai.LLMProvider // optional; nil disables model-backed chat
	Logger    *zap.Logger
	Prod      bool
}

type Server struct {
	webhook *handlers.WebhookHandler
	chat    *handlers.ChatHandler
	logger  *zap.Logger
	prod    bool
}

func NewServer(deps ServerDeps) *Server {
	return &Server{
		webhook: handlers.NewWebhookHandler(deps.Router, deps.Logger),
		chat:    handlers.NewChatHandler(deps.Concierge, deps.Logger),
		logger:  deps.Logger,
		prod:    deps.Prod,
	}
}

func (s *Server) Routes() *gin.Engine {
	if s.prod {
		gin.SetMode(gin.ReleaseMode)
	}
	engine := gin.New()
	engine.Use(middleware.Recovery(s.logger))
	engine.Use(middleware.Logging(s.logger))

	engine.POST("/webhook", s.webhook.Handle)
	engine.POST("/chat", s.chat.Handle)
	engine.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})
	return engine
}
