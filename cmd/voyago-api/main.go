// README: Entry point; loads config, wires provider clients and vertical services, starts the HTTP server.
package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"voyago/internal/ai"
	"voyago/internal/config"
	"voyago/internal/geo"
	httptransport "voyago/internal/http"
	"voyago/internal/infra"
	"voyago/internal/logging"
	"voyago/internal/modules/car"
	"voyago/internal/modules/flight"
	"voyago/internal/modules/hotel"
	"voyago/internal/providers/amadeus"
	"voyago/internal/providers/bookingcom"
	"voyago/internal/providers/priceline"
	"voyago/internal/turn"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	logger, err := logging.New(cfg.IsProduction())
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var cache *redis.Client
	if cfg.RedisAddr != "" {
		cache = infra.NewRedis(cfg.RedisAddr, cfg.RedisPassword)
	}

	geocoder, err := geo.NewGeocoder(cfg.GoogleMapsKey, cache, logger)
	if err != nil {
		logger.Fatal("geocoder init failed", zap.Error(err))
	}

	flightsClient := amadeus.NewClient(cfg.AmadeusBaseURL, cfg.AmadeusAPIKey, cfg.AmadeusAPISecret, logger)
	hotelsClient := bookingcom.NewClient(cfg.BookingAPIHost, cfg.BookingAPIKey, logger)
	carsClient := priceline.NewClient(cfg.CarAPIHost, cfg.RapidAPIKey, logger)

	flightSvc := flight.NewService(flightsClient, logger)
	hotelSvc := hotel.NewService(hotelsClient, logger)
	carSvc := car.NewService(carsClient, geocoder, logger)

	router := turn.NewRouter(flightSvc, hotelSvc, carSvc, logger)

	var concierge ai.LLMProvider
	if cfg.GeminiKey != "" {
		provider, err := ai.NewGeminiProvider(ctx, cfg.GeminiKey)
		if err != nil {
			logger.Fatal("gemini init failed", zap.Error(err))
		}
		defer provider.Close()
		concierge = provider
	}

	handler := httptransport.NewServer(httptransport.ServerDeps{
		Router:    router,
		Concierge: concierge,
		Logger:    logger,
		Prod:      cfg.IsProduction(),
	})

	server := &http.Server{Addr: ":" + cfg.AppPort, Handler: handler.Routes()}

	go func() {
		<-ctx.Done()
		_ = server.Shutdown(context.Background())
	}()

	logger.Info("listening", zap.String("addr", server.Addr))
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Fatal("server exited", zap.Error(err))
	}
}
