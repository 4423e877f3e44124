// README: Config loader with env defaults for HTTP, Redis, provider credentials, and AI settings.
package config

import (
	"github.com/spf13/viper"

	"voyago/internal/providers/priceline"
)

// Config holds all configuration values. Every field can come from the
// environment or an optional config.yaml next to the binary.
type Config struct {
	AppPort string `mapstructure:"APP_PORT"`
	Env     string `mapstructure:"ENV"`

	// Redis configuration. Empty addr disables the geocode cache.
	RedisAddr     string `mapstructure:"REDIS_ADDR"`
	RedisPassword string `mapstructure:"REDIS_PASSWORD"`

	// Flight provider (Amadeus).
	AmadeusBaseURL   string `mapstructure:"AMADEUS_BASE_URL"`
	AmadeusAPIKey    string `mapstructure:"AMADEUS_API_KEY"`
	AmadeusAPISecret string `mapstructure:"AMADEUS_API_SECRET"`

	// Hotel provider (RapidAPI).
	BookingAPIKey  string `mapstructure:"BOOKING_API_KEY"`
	BookingAPIHost string `mapstructure:"BOOKING_API_HOST"`

	// Car rental provider (RapidAPI).
	RapidAPIKey string `mapstructure:"RAPIDAPI_KEY"`
	CarAPIHost  string `mapstructure:"CAR_API_HOST"`

	// Google Maps geocoding fallback. Empty key disables live lookups.
	GoogleMapsKey string `mapstructure:"GOOGLE_MAPS_KEY"`

	// Gemini concierge. Empty key falls back to keyword replies on /chat.
	GeminiKey string `mapstructure:"GEMINI_API_KEY"`
}

func Load() (Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	viper.AutomaticEnv()

	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("REDIS_ADDR", "")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("AMADEUS_BASE_URL", "https://test.api.amadeus.com")
	viper.SetDefault("AMADEUS_API_KEY", "")
	viper.SetDefault("AMADEUS_API_SECRET", "")
	viper.SetDefault("BOOKING_API_KEY", "")
	viper.SetDefault("BOOKING_API_HOST", "apidojo-booking-v1.p.rapidapi.com")
	viper.SetDefault("RAPIDAPI_KEY", "")
	viper.SetDefault("CAR_API_HOST", priceline.DefaultHost)
	viper.SetDefault("GOOGLE_MAPS_KEY", "")
	viper.SetDefault("GEMINI_API_KEY", "")

	// A config file is optional; the environment alone is enough.
	_ = viper.ReadInConfig()

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) IsProduction() bool {
	return c.Env == "production"
}
