// README: Live geocode fallback for cities missing from the static tables, with a redis-backed cache.
package geo

import (
	"context"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"googlemaps.github.io/maps"
)

const (
	coordsCachePrefix = "geo:coords:"
	coordsCacheTTL    = 24 * time.Hour
)

// Geocoder resolves free-text city names to coordinates. The static table
// is always consulted first; live lookups go through the Google Maps
// Geocoding API and are cached in redis so repeated searches for the same
// city stay off the network. Both the cache and the maps client are
// optional: a nil cache skips caching, a nil client limits resolution to
// the static table and cache.
type Geocoder struct {
	client *maps.Client
	cache  *redis.Client
	logger *zap.Logger
}

// NewGeocoder builds a Geocoder. apiKey may be empty, in which case no maps
// client is created and only static/cached lookups succeed.
func NewGeocoder(apiKey string, cache *redis.Client, logger *zap.Logger) (*Geocoder, error) {
	g := &Geocoder{cache: cache, logger: logger}
	if apiKey != "" {
		client, err := maps.NewClient(maps.WithAPIKey(apiKey))
		if err != nil {
			return nil, err
		}
		g.client = client
	}
	return g, nil
}

// Coords resolves city to a "lat,lng" pair. Resolution order: static
// airport table, cache, live geocode (first result wins). Cache errors
// degrade to a live lookup; they are never fatal.
func (g *Geocoder) Coords(ctx context.Context, city string) (string, bool) {
	if city == "" {
		return "", false
	}
	if coords, ok := StaticCoords(city); ok {
		return coords, true
	}

	key := coordsCachePrefix + normalize(city)
	if g.cache != nil {
		if cached, err := g.cache.Get(ctx, key).Result(); err == nil && cached != "" {
			return cached, true
		}
	}

	if g.client == nil {
		return "", false
	}
	results, err := g.client.Geocode(ctx, &maps.GeocodingRequest{Address: city})
	if err != nil {
		g.logger.Warn("geocode lookup failed", zap.String("city", city), zap.Error(err))
		return "", false
	}
	if len(results) == 0 {
		return "", false
	}
	loc := results[0].Geometry.Location
	coords := strconv.FormatFloat(loc.Lat, 'f', -1, 64) + "," + strconv.FormatFloat(loc.Lng, 'f', -1, 64)

	if g.cache != nil {
		if err := g.cache.Set(ctx, key, coords, coordsCacheTTL).Err(); err != nil {
			g.logger.Warn("geocode cache write failed", zap.String("city", city), zap.Error(err))
		}
	}
	return coords, true
}
