package geocoding

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shenikar/community_map/internal/metrics"
	"github.com/shenikar/community_map/internal/models"
	"github.com/shenikar/community_map/internal/service"
	"github.com/sirupsen/logrus"
)

const cacheKeyPrefix = "community_map:geocode:"

// CachedGeocoder кэширует непустые ответы провайдера в Redis.
// Ошибки кэша не мешают запросу к провайдеру.
type CachedGeocoder struct {
	next        service.Geocoder
	redisClient *redis.Client
	ttl         time.Duration
	logger      *logrus.Logger
}

var _ service.Geocoder = (*CachedGeocoder)(nil)

func NewCachedGeocoder(next service.Geocoder, redisClient *redis.Client, ttl time.Duration, logger *logrus.Logger) *CachedGeocoder {
	return &CachedGeocoder{next: next, redisClient: redisClient, ttl: ttl, logger: logger}
}

func (g *CachedGeocoder) Search(ctx context.Context, query string, limit int) ([]models.GeoLocation, error) {
	key := cacheKey(query, limit)

	cached, err := g.get(ctx, key)
	if err != nil {
		g.logger.WithError(err).Warn("Failed to read geocode cache")
	}
	if cached != nil {
		metrics.GeocodeCacheHitsTotal.Inc()
		return cached, nil
	}

	locations, err := g.next.Search(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	if len(locations) > 0 {
		if err := g.set(ctx, key, locations); err != nil {
			g.logger.WithError(err).Warn("Failed to write geocode cache")
		}
	}
	return locations, nil
}

func (g *CachedGeocoder) get(ctx context.Context, key string) ([]models.GeoLocation, error) {
	val, err := g.redisClient.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get geocode from cache: %w", err)
	}
	var locations []models.GeoLocation
	if err := json.Unmarshal(val, &locations); err != nil {
		return nil, fmt.Errorf("failed to unmarshal geocode from cache: %w", err)
	}
	return locations, nil
}

func (g *CachedGeocoder) set(ctx context.Context, key string, locations []models.GeoLocation) error {
	val, err := json.Marshal(locations)
	if err != nil {
		return fmt.Errorf("failed to marshal geocode for cache: %w", err)
	}
	return g.redisClient.Set(ctx, key, val, g.ttl).Err()
}

func cacheKey(query string, limit int) string {
	sum := sha1.Sum([]byte(strings.ToLower(strings.TrimSpace(query))))
	return fmt.Sprintf("%s%d:%s", cacheKeyPrefix, limit, hex.EncodeToString(sum[:]))
}
