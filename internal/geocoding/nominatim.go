package geocoding

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/shenikar/community_map/internal/metrics"
	"github.com/shenikar/community_map/internal/models"
	"github.com/shenikar/community_map/internal/service"
	"github.com/sirupsen/logrus"
	"github.com/sony/gobreaker"
	"golang.org/x/time/rate"
)

const DefaultBaseURL = "https://nominatim.openstreetmap.org"

// ErrUnexpectedStatus - провайдер ответил не 200
var ErrUnexpectedStatus = errors.New("unexpected geocoder status")

// Config - параметры клиента Nominatim
type Config struct {
	BaseURL    string
	UserAgent  string
	Timeout    time.Duration
	RatePerSec float64
}

// nominatimPlace - элемент ответа /search?format=json; координаты приходят строками
type nominatimPlace struct {
	DisplayName string `json:"display_name"`
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
}

// Client обращается к Nominatim. Запросы ограничены по частоте (политика
// OSM - не чаще 1 запроса в секунду) и проходят через circuit breaker,
// чтобы при недоступности провайдера сразу отвечать ошибкой.
type Client struct {
	baseURL    string
	userAgent  string
	httpClient *http.Client
	limiter    *rate.Limiter
	breaker    *gobreaker.CircuitBreaker
	logger     *logrus.Logger
}

var _ service.Geocoder = (*Client)(nil)

func NewClient(cfg Config, logger *logrus.Logger) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}
	limit := rate.Inf
	if cfg.RatePerSec > 0 {
		limit = rate.Limit(cfg.RatePerSec)
	}

	return &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		userAgent:  cfg.UserAgent,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		limiter:    rate.NewLimiter(limit, 1),
		breaker: gobreaker.NewCircuitBreaker(gobreaker.Settings{
			Name:        "nominatim",
			MaxRequests: 1,
			Interval:    time.Minute,
			Timeout:     30 * time.Second,
			ReadyToTrip: func(counts gobreaker.Counts) bool {
				return counts.ConsecutiveFailures >= 5
			},
			OnStateChange: func(name string, from, to gobreaker.State) {
				logger.WithFields(logrus.Fields{
					"breaker": name,
					"from":    from.String(),
					"to":      to.String(),
				}).Warn("Geocoder circuit breaker state changed")
			},
		}),
		logger: logger,
	}
}

// Search ищет адрес и возвращает не более limit результатов
func (c *Client) Search(ctx context.Context, query string, limit int) ([]models.GeoLocation, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("geocoder rate limit wait: %w", err)
	}

	res, err := c.breaker.Execute(func() (interface{}, error) {
		return c.search(ctx, query, limit)
	})
	if err != nil {
		return nil, err
	}
	return res.([]models.GeoLocation), nil
}

func (c *Client) search(ctx context.Context, query string, limit int) ([]models.GeoLocation, error) {
	q := url.Values{}
	q.Set("q", query)
	q.Set("format", "json")
	q.Set("limit", strconv.Itoa(limit))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/search?"+q.Encode(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	t0 := time.Now()
	metrics.GeocodeRequestsTotal.Inc()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		metrics.GeocodeFailTotal.Inc()
		return nil, fmt.Errorf("geocoder request failed: %w", err)
	}
	defer resp.Body.Close()
	metrics.GeocodeDurationMs.Observe(float64(time.Since(t0).Milliseconds()))

	if resp.StatusCode != http.StatusOK {
		_, _ = io.Copy(io.Discard, resp.Body)
		metrics.GeocodeFailTotal.Inc()
		return nil, fmt.Errorf("%w: %d", ErrUnexpectedStatus, resp.StatusCode)
	}

	var places []nominatimPlace
	if err := json.NewDecoder(resp.Body).Decode(&places); err != nil {
		metrics.GeocodeFailTotal.Inc()
		return nil, fmt.Errorf("%w: %v", service.ErrGeocodeResponse, err)
	}

	locations := make([]models.GeoLocation, 0, len(places))
	for _, p := range places {
		lat, errLat := strconv.ParseFloat(p.Lat, 64)
		lon, errLon := strconv.ParseFloat(p.Lon, 64)
		if errLat != nil || errLon != nil {
			c.logger.WithField("display_name", p.DisplayName).Debug("Skipping place with malformed coordinates")
			continue
		}
		locations = append(locations, models.GeoLocation{
			DisplayName: p.DisplayName,
			Latitude:    lat,
			Longitude:   lon,
		})
		if len(locations) == limit {
			break
		}
	}

	c.logger.WithFields(logrus.Fields{
		"query":       query,
		"results":     len(locations),
		"duration_ms": time.Since(t0).Milliseconds(),
	}).Debug("Geocoder response")
	return locations, nil
}
