package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shenikar/community_map/internal/models"
	"github.com/sirupsen/logrus"
)

//go:generate mockgen -source=geocode.go -destination=mocks/mock_geocode.go -package=mocks

// MaxGeocodeResults - максимальное число адресов в ответе
const MaxGeocodeResults = 5

// Geocoder - внешний провайдер геокодирования
type Geocoder interface {
	Search(ctx context.Context, query string, limit int) ([]models.GeoLocation, error)
}

type GeocodeService interface {
	Search(ctx context.Context, address string) ([]models.GeoLocation, error)
}

type geocodeService struct {
	geocoder Geocoder
	timeout  time.Duration
	logger   *logrus.Logger
}

func NewGeocodeService(geocoder Geocoder, timeout time.Duration, logger *logrus.Logger) GeocodeService {
	return &geocodeService{geocoder: geocoder, timeout: timeout, logger: logger}
}

// Search ищет адрес у провайдера. Неразборчивый ответ возвращается как
// ErrGeocodeResponse, остальные ошибки провайдера, включая таймаут,
// сводятся к ErrUpstreamUnavailable.
func (s *geocodeService) Search(ctx context.Context, address string) ([]models.GeoLocation, error) {
	address = strings.TrimSpace(address)
	if address == "" {
		return nil, fmt.Errorf("%w: address must not be empty", ErrInvalidArgument)
	}

	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	locations, err := s.geocoder.Search(ctx, address, MaxGeocodeResults)
	if err != nil {
		s.logger.WithError(err).WithField("address", address).Error("Geocoding error")
		if errors.Is(err, ErrGeocodeResponse) {
			return nil, fmt.Errorf("service: could not search address: %w", err)
		}
		return nil, fmt.Errorf("%w: %v", ErrUpstreamUnavailable, err)
	}
	if len(locations) == 0 {
		return nil, ErrNoLocations
	}
	if len(locations) > MaxGeocodeResults {
		locations = locations[:MaxGeocodeResults]
	}
	return locations, nil
}
