package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shenikar/community_map/internal/models"
	"github.com/shenikar/community_map/pkg/geo"
	"github.com/sirupsen/logrus"
)

//go:generate mockgen -source=highlight.go -destination=mocks/mock_highlight.go -package=mocks

var (
	HighlightColors  = []string{"red", "yellow", "green"}
	HighlightReasons = []string{"protest", "theft", "harassment", "road_closure", "construction", "accident", "other"}
)

// HighlightRepository хранит отметки улиц; записи не истекают
type HighlightRepository interface {
	Create(ctx context.Context, h *models.StreetHighlight) error
	List(ctx context.Context) ([]*models.StreetHighlight, error)
	Update(ctx context.Context, id string, fields map[string]any) error
	Delete(ctx context.Context, id string) error
}

type HighlightService interface {
	ListHighlights(ctx context.Context) ([]*models.StreetHighlight, error)
	CreateHighlight(ctx context.Context, h *models.StreetHighlight) error
	UpdateHighlight(ctx context.Context, id string, fields map[string]any) error
	DeleteHighlight(ctx context.Context, id string) error
}

type highlightService struct {
	repo   HighlightRepository
	logger *logrus.Logger
	now    Clock
}

func NewHighlightService(repo HighlightRepository, logger *logrus.Logger, clock Clock) HighlightService {
	return &highlightService{
		repo:   repo,
		logger: logger,
		now:    clockOrDefault(clock),
	}
}

func (s *highlightService) ListHighlights(ctx context.Context) ([]*models.StreetHighlight, error) {
	highlights, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: could not list street highlights: %w", err)
	}
	return highlights, nil
}

func (s *highlightService) CreateHighlight(ctx context.Context, h *models.StreetHighlight) error {
	log := s.logger.WithFields(logrus.Fields{
		"service": "highlight",
		"method":  "CreateHighlight",
	})

	start := geo.Point{Lat: h.StartLat, Lon: h.StartLng}
	end := geo.Point{Lat: h.EndLat, Lon: h.EndLng}
	if !start.Valid() || !end.Valid() {
		return fmt.Errorf("%w: coordinates out of range", ErrInvalidArgument)
	}

	h.ID = uuid.NewString()
	h.CreatedAt = s.now()
	if h.CreatedBy == "" {
		h.CreatedBy = models.DefaultHighlightCreator
	}

	if err := s.repo.Create(ctx, h); err != nil {
		log.WithError(err).Error("Failed to create street highlight")
		return fmt.Errorf("service: could not create street highlight: %w", err)
	}
	log.WithField("highlight_id", h.ID).Info("Street highlight created")
	return nil
}

func (s *highlightService) UpdateHighlight(ctx context.Context, id string, fields map[string]any) error {
	patch, err := sanitizePatch(fields, highlightFields)
	if err != nil {
		return err
	}
	if err := s.repo.Update(ctx, id, patch); err != nil {
		return fmt.Errorf("service: could not update street highlight %s: %w", id, err)
	}
	s.logger.WithField("highlight_id", id).Info("Street highlight updated")
	return nil
}

func (s *highlightService) DeleteHighlight(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("service: could not delete street highlight %s: %w", id, err)
	}
	s.logger.WithField("highlight_id", id).Info("Street highlight deleted")
	return nil
}
