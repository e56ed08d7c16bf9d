package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/shenikar/community_map/internal/models"
	"github.com/sirupsen/logrus"
)

//go:generate mockgen -source=content.go -destination=mocks/mock_content.go -package=mocks

// DefaultWelcomeNotice показывается, пока администратор не сохранил свой текст
const DefaultWelcomeNotice = `<h2>Welcome to the Community Map / Bienvenido al Mapa Comunitario</h2>
<p>Report incidents you witness so neighbours can stay safe. Reports are anonymous and disappear after 6 hours.</p>
<p>Reporta los incidentes que presencies para que tus vecinos estén seguros. Los reportes son anónimos y desaparecen después de 6 horas.</p>
<ul>
<li>Tap the map to choose a location / Toca el mapa para elegir una ubicación</li>
<li>Pick a category and urgency / Elige una categoría y urgencia</li>
<li>Add contact details to mark your report as verified / Agrega tus datos de contacto para marcar tu reporte como verificado</li>
</ul>`

// ContentRepository хранит документы-синглтоны по фиксированному ключу.
// Get возвращает ErrNotFound, если документ еще не сохранялся.
type ContentRepository interface {
	Get(ctx context.Context, id string) (*models.ContentRecord, error)
	Upsert(ctx context.Context, record *models.ContentRecord) error
}

type ContentService interface {
	GetLiveUpdates(ctx context.Context) (*models.ContentRecord, error)
	SetLiveUpdates(ctx context.Context, content string) error
	GetWelcomeNotice(ctx context.Context) (*models.ContentRecord, error)
	SetWelcomeNotice(ctx context.Context, content string, enabled bool) error
}

type contentService struct {
	repo   ContentRepository
	logger *logrus.Logger
	now    Clock
}

func NewContentService(repo ContentRepository, logger *logrus.Logger, clock Clock) ContentService {
	return &contentService{
		repo:   repo,
		logger: logger,
		now:    clockOrDefault(clock),
	}
}

func (s *contentService) GetLiveUpdates(ctx context.Context) (*models.ContentRecord, error) {
	return s.get(ctx, models.ContentLiveUpdates, &models.ContentRecord{ID: models.ContentLiveUpdates})
}

func (s *contentService) SetLiveUpdates(ctx context.Context, content string) error {
	return s.set(ctx, &models.ContentRecord{
		ID:        models.ContentLiveUpdates,
		Content:   content,
		UpdatedAt: s.now(),
	})
}

func (s *contentService) GetWelcomeNotice(ctx context.Context) (*models.ContentRecord, error) {
	enabled := true
	rec, err := s.get(ctx, models.ContentWelcomeNotice, &models.ContentRecord{
		ID:      models.ContentWelcomeNotice,
		Content: DefaultWelcomeNotice,
		Enabled: &enabled,
	})
	if err != nil {
		return nil, err
	}
	if rec.Enabled == nil {
		rec.Enabled = &enabled
	}
	return rec, nil
}

func (s *contentService) SetWelcomeNotice(ctx context.Context, content string, enabled bool) error {
	return s.set(ctx, &models.ContentRecord{
		ID:        models.ContentWelcomeNotice,
		Content:   content,
		Enabled:   &enabled,
		UpdatedAt: s.now(),
	})
}

func (s *contentService) get(ctx context.Context, id string, fallback *models.ContentRecord) (*models.ContentRecord, error) {
	rec, err := s.repo.Get(ctx, id)
	if errors.Is(err, ErrNotFound) {
		return fallback, nil
	}
	if err != nil {
		s.logger.WithError(err).WithField("content_id", id).Error("Failed to load content")
		return nil, fmt.Errorf("service: could not load %s: %w", id, err)
	}
	return rec, nil
}

func (s *contentService) set(ctx context.Context, rec *models.ContentRecord) error {
	if err := s.repo.Upsert(ctx, rec); err != nil {
		s.logger.WithError(err).WithField("content_id", rec.ID).Error("Failed to save content")
		return fmt.Errorf("service: could not save %s: %w", rec.ID, err)
	}
	s.logger.WithField("content_id", rec.ID).Info("Content updated")
	return nil
}
