package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/community_map/internal/metrics"
	"github.com/shenikar/community_map/internal/models"
	"github.com/shenikar/community_map/internal/webhook"
	"github.com/shenikar/community_map/pkg/geo"
	"github.com/sirupsen/logrus"
)

//go:generate mockgen -source=incident.go -destination=mocks/mock_incident.go -package=mocks

// Clock возвращает текущее время; в тестах подменяется
type Clock func() time.Time

// SystemClock - часы по умолчанию, всегда UTC
func SystemClock() time.Time {
	return time.Now().UTC()
}

func clockOrDefault(c Clock) Clock {
	if c == nil {
		return SystemClock
	}
	return c
}

// IncidentRepository определяет контракт для работы с хранилищем инцидентов.
// Все изменения выполняются одной атомарной операцией над одним документом.
type IncidentRepository interface {
	Create(ctx context.Context, incident *models.Incident) error
	ListByCategory(ctx context.Context, category string) ([]*models.Incident, error)
	List(ctx context.Context, includeContact bool) ([]*models.Incident, error)
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
	Delete(ctx context.Context, id string) error
	Update(ctx context.Context, id string, fields map[string]any) error
	IncrementCounter(ctx context.Context, id, field string) (*models.ReactionCounts, error)
}

// IncidentService определяет контракт для бизнес-логики управления инцидентами
type IncidentService interface {
	CreateIncident(ctx context.Context, incident *models.Incident) error
	ListPublic(ctx context.Context, hours int) ([]*models.Incident, error)
	ListAdmin(ctx context.Context) ([]*models.Incident, error)
	UpdateIncident(ctx context.Context, id string, fields map[string]any) error
	DeleteIncident(ctx context.Context, id string) error
	React(ctx context.Context, id, reaction string) (*models.ReactionCounts, error)
	SweepExpired(ctx context.Context) (int64, error)
}

type incidentService struct {
	repo      IncidentRepository
	publisher webhook.WebhookPublisher
	logger    *logrus.Logger
	policy    RetentionPolicy
	now       Clock
}

func NewIncidentService(repo IncidentRepository, publisher webhook.WebhookPublisher, logger *logrus.Logger, clock Clock) IncidentService {
	if publisher == nil {
		publisher = webhook.NopPublisher{}
	}
	return &incidentService{
		repo:      repo,
		publisher: publisher,
		logger:    logger,
		policy:    DefaultRetentionPolicy(),
		now:       clockOrDefault(clock),
	}
}

// CreateIncident создает инцидент, вычисляя признак подтверждения и размер кластера
func (s *incidentService) CreateIncident(ctx context.Context, incident *models.Incident) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":  "incident",
		"method":   "CreateIncident",
		"category": incident.Category,
	})
	log.Info("Attempting to create a new incident")

	if !(geo.Point{Lat: incident.Latitude, Lon: incident.Longitude}).Valid() {
		log.Warn("Incident coordinates out of range")
		return fmt.Errorf("%w: coordinates out of range", ErrInvalidArgument)
	}

	now := s.now()

	// кандидаты не фильтруются хранилищем: время и расстояние проверяет ClusterCount
	candidates, err := s.repo.ListByCategory(ctx, incident.Category)
	if err != nil {
		log.WithError(err).Error("Failed to load cluster candidates")
		return fmt.Errorf("service: could not load cluster candidates: %w", err)
	}

	incident.ID = uuid.NewString()
	incident.Timestamp = now
	incident.IsVerified = IsVerified(incident.ContactEmail, incident.ContactPhone)
	incident.ClusterCount = ClusterCount(incident, candidates, now, s.policy)
	incident.LikeCount = 0
	incident.DislikeCount = 0

	if err := s.repo.Create(ctx, incident); err != nil {
		log.WithError(err).Error("Failed to create incident in repository")
		return fmt.Errorf("service: could not create incident: %w", err)
	}

	metrics.IncidentsCreatedTotal.WithLabelValues(incident.Category).Inc()
	metrics.IncidentClusterSize.Observe(float64(incident.ClusterCount))

	if err := s.publisher.Publish(ctx, webhook.NewIncidentCreatedEvent(incident, now)); err != nil {
		// вебхук не влияет на результат создания
		log.WithError(err).Warn("Failed to publish incident webhook event")
	}

	log.WithFields(logrus.Fields{
		"incident_id":   incident.ID,
		"cluster_count": incident.ClusterCount,
		"is_verified":   incident.IsVerified,
	}).Info("Incident created successfully")
	return nil
}

// ListPublic возвращает инциденты без контактных данных.
// hours > 0 ограничивает выборку инцидентами за последние hours часов.
func (s *incidentService) ListPublic(ctx context.Context, hours int) ([]*models.Incident, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "incident",
		"method":  "ListPublic",
		"hours":   hours,
	})
	log.Debug("Listing public incidents")

	if _, err := s.SweepExpired(ctx); err != nil {
		log.WithError(err).Error("Failed to sweep expired incidents")
		return nil, err
	}

	incidents, err := s.repo.List(ctx, false)
	if err != nil {
		log.WithError(err).Error("Failed to list incidents from repository")
		return nil, fmt.Errorf("service: could not list incidents: %w", err)
	}

	// окно не короче срока хранения ничего не отсекает после очистки
	if hours > 0 && hours < int(IncidentRetention/time.Hour) {
		since := s.now().Add(-time.Duration(hours) * time.Hour)
		filtered := make([]*models.Incident, 0, len(incidents))
		for _, inc := range incidents {
			if !inc.Timestamp.Before(since) {
				filtered = append(filtered, inc)
			}
		}
		incidents = filtered
	}

	log.WithField("count", len(incidents)).Debug("Incidents listed successfully")
	return incidents, nil
}

// ListAdmin возвращает инциденты со всеми полями, включая контакты
func (s *incidentService) ListAdmin(ctx context.Context) ([]*models.Incident, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "incident",
		"method":  "ListAdmin",
	})

	if _, err := s.SweepExpired(ctx); err != nil {
		log.WithError(err).Error("Failed to sweep expired incidents")
		return nil, err
	}

	incidents, err := s.repo.List(ctx, true)
	if err != nil {
		log.WithError(err).Error("Failed to list incidents from repository")
		return nil, fmt.Errorf("service: could not list incidents: %w", err)
	}

	log.WithField("count", len(incidents)).Info("Admin incidents listed successfully")
	return incidents, nil
}

// UpdateIncident применяет частичное обновление; id и timestamp не изменяются
func (s *incidentService) UpdateIncident(ctx context.Context, id string, fields map[string]any) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "incident",
		"method":      "UpdateIncident",
		"incident_id": id,
	})
	log.Info("Attempting to update incident")

	patch, err := sanitizePatch(fields, incidentFields)
	if err != nil {
		log.WithError(err).Warn("Rejected incident update")
		return err
	}

	if err := s.repo.Update(ctx, id, patch); err != nil {
		log.WithError(err).Warn("Failed to update incident in repository")
		return fmt.Errorf("service: could not update incident %s: %w", id, err)
	}

	log.Info("Incident updated successfully")
	return nil
}

// DeleteIncident удаляет инцидент по идентификатору
func (s *incidentService) DeleteIncident(ctx context.Context, id string) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "incident",
		"method":      "DeleteIncident",
		"incident_id": id,
	})
	log.Info("Attempting to delete incident")

	if err := s.repo.Delete(ctx, id); err != nil {
		log.WithError(err).Warn("Failed to delete incident in repository")
		return fmt.Errorf("service: could not delete incident %s: %w", id, err)
	}

	log.Info("Incident deleted successfully")
	return nil
}

// React атомарно увеличивает счетчик like или dislike
func (s *incidentService) React(ctx context.Context, id, reaction string) (*models.ReactionCounts, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "incident",
		"method":      "React",
		"incident_id": id,
		"reaction":    reaction,
	})

	var field string
	switch reaction {
	case models.ReactionLike:
		field = "like_count"
	case models.ReactionDislike:
		field = "dislike_count"
	default:
		log.Warn("Unsupported reaction")
		return nil, fmt.Errorf("%w: reaction must be 'like' or 'dislike'", ErrInvalidArgument)
	}

	counts, err := s.repo.IncrementCounter(ctx, id, field)
	if err != nil {
		log.WithError(err).Warn("Failed to increment reaction counter")
		return nil, fmt.Errorf("service: could not react to incident %s: %w", id, err)
	}

	metrics.ReactionsTotal.WithLabelValues(reaction).Inc()
	log.Debug("Reaction recorded")
	return counts, nil
}

// SweepExpired удаляет инциденты старше окна хранения
func (s *incidentService) SweepExpired(ctx context.Context) (int64, error) {
	cutoff, ok := s.policy.Cutoff(KindIncident, s.now())
	if !ok {
		return 0, nil
	}
	n, err := s.repo.DeleteOlderThan(ctx, cutoff)
	if err != nil {
		return 0, fmt.Errorf("service: could not sweep expired incidents: %w", err)
	}
	if n > 0 {
		metrics.SweptRecordsTotal.WithLabelValues(string(KindIncident)).Add(float64(n))
		s.logger.WithFields(logrus.Fields{
			"service": "incident",
			"removed": n,
		}).Info("Expired incidents removed")
	}
	return n, nil
}
