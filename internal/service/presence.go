package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/shenikar/community_map/internal/metrics"
	"github.com/sirupsen/logrus"
)

//go:generate mockgen -source=presence.go -destination=mocks/mock_presence.go -package=mocks

// PresenceRepository хранит время последнего heartbeat для каждой сессии
type PresenceRepository interface {
	Touch(ctx context.Context, sessionID string, at time.Time) error
	RemoveOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
	Count(ctx context.Context) (int64, error)
}

type PresenceService interface {
	Heartbeat(ctx context.Context, sessionID string) (int64, error)
	SweepExpired(ctx context.Context) (int64, error)
}

type presenceService struct {
	repo   PresenceRepository
	logger *logrus.Logger
	policy RetentionPolicy
	now    Clock
}

func NewPresenceService(repo PresenceRepository, logger *logrus.Logger, clock Clock) PresenceService {
	return &presenceService{
		repo:   repo,
		logger: logger,
		policy: DefaultRetentionPolicy(),
		now:    clockOrDefault(clock),
	}
}

// Heartbeat отмечает сессию активной и возвращает число активных сессий
func (s *presenceService) Heartbeat(ctx context.Context, sessionID string) (int64, error) {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return 0, fmt.Errorf("%w: session id must not be empty", ErrInvalidArgument)
	}

	if _, err := s.SweepExpired(ctx); err != nil {
		return 0, err
	}
	if err := s.repo.Touch(ctx, sessionID, s.now()); err != nil {
		s.logger.WithError(err).WithField("session_id", sessionID).Error("Failed to record heartbeat")
		return 0, fmt.Errorf("service: could not record heartbeat: %w", err)
	}
	count, err := s.repo.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("service: could not count active sessions: %w", err)
	}
	metrics.ActiveSessions.Set(float64(count))
	return count, nil
}

func (s *presenceService) SweepExpired(ctx context.Context) (int64, error) {
	cutoff, _ := s.policy.Cutoff(KindPresence, s.now())
	n, err := s.repo.RemoveOlderThan(ctx, cutoff)
	if err != nil {
		return 0, fmt.Errorf("service: could not sweep stale sessions: %w", err)
	}
	if n > 0 {
		metrics.SweptRecordsTotal.WithLabelValues(string(KindPresence)).Add(float64(n))
	}
	return n, nil
}
