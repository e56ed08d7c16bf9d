package service

import (
	"context"
	"fmt"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

// expirer - любой сервис с ленивой очисткой по времени
type expirer interface {
	SweepExpired(ctx context.Context) (int64, error)
}

// Sweeper периодически запускает очистку устаревших записей.
// Ленивая очистка перед чтением продолжает работать независимо от него.
type Sweeper struct {
	targets map[ResourceKind]expirer
	logger  *logrus.Logger
	cron    *cron.Cron
}

func NewSweeper(incidents IncidentService, chat ChatService, presence PresenceService, logger *logrus.Logger) *Sweeper {
	return &Sweeper{
		targets: map[ResourceKind]expirer{
			KindIncident:    incidents,
			KindChatMessage: chat,
			KindPresence:    presence,
		},
		logger: logger,
	}
}

// SweepAll очищает все ресурсы с окном хранения и возвращает число удаленных записей по типам
func (s *Sweeper) SweepAll(ctx context.Context) (map[ResourceKind]int64, error) {
	removed := make(map[ResourceKind]int64, len(s.targets))
	var firstErr error
	for kind, target := range s.targets {
		n, err := target.SweepExpired(ctx)
		if err != nil {
			s.logger.WithError(err).WithField("resource", kind).Error("Retention sweep failed")
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		removed[kind] = n
	}
	return removed, firstErr
}

// Start регистрирует cron-задачу; schedule в формате robfig/cron ("@every 5m", "*/10 * * * *")
func (s *Sweeper) Start(ctx context.Context, schedule string) error {
	s.cron = cron.New()
	_, err := s.cron.AddFunc(schedule, func() {
		removed, err := s.SweepAll(ctx)
		if err != nil {
			return
		}
		s.logger.WithField("removed", removed).Debug("Scheduled retention sweep finished")
	})
	if err != nil {
		return fmt.Errorf("invalid sweep schedule %q: %w", schedule, err)
	}
	s.cron.Start()
	s.logger.WithField("schedule", schedule).Info("Retention sweeper started")
	return nil
}

// Stop останавливает cron и ждет завершения текущей задачи
func (s *Sweeper) Stop() {
	if s.cron == nil {
		return
	}
	<-s.cron.Stop().Done()
}
