package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/community_map/internal/metrics"
	"github.com/shenikar/community_map/internal/models"
	"github.com/sirupsen/logrus"
)

//go:generate mockgen -source=chat.go -destination=mocks/mock_chat.go -package=mocks

// ChatRepository хранит сообщения общего чата
type ChatRepository interface {
	Create(ctx context.Context, msg *models.ChatMessage) error
	List(ctx context.Context) ([]*models.ChatMessage, error)
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}

type ChatService interface {
	ListMessages(ctx context.Context) ([]*models.ChatMessage, error)
	PostMessage(ctx context.Context, message, author string) (*models.ChatMessage, error)
	SweepExpired(ctx context.Context) (int64, error)
}

type chatService struct {
	repo   ChatRepository
	logger *logrus.Logger
	policy RetentionPolicy
	now    Clock
}

func NewChatService(repo ChatRepository, logger *logrus.Logger, clock Clock) ChatService {
	return &chatService{
		repo:   repo,
		logger: logger,
		policy: DefaultRetentionPolicy(),
		now:    clockOrDefault(clock),
	}
}

// ListMessages возвращает сообщения за последние 24 часа в хронологическом порядке
func (s *chatService) ListMessages(ctx context.Context) ([]*models.ChatMessage, error) {
	if _, err := s.SweepExpired(ctx); err != nil {
		return nil, err
	}
	messages, err := s.repo.List(ctx)
	if err != nil {
		s.logger.WithError(err).WithField("service", "chat").Error("Failed to list chat messages")
		return nil, fmt.Errorf("service: could not list chat messages: %w", err)
	}
	return messages, nil
}

func (s *chatService) PostMessage(ctx context.Context, message, author string) (*models.ChatMessage, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return nil, fmt.Errorf("%w: message must not be empty", ErrInvalidArgument)
	}
	author = strings.TrimSpace(author)
	if author == "" {
		author = models.DefaultAuthor
	}

	msg := &models.ChatMessage{
		ID:        uuid.NewString(),
		Message:   message,
		Author:    author,
		Timestamp: s.now(),
	}
	if err := s.repo.Create(ctx, msg); err != nil {
		s.logger.WithError(err).WithField("service", "chat").Error("Failed to store chat message")
		return nil, fmt.Errorf("service: could not post chat message: %w", err)
	}
	return msg, nil
}

func (s *chatService) SweepExpired(ctx context.Context) (int64, error) {
	cutoff, _ := s.policy.Cutoff(KindChatMessage, s.now())
	n, err := s.repo.DeleteOlderThan(ctx, cutoff)
	if err != nil {
		return 0, fmt.Errorf("service: could not sweep expired chat messages: %w", err)
	}
	if n > 0 {
		metrics.SweptRecordsTotal.WithLabelValues(string(KindChatMessage)).Add(float64(n))
	}
	return n, nil
}
