package webhook

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shenikar/community_map/internal/models"
)

const (
	webhookQueueKey = "community_map:webhook_events"

	EventIncidentCreated = "incident.created"
)

// WebhookEvent - событие, отправляемое подписчику при появлении нового инцидента.
// Контактные данные автора в событие не попадают.
type WebhookEvent struct {
	Type      string           `json:"type"`
	Incident  *models.Incident `json:"incident"`
	Timestamp time.Time        `json:"timestamp"`
}

// NewIncidentCreatedEvent строит событие о новом инциденте
func NewIncidentCreatedEvent(incident *models.Incident, at time.Time) WebhookEvent {
	return WebhookEvent{
		Type:      EventIncidentCreated,
		Incident:  incident.WithoutContact(),
		Timestamp: at.UTC(),
	}
}

//go:generate mockgen -source=publisher.go -destination=mocks/mock_publisher.go -package=mocks

// WebhookPublisher - интерфейс для публикации вебхуков
type WebhookPublisher interface {
	Publish(ctx context.Context, event WebhookEvent) error
}

// RedisWebhookPublisher - реализация WebhookPublisher, использующая Redis
type RedisWebhookPublisher struct {
	redisClient *redis.Client
}

// NewRedisWebhookPublisher создает новый RedisWebhookPublisher
func NewRedisWebhookPublisher(client *redis.Client) *RedisWebhookPublisher {
	return &RedisWebhookPublisher{
		redisClient: client,
	}
}

// Publish публикует событие вебхука в очередь Redis
func (p *RedisWebhookPublisher) Publish(ctx context.Context, event WebhookEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal webhook event: %w", err)
	}

	if err := p.redisClient.LPush(ctx, webhookQueueKey, payload).Err(); err != nil {
		return fmt.Errorf("failed to publish webhook event to Redis: %w", err)
	}
	return nil
}

// NopPublisher отбрасывает события; используется без Redis
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, WebhookEvent) error { return nil }
