package webhook

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shenikar/community_map/internal/config"
	"github.com/shenikar/community_map/internal/metrics"
	"github.com/sirupsen/logrus"
)

const popTimeout = 5 * time.Second

// WebhookWorker - структура для обработки и отправки вебхуков.
// Каждое событие доставляется не более одного раза, повторов нет.
type WebhookWorker struct {
	redisClient *redis.Client
	logger      *logrus.Logger
	cfg         *config.Config
	httpClient  *http.Client
}

// NewWebhookWorker создает новый WebhookWorker
func NewWebhookWorker(redisClient *redis.Client, logger *logrus.Logger, cfg *config.Config) *WebhookWorker {
	return &WebhookWorker{
		redisClient: redisClient,
		logger:      logger,
		cfg:         cfg,
		httpClient: &http.Client{
			Timeout: cfg.WebhookTimeout,
		},
	}
}

// Start запускает горутину для обработки очереди вебхуков
func (w *WebhookWorker) Start(ctx context.Context) {
	if w.cfg.WebhookURL == "" {
		w.logger.Info("Webhook URL is not configured, webhook worker disabled")
		return
	}
	w.logger.Info("Starting webhook worker...")
	go func() {
		for {
			select {
			case <-ctx.Done():
				w.logger.Info("Stopping webhook worker.")
				return
			default:
				result, err := w.redisClient.BRPop(ctx, popTimeout, webhookQueueKey).Result()
				if err != nil {
					if errors.Is(err, redis.Nil) || errors.Is(err, context.Canceled) {
						continue
					}
					w.logger.WithError(err).Error("Failed to pop webhook event from Redis")
					time.Sleep(popTimeout)
					continue
				}

				// result[0] - ключ, result[1] - значение
				w.processWebhookEvent(ctx, result[1])
			}
		}
	}()
}

func (w *WebhookWorker) processWebhookEvent(ctx context.Context, rawPayload string) bool {
	var event WebhookEvent
	if err := json.Unmarshal([]byte(rawPayload), &event); err != nil {
		w.logger.WithError(err).Error("Failed to unmarshal webhook event from Redis")
		return false
	}

	log := w.logger.WithField("event_type", event.Type)
	if event.Incident != nil {
		log = log.WithField("incident_id", event.Incident.ID)
	}
	log.Debug("Processing webhook event...")

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, w.cfg.WebhookURL, bytes.NewBufferString(rawPayload))
	if err != nil {
		log.WithError(err).Error("Failed to create webhook request")
		metrics.WebhookDeliveriesTotal.WithLabelValues("error").Inc()
		return false
	}
	req.Header.Set("Content-Type", "application/json")

	// Добавляем HMAC подпись, если WEBHOOK_SECRET задан
	if w.cfg.WebhookSecret != "" {
		req.Header.Set("X-Webhook-Signature", generateHMACSHA256(rawPayload, w.cfg.WebhookSecret))
	}

	resp, err := w.httpClient.Do(req)
	if err != nil {
		log.WithError(err).Warn("Failed to send webhook, event dropped")
		metrics.WebhookDeliveriesTotal.WithLabelValues("error").Inc()
		return false
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		log.Warnf("Webhook delivery failed with status code %d, event dropped", resp.StatusCode)
		metrics.WebhookDeliveriesTotal.WithLabelValues("rejected").Inc()
		return false
	}

	log.Info("Webhook delivered successfully.")
	metrics.WebhookDeliveriesTotal.WithLabelValues("delivered").Inc()
	return true
}

// generateHMACSHA256 генерирует HMAC-SHA256 подпись для данных
func generateHMACSHA256(data, secret string) string {
	h := hmac.New(sha256.New, []byte(secret))
	h.Write([]byte(data))
	return hex.EncodeToString(h.Sum(nil))
}
