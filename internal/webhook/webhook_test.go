package webhook

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/shenikar/community_map/internal/config"
	"github.com/shenikar/community_map/internal/models"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRedis(t *testing.T) *redis.Client {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return client
}

func newTestLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})
	return logger
}

func TestNewIncidentCreatedEvent_StripsContacts(t *testing.T) {
	incident := &models.Incident{ID: "a", ContactEmail: "a@b.c", ContactPhone: "+1"}

	event := NewIncidentCreatedEvent(incident, time.Now())

	assert.Equal(t, EventIncidentCreated, event.Type)
	assert.Empty(t, event.Incident.ContactEmail)
	assert.Empty(t, event.Incident.ContactPhone)
	assert.Equal(t, "a@b.c", incident.ContactEmail, "source incident is not modified")
}

func TestRedisWebhookPublisher_Publish(t *testing.T) {
	client := newTestRedis(t)
	publisher := NewRedisWebhookPublisher(client)
	ctx := context.Background()

	err := publisher.Publish(ctx, NewIncidentCreatedEvent(&models.Incident{ID: "a"}, time.Now()))
	require.NoError(t, err)

	raw, err := client.RPop(ctx, webhookQueueKey).Result()
	require.NoError(t, err)
	var event WebhookEvent
	require.NoError(t, json.Unmarshal([]byte(raw), &event))
	assert.Equal(t, "a", event.Incident.ID)
}

func TestProcessWebhookEvent_SignsPayload(t *testing.T) {
	payload := `{"type":"incident.created","incident":{"id":"a"}}`
	received := make(chan *http.Request, 1)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		assert.Equal(t, payload, string(body))
		received <- r
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	worker := NewWebhookWorker(newTestRedis(t), newTestLogger(), &config.Config{
		WebhookURL:     srv.URL,
		WebhookSecret:  "secret",
		WebhookTimeout: time.Second,
	})

	ok := worker.processWebhookEvent(context.Background(), payload)

	require.True(t, ok)
	r := <-received
	assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
	assert.Equal(t, generateHMACSHA256(payload, "secret"), r.Header.Get("X-Webhook-Signature"))
}

func TestProcessWebhookEvent_NoRetryOnFailure(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	worker := NewWebhookWorker(newTestRedis(t), newTestLogger(), &config.Config{
		WebhookURL:     srv.URL,
		WebhookTimeout: time.Second,
	})

	ok := worker.processWebhookEvent(context.Background(), `{"type":"incident.created"}`)

	assert.False(t, ok)
	assert.Equal(t, 1, calls)
}

func TestProcessWebhookEvent_InvalidPayload(t *testing.T) {
	worker := NewWebhookWorker(newTestRedis(t), newTestLogger(), &config.Config{WebhookURL: "http://127.0.0.1:1"})

	assert.False(t, worker.processWebhookEvent(context.Background(), "not json"))
}

func TestGenerateHMACSHA256(t *testing.T) {
	// RFC 4231, test case 2
	assert.Equal(t,
		"5bdcc146bf60754e6a042426089575c75a003f089d2739839dec58b964ec3843",
		generateHMACSHA256("what do ya want for nothing?", "Jefe"),
	)
}
