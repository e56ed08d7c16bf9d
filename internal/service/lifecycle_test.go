package service_test

import (
	"bytes"
	"context"
	"math"
	"sync"
	"testing"
	"time"

	"github.com/shenikar/community_map/internal/models"
	"github.com/shenikar/community_map/internal/repository/memory"
	"github.com/shenikar/community_map/internal/service"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeClock - управляемые часы для проверки окон хранения
type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2025, 3, 14, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func quietLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})
	return logger
}

func newIncidentFixture() (service.IncidentService, *memory.IncidentRepository, *fakeClock) {
	repo := memory.NewIncidentRepository()
	clock := newFakeClock()
	return service.NewIncidentService(repo, nil, quietLogger(), clock.Now), repo, clock
}

func report(category string, lat, lon float64) *models.Incident {
	return &models.Incident{
		Category:    category,
		Urgency:     "medium",
		Description: "test",
		Latitude:    lat,
		Longitude:   lon,
	}
}

func TestClusterSnapshotsAreNotRetroactive(t *testing.T) {
	svc, _, clock := newIncidentFixture()
	ctx := context.Background()

	first := report("theft", 40.7128, -74.0060)
	require.NoError(t, svc.CreateIncident(ctx, first))
	clock.Advance(time.Minute)
	second := report("theft", 40.7130, -74.0062)
	require.NoError(t, svc.CreateIncident(ctx, second))
	clock.Advance(time.Minute)
	third := report("theft", 40.7129, -74.0061)
	require.NoError(t, svc.CreateIncident(ctx, third))

	assert.Equal(t, 1, first.ClusterCount)
	assert.Equal(t, 2, second.ClusterCount)
	assert.Equal(t, 3, third.ClusterCount)

	list, err := svc.ListAdmin(ctx)
	require.NoError(t, err)
	counts := make(map[string]int, len(list))
	for _, inc := range list {
		counts[inc.ID] = inc.ClusterCount
	}
	assert.Equal(t, map[string]int{first.ID: 1, second.ID: 2, third.ID: 3}, counts)
}

func TestClusterIgnoresOtherCategoriesAndExpired(t *testing.T) {
	svc, repo, _ := newIncidentFixture()
	ctx := context.Background()

	repo.Put(&models.Incident{
		ID: "stale", Category: "theft", Latitude: 40.7128, Longitude: -74.0060,
		Timestamp: newFakeClock().Now().Add(-7 * time.Hour), ClusterCount: 1,
	})
	require.NoError(t, svc.CreateIncident(ctx, report("fire", 40.7128, -74.0060)))

	inc := report("theft", 40.7128, -74.0060)
	require.NoError(t, svc.CreateIncident(ctx, inc))
	assert.Equal(t, 1, inc.ClusterCount)
}

func TestVerificationFlagAndContactPrivacy(t *testing.T) {
	svc, _, _ := newIncidentFixture()
	ctx := context.Background()

	anonymous := report("accident", 1, 1)
	require.NoError(t, svc.CreateIncident(ctx, anonymous))
	withPhone := report("accident", 10, 10)
	withPhone.ContactPhone = "+1 555 0100"
	require.NoError(t, svc.CreateIncident(ctx, withPhone))

	assert.False(t, anonymous.IsVerified)
	assert.True(t, withPhone.IsVerified)

	public, err := svc.ListPublic(ctx, 0)
	require.NoError(t, err)
	for _, inc := range public {
		assert.Empty(t, inc.ContactPhone)
		assert.Empty(t, inc.ContactEmail)
	}

	admin, err := svc.ListAdmin(ctx)
	require.NoError(t, err)
	var phones []string
	for _, inc := range admin {
		if inc.ContactPhone != "" {
			phones = append(phones, inc.ContactPhone)
		}
	}
	assert.Equal(t, []string{"+1 555 0100"}, phones)
}

func TestConcurrentReactionsAreNotLost(t *testing.T) {
	svc, _, _ := newIncidentFixture()
	ctx := context.Background()
	inc := report("theft", 1, 1)
	require.NoError(t, svc.CreateIncident(ctx, inc))

	const workers = 50
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			reaction := models.ReactionLike
			if i%2 == 1 {
				reaction = models.ReactionDislike
			}
			_, err := svc.React(ctx, inc.ID, reaction)
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()

	counts, err := svc.React(ctx, inc.ID, models.ReactionLike)
	require.NoError(t, err)
	assert.Equal(t, workers/2+1, counts.LikeCount)
	assert.Equal(t, workers/2, counts.DislikeCount)
}

func TestReactErrors(t *testing.T) {
	svc, _, _ := newIncidentFixture()
	ctx := context.Background()
	inc := report("theft", 1, 1)
	require.NoError(t, svc.CreateIncident(ctx, inc))

	_, err := svc.React(ctx, inc.ID, "neutral")
	assert.ErrorIs(t, err, service.ErrInvalidArgument)

	_, err = svc.React(ctx, "missing", models.ReactionLike)
	assert.ErrorIs(t, err, service.ErrNotFound)
}

func TestHoursFilterAndLazySweep(t *testing.T) {
	svc, _, clock := newIncidentFixture()
	ctx := context.Background()

	old := report("theft", 1, 1)
	require.NoError(t, svc.CreateIncident(ctx, old))
	clock.Advance(2 * time.Hour)
	recent := report("theft", 2, 2)
	require.NoError(t, svc.CreateIncident(ctx, recent))

	lastHour, err := svc.ListPublic(ctx, 1)
	require.NoError(t, err)
	require.Len(t, lastHour, 1)
	assert.Equal(t, recent.ID, lastHour[0].ID)

	all, err := svc.ListPublic(ctx, 0)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, recent.ID, all[0].ID, "newest first")

	// окно больше любого допустимого time.Duration не должно переполняться
	for _, hours := range []int{6, 24, 3000000, 9000000, math.MaxInt} {
		wide, err := svc.ListPublic(ctx, hours)
		require.NoError(t, err)
		assert.Len(t, wide, 2, "hours=%d", hours)
	}

	// ровно 6 часов - запись еще видна
	clock.Advance(4 * time.Hour)
	all, err = svc.ListPublic(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	clock.Advance(time.Second)
	all, err = svc.ListPublic(ctx, 0)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, recent.ID, all[0].ID)
}

func TestUpdateKeepsIdentityAndTimestamp(t *testing.T) {
	svc, _, clock := newIncidentFixture()
	ctx := context.Background()
	inc := report("theft", 1, 1)
	require.NoError(t, svc.CreateIncident(ctx, inc))
	created := inc.Timestamp

	clock.Advance(time.Minute)
	err := svc.UpdateIncident(ctx, inc.ID, map[string]any{
		"id":          "hijacked",
		"timestamp":   "2001-01-01T00:00:00.000000Z",
		"description": "updated",
		"urgency":     "high",
	})
	require.NoError(t, err)

	list, err := svc.ListAdmin(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, inc.ID, list[0].ID)
	assert.Equal(t, created, list[0].Timestamp)
	assert.Equal(t, "updated", list[0].Description)
	assert.Equal(t, "high", list[0].Urgency)

	assert.ErrorIs(t, svc.UpdateIncident(ctx, "missing", map[string]any{"urgency": "low"}), service.ErrNotFound)
	assert.ErrorIs(t, svc.DeleteIncident(ctx, "missing"), service.ErrNotFound)
	require.NoError(t, svc.DeleteIncident(ctx, inc.ID))
}

func TestLegacyRecordsAreCanonicalized(t *testing.T) {
	svc, repo, _ := newIncidentFixture()
	ctx := context.Background()
	repo.Put(&models.Incident{
		ID:        "legacy",
		Category:  "theft",
		Timestamp: newFakeClock().Now().Add(-time.Hour),
	})

	list, err := svc.ListPublic(ctx, 0)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, 1, list[0].ClusterCount)
	assert.Zero(t, list[0].LikeCount)
}

func TestChatRetention(t *testing.T) {
	clock := newFakeClock()
	svc := service.NewChatService(memory.NewChatRepository(), quietLogger(), clock.Now)
	ctx := context.Background()

	first, err := svc.PostMessage(ctx, "first", "")
	require.NoError(t, err)
	clock.Advance(time.Hour)
	_, err = svc.PostMessage(ctx, "second", "bob")
	require.NoError(t, err)

	messages, err := svc.ListMessages(ctx)
	require.NoError(t, err)
	require.Len(t, messages, 2)
	assert.Equal(t, first.ID, messages[0].ID, "oldest first")
	assert.Equal(t, models.DefaultAuthor, messages[0].Author)

	clock.Advance(23*time.Hour + time.Second)
	messages, err = svc.ListMessages(ctx)
	require.NoError(t, err)
	require.Len(t, messages, 1)
	assert.Equal(t, "second", messages[0].Message)
}

func TestPresenceWindow(t *testing.T) {
	clock := newFakeClock()
	svc := service.NewPresenceService(memory.NewPresenceRepository(), quietLogger(), clock.Now)
	ctx := context.Background()

	count, err := svc.Heartbeat(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	clock.Advance(time.Minute)
	count, err = svc.Heartbeat(ctx, "b")
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	// повторный heartbeat той же сессии не увеличивает счетчик
	count, err = svc.Heartbeat(ctx, "b")
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	clock.Advance(time.Minute + time.Second)
	count, err = svc.Heartbeat(ctx, "b")
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestSweeperRemovesAllKinds(t *testing.T) {
	clock := newFakeClock()
	incidents := service.NewIncidentService(memory.NewIncidentRepository(), nil, quietLogger(), clock.Now)
	chat := service.NewChatService(memory.NewChatRepository(), quietLogger(), clock.Now)
	presence := service.NewPresenceService(memory.NewPresenceRepository(), quietLogger(), clock.Now)
	ctx := context.Background()

	require.NoError(t, incidents.CreateIncident(ctx, report("theft", 1, 1)))
	_, err := chat.PostMessage(ctx, "hello", "")
	require.NoError(t, err)
	_, err = presence.Heartbeat(ctx, "s")
	require.NoError(t, err)

	sweeper := service.NewSweeper(incidents, chat, presence, quietLogger())

	clock.Advance(time.Hour)
	removed, err := sweeper.SweepAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, map[service.ResourceKind]int64{
		service.KindIncident:    0,
		service.KindChatMessage: 0,
		service.KindPresence:    1,
	}, removed)

	clock.Advance(24 * time.Hour)
	removed, err = sweeper.SweepAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), removed[service.KindIncident])
	assert.Equal(t, int64(1), removed[service.KindChatMessage])
}

func TestSweeperRejectsBadSchedule(t *testing.T) {
	clock := newFakeClock()
	sweeper := service.NewSweeper(
		service.NewIncidentService(memory.NewIncidentRepository(), nil, quietLogger(), clock.Now),
		service.NewChatService(memory.NewChatRepository(), quietLogger(), clock.Now),
		service.NewPresenceService(memory.NewPresenceRepository(), quietLogger(), clock.Now),
		quietLogger(),
	)

	assert.Error(t, sweeper.Start(context.Background(), "not a schedule"))
	require.NoError(t, sweeper.Start(context.Background(), "@every 1h"))
	sweeper.Stop()
}

func TestWelcomeNoticeRoundTrip(t *testing.T) {
	clock := newFakeClock()
	svc := service.NewContentService(memory.NewContentRepository(), quietLogger(), clock.Now)
	ctx := context.Background()

	rec, err := svc.GetWelcomeNotice(ctx)
	require.NoError(t, err)
	assert.Equal(t, service.DefaultWelcomeNotice, rec.Content)
	assert.True(t, *rec.Enabled)

	require.NoError(t, svc.SetWelcomeNotice(ctx, "<p>closed</p>", false))
	rec, err = svc.GetWelcomeNotice(ctx)
	require.NoError(t, err)
	assert.Equal(t, "<p>closed</p>", rec.Content)
	assert.False(t, *rec.Enabled)
	assert.Equal(t, clock.Now(), rec.UpdatedAt)
}

func TestStreetHighlightsLifecycle(t *testing.T) {
	clock := newFakeClock()
	svc := service.NewHighlightService(memory.NewHighlightRepository(), quietLogger(), clock.Now)
	ctx := context.Background()

	h := &models.StreetHighlight{
		StartLat: 40.71, StartLng: -74.00, EndLat: 40.72, EndLng: -74.01,
		Color: "red", Reason: "protest",
	}
	require.NoError(t, svc.CreateHighlight(ctx, h))
	assert.NotEmpty(t, h.ID)
	assert.Equal(t, models.DefaultHighlightCreator, h.CreatedBy)

	require.NoError(t, svc.UpdateHighlight(ctx, h.ID, map[string]any{"color": "green", "created_at": "x"}))
	assert.ErrorIs(t, svc.UpdateHighlight(ctx, h.ID, map[string]any{"reason": "parade"}), service.ErrInvalidArgument)

	// отметки не истекают по времени
	clock.Advance(30 * 24 * time.Hour)
	list, err := svc.ListHighlights(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "green", list[0].Color)
	assert.Equal(t, h.CreatedAt, list[0].CreatedAt)

	require.NoError(t, svc.DeleteHighlight(ctx, h.ID))
	assert.ErrorIs(t, svc.DeleteHighlight(ctx, h.ID), service.ErrNotFound)
}
