package geocoding

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/shenikar/community_map/internal/models"
	"github.com/shenikar/community_map/internal/service"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})
	return logger
}

func newTestClient(url string) *Client {
	return NewClient(Config{BaseURL: url, UserAgent: "test-agent", Timeout: time.Second}, newTestLogger())
}

func TestClientSearch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/search", r.URL.Path)
		assert.Equal(t, "Main St", r.URL.Query().Get("q"))
		assert.Equal(t, "json", r.URL.Query().Get("format"))
		assert.Equal(t, "2", r.URL.Query().Get("limit"))
		assert.Equal(t, "test-agent", r.Header.Get("User-Agent"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{"display_name": "Main St, Springfield", "lat": "40.7128", "lon": "-74.0060"},
			{"display_name": "broken", "lat": "north", "lon": "-74"},
			{"display_name": "Main St, Shelbyville", "lat": "41.5", "lon": "-73.25"},
			{"display_name": "Main St, Ogdenville", "lat": "42", "lon": "-72"}
		]`))
	}))
	defer srv.Close()

	locations, err := newTestClient(srv.URL).Search(context.Background(), "Main St", 2)

	require.NoError(t, err)
	assert.Equal(t, []models.GeoLocation{
		{DisplayName: "Main St, Springfield", Latitude: 40.7128, Longitude: -74.0060},
		{DisplayName: "Main St, Shelbyville", Latitude: 41.5, Longitude: -73.25},
	}, locations)
}

func TestClientSearch_UnexpectedStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	_, err := newTestClient(srv.URL).Search(context.Background(), "x", 5)

	assert.ErrorIs(t, err, ErrUnexpectedStatus)
}

func TestClientSearch_MalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"error": "not a list"`))
	}))
	defer srv.Close()

	_, err := newTestClient(srv.URL).Search(context.Background(), "x", 5)

	assert.ErrorIs(t, err, service.ErrGeocodeResponse)
	assert.NotErrorIs(t, err, ErrUnexpectedStatus)
}

func TestClientSearch_BreakerOpens(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := newTestClient(srv.URL)
	for i := 0; i < 10; i++ {
		_, err := client.Search(context.Background(), "x", 5)
		assert.Error(t, err)
	}

	assert.Equal(t, int32(5), atomic.LoadInt32(&calls))
}

// stubGeocoder считает обращения к провайдеру
type stubGeocoder struct {
	calls     int
	locations []models.GeoLocation
}

func (s *stubGeocoder) Search(context.Context, string, int) ([]models.GeoLocation, error) {
	s.calls++
	return s.locations, nil
}

func TestCachedGeocoder(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer client.Close()
	ctx := context.Background()

	stub := &stubGeocoder{locations: []models.GeoLocation{{DisplayName: "Main St", Latitude: 1, Longitude: 2}}}
	cached := NewCachedGeocoder(stub, client, time.Minute, newTestLogger())

	first, err := cached.Search(ctx, "Main St", 5)
	require.NoError(t, err)
	second, err := cached.Search(ctx, "  main st ", 5)
	require.NoError(t, err)

	assert.Equal(t, 1, stub.calls)
	assert.Equal(t, first, second)
	assert.True(t, mr.Exists(cacheKey("Main St", 5)))

	mr.FastForward(2 * time.Minute)
	_, err = cached.Search(ctx, "Main St", 5)
	require.NoError(t, err)
	assert.Equal(t, 2, stub.calls)
}

func TestCachedGeocoder_EmptyResultsNotCached(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer client.Close()

	stub := &stubGeocoder{}
	cached := NewCachedGeocoder(stub, client, time.Minute, newTestLogger())

	for i := 0; i < 2; i++ {
		locations, err := cached.Search(context.Background(), "nowhere", 5)
		require.NoError(t, err)
		assert.Empty(t, locations)
	}
	assert.Equal(t, 2, stub.calls)
}
