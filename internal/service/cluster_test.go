package service

import (
	"testing"
	"time"

	"github.com/shenikar/community_map/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestClusterCount(t *testing.T) {
	policy := DefaultRetentionPolicy()
	incident := &models.Incident{Category: "theft", Latitude: 40.7128, Longitude: -74.0060}

	tests := []struct {
		name       string
		candidates []*models.Incident
		want       int
	}{
		{name: "no candidates", want: 1},
		{
			name: "nearby same category",
			candidates: []*models.Incident{
				{Category: "theft", Latitude: 40.7130, Longitude: -74.0062, Timestamp: testNow.Add(-time.Hour)},
				{Category: "theft", Latitude: 40.7128, Longitude: -74.0060, Timestamp: testNow},
			},
			want: 3,
		},
		{
			name: "other category ignored",
			candidates: []*models.Incident{
				{Category: "fire", Latitude: 40.7128, Longitude: -74.0060, Timestamp: testNow},
			},
			want: 1,
		},
		{
			name: "too far",
			candidates: []*models.Incident{
				// ~555 м к северу
				{Category: "theft", Latitude: 40.7178, Longitude: -74.0060, Timestamp: testNow},
			},
			want: 1,
		},
		{
			name: "older than six hours",
			candidates: []*models.Incident{
				{Category: "theft", Latitude: 40.7128, Longitude: -74.0060, Timestamp: testNow.Add(-IncidentRetention - time.Second)},
			},
			want: 1,
		},
		{
			name: "exactly six hours is still inside",
			candidates: []*models.Incident{
				{Category: "theft", Latitude: 40.7128, Longitude: -74.0060, Timestamp: testNow.Add(-IncidentRetention)},
			},
			want: 2,
		},
		{
			name:       "nil candidate",
			candidates: []*models.Incident{nil},
			want:       1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClusterCount(incident, tt.candidates, testNow, policy))
		})
	}
}

func TestIsVerified(t *testing.T) {
	assert.False(t, IsVerified("", ""))
	assert.False(t, IsVerified("  ", "\t"))
	assert.True(t, IsVerified("a@b.c", ""))
	assert.True(t, IsVerified("", "+1 555 0100"))
}

func TestRetentionPolicy(t *testing.T) {
	policy := DefaultRetentionPolicy()

	d, ok := policy.MaxAge(KindIncident)
	assert.True(t, ok)
	assert.Equal(t, 6*time.Hour, d)

	_, ok = policy.MaxAge(KindStreetHighlight)
	assert.False(t, ok)
	_, ok = policy.Cutoff(KindContent, testNow)
	assert.False(t, ok)

	cutoff, ok := policy.Cutoff(KindChatMessage, testNow)
	assert.True(t, ok)
	assert.Equal(t, testNow.Add(-24*time.Hour), cutoff)

	assert.False(t, policy.Expired(KindPresence, testNow.Add(-2*time.Minute), testNow))
	assert.True(t, policy.Expired(KindPresence, testNow.Add(-2*time.Minute-time.Millisecond), testNow))
	assert.False(t, policy.Expired(KindStreetHighlight, time.Time{}, testNow))
}

func TestSanitizePatch(t *testing.T) {
	t.Run("coerces json numbers", func(t *testing.T) {
		patch, err := sanitizePatch(map[string]any{
			"latitude":      float64(10),
			"cluster_count": float64(3),
			"is_verified":   true,
		}, incidentFields)
		assert.NoError(t, err)
		assert.Equal(t, map[string]any{"latitude": 10.0, "cluster_count": 3, "is_verified": true}, patch)
	})

	t.Run("rejects bad values", func(t *testing.T) {
		for _, fields := range []map[string]any{
			{"latitude": 91.0},
			{"longitude": "east"},
			{"cluster_count": 0.0},
			{"like_count": 1.5},
			{"like_count": -1.0},
		} {
			_, err := sanitizePatch(fields, incidentFields)
			assert.ErrorIs(t, err, ErrInvalidArgument, "%v", fields)
		}
	})

	t.Run("highlight enums", func(t *testing.T) {
		_, err := sanitizePatch(map[string]any{"color": "blue"}, highlightFields)
		assert.ErrorIs(t, err, ErrInvalidArgument)

		patch, err := sanitizePatch(map[string]any{"color": "green", "_id": "x"}, highlightFields)
		assert.NoError(t, err)
		assert.Equal(t, map[string]any{"color": "green"}, patch)
	})
}
