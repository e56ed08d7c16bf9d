package repository

import (
	"context"
	"testing"
	"time"

	"github.com/shenikar/community_map/internal/models"
	"github.com/shenikar/community_map/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func TestIncidentRepository(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
	ctx := context.Background()
	ns := "test.incidents"

	mt.Run("create", func(mt *mtest.T) {
		repo := NewIncidentRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		err := repo.Create(ctx, &models.Incident{ID: "a", Category: "theft", ClusterCount: 1, Timestamp: time.Now()})

		require.NoError(mt, err)
	})

	mt.Run("list decodes legacy documents", func(mt *mtest.T) {
		repo := NewIncidentRepository(mt.DB)
		legacy := time.Date(2025, 3, 14, 8, 0, 0, 0, time.UTC)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch,
			bson.D{
				{Key: "id", Value: "new"},
				{Key: "category", Value: "theft"},
				{Key: "cluster_count", Value: 2},
				{Key: "like_count", Value: 5},
				{Key: "timestamp", Value: "2025-03-14T09:00:00.000000Z"},
			},
			bson.D{
				{Key: "id", Value: "old"},
				{Key: "category", Value: "theft"},
				{Key: "timestamp", Value: primitive.NewDateTimeFromTime(legacy)},
			},
		))

		incidents, err := repo.List(ctx, false)

		require.NoError(mt, err)
		require.Len(mt, incidents, 2)
		assert.Equal(mt, "new", incidents[0].ID)
		assert.Equal(mt, 2, incidents[0].ClusterCount)
		assert.Equal(mt, 5, incidents[0].LikeCount)
		assert.Equal(mt, time.Date(2025, 3, 14, 9, 0, 0, 0, time.UTC), incidents[0].Timestamp)
		assert.Equal(mt, 1, incidents[1].ClusterCount)
		assert.True(mt, legacy.Equal(incidents[1].Timestamp))
	})

	mt.Run("delete older than", func(mt *mtest.T) {
		repo := NewIncidentRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 3}))

		n, err := repo.DeleteOlderThan(ctx, time.Now())

		require.NoError(mt, err)
		assert.Equal(mt, int64(3), n)
	})

	mt.Run("delete missing", func(mt *mtest.T) {
		repo := NewIncidentRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 0}))

		err := repo.Delete(ctx, "missing")

		assert.ErrorIs(mt, err, service.ErrNotFound)
	})

	mt.Run("update missing", func(mt *mtest.T) {
		repo := NewIncidentRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateSuccessResponse(
			bson.E{Key: "n", Value: 0},
			bson.E{Key: "nModified", Value: 0},
		))

		err := repo.Update(ctx, "missing", map[string]any{"urgency": "low"})

		assert.ErrorIs(mt, err, service.ErrNotFound)
	})

	mt.Run("increment counter", func(mt *mtest.T) {
		repo := NewIncidentRepository(mt.DB)
		mt.AddMockResponses(bson.D{
			{Key: "ok", Value: 1},
			{Key: "value", Value: bson.D{
				{Key: "like_count", Value: 3},
				{Key: "dislike_count", Value: 1},
			}},
		})

		counts, err := repo.IncrementCounter(ctx, "a", "like_count")

		require.NoError(mt, err)
		assert.Equal(mt, &models.ReactionCounts{LikeCount: 3, DislikeCount: 1}, counts)
	})

	mt.Run("increment missing", func(mt *mtest.T) {
		repo := NewIncidentRepository(mt.DB)
		mt.AddMockResponses(bson.D{
			{Key: "ok", Value: 1},
			{Key: "value", Value: nil},
		})

		_, err := repo.IncrementCounter(ctx, "missing", "like_count")

		assert.ErrorIs(mt, err, service.ErrNotFound)
	})
}
