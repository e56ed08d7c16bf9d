package service

import (
	"context"
	"errors"
	"testing"

	"github.com/shenikar/community_map/internal/service/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestHeartbeat(t *testing.T) {
	ctrl := gomock.NewController(t)
	repoMock := mocks.NewMockPresenceRepository(ctrl)
	service := NewPresenceService(repoMock, newTestLogger(), fixedClock)
	ctx := context.Background()

	gomock.InOrder(
		repoMock.EXPECT().RemoveOlderThan(ctx, testNow.Add(-PresenceRetention)).Return(int64(3), nil),
		repoMock.EXPECT().Touch(ctx, "session-1", testNow).Return(nil),
		repoMock.EXPECT().Count(ctx).Return(int64(4), nil),
	)

	count, err := service.Heartbeat(ctx, "session-1")

	require.NoError(t, err)
	assert.Equal(t, int64(4), count)
}

func TestHeartbeat_EmptySession(t *testing.T) {
	ctrl := gomock.NewController(t)
	repoMock := mocks.NewMockPresenceRepository(ctrl)
	service := NewPresenceService(repoMock, newTestLogger(), fixedClock)

	_, err := service.Heartbeat(context.Background(), " ")

	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestHeartbeat_TouchError(t *testing.T) {
	ctrl := gomock.NewController(t)
	repoMock := mocks.NewMockPresenceRepository(ctrl)
	service := NewPresenceService(repoMock, newTestLogger(), fixedClock)
	ctx := context.Background()
	redisErr := errors.New("redis down")

	repoMock.EXPECT().RemoveOlderThan(ctx, gomock.Any()).Return(int64(0), nil)
	repoMock.EXPECT().Touch(ctx, "s", testNow).Return(redisErr)
	repoMock.EXPECT().Count(gomock.Any()).Times(0)

	_, err := service.Heartbeat(ctx, "s")

	assert.ErrorIs(t, err, redisErr)
}
