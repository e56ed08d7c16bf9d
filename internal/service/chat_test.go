package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shenikar/community_map/internal/models"
	"github.com/shenikar/community_map/internal/service/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestChatService(t *testing.T) (ChatService, *mocks.MockChatRepository) {
	ctrl := gomock.NewController(t)
	repoMock := mocks.NewMockChatRepository(ctrl)
	return NewChatService(repoMock, newTestLogger(), fixedClock), repoMock
}

func TestPostMessage_DefaultAuthor(t *testing.T) {
	service, repoMock := newTestChatService(t)
	ctx := context.Background()

	repoMock.EXPECT().Create(ctx, gomock.Any()).Return(nil).Times(1)

	msg, err := service.PostMessage(ctx, "  привет  ", " ")

	require.NoError(t, err)
	assert.NotEmpty(t, msg.ID)
	assert.Equal(t, "привет", msg.Message)
	assert.Equal(t, models.DefaultAuthor, msg.Author)
	assert.Equal(t, testNow, msg.Timestamp)
}

func TestPostMessage_EmptyMessage(t *testing.T) {
	service, repoMock := newTestChatService(t)

	repoMock.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)

	_, err := service.PostMessage(context.Background(), "   ", "bob")

	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestListMessages_SweepsTwentyFourHours(t *testing.T) {
	service, repoMock := newTestChatService(t)
	ctx := context.Background()
	messages := []*models.ChatMessage{{ID: "m1"}}

	gomock.InOrder(
		repoMock.EXPECT().DeleteOlderThan(ctx, testNow.Add(-24*time.Hour)).Return(int64(1), nil),
		repoMock.EXPECT().List(ctx).Return(messages, nil),
	)

	result, err := service.ListMessages(ctx)

	require.NoError(t, err)
	assert.Equal(t, messages, result)
}

func TestListMessages_RepoError(t *testing.T) {
	service, repoMock := newTestChatService(t)
	ctx := context.Background()
	dbErr := errors.New("db error")

	repoMock.EXPECT().DeleteOlderThan(ctx, gomock.Any()).Return(int64(0), nil)
	repoMock.EXPECT().List(ctx).Return(nil, dbErr)

	_, err := service.ListMessages(ctx)

	assert.ErrorIs(t, err, dbErr)
}
