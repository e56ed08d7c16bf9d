package service

import (
	"context"
	"errors"
	"testing"

	"github.com/shenikar/community_map/internal/models"
	"github.com/shenikar/community_map/internal/service/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestContentService(t *testing.T) (ContentService, *mocks.MockContentRepository) {
	ctrl := gomock.NewController(t)
	repoMock := mocks.NewMockContentRepository(ctrl)
	return NewContentService(repoMock, newTestLogger(), fixedClock), repoMock
}

func TestGetWelcomeNotice_Default(t *testing.T) {
	service, repoMock := newTestContentService(t)
	ctx := context.Background()

	repoMock.EXPECT().Get(ctx, models.ContentWelcomeNotice).Return(nil, ErrNotFound)

	rec, err := service.GetWelcomeNotice(ctx)

	require.NoError(t, err)
	assert.Equal(t, DefaultWelcomeNotice, rec.Content)
	require.NotNil(t, rec.Enabled)
	assert.True(t, *rec.Enabled)
}

func TestGetWelcomeNotice_StoredWithoutEnabled(t *testing.T) {
	service, repoMock := newTestContentService(t)
	ctx := context.Background()

	repoMock.EXPECT().Get(ctx, models.ContentWelcomeNotice).
		Return(&models.ContentRecord{ID: models.ContentWelcomeNotice, Content: "<p>hi</p>"}, nil)

	rec, err := service.GetWelcomeNotice(ctx)

	require.NoError(t, err)
	assert.Equal(t, "<p>hi</p>", rec.Content)
	require.NotNil(t, rec.Enabled)
	assert.True(t, *rec.Enabled)
}

func TestSetWelcomeNotice(t *testing.T) {
	service, repoMock := newTestContentService(t)
	ctx := context.Background()

	repoMock.EXPECT().Upsert(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, rec *models.ContentRecord) error {
			assert.Equal(t, models.ContentWelcomeNotice, rec.ID)
			assert.Equal(t, "<b>new</b>", rec.Content)
			require.NotNil(t, rec.Enabled)
			assert.False(t, *rec.Enabled)
			assert.Equal(t, testNow, rec.UpdatedAt)
			return nil
		})

	require.NoError(t, service.SetWelcomeNotice(ctx, "<b>new</b>", false))
}

func TestLiveUpdates(t *testing.T) {
	service, repoMock := newTestContentService(t)
	ctx := context.Background()

	repoMock.EXPECT().Get(ctx, models.ContentLiveUpdates).Return(nil, ErrNotFound)
	rec, err := service.GetLiveUpdates(ctx)
	require.NoError(t, err)
	assert.Empty(t, rec.Content)

	repoMock.EXPECT().Upsert(ctx, gomock.Any()).Return(nil)
	require.NoError(t, service.SetLiveUpdates(ctx, "Road closed on Main St"))

	dbErr := errors.New("db error")
	repoMock.EXPECT().Get(ctx, models.ContentLiveUpdates).Return(nil, dbErr)
	_, err = service.GetLiveUpdates(ctx)
	assert.ErrorIs(t, err, dbErr)
}
