package service

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shortly/internal/mocks"
	"shortly/internal/model"
)

func TestAdminService_ListLinks(t *testing.T) {
	t.Run("returns a page with short URLs", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockStore := mocks.NewMockStoreInterface(ctrl)
		mockCache := mocks.NewMockCacheInterface(ctrl)

		created := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
		mockStore.EXPECT().ListLinks(gomock.Any(), 10, 2).Return([]model.ShortLink{
			{Code: "abc1234", TargetURL: "https://example.com", CreatedAt: created, ClickCount: 5, IsActive: true},
			{Code: "xyz9876", TargetURL: "https://example.org", CreatedAt: created, ClickCount: 0, IsActive: false},
		}, int64(42), nil)

		svc := NewAdminService(mockStore, mockCache, "https://sho.rt")
		page, err := svc.ListLinks(context.Background(), 10, 2)

		require.NoError(t, err)
		assert.Equal(t, int64(42), page.Total)
		assert.Equal(t, 10, page.Skip)
		assert.Equal(t, 2, page.Limit)
		require.Len(t, page.Links, 2)
		assert.Equal(t, "https://sho.rt/abc1234", page.Links[0].ShortURL)
		assert.Equal(t, int64(5), page.Links[0].ClickCount)
		assert.False(t, page.Links[1].IsActive)
	})

	t.Run("empty page", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockStore := mocks.NewMockStoreInterface(ctrl)
		mockStore.EXPECT().ListLinks(gomock.Any(), 0, 100).Return(nil, int64(0), nil)

		svc := NewAdminService(mockStore, mocks.NewMockCacheInterface(ctrl), "https://sho.rt")
		page, err := svc.ListLinks(context.Background(), 0, 100)

		require.NoError(t, err)
		assert.Equal(t, int64(0), page.Total)
		assert.NotNil(t, page.Links)
		assert.Empty(t, page.Links)
	})

	t.Run("store failure propagates", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockStore := mocks.NewMockStoreInterface(ctrl)
		mockStore.EXPECT().ListLinks(gomock.Any(), 0, 100).Return(nil, int64(0), assert.AnError)

		svc := NewAdminService(mockStore, mocks.NewMockCacheInterface(ctrl), "https://sho.rt")
		page, err := svc.ListLinks(context.Background(), 0, 100)

		assert.ErrorIs(t, err, assert.AnError)
		assert.Nil(t, page)
	})
}

func TestAdminService_TotalClicks(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := mocks.NewMockStoreInterface(ctrl)
	mockStore.EXPECT().TotalClicks(gomock.Any()).Return(int64(123), nil)

	svc := NewAdminService(mockStore, mocks.NewMockCacheInterface(ctrl), "https://sho.rt")
	total, err := svc.TotalClicks(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, int64(123), total)
}

func TestAdminService_Deactivate(t *testing.T) {
	t.Run("deactivates and evicts cache", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockStore := mocks.NewMockStoreInterface(ctrl)
		mockCache := mocks.NewMockCacheInterface(ctrl)

		mockStore.EXPECT().Deactivate(gomock.Any(), "abc1234").Return(true, nil)
		mockCache.EXPECT().DeleteURL(gomock.Any(), "abc1234").Return(nil)

		svc := NewAdminService(mockStore, mockCache, "https://sho.rt")
		assert.NoError(t, svc.Deactivate(context.Background(), "abc1234"))
	})

	t.Run("code is normalized first", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockStore := mocks.NewMockStoreInterface(ctrl)
		mockCache := mocks.NewMockCacheInterface(ctrl)

		mockStore.EXPECT().Deactivate(gomock.Any(), "abc1234").Return(true, nil)
		mockCache.EXPECT().DeleteURL(gomock.Any(), "abc1234").Return(nil)

		svc := NewAdminService(mockStore, mockCache, "https://sho.rt")
		assert.NoError(t, svc.Deactivate(context.Background(), " ABC1234 "))
	})

	t.Run("unknown or already inactive code", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockStore := mocks.NewMockStoreInterface(ctrl)
		mockStore.EXPECT().Deactivate(gomock.Any(), "unknown").Return(false, nil)

		svc := NewAdminService(mockStore, mocks.NewMockCacheInterface(ctrl), "https://sho.rt")
		err := svc.Deactivate(context.Background(), "unknown")
		assert.ErrorIs(t, err, ErrLinkNotFound)
	})

	t.Run("eviction failure is non-fatal", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockStore := mocks.NewMockStoreInterface(ctrl)
		mockCache := mocks.NewMockCacheInterface(ctrl)

		mockStore.EXPECT().Deactivate(gomock.Any(), "abc1234").Return(true, nil)
		mockCache.EXPECT().DeleteURL(gomock.Any(), "abc1234").Return(assert.AnError)

		svc := NewAdminService(mockStore, mockCache, "https://sho.rt")
		assert.NoError(t, svc.Deactivate(context.Background(), "abc1234"))
	})

	t.Run("store failure propagates", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockStore := mocks.NewMockStoreInterface(ctrl)
		mockStore.EXPECT().Deactivate(gomock.Any(), "abc1234").Return(false, assert.AnError)

		svc := NewAdminService(mockStore, mocks.NewMockCacheInterface(ctrl), "https://sho.rt")
		err := svc.Deactivate(context.Background(), "abc1234")
		assert.ErrorIs(t, err, assert.AnError)
	})
}

func TestAdminService_Metrics(t *testing.T) {
	t.Run("both sides healthy", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockStore := mocks.NewMockStoreInterface(ctrl)
		mockCache := mocks.NewMockCacheInterface(ctrl)

		mockStore.EXPECT().CountLinks(gomock.Any()).Return(int64(10), int64(8), nil)
		mockCache.EXPECT().Info(gomock.Any()).Return(
			"# Memory\r\nused_memory_human:1.2M\r\nconnected_clients:3\r\nkeyspace_hits:100\r\nkeyspace_misses:7\r\n", nil)

		svc := NewAdminService(mockStore, mockCache, "https://sho.rt")
		metrics, err := svc.Metrics(context.Background())
		require.NoError(t, err)

		db := metrics["db"].(map[string]interface{})
		assert.Equal(t, int64(10), db["total_links"])
		assert.Equal(t, int64(8), db["active_links"])

		redis := metrics["redis"].(map[string]interface{})
		assert.Equal(t, "1.2M", redis["used_memory_human"])
		assert.Equal(t, "3", redis["connected_clients"])
		assert.Equal(t, "100", redis["keyspace_hits"])
		assert.Equal(t, "7", redis["keyspace_misses"])
	})

	t.Run("failures reported inline", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockStore := mocks.NewMockStoreInterface(ctrl)
		mockCache := mocks.NewMockCacheInterface(ctrl)

		mockStore.EXPECT().CountLinks(gomock.Any()).Return(int64(0), int64(0), assert.AnError)
		mockCache.EXPECT().Info(gomock.Any()).Return("", assert.AnError)

		svc := NewAdminService(mockStore, mockCache, "https://sho.rt")
		metrics, err := svc.Metrics(context.Background())
		require.NoError(t, err)

		db := metrics["db"].(map[string]interface{})
		assert.Contains(t, db, "error")
		redis := metrics["redis"].(map[string]interface{})
		assert.Contains(t, redis, "error")
	})
}

func TestInfoField(t *testing.T) {
	info := "# Server\r\nredis_version:7.2.0\r\nconnected_clients:3\r\n"

	v, ok := infoField(info, "connected_clients")
	assert.True(t, ok)
	assert.Equal(t, "3", v)

	_, ok = infoField(info, "missing_field")
	assert.False(t, ok)

	// Bare-newline payloads are handled too
	v, ok = infoField("used_memory_human:1.2M\nkeyspace_hits:5\n", "keyspace_hits")
	assert.True(t, ok)
	assert.Equal(t, "5", v)
}
