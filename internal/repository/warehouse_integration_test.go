//go:build integration

package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/harini-kv/yt-warehouse/internal/errors"
	"github.com/harini-kv/yt-warehouse/internal/model"
)

func seedChannel() *model.Channel {
	return &model.Channel{
		ID:              "UCintegration",
		Name:            "Integration Channel",
		Description:     "First description",
		SubscriberCount: 1000,
		VideoCount:      2,
		ViewCount:       50000,
		PlaylistID:      "UUintegration",
	}
}

func seedVideos() []*model.Video {
	publishedAt := time.Date(2022, 5, 1, 12, 0, 0, 0, time.UTC)
	return []*model.Video{
		{
			ID:           "vid-int-1",
			ChannelID:    "UCintegration",
			Name:         "First Video",
			PublishedAt:  publishedAt,
			ViewCount:    300,
			LikeCount:    30,
			CommentCount: 3,
			Duration:     "PT4M13S",
		},
		{
			ID:           "vid-int-2",
			ChannelID:    "UCintegration",
			Name:         "Second Video",
			PublishedAt:  publishedAt.AddDate(0, 1, 0),
			ViewCount:    700,
			LikeCount:    70,
			CommentCount: 7,
			Duration:     "PT10M",
		},
	}
}

func TestWarehouseIntegration(t *testing.T) {
	pool := SetupTestDB(t)
	ctx := context.Background()

	channelRepo := NewChannelRepository(pool)
	videoRepo := NewVideoRepository(pool)
	reportRepo := NewReportRepository(pool)

	t.Run("channel upsert is idempotent and count-scoped", func(t *testing.T) {
		require.NoError(t, channelRepo.Upsert(ctx, seedChannel()))

		// Simulate a fresh fetch where the upstream counts moved but the
		// description also changed. The merge must only take the counts.
		refetched := seedChannel()
		refetched.Description = "Rewritten upstream description"
		refetched.SubscriberCount = 1500
		refetched.ViewCount = 60000
		require.NoError(t, channelRepo.Upsert(ctx, refetched))

		stored, err := channelRepo.GetByID(ctx, "UCintegration")
		require.NoError(t, err)
		assert.Equal(t, "First description", stored.Description)
		assert.Equal(t, int64(1500), stored.SubscriberCount)
		assert.Equal(t, int64(60000), stored.ViewCount)
	})

	t.Run("video batch upsert refreshes counts only", func(t *testing.T) {
		require.NoError(t, videoRepo.UpsertBatch(ctx, seedVideos()))

		refetched := seedVideos()
		refetched[0].Name = "Renamed Upstream"
		refetched[0].ViewCount = 999
		require.NoError(t, videoRepo.UpsertBatch(ctx, refetched))

		stored, err := videoRepo.GetByID(ctx, "vid-int-1")
		require.NoError(t, err)
		assert.Equal(t, "First Video", stored.Name)
		assert.Equal(t, int64(999), stored.ViewCount)

		count, err := videoRepo.CountByChannelID(ctx, "UCintegration")
		require.NoError(t, err)
		assert.Equal(t, int64(2), count)
	})

	t.Run("videos list most viewed first", func(t *testing.T) {
		videos, err := videoRepo.GetByChannelID(ctx, "UCintegration", 10, 0)
		require.NoError(t, err)
		require.Len(t, videos, 2)
		assert.Equal(t, "vid-int-1", videos[0].ID)
		assert.GreaterOrEqual(t, videos[0].ViewCount, videos[1].ViewCount)
	})

	t.Run("reports run against live schema", func(t *testing.T) {
		for _, def := range reportRepo.Catalog() {
			result, err := reportRepo.Run(ctx, def.Name)
			require.NoError(t, err, "report %s", def.Name)
			assert.NotEmpty(t, result.Columns, "report %s", def.Name)
		}

		result, err := reportRepo.Run(ctx, "channels-published-2022")
		require.NoError(t, err)
		require.Len(t, result.Rows, 1)
		assert.Equal(t, "Integration Channel", result.Rows[0][0])
	})

	t.Run("orphan video insert is rejected", func(t *testing.T) {
		orphan := seedVideos()[0]
		orphan.ID = "vid-orphan"
		orphan.ChannelID = "UCdoesnotexist"
		err := videoRepo.UpsertBatch(ctx, []*model.Video{orphan})
		require.Error(t, err)
		assert.True(t, apperrors.HasCode(err, apperrors.CodeDependency))
	})

	t.Run("deleting a channel cascades to its videos", func(t *testing.T) {
		require.NoError(t, channelRepo.Delete(ctx, "UCintegration"))

		_, err := channelRepo.GetByID(ctx, "UCintegration")
		require.Error(t, err)
		assert.True(t, apperrors.HasCode(err, apperrors.CodeNotFound))

		count, err := videoRepo.CountByChannelID(ctx, "UCintegration")
		require.NoError(t, err)
		assert.Equal(t, int64(0), count)
	})
}
