package repository

import (
	"context"

	"github.com/harini-kv/yt-warehouse/internal/model"
)

// VideoRepository defines operations for Video persistence
type VideoRepository interface {
	// UpsertBatch inserts or merge-replaces video records within one
	// transaction. On conflict only the view/like/comment counts are
	// overwritten; title, publish time and duration stay as stored.
	UpsertBatch(ctx context.Context, videos []*model.Video) error

	// GetByID retrieves a video by its ID
	GetByID(ctx context.Context, id string) (*model.Video, error)

	// GetByChannelID retrieves videos for a channel ordered by view count,
	// most viewed first, with pagination
	GetByChannelID(ctx context.Context, channelID string, limit, offset int) ([]*model.Video, error)

	// CountByChannelID returns how many videos are stored for a channel
	CountByChannelID(ctx context.Context, channelID string) (int64, error)
}
