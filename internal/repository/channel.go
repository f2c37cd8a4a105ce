package repository

import (
	"context"

	"github.com/harini-kv/yt-warehouse/internal/model"
)

// ChannelRepository defines operations for Channel persistence
type ChannelRepository interface {
	// Upsert inserts the channel, or on conflict overwrites only its
	// subscriber/video/view counts, leaving identity and description as stored
	Upsert(ctx context.Context, channel *model.Channel) error

	// GetByID retrieves a channel by its ID
	GetByID(ctx context.Context, id string) (*model.Channel, error)

	// List retrieves channels with pagination
	List(ctx context.Context, limit, offset int) ([]*model.Channel, error)

	// Delete deletes a channel by its ID (owned videos cascade)
	Delete(ctx context.Context, id string) error
}
