package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	apperrors "github.com/harini-kv/yt-warehouse/internal/errors"
	"github.com/harini-kv/yt-warehouse/internal/model"
)

// channelRepository implements ChannelRepository using PostgreSQL
type channelRepository struct {
	pool Pool
}

// NewChannelRepository creates a new instance of ChannelRepository
func NewChannelRepository(pool Pool) ChannelRepository {
	return &channelRepository{
		pool: pool,
	}
}

// Upsert inserts or merge-replaces a channel record. The merge is
// field-scoped: only the count columns are overwritten on conflict.
func (r *channelRepository) Upsert(ctx context.Context, channel *model.Channel) error {
	sql := `INSERT INTO channels (channel_id, channel_name, description, subscriber_count, video_count, view_count, playlist_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (channel_id) DO UPDATE SET
			subscriber_count = EXCLUDED.subscriber_count,
			video_count = EXCLUDED.video_count,
			view_count = EXCLUDED.view_count`
	_, err := r.pool.Exec(ctx, sql,
		channel.ID, channel.Name, channel.Description,
		channel.SubscriberCount, channel.VideoCount, channel.ViewCount,
		channel.PlaylistID,
	)
	if err != nil {
		return handlePostgreSQLError(err, "failed to upsert channel")
	}
	return nil
}

// GetByID retrieves a channel by its ID
func (r *channelRepository) GetByID(ctx context.Context, id string) (*model.Channel, error) {
	sql := `SELECT channel_id, channel_name, description, subscriber_count, video_count, view_count, playlist_id
		FROM channels WHERE channel_id = $1`
	row := r.pool.QueryRow(ctx, sql, id)

	var channel model.Channel
	err := row.Scan(
		&channel.ID, &channel.Name, &channel.Description,
		&channel.SubscriberCount, &channel.VideoCount, &channel.ViewCount,
		&channel.PlaylistID,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.Wrap(err, apperrors.CodeNotFound, "channel not found")
		}
		return nil, handlePostgreSQLError(err, "failed to get channel")
	}

	return &channel, nil
}

// List retrieves channels with pagination
func (r *channelRepository) List(ctx context.Context, limit, offset int) ([]*model.Channel, error) {
	sql := `SELECT channel_id, channel_name, description, subscriber_count, video_count, view_count, playlist_id
		FROM channels ORDER BY channel_name LIMIT $1 OFFSET $2`
	rows, err := r.pool.Query(ctx, sql, limit, offset)
	if err != nil {
		return nil, handlePostgreSQLError(err, "failed to list channels")
	}
	defer rows.Close()

	channels := []*model.Channel{}
	for rows.Next() {
		var channel model.Channel
		err := rows.Scan(
			&channel.ID, &channel.Name, &channel.Description,
			&channel.SubscriberCount, &channel.VideoCount, &channel.ViewCount,
			&channel.PlaylistID,
		)
		if err != nil {
			return nil, handlePostgreSQLError(err, "failed to scan channel row")
		}
		channels = append(channels, &channel)
	}

	if err := rows.Err(); err != nil {
		return nil, handlePostgreSQLError(err, "failed to iterate channel rows")
	}

	return channels, nil
}

// Delete deletes a channel by its ID
func (r *channelRepository) Delete(ctx context.Context, id string) error {
	sql := "DELETE FROM channels WHERE channel_id = $1"
	_, err := r.pool.Exec(ctx, sql, id)
	if err != nil {
		return handlePostgreSQLError(err, "failed to delete channel")
	}
	return nil
}
