package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	apperrors "github.com/harini-kv/yt-warehouse/internal/errors"
	"github.com/harini-kv/yt-warehouse/internal/model"
)

// videoRepository implements VideoRepository using PostgreSQL
type videoRepository struct {
	pool Pool
}

// NewVideoRepository creates a new instance of VideoRepository
func NewVideoRepository(pool Pool) VideoRepository {
	return &videoRepository{
		pool: pool,
	}
}

const videoUpsertSQL = `INSERT INTO videos (video_id, channel_id, video_name, published_at, view_count, like_count, comment_count, duration)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	ON CONFLICT (video_id) DO UPDATE SET
		view_count = EXCLUDED.view_count,
		like_count = EXCLUDED.like_count,
		comment_count = EXCLUDED.comment_count`

// UpsertBatch upserts all videos within a single transaction, in the order
// given. The batch commits or rolls back as a whole.
func (r *videoRepository) UpsertBatch(ctx context.Context, videos []*model.Video) error {
	if len(videos) == 0 {
		return nil
	}

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return handlePostgreSQLError(err, "failed to begin video upsert transaction")
	}
	defer tx.Rollback(ctx)

	for _, video := range videos {
		_, err := tx.Exec(ctx, videoUpsertSQL,
			video.ID, video.ChannelID, video.Name, video.PublishedAt,
			video.ViewCount, video.LikeCount, video.CommentCount, video.Duration,
		)
		if err != nil {
			return handlePostgreSQLError(err, "failed to upsert video")
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return handlePostgreSQLError(err, "failed to commit video upsert transaction")
	}

	return nil
}

// GetByID retrieves a video by its ID
func (r *videoRepository) GetByID(ctx context.Context, id string) (*model.Video, error) {
	sql := `SELECT video_id, channel_id, video_name, published_at, view_count, like_count, comment_count, duration
		FROM videos WHERE video_id = $1`
	row := r.pool.QueryRow(ctx, sql, id)

	var video model.Video
	err := row.Scan(
		&video.ID, &video.ChannelID, &video.Name, &video.PublishedAt,
		&video.ViewCount, &video.LikeCount, &video.CommentCount, &video.Duration,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.Wrap(err, apperrors.CodeNotFound, "video not found")
		}
		return nil, handlePostgreSQLError(err, "failed to get video")
	}

	return &video, nil
}

// GetByChannelID retrieves videos by channel ID, most viewed first
func (r *videoRepository) GetByChannelID(ctx context.Context, channelID string, limit, offset int) ([]*model.Video, error) {
	sql := `SELECT video_id, channel_id, video_name, published_at, view_count, like_count, comment_count, duration
		FROM videos WHERE channel_id = $1 ORDER BY view_count DESC, video_id LIMIT $2 OFFSET $3`
	rows, err := r.pool.Query(ctx, sql, channelID, limit, offset)
	if err != nil {
		return nil, handlePostgreSQLError(err, "failed to get videos by channel ID")
	}
	defer rows.Close()

	videos := []*model.Video{}
	for rows.Next() {
		var video model.Video
		err := rows.Scan(
			&video.ID, &video.ChannelID, &video.Name, &video.PublishedAt,
			&video.ViewCount, &video.LikeCount, &video.CommentCount, &video.Duration,
		)
		if err != nil {
			return nil, handlePostgreSQLError(err, "failed to scan video row")
		}
		videos = append(videos, &video)
	}

	if err := rows.Err(); err != nil {
		return nil, handlePostgreSQLError(err, "failed to iterate video rows")
	}

	return videos, nil
}

// CountByChannelID returns the number of stored videos for a channel
func (r *videoRepository) CountByChannelID(ctx context.Context, channelID string) (int64, error) {
	sql := "SELECT COUNT(*) FROM videos WHERE channel_id = $1"
	row := r.pool.QueryRow(ctx, sql, channelID)

	var count int64
	if err := row.Scan(&count); err != nil {
		return 0, handlePostgreSQLError(err, "failed to count videos")
	}

	return count, nil
}
