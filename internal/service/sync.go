package service

import (
	"context"

	yt "google.golang.org/api/youtube/v3"

	"github.com/harini-kv/yt-warehouse/internal/errors"
	"github.com/harini-kv/yt-warehouse/internal/model"
	"github.com/harini-kv/yt-warehouse/internal/repository"
	"github.com/harini-kv/yt-warehouse/internal/youtube"
)

// SyncService reconciles a channel and its uploads against the warehouse
type SyncService interface {
	// SyncChannel fetches channel and video metadata upstream and upserts it.
	// The operation is not atomic across the two entities: the channel
	// commits before any video does, so a failure partway leaves the channel
	// updated. Re-invocation is safe; upserts are keyed by stable IDs.
	SyncChannel(ctx context.Context, channelID string) (*SyncResult, error)
}

// SyncOptions controls sync behavior
type SyncOptions struct {
	// MaxPlaylistItems bounds how many uploads are walked; 0 means all
	MaxPlaylistItems int
	// AbortOnMalformed aborts the whole sync on the first malformed video
	// payload instead of skipping it
	AbortOnMalformed bool
}

// SkippedVideo records one video left out of a sync and why
type SkippedVideo struct {
	VideoID string `json:"video_id,omitempty"`
	Reason  string `json:"reason"`
}

// SyncResult summarizes one completed sync
type SyncResult struct {
	Channel      *model.Channel `json:"channel"`
	VideosSynced int            `json:"videos_synced"`
	Skipped      []SkippedVideo `json:"skipped,omitempty"`
}

// syncService implements SyncService
type syncService struct {
	client      youtube.Client
	channelRepo repository.ChannelRepository
	videoRepo   repository.VideoRepository
	opts        SyncOptions
}

// NewSyncService creates a SyncService with injected collaborators
func NewSyncService(client youtube.Client, channelRepo repository.ChannelRepository, videoRepo repository.VideoRepository, opts SyncOptions) SyncService {
	return &syncService{
		client:      client,
		channelRepo: channelRepo,
		videoRepo:   videoRepo,
		opts:        opts,
	}
}

// SyncChannel runs the channel-then-videos sync as one logical operation
func (s *syncService) SyncChannel(ctx context.Context, channelID string) (*SyncResult, error) {
	if channelID == "" {
		return nil, errors.New(errors.CodeInvalidArg, "channel ID is required")
	}

	// Channel lookup and normalization happen before any write, so a
	// missing or malformed channel aborts with zero writes.
	payload, err := s.client.FetchChannel(ctx, channelID)
	if err != nil {
		return nil, err
	}

	channel, err := youtube.NormalizeChannel(payload)
	if err != nil {
		return nil, err
	}

	if err := s.channelRepo.Upsert(ctx, channel); err != nil {
		return nil, err
	}

	result := &SyncResult{Channel: channel}

	// The uploads playlist comes from the channel payload already in hand
	pager := youtube.NewPager(s.client, s.opts.MaxPlaylistItems)
	items, err := pager.Collect(ctx, channel.PlaylistID)
	if err != nil {
		return nil, err
	}

	videoIDs := make([]string, 0, len(items))
	for _, item := range items {
		id, err := youtube.StubVideoID(item)
		if err != nil {
			if s.opts.AbortOnMalformed {
				return nil, err
			}
			result.Skipped = append(result.Skipped, SkippedVideo{Reason: err.Error()})
			continue
		}
		videoIDs = append(videoIDs, id)
	}

	details, err := s.fetchAllDetails(ctx, videoIDs)
	if err != nil {
		return nil, err
	}

	videos := make([]*model.Video, 0, len(details))
	for _, detail := range details {
		video, err := youtube.NormalizeVideo(channel.ID, detail)
		if err != nil {
			if s.opts.AbortOnMalformed {
				return nil, err
			}
			skipped := SkippedVideo{Reason: err.Error()}
			if detail != nil {
				skipped.VideoID = detail.Id
			}
			result.Skipped = append(result.Skipped, skipped)
			continue
		}
		videos = append(videos, video)
	}

	if err := s.videoRepo.UpsertBatch(ctx, videos); err != nil {
		return nil, err
	}

	result.VideosSynced = len(videos)
	return result, nil
}

// fetchAllDetails fetches full details for all IDs, chunked to the upstream
// batch limit, preserving order across chunks
func (s *syncService) fetchAllDetails(ctx context.Context, videoIDs []string) ([]*yt.Video, error) {
	var details []*yt.Video
	for start := 0; start < len(videoIDs); start += youtube.MaxDetailsBatch {
		end := start + youtube.MaxDetailsBatch
		if end > len(videoIDs) {
			end = len(videoIDs)
		}

		batch, err := s.client.FetchVideoDetails(ctx, videoIDs[start:end])
		if err != nil {
			return nil, err
		}
		details = append(details, batch...)
	}
	return details, nil
}
