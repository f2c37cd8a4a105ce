package service

import (
	"context"

	"github.com/harini-kv/yt-warehouse/internal/errors"
	"github.com/harini-kv/yt-warehouse/internal/model"
	"github.com/harini-kv/yt-warehouse/internal/repository"
)

// topVideosLimit is how many top-viewed videos a channel summary carries
const topVideosLimit = 10

// DashboardService provides the read-only channel overview
type DashboardService interface {
	ChannelSummary(ctx context.Context, channelID string) (*model.ChannelSummary, error)
}

// dashboardService implements DashboardService
type dashboardService struct {
	channelRepo repository.ChannelRepository
	videoRepo   repository.VideoRepository
}

// NewDashboardService creates a DashboardService backed by the given repositories
func NewDashboardService(channelRepo repository.ChannelRepository, videoRepo repository.VideoRepository) DashboardService {
	return &dashboardService{
		channelRepo: channelRepo,
		videoRepo:   videoRepo,
	}
}

// ChannelSummary returns the stored channel, its stored video tally and its
// top videos by view count
func (s *dashboardService) ChannelSummary(ctx context.Context, channelID string) (*model.ChannelSummary, error) {
	if channelID == "" {
		return nil, errors.New(errors.CodeInvalidArg, "channel ID is required")
	}

	channel, err := s.channelRepo.GetByID(ctx, channelID)
	if err != nil {
		return nil, err
	}

	stored, err := s.videoRepo.CountByChannelID(ctx, channelID)
	if err != nil {
		return nil, err
	}

	topVideos, err := s.videoRepo.GetByChannelID(ctx, channelID, topVideosLimit, 0)
	if err != nil {
		return nil, err
	}

	return &model.ChannelSummary{
		Channel:      channel,
		StoredVideos: stored,
		TopVideos:    topVideos,
	}, nil
}
