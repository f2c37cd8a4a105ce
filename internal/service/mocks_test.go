package service

import (
	"context"

	"github.com/stretchr/testify/mock"
	yt "google.golang.org/api/youtube/v3"

	"github.com/harini-kv/yt-warehouse/internal/model"
	"github.com/harini-kv/yt-warehouse/internal/repository"
)

// mockCatalogClient is a testify mock for youtube.Client
type mockCatalogClient struct {
	mock.Mock
}

func (m *mockCatalogClient) FetchChannel(ctx context.Context, channelID string) (*yt.Channel, error) {
	args := m.Called(ctx, channelID)
	if payload := args.Get(0); payload != nil {
		return payload.(*yt.Channel), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockCatalogClient) FetchPlaylistPage(ctx context.Context, playlistID, pageToken string) ([]*yt.PlaylistItem, string, error) {
	args := m.Called(ctx, playlistID, pageToken)
	var items []*yt.PlaylistItem
	if payload := args.Get(0); payload != nil {
		items = payload.([]*yt.PlaylistItem)
	}
	return items, args.String(1), args.Error(2)
}

func (m *mockCatalogClient) FetchVideoDetails(ctx context.Context, videoIDs []string) ([]*yt.Video, error) {
	args := m.Called(ctx, videoIDs)
	var details []*yt.Video
	if payload := args.Get(0); payload != nil {
		details = payload.([]*yt.Video)
	}
	return details, args.Error(1)
}

// mockChannelRepository is a testify mock for repository.ChannelRepository
type mockChannelRepository struct {
	mock.Mock
}

func (m *mockChannelRepository) Upsert(ctx context.Context, channel *model.Channel) error {
	args := m.Called(ctx, channel)
	return args.Error(0)
}

func (m *mockChannelRepository) GetByID(ctx context.Context, id string) (*model.Channel, error) {
	args := m.Called(ctx, id)
	if channel := args.Get(0); channel != nil {
		return channel.(*model.Channel), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockChannelRepository) List(ctx context.Context, limit, offset int) ([]*model.Channel, error) {
	args := m.Called(ctx, limit, offset)
	if channels := args.Get(0); channels != nil {
		return channels.([]*model.Channel), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockChannelRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// mockVideoRepository is a testify mock for repository.VideoRepository
type mockVideoRepository struct {
	mock.Mock
}

func (m *mockVideoRepository) UpsertBatch(ctx context.Context, videos []*model.Video) error {
	args := m.Called(ctx, videos)
	return args.Error(0)
}

func (m *mockVideoRepository) GetByID(ctx context.Context, id string) (*model.Video, error) {
	args := m.Called(ctx, id)
	if video := args.Get(0); video != nil {
		return video.(*model.Video), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockVideoRepository) GetByChannelID(ctx context.Context, channelID string, limit, offset int) ([]*model.Video, error) {
	args := m.Called(ctx, channelID, limit, offset)
	if videos := args.Get(0); videos != nil {
		return videos.([]*model.Video), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockVideoRepository) CountByChannelID(ctx context.Context, channelID string) (int64, error) {
	args := m.Called(ctx, channelID)
	return args.Get(0).(int64), args.Error(1)
}

// mockReportRepository is a testify mock for repository.ReportRepository
type mockReportRepository struct {
	mock.Mock
}

func (m *mockReportRepository) Catalog() []repository.ReportDefinition {
	args := m.Called()
	return args.Get(0).([]repository.ReportDefinition)
}

func (m *mockReportRepository) Run(ctx context.Context, name string) (*model.ReportResult, error) {
	args := m.Called(ctx, name)
	if result := args.Get(0); result != nil {
		return result.(*model.ReportResult), args.Error(1)
	}
	return nil, args.Error(1)
}
