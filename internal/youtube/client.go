package youtube

import (
	"context"
	"fmt"

	"google.golang.org/api/option"
	yt "google.golang.org/api/youtube/v3"

	"github.com/harini-kv/yt-warehouse/internal/errors"
)

// MaxDetailsBatch is the maximum number of video IDs permitted in a single
// videos.list call. The upstream API rejects larger batches.
const MaxDetailsBatch = 50

// pageSize is the playlistItems.list page size requested from the API
const pageSize = 50

// Client is the contract to the remote video catalog.
// Every call is one network round-trip; nothing is cached locally.
type Client interface {
	// FetchChannel looks up a channel by exact ID. Returns a NOT_FOUND
	// error when the upstream result set is empty.
	FetchChannel(ctx context.Context, channelID string) (*yt.Channel, error)

	// FetchPlaylistPage fetches one page of a playlist and the token for
	// the next page ("" when the playlist is exhausted).
	FetchPlaylistPage(ctx context.Context, playlistID, pageToken string) ([]*yt.PlaylistItem, string, error)

	// FetchVideoDetails fetches full details for up to MaxDetailsBatch
	// video IDs in one call. Callers chunk larger ID sets themselves.
	FetchVideoDetails(ctx context.Context, videoIDs []string) ([]*yt.Video, error)
}

// apiClient implements Client using the YouTube Data API v3
type apiClient struct {
	service *yt.Service
}

// NewClient creates a Data API v3 backed catalog client
func NewClient(ctx context.Context, apiKey string) (Client, error) {
	if apiKey == "" {
		return nil, errors.New(errors.CodeInvalidArg, "YouTube API key is required (set youtube_api_key or YOUTUBE_API_KEY)")
	}

	service, err := yt.NewService(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, errors.Wrap(err, errors.CodeExternal, "failed to create YouTube service")
	}

	return &apiClient{service: service}, nil
}

// FetchChannel looks up a channel by exact ID
func (c *apiClient) FetchChannel(ctx context.Context, channelID string) (*yt.Channel, error) {
	resp, err := c.service.Channels.List([]string{"snippet", "statistics", "contentDetails"}).
		Id(channelID).
		Context(ctx).
		Do()
	if err != nil {
		return nil, errors.Wrap(err, errors.CodeExternal, "channels.list call failed")
	}

	if len(resp.Items) == 0 {
		return nil, errors.New(errors.CodeNotFound, fmt.Sprintf("channel not found: %s", channelID))
	}

	return resp.Items[0], nil
}

// FetchPlaylistPage fetches one page of playlist items
func (c *apiClient) FetchPlaylistPage(ctx context.Context, playlistID, pageToken string) ([]*yt.PlaylistItem, string, error) {
	call := c.service.PlaylistItems.List([]string{"snippet"}).
		PlaylistId(playlistID).
		MaxResults(pageSize).
		Context(ctx)
	if pageToken != "" {
		call = call.PageToken(pageToken)
	}

	resp, err := call.Do()
	if err != nil {
		return nil, "", errors.Wrap(err, errors.CodeExternal, "playlistItems.list call failed")
	}

	return resp.Items, resp.NextPageToken, nil
}

// FetchVideoDetails fetches full details for one batch of video IDs
func (c *apiClient) FetchVideoDetails(ctx context.Context, videoIDs []string) ([]*yt.Video, error) {
	if len(videoIDs) == 0 {
		return nil, nil
	}
	if len(videoIDs) > MaxDetailsBatch {
		return nil, errors.New(errors.CodeInvalidArg, fmt.Sprintf("at most %d video IDs per call, got %d", MaxDetailsBatch, len(videoIDs)))
	}

	resp, err := c.service.Videos.List([]string{"snippet", "statistics", "contentDetails"}).
		Id(videoIDs...).
		Context(ctx).
		Do()
	if err != nil {
		return nil, errors.Wrap(err, errors.CodeExternal, "videos.list call failed")
	}

	return resp.Items, nil
}
