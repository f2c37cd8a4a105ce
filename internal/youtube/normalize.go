package youtube

import (
	"time"

	yt "google.golang.org/api/youtube/v3"

	"github.com/harini-kv/yt-warehouse/internal/errors"
	"github.com/harini-kv/yt-warehouse/internal/model"
)

// PublishedAtLayout is the fixed timestamp format the API uses for publish times
const PublishedAtLayout = "2006-01-02T15:04:05Z"

// NormalizeChannel maps a raw channel payload into the warehouse entity.
// Pure function; missing statistics default to zero, a missing snippet or
// uploads playlist is a malformed payload.
func NormalizeChannel(payload *yt.Channel) (*model.Channel, error) {
	if payload == nil || payload.Id == "" {
		return nil, errors.New(errors.CodeMalformed, "channel payload missing id")
	}
	if payload.Snippet == nil {
		return nil, errors.New(errors.CodeMalformed, "channel payload missing snippet")
	}
	if payload.ContentDetails == nil || payload.ContentDetails.RelatedPlaylists == nil ||
		payload.ContentDetails.RelatedPlaylists.Uploads == "" {
		return nil, errors.New(errors.CodeMalformed, "channel payload missing uploads playlist")
	}

	channel := &model.Channel{
		ID:          payload.Id,
		Name:        payload.Snippet.Title,
		Description: payload.Snippet.Description,
		PlaylistID:  payload.ContentDetails.RelatedPlaylists.Uploads,
	}

	if payload.Statistics != nil {
		channel.SubscriberCount = int64(payload.Statistics.SubscriberCount)
		channel.VideoCount = int64(payload.Statistics.VideoCount)
		channel.ViewCount = int64(payload.Statistics.ViewCount)
	}

	return channel, nil
}

// StubVideoID extracts the video ID from one playlist item
func StubVideoID(item *yt.PlaylistItem) (string, error) {
	if item == nil || item.Snippet == nil {
		return "", errors.New(errors.CodeMalformed, "playlist item missing snippet")
	}
	if item.Snippet.ResourceId == nil || item.Snippet.ResourceId.VideoId == "" {
		return "", errors.New(errors.CodeMalformed, "playlist item missing video id")
	}
	return item.Snippet.ResourceId.VideoId, nil
}

// NormalizeVideo maps a raw video payload into the warehouse entity, owned by
// channelID. Missing engagement statistics default to zero; the duration is an
// opaque passthrough.
func NormalizeVideo(channelID string, payload *yt.Video) (*model.Video, error) {
	if payload == nil || payload.Id == "" {
		return nil, errors.New(errors.CodeMalformed, "video payload missing id")
	}
	if payload.Snippet == nil {
		return nil, errors.New(errors.CodeMalformed, "video payload missing snippet")
	}

	publishedAt, err := time.Parse(PublishedAtLayout, payload.Snippet.PublishedAt)
	if err != nil {
		return nil, errors.Wrap(err, errors.CodeMalformed, "video payload has unparsable publish time")
	}

	video := &model.Video{
		ID:          payload.Id,
		ChannelID:   channelID,
		Name:        payload.Snippet.Title,
		PublishedAt: publishedAt,
	}

	if payload.Statistics != nil {
		video.ViewCount = int64(payload.Statistics.ViewCount)
		video.LikeCount = int64(payload.Statistics.LikeCount)
		video.CommentCount = int64(payload.Statistics.CommentCount)
	}
	if payload.ContentDetails != nil {
		video.Duration = payload.ContentDetails.Duration
	}

	return video, nil
}
