package youtube

import (
	"context"

	yt "google.golang.org/api/youtube/v3"

	"github.com/harini-kv/yt-warehouse/internal/errors"
)

// Pager enumerates all items of a playlist, page by page.
// There is no checkpointing: a failure mid-pagination loses the accumulated
// progress of that call.
type Pager struct {
	client   Client
	maxItems int
}

// NewPager creates a Pager. maxItems bounds the number of collected items;
// 0 means walk the playlist to the end.
func NewPager(client Client, maxItems int) *Pager {
	return &Pager{client: client, maxItems: maxItems}
}

// Collect walks the playlist carrying the page token forward and returns the
// items in upstream page order. It stops when the upstream reports no next
// page or when maxItems is reached, whichever comes first.
func (p *Pager) Collect(ctx context.Context, playlistID string) ([]*yt.PlaylistItem, error) {
	if playlistID == "" {
		return nil, errors.New(errors.CodeInvalidArg, "playlist ID is required")
	}

	var items []*yt.PlaylistItem
	pageToken := ""
	for {
		page, next, err := p.client.FetchPlaylistPage(ctx, playlistID, pageToken)
		if err != nil {
			return nil, err
		}

		items = append(items, page...)

		if p.maxItems > 0 && len(items) >= p.maxItems {
			return items[:p.maxItems], nil
		}
		if next == "" {
			return items, nil
		}
		pageToken = next
	}
}
