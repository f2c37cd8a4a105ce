package model

import "time"

// Channel represents YouTube channel metadata stored in the warehouse
type Channel struct {
	ID              string `json:"channel_id" db:"channel_id"`
	Name            string `json:"channel_name" db:"channel_name"`
	Description     string `json:"description" db:"description"`
	SubscriberCount int64  `json:"subscriber_count" db:"subscriber_count"`
	VideoCount      int64  `json:"video_count" db:"video_count"`
	ViewCount       int64  `json:"view_count" db:"view_count"`
	PlaylistID      string `json:"playlist_id" db:"playlist_id"` // uploads playlist resolved from channel metadata
}

// Video represents YouTube video metadata stored in the warehouse
type Video struct {
	ID           string    `json:"video_id" db:"video_id"`
	ChannelID    string    `json:"channel_id" db:"channel_id"`
	Name         string    `json:"video_name" db:"video_name"`
	PublishedAt  time.Time `json:"published_at" db:"published_at"`
	ViewCount    int64     `json:"view_count" db:"view_count"`
	LikeCount    int64     `json:"like_count" db:"like_count"`
	CommentCount int64     `json:"comment_count" db:"comment_count"`
	Duration     string    `json:"duration" db:"duration"` // ISO-8601 duration notation, stored as-is
}

// ReportResult is the tabular output of a canned report query
type ReportResult struct {
	Name    string     `json:"name"`
	Columns []string   `json:"columns"`
	Rows    [][]string `json:"rows"`
}

// ChannelSummary aggregates a stored channel with its dashboard numbers
type ChannelSummary struct {
	Channel      *Channel `json:"channel"`
	StoredVideos int64    `json:"stored_videos"`
	TopVideos    []*Video `json:"top_videos"`
}
