package repository

import (
	"context"
	"fmt"
	"time"

	apperrors "github.com/harini-kv/yt-warehouse/internal/errors"
	"github.com/harini-kv/yt-warehouse/internal/model"
)

// reportCatalog is the closed set of canned reports, in presentation order.
// All queries are read-only joins/aggregates over channels and videos.
var reportCatalog = []ReportDefinition{
	{
		Name:        "video-channel-names",
		Description: "All video names and their channel names",
		sql: `SELECT video_name, channel_name
			FROM videos JOIN channels ON videos.channel_id = channels.channel_id`,
	},
	{
		Name:        "channels-most-videos",
		Description: "Channels ordered by number of videos",
		sql:         `SELECT channel_name, video_count FROM channels ORDER BY video_count DESC`,
	},
	{
		Name:        "top-viewed-videos",
		Description: "Top 10 most viewed videos",
		sql: `SELECT video_name, videos.view_count, channel_name
			FROM videos JOIN channels USING (channel_id)
			ORDER BY videos.view_count DESC LIMIT 10`,
	},
	{
		Name:        "video-comment-counts",
		Description: "Number of comments on each video",
		sql:         `SELECT video_name, comment_count FROM videos`,
	},
	{
		Name:        "most-liked-videos",
		Description: "Most liked videos with channel names",
		sql: `SELECT video_name, like_count, channel_name
			FROM videos JOIN channels USING (channel_id)
			ORDER BY like_count DESC LIMIT 10`,
	},
	{
		Name:        "video-like-totals",
		Description: "Like counts for all videos (dislikes are no longer exposed upstream and report as zero)",
		sql:         `SELECT video_name, like_count, 0 AS dislike_count FROM videos`,
	},
	{
		Name:        "channel-view-totals",
		Description: "Total views for each channel",
		sql:         `SELECT channel_name, view_count FROM channels ORDER BY view_count DESC`,
	},
	{
		Name:        "channels-published-2022",
		Description: "Channels that uploaded videos in 2022",
		sql: `SELECT DISTINCT channel_name
			FROM videos JOIN channels USING (channel_id)
			WHERE EXTRACT(YEAR FROM published_at) = 2022`,
	},
	{
		Name:        "channel-durations",
		Description: "Raw video durations per channel (averaged in the report service)",
		sql: `SELECT channel_name, duration
			FROM videos JOIN channels USING (channel_id)`,
	},
	{
		Name:        "most-commented-videos",
		Description: "Videos with the highest number of comments",
		sql:         `SELECT video_name, comment_count FROM videos ORDER BY comment_count DESC LIMIT 10`,
	},
}

// reportRepository implements ReportRepository using PostgreSQL
type reportRepository struct {
	pool Pool
}

// NewReportRepository creates a new instance of ReportRepository
func NewReportRepository(pool Pool) ReportRepository {
	return &reportRepository{
		pool: pool,
	}
}

// Catalog returns the report definitions in their stable order
func (r *reportRepository) Catalog() []ReportDefinition {
	catalog := make([]ReportDefinition, len(reportCatalog))
	copy(catalog, reportCatalog)
	return catalog
}

// Run executes the named report
func (r *reportRepository) Run(ctx context.Context, name string) (*model.ReportResult, error) {
	def, ok := lookupReport(name)
	if !ok {
		return nil, apperrors.New(apperrors.CodeNotFound, fmt.Sprintf("unknown report: %s", name))
	}

	rows, err := r.pool.Query(ctx, def.sql)
	if err != nil {
		return nil, handlePostgreSQLError(err, "failed to run report query")
	}
	defer rows.Close()

	result := &model.ReportResult{Name: def.Name}
	for _, field := range rows.FieldDescriptions() {
		result.Columns = append(result.Columns, field.Name)
	}

	result.Rows = [][]string{}
	for rows.Next() {
		values, err := rows.Values()
		if err != nil {
			return nil, handlePostgreSQLError(err, "failed to read report row")
		}

		row := make([]string, len(values))
		for i, value := range values {
			row[i] = formatReportValue(value)
		}
		result.Rows = append(result.Rows, row)
	}

	if err := rows.Err(); err != nil {
		return nil, handlePostgreSQLError(err, "failed to iterate report rows")
	}

	return result, nil
}

func lookupReport(name string) (ReportDefinition, bool) {
	for _, def := range reportCatalog {
		if def.Name == name {
			return def, true
		}
	}
	return ReportDefinition{}, false
}

// formatReportValue renders one cell of a report row
func formatReportValue(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case time.Time:
		return v.UTC().Format(time.RFC3339)
	default:
		return fmt.Sprintf("%v", v)
	}
}
