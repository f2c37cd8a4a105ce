package repository

import (
	"context"
	"testing"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/harini-kv/yt-warehouse/internal/errors"
)

func TestReportRepository_Catalog(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewReportRepository(mock)

	catalog := repo.Catalog()
	require.Len(t, catalog, 10)
	assert.Equal(t, "video-channel-names", catalog[0].Name)
	assert.Equal(t, "most-commented-videos", catalog[9].Name)
	for _, def := range catalog {
		assert.NotEmpty(t, def.Name)
		assert.NotEmpty(t, def.Description)
	}

	// mutating the returned slice must not corrupt the catalog
	catalog[0].Name = "mutated"
	assert.Equal(t, "video-channel-names", repo.Catalog()[0].Name)
}

func TestReportRepository_Run(t *testing.T) {
	t.Run("known report returns rendered rows", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		rows := pgxmock.NewRows([]string{"channel_name", "view_count"}).
			AddRow("Channel A", int64(56000)).
			AddRow("Channel B", int64(1200))
		mock.ExpectQuery("SELECT channel_name, view_count FROM channels").
			WillReturnRows(rows)

		repo := NewReportRepository(mock)

		result, err := repo.Run(context.Background(), "channel-view-totals")
		require.NoError(t, err)
		assert.Equal(t, "channel-view-totals", result.Name)
		assert.Equal(t, []string{"channel_name", "view_count"}, result.Columns)
		assert.Equal(t, [][]string{
			{"Channel A", "56000"},
			{"Channel B", "1200"},
		}, result.Rows)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("empty result keeps columns and zero rows", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectQuery("SELECT video_name, comment_count FROM videos").
			WillReturnRows(pgxmock.NewRows([]string{"video_name", "comment_count"}))

		repo := NewReportRepository(mock)

		result, err := repo.Run(context.Background(), "video-comment-counts")
		require.NoError(t, err)
		assert.Equal(t, []string{"video_name", "comment_count"}, result.Columns)
		assert.Empty(t, result.Rows)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("unknown report issues no query", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		repo := NewReportRepository(mock)

		_, err = repo.Run(context.Background(), "no-such-report")
		require.Error(t, err)
		assert.True(t, apperrors.HasCode(err, apperrors.CodeNotFound))

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestFormatReportValue(t *testing.T) {
	tests := []struct {
		name  string
		value any
		want  string
	}{
		{name: "nil renders empty", value: nil, want: ""},
		{name: "string passes through", value: "Channel A", want: "Channel A"},
		{name: "integer", value: int64(42), want: "42"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, formatReportValue(tt.value))
		})
	}
}
