package service

import (
	"context"
	"sort"
	"strconv"

	"github.com/harini-kv/yt-warehouse/internal/model"
	"github.com/harini-kv/yt-warehouse/internal/repository"
)

// avgDurationReport is the one catalog entry whose raw rows need Go-side
// aggregation: the stored duration is an opaque ISO-8601 notation, so the
// average is computed from parsed seconds here rather than in SQL.
const avgDurationReport = "channel-durations"

// ReportService runs the canned reports
type ReportService interface {
	Catalog() []repository.ReportDefinition
	Run(ctx context.Context, name string) (*model.ReportResult, error)
}

// reportService implements ReportService
type reportService struct {
	reportRepo repository.ReportRepository
}

// NewReportService creates a ReportService backed by the given repository
func NewReportService(reportRepo repository.ReportRepository) ReportService {
	return &reportService{
		reportRepo: reportRepo,
	}
}

// Catalog returns the report definitions in their stable order
func (s *reportService) Catalog() []repository.ReportDefinition {
	return s.reportRepo.Catalog()
}

// Run executes the named report
func (s *reportService) Run(ctx context.Context, name string) (*model.ReportResult, error) {
	result, err := s.reportRepo.Run(ctx, name)
	if err != nil {
		return nil, err
	}

	if name == avgDurationReport {
		return averageDurations(result), nil
	}

	return result, nil
}

// averageDurations folds (channel_name, duration) rows into an average video
// duration in seconds per channel. Rows with unparsable durations are ignored.
func averageDurations(raw *model.ReportResult) *model.ReportResult {
	type agg struct {
		total int64
		count int64
	}

	byChannel := map[string]*agg{}
	for _, row := range raw.Rows {
		if len(row) < 2 {
			continue
		}
		seconds, err := parseISODuration(row[1])
		if err != nil {
			continue
		}

		a, ok := byChannel[row[0]]
		if !ok {
			a = &agg{}
			byChannel[row[0]] = a
		}
		a.total += seconds
		a.count++
	}

	names := make([]string, 0, len(byChannel))
	for name := range byChannel {
		names = append(names, name)
	}
	sort.Strings(names)

	result := &model.ReportResult{
		Name:    raw.Name,
		Columns: []string{"channel_name", "avg_duration_seconds"},
		Rows:    [][]string{},
	}
	for _, name := range names {
		a := byChannel[name]
		avg := float64(a.total) / float64(a.count)
		result.Rows = append(result.Rows, []string{name, strconv.FormatFloat(avg, 'f', 1, 64)})
	}

	return result
}
