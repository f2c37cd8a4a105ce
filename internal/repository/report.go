package repository

import (
	"context"

	"github.com/harini-kv/yt-warehouse/internal/model"
)

// ReportDefinition is one entry of the closed report catalog
type ReportDefinition struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	sql         string
}

// ReportRepository executes the fixed catalog of read-only report queries
// against the warehouse schema. There is no write path.
type ReportRepository interface {
	// Catalog returns the report definitions in their stable order
	Catalog() []ReportDefinition

	// Run executes the named report and returns its tabular result.
	// Unknown names yield a NOT_FOUND error.
	Run(ctx context.Context, name string) (*model.ReportResult, error)
}
