package repository

import (
	"context"
	"time"

	"salesboard/internal/model"
)

// SaleRepository defines data access for sale records using SQL queries only.
// No business logic here — strictly persistence and aggregation operations.
type SaleRepository interface {
	// BulkInsert appends all records in a single transaction and returns the
	// number of rows inserted. There is no duplicate check: calling it twice
	// with the same dataset doubles the row count.
	BulkInsert(ctx context.Context, records []model.SaleRecord) (int, error)

	// List returns records in insertion order using LIMIT/OFFSET pagination.
	// A non-empty Search restricts the set to rows whose title, description,
	// or price (rendered as text) contains the term, case-insensitively.
	List(ctx context.Context, q ListQuery) ([]model.SaleRecord, error)

	// SumPriceBetween returns the sum of price over rows with date_of_sale in
	// [from, to). Returns 0 when no rows match.
	SumPriceBetween(ctx context.Context, from, to time.Time) (float64, error)

	// CountBetween returns the number of rows with date_of_sale in [from, to).
	// When unsoldOnly is set, only rows with sold = false are counted.
	CountBetween(ctx context.Context, from, to time.Time, unsoldOnly bool) (int, error)

	// CountPriceBandBetween counts rows with date_of_sale in [from, to) and
	// min <= price <= max. A nil max leaves the band unbounded above.
	CountPriceBandBetween(ctx context.Context, from, to time.Time, min float64, max *float64) (int, error)

	// CountByCategory groups rows by category and counts occurrences,
	// restricted to rows whose ISO-rendered date_of_sale starts with
	// "<month>-". Order of the returned groups is not specified.
	CountByCategory(ctx context.Context, month string) ([]CategoryCount, error)
}

// ListQuery holds limit/offset pagination parameters and an optional
// free-text search term.
type ListQuery struct {
	Limit  int
	Offset int
	Search string
}

// CategoryCount is one group of the category breakdown.
type CategoryCount struct {
	Category string `json:"category"`
	Count    int    `json:"count"`
}
