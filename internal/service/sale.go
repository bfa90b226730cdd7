package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"salesboard/internal/model"
	"salesboard/internal/repository"
)

var ErrInvalidMonth = errors.New("month must be in YYYY-MM form")

const (
	defaultPage    = 1
	defaultPerPage = 10

	// InitializedMessage is the payload message of a successful seed run.
	InitializedMessage = "Database initialized with seed data."
)

// priceBands are the ten fixed histogram buckets. Bands are closed intervals;
// the last band has no upper bound (Max nil, rendered as null in JSON).
var priceBands = []PriceRange{
	{Min: 0, Max: bound(100)},
	{Min: 101, Max: bound(200)},
	{Min: 201, Max: bound(300)},
	{Min: 301, Max: bound(400)},
	{Min: 401, Max: bound(500)},
	{Min: 501, Max: bound(600)},
	{Min: 601, Max: bound(700)},
	{Min: 701, Max: bound(800)},
	{Min: 801, Max: bound(900)},
	{Min: 901, Max: nil},
}

func bound(v float64) *float64 { return &v }

// Seeder triggers a dataset load and reports the inserted row count.
// Implemented by seed.Loader.
type Seeder interface {
	Run(ctx context.Context) (int, error)
}

// Statistics is the monthly aggregate payload. TotalSoldItems counts every
// record in the month regardless of the sold flag, mirroring the original
// dashboard; TotalNotSoldItems is the sold=false subset.
type Statistics struct {
	TotalSaleAmount   float64 `json:"totalSaleAmount"`
	TotalSoldItems    int     `json:"totalSoldItems"`
	TotalNotSoldItems int     `json:"totalNotSoldItems"`
}

// PriceRange is one histogram band; Max is nil for the open-ended band.
type PriceRange struct {
	Min float64  `json:"min"`
	Max *float64 `json:"max"`
}

// HistogramBucket reports one band and its record count.
type HistogramBucket struct {
	Range PriceRange `json:"range"`
	Count int        `json:"count"`
}

// InitializeResult is the seed endpoint payload.
type InitializeResult struct {
	Message  string `json:"message"`
	Inserted int    `json:"inserted"`
}

// CombinedData merges the payloads of the other operations under one roof.
type CombinedData struct {
	InitializeDatabase InitializeResult           `json:"initializeDatabase"`
	Transactions       []model.SaleRecord         `json:"transactions"`
	Statistics         Statistics                 `json:"statistics"`
	BarChart           []HistogramBucket          `json:"barChart"`
	PieChart           []repository.CategoryCount `json:"pieChart"`
}

// SaleService defines the use cases of the dashboard.
type SaleService interface {
	// InitializeDatabase seeds the store from the configured dataset source.
	// Repeated calls append the dataset again (no idempotency check).
	InitializeDatabase(ctx context.Context) (*InitializeResult, error)

	// ListTransactions returns one page of records, optionally filtered by a
	// case-insensitive substring search over title, description, and price.
	ListTransactions(ctx context.Context, page, perPage int, search string) ([]model.SaleRecord, error)

	// MonthlyStatistics aggregates sale amount and counts for one month.
	MonthlyStatistics(ctx context.Context, month string) (*Statistics, error)

	// PriceHistogram counts the month's records per fixed price band.
	PriceHistogram(ctx context.Context, month string) ([]HistogramBucket, error)

	// CategoryBreakdown counts the month's records per category.
	CategoryBreakdown(ctx context.Context, month string) ([]repository.CategoryCount, error)

	// CombinedView runs the seeder plus all read operations in-process and
	// merges their payloads. Any sub-operation failure fails the whole call.
	CombinedView(ctx context.Context, month string) (*CombinedData, error)
}

// saleService is a concrete implementation of SaleService.
type saleService struct {
	seeder Seeder
	repo   repository.SaleRepository
}

// NewSaleService constructs a new SaleService.
func NewSaleService(seeder Seeder, repo repository.SaleRepository) SaleService {
	return &saleService{seeder: seeder, repo: repo}
}

func (s *saleService) InitializeDatabase(ctx context.Context) (*InitializeResult, error) {
	n, err := s.seeder.Run(ctx)
	if err != nil {
		return nil, fmt.Errorf("initialize database: %w", err)
	}
	return &InitializeResult{Message: InitializedMessage, Inserted: n}, nil
}

// ListTransactions clamps page and perPage to sane positive values instead of
// passing raw client input through to the store.
func (s *saleService) ListTransactions(ctx context.Context, page, perPage int, search string) ([]model.SaleRecord, error) {
	if page < 1 {
		page = defaultPage
	}
	if perPage < 1 {
		perPage = defaultPerPage
	}

	return s.repo.List(ctx, repository.ListQuery{
		Limit:  perPage,
		Offset: (page - 1) * perPage,
		Search: search,
	})
}

func (s *saleService) MonthlyStatistics(ctx context.Context, month string) (*Statistics, error) {
	from, to, err := monthRange(month)
	if err != nil {
		return nil, err
	}

	total, err := s.repo.SumPriceBetween(ctx, from, to)
	if err != nil {
		return nil, err
	}
	sold, err := s.repo.CountBetween(ctx, from, to, false)
	if err != nil {
		return nil, err
	}
	notSold, err := s.repo.CountBetween(ctx, from, to, true)
	if err != nil {
		return nil, err
	}

	return &Statistics{
		TotalSaleAmount:   total,
		TotalSoldItems:    sold,
		TotalNotSoldItems: notSold,
	}, nil
}

// PriceHistogram issues the ten band counts concurrently and reassembles the
// results by band index, so output order is deterministic regardless of
// completion order.
func (s *saleService) PriceHistogram(ctx context.Context, month string) ([]HistogramBucket, error) {
	from, to, err := monthRange(month)
	if err != nil {
		return nil, err
	}

	buckets := make([]HistogramBucket, len(priceBands))

	g, gctx := errgroup.WithContext(ctx)
	for i, band := range priceBands {
		i, band := i, band
		g.Go(func() error {
			n, err := s.repo.CountPriceBandBetween(gctx, from, to, band.Min, band.Max)
			if err != nil {
				return err
			}
			buckets[i] = HistogramBucket{Range: band, Count: n}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return buckets, nil
}

func (s *saleService) CategoryBreakdown(ctx context.Context, month string) ([]repository.CategoryCount, error) {
	if _, _, err := monthRange(month); err != nil {
		return nil, err
	}
	return s.repo.CountByCategory(ctx, month)
}

// CombinedView calls the sibling operations directly instead of round-tripping
// through the HTTP layer. The seeder re-run on every call is kept from the
// original dashboard so the initializeDatabase payload stays populated.
func (s *saleService) CombinedView(ctx context.Context, month string) (*CombinedData, error) {
	init, err := s.InitializeDatabase(ctx)
	if err != nil {
		return nil, err
	}
	transactions, err := s.ListTransactions(ctx, defaultPage, defaultPerPage, "")
	if err != nil {
		return nil, err
	}
	stats, err := s.MonthlyStatistics(ctx, month)
	if err != nil {
		return nil, err
	}
	barChart, err := s.PriceHistogram(ctx, month)
	if err != nil {
		return nil, err
	}
	pieChart, err := s.CategoryBreakdown(ctx, month)
	if err != nil {
		return nil, err
	}

	return &CombinedData{
		InitializeDatabase: *init,
		Transactions:       transactions,
		Statistics:         *stats,
		BarChart:           barChart,
		PieChart:           pieChart,
	}, nil
}

// monthRange turns "YYYY-MM" into the UTC range [first instant of month,
// first instant of next month). AddDate spans 28-31 day months correctly.
func monthRange(month string) (time.Time, time.Time, error) {
	t, err := time.Parse("2006-01", month)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: %q", ErrInvalidMonth, month)
	}
	return t, t.AddDate(0, 1, 0), nil
}
