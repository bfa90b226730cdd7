package seed

import (
	"context"
	"fmt"
	"time"

	"salesboard/internal/config"
	"salesboard/internal/repository"
)

// Loader populates the sales table from a Source. There is no idempotency
// check: every run appends the full dataset again, matching the original
// dashboard's initialize endpoint. Failures are not retried.
type Loader struct {
	src  Source
	repo repository.SaleRepository
}

// NewLoader wires a Source to the repository.
func NewLoader(src Source, repo repository.SaleRepository) *Loader {
	return &Loader{src: src, repo: repo}
}

// NewSourceFromConfig picks the dataset source: an S3-compatible bucket when
// SEED_BUCKET is configured, plain HTTP otherwise.
func NewSourceFromConfig(cfg config.SeedConfig) (Source, error) {
	if cfg.Bucket != "" {
		return NewBucketSource(cfg)
	}
	if cfg.URL == "" {
		return nil, fmt.Errorf("seed url is required")
	}
	return NewHTTPSource(cfg.URL, time.Duration(cfg.FetchTimeoutSec)*time.Second), nil
}

// Run fetches the dataset and bulk-inserts it, returning the inserted count.
func (l *Loader) Run(ctx context.Context) (int, error) {
	records, err := l.src.Fetch(ctx)
	if err != nil {
		return 0, fmt.Errorf("seed fetch: %w", err)
	}

	n, err := l.repo.BulkInsert(ctx, records)
	if err != nil {
		return 0, fmt.Errorf("seed insert: %w", err)
	}
	return n, nil
}
