package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"salesboard/internal/model"
	"salesboard/internal/repository"
)

// SalePostgres is a PostgreSQL implementation of repository.SaleRepository.
// It uses database/sql with parameterized queries and contains no business logic.
type SalePostgres struct {
	db *sql.DB
}

// NewSalePostgres creates a new SalePostgres repository.
func NewSalePostgres(db *sql.DB) *SalePostgres {
	return &SalePostgres{db: db}
}

var _ repository.SaleRepository = (*SalePostgres)(nil)

// BulkInsert appends every record inside one transaction. Rows keep their
// dataset id; the seq column preserves insertion order across re-seeds.
func (r *SalePostgres) BulkInsert(ctx context.Context, records []model.SaleRecord) (int, error) {
	if len(records) == 0 {
		return 0, nil
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	const q = `
		INSERT INTO sales (id, title, price, description, category, image, sold, date_of_sale)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	stmt, err := tx.PrepareContext(ctx, q)
	if err != nil {
		return 0, fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, rec := range records {
		if _, err := stmt.ExecContext(ctx,
			rec.ID,
			rec.Title,
			rec.Price,
			rec.Description,
			rec.Category,
			rec.Image,
			rec.Sold,
			rec.DateOfSale,
		); err != nil {
			return 0, fmt.Errorf("insert sale %d: %w", rec.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit: %w", err)
	}
	return len(records), nil
}

// List returns a page of records in insertion (seq) order. With a search term
// it filters on title, description, or the textual rendering of price first.
func (r *SalePostgres) List(ctx context.Context, q repository.ListQuery) ([]model.SaleRecord, error) {
	const base = `
		SELECT id, title, price, description, category, image, sold, date_of_sale
		FROM sales
	`

	var (
		rows *sql.Rows
		err  error
	)
	if q.Search == "" {
		rows, err = r.db.QueryContext(ctx, base+`ORDER BY seq LIMIT $1 OFFSET $2`, q.Limit, q.Offset)
	} else {
		rows, err = r.db.QueryContext(ctx, base+`
			WHERE title ILIKE '%' || $1 || '%'
			   OR description ILIKE '%' || $1 || '%'
			   OR price::text LIKE '%' || $1 || '%'
			ORDER BY seq LIMIT $2 OFFSET $3`, q.Search, q.Limit, q.Offset)
	}
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.SaleRecord, 0)
	for rows.Next() {
		var rec model.SaleRecord
		if err := rows.Scan(
			&rec.ID,
			&rec.Title,
			&rec.Price,
			&rec.Description,
			&rec.Category,
			&rec.Image,
			&rec.Sold,
			&rec.DateOfSale,
		); err != nil {
			return nil, err
		}
		items = append(items, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// SumPriceBetween sums price over [from, to). COALESCE keeps the empty-month
// result at 0 instead of NULL.
func (r *SalePostgres) SumPriceBetween(ctx context.Context, from, to time.Time) (float64, error) {
	const q = `
		SELECT COALESCE(SUM(price), 0)
		FROM sales
		WHERE date_of_sale >= $1 AND date_of_sale < $2
	`
	var total float64
	if err := r.db.QueryRowContext(ctx, q, from, to).Scan(&total); err != nil {
		return 0, err
	}
	return total, nil
}

// CountBetween counts rows in [from, to), optionally restricted to unsold ones.
func (r *SalePostgres) CountBetween(ctx context.Context, from, to time.Time, unsoldOnly bool) (int, error) {
	q := `SELECT COUNT(*) FROM sales WHERE date_of_sale >= $1 AND date_of_sale < $2`
	if unsoldOnly {
		q += ` AND sold = FALSE`
	}
	var n int
	if err := r.db.QueryRowContext(ctx, q, from, to).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

// CountPriceBandBetween counts rows in the date range whose price falls inside
// the closed band [min, max]; a nil max means no upper bound.
func (r *SalePostgres) CountPriceBandBetween(ctx context.Context, from, to time.Time, min float64, max *float64) (int, error) {
	var (
		n   int
		err error
	)
	if max == nil {
		const q = `
			SELECT COUNT(*) FROM sales
			WHERE date_of_sale >= $1 AND date_of_sale < $2 AND price >= $3
		`
		err = r.db.QueryRowContext(ctx, q, from, to, min).Scan(&n)
	} else {
		const q = `
			SELECT COUNT(*) FROM sales
			WHERE date_of_sale >= $1 AND date_of_sale < $2 AND price BETWEEN $3 AND $4
		`
		err = r.db.QueryRowContext(ctx, q, from, to, min, *max).Scan(&n)
	}
	if err != nil {
		return 0, err
	}
	return n, nil
}

// CountByCategory groups by category for rows whose ISO date rendering starts
// with "<month>-". The text-prefix predicate mirrors the original dashboard
// behavior; rendering through to_char makes it actually match timestamps.
func (r *SalePostgres) CountByCategory(ctx context.Context, month string) ([]repository.CategoryCount, error) {
	const q = `
		SELECT category, COUNT(*)
		FROM sales
		WHERE to_char(date_of_sale AT TIME ZONE 'UTC', 'YYYY-MM-DD') LIKE $1 || '-%'
		GROUP BY category
	`
	rows, err := r.db.QueryContext(ctx, q, month)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	groups := make([]repository.CategoryCount, 0)
	for rows.Next() {
		var g repository.CategoryCount
		if err := rows.Scan(&g.Category, &g.Count); err != nil {
			return nil, err
		}
		groups = append(groups, g)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return groups, nil
}
