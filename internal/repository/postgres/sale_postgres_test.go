package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"salesboard/internal/model"
	"salesboard/internal/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func saleColumns() []string {
	return []string{"id", "title", "price", "description", "category", "image", "sold", "date_of_sale"}
}

func TestSalePostgres_BulkInsert(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewSalePostgres(db)
	ctx := context.Background()

	records := []model.SaleRecord{
		{ID: 1, Title: "Widget", Price: 50, Description: "small widget", Category: "tools", Image: "http://img/1.png", Sold: true, DateOfSale: time.Date(2023, 1, 5, 0, 0, 0, 0, time.UTC)},
		{ID: 2, Title: "Gadget", Price: 150, Description: "big gadget", Category: "tools", Image: "http://img/2.png", Sold: false, DateOfSale: time.Date(2023, 1, 9, 0, 0, 0, 0, time.UTC)},
	}

	t.Run("inserts all rows in one transaction", func(t *testing.T) {
		mock.ExpectBegin()
		prep := mock.ExpectPrepare("INSERT INTO sales")
		for _, rec := range records {
			prep.ExpectExec().
				WithArgs(rec.ID, rec.Title, rec.Price, rec.Description, rec.Category, rec.Image, rec.Sold, rec.DateOfSale).
				WillReturnResult(sqlmock.NewResult(0, 1))
		}
		mock.ExpectCommit()

		n, err := repo.BulkInsert(ctx, records)

		assert.NoError(t, err)
		assert.Equal(t, 2, n)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("empty input inserts nothing", func(t *testing.T) {
		n, err := repo.BulkInsert(ctx, nil)
		assert.NoError(t, err)
		assert.Equal(t, 0, n)
	})

	t.Run("insert error rolls back", func(t *testing.T) {
		mock.ExpectBegin()
		prep := mock.ExpectPrepare("INSERT INTO sales")
		prep.ExpectExec().WillReturnError(errors.New("insert fail"))
		mock.ExpectRollback()

		n, err := repo.BulkInsert(ctx, records[:1])

		assert.Error(t, err)
		assert.Zero(t, n)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestSalePostgres_List(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewSalePostgres(db)
	ctx := context.Background()

	t.Run("no search term pages in insertion order", func(t *testing.T) {
		rows := sqlmock.NewRows(saleColumns()).
			AddRow(11, "Widget", 50.0, "small widget", "tools", "http://img/1.png", true, time.Now()).
			AddRow(12, "Gadget", 150.0, "big gadget", "tools", "http://img/2.png", false, time.Now())

		mock.ExpectQuery("ORDER BY seq LIMIT").
			WithArgs(10, 10).
			WillReturnRows(rows)

		items, err := repo.List(ctx, repository.ListQuery{Limit: 10, Offset: 10})

		assert.NoError(t, err)
		assert.Len(t, items, 2)
		assert.Equal(t, int64(11), items[0].ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("search term filters before paging", func(t *testing.T) {
		rows := sqlmock.NewRows(saleColumns()).
			AddRow(11, "Widget", 50.0, "small widget", "tools", "http://img/1.png", true, time.Now())

		mock.ExpectQuery("WHERE title ILIKE").
			WithArgs("widg", 10, 0).
			WillReturnRows(rows)

		items, err := repo.List(ctx, repository.ListQuery{Limit: 10, Offset: 0, Search: "widg"})

		assert.NoError(t, err)
		assert.Len(t, items, 1)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("query error", func(t *testing.T) {
		mock.ExpectQuery("ORDER BY seq LIMIT").
			WillReturnError(errors.New("db fail"))

		items, err := repo.List(ctx, repository.ListQuery{Limit: 10})

		assert.Error(t, err)
		assert.Nil(t, items)
	})
}

func TestSalePostgres_SumPriceBetween(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewSalePostgres(db)
	ctx := context.Background()
	from := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, 0)

	t.Run("sums range", func(t *testing.T) {
		mock.ExpectQuery("SELECT COALESCE").
			WithArgs(from, to).
			WillReturnRows(sqlmock.NewRows([]string{"coalesce"}).AddRow(1199.0))

		total, err := repo.SumPriceBetween(ctx, from, to)

		assert.NoError(t, err)
		assert.Equal(t, 1199.0, total)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("empty range is zero, not an error", func(t *testing.T) {
		mock.ExpectQuery("SELECT COALESCE").
			WithArgs(from, to).
			WillReturnRows(sqlmock.NewRows([]string{"coalesce"}).AddRow(0.0))

		total, err := repo.SumPriceBetween(ctx, from, to)

		assert.NoError(t, err)
		assert.Zero(t, total)
	})
}

func TestSalePostgres_CountBetween(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewSalePostgres(db)
	ctx := context.Background()
	from := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, 0)

	t.Run("all rows in range", func(t *testing.T) {
		mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM sales WHERE date_of_sale").
			WithArgs(from, to).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))

		n, err := repo.CountBetween(ctx, from, to, false)

		assert.NoError(t, err)
		assert.Equal(t, 3, n)
	})

	t.Run("unsold only", func(t *testing.T) {
		mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM sales WHERE date_of_sale (.+) AND sold = FALSE").
			WithArgs(from, to).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

		n, err := repo.CountBetween(ctx, from, to, true)

		assert.NoError(t, err)
		assert.Equal(t, 1, n)
	})
}

func TestSalePostgres_CountPriceBandBetween(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewSalePostgres(db)
	ctx := context.Background()
	from := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, 0)

	t.Run("bounded band", func(t *testing.T) {
		max := 100.0
		mock.ExpectQuery("price BETWEEN").
			WithArgs(from, to, 0.0, 100.0).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

		n, err := repo.CountPriceBandBetween(ctx, from, to, 0, &max)

		assert.NoError(t, err)
		assert.Equal(t, 1, n)
	})

	t.Run("open-ended band", func(t *testing.T) {
		mock.ExpectQuery("price >=").
			WithArgs(from, to, 901.0).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))

		n, err := repo.CountPriceBandBetween(ctx, from, to, 901, nil)

		assert.NoError(t, err)
		assert.Equal(t, 2, n)
	})
}

func TestSalePostgres_CountByCategory(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewSalePostgres(db)
	ctx := context.Background()

	t.Run("groups by category", func(t *testing.T) {
		rows := sqlmock.NewRows([]string{"category", "count"}).
			AddRow("tools", 2).
			AddRow("electronics", 1)

		mock.ExpectQuery("SELECT category, COUNT").
			WithArgs("2023-01").
			WillReturnRows(rows)

		groups, err := repo.CountByCategory(ctx, "2023-01")

		assert.NoError(t, err)
		assert.Len(t, groups, 2)
		assert.Equal(t, repository.CategoryCount{Category: "tools", Count: 2}, groups[0])
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("no matches returns empty slice", func(t *testing.T) {
		mock.ExpectQuery("SELECT category, COUNT").
			WithArgs("1999-01").
			WillReturnRows(sqlmock.NewRows([]string{"category", "count"}))

		groups, err := repo.CountByCategory(ctx, "1999-01")

		assert.NoError(t, err)
		assert.Empty(t, groups)
	})
}
