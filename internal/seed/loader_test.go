package seed

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"salesboard/internal/config"
	"salesboard/internal/model"
	repoMocks "salesboard/internal/repository/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const fixtureJSON = `[
	{"id":1,"title":"Widget","price":50,"description":"small widget","category":"tools","image":"http://img/1.png","sold":true,"dateOfSale":"2023-01-05T00:00:00Z"},
	{"id":2,"title":"Gadget","price":150,"description":"big gadget","category":"tools","image":"http://img/2.png","sold":false,"dateOfSale":"2023-01-09T00:00:00Z"},
	{"id":3,"title":"Doohickey","price":999,"description":"fancy doohickey","category":"electronics","image":"http://img/3.png","sold":true,"dateOfSale":"2023-01-20T00:00:00Z"}
]`

func TestHTTPSource_Fetch(t *testing.T) {
	ctx := context.Background()

	t.Run("decodes dataset", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(fixtureJSON))
		}))
		defer srv.Close()

		src := NewHTTPSource(srv.URL, 5*time.Second)
		records, err := src.Fetch(ctx)

		require.NoError(t, err)
		require.Len(t, records, 3)
		assert.Equal(t, "Widget", records[0].Title)
		assert.Equal(t, 999.0, records[2].Price)
		assert.False(t, records[1].Sold)
		assert.Equal(t, time.Date(2023, 1, 20, 0, 0, 0, 0, time.UTC), records[2].DateOfSale)
	})

	t.Run("non-200 status is an error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		}))
		defer srv.Close()

		src := NewHTTPSource(srv.URL, 5*time.Second)
		records, err := src.Fetch(ctx)

		assert.Error(t, err)
		assert.Nil(t, records)
		assert.Contains(t, err.Error(), "unexpected status 502")
	})

	t.Run("malformed payload is an error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"not":"an array"}`))
		}))
		defer srv.Close()

		src := NewHTTPSource(srv.URL, 5*time.Second)
		_, err := src.Fetch(ctx)

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "decode seed data")
	})
}

func TestNewSourceFromConfig(t *testing.T) {
	t.Run("http source by default", func(t *testing.T) {
		src, err := NewSourceFromConfig(config.SeedConfig{URL: "http://example.com/data.json", FetchTimeoutSec: 10})
		require.NoError(t, err)
		assert.IsType(t, &HTTPSource{}, src)
	})

	t.Run("bucket source when bucket configured", func(t *testing.T) {
		src, err := NewSourceFromConfig(config.SeedConfig{
			Bucket:    "seeds",
			Object:    "product_transaction.json",
			Endpoint:  "localhost:9000",
			AccessKey: "minio",
			SecretKey: "minio123",
		})
		require.NoError(t, err)
		assert.IsType(t, &BucketSource{}, src)
	})

	t.Run("bucket without credentials fails", func(t *testing.T) {
		_, err := NewSourceFromConfig(config.SeedConfig{Bucket: "seeds", Endpoint: "localhost:9000"})
		assert.Error(t, err)
	})

	t.Run("missing url fails", func(t *testing.T) {
		_, err := NewSourceFromConfig(config.SeedConfig{})
		assert.Error(t, err)
	})
}

type stubSource struct {
	records []model.SaleRecord
	err     error
}

func (s *stubSource) Fetch(ctx context.Context) ([]model.SaleRecord, error) {
	return s.records, s.err
}

func TestLoader_Run(t *testing.T) {
	ctx := context.Background()
	records := []model.SaleRecord{{ID: 1, Title: "Widget"}, {ID: 2, Title: "Gadget"}}

	t.Run("inserts fetched records", func(t *testing.T) {
		mRepo := new(repoMocks.MockSaleRepository)
		mRepo.On("BulkInsert", ctx, records).Return(2, nil)

		loader := NewLoader(&stubSource{records: records}, mRepo)
		n, err := loader.Run(ctx)

		assert.NoError(t, err)
		assert.Equal(t, 2, n)
		mRepo.AssertExpectations(t)
	})

	t.Run("fetch failure", func(t *testing.T) {
		mRepo := new(repoMocks.MockSaleRepository)

		loader := NewLoader(&stubSource{err: errors.New("network down")}, mRepo)
		n, err := loader.Run(ctx)

		assert.Error(t, err)
		assert.Zero(t, n)
		assert.Contains(t, err.Error(), "seed fetch")
		mRepo.AssertNotCalled(t, "BulkInsert", mock.Anything, mock.Anything)
	})

	t.Run("insert failure", func(t *testing.T) {
		mRepo := new(repoMocks.MockSaleRepository)
		mRepo.On("BulkInsert", ctx, records).Return(0, errors.New("db down"))

		loader := NewLoader(&stubSource{records: records}, mRepo)
		_, err := loader.Run(ctx)

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "seed insert")
		mRepo.AssertExpectations(t)
	})

	t.Run("seeding is append-only, not idempotent", func(t *testing.T) {
		mRepo := new(repoMocks.MockSaleRepository)
		mRepo.On("BulkInsert", ctx, records).Return(2, nil).Twice()

		loader := NewLoader(&stubSource{records: records}, mRepo)

		n1, err1 := loader.Run(ctx)
		n2, err2 := loader.Run(ctx)

		assert.NoError(t, err1)
		assert.NoError(t, err2)
		assert.Equal(t, 4, n1+n2)
		mRepo.AssertExpectations(t)
	})
}
