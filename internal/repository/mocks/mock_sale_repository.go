package mocks

import (
	"context"
	"time"

	"salesboard/internal/model"
	"salesboard/internal/repository"

	"github.com/stretchr/testify/mock"
)

type MockSaleRepository struct {
	mock.Mock
}

func (m *MockSaleRepository) BulkInsert(ctx context.Context, records []model.SaleRecord) (int, error) {
	args := m.Called(ctx, records)
	return args.Int(0), args.Error(1)
}

func (m *MockSaleRepository) List(ctx context.Context, q repository.ListQuery) ([]model.SaleRecord, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.SaleRecord), args.Error(1)
}

func (m *MockSaleRepository) SumPriceBetween(ctx context.Context, from, to time.Time) (float64, error) {
	args := m.Called(ctx, from, to)
	return args.Get(0).(float64), args.Error(1)
}

func (m *MockSaleRepository) CountBetween(ctx context.Context, from, to time.Time, unsoldOnly bool) (int, error) {
	args := m.Called(ctx, from, to, unsoldOnly)
	return args.Int(0), args.Error(1)
}

func (m *MockSaleRepository) CountPriceBandBetween(ctx context.Context, from, to time.Time, min float64, max *float64) (int, error) {
	args := m.Called(ctx, from, to, min, max)
	return args.Int(0), args.Error(1)
}

func (m *MockSaleRepository) CountByCategory(ctx context.Context, month string) ([]repository.CategoryCount, error) {
	args := m.Called(ctx, month)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repository.CategoryCount), args.Error(1)
}
