package mocks

import (
	"context"

	"salesboard/internal/model"
	"salesboard/internal/repository"
	"salesboard/internal/service"

	"github.com/stretchr/testify/mock"
)

type MockSaleService struct {
	mock.Mock
}

func (m *MockSaleService) InitializeDatabase(ctx context.Context) (*service.InitializeResult, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.InitializeResult), args.Error(1)
}

func (m *MockSaleService) ListTransactions(ctx context.Context, page, perPage int, search string) ([]model.SaleRecord, error) {
	args := m.Called(ctx, page, perPage, search)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.SaleRecord), args.Error(1)
}

func (m *MockSaleService) MonthlyStatistics(ctx context.Context, month string) (*service.Statistics, error) {
	args := m.Called(ctx, month)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.Statistics), args.Error(1)
}

func (m *MockSaleService) PriceHistogram(ctx context.Context, month string) ([]service.HistogramBucket, error) {
	args := m.Called(ctx, month)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]service.HistogramBucket), args.Error(1)
}

func (m *MockSaleService) CategoryBreakdown(ctx context.Context, month string) ([]repository.CategoryCount, error) {
	args := m.Called(ctx, month)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repository.CategoryCount), args.Error(1)
}

func (m *MockSaleService) CombinedView(ctx context.Context, month string) (*service.CombinedData, error) {
	args := m.Called(ctx, month)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.CombinedData), args.Error(1)
}
