package report

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockStatsRepository is a mock implementation of StatsRepository
type MockStatsRepository struct {
	mock.Mock
}

func (m *MockStatsRepository) TotalSales(ctx context.Context) (decimal.Decimal, error) {
	args := m.Called(ctx)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockStatsRepository) SalesSince(ctx context.Context, since time.Time) (decimal.Decimal, error) {
	args := m.Called(ctx, since)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockStatsRepository) TotalOrders(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockStatsRepository) OrdersWithStatus(ctx context.Context, status string) (int64, error) {
	args := m.Called(ctx, status)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockStatsRepository) ActiveProducts(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockStatsRepository) LowStockProducts(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockStatsRepository) RecentOrders(ctx context.Context, limit int) ([]RecentOrder, error) {
	args := m.Called(ctx, limit)
	return args.Get(0).([]RecentOrder), args.Error(1)
}

func TestStatsService_Dashboard(t *testing.T) {
	ctx := context.Background()
	repo := new(MockStatsRepository)
	svc := NewStatsService(repo)

	repo.On("TotalSales", ctx).Return(decimal.NewFromInt(12500), nil)
	repo.On("SalesSince", ctx, mock.AnythingOfType("time.Time")).Return(decimal.NewFromInt(3200), nil)
	repo.On("TotalOrders", ctx).Return(int64(42), nil)
	repo.On("OrdersWithStatus", ctx, "pending").Return(int64(7), nil)
	repo.On("ActiveProducts", ctx).Return(int64(18), nil)
	repo.On("LowStockProducts", ctx).Return(int64(3), nil)
	repo.On("RecentOrders", ctx, 5).Return([]RecentOrder{
		{OrderNumber: "YSQ-2026-AAA111", Status: "pending", Total: "659.00"},
	}, nil)

	resp, err := svc.Dashboard(ctx)
	require.NoError(t, err)

	assert.Equal(t, "12500.00", resp.Stats.TotalSales)
	assert.Equal(t, "3200.00", resp.Stats.MonthlySales)
	assert.Equal(t, int64(42), resp.Stats.TotalOrders)
	assert.Equal(t, int64(7), resp.Stats.PendingOrders)
	assert.Equal(t, int64(18), resp.Stats.TotalProducts)
	assert.Equal(t, int64(3), resp.Stats.LowStockItems)
	require.Len(t, resp.RecentOrders, 1)
	assert.Equal(t, "YSQ-2026-AAA111", resp.RecentOrders[0].OrderNumber)

	t.Run("monthly window starts at the first of the month", func(t *testing.T) {
		since := repo.Calls[1].Arguments.Get(1).(time.Time)
		assert.Equal(t, 1, since.Day())
		assert.Equal(t, 0, since.Hour())
	})
}
