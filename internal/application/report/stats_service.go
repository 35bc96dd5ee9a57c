package report

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// RecentOrder is a compact order row for the dashboard
type RecentOrder struct {
	ID            uuid.UUID `json:"id"`
	OrderNumber   string    `json:"order_number"`
	Status        string    `json:"status"`
	PaymentStatus string    `json:"payment_status"`
	Total         string    `json:"total"`
	CustomerName  string    `json:"customer_name"`
	CreatedAt     time.Time `json:"created_at"`
}

// Stats holds the back-office dashboard numbers
type Stats struct {
	TotalSales    string `json:"total_sales"`
	MonthlySales  string `json:"monthly_sales"`
	TotalOrders   int64  `json:"total_orders"`
	PendingOrders int64  `json:"pending_orders"`
	TotalProducts int64  `json:"total_products"`
	LowStockItems int64  `json:"low_stock_items"`
}

// DashboardResponse is the full dashboard payload
type DashboardResponse struct {
	Stats        Stats         `json:"stats"`
	RecentOrders []RecentOrder `json:"recent_orders"`
}

// StatsRepository provides the aggregate queries behind the dashboard.
// Sales figures only count paid orders.
type StatsRepository interface {
	TotalSales(ctx context.Context) (decimal.Decimal, error)
	SalesSince(ctx context.Context, since time.Time) (decimal.Decimal, error)
	TotalOrders(ctx context.Context) (int64, error)
	OrdersWithStatus(ctx context.Context, status string) (int64, error)
	ActiveProducts(ctx context.Context) (int64, error)
	LowStockProducts(ctx context.Context) (int64, error)
	RecentOrders(ctx context.Context, limit int) ([]RecentOrder, error)
}

// StatsService builds the admin dashboard
type StatsService struct {
	repo StatsRepository
}

// NewStatsService creates a new StatsService
func NewStatsService(repo StatsRepository) *StatsService {
	return &StatsService{repo: repo}
}

// Dashboard assembles the dashboard stats and the five most recent orders.
// Monthly sales cover the current calendar month.
func (s *StatsService) Dashboard(ctx context.Context) (*DashboardResponse, error) {
	totalSales, err := s.repo.TotalSales(ctx)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	firstOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	monthlySales, err := s.repo.SalesSince(ctx, firstOfMonth)
	if err != nil {
		return nil, err
	}

	totalOrders, err := s.repo.TotalOrders(ctx)
	if err != nil {
		return nil, err
	}
	pendingOrders, err := s.repo.OrdersWithStatus(ctx, "pending")
	if err != nil {
		return nil, err
	}
	totalProducts, err := s.repo.ActiveProducts(ctx)
	if err != nil {
		return nil, err
	}
	lowStock, err := s.repo.LowStockProducts(ctx)
	if err != nil {
		return nil, err
	}
	recent, err := s.repo.RecentOrders(ctx, 5)
	if err != nil {
		return nil, err
	}

	return &DashboardResponse{
		Stats: Stats{
			TotalSales:    totalSales.StringFixed(2),
			MonthlySales:  monthlySales.StringFixed(2),
			TotalOrders:   totalOrders,
			PendingOrders: pendingOrders,
			TotalProducts: totalProducts,
			LowStockItems: lowStock,
		},
		RecentOrders: recent,
	}, nil
}
