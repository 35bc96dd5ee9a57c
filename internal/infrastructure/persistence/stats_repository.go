package persistence

import (
	"context"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/yishaq/backend/internal/application/report"
	"github.com/yishaq/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormStatsRepository implements report.StatsRepository with aggregate queries
type GormStatsRepository struct {
	db *gorm.DB
}

// NewGormStatsRepository creates a new GormStatsRepository
func NewGormStatsRepository(db *gorm.DB) *GormStatsRepository {
	return &GormStatsRepository{db: db}
}

// TotalSales sums the total of all paid orders
func (r *GormStatsRepository) TotalSales(ctx context.Context) (decimal.Decimal, error) {
	return r.sumPaidTotals(r.db.WithContext(ctx).Model(&models.OrderModel{}))
}

// SalesSince sums the total of paid orders created at or after the given time
func (r *GormStatsRepository) SalesSince(ctx context.Context, since time.Time) (decimal.Decimal, error) {
	return r.sumPaidTotals(
		r.db.WithContext(ctx).Model(&models.OrderModel{}).
			Where("created_at >= ?", since),
	)
}

func (r *GormStatsRepository) sumPaidTotals(query *gorm.DB) (decimal.Decimal, error) {
	var sum decimal.NullDecimal
	err := query.
		Where("payment_status = ?", "paid").
		Select("COALESCE(SUM(total), 0)").
		Scan(&sum).Error
	if err != nil {
		return decimal.Zero, err
	}
	if !sum.Valid {
		return decimal.Zero, nil
	}
	return sum.Decimal, nil
}

// TotalOrders counts all orders
func (r *GormStatsRepository) TotalOrders(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.OrderModel{}).Count(&count).Error
	return count, err
}

// OrdersWithStatus counts orders in the given status
func (r *GormStatsRepository) OrdersWithStatus(ctx context.Context, status string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.OrderModel{}).
		Where("status = ?", status).
		Count(&count).Error
	return count, err
}

// ActiveProducts counts products visible in the storefront
func (r *GormStatsRepository) ActiveProducts(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.ProductModel{}).
		Where("is_active = ?", true).
		Count(&count).Error
	return count, err
}

// LowStockProducts counts active products at or below their low-stock threshold
func (r *GormStatsRepository) LowStockProducts(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.ProductModel{}).
		Where("is_active = ? AND stock <= low_stock_threshold", true).
		Count(&count).Error
	return count, err
}

// RecentOrders returns the most recently created orders, newest first
func (r *GormStatsRepository) RecentOrders(ctx context.Context, limit int) ([]report.RecentOrder, error) {
	var mods []models.OrderModel
	err := r.db.WithContext(ctx).Model(&models.OrderModel{}).
		Order("created_at DESC").
		Limit(limit).
		Find(&mods).Error
	if err != nil {
		return nil, err
	}

	recent := make([]report.RecentOrder, len(mods))
	for i := range mods {
		name := strings.TrimSpace(mods[i].ShippingFirstName + " " + mods[i].ShippingLastName)
		recent[i] = report.RecentOrder{
			ID:            mods[i].ID,
			OrderNumber:   mods[i].OrderNumber,
			Status:        mods[i].Status,
			PaymentStatus: mods[i].PaymentStatus,
			Total:         mods[i].Total.StringFixed(2),
			CustomerName:  name,
			CreatedAt:     mods[i].CreatedAt,
		}
	}
	return recent, nil
}

var _ report.StatsRepository = (*GormStatsRepository)(nil)
