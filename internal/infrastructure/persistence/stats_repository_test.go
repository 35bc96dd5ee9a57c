package persistence

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func newMockStatsRepository(t *testing.T) (*GormStatsRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()

	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	dialector := postgres.New(postgres.Config{
		Conn:       mockDB,
		DriverName: "postgres",
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)

	return NewGormStatsRepository(gormDB), mock, mockDB
}

func TestGormStatsRepository_TotalSales(t *testing.T) {
	t.Run("sums paid order totals", func(t *testing.T) {
		repo, mock, mockDB := newMockStatsRepository(t)
		defer mockDB.Close()

		mock.ExpectQuery(`SELECT COALESCE\(SUM\(total\), 0\) FROM "orders" WHERE payment_status = \$1`).
			WithArgs("paid").
			WillReturnRows(sqlmock.NewRows([]string{"coalesce"}).AddRow(decimal.NewFromFloat(12450.50)))

		total, err := repo.TotalSales(context.Background())

		require.NoError(t, err)
		assert.True(t, total.Equal(decimal.NewFromFloat(12450.50)))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("returns zero when no orders are paid", func(t *testing.T) {
		repo, mock, mockDB := newMockStatsRepository(t)
		defer mockDB.Close()

		mock.ExpectQuery(`SELECT COALESCE\(SUM\(total\), 0\) FROM "orders"`).
			WillReturnRows(sqlmock.NewRows([]string{"coalesce"}).AddRow(decimal.Zero))

		total, err := repo.TotalSales(context.Background())

		require.NoError(t, err)
		assert.True(t, total.IsZero())
	})
}

func TestGormStatsRepository_SalesSince(t *testing.T) {
	repo, mock, mockDB := newMockStatsRepository(t)
	defer mockDB.Close()

	since := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	mock.ExpectQuery(`SELECT COALESCE\(SUM\(total\), 0\) FROM "orders" WHERE created_at >= \$1 AND payment_status = \$2`).
		WithArgs(since, "paid").
		WillReturnRows(sqlmock.NewRows([]string{"coalesce"}).AddRow(decimal.NewFromInt(2300)))

	total, err := repo.SalesSince(context.Background(), since)

	require.NoError(t, err)
	assert.True(t, total.Equal(decimal.NewFromInt(2300)))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormStatsRepository_Counts(t *testing.T) {
	t.Run("orders with status", func(t *testing.T) {
		repo, mock, mockDB := newMockStatsRepository(t)
		defer mockDB.Close()

		mock.ExpectQuery(`SELECT count\(\*\) FROM "orders" WHERE status = \$1`).
			WithArgs("pending").
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(4))

		count, err := repo.OrdersWithStatus(context.Background(), "pending")

		require.NoError(t, err)
		assert.Equal(t, int64(4), count)
	})

	t.Run("low stock products only counts active ones", func(t *testing.T) {
		repo, mock, mockDB := newMockStatsRepository(t)
		defer mockDB.Close()

		mock.ExpectQuery(`SELECT count\(\*\) FROM "products" WHERE is_active = \$1 AND stock <= low_stock_threshold`).
			WithArgs(true).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))

		count, err := repo.LowStockProducts(context.Background())

		require.NoError(t, err)
		assert.Equal(t, int64(2), count)
	})
}

func TestGormStatsRepository_RecentOrders(t *testing.T) {
	repo, mock, mockDB := newMockStatsRepository(t)
	defer mockDB.Close()

	orderID := uuid.New()
	rows := sqlmock.NewRows([]string{
		"id", "order_number", "status", "payment_status", "total",
		"shipping_first_name", "shipping_last_name", "created_at",
	}).AddRow(
		orderID, "YSQ-2026-M5K2XQ7PAB3T", "confirmed", "paid",
		decimal.NewFromInt(659), "Ana", "García", time.Now(),
	)

	mock.ExpectQuery(`SELECT \* FROM "orders" ORDER BY created_at DESC LIMIT \$1`).
		WithArgs(5).
		WillReturnRows(rows)

	recent, err := repo.RecentOrders(context.Background(), 5)

	require.NoError(t, err)
	require.Len(t, recent, 1)
	assert.Equal(t, "YSQ-2026-M5K2XQ7PAB3T", recent[0].OrderNumber)
	assert.Equal(t, "Ana García", recent[0].CustomerName)
	assert.Equal(t, "659.00", recent[0].Total)
	assert.NoError(t, mock.ExpectationsWereMet())
}
