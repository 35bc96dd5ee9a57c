package persistence

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yishaq/backend/internal/application/checkout"
	"github.com/yishaq/backend/internal/domain/catalog"
	"github.com/yishaq/backend/internal/domain/order"
	"github.com/yishaq/backend/internal/domain/shared"
	"github.com/yishaq/backend/internal/domain/shared/valueobject"
	"github.com/yishaq/backend/internal/infrastructure/persistence/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newCheckoutTestDB opens an in-memory SQLite database so the transactional
// behavior of the scope (commit and rollback across both repositories) can be
// exercised against a real database instead of mocked SQL.
func newCheckoutTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// The pool must stay on a single connection or each connection would
	// see its own empty in-memory database.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.ProductModel{},
		&models.OrderModel{},
		&models.OrderItemModel{},
	))
	return db
}

func seedCheckoutProduct(t *testing.T, db *gorm.DB, stock int) *catalog.Product {
	t.Helper()

	product, err := catalog.NewProduct(
		"Playera Oversize Negra",
		"playera-oversize-negra",
		"YSQ-TSH-001",
		valueobject.NewMoneyMXN(decimal.NewFromInt(350)),
		stock,
	)
	require.NoError(t, err)
	require.NoError(t, NewGormProductRepository(db).Save(context.Background(), product))
	return product
}

func buildCheckoutOrder(t *testing.T, orderNumber string, product *catalog.Product, quantity int) *order.Order {
	t.Helper()

	o, err := order.NewOrder(orderNumber, nil, order.PaymentMethodCard, order.ShippingAddress{
		FirstName:  "Ana",
		LastName:   "García",
		Email:      "ana@example.com",
		Address:    "Av. Reforma 100",
		City:       "Ciudad de México",
		PostalCode: "06600",
		Country:    "México",
	}, "")
	require.NoError(t, err)
	require.NoError(t, o.AddLine(product.ID, product.Name, "", product.SKU, "M", quantity, product.Price))
	require.NoError(t, o.Price(order.ShippingRule{
		FreeThreshold: valueobject.NewMoneyMXN(decimal.NewFromInt(1000)),
		FlatFee:       valueobject.NewMoneyMXN(decimal.NewFromInt(99)),
	}))
	return o
}

func TestGormCheckoutScope_CommitsStockAndOrderTogether(t *testing.T) {
	db := newCheckoutTestDB(t)
	product := seedCheckoutProduct(t, db, 5)
	scope := NewGormCheckoutScope(db)
	ctx := context.Background()

	placed := buildCheckoutOrder(t, "YSQ-2026-M5K2XQ7PAB3T", product, 2)

	err := scope.Execute(ctx, func(repos checkout.TransactionalRepositories) error {
		if err := repos.ProductRepo().DecrementStock(ctx, product.ID, 2); err != nil {
			return err
		}
		return repos.OrderRepo().Save(ctx, placed)
	})
	require.NoError(t, err)

	remaining, err := NewGormProductRepository(db).FindByID(ctx, product.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, remaining.Stock)

	saved, err := NewGormOrderRepository(db).FindByOrderNumber(ctx, "YSQ-2026-M5K2XQ7PAB3T")
	require.NoError(t, err)
	assert.Equal(t, order.OrderStatusPending, saved.Status)
	require.Len(t, saved.Items, 1)
	assert.Equal(t, 2, saved.Items[0].Quantity)
	assert.Equal(t, "799", saved.Total.Amount().String())
}

func TestGormCheckoutScope_RollsBackOnInsufficientStock(t *testing.T) {
	db := newCheckoutTestDB(t)
	product := seedCheckoutProduct(t, db, 5)
	scope := NewGormCheckoutScope(db)
	ctx := context.Background()

	placed := buildCheckoutOrder(t, "YSQ-2026-M5K2XQ7PAB3U", product, 2)

	err := scope.Execute(ctx, func(repos checkout.TransactionalRepositories) error {
		// First decrement succeeds inside the transaction, the oversized
		// one fails and must undo it.
		if err := repos.ProductRepo().DecrementStock(ctx, product.ID, 2); err != nil {
			return err
		}
		if err := repos.OrderRepo().Save(ctx, placed); err != nil {
			return err
		}
		return repos.ProductRepo().DecrementStock(ctx, product.ID, 10)
	})
	assert.ErrorIs(t, err, shared.ErrInsufficientStock)

	remaining, findErr := NewGormProductRepository(db).FindByID(ctx, product.ID)
	require.NoError(t, findErr)
	assert.Equal(t, 5, remaining.Stock)

	_, findErr = NewGormOrderRepository(db).FindByOrderNumber(ctx, "YSQ-2026-M5K2XQ7PAB3U")
	assert.ErrorIs(t, findErr, shared.ErrNotFound)
}

func TestGormCheckoutScope_DuplicateOrderNumberMapsToAlreadyExists(t *testing.T) {
	db := newCheckoutTestDB(t)
	product := seedCheckoutProduct(t, db, 10)
	scope := NewGormCheckoutScope(db)
	ctx := context.Background()

	first := buildCheckoutOrder(t, "YSQ-2026-M5K2XQ7PAB3V", product, 1)
	err := scope.Execute(ctx, func(repos checkout.TransactionalRepositories) error {
		return repos.OrderRepo().Save(ctx, first)
	})
	require.NoError(t, err)

	second := buildCheckoutOrder(t, "YSQ-2026-M5K2XQ7PAB3V", product, 1)
	err = scope.Execute(ctx, func(repos checkout.TransactionalRepositories) error {
		return repos.OrderRepo().Save(ctx, second)
	})
	assert.ErrorIs(t, err, shared.ErrAlreadyExists)
}

func TestGormCheckoutScope_RollsBackWhenCallbackFails(t *testing.T) {
	db := newCheckoutTestDB(t)
	product := seedCheckoutProduct(t, db, 5)
	scope := NewGormCheckoutScope(db)
	ctx := context.Background()

	err := scope.Execute(ctx, func(repos checkout.TransactionalRepositories) error {
		if err := repos.ProductRepo().DecrementStock(ctx, product.ID, 3); err != nil {
			return err
		}
		return shared.NewDomainError("INVALID_PAYMENT_METHOD", "Unknown payment method: paypal")
	})
	require.Error(t, err)

	remaining, findErr := NewGormProductRepository(db).FindByID(ctx, product.ID)
	require.NoError(t, findErr)
	assert.Equal(t, 5, remaining.Stock)
}

func TestGormCheckoutScope_UnknownProductDecrement(t *testing.T) {
	db := newCheckoutTestDB(t)
	scope := NewGormCheckoutScope(db)
	ctx := context.Background()

	err := scope.Execute(ctx, func(repos checkout.TransactionalRepositories) error {
		return repos.ProductRepo().DecrementStock(ctx, uuid.New(), 1)
	})
	assert.ErrorIs(t, err, shared.ErrInsufficientStock)
}
