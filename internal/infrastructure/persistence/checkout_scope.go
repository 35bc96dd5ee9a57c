package persistence

import (
	"context"

	"github.com/yishaq/backend/internal/application/checkout"
	"github.com/yishaq/backend/internal/domain/catalog"
	"github.com/yishaq/backend/internal/domain/order"
	"gorm.io/gorm"
)

// GormCheckoutScope implements checkout.TransactionScope using GORM transactions.
// Every repository handed to the callback shares the same *gorm.DB transaction,
// so stock decrements and the order insert commit or roll back together.
type GormCheckoutScope struct {
	db *gorm.DB
}

// NewGormCheckoutScope creates a new GormCheckoutScope
func NewGormCheckoutScope(db *gorm.DB) *GormCheckoutScope {
	return &GormCheckoutScope{db: db}
}

// Execute runs fn inside a database transaction
func (s *GormCheckoutScope) Execute(ctx context.Context, fn func(repos checkout.TransactionalRepositories) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&gormTransactionalRepositories{tx: tx})
	})
}

// gormTransactionalRepositories provides repositories bound to one transaction
type gormTransactionalRepositories struct {
	tx *gorm.DB
}

func (r *gormTransactionalRepositories) ProductRepo() catalog.ProductRepository {
	return NewGormProductRepository(r.tx)
}

func (r *gormTransactionalRepositories) OrderRepo() order.Repository {
	return NewGormOrderRepository(r.tx)
}

var _ checkout.TransactionScope = (*GormCheckoutScope)(nil)
var _ checkout.TransactionalRepositories = (*gormTransactionalRepositories)(nil)
