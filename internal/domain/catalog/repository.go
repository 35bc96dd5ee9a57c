package catalog

import (
	"context"

	"github.com/google/uuid"
	"github.com/yishaq/backend/internal/domain/shared"
)

// ProductRepository defines the persistence interface for products
type ProductRepository interface {
	shared.Repository[Product]
	FindBySlug(ctx context.Context, slug string) (*Product, error)
	FindBySKU(ctx context.Context, sku string) (*Product, error)
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]Product, error)
	FindActive(ctx context.Context, filter shared.Filter) ([]Product, error)
	// DecrementStock atomically subtracts quantity when enough stock remains.
	// Returns shared.ErrInsufficientStock when it does not.
	DecrementStock(ctx context.Context, id uuid.UUID, quantity int) error
	FindLowStock(ctx context.Context) ([]Product, error)
}

// CategoryRepository defines the persistence interface for categories
type CategoryRepository interface {
	shared.Repository[Category]
	FindBySlug(ctx context.Context, slug string) (*Category, error)
}
