package order

import (
	"context"

	"github.com/google/uuid"
	"github.com/yishaq/backend/internal/domain/shared"
)

// Repository defines the persistence interface for orders
type Repository interface {
	shared.Repository[Order]
	FindByOrderNumber(ctx context.Context, orderNumber string) (*Order, error)
	FindByUserID(ctx context.Context, userID uuid.UUID, filter shared.Filter) ([]Order, error)
	CountByUserID(ctx context.Context, userID uuid.UUID) (int64, error)
}
