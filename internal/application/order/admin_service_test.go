package order

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/yishaq/backend/internal/domain/order"
	"github.com/yishaq/backend/internal/domain/shared"
	"github.com/yishaq/backend/internal/domain/shared/valueobject"
	"go.uber.org/zap"
)

// MockOrderRepository is a mock implementation of order.Repository
type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) FindByID(ctx context.Context, id uuid.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) FindByOrderNumber(ctx context.Context, orderNumber string) (*order.Order, error) {
	args := m.Called(ctx, orderNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) FindAll(ctx context.Context, filter shared.Filter) ([]order.Order, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]order.Order), args.Error(1)
}

func (m *MockOrderRepository) FindByUserID(ctx context.Context, userID uuid.UUID, filter shared.Filter) ([]order.Order, error) {
	args := m.Called(ctx, userID, filter)
	return args.Get(0).([]order.Order), args.Error(1)
}

func (m *MockOrderRepository) Save(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockOrderRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockOrderRepository) CountByUserID(ctx context.Context, userID uuid.UUID) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

func testOrder(t *testing.T) *order.Order {
	t.Helper()
	o, err := order.NewOrder("YSQ-2026-TEST0001", nil, order.PaymentMethodCard, order.ShippingAddress{
		FirstName: "Ana", Email: "ana@example.com", Address: "Calle 1",
		City: "CDMX", PostalCode: "03100",
	}, "")
	require.NoError(t, err)
	require.NoError(t, o.AddLine(uuid.New(), "Playera", "", "", "M", 2,
		valueobject.NewMoneyMXN(decimal.NewFromInt(280))))
	require.NoError(t, o.Price(order.ShippingRule{
		FreeThreshold: valueobject.NewMoneyMXN(decimal.NewFromInt(1000)),
		FlatFee:       valueobject.NewMoneyMXN(decimal.NewFromInt(99)),
	}))
	return o
}

func strPtr(s string) *string { return &s }

func TestAdminService_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("updates status and stamps timestamps", func(t *testing.T) {
		repo := new(MockOrderRepository)
		svc := NewAdminService(repo, zap.NewNop())

		o := testOrder(t)
		repo.On("FindByID", ctx, o.ID).Return(o, nil)
		repo.On("Save", ctx, o).Return(nil)

		resp, err := svc.Update(ctx, UpdateOrderRequest{
			OrderID: o.ID,
			Status:  strPtr("shipped"),
		})
		require.NoError(t, err)
		assert.Equal(t, "shipped", resp.Status)
		assert.NotNil(t, resp.ShippedAt)
		repo.AssertExpectations(t)
	})

	t.Run("updates payment status independently", func(t *testing.T) {
		repo := new(MockOrderRepository)
		svc := NewAdminService(repo, zap.NewNop())

		o := testOrder(t)
		repo.On("FindByID", ctx, o.ID).Return(o, nil)
		repo.On("Save", ctx, o).Return(nil)

		resp, err := svc.Update(ctx, UpdateOrderRequest{
			OrderID:       o.ID,
			PaymentStatus: strPtr("paid"),
		})
		require.NoError(t, err)
		assert.Equal(t, "paid", resp.PaymentStatus)
		assert.Equal(t, "pending", resp.Status)
		assert.NotNil(t, resp.PaidAt)
	})

	t.Run("sets tracking and notes", func(t *testing.T) {
		repo := new(MockOrderRepository)
		svc := NewAdminService(repo, zap.NewNop())

		o := testOrder(t)
		repo.On("FindByID", ctx, o.ID).Return(o, nil)
		repo.On("Save", ctx, o).Return(nil)

		resp, err := svc.Update(ctx, UpdateOrderRequest{
			OrderID:        o.ID,
			TrackingNumber: strPtr("EST123456789MX"),
			TrackingURL:    strPtr("https://tracking.example.com/EST123456789MX"),
			AdminNotes:     strPtr("Cliente pidió entrega vespertina"),
		})
		require.NoError(t, err)
		assert.Equal(t, "EST123456789MX", resp.TrackingNumber)
		assert.Equal(t, "Cliente pidió entrega vespertina", resp.AdminNotes)
	})

	t.Run("rejects invalid status without touching the order", func(t *testing.T) {
		repo := new(MockOrderRepository)
		svc := NewAdminService(repo, zap.NewNop())

		_, err := svc.Update(ctx, UpdateOrderRequest{
			OrderID: uuid.New(),
			Status:  strPtr("archived"),
		})
		var derr *shared.DomainError
		require.ErrorAs(t, err, &derr)
		assert.Equal(t, "INVALID_STATUS", derr.Code)
		repo.AssertNotCalled(t, "FindByID")
		repo.AssertNotCalled(t, "Save")
	})

	t.Run("rejects invalid payment status before loading", func(t *testing.T) {
		repo := new(MockOrderRepository)
		svc := NewAdminService(repo, zap.NewNop())

		_, err := svc.Update(ctx, UpdateOrderRequest{
			OrderID:       uuid.New(),
			PaymentStatus: strPtr("chargeback"),
		})
		require.Error(t, err)
		repo.AssertNotCalled(t, "Save")
	})

	t.Run("requires order id", func(t *testing.T) {
		svc := NewAdminService(new(MockOrderRepository), zap.NewNop())
		_, err := svc.Update(ctx, UpdateOrderRequest{Status: strPtr("shipped")})
		assert.Error(t, err)
	})

	t.Run("propagates not found", func(t *testing.T) {
		repo := new(MockOrderRepository)
		svc := NewAdminService(repo, zap.NewNop())

		id := uuid.New()
		repo.On("FindByID", ctx, id).Return(nil, shared.ErrNotFound)

		_, err := svc.Update(ctx, UpdateOrderRequest{OrderID: id, Status: strPtr("confirmed")})
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}

func TestAdminService_List(t *testing.T) {
	ctx := context.Background()
	repo := new(MockOrderRepository)
	svc := NewAdminService(repo, zap.NewNop())

	o := testOrder(t)
	repo.On("FindAll", ctx, mock.AnythingOfType("shared.Filter")).Return([]order.Order{*o}, nil)
	repo.On("Count", ctx, mock.AnythingOfType("shared.Filter")).Return(int64(1), nil)

	result, err := svc.List(ctx, ListFilter{Status: "pending", Page: 1, PageSize: 20})
	require.NoError(t, err)
	assert.Equal(t, int64(1), result.Total)
	require.Len(t, result.Items, 1)
	assert.Equal(t, "YSQ-2026-TEST0001", result.Items[0].OrderNumber)
	assert.Equal(t, "659.00", result.Items[0].Total)
}

func TestAdminService_ListByUser(t *testing.T) {
	ctx := context.Background()
	repo := new(MockOrderRepository)
	svc := NewAdminService(repo, zap.NewNop())

	userID := uuid.New()
	repo.On("FindByUserID", ctx, userID, mock.AnythingOfType("shared.Filter")).
		Return([]order.Order{}, nil)
	repo.On("CountByUserID", ctx, userID).Return(int64(0), nil)

	result, err := svc.ListByUser(ctx, userID, 1, 10)
	require.NoError(t, err)
	assert.Empty(t, result.Items)
	assert.Equal(t, int64(0), result.Total)
}
