package order

import (
	"context"

	"github.com/google/uuid"
	"github.com/yishaq/backend/internal/domain/order"
	"github.com/yishaq/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// AdminService handles back-office order operations
type AdminService struct {
	orderRepo order.Repository
	logger    *zap.Logger
}

// NewAdminService creates a new AdminService
func NewAdminService(orderRepo order.Repository, logger *zap.Logger) *AdminService {
	return &AdminService{
		orderRepo: orderRepo,
		logger:    logger,
	}
}

// GetByID retrieves an order with its items
func (s *AdminService) GetByID(ctx context.Context, orderID uuid.UUID) (*Response, error) {
	o, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	resp := ToResponse(o)
	return &resp, nil
}

// GetByOrderNumber retrieves an order by its human-readable number
func (s *AdminService) GetByOrderNumber(ctx context.Context, orderNumber string) (*Response, error) {
	o, err := s.orderRepo.FindByOrderNumber(ctx, orderNumber)
	if err != nil {
		return nil, err
	}
	resp := ToResponse(o)
	return &resp, nil
}

// List retrieves orders with filtering and pagination
func (s *AdminService) List(ctx context.Context, filter ListFilter) (shared.Paginated[Response], error) {
	domainFilter := s.toDomainFilter(filter)

	orders, err := s.orderRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return shared.Paginated[Response]{}, err
	}
	total, err := s.orderRepo.Count(ctx, domainFilter)
	if err != nil {
		return shared.Paginated[Response]{}, err
	}

	return shared.NewPaginated(ToResponses(orders), total, domainFilter.Page, domainFilter.PageSize), nil
}

// ListByUser retrieves a customer's own orders, newest first
func (s *AdminService) ListByUser(ctx context.Context, userID uuid.UUID, page, pageSize int) (shared.Paginated[Response], error) {
	filter := shared.DefaultFilter()
	if page > 0 {
		filter.Page = page
	}
	if pageSize > 0 {
		filter.PageSize = pageSize
	}

	orders, err := s.orderRepo.FindByUserID(ctx, userID, filter)
	if err != nil {
		return shared.Paginated[Response]{}, err
	}
	total, err := s.orderRepo.CountByUserID(ctx, userID)
	if err != nil {
		return shared.Paginated[Response]{}, err
	}

	return shared.NewPaginated(ToResponses(orders), total, filter.Page, filter.PageSize), nil
}

// Update applies a back-office update to an order. The request is
// validated as a whole first: if any field is invalid nothing is
// changed. Status timestamps are stamped by the domain on first entry.
func (s *AdminService) Update(ctx context.Context, req UpdateOrderRequest) (*Response, error) {
	if req.OrderID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_INPUT", "Order ID is required")
	}

	var status *order.OrderStatus
	if req.Status != nil {
		parsed, err := order.ParseOrderStatus(*req.Status)
		if err != nil {
			return nil, err
		}
		status = &parsed
	}
	var paymentStatus *order.PaymentStatus
	if req.PaymentStatus != nil {
		parsed, err := order.ParsePaymentStatus(*req.PaymentStatus)
		if err != nil {
			return nil, err
		}
		paymentStatus = &parsed
	}

	o, err := s.orderRepo.FindByID(ctx, req.OrderID)
	if err != nil {
		return nil, err
	}

	if status != nil {
		if err := o.ChangeStatus(*status); err != nil {
			return nil, err
		}
	}
	if paymentStatus != nil {
		if err := o.ChangePaymentStatus(*paymentStatus); err != nil {
			return nil, err
		}
	}
	if req.TrackingNumber != nil || req.TrackingURL != nil {
		number := o.TrackingNumber
		url := o.TrackingURL
		if req.TrackingNumber != nil {
			number = *req.TrackingNumber
		}
		if req.TrackingURL != nil {
			url = *req.TrackingURL
		}
		o.SetTracking(number, url)
	}
	if req.AdminNotes != nil {
		o.SetAdminNotes(*req.AdminNotes)
	}

	if err := s.orderRepo.Save(ctx, o); err != nil {
		return nil, err
	}

	s.logger.Info("order updated",
		zap.String("order_number", o.OrderNumber),
		zap.String("status", string(o.Status)),
		zap.String("payment_status", string(o.PaymentStatus)),
	)

	resp := ToResponse(o)
	return &resp, nil
}

func (s *AdminService) toDomainFilter(filter ListFilter) shared.Filter {
	domainFilter := shared.DefaultFilter()
	if filter.Page > 0 {
		domainFilter.Page = filter.Page
	}
	if filter.PageSize > 0 {
		domainFilter.PageSize = filter.PageSize
	}
	if filter.OrderBy != "" {
		domainFilter.OrderBy = filter.OrderBy
	}
	if filter.OrderDir != "" {
		domainFilter.OrderDir = filter.OrderDir
	}
	domainFilter.Search = filter.Search
	if filter.Status != "" {
		domainFilter.Filters["status"] = filter.Status
	}
	if filter.PaymentStatus != "" {
		domainFilter.Filters["payment_status"] = filter.PaymentStatus
	}
	return domainFilter
}
