package order

import (
	"time"

	"github.com/google/uuid"
	"github.com/yishaq/backend/internal/domain/order"
)

// UpdateOrderRequest carries a back-office order update. Nil fields are
// left untouched; present fields are validated together before anything
// is applied.
type UpdateOrderRequest struct {
	OrderID        uuid.UUID `json:"order_id"`
	Status         *string   `json:"status"`
	PaymentStatus  *string   `json:"payment_status"`
	TrackingNumber *string   `json:"tracking_number"`
	TrackingURL    *string   `json:"tracking_url"`
	AdminNotes     *string   `json:"admin_notes"`
}

// ListFilter holds the admin order listing options
type ListFilter struct {
	Page          int
	PageSize      int
	OrderBy       string
	OrderDir      string
	Search        string
	Status        string
	PaymentStatus string
}

// ItemResponse is one order line in API responses
type ItemResponse struct {
	ID          uuid.UUID `json:"id"`
	ProductID   uuid.UUID `json:"product_id"`
	ProductName string    `json:"product_name"`
	Image       string    `json:"image"`
	SKU         string    `json:"sku"`
	Size        string    `json:"size"`
	Quantity    int       `json:"quantity"`
	UnitPrice   string    `json:"unit_price"`
	TotalPrice  string    `json:"total_price"`
}

// ShippingResponse is the shipping address in API responses
type ShippingResponse struct {
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Address    string `json:"address"`
	City       string `json:"city"`
	State      string `json:"state"`
	PostalCode string `json:"postal_code"`
	Country    string `json:"country"`
}

// Response is the full order representation in API responses
type Response struct {
	ID             uuid.UUID        `json:"id"`
	OrderNumber    string           `json:"order_number"`
	UserID         *uuid.UUID       `json:"user_id,omitempty"`
	Status         string           `json:"status"`
	PaymentStatus  string           `json:"payment_status"`
	PaymentMethod  string           `json:"payment_method"`
	Subtotal       string           `json:"subtotal"`
	ShippingCost   string           `json:"shipping_cost"`
	Tax            string           `json:"tax"`
	Discount       string           `json:"discount"`
	Total          string           `json:"total"`
	Currency       string           `json:"currency"`
	Shipping       ShippingResponse `json:"shipping"`
	CustomerNotes  string           `json:"customer_notes,omitempty"`
	AdminNotes     string           `json:"admin_notes,omitempty"`
	TrackingNumber string           `json:"tracking_number,omitempty"`
	TrackingURL    string           `json:"tracking_url,omitempty"`
	PaidAt         *time.Time       `json:"paid_at,omitempty"`
	ShippedAt      *time.Time       `json:"shipped_at,omitempty"`
	DeliveredAt    *time.Time       `json:"delivered_at,omitempty"`
	Items          []ItemResponse   `json:"items"`
	CreatedAt      time.Time        `json:"created_at"`
	UpdatedAt      time.Time        `json:"updated_at"`
}

// ToResponse converts a domain order to its API representation
func ToResponse(o *order.Order) Response {
	items := make([]ItemResponse, len(o.Items))
	for i, item := range o.Items {
		items[i] = ItemResponse{
			ID:          item.ID,
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			Image:       item.Image,
			SKU:         item.SKU,
			Size:        item.Size,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice.Amount().StringFixed(2),
			TotalPrice:  item.TotalPrice.Amount().StringFixed(2),
		}
	}
	return Response{
		ID:            o.ID,
		OrderNumber:   o.OrderNumber,
		UserID:        o.UserID,
		Status:        string(o.Status),
		PaymentStatus: string(o.PaymentStatus),
		PaymentMethod: string(o.PaymentMethod),
		Subtotal:      o.Subtotal.Amount().StringFixed(2),
		ShippingCost:  o.ShippingCost.Amount().StringFixed(2),
		Tax:           o.Tax.Amount().StringFixed(2),
		Discount:      o.Discount.Amount().StringFixed(2),
		Total:         o.Total.Amount().StringFixed(2),
		Currency:      string(o.Total.Currency()),
		Shipping: ShippingResponse{
			FirstName:  o.Shipping.FirstName,
			LastName:   o.Shipping.LastName,
			Email:      o.Shipping.Email,
			Phone:      o.Shipping.Phone,
			Address:    o.Shipping.Address,
			City:       o.Shipping.City,
			State:      o.Shipping.State,
			PostalCode: o.Shipping.PostalCode,
			Country:    o.Shipping.Country,
		},
		CustomerNotes:  o.CustomerNotes,
		AdminNotes:     o.AdminNotes,
		TrackingNumber: o.TrackingNumber,
		TrackingURL:    o.TrackingURL,
		PaidAt:         o.PaidAt,
		ShippedAt:      o.ShippedAt,
		DeliveredAt:    o.DeliveredAt,
		Items:          items,
		CreatedAt:      o.CreatedAt,
		UpdatedAt:      o.UpdatedAt,
	}
}

// ToResponses converts a slice of domain orders
func ToResponses(orders []order.Order) []Response {
	out := make([]Response, len(orders))
	for i := range orders {
		out[i] = ToResponse(&orders[i])
	}
	return out
}
