package checkout

import (
	"time"

	"github.com/google/uuid"
	"github.com/yishaq/backend/internal/domain/order"
)

// CartItemInput is one cart line sent by the storefront.
// Only the product reference and quantity are trusted; prices always
// come from the catalog.
type CartItemInput struct {
	ProductID uuid.UUID `json:"product_id"`
	Quantity  int       `json:"quantity"`
	Size      string    `json:"size"`
}

// ShippingInput is the shipping address captured at checkout
type ShippingInput struct {
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

// PlaceOrderRequest is the checkout input
type PlaceOrderRequest struct {
	UserID        *uuid.UUID      `json:"-"`
	Items         []CartItemInput `json:"items"`
	PaymentMethod string          `json:"payment_method"`
	Shipping      ShippingInput   `json:"shipping"`
	CustomerNotes string          `json:"customer_notes"`
}

// PlaceOrderResponse is returned after a successful checkout
type PlaceOrderResponse struct {
	ID            uuid.UUID `json:"id"`
	OrderNumber   string    `json:"order_number"`
	Status        string    `json:"status"`
	PaymentStatus string    `json:"payment_status"`
	PaymentMethod string    `json:"payment_method"`
	Subtotal      string    `json:"subtotal"`
	ShippingCost  string    `json:"shipping_cost"`
	Total         string    `json:"total"`
	Currency      string    `json:"currency"`
	Message       string    `json:"message"`
	CreatedAt     time.Time `json:"created_at"`
}

// ToPlaceOrderResponse converts a placed order into the checkout response
func ToPlaceOrderResponse(o *order.Order, message string) PlaceOrderResponse {
	return PlaceOrderResponse{
		ID:            o.ID,
		OrderNumber:   o.OrderNumber,
		Status:        string(o.Status),
		PaymentStatus: string(o.PaymentStatus),
		PaymentMethod: string(o.PaymentMethod),
		Subtotal:      o.Subtotal.Amount().StringFixed(2),
		ShippingCost:  o.ShippingCost.Amount().StringFixed(2),
		Total:         o.Total.Amount().StringFixed(2),
		Currency:      string(o.Total.Currency()),
		Message:       message,
		CreatedAt:     o.CreatedAt,
	}
}
