package order

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/yishaq/backend/internal/domain/shared"
	"github.com/yishaq/backend/internal/domain/shared/valueobject"
)

// ShippingAddress holds the destination and contact details captured at checkout
type ShippingAddress struct {
	FirstName  string
	LastName   string
	Email      string
	Phone      string
	Address    string
	City       string
	State      string
	PostalCode string
	Country    string
}

// Validate checks the required shipping fields
func (a ShippingAddress) Validate() error {
	if strings.TrimSpace(a.FirstName) == "" {
		return shared.NewDomainError("INVALID_INPUT", "Shipping first name is required")
	}
	if strings.TrimSpace(a.Email) == "" {
		return shared.NewDomainError("INVALID_INPUT", "Shipping email is required")
	}
	if strings.TrimSpace(a.Address) == "" {
		return shared.NewDomainError("INVALID_INPUT", "Shipping address is required")
	}
	if strings.TrimSpace(a.City) == "" {
		return shared.NewDomainError("INVALID_INPUT", "Shipping city is required")
	}
	if strings.TrimSpace(a.PostalCode) == "" {
		return shared.NewDomainError("INVALID_INPUT", "Shipping postal code is required")
	}
	return nil
}

// OrderItem is a line of an order. Product name, image and unit price are
// snapshotted at purchase time so later catalog edits don't rewrite history.
type OrderItem struct {
	shared.BaseEntity
	OrderID     uuid.UUID
	ProductID   uuid.UUID
	ProductName string
	Image       string
	SKU         string
	Size        string
	Quantity    int
	UnitPrice   valueobject.Money
	TotalPrice  valueobject.Money
}

// ShippingRule decides the shipping cost from the order subtotal
type ShippingRule struct {
	FreeThreshold valueobject.Money
	FlatFee       valueobject.Money
}

// CostFor returns the shipping cost for the given subtotal
func (r ShippingRule) CostFor(subtotal valueobject.Money) (valueobject.Money, error) {
	free, err := subtotal.GreaterThanOrEqual(r.FreeThreshold)
	if err != nil {
		return valueobject.Money{}, err
	}
	if free {
		return valueobject.Zero(subtotal.Currency()), nil
	}
	return r.FlatFee, nil
}

// Order is the order aggregate root
type Order struct {
	shared.BaseAggregateRoot
	OrderNumber      string
	UserID           *uuid.UUID
	Status           OrderStatus
	PaymentStatus    PaymentStatus
	PaymentMethod    PaymentMethod
	PaymentReference string
	Subtotal         valueobject.Money
	ShippingCost     valueobject.Money
	Tax              valueobject.Money
	Discount         valueobject.Money
	Total            valueobject.Money
	Shipping         ShippingAddress
	CustomerNotes    string
	AdminNotes       string
	TrackingNumber   string
	TrackingURL      string
	PaidAt           *time.Time
	ShippedAt        *time.Time
	DeliveredAt      *time.Time
	Items            []OrderItem
}

// NewOrder creates a new order in its initial state. Totals are zero until
// lines are added and Price is called.
func NewOrder(orderNumber string, userID *uuid.UUID, method PaymentMethod, shipping ShippingAddress, customerNotes string) (*Order, error) {
	if strings.TrimSpace(orderNumber) == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "Order number is required")
	}
	if !method.IsValid() {
		return nil, shared.NewDomainError("INVALID_PAYMENT_METHOD", "Unknown payment method: "+method.String())
	}
	if err := shipping.Validate(); err != nil {
		return nil, err
	}
	return &Order{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		OrderNumber:       orderNumber,
		UserID:            userID,
		Status:            OrderStatusPending,
		PaymentStatus:     PaymentStatusPending,
		PaymentMethod:     method,
		Subtotal:          valueobject.ZeroMXN(),
		ShippingCost:      valueobject.ZeroMXN(),
		Tax:               valueobject.ZeroMXN(),
		Discount:          valueobject.ZeroMXN(),
		Total:             valueobject.ZeroMXN(),
		Shipping:          shipping,
		CustomerNotes:     customerNotes,
		Items:             []OrderItem{},
	}, nil
}

// AddLine appends a line with a snapshot of the product at purchase time
func (o *Order) AddLine(productID uuid.UUID, name, image, sku, size string, quantity int, unitPrice valueobject.Money) error {
	if productID == uuid.Nil {
		return shared.NewDomainError("INVALID_INPUT", "Product ID is required")
	}
	if strings.TrimSpace(name) == "" {
		return shared.NewDomainError("INVALID_INPUT", "Product name is required")
	}
	if quantity <= 0 {
		return shared.NewDomainError("INVALID_INPUT", "Quantity must be positive")
	}
	if unitPrice.IsNegative() {
		return shared.NewDomainError("INVALID_INPUT", "Unit price cannot be negative")
	}
	o.Items = append(o.Items, OrderItem{
		BaseEntity:  shared.NewBaseEntity(),
		OrderID:     o.ID,
		ProductID:   productID,
		ProductName: name,
		Image:       image,
		SKU:         sku,
		Size:        size,
		Quantity:    quantity,
		UnitPrice:   unitPrice,
		TotalPrice:  unitPrice.MultiplyByInt(int64(quantity)),
	})
	return nil
}

// Price computes the order totals from its lines and the shipping rule.
// Tax and discount are currently always zero.
func (o *Order) Price(rule ShippingRule) error {
	if len(o.Items) == 0 {
		return shared.NewDomainError("EMPTY_CART", "Order must contain at least one item")
	}
	subtotal := valueobject.ZeroMXN()
	for _, item := range o.Items {
		sum, err := subtotal.Add(item.TotalPrice)
		if err != nil {
			return err
		}
		subtotal = sum
	}
	shipping, err := rule.CostFor(subtotal)
	if err != nil {
		return err
	}
	total, err := subtotal.Add(shipping)
	if err != nil {
		return err
	}
	o.Subtotal = subtotal
	o.ShippingCost = shipping
	o.Tax = valueobject.Zero(subtotal.Currency())
	o.Discount = valueobject.Zero(subtotal.Currency())
	o.Total = total
	return nil
}

// ChangeStatus moves the order to a new fulfillment status and stamps the
// shipped/delivered timestamps. Timestamps are set only on the first entry
// into the corresponding status, so repeated updates are idempotent.
func (o *Order) ChangeStatus(status OrderStatus) error {
	if !status.IsValid() {
		return shared.NewDomainError("INVALID_STATUS", "Unknown order status: "+status.String())
	}
	now := time.Now()
	if status == OrderStatusShipped && o.ShippedAt == nil {
		o.ShippedAt = &now
	}
	if status == OrderStatusDelivered && o.DeliveredAt == nil {
		o.DeliveredAt = &now
	}
	o.Status = status
	o.UpdatedAt = now
	return nil
}

// ChangePaymentStatus moves the order to a new payment status. PaidAt is
// stamped only on the first transition into paid.
func (o *Order) ChangePaymentStatus(status PaymentStatus) error {
	if !status.IsValid() {
		return shared.NewDomainError("INVALID_STATUS", "Unknown payment status: "+status.String())
	}
	now := time.Now()
	if status == PaymentStatusPaid && o.PaidAt == nil {
		o.PaidAt = &now
	}
	o.PaymentStatus = status
	o.UpdatedAt = now
	return nil
}

// SetTracking records the carrier tracking data for the shipment
func (o *Order) SetTracking(number, url string) {
	o.TrackingNumber = number
	o.TrackingURL = url
	o.UpdatedAt = time.Now()
}

// SetAdminNotes replaces the back-office notes on the order
func (o *Order) SetAdminNotes(notes string) {
	o.AdminNotes = notes
	o.UpdatedAt = time.Now()
}

// SetPaymentReference records the external payment reference
func (o *Order) SetPaymentReference(ref string) {
	o.PaymentReference = ref
	o.UpdatedAt = time.Now()
}

// ItemCount returns the total quantity across all lines
func (o *Order) ItemCount() int {
	count := 0
	for _, item := range o.Items {
		count += item.Quantity
	}
	return count
}
