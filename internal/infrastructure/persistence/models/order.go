package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/yishaq/backend/internal/domain/order"
	"github.com/yishaq/backend/internal/domain/shared"
	"github.com/yishaq/backend/internal/domain/shared/valueobject"
)

// OrderModel is the persistence model for the Order aggregate root.
type OrderModel struct {
	AggregateModel
	OrderNumber        string           `gorm:"type:varchar(50);not null;uniqueIndex"`
	UserID             *uuid.UUID       `gorm:"type:uuid;index"`
	Status             string           `gorm:"type:varchar(20);not null;default:'pending';index"`
	PaymentStatus      string           `gorm:"type:varchar(20);not null;default:'pending';index"`
	PaymentMethod      string           `gorm:"type:varchar(20);not null"`
	PaymentReference   string           `gorm:"type:varchar(100)"`
	Subtotal           decimal.Decimal  `gorm:"type:decimal(18,2);not null;default:0"`
	ShippingCost       decimal.Decimal  `gorm:"type:decimal(18,2);not null;default:0"`
	Tax                decimal.Decimal  `gorm:"type:decimal(18,2);not null;default:0"`
	Discount           decimal.Decimal  `gorm:"type:decimal(18,2);not null;default:0"`
	Total              decimal.Decimal  `gorm:"type:decimal(18,2);not null;default:0"`
	Currency           string           `gorm:"type:varchar(3);not null;default:'MXN'"`
	ShippingFirstName  string           `gorm:"type:varchar(100);not null"`
	ShippingLastName   string           `gorm:"type:varchar(100)"`
	ShippingEmail      string           `gorm:"type:varchar(255);not null"`
	ShippingPhone      string           `gorm:"type:varchar(30)"`
	ShippingAddress    string           `gorm:"type:varchar(500);not null"`
	ShippingCity       string           `gorm:"type:varchar(100);not null"`
	ShippingState      string           `gorm:"type:varchar(100)"`
	ShippingPostalCode string           `gorm:"type:varchar(10);not null"`
	ShippingCountry    string           `gorm:"type:varchar(100)"`
	CustomerNotes      string           `gorm:"type:text"`
	AdminNotes         string           `gorm:"type:text"`
	TrackingNumber     string           `gorm:"type:varchar(100)"`
	TrackingURL        string           `gorm:"type:varchar(500)"`
	PaidAt             *time.Time       `gorm:"index"`
	ShippedAt          *time.Time
	DeliveredAt        *time.Time
	Items              []OrderItemModel `gorm:"foreignKey:OrderID;references:ID"`
}

// TableName returns the table name for GORM
func (OrderModel) TableName() string {
	return "orders"
}

// ToDomain converts the persistence model to a domain Order entity.
func (m *OrderModel) ToDomain() *order.Order {
	o := &order.Order{
		BaseAggregateRoot: m.ToDomainAggregateRoot(),
		OrderNumber:       m.OrderNumber,
		UserID:            m.UserID,
		Status:            order.OrderStatus(m.Status),
		PaymentStatus:     order.PaymentStatus(m.PaymentStatus),
		PaymentMethod:     order.PaymentMethod(m.PaymentMethod),
		PaymentReference:  m.PaymentReference,
		Subtotal:          valueobject.NewMoneyMXN(m.Subtotal),
		ShippingCost:      valueobject.NewMoneyMXN(m.ShippingCost),
		Tax:               valueobject.NewMoneyMXN(m.Tax),
		Discount:          valueobject.NewMoneyMXN(m.Discount),
		Total:             valueobject.NewMoneyMXN(m.Total),
		Shipping: order.ShippingAddress{
			FirstName:  m.ShippingFirstName,
			LastName:   m.ShippingLastName,
			Email:      m.ShippingEmail,
			Phone:      m.ShippingPhone,
			Address:    m.ShippingAddress,
			City:       m.ShippingCity,
			State:      m.ShippingState,
			PostalCode: m.ShippingPostalCode,
			Country:    m.ShippingCountry,
		},
		CustomerNotes:  m.CustomerNotes,
		AdminNotes:     m.AdminNotes,
		TrackingNumber: m.TrackingNumber,
		TrackingURL:    m.TrackingURL,
		PaidAt:         m.PaidAt,
		ShippedAt:      m.ShippedAt,
		DeliveredAt:    m.DeliveredAt,
		Items:          make([]order.OrderItem, len(m.Items)),
	}
	for i, item := range m.Items {
		o.Items[i] = *item.ToDomain()
	}
	return o
}

// FromDomain populates the persistence model from a domain Order entity.
func (m *OrderModel) FromDomain(o *order.Order) {
	m.FromDomainAggregateRoot(o.BaseAggregateRoot)
	m.OrderNumber = o.OrderNumber
	m.UserID = o.UserID
	m.Status = string(o.Status)
	m.PaymentStatus = string(o.PaymentStatus)
	m.PaymentMethod = string(o.PaymentMethod)
	m.PaymentReference = o.PaymentReference
	m.Subtotal = o.Subtotal.Amount()
	m.ShippingCost = o.ShippingCost.Amount()
	m.Tax = o.Tax.Amount()
	m.Discount = o.Discount.Amount()
	m.Total = o.Total.Amount()
	m.Currency = string(o.Total.Currency())
	m.ShippingFirstName = o.Shipping.FirstName
	m.ShippingLastName = o.Shipping.LastName
	m.ShippingEmail = o.Shipping.Email
	m.ShippingPhone = o.Shipping.Phone
	m.ShippingAddress = o.Shipping.Address
	m.ShippingCity = o.Shipping.City
	m.ShippingState = o.Shipping.State
	m.ShippingPostalCode = o.Shipping.PostalCode
	m.ShippingCountry = o.Shipping.Country
	m.CustomerNotes = o.CustomerNotes
	m.AdminNotes = o.AdminNotes
	m.TrackingNumber = o.TrackingNumber
	m.TrackingURL = o.TrackingURL
	m.PaidAt = o.PaidAt
	m.ShippedAt = o.ShippedAt
	m.DeliveredAt = o.DeliveredAt
	m.Items = make([]OrderItemModel, len(o.Items))
	for i, item := range o.Items {
		m.Items[i] = *OrderItemModelFromDomain(&item)
	}
}

// OrderModelFromDomain creates a new persistence model from a domain Order entity.
func OrderModelFromDomain(o *order.Order) *OrderModel {
	m := &OrderModel{}
	m.FromDomain(o)
	return m
}

// OrderItemModel is the persistence model for the OrderItem entity.
type OrderItemModel struct {
	BaseModel
	OrderID     uuid.UUID       `gorm:"type:uuid;not null;index"`
	ProductID   uuid.UUID       `gorm:"type:uuid;not null;index"`
	ProductName string          `gorm:"type:varchar(200);not null"`
	Image       string          `gorm:"type:varchar(500)"`
	SKU         string          `gorm:"type:varchar(50)"`
	Size        string          `gorm:"type:varchar(20)"`
	Quantity    int             `gorm:"not null"`
	UnitPrice   decimal.Decimal `gorm:"type:decimal(18,2);not null"`
	TotalPrice  decimal.Decimal `gorm:"type:decimal(18,2);not null"`
}

// TableName returns the table name for GORM
func (OrderItemModel) TableName() string {
	return "order_items"
}

// ToDomain converts the persistence model to a domain OrderItem entity.
func (m *OrderItemModel) ToDomain() *order.OrderItem {
	return &order.OrderItem{
		BaseEntity: shared.BaseEntity{
			ID:        m.ID,
			CreatedAt: m.CreatedAt,
			UpdatedAt: m.UpdatedAt,
		},
		OrderID:     m.OrderID,
		ProductID:   m.ProductID,
		ProductName: m.ProductName,
		Image:       m.Image,
		SKU:         m.SKU,
		Size:        m.Size,
		Quantity:    m.Quantity,
		UnitPrice:   valueobject.NewMoneyMXN(m.UnitPrice),
		TotalPrice:  valueobject.NewMoneyMXN(m.TotalPrice),
	}
}

// OrderItemModelFromDomain creates a new persistence model from a domain OrderItem entity.
func OrderItemModelFromDomain(item *order.OrderItem) *OrderItemModel {
	m := &OrderItemModel{}
	m.FromDomainBaseEntity(item.BaseEntity)
	m.OrderID = item.OrderID
	m.ProductID = item.ProductID
	m.ProductName = item.ProductName
	m.Image = item.Image
	m.SKU = item.SKU
	m.Size = item.Size
	m.Quantity = item.Quantity
	m.UnitPrice = item.UnitPrice.Amount()
	m.TotalPrice = item.TotalPrice.Amount()
	return m
}
