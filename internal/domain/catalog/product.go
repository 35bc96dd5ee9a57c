package catalog

import (
	"strings"

	"github.com/google/uuid"
	"github.com/yishaq/backend/internal/domain/shared"
	"github.com/yishaq/backend/internal/domain/shared/valueobject"
)

// Product is the product aggregate root
type Product struct {
	shared.BaseAggregateRoot
	Name              string
	Slug              string
	Description       string
	SKU               string
	Price             valueobject.Money
	CompareAtPrice    *valueobject.Money
	Images            []string
	Sizes             []string
	CategoryID        *uuid.UUID
	Stock             int
	LowStockThreshold int
	Featured          bool
	IsActive          bool
}

// NewProduct creates a new product
func NewProduct(name, slug, sku string, price valueobject.Money, stock int) (*Product, error) {
	if strings.TrimSpace(name) == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "Product name is required")
	}
	if strings.TrimSpace(slug) == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "Product slug is required")
	}
	if price.IsNegative() {
		return nil, shared.NewDomainError("INVALID_INPUT", "Product price cannot be negative")
	}
	if stock < 0 {
		return nil, shared.NewDomainError("INVALID_INPUT", "Product stock cannot be negative")
	}
	return &Product{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Name:              name,
		Slug:              slug,
		SKU:               sku,
		Price:             price,
		Images:            []string{},
		Sizes:             []string{},
		Stock:             stock,
		LowStockThreshold: 5,
		IsActive:          true,
	}, nil
}

// IsPurchasable returns true if the product can appear in a checkout
func (p *Product) IsPurchasable() bool {
	return p.IsActive
}

// HasStock returns true if at least quantity units are available
func (p *Product) HasStock(quantity int) bool {
	return quantity > 0 && p.Stock >= quantity
}

// IsLowStock returns true if remaining stock is at or below the threshold
func (p *Product) IsLowStock() bool {
	return p.Stock <= p.LowStockThreshold
}

// HasSize returns true if the product is offered in the given size.
// Products without a size list accept any size value.
func (p *Product) HasSize(size string) bool {
	if len(p.Sizes) == 0 {
		return true
	}
	for _, s := range p.Sizes {
		if strings.EqualFold(s, size) {
			return true
		}
	}
	return false
}

// MainImage returns the first image or empty string
func (p *Product) MainImage() string {
	if len(p.Images) == 0 {
		return ""
	}
	return p.Images[0]
}

// UpdatePrice changes the product price
func (p *Product) UpdatePrice(price valueobject.Money) error {
	if price.IsNegative() {
		return shared.NewDomainError("INVALID_INPUT", "Product price cannot be negative")
	}
	p.Price = price
	return nil
}

// AdjustStock sets the absolute stock level
func (p *Product) AdjustStock(stock int) error {
	if stock < 0 {
		return shared.NewDomainError("INVALID_INPUT", "Product stock cannot be negative")
	}
	p.Stock = stock
	return nil
}

// Activate makes the product visible and purchasable
func (p *Product) Activate() {
	p.IsActive = true
}

// Deactivate hides the product from the storefront
func (p *Product) Deactivate() {
	p.IsActive = false
}
