package catalog

import (
	"time"

	"github.com/google/uuid"
	"github.com/yishaq/backend/internal/domain/catalog"
)

// ProductResponse is the storefront representation of a product
type ProductResponse struct {
	ID             uuid.UUID  `json:"id"`
	Name           string     `json:"name"`
	Slug           string     `json:"slug"`
	Description    string     `json:"description,omitempty"`
	SKU            string     `json:"sku,omitempty"`
	Price          string     `json:"price"`
	CompareAtPrice *string    `json:"compare_at_price,omitempty"`
	Currency       string     `json:"currency"`
	Images         []string   `json:"images"`
	Sizes          []string   `json:"sizes"`
	CategoryID     *uuid.UUID `json:"category_id,omitempty"`
	Stock          int        `json:"stock"`
	InStock        bool       `json:"in_stock"`
	Featured       bool       `json:"featured"`
	IsActive       bool       `json:"is_active"`
	CreatedAt      time.Time  `json:"created_at"`
}

// ToProductResponse converts a domain product to its API representation
func ToProductResponse(p *catalog.Product) ProductResponse {
	resp := ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Slug:        p.Slug,
		Description: p.Description,
		SKU:         p.SKU,
		Price:       p.Price.Amount().StringFixed(2),
		Currency:    string(p.Price.Currency()),
		Images:      p.Images,
		Sizes:       p.Sizes,
		CategoryID:  p.CategoryID,
		Stock:       p.Stock,
		InStock:     p.Stock > 0,
		Featured:    p.Featured,
		IsActive:    p.IsActive,
		CreatedAt:   p.CreatedAt,
	}
	if p.CompareAtPrice != nil {
		s := p.CompareAtPrice.Amount().StringFixed(2)
		resp.CompareAtPrice = &s
	}
	return resp
}

// ToProductResponses converts a slice of domain products
func ToProductResponses(products []catalog.Product) []ProductResponse {
	out := make([]ProductResponse, len(products))
	for i := range products {
		out[i] = ToProductResponse(&products[i])
	}
	return out
}

// ListFilter holds the product listing options
type ListFilter struct {
	Page       int
	PageSize   int
	OrderBy    string
	OrderDir   string
	Search     string
	CategoryID *uuid.UUID
	Featured   *bool
	// IncludeInactive is only honored for back-office listings
	IncludeInactive bool
}

// CreateProductRequest is the back-office product creation input
type CreateProductRequest struct {
	Name              string     `json:"name"`
	Slug              string     `json:"slug"`
	Description       string     `json:"description"`
	SKU               string     `json:"sku"`
	Price             string     `json:"price"`
	CompareAtPrice    *string    `json:"compare_at_price"`
	Images            []string   `json:"images"`
	Sizes             []string   `json:"sizes"`
	CategoryID        *uuid.UUID `json:"category_id"`
	Stock             int        `json:"stock"`
	LowStockThreshold *int       `json:"low_stock_threshold"`
	Featured          bool       `json:"featured"`
}

// CategoryResponse is the API representation of a category
type CategoryResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Slug        string    `json:"slug"`
	Description string    `json:"description,omitempty"`
	SortOrder   int       `json:"sort_order"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
}

// ToCategoryResponse converts a domain category to its API representation
func ToCategoryResponse(c *catalog.Category) CategoryResponse {
	return CategoryResponse{
		ID:          c.ID,
		Name:        c.Name,
		Slug:        c.Slug,
		Description: c.Description,
		SortOrder:   c.SortOrder,
		IsActive:    c.IsActive,
		CreatedAt:   c.CreatedAt,
	}
}

// ToCategoryResponses converts a slice of domain categories
func ToCategoryResponses(categories []catalog.Category) []CategoryResponse {
	out := make([]CategoryResponse, len(categories))
	for i := range categories {
		out[i] = ToCategoryResponse(&categories[i])
	}
	return out
}

// CreateCategoryRequest is the back-office category creation input
type CreateCategoryRequest struct {
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Description string `json:"description"`
	SortOrder   int    `json:"sort_order"`
}

// UpdateCategoryRequest is the back-office category update input.
// Nil fields are left untouched.
type UpdateCategoryRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	SortOrder   *int    `json:"sort_order"`
	IsActive    *bool   `json:"is_active"`
}

// UpdateProductRequest is the back-office product update input.
// Nil fields are left untouched.
type UpdateProductRequest struct {
	Name              *string    `json:"name"`
	Description       *string    `json:"description"`
	Price             *string    `json:"price"`
	CompareAtPrice    *string    `json:"compare_at_price"`
	Images            []string   `json:"images"`
	Sizes             []string   `json:"sizes"`
	CategoryID        *uuid.UUID `json:"category_id"`
	Stock             *int       `json:"stock"`
	LowStockThreshold *int       `json:"low_stock_threshold"`
	Featured          *bool      `json:"featured"`
	IsActive          *bool      `json:"is_active"`
}
