package models

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/yishaq/backend/internal/domain/catalog"
	"github.com/yishaq/backend/internal/domain/shared/valueobject"
)

// ProductModel is the persistence model for the Product aggregate root.
type ProductModel struct {
	AggregateModel
	Name              string           `gorm:"type:varchar(200);not null"`
	Slug              string           `gorm:"type:varchar(200);not null;uniqueIndex"`
	Description       string           `gorm:"type:text"`
	SKU               string           `gorm:"type:varchar(50);index"`
	Price             decimal.Decimal  `gorm:"type:decimal(18,2);not null;default:0"`
	CompareAtPrice    *decimal.Decimal `gorm:"type:decimal(18,2)"`
	Currency          string           `gorm:"type:varchar(3);not null;default:'MXN'"`
	Images            []string         `gorm:"serializer:json"`
	Sizes             []string         `gorm:"serializer:json"`
	CategoryID        *uuid.UUID       `gorm:"type:uuid;index"`
	Stock             int              `gorm:"not null;default:0"`
	LowStockThreshold int              `gorm:"not null;default:5"`
	Featured          bool             `gorm:"not null;default:false"`
	IsActive          bool             `gorm:"not null;default:true;index"`
}

// TableName returns the table name for GORM
func (ProductModel) TableName() string {
	return "products"
}

// ToDomain converts the persistence model to a domain Product entity.
func (m *ProductModel) ToDomain() *catalog.Product {
	p := &catalog.Product{
		BaseAggregateRoot: m.ToDomainAggregateRoot(),
		Name:              m.Name,
		Slug:              m.Slug,
		Description:       m.Description,
		SKU:               m.SKU,
		Price:             valueobject.NewMoneyMXN(m.Price),
		Images:            m.Images,
		Sizes:             m.Sizes,
		CategoryID:        m.CategoryID,
		Stock:             m.Stock,
		LowStockThreshold: m.LowStockThreshold,
		Featured:          m.Featured,
		IsActive:          m.IsActive,
	}
	if m.CompareAtPrice != nil {
		cap := valueobject.NewMoneyMXN(*m.CompareAtPrice)
		p.CompareAtPrice = &cap
	}
	return p
}

// FromDomain populates the persistence model from a domain Product entity.
func (m *ProductModel) FromDomain(p *catalog.Product) {
	m.FromDomainAggregateRoot(p.BaseAggregateRoot)
	m.Name = p.Name
	m.Slug = p.Slug
	m.Description = p.Description
	m.SKU = p.SKU
	m.Price = p.Price.Amount()
	m.Currency = string(p.Price.Currency())
	m.CompareAtPrice = nil
	if p.CompareAtPrice != nil {
		amount := p.CompareAtPrice.Amount()
		m.CompareAtPrice = &amount
	}
	m.Images = p.Images
	m.Sizes = p.Sizes
	m.CategoryID = p.CategoryID
	m.Stock = p.Stock
	m.LowStockThreshold = p.LowStockThreshold
	m.Featured = p.Featured
	m.IsActive = p.IsActive
}

// ProductModelFromDomain creates a new persistence model from a domain Product entity.
func ProductModelFromDomain(p *catalog.Product) *ProductModel {
	m := &ProductModel{}
	m.FromDomain(p)
	return m
}

// CategoryModel is the persistence model for the Category entity.
type CategoryModel struct {
	BaseModel
	Name        string `gorm:"type:varchar(100);not null"`
	Slug        string `gorm:"type:varchar(100);not null;uniqueIndex"`
	Description string `gorm:"type:text"`
	SortOrder   int    `gorm:"not null;default:0"`
	IsActive    bool   `gorm:"not null;default:true"`
}

// TableName returns the table name for GORM
func (CategoryModel) TableName() string {
	return "categories"
}

// ToDomain converts the persistence model to a domain Category entity.
func (m *CategoryModel) ToDomain() *catalog.Category {
	return &catalog.Category{
		BaseEntity:  m.BaseModel.ToDomain(),
		Name:        m.Name,
		Slug:        m.Slug,
		Description: m.Description,
		SortOrder:   m.SortOrder,
		IsActive:    m.IsActive,
	}
}

// FromDomain populates the persistence model from a domain Category entity.
func (m *CategoryModel) FromDomain(c *catalog.Category) {
	m.FromDomainBaseEntity(c.BaseEntity)
	m.Name = c.Name
	m.Slug = c.Slug
	m.Description = c.Description
	m.SortOrder = c.SortOrder
	m.IsActive = c.IsActive
}

// CategoryModelFromDomain creates a new persistence model from a domain Category entity.
func CategoryModelFromDomain(c *catalog.Category) *CategoryModel {
	m := &CategoryModel{}
	m.FromDomain(c)
	return m
}
