package catalog

import (
	"strings"

	"github.com/yishaq/backend/internal/domain/shared"
)

// Category groups products on the storefront
type Category struct {
	shared.BaseEntity
	Name        string
	Slug        string
	Description string
	SortOrder   int
	IsActive    bool
}

// NewCategory creates a new category
func NewCategory(name, slug string) (*Category, error) {
	if strings.TrimSpace(name) == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "Category name is required")
	}
	if strings.TrimSpace(slug) == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "Category slug is required")
	}
	return &Category{
		BaseEntity: shared.NewBaseEntity(),
		Name:       name,
		Slug:       slug,
		IsActive:   true,
	}, nil
}
