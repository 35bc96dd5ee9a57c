package catalog

import (
	"context"

	"github.com/google/uuid"
	"github.com/yishaq/backend/internal/domain/catalog"
	"github.com/yishaq/backend/internal/domain/shared"
	"github.com/yishaq/backend/internal/domain/shared/valueobject"
	"go.uber.org/zap"
)

// ProductService handles catalog operations for the storefront and back office
type ProductService struct {
	productRepo catalog.ProductRepository
	logger      *zap.Logger
}

// NewProductService creates a new ProductService
func NewProductService(productRepo catalog.ProductRepository, logger *zap.Logger) *ProductService {
	return &ProductService{
		productRepo: productRepo,
		logger:      logger,
	}
}

// List retrieves products. Storefront calls only see active products;
// back-office listings pass IncludeInactive.
func (s *ProductService) List(ctx context.Context, filter ListFilter) (shared.Paginated[ProductResponse], error) {
	domainFilter := s.toDomainFilter(filter)

	var (
		products []catalog.Product
		err      error
	)
	if filter.IncludeInactive {
		products, err = s.productRepo.FindAll(ctx, domainFilter)
	} else {
		domainFilter.Filters["is_active"] = true
		products, err = s.productRepo.FindActive(ctx, domainFilter)
	}
	if err != nil {
		return shared.Paginated[ProductResponse]{}, err
	}

	total, err := s.productRepo.Count(ctx, domainFilter)
	if err != nil {
		return shared.Paginated[ProductResponse]{}, err
	}

	return shared.NewPaginated(ToProductResponses(products), total, domainFilter.Page, domainFilter.PageSize), nil
}

// GetBySlug retrieves a single active product for the storefront
func (s *ProductService) GetBySlug(ctx context.Context, slug string) (*ProductResponse, error) {
	product, err := s.productRepo.FindBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if !product.IsActive {
		return nil, shared.ErrNotFound
	}
	resp := ToProductResponse(product)
	return &resp, nil
}

// GetByID retrieves a product regardless of visibility (back office)
func (s *ProductService) GetByID(ctx context.Context, id uuid.UUID) (*ProductResponse, error) {
	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := ToProductResponse(product)
	return &resp, nil
}

// Create adds a product to the catalog
func (s *ProductService) Create(ctx context.Context, req CreateProductRequest) (*ProductResponse, error) {
	price, err := valueobject.NewMoneyMXNFromString(req.Price)
	if err != nil {
		return nil, shared.NewDomainError("INVALID_INPUT", "Invalid price: "+req.Price)
	}

	product, err := catalog.NewProduct(req.Name, req.Slug, req.SKU, price, req.Stock)
	if err != nil {
		return nil, err
	}
	product.Description = req.Description
	product.Featured = req.Featured
	product.CategoryID = req.CategoryID
	if len(req.Images) > 0 {
		product.Images = req.Images
	}
	if len(req.Sizes) > 0 {
		product.Sizes = req.Sizes
	}
	if req.LowStockThreshold != nil {
		product.LowStockThreshold = *req.LowStockThreshold
	}
	if req.CompareAtPrice != nil {
		cap, err := valueobject.NewMoneyMXNFromString(*req.CompareAtPrice)
		if err != nil {
			return nil, shared.NewDomainError("INVALID_INPUT", "Invalid compare-at price")
		}
		product.CompareAtPrice = &cap
	}

	if err := s.productRepo.Save(ctx, product); err != nil {
		return nil, err
	}

	s.logger.Info("product created",
		zap.String("slug", product.Slug),
		zap.String("price", product.Price.Amount().StringFixed(2)),
	)

	resp := ToProductResponse(product)
	return &resp, nil
}

// Update modifies a product
func (s *ProductService) Update(ctx context.Context, id uuid.UUID, req UpdateProductRequest) (*ProductResponse, error) {
	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		product.Name = *req.Name
	}
	if req.Description != nil {
		product.Description = *req.Description
	}
	if req.Price != nil {
		price, err := valueobject.NewMoneyMXNFromString(*req.Price)
		if err != nil {
			return nil, shared.NewDomainError("INVALID_INPUT", "Invalid price: "+*req.Price)
		}
		if err := product.UpdatePrice(price); err != nil {
			return nil, err
		}
	}
	if req.CompareAtPrice != nil {
		cap, err := valueobject.NewMoneyMXNFromString(*req.CompareAtPrice)
		if err != nil {
			return nil, shared.NewDomainError("INVALID_INPUT", "Invalid compare-at price")
		}
		product.CompareAtPrice = &cap
	}
	if req.Images != nil {
		product.Images = req.Images
	}
	if req.Sizes != nil {
		product.Sizes = req.Sizes
	}
	if req.CategoryID != nil {
		product.CategoryID = req.CategoryID
	}
	if req.Stock != nil {
		if err := product.AdjustStock(*req.Stock); err != nil {
			return nil, err
		}
	}
	if req.LowStockThreshold != nil {
		product.LowStockThreshold = *req.LowStockThreshold
	}
	if req.Featured != nil {
		product.Featured = *req.Featured
	}
	if req.IsActive != nil {
		if *req.IsActive {
			product.Activate()
		} else {
			product.Deactivate()
		}
	}

	if err := s.productRepo.Save(ctx, product); err != nil {
		return nil, err
	}

	resp := ToProductResponse(product)
	return &resp, nil
}

// Delete removes a product from the catalog
func (s *ProductService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.productRepo.Delete(ctx, id)
}

func (s *ProductService) toDomainFilter(filter ListFilter) shared.Filter {
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
	if filter.CategoryID != nil {
		domainFilter.Filters["category_id"] = *filter.CategoryID
	}
	if filter.Featured != nil {
		domainFilter.Filters["featured"] = *filter.Featured
	}
	return domainFilter
}
