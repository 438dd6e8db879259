package catalog

import (
	"context"

	"github.com/farmlink/backend/internal/domain/catalog"
	"github.com/farmlink/backend/internal/domain/shared"
	"github.com/farmlink/backend/internal/domain/shared/valueobject"
	"github.com/google/uuid"
)

// ProductService handles product listing business operations
type ProductService struct {
	productRepo catalog.ProductRepository
}

// NewProductService creates a new ProductService
func NewProductService(productRepo catalog.ProductRepository) *ProductService {
	return &ProductService{productRepo: productRepo}
}

// Create creates a new product listing for a farmer
func (s *ProductService) Create(ctx context.Context, farmerID uuid.UUID, req CreateProductRequest) (*ProductResponse, error) {
	unitPrice := valueobject.NewMoneyUSD(req.UnitPrice)
	product, err := catalog.NewProduct(farmerID, req.Name, req.Code, req.Unit, unitPrice, req.StockQuantity)
	if err != nil {
		return nil, err
	}

	if err := s.productRepo.Save(ctx, product); err != nil {
		return nil, err
	}

	response := ToProductResponse(product)
	return &response, nil
}

// GetByID retrieves a product listing by ID
func (s *ProductService) GetByID(ctx context.Context, productID uuid.UUID) (*ProductResponse, error) {
	product, err := s.productRepo.FindByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	response := ToProductResponse(product)
	return &response, nil
}

// List retrieves product listings with filtering and pagination
func (s *ProductService) List(ctx context.Context, filter ProductListFilter) (*shared.Paginated[ProductResponse], error) {
	domainFilter := toDomainFilter(filter)

	products, err := s.productRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, err
	}

	total, err := s.productRepo.Count(ctx, domainFilter)
	if err != nil {
		return nil, err
	}

	page := shared.NewPaginated(ToProductResponses(products), total, domainFilter.Page, domainFilter.PageSize)
	return &page, nil
}

// ListByFarmer retrieves a farmer's own listings
func (s *ProductService) ListByFarmer(ctx context.Context, farmerID uuid.UUID, filter ProductListFilter) (*shared.Paginated[ProductResponse], error) {
	filter.FarmerID = &farmerID
	return s.List(ctx, filter)
}

// Update changes a product listing. Only the owning farmer may update it.
func (s *ProductService) Update(ctx context.Context, farmerID, productID uuid.UUID, req UpdateProductRequest) (*ProductResponse, error) {
	product, err := s.ownedProduct(ctx, farmerID, productID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		product.Name = *req.Name
	}
	if req.Unit != nil {
		product.Unit = *req.Unit
	}
	if req.UnitPrice != nil {
		if err := product.UpdatePrice(valueobject.NewMoneyUSD(*req.UnitPrice)); err != nil {
			return nil, err
		}
	}

	if err := s.productRepo.Save(ctx, product); err != nil {
		return nil, err
	}

	response := ToProductResponse(product)
	return &response, nil
}

// AdjustStock adds or removes stock on a listing. Negative quantities
// remove stock and fail when not enough is available.
func (s *ProductService) AdjustStock(ctx context.Context, farmerID, productID uuid.UUID, req AdjustStockRequest) (*ProductResponse, error) {
	product, err := s.ownedProduct(ctx, farmerID, productID)
	if err != nil {
		return nil, err
	}

	if req.Quantity >= 0 {
		err = product.IncreaseStock(req.Quantity)
	} else {
		err = product.DecreaseStock(-req.Quantity)
	}
	if err != nil {
		return nil, err
	}

	if err := s.productRepo.Save(ctx, product); err != nil {
		return nil, err
	}

	response := ToProductResponse(product)
	return &response, nil
}

// Activate puts a listing back on sale
func (s *ProductService) Activate(ctx context.Context, farmerID, productID uuid.UUID) (*ProductResponse, error) {
	return s.setStatus(ctx, farmerID, productID, true)
}

// Deactivate removes a listing from sale without deleting it
func (s *ProductService) Deactivate(ctx context.Context, farmerID, productID uuid.UUID) (*ProductResponse, error) {
	return s.setStatus(ctx, farmerID, productID, false)
}

func (s *ProductService) setStatus(ctx context.Context, farmerID, productID uuid.UUID, active bool) (*ProductResponse, error) {
	product, err := s.ownedProduct(ctx, farmerID, productID)
	if err != nil {
		return nil, err
	}

	if active {
		product.Activate()
	} else {
		product.Deactivate()
	}

	if err := s.productRepo.Save(ctx, product); err != nil {
		return nil, err
	}

	response := ToProductResponse(product)
	return &response, nil
}

func (s *ProductService) ownedProduct(ctx context.Context, farmerID, productID uuid.UUID) (*catalog.Product, error) {
	product, err := s.productRepo.FindByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if product.FarmerID != farmerID {
		return nil, shared.ErrForbidden
	}
	return product, nil
}

// toDomainFilter maps the API filter onto the shared repository filter
func toDomainFilter(filter ProductListFilter) shared.Filter {
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.PageSize <= 0 {
		filter.PageSize = 20
	}
	if filter.OrderBy == "" {
		filter.OrderBy = "created_at"
	}
	if filter.OrderDir == "" {
		filter.OrderDir = "desc"
	}

	domainFilter := shared.Filter{
		Page:     filter.Page,
		PageSize: filter.PageSize,
		OrderBy:  filter.OrderBy,
		OrderDir: filter.OrderDir,
		Search:   filter.Search,
		Filters:  make(map[string]interface{}),
	}

	if filter.FarmerID != nil {
		domainFilter.Filters["farmer_id"] = *filter.FarmerID
	}
	if filter.Status != nil {
		domainFilter.Filters["status"] = *filter.Status
	}
	if filter.InStock != nil {
		domainFilter.Filters["in_stock"] = *filter.InStock
	}

	return domainFilter
}
