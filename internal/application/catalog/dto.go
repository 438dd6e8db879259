package catalog

import (
	"time"

	"github.com/farmlink/backend/internal/domain/catalog"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreateProductRequest represents a request to create a product listing
type CreateProductRequest struct {
	Name          string          `json:"name" binding:"required,min=1,max=200"`
	Code          string          `json:"code" binding:"max=50"`
	Unit          string          `json:"unit" binding:"required,min=1,max=20"`
	UnitPrice     decimal.Decimal `json:"unit_price" binding:"required"`
	StockQuantity int64           `json:"stock_quantity" binding:"min=0"`
}

// UpdateProductRequest represents a request to update a product listing
type UpdateProductRequest struct {
	Name      *string          `json:"name" binding:"omitempty,min=1,max=200"`
	Unit      *string          `json:"unit" binding:"omitempty,min=1,max=20"`
	UnitPrice *decimal.Decimal `json:"unit_price"`
}

// AdjustStockRequest represents a manual stock adjustment by the farmer
type AdjustStockRequest struct {
	Quantity int64 `json:"quantity" binding:"required"`
}

// ProductListFilter represents filter options for product lists
type ProductListFilter struct {
	Search   string     `form:"search"`
	FarmerID *uuid.UUID `form:"farmer_id"`
	Status   *string    `form:"status"`
	InStock  *bool      `form:"in_stock"`
	Page     int        `form:"page" binding:"omitempty,min=1"`
	PageSize int        `form:"page_size" binding:"omitempty,min=1,max=100"`
	OrderBy  string     `form:"order_by"`
	OrderDir string     `form:"order_dir" binding:"omitempty,oneof=asc desc"`
}

// ProductResponse represents a product listing in API responses
type ProductResponse struct {
	ID            uuid.UUID       `json:"id"`
	FarmerID      uuid.UUID       `json:"farmer_id"`
	Name          string          `json:"name"`
	Code          string          `json:"code,omitempty"`
	Unit          string          `json:"unit"`
	UnitPrice     decimal.Decimal `json:"unit_price"`
	StockQuantity int64           `json:"stock_quantity"`
	Status        string          `json:"status"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// ToProductResponse converts a domain product to a response DTO
func ToProductResponse(product *catalog.Product) ProductResponse {
	return ProductResponse{
		ID:            product.ID,
		FarmerID:      product.FarmerID,
		Name:          product.Name,
		Code:          product.Code,
		Unit:          product.Unit,
		UnitPrice:     product.UnitPrice,
		StockQuantity: product.StockQuantity,
		Status:        product.Status.String(),
		CreatedAt:     product.CreatedAt,
		UpdatedAt:     product.UpdatedAt,
	}
}

// ToProductResponses converts domain products to response DTOs
func ToProductResponses(products []catalog.Product) []ProductResponse {
	responses := make([]ProductResponse, len(products))
	for i := range products {
		responses[i] = ToProductResponse(&products[i])
	}
	return responses
}
