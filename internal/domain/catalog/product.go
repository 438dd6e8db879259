package catalog

import (
	"github.com/farmlink/backend/internal/domain/shared"
	"github.com/farmlink/backend/internal/domain/shared/valueobject"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProductStatus represents the lifecycle status of a product listing
type ProductStatus string

const (
	ProductStatusActive   ProductStatus = "ACTIVE"
	ProductStatusInactive ProductStatus = "INACTIVE"
)

// IsValid checks if the status is a valid ProductStatus
func (s ProductStatus) IsValid() bool {
	switch s {
	case ProductStatusActive, ProductStatusInactive:
		return true
	}
	return false
}

// String returns the string representation of ProductStatus
func (s ProductStatus) String() string {
	return string(s)
}

// Product represents a farmer's listing in the marketplace catalog.
// StockQuantity is the available stock in integral units; it is decremented
// by the checkout workflow through a guarded update and must never go
// negative.
type Product struct {
	shared.BaseEntity
	FarmerID      uuid.UUID       `gorm:"type:uuid;not null;index"`
	Name          string          `gorm:"size:200;not null"`
	Code          string          `gorm:"size:50;not null"`
	Unit          string          `gorm:"size:20;not null"` // kg, crate, bunch, ...
	UnitPrice     decimal.Decimal `gorm:"type:decimal(18,2);not null"`
	StockQuantity int64           `gorm:"not null;default:0"`
	Status        ProductStatus   `gorm:"size:20;not null;default:'ACTIVE'"`
}

// TableName returns the table name for GORM
func (Product) TableName() string {
	return "products"
}

// NewProduct creates a new product listing for a farmer
func NewProduct(farmerID uuid.UUID, name, code, unit string, unitPrice valueobject.Money, stock int64) (*Product, error) {
	if farmerID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_FARMER", "Farmer ID cannot be empty")
	}
	if name == "" {
		return nil, shared.NewDomainError("INVALID_PRODUCT_NAME", "Product name cannot be empty")
	}
	if unit == "" {
		return nil, shared.NewDomainError("INVALID_UNIT", "Unit cannot be empty")
	}
	if unitPrice.IsNegative() {
		return nil, shared.NewDomainError("INVALID_PRICE", "Unit price cannot be negative")
	}
	if stock < 0 {
		return nil, shared.NewDomainError("INVALID_QUANTITY", "Stock quantity cannot be negative")
	}

	return &Product{
		BaseEntity:    shared.NewBaseEntity(),
		FarmerID:      farmerID,
		Name:          name,
		Code:          code,
		Unit:          unit,
		UnitPrice:     unitPrice.Amount(),
		StockQuantity: stock,
		Status:        ProductStatusActive,
	}, nil
}

// IsActive returns true if the product can be added to carts
func (p *Product) IsActive() bool {
	return p.Status == ProductStatusActive
}

// HasStock returns true if at least the given quantity is available
func (p *Product) HasStock(quantity int64) bool {
	return quantity > 0 && p.StockQuantity >= quantity
}

// UpdatePrice changes the listing price
// Cart entries keep the price captured when they were created
func (p *Product) UpdatePrice(unitPrice valueobject.Money) error {
	if unitPrice.IsNegative() {
		return shared.NewDomainError("INVALID_PRICE", "Unit price cannot be negative")
	}
	p.UnitPrice = unitPrice.Amount()
	p.Touch()
	return nil
}

// IncreaseStock adds stock, typically after a harvest update
func (p *Product) IncreaseStock(quantity int64) error {
	if quantity <= 0 {
		return shared.NewDomainError("INVALID_QUANTITY", "Quantity must be positive")
	}
	p.StockQuantity += quantity
	p.Touch()
	return nil
}

// DecreaseStock removes stock after a successful order
// The persistence layer additionally guards this with a conditional update
func (p *Product) DecreaseStock(quantity int64) error {
	if quantity <= 0 {
		return shared.NewDomainError("INVALID_QUANTITY", "Quantity must be positive")
	}
	if p.StockQuantity < quantity {
		return shared.ErrInsufficientStock
	}
	p.StockQuantity -= quantity
	p.Touch()
	return nil
}

// Deactivate removes the listing from sale without deleting it
func (p *Product) Deactivate() {
	p.Status = ProductStatusInactive
	p.Touch()
}

// Activate puts the listing back on sale
func (p *Product) Activate() {
	p.Status = ProductStatusActive
	p.Touch()
}

// GetUnitPriceMoney returns the unit price as a Money value object
func (p *Product) GetUnitPriceMoney() valueobject.Money {
	return valueobject.NewMoneyUSD(p.UnitPrice)
}
