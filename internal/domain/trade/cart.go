package trade

import (
	"github.com/farmlink/backend/internal/domain/catalog"
	"github.com/farmlink/backend/internal/domain/shared"
	"github.com/farmlink/backend/internal/domain/shared/valueobject"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MaxCartQuantity caps a single cart line to keep orders reviewable
const MaxCartQuantity = 10000

// CartEntry is a single product line in a buyer's cart.
// UnitPrice is captured when the entry is created, so a later price change
// on the listing does not silently reprice a cart.
type CartEntry struct {
	shared.BaseEntity
	BuyerID   uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_cart_buyer_product"`
	ProductID uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_cart_buyer_product"`
	Quantity  int64           `gorm:"not null"`
	UnitPrice decimal.Decimal `gorm:"type:decimal(18,2);not null"`
}

// TableName returns the table name for GORM
func (CartEntry) TableName() string {
	return "cart_entries"
}

// NewCartEntry creates a cart entry for a product, snapshotting its price
func NewCartEntry(buyerID uuid.UUID, product *catalog.Product, quantity int64) (*CartEntry, error) {
	if buyerID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_BUYER", "Buyer ID cannot be empty")
	}
	if product == nil {
		return nil, shared.ErrNotFound
	}
	if !product.IsActive() {
		return nil, shared.NewDomainError("PRODUCT_INACTIVE", "Product is not available for sale")
	}
	if err := validateQuantity(quantity); err != nil {
		return nil, err
	}

	return &CartEntry{
		BaseEntity: shared.NewBaseEntity(),
		BuyerID:    buyerID,
		ProductID:  product.ID,
		Quantity:   quantity,
		UnitPrice:  product.UnitPrice,
	}, nil
}

// ChangeQuantity replaces the quantity of the entry
func (e *CartEntry) ChangeQuantity(quantity int64) error {
	if err := validateQuantity(quantity); err != nil {
		return err
	}
	e.Quantity = quantity
	e.Touch()
	return nil
}

// AddQuantity increments the quantity of an existing entry
func (e *CartEntry) AddQuantity(quantity int64) error {
	if quantity <= 0 {
		return shared.NewDomainError("INVALID_QUANTITY", "Quantity must be positive")
	}
	return e.ChangeQuantity(e.Quantity + quantity)
}

// Subtotal returns quantity times the snapshotted unit price
func (e *CartEntry) Subtotal() valueobject.Money {
	return valueobject.NewMoneyUSD(e.UnitPrice).MulInt(e.Quantity)
}

func validateQuantity(quantity int64) error {
	if quantity <= 0 {
		return shared.NewDomainError("INVALID_QUANTITY", "Quantity must be positive")
	}
	if quantity > MaxCartQuantity {
		return shared.NewDomainError("INVALID_QUANTITY", "Quantity exceeds the maximum per cart line")
	}
	return nil
}

// CartLine is the read model for a cart entry joined with its product.
// It carries everything checkout needs: the farmer for partitioning and
// the current stock and listing status for availability checks.
type CartLine struct {
	EntryID        uuid.UUID
	ProductID      uuid.UUID
	FarmerID       uuid.UUID
	ProductName    string
	Unit           string
	Quantity       int64
	UnitPrice      decimal.Decimal
	AvailableStock int64
	ProductActive  bool
}

// Subtotal returns quantity times the snapshotted unit price
func (l CartLine) Subtotal() valueobject.Money {
	return valueobject.NewMoneyUSD(l.UnitPrice).MulInt(l.Quantity)
}

// Orderable reports whether the line can be placed right now
func (l CartLine) Orderable() bool {
	return l.ProductActive && l.AvailableStock >= l.Quantity
}

// CartTotal sums the subtotals of the given lines
func CartTotal(lines []CartLine) valueobject.Money {
	total := valueobject.ZeroUSD()
	for _, l := range lines {
		total, _ = total.Add(l.Subtotal())
	}
	return total
}
