package persistence

import (
	"context"
	"errors"

	"github.com/farmlink/backend/internal/domain/shared"
	"github.com/farmlink/backend/internal/domain/trade"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// cartLineColumns selects cart entries joined with their products in the
// shape of trade.CartLine.
const cartLineColumns = `cart_entries.id AS entry_id,
cart_entries.product_id AS product_id,
products.farmer_id AS farmer_id,
products.name AS product_name,
products.unit AS unit,
cart_entries.quantity AS quantity,
cart_entries.unit_price AS unit_price,
products.stock_quantity AS available_stock,
(products.status = 'ACTIVE') AS product_active`

// GormCartRepository implements trade.CartRepository using GORM
type GormCartRepository struct {
	db *gorm.DB
}

// NewGormCartRepository creates a new GormCartRepository
func NewGormCartRepository(db *gorm.DB) *GormCartRepository {
	return &GormCartRepository{db: db}
}

// FindByBuyer returns all cart entries for a buyer
func (r *GormCartRepository) FindByBuyer(ctx context.Context, buyerID uuid.UUID) ([]trade.CartEntry, error) {
	var entries []trade.CartEntry
	if err := r.db.WithContext(ctx).
		Where("buyer_id = ?", buyerID).
		Order("created_at ASC").
		Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

// FindEntry returns the buyer's cart entry for a product
func (r *GormCartRepository) FindEntry(ctx context.Context, buyerID, productID uuid.UUID) (*trade.CartEntry, error) {
	var entry trade.CartEntry
	if err := r.db.WithContext(ctx).
		Where("buyer_id = ? AND product_id = ?", buyerID, productID).
		First(&entry).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &entry, nil
}

// FindLinesByBuyer returns cart entries joined with their products
func (r *GormCartRepository) FindLinesByBuyer(ctx context.Context, buyerID uuid.UUID) ([]trade.CartLine, error) {
	var lines []trade.CartLine
	if err := r.db.WithContext(ctx).
		Table("cart_entries").
		Select(cartLineColumns).
		Joins("JOIN products ON products.id = cart_entries.product_id").
		Where("cart_entries.buyer_id = ?", buyerID).
		Order("cart_entries.created_at ASC").
		Scan(&lines).Error; err != nil {
		return nil, err
	}
	return lines, nil
}

// FindLines returns joined cart lines restricted to the given products
func (r *GormCartRepository) FindLines(ctx context.Context, buyerID uuid.UUID, productIDs []uuid.UUID) ([]trade.CartLine, error) {
	if len(productIDs) == 0 {
		return nil, nil
	}
	var lines []trade.CartLine
	if err := r.db.WithContext(ctx).
		Table("cart_entries").
		Select(cartLineColumns).
		Joins("JOIN products ON products.id = cart_entries.product_id").
		Where("cart_entries.buyer_id = ? AND cart_entries.product_id IN ?", buyerID, productIDs).
		Order("cart_entries.created_at ASC").
		Scan(&lines).Error; err != nil {
		return nil, err
	}
	return lines, nil
}

// Save creates or updates a cart entry
func (r *GormCartRepository) Save(ctx context.Context, entry *trade.CartEntry) error {
	return r.db.WithContext(ctx).Save(entry).Error
}

// Delete removes the buyer's cart entry for a product
func (r *GormCartRepository) Delete(ctx context.Context, buyerID, productID uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Where("buyer_id = ? AND product_id = ?", buyerID, productID).
		Delete(&trade.CartEntry{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// DeleteAll empties the buyer's cart
func (r *GormCartRepository) DeleteAll(ctx context.Context, buyerID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("buyer_id = ?", buyerID).
		Delete(&trade.CartEntry{}).Error
}

// Ensure GormCartRepository implements CartRepository
var _ trade.CartRepository = (*GormCartRepository)(nil)
