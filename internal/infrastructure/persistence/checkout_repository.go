package persistence

import (
	"context"

	"github.com/farmlink/backend/internal/domain/catalog"
	"github.com/farmlink/backend/internal/domain/shared"
	"github.com/farmlink/backend/internal/domain/trade"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormCheckoutRepository implements trade.CheckoutRepository using GORM.
// The whole checkout runs in one database transaction so a failed stock
// decrement rolls back every order and leaves the cart untouched.
type GormCheckoutRepository struct {
	db *gorm.DB
}

// NewGormCheckoutRepository creates a new GormCheckoutRepository
func NewGormCheckoutRepository(db *gorm.DB) *GormCheckoutRepository {
	return &GormCheckoutRepository{db: db}
}

// PlaceOrders persists the given orders, decrements product stock and
// removes the checked-out cart entries atomically.
//
// Stock is decremented with a conditional update:
//
//	UPDATE products SET stock_quantity = stock_quantity - q
//	WHERE id = ? AND stock_quantity >= q
//
// Zero affected rows means another checkout took the stock first; the
// transaction rolls back with shared.ErrInsufficientStock.
func (r *GormCheckoutRepository) PlaceOrders(ctx context.Context, buyerID uuid.UUID, orders []*trade.Order, entryIDs []uuid.UUID) error {
	if len(orders) == 0 {
		return shared.NewDomainError("EMPTY_ORDER", "Nothing to place")
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, order := range orders {
			if err := tx.Omit("Items").Create(order).Error; err != nil {
				return err
			}
			for i := range order.Items {
				order.Items[i].OrderID = order.ID
				if err := tx.Create(&order.Items[i]).Error; err != nil {
					return err
				}
			}

			for _, item := range order.Items {
				result := tx.Model(&catalog.Product{}).
					Where("id = ? AND stock_quantity >= ?", item.ProductID, item.Quantity).
					UpdateColumn("stock_quantity", gorm.Expr("stock_quantity - ?", item.Quantity))
				if result.Error != nil {
					return result.Error
				}
				if result.RowsAffected == 0 {
					return shared.ErrInsufficientStock
				}
			}
		}

		if len(entryIDs) > 0 {
			if err := tx.Where("buyer_id = ? AND id IN ?", buyerID, entryIDs).
				Delete(&trade.CartEntry{}).Error; err != nil {
				return err
			}
		}

		return nil
	})
}

// Ensure GormCheckoutRepository implements CheckoutRepository
var _ trade.CheckoutRepository = (*GormCheckoutRepository)(nil)
