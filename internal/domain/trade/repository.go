package trade

import (
	"context"

	"github.com/farmlink/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// CartRepository defines persistence operations for cart entries
type CartRepository interface {
	FindByBuyer(ctx context.Context, buyerID uuid.UUID) ([]CartEntry, error)
	FindEntry(ctx context.Context, buyerID, productID uuid.UUID) (*CartEntry, error)
	// FindLinesByBuyer returns cart entries joined with their products,
	// ready for display and for checkout partitioning.
	FindLinesByBuyer(ctx context.Context, buyerID uuid.UUID) ([]CartLine, error)
	FindLines(ctx context.Context, buyerID uuid.UUID, productIDs []uuid.UUID) ([]CartLine, error)
	Save(ctx context.Context, entry *CartEntry) error
	Delete(ctx context.Context, buyerID, productID uuid.UUID) error
	DeleteAll(ctx context.Context, buyerID uuid.UUID) error
}

// OrderRepository defines persistence operations for orders
type OrderRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Order, error)
	FindByBuyer(ctx context.Context, buyerID uuid.UUID, filter shared.Filter) ([]Order, error)
	CountByBuyer(ctx context.Context, buyerID uuid.UUID, filter shared.Filter) (int64, error)
	FindByFarmer(ctx context.Context, farmerID uuid.UUID, filter shared.Filter) ([]Order, error)
	CountByFarmer(ctx context.Context, farmerID uuid.UUID, filter shared.Filter) (int64, error)
	Save(ctx context.Context, order *Order) error
	// GenerateOrderNumbers produces the next count sequential order
	// numbers, format FO-YYYY-NNNNN. A multi-farmer checkout consumes
	// one number per order in a single call.
	GenerateOrderNumbers(ctx context.Context, count int) ([]string, error)
}

// CheckoutRepository runs the transactional half of order placement.
// PlaceOrders must atomically insert the orders with their items,
// decrement product stock with an availability guard, and delete the
// checked-out cart entries. If any product lacks stock the whole
// transaction rolls back and shared.ErrInsufficientStock is returned.
type CheckoutRepository interface {
	PlaceOrders(ctx context.Context, buyerID uuid.UUID, orders []*Order, entryIDs []uuid.UUID) error
}

// DeliverySessionStore holds a buyer's delivery info between the
// delivery step and checkout. Entries expire after a TTL chosen by the
// implementation.
type DeliverySessionStore interface {
	Save(ctx context.Context, buyerID uuid.UUID, info DeliveryInfo) error
	Get(ctx context.Context, buyerID uuid.UUID) (*DeliveryInfo, error)
	Delete(ctx context.Context, buyerID uuid.UUID) error
}
