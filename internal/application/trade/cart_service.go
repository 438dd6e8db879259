package trade

import (
	"context"
	"errors"

	"github.com/farmlink/backend/internal/domain/catalog"
	"github.com/farmlink/backend/internal/domain/shared"
	"github.com/farmlink/backend/internal/domain/trade"
	"github.com/google/uuid"
)

// CartService handles cart business operations
type CartService struct {
	cartRepo    trade.CartRepository
	productRepo catalog.ProductRepository
}

// NewCartService creates a new CartService
func NewCartService(cartRepo trade.CartRepository, productRepo catalog.ProductRepository) *CartService {
	return &CartService{
		cartRepo:    cartRepo,
		productRepo: productRepo,
	}
}

// GetCart retrieves the buyer's cart with product details
func (s *CartService) GetCart(ctx context.Context, buyerID uuid.UUID) (*CartResponse, error) {
	lines, err := s.cartRepo.FindLinesByBuyer(ctx, buyerID)
	if err != nil {
		return nil, err
	}
	response := ToCartResponse(lines)
	return &response, nil
}

// AddItem adds a product to the cart. Adding a product already in the
// cart increments its quantity; the price snapshot from the first add
// is kept.
func (s *CartService) AddItem(ctx context.Context, buyerID uuid.UUID, req AddCartItemRequest) (*CartResponse, error) {
	product, err := s.productRepo.FindByID(ctx, req.ProductID)
	if err != nil {
		return nil, err
	}
	if !product.IsActive() {
		return nil, shared.NewDomainError("PRODUCT_INACTIVE", "Product is not available for sale")
	}

	entry, err := s.cartRepo.FindEntry(ctx, buyerID, req.ProductID)
	switch {
	case err == nil:
		if err := entry.AddQuantity(req.Quantity); err != nil {
			return nil, err
		}
	case errors.Is(err, shared.ErrNotFound):
		entry, err = trade.NewCartEntry(buyerID, product, req.Quantity)
		if err != nil {
			return nil, err
		}
	default:
		return nil, err
	}

	if err := s.cartRepo.Save(ctx, entry); err != nil {
		return nil, err
	}

	return s.GetCart(ctx, buyerID)
}

// UpdateQuantity replaces the quantity of a cart line
func (s *CartService) UpdateQuantity(ctx context.Context, buyerID, productID uuid.UUID, req UpdateCartItemRequest) (*CartResponse, error) {
	entry, err := s.cartRepo.FindEntry(ctx, buyerID, productID)
	if err != nil {
		return nil, err
	}

	if err := entry.ChangeQuantity(req.Quantity); err != nil {
		return nil, err
	}

	if err := s.cartRepo.Save(ctx, entry); err != nil {
		return nil, err
	}

	return s.GetCart(ctx, buyerID)
}

// RemoveItem removes a product from the cart. Removing a product that
// is not in the cart is a no-op.
func (s *CartService) RemoveItem(ctx context.Context, buyerID, productID uuid.UUID) (*CartResponse, error) {
	if err := s.cartRepo.Delete(ctx, buyerID, productID); err != nil && !errors.Is(err, shared.ErrNotFound) {
		return nil, err
	}
	return s.GetCart(ctx, buyerID)
}

// Clear removes the given products from the cart, or every entry when
// no products are named
func (s *CartService) Clear(ctx context.Context, buyerID uuid.UUID, productIDs []uuid.UUID) error {
	if len(productIDs) == 0 {
		return s.cartRepo.DeleteAll(ctx, buyerID)
	}
	for _, productID := range productIDs {
		if err := s.cartRepo.Delete(ctx, buyerID, productID); err != nil && !errors.Is(err, shared.ErrNotFound) {
			return err
		}
	}
	return nil
}
