package trade

import (
	"context"
	"errors"

	"github.com/farmlink/backend/internal/domain/shared"
	"github.com/farmlink/backend/internal/domain/shared/valueobject"
	"github.com/farmlink/backend/internal/domain/trade"
	"github.com/farmlink/backend/internal/infrastructure/logger"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CheckoutService handles the delivery step and order placement
type CheckoutService struct {
	cartRepo      trade.CartRepository
	orderRepo     trade.OrderRepository
	checkoutRepo  trade.CheckoutRepository
	deliveryStore trade.DeliverySessionStore
}

// NewCheckoutService creates a new CheckoutService
func NewCheckoutService(
	cartRepo trade.CartRepository,
	orderRepo trade.OrderRepository,
	checkoutRepo trade.CheckoutRepository,
	deliveryStore trade.DeliverySessionStore,
) *CheckoutService {
	return &CheckoutService{
		cartRepo:      cartRepo,
		orderRepo:     orderRepo,
		checkoutRepo:  checkoutRepo,
		deliveryStore: deliveryStore,
	}
}

// SaveDeliveryInfo stores the buyer's delivery choice for the next checkout
func (s *CheckoutService) SaveDeliveryInfo(ctx context.Context, buyerID uuid.UUID, req SaveDeliveryInfoRequest) (*DeliveryInfoResponse, error) {
	info := trade.DeliveryInfo{
		Method:       trade.DeliveryMethod(req.Method),
		Address:      req.Address,
		Coordinates:  req.Coordinates,
		ContactPhone: req.ContactPhone,
		Notes:        req.Notes,
	}
	if err := info.Validate(); err != nil {
		return nil, err
	}

	if err := s.deliveryStore.Save(ctx, buyerID, info); err != nil {
		return nil, err
	}

	response := ToDeliveryInfoResponse(info)
	return &response, nil
}

// GetDeliveryInfo retrieves the buyer's stored delivery choice
func (s *CheckoutService) GetDeliveryInfo(ctx context.Context, buyerID uuid.UUID) (*DeliveryInfoResponse, error) {
	info, err := s.deliveryStore.Get(ctx, buyerID)
	if err != nil {
		return nil, err
	}
	if info == nil {
		return nil, shared.ErrNotFound
	}
	response := ToDeliveryInfoResponse(*info)
	return &response, nil
}

// PlaceOrder turns the buyer's cart, or the selected part of it, into
// orders. The cart is partitioned by farmer and one pending order is
// created per farmer, all inside a single transaction together with the
// stock decrements and the cart cleanup. If any product lacks stock
// nothing is persisted.
func (s *CheckoutService) PlaceOrder(ctx context.Context, buyerID uuid.UUID, req PlaceOrderRequest) (*PlaceOrderResponse, error) {
	lines, err := s.resolveLines(ctx, buyerID, req.ProductIDs)
	if err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return nil, shared.NewDomainError("EMPTY_CART", "No items selected for checkout")
	}

	delivery, err := s.deliveryStore.Get(ctx, buyerID)
	if err != nil {
		return nil, err
	}
	if delivery == nil {
		return nil, shared.NewDomainError("MISSING_DELIVERY_INFO", "Delivery info must be provided before checkout")
	}

	// Pre-check availability against the joined product data. The
	// transaction re-checks stock with a guarded update, so a
	// concurrent checkout still cannot oversell.
	for _, line := range lines {
		if !line.ProductActive {
			return nil, shared.NewDomainError("PRODUCT_INACTIVE", "Product "+line.ProductName+" is no longer available")
		}
		if line.AvailableStock < line.Quantity {
			return nil, shared.ErrInsufficientStock
		}
	}

	groups := trade.PartitionByFarmer(lines)
	orderNumbers, err := s.orderRepo.GenerateOrderNumbers(ctx, len(groups))
	if err != nil {
		return nil, err
	}

	orders := make([]*trade.Order, 0, len(groups))
	for i, group := range groups {
		order, err := trade.NewOrderFromCart(orderNumbers[i], buyerID, group.FarmerID, group.Lines, *delivery)
		if err != nil {
			return nil, err
		}
		orders = append(orders, order)
	}

	entryIDs := make([]uuid.UUID, len(lines))
	for i, line := range lines {
		entryIDs[i] = line.EntryID
	}

	if err := s.checkoutRepo.PlaceOrders(ctx, buyerID, orders, entryIDs); err != nil {
		var domainErr *shared.DomainError
		if errors.As(err, &domainErr) {
			return nil, err
		}
		return nil, shared.ErrOrderPlacement
	}

	// The stored delivery info is consumed by the checkout. A failed
	// delete is harmless since the entry expires on its own.
	if err := s.deliveryStore.Delete(ctx, buyerID); err != nil {
		logger.FromContext(ctx).Warn("Failed to clear delivery info after checkout",
			zap.String("buyer_id", buyerID.String()),
			zap.Error(err),
		)
	}

	response := PlaceOrderResponse{
		OrderIDs:     make([]uuid.UUID, len(orders)),
		OrderNumbers: make([]string, len(orders)),
	}
	total := valueobject.ZeroUSD()
	for i, order := range orders {
		response.OrderIDs[i] = order.ID
		response.OrderNumbers[i] = order.OrderNumber
		total, _ = total.Add(order.GetTotalMoney())
	}
	response.TotalAmount = total.Amount()

	return &response, nil
}

// resolveLines loads the working set for a checkout: the named products
// or, with an empty selection, the whole cart
func (s *CheckoutService) resolveLines(ctx context.Context, buyerID uuid.UUID, productIDs []uuid.UUID) ([]trade.CartLine, error) {
	if len(productIDs) == 0 {
		return s.cartRepo.FindLinesByBuyer(ctx, buyerID)
	}
	return s.cartRepo.FindLines(ctx, buyerID, productIDs)
}
