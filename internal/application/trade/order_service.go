package trade

import (
	"context"

	"github.com/farmlink/backend/internal/domain/shared"
	"github.com/farmlink/backend/internal/domain/trade"
	"github.com/google/uuid"
)

// OrderService handles order queries and status changes
type OrderService struct {
	orderRepo trade.OrderRepository
}

// NewOrderService creates a new OrderService
func NewOrderService(orderRepo trade.OrderRepository) *OrderService {
	return &OrderService{orderRepo: orderRepo}
}

// GetByID retrieves an order. Only the buyer who placed it and the
// farmer it is addressed to may see it.
func (s *OrderService) GetByID(ctx context.Context, requesterID, orderID uuid.UUID) (*OrderResponse, error) {
	order, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order.BuyerID != requesterID && order.FarmerID != requesterID {
		return nil, shared.ErrForbidden
	}
	response := ToOrderResponse(order)
	return &response, nil
}

// ListByBuyer retrieves orders placed by a buyer with filtering and pagination
func (s *OrderService) ListByBuyer(ctx context.Context, buyerID uuid.UUID, filter OrderListFilter) (*shared.Paginated[OrderListItemResponse], error) {
	domainFilter := toDomainFilter(filter)

	orders, err := s.orderRepo.FindByBuyer(ctx, buyerID, domainFilter)
	if err != nil {
		return nil, err
	}

	total, err := s.orderRepo.CountByBuyer(ctx, buyerID, domainFilter)
	if err != nil {
		return nil, err
	}

	page := shared.NewPaginated(ToOrderListItemResponses(orders), total, domainFilter.Page, domainFilter.PageSize)
	return &page, nil
}

// ListByFarmer retrieves orders addressed to a farmer with filtering and pagination
func (s *OrderService) ListByFarmer(ctx context.Context, farmerID uuid.UUID, filter OrderListFilter) (*shared.Paginated[OrderListItemResponse], error) {
	domainFilter := toDomainFilter(filter)

	orders, err := s.orderRepo.FindByFarmer(ctx, farmerID, domainFilter)
	if err != nil {
		return nil, err
	}

	total, err := s.orderRepo.CountByFarmer(ctx, farmerID, domainFilter)
	if err != nil {
		return nil, err
	}

	page := shared.NewPaginated(ToOrderListItemResponses(orders), total, domainFilter.Page, domainFilter.PageSize)
	return &page, nil
}

// UpdateStatus moves an order through its lifecycle. The farmer may
// complete or cancel a pending order; the buyer may only cancel it.
func (s *OrderService) UpdateStatus(ctx context.Context, requesterID, orderID uuid.UUID, req UpdateOrderStatusRequest) (*OrderResponse, error) {
	order, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	switch requesterID {
	case order.FarmerID:
		// any allowed transition
	case order.BuyerID:
		if req.Status != trade.OrderStatusCancelled {
			return nil, shared.ErrForbidden
		}
	default:
		return nil, shared.ErrForbidden
	}

	if err := order.UpdateStatus(req.Status); err != nil {
		return nil, err
	}

	if err := s.orderRepo.Save(ctx, order); err != nil {
		return nil, err
	}

	response := ToOrderResponse(order)
	return &response, nil
}

// toDomainFilter maps the API filter onto the shared repository filter
func toDomainFilter(filter OrderListFilter) shared.Filter {
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

	if filter.Status != nil {
		domainFilter.Filters["status"] = string(*filter.Status)
	}
	if len(filter.Statuses) > 0 {
		domainFilter.Filters["statuses"] = filter.Statuses
	}
	if filter.StartDate != nil {
		domainFilter.Filters["start_date"] = *filter.StartDate
	}
	if filter.EndDate != nil {
		domainFilter.Filters["end_date"] = *filter.EndDate
	}

	return domainFilter
}
