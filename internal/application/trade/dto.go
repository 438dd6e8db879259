package trade

import (
	"time"

	"github.com/farmlink/backend/internal/domain/trade"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ==================== Cart DTOs ====================

// AddCartItemRequest represents a request to add a product to the cart
type AddCartItemRequest struct {
	ProductID uuid.UUID `json:"product_id" binding:"required"`
	Quantity  int64     `json:"quantity" binding:"required,min=1"`
}

// UpdateCartItemRequest represents a request to change a cart line quantity
type UpdateCartItemRequest struct {
	Quantity int64 `json:"quantity" binding:"required,min=1"`
}

// ClearCartRequest represents a request to remove cart lines.
// An empty product list clears the whole cart.
type ClearCartRequest struct {
	ProductIDs []uuid.UUID `json:"product_ids"`
}

// CartLineResponse represents a cart line in API responses
type CartLineResponse struct {
	ProductID      uuid.UUID       `json:"product_id"`
	FarmerID       uuid.UUID       `json:"farmer_id"`
	ProductName    string          `json:"product_name"`
	Unit           string          `json:"unit"`
	Quantity       int64           `json:"quantity"`
	UnitPrice      decimal.Decimal `json:"unit_price"`
	Subtotal       decimal.Decimal `json:"subtotal"`
	AvailableStock int64           `json:"available_stock"`
	Orderable      bool            `json:"orderable"`
}

// CartResponse represents a buyer's cart in API responses
type CartResponse struct {
	Lines       []CartLineResponse `json:"lines"`
	ItemCount   int                `json:"item_count"`
	TotalAmount decimal.Decimal    `json:"total_amount"`
}

// ==================== Delivery DTOs ====================

// SaveDeliveryInfoRequest represents a request to store delivery info for checkout
type SaveDeliveryInfoRequest struct {
	Method       string `json:"method" binding:"required,oneof=DELIVERY PICKUP"`
	Address      string `json:"address" binding:"max=500"`
	Coordinates  string `json:"coordinates" binding:"max=100"`
	ContactPhone string `json:"contact_phone" binding:"required,min=1,max=50"`
	Notes        string `json:"notes" binding:"max=1000"`
}

// DeliveryInfoResponse represents stored delivery info in API responses
type DeliveryInfoResponse struct {
	Method       string `json:"method"`
	Address      string `json:"address"`
	Coordinates  string `json:"coordinates,omitempty"`
	ContactPhone string `json:"contact_phone"`
	Notes        string `json:"notes,omitempty"`
}

// ==================== Checkout DTOs ====================

// PlaceOrderRequest represents a checkout request.
// An empty product list checks out the whole cart.
type PlaceOrderRequest struct {
	ProductIDs []uuid.UUID `json:"product_ids"`
}

// PlaceOrderResponse represents the result of a checkout.
// A cart spanning several farmers produces one order per farmer.
type PlaceOrderResponse struct {
	OrderIDs     []uuid.UUID     `json:"order_ids"`
	OrderNumbers []string        `json:"order_numbers"`
	TotalAmount  decimal.Decimal `json:"total_amount"`
}

// ==================== Order DTOs ====================

// UpdateOrderStatusRequest represents a request to change an order's status
type UpdateOrderStatusRequest struct {
	Status trade.OrderStatus `json:"status" binding:"required"`
}

// OrderListFilter represents filter options for order lists
type OrderListFilter struct {
	Search    string             `form:"search"`
	Status    *trade.OrderStatus `form:"status"`
	Statuses  []string           `form:"statuses"`
	StartDate *time.Time         `form:"start_date"`
	EndDate   *time.Time         `form:"end_date"`
	Page      int                `form:"page" binding:"omitempty,min=1"`
	PageSize  int                `form:"page_size" binding:"omitempty,min=1,max=100"`
	OrderBy   string             `form:"order_by"`
	OrderDir  string             `form:"order_dir" binding:"omitempty,oneof=asc desc"`
}

// OrderResponse represents an order in API responses
type OrderResponse struct {
	ID              uuid.UUID           `json:"id"`
	OrderNumber     string              `json:"order_number"`
	BuyerID         uuid.UUID           `json:"buyer_id"`
	FarmerID        uuid.UUID           `json:"farmer_id"`
	Status          string              `json:"status"`
	DeliveryMethod  string              `json:"delivery_method"`
	DeliveryAddress string              `json:"delivery_address,omitempty"`
	Coordinates     string              `json:"coordinates,omitempty"`
	ContactPhone    string              `json:"contact_phone"`
	Notes           string              `json:"notes,omitempty"`
	Items           []OrderItemResponse `json:"items"`
	ItemCount       int                 `json:"item_count"`
	TotalAmount     decimal.Decimal     `json:"total_amount"`
	CreatedAt       time.Time           `json:"created_at"`
	UpdatedAt       time.Time           `json:"updated_at"`
}

// OrderListItemResponse represents an order in list responses (less detail)
type OrderListItemResponse struct {
	ID             uuid.UUID       `json:"id"`
	OrderNumber    string          `json:"order_number"`
	BuyerID        uuid.UUID       `json:"buyer_id"`
	FarmerID       uuid.UUID       `json:"farmer_id"`
	Status         string          `json:"status"`
	DeliveryMethod string          `json:"delivery_method"`
	ItemCount      int             `json:"item_count"`
	TotalAmount    decimal.Decimal `json:"total_amount"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// OrderItemResponse represents an order item in API responses
type OrderItemResponse struct {
	ID          uuid.UUID       `json:"id"`
	ProductID   uuid.UUID       `json:"product_id"`
	ProductName string          `json:"product_name"`
	Unit        string          `json:"unit"`
	Quantity    int64           `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Subtotal    decimal.Decimal `json:"subtotal"`
}

// ==================== Mappers ====================

// ToCartLineResponse converts a domain cart line to a response DTO
func ToCartLineResponse(line trade.CartLine) CartLineResponse {
	return CartLineResponse{
		ProductID:      line.ProductID,
		FarmerID:       line.FarmerID,
		ProductName:    line.ProductName,
		Unit:           line.Unit,
		Quantity:       line.Quantity,
		UnitPrice:      line.UnitPrice,
		Subtotal:       line.Subtotal().Amount(),
		AvailableStock: line.AvailableStock,
		Orderable:      line.Orderable(),
	}
}

// ToCartResponse converts domain cart lines to a cart response DTO
func ToCartResponse(lines []trade.CartLine) CartResponse {
	lineResponses := make([]CartLineResponse, len(lines))
	for i, line := range lines {
		lineResponses[i] = ToCartLineResponse(line)
	}
	return CartResponse{
		Lines:       lineResponses,
		ItemCount:   len(lines),
		TotalAmount: trade.CartTotal(lines).Amount(),
	}
}

// ToDeliveryInfoResponse converts domain delivery info to a response DTO
func ToDeliveryInfoResponse(info trade.DeliveryInfo) DeliveryInfoResponse {
	return DeliveryInfoResponse{
		Method:       info.Method.String(),
		Address:      info.Address,
		Coordinates:  info.Coordinates,
		ContactPhone: info.ContactPhone,
		Notes:        info.Notes,
	}
}

// ToOrderResponse converts a domain order to a response DTO
func ToOrderResponse(order *trade.Order) OrderResponse {
	items := make([]OrderItemResponse, len(order.Items))
	for i, item := range order.Items {
		items[i] = OrderItemResponse{
			ID:          item.ID,
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			Unit:        item.Unit,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
			Subtotal:    item.Subtotal,
		}
	}
	return OrderResponse{
		ID:              order.ID,
		OrderNumber:     order.OrderNumber,
		BuyerID:         order.BuyerID,
		FarmerID:        order.FarmerID,
		Status:          order.Status.String(),
		DeliveryMethod:  order.DeliveryMethod.String(),
		DeliveryAddress: order.DeliveryAddress,
		Coordinates:     order.Coordinates,
		ContactPhone:    order.ContactPhone,
		Notes:           order.Notes,
		Items:           items,
		ItemCount:       len(items),
		TotalAmount:     order.TotalAmount,
		CreatedAt:       order.CreatedAt,
		UpdatedAt:       order.UpdatedAt,
	}
}

// ToOrderListItemResponse converts a domain order to a list item DTO
func ToOrderListItemResponse(order *trade.Order) OrderListItemResponse {
	return OrderListItemResponse{
		ID:             order.ID,
		OrderNumber:    order.OrderNumber,
		BuyerID:        order.BuyerID,
		FarmerID:       order.FarmerID,
		Status:         order.Status.String(),
		DeliveryMethod: order.DeliveryMethod.String(),
		ItemCount:      len(order.Items),
		TotalAmount:    order.TotalAmount,
		CreatedAt:      order.CreatedAt,
		UpdatedAt:      order.UpdatedAt,
	}
}

// ToOrderListItemResponses converts domain orders to list item DTOs
func ToOrderListItemResponses(orders []trade.Order) []OrderListItemResponse {
	responses := make([]OrderListItemResponse, len(orders))
	for i := range orders {
		responses[i] = ToOrderListItemResponse(&orders[i])
	}
	return responses
}
