package trade

import (
	"github.com/farmlink/backend/internal/domain/shared"
	"github.com/farmlink/backend/internal/domain/shared/valueobject"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderStatus represents the status of an order
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "PENDING"
	OrderStatusCompleted OrderStatus = "COMPLETED"
	OrderStatusCancelled OrderStatus = "CANCELLED"
)

// IsValid checks if the status is a valid OrderStatus
func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderStatusPending, OrderStatusCompleted, OrderStatusCancelled:
		return true
	}
	return false
}

// String returns the string representation of OrderStatus
func (s OrderStatus) String() string {
	return string(s)
}

// IsFinal returns true if no further transitions are allowed
func (s OrderStatus) IsFinal() bool {
	return s == OrderStatusCompleted || s == OrderStatusCancelled
}

// CanTransitionTo checks if transition to target status is allowed
func (s OrderStatus) CanTransitionTo(target OrderStatus) bool {
	switch s {
	case OrderStatusPending:
		return target == OrderStatusCompleted || target == OrderStatusCancelled
	default:
		return false
	}
}

// DeliveryMethod is how the buyer receives the goods
type DeliveryMethod string

const (
	DeliveryMethodDelivery DeliveryMethod = "DELIVERY"
	DeliveryMethodPickup   DeliveryMethod = "PICKUP"
)

// IsValid checks if the method is a valid DeliveryMethod
func (m DeliveryMethod) IsValid() bool {
	return m == DeliveryMethodDelivery || m == DeliveryMethodPickup
}

// String returns the string representation of DeliveryMethod
func (m DeliveryMethod) String() string {
	return string(m)
}

// Order is a purchase placed by a buyer against a single farmer.
// A checkout produces one order per farmer represented in the cart.
type Order struct {
	shared.BaseEntity
	OrderNumber     string          `gorm:"size:50;not null;uniqueIndex"`
	BuyerID         uuid.UUID       `gorm:"type:uuid;not null;index"`
	FarmerID        uuid.UUID       `gorm:"type:uuid;not null;index"`
	Status          OrderStatus     `gorm:"size:20;not null;default:'PENDING'"`
	DeliveryMethod  DeliveryMethod  `gorm:"size:20;not null"`
	DeliveryAddress string          `gorm:"size:500"`
	Coordinates     string          `gorm:"size:100"`
	ContactPhone    string          `gorm:"size:50;not null"`
	Notes           string          `gorm:"size:1000"`
	TotalAmount     decimal.Decimal `gorm:"type:decimal(18,2);not null"`
	Items           []OrderItem     `gorm:"foreignKey:OrderID"`
}

// TableName returns the table name for GORM
func (Order) TableName() string {
	return "orders"
}

// OrderItem is a product line inside an order.
// Name, unit and price are copied from the cart so the order stays
// readable after the listing changes or disappears.
type OrderItem struct {
	shared.BaseEntity
	OrderID     uuid.UUID       `gorm:"type:uuid;not null;index"`
	ProductID   uuid.UUID       `gorm:"type:uuid;not null"`
	ProductName string          `gorm:"size:200;not null"`
	Unit        string          `gorm:"size:20;not null"`
	Quantity    int64           `gorm:"not null"`
	UnitPrice   decimal.Decimal `gorm:"type:decimal(18,2);not null"`
	Subtotal    decimal.Decimal `gorm:"type:decimal(18,2);not null"`
}

// TableName returns the table name for GORM
func (OrderItem) TableName() string {
	return "order_items"
}

// GetSubtotalMoney returns the item subtotal as a Money value object
func (i *OrderItem) GetSubtotalMoney() valueobject.Money {
	return valueobject.NewMoneyUSD(i.Subtotal)
}

// NewOrderFromCart builds a pending order for one farmer from that farmer's
// cart lines. Prices come from the cart snapshots, not the live listings.
func NewOrderFromCart(orderNumber string, buyerID, farmerID uuid.UUID, lines []CartLine, delivery DeliveryInfo) (*Order, error) {
	if orderNumber == "" {
		return nil, shared.NewDomainError("INVALID_ORDER_NUMBER", "Order number cannot be empty")
	}
	if buyerID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_BUYER", "Buyer ID cannot be empty")
	}
	if farmerID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_FARMER", "Farmer ID cannot be empty")
	}
	if len(lines) == 0 {
		return nil, shared.NewDomainError("EMPTY_ORDER", "Order must contain at least one item")
	}
	if err := delivery.Validate(); err != nil {
		return nil, err
	}

	order := &Order{
		BaseEntity:      shared.NewBaseEntity(),
		OrderNumber:     orderNumber,
		BuyerID:         buyerID,
		FarmerID:        farmerID,
		Status:          OrderStatusPending,
		DeliveryMethod:  delivery.Method,
		DeliveryAddress: delivery.Address,
		Coordinates:     delivery.Coordinates,
		ContactPhone:    delivery.ContactPhone,
		Notes:           delivery.Notes,
		TotalAmount:     decimal.Zero,
		Items:           make([]OrderItem, 0, len(lines)),
	}

	total := valueobject.ZeroUSD()
	for _, line := range lines {
		if line.FarmerID != farmerID {
			return nil, shared.NewDomainError("MIXED_FARMERS", "Order lines must belong to a single farmer")
		}
		if line.Quantity <= 0 {
			return nil, shared.NewDomainError("INVALID_QUANTITY", "Quantity must be positive")
		}
		subtotal := line.Subtotal()
		order.Items = append(order.Items, OrderItem{
			BaseEntity:  shared.NewBaseEntity(),
			OrderID:     order.ID,
			ProductID:   line.ProductID,
			ProductName: line.ProductName,
			Unit:        line.Unit,
			Quantity:    line.Quantity,
			UnitPrice:   line.UnitPrice,
			Subtotal:    subtotal.Amount(),
		})
		total, _ = total.Add(subtotal)
	}
	order.TotalAmount = total.Amount()

	return order, nil
}

// UpdateStatus moves the order to a new status if the transition is allowed
func (o *Order) UpdateStatus(target OrderStatus) error {
	if !target.IsValid() {
		return shared.NewDomainError("INVALID_STATUS", "Unknown order status: "+target.String())
	}
	if !o.Status.CanTransitionTo(target) {
		return shared.NewDomainError("INVALID_STATUS_TRANSITION",
			"Cannot transition from "+o.Status.String()+" to "+target.String())
	}
	o.Status = target
	o.Touch()
	return nil
}

// Complete marks the order as fulfilled
func (o *Order) Complete() error {
	return o.UpdateStatus(OrderStatusCompleted)
}

// Cancel marks the order as cancelled
func (o *Order) Cancel() error {
	return o.UpdateStatus(OrderStatusCancelled)
}

// GetTotalMoney returns the order total as a Money value object
func (o *Order) GetTotalMoney() valueobject.Money {
	return valueobject.NewMoneyUSD(o.TotalAmount)
}
