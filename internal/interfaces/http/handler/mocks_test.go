package handler

import (
	"context"

	"github.com/farmlink/backend/internal/domain/catalog"
	"github.com/farmlink/backend/internal/domain/shared"
	"github.com/farmlink/backend/internal/domain/shared/valueobject"
	"github.com/farmlink/backend/internal/domain/trade"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// MockCartRepository implements trade.CartRepository for testing
type MockCartRepository struct {
	mock.Mock
}

func (m *MockCartRepository) FindByBuyer(ctx context.Context, buyerID uuid.UUID) ([]trade.CartEntry, error) {
	args := m.Called(ctx, buyerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]trade.CartEntry), args.Error(1)
}

func (m *MockCartRepository) FindEntry(ctx context.Context, buyerID, productID uuid.UUID) (*trade.CartEntry, error) {
	args := m.Called(ctx, buyerID, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*trade.CartEntry), args.Error(1)
}

func (m *MockCartRepository) FindLinesByBuyer(ctx context.Context, buyerID uuid.UUID) ([]trade.CartLine, error) {
	args := m.Called(ctx, buyerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]trade.CartLine), args.Error(1)
}

func (m *MockCartRepository) FindLines(ctx context.Context, buyerID uuid.UUID, productIDs []uuid.UUID) ([]trade.CartLine, error) {
	args := m.Called(ctx, buyerID, productIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]trade.CartLine), args.Error(1)
}

func (m *MockCartRepository) Save(ctx context.Context, entry *trade.CartEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockCartRepository) Delete(ctx context.Context, buyerID, productID uuid.UUID) error {
	args := m.Called(ctx, buyerID, productID)
	return args.Error(0)
}

func (m *MockCartRepository) DeleteAll(ctx context.Context, buyerID uuid.UUID) error {
	args := m.Called(ctx, buyerID)
	return args.Error(0)
}

// MockProductRepository implements catalog.ProductRepository for testing
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Product), args.Error(1)
}

func (m *MockProductRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]catalog.Product, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]catalog.Product), args.Error(1)
}

func (m *MockProductRepository) FindByFarmer(ctx context.Context, farmerID uuid.UUID, filter shared.Filter) ([]catalog.Product, error) {
	args := m.Called(ctx, farmerID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]catalog.Product), args.Error(1)
}

func (m *MockProductRepository) FindAll(ctx context.Context, filter shared.Filter) ([]catalog.Product, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]catalog.Product), args.Error(1)
}

func (m *MockProductRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockProductRepository) Save(ctx context.Context, product *catalog.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *MockProductRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockOrderRepository implements trade.OrderRepository for testing
type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) FindByID(ctx context.Context, id uuid.UUID) (*trade.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*trade.Order), args.Error(1)
}

func (m *MockOrderRepository) FindByBuyer(ctx context.Context, buyerID uuid.UUID, filter shared.Filter) ([]trade.Order, error) {
	args := m.Called(ctx, buyerID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]trade.Order), args.Error(1)
}

func (m *MockOrderRepository) CountByBuyer(ctx context.Context, buyerID uuid.UUID, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, buyerID, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockOrderRepository) FindByFarmer(ctx context.Context, farmerID uuid.UUID, filter shared.Filter) ([]trade.Order, error) {
	args := m.Called(ctx, farmerID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]trade.Order), args.Error(1)
}

func (m *MockOrderRepository) CountByFarmer(ctx context.Context, farmerID uuid.UUID, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, farmerID, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockOrderRepository) Save(ctx context.Context, order *trade.Order) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}

func (m *MockOrderRepository) GenerateOrderNumbers(ctx context.Context, count int) ([]string, error) {
	args := m.Called(ctx, count)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

// MockCheckoutRepository implements trade.CheckoutRepository for testing
type MockCheckoutRepository struct {
	mock.Mock
}

func (m *MockCheckoutRepository) PlaceOrders(ctx context.Context, buyerID uuid.UUID, orders []*trade.Order, entryIDs []uuid.UUID) error {
	args := m.Called(ctx, buyerID, orders, entryIDs)
	return args.Error(0)
}

// MockDeliveryStore implements trade.DeliverySessionStore for testing
type MockDeliveryStore struct {
	mock.Mock
}

func (m *MockDeliveryStore) Save(ctx context.Context, buyerID uuid.UUID, info trade.DeliveryInfo) error {
	args := m.Called(ctx, buyerID, info)
	return args.Error(0)
}

func (m *MockDeliveryStore) Get(ctx context.Context, buyerID uuid.UUID) (*trade.DeliveryInfo, error) {
	args := m.Called(ctx, buyerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*trade.DeliveryInfo), args.Error(1)
}

func (m *MockDeliveryStore) Delete(ctx context.Context, buyerID uuid.UUID) error {
	args := m.Called(ctx, buyerID)
	return args.Error(0)
}

func newTestProduct() *catalog.Product {
	price := valueobject.NewMoneyUSD(decimal.NewFromInt(30))
	product, _ := catalog.NewProduct(uuid.New(), "Tomatoes", "TOM-001", "kg", price, 100)
	return product
}
