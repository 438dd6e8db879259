package trade

import (
	"context"
	"testing"

	"github.com/farmlink/backend/internal/domain/catalog"
	"github.com/farmlink/backend/internal/domain/shared"
	"github.com/farmlink/backend/internal/domain/shared/valueobject"
	"github.com/farmlink/backend/internal/domain/trade"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

var (
	testBuyerID  = uuid.New()
	testFarmerID = uuid.New()
)

func newMoneyUSD(amount string) valueobject.Money {
	amt, _ := decimal.NewFromString(amount)
	return valueobject.NewMoneyUSD(amt)
}

func createTestProduct(stock int64) *catalog.Product {
	product, _ := catalog.NewProduct(testFarmerID, "Tomatoes", "TOM-001", "kg", newMoneyUSD("30"), stock)
	return product
}

func createTestCartLine(productID, farmerID uuid.UUID, name string, quantity int64, price string, stock int64) trade.CartLine {
	unitPrice, _ := decimal.NewFromString(price)
	return trade.CartLine{
		EntryID:        uuid.New(),
		ProductID:      productID,
		FarmerID:       farmerID,
		ProductName:    name,
		Unit:           "kg",
		Quantity:       quantity,
		UnitPrice:      unitPrice,
		AvailableStock: stock,
		ProductActive:  true,
	}
}

func TestCartService_GetCart(t *testing.T) {
	t.Run("returns lines with totals", func(t *testing.T) {
		cartRepo := new(MockCartRepository)
		productRepo := new(MockProductRepository)
		service := NewCartService(cartRepo, productRepo)

		lines := []trade.CartLine{
			createTestCartLine(uuid.New(), testFarmerID, "Tomatoes", 2, "30", 10),
			createTestCartLine(uuid.New(), testFarmerID, "Kale", 1, "50", 5),
		}
		cartRepo.On("FindLinesByBuyer", mock.Anything, testBuyerID).Return(lines, nil)

		cart, err := service.GetCart(context.Background(), testBuyerID)

		assert.NoError(t, err)
		assert.Equal(t, 2, cart.ItemCount)
		assert.True(t, decimal.NewFromInt(110).Equal(cart.TotalAmount))
		assert.True(t, decimal.NewFromInt(60).Equal(cart.Lines[0].Subtotal))
	})

	t.Run("empty cart", func(t *testing.T) {
		cartRepo := new(MockCartRepository)
		productRepo := new(MockProductRepository)
		service := NewCartService(cartRepo, productRepo)

		cartRepo.On("FindLinesByBuyer", mock.Anything, testBuyerID).Return([]trade.CartLine{}, nil)

		cart, err := service.GetCart(context.Background(), testBuyerID)

		assert.NoError(t, err)
		assert.Equal(t, 0, cart.ItemCount)
		assert.True(t, cart.TotalAmount.IsZero())
	})
}

func TestCartService_AddItem(t *testing.T) {
	t.Run("new product creates entry with price snapshot", func(t *testing.T) {
		cartRepo := new(MockCartRepository)
		productRepo := new(MockProductRepository)
		service := NewCartService(cartRepo, productRepo)

		product := createTestProduct(10)
		productRepo.On("FindByID", mock.Anything, product.ID).Return(product, nil)
		cartRepo.On("FindEntry", mock.Anything, testBuyerID, product.ID).Return(nil, shared.ErrNotFound)
		cartRepo.On("Save", mock.Anything, mock.MatchedBy(func(entry *trade.CartEntry) bool {
			return entry.ProductID == product.ID &&
				entry.Quantity == 3 &&
				entry.UnitPrice.Equal(decimal.NewFromInt(30))
		})).Return(nil)
		cartRepo.On("FindLinesByBuyer", mock.Anything, testBuyerID).Return([]trade.CartLine{
			createTestCartLine(product.ID, testFarmerID, "Tomatoes", 3, "30", 10),
		}, nil)

		cart, err := service.AddItem(context.Background(), testBuyerID, AddCartItemRequest{
			ProductID: product.ID,
			Quantity:  3,
		})

		assert.NoError(t, err)
		assert.Equal(t, 1, cart.ItemCount)
		cartRepo.AssertExpectations(t)
	})

	t.Run("existing product increments quantity", func(t *testing.T) {
		cartRepo := new(MockCartRepository)
		productRepo := new(MockProductRepository)
		service := NewCartService(cartRepo, productRepo)

		product := createTestProduct(10)
		entry, _ := trade.NewCartEntry(testBuyerID, product, 2)

		productRepo.On("FindByID", mock.Anything, product.ID).Return(product, nil)
		cartRepo.On("FindEntry", mock.Anything, testBuyerID, product.ID).Return(entry, nil)
		cartRepo.On("Save", mock.Anything, mock.MatchedBy(func(e *trade.CartEntry) bool {
			return e.Quantity == 5
		})).Return(nil)
		cartRepo.On("FindLinesByBuyer", mock.Anything, testBuyerID).Return([]trade.CartLine{
			createTestCartLine(product.ID, testFarmerID, "Tomatoes", 5, "30", 10),
		}, nil)

		cart, err := service.AddItem(context.Background(), testBuyerID, AddCartItemRequest{
			ProductID: product.ID,
			Quantity:  3,
		})

		assert.NoError(t, err)
		assert.Equal(t, int64(5), cart.Lines[0].Quantity)
	})

	t.Run("unknown product", func(t *testing.T) {
		cartRepo := new(MockCartRepository)
		productRepo := new(MockProductRepository)
		service := NewCartService(cartRepo, productRepo)

		productID := uuid.New()
		productRepo.On("FindByID", mock.Anything, productID).Return(nil, shared.ErrNotFound)

		_, err := service.AddItem(context.Background(), testBuyerID, AddCartItemRequest{
			ProductID: productID,
			Quantity:  1,
		})

		assert.ErrorIs(t, err, shared.ErrNotFound)
		cartRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("inactive product", func(t *testing.T) {
		cartRepo := new(MockCartRepository)
		productRepo := new(MockProductRepository)
		service := NewCartService(cartRepo, productRepo)

		product := createTestProduct(10)
		product.Deactivate()
		productRepo.On("FindByID", mock.Anything, product.ID).Return(product, nil)

		_, err := service.AddItem(context.Background(), testBuyerID, AddCartItemRequest{
			ProductID: product.ID,
			Quantity:  1,
		})

		var domainErr *shared.DomainError
		assert.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "PRODUCT_INACTIVE", domainErr.Code)
	})
}

func TestCartService_UpdateQuantity(t *testing.T) {
	t.Run("replaces quantity", func(t *testing.T) {
		cartRepo := new(MockCartRepository)
		productRepo := new(MockProductRepository)
		service := NewCartService(cartRepo, productRepo)

		product := createTestProduct(10)
		entry, _ := trade.NewCartEntry(testBuyerID, product, 2)

		cartRepo.On("FindEntry", mock.Anything, testBuyerID, product.ID).Return(entry, nil)
		cartRepo.On("Save", mock.Anything, mock.MatchedBy(func(e *trade.CartEntry) bool {
			return e.Quantity == 7
		})).Return(nil)
		cartRepo.On("FindLinesByBuyer", mock.Anything, testBuyerID).Return([]trade.CartLine{
			createTestCartLine(product.ID, testFarmerID, "Tomatoes", 7, "30", 10),
		}, nil)

		_, err := service.UpdateQuantity(context.Background(), testBuyerID, product.ID, UpdateCartItemRequest{Quantity: 7})

		assert.NoError(t, err)
		cartRepo.AssertExpectations(t)
	})

	t.Run("missing entry", func(t *testing.T) {
		cartRepo := new(MockCartRepository)
		productRepo := new(MockProductRepository)
		service := NewCartService(cartRepo, productRepo)

		productID := uuid.New()
		cartRepo.On("FindEntry", mock.Anything, testBuyerID, productID).Return(nil, shared.ErrNotFound)

		_, err := service.UpdateQuantity(context.Background(), testBuyerID, productID, UpdateCartItemRequest{Quantity: 2})

		assert.ErrorIs(t, err, shared.ErrNotFound)
	})

	t.Run("invalid quantity", func(t *testing.T) {
		cartRepo := new(MockCartRepository)
		productRepo := new(MockProductRepository)
		service := NewCartService(cartRepo, productRepo)

		product := createTestProduct(10)
		entry, _ := trade.NewCartEntry(testBuyerID, product, 2)
		cartRepo.On("FindEntry", mock.Anything, testBuyerID, product.ID).Return(entry, nil)

		_, err := service.UpdateQuantity(context.Background(), testBuyerID, product.ID, UpdateCartItemRequest{Quantity: 0})

		var domainErr *shared.DomainError
		assert.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "INVALID_QUANTITY", domainErr.Code)
		cartRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})
}

func TestCartService_RemoveItem(t *testing.T) {
	t.Run("removes entry", func(t *testing.T) {
		cartRepo := new(MockCartRepository)
		productRepo := new(MockProductRepository)
		service := NewCartService(cartRepo, productRepo)

		productID := uuid.New()
		cartRepo.On("Delete", mock.Anything, testBuyerID, productID).Return(nil)
		cartRepo.On("FindLinesByBuyer", mock.Anything, testBuyerID).Return([]trade.CartLine{}, nil)

		cart, err := service.RemoveItem(context.Background(), testBuyerID, productID)

		assert.NoError(t, err)
		assert.Equal(t, 0, cart.ItemCount)
	})

	t.Run("idempotent for missing entry", func(t *testing.T) {
		cartRepo := new(MockCartRepository)
		productRepo := new(MockProductRepository)
		service := NewCartService(cartRepo, productRepo)

		productID := uuid.New()
		cartRepo.On("Delete", mock.Anything, testBuyerID, productID).Return(shared.ErrNotFound)
		cartRepo.On("FindLinesByBuyer", mock.Anything, testBuyerID).Return([]trade.CartLine{}, nil)

		_, err := service.RemoveItem(context.Background(), testBuyerID, productID)

		assert.NoError(t, err)
	})
}

func TestCartService_Clear(t *testing.T) {
	t.Run("clears whole cart", func(t *testing.T) {
		cartRepo := new(MockCartRepository)
		productRepo := new(MockProductRepository)
		service := NewCartService(cartRepo, productRepo)

		cartRepo.On("DeleteAll", mock.Anything, testBuyerID).Return(nil)

		err := service.Clear(context.Background(), testBuyerID, nil)

		assert.NoError(t, err)
		cartRepo.AssertExpectations(t)
	})

	t.Run("clears a subset", func(t *testing.T) {
		cartRepo := new(MockCartRepository)
		productRepo := new(MockProductRepository)
		service := NewCartService(cartRepo, productRepo)

		first := uuid.New()
		second := uuid.New()
		cartRepo.On("Delete", mock.Anything, testBuyerID, first).Return(nil)
		cartRepo.On("Delete", mock.Anything, testBuyerID, second).Return(shared.ErrNotFound)

		err := service.Clear(context.Background(), testBuyerID, []uuid.UUID{first, second})

		assert.NoError(t, err)
		cartRepo.AssertNotCalled(t, "DeleteAll", mock.Anything, mock.Anything)
	})
}
