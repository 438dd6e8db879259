package router

import (
	"net/http"

	"github.com/farmlink/backend/internal/infrastructure/auth"
	"github.com/farmlink/backend/internal/interfaces/http/handler"
	"github.com/farmlink/backend/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
)

// RouteRegistrar defines the interface for registering routes
type RouteRegistrar interface {
	RegisterRoutes(rg *gin.RouterGroup)
}

// Router manages HTTP route registration
type Router struct {
	engine     *gin.Engine
	apiVersion string
	registrars []RouteRegistrar
}

// RouterOption is a functional option for Router configuration
type RouterOption func(*Router)

// WithAPIVersion sets the API version prefix (e.g., "v1", "v2")
func WithAPIVersion(version string) RouterOption {
	return func(r *Router) {
		r.apiVersion = version
	}
}

// NewRouter creates a new Router instance
func NewRouter(engine *gin.Engine, opts ...RouterOption) *Router {
	r := &Router{
		engine:     engine,
		apiVersion: "v1",
		registrars: make([]RouteRegistrar, 0),
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Register adds a RouteRegistrar to be registered later
func (r *Router) Register(registrar RouteRegistrar) *Router {
	r.registrars = append(r.registrars, registrar)
	return r
}

// Setup registers the health endpoint and all route registrars under
// the versioned API group
func (r *Router) Setup() {
	r.engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.engine.Group("/api/" + r.apiVersion)
	for _, registrar := range r.registrars {
		registrar.RegisterRoutes(api)
	}
}

// MarketplaceRoutes registers the buyer-facing cart, checkout and order
// endpoints plus the farmer order view
type MarketplaceRoutes struct {
	Cart  *handler.CartHandler
	Order *handler.OrderHandler
}

// RegisterRoutes implements RouteRegistrar
func (m *MarketplaceRoutes) RegisterRoutes(rg *gin.RouterGroup) {
	marketplace := rg.Group("/marketplace")

	cart := marketplace.Group("/cart")
	{
		cart.GET("", m.Cart.Get)
		cart.DELETE("", m.Cart.Clear)
		cart.POST("/items", m.Cart.AddItem)
		cart.PUT("/items/:productId", m.Cart.UpdateItem)
		cart.DELETE("/items/:productId", m.Cart.RemoveItem)
	}

	checkout := marketplace.Group("/checkout")
	{
		checkout.POST("", m.Order.PlaceOrder)
		checkout.GET("/delivery", m.Order.GetDeliveryInfo)
		checkout.PUT("/delivery", m.Order.SaveDeliveryInfo)
	}

	orders := marketplace.Group("/orders")
	{
		orders.GET("", m.Order.ListMine)
		orders.GET("/:id", m.Order.GetByID)
		orders.PUT("/:id/status", m.Order.UpdateStatus)
	}

	farmer := marketplace.Group("/farmer", middleware.RequireRole(auth.RoleFarmer))
	{
		farmer.GET("/orders", m.Order.ListForFarmer)
	}
}

// CatalogRoutes registers the product catalog endpoints. Browsing is
// public; mutating a listing requires the farmer role.
type CatalogRoutes struct {
	Product *handler.ProductHandler
}

// RegisterRoutes implements RouteRegistrar
func (cr *CatalogRoutes) RegisterRoutes(rg *gin.RouterGroup) {
	products := rg.Group("/catalog/products")
	{
		products.GET("", cr.Product.List)
		products.GET("/:id", cr.Product.GetByID)
		products.POST("", cr.Product.Create)
		products.PUT("/:id", cr.Product.Update)
		products.POST("/:id/stock", cr.Product.AdjustStock)
		products.POST("/:id/activate", cr.Product.Activate)
		products.POST("/:id/deactivate", cr.Product.Deactivate)
	}

	farmer := rg.Group("/catalog/farmer", middleware.RequireRole(auth.RoleFarmer))
	{
		farmer.GET("/products", cr.Product.ListMine)
	}
}
