package httpserver

import (
	"context"
	"log"
	"net/http"

	"shophub/internal/domain"
	ordersvc "shophub/internal/service/order"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
)

// CatalogService is the read-only product surface the router needs.
type CatalogService interface {
	List(ctx context.Context) ([]domain.Product, error)
	Get(ctx context.Context, id string) (*domain.Product, error)
}

// OrderService accepts order submissions and lists stored orders.
type OrderService interface {
	Submit(ctx context.Context, in ordersvc.SubmitInput) (*domain.Order, error)
	List(ctx context.Context) ([]domain.Order, error)
}

// Deps carries the services the routes are built on.
type Deps struct {
	CatalogSvc CatalogService
	OrderSvc   OrderService
}

// buildRouter wires routes for the API.
func buildRouter(logger *log.Logger, db *pgxpool.Pool, deps Deps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.LoggerWithWriter(logger.Writer()), gin.Recovery())
	router.Use(cors.Default())

	router.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "ShopHub backend API is running at /api/products")
	})
	router.GET("/healthz", healthHandler)
	router.GET("/readyz", readyHandler(db))

	api := router.Group("/api")
	{
		api.GET("/products", listProductsHandler(deps.CatalogSvc))
		api.GET("/products/:id", getProductHandler(deps.CatalogSvc))
		api.POST("/orders", createOrderHandler(deps.OrderSvc))
		api.GET("/orders", listOrdersHandler(deps.OrderSvc))
	}

	router.NoRoute(func(c *gin.Context) {
		logger.Printf("404 not found: %s %s", c.Request.Method, c.Request.URL.Path)
		c.String(http.StatusNotFound, "Route %s not found on this server.", c.Request.URL.Path)
	})

	return router
}
