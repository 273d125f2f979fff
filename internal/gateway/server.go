// Package gateway exposes the storefront core over HTTP for the serve
// mode. Cart and checkout routes are scoped to the session carried in
// the X-Session-ID header.
package gateway

import (
	"log/slog"
	"net/http"
	"time"

	cartapp "github.com/dwikikusuma/storefront/internal/cart/app"
	catalogapp "github.com/dwikikusuma/storefront/internal/catalog/app"
	checkoutapp "github.com/dwikikusuma/storefront/internal/checkout/app"
	orderapp "github.com/dwikikusuma/storefront/internal/order/app"
	"github.com/gin-gonic/gin"
)

const sessionHeader = "X-Session-ID"

type Server struct {
	catalog  *catalogapp.Service
	cart     *cartapp.Service
	checkout *checkoutapp.Service
	orders   *orderapp.Service
	log      *slog.Logger

	engine *gin.Engine
}

func New(catalog *catalogapp.Service, cart *cartapp.Service, checkout *checkoutapp.Service, orders *orderapp.Service, log *slog.Logger) *Server {
	gin.SetMode(gin.ReleaseMode)
	if log == nil {
		log = slog.Default()
	}

	s := &Server{
		catalog:  catalog,
		cart:     cart,
		checkout: checkout,
		orders:   orders,
		log:      log,
		engine:   gin.New(),
	}
	s.engine.Use(gin.Recovery(), s.requestLog)
	s.routes()
	return s
}

func (s *Server) requestLog(c *gin.Context) {
	start := time.Now()
	c.Next()
	s.log.Debug("http request",
		slog.String("method", c.Request.Method),
		slog.String("path", c.Request.URL.Path),
		slog.Int("status", c.Writer.Status()),
		slog.Duration("took", time.Since(start)),
	)
}

func (s *Server) Handler() http.Handler { return s.engine }

func (s *Server) routes() {
	s.engine.GET("/healthz", func(c *gin.Context) { c.Status(http.StatusOK) })

	api := s.engine.Group("/api")
	api.GET("/products", s.listProducts)
	api.GET("/products/:id", s.getProduct)
	api.GET("/categories", s.listCategories)

	session := api.Group("", s.requireSession)
	session.GET("/cart", s.getCart)
	session.POST("/cart/items", s.addCartItem)
	session.PUT("/cart/items/:productId", s.setCartItemQuantity)
	session.DELETE("/cart/items/:productId", s.removeCartItem)
	session.DELETE("/cart", s.clearCart)

	session.POST("/checkout", s.beginCheckout)
	session.GET("/checkout", s.currentCheckout)
	session.GET("/checkout/summary", s.checkoutSummary)
	session.POST("/checkout/shipping", s.submitShipping)
	session.POST("/checkout/back", s.checkoutBack)
	session.POST("/checkout/payment", s.submitPayment)
	session.DELETE("/checkout", s.abandonCheckout)

	session.GET("/orders", s.listOrders)
}

func (s *Server) requireSession(c *gin.Context) {
	if c.GetHeader(sessionHeader) == "" {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
			"error":   "INVALID_ARGUMENT",
			"message": "missing " + sessionHeader + " header",
		})
		return
	}
	c.Next()
}

func session(c *gin.Context) string { return c.GetHeader(sessionHeader) }
