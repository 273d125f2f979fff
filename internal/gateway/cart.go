package gateway

import (
	"net/http"

	cartapp "github.com/dwikikusuma/storefront/internal/cart/app"
	cartdomain "github.com/dwikikusuma/storefront/internal/cart/domain"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

func intToDecimal(n int) decimal.Decimal { return decimal.NewFromInt(int64(n)) }

type cartLineDTO struct {
	ProductID string `json:"product_id"`
	Name      string `json:"name"`
	UnitPrice string `json:"unit_price"`
	Quantity  int    `json:"quantity"`
	LineTotal string `json:"line_total"`
}

type cartDTO struct {
	CartID    string        `json:"cart_id"`
	ItemCount int           `json:"item_count"`
	Subtotal  string        `json:"subtotal"`
	Lines     []cartLineDTO `json:"lines"`
}

func toCartDTO(snap cartdomain.Snapshot) cartDTO {
	lines := make([]cartLineDTO, 0, len(snap.Lines))
	for _, it := range snap.Lines {
		lines = append(lines, cartLineDTO{
			ProductID: it.Product.ID,
			Name:      it.Product.Name,
			UnitPrice: it.Product.Price.StringFixed(2),
			Quantity:  it.Quantity,
			LineTotal: it.Product.Price.Mul(intToDecimal(it.Quantity)).StringFixed(2),
		})
	}
	return cartDTO{
		CartID:    snap.CartID,
		ItemCount: snap.ItemCount,
		Subtotal:  snap.Subtotal.StringFixed(2),
		Lines:     lines,
	}
}

func (s *Server) getCart(c *gin.Context) {
	snap, err := s.cart.GetCart(c.Request.Context(), session(c))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toCartDTO(snap))
}

func (s *Server) addCartItem(c *gin.Context) {
	var req struct {
		ProductID string `json:"product_id" binding:"required"`
		Quantity  int    `json:"quantity"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, cartapp.ErrInvalidInput)
		return
	}
	if req.Quantity == 0 {
		req.Quantity = 1
	}

	p, err := s.catalog.GetProduct(c.Request.Context(), req.ProductID)
	if err != nil {
		writeError(c, err)
		return
	}

	snap, err := s.cart.AddItem(c.Request.Context(), session(c), p, req.Quantity)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toCartDTO(snap))
}

func (s *Server) setCartItemQuantity(c *gin.Context) {
	var req struct {
		Quantity int `json:"quantity"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, cartapp.ErrInvalidInput)
		return
	}

	snap, err := s.cart.SetQuantity(c.Request.Context(), session(c), c.Param("productId"), req.Quantity)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toCartDTO(snap))
}

func (s *Server) removeCartItem(c *gin.Context) {
	snap, err := s.cart.RemoveItem(c.Request.Context(), session(c), c.Param("productId"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toCartDTO(snap))
}

func (s *Server) clearCart(c *gin.Context) {
	snap, err := s.cart.Clear(c.Request.Context(), session(c))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toCartDTO(snap))
}
