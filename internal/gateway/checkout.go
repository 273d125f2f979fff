package gateway

import (
	"net/http"

	cartapp "github.com/dwikikusuma/storefront/internal/cart/app"
	checkoutapp "github.com/dwikikusuma/storefront/internal/checkout/app"
	checkoutdomain "github.com/dwikikusuma/storefront/internal/checkout/domain"
	"github.com/gin-gonic/gin"
)

type attemptDTO struct {
	AttemptID string `json:"attempt_id"`
	Step      string `json:"step"`
	Settling  bool   `json:"settling"`
}

func toAttemptDTO(at checkoutapp.Attempt) attemptDTO {
	return attemptDTO{
		AttemptID: at.ID,
		Step:      at.Step.String(),
		Settling:  at.Settling,
	}
}

type shippingReq struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Address   string `json:"address"`
	City      string `json:"city"`
	State     string `json:"state"`
	ZipCode   string `json:"zip_code"`
	Country   string `json:"country"`
}

func (r shippingReq) details() checkoutdomain.ShippingDetails {
	return checkoutdomain.ShippingDetails{
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Email:     r.Email,
		Phone:     r.Phone,
		Address:   r.Address,
		City:      r.City,
		State:     r.State,
		ZipCode:   r.ZipCode,
		Country:   r.Country,
	}
}

func (s *Server) beginCheckout(c *gin.Context) {
	var req shippingReq
	// Optional prefill body; an empty body starts a blank attempt.
	_ = c.ShouldBindJSON(&req)

	at, err := s.checkout.Begin(c.Request.Context(), session(c), req.details())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toAttemptDTO(at))
}

func (s *Server) currentCheckout(c *gin.Context) {
	at, ok := s.checkout.Current(session(c))
	if !ok {
		writeError(c, checkoutapp.ErrNoAttempt)
		return
	}
	c.JSON(http.StatusOK, toAttemptDTO(at))
}

func (s *Server) checkoutSummary(c *gin.Context) {
	sum, err := s.checkout.Summary(c.Request.Context(), session(c))
	if err != nil {
		writeError(c, err)
		return
	}

	lines := make([]cartLineDTO, 0, len(sum.Lines))
	for _, ln := range sum.Lines {
		lines = append(lines, cartLineDTO{
			ProductID: ln.ProductID,
			Name:      ln.Name,
			UnitPrice: ln.UnitPrice.StringFixed(2),
			Quantity:  ln.Quantity,
			LineTotal: ln.UnitPrice.Mul(intToDecimal(ln.Quantity)).StringFixed(2),
		})
	}
	c.JSON(http.StatusOK, gin.H{
		"lines":       lines,
		"subtotal":    sum.Totals.Subtotal.StringFixed(2),
		"shipping":    sum.Totals.Shipping.StringFixed(2),
		"tax":         sum.Totals.Tax.StringFixed(2),
		"grand_total": sum.Totals.GrandTotal.StringFixed(2),
	})
}

func (s *Server) submitShipping(c *gin.Context) {
	var req shippingReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, cartapp.ErrInvalidInput)
		return
	}

	at, err := s.checkout.SubmitShipping(session(c), req.details())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toAttemptDTO(at))
}

func (s *Server) checkoutBack(c *gin.Context) {
	at, err := s.checkout.Back(session(c))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toAttemptDTO(at))
}

func (s *Server) submitPayment(c *gin.Context) {
	var req struct {
		CardNumber string `json:"card_number"`
		ExpiryDate string `json:"expiry_date"`
		CVV        string `json:"cvv"`
		NameOnCard string `json:"name_on_card"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, cartapp.ErrInvalidInput)
		return
	}

	at, err := s.checkout.SubmitPayment(session(c), checkoutdomain.PaymentDetails{
		CardNumber: req.CardNumber,
		ExpiryDate: req.ExpiryDate,
		CVV:        req.CVV,
		NameOnCard: req.NameOnCard,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	// Settlement is asynchronous; the attempt reports settling until
	// the delay elapses.
	c.JSON(http.StatusAccepted, toAttemptDTO(at))
}

func (s *Server) abandonCheckout(c *gin.Context) {
	s.checkout.Abandon(session(c))
	c.Status(http.StatusNoContent)
}

func (s *Server) listOrders(c *gin.Context) {
	orders, err := s.orders.ListOrders(c.Request.Context(), session(c))
	if err != nil {
		writeError(c, err)
		return
	}

	type orderDTO struct {
		ID        string `json:"id"`
		Status    string `json:"status"`
		Total     string `json:"total"`
		CreatedAt string `json:"created_at"`
	}
	out := make([]orderDTO, 0, len(orders))
	for _, o := range orders {
		out = append(out, orderDTO{
			ID:        o.ID,
			Status:    o.Status,
			Total:     o.Total.StringFixed(2),
			CreatedAt: o.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		})
	}
	c.JSON(http.StatusOK, gin.H{"orders": out})
}
