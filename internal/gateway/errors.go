package gateway

import (
	"errors"
	"net/http"

	cartapp "github.com/dwikikusuma/storefront/internal/cart/app"
	catalogapp "github.com/dwikikusuma/storefront/internal/catalog/app"
	checkoutapp "github.com/dwikikusuma/storefront/internal/checkout/app"
	checkoutdomain "github.com/dwikikusuma/storefront/internal/checkout/domain"
	"github.com/gin-gonic/gin"
)

// httpStatusFromErr maps domain errors to an HTTP status and a stable
// machine-readable code.
func httpStatusFromErr(err error) (int, string) {
	switch {
	case errors.Is(err, checkoutdomain.ErrMissingField),
		errors.Is(err, catalogapp.ErrInvalidInput),
		errors.Is(err, cartapp.ErrInvalidInput):
		return http.StatusBadRequest, "INVALID_ARGUMENT"
	case errors.Is(err, catalogapp.ErrNotFound),
		errors.Is(err, checkoutapp.ErrNoAttempt):
		return http.StatusNotFound, "NOT_FOUND"
	case errors.Is(err, checkoutapp.ErrEmptyCart),
		errors.Is(err, checkoutapp.ErrWrongStep):
		return http.StatusConflict, "FAILED_PRECONDITION"
	default:
		return http.StatusInternalServerError, "INTERNAL"
	}
}

func writeError(c *gin.Context, err error) {
	status, code := httpStatusFromErr(err)
	c.JSON(status, gin.H{
		"error":   code,
		"message": err.Error(),
	})
}
