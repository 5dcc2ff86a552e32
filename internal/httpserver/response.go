package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"cute-storefront/internal/domain"
)

// response mirrors the commerce API envelope so the storefront frontend
// sees one consistent wire shape end to end.
type response struct {
	Status      int                 `json:"status"`
	Code        string              `json:"code"`
	Message     string              `json:"message"`
	Data        interface{}         `json:"data,omitempty"`
	FieldErrors []domain.FieldError `json:"fieldErrors,omitempty"`
}

const (
	codeOK             = "OK"
	codeNotFound       = "NOT_FOUND"
	codeValidation     = "VALIDATION_ERROR"
	codeAuthRequired   = "AUTH_REQUIRED"
	codeTermsRequired  = "TERMS_NOT_ACCEPTED"
	codeCartPriceError = "CART_PRICE_ERROR"
	codePaymentFailed  = "PAYMENT_FAILED"
	codeInternal       = "INTERNAL_ERROR"
)

func respondData(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, response{Status: http.StatusOK, Code: codeOK, Message: "Ok", Data: data})
}

func respondError(c *gin.Context, status int, code, message string) {
	c.JSON(status, response{Status: status, Code: code, Message: message})
}

func respondFieldErrors(c *gin.Context, message string, fieldErrors []domain.FieldError) {
	c.JSON(http.StatusBadRequest, response{
		Status:      http.StatusBadRequest,
		Code:        codeValidation,
		Message:     message,
		FieldErrors: fieldErrors,
	})
}
