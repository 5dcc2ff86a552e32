package httpserver

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"cute-storefront/internal/domain"
	cartsvc "cute-storefront/internal/service/cart"
	checkoutsvc "cute-storefront/internal/service/checkout"
	identitysvc "cute-storefront/internal/service/identity"
)

type payRequest struct {
	Card struct {
		Number     string `json:"number" binding:"required"`
		ExpMonth   string `json:"expMonth" binding:"required"`
		ExpYear    string `json:"expYear" binding:"required"`
		CVC        string `json:"cvc" binding:"required"`
		CardHolder string `json:"cardHolder" binding:"required"`
	} `json:"card" binding:"required"`
	Installments  int  `json:"installments" binding:"required"`
	TermsAccepted bool `json:"termsAccepted"`
}

type payResponse struct {
	Status   string `json:"status"`
	OrderID  int64  `json:"orderId"`
	Subtotal int64  `json:"subtotal"`
	Tax      int64  `json:"tax"`
	Total    int64  `json:"total"`
}

// quoteHandler prices the session's cart from fresh catalog data. The
// shopper must be identified first; the quote is what the checkout page
// renders before payment.
func quoteHandler(carts *cartsvc.Service, checkout *checkoutsvc.Service, identity *identitysvc.Service, logger *log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		session := sessionID(c)

		if _, err := identity.Current(c.Request.Context(), session); errors.Is(err, domain.ErrNotAuthenticated) {
			respondError(c, http.StatusUnauthorized, codeAuthRequired, "Identifícate para continuar")
			return
		} else if err != nil {
			logger.Printf("load user for quote: %v", err)
			respondError(c, http.StatusInternalServerError, codeInternal, "No se pudo cargar el usuario")
			return
		}

		cart, err := carts.Get(c.Request.Context(), session)
		if err != nil {
			logger.Printf("load cart for quote: %v", err)
			respondError(c, http.StatusInternalServerError, codeInternal, "No se pudo cargar el carrito")
			return
		}

		quote := checkout.Quote(c.Request.Context(), cart.Items)
		if quote.HasError {
			c.JSON(http.StatusOK, response{
				Status:  http.StatusOK,
				Code:    codeCartPriceError,
				Message: "Hubo un problema en el carrito de compras, estaremos trabajando en solucionarlo.",
				Data:    quote,
			})
			return
		}
		respondData(c, quote)
	}
}

func payHandler(carts *cartsvc.Service, checkout *checkoutsvc.Service, identity *identitysvc.Service, logger *log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		session := sessionID(c)

		var req payRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondError(c, http.StatusBadRequest, codeValidation, "Cuerpo de pago inválido")
			return
		}

		user, err := identity.Current(c.Request.Context(), session)
		if errors.Is(err, domain.ErrNotAuthenticated) {
			respondError(c, http.StatusUnauthorized, codeAuthRequired, "Identifícate para continuar")
			return
		}
		if err != nil {
			logger.Printf("load user for payment: %v", err)
			respondError(c, http.StatusInternalServerError, codeInternal, "No se pudo cargar el usuario")
			return
		}

		cart, err := carts.Get(c.Request.Context(), session)
		if err != nil {
			logger.Printf("load cart for payment: %v", err)
			respondError(c, http.StatusInternalServerError, codeInternal, "No se pudo cargar el carrito")
			return
		}
		if len(cart.Items) == 0 {
			respondError(c, http.StatusBadRequest, codeValidation, "El carrito está vacío")
			return
		}

		result, err := checkout.Submit(c.Request.Context(), checkoutsvc.SubmitInput{
			Session: session,
			User:    user,
			Card: checkoutsvc.CardInput{
				Number:       req.Card.Number,
				ExpMonth:     req.Card.ExpMonth,
				ExpYear:      req.Card.ExpYear,
				CVC:          req.Card.CVC,
				Holder:       req.Card.CardHolder,
				Installments: req.Installments,
			},
			Items:         cart.Items,
			TermsAccepted: req.TermsAccepted,
		})

		switch {
		case err == nil:
			respondData(c, payResponse{
				Status:   result.Status.String(),
				OrderID:  result.OrderID,
				Subtotal: result.Quote.Subtotal,
				Tax:      result.Quote.Tax,
				Total:    result.Quote.Total,
			})
		case errors.Is(err, checkoutsvc.ErrTermsNotAccepted):
			respondError(c, http.StatusBadRequest, codeTermsRequired, "Debes aceptar los Términos y Condiciones.")
		case errors.Is(err, checkoutsvc.ErrInvalidUser):
			respondError(c, http.StatusBadRequest, codeValidation, "Usuario inválido.")
		case errors.Is(err, checkoutsvc.ErrCartUnpriceable):
			respondError(c, http.StatusConflict, codeCartPriceError, "Hubo un problema en el carrito de compras, estaremos trabajando en solucionarlo.")
		default:
			var cardErr *checkoutsvc.CardValidationError
			if errors.As(err, &cardErr) {
				respondFieldErrors(c, "Datos de tarjeta inválidos", cardErr.Fields)
				return
			}
			// Tokenization, order creation and payment initiation failures
			// all collapse to one generic message; detail stays in the logs.
			logger.Printf("payment submission failed for session %s: %v", session, err)
			respondError(c, http.StatusBadGateway, codePaymentFailed, checkoutsvc.GenericFailureMessage)
		}
	}
}
