package httpserver

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	cartsvc "cute-storefront/internal/service/cart"
)

type addItemRequest struct {
	ProductID int64 `json:"productId" binding:"required,gt=0"`
	Quantity  int   `json:"quantity" binding:"required,gte=1"`
}

type updateItemRequest struct {
	// Pointer so a literal 0 still binds and gets clamped instead of being
	// rejected as missing.
	Quantity *int `json:"quantity" binding:"required"`
}

func getCartHandler(carts *cartsvc.Service, logger *log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		cart, err := carts.Get(c.Request.Context(), sessionID(c))
		if err != nil {
			logger.Printf("get cart: %v", err)
			respondError(c, http.StatusInternalServerError, codeInternal, "No se pudo cargar el carrito")
			return
		}
		respondData(c, cart)
	}
}

func addCartItemHandler(carts *cartsvc.Service, logger *log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req addItemRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondError(c, http.StatusBadRequest, codeValidation, "productId y quantity (mínimo 1) son requeridos")
			return
		}

		cart, err := carts.Add(c.Request.Context(), sessionID(c), req.ProductID, req.Quantity)
		if err != nil {
			logger.Printf("add cart item: %v", err)
			respondError(c, http.StatusInternalServerError, codeInternal, "No se pudo actualizar el carrito")
			return
		}
		respondData(c, cart)
	}
}

func updateCartItemHandler(carts *cartsvc.Service, logger *log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		productID, err := strconv.ParseInt(c.Param("productId"), 10, 64)
		if err != nil {
			respondError(c, http.StatusBadRequest, codeValidation, "Identificador de producto inválido")
			return
		}

		var req updateItemRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondError(c, http.StatusBadRequest, codeValidation, "quantity es requerido")
			return
		}

		// Quantity is clamped here, at the call boundary: a decrement can
		// reach 1 but never 0 or below.
		quantity := *req.Quantity
		if quantity < 1 {
			quantity = 1
		}

		cart, err := carts.UpdateQuantity(c.Request.Context(), sessionID(c), productID, quantity)
		if err != nil {
			logger.Printf("update cart item %d: %v", productID, err)
			respondError(c, http.StatusInternalServerError, codeInternal, "No se pudo actualizar el carrito")
			return
		}
		respondData(c, cart)
	}
}

func removeCartItemHandler(carts *cartsvc.Service, logger *log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		productID, err := strconv.ParseInt(c.Param("productId"), 10, 64)
		if err != nil {
			respondError(c, http.StatusBadRequest, codeValidation, "Identificador de producto inválido")
			return
		}

		cart, err := carts.Remove(c.Request.Context(), sessionID(c), productID)
		if err != nil {
			logger.Printf("remove cart item %d: %v", productID, err)
			respondError(c, http.StatusInternalServerError, codeInternal, "No se pudo actualizar el carrito")
			return
		}
		respondData(c, cart)
	}
}

func clearCartHandler(carts *cartsvc.Service, logger *log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := carts.Clear(c.Request.Context(), sessionID(c)); err != nil {
			logger.Printf("clear cart: %v", err)
			respondError(c, http.StatusInternalServerError, codeInternal, "No se pudo vaciar el carrito")
			return
		}
		respondData(c, gin.H{"items": []struct{}{}})
	}
}
