package httpserver

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"cute-storefront/internal/domain"
)

type catalogClient interface {
	ListProducts(ctx context.Context) ([]domain.Product, error)
	GetProduct(ctx context.Context, id int64) (*domain.Product, error)
}

func listProductsHandler(catalog catalogClient, logger *log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		products, err := catalog.ListProducts(c.Request.Context())
		if err != nil {
			logger.Printf("list products: %v", err)
			respondError(c, http.StatusBadGateway, codeInternal, "No se pudieron cargar los productos")
			return
		}
		respondData(c, products)
	}
}

func getProductHandler(catalog catalogClient, logger *log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseInt(c.Param("id"), 10, 64)
		if err != nil {
			respondError(c, http.StatusBadRequest, codeValidation, "Identificador de producto inválido")
			return
		}

		product, err := catalog.GetProduct(c.Request.Context(), id)
		if errors.Is(err, domain.ErrNotFound) {
			respondError(c, http.StatusNotFound, codeNotFound, "Producto no encontrado")
			return
		}
		if err != nil {
			logger.Printf("get product %d: %v", id, err)
			respondError(c, http.StatusBadGateway, codeInternal, "No se pudo cargar el producto")
			return
		}
		respondData(c, product)
	}
}
