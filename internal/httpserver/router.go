package httpserver

import (
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// buildRouter wires routes for the storefront.
func buildRouter(logger *log.Logger, rdb *redis.Client, deps Deps, corsOrigin string) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.LoggerWithWriter(logger.Writer()), gin.Recovery())

	corsCfg := cors.DefaultConfig()
	corsCfg.AllowOrigins = []string{corsOrigin}
	corsCfg.AllowHeaders = append(corsCfg.AllowHeaders, sessionHeader)
	corsCfg.ExposeHeaders = append(corsCfg.ExposeHeaders, sessionHeader)
	router.Use(cors.New(corsCfg))

	router.GET("/healthz", healthHandler)
	router.GET("/readyz", readyHandler(rdb))

	api := router.Group("/", sessionMiddleware())

	api.GET("/products", listProductsHandler(deps.Catalog, logger))
	api.GET("/products/:id", getProductHandler(deps.Catalog, logger))

	api.GET("/cart", getCartHandler(deps.Cart, logger))
	api.POST("/cart/items", addCartItemHandler(deps.Cart, logger))
	api.PATCH("/cart/items/:productId", updateCartItemHandler(deps.Cart, logger))
	api.DELETE("/cart/items/:productId", removeCartItemHandler(deps.Cart, logger))
	api.DELETE("/cart", clearCartHandler(deps.Cart, logger))

	api.POST("/users/identify", identifyHandler(deps.Identity, logger))
	api.POST("/users/register", registerHandler(deps.Identity, logger))
	api.GET("/users/me", currentUserHandler(deps.Identity, logger))

	api.GET("/checkout/quote", quoteHandler(deps.Cart, deps.Checkout, deps.Identity, logger))
	api.POST("/checkout/pay", payHandler(deps.Cart, deps.Checkout, deps.Identity, logger))

	return router
}
