package httpserver

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"cute-storefront/internal/domain"
	"cute-storefront/internal/gateway"
	identitysvc "cute-storefront/internal/service/identity"
)

type identifyRequest struct {
	Email string `json:"email" binding:"required,email"`
}

func identifyHandler(identity *identitysvc.Service, logger *log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req identifyRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondError(c, http.StatusBadRequest, codeValidation, "Correo requerido")
			return
		}

		user, err := identity.Identify(c.Request.Context(), sessionID(c), req.Email)
		if errors.Is(err, domain.ErrNotFound) {
			respondError(c, http.StatusNotFound, codeNotFound, "Usuario no encontrado")
			return
		}
		if err != nil {
			logger.Printf("identify user: %v", err)
			respondError(c, http.StatusBadGateway, codeInternal, "No se pudo buscar el usuario")
			return
		}
		respondData(c, user)
	}
}

func registerHandler(identity *identitysvc.Service, logger *log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req domain.UserRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondError(c, http.StatusBadRequest, codeValidation, "Cuerpo de registro inválido")
			return
		}

		user, err := identity.Register(c.Request.Context(), sessionID(c), req)

		var validationErr *identitysvc.ValidationError
		if errors.As(err, &validationErr) {
			respondFieldErrors(c, "Registro inválido", validationErr.Fields)
			return
		}
		var apiErr *gateway.APIError
		if errors.As(err, &apiErr) && len(apiErr.FieldErrors) > 0 {
			respondFieldErrors(c, apiErr.Message, apiErr.FieldErrors)
			return
		}
		if err != nil {
			logger.Printf("register user: %v", err)
			respondError(c, http.StatusBadGateway, codeInternal, "No se pudo registrar el usuario")
			return
		}
		respondData(c, user)
	}
}

func currentUserHandler(identity *identitysvc.Service, logger *log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := identity.Current(c.Request.Context(), sessionID(c))
		if errors.Is(err, domain.ErrNotAuthenticated) {
			respondError(c, http.StatusUnauthorized, codeAuthRequired, "Identifícate para continuar")
			return
		}
		if err != nil {
			logger.Printf("load current user: %v", err)
			respondError(c, http.StatusInternalServerError, codeInternal, "No se pudo cargar el usuario")
			return
		}
		respondData(c, user)
	}
}
