// Package admin implements the back-office API handlers. Every route in this
// package sits behind the JWT middleware except the login endpoint.
package admin

import (
	"github.com/delipedidos/api/internal/http/handlers/shared"
	"github.com/delipedidos/api/internal/provider"

	"github.com/gin-gonic/gin"
)

// Handler serves the admin endpoints.
type Handler struct {
	*provider.Container
}

// New creates the admin handler.
func New(c *provider.Container) *Handler {
	return &Handler{Container: c}
}

func respondError(c *gin.Context, code int, msg string, err error) {
	shared.RespondError(c, code, msg, err)
}

func respondServiceError(c *gin.Context, err error, notFoundMsg string) {
	shared.RespondServiceError(c, err, notFoundMsg)
}
