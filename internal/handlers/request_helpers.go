package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/essentia-tours/internal/httperr"
	"github.com/BruksfildServices01/essentia-tours/internal/middleware"
	"github.com/BruksfildServices01/essentia-tours/internal/models"
)

// bindJSON decodes the body and answers 400 on failure.
func bindJSON(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return false
	}
	return true
}

func actorID(c *gin.Context) *string {
	return middleware.CurrentUserID(c)
}

// canAccess reports whether the caller is an admin or the owner of id.
func canAccess(c *gin.Context, id string) bool {
	if middleware.CurrentRole(c) == models.RoleAdmin {
		return true
	}
	current := middleware.CurrentUserID(c)
	return current != nil && *current == id
}
