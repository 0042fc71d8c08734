package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/proroofers/crm-api/internal/dto"
	apierrors "github.com/proroofers/crm-api/internal/errors"
	"github.com/proroofers/crm-api/internal/logs"
	"github.com/proroofers/crm-api/internal/services"
)

// UserHandler exposes the user directory.
type UserHandler struct {
	authService *services.AuthService
}

// NewUserHandler creates a new UserHandler
func NewUserHandler(authService *services.AuthService) *UserHandler {
	return &UserHandler{
		authService: authService,
	}
}

// ListUsers returns id, username and email for every user. Roles and
// password hashes are never exposed.
func (h *UserHandler) ListUsers(c *gin.Context) {
	users, err := h.authService.ListUsers()
	if err != nil {
		logs.Logger.WithError(err).Error("user list failed")
		apierrors.InternalError(c, "")
		return
	}
	c.JSON(http.StatusOK, dto.ToUserDTOs(users))
}
