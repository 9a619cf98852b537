package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/dukaops/enterprise-api/internal/application/service"
	"github.com/dukaops/enterprise-api/internal/presentation/http/dto/response"
)

// UserHandler handles user lookup HTTP requests
type UserHandler struct {
	userService *service.UserService
}

// NewUserHandler creates a new user handler
func NewUserHandler(userService *service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// ListByRole returns the id and full name of every user holding a role.
// Used by the console to populate officer assignment dropdowns.
func (h *UserHandler) ListByRole(c *gin.Context) {
	users, err := h.userService.ListByRole(c.Request.Context(), c.Param("roleName"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, users)
}
