package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/dukaops/enterprise-api/internal/application/service"
	"github.com/dukaops/enterprise-api/internal/presentation/http/dto/request"
	"github.com/dukaops/enterprise-api/internal/presentation/http/dto/response"
)

// AuthHandler handles authentication-related HTTP requests
type AuthHandler struct {
	authService *service.AuthService
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Login handles user login
// @Summary Login
// @Description Authenticate user and return a session token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body request.LoginRequest true "Login credentials"
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} map[string]interface{}
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req request.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	output, err := h.authService.Login(c.Request.Context(), &service.LoginInput{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, gin.H{
		"success": true,
		"token":   output.Token,
		"user": gin.H{
			"id":          output.User.ID,
			"branch_id":   output.User.BranchID,
			"role_id":     output.User.RoleID,
			"username":    output.User.Username,
			"full_name":   output.User.FullName,
			"email":       output.User.Email,
			"role_name":   output.User.Role.Name,
			"permissions": output.User.Role.Permissions,
		},
	})
}
