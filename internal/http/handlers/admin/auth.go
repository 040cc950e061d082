package admin

import (
	"time"

	"github.com/delipedidos/api/internal/http/response"
	"github.com/delipedidos/api/internal/models"

	"github.com/gin-gonic/gin"
)

// LoginRequest is the login payload.
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse carries the issued token.
type LoginResponse struct {
	Token     string        `json:"token"`
	ExpiresAt time.Time     `json:"expires_at"`
	Admin     *models.Admin `json:"admin"`
}

// Login exchanges credentials for a JWT.
func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "email and password are required")
		return
	}

	admin, token, expiresAt, err := h.AuthService.Login(req.Email, req.Password)
	if err != nil {
		respondServiceError(c, err, "admin not found")
		return
	}

	response.Success(c, LoginResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		Admin:     admin,
	})
}

// Me returns the authenticated admin account.
func (h *Handler) Me(c *gin.Context) {
	adminID := c.GetUint("admin_id")
	admin, err := h.AdminRepo.GetByID(adminID)
	if err != nil {
		respondError(c, response.CodeInternal, "account fetch failed", err)
		return
	}
	if admin == nil {
		response.NotFound(c, "admin not found")
		return
	}
	response.Success(c, admin)
}

// ChangePasswordRequest carries the old and new password.
type ChangePasswordRequest struct {
	OldPassword string `json:"old_password" binding:"required"`
	NewPassword string `json:"new_password" binding:"required"`
}

// ChangePassword rotates the authenticated admin's password.
func (h *Handler) ChangePassword(c *gin.Context) {
	var req ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "old_password and new_password are required")
		return
	}

	adminID := c.GetUint("admin_id")
	if err := h.AuthService.ChangePassword(adminID, req.OldPassword, req.NewPassword); err != nil {
		respondServiceError(c, err, "admin not found")
		return
	}
	response.SuccessWithMsg(c, "password changed", nil)
}
