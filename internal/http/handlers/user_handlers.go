package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Piyushpg25/Authentication-system/domain"
	"github.com/Piyushpg25/Authentication-system/internal/http/middleware"
)

// UserHandlers serves the authenticated user's profile.
type UserHandlers struct {
	authSvc domain.AuthService
}

// NewUserHandlers creates new user handlers
func NewUserHandlers(authSvc domain.AuthService) *UserHandlers {
	return &UserHandlers{authSvc: authSvc}
}

// Data returns the profile of the authenticated user.
func (h *UserHandlers) Data(c *gin.Context) {
	userID := c.GetString(middleware.UserIDKey)

	user, err := h.authSvc.GetProfile(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"userData": gin.H{
			"name":       user.Name,
			"email":      user.Email,
			"isVerified": user.IsVerified,
		},
	})
}
