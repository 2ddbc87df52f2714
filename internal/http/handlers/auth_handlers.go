package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Piyushpg25/Authentication-system/domain"
	"github.com/Piyushpg25/Authentication-system/internal/http/middleware"
)

// CookieOptions controls how the session cookie is written. Secure and
// SameSite=None are turned on in production so the SPA can be served from
// another origin.
type CookieOptions struct {
	MaxAge   int
	Secure   bool
	SameSite http.SameSite
}

// AuthHandlers handles authentication HTTP requests. Every response is a
// JSON envelope with a success flag and, on failure, a message.
type AuthHandlers struct {
	authSvc domain.AuthService
	cookies CookieOptions
}

// NewAuthHandlers creates new auth handlers
func NewAuthHandlers(authSvc domain.AuthService, cookies CookieOptions) *AuthHandlers {
	return &AuthHandlers{
		authSvc: authSvc,
		cookies: cookies,
	}
}

// RegisterRequest represents a registration request
type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// LoginRequest represents a login request
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// VerifyAccountRequest carries the submitted verification code.
type VerifyAccountRequest struct {
	OTP string `json:"otp" binding:"required"`
}

// SendResetOTPRequest identifies the account to reset by email.
type SendResetOTPRequest struct {
	Email string `json:"email" binding:"required"`
}

// VerifyResetOTPRequest carries the reset code for the pre-check.
type VerifyResetOTPRequest struct {
	Email string `json:"email" binding:"required"`
	OTP   string `json:"otp" binding:"required"`
}

// ResetPasswordRequest carries the reset code and the replacement password.
type ResetPasswordRequest struct {
	Email       string `json:"email" binding:"required"`
	OTP         string `json:"otp" binding:"required"`
	NewPassword string `json:"newPassword" binding:"required"`
}

// Register handles user registration
func (h *AuthHandlers) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Missing details")
		return
	}

	result, err := h.authSvc.Register(c.Request.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	h.setSessionCookie(c, result.Token)
	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Registered successfully",
	})
}

// Login handles user login
func (h *AuthHandlers) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid credentials")
		return
	}

	result, err := h.authSvc.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	h.setSessionCookie(c, result.Token)
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Login successful",
	})
}

// Logout clears the session cookie. Always succeeds if reachable.
func (h *AuthHandlers) Logout(c *gin.Context) {
	h.clearSessionCookie(c)
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Logged out",
	})
}

// SendVerifyOTP issues an email-verification code for the authenticated
// user.
func (h *AuthHandlers) SendVerifyOTP(c *gin.Context) {
	userID := c.GetString(middleware.UserIDKey)

	if err := h.authSvc.SendVerifyOTP(c.Request.Context(), userID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Verification OTP sent to email",
	})
}

// VerifyAccount validates the submitted code and marks the account
// verified.
func (h *AuthHandlers) VerifyAccount(c *gin.Context) {
	var req VerifyAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Missing details")
		return
	}

	userID := c.GetString(middleware.UserIDKey)
	if err := h.authSvc.VerifyAccount(c.Request.Context(), userID, req.OTP); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Email verified successfully",
	})
}

// IsAuthenticated reports whether the caller holds a valid session. Runs
// behind the optional gate, so it never rejects.
func (h *AuthHandlers) IsAuthenticated(c *gin.Context) {
	_, authenticated := c.Get(middleware.UserIDKey)
	c.JSON(http.StatusOK, gin.H{"success": authenticated})
}

// SendResetOTP issues a password-reset code for the account with the given
// email.
func (h *AuthHandlers) SendResetOTP(c *gin.Context) {
	var req SendResetOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Email is required")
		return
	}

	if err := h.authSvc.SendResetOTP(c.Request.Context(), req.Email); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "OTP sent to your email",
	})
}

// VerifyResetOTP checks a reset code without consuming it, so the SPA can
// gate the new-password form.
func (h *AuthHandlers) VerifyResetOTP(c *gin.Context) {
	var req VerifyResetOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Email and OTP are required")
		return
	}

	if err := h.authSvc.VerifyResetOTP(c.Request.Context(), req.Email, req.OTP); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "OTP verified successfully",
	})
}

// ResetPassword replaces the password after a successful reset-code check.
func (h *AuthHandlers) ResetPassword(c *gin.Context) {
	var req ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Email, OTP and new password are required")
		return
	}

	if err := h.authSvc.ResetPassword(c.Request.Context(), req.Email, req.OTP, req.NewPassword); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Password has been reset successfully",
	})
}

func (h *AuthHandlers) setSessionCookie(c *gin.Context, token string) {
	c.SetSameSite(h.cookies.SameSite)
	c.SetCookie(middleware.SessionCookie, token, h.cookies.MaxAge, "/", "", h.cookies.Secure, true)
}

func (h *AuthHandlers) clearSessionCookie(c *gin.Context) {
	c.SetSameSite(h.cookies.SameSite)
	c.SetCookie(middleware.SessionCookie, "", -1, "/", "", h.cookies.Secure, true)
}

func badRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": message})
}

// respondError maps domain errors to status codes; anything unexpected
// becomes a 500 carrying the underlying message.
func respondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	message := err.Error()

	switch {
	case errors.Is(err, domain.ErrInvalidCredentials):
		status, message = http.StatusUnauthorized, "Invalid credentials"
	case errors.Is(err, domain.ErrUserNotFound):
		status, message = http.StatusNotFound, "User not found"
	case errors.Is(err, domain.ErrUserAlreadyExists):
		status, message = http.StatusConflict, "User already exists"
	case errors.Is(err, domain.ErrAlreadyVerified):
		status, message = http.StatusConflict, "Account already verified"
	case errors.Is(err, domain.ErrOTPInvalid):
		status, message = http.StatusUnauthorized, "Invalid OTP"
	case errors.Is(err, domain.ErrOTPExpired):
		status, message = http.StatusGone, "OTP expired"
	case errors.Is(err, domain.ErrOTPRateLimited):
		status, message = http.StatusTooManyRequests, "Too many OTP requests, try again later"
	}

	c.JSON(status, gin.H{"success": false, "message": message})
}
