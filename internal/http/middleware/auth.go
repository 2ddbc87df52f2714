package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Piyushpg25/Authentication-system/domain"
)

// SessionCookie is the cookie carrying the signed session token.
const SessionCookie = "token"

// UserIDKey is the gin context key holding the authenticated user ID.
const UserIDKey = "userID"

// AuthMW derives a caller identity from the session cookie.
type AuthMW struct {
	tokenSvc domain.TokenService
}

// NewAuthMW creates new auth middleware
func NewAuthMW(tokenSvc domain.TokenService) *AuthMW {
	return &AuthMW{tokenSvc: tokenSvc}
}

// RequireAuth rejects the request with 401 unless a valid, unexpired
// session token naming a subject is presented.
func (mw *AuthMW) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(SessionCookie)
		if err != nil || token == "" {
			abortUnauthorized(c)
			return
		}

		userID, err := mw.tokenSvc.Validate(token)
		if err != nil || userID == "" {
			abortUnauthorized(c)
			return
		}

		c.Set(UserIDKey, userID)
		c.Next()
	}
}

// OptionalAuth attaches the subject when a valid token is present and
// continues anonymously otherwise. It never rejects.
func (mw *AuthMW) OptionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(SessionCookie)
		if err == nil && token != "" {
			if userID, err := mw.tokenSvc.Validate(token); err == nil && userID != "" {
				c.Set(UserIDKey, userID)
			}
		}
		c.Next()
	}
}

func abortUnauthorized(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"success": false,
		"message": "Not Authorized. Login Again",
	})
}
