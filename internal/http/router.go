package httpx

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/Piyushpg25/Authentication-system/internal/http/handlers"
	"github.com/Piyushpg25/Authentication-system/internal/http/middleware"
)

// BuildRouter wires the API routes. Every /api/auth and /api/user route
// answers with the {success, message} JSON envelope.
func BuildRouter(ah *handlers.AuthHandlers, uh *handlers.UserHandlers, mw *middleware.AuthMW, allowedOrigins []string) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     allowedOrigins,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/", func(c *gin.Context) { c.String(200, "API is running") })

	auth := r.Group("/api/auth")
	auth.POST("/register", ah.Register)
	auth.POST("/login", ah.Login)
	auth.POST("/logout", ah.Logout)
	auth.POST("/send-verify-otp", mw.RequireAuth(), ah.SendVerifyOTP)
	auth.POST("/verify-account", mw.RequireAuth(), ah.VerifyAccount)
	auth.GET("/is-auth", mw.OptionalAuth(), ah.IsAuthenticated)
	auth.POST("/send-reset-otp", ah.SendResetOTP)
	auth.POST("/verify-reset-otp", ah.VerifyResetOTP)
	auth.POST("/reset-password", ah.ResetPassword)

	user := r.Group("/api/user").Use(mw.RequireAuth())
	user.GET("/data", uh.Data)

	return r
}
