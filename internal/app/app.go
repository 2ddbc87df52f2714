package app

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Piyushpg25/Authentication-system/internal/config"
	httpx "github.com/Piyushpg25/Authentication-system/internal/http"
)

// Run wires the service from config and serves until the listener fails.
func Run(cfg *config.Config) error {
	gin.SetMode(cfg.GinMode)

	ctx := context.Background()
	c, err := NewContainer(ctx, cfg)
	if err != nil {
		return err
	}
	defer c.Close(ctx)

	r := httpx.BuildRouter(c.AuthHandlers, c.UserHandlers, c.AuthMW, cfg.AllowedOrigins)

	addr := ":" + cfg.Port
	slog.Info("listening", "addr", addr, "environment", cfg.Environment,
		"otp_limiter", cfg.OTPLimitEnabled)
	return http.ListenAndServe(addr, r)
}
