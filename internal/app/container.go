package app

import (
	"context"
	"net/http"

	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/Piyushpg25/Authentication-system/domain"
	"github.com/Piyushpg25/Authentication-system/internal/config"
	"github.com/Piyushpg25/Authentication-system/internal/http/handlers"
	"github.com/Piyushpg25/Authentication-system/internal/http/middleware"
	"github.com/Piyushpg25/Authentication-system/internal/infrastructure/auth"
	"github.com/Piyushpg25/Authentication-system/internal/infrastructure/database"
	"github.com/Piyushpg25/Authentication-system/internal/infrastructure/notifications"
	"github.com/Piyushpg25/Authentication-system/internal/infrastructure/repositories"
	"github.com/Piyushpg25/Authentication-system/internal/services"
)

// Container holds all dependencies
type Container struct {
	Config *config.Config

	MongoClient *mongo.Client
	RedisClient *redis.Client

	UserRepo domain.UserRepository

	PasswordSvc domain.PasswordService
	TokenSvc    domain.TokenService
	Mailer      domain.Mailer
	OTPLimiter  domain.OTPLimiter
	OTPSvc      domain.OTPService
	AuthSvc     domain.AuthService

	AuthHandlers *handlers.AuthHandlers
	UserHandlers *handlers.UserHandlers
	AuthMW       *middleware.AuthMW
}

// NewContainer creates and initializes all dependencies
func NewContainer(ctx context.Context, cfg *config.Config) (*Container, error) {
	c := &Container{Config: cfg}

	client, db, err := database.ConnectMongo(ctx, cfg.MongoURI, cfg.MongoDatabase)
	if err != nil {
		return nil, err
	}
	c.MongoClient = client

	if err := repositories.EnsureUserIndexes(ctx, db); err != nil {
		return nil, err
	}
	c.UserRepo = repositories.NewUserRepository(db)

	c.PasswordSvc = auth.NewPasswordService()
	c.TokenSvc = auth.NewJWTService(cfg.JWTSecret, cfg.JWTIssuer, cfg.SessionTTL)
	c.Mailer = notifications.NewSMTPMailer(
		cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword, cfg.SMTPSender,
	)

	if cfg.OTPLimitEnabled {
		c.RedisClient = database.NewRedis(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		if err := database.PingRedis(ctx, c.RedisClient); err != nil {
			return nil, err
		}
		c.OTPLimiter = services.NewRedisOTPLimiter(c.RedisClient, cfg.OTPLimitMax, cfg.OTPLimitWindow)
	}

	c.OTPSvc = services.NewOTPService(c.UserRepo, c.Mailer, c.OTPLimiter, services.OTPConfig{
		VerifyTTL: cfg.OTPVerifyTTL,
		ResetTTL:  cfg.OTPResetTTL,
	})
	c.AuthSvc = services.NewAuthService(c.UserRepo, c.PasswordSvc, c.TokenSvc, c.OTPSvc, c.Mailer)

	c.AuthHandlers = handlers.NewAuthHandlers(c.AuthSvc, cookieOptions(cfg))
	c.UserHandlers = handlers.NewUserHandlers(c.AuthSvc)
	c.AuthMW = middleware.NewAuthMW(c.TokenSvc)

	return c, nil
}

// cookieOptions derives session-cookie transport settings: 7-day lifetime,
// Secure + SameSite=None in production so a cross-origin SPA can send it.
func cookieOptions(cfg *config.Config) handlers.CookieOptions {
	opts := handlers.CookieOptions{
		MaxAge:   int(cfg.SessionTTL.Seconds()),
		Secure:   false,
		SameSite: http.SameSiteLaxMode,
	}
	if cfg.IsProduction() {
		opts.Secure = true
		opts.SameSite = http.SameSiteNoneMode
	}
	return opts
}

// Close closes all connections
func (c *Container) Close(ctx context.Context) error {
	if c.RedisClient != nil {
		c.RedisClient.Close()
	}
	if c.MongoClient != nil {
		return c.MongoClient.Disconnect(ctx)
	}
	return nil
}
