package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

type AppConfig struct {
	Port        int    `yaml:"port"`
	GinMode     string `yaml:"gin_mode"`
	Environment string `yaml:"environment"`
}

type MongoConfig struct {
	URI      string `yaml:"uri"`
	Database string `yaml:"database"`
}

type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

type JWTConfig struct {
	Secret string `yaml:"secret"`
	Issuer string `yaml:"issuer"`
	TTL    string `yaml:"ttl"`
}

type OTPLimitConfig struct {
	Enabled      bool   `yaml:"enabled"`
	MaxPerWindow int    `yaml:"max_per_window"`
	Window       string `yaml:"window"`
}

type OTPConfig struct {
	VerifyTTL string         `yaml:"verify_ttl"`
	ResetTTL  string         `yaml:"reset_ttl"`
	Limit     OTPLimitConfig `yaml:"limit"`
}

type SMTPConfig struct {
	Host     string `yaml:"host"`
	Port     string `yaml:"port"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`
	Sender   string `yaml:"sender"`
}

type CORSConfig struct {
	AllowedOrigins []string `yaml:"allowed_origins"`
}

type ConfigFile struct {
	App   AppConfig   `yaml:"app"`
	Mongo MongoConfig `yaml:"mongo"`
	Redis RedisConfig `yaml:"redis"`
	JWT   JWTConfig   `yaml:"jwt"`
	OTP   OTPConfig   `yaml:"otp"`
	SMTP  SMTPConfig  `yaml:"smtp"`
	CORS  CORSConfig  `yaml:"cors"`
}

// Config is the resolved runtime configuration: the yaml file with
// environment-variable overrides applied and durations parsed.
type Config struct {
	Port            string
	GinMode         string
	Environment     string
	MongoURI        string
	MongoDatabase   string
	RedisAddr       string
	RedisPassword   string
	RedisDB         int
	JWTSecret       string
	JWTIssuer       string
	SessionTTL      time.Duration
	OTPVerifyTTL    time.Duration
	OTPResetTTL     time.Duration
	OTPLimitEnabled bool
	OTPLimitMax     int
	OTPLimitWindow  time.Duration
	SMTPHost        string
	SMTPPort        string
	SMTPUsername    string
	SMTPPassword    string
	SMTPSender      string
	AllowedOrigins  []string
}

// IsProduction reports whether production cookie hardening (Secure,
// SameSite=None) applies.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

// Load reads config/config.yml (overridable with CONFIG_PATH) and applies
// environment overrides. A missing file is not an error; everything has a
// development default except the JWT secret, which must come from
// somewhere.
func Load() (*Config, error) {
	var file ConfigFile
	path := env("CONFIG_PATH", "config/config.yml")
	if bytes, err := os.ReadFile(path); err == nil {
		if err := yaml.Unmarshal(bytes, &file); err != nil {
			return nil, fmt.Errorf("could not parse config yaml at %s: %w", path, err)
		}
	}

	port := file.App.Port
	if port == 0 {
		port = 4000
	}

	sessionTTL, err := parseDuration(file.JWT.TTL, 7*24*time.Hour)
	if err != nil {
		return nil, fmt.Errorf("invalid jwt ttl: %w", err)
	}
	verifyTTL, err := parseDuration(file.OTP.VerifyTTL, 24*time.Hour)
	if err != nil {
		return nil, fmt.Errorf("invalid otp verify ttl: %w", err)
	}
	resetTTL, err := parseDuration(file.OTP.ResetTTL, 15*time.Minute)
	if err != nil {
		return nil, fmt.Errorf("invalid otp reset ttl: %w", err)
	}
	limitWindow, err := parseDuration(file.OTP.Limit.Window, 15*time.Minute)
	if err != nil {
		return nil, fmt.Errorf("invalid otp limit window: %w", err)
	}

	limitMax := file.OTP.Limit.MaxPerWindow
	if limitMax == 0 {
		limitMax = 5
	}

	origins := file.CORS.AllowedOrigins
	if v := os.Getenv("FRONTEND_URL"); v != "" {
		origins = nil
		for _, o := range strings.Split(v, ",") {
			origins = append(origins, strings.TrimSpace(o))
		}
	}
	if len(origins) == 0 {
		origins = []string{"http://localhost:5173"}
	}

	secret := env("JWT_SECRET_KEY", file.JWT.Secret)
	if secret == "" {
		return nil, fmt.Errorf("jwt secret is not configured (JWT_SECRET_KEY)")
	}

	return &Config{
		Port:            env("PORT", fmt.Sprintf("%d", port)),
		GinMode:         env("GIN_MODE", defaultString(file.App.GinMode, "release")),
		Environment:     env("ENVIRONMENT", defaultString(file.App.Environment, "development")),
		MongoURI:        env("MONGO_URI", defaultString(file.Mongo.URI, "mongodb://localhost:27017")),
		MongoDatabase:   env("MONGO_DB", defaultString(file.Mongo.Database, "auth")),
		RedisAddr:       env("REDIS_ADDR", defaultString(file.Redis.Addr, "localhost:6379")),
		RedisPassword:   env("REDIS_PASSWORD", file.Redis.Password),
		RedisDB:         file.Redis.DB,
		JWTSecret:       secret,
		JWTIssuer:       defaultString(file.JWT.Issuer, "auth-server"),
		SessionTTL:      sessionTTL,
		OTPVerifyTTL:    verifyTTL,
		OTPResetTTL:     resetTTL,
		OTPLimitEnabled: file.OTP.Limit.Enabled || os.Getenv("OTP_LIMIT_ENABLED") == "true",
		OTPLimitMax:     limitMax,
		OTPLimitWindow:  limitWindow,
		SMTPHost:        env("SMTP_HOST", file.SMTP.Host),
		SMTPPort:        env("SMTP_PORT", defaultString(file.SMTP.Port, "587")),
		SMTPUsername:    env("SMTP_USER", file.SMTP.Username),
		SMTPPassword:    env("SMTP_PASSWORD", file.SMTP.Password),
		SMTPSender:      env("SMTP_SENDER", file.SMTP.Sender),
		AllowedOrigins:  origins,
	}, nil
}

func parseDuration(s string, def time.Duration) (time.Duration, error) {
	if s == "" {
		return def, nil
	}
	return time.ParseDuration(s)
}

func defaultString(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
