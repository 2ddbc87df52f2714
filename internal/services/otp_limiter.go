package services

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/Piyushpg25/Authentication-system/domain"
)

// RedisOTPLimiter bounds OTP issuance per (email, purpose) with a fixed
// window counter: INCR, EXPIRE on the first hit, reject past the
// threshold.
type RedisOTPLimiter struct {
	client *redis.Client
	max    int
	window time.Duration
}

// NewRedisOTPLimiter creates a new limiter.
func NewRedisOTPLimiter(client *redis.Client, max int, window time.Duration) *RedisOTPLimiter {
	return &RedisOTPLimiter{
		client: client,
		max:    max,
		window: window,
	}
}

// Allow implements domain.OTPLimiter
func (l *RedisOTPLimiter) Allow(ctx context.Context, email string, purpose domain.OTPPurpose) error {
	key := "otp:req:" + string(purpose) + ":" + email

	count, err := l.client.Incr(ctx, key).Result()
	if err != nil {
		return fmt.Errorf("otp limiter unavailable: %w", err)
	}

	if count == 1 {
		if err := l.client.Expire(ctx, key, l.window).Err(); err != nil {
			return fmt.Errorf("otp limiter unavailable: %w", err)
		}
	}

	if count > int64(l.max) {
		return domain.ErrOTPRateLimited
	}

	return nil
}

var _ domain.OTPLimiter = (*RedisOTPLimiter)(nil)
