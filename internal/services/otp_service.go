package services

import (
	"context"
	"crypto/rand"
	"fmt"
	"log/slog"
	"math/big"
	"strconv"
	"time"

	"github.com/Piyushpg25/Authentication-system/domain"
	"github.com/Piyushpg25/Authentication-system/internal/infrastructure/notifications"
)

// OTPConfig carries the per-purpose challenge lifetimes.
type OTPConfig struct {
	VerifyTTL time.Duration
	ResetTTL  time.Duration
}

// OTPServiceImpl implements domain.OTPService. Challenge state lives on
// the user document itself; a re-issue overwrites whatever was active.
type OTPServiceImpl struct {
	userRepo domain.UserRepository
	mailer   domain.Mailer
	limiter  domain.OTPLimiter
	config   OTPConfig
}

// NewOTPService creates a new OTP service. limiter may be nil, in which
// case issuance is unthrottled.
func NewOTPService(userRepo domain.UserRepository, mailer domain.Mailer, limiter domain.OTPLimiter, config OTPConfig) domain.OTPService {
	return &OTPServiceImpl{
		userRepo: userRepo,
		mailer:   mailer,
		limiter:  limiter,
		config:   config,
	}
}

// Issue implements domain.OTPService. The challenge is persisted first and
// then mailed; if delivery fails the challenge is cleared again
// best-effort and a delivery error is returned.
func (s *OTPServiceImpl) Issue(ctx context.Context, user *domain.User, purpose domain.OTPPurpose) error {
	if purpose == domain.OTPPurposeVerify && user.IsVerified {
		return domain.ErrAlreadyVerified
	}

	if s.limiter != nil {
		if err := s.limiter.Allow(ctx, user.Email, purpose); err != nil {
			return err
		}
	}

	code, err := generateCode()
	if err != nil {
		return fmt.Errorf("failed to generate otp code: %w", err)
	}

	expiresAt := time.Now().Add(s.ttlFor(purpose)).UnixMilli()
	user.SetChallenge(purpose, code, expiresAt)

	if err := s.userRepo.Update(ctx, user); err != nil {
		return fmt.Errorf("failed to store otp: %w", err)
	}

	subject, body := s.mailFor(purpose, code, user.Email)
	if err := s.mailer.Send(user.Email, subject, body); err != nil {
		// Undo the persisted challenge so a code nobody received cannot
		// stay active.
		user.ClearChallenge(purpose)
		if cerr := s.userRepo.Update(ctx, user); cerr != nil {
			slog.Error("failed to clear otp after delivery failure",
				"email", user.Email, "purpose", string(purpose), "error", cerr)
		}
		return fmt.Errorf("failed to send otp email: %w", err)
	}

	return nil
}

// Validate implements domain.OTPService. Exact string equality, no
// normalization; an empty stored code never matches.
func (s *OTPServiceImpl) Validate(user *domain.User, purpose domain.OTPPurpose, code string) error {
	stored, expiresAt := user.Challenge(purpose)
	if stored == "" || stored != code {
		return domain.ErrOTPInvalid
	}
	if expiresAt <= time.Now().UnixMilli() {
		return domain.ErrOTPExpired
	}
	return nil
}

// Consume implements domain.OTPService
func (s *OTPServiceImpl) Consume(ctx context.Context, user *domain.User, purpose domain.OTPPurpose) error {
	user.ClearChallenge(purpose)
	if purpose == domain.OTPPurposeVerify {
		user.IsVerified = true
	}
	if err := s.userRepo.Update(ctx, user); err != nil {
		return fmt.Errorf("failed to consume otp: %w", err)
	}
	return nil
}

func (s *OTPServiceImpl) ttlFor(purpose domain.OTPPurpose) time.Duration {
	if purpose == domain.OTPPurposeReset {
		return s.config.ResetTTL
	}
	return s.config.VerifyTTL
}

func (s *OTPServiceImpl) mailFor(purpose domain.OTPPurpose, code, email string) (subject, body string) {
	if purpose == domain.OTPPurposeReset {
		return notifications.ResetOTPEmail(code, email)
	}
	return notifications.VerifyOTPEmail(code, email)
}

// generateCode draws a uniform random integer in [100000, 999999], so the
// code is always exactly six decimal digits.
func generateCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return "", err
	}
	return strconv.FormatInt(n.Int64()+100000, 10), nil
}
