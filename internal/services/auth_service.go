package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/Piyushpg25/Authentication-system/domain"
	"github.com/Piyushpg25/Authentication-system/internal/infrastructure/notifications"
)

// dummyDigest is compared when the email lookup misses so that unknown
// emails and wrong passwords take the same code path through bcrypt.
const dummyDigest = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// AuthServiceImpl implements domain.AuthService
type AuthServiceImpl struct {
	userRepo    domain.UserRepository
	passwordSvc domain.PasswordService
	tokenSvc    domain.TokenService
	otpSvc      domain.OTPService
	mailer      domain.Mailer
}

// NewAuthService creates a new auth service
func NewAuthService(
	userRepo domain.UserRepository,
	passwordSvc domain.PasswordService,
	tokenSvc domain.TokenService,
	otpSvc domain.OTPService,
	mailer domain.Mailer,
) domain.AuthService {
	return &AuthServiceImpl{
		userRepo:    userRepo,
		passwordSvc: passwordSvc,
		tokenSvc:    tokenSvc,
		otpSvc:      otpSvc,
		mailer:      mailer,
	}
}

// Register implements domain.AuthService
func (s *AuthServiceImpl) Register(ctx context.Context, name, email, password string) (*domain.AuthResult, error) {
	existing, err := s.userRepo.FindByEmail(ctx, email)
	if err == nil && existing != nil {
		return nil, domain.ErrUserAlreadyExists
	}

	hashed, err := s.passwordSvc.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &domain.User{
		Name:         name,
		Email:        email,
		PasswordHash: hashed,
	}

	// The repository maps the store's duplicate-key error to
	// ErrUserAlreadyExists, which closes the lookup/insert race.
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	token, err := s.tokenSvc.Generate(user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to generate session token: %w", err)
	}

	// Best-effort welcome notification; delivery failure never fails
	// registration.
	go func(addr string) {
		subject, body := notifications.WelcomeEmail(addr)
		if err := s.mailer.Send(addr, subject, body); err != nil {
			slog.Error("welcome email failed", "email", addr, "error", err)
		}
	}(user.Email)

	slog.Info("user registered", "user_id", user.ID, "email", user.Email)

	return &domain.AuthResult{User: user, Token: token}, nil
}

// Login implements domain.AuthService. Unknown email and wrong password
// both fail with ErrInvalidCredentials; nothing distinguishes the two.
func (s *AuthServiceImpl) Login(ctx context.Context, email, password string) (*domain.AuthResult, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		s.passwordSvc.Verify(dummyDigest, password)
		return nil, domain.ErrInvalidCredentials
	}

	if !s.passwordSvc.Verify(user.PasswordHash, password) {
		return nil, domain.ErrInvalidCredentials
	}

	token, err := s.tokenSvc.Generate(user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to generate session token: %w", err)
	}

	return &domain.AuthResult{User: user, Token: token}, nil
}

// SendVerifyOTP implements domain.AuthService
func (s *AuthServiceImpl) SendVerifyOTP(ctx context.Context, userID string) error {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return err
	}
	return s.otpSvc.Issue(ctx, user, domain.OTPPurposeVerify)
}

// VerifyAccount implements domain.AuthService
func (s *AuthServiceImpl) VerifyAccount(ctx context.Context, userID, code string) error {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return err
	}

	if err := s.otpSvc.Validate(user, domain.OTPPurposeVerify, code); err != nil {
		return err
	}
	if err := s.otpSvc.Consume(ctx, user, domain.OTPPurposeVerify); err != nil {
		return err
	}

	slog.Info("account verified", "user_id", user.ID, "email", user.Email)
	return nil
}

// SendResetOTP implements domain.AuthService
func (s *AuthServiceImpl) SendResetOTP(ctx context.Context, email string) error {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return err
	}
	return s.otpSvc.Issue(ctx, user, domain.OTPPurposeReset)
}

// VerifyResetOTP implements domain.AuthService. The challenge stays active
// afterwards; the SPA calls this before showing the new-password form and
// submits the same code again with ResetPassword.
func (s *AuthServiceImpl) VerifyResetOTP(ctx context.Context, email, code string) error {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return err
	}
	return s.otpSvc.Validate(user, domain.OTPPurposeReset, code)
}

// ResetPassword implements domain.AuthService. The digest replacement and
// the challenge consumption persist in a single save.
func (s *AuthServiceImpl) ResetPassword(ctx context.Context, email, code, newPassword string) error {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return err
	}

	if err := s.otpSvc.Validate(user, domain.OTPPurposeReset, code); err != nil {
		return err
	}

	hashed, err := s.passwordSvc.Hash(newPassword)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	user.PasswordHash = hashed

	if err := s.otpSvc.Consume(ctx, user, domain.OTPPurposeReset); err != nil {
		return err
	}

	slog.Info("password reset", "user_id", user.ID, "email", user.Email)
	return nil
}

// GetProfile implements domain.AuthService
func (s *AuthServiceImpl) GetProfile(ctx context.Context, userID string) (*domain.User, error) {
	return s.userRepo.FindByID(ctx, userID)
}
