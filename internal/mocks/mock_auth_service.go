package mocks

import (
	"context"

	"github.com/Piyushpg25/Authentication-system/domain"
)

// MockAuthService implements domain.AuthService for testing
type MockAuthService struct {
	RegisterFunc       func(ctx context.Context, name, email, password string) (*domain.AuthResult, error)
	LoginFunc          func(ctx context.Context, email, password string) (*domain.AuthResult, error)
	SendVerifyOTPFunc  func(ctx context.Context, userID string) error
	VerifyAccountFunc  func(ctx context.Context, userID, code string) error
	SendResetOTPFunc   func(ctx context.Context, email string) error
	VerifyResetOTPFunc func(ctx context.Context, email, code string) error
	ResetPasswordFunc  func(ctx context.Context, email, code, newPassword string) error
	GetProfileFunc     func(ctx context.Context, userID string) (*domain.User, error)
}

// NewMockAuthService creates a new MockAuthService with default behaviors
func NewMockAuthService() *MockAuthService {
	return &MockAuthService{}
}

// Register registers a user
func (m *MockAuthService) Register(ctx context.Context, name, email, password string) (*domain.AuthResult, error) {
	if m.RegisterFunc != nil {
		return m.RegisterFunc(ctx, name, email, password)
	}
	return &domain.AuthResult{
		User:  &domain.User{ID: "mock-id", Name: name, Email: email},
		Token: "token:mock-id",
	}, nil
}

// Login authenticates a user
func (m *MockAuthService) Login(ctx context.Context, email, password string) (*domain.AuthResult, error) {
	if m.LoginFunc != nil {
		return m.LoginFunc(ctx, email, password)
	}
	return &domain.AuthResult{
		User:  &domain.User{ID: "mock-id", Email: email},
		Token: "token:mock-id",
	}, nil
}

// SendVerifyOTP issues a verification challenge
func (m *MockAuthService) SendVerifyOTP(ctx context.Context, userID string) error {
	if m.SendVerifyOTPFunc != nil {
		return m.SendVerifyOTPFunc(ctx, userID)
	}
	return nil
}

// VerifyAccount validates and consumes a verification challenge
func (m *MockAuthService) VerifyAccount(ctx context.Context, userID, code string) error {
	if m.VerifyAccountFunc != nil {
		return m.VerifyAccountFunc(ctx, userID, code)
	}
	return nil
}

// SendResetOTP issues a reset challenge
func (m *MockAuthService) SendResetOTP(ctx context.Context, email string) error {
	if m.SendResetOTPFunc != nil {
		return m.SendResetOTPFunc(ctx, email)
	}
	return nil
}

// VerifyResetOTP validates a reset challenge without consuming it
func (m *MockAuthService) VerifyResetOTP(ctx context.Context, email, code string) error {
	if m.VerifyResetOTPFunc != nil {
		return m.VerifyResetOTPFunc(ctx, email, code)
	}
	return nil
}

// ResetPassword replaces the password after a reset-code check
func (m *MockAuthService) ResetPassword(ctx context.Context, email, code, newPassword string) error {
	if m.ResetPasswordFunc != nil {
		return m.ResetPasswordFunc(ctx, email, code, newPassword)
	}
	return nil
}

// GetProfile returns the user's profile
func (m *MockAuthService) GetProfile(ctx context.Context, userID string) (*domain.User, error) {
	if m.GetProfileFunc != nil {
		return m.GetProfileFunc(ctx, userID)
	}
	return nil, domain.ErrUserNotFound
}

// Compile-time interface compliance verification
var _ domain.AuthService = (*MockAuthService)(nil)
