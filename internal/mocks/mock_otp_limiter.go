package mocks

import (
	"context"

	"github.com/Piyushpg25/Authentication-system/domain"
)

// MockOTPLimiter implements domain.OTPLimiter for testing
type MockOTPLimiter struct {
	AllowFunc func(ctx context.Context, email string, purpose domain.OTPPurpose) error
}

// NewMockOTPLimiter creates a new MockOTPLimiter with default behaviors
func NewMockOTPLimiter() *MockOTPLimiter {
	return &MockOTPLimiter{}
}

// Allow checks the issuance allowance for an address
func (m *MockOTPLimiter) Allow(ctx context.Context, email string, purpose domain.OTPPurpose) error {
	if m.AllowFunc != nil {
		return m.AllowFunc(ctx, email, purpose)
	}
	// Default behavior: never throttled
	return nil
}

// Compile-time interface compliance verification
var _ domain.OTPLimiter = (*MockOTPLimiter)(nil)
