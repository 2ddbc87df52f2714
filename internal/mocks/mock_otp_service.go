package mocks

import (
	"context"

	"github.com/Piyushpg25/Authentication-system/domain"
)

// MockOTPService implements domain.OTPService for testing
type MockOTPService struct {
	IssueFunc    func(ctx context.Context, user *domain.User, purpose domain.OTPPurpose) error
	ValidateFunc func(user *domain.User, purpose domain.OTPPurpose, code string) error
	ConsumeFunc  func(ctx context.Context, user *domain.User, purpose domain.OTPPurpose) error
}

// NewMockOTPService creates a new MockOTPService with default behaviors
func NewMockOTPService() *MockOTPService {
	return &MockOTPService{}
}

// Issue issues a challenge
func (m *MockOTPService) Issue(ctx context.Context, user *domain.User, purpose domain.OTPPurpose) error {
	if m.IssueFunc != nil {
		return m.IssueFunc(ctx, user, purpose)
	}
	// Default behavior: success
	return nil
}

// Validate checks a submitted code
func (m *MockOTPService) Validate(user *domain.User, purpose domain.OTPPurpose, code string) error {
	if m.ValidateFunc != nil {
		return m.ValidateFunc(user, purpose, code)
	}
	// Default behavior: success
	return nil
}

// Consume clears the challenge
func (m *MockOTPService) Consume(ctx context.Context, user *domain.User, purpose domain.OTPPurpose) error {
	if m.ConsumeFunc != nil {
		return m.ConsumeFunc(ctx, user, purpose)
	}
	// Default behavior: success
	return nil
}

// Compile-time interface compliance verification
var _ domain.OTPService = (*MockOTPService)(nil)
