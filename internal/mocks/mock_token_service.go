package mocks

import "github.com/Piyushpg25/Authentication-system/domain"

// MockTokenService implements domain.TokenService for testing
type MockTokenService struct {
	GenerateFunc func(userID string) (string, error)
	ValidateFunc func(token string) (string, error)
}

// NewMockTokenService creates a new MockTokenService with default behaviors
func NewMockTokenService() *MockTokenService {
	return &MockTokenService{}
}

// Generate issues a token for a subject
func (m *MockTokenService) Generate(userID string) (string, error) {
	if m.GenerateFunc != nil {
		return m.GenerateFunc(userID)
	}
	// Default behavior: marker token
	return "token:" + userID, nil
}

// Validate returns the subject carried by a token
func (m *MockTokenService) Validate(token string) (string, error) {
	if m.ValidateFunc != nil {
		return m.ValidateFunc(token)
	}
	// Default behavior: accept marker tokens produced by Generate
	if len(token) > 6 && token[:6] == "token:" {
		return token[6:], nil
	}
	return "", domain.ErrTokenInvalid
}

// Compile-time interface compliance verification
var _ domain.TokenService = (*MockTokenService)(nil)
