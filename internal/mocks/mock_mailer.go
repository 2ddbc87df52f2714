package mocks

import "github.com/Piyushpg25/Authentication-system/domain"

// MockMailer implements domain.Mailer for testing
type MockMailer struct {
	SendFunc func(to, subject, htmlBody string) error

	// Sent records every delivery attempt for assertions.
	Sent []SentMail
}

// SentMail is one recorded delivery attempt.
type SentMail struct {
	To      string
	Subject string
	Body    string
}

// NewMockMailer creates a new MockMailer with default behaviors
func NewMockMailer() *MockMailer {
	return &MockMailer{}
}

// Send records the message and delegates to SendFunc when set.
func (m *MockMailer) Send(to, subject, htmlBody string) error {
	m.Sent = append(m.Sent, SentMail{To: to, Subject: subject, Body: htmlBody})
	if m.SendFunc != nil {
		return m.SendFunc(to, subject, htmlBody)
	}
	// Default behavior: success (no actual email sent in tests)
	return nil
}

// Compile-time interface compliance verification
var _ domain.Mailer = (*MockMailer)(nil)
