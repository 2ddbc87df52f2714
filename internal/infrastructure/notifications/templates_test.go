package notifications

import (
	"strings"
	"testing"
)

func TestVerifyOTPEmail(t *testing.T) {
	subject, body := VerifyOTPEmail("123456", "a@x.com")

	if subject != "Account Verification OTP" {
		t.Errorf("subject %q", subject)
	}
	if !strings.Contains(body, "123456") {
		t.Error("body must carry the code")
	}
	if !strings.Contains(body, "a@x.com") {
		t.Error("body must carry the recipient address")
	}
	if strings.Contains(body, "{{otp}}") || strings.Contains(body, "{{email}}") {
		t.Error("placeholders left unrendered")
	}
}

func TestResetOTPEmail(t *testing.T) {
	subject, body := ResetOTPEmail("654321", "b@x.com")

	if subject != "Password Reset OTP" {
		t.Errorf("subject %q", subject)
	}
	if !strings.Contains(body, "654321") || !strings.Contains(body, "b@x.com") {
		t.Error("body must carry code and recipient")
	}
}

func TestWelcomeEmail(t *testing.T) {
	subject, body := WelcomeEmail("c@x.com")

	if subject != "Welcome" {
		t.Errorf("subject %q", subject)
	}
	if !strings.Contains(body, "c@x.com") {
		t.Error("body must carry the recipient address")
	}
}
