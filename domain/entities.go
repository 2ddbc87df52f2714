package domain

import "time"

// OTPPurpose selects which challenge on a user record a one-time code
// belongs to.
type OTPPurpose string

const (
	// OTPPurposeVerify is the email-verification challenge.
	OTPPurposeVerify OTPPurpose = "verify"
	// OTPPurposeReset is the password-reset challenge.
	OTPPurposeReset OTPPurpose = "reset"
)

// User represents an account in the system. OTP expiry timestamps are epoch
// milliseconds; zero means no active challenge.
type User struct {
	ID                 string
	Name               string
	Email              string
	PasswordHash       string
	IsVerified         bool
	VerifyOTP          string
	VerifyOTPExpiresAt int64
	ResetOTP           string
	ResetOTPExpiresAt  int64
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// Challenge returns the stored code and expiry for the given purpose.
func (u *User) Challenge(purpose OTPPurpose) (code string, expiresAt int64) {
	if purpose == OTPPurposeReset {
		return u.ResetOTP, u.ResetOTPExpiresAt
	}
	return u.VerifyOTP, u.VerifyOTPExpiresAt
}

// SetChallenge stores a code and expiry for the given purpose, replacing
// any challenge already active for that purpose.
func (u *User) SetChallenge(purpose OTPPurpose, code string, expiresAt int64) {
	if purpose == OTPPurposeReset {
		u.ResetOTP = code
		u.ResetOTPExpiresAt = expiresAt
		return
	}
	u.VerifyOTP = code
	u.VerifyOTPExpiresAt = expiresAt
}

// ClearChallenge removes the challenge for the given purpose.
func (u *User) ClearChallenge(purpose OTPPurpose) {
	u.SetChallenge(purpose, "", 0)
}

// HasActiveChallenge reports whether a non-empty, unexpired code is stored
// for the given purpose at the given time.
func (u *User) HasActiveChallenge(purpose OTPPurpose, now time.Time) bool {
	code, expiresAt := u.Challenge(purpose)
	return code != "" && expiresAt > now.UnixMilli()
}

// AuthResult represents a successful authentication outcome.
type AuthResult struct {
	User  *User
	Token string
}
