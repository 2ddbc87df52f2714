package domain

import "context"

// UserRepository defines user data access operations
type UserRepository interface {
	Create(ctx context.Context, user *User) error
	FindByEmail(ctx context.Context, email string) (*User, error)
	FindByID(ctx context.Context, id string) (*User, error)
	Update(ctx context.Context, user *User) error
}

// AuthService defines authentication business logic
type AuthService interface {
	Register(ctx context.Context, name, email, password string) (*AuthResult, error)
	Login(ctx context.Context, email, password string) (*AuthResult, error)
	SendVerifyOTP(ctx context.Context, userID string) error
	VerifyAccount(ctx context.Context, userID, code string) error
	SendResetOTP(ctx context.Context, email string) error
	VerifyResetOTP(ctx context.Context, email, code string) error
	ResetPassword(ctx context.Context, email, code, newPassword string) error
	GetProfile(ctx context.Context, userID string) (*User, error)
}

// OTPService manages the lifecycle of one-time codes bound to a user and
// a purpose.
type OTPService interface {
	// Issue generates a fresh code, persists it on the user record and
	// delivers it by email.
	Issue(ctx context.Context, user *User, purpose OTPPurpose) error
	// Validate checks a submitted code against the stored challenge. It
	// never mutates the record; clearing is Consume's job.
	Validate(user *User, purpose OTPPurpose, code string) error
	// Consume clears the challenge and applies the purpose's side effect
	// (marking the account verified). Call only after a successful Validate.
	Consume(ctx context.Context, user *User, purpose OTPPurpose) error
}

// OTPLimiter bounds how often codes may be issued for an address.
type OTPLimiter interface {
	Allow(ctx context.Context, email string, purpose OTPPurpose) error
}

// PasswordService defines password operations
type PasswordService interface {
	Hash(password string) (string, error)
	Verify(hashedPassword, password string) bool
}

// TokenService defines session token operations
type TokenService interface {
	Generate(userID string) (string, error)
	// Validate returns the subject user ID carried by a valid token.
	Validate(token string) (string, error)
}

// Mailer delivers a formatted message to an address.
type Mailer interface {
	Send(to, subject, htmlBody string) error
}
