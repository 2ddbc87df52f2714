package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Piyushpg25/Authentication-system/domain"
	"github.com/Piyushpg25/Authentication-system/internal/infrastructure/auth"
	"github.com/Piyushpg25/Authentication-system/internal/mocks"
)

func newAuthServiceForTest() (domain.AuthService, *mocks.MockUserRepository, *mocks.MockPasswordService, *mocks.MockTokenService, *mocks.MockOTPService, *mocks.MockMailer) {
	userRepo := mocks.NewMockUserRepository()
	passwordSvc := mocks.NewMockPasswordService()
	tokenSvc := mocks.NewMockTokenService()
	otpSvc := mocks.NewMockOTPService()
	mailer := mocks.NewMockMailer()
	svc := NewAuthService(userRepo, passwordSvc, tokenSvc, otpSvc, mailer)
	return svc, userRepo, passwordSvc, tokenSvc, otpSvc, mailer
}

func TestAuthServiceImpl_Register(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc, userRepo, _, _, _, mailer := newAuthServiceForTest()

		userRepo.CreateFunc = func(ctx context.Context, user *domain.User) error {
			user.ID = "new-id"
			return nil
		}

		welcomed := make(chan string, 1)
		mailer.SendFunc = func(to, subject, htmlBody string) error {
			welcomed <- to
			return nil
		}

		result, err := svc.Register(context.Background(), "A", "a@x.com", "secret1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.User.ID != "new-id" {
			t.Errorf("expected repository-assigned ID, got %q", result.User.ID)
		}
		if result.User.IsVerified {
			t.Error("new accounts start unverified")
		}
		if result.User.VerifyOTP != "" || result.User.ResetOTP != "" {
			t.Error("new accounts start with no OTP challenge")
		}
		if result.User.PasswordHash == "secret1" || result.User.PasswordHash == "" {
			t.Error("password must be stored as a digest")
		}
		if result.Token != "token:new-id" {
			t.Errorf("expected a session token for the new ID, got %q", result.Token)
		}

		select {
		case to := <-welcomed:
			if to != "a@x.com" {
				t.Errorf("welcome mail sent to %q", to)
			}
		case <-time.After(2 * time.Second):
			t.Error("welcome mail was never attempted")
		}
	})

	t.Run("duplicate email found by lookup", func(t *testing.T) {
		svc, userRepo, _, _, _, _ := newAuthServiceForTest()
		userRepo.FindByEmailFunc = func(ctx context.Context, email string) (*domain.User, error) {
			return &domain.User{ID: "existing", Email: email}, nil
		}

		_, err := svc.Register(context.Background(), "A", "a@x.com", "secret1")
		if !errors.Is(err, domain.ErrUserAlreadyExists) {
			t.Fatalf("expected ErrUserAlreadyExists, got %v", err)
		}
	})

	t.Run("duplicate email raced into the store", func(t *testing.T) {
		svc, userRepo, _, _, _, _ := newAuthServiceForTest()
		userRepo.CreateFunc = func(ctx context.Context, user *domain.User) error {
			return domain.ErrUserAlreadyExists
		}

		_, err := svc.Register(context.Background(), "A", "a@x.com", "secret1")
		if !errors.Is(err, domain.ErrUserAlreadyExists) {
			t.Fatalf("expected ErrUserAlreadyExists, got %v", err)
		}
	})

	t.Run("welcome mail failure does not fail registration", func(t *testing.T) {
		svc, userRepo, _, _, _, mailer := newAuthServiceForTest()
		userRepo.CreateFunc = func(ctx context.Context, user *domain.User) error {
			user.ID = "new-id"
			return nil
		}

		attempted := make(chan struct{}, 1)
		mailer.SendFunc = func(to, subject, htmlBody string) error {
			attempted <- struct{}{}
			return errors.New("smtp down")
		}

		_, err := svc.Register(context.Background(), "A", "a@x.com", "secret1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		select {
		case <-attempted:
		case <-time.After(2 * time.Second):
			t.Error("welcome mail was never attempted")
		}
	})
}

func TestAuthServiceImpl_Login(t *testing.T) {
	stored := &domain.User{ID: "u1", Email: "a@x.com", PasswordHash: "hashed:secret1"}

	tests := []struct {
		name          string
		email         string
		password      string
		findResult    *domain.User
		findErr       error
		expectedError error
	}{
		{
			name:       "success",
			email:      "a@x.com",
			password:   "secret1",
			findResult: stored,
		},
		{
			name:          "unknown email",
			email:         "b@x.com",
			password:      "secret1",
			findErr:       domain.ErrUserNotFound,
			expectedError: domain.ErrInvalidCredentials,
		},
		{
			name:          "wrong password",
			email:         "a@x.com",
			password:      "wrong",
			findResult:    stored,
			expectedError: domain.ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, userRepo, _, _, _, _ := newAuthServiceForTest()
			userRepo.FindByEmailFunc = func(ctx context.Context, email string) (*domain.User, error) {
				if tt.findErr != nil {
					return nil, tt.findErr
				}
				return tt.findResult, nil
			}

			result, err := svc.Login(context.Background(), tt.email, tt.password)
			if tt.expectedError != nil {
				if !errors.Is(err, tt.expectedError) {
					t.Fatalf("expected %v, got %v", tt.expectedError, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if result.Token != "token:u1" {
				t.Errorf("expected session token for u1, got %q", result.Token)
			}
		})
	}
}

func TestAuthServiceImpl_Login_HashesOnUnknownEmail(t *testing.T) {
	svc, userRepo, passwordSvc, _, _, _ := newAuthServiceForTest()
	userRepo.FindByEmailFunc = func(ctx context.Context, email string) (*domain.User, error) {
		return nil, domain.ErrUserNotFound
	}

	verified := 0
	passwordSvc.VerifyFunc = func(hashedPassword, password string) bool {
		verified++
		return false
	}

	_, err := svc.Login(context.Background(), "ghost@x.com", "whatever")
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	// Both failure paths must run the digest comparison.
	if verified != 1 {
		t.Errorf("expected 1 digest comparison on the miss path, got %d", verified)
	}
}

func TestAuthServiceImpl_VerifyAccount(t *testing.T) {
	t.Run("validate then consume", func(t *testing.T) {
		svc, userRepo, _, _, otpSvc, _ := newAuthServiceForTest()
		user := &domain.User{ID: "u1", Email: "a@x.com", VerifyOTP: "123456"}
		userRepo.FindByIDFunc = func(ctx context.Context, id string) (*domain.User, error) {
			return user, nil
		}

		var calls []string
		otpSvc.ValidateFunc = func(u *domain.User, purpose domain.OTPPurpose, code string) error {
			calls = append(calls, "validate:"+string(purpose)+":"+code)
			return nil
		}
		otpSvc.ConsumeFunc = func(ctx context.Context, u *domain.User, purpose domain.OTPPurpose) error {
			calls = append(calls, "consume:"+string(purpose))
			return nil
		}

		if err := svc.VerifyAccount(context.Background(), "u1", "123456"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(calls) != 2 || calls[0] != "validate:verify:123456" || calls[1] != "consume:verify" {
			t.Errorf("unexpected call sequence: %v", calls)
		}
	})

	t.Run("failed validation skips consume", func(t *testing.T) {
		svc, userRepo, _, _, otpSvc, _ := newAuthServiceForTest()
		userRepo.FindByIDFunc = func(ctx context.Context, id string) (*domain.User, error) {
			return &domain.User{ID: "u1"}, nil
		}
		otpSvc.ValidateFunc = func(u *domain.User, purpose domain.OTPPurpose, code string) error {
			return domain.ErrOTPInvalid
		}
		consumed := false
		otpSvc.ConsumeFunc = func(ctx context.Context, u *domain.User, purpose domain.OTPPurpose) error {
			consumed = true
			return nil
		}

		err := svc.VerifyAccount(context.Background(), "u1", "000000")
		if !errors.Is(err, domain.ErrOTPInvalid) {
			t.Fatalf("expected ErrOTPInvalid, got %v", err)
		}
		if consumed {
			t.Error("an invalid code must not be consumed")
		}
	})

	t.Run("unknown user", func(t *testing.T) {
		svc, _, _, _, _, _ := newAuthServiceForTest()
		err := svc.VerifyAccount(context.Background(), "missing", "123456")
		if !errors.Is(err, domain.ErrUserNotFound) {
			t.Fatalf("expected ErrUserNotFound, got %v", err)
		}
	})
}

func TestAuthServiceImpl_VerifyResetOTP_DoesNotConsume(t *testing.T) {
	svc, userRepo, _, _, otpSvc, _ := newAuthServiceForTest()
	userRepo.FindByEmailFunc = func(ctx context.Context, email string) (*domain.User, error) {
		return &domain.User{ID: "u1", Email: email}, nil
	}
	consumed := false
	otpSvc.ConsumeFunc = func(ctx context.Context, u *domain.User, purpose domain.OTPPurpose) error {
		consumed = true
		return nil
	}

	if err := svc.VerifyResetOTP(context.Background(), "a@x.com", "123456"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if consumed {
		t.Error("the pre-check must leave the challenge active")
	}
}

// statefulUserRepo backs the service stack with a single in-memory record
// so the reset flow can be exercised end to end.
func statefulUserRepo(user *domain.User) *mocks.MockUserRepository {
	repo := mocks.NewMockUserRepository()
	repo.FindByEmailFunc = func(ctx context.Context, email string) (*domain.User, error) {
		if user != nil && user.Email == email {
			snapshot := *user
			return &snapshot, nil
		}
		return nil, domain.ErrUserNotFound
	}
	repo.FindByIDFunc = func(ctx context.Context, id string) (*domain.User, error) {
		if user != nil && user.ID == id {
			snapshot := *user
			return &snapshot, nil
		}
		return nil, domain.ErrUserNotFound
	}
	repo.UpdateFunc = func(ctx context.Context, u *domain.User) error {
		*user = *u
		return nil
	}
	return repo
}

func TestPasswordResetFlow(t *testing.T) {
	passwordSvc := auth.NewPasswordService()
	oldHash, err := passwordSvc.Hash("oldpass1")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}

	user := &domain.User{ID: "u1", Email: "a@x.com", PasswordHash: oldHash, IsVerified: true}
	userRepo := statefulUserRepo(user)
	mailer := mocks.NewMockMailer()
	tokenSvc := mocks.NewMockTokenService()
	otpSvc := NewOTPService(userRepo, mailer, nil, OTPConfig{
		VerifyTTL: 24 * time.Hour,
		ResetTTL:  15 * time.Minute,
	})
	svc := NewAuthService(userRepo, passwordSvc, tokenSvc, otpSvc, mailer)

	ctx := context.Background()

	if err := svc.SendResetOTP(ctx, "a@x.com"); err != nil {
		t.Fatalf("send-reset-otp: %v", err)
	}
	code := user.ResetOTP
	if !isSixDigits(code) {
		t.Fatalf("expected a stored 6-digit reset code, got %q", code)
	}

	if err := svc.VerifyResetOTP(ctx, "a@x.com", code); err != nil {
		t.Fatalf("verify-reset-otp: %v", err)
	}
	if user.ResetOTP != code {
		t.Fatal("pre-check consumed the challenge")
	}

	if err := svc.ResetPassword(ctx, "a@x.com", code, "newpass1"); err != nil {
		t.Fatalf("reset-password: %v", err)
	}
	if user.ResetOTP != "" || user.ResetOTPExpiresAt != 0 {
		t.Error("reset challenge must be consumed")
	}

	if _, err := svc.Login(ctx, "a@x.com", "newpass1"); err != nil {
		t.Errorf("login with the new password failed: %v", err)
	}
	if _, err := svc.Login(ctx, "a@x.com", "oldpass1"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Errorf("login with the old password must fail, got %v", err)
	}

	// The same code cannot reset twice.
	if err := svc.ResetPassword(ctx, "a@x.com", code, "thirdpass"); !errors.Is(err, domain.ErrOTPInvalid) {
		t.Errorf("consumed code must be invalid, got %v", err)
	}
}

func TestVerifyAccountFlow(t *testing.T) {
	user := &domain.User{ID: "u1", Email: "a@x.com", PasswordHash: "hashed:x"}
	userRepo := statefulUserRepo(user)
	mailer := mocks.NewMockMailer()
	otpSvc := NewOTPService(userRepo, mailer, nil, OTPConfig{
		VerifyTTL: 24 * time.Hour,
		ResetTTL:  15 * time.Minute,
	})
	svc := NewAuthService(userRepo, mocks.NewMockPasswordService(), mocks.NewMockTokenService(), otpSvc, mailer)

	ctx := context.Background()

	if err := svc.SendVerifyOTP(ctx, "u1"); err != nil {
		t.Fatalf("send-verify-otp: %v", err)
	}
	code := user.VerifyOTP

	// Wrong 6-digit code.
	wrong := "000000"
	if wrong == code {
		wrong = "000001"
	}
	if err := svc.VerifyAccount(ctx, "u1", wrong); !errors.Is(err, domain.ErrOTPInvalid) {
		t.Fatalf("expected ErrOTPInvalid for a wrong code, got %v", err)
	}
	if user.IsVerified {
		t.Fatal("wrong code must not verify the account")
	}

	if err := svc.VerifyAccount(ctx, "u1", code); err != nil {
		t.Fatalf("verify-account: %v", err)
	}
	if !user.IsVerified {
		t.Error("account must be verified after a successful consume")
	}
	if user.VerifyOTP != "" || user.VerifyOTPExpiresAt != 0 {
		t.Error("verify challenge must be consumed")
	}

	// Re-issuing for a verified account is refused.
	if err := svc.SendVerifyOTP(ctx, "u1"); !errors.Is(err, domain.ErrAlreadyVerified) {
		t.Errorf("expected ErrAlreadyVerified, got %v", err)
	}
}

func TestVerifyAccount_ExpiredCode(t *testing.T) {
	user := &domain.User{
		ID:                 "u1",
		Email:              "a@x.com",
		VerifyOTP:          "123456",
		VerifyOTPExpiresAt: time.Now().Add(-time.Minute).UnixMilli(),
	}
	userRepo := statefulUserRepo(user)
	otpSvc := NewOTPService(userRepo, mocks.NewMockMailer(), nil, OTPConfig{
		VerifyTTL: 24 * time.Hour,
		ResetTTL:  15 * time.Minute,
	})
	svc := NewAuthService(userRepo, mocks.NewMockPasswordService(), mocks.NewMockTokenService(), otpSvc, mocks.NewMockMailer())

	err := svc.VerifyAccount(context.Background(), "u1", "123456")
	if !errors.Is(err, domain.ErrOTPExpired) {
		t.Fatalf("expected ErrOTPExpired, got %v", err)
	}
	if user.IsVerified {
		t.Error("an expired code must not verify the account")
	}
}
