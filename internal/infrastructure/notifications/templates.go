package notifications

import (
	"fmt"
	"strings"
)

// HTML bodies for OTP mail. {{otp}} and {{email}} are substituted at send
// time; the expiry wording must match the TTLs configured for each purpose.
const emailVerifyTemplate = `<!DOCTYPE html>
<html>
<head>
  <meta charset="UTF-8" />
  <meta name="viewport" content="width=device-width, initial-scale=1.0"/>
  <title>Email Verification</title>
  <style>
    body { margin: 0; padding: 0; background-color: #f2f4f8; font-family: Arial, Helvetica, sans-serif; }
    .wrapper { width: 100%; padding: 40px 0; }
    .card { max-width: 520px; margin: auto; background: #ffffff; border-radius: 14px; overflow: hidden; box-shadow: 0 10px 30px rgba(0,0,0,0.08); }
    .header { background: linear-gradient(135deg, #4f46e5, #22d172); padding: 28px; text-align: center; color: #ffffff; font-size: 22px; font-weight: bold; }
    .content { padding: 32px; color: #333333; font-size: 14px; line-height: 1.7; }
    .email { color: #4f46e5; font-weight: bold; }
    .otp-box { margin: 30px 0; text-align: center; background: #f4f7ff; border: 2px dashed #4f46e5; border-radius: 10px; padding: 18px; font-size: 28px; font-weight: bold; letter-spacing: 6px; color: #4f46e5; }
    .note { font-size: 13px; color: #666; text-align: center; }
    .footer { padding: 18px; background: #f9fafb; font-size: 12px; color: #888; text-align: center; }
  </style>
</head>
<body>
  <div class="wrapper">
    <div class="card">
      <div class="header">Verify Your Email</div>
      <div class="content">
        Hello,<br/><br/>
        You're almost there! Please verify your email address
        <span class="email">{{email}}</span> using the OTP below.
        <div class="otp-box">{{otp}}</div>
        <div class="note">
          This OTP is valid for <strong>24 hours</strong>.
          Please do not share it with anyone.
        </div>
      </div>
      <div class="footer">&copy; 2026 Your App. All rights reserved.</div>
    </div>
  </div>
</body>
</html>`

const passwordResetTemplate = `<!DOCTYPE html>
<html>
<head>
  <meta charset="UTF-8" />
  <meta name="viewport" content="width=device-width, initial-scale=1.0"/>
  <title>Password Reset</title>
  <style>
    body { margin: 0; padding: 0; background-color: #f2f4f8; font-family: Arial, Helvetica, sans-serif; }
    .wrapper { width: 100%; padding: 40px 0; }
    .card { max-width: 520px; margin: auto; background: #ffffff; border-radius: 14px; overflow: hidden; box-shadow: 0 10px 30px rgba(0,0,0,0.08); }
    .header { background: linear-gradient(135deg, #ef4444, #f59e0b); padding: 28px; text-align: center; color: #ffffff; font-size: 22px; font-weight: bold; }
    .content { padding: 32px; color: #333333; font-size: 14px; line-height: 1.7; }
    .email { color: #ef4444; font-weight: bold; }
    .otp-box { margin: 30px 0; text-align: center; background: #fff5f5; border: 2px dashed #ef4444; border-radius: 10px; padding: 18px; font-size: 28px; font-weight: bold; letter-spacing: 6px; color: #ef4444; }
    .note { font-size: 13px; color: #666; text-align: center; }
    .footer { padding: 18px; background: #f9fafb; font-size: 12px; color: #888; text-align: center; }
  </style>
</head>
<body>
  <div class="wrapper">
    <div class="card">
      <div class="header">Reset Your Password</div>
      <div class="content">
        Hello,<br/><br/>
        We received a request to reset the password for
        <span class="email">{{email}}</span>. Use the OTP below to proceed.
        <div class="otp-box">{{otp}}</div>
        <div class="note">
          This OTP is valid for <strong>15 minutes</strong>.
          If you did not request a reset, you can ignore this email.
        </div>
      </div>
      <div class="footer">&copy; 2026 Your App. All rights reserved.</div>
    </div>
  </div>
</body>
</html>`

// VerifyOTPEmail renders the account-verification mail for a code and
// recipient address.
func VerifyOTPEmail(otp, email string) (subject, body string) {
	return "Account Verification OTP", renderOTPTemplate(emailVerifyTemplate, otp, email)
}

// ResetOTPEmail renders the password-reset mail for a code and recipient
// address.
func ResetOTPEmail(otp, email string) (subject, body string) {
	return "Password Reset OTP", renderOTPTemplate(passwordResetTemplate, otp, email)
}

// WelcomeEmail renders the plain-text welcome notification sent after
// registration.
func WelcomeEmail(email string) (subject, body string) {
	return "Welcome", fmt.Sprintf("Welcome! Your account has been created with email id: %s", email)
}

func renderOTPTemplate(tpl, otp, email string) string {
	return strings.NewReplacer("{{otp}}", otp, "{{email}}", email).Replace(tpl)
}
