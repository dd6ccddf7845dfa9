package auth

import "errors"

var (
	// ErrTokenMissing is returned when a request carries no bearer token.
	ErrTokenMissing = errors.New("bearer token missing")

	// ErrTokenExpired is returned for a well formed token past its expiry.
	ErrTokenExpired = errors.New("token expired")

	// ErrTokenInvalid is returned for a token that can not be parsed or verified.
	ErrTokenInvalid = errors.New("token invalid")

	// ErrSecretEmpty is returned when tokens are created without signing secret.
	ErrSecretEmpty = errors.New("token secret is empty")
)

const (
	msgPasswordPolicy      = "password must be at least %d characters and contain upper case and lower case letters and digits"
	msgEmailDomain         = "email must end with %s"
	msgUsernameTaken       = "username is already registered"
	msgEmailTaken          = "email is already registered"
	msgAccountTaken        = "username or email is already registered"
	msgInvalidVerification = "invalid verification link"
	msgNoPendingAccount    = "no pending registration for this email"
	msgInvalidCredentials  = "invalid username or password"
	msgVerifyEmailFirst    = "verify email first"
	msgAuthRequired        = "authentication required"
	msgSessionExpired      = "session expired, please log in again"
	msgInvalidToken        = "invalid token"
	msgAdminRequired       = "admin privileges required"
	msgSendFailed          = "failed to send verification message"
	msgStoreFailed         = "failed to access accounts"
	msgRequired            = "%s is required"
)
