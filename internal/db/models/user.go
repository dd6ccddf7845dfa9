package models

import (
	"time"

	"github.com/alexedwards/argon2id"
	"github.com/rs/zerolog/log"
)

// User represents a portal account.
// A user is created inactive with a verification token; verifying the email
// activates the account and clears the token.
type User struct {
	// ID is the unique identifier for the user.
	ID uint64 `gorm:"primaryKey" json:"id"`
	// Username is the unique login name.
	Username string `gorm:"uniqueIndex;size:100;not null" json:"username"`
	// Email is the unique, organization scoped email address.
	Email string `gorm:"uniqueIndex;size:255;not null" json:"email"`
	// Password is the Argon2id hash of the password.
	Password string `gorm:"size:255;not null" json:"-"`
	// Active is false until the email address was verified.
	Active bool `gorm:"column:is_active;not null;default:false" json:"is_active"`
	// VerificationToken is the pending single use email token, nil once verified.
	VerificationToken *string `gorm:"uniqueIndex;size:64" json:"-"`
	// CreatedAt is the timestamp when the user was created (managed by GORM).
	CreatedAt time.Time `json:"created_at"`
	// UpdatedAt is the timestamp when the user was last updated (managed by GORM).
	UpdatedAt time.Time `gorm:"column:modified_at" json:"modified_at"`
}

// TableName overrides the table name used by User to `users`.
func (User) TableName() string {
	return "users"
}

// HashPassword hashes a plaintext password using the Argon2id algorithm.
func HashPassword(password string) (string, error) {
	hashedPassword, err := argon2id.CreateHash(password, argon2id.DefaultParams)
	if err != nil {
		return "", err //nolint:wrapcheck
	}

	return hashedPassword, nil
}

// VerifyPassword compares password with the stored hash in constant time.
func (u *User) VerifyPassword(password string) bool {
	match, err := argon2id.ComparePasswordAndHash(password, u.Password)
	if err != nil {
		log.Error().Err(err).Str("username", u.Username).Msg("failed to verify password")
		return false
	}

	return match
}
