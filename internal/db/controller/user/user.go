// Package user provides the catalog store operations on portal accounts.
package user

import (
	"errors"

	"gorm.io/gorm"

	"github.com/navportal/navportal/internal/db/database"
	"github.com/navportal/navportal/internal/db/models"
)

var (
	// ErrDBNil is returned when the database connection is nil.
	ErrDBNil = errors.New("database connection is nil")
	// ErrUserNotFound is returned when no user matches the query.
	ErrUserNotFound = errors.New("user not found")
	// ErrDuplicate is returned when username or email is already registered.
	ErrDuplicate = errors.New("username or email already exists")
)

func first(db *gorm.DB, query string, args ...interface{}) (*models.User, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var u models.User
	if err := db.Where(query, args...).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}

		return nil, err
	}

	return &u, nil
}

// GetByID retrieves a user by id.
func GetByID(db *gorm.DB, id uint64) (*models.User, error) {
	return first(db, "id = ?", id)
}

// GetByUsername retrieves a user by username.
func GetByUsername(db *gorm.DB, username string) (*models.User, error) {
	return first(db, "username = ?", username)
}

// GetByLogin retrieves the user whose username or email equals login.
// Usernames win over emails when both match different accounts.
func GetByLogin(db *gorm.DB, login string) (*models.User, error) {
	u, err := first(db, "username = ?", login)
	if !errors.Is(err, ErrUserNotFound) {
		return u, err
	}

	return first(db, "email = ?", login)
}

// GetByVerificationToken retrieves the user holding token.
func GetByVerificationToken(db *gorm.DB, token string) (*models.User, error) {
	if token == "" {
		return nil, ErrUserNotFound
	}

	return first(db, "verification_token = ?", token)
}

// GetPendingByEmail retrieves the inactive user registered with email.
func GetPendingByEmail(db *gorm.DB, email string) (*models.User, error) {
	return first(db, "email = ? AND is_active = ?", email, false)
}

// UsernameExists reports whether username is registered.
func UsernameExists(db *gorm.DB, username string) (bool, error) {
	return exists(db, "username = ?", username)
}

// EmailExists reports whether email is registered.
func EmailExists(db *gorm.DB, email string) (bool, error) {
	return exists(db, "email = ?", email)
}

func exists(db *gorm.DB, query string, args ...interface{}) (bool, error) {
	if db == nil {
		return false, ErrDBNil
	}

	var count int64
	if err := db.Model(&models.User{}).Where(query, args...).Count(&count).Error; err != nil {
		return false, err
	}

	return count > 0, nil
}

// Create stores a new user.
func Create(db *gorm.DB, u *models.User) error {
	if db == nil {
		return ErrDBNil
	}

	if err := db.Create(u).Error; err != nil {
		if database.IsDuplicateKey(err) {
			return ErrDuplicate
		}

		return err
	}

	return nil
}

// Activate marks user id as verified and clears its verification token.
// Only a user still holding token is activated, so a token works once.
func Activate(db *gorm.DB, id uint64, token string) error {
	if db == nil {
		return ErrDBNil
	}

	result := db.Model(&models.User{}).
		Where("id = ? AND verification_token = ?", id, token).
		Updates(map[string]interface{}{
			"is_active":          true,
			"verification_token": nil,
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return ErrUserNotFound
	}

	return nil
}

// SetVerificationToken replaces the pending verification token of user id.
func SetVerificationToken(db *gorm.DB, id uint64, token string) error {
	if db == nil {
		return ErrDBNil
	}

	result := db.Model(&models.User{}).Where("id = ?", id).Update("verification_token", token)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return ErrUserNotFound
	}

	return nil
}

// HasUsername reports whether user id exists and carries username.
func HasUsername(db *gorm.DB, id uint64, username string) (bool, error) {
	return exists(db, "id = ? AND username = ?", id, username)
}
