// Package setting persists named values the daemon manages itself.
package setting

import (
	"errors"

	"gorm.io/gorm"

	"github.com/navportal/navportal/internal/db/database"
	"github.com/navportal/navportal/internal/db/models"
)

const (
	nameQueryPattern = "name = ?"
)

var (
	// ErrSettingNotFound is returned when a setting is not found.
	ErrSettingNotFound = errors.New("setting not found")
	// ErrSettingNameEmpty is returned when attempting to create/update a setting with an empty name.
	ErrSettingNameEmpty = errors.New("setting name cannot be empty")
	// ErrSettingAlreadyExists is returned when attempting to create a setting that already exists.
	ErrSettingAlreadyExists = errors.New("setting already exists")
	// ErrDBNil is returned when the database connection is nil.
	ErrDBNil = errors.New("database connection is nil")
)

func check(db *gorm.DB, name string) error {
	if db == nil {
		return ErrDBNil
	}

	if name == "" {
		return ErrSettingNameEmpty
	}

	return nil
}

// Get retrieves a setting by its name.
func Get(db *gorm.DB, name string) (*models.Setting, error) {
	if err := check(db, name); err != nil {
		return nil, err
	}

	var s models.Setting
	if err := db.Where(nameQueryPattern, name).First(&s).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSettingNotFound
		}

		return nil, err
	}

	return &s, nil
}

// Create stores a new setting. The unique name index decides concurrent creates.
func Create(db *gorm.DB, name string, value []byte) (*models.Setting, error) {
	if err := check(db, name); err != nil {
		return nil, err
	}

	s := &models.Setting{Name: name, Value: value}
	if err := db.Create(s).Error; err != nil {
		if database.IsDuplicateKey(err) {
			return nil, ErrSettingAlreadyExists
		}

		return nil, err
	}

	return s, nil
}

// GetOrCreate returns the stored setting, creating it with value when absent.
// When another writer creates it first, the stored value wins.
func GetOrCreate(db *gorm.DB, name string, value []byte) (*models.Setting, error) {
	s, err := Get(db, name)
	if !errors.Is(err, ErrSettingNotFound) {
		return s, err
	}

	s, err = Create(db, name, value)
	if errors.Is(err, ErrSettingAlreadyExists) {
		return Get(db, name)
	}

	return s, err
}

// Set creates or updates a setting by name.
func Set(db *gorm.DB, name string, value []byte) (*models.Setting, error) {
	s, err := Get(db, name)
	if errors.Is(err, ErrSettingNotFound) {
		return Create(db, name, value)
	}

	if err != nil {
		return nil, err
	}

	s.Value = value
	if err = db.Save(s).Error; err != nil {
		return nil, err
	}

	return s, nil
}
