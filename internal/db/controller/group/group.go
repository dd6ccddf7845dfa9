// Package group provides the catalog store operations on groups.
package group

import (
	"errors"

	"gorm.io/gorm"

	"github.com/navportal/navportal/internal/db/database"
	"github.com/navportal/navportal/internal/db/models"
)

const (
	idQueryPattern = "id = ?"
	orderBySort    = "sort_order ASC, created_at DESC"
)

var (
	// ErrDBNil is returned when the database connection is nil.
	ErrDBNil = errors.New("database connection is nil")
	// ErrGroupNotFound is returned when no group has the requested id.
	ErrGroupNotFound = errors.New("group not found")
	// ErrGroupIDEmpty is returned when a group is stored without id.
	ErrGroupIDEmpty = errors.New("group id cannot be empty")
	// ErrDuplicate is returned when the id or the sort order is already taken.
	ErrDuplicate = errors.New("group id or sort order already exists")
)

// List returns all groups by sort order, newest first on ties.
func List(db *gorm.DB) ([]models.Group, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	groups := []models.Group{}
	if err := db.Order(orderBySort).Find(&groups).Error; err != nil {
		return nil, err
	}

	return groups, nil
}

// Get retrieves a group by its id.
func Get(db *gorm.DB, id string) (*models.Group, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var g models.Group
	if err := db.Where(idQueryPattern, id).First(&g).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrGroupNotFound
		}

		return nil, err
	}

	return &g, nil
}

// SortOrderTaken reports whether a group other than excludeID uses sortOrder.
func SortOrderTaken(db *gorm.DB, sortOrder int, excludeID string) (bool, error) {
	if db == nil {
		return false, ErrDBNil
	}

	var count int64
	if err := db.Model(&models.Group{}).
		Where("sort_order = ? AND id <> ?", sortOrder, excludeID).
		Count(&count).Error; err != nil {
		return false, err
	}

	return count > 0, nil
}

// Create stores a new group.
func Create(db *gorm.DB, g *models.Group) error {
	if db == nil {
		return ErrDBNil
	}

	if g.ID == "" {
		return ErrGroupIDEmpty
	}

	if err := db.Create(g).Error; err != nil {
		if database.IsDuplicateKey(err) {
			return ErrDuplicate
		}

		return err
	}

	return nil
}

// Update changes name, icon and sort order of an existing group and returns the stored record.
func Update(db *gorm.DB, id, name, icon string, sortOrder int) (*models.Group, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	result := db.Model(&models.Group{}).Where(idQueryPattern, id).Updates(map[string]interface{}{
		"name":       name,
		"icon":       icon,
		"sort_order": sortOrder,
	})
	if result.Error != nil {
		if database.IsDuplicateKey(result.Error) {
			return nil, ErrDuplicate
		}

		return nil, result.Error
	}

	return Get(db, id)
}

// Delete deletes a group by id. Owned subgroups and links are not touched.
func Delete(db *gorm.DB, id string) error {
	if db == nil {
		return ErrDBNil
	}

	result := db.Where(idQueryPattern, id).Delete(&models.Group{})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return ErrGroupNotFound
	}

	return nil
}
