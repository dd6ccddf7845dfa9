// Package subgroup provides the catalog store operations on subgroups.
package subgroup

import (
	"errors"

	"gorm.io/gorm"

	"github.com/navportal/navportal/internal/db/database"
	"github.com/navportal/navportal/internal/db/models"
)

const (
	idQueryPattern      = "id = ?"
	groupIDQueryPattern = "group_id = ?"
	orderBySort         = "sort_order ASC, created_at DESC"
)

var (
	// ErrDBNil is returned when the database connection is nil.
	ErrDBNil = errors.New("database connection is nil")
	// ErrSubgroupNotFound is returned when no subgroup has the requested id.
	ErrSubgroupNotFound = errors.New("subgroup not found")
	// ErrDuplicate is returned when the id or the sort order within the group is already taken.
	ErrDuplicate = errors.New("subgroup id or sort order already exists in group")
)

// List returns the subgroups of groupID by sort order, newest first on ties.
func List(db *gorm.DB, groupID string) ([]models.Subgroup, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	subgroups := []models.Subgroup{}
	if err := db.Where(groupIDQueryPattern, groupID).Order(orderBySort).Find(&subgroups).Error; err != nil {
		return nil, err
	}

	return subgroups, nil
}

// ListAll returns the subgroups of every group, ordered like List.
func ListAll(db *gorm.DB) ([]models.Subgroup, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	subgroups := []models.Subgroup{}
	if err := db.Order(orderBySort).Find(&subgroups).Error; err != nil {
		return nil, err
	}

	return subgroups, nil
}

// Get retrieves a subgroup by its id.
func Get(db *gorm.DB, id string) (*models.Subgroup, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var s models.Subgroup
	if err := db.Where(idQueryPattern, id).First(&s).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSubgroupNotFound
		}

		return nil, err
	}

	return &s, nil
}

// SortOrderTaken reports whether a subgroup of groupID other than excludeID uses sortOrder.
func SortOrderTaken(db *gorm.DB, groupID string, sortOrder int, excludeID string) (bool, error) {
	if db == nil {
		return false, ErrDBNil
	}

	var count int64
	if err := db.Model(&models.Subgroup{}).
		Where("group_id = ? AND sort_order = ? AND id <> ?", groupID, sortOrder, excludeID).
		Count(&count).Error; err != nil {
		return false, err
	}

	return count > 0, nil
}

// Create stores a new subgroup.
func Create(db *gorm.DB, s *models.Subgroup) error {
	if db == nil {
		return ErrDBNil
	}

	if err := db.Create(s).Error; err != nil {
		if database.IsDuplicateKey(err) {
			return ErrDuplicate
		}

		return err
	}

	return nil
}

// Update changes name and sort order of a subgroup and returns the stored record.
// The owning group never changes.
func Update(db *gorm.DB, id, name string, sortOrder int) (*models.Subgroup, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	result := db.Model(&models.Subgroup{}).Where(idQueryPattern, id).Updates(map[string]interface{}{
		"name":       name,
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

// Delete deletes a subgroup by id. Deleting an absent subgroup is not an error.
func Delete(db *gorm.DB, id string) error {
	if db == nil {
		return ErrDBNil
	}

	return db.Where(idQueryPattern, id).Delete(&models.Subgroup{}).Error
}

// DeleteByGroup deletes all subgroups owned by groupID.
func DeleteByGroup(db *gorm.DB, groupID string) error {
	if db == nil {
		return ErrDBNil
	}

	return db.Where(groupIDQueryPattern, groupID).Delete(&models.Subgroup{}).Error
}
