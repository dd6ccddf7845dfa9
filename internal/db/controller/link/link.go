// Package link provides the catalog store operations on links.
package link

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/navportal/navportal/internal/db/database"
	"github.com/navportal/navportal/internal/db/models"
)

const (
	idQueryPattern = "id = ?"
	orderByNewest  = "created_at DESC"
)

var (
	// ErrDBNil is returned when the database connection is nil.
	ErrDBNil = errors.New("database connection is nil")
	// ErrLinkNotFound is returned when no link has the requested id.
	ErrLinkNotFound = errors.New("link not found")
	// ErrLinkIDEmpty is returned when a link is stored without id.
	ErrLinkIDEmpty = errors.New("link id cannot be empty")
	// ErrDuplicate is returned when the link id is already taken.
	ErrDuplicate = errors.New("link already exists")
)

// List returns all links, newest first.
func List(db *gorm.DB) ([]models.Link, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	links := []models.Link{}
	if err := db.Order(orderByNewest).Find(&links).Error; err != nil {
		return nil, err
	}

	return links, nil
}

// ListByGroup returns the links of groupID, newest first.
// A non nil subgroupID narrows the result to that subgroup.
func ListByGroup(db *gorm.DB, groupID string, subgroupID *string) ([]models.Link, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	query := db.Where("group_id = ?", groupID)
	if subgroupID != nil {
		query = query.Where("subgroup_id = ?", *subgroupID)
	}

	links := []models.Link{}
	if err := query.Order(orderByNewest).Find(&links).Error; err != nil {
		return nil, err
	}

	return links, nil
}

// Search returns links whose title, subtitle or url contains term, ignoring case.
func Search(db *gorm.DB, term string) ([]models.Link, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	pattern := "%" + escapeLike(strings.ToLower(term)) + "%"

	links := []models.Link{}
	if err := db.
		Where("LOWER(title) LIKE ? ESCAPE '!' OR LOWER(subtitle) LIKE ? ESCAPE '!' OR LOWER(url) LIKE ? ESCAPE '!'",
			pattern, pattern, pattern).
		Order(orderByNewest).
		Find(&links).Error; err != nil {
		return nil, err
	}

	return links, nil
}

// Get retrieves a link by its id.
func Get(db *gorm.DB, id string) (*models.Link, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var l models.Link
	if err := db.Where(idQueryPattern, id).First(&l).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrLinkNotFound
		}

		return nil, err
	}

	return &l, nil
}

// CountByGroup counts the links owned by groupID.
func CountByGroup(db *gorm.DB, groupID string) (int64, error) {
	if db == nil {
		return 0, ErrDBNil
	}

	var count int64
	err := db.Model(&models.Link{}).Where("group_id = ?", groupID).Count(&count).Error

	return count, err
}

// Create stores a new link.
func Create(db *gorm.DB, l *models.Link) error {
	if db == nil {
		return ErrDBNil
	}

	if l.ID == "" {
		return ErrLinkIDEmpty
	}

	if err := db.Create(l).Error; err != nil {
		if database.IsDuplicateKey(err) {
			return ErrDuplicate
		}

		return err
	}

	return nil
}

// Update overwrites all editable fields of link l.ID and returns the stored record.
func Update(db *gorm.DB, l *models.Link) (*models.Link, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	result := db.Model(&models.Link{}).Where(idQueryPattern, l.ID).Updates(map[string]interface{}{
		"title":       l.Title,
		"subtitle":    l.Subtitle,
		"url":         l.URL,
		"icon":        l.Icon,
		"group_id":    l.GroupID,
		"subgroup_id": l.SubgroupID,
	})
	if result.Error != nil {
		return nil, result.Error
	}

	return Get(db, l.ID)
}

// ClearSubgroup detaches all links from subgroupID.
func ClearSubgroup(db *gorm.DB, subgroupID string) error {
	if db == nil {
		return ErrDBNil
	}

	return db.Model(&models.Link{}).
		Where("subgroup_id = ?", subgroupID).
		Update("subgroup_id", nil).Error
}

// Delete deletes a link by id.
func Delete(db *gorm.DB, id string) error {
	if db == nil {
		return ErrDBNil
	}

	result := db.Where(idQueryPattern, id).Delete(&models.Link{})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return ErrLinkNotFound
	}

	return nil
}

func escapeLike(s string) string {
	return strings.NewReplacer("!", "!!", "%", "!%", "_", "!_").Replace(s)
}
