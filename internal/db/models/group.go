package models

import "time"

const (
	// SortOrderMin is the lowest sort order a group or subgroup can take.
	SortOrderMin = 1
	// SortOrderMax is the highest sort order a group or subgroup can take.
	SortOrderMax = 100
)

// Group is a top level section of the link directory.
type Group struct {
	// ID is the caller supplied stable identifier, e.g. "ops".
	ID string `gorm:"primaryKey;size:64" json:"id"`
	// Name is the display name.
	Name string `gorm:"size:255;not null" json:"name"`
	// Icon references the icon shown next to the name.
	Icon string `gorm:"size:255;not null" json:"icon"`
	// SortOrder positions the group, unique across all groups.
	SortOrder int `gorm:"uniqueIndex:idx_groups_sort_order;not null" json:"sort_order"`
	// CreatedAt is the timestamp when the group was created (managed by GORM).
	CreatedAt time.Time `json:"created_at"`
	// UpdatedAt is the timestamp when the group was last updated (managed by GORM).
	UpdatedAt time.Time `gorm:"column:modified_at" json:"modified_at"`
}

// TableName overrides the table name used by Group to `groups`.
func (Group) TableName() string {
	return "groups"
}
