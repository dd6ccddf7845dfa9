package models

import "time"

// Subgroup partitions the links of a group.
type Subgroup struct {
	ID      string `gorm:"primaryKey;size:64" json:"id"`
	Name    string `gorm:"size:255;not null" json:"name"`
	GroupID string `gorm:"size:64;not null;uniqueIndex:idx_subgroups_group_sort_order,priority:1" json:"group_id"`
	// SortOrder is unique within the owning group only.
	SortOrder int       `gorm:"not null;uniqueIndex:idx_subgroups_group_sort_order,priority:2" json:"sort_order"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `gorm:"column:modified_at" json:"modified_at"`
}

// TableName overrides the table name used by Subgroup to `subgroups`.
func (Subgroup) TableName() string {
	return "subgroups"
}
