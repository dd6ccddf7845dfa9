package models

import "time"

// Link is a single directory entry.
type Link struct {
	ID       string `gorm:"primaryKey;size:64" json:"id"`
	Title    string `gorm:"size:255;not null" json:"title"`
	Subtitle string `gorm:"type:text;not null" json:"subtitle"`
	URL      string `gorm:"type:text;not null" json:"url"`
	Icon     string `gorm:"size:255;not null" json:"icon"`
	// GroupID is required, SubgroupID is optional and must belong to the same group.
	GroupID    string    `gorm:"size:64;not null;index" json:"group_id"`
	SubgroupID *string   `gorm:"size:64;index" json:"subgroup_id"`
	CreatedAt  time.Time `gorm:"index" json:"created_at"`
	UpdatedAt  time.Time `gorm:"column:modified_at" json:"modified_at"`
}

// TableName overrides the table name used by Link to `links`.
func (Link) TableName() string {
	return "links"
}
