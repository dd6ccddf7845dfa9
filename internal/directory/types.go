package directory

import "github.com/navportal/navportal/internal/db/models"

// GroupInput is the editable part of a group. ID is ignored on update.
type GroupInput struct {
	ID        string
	Name      string
	Icon      string
	SortOrder int
}

// GroupWithSubgroups is a group with its subgroups embedded, as listed to clients.
type GroupWithSubgroups struct {
	models.Group
	Subgroups []models.Subgroup `json:"subgroups"`
}

// SubgroupInput is the editable part of a subgroup.
type SubgroupInput struct {
	Name      string
	SortOrder int
}

// LinkInput is the editable part of a link. An empty ID on create gets a generated one.
type LinkInput struct {
	ID         string
	Title      string
	Subtitle   string
	URL        string
	Icon       string
	GroupID    string
	SubgroupID *string
}

// LinkView is a link with the display names of its group and subgroup.
type LinkView struct {
	models.Link
	GroupName    string  `json:"group_name"`
	SubgroupName *string `json:"subgroup_name"`
}
