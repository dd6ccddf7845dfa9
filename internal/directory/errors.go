package directory

import (
	"errors"

	"github.com/navportal/navportal/internal/apperr"
	"github.com/navportal/navportal/internal/db/controller/group"
	"github.com/navportal/navportal/internal/db/controller/link"
	"github.com/navportal/navportal/internal/db/controller/subgroup"
)

const (
	msgGroupNotFound       = "group not found"
	msgSubgroupNotFound    = "subgroup not found"
	msgSubgroupNotInGroup  = "subgroup not found in this group"
	msgLinkNotFound        = "link not found"
	msgSortOrderRange      = "sort order must be between %d and %d"
	msgGroupSortOrderTaken = "sort order %d is already used by another group"
	msgSubgroupSortTaken   = "sort order %d is already used in this group"
	msgGroupExists         = "group %q already exists"
	msgLinkExists          = "link %q already exists"
	msgGroupHasLinks       = "group still contains %d link(s), move or delete them first"
	msgRequired            = "%s is required"
	msgSearchTermRequired  = "search term is required"
	msgGroupConstraint     = "group id or sort order already exists"
	msgSubgroupConstraint  = "sort order is already used in this group"
	msgStoreFailed         = "failed to access the catalog"
)

// translate maps controller errors to operation errors.
// Errors already classified pass through unchanged.
func translate(err error) error {
	if err == nil {
		return nil
	}

	var appErr *apperr.Error

	switch {
	case errors.As(err, &appErr):
		return appErr
	case errors.Is(err, group.ErrGroupNotFound):
		return apperr.NotFound(msgGroupNotFound)
	case errors.Is(err, subgroup.ErrSubgroupNotFound):
		return apperr.NotFound(msgSubgroupNotFound)
	case errors.Is(err, link.ErrLinkNotFound):
		return apperr.NotFound(msgLinkNotFound)
	case errors.Is(err, group.ErrDuplicate):
		return apperr.Conflict(msgGroupConstraint)
	case errors.Is(err, subgroup.ErrDuplicate):
		return apperr.Conflict(msgSubgroupConstraint)
	default:
		return apperr.Store(err, msgStoreFailed)
	}
}
