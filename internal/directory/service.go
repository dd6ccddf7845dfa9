// Package directory implements the catalog operations on groups, subgroups and links.
//
// Every mutation runs in one transaction so its checks and writes see the same state.
// Uniqueness races the checks can not see are caught by the unique indexes and
// reported as conflicts as well.
package directory

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/navportal/navportal/internal/apperr"
	"github.com/navportal/navportal/internal/db/controller/group"
	"github.com/navportal/navportal/internal/db/controller/link"
	"github.com/navportal/navportal/internal/db/controller/subgroup"
	"github.com/navportal/navportal/internal/db/models"
)

// Service is the directory service.
type Service struct {
	db *gorm.DB
}

// New creates a directory service on db.
func New(db *gorm.DB) *Service {
	return &Service{db: db}
}

func (s *Service) tx(ctx context.Context, fn func(tx *gorm.DB) error) error {
	return translate(s.db.WithContext(ctx).Transaction(fn))
}

func checkSortOrder(sortOrder int) error {
	if sortOrder < models.SortOrderMin || sortOrder > models.SortOrderMax {
		return apperr.Validation(msgSortOrderRange, models.SortOrderMin, models.SortOrderMax)
	}

	return nil
}

func required(fields ...string) error {
	for i := 0; i+1 < len(fields); i += 2 {
		if strings.TrimSpace(fields[i+1]) == "" {
			return apperr.Validation(msgRequired, fields[i])
		}
	}

	return nil
}

// ListGroups returns all groups by sort order, each with its subgroups.
func (s *Service) ListGroups(ctx context.Context) ([]GroupWithSubgroups, error) {
	db := s.db.WithContext(ctx)

	groups, err := group.List(db)
	if err != nil {
		return nil, translate(err)
	}

	subgroups, err := subgroup.ListAll(db)
	if err != nil {
		return nil, translate(err)
	}

	byGroup := make(map[string][]models.Subgroup, len(groups))
	for _, sg := range subgroups {
		byGroup[sg.GroupID] = append(byGroup[sg.GroupID], sg)
	}

	out := make([]GroupWithSubgroups, 0, len(groups))
	for _, g := range groups {
		sgs := byGroup[g.ID]
		if sgs == nil {
			sgs = []models.Subgroup{}
		}

		out = append(out, GroupWithSubgroups{Group: g, Subgroups: sgs})
	}

	return out, nil
}

// CreateGroup stores a new group.
func (s *Service) CreateGroup(ctx context.Context, in GroupInput) (*models.Group, error) {
	if err := required("id", in.ID, "name", in.Name, "icon", in.Icon); err != nil {
		return nil, err
	}

	if err := checkSortOrder(in.SortOrder); err != nil {
		return nil, err
	}

	var created *models.Group

	err := s.tx(ctx, func(tx *gorm.DB) error {
		if _, err := group.Get(tx, in.ID); err == nil {
			return apperr.Conflict(msgGroupExists, in.ID)
		} else if !errors.Is(err, group.ErrGroupNotFound) {
			return err
		}

		taken, err := group.SortOrderTaken(tx, in.SortOrder, in.ID)
		if err != nil {
			return err
		}

		if taken {
			return apperr.Conflict(msgGroupSortOrderTaken, in.SortOrder)
		}

		g := &models.Group{ID: in.ID, Name: in.Name, Icon: in.Icon, SortOrder: in.SortOrder}
		if err = group.Create(tx, g); err != nil {
			return err
		}

		created, err = group.Get(tx, in.ID)

		return err
	})

	return created, err
}

// UpdateGroup changes name, icon and sort order of group id.
func (s *Service) UpdateGroup(ctx context.Context, id string, in GroupInput) (*models.Group, error) {
	if err := required("name", in.Name, "icon", in.Icon); err != nil {
		return nil, err
	}

	if err := checkSortOrder(in.SortOrder); err != nil {
		return nil, err
	}

	var updated *models.Group

	err := s.tx(ctx, func(tx *gorm.DB) error {
		if _, err := group.Get(tx, id); err != nil {
			return err
		}

		taken, err := group.SortOrderTaken(tx, in.SortOrder, id)
		if err != nil {
			return err
		}

		if taken {
			return apperr.Conflict(msgGroupSortOrderTaken, in.SortOrder)
		}

		updated, err = group.Update(tx, id, in.Name, in.Icon, in.SortOrder)

		return err
	})

	return updated, err
}

// DeleteGroup deletes group id and its subgroups. A group still owning links is kept.
func (s *Service) DeleteGroup(ctx context.Context, id string) error {
	return s.tx(ctx, func(tx *gorm.DB) error {
		if _, err := group.Get(tx, id); err != nil {
			return err
		}

		count, err := link.CountByGroup(tx, id)
		if err != nil {
			return err
		}

		if count > 0 {
			return apperr.Conflict(msgGroupHasLinks, count)
		}

		if err = subgroup.DeleteByGroup(tx, id); err != nil {
			return err
		}

		return group.Delete(tx, id)
	})
}

// ListSubgroups returns the subgroups of groupID. An unknown group has no subgroups.
func (s *Service) ListSubgroups(ctx context.Context, groupID string) ([]models.Subgroup, error) {
	subgroups, err := subgroup.List(s.db.WithContext(ctx), groupID)

	return subgroups, translate(err)
}

// CreateSubgroup stores a new subgroup in groupID under a generated id.
func (s *Service) CreateSubgroup(ctx context.Context, groupID string, in SubgroupInput) (*models.Subgroup, error) {
	if err := required("name", in.Name); err != nil {
		return nil, err
	}

	if err := checkSortOrder(in.SortOrder); err != nil {
		return nil, err
	}

	var created *models.Subgroup

	err := s.tx(ctx, func(tx *gorm.DB) error {
		if _, err := group.Get(tx, groupID); err != nil {
			return err
		}

		taken, err := subgroup.SortOrderTaken(tx, groupID, in.SortOrder, "")
		if err != nil {
			return err
		}

		if taken {
			return apperr.Conflict(msgSubgroupSortTaken, in.SortOrder)
		}

		sg := &models.Subgroup{ID: uuid.NewString(), Name: in.Name, GroupID: groupID, SortOrder: in.SortOrder}
		if err = subgroup.Create(tx, sg); err != nil {
			return err
		}

		created, err = subgroup.Get(tx, sg.ID)

		return err
	})

	return created, err
}

// UpdateSubgroup changes name and sort order of subgroup id. Uniqueness is checked
// within the subgroup's own group. A non empty groupID must own the subgroup.
func (s *Service) UpdateSubgroup(ctx context.Context, groupID, id string, in SubgroupInput) (*models.Subgroup, error) {
	if err := required("name", in.Name); err != nil {
		return nil, err
	}

	if err := checkSortOrder(in.SortOrder); err != nil {
		return nil, err
	}

	var updated *models.Subgroup

	err := s.tx(ctx, func(tx *gorm.DB) error {
		current, err := subgroup.Get(tx, id)
		if err != nil {
			return err
		}

		if groupID != "" && current.GroupID != groupID {
			return apperr.NotFound(msgSubgroupNotInGroup)
		}

		taken, err := subgroup.SortOrderTaken(tx, current.GroupID, in.SortOrder, id)
		if err != nil {
			return err
		}

		if taken {
			return apperr.Conflict(msgSubgroupSortTaken, in.SortOrder)
		}

		updated, err = subgroup.Update(tx, id, in.Name, in.SortOrder)

		return err
	})

	return updated, err
}

// DeleteSubgroup detaches all links from subgroup id and deletes it.
// There is no link guard and an absent subgroup is not an error.
// A non empty groupID must own the subgroup if it exists.
func (s *Service) DeleteSubgroup(ctx context.Context, groupID, id string) error {
	return s.tx(ctx, func(tx *gorm.DB) error {
		if groupID != "" {
			current, err := subgroup.Get(tx, id)

			switch {
			case errors.Is(err, subgroup.ErrSubgroupNotFound):
			case err != nil:
				return err
			case current.GroupID != groupID:
				return apperr.NotFound(msgSubgroupNotInGroup)
			}
		}

		if err := link.ClearSubgroup(tx, id); err != nil {
			return err
		}

		return subgroup.Delete(tx, id)
	})
}
