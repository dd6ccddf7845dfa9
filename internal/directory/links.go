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

// ListLinks returns all links, newest first, with group and subgroup names.
func (s *Service) ListLinks(ctx context.Context) ([]LinkView, error) {
	db := s.db.WithContext(ctx)

	links, err := link.List(db)
	if err != nil {
		return nil, translate(err)
	}

	return linkViews(db, links)
}

// ListLinksByGroup returns the links of groupID, narrowed to subgroupID when given.
func (s *Service) ListLinksByGroup(ctx context.Context, groupID string, subgroupID *string) ([]LinkView, error) {
	db := s.db.WithContext(ctx)

	links, err := link.ListByGroup(db, groupID, normalizeSubgroup(subgroupID))
	if err != nil {
		return nil, translate(err)
	}

	return linkViews(db, links)
}

// SearchLinks returns links matching term in title, subtitle or url.
func (s *Service) SearchLinks(ctx context.Context, term string) ([]LinkView, error) {
	term = strings.TrimSpace(term)
	if term == "" {
		return nil, apperr.Validation(msgSearchTermRequired)
	}

	db := s.db.WithContext(ctx)

	links, err := link.Search(db, term)
	if err != nil {
		return nil, translate(err)
	}

	return linkViews(db, links)
}

// CreateLink stores a new link. An empty id is replaced by a generated one.
func (s *Service) CreateLink(ctx context.Context, in LinkInput) (*models.Link, error) {
	if err := checkLink(in); err != nil {
		return nil, err
	}

	if in.ID == "" {
		in.ID = uuid.NewString()
	}

	var created *models.Link

	err := s.tx(ctx, func(tx *gorm.DB) error {
		if _, err := link.Get(tx, in.ID); err == nil {
			return apperr.Conflict(msgLinkExists, in.ID)
		} else if !errors.Is(err, link.ErrLinkNotFound) {
			return err
		}

		l := in.model()
		if err := checkReferences(tx, l.GroupID, l.SubgroupID); err != nil {
			return err
		}

		if err := link.Create(tx, l); err != nil {
			if errors.Is(err, link.ErrDuplicate) {
				return apperr.Conflict(msgLinkExists, in.ID)
			}

			return err
		}

		var err error
		created, err = link.Get(tx, l.ID)

		return err
	})

	return created, err
}

// UpdateLink overwrites link id with in. The id of in is ignored.
func (s *Service) UpdateLink(ctx context.Context, id string, in LinkInput) (*models.Link, error) {
	if err := checkLink(in); err != nil {
		return nil, err
	}

	in.ID = id

	var updated *models.Link

	err := s.tx(ctx, func(tx *gorm.DB) error {
		if _, err := link.Get(tx, id); err != nil {
			return err
		}

		l := in.model()
		if err := checkReferences(tx, l.GroupID, l.SubgroupID); err != nil {
			return err
		}

		var err error
		updated, err = link.Update(tx, l)

		return err
	})

	return updated, err
}

// DeleteLink deletes link id.
func (s *Service) DeleteLink(ctx context.Context, id string) error {
	return translate(link.Delete(s.db.WithContext(ctx), id))
}

func checkLink(in LinkInput) error {
	return required("title", in.Title, "url", in.URL, "group_id", in.GroupID)
}

// checkReferences requires groupID to exist and a set subgroupID to belong to it.
func checkReferences(tx *gorm.DB, groupID string, subgroupID *string) error {
	if _, err := group.Get(tx, groupID); err != nil {
		return err
	}

	if subgroupID == nil {
		return nil
	}

	sg, err := subgroup.Get(tx, *subgroupID)
	if err != nil {
		return err
	}

	if sg.GroupID != groupID {
		return apperr.NotFound(msgSubgroupNotInGroup)
	}

	return nil
}

func (in LinkInput) model() *models.Link {
	return &models.Link{
		ID:         in.ID,
		Title:      in.Title,
		Subtitle:   in.Subtitle,
		URL:        in.URL,
		Icon:       in.Icon,
		GroupID:    in.GroupID,
		SubgroupID: normalizeSubgroup(in.SubgroupID),
	}
}

// normalizeSubgroup treats an empty subgroup id as none.
func normalizeSubgroup(id *string) *string {
	if id == nil || *id == "" {
		return nil
	}

	return id
}

// linkViews attaches group and subgroup names to links.
func linkViews(db *gorm.DB, links []models.Link) ([]LinkView, error) {
	groups, err := group.List(db)
	if err != nil {
		return nil, translate(err)
	}

	subgroups, err := subgroup.ListAll(db)
	if err != nil {
		return nil, translate(err)
	}

	groupNames := make(map[string]string, len(groups))
	for _, g := range groups {
		groupNames[g.ID] = g.Name
	}

	subgroupNames := make(map[string]string, len(subgroups))
	for _, sg := range subgroups {
		subgroupNames[sg.ID] = sg.Name
	}

	out := make([]LinkView, 0, len(links))
	for _, l := range links {
		v := LinkView{Link: l, GroupName: groupNames[l.GroupID]}

		if l.SubgroupID != nil {
			if name, ok := subgroupNames[*l.SubgroupID]; ok {
				v.SubgroupName = &name
			}
		}

		out = append(out, v)
	}

	return out, nil
}
