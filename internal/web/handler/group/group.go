// Package group provides the REST endpoints for groups and their subgroups.
package group

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/navportal/navportal/internal/auth"
	"github.com/navportal/navportal/internal/directory"
	"github.com/navportal/navportal/internal/web/handler"
)

const (
	// Path is the base path for groups.
	Path = "/groups"

	// RouteGroup addresses one group.
	RouteGroup = "/:id"
	// RouteSubgroups lists and creates the subgroups of a group.
	RouteSubgroups = "/:groupId/subgroups"
	// RouteSubgroup addresses one subgroup of a group.
	RouteSubgroup = "/:groupId/subgroups/:id"
	// RouteSubgroupLegacy addresses a subgroup without its group.
	RouteSubgroupLegacy = "/subgroups/:id"

	// ParamID is the id route parameter.
	ParamID = "id"
	// ParamGroupID is the group id route parameter.
	ParamGroupID = "groupId"

	msgGroupDeleted    = "group deleted"
	msgSubgroupDeleted = "subgroup deleted"
)

type groupInput struct {
	ID        string `json:"id" validate:"max=64"`
	Name      string `json:"name" validate:"required,max=100"`
	Icon      string `json:"icon" validate:"required,max=255"`
	SortOrder int    `json:"sort_order"`
}

type subgroupInput struct {
	Name      string `json:"name" validate:"required,max=100"`
	SortOrder int    `json:"sort_order"`
}

// Service provides the group endpoints.
type Service struct {
	directory *directory.Service
}

// Handler is the exported instance.
var Handler = Service{}

// Init registers routes. Reads need a valid token, writes the admin.
func (s *Service) Init(router fiber.Router, dir *directory.Service, authService *auth.Service) {
	if router == nil || dir == nil || authService == nil {
		log.Fatal().Msg(handler.ErrNilFatalLogMsg)
		return
	}

	s.directory = dir

	requireAuth := auth.RequireAuth(authService)
	requireAdmin := auth.RequireAdmin(authService)

	router.Route(Path, func(r fiber.Router) {
		r.Get(handler.RouterRootPath, requireAuth, s.List)
		r.Post(handler.RouterRootPath, requireAuth, requireAdmin, s.Create)

		r.Put(RouteSubgroupLegacy, requireAuth, requireAdmin, s.UpdateSubgroup)
		r.Delete(RouteSubgroupLegacy, requireAuth, requireAdmin, s.DeleteSubgroup)

		r.Put(RouteGroup, requireAuth, requireAdmin, s.Update)
		r.Delete(RouteGroup, requireAuth, requireAdmin, s.Delete)

		r.Get(RouteSubgroups, requireAuth, s.ListSubgroups)
		r.Post(RouteSubgroups, requireAuth, requireAdmin, s.CreateSubgroup)
		r.Put(RouteSubgroup, requireAuth, requireAdmin, s.UpdateSubgroup)
		r.Delete(RouteSubgroup, requireAuth, requireAdmin, s.DeleteSubgroup)
	})
}

// List returns all groups with their subgroups.
func (s *Service) List(c *fiber.Ctx) error {
	groups, err := s.directory.ListGroups(c.UserContext())
	if err != nil {
		return err
	}

	return c.JSON(groups)
}

// Create creates a group.
func (s *Service) Create(c *fiber.Ctx) error {
	in := new(groupInput)
	if err := handler.Bind(c, in); err != nil {
		return err
	}

	g, err := s.directory.CreateGroup(c.UserContext(), directory.GroupInput{
		ID:        in.ID,
		Name:      in.Name,
		Icon:      in.Icon,
		SortOrder: in.SortOrder,
	})
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(g)
}

// Update changes a group.
func (s *Service) Update(c *fiber.Ctx) error {
	in := new(groupInput)
	if err := handler.Bind(c, in); err != nil {
		return err
	}

	g, err := s.directory.UpdateGroup(c.UserContext(), c.Params(ParamID), directory.GroupInput{
		Name:      in.Name,
		Icon:      in.Icon,
		SortOrder: in.SortOrder,
	})
	if err != nil {
		return err
	}

	return c.JSON(g)
}

// Delete deletes a group without links.
func (s *Service) Delete(c *fiber.Ctx) error {
	if err := s.directory.DeleteGroup(c.UserContext(), c.Params(ParamID)); err != nil {
		return err
	}

	return c.JSON(handler.Message{Message: msgGroupDeleted})
}

// ListSubgroups returns the subgroups of a group.
func (s *Service) ListSubgroups(c *fiber.Ctx) error {
	subgroups, err := s.directory.ListSubgroups(c.UserContext(), c.Params(ParamGroupID))
	if err != nil {
		return err
	}

	return c.JSON(subgroups)
}

// CreateSubgroup creates a subgroup in a group.
func (s *Service) CreateSubgroup(c *fiber.Ctx) error {
	in := new(subgroupInput)
	if err := handler.Bind(c, in); err != nil {
		return err
	}

	sg, err := s.directory.CreateSubgroup(c.UserContext(), c.Params(ParamGroupID), directory.SubgroupInput{
		Name:      in.Name,
		SortOrder: in.SortOrder,
	})
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(sg)
}

// UpdateSubgroup changes a subgroup. On the legacy route the group parameter is empty.
func (s *Service) UpdateSubgroup(c *fiber.Ctx) error {
	in := new(subgroupInput)
	if err := handler.Bind(c, in); err != nil {
		return err
	}

	sg, err := s.directory.UpdateSubgroup(c.UserContext(), c.Params(ParamGroupID), c.Params(ParamID), directory.SubgroupInput{
		Name:      in.Name,
		SortOrder: in.SortOrder,
	})
	if err != nil {
		return err
	}

	return c.JSON(sg)
}

// DeleteSubgroup deletes a subgroup and detaches its links.
func (s *Service) DeleteSubgroup(c *fiber.Ctx) error {
	if err := s.directory.DeleteSubgroup(c.UserContext(), c.Params(ParamGroupID), c.Params(ParamID)); err != nil {
		return err
	}

	return c.JSON(handler.Message{Message: msgSubgroupDeleted})
}
