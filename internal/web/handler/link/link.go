// Package link provides the REST endpoints for links.
package link

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/navportal/navportal/internal/auth"
	"github.com/navportal/navportal/internal/directory"
	"github.com/navportal/navportal/internal/web/handler"
)

const (
	// Path is the base path for links.
	Path = "/links"

	// RouteLink addresses one link.
	RouteLink = "/:id"
	// RouteSearch searches links.
	RouteSearch = "/search"
	// RouteByGroup lists the links of a group.
	RouteByGroup = "/group/:groupId"

	// ParamID is the id route parameter.
	ParamID = "id"
	// ParamGroupID is the group id route parameter.
	ParamGroupID = "groupId"
	// QuerySubgroupID narrows a group listing to one subgroup.
	QuerySubgroupID = "subgroupId"
	// QuerySearch is the search term.
	QuerySearch = "q"

	msgLinkDeleted = "link deleted"
)

type linkInput struct {
	ID         string  `json:"id" validate:"max=64"`
	Title      string  `json:"title" validate:"required,max=255"`
	Subtitle   string  `json:"subtitle" validate:"max=1000"`
	URL        string  `json:"url" validate:"required,max=2048"`
	Icon       string  `json:"icon" validate:"max=255"`
	GroupID    string  `json:"group_id" validate:"required"`
	SubgroupID *string `json:"subgroup_id"`
}

func (in *linkInput) toDirectory() directory.LinkInput {
	return directory.LinkInput{
		ID:         in.ID,
		Title:      in.Title,
		Subtitle:   in.Subtitle,
		URL:        in.URL,
		Icon:       in.Icon,
		GroupID:    in.GroupID,
		SubgroupID: in.SubgroupID,
	}
}

// Service provides the link endpoints.
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
		r.Get(RouteSearch, requireAuth, s.Search)
		r.Get(RouteByGroup, requireAuth, s.ListByGroup)
		r.Post(handler.RouterRootPath, requireAuth, requireAdmin, s.Create)
		r.Put(RouteLink, requireAuth, requireAdmin, s.Update)
		r.Delete(RouteLink, requireAuth, requireAdmin, s.Delete)
	})
}

// List returns all links with group and subgroup names.
func (s *Service) List(c *fiber.Ctx) error {
	links, err := s.directory.ListLinks(c.UserContext())
	if err != nil {
		return err
	}

	return c.JSON(links)
}

// Search returns the links matching the q query parameter.
func (s *Service) Search(c *fiber.Ctx) error {
	links, err := s.directory.SearchLinks(c.UserContext(), c.Query(QuerySearch))
	if err != nil {
		return err
	}

	return c.JSON(links)
}

// ListByGroup returns the links of a group, optionally of one subgroup.
func (s *Service) ListByGroup(c *fiber.Ctx) error {
	var subgroupID *string
	if v := c.Query(QuerySubgroupID); v != "" {
		subgroupID = &v
	}

	links, err := s.directory.ListLinksByGroup(c.UserContext(), c.Params(ParamGroupID), subgroupID)
	if err != nil {
		return err
	}

	return c.JSON(links)
}

// Create creates a link.
func (s *Service) Create(c *fiber.Ctx) error {
	in := new(linkInput)
	if err := handler.Bind(c, in); err != nil {
		return err
	}

	l, err := s.directory.CreateLink(c.UserContext(), in.toDirectory())
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(l)
}

// Update overwrites a link.
func (s *Service) Update(c *fiber.Ctx) error {
	in := new(linkInput)
	if err := handler.Bind(c, in); err != nil {
		return err
	}

	l, err := s.directory.UpdateLink(c.UserContext(), c.Params(ParamID), in.toDirectory())
	if err != nil {
		return err
	}

	return c.JSON(l)
}

// Delete deletes a link.
func (s *Service) Delete(c *fiber.Ctx) error {
	if err := s.directory.DeleteLink(c.UserContext(), c.Params(ParamID)); err != nil {
		return err
	}

	return c.JSON(handler.Message{Message: msgLinkDeleted})
}
