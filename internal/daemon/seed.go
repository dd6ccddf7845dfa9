package daemon

import (
	"context"
	"errors"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/navportal/navportal/internal/config"
	"github.com/navportal/navportal/internal/db/controller/group"
	"github.com/navportal/navportal/internal/db/controller/link"
	"github.com/navportal/navportal/internal/db/controller/user"
	"github.com/navportal/navportal/internal/db/models"
)

// demoGroups and demoLinks form the catalog shown on a fresh installation.
var (
	demoGroups = []models.Group{ //nolint:gochecknoglobals
		{ID: "dev", Name: "Development", Icon: "HiOutlineCode", SortOrder: 1},
		{ID: "client", Name: "Clients", Icon: "HiOutlineUsers", SortOrder: 2},
		{ID: "prod", Name: "Production", Icon: "HiOutlineGlobe", SortOrder: 3},
	}

	demoLinks = []models.Link{ //nolint:gochecknoglobals
		{ID: "gitlab", Title: "GitLab", Subtitle: "Source code hosting", URL: "https://gitlab.company.com",
			Icon: "HiOutlineCode", GroupID: "dev"},
		{ID: "jenkins", Title: "Jenkins", Subtitle: "Continuous integration", URL: "https://jenkins.company.com",
			Icon: "HiOutlineServer", GroupID: "dev"},
		{ID: "confluence", Title: "Confluence", Subtitle: "Knowledge base", URL: "https://confluence.company.com",
			Icon: "HiOutlineBookOpen", GroupID: "dev"},
		{ID: "jira", Title: "Jira", Subtitle: "Issue tracking", URL: "https://jira.company.com",
			Icon: "HiOutlineBriefcase", GroupID: "dev"},
		{ID: "client1", Title: "Client portal", Subtitle: "Customer self service", URL: "https://client1.company.com",
			Icon: "HiOutlineUsers", GroupID: "client"},
		{ID: "prod1", Title: "Status page", Subtitle: "Production health", URL: "https://status.company.com",
			Icon: "HiOutlineGlobe", GroupID: "prod"},
	}
)

// seed inserts the admin account and, when enabled, the demo catalog.
// Existing records are left alone.
func seed(ctx context.Context, cfg *config.Config, db *gorm.DB) error {
	db = db.WithContext(ctx)

	if err := seedAdmin(cfg.Auth, db); err != nil {
		return err
	}

	if !cfg.Seed.DemoData {
		return nil
	}

	for i := range demoGroups {
		g := demoGroups[i]
		if err := group.Create(db, &g); err != nil && !errors.Is(err, group.ErrDuplicate) {
			return err
		}
	}

	for i := range demoLinks {
		l := demoLinks[i]
		if err := link.Create(db, &l); err != nil && !errors.Is(err, link.ErrDuplicate) {
			return err
		}
	}

	log.Debug().Int("groups", len(demoGroups)).Int("links", len(demoLinks)).Msg("demo catalog seeded")

	return nil
}

func seedAdmin(cfg config.Auth, db *gorm.DB) error {
	exists, err := user.UsernameExists(db, cfg.AdminUsername)
	if err != nil || exists {
		return err
	}

	if cfg.AdminPassword == "" {
		log.Warn().Str("username", cfg.AdminUsername).Msg("admin account missing and no admin password configured")
		return nil
	}

	hash, err := models.HashPassword(cfg.AdminPassword)
	if err != nil {
		return err
	}

	err = user.Create(db, &models.User{
		Username: cfg.AdminUsername,
		Email:    cfg.AdminEmail,
		Password: hash,
		Active:   true,
	})
	if err != nil {
		return err
	}

	log.Info().Str("username", cfg.AdminUsername).Msg("admin account created, change its password")

	return nil
}
