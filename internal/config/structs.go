package config

import (
	"time"

	"github.com/navportal/navportal/internal/logger"
)

// Config overall data structure.
type Config struct {
	DevMode   bool // enable dev mode for development
	Title     string
	DB        DB
	Log       logger.Log
	Webserver Webserver
	Auth      Auth
	Mail      Mail
	Seed      Seed
}

// Webserver implement webserver settings.
type Webserver struct {
	DisableRecover bool     // disable recover middleware
	Port           int      // listening port for the webserver
	ShutDownTime   int      // wait time for shutdown
	URL            string   // base url for the webserver
	AllowOrigins   []string // CORS origins allowed to call the api, empty allows all
	BodyLimit      int      // max request body size in bytes
}

// Auth holds the identity settings.
type Auth struct {
	// AdminUsername is the single account allowed to mutate the catalog.
	AdminUsername string
	// AdminEmail and AdminPassword seed the admin account on first start.
	AdminEmail    string
	AdminPassword string
	// EmailDomain is the suffix every registered address must carry, e.g. "@company.com".
	EmailDomain string
	// TokenSecret signs bearer tokens. When empty a secret is generated and kept in the settings table.
	TokenSecret string
	// TokenTTL is the lifetime of an issued bearer token.
	TokenTTL time.Duration
	// VerifyURL is the frontend page receiving the verification token as query parameter.
	VerifyURL string
}

// Seed controls data inserted at startup.
type Seed struct {
	DemoData bool // insert the demo catalog if absent
}
