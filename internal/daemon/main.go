// Package daemon wires store, services and web server of the portal.
package daemon

import (
	"context"
	"fmt"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/navportal/navportal/internal/auth"
	"github.com/navportal/navportal/internal/config"
	"github.com/navportal/navportal/internal/db/database"
	"github.com/navportal/navportal/internal/directory"
	"github.com/navportal/navportal/internal/notify"
	"github.com/navportal/navportal/internal/web"
)

// Daemon represents the main application daemon.
type Daemon struct {
	cfg        *config.Config
	db         *gorm.DB
	sender     notify.Sender
	webService *web.Service
}

// New opens and migrates the database, seeds it and builds the services.
func New(ctx context.Context, cfg *config.Config) (*Daemon, error) {
	if cfg == nil {
		return nil, database.ErrConfigNil
	}

	db, err := database.Open(cfg)
	if err != nil {
		return nil, err
	}

	d, err := build(ctx, cfg, db, prometheus.DefaultRegisterer, prometheus.DefaultGatherer)
	if err != nil {
		_ = database.Close(db)

		return nil, err
	}

	return d, nil
}

func build(
	ctx context.Context,
	cfg *config.Config,
	db *gorm.DB,
	reg prometheus.Registerer,
	gatherer prometheus.Gatherer,
) (*Daemon, error) {
	if err := database.Migrate(db); err != nil {
		return nil, err
	}

	if err := seed(ctx, cfg, db); err != nil {
		return nil, errors.Wrap(err, "failed to seed database")
	}

	secret, err := auth.LoadSecret(ctx, db, cfg.Auth.TokenSecret)
	if err != nil {
		return nil, err
	}

	tokens, err := auth.NewTokens(secret, cfg.Auth.TokenTTL)
	if err != nil {
		return nil, err
	}

	sender, err := notify.New(cfg.Mail)
	if err != nil {
		return nil, err
	}

	authService := auth.NewService(db, tokens, sender, auth.Options{
		AdminUsername: cfg.Auth.AdminUsername,
		EmailDomain:   cfg.Auth.EmailDomain,
		VerifyURL:     cfg.Auth.VerifyURL,
		MailSubject:   cfg.Mail.Subject,
	})

	webService := web.New(cfg, directory.New(db), authService, reg, gatherer)

	log.Info().Str("mail", cfg.Mail.Transport).Msg("services ready")

	return &Daemon{cfg: cfg, db: db, sender: sender, webService: webService}, nil
}

// Start serves http until the web service is shut down.
func (d *Daemon) Start() error {
	return d.webService.Start(fmt.Sprintf(":%d", d.cfg.Webserver.Port))
}

// WaitShutdown blocks until a termination signal stopped the web service.
func (d *Daemon) WaitShutdown() {
	d.webService.WaitShutdown()
}

// Close releases the sender and the database.
func (d *Daemon) Close() error {
	if err := d.sender.Close(); err != nil {
		log.Error().Err(err).Msg("failed to close mail sender")
	}

	return database.Close(d.db)
}

// Migrate opens the database, migrates the schema, seeds it and closes it again.
func Migrate(ctx context.Context, cfg *config.Config) error {
	db, err := database.Open(cfg)
	if err != nil {
		return err
	}

	defer func() { _ = database.Close(db) }()

	if err = database.Migrate(db); err != nil {
		return err
	}

	return seed(ctx, cfg, db)
}

// RotateSecret replaces the generated token secret. It has no effect on a
// configured secret.
func RotateSecret(ctx context.Context, cfg *config.Config) error {
	if cfg.Auth.TokenSecret != "" {
		log.Warn().Msg("a token secret is configured, the stored secret is not used")
	}

	db, err := database.Open(cfg)
	if err != nil {
		return err
	}

	defer func() { _ = database.Close(db) }()

	if err = database.Migrate(db); err != nil {
		return err
	}

	return auth.RotateSecret(ctx, db)
}
