// Package database opens the catalog store for the configured SQL dialect.
package database

import (
	"errors"
	"strings"
	"time"

	"github.com/glebarez/sqlite"
	pkgerrors "github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/navportal/navportal/internal/config"
	"github.com/navportal/navportal/internal/db/dsn"
	"github.com/navportal/navportal/internal/db/models"
	gormadapter "github.com/navportal/navportal/internal/logger/adapter/gorm"
)

const (
	maxOpenConns    = 25
	maxIdleConns    = 5
	connMaxLifetime = 30 * time.Minute
)

// ErrConfigNil is returned when Open is called without configuration.
var ErrConfigNil = errors.New("database config is nil")

// Dialector returns the gorm dialector for the configured engine.
func Dialector(cfg *config.Config) (gorm.Dialector, error) {
	switch cfg.DB.GormEngine {
	case config.EngineMySQL:
		return mysql.Open(dsn.Create(cfg)), nil
	case config.EnginePostgres:
		return postgres.Open(dsn.Create(cfg)), nil
	case config.EngineSQLite, "":
		return sqlite.Open(dsn.SQLite(cfg.DB)), nil
	default:
		return nil, pkgerrors.Wrapf(config.ErrUnsupportedGormEngine, "engine %q", cfg.DB.GormEngine)
	}
}

// Open connects to the configured database. Driver errors on unique
// constraints are translated to gorm.ErrDuplicatedKey.
func Open(cfg *config.Config) (*gorm.DB, error) {
	if cfg == nil {
		return nil, ErrConfigNil
	}

	dialector, err := Dialector(cfg)
	if err != nil {
		return nil, err
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		TranslateError: true,
		Logger:         gormadapter.New(time.Duration(cfg.DB.SlowQuery) * time.Millisecond),
	})
	if err != nil {
		return nil, pkgerrors.Wrapf(err, "failed to connect %s database", cfg.DB.GormEngine)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, pkgerrors.Wrap(err, "failed to get sql.DB")
	}

	// sqlite serializes writers, a single connection avoids SQLITE_BUSY
	if cfg.DB.GormEngine == config.EngineSQLite || cfg.DB.GormEngine == "" {
		sqlDB.SetMaxOpenConns(1)
	} else {
		sqlDB.SetMaxOpenConns(maxOpenConns)
		sqlDB.SetMaxIdleConns(maxIdleConns)
		sqlDB.SetConnMaxLifetime(connMaxLifetime)
	}

	log.Info().Str("engine", cfg.DB.GormEngine).Msg("database connected")

	return db, nil
}

// Migrate creates or updates the schema including the unique indexes
// the catalog relies on.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(models.All()...); err != nil {
		return pkgerrors.Wrap(err, "failed to migrate database")
	}

	return nil
}

// Close releases the connection pool.
func Close(db *gorm.DB) error {
	if db == nil {
		return nil
	}

	sqlDB, err := db.DB()
	if err != nil {
		return pkgerrors.Wrap(err, "failed to get sql.DB")
	}

	return sqlDB.Close() //nolint:wrapcheck
}

// IsDuplicateKey reports whether err is a unique constraint violation.
// The message checks cover drivers without error translation.
func IsDuplicateKey(err error) bool {
	if err == nil {
		return false
	}

	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	msg := strings.ToLower(err.Error())

	return strings.Contains(msg, "unique constraint") ||
		strings.Contains(msg, "duplicate entry") ||
		strings.Contains(msg, "duplicate key")
}
