package config

import (
	"errors"
)

var (
	// ErrEmptyURL error if config webserver.URL is empty.
	ErrEmptyURL = errors.New("toml config webserver.url can not be empty")

	// ErrWebServerPortCanNotBeZero error if config webserver listening port is 0.
	ErrWebServerPortCanNotBeZero = errors.New("toml config webserver.port listening port can not be 0")

	// ErrUnsupportedGormEngine error if config db.GormEngine is not one of sqlite, mysql or postgres.
	ErrUnsupportedGormEngine = errors.New("toml config db.GormEngine is not supported")

	// ErrEmptyAdminUsername error if config auth.AdminUsername is empty.
	ErrEmptyAdminUsername = errors.New("toml config auth.AdminUsername can not be empty")

	// ErrEmptyEmailDomain error if config auth.EmailDomain is empty.
	ErrEmptyEmailDomain = errors.New("toml config auth.EmailDomain can not be empty")

	// ErrUnsupportedMailTransport error if config mail.Transport is unknown.
	ErrUnsupportedMailTransport = errors.New("toml config mail.Transport is not supported")
)
