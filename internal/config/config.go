// Package config handles input from etc/*.toml files
package config

import (
	"bytes"
	"encoding/json"
	"os"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
)

// EnvConfigJSON names the environment variable holding a JSON override of the toml config.
const EnvConfigJSON = "NAVPORTAL_CONFIG_JSON"

const (
	defaultShutDownTime = 5
	defaultTokenTTL     = 365 * 24 * time.Hour
	defaultBodyLimit    = 4 * 1024 * 1024
	defaultMailSubject  = "Verify your email address"
	defaultSQLiteFile   = "navportal.db"
)

// ReadConfig from config file.
func ReadConfig(path string) (Config, error) {
	var (
		c             Config
		JSONConfigEnv string
		err           error
	)

	// Read main configuration
	if path == "" {
		path = "./etc/"
	}

	if _, err = toml.DecodeFile(path+"main.toml", &c); err != nil {
		return Config{}, errors.Wrap(err, "failed to read main config file")
	}

	// override it from env
	JSONConfigEnv = os.Getenv(EnvConfigJSON)

	if JSONConfigEnv != "" {
		c, err = decodeAndMergeConfig(c, JSONConfigEnv)
		if err != nil {
			return c, err
		}
	}

	return c, validate(&c)
}

func decodeAndMergeConfig(c Config, configAsJSON string) (Config, error) {
	err := json.Unmarshal([]byte(configAsJSON), &c)
	if err != nil {
		return Config{}, errors.Wrap(err, "failed to decode json config override")
	}

	return c, nil
}

// DumpConfig config as TOML String.
func DumpConfig(c *Config) (string, error) {
	var buffer bytes.Buffer
	t := toml.NewEncoder(&buffer)

	if err := t.Encode(c); err != nil {
		return "", err //nolint: wrapcheck
	}

	return buffer.String(), nil
}

// DumpConfigJSON config as JSON String.
func DumpConfigJSON(c *Config) (string, error) {
	var buffer bytes.Buffer
	j := json.NewEncoder(&buffer)
	j.SetIndent("", "  ")

	if err := j.Encode(c); err != nil {
		return "", err //nolint: wrapcheck
	}

	return buffer.String(), nil
}

// validate checks the settings the daemon can not start without and fills in defaults.
func validate(c *Config) error {
	invalidErrMessage := "invalid config"

	// validate webserver listening port
	if c.Webserver.Port == 0 {
		return errors.Wrap(ErrWebServerPortCanNotBeZero, invalidErrMessage)
	}

	if c.Webserver.URL == "" {
		return errors.Wrap(ErrEmptyURL, invalidErrMessage)
	}

	if c.Webserver.ShutDownTime == 0 {
		c.Webserver.ShutDownTime = defaultShutDownTime
	}

	if c.Webserver.BodyLimit == 0 {
		c.Webserver.BodyLimit = defaultBodyLimit
	}

	c.DB.GormEngine = strings.ToLower(c.DB.GormEngine)

	switch c.DB.GormEngine {
	case "":
		c.DB.GormEngine = EngineSQLite
	case EngineSQLite, EngineMySQL, EnginePostgres:
	default:
		return errors.Wrapf(ErrUnsupportedGormEngine, "%s: %q", invalidErrMessage, c.DB.GormEngine)
	}

	if c.DB.GormEngine == EngineSQLite && c.DB.File == "" {
		c.DB.File = defaultSQLiteFile
	}

	if c.Auth.AdminUsername == "" {
		return errors.Wrap(ErrEmptyAdminUsername, invalidErrMessage)
	}

	if c.Auth.EmailDomain == "" {
		return errors.Wrap(ErrEmptyEmailDomain, invalidErrMessage)
	}

	if !strings.HasPrefix(c.Auth.EmailDomain, "@") {
		c.Auth.EmailDomain = "@" + c.Auth.EmailDomain
	}

	if c.Auth.AdminEmail == "" {
		c.Auth.AdminEmail = c.Auth.AdminUsername + c.Auth.EmailDomain
	}

	if c.Auth.TokenTTL <= 0 {
		c.Auth.TokenTTL = defaultTokenTTL
	}

	if c.Auth.VerifyURL == "" {
		c.Auth.VerifyURL = strings.TrimSuffix(c.Webserver.URL, "/") + "/auth/verify-email"
	}

	switch c.Mail.Transport {
	case "":
		c.Mail.Transport = MailTransportLog
	case MailTransportLog, MailTransportSMTP, MailTransportAMQP:
	default:
		return errors.Wrapf(ErrUnsupportedMailTransport, "%s: %q", invalidErrMessage, c.Mail.Transport)
	}

	if c.Mail.Subject == "" {
		c.Mail.Subject = defaultMailSubject
	}

	return nil
}
