package auth

import (
	"context"
	"crypto/rand"
	"encoding/hex"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/navportal/navportal/internal/db/controller/setting"
)

// SettingTokenSecret names the setting holding the generated signing secret.
const SettingTokenSecret = "token_secret"

const secretBytes = 32

// LoadSecret returns configured when set. Otherwise the secret kept in the
// settings table is returned, generating and storing it on first use.
func LoadSecret(ctx context.Context, db *gorm.DB, configured string) ([]byte, error) {
	if configured != "" {
		return []byte(configured), nil
	}

	secret, err := newSecret()
	if err != nil {
		return nil, err
	}

	s, err := setting.GetOrCreate(db.WithContext(ctx), SettingTokenSecret, secret)
	if err != nil {
		return nil, errors.Wrap(err, "load token secret")
	}

	return s.Value, nil
}

// RotateSecret replaces the stored signing secret. Tokens signed before stop working.
func RotateSecret(ctx context.Context, db *gorm.DB) error {
	secret, err := newSecret()
	if err != nil {
		return err
	}

	_, err = setting.Set(db.WithContext(ctx), SettingTokenSecret, secret)

	return errors.Wrap(err, "rotate token secret")
}

func newSecret() ([]byte, error) {
	b := make([]byte, secretBytes)
	if _, err := rand.Read(b); err != nil {
		return nil, errors.Wrap(err, "generate token secret")
	}

	return []byte(hex.EncodeToString(b)), nil
}
