package auth

import (
	"context"
	"errors"
	"net/url"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/navportal/navportal/internal/apperr"
	"github.com/navportal/navportal/internal/db/controller/user"
	"github.com/navportal/navportal/internal/db/models"
	"github.com/navportal/navportal/internal/notify"
)

const bearerPrefix = "Bearer "

// Options configure the identity rules of a Service.
type Options struct {
	AdminUsername string
	EmailDomain   string
	VerifyURL     string
	MailSubject   string
}

// Service provides registration, login and token checks.
type Service struct {
	db     *gorm.DB
	tokens *Tokens
	sender notify.Sender
	opts   Options
}

// LoginResult is returned on successful login.
type LoginResult struct {
	Token    string `json:"token"`
	Username string `json:"username"`
}

// NewService creates a new auth service.
func NewService(db *gorm.DB, tokens *Tokens, sender notify.Sender, opts Options) *Service {
	return &Service{db: db, tokens: tokens, sender: sender, opts: opts}
}

func storeErr(err error) error {
	var appErr *apperr.Error
	if err == nil || errors.As(err, &appErr) {
		return err
	}

	return apperr.Store(err, msgStoreFailed)
}

// Register stores an inactive account and sends its verification link.
// The account is rolled back when the message can not be sent.
func (s *Service) Register(ctx context.Context, username, email, password string) error {
	username = strings.TrimSpace(username)
	email = strings.TrimSpace(email)

	switch {
	case username == "":
		return apperr.Validation(msgRequired, "username")
	case email == "":
		return apperr.Validation(msgRequired, "email")
	}

	if err := CheckPassword(password); err != nil {
		return err
	}

	if err := CheckEmailDomain(email, s.opts.EmailDomain); err != nil {
		return err
	}

	hash, err := models.HashPassword(password)
	if err != nil {
		return apperr.Store(err, msgStoreFailed)
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if taken, err := user.UsernameExists(tx, username); err != nil {
			return err
		} else if taken {
			return apperr.Conflict(msgUsernameTaken)
		}

		if taken, err := user.EmailExists(tx, email); err != nil {
			return err
		} else if taken {
			return apperr.Conflict(msgEmailTaken)
		}

		token := uuid.NewString()
		u := &models.User{Username: username, Email: email, Password: hash, VerificationToken: &token}

		if err := user.Create(tx, u); err != nil {
			if errors.Is(err, user.ErrDuplicate) {
				return apperr.Conflict(msgAccountTaken)
			}

			return err
		}

		return s.sendVerification(ctx, u, token)
	})
	if err != nil {
		return storeErr(err)
	}

	log.Info().Str("username", username).Msg("user registered")

	return nil
}

// VerifyEmail activates the account holding token. A token works once.
func (s *Service) VerifyEmail(ctx context.Context, token string) error {
	db := s.db.WithContext(ctx)

	u, err := user.GetByVerificationToken(db, token)
	if errors.Is(err, user.ErrUserNotFound) {
		return apperr.NotFound(msgInvalidVerification)
	}

	if err != nil {
		return storeErr(err)
	}

	if err = user.Activate(db, u.ID, token); err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return apperr.NotFound(msgInvalidVerification)
		}

		return storeErr(err)
	}

	log.Info().Str("username", u.Username).Msg("email verified")

	return nil
}

// ResendVerification issues a new token for the pending account of email and sends it.
func (s *Service) ResendVerification(ctx context.Context, email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return apperr.Validation(msgRequired, "email")
	}

	return storeErr(s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		u, err := user.GetPendingByEmail(tx, email)
		if errors.Is(err, user.ErrUserNotFound) {
			return apperr.NotFound(msgNoPendingAccount)
		}

		if err != nil {
			return err
		}

		token := uuid.NewString()
		if err = user.SetVerificationToken(tx, u.ID, token); err != nil {
			return err
		}

		return s.sendVerification(ctx, u, token)
	}))
}

func (s *Service) sendVerification(ctx context.Context, u *models.User, token string) error {
	msg := notify.Message{
		To:       u.Email,
		Username: u.Username,
		Link:     VerificationLink(s.opts.VerifyURL, token),
		Subject:  s.opts.MailSubject,
	}

	if err := s.sender.SendVerification(ctx, msg); err != nil {
		log.Error().Err(err).Str("username", u.Username).Msg("failed to send verification message")

		return apperr.Store(err, msgSendFailed)
	}

	return nil
}

// VerificationLink appends token as query parameter to base.
func VerificationLink(base, token string) string {
	sep := "?"
	if strings.Contains(base, "?") {
		sep = "&"
	}

	return base + sep + "token=" + url.QueryEscape(token)
}

// Login checks the credentials of login, a username or email, and issues a bearer token.
func (s *Service) Login(ctx context.Context, login, password string) (*LoginResult, error) {
	u, err := user.GetByLogin(s.db.WithContext(ctx), strings.TrimSpace(login))
	if errors.Is(err, user.ErrUserNotFound) {
		return nil, apperr.Auth(nil, msgInvalidCredentials)
	}

	if err != nil {
		return nil, storeErr(err)
	}

	if !u.VerifyPassword(password) {
		return nil, apperr.Auth(nil, msgInvalidCredentials)
	}

	if !u.Active {
		return nil, apperr.Auth(nil, msgVerifyEmailFirst)
	}

	token, err := s.tokens.Issue(u.ID, u.Username)
	if err != nil {
		return nil, apperr.Store(err, "failed to issue token")
	}

	return &LoginResult{Token: token, Username: u.Username}, nil
}

// Authenticate returns the claims of the bearer token in header, the value of
// an Authorization header.
func (s *Service) Authenticate(header string) (*Claims, error) {
	if !strings.HasPrefix(header, bearerPrefix) {
		return nil, apperr.Auth(ErrTokenMissing, msgAuthRequired)
	}

	raw := strings.TrimSpace(strings.TrimPrefix(header, bearerPrefix))
	if raw == "" {
		return nil, apperr.Auth(ErrTokenMissing, msgAuthRequired)
	}

	claims, err := s.tokens.Parse(raw)

	switch {
	case errors.Is(err, ErrTokenExpired):
		return nil, apperr.Auth(err, msgSessionExpired)
	case err != nil:
		return nil, apperr.Auth(err, msgInvalidToken)
	}

	return claims, nil
}

// IsAdmin reports whether claims belong to the admin account.
// The username of the token must match and still belong to the same account.
func (s *Service) IsAdmin(ctx context.Context, claims *Claims) (bool, error) {
	if claims == nil || s.opts.AdminUsername == "" || claims.Username != s.opts.AdminUsername {
		return false, nil
	}

	ok, err := user.HasUsername(s.db.WithContext(ctx), claims.UserID, s.opts.AdminUsername)

	return ok, storeErr(err)
}

// Authorize fails with a forbidden error unless claims belong to the admin.
func (s *Service) Authorize(ctx context.Context, claims *Claims) error {
	ok, err := s.IsAdmin(ctx, claims)
	if err != nil {
		return err
	}

	if !ok {
		return apperr.Forbidden(msgAdminRequired)
	}

	return nil
}
