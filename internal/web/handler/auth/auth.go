// Package auth provides the registration and login endpoints.
package auth

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/navportal/navportal/internal/apperr"
	identity "github.com/navportal/navportal/internal/auth"
	"github.com/navportal/navportal/internal/web/handler"
)

const (
	// Path is the base path of the auth endpoints.
	Path = "/auth"

	// RouteRegister creates an account.
	RouteRegister = "/register"
	// RouteVerifyEmail activates an account by token.
	RouteVerifyEmail = "/verify-email"
	// RouteLogin issues a bearer token.
	RouteLogin = "/login"
	// RouteResendVerification sends a new verification link.
	RouteResendVerification = "/resend-verification"

	// QueryToken is the query parameter carrying the verification token.
	QueryToken = "token"

	msgRegistered   = "registration successful, please check your email to verify your account"
	msgVerified     = "email verified, you can log in now"
	msgResent       = "a new verification email has been sent"
	msgInvalidToken = "invalid verification link"
)

type registerInput struct {
	Username string `json:"username" validate:"required,max=100"`
	Email    string `json:"email" validate:"required,email,max=255"`
	Password string `json:"password" validate:"required"`
}

type loginInput struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type resendInput struct {
	Email string `json:"email" validate:"required,email"`
}

// Service is the auth handler service.
type Service struct {
	auth *identity.Service
}

// Handler is the exported instance.
var Handler = Service{}

// Init registers the routes below router.
func (s *Service) Init(router fiber.Router, authService *identity.Service) {
	if router == nil || authService == nil {
		log.Fatal().Msg(handler.ErrNilFatalLogMsg)
		return
	}

	s.auth = authService

	router.Route(Path, func(r fiber.Router) {
		r.Post(RouteRegister, s.Register)
		r.Get(RouteVerifyEmail, s.VerifyEmail)
		r.Post(RouteLogin, s.Login)
		r.Post(RouteResendVerification, s.ResendVerification)
	})
}

// Register handles POST /auth/register.
func (s *Service) Register(c *fiber.Ctx) error {
	in := new(registerInput)
	if err := handler.Bind(c, in); err != nil {
		return err
	}

	if err := s.auth.Register(c.UserContext(), in.Username, in.Email, in.Password); err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(handler.Message{Message: msgRegistered})
}

// VerifyEmail handles GET /auth/verify-email?token=. An unknown token is a bad request.
func (s *Service) VerifyEmail(c *fiber.Ctx) error {
	err := s.auth.VerifyEmail(c.UserContext(), c.Query(QueryToken))
	if errors.Is(err, apperr.ErrNotFound) {
		return apperr.Validation(msgInvalidToken)
	}

	if err != nil {
		return err
	}

	return c.JSON(handler.Message{Message: msgVerified})
}

// Login handles POST /auth/login.
func (s *Service) Login(c *fiber.Ctx) error {
	in := new(loginInput)
	if err := handler.Bind(c, in); err != nil {
		return err
	}

	res, err := s.auth.Login(c.UserContext(), in.Username, in.Password)
	if err != nil {
		return err
	}

	return c.JSON(res)
}

// ResendVerification handles POST /auth/resend-verification.
func (s *Service) ResendVerification(c *fiber.Ctx) error {
	in := new(resendInput)
	if err := handler.Bind(c, in); err != nil {
		return err
	}

	if err := s.auth.ResendVerification(c.UserContext(), in.Email); err != nil {
		return err
	}

	return c.JSON(handler.Message{Message: msgResent})
}
