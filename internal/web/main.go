// Package web serves the REST api of the portal.
package web

import (
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog/log"

	"github.com/navportal/navportal/internal/apperr"
	"github.com/navportal/navportal/internal/auth"
	"github.com/navportal/navportal/internal/config"
	"github.com/navportal/navportal/internal/directory"
	accesslog "github.com/navportal/navportal/internal/logger/adapter/fiber"
	"github.com/navportal/navportal/internal/metrics"
	"github.com/navportal/navportal/internal/web/handler"
	authhandler "github.com/navportal/navportal/internal/web/handler/auth"
	"github.com/navportal/navportal/internal/web/handler/group"
	"github.com/navportal/navportal/internal/web/handler/link"
)

const (
	// HealthPath is the liveness probe.
	HealthPath = handler.APIPath + "/health"
	// MetricsPath serves prometheus metrics.
	MetricsPath = "/metrics"

	readBufferSize = 8192
)

// Service represents the web service.
type Service struct {
	App          *fiber.App
	cfg          *config.Config
	fastShutDown bool
	alive        atomic.Bool
}

// Start starts the web service on the given address and blocks until it stops.
func (s *Service) Start(addr string) error {
	var doneFiber = make(chan bool)

	go func() {
		if err := s.App.Listen(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Msgf("fiber listen error: %v", err)
		}

		doneFiber <- true
	}()

	<-doneFiber // wait for fiber to stop

	return nil
}

// WaitShutdown waits for SIGINT or SIGTERM and stops the web service.
func (s *Service) WaitShutdown() {
	irqSig := make(chan os.Signal, 1)
	signal.Notify(irqSig, syscall.SIGINT, syscall.SIGTERM)

	sig := <-irqSig
	log.Info().Msgf("shutdown request (signal: %v)", sig)

	s.Shutdown()
}

// Shutdown stops the web service. Unless fast shutdown is set, the health probe
// fails for the configured shutdown time first so load balancers stop routing here.
func (s *Service) Shutdown() {
	s.alive.Store(false)

	if !s.fastShutDown {
		log.Info().Msgf(
			"graceful shutdown: return 503 while %d seconds to let LB to remove this pod from active targets",
			s.cfg.Webserver.ShutDownTime,
		)

		time.Sleep(time.Duration(s.cfg.Webserver.ShutDownTime) * time.Second)
	}

	log.Info().Msg("stopping http server ...")

	if err := s.App.Shutdown(); err != nil {
		log.Error().Err(err).Msg("")
	}

	log.Info().Msg("http server was stopped ... good bye...")
}

// Alive reports whether the health probe succeeds.
func (s *Service) Alive() bool {
	return s.alive.Load()
}

// Health handles the liveness probe.
func (s *Service) Health(c *fiber.Ctx) error {
	if !s.Alive() {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"status": "shutting down"})
	}

	return c.JSON(fiber.Map{"status": "ok"})
}

// ErrorHandler renders every error as {"error": message} with the status of its kind.
// Store failures are logged and answered with their generic message only.
func ErrorHandler(c *fiber.Ctx, err error) error {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return c.Status(fe.Code).JSON(fiber.Map{"error": fe.Message})
	}

	appErr := apperr.From(err)
	if appErr.Kind == apperr.KindStore {
		log.Error().Err(err).Str("path", c.Path()).Str("method", c.Method()).Msg("request failed")

		return c.Status(appErr.Status()).JSON(fiber.Map{"error": appErr.Message})
	}

	return c.Status(appErr.Status()).JSON(fiber.Map{"error": appErr.Error()})
}

// New creates the web service and registers all routes.
// Metrics are registered on reg and served from gatherer.
func New(
	cfg *config.Config,
	dir *directory.Service,
	authService *auth.Service,
	reg prometheus.Registerer,
	gatherer prometheus.Gatherer,
) *Service {
	if cfg == nil || dir == nil || authService == nil {
		log.Fatal().Msg(handler.ErrNilFatalLogMsg)
		return nil
	}

	app := fiber.New(
		fiber.Config{
			ReadBufferSize: readBufferSize,
			AppName:        cfg.Title,
			CaseSensitive:  true,
			Prefork:        false,
			Immutable:      true,
			BodyLimit:      cfg.Webserver.BodyLimit,
			ErrorHandler:   ErrorHandler,
		},
	)

	service := &Service{
		cfg:          cfg,
		App:          app,
		fastShutDown: cfg.DevMode,
	}
	service.alive.Store(true)

	app.Use(metrics.New(reg, cfg.Log.ServiceName).Middleware())

	if !cfg.Webserver.DisableRecover {
		app.Use(recover.New(recover.Config{EnableStackTrace: cfg.DevMode}))
	}

	app.Use(requestid.New())
	app.Use(accesslog.New(accesslog.Config{Config: cfg.Log, CheckAliveURI: HealthPath}))
	app.Use(cors.New(corsConfig(cfg.Webserver.AllowOrigins)))

	app.Get(MetricsPath, metrics.Handler(gatherer))

	api := app.Group(handler.APIPath)
	api.Get("/health", service.Health)

	authhandler.Handler.Init(api, authService)
	group.Handler.Init(api, dir, authService)
	link.Handler.Init(api, dir, authService)

	return service
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
	}

	if len(origins) > 0 {
		cfg.AllowOrigins = strings.Join(origins, ",")
	}

	return cfg
}
