// Package web implements the token http service.
package web

import (
	"errors"
	"net/http"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/gofiber/adaptor/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"

	"github.com/randtok/randtok/internal/config"
	accesslog "github.com/randtok/randtok/internal/logger/adapter/fiber"
	"github.com/randtok/randtok/internal/web/handler/checkalive"
	"github.com/randtok/randtok/internal/web/handler/token"
)

// Service represents the web service.
type Service struct {
	App   *fiber.App
	cfg   *config.Config
	alive atomic.Bool
}

// New creates the web service with the given configuration.
func New(cfg *config.Config) (*Service, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	app := fiber.New(
		fiber.Config{
			ReadBufferSize: 8192,
			AppName:        cfg.Title,
			CaseSensitive:  true,
			Immutable:      true,
		},
	)

	app.Use(accesslog.New(accesslog.Config{
		Config:        cfg.Log,
		CheckAliveURI: checkalive.Path,
	}))

	service := &Service{
		cfg: cfg,
		App: app,
	}
	service.alive.Store(true)

	if err := token.Handler.Init(app, cfg); err != nil {
		return nil, err
	}

	if err := checkalive.Handler.Init(app, &service.alive); err != nil {
		return nil, err
	}

	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	return service, nil
}

// Start starts the web service on the given address and blocks until the
// listener stops.
func (s *Service) Start(addr string) error {
	doneFiber := make(chan bool)

	go func() {
		if err := s.App.Listen(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Msgf("fiber listen error: %v", err)
		}

		doneFiber <- true
	}()

	<-doneFiber

	return nil
}

// WaitShutdown waits for SIGINT/SIGTERM and drains before stopping.
func (s *Service) WaitShutdown() {
	irqSig := make(chan os.Signal, 1)
	signal.Notify(irqSig, syscall.SIGINT, syscall.SIGTERM)

	sig := <-irqSig
	log.Info().Msgf("shutdown request (signal: %v)", sig)

	// flip checkalive to 503 first so load balancers drop this instance
	log.Info().Msgf("graceful shutdown: draining for %d seconds", s.cfg.Webserver.ShutDownTime)
	s.alive.Store(false)
	time.Sleep(time.Duration(s.cfg.Webserver.ShutDownTime) * time.Second)

	serverShutdown := make(chan struct{})

	go func() {
		log.Info().Msg("stopping http server ...")

		if err := s.App.Shutdown(); err != nil {
			log.Error().Err(err).Msg("")
		}

		serverShutdown <- struct{}{}
	}()

	<-serverShutdown
	log.Info().Msg("http server was stopped ... good bye...")
}
