// Package checkalive serves the liveness endpoint load balancers probe.
package checkalive

import (
	"errors"
	"sync/atomic"

	"github.com/gofiber/fiber/v2"
)

const (
	// Path is the liveness endpoint path.
	Path = "/checkalive"
)

// Service is the checkalive handler.
type Service struct {
	alive *atomic.Bool
}

// Handler is the package-level checkalive handler instance.
var Handler = Service{} //nolint:gochecknoglobals

// Init registers the route. The alive flag is owned by the web service; it
// flips to false while draining before shutdown.
func (s *Service) Init(app *fiber.App, alive *atomic.Bool) error {
	if app == nil || alive == nil {
		return errors.New("app or alive flag is nil")
	}

	s.alive = alive

	app.Get(Path, s.Get)

	return nil
}

// Get answers 200 while the service accepts traffic, 503 while draining.
func (s *Service) Get(c *fiber.Ctx) error {
	if !s.alive.Load() {
		return c.SendStatus(fiber.StatusServiceUnavailable)
	}

	return c.SendString("ok")
}
