// Package token serves random tokens drawn from the configured alphabet.
package token

import (
	"errors"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/rs/zerolog/log"

	"github.com/randtok/randtok"
	"github.com/randtok/randtok/internal/config"
)

const (
	// Path is the token endpoint path.
	Path = "/token"
)

// issued counts tokens handed out since process start.
var issued = promauto.NewCounter(prometheus.CounterOpts{ //nolint:gochecknoglobals
	Name: "randtok_tokens_issued_total",
	Help: "Number of tokens issued over the token endpoint.",
})

// Service is the token handler.
type Service struct {
	cfg       *config.Config
	gen       *randtok.ByteGenerator
	wide      *randtok.RuneGenerator
	validator *validator.Validate

	// the default random source is unsynchronized; serialize draws
	mu sync.Mutex
}

// Handler is the package-level token handler instance.
var Handler = Service{} //nolint:gochecknoglobals

// Init builds the generator from config and registers the route.
func (s *Service) Init(app *fiber.App, cfg *config.Config) error {
	if app == nil || cfg == nil {
		return errors.New("app or cfg is nil")
	}

	s.cfg = cfg
	s.validator = validator.New()

	var err error

	if cfg.Token.Runes {
		s.wide, err = randtok.NewRunes(cfg.Token.Charset)
	} else {
		s.gen, err = randtok.NewString(cfg.Token.Charset)
	}

	if err != nil {
		return err
	}

	app.Get(Path, s.Get)

	return nil
}

// request carries the validated query parameters.
type request struct {
	Length int `validate:"min=1"`
	Count  int `validate:"min=1"`
}

// Get handles GET /token?length=&count=.
func (s *Service) Get(c *fiber.Ctx) error {
	req := request{
		Length: c.QueryInt("length", s.cfg.Token.Length),
		Count:  c.QueryInt("count", s.cfg.Token.Count),
	}

	if err := s.validator.Struct(req); err != nil {
		var validationErrors validator.ValidationErrors
		errors.As(err, &validationErrors)

		messages := make([]string, len(validationErrors))
		for i, ve := range validationErrors {
			messages[i] = "Field '" + ve.Field() + "' failed validation tag '" + ve.Tag() + "'"
		}

		log.Debug().Err(err).Msg("rejected token request")

		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": messages})
	}

	// caps are config values, so they are checked here rather than in tags
	if req.Length > s.cfg.Token.MaxLength || req.Count > s.cfg.Token.MaxCount {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"errors": []string{"length or count exceeds the configured maximum"},
		})
	}

	tokens := make([]string, req.Count)

	s.mu.Lock()
	for i := range tokens {
		tokens[i] = s.generate(req.Length)
	}
	s.mu.Unlock()

	issued.Add(float64(req.Count))

	return c.JSON(fiber.Map{"tokens": tokens})
}

func (s *Service) generate(n int) string {
	if s.wide != nil {
		return randtok.RuneString(s.wide, n)
	}

	return randtok.String(s.gen, n)
}
