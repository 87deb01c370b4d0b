// Package contact serves the public contact form.
package contact

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/portfolio-admin/portfolio-admin/internal/config"
	"github.com/portfolio-admin/portfolio-admin/internal/mailer"
	"github.com/portfolio-admin/portfolio-admin/internal/web/handler"
	"github.com/portfolio-admin/portfolio-admin/internal/web/handler/site"
)

const (
	// Path is the path to the contact page.
	Path = handler.RootPath + "contact"

	// TemplateName is the name of the contact template.
	TemplateName = "site/contact"
)

// Service is the contact handler service.
type Service struct {
	handler.Service
	cfg    *config.Config
	mailer *mailer.Client
}

// Handler is the contact handler.
var Handler = Service{}

// Init initializes the contact handler.
func (s *Service) Init(app *fiber.App, cfg *config.Config, deps *handler.Deps) error {
	if app == nil || cfg == nil || deps == nil || deps.Mailer == nil {
		return errors.New(handler.ErrNilACDFatalLogMsg)
	}

	s.cfg = cfg
	s.mailer = deps.Mailer

	app.Route(Path, func(router fiber.Router) {
		router.Get(handler.RouterRootPath, s.Get)
		router.Post(handler.RouterRootPath, s.Post)
	})

	return nil
}

func (s *Service) render(c *fiber.Ctx, msg mailer.Message, status string) error {
	return c.Render(TemplateName, fiber.Map{
		"Title":   s.cfg.Title,
		"Menu":    site.Menu(Path),
		"Message": msg,
		"Status":  status,
	}, handler.SiteLayout)
}

// Get renders an empty form.
func (s *Service) Get(c *fiber.Ctx) error {
	return s.render(c, mailer.Message{}, "")
}

// Post sends the message once and renders the outcome. A sent message
// clears the form, a failed one keeps it for another try.
func (s *Service) Post(c *fiber.Ctx) error {
	var msg mailer.Message
	if err := c.BodyParser(&msg); err != nil {
		log.Debug().Err(err).Msg("failed to parse contact form")
		return s.render(c, msg, mailer.StatusFailed)
	}

	status, err := s.mailer.Send(c.UserContext(), msg)
	if err != nil {
		log.Warn().Err(err).Msg("contact message not delivered")
		return s.render(c, msg, status)
	}

	return s.render(c, mailer.Message{}, status)
}
