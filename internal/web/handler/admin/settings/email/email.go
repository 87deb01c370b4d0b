// Package email serves the admin page editing the EmailJS identifiers of
// the contact form.
package email

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/portfolio-admin/portfolio-admin/internal/config"
	"github.com/portfolio-admin/portfolio-admin/internal/db/controller/emailsettings"
	"github.com/portfolio-admin/portfolio-admin/internal/mailer"
	"github.com/portfolio-admin/portfolio-admin/internal/web/handler"
	authmw "github.com/portfolio-admin/portfolio-admin/internal/web/middleware/auth"
	"github.com/portfolio-admin/portfolio-admin/internal/web/navigation"
)

const (
	// Path is the path to the email settings page.
	Path = handler.AdminPath + "/settings/email"

	// TemplateName is the name of the email settings template.
	TemplateName = "admin/settings/email"
)

// Service is the email settings handler service.
type Service struct {
	handler.Service
	cfg       *config.Config
	db        *gorm.DB
	mailer    *mailer.Client
	validator *validator.Validate
}

// Handler is the email settings handler.
var Handler = Service{}

// Init initializes the email settings handler.
func (s *Service) Init(app *fiber.App, cfg *config.Config, deps *handler.Deps) error {
	if app == nil || cfg == nil || deps == nil || deps.DB == nil || deps.Mailer == nil {
		return errors.New(handler.ErrNilACDFatalLogMsg)
	}

	s.cfg = cfg
	s.db = deps.DB
	s.mailer = deps.Mailer
	s.validator = validator.New()

	app.Get(Path, authmw.RequireAdmin, s.Get)
	app.Post(Path, authmw.RequireAdmin, s.Post)

	return nil
}

func nav() *navigation.Context {
	return navigation.Admin("Email Settings", navigation.SectionSettings, "email").
		AddBreadcrumb("Settings", "", false).
		AddBreadcrumb("Email", Path, true)
}

// Get renders the identifiers the contact form currently sends with.
func (s *Service) Get(c *fiber.Ctx) error {
	settings := s.mailer.Settings(c.UserContext())

	return c.Render(TemplateName, fiber.Map{
		"Settings":   settings,
		"Navigation": nav(),
	}, handler.BaseLayout)
}

// Post handles the email settings form submission.
func (s *Service) Post(c *fiber.Ctx) error {
	settings := &emailsettings.Settings{}
	if err := c.BodyParser(settings); err != nil {
		log.Error().Err(err).Msg("failed to parse email settings form")

		return c.Status(fiber.StatusBadRequest).Render(TemplateName, fiber.Map{
			"Settings":   settings,
			"Navigation": nav(),
			"Error":      []string{"Invalid form data"},
		}, handler.BaseLayout)
	}

	if problems := validationMessages(s.validator.StructCtx(c.UserContext(), settings)); len(problems) > 0 {
		log.Debug().Strs("problems", problems).Msg("validation failed for email settings")

		return c.Status(fiber.StatusBadRequest).Render(TemplateName, fiber.Map{
			"Settings":   settings,
			"Navigation": nav(),
			"Error":      problems,
		}, handler.BaseLayout)
	}

	if err := settings.Save(c.UserContext(), s.db); err != nil {
		log.Error().Err(err).Msg("failed to save email settings")

		return c.Status(fiber.StatusInternalServerError).Render(TemplateName, fiber.Map{
			"Settings":   settings,
			"Navigation": nav(),
			"Error":      []string{"Failed to save settings"},
		}, handler.BaseLayout)
	}

	log.Info().
		Str("service_id", settings.ServiceID).
		Str("template_id", settings.TemplateID).
		Msg("email settings saved successfully")

	return c.Render(TemplateName, fiber.Map{
		"Settings":   settings,
		"Navigation": nav(),
		"Success":    "Settings saved successfully",
	}, handler.BaseLayout)
}
