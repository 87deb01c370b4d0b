package login

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/portfolio-admin/portfolio-admin/internal/auth"
	"github.com/portfolio-admin/portfolio-admin/internal/config"
	"github.com/portfolio-admin/portfolio-admin/internal/db/models"
	"github.com/portfolio-admin/portfolio-admin/internal/web/handler"
	"github.com/portfolio-admin/portfolio-admin/internal/web/handler/dashboard"
	authmw "github.com/portfolio-admin/portfolio-admin/internal/web/middleware/auth"
	"github.com/portfolio-admin/portfolio-admin/internal/web/session"
)

const (
	// Path is the path to the login page.
	Path = authmw.LoginPath

	// TemplateName is the name of the login template.
	TemplateName = "login"
)

// Form is the submitted login form.
type Form struct {
	Username string `form:"username"`
	Password string `form:"password"`
	Code     string `form:"code"`
}

// Service is the login handler service.
type Service struct {
	handler.Service
	cfg   *config.Config
	users *auth.LocalProvider
}

// Handler is the login handler.
var Handler = Service{}

// Init initializes the login handler.
func (s *Service) Init(app *fiber.App, cfg *config.Config, deps *handler.Deps) error {
	if app == nil || cfg == nil || deps == nil || deps.Users == nil {
		return errors.New(handler.ErrNilACDFatalLogMsg)
	}

	s.cfg = cfg
	s.users = deps.Users

	// register routes
	app.Route(Path, func(router fiber.Router) {
		router.Get(handler.RouterRootPath, s.Get)
		router.Post(handler.RouterRootPath, s.Post)
	})

	return nil
}

func (s *Service) render(c *fiber.Ctx, status int, form Form, err error) error {
	data := fiber.Map{
		"Title":    s.cfg.Title,
		"Username": form.Username,
		"NeedCode": errors.Is(err, ErrCodeRequired) || errors.Is(err, ErrInvalidCode),
	}

	if err != nil {
		data["Error"] = err.Error()
	}

	return c.Status(status).Render(TemplateName, data)
}

// Get handles the login page rendering.
func (s *Service) Get(c *fiber.Ctx) error {
	if _, ok := authmw.CurrentUser(c); ok {
		return c.Redirect(dashboard.Path)
	}

	return s.render(c, fiber.StatusOK, Form{}, nil)
}

// Post handles the login form submission.
func (s *Service) Post(c *fiber.Ctx) error {
	form := Form{}
	if err := c.BodyParser(&form); err != nil {
		return s.render(c, fiber.StatusBadRequest, form, ErrInvalidFormData)
	}

	user, err := s.authenticate(c.UserContext(), form)
	if err != nil {
		log.Info().Str("username", form.Username).Err(err).Msg("login failed")
		return s.render(c, fiber.StatusUnauthorized, form, err)
	}

	sessionID, err := session.GenerateSessionID()
	if err != nil {
		log.Error().Err(err).Msg("failed to generate session ID")
		return s.render(c, fiber.StatusInternalServerError, form, ErrInternalServerError)
	}

	userSession := &session.Data{
		UserID:   user.ID,
		Username: user.Username,
	}

	if err = userSession.Write(sessionID, s.cfg.Webserver.Session.ExpiryTime); err != nil {
		log.Error().Err(err).Msg("failed to write session")
		return s.render(c, fiber.StatusInternalServerError, form, ErrInternalServerError)
	}

	// set login cookie
	cookieSettings := &fiber.Cookie{
		Name:     session.CookieName,
		Value:    sessionID,
		MaxAge:   int(s.cfg.Webserver.Session.ExpiryTime.Seconds()),
		Secure:   true,
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	}

	if s.cfg.DevMode {
		cookieSettings.Secure = false
	}

	c.Cookie(cookieSettings)

	log.Info().Str("username", user.Username).Msg("user logged in")

	return c.Redirect(dashboard.Path)
}

// authenticate maps provider failures to the messages shown on the form.
// Unknown users and wrong passwords are reported alike.
func (s *Service) authenticate(ctx context.Context, form Form) (*models.User, error) {
	user, err := s.users.Authenticate(ctx, form.Username, form.Password, form.Code)

	switch {
	case err == nil:
		return user, nil
	case errors.Is(err, auth.ErrUserNotFound), errors.Is(err, auth.ErrInvalidPassword):
		return nil, ErrInvalidCredentials
	case errors.Is(err, auth.ErrTOTPRequired):
		return nil, ErrCodeRequired
	case errors.Is(err, auth.ErrInvalidTOTP):
		return nil, ErrInvalidCode
	case errors.Is(err, auth.ErrUserAccountDisabled):
		return nil, ErrInactive
	default:
		log.Error().Err(err).Msg("failed to authenticate")
		return nil, ErrInternalServerError
	}
}
