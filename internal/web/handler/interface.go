package handler

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/portfolio-admin/portfolio-admin/internal/auth"
	"github.com/portfolio-admin/portfolio-admin/internal/config"
	"github.com/portfolio-admin/portfolio-admin/internal/content"
	"github.com/portfolio-admin/portfolio-admin/internal/mailer"
)

// Deps are the collaborators shared by the handlers.
type Deps struct {
	DB      *gorm.DB
	Content *content.Content
	Mailer  *mailer.Client
	Users   *auth.LocalProvider
}

// Service is the interface for a web handler service.
type Service interface {
	Init(app *fiber.App, cfg *config.Config, deps *Deps) error
}
