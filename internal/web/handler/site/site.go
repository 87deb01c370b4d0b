// Package site serves the public pages of the portfolio.
//
// Every page lists its collection and shows sample content while the
// collection is empty or the store can not be reached.
package site

import (
	"errors"
	"slices"

	"github.com/gofiber/fiber/v2"

	"github.com/portfolio-admin/portfolio-admin/internal/config"
	"github.com/portfolio-admin/portfolio-admin/internal/content"
	"github.com/portfolio-admin/portfolio-admin/internal/db/models"
	"github.com/portfolio-admin/portfolio-admin/internal/web/handler"
)

// Page paths.
const (
	HomePath     = handler.RootPath
	AboutPath    = handler.RootPath + "about"
	ProjectsPath = handler.RootPath + "projects"
	InsightsPath = handler.RootPath + "insights"
	ServicesPath = handler.RootPath + "services"
)

// Link is an entry of the site navigation.
type Link struct {
	Title  string
	URL    string
	Active bool
}

var links = []Link{
	{Title: "Home", URL: HomePath},
	{Title: "About", URL: AboutPath},
	{Title: "My Services", URL: ServicesPath},
	{Title: "Projects", URL: ProjectsPath},
	{Title: "Contact", URL: handler.RootPath + "contact"},
	{Title: "Insights", URL: InsightsPath},
}

// Menu returns the site navigation with the entry of path marked active.
func Menu(path string) []Link {
	menu := slices.Clone(links)
	for i := range menu {
		menu[i].Active = menu[i].URL == path
	}

	return menu
}

// Service is the public site handler service.
type Service struct {
	handler.Service
	cfg     *config.Config
	content *content.Content
}

// Handler is the public site handler.
var Handler = Service{}

// Init registers the public pages.
func (s *Service) Init(app *fiber.App, cfg *config.Config, deps *handler.Deps) error {
	if app == nil || cfg == nil || deps == nil || deps.Content == nil {
		return errors.New(handler.ErrNilACDFatalLogMsg)
	}

	s.cfg = cfg
	s.content = deps.Content

	app.Get(HomePath, s.Home)
	app.Get(AboutPath, s.About)
	app.Get(ProjectsPath, s.Projects)
	app.Get(InsightsPath, s.Insights)
	app.Get(InsightsPath+"/:id", s.Insight)
	app.Get(ServicesPath, s.Services)
	app.Get(handler.RootPath+"my-services", func(c *fiber.Ctx) error {
		return c.Redirect(ServicesPath, fiber.StatusMovedPermanently)
	})

	return nil
}

func (s *Service) render(c *fiber.Ctx, name, path string, data fiber.Map) error {
	data["Title"] = s.cfg.Title
	data["Menu"] = Menu(path)

	return c.Render(name, data, handler.SiteLayout)
}

// Home renders the hero slides.
func (s *Service) Home(c *fiber.Ctx) error {
	return s.render(c, "site/home", HomePath, fiber.Map{
		"HeroImages": s.content.HeroImages.Public(c.UserContext()),
		"Services":   s.content.Services.Public(c.UserContext()),
	})
}

// About renders the static about page.
func (s *Service) About(c *fiber.Ctx) error {
	return s.render(c, "site/about", AboutPath, fiber.Map{})
}

// Projects renders the project cards.
func (s *Service) Projects(c *fiber.Ctx) error {
	return s.render(c, "site/projects", ProjectsPath, fiber.Map{
		"Projects": s.content.Projects.Public(c.UserContext()),
	})
}

// Services renders the offered services.
func (s *Service) Services(c *fiber.Ctx) error {
	return s.render(c, "site/services", ServicesPath, fiber.Map{
		"Services": s.content.Services.Public(c.UserContext()),
	})
}

// Insights renders the blog posts.
func (s *Service) Insights(c *fiber.Ctx) error {
	return s.render(c, "site/insights", InsightsPath, fiber.Map{
		"Posts": s.content.Blogs.Public(c.UserContext()),
	})
}

// Insight renders a single blog post out of the posts listed on Insights.
func (s *Service) Insight(c *fiber.Ctx) error {
	id := c.Params("id")

	posts := s.content.Blogs.Public(c.UserContext())

	idx := slices.IndexFunc(posts, func(b models.Blog) bool { return b.ID == id })
	if idx < 0 {
		return fiber.ErrNotFound
	}

	return s.render(c, "site/insight", InsightsPath, fiber.Map{
		"Post": posts[idx],
	})
}
