// Package dashboard provides the admin overview of every collection.
package dashboard

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/portfolio-admin/portfolio-admin/internal/config"
	"github.com/portfolio-admin/portfolio-admin/internal/content"
	"github.com/portfolio-admin/portfolio-admin/internal/web/handler"
	authmw "github.com/portfolio-admin/portfolio-admin/internal/web/middleware/auth"
	"github.com/portfolio-admin/portfolio-admin/internal/web/navigation"
)

const (
	// Path is the path to the dashboard page.
	Path = handler.RootPath + "dashboard"

	// TemplateName is the name of the dashboard template.
	TemplateName = "dashboard/dashboard"

	// NotAvailable is shown when a collection has no titled record.
	NotAvailable = "N/A"
)

// Stat is one counter card.
type Stat struct {
	Title string
	Value int
	URL   string
}

// Data represents the complete dashboard data.
type Data struct {
	Stats               []Stat
	MostRecentProject   string
	LatestBlog          string
	TotalImages         int
	TotalServices       int
	ProjectsFromSamples bool
}

// Service is the dashboard handler service.
type Service struct {
	handler.Service
	cfg     *config.Config
	content *content.Content
}

// Handler is the dashboard handler.
var Handler = Service{}

// Init initializes the dashboard handler.
func (s *Service) Init(app *fiber.App, cfg *config.Config, deps *handler.Deps) error {
	if app == nil || cfg == nil || deps == nil || deps.Content == nil {
		return errors.New(handler.ErrNilACDFatalLogMsg)
	}

	s.cfg = cfg
	s.content = deps.Content

	app.Get(Path, authmw.RequireAdmin, s.Get)

	return nil
}

// Get handles the dashboard page rendering.
func (s *Service) Get(c *fiber.Ctx) error {
	nav := navigation.Admin("Dashboard", navigation.SectionDashboard, "dashboard").
		AddBreadcrumb("Dashboard", Path, true)

	return c.Render(TemplateName, fiber.Map{
		"Navigation": nav,
		"Data":       s.Overview(c),
	}, handler.BaseLayout)
}

// Overview counts every collection. An empty or unreadable collection
// counts as its single placeholder record.
func (s *Service) Overview(c *fiber.Ctx) Data {
	ctx := c.UserContext()

	projects := s.content.Projects.Overview(ctx)
	blogs := s.content.Blogs.Overview(ctx)
	images := s.content.HeroImages.Overview(ctx)
	services := s.content.Services.Overview(ctx)

	data := Data{
		Stats: []Stat{
			{Title: "Total Projects", Value: len(projects), URL: handler.AdminPath + "/projects"},
			{Title: "Total Images", Value: len(images), URL: handler.AdminPath + "/heroImages"},
			{Title: "Published Blogs", Value: len(blogs), URL: handler.AdminPath + "/blogs"},
			{Title: "Total Services", Value: len(services), URL: handler.AdminPath + "/services"},
		},
		MostRecentProject: NotAvailable,
		LatestBlog:        NotAvailable,
		TotalImages:       len(images),
		TotalServices:     len(services),
	}

	if len(projects) > 0 && projects[0].Title != "" {
		data.MostRecentProject = projects[0].Title
	}

	if len(blogs) > 0 && blogs[0].Title != "" {
		data.LatestBlog = blogs[0].Title
	}

	return data
}
