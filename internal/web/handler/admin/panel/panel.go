// Package panel serves the admin panels of every collection.
//
// A panel renders its mirror, so the list shows sample records until the
// store delivers real ones, and every form posts through mirror.Panel so a
// successful mutation patches the list without refetching it.
package panel

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/portfolio-admin/portfolio-admin/internal/config"
	"github.com/portfolio-admin/portfolio-admin/internal/db/models"
	"github.com/portfolio-admin/portfolio-admin/internal/mirror"
	"github.com/portfolio-admin/portfolio-admin/internal/web/handler"
	authmw "github.com/portfolio-admin/portfolio-admin/internal/web/middleware/auth"
	"github.com/portfolio-admin/portfolio-admin/internal/web/navigation"
)

const (
	// ListTemplate renders the records of a panel.
	ListTemplate = "admin/panel/list"

	// FormTemplate renders the draft of a panel.
	FormTemplate = "admin/panel/form"
)

// Service is the admin panel handler service.
type Service struct {
	handler.Service
	cfg *config.Config
}

// Handler is the admin panel handler.
var Handler = Service{}

// Init registers the panels of every collection.
func (s *Service) Init(app *fiber.App, cfg *config.Config, deps *handler.Deps) error {
	if app == nil || cfg == nil || deps == nil || deps.Content == nil {
		return errors.New(handler.ErrNilACDFatalLogMsg)
	}

	s.cfg = cfg
	c := deps.Content

	mount(app, cfg, "projects", "Projects", c.Projects.Panel, projectBinder{})
	mount(app, cfg, "blogs", "Blogs", c.Blogs.Panel, blogBinder{now: time.Now})
	mount(app, cfg, "services", "Services", c.Services.Panel, serviceBinder{})
	mount(app, cfg, "heroImages", "Hero Images", c.HeroImages.Panel, heroImageBinder{})

	return nil
}

type page[T models.Document[T], P any] struct {
	path   string
	slug   string
	title  string
	panel  *mirror.Panel[T, P]
	binder Binder[T, P]
	cfg    *config.Config
}

func mount[T models.Document[T], P any](
	app *fiber.App, cfg *config.Config, slug, title string, panel *mirror.Panel[T, P], binder Binder[T, P],
) {
	p := &page[T, P]{
		path:   handler.AdminPath + "/" + slug,
		slug:   slug,
		title:  title,
		panel:  panel,
		binder: binder,
		cfg:    cfg,
	}

	app.Route(p.path, func(router fiber.Router) {
		router.Use(authmw.RequireAdmin)
		router.Get(handler.RouterRootPath, p.list)
		router.Get("/new", p.new)
		router.Get("/cancel", p.cancel)
		router.Get("/:id/edit", p.edit)
		router.Post(handler.RouterRootPath, p.create)
		router.Post("/:id", p.update)
		router.Post("/:id/delete", p.delete)
	})
}

func (p *page[T, P]) nav(current string) *navigation.Context {
	nav := navigation.Admin(p.title, navigation.SectionContent, p.slug)

	if current == "" {
		return nav.AddBreadcrumb(p.title, p.path, true)
	}

	return nav.AddBreadcrumb(p.title, p.path, false).AddBreadcrumb(current, "", true)
}

// takeAlert returns the pending alert once.
func (p *page[T, P]) takeAlert() string {
	alert := p.panel.Alert()
	p.panel.ClearAlert()

	return alert
}

func (p *page[T, P]) list(c *fiber.Ctx) error {
	records := p.panel.Records()

	rows := make([]Row, 0, len(records))
	for _, record := range records {
		rows = append(rows, p.binder.Row(record))
	}

	return c.Render(ListTemplate, fiber.Map{
		"Navigation": p.nav(""),
		"Title":      p.title,
		"Label":      p.panel.Label(),
		"Path":       p.path,
		"Rows":       rows,
		"Samples":    p.panel.Phase() == mirror.PhaseFallback,
		"Alert":      p.takeAlert(),
	}, handler.BaseLayout)
}

func (p *page[T, P]) new(c *fiber.Ctx) error {
	draft := p.panel.BeginCreate(p.binder.Blank())

	return p.renderForm(c, fiber.StatusOK, draft, "")
}

func (p *page[T, P]) edit(c *fiber.Ctx) error {
	draft, ok := p.panel.BeginEdit(c.Params("id"))
	if !ok {
		p.panel.Fail("Failed to edit " + p.panel.Label() + ": it no longer exists")
		return c.Redirect(p.path)
	}

	return p.renderForm(c, fiber.StatusOK, draft, "")
}

func (p *page[T, P]) cancel(c *fiber.Ctx) error {
	p.panel.DiscardDraft()
	return c.Redirect(p.path)
}

func (p *page[T, P]) create(c *fiber.Ctx) error {
	draft, ok := p.panel.Draft()
	if !ok || !draft.IsNew {
		draft = p.panel.BeginCreate(p.binder.Blank())
	}

	record, err := p.binder.Bind(p.form(c), draft.Record)
	if err != nil {
		return p.renderForm(c, fiber.StatusBadRequest, mirror.Draft[T]{Record: record, IsNew: true}, err.Error())
	}

	p.panel.SetDraft(record)

	if _, err = p.panel.Create(c.UserContext(), record); err != nil {
		return p.renderForm(c, handler.ErrorStatus(err), mirror.Draft[T]{Record: record, IsNew: true}, "")
	}

	log.Info().Str("collection", p.slug).Msg("record created from admin panel")

	return c.Redirect(p.path)
}

func (p *page[T, P]) update(c *fiber.Ctx) error {
	id := c.Params("id")

	draft, ok := p.panel.Draft()
	if !ok || draft.IsNew || draft.Record.Key() != id {
		draft, ok = p.panel.BeginEdit(id)
	}

	base := draft.Record
	if !ok {
		base = p.binder.Blank().WithKey(id)
	}

	record, err := p.binder.Bind(p.form(c), base)
	if err != nil {
		return p.renderForm(c, fiber.StatusBadRequest, mirror.Draft[T]{Record: record}, err.Error())
	}

	p.panel.SetDraft(record)

	if _, err = p.panel.Update(c.UserContext(), id, p.binder.Patch(record)); err != nil {
		return p.renderForm(c, handler.ErrorStatus(err), mirror.Draft[T]{Record: record}, "")
	}

	log.Info().Str("collection", p.slug).Str("id", id).Msg("record updated from admin panel")

	return c.Redirect(p.path)
}

func (p *page[T, P]) delete(c *fiber.Ctx) error {
	id := c.Params("id")

	// the panel keeps the alert for the list page
	if _, err := p.panel.Delete(c.UserContext(), id); err == nil {
		log.Info().Str("collection", p.slug).Str("id", id).Msg("record deleted from admin panel")
	}

	return c.Redirect(p.path)
}

func (p *page[T, P]) form(c *fiber.Ctx) *Form {
	return &Form{c: c, maxImageSize: p.cfg.Webserver.MaxImageSize}
}

func (p *page[T, P]) renderForm(c *fiber.Ctx, status int, draft mirror.Draft[T], formErr string) error {
	action, heading := p.path+"/"+draft.Record.Key(), "Edit "+p.panel.Label()
	if draft.IsNew {
		action, heading = p.path, "Add "+p.panel.Label()
	}

	return c.Status(status).Render(FormTemplate, fiber.Map{
		"Navigation": p.nav(heading),
		"Title":      heading,
		"Path":       p.path,
		"Action":     action,
		"IsNew":      draft.IsNew,
		"Fields":     p.binder.Fields(draft.Record),
		"Error":      formErr,
		"Alert":      p.takeAlert(),
	}, handler.BaseLayout)
}
