// Package content wires every collection to its live hub and admin panel.
package content

import (
	"context"
	"sync"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/portfolio-admin/portfolio-admin/internal/db/controller/blog"
	"github.com/portfolio-admin/portfolio-admin/internal/db/controller/collection"
	"github.com/portfolio-admin/portfolio-admin/internal/db/controller/heroimage"
	"github.com/portfolio-admin/portfolio-admin/internal/db/controller/project"
	"github.com/portfolio-admin/portfolio-admin/internal/db/controller/service"
	"github.com/portfolio-admin/portfolio-admin/internal/db/models"
	"github.com/portfolio-admin/portfolio-admin/internal/fallback"
	"github.com/portfolio-admin/portfolio-admin/internal/live"
	"github.com/portfolio-admin/portfolio-admin/internal/mirror"
)

// Resource bundles everything serving one collection.
type Resource[T models.Document[T], P models.Patch[T]] struct {
	Store *collection.Collection[T, P]
	Hub   *live.Hub[T]
	Panel *mirror.Panel[T, P]

	site      []T
	dashboard []T
}

func newResource[T models.Document[T], P models.Patch[T]](
	label string,
	store func(collection.Publisher[T]) *collection.Collection[T, P],
	admin, dashboard, site []T,
) *Resource[T, P] {
	hub := live.NewHub[T]()
	c := store(hub)

	return &Resource[T, P]{
		Store:     c,
		Hub:       hub,
		Panel:     mirror.NewPanel[T, P](label, c, hub, admin),
		site:      site,
		dashboard: dashboard,
	}
}

// Public returns the records for the public pages, the sample content when
// the collection is empty or can not be read.
func (r *Resource[T, P]) Public(ctx context.Context) []T {
	records, err := r.Store.List(ctx)
	if err != nil {
		log.Error().Err(err).Str("collection", r.Store.Name()).Msg("failed to list public records")
	}

	return mirror.Resolve(r.site, records)
}

// Overview returns the records counted on the dashboard, a single
// placeholder when the collection is empty or can not be read.
func (r *Resource[T, P]) Overview(ctx context.Context) []T {
	records, err := r.Store.List(ctx)
	if err != nil {
		log.Error().Err(err).Str("collection", r.Store.Name()).Msg("failed to list dashboard records")
	}

	return mirror.Resolve(r.dashboard, records)
}

// Content holds the four portfolio collections.
type Content struct {
	Projects   *Resource[models.Project, models.ProjectPatch]
	Blogs      *Resource[models.Blog, models.BlogPatch]
	Services   *Resource[models.Service, models.ServicePatch]
	HeroImages *Resource[models.HeroImage, models.HeroImagePatch]
}

// New creates the collections on db.
func New(db *gorm.DB) *Content {
	admin, dashboard, site := fallback.Admin(), fallback.Dashboard(), fallback.Site()

	return &Content{
		Projects: newResource("project",
			func(p collection.Publisher[models.Project]) *project.Collection { return project.New(db, p) },
			admin.Projects, dashboard.Projects, site.Projects),
		Blogs: newResource("blog",
			func(p collection.Publisher[models.Blog]) *blog.Collection { return blog.New(db, p) },
			admin.Blogs, dashboard.Blogs, site.Blogs),
		Services: newResource("service",
			func(p collection.Publisher[models.Service]) *service.Collection { return service.New(db, p) },
			admin.Services, dashboard.Services, site.Services),
		HeroImages: newResource("hero image",
			func(p collection.Publisher[models.HeroImage]) *heroimage.Collection { return heroimage.New(db, p) },
			admin.HeroImages, dashboard.HeroImages, site.HeroImages),
	}
}

// Models lists the GORM models backing the collections.
func Models() []any {
	return []any{&models.Project{}, &models.Blog{}, &models.Service{}, &models.HeroImage{}}
}

type runner interface {
	Refresh(ctx context.Context) error
	Run(ctx context.Context)
}

func (c *Content) panels() []runner {
	return []runner{c.Projects.Panel, c.Blogs.Panel, c.Services.Panel, c.HeroImages.Panel}
}

// Refresh loads every panel from the store. Failures keep the fallback records.
func (c *Content) Refresh(ctx context.Context) {
	for _, p := range c.panels() {
		_ = p.Refresh(ctx) // logged by the panel
	}
}

// Run keeps every panel in sync with its live hub until ctx ends.
func (c *Content) Run(ctx context.Context) {
	var wg sync.WaitGroup

	for _, p := range c.panels() {
		wg.Add(1)

		go func() {
			defer wg.Done()
			p.Run(ctx)
		}()
	}

	wg.Wait()
}

// Close ends every live subscription.
func (c *Content) Close() {
	c.Projects.Hub.Close()
	c.Blogs.Hub.Close()
	c.Services.Hub.Close()
	c.HeroImages.Hub.Close()
}
