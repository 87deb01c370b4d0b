package dashboard

import (
	"context"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/portfolio-admin/portfolio-admin/internal/content"
	"github.com/portfolio-admin/portfolio-admin/internal/db/dbtest"
	"github.com/portfolio-admin/portfolio-admin/internal/db/models"
	"github.com/portfolio-admin/portfolio-admin/internal/web/handler"
	"github.com/portfolio-admin/portfolio-admin/internal/web/handler/handlertest"
)

func newTestApp(t *testing.T) (*fiber.App, *handlertest.Views, *content.Content) {
	t.Helper()

	c := content.New(dbtest.Open(t, content.Models()...))
	t.Cleanup(c.Close)

	views := &handlertest.Views{}
	app := handlertest.NewApp(views)

	s := &Service{}
	require.NoError(t, s.Init(app, handlertest.Config(), &handler.Deps{Content: c}))

	return app, views, c
}

func TestRequiresLogin(t *testing.T) {
	app, _, _ := newTestApp(t)

	resp, _ := handlertest.Do(t, app, fiber.MethodGet, Path)
	assert.Equal(t, fiber.StatusFound, resp.StatusCode)
	assert.Equal(t, "/login", resp.Header.Get(fiber.HeaderLocation))
}

func TestEmptyStoreShowsPlaceholders(t *testing.T) {
	app, views, _ := newTestApp(t)

	resp, body := handlertest.Do(t, app, fiber.MethodGet, Path, handlertest.Login(t))
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, TemplateName, body)

	_, data := views.Last()
	overview := data["Data"].(Data)

	for _, stat := range overview.Stats {
		assert.Equal(t, 1, stat.Value, stat.Title)
	}

	assert.Equal(t, "Sample Project", overview.MostRecentProject)
	assert.Equal(t, "Sample Blog", overview.LatestBlog)
}

func TestStoredRecordsAreCounted(t *testing.T) {
	app, views, c := newTestApp(t)
	ctx := context.Background()

	for _, title := range []string{"P1", "P2", "P3"} {
		_, err := c.Projects.Store.Create(ctx, models.Project{Title: title, Description: "d", Link: "l"})
		require.NoError(t, err)
	}

	_, err := c.HeroImages.Store.Create(ctx, models.HeroImage{})
	require.NoError(t, err)

	_, err = c.Blogs.Store.Create(ctx, models.Blog{Title: "B", Content: "c", Author: "a", Date: time.Now().UnixMilli()})
	require.NoError(t, err)

	resp, _ := handlertest.Do(t, app, fiber.MethodGet, Path, handlertest.Login(t))
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	_, data := views.Last()
	overview := data["Data"].(Data)

	assert.Equal(t, 3, overview.Stats[0].Value)
	assert.Equal(t, 1, overview.Stats[1].Value)
	assert.Equal(t, "P1", overview.MostRecentProject)
	assert.Equal(t, "B", overview.LatestBlog)
	assert.Equal(t, 1, overview.TotalServices)
}

func TestUntitledHeroImageDoesNotBreakOverview(t *testing.T) {
	_, _, c := newTestApp(t)

	_, err := c.HeroImages.Store.Create(context.Background(), models.HeroImage{})
	require.NoError(t, err)

	assert.Len(t, c.HeroImages.Overview(context.Background()), 1)
}
