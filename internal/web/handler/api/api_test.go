package api

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
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

func newTestApp(t *testing.T) (*fiber.App, *content.Content) {
	t.Helper()

	c := content.New(dbtest.Open(t, content.Models()...))
	t.Cleanup(c.Close)

	app := handlertest.NewApp(&handlertest.Views{})

	s := &Service{}
	require.NoError(t, s.Init(app, handlertest.Config(), &handler.Deps{Content: c}))

	return app, c
}

func TestInitRejectsMissingDeps(t *testing.T) {
	s := &Service{}
	assert.Error(t, s.Init(fiber.New(), handlertest.Config(), nil))
	assert.Error(t, s.Init(fiber.New(), handlertest.Config(), &handler.Deps{}))
}

func TestProjectLifecycle(t *testing.T) {
	app, _ := newTestApp(t)
	admin := handlertest.Login(t)

	resp, body := handlertest.Do(t, app, fiber.MethodGet, "/api/projects")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `[]`, body)

	resp, body = handlertest.JSON(t, app, fiber.MethodPost, "/api/projects",
		`{"title":"A","description":"d","link":"https://a.example","technologies":["Go","SQL"]}`, admin)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode, body)

	var created models.Project
	require.NoError(t, json.Unmarshal([]byte(body), &created))
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, []string{"Go", "SQL"}, created.Technologies)
	assert.Empty(t, created.Image)

	resp, body = handlertest.JSON(t, app, fiber.MethodPatch, "/api/projects/"+created.ID, `{"title":"B"}`, admin)
	require.Equal(t, fiber.StatusOK, resp.StatusCode, body)

	var updated models.Project
	require.NoError(t, json.Unmarshal([]byte(body), &updated))
	assert.Equal(t, "B", updated.Title)
	assert.Equal(t, "d", updated.Description)
	assert.Equal(t, created.ID, updated.ID)

	resp, body = handlertest.Do(t, app, fiber.MethodGet, "/api/projects/"+created.ID)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Contains(t, body, `"title":"B"`)

	resp, body = handlertest.Do(t, app, fiber.MethodDelete, "/api/projects/"+created.ID, admin)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"deletedId":"`+created.ID+`"}`, body)

	resp, _ = handlertest.Do(t, app, fiber.MethodGet, "/api/projects/"+created.ID)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestMutationErrors(t *testing.T) {
	app, _ := newTestApp(t)
	admin := handlertest.Login(t)

	tests := []struct {
		name   string
		method string
		target string
		body   string
		want   int
		errMsg string
	}{
		{"missing title", fiber.MethodPost, "/api/projects", `{"description":"d","link":"l"}`, fiber.StatusBadRequest, "title is required"},
		{"blog without date", fiber.MethodPost, "/api/blogs", `{"title":"t","content":"c","author":"a"}`, fiber.StatusBadRequest, "date must be greater than 0"},
		{"malformed body", fiber.MethodPost, "/api/services", `{`, fiber.StatusBadRequest, "invalid request body"},
		{"update unknown", fiber.MethodPatch, "/api/services/nope", `{"title":"x"}`, fiber.StatusNotFound, ""},
		{"delete unknown", fiber.MethodDelete, "/api/heroImages/nope", ``, fiber.StatusNotFound, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, body := handlertest.JSON(t, app, tt.method, tt.target, tt.body, admin)
			assert.Equal(t, tt.want, resp.StatusCode, body)
			assert.Contains(t, body, `"error"`)

			if tt.errMsg != "" {
				assert.Contains(t, body, tt.errMsg)
			}
		})
	}
}

func TestHeroImageAcceptsEmptyRecord(t *testing.T) {
	app, _ := newTestApp(t)

	resp, body := handlertest.JSON(t, app, fiber.MethodPost, "/api/heroImages", `{}`, handlertest.Login(t))
	require.Equal(t, fiber.StatusCreated, resp.StatusCode, body)
	assert.Contains(t, body, `"title":""`)
}

func TestMutationsRequireSession(t *testing.T) {
	app, _ := newTestApp(t)

	resp, _ := handlertest.JSON(t, app, fiber.MethodPost, "/api/services", `{"title":"t","description":"d"}`)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	resp, _ = handlertest.Do(t, app, fiber.MethodDelete, "/api/services/x")
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestLiveStreamsSnapshots(t *testing.T) {
	app, c := newTestApp(t)
	ctx := context.Background()

	_, err := c.Services.Store.Create(ctx, models.Service{Title: "First", Description: "d"})
	require.NoError(t, err)

	go func() {
		for c.Services.Hub.Subscribers() == 0 {
			time.Sleep(5 * time.Millisecond)
		}

		_, _ = c.Services.Store.Create(ctx, models.Service{Title: "Second", Description: "d"})

		time.Sleep(50 * time.Millisecond)
		c.Services.Hub.Close()
	}()

	resp, body := handlertest.Send(t, app, httptest.NewRequest(fiber.MethodGet, "/api/services/live", nil))
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "text/event-stream", resp.Header.Get(fiber.HeaderContentType))

	events := strings.Split(strings.TrimSpace(body), "\n\n")
	require.GreaterOrEqual(t, len(events), 2, body)
	assert.True(t, strings.HasPrefix(events[0], "event: "+SnapshotEvent+"\n"))
	assert.Contains(t, events[0], "First")
	assert.Contains(t, events[len(events)-1], "Second")
}

func TestLiveSendsHeartbeats(t *testing.T) {
	interval := heartbeatInterval
	heartbeatInterval = 10 * time.Millisecond

	t.Cleanup(func() { heartbeatInterval = interval })

	app, c := newTestApp(t)

	go func() {
		for c.Blogs.Hub.Subscribers() == 0 {
			time.Sleep(5 * time.Millisecond)
		}

		time.Sleep(60 * time.Millisecond)
		c.Blogs.Hub.Close()
	}()

	resp, body := handlertest.Send(t, app, httptest.NewRequest(fiber.MethodGet, "/api/blogs/live", nil))
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	events := strings.Split(strings.TrimSpace(body), "\n\n")
	require.GreaterOrEqual(t, len(events), 2, body)
	assert.True(t, strings.HasPrefix(events[0], "event: "+SnapshotEvent+"\n"))
	assert.Contains(t, events[1:], ": ping")
}
