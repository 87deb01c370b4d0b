package contact

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/portfolio-admin/portfolio-admin/internal/config"
	"github.com/portfolio-admin/portfolio-admin/internal/mailer"
	"github.com/portfolio-admin/portfolio-admin/internal/web/handler"
	"github.com/portfolio-admin/portfolio-admin/internal/web/handler/handlertest"
)

func newTestApp(t *testing.T, provider http.HandlerFunc) (*fiber.App, *handlertest.Views) {
	t.Helper()

	server := httptest.NewServer(provider)
	t.Cleanup(server.Close)

	cfg := handlertest.Config()
	cfg.Email = config.Email{
		Endpoint:      server.URL,
		ServiceID:     "svc",
		TemplateID:    "tpl",
		PublicKey:     "publickey",
		RecipientName: "Owner",
	}

	views := &handlertest.Views{}
	app := handlertest.NewApp(views)

	s := &Service{}
	require.NoError(t, s.Init(app, cfg, &handler.Deps{Mailer: mailer.New(cfg.Email, nil)}))

	return app, views
}

func TestGetRendersEmptyForm(t *testing.T) {
	app, _ := newTestApp(t, func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusOK) })

	resp, body := handlertest.Do(t, app, fiber.MethodGet, Path)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, TemplateName, body)
}

func TestPostSendsMessage(t *testing.T) {
	var received map[string]any

	app, views := newTestApp(t, func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewDecoder(r.Body).Decode(&received)
		_, _ = w.Write([]byte("OK"))
	})

	resp, body := handlertest.Form(t, app, Path, url.Values{
		"name":    {"Ada"},
		"email":   {"ada@example.com"},
		"message": {"Hello"},
	})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Contains(t, body, mailer.StatusSent)

	_, data := views.Last()
	assert.Equal(t, mailer.Message{}, data["Message"], "form is cleared after sending")

	require.NotNil(t, received)
	params := received["template_params"].(map[string]any)
	assert.Equal(t, "Ada", params["from_name"])
	assert.Equal(t, "Owner", params["to_name"])
}

func TestPostFailureKeepsForm(t *testing.T) {
	app, views := newTestApp(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
	})

	resp, body := handlertest.Form(t, app, Path, url.Values{
		"name":    {"Ada"},
		"email":   {"ada@example.com"},
		"message": {"Hello"},
	})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Contains(t, body, mailer.StatusFailed)

	_, data := views.Last()
	assert.Equal(t, "Hello", data["Message"].(mailer.Message).Body)
}

func TestPostInvalidEmail(t *testing.T) {
	called := false
	app, _ := newTestApp(t, func(w http.ResponseWriter, _ *http.Request) {
		called = true
		w.WriteHeader(http.StatusOK)
	})

	_, body := handlertest.Form(t, app, Path, url.Values{"name": {"Ada"}, "email": {"nope"}, "message": {"Hi"}})
	assert.Contains(t, body, mailer.StatusFailed)
	assert.False(t, called)
}
