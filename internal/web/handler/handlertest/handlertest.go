// Package handlertest provides a template free fiber app and logged in
// sessions for handler tests.
package handlertest

import (
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"

	"github.com/portfolio-admin/portfolio-admin/internal/config"
	"github.com/portfolio-admin/portfolio-admin/internal/web/middleware/auth"
	"github.com/portfolio-admin/portfolio-admin/internal/web/session"
)

// messageKeys are the template values Views writes after the template name.
var messageKeys = []string{"Error", "Alert", "Success", "Status"}

// Views is a fiber.Views engine that writes the template name followed by
// the user visible messages of the data, and remembers the last data.
type Views struct {
	mu   sync.Mutex
	name string
	data fiber.Map
}

// Load implements fiber.Views.
func (*Views) Load() error { return nil }

// Render implements fiber.Views.
func (v *Views) Render(w io.Writer, name string, data interface{}, _ ...string) error {
	m, _ := data.(fiber.Map)

	v.mu.Lock()
	v.name, v.data = name, m
	v.mu.Unlock()

	_, _ = io.WriteString(w, name)

	for _, key := range messageKeys {
		if value, ok := m[key]; ok && value != nil && value != "" {
			_, _ = fmt.Fprintf(w, "\n%v", value)
		}
	}

	return nil
}

// Last returns the name and data of the last rendered template.
func (v *Views) Last() (string, fiber.Map) {
	v.mu.Lock()
	defer v.mu.Unlock()

	return v.name, v.data
}

// NewApp creates an app rendering through views with the session middleware installed.
func NewApp(views *Views) *fiber.App {
	app := fiber.New(fiber.Config{Views: views})
	app.Use(auth.Middleware)

	return app
}

// Config returns a minimal configuration for handlers.
func Config() *config.Config {
	return &config.Config{
		Title: "Portfolio",
		Webserver: config.Webserver{
			URL:          "http://localhost",
			Port:         3000,
			MaxImageSize: 1 << 20,
			Session:      config.Session{ExpiryTime: time.Minute},
		},
	}
}

// Login stores a session for an admin in a memory session store and
// returns its cookie.
func Login(t *testing.T) *http.Cookie {
	t.Helper()

	if session.Store == nil {
		session.Init(nil)
	}

	id, err := session.GenerateSessionID()
	require.NoError(t, err)
	require.NoError(t, (&session.Data{UserID: 1, Username: "admin"}).Write(id, time.Minute))

	return &http.Cookie{Name: session.CookieName, Value: id}
}

// Do sends a request without body and returns the response and its body.
func Do(t *testing.T, app *fiber.App, method, target string, cookies ...*http.Cookie) (*http.Response, string) {
	t.Helper()

	return send(t, app, httptest.NewRequest(method, target, nil), cookies)
}

// Form posts url encoded values.
func Form(t *testing.T, app *fiber.App, target string, values url.Values, cookies ...*http.Cookie) (*http.Response, string) {
	t.Helper()

	req := httptest.NewRequest(fiber.MethodPost, target, strings.NewReader(values.Encode()))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationForm)

	return send(t, app, req, cookies)
}

// JSON sends body as application/json.
func JSON(t *testing.T, app *fiber.App, method, target, body string, cookies ...*http.Cookie) (*http.Response, string) {
	t.Helper()

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)

	return send(t, app, req, cookies)
}

// Send sends req as is.
func Send(t *testing.T, app *fiber.App, req *http.Request, cookies ...*http.Cookie) (*http.Response, string) {
	t.Helper()

	return send(t, app, req, cookies)
}

func send(t *testing.T, app *fiber.App, req *http.Request, cookies []*http.Cookie) (*http.Response, string) {
	t.Helper()

	for _, cookie := range cookies {
		req.AddCookie(cookie)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	return resp, string(body)
}
