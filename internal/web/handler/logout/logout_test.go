package logout

import (
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/portfolio-admin/portfolio-admin/internal/web/handler/handlertest"
	"github.com/portfolio-admin/portfolio-admin/internal/web/handler/login"
	"github.com/portfolio-admin/portfolio-admin/internal/web/session"
)

func TestLogoutDeletesSession(t *testing.T) {
	app := handlertest.NewApp(&handlertest.Views{})

	s := &Service{}
	require.NoError(t, s.Init(app, handlertest.Config(), nil))

	cookie := handlertest.Login(t)

	resp, _ := handlertest.Do(t, app, fiber.MethodPost, Path, cookie)
	assert.Equal(t, fiber.StatusFound, resp.StatusCode)
	assert.Equal(t, login.Path, resp.Header.Get(fiber.HeaderLocation))

	var data session.Data
	assert.ErrorIs(t, data.Read(cookie.Value), session.ErrNoSession)

	// logging out twice is harmless
	resp, _ = handlertest.Do(t, app, fiber.MethodGet, Path)
	assert.Equal(t, fiber.StatusFound, resp.StatusCode)
}
