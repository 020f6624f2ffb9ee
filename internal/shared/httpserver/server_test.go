package httpserver

import (
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
)

func TestServer_HealthAndRegistrars(t *testing.T) {
	srv := NewServer(func(router fiber.Router) {
		router.Get("/ping", func(c *fiber.Ctx) error { return c.SendString("pong") })
	})

	for path, expected := range map[string]string{"/health": "OK", "/ping": "pong"} {
		resp, err := srv.App().Test(httptest.NewRequest(fiber.MethodGet, path, nil))
		require.NoError(t, err)
		body, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		require.Equal(t, fiber.StatusOK, resp.StatusCode)
		require.Equal(t, expected, string(body))
	}
}
