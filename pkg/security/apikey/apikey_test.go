package apikey_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artem13815/recruit/pkg/security/apikey"
)

func status(t *testing.T, key, sent string) int {
	t.Helper()
	app := fiber.New()
	app.Post("/hook", apikey.NewMiddleware(key), func(c *fiber.Ctx) error { return c.SendStatus(http.StatusNoContent) })
	req := httptest.NewRequest(http.MethodPost, "/hook", nil)
	if sent != "" {
		req.Header.Set(apikey.Header, sent)
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp.StatusCode
}

func TestMiddleware(t *testing.T) {
	assert.Equal(t, http.StatusNoContent, status(t, "k1", "k1"))
	assert.Equal(t, http.StatusUnauthorized, status(t, "k1", "k2"))
	assert.Equal(t, http.StatusUnauthorized, status(t, "k1", ""))
	assert.Equal(t, http.StatusServiceUnavailable, status(t, "", "anything"))
}
