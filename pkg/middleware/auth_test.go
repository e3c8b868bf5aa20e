package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/amirasaad/txrecords/pkg/config"
	jwtware "github.com/gofiber/contrib/jwt"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const secret = "test-secret"

func protectedApp(cfg *config.Jwt) *fiber.App {
	app := fiber.New()
	app.Use(JwtProtected(cfg))
	app.Get("/", func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) })
	return app
}

func signed(t *testing.T, key string) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "client-1",
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	s, err := token.SignedString([]byte(key))
	require.NoError(t, err)
	return s
}

func status(t *testing.T, app *fiber.App, token string) int {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close() //nolint:errcheck
	return resp.StatusCode
}

func TestJwtProtected_NoSecretIsOpen(t *testing.T) {
	assert.Equal(t, fiber.StatusOK, status(t, protectedApp(nil), ""))
	assert.Equal(t, fiber.StatusOK, status(t, protectedApp(&config.Jwt{}), ""))
}

func TestJwtProtected(t *testing.T) {
	app := protectedApp(&config.Jwt{Secret: secret})

	assert.Equal(t, fiber.StatusBadRequest, status(t, app, ""), "missing token")
	assert.Equal(t, fiber.StatusUnauthorized, status(t, app, signed(t, "other-secret")), "wrong key")
	assert.Equal(t, fiber.StatusOK, status(t, app, signed(t, secret)))
}

func TestJwtError_Malformed(t *testing.T) {
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		return jwtError(c, jwtware.ErrJWTMissingOrMalformed)
	})
	assert.Equal(t, fiber.StatusBadRequest, status(t, app, ""))
}

func TestJwtError_Invalid(t *testing.T) {
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		return jwtError(c, errors.New("any other error"))
	})
	assert.Equal(t, fiber.StatusUnauthorized, status(t, app, ""))
}
