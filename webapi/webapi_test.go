package webapi_test

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/amirasaad/txrecords/internal/fixtures/mocks"
	"github.com/amirasaad/txrecords/pkg/app"
	"github.com/amirasaad/txrecords/pkg/config"
	"github.com/amirasaad/txrecords/webapi"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newApp(t *testing.T, cfg *config.App) *fiber.App {
	t.Helper()
	deps := &app.Deps{
		TransactionRepo: mocks.NewMockTransactionRepository(t),
		Logger:          slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	return webapi.SetupApp(app.New(deps, cfg))
}

func testConfig(maxRequests int, secret string) *config.App {
	return &config.App{
		Auth:        &config.Auth{Jwt: &config.Jwt{Secret: secret}},
		RateLimit:   &config.RateLimit{MaxRequests: maxRequests, Window: time.Second},
		Pagination:  &config.Pagination{DefaultSize: 20, MaxSize: 100},
		Transaction: &config.Transaction{Types: []string{"DEPOSIT"}, DefaultDescription: "No description", DefaultStatus: "COMPLETED"},
	}
}

func get(t *testing.T, a *fiber.App, path string, headers map[string]string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	resp, err := a.Test(req)
	require.NoError(t, err)
	t.Cleanup(func() { _ = resp.Body.Close() })
	return resp
}

func TestRateLimit(t *testing.T) {
	a := newApp(t, testConfig(5, ""))
	client := map[string]string{"X-Forwarded-For": "10.0.0.1, 10.0.0.2"}

	for i := range 5 {
		assert.Equal(t, fiber.StatusOK, get(t, a, "/", client).StatusCode, "request %d", i+1)
	}
	resp := get(t, a, "/", client)
	assert.Equal(t, fiber.StatusTooManyRequests, resp.StatusCode)
	assert.Equal(t, "application/problem+json", resp.Header.Get("Content-Type"))

	// a different client has its own budget
	other := map[string]string{"X-Real-IP": "10.0.0.9"}
	assert.Equal(t, fiber.StatusOK, get(t, a, "/", other).StatusCode)
}

func TestDebugRoutes(t *testing.T) {
	a := newApp(t, testConfig(100, ""))

	resp := get(t, a, "/debug/routes", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var routes []map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&routes))
	assert.Contains(t, routes, map[string]string{
		"method": fiber.MethodGet,
		"path":   "/v1/transactions/clients/:clientId/daily-averages",
	})
	assert.Contains(t, routes, map[string]string{
		"method": fiber.MethodDelete,
		"path":   "/v1/transactions/:id",
	})
}

func TestUnknownRoute(t *testing.T) {
	a := newApp(t, testConfig(100, ""))

	resp := get(t, a, "/nope", nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "application/problem+json", resp.Header.Get("Content-Type"))
}

func TestTransactionsRequireTokenWhenSecretSet(t *testing.T) {
	a := newApp(t, testConfig(100, "secret"))

	assert.Equal(t, fiber.StatusBadRequest, get(t, a, "/v1/transactions", nil).StatusCode)
	assert.Equal(t, fiber.StatusUnauthorized, get(t, a, "/v1/transactions",
		map[string]string{"Authorization": "Bearer not.a.token"}).StatusCode)
	assert.Equal(t, fiber.StatusOK, get(t, a, "/", nil).StatusCode, "health stays open")
}
