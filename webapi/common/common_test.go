package common

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/amirasaad/txrecords/pkg/domain"
	"github.com/amirasaad/txrecords/pkg/domain/transaction"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorToStatusCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"not found", transaction.ErrTransactionNotFound, fiber.StatusNotFound},
		{"wrapped not found", fmt.Errorf("lookup: %w", transaction.ErrTransactionNotFound), fiber.StatusNotFound},
		{"validation", fmt.Errorf("%w: bad date", domain.ErrValidation), fiber.StatusBadRequest},
		{"duplicate", domain.ErrAlreadyExists, fiber.StatusConflict},
		{"unauthorized", domain.ErrUnauthorized, fiber.StatusUnauthorized},
		{"fiber error", fiber.ErrMethodNotAllowed, fiber.StatusMethodNotAllowed},
		{"store failure", errors.New("connection reset"), fiber.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ErrorToStatusCode(tt.err))
		})
	}
}

func decodeProblem(t *testing.T, app *fiber.App, path string) (int, string, ProblemDetails) {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, path, nil))
	require.NoError(t, err)
	defer resp.Body.Close() //nolint:errcheck
	var pd ProblemDetails
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&pd))
	return resp.StatusCode, resp.Header.Get(fiber.HeaderContentType), pd
}

func TestProblemDetailsJSON_CodedError(t *testing.T) {
	app := fiber.New()
	app.Get("/tx/:id", func(c *fiber.Ctx) error {
		return ProblemDetailsJSON(c, "Transaction not found", transaction.ErrTransactionNotFound)
	})

	status, contentType, pd := decodeProblem(t, app, "/tx/abc")
	assert.Equal(t, fiber.StatusNotFound, status)
	assert.Equal(t, "application/problem+json", contentType)
	assert.Equal(t, "TRAN-001", pd.Code)
	assert.Equal(t, "Transaction not found", pd.Detail)
	assert.Equal(t, "/tx/abc", pd.Instance)
	assert.NotNil(t, pd.Timestamp)
}

func TestProblemDetailsJSON_Extras(t *testing.T) {
	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		return ProblemDetailsJSON(c, "Too Many Requests", errors.New("rate limit exceeded"),
			fiber.StatusTooManyRequests, "slow down", map[string]int{"retryAfter": 1})
	})

	status, contentType, pd := decodeProblem(t, app, "/")
	assert.Equal(t, fiber.StatusTooManyRequests, status)
	assert.Equal(t, MIMEProblemJSON, contentType)
	assert.Equal(t, fiber.StatusTooManyRequests, pd.Status)
	assert.Equal(t, "slow down", pd.Detail)
	assert.Empty(t, pd.Code)
	assert.Nil(t, pd.Timestamp)
	assert.Equal(t, map[string]any{"retryAfter": float64(1)}, pd.Errors)
}

type sampleRequest struct {
	Type   string  `json:"type" validate:"required,txtype"`
	Status *string `json:"status" validate:"omitempty,txstatus"`
}

func TestBindAndValidate(t *testing.T) {
	v := NewValidator([]transaction.Type{transaction.TypeDeposit})
	app := fiber.New()
	app.Post("/", func(c *fiber.Ctx) error {
		in, err := BindAndValidate[sampleRequest](c, v)
		if in == nil {
			return err
		}
		return SuccessResponseJSON(c, fiber.StatusOK, "ok", in)
	})

	tests := []struct {
		name   string
		body   string
		status int
		field  string
	}{
		{"valid", `{"type":"DEPOSIT","status":"PENDING"}`, fiber.StatusOK, ""},
		{"status omitted", `{"type":"DEPOSIT"}`, fiber.StatusOK, ""},
		{"type not configured", `{"type":"PAYMENT"}`, fiber.StatusBadRequest, "type"},
		{"unknown status", `{"type":"DEPOSIT","status":"LOST"}`, fiber.StatusBadRequest, "status"},
		{"malformed body", `{"type":`, fiber.StatusBadRequest, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(fiber.MethodPost, "/", strings.NewReader(tt.body))
			req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
			resp, err := app.Test(req)
			require.NoError(t, err)
			defer resp.Body.Close() //nolint:errcheck
			assert.Equal(t, tt.status, resp.StatusCode)

			if tt.field != "" {
				var pd struct {
					Errors []FieldError `json:"errors"`
				}
				require.NoError(t, json.NewDecoder(resp.Body).Decode(&pd))
				require.Len(t, pd.Errors, 1)
				assert.Equal(t, tt.field, pd.Errors[0].Field)
			}
		})
	}
}
