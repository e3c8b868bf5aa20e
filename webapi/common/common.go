// Package common holds the response envelopes and request helpers shared by the
// HTTP handlers.
package common

import (
	"errors"
	"time"

	"github.com/amirasaad/txrecords/pkg/domain"
	"github.com/amirasaad/txrecords/pkg/domain/transaction"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// MIMEProblemJSON is the media type of every error response.
const MIMEProblemJSON = "application/problem+json"

// Response defines the standard API response structure for success cases.
type Response struct {
	Status  int    `json:"status"`         // HTTP status code
	Message string `json:"message"`        // Human-readable explanation
	Data    any    `json:"data,omitempty"` // Response data
}

// ProblemDetails follows RFC 9457 Problem Details for HTTP APIs. Code and
// Timestamp are extension members set for coded domain errors.
type ProblemDetails struct {
	Type      string     `json:"type,omitempty"`     // A URI reference that identifies the problem type
	Title     string     `json:"title"`              // Short, human-readable summary
	Status    int        `json:"status"`             // HTTP status code
	Detail    string     `json:"detail,omitempty"`   // Human-readable explanation
	Instance  string     `json:"instance,omitempty"` // URI reference that identifies the specific occurrence
	Errors    any        `json:"errors,omitempty"`   // Optional: additional error details
	Code      string     `json:"code,omitempty"`
	Timestamp *time.Time `json:"timestamp,omitempty"`
}

// SuccessResponseJSON writes data wrapped in a Response envelope.
func SuccessResponseJSON(c *fiber.Ctx, status int, message string, data any) error {
	return c.Status(status).JSON(Response{
		Status:  status,
		Message: message,
		Data:    data,
	})
}

// ProblemDetailsJSON writes an application/problem+json response for err.
//
// The status is derived from err with ErrorToStatusCode unless an int is
// passed in extras. A string extra overrides the detail, any other extra is
// reported under "errors".
func ProblemDetailsJSON(c *fiber.Ctx, title string, err error, extras ...any) error {
	pd := ProblemDetails{
		Type:     "about:blank",
		Title:    title,
		Status:   ErrorToStatusCode(err),
		Instance: c.OriginalURL(),
	}
	if err != nil {
		pd.Detail = err.Error()
		var txErr *transaction.Error
		if errors.As(err, &txErr) {
			now := time.Now().UTC()
			pd.Code = txErr.Code
			pd.Detail = txErr.Message
			pd.Timestamp = &now
		}
	}
	for _, extra := range extras {
		switch v := extra.(type) {
		case int:
			pd.Status = v
		case string:
			pd.Detail = v
		case nil:
		default:
			pd.Errors = v
		}
	}
	return c.Status(pd.Status).JSON(pd, MIMEProblemJSON)
}

// ErrorToStatusCode maps domain errors to HTTP status codes.
func ErrorToStatusCode(err error) int {
	var fe *fiber.Error
	switch {
	case err == nil:
		return fiber.StatusInternalServerError
	case errors.As(err, &fe):
		return fe.Code
	case errors.Is(err, domain.ErrNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, domain.ErrValidation):
		return fiber.StatusBadRequest
	case errors.Is(err, domain.ErrAlreadyExists):
		return fiber.StatusConflict
	case errors.Is(err, domain.ErrUnauthorized):
		return fiber.StatusUnauthorized
	default:
		return fiber.StatusInternalServerError
	}
}

// BindAndValidate parses the request body into a T and validates it with v.
// When either step fails the problem response is written and a nil T is
// returned together with the result of writing it.
func BindAndValidate[T any](c *fiber.Ctx, v *validator.Validate) (*T, error) {
	var input T
	if err := c.BodyParser(&input); err != nil {
		return nil, ProblemDetailsJSON(c, "Invalid request body", err, fiber.StatusBadRequest)
	}
	if err := v.Struct(input); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			return nil, ProblemDetailsJSON(c, "Validation failed", err,
				fiber.StatusBadRequest, fieldErrors(verrs))
		}
		return nil, ProblemDetailsJSON(c, "Validation failed", err, fiber.StatusBadRequest)
	}
	return &input, nil
}

// FieldError describes one rejected field of a request body.
type FieldError struct {
	Field string `json:"field"`
	Rule  string `json:"rule"`
	Param string `json:"param,omitempty"`
}

func fieldErrors(verrs validator.ValidationErrors) []FieldError {
	out := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, FieldError{
			Field: fe.Field(),
			Rule:  fe.Tag(),
			Param: fe.Param(),
		})
	}
	return out
}
