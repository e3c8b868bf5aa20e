package transaction

import (
	"fmt"

	"github.com/amirasaad/txrecords/pkg/domain"
)

// Error is a transaction error with a stable machine-readable code.
type Error struct {
	Code    string
	Message string
	kind    error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap exposes the category so callers can use errors.Is(err, domain.ErrNotFound).
func (e *Error) Unwrap() error {
	return e.kind
}

// ErrTransactionNotFound is returned when no transaction has the requested identifier.
var ErrTransactionNotFound = &Error{
	Code:    "TRAN-001",
	Message: "Transaction not found",
	kind:    domain.ErrNotFound,
}
