package config

import (
	"errors"
	"fmt"
	"slices"

	"github.com/amirasaad/txrecords/pkg/domain/transaction"
)

// Storage backends.
const (
	BackendMongo    = "mongo"
	BackendPostgres = "postgres"
)

// Validate reports settings that would make the service misbehave at runtime.
func (c *App) Validate() error {
	var errs []error

	switch c.Store.Backend {
	case BackendMongo:
		if c.Mongo.URI == "" {
			errs = append(errs, errors.New("MONGO_URI is not set"))
		}
	case BackendPostgres:
		if c.DB.Url == "" {
			errs = append(errs, errors.New("DATABASE_URL is not set"))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown STORE_BACKEND %q", c.Store.Backend))
	}

	if c.Pagination.DefaultSize < 1 {
		errs = append(errs, fmt.Errorf("PAGINATION_DEFAULT_SIZE must be positive, got %d", c.Pagination.DefaultSize))
	}
	if c.Pagination.MaxSize < c.Pagination.DefaultSize {
		errs = append(errs, fmt.Errorf("PAGINATION_MAX_SIZE %d is below the default size %d",
			c.Pagination.MaxSize, c.Pagination.DefaultSize))
	}

	if len(c.Transaction.Types) == 0 {
		errs = append(errs, errors.New("TRANSACTION_TYPES is empty"))
	}
	if !slices.Contains(transaction.Statuses, transaction.Status(c.Transaction.DefaultStatus)) {
		errs = append(errs, fmt.Errorf("TRANSACTION_DEFAULT_STATUS %q is not a known status",
			c.Transaction.DefaultStatus))
	}

	return errors.Join(errs...)
}

// TransactionTypes returns the configured transaction types.
func (c *App) TransactionTypes() []transaction.Type {
	types := make([]transaction.Type, 0, len(c.Transaction.Types))
	for _, t := range c.Transaction.Types {
		types = append(types, transaction.Type(t))
	}
	return types
}

// TransactionDefaults returns the values applied to absent optional fields.
func (c *App) TransactionDefaults() transaction.Defaults {
	return transaction.Defaults{
		Description: c.Transaction.DefaultDescription,
		Status:      transaction.Status(c.Transaction.DefaultStatus),
	}
}
