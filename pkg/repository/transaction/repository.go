package transaction

import (
	"context"
	"iter"

	"github.com/amirasaad/txrecords/pkg/domain/transaction"
	"github.com/amirasaad/txrecords/pkg/query"
)

// Stream is a lazy sequence of transactions backed by a store cursor. The
// cursor is released when iteration ends, including when the consumer stops
// early. A non-nil error is always the last element.
type Stream = iter.Seq2[*transaction.Transaction, error]

// Repository defines the storage operations the transaction service relies on.
type Repository interface {
	// FindByID returns the transaction with the given identifier, or
	// transaction.ErrTransactionNotFound.
	FindByID(ctx context.Context, id string) (*transaction.Transaction, error)

	// Save inserts tx when it has no identifier yet, assigning one, and
	// replaces the stored record with the same identifier otherwise.
	Save(ctx context.Context, tx *transaction.Transaction) (*transaction.Transaction, error)

	// Delete removes tx.
	Delete(ctx context.Context, tx *transaction.Transaction) error

	// List streams one page described by l.
	List(ctx context.Context, l query.Listing) Stream

	// ListByAccount streams every transaction of the given product.
	ListByAccount(ctx context.Context, productID string) Stream

	// ListCommissions streams the transactions of productID created within p
	// that carry a commission greater than zero.
	ListCommissions(ctx context.Context, productID string, p query.Period) Stream

	// ListByClient streams the transactions of clientID created within p,
	// oldest first.
	ListByClient(ctx context.Context, clientID string, p query.Period) Stream
}
