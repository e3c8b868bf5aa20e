// Package txrepo stores transactions in PostgreSQL through GORM.
package txrepo

import (
	"context"
	"fmt"

	infrarepo "github.com/amirasaad/txrecords/infra/repository"
	"github.com/amirasaad/txrecords/pkg/domain/transaction"
	"github.com/amirasaad/txrecords/pkg/query"
	repo "github.com/amirasaad/txrecords/pkg/repository/transaction"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type repository struct {
	db *gorm.DB
}

// New creates a transaction repository using the provided *gorm.DB.
func New(db *gorm.DB) repo.Repository {
	return &repository{db: db}
}

// FindByID implements transaction.Repository.
func (r *repository) FindByID(
	ctx context.Context,
	id string,
) (*transaction.Transaction, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		// not a key this store can have issued
		return nil, transaction.ErrTransactionNotFound
	}
	var m Transaction
	if err := infrarepo.WrapError(func() error {
		return r.db.WithContext(ctx).First(&m, "id = ?", uid).Error
	}, transaction.ErrTransactionNotFound); err != nil {
		return nil, err
	}
	return mapModelToDomain(&m), nil
}

// Save implements transaction.Repository.
func (r *repository) Save(
	ctx context.Context,
	tx *transaction.Transaction,
) (*transaction.Transaction, error) {
	if tx.ID == "" {
		m := mapDomainToModel(uuid.New(), tx)
		if err := infrarepo.WrapError(func() error {
			return r.db.WithContext(ctx).Create(&m).Error
		}, transaction.ErrTransactionNotFound); err != nil {
			return nil, fmt.Errorf("insert transaction: %w", err)
		}
		return mapModelToDomain(&m), nil
	}

	uid, err := uuid.Parse(tx.ID)
	if err != nil {
		return nil, transaction.ErrTransactionNotFound
	}
	m := mapDomainToModel(uid, tx)
	res := r.db.WithContext(
		ctx,
	).Model(
		&m,
	).Select(
		"*",
	).Updates(
		&m,
	)
	if res.Error != nil {
		return nil, fmt.Errorf("replace transaction %s: %w", tx.ID,
			infrarepo.MapGormErrorToDomain(res.Error, transaction.ErrTransactionNotFound))
	}
	if res.RowsAffected == 0 {
		return nil, transaction.ErrTransactionNotFound
	}
	return mapModelToDomain(&m), nil
}

// Delete implements transaction.Repository.
func (r *repository) Delete(
	ctx context.Context,
	tx *transaction.Transaction,
) error {
	uid, err := uuid.Parse(tx.ID)
	if err != nil {
		return transaction.ErrTransactionNotFound
	}
	var deleted int64
	if err := infrarepo.WrapError(func() error {
		res := r.db.WithContext(ctx).Delete(&Transaction{}, "id = ?", uid)
		deleted = res.RowsAffected
		return res.Error
	}, transaction.ErrTransactionNotFound); err != nil {
		return fmt.Errorf("delete transaction %s: %w", tx.ID, err)
	}
	if deleted == 0 {
		return transaction.ErrTransactionNotFound
	}
	return nil
}

// List implements transaction.Repository.
func (r *repository) List(
	ctx context.Context,
	l query.Listing,
) repo.Stream {
	return r.stream(ctx, func(db *gorm.DB) *gorm.DB {
		if len(l.AnyOf) > 0 {
			exprs := make([]clause.Expression, 0, len(l.AnyOf))
			for _, c := range l.AnyOf {
				exprs = append(exprs, clause.Eq{
					Column: clause.Column{Name: column(c.Field)},
					Value:  c.Value,
				})
			}
			db = db.Where(clause.Or(exprs...))
		}
		for _, s := range l.Sort {
			db = db.Order(clause.OrderByColumn{
				Column: clause.Column{Name: column(s.Field)},
				Desc:   s.Descending,
			})
		}
		return db.Limit(l.Limit()).Offset(l.Skip())
	})
}

// ListByAccount implements transaction.Repository.
func (r *repository) ListByAccount(
	ctx context.Context,
	productID string,
) repo.Stream {
	return r.stream(ctx, func(db *gorm.DB) *gorm.DB {
		return db.Where(
			"product_id = ?",
			productID,
		).Order("created_date DESC, id DESC")
	})
}

// ListCommissions implements transaction.Repository.
func (r *repository) ListCommissions(
	ctx context.Context,
	productID string,
	p query.Period,
) repo.Stream {
	return r.stream(ctx, func(db *gorm.DB) *gorm.DB {
		return db.Where(
			"product_id = ? AND commission > 0 AND created_date >= ? AND created_date < ?",
			productID, p.From, p.Until,
		).Order("created_date DESC, id DESC")
	})
}

// ListByClient implements transaction.Repository.
func (r *repository) ListByClient(
	ctx context.Context,
	clientID string,
	p query.Period,
) repo.Stream {
	return r.stream(ctx, func(db *gorm.DB) *gorm.DB {
		return db.Where(
			"client_id = ? AND created_date >= ? AND created_date < ?",
			clientID, p.From, p.Until,
		).Order("created_date ASC, id ASC")
	})
}

// stream runs the query built by scope when iteration starts and yields one
// row at a time. The rows are closed when the consumer stops.
func (r *repository) stream(
	ctx context.Context,
	scope func(*gorm.DB) *gorm.DB,
) repo.Stream {
	return func(yield func(*transaction.Transaction, error) bool) {
		q := scope(r.db.WithContext(ctx).Model(&Transaction{}))
		rows, err := q.Rows()
		if err != nil {
			yield(nil, fmt.Errorf("query transactions: %w", err))
			return
		}
		defer rows.Close() //nolint:errcheck

		for rows.Next() {
			var m Transaction
			if err := q.ScanRows(rows, &m); err != nil {
				yield(nil, fmt.Errorf("scan transaction: %w", err))
				return
			}
			if !yield(mapModelToDomain(&m), nil) {
				return
			}
		}
		if err := rows.Err(); err != nil {
			yield(nil, fmt.Errorf("read transactions: %w", err))
		}
	}
}
