// Package transaction implements the transaction-records use cases on top of a
// storage repository.
package transaction

import (
	"context"
	"iter"
	"log/slog"
	"time"

	"github.com/amirasaad/txrecords/pkg/domain/transaction"
	"github.com/amirasaad/txrecords/pkg/dto"
	"github.com/amirasaad/txrecords/pkg/mapper"
	"github.com/amirasaad/txrecords/pkg/query"
	"github.com/amirasaad/txrecords/pkg/report"
	repotx "github.com/amirasaad/txrecords/pkg/repository/transaction"
)

// Service provides the transaction use cases. It keeps no per-request state and
// is safe for concurrent use.
type Service struct {
	repo     repotx.Repository
	builder  query.Builder
	defaults transaction.Defaults
	now      func() time.Time
	logger   *slog.Logger
}

// Option configures a Service.
type Option func(*Service)

// WithClock overrides the time source.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// WithDefaults overrides the values used for absent optional fields.
func WithDefaults(d transaction.Defaults) Option {
	return func(s *Service) { s.defaults = d }
}

// WithPageSizes sets the default and maximum listing page sizes.
func WithPageSizes(defaultSize, maxSize int) Option {
	return func(s *Service) { s.builder = query.NewBuilder(defaultSize, maxSize) }
}

// NewService creates a Service backed by repo.
func NewService(repo repotx.Repository, logger *slog.Logger, opts ...Option) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Service{
		repo:     repo,
		builder:  query.NewBuilder(query.DefaultPageSize, query.MaxPageSize),
		defaults: transaction.StandardDefaults(),
		now:      time.Now,
		logger:   logger.With("service", "transaction"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// CreateTransaction stores a new transaction. Creation and update dates are set
// to now, the status defaults to COMPLETED and the commission to zero.
func (s *Service) CreateTransaction(
	ctx context.Context,
	in dto.TransactionInput,
) (out *dto.TransactionRead, err error) {
	logger := s.logger.With("productID", in.ProductID, "clientID", in.ClientID)
	logger.Info("CreateTransaction started")
	defer func() {
		if err != nil {
			logger.Error("CreateTransaction failed", "error", err)
		} else {
			logger.Info("CreateTransaction successful", "id", out.ID)
		}
	}()

	tx := transaction.New(mapper.MapInputToDraft(in), s.defaults, s.now())
	saved, err := s.repo.Save(ctx, tx)
	if err != nil {
		return nil, err
	}
	return mapper.MapTransactionToRead(saved), nil
}

// UpdateTransaction replaces the transaction identified by id with in. The
// identifier and creation date of the stored record are kept. When no such
// transaction exists transaction.ErrTransactionNotFound is returned and nothing
// is written.
func (s *Service) UpdateTransaction(
	ctx context.Context,
	id string,
	in dto.TransactionInput,
) (out *dto.TransactionRead, err error) {
	logger := s.logger.With("id", id)
	logger.Info("UpdateTransaction started")
	defer func() {
		if err != nil {
			logger.Error("UpdateTransaction failed", "error", err)
		} else {
			logger.Info("UpdateTransaction successful")
		}
	}()

	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	tx := transaction.Replace(existing, mapper.MapInputToDraft(in), s.defaults, s.now())
	saved, err := s.repo.Save(ctx, tx)
	if err != nil {
		return nil, err
	}
	return mapper.MapTransactionToRead(saved), nil
}

// DeleteTransaction removes the transaction identified by id. The store delete
// is only issued after the lookup found the record.
func (s *Service) DeleteTransaction(ctx context.Context, id string) (err error) {
	logger := s.logger.With("id", id)
	logger.Info("DeleteTransaction started")
	defer func() {
		if err != nil {
			logger.Error("DeleteTransaction failed", "error", err)
		} else {
			logger.Info("DeleteTransaction successful")
		}
	}()

	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	return s.repo.Delete(ctx, existing)
}

// GetTransactionByID returns one transaction.
func (s *Service) GetTransactionByID(ctx context.Context, id string) (*dto.TransactionRead, error) {
	tx, err := s.repo.FindByID(ctx, id)
	if err != nil {
		s.logger.Debug("GetTransactionByID failed", "id", id, "error", err)
		return nil, err
	}
	return mapper.MapTransactionToRead(tx), nil
}

// ListTransactions streams one page of transactions, newest first. When both a
// product and a card are given, transactions matching either are returned.
func (s *Service) ListTransactions(
	ctx context.Context,
	f dto.ListFilter,
) iter.Seq2[*dto.TransactionRead, error] {
	l := s.builder.Build(query.Params{
		ProductID: f.ProductID,
		CardID:    f.CardID,
		Page:      f.Page,
		Size:      f.Size,
	})
	s.logger.Debug("ListTransactions",
		"filters", len(l.AnyOf), "pageIndex", l.PageIndex, "size", l.Size)
	return project(s.repo.List(ctx, l))
}

// GetTransactionsByAccountID streams every transaction of a product account.
func (s *Service) GetTransactionsByAccountID(
	ctx context.Context,
	accountID string,
) iter.Seq2[*dto.TransactionRead, error] {
	return project(s.repo.ListByAccount(ctx, accountID))
}

// GetCommissionsByProductAndPeriod streams the transactions of productID that
// charged a commission between the start and end dates, both inclusive.
func (s *Service) GetCommissionsByProductAndPeriod(
	ctx context.Context,
	productID string,
	start, end time.Time,
) (iter.Seq2[*dto.TransactionRead, error], error) {
	p, err := query.NewPeriod(start, end)
	if err != nil {
		return nil, err
	}
	return project(s.repo.ListCommissions(ctx, productID, p)), nil
}

// GetDailyAverageBalancesForClient reports, for every product of clientID, the
// average balance of each day between start and end, both inclusive.
func (s *Service) GetDailyAverageBalancesForClient(
	ctx context.Context,
	clientID string,
	start, end time.Time,
) (rep *report.AverageReport, err error) {
	logger := s.logger.With("clientID", clientID)
	logger.Info("GetDailyAverageBalancesForClient started")
	defer func() {
		if err != nil {
			logger.Error("GetDailyAverageBalancesForClient failed", "error", err)
		} else {
			logger.Info("GetDailyAverageBalancesForClient successful", "products", len(rep.Products))
		}
	}()

	p, err := query.NewPeriod(start, end)
	if err != nil {
		return nil, err
	}
	return report.DailyAverages(clientID, project(s.repo.ListByClient(ctx, clientID, p)))
}

// project maps a repository stream onto read projections, stopping the
// underlying stream as soon as the consumer does.
func project(src repotx.Stream) iter.Seq2[*dto.TransactionRead, error] {
	return func(yield func(*dto.TransactionRead, error) bool) {
		for tx, err := range src {
			if err != nil {
				yield(nil, err)
				return
			}
			if !yield(mapper.MapTransactionToRead(tx), nil) {
				return
			}
		}
	}
}
