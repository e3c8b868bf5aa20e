// Package app wires the services of the transaction-records service.
package app

import (
	"log/slog"

	"github.com/amirasaad/txrecords/pkg/config"
	repotx "github.com/amirasaad/txrecords/pkg/repository/transaction"
	"github.com/amirasaad/txrecords/pkg/service/transaction"
)

// Deps contains the infrastructure the services are built on.
type Deps struct {
	TransactionRepo repotx.Repository
	Logger          *slog.Logger
	// Close releases the store connection. It may be nil.
	Close func() error
}

type App struct {
	Deps               *Deps
	Config             *config.App
	TransactionService *transaction.Service
}

func New(deps *Deps, cfg *config.App) *App {
	app := &App{
		Deps:   deps,
		Config: cfg,
	}
	app.TransactionService = transaction.NewService(
		deps.TransactionRepo,
		deps.Logger,
		transaction.WithDefaults(cfg.TransactionDefaults()),
		transaction.WithPageSizes(cfg.Pagination.DefaultSize, cfg.Pagination.MaxSize),
	)
	return app
}

// Shutdown releases the resources held by the dependencies.
func (a *App) Shutdown() error {
	if a.Deps.Close == nil {
		return nil
	}
	return a.Deps.Close()
}
