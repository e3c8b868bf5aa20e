package initializer

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/amirasaad/txrecords/infra"
	mongorepo "github.com/amirasaad/txrecords/infra/repository/mongo"
	txrepo "github.com/amirasaad/txrecords/infra/repository/transaction"
	"github.com/amirasaad/txrecords/internal/migrations"
	"github.com/amirasaad/txrecords/pkg/app"
	"github.com/amirasaad/txrecords/pkg/config"
)

// InitializeDependencies sets up logging and connects the configured store.
func InitializeDependencies(ctx context.Context, cfg *config.App) (
	deps *app.Deps,
	err error,
) {
	deps = &app.Deps{}
	logger := SetupLogger(cfg.Log, os.Stdout)
	deps.Logger = logger

	switch cfg.Store.Backend {
	case config.BackendPostgres:
		err = initPostgres(deps, cfg, logger)
	case config.BackendMongo:
		err = initMongo(ctx, deps, cfg, logger)
	default:
		err = fmt.Errorf("unknown store backend %q", cfg.Store.Backend)
	}
	if err != nil {
		logger.Error("Failed to initialize store", "backend", cfg.Store.Backend, "error", err)
		return nil, err
	}
	logger.Info("Store initialized", "backend", cfg.Store.Backend)
	return deps, nil
}

func initPostgres(deps *app.Deps, cfg *config.App, logger *slog.Logger) error {
	db, err := infra.NewDBConnection(cfg.DB, cfg.Env)
	if err != nil {
		return err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	if err := migrations.Up(sqlDB); err != nil {
		_ = sqlDB.Close()
		return err
	}
	logger.Info("Database migrations applied")

	deps.TransactionRepo = txrepo.New(db)
	deps.Close = sqlDB.Close
	return nil
}

func initMongo(ctx context.Context, deps *app.Deps, cfg *config.App, logger *slog.Logger) error {
	client, err := infra.NewMongoClient(ctx, cfg.Mongo)
	if err != nil {
		return err
	}
	coll := client.Database(cfg.Mongo.Database).Collection(cfg.Mongo.Collection)

	idxCtx, cancel := context.WithTimeout(ctx, cfg.Mongo.Timeout)
	defer cancel()
	if err := mongorepo.EnsureIndexes(idxCtx, coll); err != nil {
		_ = client.Disconnect(context.Background())
		return err
	}
	logger.Info("Mongo indexes ensured",
		"database", cfg.Mongo.Database,
		"collection", cfg.Mongo.Collection)

	deps.TransactionRepo = mongorepo.New(coll)
	deps.Close = func() error { return client.Disconnect(context.Background()) }
	return nil
}
