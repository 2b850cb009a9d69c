// Package persistence selects the gateway behind the repositories.
package persistence

import (
	"log/slog"

	"guessr/config"
	"guessr/internal/domain/repository"
	"guessr/internal/infra/persistence/memory"
	"guessr/internal/infra/persistence/postgres"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Params holds dependencies for the storage gateway, injected by Fx
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// NewTransactionManager opens the configured gateway. The in-memory store
// lives as long as the process and is never shared between processes.
func NewTransactionManager(params Params) (repository.TransactionManager, error) {
	driver := config.StorageDriverPostgres
	if params.Config.Storage != nil && params.Config.Storage.Driver != "" {
		driver = params.Config.Storage.Driver
	}

	switch driver {
	case config.StorageDriverMemory:
		// The stats worker runs in another process and would never see the sessions
		if params.Config.Ranking != nil && params.Config.Ranking.Async {
			return nil, errors.New("async ranking cannot use in-memory storage")
		}
		params.Logger.Warn("Using in-memory storage; data is lost on restart")

		return memory.NewTransactionManager(memory.NewStore()), nil

	case config.StorageDriverPostgres:
		if params.Config.Postgres == nil {
			return nil, errors.New("postgres storage requires a postgres section")
		}

		db, err := postgres.New(postgres.Params{
			Lifecycle: params.Lifecycle,
			Config:    params.Config,
			Logger:    params.Logger,
		})
		if err != nil {
			return nil, err
		}

		return postgres.NewTransactionManager(db), nil

	default:
		return nil, errors.Errorf("unknown storage driver: %s", driver)
	}
}

// Module provides the storage FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewTransactionManager),
)
