package memory

import (
	"context"

	domainerrors "guessr/internal/domain/errors"
	"guessr/internal/domain/repository"
)

type transactionManager struct {
	store *Store
}

type repositoryFactory struct {
	a access
}

func (f *repositoryFactory) SessionRepo() repository.SessionRepository {
	return &sessionRepository{a: f.a}
}

func (f *repositoryFactory) UserRepo() repository.UserRepository {
	return &userRepository{a: f.a}
}

func (f *repositoryFactory) RankingRepo() repository.RankingRepository {
	return &rankingRepository{a: f.a}
}

func (f *repositoryFactory) LocationRepo() repository.LocationRepository {
	return &locationRepository{a: f.a}
}

// NewTransactionManager serialises transactions on the store's write lock and
// rolls back to a snapshot when fn fails or panics.
func NewTransactionManager(store *Store) repository.TransactionManager {
	return &transactionManager{store: store}
}

func (tm *transactionManager) Execute(ctx context.Context, fn func(repoFactory repository.RepositoryFactory) error) (err error) {
	if ctxErr := ctx.Err(); ctxErr != nil {
		return domainerrors.NewStorageUnavailableError(ctxErr, "failed to begin transaction")
	}

	tm.store.mu.Lock()
	defer tm.store.mu.Unlock()

	snap := tm.store.snapshot()
	committed := false
	defer func() {
		if !committed {
			tm.store.restore(snap)
		}
	}()

	if err := fn(&repositoryFactory{a: access{store: tm.store, locked: true}}); err != nil {
		return err
	}
	committed = true

	return nil
}
