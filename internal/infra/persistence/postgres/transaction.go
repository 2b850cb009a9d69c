// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	domainerrors "guessr/internal/domain/errors"
	"guessr/internal/domain/repository"
	"guessr/internal/errors"

	"gorm.io/gorm"
)

// gormTransactionManager implements the domain's TransactionManager interface using GORM.
type gormTransactionManager struct {
	db *gorm.DB
}

// gormRepositoryFactory hands out repositories bound to one GORM transaction.
type gormRepositoryFactory struct {
	tx *gorm.DB
}

func (f *gormRepositoryFactory) SessionRepo() repository.SessionRepository {
	return NewSessionRepository(f.tx)
}

func (f *gormRepositoryFactory) UserRepo() repository.UserRepository {
	return NewUserRepository(f.tx)
}

func (f *gormRepositoryFactory) RankingRepo() repository.RankingRepository {
	return NewRankingRepository(f.tx)
}

func (f *gormRepositoryFactory) LocationRepo() repository.LocationRepository {
	return NewLocationRepository(f.tx)
}

// NewTransactionManager is the constructor for gormTransactionManager.
func NewTransactionManager(db *gorm.DB) repository.TransactionManager {
	return &gormTransactionManager{db: db}
}

// Execute runs fn inside one transaction. A returned error or a panic rolls back.
func (tm *gormTransactionManager) Execute(ctx context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	tx := tm.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return domainerrors.NewStorageUnavailableError(tx.Error, "failed to begin transaction")
	}

	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			panic(r)
		}
	}()

	if err := fn(&gormRepositoryFactory{tx: tx}); err != nil {
		if rbErr := tx.Rollback().Error; rbErr != nil {
			return errors.Wrapf(err, "transaction rollback failed: %v", rbErr)
		}

		return err
	}

	if err := tx.Commit().Error; err != nil {
		return domainerrors.NewStorageUnavailableError(err, "failed to commit transaction")
	}

	return nil
}
