package postgres

import (
	"context"
	"time"

	"guessr/internal/domain/entity"
	domainerrors "guessr/internal/domain/errors"
	"guessr/internal/domain/repository"
	"guessr/internal/errors"
	"guessr/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/plugin/dbresolver"
)

type userRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new instance of UserRepository
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{db: db}
}

func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	m := fromUserDomain(user)
	if err := repo.db.WithContext(ctx).Clauses(dbresolver.Write).Create(m).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return errors.Wrap(domainerrors.ErrValidationFailed, "user already exists")
		}

		return domainerrors.NewStorageUnavailableError(err, "failed to create user")
	}

	return nil
}

func (repo *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	var m model.UserModel
	err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Read).
		First(&m, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, domainerrors.NewStorageUnavailableError(err, "failed to find user")
	}

	return toUserDomain(&m), nil
}

func (repo *userRepository) UpdateProfile(ctx context.Context, id uuid.UUID, update repository.ProfileUpdate) error {
	columns := map[string]any{"updated_at": time.Now()}
	if update.Name != nil {
		columns["name"] = *update.Name
	}
	if update.Avatar != nil {
		columns["avatar"] = *update.Avatar
	}

	result := repo.db.WithContext(ctx).
		Clauses(dbresolver.Write).
		Model(&model.UserModel{}).
		Where("id = ?", id).
		Updates(columns)
	if result.Error != nil {
		return domainerrors.NewStorageUnavailableError(result.Error, "failed to update user profile")
	}
	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

// ApplyCompletion relies on UPDATE evaluating every SET expression against the old row.
func (repo *userRepository) ApplyCompletion(ctx context.Context, id uuid.UUID, score int) error {
	result := repo.db.WithContext(ctx).
		Clauses(dbresolver.Write).
		Model(&model.UserModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"total_games":   gorm.Expr("total_games + 1"),
			"total_score":   gorm.Expr("total_score + ?", score),
			"best_score":    gorm.Expr("GREATEST(best_score, ?)", score),
			"average_score": gorm.Expr("ROUND((total_score + ?)::numeric / (total_games + 1), 2)", score),
			"updated_at":    time.Now(),
		})
	if result.Error != nil {
		return domainerrors.NewStorageUnavailableError(result.Error, "failed to apply completion")
	}
	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

func (repo *userRepository) CountPlayers(ctx context.Context) (int, error) {
	var count int64
	err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Read).
		Model(&model.UserModel{}).
		Where("total_games > 0").
		Count(&count).Error
	if err != nil {
		return 0, domainerrors.NewStorageUnavailableError(err, "failed to count players")
	}

	return int(count), nil
}

func toUserDomain(m *model.UserModel) *entity.User {
	avg, _ := m.AverageScore.Float64()

	return &entity.User{
		ID:           m.ID,
		Name:         m.Name,
		Avatar:       m.Avatar,
		TotalGames:   m.TotalGames,
		TotalScore:   int(m.TotalScore),
		BestScore:    m.BestScore,
		AverageScore: avg,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

func fromUserDomain(u *entity.User) *model.UserModel {
	return &model.UserModel{
		ID:           u.ID,
		Name:         u.Name,
		Avatar:       u.Avatar,
		TotalGames:   u.TotalGames,
		TotalScore:   int64(u.TotalScore),
		BestScore:    u.BestScore,
		AverageScore: decimal.NewFromFloat(u.AverageScore).Round(2),
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
	}
}
