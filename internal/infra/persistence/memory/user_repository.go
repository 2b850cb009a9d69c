package memory

import (
	"context"
	"time"

	"guessr/internal/domain/entity"
	domainerrors "guessr/internal/domain/errors"
	"guessr/internal/domain/repository"
	"guessr/internal/errors"
	"guessr/internal/util"

	"github.com/google/uuid"
)

type userRepository struct {
	a access
}

// NewUserRepository creates a UserRepository over store.
func NewUserRepository(store *Store) repository.UserRepository {
	return &userRepository{a: access{store: store}}
}

func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	return repo.a.write(ctx, func(s *Store) error {
		if _, ok := s.users[user.ID]; ok {
			return errors.Wrap(domainerrors.ErrValidationFailed, "user already exists")
		}
		s.users[user.ID] = cloneUser(user)

		return nil
	})
}

func (repo *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	var found *entity.User
	err := repo.a.read(ctx, func(s *Store) error {
		u, ok := s.users[id]
		if !ok {
			return repository.ErrUserNotFound
		}
		found = cloneUser(u)

		return nil
	})

	return found, err
}

func (repo *userRepository) UpdateProfile(ctx context.Context, id uuid.UUID, update repository.ProfileUpdate) error {
	return repo.a.write(ctx, func(s *Store) error {
		u, ok := s.users[id]
		if !ok {
			return repository.ErrUserNotFound
		}
		c := cloneUser(u)
		if update.Name != nil {
			c.Name = *update.Name
		}
		if update.Avatar != nil {
			c.Avatar = *update.Avatar
		}
		c.UpdatedAt = time.Now()
		s.users[id] = c

		return nil
	})
}

func (repo *userRepository) ApplyCompletion(ctx context.Context, id uuid.UUID, score int) error {
	return repo.a.write(ctx, func(s *Store) error {
		u, ok := s.users[id]
		if !ok {
			return repository.ErrUserNotFound
		}
		c := cloneUser(u)
		c.TotalGames++
		c.TotalScore += score
		c.BestScore = max(c.BestScore, score)
		c.AverageScore = util.Round2(float64(c.TotalScore) / float64(c.TotalGames))
		c.UpdatedAt = time.Now()
		s.users[id] = c

		return nil
	})
}

func (repo *userRepository) CountPlayers(ctx context.Context) (int, error) {
	var count int
	err := repo.a.read(ctx, func(s *Store) error {
		for _, u := range s.users {
			if u.TotalGames > 0 {
				count++
			}
		}

		return nil
	})

	return count, err
}
