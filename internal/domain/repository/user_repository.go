package repository

import (
	"context"

	"guessr/internal/domain/entity"
	"guessr/internal/errors"

	"github.com/google/uuid"
)

// ErrUserNotFound is returned when a player does not exist.
var ErrUserNotFound = errors.New("user not found")

// ProfileUpdate lists the player-editable fields; nil leaves a field unchanged.
type ProfileUpdate struct {
	Name   *string
	Avatar *string
}

// UserRepository persists players and their lifetime aggregates.
type UserRepository interface {
	// Create persists a new player.
	Create(ctx context.Context, user *entity.User) error

	// FindByID retrieves a player by id.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// UpdateProfile applies the non-nil fields of update in one statement.
	UpdateProfile(ctx context.Context, id uuid.UUID, update ProfileUpdate) error

	// ApplyCompletion folds one completed session score into the aggregates
	// in a single statement, so concurrent completions never lose an update.
	ApplyCompletion(ctx context.Context, id uuid.UUID, score int) error

	// CountPlayers returns the number of players with at least one completed game.
	CountPlayers(ctx context.Context) (int, error)
}
