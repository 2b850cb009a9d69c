package usecase

import (
	"context"

	"guessr/internal/domain/entity"

	"github.com/google/uuid"
)

// CreatePlayerInput defines the data required to register a player.
type CreatePlayerInput struct {
	Name string // empty generates a guest name
}

// UpdatePlayerInput edits a player's profile. ActorID is the authenticated
// caller. Nil fields are left unchanged; an empty Avatar clears it.
type UpdatePlayerInput struct {
	ActorID  uuid.UUID
	PlayerID uuid.UUID
	Name     *string
	Avatar   *string
}

// PlayerOutput is a player with a fresh access token.
type PlayerOutput struct {
	Player      *entity.User `json:"player"`
	AccessToken string       `json:"access_token"`
}

// PlayerUsecase manages players.
type PlayerUsecase interface {
	CreatePlayer(ctx context.Context, input CreatePlayerInput) (*PlayerOutput, error)
	GetPlayer(ctx context.Context, playerID uuid.UUID) (*entity.User, error)
	UpdatePlayer(ctx context.Context, input UpdatePlayerInput) (*entity.User, error)
	GetPlayerStats(ctx context.Context, playerID uuid.UUID) (*entity.PlayerStats, error)
}
