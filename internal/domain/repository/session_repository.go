package repository

import (
	"context"
	"time"

	"guessr/internal/domain/entity"
	"guessr/internal/errors"

	"github.com/google/uuid"
)

// ErrSessionNotFound is returned when a session does not exist.
var ErrSessionNotFound = errors.New("session not found")

// SessionRepository persists game sessions.
type SessionRepository interface {
	// Create persists a new session.
	Create(ctx context.Context, session *entity.Session) error

	// FindByID retrieves a session by id.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Session, error)

	// UpdateIfRound stores session only if the persisted cursor still equals
	// expectedRound and the session is playing. Otherwise it returns
	// entity.ErrRoundAlreadyResolved and stores nothing.
	UpdateIfRound(ctx context.Context, session *entity.Session, expectedRound int) error

	// AbandonStale moves playing sessions not updated since cutoff to abandoned.
	AbandonStale(ctx context.Context, cutoff time.Time) (int64, error)
}
