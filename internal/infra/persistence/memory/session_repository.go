package memory

import (
	"context"
	"time"

	"guessr/internal/domain/entity"
	"guessr/internal/domain/repository"

	"github.com/google/uuid"
)

type sessionRepository struct {
	a access
}

// NewSessionRepository creates a SessionRepository over store.
func NewSessionRepository(store *Store) repository.SessionRepository {
	return &sessionRepository{a: access{store: store}}
}

func (repo *sessionRepository) Create(ctx context.Context, session *entity.Session) error {
	return repo.a.write(ctx, func(s *Store) error {
		if session.UserID != nil {
			if _, ok := s.users[*session.UserID]; !ok {
				return repository.ErrUserNotFound
			}
		}
		s.sessions[session.ID] = cloneSession(session)

		return nil
	})
}

func (repo *sessionRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Session, error) {
	var found *entity.Session
	err := repo.a.read(ctx, func(s *Store) error {
		session, ok := s.sessions[id]
		if !ok {
			return repository.ErrSessionNotFound
		}
		found = cloneSession(session)

		return nil
	})

	return found, err
}

func (repo *sessionRepository) UpdateIfRound(ctx context.Context, session *entity.Session, expectedRound int) error {
	return repo.a.write(ctx, func(s *Store) error {
		stored, ok := s.sessions[session.ID]
		if !ok {
			return repository.ErrSessionNotFound
		}
		if stored.CurrentRound != expectedRound || stored.Status != entity.SessionStatusPlaying {
			return entity.ErrRoundAlreadyResolved
		}
		s.sessions[session.ID] = cloneSession(session)

		return nil
	})
}

func (repo *sessionRepository) AbandonStale(ctx context.Context, cutoff time.Time) (int64, error) {
	var abandoned int64
	err := repo.a.write(ctx, func(s *Store) error {
		now := time.Now()
		for id, session := range s.sessions {
			if session.Status != entity.SessionStatusPlaying || !session.UpdatedAt.Before(cutoff) {
				continue
			}
			c := cloneSession(session)
			c.Status = entity.SessionStatusAbandoned
			c.UpdatedAt = now
			s.sessions[id] = c
			abandoned++
		}

		return nil
	})

	return abandoned, err
}
