// Package memory is an in-process persistence backend. Every record is kept
// as a private copy; callers never share pointers with the store.
package memory

import (
	"context"
	"maps"
	"math/rand/v2"
	"sync"

	"guessr/internal/domain/entity"
	domainerrors "guessr/internal/domain/errors"

	"github.com/google/uuid"
)

// Store holds every table of the memory backend behind one lock.
type Store struct {
	mu sync.RWMutex

	locations      map[int64]*entity.Location
	nextLocationID int64
	nextMediaID    int64

	sessions map[uuid.UUID]*entity.Session
	users    map[uuid.UUID]*entity.User

	rankings         map[uuid.UUID]*entity.RankingEntry
	rankingBySession map[uuid.UUID]uuid.UUID

	shuffle func(n int, swap func(i, j int))
}

// Option configures a Store.
type Option func(*Store)

// WithShuffle replaces the shuffle used when sampling locations.
func WithShuffle(shuffle func(n int, swap func(i, j int))) Option {
	return func(s *Store) {
		s.shuffle = shuffle
	}
}

// NewStore creates an empty store.
func NewStore(opts ...Option) *Store {
	s := &Store{
		locations:        make(map[int64]*entity.Location),
		sessions:         make(map[uuid.UUID]*entity.Session),
		users:            make(map[uuid.UUID]*entity.User),
		rankings:         make(map[uuid.UUID]*entity.RankingEntry),
		rankingBySession: make(map[uuid.UUID]uuid.UUID),
		shuffle:          rand.Shuffle,
	}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

type snapshot struct {
	locations        map[int64]*entity.Location
	nextLocationID   int64
	nextMediaID      int64
	sessions         map[uuid.UUID]*entity.Session
	users            map[uuid.UUID]*entity.User
	rankings         map[uuid.UUID]*entity.RankingEntry
	rankingBySession map[uuid.UUID]uuid.UUID
}

// snapshot copies the maps only. Stored records are replaced on update,
// never mutated, so sharing them between snapshot and live maps is safe.
// Caller must hold mu.
func (s *Store) snapshot() *snapshot {
	return &snapshot{
		locations:        maps.Clone(s.locations),
		nextLocationID:   s.nextLocationID,
		nextMediaID:      s.nextMediaID,
		sessions:         maps.Clone(s.sessions),
		users:            maps.Clone(s.users),
		rankings:         maps.Clone(s.rankings),
		rankingBySession: maps.Clone(s.rankingBySession),
	}
}

// restore rolls the store back. Caller must hold mu.
func (s *Store) restore(snap *snapshot) {
	s.locations = snap.locations
	s.nextLocationID = snap.nextLocationID
	s.nextMediaID = snap.nextMediaID
	s.sessions = snap.sessions
	s.users = snap.users
	s.rankings = snap.rankings
	s.rankingBySession = snap.rankingBySession
}

// access guards repository calls. Repositories handed out by a transaction
// run with the write lock already held and skip locking.
type access struct {
	store  *Store
	locked bool
}

func (a access) read(ctx context.Context, fn func(s *Store) error) error {
	if err := ctx.Err(); err != nil {
		return domainerrors.NewStorageUnavailableError(err, "memory store call cancelled")
	}
	if !a.locked {
		a.store.mu.RLock()
		defer a.store.mu.RUnlock()
	}

	return fn(a.store)
}

func (a access) write(ctx context.Context, fn func(s *Store) error) error {
	if err := ctx.Err(); err != nil {
		return domainerrors.NewStorageUnavailableError(err, "memory store call cancelled")
	}
	if !a.locked {
		a.store.mu.Lock()
		defer a.store.mu.Unlock()
	}

	return fn(a.store)
}

func cloneLocation(l *entity.Location) *entity.Location {
	c := *l
	c.Features = append([]string(nil), l.Features...)
	if c.Features == nil {
		c.Features = []string{}
	}
	c.Media = make([]*entity.MediaAsset, 0, len(l.Media))
	for _, m := range l.Media {
		mc := *m
		if m.Width != nil {
			w := *m.Width
			mc.Width = &w
		}
		if m.Height != nil {
			h := *m.Height
			mc.Height = &h
		}
		c.Media = append(c.Media, &mc)
	}

	return &c
}

func cloneSession(s *entity.Session) *entity.Session {
	c := *s
	if s.UserID != nil {
		id := *s.UserID
		c.UserID = &id
	}
	if s.CompletedAt != nil {
		at := *s.CompletedAt
		c.CompletedAt = &at
	}
	c.Rounds = make([]entity.Round, len(s.Rounds))
	for i, r := range s.Rounds {
		c.Rounds[i] = cloneRound(r)
	}

	return &c
}

func cloneRound(r entity.Round) entity.Round {
	c := r
	if r.Guess != nil {
		g := *r.Guess
		c.Guess = &g
	}
	if r.Distance != nil {
		d := *r.Distance
		c.Distance = &d
	}
	if r.Score != nil {
		sc := *r.Score
		c.Score = &sc
	}
	if r.TimeSpent != nil {
		t := *r.TimeSpent
		c.TimeSpent = &t
	}
	if r.AnsweredAt != nil {
		at := *r.AnsweredAt
		c.AnsweredAt = &at
	}

	return c
}

func cloneUser(u *entity.User) *entity.User {
	c := *u

	return &c
}

func cloneRanking(e *entity.RankingEntry) *entity.RankingEntry {
	c := *e

	return &c
}
