package memory

import (
	"context"
	"sort"
	"time"

	"guessr/internal/domain/entity"
	"guessr/internal/domain/repository"
)

type locationRepository struct {
	a access
}

// NewLocationRepository creates a LocationRepository over store.
func NewLocationRepository(store *Store) repository.LocationRepository {
	return &locationRepository{a: access{store: store}}
}

func (repo *locationRepository) SampleUniqueActive(ctx context.Context, n int) ([]*entity.Location, error) {
	if n <= 0 {
		return []*entity.Location{}, nil
	}

	var sampled []*entity.Location
	err := repo.a.read(ctx, func(s *Store) error {
		eligible := make([]*entity.Location, 0, len(s.locations))
		for _, l := range s.locations {
			if l.IsEligible() {
				eligible = append(eligible, l)
			}
		}
		// map order is random but not uniform; fix it before shuffling
		sort.Slice(eligible, func(i, j int) bool { return eligible[i].ID < eligible[j].ID })
		s.shuffle(len(eligible), func(i, j int) { eligible[i], eligible[j] = eligible[j], eligible[i] })

		if len(eligible) > n {
			eligible = eligible[:n]
		}
		sampled = make([]*entity.Location, 0, len(eligible))
		for _, l := range eligible {
			c := cloneLocation(l)
			c.Media = c.ReadyMedia()
			sampled = append(sampled, c)
		}

		return nil
	})

	return sampled, err
}

func (repo *locationRepository) FindByID(ctx context.Context, id int64) (*entity.Location, error) {
	var found *entity.Location
	err := repo.a.read(ctx, func(s *Store) error {
		l, ok := s.locations[id]
		if !ok {
			return repository.ErrLocationNotFound
		}
		found = cloneLocation(l)

		return nil
	})

	return found, err
}

func (repo *locationRepository) FindByIDs(ctx context.Context, ids []int64) ([]*entity.Location, error) {
	var found []*entity.Location
	err := repo.a.read(ctx, func(s *Store) error {
		found = make([]*entity.Location, 0, len(ids))
		for _, id := range ids {
			if l, ok := s.locations[id]; ok {
				found = append(found, cloneLocation(l))
			}
		}

		return nil
	})

	return found, err
}

func (repo *locationRepository) Create(ctx context.Context, location *entity.Location) error {
	return repo.a.write(ctx, func(s *Store) error {
		now := time.Now()
		s.nextLocationID++
		location.ID = s.nextLocationID
		location.CreatedAt = now
		location.UpdatedAt = now
		if location.Difficulty == "" {
			location.Difficulty = entity.DifficultyMedium
		}
		for _, m := range location.Media {
			s.nextMediaID++
			m.ID = s.nextMediaID
			m.LocationID = location.ID
			m.CreatedAt = now
			if m.Status == "" {
				m.Status = entity.MediaStatusPending
			}
		}
		s.locations[location.ID] = cloneLocation(location)

		return nil
	})
}

func (repo *locationRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := repo.a.read(ctx, func(s *Store) error {
		count = int64(len(s.locations))

		return nil
	})

	return count, err
}
