package memory

import (
	"context"
	"sync"
	"testing"
	"time"

	"guessr/internal/domain/entity"
	domainerrors "guessr/internal/domain/errors"
	"guessr/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedLocation(t *testing.T, store *Store, name string, active bool, status entity.MediaStatus) *entity.Location {
	t.Helper()

	loc := &entity.Location{
		Name:      name,
		Latitude:  35.0,
		Longitude: 139.0,
		IsActive:  active,
		Media:     []*entity.MediaAsset{{URL: "https://img.example/" + name, IsPrimary: true, Status: status}},
	}
	require.NoError(t, NewLocationRepository(store).Create(context.Background(), loc))

	return loc
}

func seedUser(t *testing.T, store *Store, name string) *entity.User {
	t.Helper()

	u := &entity.User{ID: uuid.New(), Name: name, CreatedAt: time.Now()}
	require.NoError(t, NewUserRepository(store).Create(context.Background(), u))

	return u
}

func TestLocationRepository_SampleUniqueActive(t *testing.T) {
	store := NewStore()
	for _, name := range []string{"a", "b", "c", "d"} {
		seedLocation(t, store, name, true, entity.MediaStatusReady)
	}
	seedLocation(t, store, "inactive", false, entity.MediaStatusReady)
	seedLocation(t, store, "pending", true, entity.MediaStatusPending)

	repo := NewLocationRepository(store)
	ctx := context.Background()

	sampled, err := repo.SampleUniqueActive(ctx, 3)
	require.NoError(t, err)
	assert.Len(t, sampled, 3)

	seen := make(map[int64]bool)
	for _, l := range sampled {
		assert.False(t, seen[l.ID], "duplicate location %d", l.ID)
		seen[l.ID] = true
		assert.True(t, l.IsEligible())
	}

	all, err := repo.SampleUniqueActive(ctx, 10)
	require.NoError(t, err)
	assert.Len(t, all, 4)
}

func TestLocationRepository_ReturnsCopies(t *testing.T) {
	store := NewStore()
	loc := seedLocation(t, store, "a", true, entity.MediaStatusReady)
	repo := NewLocationRepository(store)

	loc.Name = "mutated"
	found, err := repo.FindByID(context.Background(), loc.ID)
	require.NoError(t, err)
	assert.Equal(t, "a", found.Name)

	found.Media[0].URL = "changed"
	again, err := repo.FindByID(context.Background(), loc.ID)
	require.NoError(t, err)
	assert.Equal(t, "https://img.example/a", again.Media[0].URL)

	_, err = repo.FindByID(context.Background(), 999)
	assert.ErrorIs(t, err, repository.ErrLocationNotFound)
}

func TestSessionRepository_UpdateIfRound(t *testing.T) {
	store := NewStore()
	repo := NewSessionRepository(store)
	ctx := context.Background()
	now := time.Now()

	session := entity.NewSession(nil, []entity.Round{{LocationID: 1, MediaID: 1}, {LocationID: 2, MediaID: 2}}, now)
	require.NoError(t, repo.Create(ctx, session))

	first, err := repo.FindByID(ctx, session.ID)
	require.NoError(t, err)
	second, err := repo.FindByID(ctx, session.ID)
	require.NoError(t, err)

	require.NoError(t, first.Resolve(entity.RoundOutcome{Score: 100}, now))
	require.NoError(t, second.Resolve(entity.RoundOutcome{Score: 200}, now))

	require.NoError(t, repo.UpdateIfRound(ctx, first, 0))
	assert.ErrorIs(t, repo.UpdateIfRound(ctx, second, 0), entity.ErrRoundAlreadyResolved)

	stored, err := repo.FindByID(ctx, session.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, stored.CurrentRound)
	assert.Equal(t, 100, stored.TotalScore)
}

func TestSessionRepository_CreateUnknownUser(t *testing.T) {
	store := NewStore()
	userID := uuid.New()

	session := entity.NewSession(&userID, []entity.Round{{LocationID: 1}}, time.Now())
	err := NewSessionRepository(store).Create(context.Background(), session)

	assert.ErrorIs(t, err, repository.ErrUserNotFound)
}

func TestSessionRepository_AbandonStale(t *testing.T) {
	store := NewStore()
	repo := NewSessionRepository(store)
	ctx := context.Background()
	now := time.Now()

	stale := entity.NewSession(nil, []entity.Round{{LocationID: 1}}, now.Add(-48*time.Hour))
	fresh := entity.NewSession(nil, []entity.Round{{LocationID: 1}}, now)
	require.NoError(t, repo.Create(ctx, stale))
	require.NoError(t, repo.Create(ctx, fresh))

	n, err := repo.AbandonStale(ctx, now.Add(-24*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	got, err := repo.FindByID(ctx, stale.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.SessionStatusAbandoned, got.Status)

	got, err = repo.FindByID(ctx, fresh.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.SessionStatusPlaying, got.Status)
}

func TestTransactionManager_RollsBackOnError(t *testing.T) {
	store := NewStore()
	user := seedUser(t, store, "alice")
	tm := NewTransactionManager(store)
	ctx := context.Background()

	err := tm.Execute(ctx, func(f repository.RepositoryFactory) error {
		if err := f.UserRepo().ApplyCompletion(ctx, user.ID, 4000); err != nil {
			return err
		}

		return assert.AnError
	})
	assert.ErrorIs(t, err, assert.AnError)

	got, err := NewUserRepository(store).FindByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Zero(t, got.TotalGames)
	assert.Zero(t, got.BestScore)
}

func TestTransactionManager_RollsBackOnPanic(t *testing.T) {
	store := NewStore()
	user := seedUser(t, store, "alice")
	tm := NewTransactionManager(store)
	ctx := context.Background()

	assert.Panics(t, func() {
		_ = tm.Execute(ctx, func(f repository.RepositoryFactory) error {
			name := "bob"
			_ = f.UserRepo().UpdateProfile(ctx, user.ID, repository.ProfileUpdate{Name: &name})
			panic("boom")
		})
	})

	got, err := NewUserRepository(store).FindByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice", got.Name)
}

func TestUserRepository_UpdateProfile(t *testing.T) {
	store := NewStore()
	user := seedUser(t, store, "alice")
	repo := NewUserRepository(store)
	ctx := context.Background()

	avatar := "https://img.example/alice.png"
	require.NoError(t, repo.UpdateProfile(ctx, user.ID, repository.ProfileUpdate{Avatar: &avatar}))

	got, err := repo.FindByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice", got.Name)
	assert.Equal(t, avatar, got.Avatar)

	name := "bob"
	require.NoError(t, repo.UpdateProfile(ctx, user.ID, repository.ProfileUpdate{Name: &name}))
	got, err = repo.FindByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "bob", got.Name)
	assert.Equal(t, avatar, got.Avatar)

	err = repo.UpdateProfile(ctx, uuid.New(), repository.ProfileUpdate{Name: &name})
	assert.ErrorIs(t, err, repository.ErrUserNotFound)
}

func TestRankingRepository_CreateIsUniquePerSession(t *testing.T) {
	store := NewStore()
	user := seedUser(t, store, "alice")
	repo := NewRankingRepository(store)
	ctx := context.Background()
	sessionID := uuid.New()

	entry := &entity.RankingEntry{ID: uuid.New(), UserID: user.ID, SessionID: sessionID, Score: 1000, RankDate: "2026-10-17"}
	require.NoError(t, repo.Create(ctx, entry))

	dup := &entity.RankingEntry{ID: uuid.New(), UserID: user.ID, SessionID: sessionID, Score: 1000, RankDate: "2026-10-17"}
	assert.ErrorIs(t, repo.Create(ctx, dup), repository.ErrRankingExists)
}

func TestRankingRepository_AllTimePositionIsDense(t *testing.T) {
	store := NewStore()
	users := NewUserRepository(store)
	repo := NewRankingRepository(store)
	ctx := context.Background()

	top := seedUser(t, store, "top")
	tiedA := seedUser(t, store, "tied-a")
	tiedB := seedUser(t, store, "tied-b")
	last := seedUser(t, store, "last")
	idle := seedUser(t, store, "idle")

	require.NoError(t, users.ApplyCompletion(ctx, top.ID, 5000))
	require.NoError(t, users.ApplyCompletion(ctx, tiedA.ID, 3000))
	require.NoError(t, users.ApplyCompletion(ctx, tiedB.ID, 3000))
	require.NoError(t, users.ApplyCompletion(ctx, last.ID, 1000))

	cases := map[uuid.UUID]int{top.ID: 1, tiedA.ID: 2, tiedB.ID: 2, last.ID: 3, idle.ID: 0}
	for id, want := range cases {
		got, err := repo.AllTimePosition(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	_, err := repo.AllTimePosition(ctx, uuid.New())
	assert.ErrorIs(t, err, repository.ErrUserNotFound)
}

func TestRankingRepository_StatsAndActivity(t *testing.T) {
	store := NewStore()
	alice := seedUser(t, store, "alice")
	bob := seedUser(t, store, "bob")
	repo := NewRankingRepository(store)
	ctx := context.Background()

	for _, e := range []*entity.RankingEntry{
		{UserID: alice.ID, Score: 1000, RankDate: "2026-10-16"},
		{UserID: alice.ID, Score: 3001, RankDate: "2026-10-17"},
		{UserID: bob.ID, Score: 2000, RankDate: "2026-10-17"},
	} {
		e.ID = uuid.New()
		e.SessionID = uuid.New()
		require.NoError(t, repo.Create(ctx, e))
	}

	stats, err := repo.StatsForDate(ctx, "2026-10-17")
	require.NoError(t, err)
	assert.Equal(t, &entity.TodayStats{Date: "2026-10-17", TotalGames: 2, AverageScore: 2501, MaxScore: 3001, UniquePlayers: 2}, stats)

	empty, err := repo.StatsForDate(ctx, "2026-01-01")
	require.NoError(t, err)
	assert.Zero(t, empty.TotalGames)
	assert.Zero(t, empty.AverageScore)

	activity, err := repo.ActivitySince(ctx, "2026-10-16")
	require.NoError(t, err)
	assert.Equal(t, []entity.DailyActivity{{Date: "2026-10-16", Games: 1}, {Date: "2026-10-17", Games: 2}}, activity)

	summary, err := repo.Summary(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, summary.TotalGames)
	assert.Equal(t, 3001, summary.BestScore)
}

func TestUserRepository_ApplyCompletionConcurrent(t *testing.T) {
	store := NewStore()
	user := seedUser(t, store, "alice")
	repo := NewUserRepository(store)
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 1; i <= 20; i++ {
		wg.Add(1)
		go func(score int) {
			defer wg.Done()
			assert.NoError(t, repo.ApplyCompletion(ctx, user.ID, score))
		}(i * 100)
	}
	wg.Wait()

	got, err := repo.FindByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, 20, got.TotalGames)
	assert.Equal(t, 21000, got.TotalScore)
	assert.Equal(t, 2000, got.BestScore)
	assert.InDelta(t, 1050.0, got.AverageScore, 0.001)
}

func TestStore_CancelledContext(t *testing.T) {
	store := NewStore()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewSessionRepository(store).FindByID(ctx, uuid.New())

	var storageErr *domainerrors.StorageUnavailableError
	assert.ErrorAs(t, err, &storageErr)
}
