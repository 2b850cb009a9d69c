package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"guessr/config"
	"guessr/internal/domain/entity"
	"guessr/internal/domain/repository"
	"guessr/internal/infra/persistence/memory"
	mockRepo "guessr/internal/mocks/repository"
	mockService "guessr/internal/mocks/service"
	"guessr/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var kusatsu = entity.Coordinate{Lat: 36.6227, Lng: 138.5969}

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	return &config.Config{
		Storage: &config.StorageConfig{Timeout: time.Second},
		Game:    &config.GameConfig{DefaultRoundCount: 5, MaxRoundCount: 10},
		Ranking: &config.RankingConfig{Timezone: "UTC", DefaultLimit: 10, MaxLimit: 100},
		Worker:  &config.WorkerConfig{AbandonAfter: time.Hour},
	}
}

// onExecute makes the mocked transaction manager run fn against a fresh mock
// factory prepared by setup, returning returnErr when it is set.
func onExecute(
	t *testing.T,
	txManager *mockRepo.MockTransactionManager,
	returnErr error,
	setup func(factory *mockRepo.MockRepositoryFactory),
) {
	t.Helper()

	txManager.EXPECT().
		Execute(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(t)
			if setup != nil {
				setup(factory)
			}
			if err := fn(factory); err != nil {
				return err
			}

			return returnErr
		}).
		Once()
}

// memoryGame wires the real services onto one in-memory store with a fixed clock.
type memoryGame struct {
	store     *memory.Store
	txManager repository.TransactionManager
	publisher *mockService.MockEventPublisher
	qrCode    *mockService.MockQRCodeService
	game      *gameService
	ranking   *rankingService
	clock     time.Time
}

func newMemoryGame(t *testing.T, cfg *config.Config) *memoryGame {
	t.Helper()

	if cfg == nil {
		cfg = newTestConfig()
	}
	store := memory.NewStore()
	txManager := memory.NewTransactionManager(store)
	publisher := mockService.NewMockEventPublisher(t)
	qrCode := mockService.NewMockQRCodeService(t)
	clock := time.Date(2026, 10, 17, 3, 0, 0, 0, time.UTC)

	game := NewGameService(GameServiceParams{
		TxManager: txManager,
		Publisher: publisher,
		QRCode:    qrCode,
		Config:    cfg,
		Logger:    newDiscardLogger(),
	}).(*gameService)
	game.now = func() time.Time { return clock }

	ranking := NewRankingService(txManager, cfg, newDiscardLogger()).(*rankingService)
	ranking.now = func() time.Time { return clock }

	return &memoryGame{
		store:     store,
		txManager: txManager,
		publisher: publisher,
		qrCode:    qrCode,
		game:      game,
		ranking:   ranking,
		clock:     clock,
	}
}

// allowPublish accepts any completion event.
func (m *memoryGame) allowPublish() {
	m.publisher.EXPECT().PublishSessionCompleted(mock.Anything, mock.Anything).Return(nil).Maybe()
}

func (m *memoryGame) addLocation(t *testing.T, name string, at entity.Coordinate) *entity.Location {
	t.Helper()

	loc := &entity.Location{
		Name:        name,
		Prefecture:  "群馬県",
		City:        "草津町",
		Latitude:    at.Lat,
		Longitude:   at.Lng,
		Description: "description of " + name,
		Difficulty:  entity.DifficultyMedium,
		IsActive:    true,
		Media: []*entity.MediaAsset{
			{URL: "https://img.example/" + uuid.NewString() + ".jpg", Alt: name, IsPrimary: true, Status: entity.MediaStatusReady},
			{URL: "https://img.example/" + uuid.NewString() + ".jpg", Alt: name, Status: entity.MediaStatusReady},
		},
	}
	require.NoError(t, memory.NewLocationRepository(m.store).Create(context.Background(), loc))

	return loc
}

// addCatalog adds n eligible locations spread over Japan.
func (m *memoryGame) addCatalog(t *testing.T, n int) []*entity.Location {
	t.Helper()

	locs := make([]*entity.Location, 0, n)
	for i := 0; i < n; i++ {
		at := entity.Coordinate{Lat: 31 + float64(i)*0.5, Lng: 130 + float64(i)*0.5}
		locs = append(locs, m.addLocation(t, "spot-"+uuid.NewString()[:8], at))
	}

	return locs
}

func (m *memoryGame) addUser(t *testing.T, name string) *entity.User {
	t.Helper()

	u := &entity.User{ID: uuid.New(), Name: name, CreatedAt: m.clock, UpdatedAt: m.clock}
	require.NoError(t, memory.NewUserRepository(m.store).Create(context.Background(), u))

	return u
}

func (m *memoryGame) findUser(t *testing.T, id uuid.UUID) *entity.User {
	t.Helper()

	u, err := memory.NewUserRepository(m.store).FindByID(context.Background(), id)
	require.NoError(t, err)

	return u
}

// playThrough answers every remaining round of a session with the same guess.
func (m *memoryGame) playThrough(t *testing.T, sessionID uuid.UUID, guess entity.Coordinate) *usecase.RoundResult {
	t.Helper()

	for {
		res, err := m.game.SubmitGuess(context.Background(), usecase.SubmitGuessInput{SessionID: sessionID, Guess: guess})
		require.NoError(t, err)
		if res.IsComplete {
			return res
		}
	}
}

func ptr[T any](v T) *T {
	return &v
}
