package impl

import (
	"context"
	"strings"
	"testing"

	"guessr/internal/domain/entity"
	domainerrors "guessr/internal/domain/errors"
	"guessr/internal/domain/repository"
	mockRepo "guessr/internal/mocks/repository"
	mockService "guessr/internal/mocks/service"
	"guessr/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type playerServiceFixture struct {
	t            *testing.T
	txManager    *mockRepo.MockTransactionManager
	tokenService *mockService.MockTokenService
	service      usecase.PlayerUsecase
}

func createTestPlayerService(t *testing.T) *playerServiceFixture {
	t.Helper()

	txManager := mockRepo.NewMockTransactionManager(t)
	tokenService := mockService.NewMockTokenService(t)

	return &playerServiceFixture{
		t:            t,
		txManager:    txManager,
		tokenService: tokenService,
		service:      NewPlayerService(txManager, tokenService, newTestConfig(), newDiscardLogger()),
	}
}

// withUserRepo runs one transaction whose factory hands out userRepo.
func (f *playerServiceFixture) withUserRepo(setup func(userRepo *mockRepo.MockUserRepository)) {
	onExecute(f.t, f.txManager, nil, func(factory *mockRepo.MockRepositoryFactory) {
		userRepo := mockRepo.NewMockUserRepository(f.t)
		factory.EXPECT().UserRepo().Return(userRepo)
		setup(userRepo)
	})
}

func TestPlayerService_CreatePlayer(t *testing.T) {
	f := createTestPlayerService(t)

	var created *entity.User
	f.withUserRepo(func(userRepo *mockRepo.MockUserRepository) {
		userRepo.EXPECT().
			Create(mock.Anything, mock.AnythingOfType("*entity.User")).
			Run(func(_ context.Context, user *entity.User) { created = user }).
			Return(nil)
	})
	f.tokenService.EXPECT().GenerateAccessToken(mock.AnythingOfType("uuid.UUID")).Return("token-123", nil)

	out, err := f.service.CreatePlayer(context.Background(), usecase.CreatePlayerInput{Name: "  たろう  "})
	require.NoError(t, err)
	assert.Equal(t, "たろう", out.Player.Name)
	assert.Equal(t, "token-123", out.AccessToken)
	assert.Same(t, created, out.Player)
	assert.NotEqual(t, uuid.Nil, out.Player.ID)
	assert.Zero(t, out.Player.TotalGames)
}

func TestPlayerService_CreatePlayer_GuestName(t *testing.T) {
	f := createTestPlayerService(t)

	f.withUserRepo(func(userRepo *mockRepo.MockUserRepository) {
		userRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
	})
	f.tokenService.EXPECT().GenerateAccessToken(mock.Anything).Return("token", nil)

	out, err := f.service.CreatePlayer(context.Background(), usecase.CreatePlayerInput{})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out.Player.Name, "ゲスト"), out.Player.Name)
	assert.Len(t, []rune(out.Player.Name), 7)
}

func TestPlayerService_CreatePlayer_NameTooLong(t *testing.T) {
	f := createTestPlayerService(t)

	out, err := f.service.CreatePlayer(context.Background(), usecase.CreatePlayerInput{Name: strings.Repeat("あ", 101)})
	assert.Nil(t, out)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestPlayerService_CreatePlayer_TokenFailure(t *testing.T) {
	f := createTestPlayerService(t)

	f.withUserRepo(func(userRepo *mockRepo.MockUserRepository) {
		userRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
	})
	f.tokenService.EXPECT().GenerateAccessToken(mock.Anything).Return("", errors.New("signing failed"))

	out, err := f.service.CreatePlayer(context.Background(), usecase.CreatePlayerInput{Name: "alice"})
	assert.Nil(t, out)
	assert.ErrorIs(t, err, domainerrors.ErrInternalError)
}

func TestPlayerService_GetPlayer_NotFound(t *testing.T) {
	f := createTestPlayerService(t)
	id := uuid.New()

	f.withUserRepo(func(userRepo *mockRepo.MockUserRepository) {
		userRepo.EXPECT().FindByID(mock.Anything, id).Return(nil, repository.ErrUserNotFound)
	})

	user, err := f.service.GetPlayer(context.Background(), id)
	assert.Nil(t, user)
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestPlayerService_UpdatePlayer_Name(t *testing.T) {
	f := createTestPlayerService(t)
	id := uuid.New()

	f.withUserRepo(func(userRepo *mockRepo.MockUserRepository) {
		userRepo.EXPECT().
			UpdateProfile(mock.Anything, id, repository.ProfileUpdate{Name: ptr("renamed")}).
			Return(nil)
		userRepo.EXPECT().FindByID(mock.Anything, id).Return(&entity.User{ID: id, Name: "renamed"}, nil)
	})

	user, err := f.service.UpdatePlayer(context.Background(), usecase.UpdatePlayerInput{
		ActorID:  id,
		PlayerID: id,
		Name:     ptr(" renamed "),
	})
	require.NoError(t, err)
	assert.Equal(t, "renamed", user.Name)
}

func TestPlayerService_UpdatePlayer_Avatar(t *testing.T) {
	tests := []struct {
		name   string
		avatar string
		want   string
	}{
		{name: "sets a url", avatar: " https://img.example/a.png ", want: "https://img.example/a.png"},
		{name: "empty clears it", avatar: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := createTestPlayerService(t)
			id := uuid.New()

			f.withUserRepo(func(userRepo *mockRepo.MockUserRepository) {
				userRepo.EXPECT().
					UpdateProfile(mock.Anything, id, repository.ProfileUpdate{Avatar: ptr(tt.want)}).
					Return(nil)
				userRepo.EXPECT().FindByID(mock.Anything, id).Return(&entity.User{ID: id, Avatar: tt.want}, nil)
			})

			user, err := f.service.UpdatePlayer(context.Background(), usecase.UpdatePlayerInput{
				ActorID:  id,
				PlayerID: id,
				Avatar:   ptr(tt.avatar),
			})
			require.NoError(t, err)
			assert.Equal(t, tt.want, user.Avatar)
		})
	}
}

func TestPlayerService_UpdatePlayer_Rejected(t *testing.T) {
	id := uuid.New()

	tests := []struct {
		name    string
		input   usecase.UpdatePlayerInput
		wantErr error
	}{
		{
			name:    "another player",
			input:   usecase.UpdatePlayerInput{ActorID: uuid.New(), PlayerID: id, Name: ptr("x")},
			wantErr: domainerrors.ErrForbidden,
		},
		{
			name:    "another player's avatar",
			input:   usecase.UpdatePlayerInput{ActorID: uuid.New(), PlayerID: id, Avatar: ptr("https://img.example/a.png")},
			wantErr: domainerrors.ErrForbidden,
		},
		{
			name:    "blank name",
			input:   usecase.UpdatePlayerInput{ActorID: id, PlayerID: id, Name: ptr("   ")},
			wantErr: domainerrors.ErrValidationFailed,
		},
		{
			name:    "nothing to change",
			input:   usecase.UpdatePlayerInput{ActorID: id, PlayerID: id},
			wantErr: domainerrors.ErrValidationFailed,
		},
		{
			name:    "avatar is not a url",
			input:   usecase.UpdatePlayerInput{ActorID: id, PlayerID: id, Avatar: ptr("javascript:alert(1)")},
			wantErr: domainerrors.ErrValidationFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := createTestPlayerService(t)

			user, err := f.service.UpdatePlayer(context.Background(), tt.input)
			assert.Nil(t, user)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestPlayerService_UpdatePlayer_NotFound(t *testing.T) {
	f := createTestPlayerService(t)
	id := uuid.New()

	f.withUserRepo(func(userRepo *mockRepo.MockUserRepository) {
		userRepo.EXPECT().UpdateProfile(mock.Anything, id, mock.Anything).Return(repository.ErrUserNotFound)
	})

	_, err := f.service.UpdatePlayer(context.Background(), usecase.UpdatePlayerInput{ActorID: id, PlayerID: id, Name: ptr("bob")})
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestPlayerService_GetPlayerStats(t *testing.T) {
	f := createTestPlayerService(t)
	id := uuid.New()
	recent := []*entity.RankingEntry{{ID: uuid.New(), UserID: id, Score: 4200}}

	onExecute(t, f.txManager, nil, func(factory *mockRepo.MockRepositoryFactory) {
		userRepo := mockRepo.NewMockUserRepository(t)
		rankingRepo := mockRepo.NewMockRankingRepository(t)
		factory.EXPECT().UserRepo().Return(userRepo)
		factory.EXPECT().RankingRepo().Return(rankingRepo)

		userRepo.EXPECT().FindByID(mock.Anything, id).Return(&entity.User{ID: id, Name: "alice", TotalGames: 1}, nil)
		rankingRepo.EXPECT().ListRecentByUser(mock.Anything, id, 10).Return(recent, nil)
		rankingRepo.EXPECT().AllTimePosition(mock.Anything, id).Return(3, nil)
	})

	stats, err := f.service.GetPlayerStats(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, "alice", stats.User.Name)
	assert.Equal(t, recent, stats.RecentGames)
	assert.Equal(t, 3, stats.AllTimeRank)
}

func TestPlayerService_GetPlayerStats_StorageError(t *testing.T) {
	f := createTestPlayerService(t)
	id := uuid.New()
	storageErr := domainerrors.NewStorageUnavailableError(errors.New("connection reset"), "find user")

	f.withUserRepo(func(userRepo *mockRepo.MockUserRepository) {
		userRepo.EXPECT().FindByID(mock.Anything, id).Return(nil, storageErr)
	})

	stats, err := f.service.GetPlayerStats(context.Background(), id)
	assert.Nil(t, stats)
	assert.Equal(t, domainerrors.CodeStorageUnavailable, domainerrors.KindOf(err))
}
