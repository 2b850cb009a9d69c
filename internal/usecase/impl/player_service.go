package impl

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"net/url"
	"strings"
	"time"
	"unicode/utf8"

	"guessr/config"
	deliverycontext "guessr/internal/delivery/context"
	"guessr/internal/domain/entity"
	domainerrors "guessr/internal/domain/errors"
	"guessr/internal/domain/repository"
	"guessr/internal/domain/service"
	"guessr/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const (
	maxPlayerNameLength = 100
	maxAvatarLength     = 2048
	recentGamesLimit    = 10
)

// playerService implements the PlayerUsecase interface.
type playerService struct {
	txManager    repository.TransactionManager
	tokenService service.TokenService
	cfg          *config.Config
	logger       *slog.Logger
}

// NewPlayerService is the constructor for playerService.
func NewPlayerService(
	txManager repository.TransactionManager,
	tokenService service.TokenService,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.PlayerUsecase {
	return &playerService{
		txManager:    txManager,
		tokenService: tokenService,
		cfg:          cfg,
		logger:       logger,
	}
}

func (srv *playerService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// guestName mirrors the names handed to players who never picked one.
func guestName() string {
	return fmt.Sprintf("ゲスト%04d", rand.IntN(10000))
}

// normalizeAvatar accepts an absolute http(s) URL, or empty to clear the avatar.
func normalizeAvatar(avatar string) (string, error) {
	avatar = strings.TrimSpace(avatar)
	if avatar == "" {
		return "", nil
	}

	u, err := url.ParseRequestURI(avatar)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" || len(avatar) > maxAvatarLength {
		return "", errors.Wrap(domainerrors.ErrValidationFailed.WithDetails("avatar must be an http(s) URL"), "invalid avatar")
	}

	return avatar, nil
}

func normalizeName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" || utf8.RuneCountInString(name) > maxPlayerNameLength {
		return "", errors.Wrap(domainerrors.ErrValidationFailed.WithDetails("name must be 1 to 100 characters"), "invalid name")
	}

	return name, nil
}

// CreatePlayer registers a player and issues its access token.
func (srv *playerService) CreatePlayer(ctx context.Context, input usecase.CreatePlayerInput) (*usecase.PlayerOutput, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		name = guestName()
	}
	name, err := normalizeName(name)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	user := &entity.User{
		ID:        uuid.New(),
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
	}

	ctx, cancel := withStorageTimeout(ctx, srv.cfg)
	defer cancel()

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.UserRepo().Create(ctx, user); err != nil {
			return errors.Wrap(err, "failed to create user")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to create player", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create player")
	}

	token, err := srv.tokenService.GenerateAccessToken(user.ID)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrInternalError, "failed to generate access token")
	}
	srv.log(ctx).Info("Player created", slog.String("user_id", user.ID.String()))

	return &usecase.PlayerOutput{Player: user, AccessToken: token}, nil
}

func (srv *playerService) GetPlayer(ctx context.Context, playerID uuid.UUID) (*entity.User, error) {
	ctx, cancel := withStorageTimeout(ctx, srv.cfg)
	defer cancel()

	var user *entity.User
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var err error
		user, err = findUser(ctx, repoFactory, playerID)

		return err
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get player")
	}

	return user, nil
}

// UpdatePlayer edits the name and avatar; only the player itself may do so.
func (srv *playerService) UpdatePlayer(ctx context.Context, input usecase.UpdatePlayerInput) (*entity.User, error) {
	if input.ActorID != input.PlayerID {
		return nil, errors.Wrap(domainerrors.ErrForbidden, "cannot edit another player")
	}
	if input.Name == nil && input.Avatar == nil {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed.WithDetails("name or avatar is required"), "empty update")
	}

	var update repository.ProfileUpdate
	if input.Name != nil {
		name, err := normalizeName(*input.Name)
		if err != nil {
			return nil, err
		}
		update.Name = &name
	}
	if input.Avatar != nil {
		avatar, err := normalizeAvatar(*input.Avatar)
		if err != nil {
			return nil, err
		}
		update.Avatar = &avatar
	}

	ctx, cancel := withStorageTimeout(ctx, srv.cfg)
	defer cancel()

	var user *entity.User
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.UserRepo().UpdateProfile(ctx, input.PlayerID, update); err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return errors.Wrap(domainerrors.ErrUserNotFound, "player not found")
			}

			return errors.Wrap(err, "failed to update profile")
		}

		var err error
		user, err = findUser(ctx, repoFactory, input.PlayerID)

		return err
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to update player")
	}

	return user, nil
}

// GetPlayerStats returns the player, its latest games and its all-time position.
func (srv *playerService) GetPlayerStats(ctx context.Context, playerID uuid.UUID) (*entity.PlayerStats, error) {
	ctx, cancel := withStorageTimeout(ctx, srv.cfg)
	defer cancel()

	stats := &entity.PlayerStats{}
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		user, err := findUser(ctx, repoFactory, playerID)
		if err != nil {
			return err
		}
		stats.User = user

		recent, err := repoFactory.RankingRepo().ListRecentByUser(ctx, playerID, recentGamesLimit)
		if err != nil {
			return errors.Wrap(err, "failed to list recent games")
		}
		if recent == nil {
			recent = []*entity.RankingEntry{}
		}
		stats.RecentGames = recent

		stats.AllTimeRank, err = repoFactory.RankingRepo().AllTimePosition(ctx, playerID)
		if err != nil {
			return errors.Wrap(err, "failed to compute all-time rank")
		}

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get player stats")
	}

	return stats, nil
}

func findUser(ctx context.Context, repoFactory repository.RepositoryFactory, id uuid.UUID) (*entity.User, error) {
	user, err := repoFactory.UserRepo().FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrUserNotFound, "player not found")
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	return user, nil
}
