package handler

import (
	"log/slog"
	"net/http"

	"guessr/internal/delivery/api/middleware"
	"guessr/internal/delivery/api/response"
	domainerrors "guessr/internal/domain/errors"
	"guessr/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// PlayerHandlerParams holds dependencies for PlayerHandler, injected by Fx.
type PlayerHandlerParams struct {
	fx.In

	PlayerUC usecase.PlayerUsecase
	Logger   *slog.Logger
}

// PlayerHandler holds dependencies for player-related handlers
type PlayerHandler struct {
	playerUC usecase.PlayerUsecase
	logger   *slog.Logger
}

// NewPlayerHandler is the constructor for PlayerHandler
func NewPlayerHandler(params PlayerHandlerParams) *PlayerHandler {
	return &PlayerHandler{
		playerUC: params.PlayerUC,
		logger:   params.Logger,
	}
}

// CreatePlayerRequest represents the request body for registering a player
type CreatePlayerRequest struct {
	Name string `json:"name" validate:"max=100"`
}

// UpdatePlayerRequest represents the request body for editing a player.
// An empty avatar clears it.
type UpdatePlayerRequest struct {
	Name   *string `json:"name" validate:"omitempty,max=100"`
	Avatar *string `json:"avatar" validate:"omitempty,url,max=2048"`
}

// CreatePlayer handles POST /api/v1/players.
func (h *PlayerHandler) CreatePlayer(c echo.Context) error {
	var req CreatePlayerRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	output, err := h.playerUC.CreatePlayer(c.Request().Context(), usecase.CreatePlayerInput{Name: req.Name})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, output)
}

// GetPlayer handles GET /api/v1/players/:id.
func (h *PlayerHandler) GetPlayer(c echo.Context) error {
	playerID, err := playerIDParam(c)
	if err != nil {
		return err
	}

	player, err := h.playerUC.GetPlayer(c.Request().Context(), playerID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, player)
}

// UpdatePlayer handles PATCH /api/v1/players/:id. Requires Authenticate.
func (h *PlayerHandler) UpdatePlayer(c echo.Context) error {
	actorID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	playerID, err := playerIDParam(c)
	if err != nil {
		return err
	}

	var req UpdatePlayerRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	player, err := h.playerUC.UpdatePlayer(c.Request().Context(), usecase.UpdatePlayerInput{
		ActorID:  actorID,
		PlayerID: playerID,
		Name:     req.Name,
		Avatar:   req.Avatar,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, player)
}

// GetPlayerStats handles GET /api/v1/players/:id/stats.
func (h *PlayerHandler) GetPlayerStats(c echo.Context) error {
	playerID, err := playerIDParam(c)
	if err != nil {
		return err
	}

	stats, err := h.playerUC.GetPlayerStats(c.Request().Context(), playerID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, stats)
}

func playerIDParam(c echo.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, errors.Wrap(domainerrors.ErrUserNotFound, "malformed player id")
	}

	return id, nil
}
