// Package handler contains the HTTP handlers of the public API.
package handler

import (
	"log/slog"
	"net/http"

	"guessr/internal/delivery/api/middleware"
	"guessr/internal/delivery/api/response"
	"guessr/internal/delivery/api/validator"
	deliverycontext "guessr/internal/delivery/context"
	"guessr/internal/domain/entity"
	domainerrors "guessr/internal/domain/errors"
	"guessr/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// GameHandlerParams holds dependencies for GameHandler, injected by Fx.
type GameHandlerParams struct {
	fx.In

	GameUC usecase.GameUsecase
	Logger *slog.Logger
}

// GameHandler serves the session engine.
type GameHandler struct {
	gameUC usecase.GameUsecase
	logger *slog.Logger
}

// NewGameHandler is the constructor for GameHandler
func NewGameHandler(params GameHandlerParams) *GameHandler {
	return &GameHandler{
		gameUC: params.GameUC,
		logger: params.Logger,
	}
}

// StartSessionRequest represents the request body for starting a game
type StartSessionRequest struct {
	UserID     *uuid.UUID `json:"user_id"`
	RoundCount int        `json:"round_count" validate:"gte=0"`
}

// SubmitGuessRequest represents the request body for answering a round
type SubmitGuessRequest struct {
	Lat       *float64 `json:"lat" validate:"required"`
	Lng       *float64 `json:"lng" validate:"required"`
	TimeSpent *float64 `json:"time_spent" validate:"omitempty,gte=0"`
	Round     *int     `json:"round" validate:"omitempty,gte=0"`
}

// TimeExpiredRequest represents the request body for a round that ran out of time
type TimeExpiredRequest struct {
	TimeSpent *float64 `json:"time_spent" validate:"omitempty,gte=0"`
	Round     *int     `json:"round" validate:"required,gte=0"`
}

// StartSession handles POST /api/v1/sessions.
// A bearer token, when present, decides the owner; a body user_id must agree with it.
func (h *GameHandler) StartSession(c echo.Context) error {
	var req StartSessionRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	userID := req.UserID
	if tokenUserID, ok := middleware.GetUserID(c); ok {
		if userID != nil && *userID != tokenUserID {
			return errors.Wrap(domainerrors.ErrForbidden, "user_id does not match the access token")
		}
		userID = &tokenUserID
	}

	view, err := h.gameUC.StartSession(c.Request().Context(), usecase.StartSessionInput{
		UserID:     userID,
		RoundCount: req.RoundCount,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, view)
}

// GetSession handles GET /api/v1/sessions/:id.
func (h *GameHandler) GetSession(c echo.Context) error {
	sessionID, err := h.sessionIDParam(c)
	if err != nil {
		return err
	}

	view, err := h.gameUC.GetSession(c.Request().Context(), sessionID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, view)
}

// SubmitGuess handles POST /api/v1/sessions/:id/guesses.
func (h *GameHandler) SubmitGuess(c echo.Context) error {
	sessionID, err := h.sessionIDParam(c)
	if err != nil {
		return err
	}

	var req SubmitGuessRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	result, err := h.gameUC.SubmitGuess(c.Request().Context(), usecase.SubmitGuessInput{
		SessionID: sessionID,
		Guess:     entity.Coordinate{Lat: *req.Lat, Lng: *req.Lng},
		TimeSpent: req.TimeSpent,
		Round:     req.Round,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, result)
}

// TimeExpired handles POST /api/v1/sessions/:id/time-expired.
func (h *GameHandler) TimeExpired(c echo.Context) error {
	sessionID, err := h.sessionIDParam(c)
	if err != nil {
		return err
	}

	var req TimeExpiredRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	result, err := h.gameUC.TimeExpired(c.Request().Context(), usecase.TimeExpiredInput{
		SessionID: sessionID,
		TimeSpent: req.TimeSpent,
		Round:     *req.Round,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, result)
}

// GetResults handles GET /api/v1/sessions/:id/results.
func (h *GameHandler) GetResults(c echo.Context) error {
	sessionID, err := h.sessionIDParam(c)
	if err != nil {
		return err
	}

	results, err := h.gameUC.GetResults(c.Request().Context(), sessionID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, results)
}

// ResultQRCode handles GET /api/v1/sessions/:id/results/qr.
func (h *GameHandler) ResultQRCode(c echo.Context) error {
	sessionID, err := h.sessionIDParam(c)
	if err != nil {
		return err
	}

	png, err := h.gameUC.ResultQRCode(c.Request().Context(), sessionID)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

// sessionIDParam parses the :id path parameter and tags the request logger
// with it, so every log line below the handler names the session.
func (h *GameHandler) sessionIDParam(c echo.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, errors.Wrap(domainerrors.ErrSessionNotFound, "malformed session id")
	}

	req := c.Request()
	ctx := deliverycontext.WithLogAttrs(req.Context(), h.logger, slog.String("session_id", id.String()))
	c.SetRequest(req.WithContext(ctx))

	return id, nil
}

// bindAndValidate decodes the body into req and checks its tags.
func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return errors.Wrap(domainerrors.ErrValidationFailed.WithDetails("request body is malformed"), err.Error())
	}

	if err := c.Validate(req); err != nil {
		return errors.Wrap(domainerrors.ErrValidationFailed.WithDetails(validator.Describe(err)), "invalid request")
	}

	return nil
}
