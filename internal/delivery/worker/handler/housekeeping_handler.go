package handler

import (
	"log/slog"
	"net/http"
	"time"

	"guessr/config"
	"guessr/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// HousekeepingHandler closes sessions that players walked away from.
// It is meant to be triggered by a scheduler such as Cloud Scheduler.
type HousekeepingHandler struct {
	gameUC       usecase.GameUsecase
	abandonAfter time.Duration
	logger       *slog.Logger
}

// HousekeepingHandlerParams holds dependencies for the HousekeepingHandler
type HousekeepingHandlerParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
	GameUC usecase.GameUsecase
}

// NewHousekeepingHandler creates a new HousekeepingHandler
func NewHousekeepingHandler(params HousekeepingHandlerParams) *HousekeepingHandler {
	var abandonAfter time.Duration
	if params.Config.Worker != nil {
		abandonAfter = params.Config.Worker.AbandonAfter
	}

	return &HousekeepingHandler{
		gameUC:       params.GameUC,
		abandonAfter: abandonAfter,
		logger:       params.Logger,
	}
}

// AbandonStale handles POST /housekeeping/abandon.
func (h *HousekeepingHandler) AbandonStale(c echo.Context) error {
	abandoned, err := h.gameUC.AbandonStale(c.Request().Context(), h.abandonAfter)
	if err != nil {
		h.logger.Error("[Worker] Failed to abandon stale sessions", slog.Any("error", err))

		return c.NoContent(http.StatusServiceUnavailable)
	}

	return c.JSON(http.StatusOK, map[string]int64{"abandoned": abandoned})
}
