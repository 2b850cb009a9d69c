package handler

import (
	"log/slog"
	"net/http"

	"guessr/internal/delivery/api/response"
	domainerrors "guessr/internal/domain/errors"
	"guessr/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// RankingHandlerParams holds dependencies for RankingHandler, injected by Fx.
type RankingHandlerParams struct {
	fx.In

	RankingUC usecase.RankingUsecase
	Logger    *slog.Logger
}

// RankingHandler serves leaderboards and statistics.
type RankingHandler struct {
	rankingUC usecase.RankingUsecase
	logger    *slog.Logger
}

// NewRankingHandler is the constructor for RankingHandler
func NewRankingHandler(params RankingHandlerParams) *RankingHandler {
	return &RankingHandler{
		rankingUC: params.RankingUC,
		logger:    params.Logger,
	}
}

// DailyRankings handles GET /api/v1/rankings/daily?date=&limit=.
func (h *RankingHandler) DailyRankings(c echo.Context) error {
	var (
		date  string
		limit int
	)
	if err := echo.QueryParamsBinder(c).
		String("date", &date).
		Int("limit", &limit).
		BindError(); err != nil {
		return invalidQuery(err)
	}

	ranking, err := h.rankingUC.DailyRankings(c.Request().Context(), date, limit)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, ranking)
}

// WeeklyRankings handles GET /api/v1/rankings/weekly?limit=.
func (h *RankingHandler) WeeklyRankings(c echo.Context) error {
	limit, err := limitQuery(c)
	if err != nil {
		return err
	}

	ranking, err := h.rankingUC.WeeklyRankings(c.Request().Context(), limit)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, ranking)
}

// AllTimeRankings handles GET /api/v1/rankings/all-time?limit=.
func (h *RankingHandler) AllTimeRankings(c echo.Context) error {
	limit, err := limitQuery(c)
	if err != nil {
		return err
	}

	entries, err := h.rankingUC.AllTimeRankings(c.Request().Context(), limit)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, entries)
}

// TodayStats handles GET /api/v1/rankings/today.
func (h *RankingHandler) TodayStats(c echo.Context) error {
	stats, err := h.rankingUC.TodayStats(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, stats)
}

// GlobalStats handles GET /api/v1/stats/global.
func (h *RankingHandler) GlobalStats(c echo.Context) error {
	stats, err := h.rankingUC.GlobalStats(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, stats)
}

// limitQuery reads ?limit=; zero lets the service apply its default.
func limitQuery(c echo.Context) (int, error) {
	var limit int
	if err := echo.QueryParamsBinder(c).Int("limit", &limit).BindError(); err != nil {
		return 0, invalidQuery(err)
	}

	return limit, nil
}

func invalidQuery(err error) error {
	return errors.Wrap(domainerrors.ErrValidationFailed.WithDetails("limit must be an integer"), err.Error())
}
