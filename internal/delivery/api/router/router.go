// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"guessr/internal/delivery/api/middleware"
	"guessr/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	GameHandler    *handler.GameHandler
	RankingHandler *handler.RankingHandler
	PlayerHandler  *handler.PlayerHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	gameHandler    *handler.GameHandler
	rankingHandler *handler.RankingHandler
	playerHandler  *handler.PlayerHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		gameHandler:    params.GameHandler,
		rankingHandler: params.RankingHandler,
		playerHandler:  params.PlayerHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	apiV1 := e.Group("/api/v1")

	// Game sessions; anonymous play is allowed
	sessionsGroup := apiV1.Group("/sessions")
	{
		sessionsGroup.POST("", r.gameHandler.StartSession, r.authMiddleware.OptionalAuthenticate)
		sessionsGroup.GET("/:id", r.gameHandler.GetSession)
		sessionsGroup.POST("/:id/guesses", r.gameHandler.SubmitGuess)
		sessionsGroup.POST("/:id/time-expired", r.gameHandler.TimeExpired)
		sessionsGroup.GET("/:id/results", r.gameHandler.GetResults)
		sessionsGroup.GET("/:id/results/qr", r.gameHandler.ResultQRCode)
	}

	rankingsGroup := apiV1.Group("/rankings")
	{
		rankingsGroup.GET("/daily", r.rankingHandler.DailyRankings)
		rankingsGroup.GET("/weekly", r.rankingHandler.WeeklyRankings)
		rankingsGroup.GET("/all-time", r.rankingHandler.AllTimeRankings)
		rankingsGroup.GET("/today", r.rankingHandler.TodayStats)
	}

	apiV1.GET("/stats/global", r.rankingHandler.GlobalStats)

	playersGroup := apiV1.Group("/players")
	{
		playersGroup.POST("", r.playerHandler.CreatePlayer)
		playersGroup.GET("/:id", r.playerHandler.GetPlayer)
		playersGroup.PATCH("/:id", r.playerHandler.UpdatePlayer, r.authMiddleware.Authenticate)
		playersGroup.GET("/:id/stats", r.playerHandler.GetPlayerStats)
	}
}
