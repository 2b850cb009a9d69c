// Package worker serves the stats worker: Pub/Sub push delivery of completed
// sessions and scheduled housekeeping.
package worker

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"guessr/config"
	"guessr/internal/delivery"
	"guessr/internal/delivery/middleware"
	"guessr/internal/delivery/worker/handler"
	"guessr/internal/domain/lifecycle"
	"guessr/internal/errors"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/fx"
)

const defaultWorkerPort = 8081

type workerServer struct {
	port   int
	logger *slog.Logger
	server *echo.Echo
}

// ServerParams holds dependencies for the worker server
type ServerParams struct {
	fx.In

	Lc                  fx.Lifecycle
	Cfg                 *config.Config
	Logger              *slog.Logger
	PushHandler         *handler.PushHandler
	HousekeepingHandler *handler.HousekeepingHandler
}

// NewServer creates a new worker HTTP server
func NewServer(params ServerParams) (delivery.Delivery, error) {
	e := NewEcho(params)

	port := defaultWorkerPort
	if params.Cfg.Worker != nil && params.Cfg.Worker.Port > 0 {
		port = params.Cfg.Worker.Port
	}

	srv := &workerServer{
		port:   port,
		logger: params.Logger,
		server: e,
	}

	params.Lc.Append(fx.Hook{
		OnStop: srv.stop,
	})

	return srv, nil
}

// NewEcho builds the worker routes.
func NewEcho(params ServerParams) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	// 1. Recover middleware first (to catch panics early)
	e.Use(echomiddleware.Recover())

	// 2. Request ID middleware (must be before logger to include in logs)
	requestIDMiddleware := middleware.NewRequestIDMiddleware(params.Logger)
	e.Use(requestIDMiddleware.Process)

	// 3. Logger middleware
	loggerMiddleware := middleware.NewLoggerMiddleware(params.Logger, params.Cfg)
	e.Use(loggerMiddleware.Handle)

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	// Pub/Sub push endpoint
	e.POST("/push", params.PushHandler.HandlePush)

	// Scheduler endpoint
	e.POST("/housekeeping/abandon", params.HousekeepingHandler.AbandonStale)

	return e
}

// Serve starts the worker HTTP server
func (s *workerServer) Serve(ctx context.Context) error {
	hostPort := net.JoinHostPort("0.0.0.0", strconv.Itoa(s.port))
	s.logger.Info("Starting Worker HTTP server", slog.String("hostPort", hostPort))
	if err := s.server.Start(hostPort); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.WithStack(err)
	}

	return nil
}

// stop gracefully shuts down the worker server
func (s *workerServer) stop(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	s.logger.Info("Shutting down Worker HTTP server")

	return errors.WithStack(s.server.Shutdown(shutdownCtx))
}
