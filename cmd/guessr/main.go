package main

import (
	"context"
	"log/slog"
	"os"

	"guessr/config"
	"guessr/internal/delivery"
	"guessr/internal/delivery/api"
	"guessr/internal/delivery/api/middleware"
	"guessr/internal/delivery/api/router/handler"
	"guessr/internal/infra/auth"
	"guessr/internal/infra/catalog"
	logs "guessr/internal/infra/log"
	"guessr/internal/infra/persistence"
	"guessr/internal/infra/pubsub"
	"guessr/internal/infra/qrcode"
	"guessr/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectService(),
		injectUsecase(),
		injectMiddleware(),
		injectHandler(),
		injectDelivery(),
		fx.Invoke(
			catalog.RegisterSeeder,
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Options(
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
			catalog.NewSeeder,
		),
		persistence.Module,
		pubsub.Module,
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewJWTService,
			qrcode.NewQRCodeServiceFromConfig,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewGameService,
			impl.NewRankingService,
			impl.NewPlayerService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewGameHandler,
			handler.NewRankingHandler,
			handler.NewPlayerHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))

				// Trigger graceful shutdown to execute all OnStop hooks
				if shutdownErr := params.Shutdown(); shutdownErr != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}
		}()
	}
}
