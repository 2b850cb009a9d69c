package main

import (
	"context"
	"log/slog"
	"os"

	"guessr/config"
	"guessr/internal/delivery"
	"guessr/internal/delivery/worker"
	"guessr/internal/delivery/worker/handler"
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
		injectUsecase(),
		injectHandler(),
		injectDelivery(),
		fx.Invoke(
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
			qrcode.NewQRCodeServiceFromConfig,
		),
		persistence.Module,
		pubsub.Module,
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewGameService,
			impl.NewRankingService,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewPushHandler,
			handler.NewHousekeepingHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				worker.NewServer,
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
