package main

import (
	"context"
	"log/slog"
	"os"

	"catalogsync/config"
	"catalogsync/internal/delivery"
	"catalogsync/internal/delivery/worker"
	"catalogsync/internal/delivery/worker/handler"
	logs "catalogsync/internal/infra/log"
	"catalogsync/internal/infra/mapper"
	"catalogsync/internal/infra/persistence"
	"catalogsync/internal/infra/pubsub"
	"catalogsync/internal/infra/remote"
	"catalogsync/internal/usecase"
	"catalogsync/internal/usecase/impl"

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
		),
		persistence.Module,
		remote.Module,
		mapper.Module,
		pubsub.Module,
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewCatalogSyncService,
		),
		fx.Invoke(func(lc fx.Lifecycle, uc usecase.CatalogSyncUsecase) {
			lc.Append(fx.StopHook(uc.Shutdown))
		}),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewPushHandler,
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
