package main

import (
	"context"
	"log/slog"
	"os"

	"monitoring/config"
	"monitoring/internal/codec/devicemsg"
	"monitoring/internal/delivery"
	"monitoring/internal/delivery/api"
	apimiddleware "monitoring/internal/delivery/api/middleware"
	apihandler "monitoring/internal/delivery/api/router/handler"
	"monitoring/internal/delivery/worker"
	workerhandler "monitoring/internal/delivery/worker/handler"
	"monitoring/internal/domain/constants"
	"monitoring/internal/domain/repository"
	"monitoring/internal/infra/auth"
	logs "monitoring/internal/infra/log"
	"monitoring/internal/infra/messaging"
	"monitoring/internal/infra/metrics"
	"monitoring/internal/infra/persistence/docstore"
	"monitoring/internal/infra/persistence/postgres"
	"monitoring/internal/usecase/impl"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gorm.io/gorm"
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
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectMiddleware(),
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
			metrics.New,
			postgres.New,
		),
		messaging.Module,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewDeviceRepository,
			newChatRepository,
		),
	)
}

type chatRepositoryParams struct {
	fx.In

	Config   *config.Config
	DB       *gorm.DB
	Docstore docstore.Params
}

// newChatRepository selects the chat archive backend
func newChatRepository(params chatRepositoryParams) (repository.ChatRepository, error) {
	driver := constants.ArchiveDriverPostgres
	if params.Config.Archive != nil && params.Config.Archive.Driver != "" {
		driver = params.Config.Archive.Driver
	}

	switch driver {
	case constants.ArchiveDriverPostgres:
		return postgres.NewChatRepository(params.DB), nil
	case constants.ArchiveDriverDocstore:
		return docstore.NewChatRepository(params.Docstore)
	default:
		return nil, errors.Errorf("unknown archive driver: %s", driver)
	}
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewJWTService,
			newDecoder,
		),
	)
}

// newDecoder creates the device message decoder selected in config
func newDecoder(cfg *config.Config) (devicemsg.Decoder, error) {
	mode := ""
	if cfg.Messaging != nil {
		mode = cfg.Messaging.Decoder
	}

	return devicemsg.NewDecoder(mode)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewDeviceLifecycleService,
			impl.NewChatArchiveService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			apimiddleware.NewAuthMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			apihandler.NewDeviceHandler,
			apihandler.NewChatHandler,
			workerhandler.NewLifecycleHandler,
			workerhandler.NewPushHandler,
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
