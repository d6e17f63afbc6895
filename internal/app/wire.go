//go:build wireinject
// +build wireinject

package app

import (
	"context"
	"time"

	deliveries_get "deliverytracker/internal/handlers/rest/deliveries_get"
	deliveries_search_get "deliverytracker/internal/handlers/rest/deliveries_search_get"
	deliveries_stats_get "deliverytracker/internal/handlers/rest/deliveries_stats_get"
	deliveries_status_get "deliverytracker/internal/handlers/rest/deliveries_status_get"
	delivery_confirm_post "deliverytracker/internal/handlers/rest/delivery_confirm_post"
	delivery_delete "deliverytracker/internal/handlers/rest/delivery_delete"
	delivery_get "deliverytracker/internal/handlers/rest/delivery_get"
	delivery_patch "deliverytracker/internal/handlers/rest/delivery_patch"
	delivery_post "deliverytracker/internal/handlers/rest/delivery_post"
	"deliverytracker/internal/handlers/tasks/delivery_stats"
	"deliverytracker/internal/pkg/config"
	"deliverytracker/internal/pkg/metrics"
	deliveryRepo "deliverytracker/internal/repository/delivery"
	"deliverytracker/internal/seed"
	deliveryService "deliverytracker/internal/service/delivery"

	"deliverytracker/pkg/background"
	"deliverytracker/pkg/logger"
	"deliverytracker/pkg/querier"
	"deliverytracker/pkg/tx"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/google/wire"
	"github.com/jackc/pgx/v5/pgxpool"
)

const systemMetricsInterval = 5 * time.Second

type (
	StatsRefreshInterval time.Duration
)

type Application struct {
	ServiceDelivery   ServiceDelivery
	Pinger            *querier.Querier
	BackgroundWorkers *background.Worker
}

type ServiceDelivery interface {
	deliveries_get.Service
	deliveries_search_get.Service
	deliveries_stats_get.Service
	deliveries_status_get.Service
	delivery_confirm_post.Service
	delivery_delete.Service
	delivery_get.Service
	delivery_patch.Service
	delivery_post.Service
}

var repositorySet = wire.NewSet(
	provideTxManager,
	provideQuerier,
	provideDeliveryRepository,
)

// InitializeSeeder вызывается до InitializeApplication, чтобы прогрев
// фоновых задач видел уже заполненную таблицу.
func InitializeSeeder(
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
) *seed.Seeder {
	wire.Build(
		repositorySet,
		provideSeeder,

		wire.Bind(new(seed.Repository), new(*deliveryRepo.Repository)),
		wire.Bind(new(seed.TxManager), new(*tx.Manager)),
	)
	return nil
}

// InitializeApplication для HTTP сервиса (cmd/service)
func InitializeApplication(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	cfg *config.Config,
) (*Application, error) {
	wire.Build(
		repositorySet,
		provideStatsRefreshInterval,
		provideServiceDelivery,

		provideDeliveryStatsTask,
		provideSystemCollector,
		provideTaskList,
		provideBackgroundWorkers,

		wire.Struct(new(Application), "*"),

		wire.Bind(new(ServiceDelivery), new(*deliveryService.Delivery)),
		wire.Bind(new(deliveryService.Repository), new(*deliveryRepo.Repository)),
		wire.Bind(new(delivery_stats.Service), new(*deliveryService.Delivery)),
	)
	return &Application{}, nil
}

type KafkaWorkerApp struct {
	ServiceDelivery *deliveryService.Delivery
	Pinger          *querier.Querier
}

// InitializeKafkaWorkerApp для Kafka воркера (cmd/worker-delivery-confirmed)
func InitializeKafkaWorkerApp(
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
) *KafkaWorkerApp {
	wire.Build(
		provideQuerier,
		provideDeliveryRepository,
		provideServiceDelivery,

		wire.Bind(new(deliveryService.Repository), new(*deliveryRepo.Repository)),

		wire.Struct(new(KafkaWorkerApp), "*"),
	)
	return nil
}

func provideTxManager(pool *pgxpool.Pool) *tx.Manager {
	return tx.New(pool)
}

func provideQuerier(pool *pgxpool.Pool, getter *pgxv5.CtxGetter) *querier.Querier {
	return querier.New(pool, getter)
}

func provideDeliveryRepository(querier *querier.Querier) *deliveryRepo.Repository {
	return deliveryRepo.New(querier)
}

func provideServiceDelivery(repository deliveryService.Repository) *deliveryService.Delivery {
	return deliveryService.New(repository)
}

func provideSeeder(
	log logger.Logger,
	repository seed.Repository,
	txManager seed.TxManager,
) *seed.Seeder {
	return seed.New(log, repository, txManager)
}

func provideStatsRefreshInterval(cfg *config.Config) StatsRefreshInterval {
	return StatsRefreshInterval(cfg.Tasks.StatsRefreshInterval)
}

func provideDeliveryStatsTask(
	deliveryService delivery_stats.Service,
	interval StatsRefreshInterval,
) *delivery_stats.DeliveryStats {
	return delivery_stats.NewDeliveryStats(deliveryService, time.Duration(interval))
}

func provideSystemCollector() *metrics.SystemCollector {
	return metrics.NewSystemCollector(systemMetricsInterval)
}

func provideTaskList(
	deliveryStatsTask *delivery_stats.DeliveryStats,
	systemCollector *metrics.SystemCollector,
) []background.Task {
	return []background.Task{
		deliveryStatsTask,
		systemCollector,
	}
}

func provideBackgroundWorkers(ctx context.Context, log logger.Logger, tasks []background.Task) (*background.Worker, error) {
	return background.New(ctx, log, tasks)
}
