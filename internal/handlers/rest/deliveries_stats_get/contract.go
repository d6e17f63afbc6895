//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=deliveries_stats_get_test
package deliveries_stats_get

import (
	"context"

	"deliverytracker/internal/entities"
	"deliverytracker/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	GetDeliveryStats(ctx context.Context) (*entities.DeliveryStats, error)
}
