//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=deliveries_status_get_test
package deliveries_status_get

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
	GetDeliveriesByStatus(ctx context.Context, status string) ([]entities.Delivery, error)
}
