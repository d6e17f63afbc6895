//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=deliveries_search_get_test
package deliveries_search_get

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
	SearchDeliveries(ctx context.Context, query string) ([]entities.Delivery, error)
}
