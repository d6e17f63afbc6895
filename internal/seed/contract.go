//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=seed_test
package seed

import (
	"context"

	"deliverytracker/internal/entities"
	"deliverytracker/pkg/logger"
)

type Repository interface {
	Count(ctx context.Context) (int64, error)
	CreateBatch(ctx context.Context, deliveries []entities.DeliveryModify) error
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}
