//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=delivery_patch_test
package delivery_patch

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
	GetDelivery(ctx context.Context, id int64) (*entities.Delivery, error)
	UpdateDelivery(ctx context.Context, id int64, deliveryModify entities.DeliveryModify) (*entities.Delivery, error)
}
