//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=delivery_confirmed_test
package delivery_confirmed

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
	ConfirmDelivery(ctx context.Context, confirmation entities.DeliveryConfirmation) (*entities.Delivery, error)
}
