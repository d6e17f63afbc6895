//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=delivery_test
package delivery

import (
	"context"

	"deliverytracker/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, deliveryModify entities.DeliveryModify) (*entities.Delivery, error)
	GetByID(ctx context.Context, id int64) (*entities.Delivery, error)
	GetByOrderNumber(ctx context.Context, orderNumber string) (*entities.Delivery, error)
	GetAll(ctx context.Context) ([]entities.Delivery, error)
	GetByStatus(ctx context.Context, status entities.DeliveryStatusType) ([]entities.Delivery, error)
	Search(ctx context.Context, query string) ([]entities.Delivery, error)
	Update(ctx context.Context, id int64, deliveryModify entities.DeliveryModify) (*entities.Delivery, error)
	Delete(ctx context.Context, id int64) error
	Confirm(ctx context.Context, id int64, signature string) (*entities.Delivery, error)
}
