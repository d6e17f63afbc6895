package delivery

import (
	"context"
	"errors"
	"fmt"

	"deliverytracker/internal/entities"
)

type Delivery struct {
	repository Repository
}

func New(repository Repository) *Delivery {
	return &Delivery{
		repository: repository,
	}
}

func (d *Delivery) GetDeliveries(ctx context.Context) ([]entities.Delivery, error) {
	deliveries, err := d.repository.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("get deliveries: %w", err)
	}
	return deliveries, nil
}

func (d *Delivery) GetDelivery(ctx context.Context, id int64) (*entities.Delivery, error) {
	delivery, err := d.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get delivery: %w", err)
	}
	return delivery, nil
}

// CreateDelivery проверка номера заказа до вставки только экономит запрос,
// гонку двух одинаковых create закрывает UNIQUE(order_number) в репозитории.
func (d *Delivery) CreateDelivery(ctx context.Context, deliveryModify entities.DeliveryModify) (*entities.Delivery, error) {
	if err := ValidateInsert(deliveryModify); err != nil {
		return nil, err
	}

	_, err := d.repository.GetByOrderNumber(ctx, *deliveryModify.OrderNumber)
	switch {
	case err == nil:
		return nil, ErrOrderNumberExists
	case !errors.Is(err, ErrOrderNotFound):
		return nil, fmt.Errorf("check order number: %w", err)
	}

	delivery, err := d.repository.Create(ctx, deliveryModify)
	if err != nil {
		return nil, fmt.Errorf("create delivery: %w", err)
	}
	return delivery, nil
}

// UpdateDelivery сначала проверяет существование записи: неизвестный id дает
// ErrDeliveryNotFound даже для невалидного патча.
func (d *Delivery) UpdateDelivery(ctx context.Context, id int64, deliveryModify entities.DeliveryModify) (*entities.Delivery, error) {
	current, err := d.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get delivery for update: %w", err)
	}

	if err := ValidateUpdate(deliveryModify); err != nil {
		return nil, err
	}

	if deliveryModify.IsEmpty() {
		return current, nil
	}

	updated, err := d.repository.Update(ctx, id, deliveryModify)
	if err != nil {
		return nil, fmt.Errorf("update delivery: %w", err)
	}
	return updated, nil
}

func (d *Delivery) DeleteDelivery(ctx context.Context, id int64) error {
	if err := d.repository.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete delivery: %w", err)
	}
	return nil
}

func (d *Delivery) SearchDeliveries(ctx context.Context, query string) ([]entities.Delivery, error) {
	deliveries, err := d.repository.Search(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("search deliveries: %w", err)
	}
	return deliveries, nil
}

// GetDeliveriesByStatus точное сравнение, неизвестный статус просто дает пустой список.
func (d *Delivery) GetDeliveriesByStatus(ctx context.Context, status string) ([]entities.Delivery, error) {
	deliveries, err := d.repository.GetByStatus(ctx, entities.DeliveryStatusType(status))
	if err != nil {
		return nil, fmt.Errorf("get deliveries by status: %w", err)
	}
	return deliveries, nil
}

func (d *Delivery) GetDeliveryStats(ctx context.Context) (*entities.DeliveryStats, error) {
	deliveries, err := d.repository.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("get delivery stats: %w", err)
	}

	stats := CountByStatus(deliveries)
	return &stats, nil
}

// ConfirmDelivery единственный охраняемый переход статуса: Delivered подтвердить повторно нельзя.
func (d *Delivery) ConfirmDelivery(ctx context.Context, confirmation entities.DeliveryConfirmation) (*entities.Delivery, error) {
	if err := ValidateConfirmation(confirmation); err != nil {
		return nil, err
	}

	delivery, err := d.repository.GetByOrderNumber(ctx, confirmation.OrderNumber)
	if err != nil {
		return nil, fmt.Errorf("get delivery for confirmation: %w", err)
	}

	if delivery.Status == entities.DeliveryDelivered {
		return nil, ErrAlreadyDelivered
	}

	confirmed, err := d.repository.Confirm(ctx, delivery.ID, confirmation.Signature)
	if err != nil {
		// UPDATE ... WHERE status <> 'Delivered' не нашел строку: параллельное подтверждение успело раньше
		if errors.Is(err, ErrDeliveryNotFound) {
			return nil, ErrAlreadyDelivered
		}
		return nil, fmt.Errorf("confirm delivery: %w", err)
	}
	return confirmed, nil
}
