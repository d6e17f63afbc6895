package delivery_stats

import (
	"context"
	"fmt"
	"time"

	"deliverytracker/internal/entities"
	"deliverytracker/internal/pkg/metrics"
)

type Service interface {
	GetDeliveryStats(ctx context.Context) (*entities.DeliveryStats, error)
}

// DeliveryStats периодически переносит счетчики по статусам в gauge deliveries_total.
type DeliveryStats struct {
	service  Service
	interval time.Duration
}

func NewDeliveryStats(service Service, interval time.Duration) *DeliveryStats {
	return &DeliveryStats{
		service:  service,
		interval: interval,
	}
}

func (d *DeliveryStats) TTL() time.Duration {
	return d.interval
}

func (d *DeliveryStats) Do(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, d.interval)
	defer cancel()

	stats, err := d.service.GetDeliveryStats(ctx)
	if err != nil {
		return fmt.Errorf("refresh delivery stats: %w", err)
	}

	metrics.DeliveriesTotal.WithLabelValues(entities.DeliveryPending.String()).Set(float64(stats.Pending))
	metrics.DeliveriesTotal.WithLabelValues(entities.DeliveryPickedUp.String()).Set(float64(stats.PickedUp))
	metrics.DeliveriesTotal.WithLabelValues(entities.DeliveryDelivered.String()).Set(float64(stats.Delivered))
	metrics.DeliveriesTotal.WithLabelValues(entities.DeliveryMissing.String()).Set(float64(stats.Missing))
	return nil
}

func (d *DeliveryStats) Info() string {
	return "delivery stats refresh"
}
