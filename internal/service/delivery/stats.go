package delivery

import "deliverytracker/internal/entities"

// CountByStatus статусы вне известных четырех учитываются только в Total.
func CountByStatus(deliveries []entities.Delivery) entities.DeliveryStats {
	stats := entities.DeliveryStats{
		Total: int64(len(deliveries)),
	}

	for i := range deliveries {
		switch deliveries[i].Status {
		case entities.DeliveryDelivered:
			stats.Delivered++
		case entities.DeliveryPending:
			stats.Pending++
		case entities.DeliveryPickedUp:
			stats.PickedUp++
		case entities.DeliveryMissing:
			stats.Missing++
		}
	}

	return stats
}
