package seed

import (
	"deliverytracker/internal/entities"
	"github.com/AlekSi/pointer"
)

func Deliveries() []entities.DeliveryModify {
	return []entities.DeliveryModify{
		row("ORD-001", "Downtown Mall", "John Smith", "2025-01-15", "2025-01-15", entities.DeliveryDelivered, "Customer A"),
		row("ORD-002", "Business District", "Jane Doe", "2025-01-16", "2025-01-16", entities.DeliveryDelivered, "Customer B"),
		row("ORD-003", "Residential Area", "Mike Johnson", "2025-01-16", "2025-01-17", entities.DeliveryPending, ""),
		row("ORD-004", "Shopping Center", "John Smith", "2025-01-17", "2025-01-17", entities.DeliveryPickedUp, ""),
		row("ORD-005", "Office Complex", "Jane Doe", "2025-01-17", "2025-01-18", entities.DeliveryMissing, ""),
		row("ORD-006", "Downtown Mall", "Mike Johnson", "2025-01-17", "2025-01-17", entities.DeliveryDelivered, "Customer C"),
	}
}

func row(
	orderNumber, location, rider, pickup, delivery string,
	status entities.DeliveryStatusType,
	signature string,
) entities.DeliveryModify {
	m := entities.DeliveryModify{
		OrderNumber:  pointer.To(orderNumber),
		Location:     pointer.To(location),
		RiderName:    pointer.To(rider),
		StaffName:    pointer.To("Admin User"),
		PickupDate:   pointer.To(pickup),
		DeliveryDate: pointer.To(delivery),
		Status:       pointer.To(status),
	}
	if signature != "" {
		m.CustomerSignature = pointer.To(signature)
	}
	return m
}
