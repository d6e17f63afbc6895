package delivery

import "deliverytracker/internal/entities"

func ToDomain(d *DeliveryDB) *entities.Delivery {
	if d == nil {
		return nil
	}
	return &entities.Delivery{
		ID:                d.ID,
		OrderNumber:       d.OrderNumber,
		Location:          d.Location,
		RiderName:         d.RiderName,
		StaffName:         d.StaffName,
		PickupDate:        d.PickupDate,
		DeliveryDate:      d.DeliveryDate,
		Status:            entities.DeliveryStatusType(d.Status),
		CustomerSignature: d.CustomerSignature,
	}
}

func FromDomainModify(d *entities.DeliveryModify) *DeliveryModifyDB {
	if d == nil {
		return nil
	}

	modifyDB := &DeliveryModifyDB{
		OrderNumber:       d.OrderNumber,
		Location:          d.Location,
		RiderName:         d.RiderName,
		StaffName:         d.StaffName,
		PickupDate:        d.PickupDate,
		DeliveryDate:      d.DeliveryDate,
		CustomerSignature: d.CustomerSignature,
	}
	// переданная подпись важнее явного null
	modifyDB.ClearCustomerSignature = d.ClearCustomerSignature && d.CustomerSignature == nil
	if d.Status != nil {
		status := d.Status.String()
		modifyDB.Status = &status
	}

	return modifyDB
}

func ToDomainList(deliveriesDB []DeliveryDB) []entities.Delivery {
	result := make([]entities.Delivery, len(deliveriesDB))
	for i := range deliveriesDB {
		result[i] = *ToDomain(&deliveriesDB[i])
	}
	return result
}
