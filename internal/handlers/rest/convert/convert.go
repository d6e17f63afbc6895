package convert

import (
	"bytes"
	"encoding/json"
	"fmt"

	"deliverytracker/internal/entities"
	"deliverytracker/internal/generated/dto"
	"deliverytracker/internal/service/delivery"
)

const messageNotNull = "must not be null"

// patchFields порядок полей PATCH, в котором о null сообщается клиенту.
var patchFields = []string{
	"orderNumber",
	"location",
	"riderName",
	"staffName",
	"pickupDate",
	"deliveryDate",
	"status",
}

var jsonNull = []byte("null")

func FromDelivery(d *entities.Delivery) dto.Delivery {
	return dto.Delivery{
		Id:                d.ID,
		OrderNumber:       d.OrderNumber,
		Location:          d.Location,
		RiderName:         d.RiderName,
		StaffName:         d.StaffName,
		PickupDate:        d.PickupDate,
		DeliveryDate:      d.DeliveryDate,
		Status:            d.Status.String(),
		CustomerSignature: d.CustomerSignature,
	}
}

// FromDeliveries пустой список сериализуется как [], а не null.
func FromDeliveries(list []entities.Delivery) []dto.Delivery {
	result := make([]dto.Delivery, len(list))
	for i := range list {
		result[i] = FromDelivery(&list[i])
	}
	return result
}

func FromStats(s *entities.DeliveryStats) dto.DeliveryStats {
	return dto.DeliveryStats{
		Total:     s.Total,
		Delivered: s.Delivered,
		Pending:   s.Pending,
		PickedUp:  s.PickedUp,
		Missing:   s.Missing,
	}
}

func ToDeliveryModify(m dto.DeliveryModify) entities.DeliveryModify {
	modify := entities.DeliveryModify{
		OrderNumber:       m.OrderNumber,
		Location:          m.Location,
		RiderName:         m.RiderName,
		StaffName:         m.StaffName,
		PickupDate:        m.PickupDate,
		DeliveryDate:      m.DeliveryDate,
		CustomerSignature: m.CustomerSignature,
	}
	if m.Status != nil {
		status := entities.DeliveryStatusType(*m.Status)
		modify.Status = &status
	}
	return modify
}

// DeliveryPatch разбирает тело PATCH с тремя состояниями поля:
// отсутствует (не меняется), null, значение.
// null для customerSignature стирает подпись, для остальных полей это ошибка валидации.
// Ошибка разбора JSON возвращается как есть.
func DeliveryPatch(raw []byte) (entities.DeliveryModify, error) {
	var body dto.DeliveryModify
	if err := json.NewDecoder(bytes.NewReader(raw)).Decode(&body); err != nil {
		return entities.DeliveryModify{}, err
	}

	var present map[string]json.RawMessage
	if err := json.Unmarshal(raw, &present); err != nil {
		return entities.DeliveryModify{}, fmt.Errorf("decode patch fields: %w", err)
	}

	var fields []delivery.FieldError
	for _, name := range patchFields {
		if isNull(present, name) {
			fields = append(fields, delivery.FieldError{Field: name, Message: messageNotNull})
		}
	}
	if len(fields) > 0 {
		return entities.DeliveryModify{}, &delivery.ValidationError{Fields: fields}
	}

	modify := ToDeliveryModify(body)
	modify.ClearCustomerSignature = isNull(present, "customerSignature")
	return modify, nil
}

func isNull(present map[string]json.RawMessage, name string) bool {
	value, ok := present[name]
	return ok && bytes.Equal(bytes.TrimSpace(value), jsonNull)
}

func ToDeliveryConfirmation(c dto.DeliveryConfirm) entities.DeliveryConfirmation {
	return entities.DeliveryConfirmation{
		OrderNumber: c.OrderNumber,
		Signature:   c.Signature,
	}
}

func FromValidationError(err *delivery.ValidationError) []dto.FieldError {
	result := make([]dto.FieldError, len(err.Fields))
	for i, f := range err.Fields {
		result[i] = dto.FieldError{Field: f.Field, Message: f.Message}
	}
	return result
}
