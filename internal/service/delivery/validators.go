package delivery

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"deliverytracker/internal/entities"
	"github.com/go-playground/validator/v10"
)

const (
	dateLayout = "2006-01-02"

	// minDateYear нулевой год разбирается time.Parse, но не принимается типом DATE в Postgres
	minDateYear = 1
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		tag := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if tag == "" {
			return f.Name
		}
		return tag
	})
	if err := v.RegisterValidation("isodate", isISODate); err != nil {
		panic(fmt.Sprintf("register isodate validator: %v", err))
	}
	return v
}

// isISODate календарная дата YYYY-MM-DD с годом не меньше minDateYear.
func isISODate(fl validator.FieldLevel) bool {
	date, err := time.Parse(dateLayout, fl.Field().String())
	if err != nil {
		return false
	}
	return date.Year() >= minDateYear
}

// insertContract все поля обязательны, кроме customerSignature.
type insertContract struct {
	OrderNumber       *string `json:"orderNumber" validate:"required,min=1"`
	Location          *string `json:"location" validate:"required,min=1"`
	RiderName         *string `json:"riderName" validate:"required,min=1"`
	StaffName         *string `json:"staffName" validate:"required,min=1"`
	PickupDate        *string `json:"pickupDate" validate:"required,isodate"`
	DeliveryDate      *string `json:"deliveryDate" validate:"required,isodate"`
	Status            *string `json:"status" validate:"required,oneof='Pending' 'Picked Up' 'Delivered' 'Missing'"`
	CustomerSignature *string `json:"customerSignature" validate:"omitempty,min=1"`
}

// updateContract тот же набор полей, все опциональны.
type updateContract struct {
	OrderNumber       *string `json:"orderNumber" validate:"omitempty,min=1"`
	Location          *string `json:"location" validate:"omitempty,min=1"`
	RiderName         *string `json:"riderName" validate:"omitempty,min=1"`
	StaffName         *string `json:"staffName" validate:"omitempty,min=1"`
	PickupDate        *string `json:"pickupDate" validate:"omitempty,isodate"`
	DeliveryDate      *string `json:"deliveryDate" validate:"omitempty,isodate"`
	Status            *string `json:"status" validate:"omitempty,oneof='Pending' 'Picked Up' 'Delivered' 'Missing'"`
	CustomerSignature *string `json:"customerSignature" validate:"omitempty,min=1"`
}

type confirmContract struct {
	OrderNumber string `json:"orderNumber" validate:"required"`
	Signature   string `json:"signature" validate:"required"`
}

var confirmMessages = map[string]string{
	"orderNumber": "Order number is required",
	"signature":   "Customer signature is required",
}

func ValidateInsert(m entities.DeliveryModify) error {
	return validateContract(insertContract{
		OrderNumber:       m.OrderNumber,
		Location:          m.Location,
		RiderName:         m.RiderName,
		StaffName:         m.StaffName,
		PickupDate:        m.PickupDate,
		DeliveryDate:      m.DeliveryDate,
		Status:            statusPtr(m.Status),
		CustomerSignature: m.CustomerSignature,
	}, nil)
}

func ValidateUpdate(m entities.DeliveryModify) error {
	return validateContract(updateContract{
		OrderNumber:       m.OrderNumber,
		Location:          m.Location,
		RiderName:         m.RiderName,
		StaffName:         m.StaffName,
		PickupDate:        m.PickupDate,
		DeliveryDate:      m.DeliveryDate,
		Status:            statusPtr(m.Status),
		CustomerSignature: m.CustomerSignature,
	}, nil)
}

func ValidateConfirmation(c entities.DeliveryConfirmation) error {
	return validateContract(confirmContract{
		OrderNumber: c.OrderNumber,
		Signature:   c.Signature,
	}, confirmMessages)
}

func validateContract(contract any, messages map[string]string) error {
	err := validate.Struct(contract)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("validate %T: %w", contract, err)
	}

	validationErr := &ValidationError{
		Fields: make([]FieldError, 0, len(fieldErrs)),
	}
	for _, fe := range fieldErrs {
		msg, ok := messages[fe.Field()]
		if !ok {
			msg = validationMessage(fe)
		}
		validationErr.Fields = append(validationErr.Fields, FieldError{
			Field:   fe.Field(),
			Message: msg,
		})
	}
	return validationErr
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "Required"
	case "min":
		return "must not be empty"
	case "isodate":
		return "must be a date in YYYY-MM-DD format"
	case "oneof":
		return "must be one of: " + strings.Join(statusNames(), ", ")
	}
	return "is invalid"
}

func statusNames() []string {
	return []string{
		entities.DeliveryPending.String(),
		entities.DeliveryPickedUp.String(),
		entities.DeliveryDelivered.String(),
		entities.DeliveryMissing.String(),
	}
}

func statusPtr(s *entities.DeliveryStatusType) *string {
	if s == nil {
		return nil
	}
	v := s.String()
	return &v
}
