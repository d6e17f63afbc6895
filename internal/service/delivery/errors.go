package delivery

import (
	"errors"
	"strings"
)

var (
	ErrValidation = errors.New("validation failed")

	ErrDeliveryNotFound  = errors.New("delivery not found")
	ErrOrderNotFound     = errors.New("order not found")
	ErrOrderNumberExists = errors.New("order number already exists")
	ErrAlreadyDelivered  = errors.New("order already delivered")
)

type FieldError struct {
	Field   string
	Message string
}

// ValidationError содержит все ошибки полей сразу, а не только первую.
// errors.Is(err, ErrValidation) == true.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Field+": "+f.Message)
	}
	return ErrValidation.Error() + ": " + strings.Join(parts, "; ")
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}
