package response

import (
	"encoding/json"
	"errors"
	"net/http"

	"deliverytracker/internal/generated/dto"
	"deliverytracker/internal/handlers/rest/convert"
	"deliverytracker/internal/service/delivery"
	"deliverytracker/pkg/logger"
	"github.com/AlekSi/pointer"
)

const MessageInvalidData = "Invalid data"

type errorLogger interface {
	Error(msg string, fields ...logger.Field)
}

func JSON(w http.ResponseWriter, log errorLogger, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Error("encode JSON response", logger.NewField("error", err))
	}
}

func Message(w http.ResponseWriter, log errorLogger, status int, message string) {
	JSON(w, log, status, dto.ErrorResponse{Message: message})
}

// Validation пишет 400 со списком полей, если err это *delivery.ValidationError.
func Validation(w http.ResponseWriter, log errorLogger, err error) bool {
	var validationErr *delivery.ValidationError
	if !errors.As(err, &validationErr) {
		return false
	}

	JSON(w, log, http.StatusBadRequest, dto.ErrorResponse{
		Message: MessageInvalidData,
		Errors:  pointer.To(convert.FromValidationError(validationErr)),
	})
	return true
}

// InvalidBody ответ на тело, которое не удалось разобрать как JSON.
func InvalidBody(w http.ResponseWriter, log errorLogger, err error) {
	JSON(w, log, http.StatusBadRequest, dto.ErrorResponse{
		Message: MessageInvalidData,
		Errors:  &[]dto.FieldError{{Field: "body", Message: err.Error()}},
	})
}

// Internal логирует причину, клиенту уходит только общее сообщение.
func Internal(w http.ResponseWriter, log errorLogger, message string, err error) {
	log.Error(message, logger.NewField("error", err))
	Message(w, log, http.StatusInternalServerError, message)
}
