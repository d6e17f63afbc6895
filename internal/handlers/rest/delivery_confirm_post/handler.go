package delivery_confirm_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"deliverytracker/internal/generated/dto"
	"deliverytracker/internal/handlers/rest/convert"
	"deliverytracker/internal/handlers/rest/response"
	"deliverytracker/internal/pkg/metrics"
	"deliverytracker/internal/service/delivery"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	return &Handler{
		log:     log.With(),
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var body dto.DeliveryConfirm
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		response.InvalidBody(w, h.log, err)
		return
	}

	confirmed, err := h.service.ConfirmDelivery(r.Context(), convert.ToDeliveryConfirmation(body))
	if err != nil {
		switch {
		case response.Validation(w, h.log, err):
		case errors.Is(err, delivery.ErrOrderNotFound):
			response.Message(w, h.log, http.StatusNotFound, "Order not found")
		case errors.Is(err, delivery.ErrAlreadyDelivered):
			response.Message(w, h.log, http.StatusBadRequest, "Order already delivered")
		default:
			response.Internal(w, h.log, "Failed to confirm delivery", err)
		}
		return
	}

	metrics.DeliveryConfirmations.WithLabelValues(metrics.ConfirmationSourceHTTP).Inc()
	response.JSON(w, h.log, http.StatusOK, convert.FromDelivery(confirmed))
}
