package delivery_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"deliverytracker/internal/generated/dto"
	"deliverytracker/internal/handlers/rest/convert"
	"deliverytracker/internal/handlers/rest/response"
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
	var body dto.DeliveryModify
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		response.InvalidBody(w, h.log, err)
		return
	}

	created, err := h.service.CreateDelivery(r.Context(), convert.ToDeliveryModify(body))
	if err != nil {
		switch {
		case response.Validation(w, h.log, err):
		case errors.Is(err, delivery.ErrOrderNumberExists):
			response.Message(w, h.log, http.StatusBadRequest, "Order number already exists")
		default:
			response.Internal(w, h.log, "Failed to create delivery", err)
		}
		return
	}

	response.JSON(w, h.log, http.StatusCreated, convert.FromDelivery(created))
}
