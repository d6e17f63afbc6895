package delivery_get

import (
	"errors"
	"net/http"
	"strconv"

	"deliverytracker/internal/handlers/rest/convert"
	"deliverytracker/internal/handlers/rest/response"
	"deliverytracker/internal/service/delivery"
	"github.com/gorilla/mux"
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
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		response.Message(w, h.log, http.StatusBadRequest, "Invalid delivery id")
		return
	}

	deliveryEntity, err := h.service.GetDelivery(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, delivery.ErrDeliveryNotFound):
			response.Message(w, h.log, http.StatusNotFound, "Delivery not found")
		default:
			response.Internal(w, h.log, "Failed to fetch delivery", err)
		}
		return
	}

	response.JSON(w, h.log, http.StatusOK, convert.FromDelivery(deliveryEntity))
}
