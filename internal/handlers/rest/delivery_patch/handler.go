package delivery_patch

import (
	"errors"
	"io"
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

	raw, err := io.ReadAll(r.Body)
	if err != nil {
		response.InvalidBody(w, h.log, err)
		return
	}

	modify, patchErr := convert.DeliveryPatch(raw)
	if patchErr != nil {
		// неизвестный id важнее битого тела
		if _, err := h.service.GetDelivery(r.Context(), id); err != nil {
			h.writeError(w, err)
			return
		}
		if !response.Validation(w, h.log, patchErr) {
			response.InvalidBody(w, h.log, patchErr)
		}
		return
	}

	updated, err := h.service.UpdateDelivery(r.Context(), id, modify)
	if err != nil {
		h.writeError(w, err)
		return
	}

	response.JSON(w, h.log, http.StatusOK, convert.FromDelivery(updated))
}

func (h *Handler) writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, delivery.ErrDeliveryNotFound):
		response.Message(w, h.log, http.StatusNotFound, "Delivery not found")
	case response.Validation(w, h.log, err):
	case errors.Is(err, delivery.ErrOrderNumberExists):
		response.Message(w, h.log, http.StatusBadRequest, "Order number already exists")
	default:
		response.Internal(w, h.log, "Failed to update delivery", err)
	}
}
