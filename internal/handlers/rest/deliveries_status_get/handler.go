package deliveries_status_get

import (
	"net/http"

	"deliverytracker/internal/handlers/rest/convert"
	"deliverytracker/internal/handlers/rest/response"
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
	deliveries, err := h.service.GetDeliveriesByStatus(r.Context(), mux.Vars(r)["status"])
	if err != nil {
		response.Internal(w, h.log, "Failed to fetch deliveries by status", err)
		return
	}

	response.JSON(w, h.log, http.StatusOK, convert.FromDeliveries(deliveries))
}
