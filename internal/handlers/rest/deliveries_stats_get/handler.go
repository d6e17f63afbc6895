package deliveries_stats_get

import (
	"net/http"

	"deliverytracker/internal/handlers/rest/convert"
	"deliverytracker/internal/handlers/rest/response"
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
	stats, err := h.service.GetDeliveryStats(r.Context())
	if err != nil {
		response.Internal(w, h.log, "Failed to fetch stats", err)
		return
	}

	response.JSON(w, h.log, http.StatusOK, convert.FromStats(stats))
}
