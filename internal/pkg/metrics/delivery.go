package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	ConfirmationSourceHTTP  = "http"
	ConfirmationSourceKafka = "kafka"
)

var (
	DeliveriesTotal = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "deliveries_total",
			Help: "Number of deliveries by status, refreshed by the background stats task",
		},
		[]string{"status"},
	)

	DeliveryConfirmations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "delivery_confirmations_total",
			Help: "Successful customer confirmations by source",
		},
		[]string{"source"},
	)
)
