package rate_limiter

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// ThrottledRequests запросы к /api, получившие 429, по шаблону маршрута.
var ThrottledRequests = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "api_throttled_requests_total",
		Help: "API requests answered with 429 because the request budget was exhausted",
	},
	[]string{"method", "route"},
)
