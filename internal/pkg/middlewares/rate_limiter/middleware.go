package rate_limiter

import (
	"net/http"
	"strconv"

	"deliverytracker/internal/pkg/middlewares/metrics"
	"deliverytracker/internal/pkg/middlewares/request_id"
	"deliverytracker/pkg/logger"
)

const tooManyRequestsBody = `{"message":"Rate limit exceeded. Try again later."}`

// limit попадает только в заголовок X-RateLimit-Limit, решение принимает budget.
func Middleware(log middlewareLogger, limit int, budget RequestBudget) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if budget.Allow() {
				next.ServeHTTP(w, r)
				return
			}

			route := metrics.RouteTemplate(r)
			ThrottledRequests.WithLabelValues(r.Method, route).Inc()

			log.With(
				logger.NewField("request_id", request_id.FromContext(r.Context())),
				logger.NewField("method", r.Method),
				logger.NewField("route", route),
				logger.NewField("remote_addr", r.RemoteAddr),
			).Warn("rate limit exceeded")

			w.Header().Set("Content-Type", "application/json")
			w.Header().Set("X-RateLimit-Limit", strconv.Itoa(limit))
			w.Header().Set("Retry-After", "1")
			w.WriteHeader(http.StatusTooManyRequests)

			if _, err := w.Write([]byte(tooManyRequestsBody)); err != nil {
				log.Error("failed to write rate limit response", logger.NewField("error", err))
			}
		})
	}
}
