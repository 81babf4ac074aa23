package rate_limiter

import (
	"net/http"
	"strconv"

	"orderdesk/internal/pkg/middlewares/route"
	"orderdesk/pkg/logger"
)

const rejectBody = `{"error":"too_many_requests","message":"rate limit exceeded, try again later"}`

// Middleware отклоняет запрос с 429, если limiter не выдал токен.
// limit уходит клиенту в X-RateLimit-Limit.
func Middleware(log handlerLogger, limit int, limiter Limiter) func(http.Handler) http.Handler {
	limitHeader := strconv.Itoa(limit)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if limiter.Allow() {
				next.ServeHTTP(w, r)
				return
			}

			routeTemplate := route.Template(r)
			RejectedRequests.WithLabelValues(r.Method, routeTemplate).Inc()

			log.With(
				logger.NewField("method", r.Method),
				logger.NewField("route", routeTemplate),
				logger.NewField("remote_addr", r.RemoteAddr),
			).Warn("rate limit exceeded")

			w.Header().Set("Content-Type", "application/json")
			w.Header().Set("X-RateLimit-Limit", limitHeader)
			w.Header().Set("Retry-After", "1")
			w.WriteHeader(http.StatusTooManyRequests)

			if _, err := w.Write([]byte(rejectBody)); err != nil {
				log.With(
					logger.NewField("error", err),
					logger.NewField("path", r.URL.Path),
				).Error("failed to write rate limit response")
			}
		})
	}
}
