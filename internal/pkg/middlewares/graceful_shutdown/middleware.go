package graceful_shutdown

import (
	"context"
	"net/http"
	"sync/atomic"
)

// Middleware отдает 503 на новые запросы, когда сервис уже в shutdown
// и ongoingCtx отменен. Пока идет readiness drain, запросы еще обслуживаются.
func Middleware(isShuttingDown *atomic.Bool, ongoingCtx context.Context) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if isShuttingDown.Load() && ongoingCtx.Err() != nil {
				http.Error(w, "service is shutting down", http.StatusServiceUnavailable)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
