package timeout

import (
	"context"
	"net/http"
	"time"
)

// Middleware ограничивает контекст запроса сверху. Родителем остается ongoingCtx
// сервера (BaseContext), так что при shutdown запрос тоже отменяется.
func Middleware(timeout time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if timeout <= 0 {
				next.ServeHTTP(w, r)
				return
			}

			ctx, cancel := context.WithTimeout(r.Context(), timeout)
			defer cancel()

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
