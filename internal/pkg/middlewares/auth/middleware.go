package auth

import (
	"net/http"
	"strings"

	"orderdesk/pkg/logger"
)

const bearerPrefix = "Bearer "

const unauthorizedBody = `{"error":"unauthorized","message":"missing or invalid bearer token"}`

// Middleware пускает дальше только запросы с валидным bearer токеном
// и кладет Principal в контекст. Проверка доступа к ресторану остается за хендлерами.
func Middleware(log handlerLogger, verifier *Verifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, err := bearerToken(r)
			if err == nil {
				principal, verifyErr := verifier.Verify(token)
				if verifyErr == nil {
					next.ServeHTTP(w, r.WithContext(WithPrincipal(r.Context(), principal)))
					return
				}
				err = verifyErr
			}

			log.With(
				logger.NewField("error", err),
				logger.NewField("path", r.URL.Path),
				logger.NewField("remote_addr", r.RemoteAddr),
			).Warn("request rejected by auth")

			w.Header().Set("Content-Type", "application/json")
			w.Header().Set("WWW-Authenticate", `Bearer realm="orderdesk"`)
			w.WriteHeader(http.StatusUnauthorized)
			if _, err := w.Write([]byte(unauthorizedBody)); err != nil {
				log.With(
					logger.NewField("error", err),
				).Error("failed to write unauthorized response")
			}
		})
	}
}

func bearerToken(r *http.Request) (string, error) {
	header := r.Header.Get("Authorization")
	if len(header) < len(bearerPrefix) || !strings.EqualFold(header[:len(bearerPrefix)], bearerPrefix) {
		return "", ErrMissingToken
	}

	token := strings.TrimSpace(header[len(bearerPrefix):])
	if token == "" {
		return "", ErrMissingToken
	}
	return token, nil
}
