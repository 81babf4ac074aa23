package rate_limiter

import "orderdesk/pkg/logger"

// Limiter выдает токен на один запрос к API консоли, реализация в pkg/token_bucket.
type Limiter interface {
	Allow() bool
}

// middleware только предупреждает об отказах и об ошибках записи ответа.
type handlerLogger interface {
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}
