package logger

import (
	"context"

	"github.com/google/uuid"
)

// requestIDKeyType защищает ключ контекста от коллизий с другими пакетами.
type requestIDKeyType struct{}

var requestIDKey = requestIDKeyType{}

// NewRequestIDContext привязывает идентификатор запроса к контексту.
// Если requestID пуст, подставляется свежий uuid: каждый запрос всегда
// несет какой-то идентификатор.
func NewRequestIDContext(ctx context.Context, requestID string) context.Context {
	if requestID == "" {
		requestID = uuid.NewString()
	}
	return context.WithValue(ctx, requestIDKey, requestID)
}

// GetRequestID достает идентификатор запроса из контекста.
func GetRequestID(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(requestIDKey).(string)
	return id, ok
}
