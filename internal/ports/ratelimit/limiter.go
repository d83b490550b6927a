// Package ratelimit определяет интерфейс ограничителя частоты запросов.
package ratelimit

import "context"

// Limiter определяет интерфейс ограничителя частоты запросов.
type Limiter interface {
	Allow(ctx context.Context, key string) (bool, error)

	Close() error
}
