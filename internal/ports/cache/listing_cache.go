// Package cache определяет интерфейс кэша списков постов.
package cache

import (
	"context"

	"postline/internal/domain/entities"
)

// ListingCache определяет интерфейс кэша списков постов по пользователю.
// Clear сбрасывает все записи без исключения: инвалидация грубая,
// любая запись поста обесценивает кэш целиком.
type ListingCache interface {
	Get(ctx context.Context, userID string) ([]entities.PostSummary, bool)

	Set(ctx context.Context, userID string, posts []entities.PostSummary)

	Clear(ctx context.Context)
}
