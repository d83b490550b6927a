package repositories

import (
	"context"

	"postline/internal/domain/entities"
)

// PostRepository определяет интерфейс для операций с постами.
type PostRepository interface {
	Create(ctx context.Context, post *entities.Post) (*entities.Post, error)

	FindByID(ctx context.Context, id string) (*entities.Post, error)

	FindByUser(ctx context.Context, userID string) ([]*entities.Post, error)

	Delete(ctx context.Context, id string) error
}
